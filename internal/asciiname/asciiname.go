// Package asciiname folds arbitrary Unicode names into the bounded, printable
// ASCII names the radio CPS accepts.
package asciiname

import (
	"regexp"
	"strings"
	"unicode"

	"github.com/mozillazg/go-unidecode"
	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

const (
	// DefaultMaxLength is the DM-32 name field width.
	DefaultMaxLength = 16
)

// Options configures sanitization.
type Options struct {
	MaxLength int
	// Allow reports whether an ASCII rune may appear in the result.
	Allow func(r rune) bool
}

// ContactOptions keeps letters, digits, space, underscore and hyphen.
func ContactOptions(maxLength int) Options {
	return Options{MaxLength: maxLength, Allow: isContactRune}
}

// ChannelOptions keeps printable ASCII except the CSV and zone-member separators.
func ChannelOptions(maxLength int) Options {
	return Options{MaxLength: maxLength, Allow: isChannelRune}
}

func isContactRune(r rune) bool {
	switch {
	case r >= 'A' && r <= 'Z', r >= 'a' && r <= 'z', r >= '0' && r <= '9':
		return true
	case r == ' ', r == '_', r == '-':
		return true
	}
	return false
}

func isChannelRune(r rune) bool {
	if r < 0x20 || r > 0x7E {
		return false
	}
	switch r {
	case ',', '|', '"':
		return false
	}
	return true
}

var stripNonASCII = runes.Remove(runes.Predicate(func(r rune) bool {
	return r < 0x20 || r > 0x7E
}))

// Transliterate maps s to its closest printable ASCII form. Compatibility forms
// are folded first, non-Latin scripts are approximated phonetically and anything
// left without an ASCII equivalent is dropped.
func Transliterate(s string) string {
	s = norm.NFKC.String(s)
	s = strings.ReplaceAll(unidecode.Unidecode(s), "[?]", "")
	out, _, err := transform.String(stripNonASCII, s)
	if err != nil {
		return ""
	}
	return out
}

// Sanitize transliterates name, drops disallowed runes, collapses whitespace and
// truncates to opts.MaxLength without leaving trailing whitespace.
func Sanitize(name string, opts Options) string {
	if opts.MaxLength <= 0 {
		opts.MaxLength = DefaultMaxLength
	}
	allow := opts.Allow
	if allow == nil {
		allow = isChannelRune
	}

	var b strings.Builder
	space := false
	for _, r := range Transliterate(name) {
		if unicode.IsSpace(r) {
			space = true
			continue
		}
		if !allow(r) {
			continue
		}
		if space && b.Len() > 0 {
			b.WriteByte(' ')
		}
		space = false
		b.WriteRune(r)
	}
	return Truncate(b.String(), opts.MaxLength)
}

// Truncate cuts s to at most n bytes and trims trailing whitespace. s is
// expected to be ASCII already.
func Truncate(s string, n int) string {
	if n >= 0 && len(s) > n {
		s = s[:n]
	}
	return strings.TrimRight(s, " \t")
}

// IsPrintableASCII reports whether every byte of s is in 0x20..0x7E.
func IsPrintableASCII(s string) bool {
	for i := 0; i < len(s); i++ {
		if s[i] < 0x20 || s[i] > 0x7E {
			return false
		}
	}
	return true
}

// Fits reports whether s is non-empty printable ASCII of at most maxLength bytes.
func Fits(s string, maxLength int) bool {
	return s != "" && len(s) <= maxLength && IsPrintableASCII(s)
}

type substitution struct {
	re   *regexp.Regexp
	repl string
}

// Compound phrases come before their individual words.
var abbreviations = []substitution{
	{regexp.MustCompile(`(?i)\bNorth\s+America\b`), "N Ameri"},
	{regexp.MustCompile(`(?i)\bSouth\s+America\b`), "S Ameri"},
	{regexp.MustCompile(`(?i)\bNorth\b`), "N"},
	{regexp.MustCompile(`(?i)\bSouth\b`), "S"},
	{regexp.MustCompile(`(?i)\bAmerica\b`), "Amer"},
	{regexp.MustCompile(`(?i)\bAustralia\b`), "Aust"},
	{regexp.MustCompile(`(?i)\bNew Zealand\b`), "NZ"},
	{regexp.MustCompile(`(?i)\bUnited\b`), "U"},
	{regexp.MustCompile(`(?i)\bKingdom\b`), "K"},
	{regexp.MustCompile(`(?i)\bRepublic\b`), "Rep"},
	{regexp.MustCompile(`(?i)\bDominican\b`), "Dom"},
	{regexp.MustCompile(`(?i)\band\b`), "&"},
}

var spaces = regexp.MustCompile(`\s+`)

// Abbreviate shortens common geographic words so a talkgroup name and its ID
// fit in one channel name, e.g. "North America" becomes "N Ameri".
func Abbreviate(name string) string {
	out := name
	for _, s := range abbreviations {
		out = s.re.ReplaceAllString(out, s.repl)
	}
	return strings.TrimSpace(spaces.ReplaceAllString(out, " "))
}

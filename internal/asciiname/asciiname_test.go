package asciiname

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSanitizeContact(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		max      int
		expected string
	}{
		{"plain", "Worldwide", 16, "Worldwide"},
		{"diacritics", "Österreich Süd", 16, "Osterreich Sud"},
		{"punctuation removed", "U.P.TG", 16, "UPTG"},
		{"collapse whitespace", "  TAC   310  ", 16, "TAC 310"},
		{"truncate without trailing space", "Midwest Regional Net", 8, "Midwest"},
		{"cyrillic", "Россия", 16, "Rossiia"},
		{"fullwidth folded", "ＴＥＳＴ", 16, "TEST"},
		{"nothing left", "☃☃", 16, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Sanitize(tt.input, ContactOptions(tt.max))
			assert.Equal(t, tt.expected, got)
			assert.True(t, IsPrintableASCII(got))
			assert.LessOrEqual(t, len(got), tt.max)
		})
	}
}

func TestSanitizeChannelKeepsPunctuation(t *testing.T) {
	assert.Equal(t, "GMRS/FRS 01", Sanitize("GMRS/FRS 01", ChannelOptions(16)))
	assert.Equal(t, "Air 122.75 Air-t", Sanitize("Air 122.75 Air-to-Air", ChannelOptions(16)))
	assert.Equal(t, "KB0P Local", Sanitize("KB0P, Local", ChannelOptions(16)))
	assert.Equal(t, "AB", Sanitize("A|B", ChannelOptions(16)))
}

func TestSanitizeDefaultsMaxLength(t *testing.T) {
	got := Sanitize(strings.Repeat("x", 40), Options{})
	assert.Len(t, got, DefaultMaxLength)
}

func TestTruncate(t *testing.T) {
	assert.Equal(t, "abc", Truncate("abc", 5))
	assert.Equal(t, "ab", Truncate("ab cd", 3))
	assert.Equal(t, "", Truncate("   ", 3))
}

func TestFits(t *testing.T) {
	assert.True(t, Fits("NOAA WX 1", 16))
	assert.False(t, Fits("", 16))
	assert.False(t, Fits("toolongforthefield", 16))
	assert.False(t, Fits("café", 16))
}

func TestAbbreviate(t *testing.T) {
	tests := map[string]string{
		"North America":        "N Ameri",
		"South America":        "S Ameri",
		"America Link":         "Amer Link",
		"United Kingdom":       "U K",
		"Northeast Regional":   "Northeast Regional",
		"Dominican Republic":   "Dom Rep",
		"Trinidad and Tobago":  "Trinidad & Tobago",
		"New Zealand   Calls ": "NZ Calls",
	}
	for in, want := range tests {
		assert.Equal(t, want, Abbreviate(in), "Abbreviate(%q)", in)
	}
}

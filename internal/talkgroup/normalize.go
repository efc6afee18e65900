// Package talkgroup turns a talkgroup directory export into the normalized
// contact table.
package talkgroup

import (
	"math"
	"strconv"
	"strings"

	"github.com/lucasmellon-ops/Baofeng-DM-32/internal/asciiname"
	"github.com/lucasmellon-ops/Baofeng-DM-32/internal/model"
)

// DefaultContactCeiling is the DM-32 digital contact capacity.
const DefaultContactCeiling = 50000

// RawRow is one source record before normalization.
type RawRow struct {
	Line int
	ID   string
	Name string
}

// Options configures Normalize.
type Options struct {
	MaxLength int
	Policy    CallTypePolicy
}

// DefaultOptions returns sensible defaults.
func DefaultOptions() Options {
	return Options{
		MaxLength: asciiname.DefaultMaxLength,
		Policy:    DefaultPolicy(),
	}
}

// Result is the outcome of Normalize.
type Result struct {
	Talkgroups []model.Talkgroup
	Skipped    []RowIssue
	Dropped    []*ConstraintError
	Duplicates int
}

// Table indexes the normalized talkgroups.
func (r Result) Table() *model.TalkgroupTable {
	return model.NewTalkgroupTable(r.Talkgroups)
}

// Private counts the private-call contacts.
func (r Result) Private() int {
	n := 0
	for _, tg := range r.Talkgroups {
		if tg.CallType == model.PrivateCall {
			n++
		}
	}
	return n
}

// Normalize cleans, deduplicates and classifies rows. Output keeps input order.
// The first row carrying an ID claims it even when its name is later dropped.
func Normalize(rows []RawRow, opts Options) Result {
	if opts.MaxLength <= 0 {
		opts.MaxLength = asciiname.DefaultMaxLength
	}
	nameOpts := asciiname.ContactOptions(opts.MaxLength)

	var res Result
	seen := make(map[uint32]bool, len(rows))
	for _, row := range rows {
		id, reason := ParseID(row.ID)
		if reason != "" {
			res.Skipped = append(res.Skipped, RowIssue{Line: row.Line, ID: row.ID, Reason: reason})
			continue
		}
		raw := strings.TrimSpace(row.Name)
		if raw == "" {
			res.Skipped = append(res.Skipped, RowIssue{Line: row.Line, ID: row.ID, Reason: "name is empty"})
			continue
		}
		if seen[id] {
			res.Duplicates++
			continue
		}
		seen[id] = true

		name := asciiname.Sanitize(raw, nameOpts)
		if name == "" {
			res.Dropped = append(res.Dropped, &ConstraintError{
				Line: row.Line, ID: id, Name: raw,
				Reason: "name has no ASCII representation",
			})
			continue
		}
		if !asciiname.Fits(name, opts.MaxLength) {
			res.Dropped = append(res.Dropped, &ConstraintError{
				Line: row.Line, ID: id, Name: raw,
				Reason: "name exceeds length or ASCII bounds",
			})
			continue
		}
		res.Talkgroups = append(res.Talkgroups, model.Talkgroup{
			ID:       id,
			Name:     name,
			CallType: opts.Policy.Classify(id),
		})
	}
	return res
}

// ParseID parses a talkgroup identifier cell. Integral float spellings such as
// "91.0" are accepted. A non-empty reason means the cell is malformed.
func ParseID(s string) (uint32, string) {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0, "id is empty"
	}
	if n, err := strconv.ParseInt(s, 10, 64); err == nil {
		return checkID(n)
	}
	f, err := strconv.ParseFloat(s, 64)
	if err != nil || math.IsNaN(f) || math.IsInf(f, 0) {
		return 0, "id " + strconv.Quote(s) + " is not numeric"
	}
	if f != math.Trunc(f) {
		return 0, "id " + strconv.Quote(s) + " is not an integer"
	}
	if f > math.MaxInt64/2 || f < math.MinInt64/2 {
		return 0, "id " + strconv.Quote(s) + " is out of range"
	}
	return checkID(int64(f))
}

func checkID(n int64) (uint32, string) {
	switch {
	case n <= 0:
		return 0, "id must be positive"
	case n > model.MaxTalkgroupID:
		return 0, "id exceeds the 24-bit DMR range"
	}
	return uint32(n), ""
}

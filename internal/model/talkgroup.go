// Package model defines the core code-plug data types.
package model

import "fmt"

// CallType classifies a contact as a group or private destination.
type CallType int

const (
	GroupCall CallType = iota
	PrivateCall
)

// String returns the exact label the CPS import expects.
func (c CallType) String() string {
	if c == PrivateCall {
		return "Private Call"
	}
	return "Group Call"
}

// MarshalText implements encoding.TextMarshaler.
func (c CallType) MarshalText() ([]byte, error) {
	return []byte(c.String()), nil
}

// MaxTalkgroupID is the largest identifier a 24-bit DMR address can carry.
const MaxTalkgroupID = 1<<24 - 1

// Talkgroup is one normalized contact row.
type Talkgroup struct {
	ID       uint32   `json:"id"`
	Name     string   `json:"name"`
	CallType CallType `json:"type"`
}

func (t Talkgroup) String() string {
	return fmt.Sprintf("%d %s (%s)", t.ID, t.Name, t.CallType)
}

// TalkgroupTable is an ordered, ID-unique talkgroup sequence with lookup by ID.
type TalkgroupTable struct {
	rows []Talkgroup
	byID map[uint32]int
}

// NewTalkgroupTable indexes rows. Later rows with an ID already present are ignored.
func NewTalkgroupTable(rows []Talkgroup) *TalkgroupTable {
	t := &TalkgroupTable{byID: make(map[uint32]int, len(rows))}
	for _, r := range rows {
		if _, ok := t.byID[r.ID]; ok {
			continue
		}
		t.byID[r.ID] = len(t.rows)
		t.rows = append(t.rows, r)
	}
	return t
}

// Len returns the number of talkgroups.
func (t *TalkgroupTable) Len() int {
	if t == nil {
		return 0
	}
	return len(t.rows)
}

// Lookup returns the talkgroup with the given ID.
func (t *TalkgroupTable) Lookup(id uint32) (Talkgroup, bool) {
	if t == nil {
		return Talkgroup{}, false
	}
	i, ok := t.byID[id]
	if !ok {
		return Talkgroup{}, false
	}
	return t.rows[i], true
}

// Head returns up to n talkgroups from the front of the table.
func (t *TalkgroupTable) Head(n int) []Talkgroup {
	if t == nil || n <= 0 {
		return nil
	}
	if n > len(t.rows) {
		n = len(t.rows)
	}
	out := make([]Talkgroup, n)
	copy(out, t.rows[:n])
	return out
}

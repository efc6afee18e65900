package talkgroup

import (
	"errors"
	"fmt"
)

// ErrHeader is returned when the source table lacks a required column.
var ErrHeader = errors.New("talkgroup source header")

// RowIssue records an input row skipped as malformed.
type RowIssue struct {
	Line   int    `json:"line"`
	ID     string `json:"id,omitempty"`
	Reason string `json:"reason"`
}

func (r RowIssue) Error() string {
	return fmt.Sprintf("line %d: %s", r.Line, r.Reason)
}

// ConstraintError records a talkgroup dropped because its normalized name
// cannot satisfy the output constraints.
type ConstraintError struct {
	Line   int    `json:"line"`
	ID     uint32 `json:"id"`
	Name   string `json:"name"`
	Reason string `json:"reason"`
}

func (e *ConstraintError) Error() string {
	return fmt.Sprintf("talkgroup %d (line %d): %s", e.ID, e.Line, e.Reason)
}

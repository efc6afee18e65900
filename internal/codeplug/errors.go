package codeplug

import (
	"errors"
	"fmt"
)

// ErrEncoding marks output that cannot be written as plain ASCII.
var ErrEncoding = errors.New("encoding violation")

// EncodingError locates the offending cell.
type EncodingError struct {
	Table  string
	Row    int
	Column string
	Value  string
}

func (e *EncodingError) Error() string {
	return fmt.Sprintf("%s row %d column %q: non-ASCII value %q", e.Table, e.Row, e.Column, e.Value)
}

func (e *EncodingError) Unwrap() error { return ErrEncoding }

package talkgroup

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"strings"

	"golang.org/x/text/encoding/htmlindex"
	"golang.org/x/text/encoding/unicode"
	"golang.org/x/text/transform"
)

// ReadOptions configures ReadCSV.
type ReadOptions struct {
	// Encoding is a WHATWG label such as "utf-8" or "windows-1252".
	Encoding  string
	Delimiter rune
}

var idColumns = []string{"talkgroup", "id", "tg", "talkgroup id", "tgid"}

// ReadCSV reads a directory export. The header row must carry an ID column and
// a Name column; other columns are ignored.
func ReadCSV(r io.Reader, opts ReadOptions) ([]RawRow, error) {
	dec, err := decoderFor(opts.Encoding)
	if err != nil {
		return nil, err
	}

	cr := csv.NewReader(transform.NewReader(r, dec))
	if opts.Delimiter != 0 {
		cr.Comma = opts.Delimiter
	}
	cr.FieldsPerRecord = -1
	cr.LazyQuotes = true
	cr.TrimLeadingSpace = true

	header, err := cr.Read()
	if errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("%w: input is empty", ErrHeader)
	}
	if err != nil {
		return nil, fmt.Errorf("read header: %w", err)
	}
	idCol, nameCol := -1, -1
	for i, h := range header {
		h = strings.ToLower(strings.TrimSpace(h))
		if nameCol < 0 && h == "name" {
			nameCol = i
		}
		if idCol < 0 {
			for _, alias := range idColumns {
				if h == alias {
					idCol = i
					break
				}
			}
		}
	}
	if idCol < 0 {
		return nil, fmt.Errorf("%w: no talkgroup ID column (want one of Talkgroup, ID, TG, Talkgroup ID, TGID)", ErrHeader)
	}
	if nameCol < 0 {
		return nil, fmt.Errorf("%w: no Name column", ErrHeader)
	}

	var rows []RawRow
	for {
		rec, err := cr.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("read row: %w", err)
		}
		line, _ := cr.FieldPos(0)
		if len(rec) == 1 && strings.TrimSpace(rec[0]) == "" {
			continue
		}
		rows = append(rows, RawRow{Line: line, ID: cell(rec, idCol), Name: cell(rec, nameCol)})
	}
	return rows, nil
}

func cell(rec []string, i int) string {
	if i < len(rec) {
		return rec[i]
	}
	return ""
}

// decoderFor resolves an encoding label. A byte-order mark in the input wins
// over the label.
func decoderFor(label string) (transform.Transformer, error) {
	label = strings.TrimSpace(label)
	if label == "" {
		label = "utf-8"
	}
	enc, err := htmlindex.Get(label)
	if err != nil {
		return nil, fmt.Errorf("input encoding %q: %w", label, err)
	}
	return unicode.BOMOverride(enc.NewDecoder()), nil
}

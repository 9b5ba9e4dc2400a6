// Package gf2: boundary text codec.
// The interchange format joins rows with ';' and entries with ',':
// "1,1,0;0,1,1" is [[1,1,0],[0,1,1]]. Entries are the literals 0 and 1
// only; whitespace around entries and rows is tolerated on input.
package gf2

import (
	"fmt"
	"strconv"
	"strings"
)

const (
	rowSeparator   = ";"
	entrySeparator = ","
)

// Parse decodes boundary-format text into a Matrix.
// Fails with ErrParse (with the offending detail wrapped in the message)
// when the text is empty after trimming, an entry is not an integer or
// not 0/1, or rows have differing lengths.
// Complexity: O(len(text)).
func Parse(text string) (*Matrix, error) {
	trimmed := strings.TrimSpace(text)
	if trimmed == "" {
		return nil, fmt.Errorf("gf2.Parse: empty input: %w", ErrParse)
	}

	rowTexts := strings.Split(trimmed, rowSeparator)
	rows := make([][]byte, len(rowTexts))
	for i, rowText := range rowTexts {
		entries := strings.Split(rowText, entrySeparator)
		row := make([]byte, len(entries))
		for j, entry := range entries {
			v, err := strconv.Atoi(strings.TrimSpace(entry))
			if err != nil {
				return nil, fmt.Errorf("gf2.Parse: row %d entry %d %q: %w", i, j, entry, ErrParse)
			}
			if v != 0 && v != 1 {
				return nil, fmt.Errorf("gf2.Parse: row %d entry %d is %d: %w", i, j, v, ErrParse)
			}
			row[j] = byte(v)
		}
		rows[i] = row
	}

	m, err := FromRows(rows)
	if err != nil {
		// Ragged or otherwise malformed shape surfaces as a parse failure.
		return nil, fmt.Errorf("gf2.Parse: %v: %w", err, ErrParse)
	}

	return m, nil
}

// String encodes m in the boundary format accepted by Parse.
// Complexity: O(rows·cols).
func (m *Matrix) String() string {
	var b strings.Builder
	b.Grow(2 * len(m.data))
	for i := 0; i < m.rows; i++ {
		if i > 0 {
			b.WriteString(rowSeparator)
		}
		for j := 0; j < m.cols; j++ {
			if j > 0 {
				b.WriteString(entrySeparator)
			}
			b.WriteByte('0' + m.at(i, j))
		}
	}

	return b.String()
}

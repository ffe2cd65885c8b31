package domain

import (
	"errors"
	"fmt"
	"strings"
)

var ErrBadGridText = errors.New("malformed grid text")

// ParseRows builds a board from nine 9-character rows, e.g. "53..7....".
// Digits 1-9 are givens; '.' and '0' are empty cells.
func ParseRows(rows []string) (*Board, error) {
	if len(rows) != 9 {
		return nil, fmt.Errorf("%w: want 9 rows, got %d", ErrBadGridText, len(rows))
	}
	b := &Board{}
	for r, row := range rows {
		if len(row) != 9 {
			return nil, fmt.Errorf("%w: row %d has %d cells, want 9", ErrBadGridText, r+1, len(row))
		}
		for c := 0; c < 9; c++ {
			switch ch := row[c]; {
			case ch == '.' || ch == '0':
				b.Values[r][c] = Empty
			case ch >= '1' && ch <= '9':
				b.Values[r][c] = ch - '0'
				b.Fixed[r][c] = true
			default:
				return nil, fmt.Errorf("%w: row %d col %d: %q", ErrBadGridText, r+1, c+1, ch)
			}
		}
	}
	return b, nil
}

// ParseText splits free-form text into lines and parses them as rows.
// Blank lines and surrounding whitespace are ignored.
func ParseText(text string) (*Board, error) {
	var rows []string
	for _, line := range strings.Split(text, "\n") {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		rows = append(rows, line)
	}
	return ParseRows(rows)
}

// Rows renders the board as nine 9-character strings with '.' for empty.
func (b *Board) Rows() []string {
	rows := make([]string, 9)
	var sb strings.Builder
	for r := 0; r < 9; r++ {
		sb.Reset()
		for c := 0; c < 9; c++ {
			if v := b.Values[r][c]; v == Empty {
				sb.WriteByte('.')
			} else {
				sb.WriteByte('0' + v)
			}
		}
		rows[r] = sb.String()
	}
	return rows
}

// String renders the board with box separators for terminal display.
func (b *Board) String() string {
	var sb strings.Builder
	for r := 0; r < 9; r++ {
		if r == 3 || r == 6 {
			sb.WriteString("------+-------+------\n")
		}
		for c := 0; c < 9; c++ {
			if c == 3 || c == 6 {
				sb.WriteString("| ")
			}
			if v := b.Values[r][c]; v == Empty {
				sb.WriteByte('.')
			} else {
				sb.WriteByte('0' + v)
			}
			if c < 8 {
				sb.WriteByte(' ')
			}
		}
		sb.WriteByte('\n')
	}
	return sb.String()
}

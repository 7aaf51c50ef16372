package lifesearch

import (
	"fmt"
	"strings"
)

// ParsePlaintext parses the Plaintext-style rows Display produces: rows
// of '.'/'O'/'?' terminated by '$', with a trailing '!'. Blank lines and
// lines starting with '#' (a comment, matching the .lif/Plaintext family
// this rendering borrows its punctuation from) are skipped. Rows must
// all be the same width.
func ParsePlaintext(data []byte) ([][]State, error) {
	text := strings.TrimSpace(string(data))
	text = strings.TrimSuffix(text, "!")

	var rows [][]State
	width := -1
	for _, line := range strings.Split(text, "$") {
		line = strings.TrimSpace(line)
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		row := make([]State, 0, len(line))
		for _, r := range line {
			switch r {
			case '.':
				row = append(row, Dead)
			case 'O':
				row = append(row, Alive)
			case '?':
				row = append(row, Unknown)
			default:
				return nil, fmt.Errorf("lifesearch: unexpected character %q in pattern", r)
			}
		}
		if width == -1 {
			width = len(row)
		} else if len(row) != width {
			return nil, fmt.Errorf("lifesearch: pattern row width mismatch, got %d want %d", len(row), width)
		}
		rows = append(rows, row)
	}
	if len(rows) == 0 {
		return nil, fmt.Errorf("lifesearch: pattern is empty")
	}
	return rows, nil
}

package pointset

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"
)

// fieldSep separates coordinates on a line.
const fieldSep = ","

// Parse reads one point per line, coordinates separated by commas
// (e.g. "162,817,812"). Blank lines are skipped and fields are trimmed.
//
// Errors:
//   - ErrSyntax : a field is not a number (wrapped with its line number).
//   - ErrRagged : a line has a different field count than the first point.
//   - ErrEmpty  : no points were read.
//   - any error returned by r.
func Parse(r io.Reader) (*PointSet, error) {
	var (
		rows [][]float64
		dim  int
		line int
	)
	sc := bufio.NewScanner(r)
	for sc.Scan() {
		line++
		text := strings.TrimSpace(sc.Text())
		if text == "" {
			continue
		}
		fields := strings.Split(text, fieldSep)
		if dim == 0 {
			dim = len(fields)
		} else if len(fields) != dim {
			return nil, fmt.Errorf("line %d: %d fields, want %d: %w", line, len(fields), dim, ErrRagged)
		}

		row := make([]float64, len(fields))
		for j, f := range fields {
			v, err := strconv.ParseFloat(strings.TrimSpace(f), 64)
			if err != nil {
				return nil, fmt.Errorf("line %d field %d %q: %w", line, j+1, f, ErrSyntax)
			}
			row[j] = v
		}
		rows = append(rows, row)
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("pointset: read: %w", err)
	}

	return New(rows)
}

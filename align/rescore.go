package align

import "fmt"

// Rescore sums the column scores of an alignment without consulting any
// lattice: a gap-free column adds table[x][y][z], a column with g gap
// characters subtracts g·gap.
//
// Errors:
//   - ErrBadScoring: negative gap or table entry.
//   - ErrMalformedAlignment: rows of unequal length or an all-gap column.
//   - ErrInvalidSymbol: a non-gap byte outside {A,G,C,T}.
//
// Complexity: O(L) for L columns.
func Rescore(rows [3]string, table SubstitutionTable, gap int) (int, error) {
	if err := (Options{Table: table, GapPenalty: gap}).validate(); err != nil {
		return 0, err
	}
	n := len(rows[0])
	if len(rows[1]) != n || len(rows[2]) != n {
		return 0, fmt.Errorf("row lengths %d, %d, %d: %w", n, len(rows[1]), len(rows[2]), ErrMalformedAlignment)
	}

	total := 0
	var col [3]Base
	for p := 0; p < n; p++ {
		gaps := 0
		for r := 0; r < 3; r++ {
			ch := rows[r][p]
			if ch == GapChar {
				gaps++
				continue
			}
			b, ok := ParseBase(ch)
			if !ok {
				return 0, symbolErrorf(r+1, p, ch)
			}
			col[r] = b
		}

		switch gaps {
		case 0:
			total += table[col[0]][col[1]][col[2]]
		case 3:
			return 0, fmt.Errorf("column %d is all gaps: %w", p, ErrMalformedAlignment)
		default:
			total -= gaps * gap
		}
	}

	return total, nil
}

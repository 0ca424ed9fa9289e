package align

import "fmt"

// Traceback reconstructs one optimal alignment from a filled table.
//
// Algorithm Outline:
//  1. Start at (n1, n2, n3).
//  2. Read TB at the current cell. None ends the walk and is only legal at
//     the origin.
//  3. Emit one column: each sequence the move consumes contributes its
//     current symbol, the others contribute GapChar.
//  4. Step the consumed indices back by one and repeat.
//
// The walk dispatches on the stored move alone and never re-derives it from
// scores. Columns are collected backwards and reversed once at the end.
//
// Errors:
//   - ErrInconsistentPointer: nil or unfilled table, shape not matching the sequences,
//     an undefined move, None away from the origin, or a move that would
//     step an index below zero.
//
// Complexity: O(n1+n2+n3) time and memory.
func Traceback(seq1, seq2, seq3 string, t *Table) (*Alignment, error) {
	if t == nil {
		return nil, fmt.Errorf("nil table: %w", ErrInconsistentPointer)
	}
	if !t.wellFormed() {
		return nil, fmt.Errorf("table buffers do not match shape %d×%d×%d: %w",
			t.n1, t.n2, t.n3, ErrInconsistentPointer)
	}
	if len(seq1) != t.n1 || len(seq2) != t.n2 || len(seq3) != t.n3 {
		return nil, fmt.Errorf("table shape %d×%d×%d does not match sequence lengths %d, %d, %d: %w",
			t.n1, t.n2, t.n3, len(seq1), len(seq2), len(seq3), ErrInconsistentPointer)
	}

	i, j, k := t.n1, t.n2, t.n3
	limit := i + j + k
	r1 := make([]byte, 0, limit)
	r2 := make([]byte, 0, limit)
	r3 := make([]byte, 0, limit)
	path := make([]Move, 0, limit)

	for {
		m := t.moves[t.offset(i, j, k)]
		if m == None {
			if i != 0 || j != 0 || k != 0 {
				return nil, pointerErrorf(i, j, k, m, "terminal move away from origin")
			}

			break
		}
		if !m.Valid() {
			return nil, pointerErrorf(i, j, k, m, "undefined move")
		}
		di, dj, dk := m.Steps()
		if i < di || j < dj || k < dk {
			return nil, pointerErrorf(i, j, k, m, "steps outside the lattice")
		}

		r1 = append(r1, emit(seq1, i, di))
		r2 = append(r2, emit(seq2, j, dj))
		r3 = append(r3, emit(seq3, k, dk))
		path = append(path, m)
		i, j, k = i-di, j-dj, k-dk
	}

	reverse(r1)
	reverse(r2)
	reverse(r3)
	for l, r := 0, len(path)-1; l < r; l, r = l+1, r-1 {
		path[l], path[r] = path[r], path[l]
	}

	return &Alignment{
		Score: t.Score(),
		Rows:  [3]string{string(r1), string(r2), string(r3)},
		Moves: path,
	}, nil
}

// emit returns seq[idx-1] when the sequence advances, GapChar otherwise.
func emit(seq string, idx, step int) byte {
	if step == 0 {
		return GapChar
	}

	return seq[idx-1]
}

func reverse(s []byte) {
	for i, j := 0, len(s)-1; i < j; i, j = i+1, j-1 {
		s[i], s[j] = s[j], s[i]
	}
}

package align

import (
	"fmt"
	"math"
)

// Table is the filled (n1+1)×(n2+1)×(n3+1) lattice: the score table F and
// the move table TB, both stored in flat slices addressed by
// (i*(n2+1)+j)*(n3+1)+k so that k varies fastest.
// A Table is immutable once Fill returns it.
type Table struct {
	n1, n2, n3 int    // sequence lengths
	si, sj     int    // strides of i and j; the stride of k is 1
	score      []int  // F, length == cells
	moves      []Move // TB, length == cells
}

// cellCount returns (n1+1)(n2+1)(n3+1), or ErrTableTooLarge when the product
// overflows int or exceeds limit (limit ≤ 0 disables the bound).
// Complexity: O(1).
func cellCount(n1, n2, n3, limit int) (int, error) {
	dims := [3]int{n1 + 1, n2 + 1, n3 + 1}
	cells := 1
	for _, d := range dims {
		if cells > math.MaxInt/d {
			return 0, fmt.Errorf("%d×%d×%d cells overflows int: %w", dims[0], dims[1], dims[2], ErrTableTooLarge)
		}
		cells *= d
	}
	if limit > 0 && cells > limit {
		return 0, fmt.Errorf("%d×%d×%d = %d cells, limit %d: %w",
			dims[0], dims[1], dims[2], cells, limit, ErrTableTooLarge)
	}

	return cells, nil
}

// newTable sizes and allocates both buffers. A rejected size allocates
// nothing.
// Stage 1 (Validate): overflow and limit check via cellCount.
// Stage 2 (Prepare): allocate zeroed score and move slices.
// Complexity: O(cells) time and memory.
func newTable(n1, n2, n3, limit int) (*Table, error) {
	cells, err := cellCount(n1, n2, n3, limit)
	if err != nil {
		return nil, err
	}

	return &Table{
		n1: n1, n2: n2, n3: n3,
		si:    (n2 + 1) * (n3 + 1),
		sj:    n3 + 1,
		score: make([]int, cells),
		moves: make([]Move, cells),
	}, nil
}

// offset computes the flat index of (i, j, k). No bounds check.
func (t *Table) offset(i, j, k int) int {
	return i*t.si + j*t.sj + k
}

// wellFormed reports whether both buffers and the strides match the
// recorded shape. A zero Table is not well formed.
func (t *Table) wellFormed() bool {
	cells, err := cellCount(t.n1, t.n2, t.n3, 0)

	return err == nil && len(t.score) == cells && len(t.moves) == cells &&
		t.sj == t.n3+1 && t.si == (t.n2+1)*(t.n3+1)
}

// Dims returns the sequence lengths the table was built for.
func (t *Table) Dims() (n1, n2, n3 int) {
	return t.n1, t.n2, t.n3
}

// Cells returns the number of lattice cells.
func (t *Table) Cells() int {
	return len(t.score)
}

// Score returns F(n1, n2, n3), the optimal alignment score.
// It is 0 for a table that was not produced by Fill.
func (t *Table) Score() int {
	if len(t.score) == 0 {
		return 0
	}

	return t.score[len(t.score)-1]
}

// At returns F(i,j,k) and TB(i,j,k).
// Returns ErrOutOfRange if any index lies outside the lattice or the table
// was not produced by Fill.
// Complexity: O(1).
func (t *Table) At(i, j, k int) (int, Move, error) {
	if !t.wellFormed() {
		return 0, None, fmt.Errorf("Table.At(%d,%d,%d): unfilled table: %w", i, j, k, ErrOutOfRange)
	}
	if i < 0 || i > t.n1 || j < 0 || j > t.n2 || k < 0 || k > t.n3 {
		return 0, None, fmt.Errorf("Table.At(%d,%d,%d): %w", i, j, k, ErrOutOfRange)
	}
	off := t.offset(i, j, k)

	return t.score[off], t.moves[off], nil
}

// Equal reports whether two tables have identical shape, scores and moves.
// Complexity: O(cells).
func (t *Table) Equal(o *Table) bool {
	if t == nil || o == nil {
		return t == o
	}
	if t.n1 != o.n1 || t.n2 != o.n2 || t.n3 != o.n3 {
		return false
	}
	for p := range t.score {
		if t.score[p] != o.score[p] || t.moves[p] != o.moves[p] {
			return false
		}
	}

	return true
}

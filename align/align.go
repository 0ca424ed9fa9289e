package align

import (
	"fmt"
	"strings"
)

// Alignment is one optimal three-way global alignment.
type Alignment struct {
	// Score is F(n1, n2, n3).
	Score int
	// Rows are the aligned seq1, seq2 and seq3, padded with GapChar to a
	// common length.
	Rows [3]string
	// Moves lists the move of every column, left to right.
	Moves []Move
}

// Align runs Fill followed by Traceback. The lattice is released when it
// returns.
//
// Example:
//
//	aln, err := Align("AC", "AC", "AC", WithGapPenalty(4))
//	// aln.Score == 0, aln.Rows == [3]string{"AC", "AC", "AC"}
func Align(seq1, seq2, seq3 string, opts ...Option) (*Alignment, error) {
	t, err := Fill(seq1, seq2, seq3, opts...)
	if err != nil {
		return nil, err
	}

	return Traceback(seq1, seq2, seq3, t)
}

// Len returns the number of alignment columns.
func (a *Alignment) Len() int {
	return len(a.Rows[0])
}

// Verify checks a against its inputs and scoring:
//   - all rows have the same length as Moves;
//   - removing GapChar from row r gives back sequence r;
//   - the rows rescore to a.Score under table and gap.
//
// Returns ErrMalformedAlignment (wrapped) on the first violation.
func (a *Alignment) Verify(seq1, seq2, seq3 string, table SubstitutionTable, gap int) error {
	seqs := [3]string{seq1, seq2, seq3}
	for r, row := range a.Rows {
		if len(row) != len(a.Moves) {
			return fmt.Errorf("row %d has %d columns, %d moves: %w", r+1, len(row), len(a.Moves), ErrMalformedAlignment)
		}
		if got := Degap(row); got != seqs[r] {
			return fmt.Errorf("row %d degaps to %q, want %q: %w", r+1, got, seqs[r], ErrMalformedAlignment)
		}
	}

	score, err := Rescore(a.Rows, table, gap)
	if err != nil {
		return err
	}
	if score != a.Score {
		return fmt.Errorf("rescored %d, table score %d: %w", score, a.Score, ErrMalformedAlignment)
	}

	return nil
}

// Degap removes every GapChar from row.
func Degap(row string) string {
	return strings.ReplaceAll(row, string(GapChar), "")
}

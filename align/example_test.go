package align_test

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/trialign/align"
)

// //////////////////////////////////////////////////////////////////////////////
// ExampleAlign
// //////////////////////////////////////////////////////////////////////////////
//
// Scenario:
//
//	Three short reads of the same locus, one with a deletion, one with a
//	substitution and a trailing deletion.
//
// Options:
//   - DefaultTable, gap penalty 4
//
// Complexity: O(n1·n2·n3) time and memory
func ExampleAlign() {
	aln, err := align.Align("GATTACA", "GATCA", "GTTACA",
		align.WithTable(align.DefaultTable()),
		align.WithGapPenalty(4),
	)
	if err != nil {
		fmt.Println("error:", err)

		return
	}
	fmt.Println("Score:", aln.Score)
	for _, row := range aln.Rows {
		fmt.Println(row)
	}
	// Output:
	// Score: -3
	// GATTACA
	// -G-ATCA
	// GTTACA-
}

// ExampleFill_degenerate shows an empty third sequence reducing the problem
// to a pairwise alignment against an all-gap row.
func ExampleFill_degenerate() {
	table, err := align.Fill("A", "A", "")
	if err != nil {
		fmt.Println("error:", err)

		return
	}
	n1, n2, n3 := table.Dims()
	_, move, _ := table.At(n1, n2, n3)
	fmt.Printf("cells=%d score=%d last=%s\n", table.Cells(), table.Score(), move)
	// Output:
	// cells=4 score=-4 last=gap3
}

// ExampleAlign_invalidSymbol demonstrates matching a sentinel with errors.Is.
func ExampleAlign_invalidSymbol() {
	_, err := align.Align("ACGN", "ACG", "ACG")
	fmt.Println(errors.Is(err, align.ErrInvalidSymbol))
	fmt.Println(err)
	// Output:
	// true
	// seq1[3]='N': align: symbol outside alphabet {A,G,C,T}
}

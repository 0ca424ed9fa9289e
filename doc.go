// Package trialign computes optimal global alignments of three DNA sequences.
//
// 🚀 What is inside?
//
//	align/         3D lattice fill, traceback, rescoring and the scoring
//	                model (substitution table + linear gap)
//	fasta/         single-sequence FASTA input, aligned FASTA output
//	cmd/trialign/  the command-line tool
//	internal/      YAML configuration, output renderers, logging & metrics
//	examples/      small runnable programs
//
// ✨ Quick start:
//
//	aln, err := align.Align("GATTACA", "GATCA", "GTTACA")
//	if err != nil {
//		// align.ErrInvalidSymbol, align.ErrTableTooLarge, ...
//	}
//	fmt.Println(aln.Score)   // -3
//	fmt.Println(aln.Rows[1]) // -G-ATCA
//
// The lattice holds (n1+1)(n2+1)(n3+1) cells, so memory grows with the
// product of the lengths; see align.WithMaxCells and align.WithWorkers.
package trialign

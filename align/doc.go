// Package align computes a global alignment of exactly three nucleotide
// sequences, the three-dimensional generalization of Needleman–Wunsch.
//
// 🚀 What does it do?
//
//	Given seq1, seq2, seq3 over {A,G,C,T}, a 4×4×4 substitution table and a
//	linear gap penalty, align fills a lattice F(i,j,k) holding the optimal
//	score of the prefixes seq1[:i], seq2[:j], seq3[:k], records which of the
//	seven moves won each cell, and walks those moves back from (n1,n2,n3) to
//	(0,0,0) to recover one optimal alignment.
//
// ✨ Key features:
//   - flat lattice: score and move tables live in two contiguous buffers
//   - deterministic tie-break: Match, Gap1, Gap2, Gap3, Gap12, Gap13, Gap23
//   - boundary planes filled by the pairwise recurrence, so empty inputs
//     degrade to 2D, 1D or the empty alignment instead of failing
//   - optional wavefront fill over anti-diagonal planes (WithWorkers)
//   - independent Rescore / Verify of any alignment against the cost model
//
// ⚙️ Usage:
//
//	aln, err := align.Align("GATTACA", "GATCA", "GTTACA",
//	  align.WithTable(align.DefaultTable()),
//	  align.WithGapPenalty(4),
//	)
//	if err != nil {
//	  // ErrInvalidSymbol, ErrBadScoring, ErrTableTooLarge, ErrInconsistentPointer
//	}
//	fmt.Println(aln.Score)
//	fmt.Println(aln.Rows[0])
//	fmt.Println(aln.Rows[1])
//	fmt.Println(aln.Rows[2])
//
// Recurrence (i,j,k ≥ 1, g = gap penalty):
//
//	F(i,j,k) = max{ F(i-1,j-1,k-1) + cost(a_i, b_j, c_k)   Match
//	                F(i,  j-1,k-1) - g                     Gap1
//	                F(i-1,j,  k-1) - g                     Gap2
//	                F(i-1,j-1,k  ) - g                     Gap3
//	                F(i,  j,  k-1) - 2g                    Gap12
//	                F(i,  j-1,k  ) - 2g                    Gap13
//	                F(i-1,j,  k  ) - 2g }                  Gap23
//
// Every gap character costs g, so the axes hold F(i,0,0) = -2i·g and the
// same for j and k. Each coordinate plane is the pairwise recurrence over
// the three moves that keep its zero index at zero.
//
// Performance:
//
//   - Time:   O(n1·n2·n3)
//   - Memory: O(n1·n2·n3), one int and one byte per cell
package align

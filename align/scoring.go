package align

import "fmt"

// Base is the index of a nucleotide in the substitution table.
// The order A, G, C, T is fixed and shared with config files.
type Base uint8

const (
	A Base = iota
	G
	C
	T

	// NumBases is the alphabet size.
	NumBases = 4
)

// Alphabet lists the symbols in Base order.
const Alphabet = "AGCT"

// GapChar marks a column where a sequence contributes no symbol.
const GapChar byte = '-'

// ParseBase maps an uppercase nucleotide to its Base.
// Lowercase and ambiguity codes are rejected.
func ParseBase(b byte) (Base, bool) {
	switch b {
	case 'A':
		return A, true
	case 'G':
		return G, true
	case 'C':
		return C, true
	case 'T':
		return T, true
	}

	return 0, false
}

// Byte returns the nucleotide letter of b.
func (b Base) Byte() byte {
	return Alphabet[b]
}

// encode converts seq into Base indices, reporting the first invalid byte.
// which is the 1-based sequence number used in the error.
// Complexity: O(len(seq)).
func encode(seq string, which int) ([]Base, error) {
	out := make([]Base, len(seq))
	for p := 0; p < len(seq); p++ {
		b, ok := ParseBase(seq[p])
		if !ok {
			return nil, symbolErrorf(which, p, seq[p])
		}
		out[p] = b
	}

	return out, nil
}

// SubstitutionTable scores one column holding a symbol from every sequence:
// t[x][y][z] is added when seq1, seq2 and seq3 contribute x, y and z.
// Being a fixed-size array, every one of the 64 triples is always defined.
type SubstitutionTable [NumBases][NumBases][NumBases]int

// DefaultTable returns the reference nucleotide table (A,G,C,T order).
// Identical triples score 0; every other triple scores between 1 and 3.
func DefaultTable() SubstitutionTable {
	return SubstitutionTable{
		// A
		{{0, 2, 2, 1}, {2, 2, 3, 3}, {2, 3, 2, 3}, {1, 3, 3, 1}},
		// G
		{{2, 2, 3, 3}, {2, 0, 1, 2}, {2, 1, 1, 3}, {3, 2, 3, 2}},
		// C
		{{2, 3, 2, 3}, {3, 1, 1, 3}, {2, 1, 0, 2}, {3, 3, 2, 2}},
		// T
		{{1, 3, 3, 1}, {3, 2, 3, 2}, {3, 3, 2, 2}, {1, 2, 2, 0}},
	}
}

// IdentityTable scores same for x==y==z and diff for every other triple.
func IdentityTable(same, diff int) SubstitutionTable {
	var t SubstitutionTable
	for x := 0; x < NumBases; x++ {
		for y := 0; y < NumBases; y++ {
			for z := 0; z < NumBases; z++ {
				if x == y && y == z {
					t[x][y][z] = same
				} else {
					t[x][y][z] = diff
				}
			}
		}
	}

	return t
}

// Cost returns the substitution score of the column (x, y, z).
// Complexity: O(1).
func (t SubstitutionTable) Cost(x, y, z Base) int {
	return t[x][y][z]
}

// Validate checks that every entry is non-negative.
func (t SubstitutionTable) Validate() error {
	for x := 0; x < NumBases; x++ {
		for y := 0; y < NumBases; y++ {
			for z := 0; z < NumBases; z++ {
				if t[x][y][z] < 0 {
					return fmt.Errorf("cost(%c,%c,%c)=%d is negative: %w",
						Alphabet[x], Alphabet[y], Alphabet[z], t[x][y][z], ErrBadScoring)
				}
			}
		}
	}

	return nil
}

// axisPermutations lists all orderings of three axes.
var axisPermutations = [6][3]int{
	{0, 1, 2}, {0, 2, 1}, {1, 0, 2}, {1, 2, 0}, {2, 0, 1}, {2, 1, 0},
}

// IsSymmetric reports whether the cost of a triple is independent of the
// order of its symbols.
func (t SubstitutionTable) IsSymmetric() bool {
	for x := 0; x < NumBases; x++ {
		for y := 0; y < NumBases; y++ {
			for z := 0; z < NumBases; z++ {
				v := [3]int{x, y, z}
				for _, p := range axisPermutations {
					if t[v[p[0]]][v[p[1]]][v[p[2]]] != t[x][y][z] {
						return false
					}
				}
			}
		}
	}

	return true
}

// Permute returns the table for reordered sequences: new sequence r is old
// sequence perm[r]. Aligning the reordered sequences under the permuted
// table yields the same optimal score.
// Returns ErrBadScoring if perm is not a permutation of {0,1,2}.
func (t SubstitutionTable) Permute(perm [3]int) (SubstitutionTable, error) {
	var seen [3]bool
	for _, p := range perm {
		if p < 0 || p > 2 || seen[p] {
			return SubstitutionTable{}, fmt.Errorf("permutation %v: %w", perm, ErrBadScoring)
		}
		seen[p] = true
	}

	var out SubstitutionTable
	var old [3]int
	for x := 0; x < NumBases; x++ {
		for y := 0; y < NumBases; y++ {
			for z := 0; z < NumBases; z++ {
				old[perm[0]], old[perm[1]], old[perm[2]] = x, y, z
				out[x][y][z] = t[old[0]][old[1]][old[2]]
			}
		}
	}

	return out, nil
}

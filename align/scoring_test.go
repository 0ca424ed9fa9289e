package align_test

import (
	"testing"

	"github.com/katalvlaran/trialign/align"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestParseBase checks the fixed A,G,C,T order and rejection of other bytes.
func TestParseBase(t *testing.T) {
	for want, ch := range []byte(align.Alphabet) {
		b, ok := align.ParseBase(ch)
		require.True(t, ok, "%c must parse", ch)
		assert.Equal(t, align.Base(want), b)
		assert.Equal(t, ch, b.Byte())
	}
	for _, ch := range []byte("acgtNU-* ") {
		_, ok := align.ParseBase(ch)
		assert.False(t, ok, "%q must be rejected", ch)
	}
}

// TestDefaultTable_Shape verifies the reference table is valid, zero on the
// diagonal and positive elsewhere.
func TestDefaultTable_Shape(t *testing.T) {
	tbl := align.DefaultTable()
	require.NoError(t, tbl.Validate())
	for x := align.Base(0); x < align.NumBases; x++ {
		for y := align.Base(0); y < align.NumBases; y++ {
			for z := align.Base(0); z < align.NumBases; z++ {
				if x == y && y == z {
					assert.Zero(t, tbl.Cost(x, y, z))
				} else {
					assert.Positive(t, tbl.Cost(x, y, z))
				}
			}
		}
	}
	// cost(A,G,C)=3 but cost(G,C,A)=2: the reference table is not fully symmetric.
	assert.False(t, tbl.IsSymmetric())
}

// TestIdentityTable_Symmetric covers IdentityTable and IsSymmetric.
func TestIdentityTable_Symmetric(t *testing.T) {
	tbl := align.IdentityTable(0, 2)
	assert.True(t, tbl.IsSymmetric())
	assert.Equal(t, 0, tbl.Cost(align.T, align.T, align.T))
	assert.Equal(t, 2, tbl.Cost(align.T, align.A, align.T))
}

// TestSubstitutionTable_ValidateNegative ensures negative entries are rejected.
func TestSubstitutionTable_ValidateNegative(t *testing.T) {
	tbl := align.DefaultTable()
	tbl[align.C][align.A][align.T] = -1
	assert.ErrorIs(t, tbl.Validate(), align.ErrBadScoring)
}

// TestPermute checks the axis mapping and rejection of non-permutations.
func TestPermute(t *testing.T) {
	tbl := align.DefaultTable()

	same, err := tbl.Permute([3]int{0, 1, 2})
	require.NoError(t, err)
	assert.Equal(t, tbl, same, "identity permutation")

	// new seq0 = old seq2, new seq1 = old seq0, new seq2 = old seq1
	p, err := tbl.Permute([3]int{2, 0, 1})
	require.NoError(t, err)
	for x := align.Base(0); x < align.NumBases; x++ {
		for y := align.Base(0); y < align.NumBases; y++ {
			for z := align.Base(0); z < align.NumBases; z++ {
				assert.Equal(t, tbl.Cost(y, z, x), p.Cost(x, y, z))
			}
		}
	}

	for _, bad := range [][3]int{{0, 0, 1}, {0, 1, 3}, {-1, 1, 2}} {
		_, err = tbl.Permute(bad)
		assert.ErrorIs(t, err, align.ErrBadScoring, "perm %v", bad)
	}
}

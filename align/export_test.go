package align

// Test bridge for white-box access from package align_test.

// SetWavefrontMinCells lowers the inline threshold so small inputs take the
// parallel path. The returned func restores the previous value.
func SetWavefrontMinCells(n int) (restore func()) {
	prev := wavefrontMinCells
	wavefrontMinCells = n

	return func() { wavefrontMinCells = prev }
}

// SetMove overwrites TB(i,j,k) to simulate a corrupted table.
func SetMove(t *Table, i, j, k int, m Move) {
	t.moves[t.offset(i, j, k)] = m
}

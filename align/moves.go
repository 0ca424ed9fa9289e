package align

// Move records which candidate produced the optimum of a lattice cell.
// GapX names the sequences that receive a gap in the emitted column; the
// remaining sequences each contribute their next symbol.
type Move uint8

// The declaration order is also the tie-break order of the fill: when
// several candidates reach the maximum, the earliest one wins.
const (
	None  Move = iota // origin; traceback stops here
	Match             // all three sequences advance
	Gap1              // gap in seq1; seq2 and seq3 advance
	Gap2              // gap in seq2; seq1 and seq3 advance
	Gap3              // gap in seq3; seq1 and seq2 advance
	Gap12             // gaps in seq1 and seq2; seq3 advances
	Gap13             // gaps in seq1 and seq3; seq2 advances
	Gap23             // gaps in seq2 and seq3; seq1 advances

	numMoves
)

// moveSteps holds, per move, how far each index steps back.
var moveSteps = [numMoves][3]int{
	None:  {0, 0, 0},
	Match: {1, 1, 1},
	Gap1:  {0, 1, 1},
	Gap2:  {1, 0, 1},
	Gap3:  {1, 1, 0},
	Gap12: {0, 0, 1},
	Gap13: {0, 1, 0},
	Gap23: {1, 0, 0},
}

var moveNames = [numMoves]string{
	None:  "none",
	Match: "match",
	Gap1:  "gap1",
	Gap2:  "gap2",
	Gap3:  "gap3",
	Gap12: "gap12",
	Gap13: "gap13",
	Gap23: "gap23",
}

// Valid reports whether m is one of the eight defined moves.
func (m Move) Valid() bool {
	return m < numMoves
}

// Steps returns how many symbols of seq1, seq2 and seq3 the move consumes
// (each 0 or 1). Invalid moves consume nothing.
func (m Move) Steps() (di, dj, dk int) {
	if !m.Valid() {
		return 0, 0, 0
	}
	s := moveSteps[m]

	return s[0], s[1], s[2]
}

// Gaps returns the number of gap characters the move writes into its column.
func (m Move) Gaps() int {
	if m == None || !m.Valid() {
		return 0
	}
	di, dj, dk := m.Steps()

	return 3 - di - dj - dk
}

// String implements fmt.Stringer.
func (m Move) String() string {
	if !m.Valid() {
		return "invalid"
	}

	return moveNames[m]
}

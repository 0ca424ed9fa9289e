package align

// Fill builds the score and move lattice for seq1, seq2 and seq3.
//
// Algorithm Outline:
//  1. Encode the three sequences; reject bytes outside {A,G,C,T}.
//  2. Size the lattice (n1+1)(n2+1)(n3+1); reject it above MaxCells.
//  3. Axes: F(i,0,0) = -2i·g via Gap23, F(0,j,0) = -2j·g via Gap13,
//     F(0,0,k) = -2k·g via Gap12. Every axis column holds two gap
//     characters.
//  4. Planes: each coordinate plane holding one zero index is a pairwise
//     Needleman–Wunsch over the two non-empty sequences, using only the three
//     moves that leave the zero index untouched.
//  5. Interior: the seven-candidate recurrence (see package doc), serial or
//     wavefront depending on Workers.
//
// Ties are broken by the declaration order of Move: the first candidate that
// reaches the maximum is kept.
//
// Errors:
//   - ErrBadScoring: negative gap penalty or table entry.
//   - ErrInvalidSymbol: a byte outside {A,G,C,T}; nothing is allocated.
//   - ErrTableTooLarge: lattice above MaxCells or overflowing int.
//
// Empty sequences are valid and reduce the problem to fewer dimensions.
//
// Complexity: O(n1·n2·n3) time and memory.
func Fill(seq1, seq2, seq3 string, opts ...Option) (*Table, error) {
	o := gatherOptions(opts)
	if err := o.validate(); err != nil {
		return nil, err
	}

	a, err := encode(seq1, 1)
	if err != nil {
		return nil, err
	}
	b, err := encode(seq2, 2)
	if err != nil {
		return nil, err
	}
	c, err := encode(seq3, 3)
	if err != nil {
		return nil, err
	}

	t, err := newTable(len(a), len(b), len(c), o.MaxCells)
	if err != nil {
		return nil, err
	}

	f := &filler{t: t, a: a, b: b, c: c, cost: &o.Table, gap: o.GapPenalty}
	f.fillAxes()
	f.fillPlanes()
	if o.Workers > 1 {
		if err = f.fillWavefront(o.Workers); err != nil {
			return nil, err
		}
	} else {
		f.fillInterior()
	}

	return t, nil
}

// filler carries the read-only inputs of one Fill call.
type filler struct {
	t       *Table
	a, b, c []Base
	cost    *SubstitutionTable
	gap     int
}

// fillAxes initializes the three single-axis lines. F(0,0,0)=0 and
// TB(0,0,0)=None are the zero values of the fresh buffers.
func (f *filler) fillAxes() {
	t := f.t
	g2 := 2 * f.gap
	for i := 1; i <= t.n1; i++ {
		off := t.offset(i, 0, 0)
		t.score[off] = -i * g2
		t.moves[off] = Gap23
	}
	for j := 1; j <= t.n2; j++ {
		off := t.offset(0, j, 0)
		t.score[off] = -j * g2
		t.moves[off] = Gap13
	}
	for k := 1; k <= t.n3; k++ {
		off := t.offset(0, 0, k)
		t.score[off] = -k * g2
		t.moves[off] = Gap12
	}
}

// fillPlanes runs the pairwise recurrence on the planes k=0, j=0 and i=0.
// On a plane the column always carries at least one gap (the empty side),
// so the "diagonal" step costs g and the two axis steps cost 2g.
func (f *filler) fillPlanes() {
	t := f.t
	g, g2 := f.gap, 2*f.gap
	sc, mv := t.score, t.moves

	// k = 0: seq1 × seq2 against an all-gap seq3.
	for i := 1; i <= t.n1; i++ {
		for j := 1; j <= t.n2; j++ {
			o := t.offset(i, j, 0)
			best, m := sc[o-t.si-t.sj]-g, Gap3
			if v := sc[o-t.sj] - g2; v > best {
				best, m = v, Gap13
			}
			if v := sc[o-t.si] - g2; v > best {
				best, m = v, Gap23
			}
			sc[o], mv[o] = best, m
		}
	}

	// j = 0: seq1 × seq3 against an all-gap seq2.
	for i := 1; i <= t.n1; i++ {
		for k := 1; k <= t.n3; k++ {
			o := t.offset(i, 0, k)
			best, m := sc[o-t.si-1]-g, Gap2
			if v := sc[o-1] - g2; v > best {
				best, m = v, Gap12
			}
			if v := sc[o-t.si] - g2; v > best {
				best, m = v, Gap23
			}
			sc[o], mv[o] = best, m
		}
	}

	// i = 0: seq2 × seq3 against an all-gap seq1.
	for j := 1; j <= t.n2; j++ {
		for k := 1; k <= t.n3; k++ {
			o := t.offset(0, j, k)
			best, m := sc[o-t.sj-1]-g, Gap1
			if v := sc[o-1] - g2; v > best {
				best, m = v, Gap12
			}
			if v := sc[o-t.sj] - g2; v > best {
				best, m = v, Gap13
			}
			sc[o], mv[o] = best, m
		}
	}
}

// fillInterior evaluates every cell with i, j, k ≥ 1 in lexicographic order.
func (f *filler) fillInterior() {
	t := f.t
	for i := 1; i <= t.n1; i++ {
		for j := 1; j <= t.n2; j++ {
			f.run(i, j, 1, t.n3)
		}
	}
}

// run evaluates cells (i, j, kLo..kHi). All predecessors must be final.
// Candidates are tested in Move order with a strict comparison, which
// implements the first-wins tie-break.
func (f *filler) run(i, j, kLo, kHi int) {
	t := f.t
	si, sj := t.si, t.sj
	g, g2 := f.gap, 2*f.gap
	sc, mv := t.score, t.moves
	row := &f.cost[f.a[i-1]][f.b[j-1]]

	o := t.offset(i, j, kLo)
	for k := kLo; k <= kHi; k, o = k+1, o+1 {
		best, m := sc[o-si-sj-1]+row[f.c[k-1]], Match
		if v := sc[o-sj-1] - g; v > best { // (i, j-1, k-1)
			best, m = v, Gap1
		}
		if v := sc[o-si-1] - g; v > best { // (i-1, j, k-1)
			best, m = v, Gap2
		}
		if v := sc[o-si-sj] - g; v > best { // (i-1, j-1, k)
			best, m = v, Gap3
		}
		if v := sc[o-1] - g2; v > best { // (i, j, k-1)
			best, m = v, Gap12
		}
		if v := sc[o-sj] - g2; v > best { // (i, j-1, k)
			best, m = v, Gap13
		}
		if v := sc[o-si] - g2; v > best { // (i-1, j, k)
			best, m = v, Gap23
		}
		sc[o], mv[o] = best, m
	}
}

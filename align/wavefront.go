package align

import "golang.org/x/sync/errgroup"

// wavefrontMinCells is the plane size below which a plane is filled inline.
var wavefrontMinCells = 4096

// fillWavefront fills the interior plane by plane, d = i+j+k = 3..n1+n2+n3.
// Every predecessor of a cell on plane d lies on plane d-1, d-2 or d-3, so
// the cells of one plane are independent: they are split into i-ranges and
// run on at most workers goroutines. Wait is the barrier between planes.
// Each cell is written by exactly one goroutine, hence no locking.
// Produces a table identical to fillInterior.
func (f *filler) fillWavefront(workers int) error {
	t := f.t
	if t.n1 == 0 || t.n2 == 0 || t.n3 == 0 {
		return nil
	}

	for d := 3; d <= t.n1+t.n2+t.n3; d++ {
		iLo, iHi := max(1, d-t.n2-t.n3), min(t.n1, d-2)
		if iLo > iHi {
			continue
		}
		if f.planeCells(d, iLo, iHi) < wavefrontMinCells {
			f.plane(d, iLo, iHi)
			continue
		}

		var g errgroup.Group
		g.SetLimit(workers)
		chunk := (iHi - iLo + workers) / workers
		for lo := iLo; lo <= iHi; lo += chunk {
			lo, hi := lo, min(lo+chunk-1, iHi)
			g.Go(func() error {
				f.plane(d, lo, hi)

				return nil
			})
		}
		if err := g.Wait(); err != nil {
			return err
		}
	}

	return nil
}

// jRange bounds j on plane d for a given i, keeping k = d-i-j in [1, n3].
func (f *filler) jRange(d, i int) (lo, hi int) {
	return max(1, d-i-f.t.n3), min(f.t.n2, d-i-1)
}

// planeCells counts the interior cells of plane d with iLo ≤ i ≤ iHi.
func (f *filler) planeCells(d, iLo, iHi int) int {
	n := 0
	for i := iLo; i <= iHi; i++ {
		if lo, hi := f.jRange(d, i); hi >= lo {
			n += hi - lo + 1
		}
	}

	return n
}

// plane evaluates the cells of plane d with iLo ≤ i ≤ iHi.
func (f *filler) plane(d, iLo, iHi int) {
	for i := iLo; i <= iHi; i++ {
		lo, hi := f.jRange(d, i)
		for j := lo; j <= hi; j++ {
			k := d - i - j
			f.run(i, j, k, k)
		}
	}
}

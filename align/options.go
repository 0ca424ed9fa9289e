// SPDX-License-Identifier: MIT

// Package align: functional configuration for Fill and Align.
//
// Design goals:
//   - No global state: the table and gap penalty travel with every call, so
//     different parameter sets may run concurrently.
//   - Validation happens once, in Fill, and reports ErrBadScoring.
package align

import "runtime"

// Defaults.
const (
	// DefaultGapPenalty is charged once per gap character.
	DefaultGapPenalty = 4

	// DefaultMaxCells caps (n1+1)(n2+1)(n3+1). At one int and one Move per
	// cell this is about 2.4 GB on 64-bit platforms.
	DefaultMaxCells = 1 << 28

	// DefaultWorkers selects the serial fill.
	DefaultWorkers = 1
)

// Options holds the parameters of one alignment call.
type Options struct {
	// Table scores columns without gaps.
	Table SubstitutionTable
	// GapPenalty is subtracted once per gap character; must be ≥ 0.
	GapPenalty int
	// Workers > 1 enables the wavefront fill with that many goroutines.
	Workers int
	// MaxCells bounds the lattice size; ≤ 0 removes the bound (int overflow
	// is still rejected).
	MaxCells int
}

// DefaultOptions returns DefaultTable, DefaultGapPenalty, a serial fill and
// DefaultMaxCells.
func DefaultOptions() Options {
	return Options{
		Table:      DefaultTable(),
		GapPenalty: DefaultGapPenalty,
		Workers:    DefaultWorkers,
		MaxCells:   DefaultMaxCells,
	}
}

// Option mutates Options.
type Option func(*Options)

// WithTable sets the substitution table.
func WithTable(t SubstitutionTable) Option {
	return func(o *Options) { o.Table = t }
}

// WithGapPenalty sets the linear gap penalty.
func WithGapPenalty(g int) Option {
	return func(o *Options) { o.GapPenalty = g }
}

// WithWorkers sets the number of wavefront workers. n ≤ 0 means
// runtime.GOMAXPROCS(0); n == 1 is the serial fill.
func WithWorkers(n int) Option {
	return func(o *Options) {
		if n <= 0 {
			n = runtime.GOMAXPROCS(0)
		}
		o.Workers = n
	}
}

// WithMaxCells sets the lattice size limit.
func WithMaxCells(n int) Option {
	return func(o *Options) { o.MaxCells = n }
}

// WithOptions replaces all parameters at once.
func WithOptions(src Options) Option {
	return func(o *Options) { *o = src }
}

// gatherOptions applies opts over DefaultOptions.
func gatherOptions(opts []Option) Options {
	o := DefaultOptions()
	for _, fn := range opts {
		if fn != nil {
			fn(&o)
		}
	}

	return o
}

// validate enforces the scoring invariants.
func (o Options) validate() error {
	if o.GapPenalty < 0 {
		return scoringErrorf("gap penalty %d is negative", o.GapPenalty)
	}

	return o.Table.Validate()
}

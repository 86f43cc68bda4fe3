// Package fill defines strategies, options and sentinel errors for the
// fill subpackage of github.com/lowpolyghost/breach.
package fill

import (
	"errors"
)

// Sentinel errors for fill operations.
var (
	// ErrNilGrid indicates a nil grid.
	ErrNilGrid = errors.New("fill: grid must not be nil")
	// ErrEmptyPool indicates the code pool has no entries.
	ErrEmptyPool = errors.New("fill: code pool must not be empty")
	// ErrBadStrategy indicates an unknown fill strategy.
	ErrBadStrategy = errors.New("fill: unknown strategy")
	// ErrBadDensity indicates a density outside [0, 1].
	ErrBadDensity = errors.New("fill: density must lie in [0, 1]")
)

// Strategy selects how non-path cells are populated.
type Strategy int

const (
	// Forgiving seeds path codes everywhere with probability Density.
	Forgiving Strategy = iota
	// Moderate is Forgiving with the density read as a red-herring rate,
	// tuned lower by the difficulty table.
	Moderate
	// Deceptive plants sequence-bearing decoys next to the path and keeps
	// far cells free of sequence codes when the pool allows it.
	Deceptive
)

// Options carries the tunables of one fill run.
//
// Strategy     – Forgiving, Moderate or Deceptive.
// Density      – Forgiving/Moderate: per-cell chance of a path code.
// DecoyDensity – Deceptive: per-adjacent-cell chance of a sequence code.
type Options struct {
	Strategy     Strategy
	Density      float64
	DecoyDensity float64
}

// DefaultOptions returns a Forgiving fill with a mild density, suitable
// for quick experiments.
func DefaultOptions() Options {
	return Options{Strategy: Forgiving, Density: 0.35}
}

// validate checks opts against the sentinel contracts above.
func (o Options) validate() error {
	switch o.Strategy {
	case Forgiving, Moderate, Deceptive:
	default:
		return ErrBadStrategy
	}
	if o.Density < 0 || o.Density > 1 || o.DecoyDensity < 0 || o.DecoyDensity > 1 {
		return ErrBadDensity
	}

	return nil
}

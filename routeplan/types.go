package routeplan

import (
	"errors"

	"github.com/lastmile-labs/tourcore/tourmatrix"
)

// Sentinel errors returned by the solvers in this package.
var (
	// ErrNoPoints indicates Solve was called with an empty point set.
	ErrNoPoints = errors.New("routeplan: no points to route")

	// ErrMissingPair indicates a pickup or delivery has no matching partner
	// in the supplied point set.
	ErrMissingPair = errors.New("routeplan: pickup/delivery missing its pair")

	// ErrMissingLeg indicates the matrix lacks a travel time for a pair this
	// solver needed; this should not happen after a successful matrix Fill.
	ErrMissingLeg = errors.New("routeplan: matrix missing required leg")

	// ErrInfeasible indicates no precedence-valid next point exists during
	// greedy construction (V2).
	ErrInfeasible = errors.New("routeplan: no feasible next point")

	// ErrTooManyPoints names a point count above the exact-search threshold.
	// No solver in this package returns it: SolveV1 runs at any size, and
	// Solve sends point sets above its threshold to SolveV2.
	ErrTooManyPoints = errors.New("routeplan: point count exceeds exact-search threshold")
)

// Strategy selects which TSP construction/refinement approach Solve uses.
type Strategy int

const (
	// StrategyV0 produces any feasible order; no cost minimization.
	StrategyV0 Strategy = iota

	// StrategyV1 is exact depth-first branch-and-bound.
	StrategyV1

	// StrategyV2 is greedy nearest-neighbor construction plus 2-opt.
	StrategyV2
)

// DefaultExactThreshold is the largest point count for which V1's exhaustive
// search is used by the Solve dispatcher; above it, Solve delegates to V2.
const DefaultExactThreshold = 16

// Options tunes Solve's strategy selection.
type Options struct {
	// ExactThreshold is the |P| cutoff above which Solve uses V2 instead of
	// V1. Default: DefaultExactThreshold.
	ExactThreshold int
}

// DefaultOptions returns Options with the default exact-search cutoff. Use
// this as a starting point for further functional-options overrides.
func DefaultOptions() Options {
	return Options{ExactThreshold: DefaultExactThreshold}
}

// Option represents a functional option for configuring Solve.
type Option func(*Options)

// WithExactThreshold overrides the |P| cutoff above which Solve delegates to
// V2 instead of running V1's exhaustive search.
func WithExactThreshold(n int) Option {
	return func(o *Options) {
		o.ExactThreshold = n
	}
}

// Result is the outcome of a successful solve.
type Result struct {
	// Sequence is [warehouse, ...every point exactly once, warehouse].
	Sequence []*tourmatrix.TourPoint

	// Cost is the total travel time of Sequence, in seconds.
	Cost int64
}

// Package routeplan - public dispatcher selecting between V1 and V2.
package routeplan

import "github.com/lastmile-labs/tourcore/tourmatrix"

// Solve picks a strategy based on |points| and the configured ExactThreshold
// (chooseStrategy = |P| <= threshold ? V1 : V2), runs it, and returns the
// resulting sequence and cost. It accepts functional options to customize
// the threshold (WithExactThreshold); with none given, DefaultOptions applies.
//
// Complexity: see SolveV1/SolveV2.
func Solve(warehouse *tourmatrix.TourPoint, points []*tourmatrix.TourPoint, m *tourmatrix.Matrix, opts ...Option) (*Result, error) {
	if len(points) == 0 {
		return nil, ErrNoPoints
	}

	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}

	if len(points) <= cfg.ExactThreshold {
		return SolveV1(warehouse, points, m)
	}

	return SolveV2(warehouse, points, m)
}

// SolveDiagnostic always runs V0, exposing a feasible (non cost-minimized)
// baseline for debugging. Returns the sequence and its actual cost under m.
func SolveDiagnostic(warehouse *tourmatrix.TourPoint, points []*tourmatrix.TourPoint, m *tourmatrix.Matrix) (*Result, error) {
	seq, err := SolveV0(warehouse, points)
	if err != nil {
		return nil, err
	}

	cost, err := sequenceCost(seq, m)
	if err != nil {
		return nil, err
	}

	return &Result{Sequence: seq, Cost: cost}, nil
}

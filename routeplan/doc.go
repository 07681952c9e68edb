// Package routeplan solves the precedence-constrained Traveling Salesman
// Problem over a tourmatrix.Matrix: given a warehouse and a set of
// pickup/delivery points, produce an ordered visit sequence that starts and
// ends at the warehouse, visits every pickup before its matching delivery,
// and minimizes total travel time.
//
// Three strategies are available:
//
//	V0 - any feasible order (pickup immediately followed by delivery); used
//	     only for diagnostics, cost is not minimized.
//	V1 - exact depth-first branch-and-bound, used when the point count is
//	     small enough (|P| <= 16) for exhaustive search to be practical.
//	V2 - greedy nearest-neighbor construction followed by 2-opt refinement,
//	     used above that threshold.
//
// Solve is the default entry point and dispatches between V1 and V2
// according to the point count; SolveDiagnostic always runs V0.
//
// File layout:
//   - types.go   - Options, Strategy, Result, sentinel errors.
//   - cost.go    - sequence cost/validation helpers shared by all strategies.
//   - v0.go      - feasible-only construction.
//   - v1.go      - exact branch-and-bound.
//   - v2.go      - greedy nearest-neighbor + 2-opt.
//   - solve.go   - public dispatcher.
package routeplan

// Package tourmatrix precomputes and caches the all-pairs routed "legs"
// between a warehouse and a set of pickup/delivery visit points.
//
// A Matrix is built once per planning session (via Fill) and is read-only
// afterward: travelTime[(u,v)] and legs[(u,v)] are populated for every
// ordered pair of distinct points, keyed by the underlying node ids so that
// regenerating TourPoints for the same demands reuses the same cache.
//
// Fill is all-or-nothing: if any ordered pair has no path in the underlying
// road graph, Fill returns a hard failure and no Matrix is produced. Callers
// must abandon the planning attempt rather than work from a partial matrix.
//
// File layout:
//   - types.go   - TourPoint, Leg, Demand, Kind, sentinel errors.
//   - matrix.go  - Matrix, Fill, accessors.
package tourmatrix

// Package pathfind computes shortest paths over a road.RoadGraph.
//
// Two algorithms are offered, selected by Algorithm:
//
//	Dijkstra — classic single-source shortest paths, early-terminated at the
//	           target. Always optimal.
//	AStar    — same edge weights, guided by an admissible planar-Euclidean
//	           heuristic projecting latitude/longitude differences to meters.
//	           Near-optimal; see astar.go's file comment for the bound.
//
// Both algorithms treat RoadGraph.Neighbors/GetEdgesFrom's bidirectional
// traversal as given (segments are walked in either direction regardless of
// their stored orientation).
//
// Travel time is derived from distance via a fixed courier speed of 15 km/h
// (TravelTimeSeconds) - a core invariant of the domain, not a per-call option.
//
// Organized as:
//
//	types.go     — Algorithm, Result, sentinel errors, speed constant.
//	heap.go      — shared lazy-deletion priority queue.
//	dijkstra.go  — Dijkstra's algorithm.
//	astar.go     — A* with the planar-Euclidean heuristic.
package pathfind

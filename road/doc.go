// Package road is the street-network foundation of the tour-planning core.
//
// It holds the directed, weighted graph of map intersections (Node) and street
// segments (Segment), plus the single designated warehouse node that every
// computed tour departs from and returns to.
//
// Traversal is deliberately bidirectional: Neighbors and GetEdgesFrom treat
// every Segment as usable in either direction, even though segments are stored
// as one-way records and bidirectional streets appear as two opposite Segments.
// This mirrors the reference routing engine this core was distilled from and is
// required for connectivity on real street data (see doc comment on Neighbors).
//
// Organized as:
//
//	types.go  — Node, Segment, sentinel errors.
//	graph.go  — RoadGraph storage and query API.
//	ingest.go — constructing a RoadGraph from already-parsed records.
//
//	go get github.com/lastmile-labs/tourcore/road
package road

// Package road - RoadGraph storage and query API.
//
// RoadGraph is the sole owner of Node and Segment data for its lifetime. It
// is built once (see Ingest) and never mutated afterward, so it carries no
// locks: there is nothing to race on.
//
// Determinism: GetEdgesFrom returns segments in the insertion order recorded
// at Ingest time (the same order SegmentBetween's "first in insertion order"
// tie-break uses); Neighbors returns deduplicated node IDs sorted ascending.
package road

import "sort"

// RoadGraph is a directed, weighted graph of street intersections and segments,
// with one designated warehouse node. All read operations are total: a missing
// ID yields a false/zero "absent" result rather than an error.
type RoadGraph struct {
	nodes     map[string]*Node
	segments  []*Segment
	warehouse string

	// incident[id] lists, in insertion order, every Segment touching id
	// regardless of direction - the basis for both Neighbors and GetEdgesFrom.
	incident map[string][]*Segment
}

// GetNode returns the node with the given ID, or (nil, false) if absent.
//
// Complexity: O(1).
func (g *RoadGraph) GetNode(id string) (*Node, bool) {
	n, ok := g.nodes[id]
	return n, ok
}

// Warehouse returns the designated warehouse node.
//
// Complexity: O(1).
func (g *RoadGraph) Warehouse() *Node {
	n := g.nodes[g.warehouse]
	return n
}

// Neighbors returns the set of node IDs reachable from id by a single segment,
// treating every segment as bidirectional for traversal - a deliberate design
// choice required by the shortest-path engine, since street connectivity would
// otherwise break on any road that is legitimately one-way in storage but
// walkable in either direction by a courier. Returns (nil, false) if id is not
// present in the graph.
//
// The result is deduplicated and sorted for deterministic iteration by callers
// that do not themselves impose an order (e.g. test assertions); algorithms
// that care about discovery order should use GetEdgesFrom instead.
//
// Complexity: O(d log d) where d is the degree of id.
func (g *RoadGraph) Neighbors(id string) ([]string, bool) {
	if _, ok := g.nodes[id]; !ok {
		return nil, false
	}

	segs := g.incident[id]
	seen := make(map[string]struct{}, len(segs))
	out := make([]string, 0, len(segs))
	for _, s := range segs {
		other := s.To
		if other == id {
			other = s.From
		}
		if _, dup := seen[other]; dup {
			continue
		}
		seen[other] = struct{}{}
		out = append(out, other)
	}
	sort.Strings(out)

	return out, true
}

// SegmentBetween returns any segment whose endpoints are {a,b} in either
// orientation, breaking ties by first occurrence in insertion order. Returns
// (nil, false) if no such segment exists or either node is absent.
//
// Complexity: O(d) where d is the degree of a.
func (g *RoadGraph) SegmentBetween(a, b string) (*Segment, bool) {
	if _, ok := g.nodes[a]; !ok {
		return nil, false
	}
	if _, ok := g.nodes[b]; !ok {
		return nil, false
	}

	for _, s := range g.incident[a] {
		if (s.From == a && s.To == b) || (s.From == b && s.To == a) {
			return s, true
		}
	}

	return nil, false
}

// GetEdgesFrom returns every segment incident to id (in either direction, in
// insertion order), regardless of the segment's own directedness. Returns
// (nil, false) if id is absent from the graph.
//
// Complexity: O(d).
func (g *RoadGraph) GetEdgesFrom(id string) ([]*Segment, bool) {
	if _, ok := g.nodes[id]; !ok {
		return nil, false
	}

	out := make([]*Segment, len(g.incident[id]))
	copy(out, g.incident[id])

	return out, true
}

// Nodes returns every node in the graph, sorted by ID for deterministic iteration.
//
// Complexity: O(V log V).
func (g *RoadGraph) Nodes() []*Node {
	out := make([]*Node, 0, len(g.nodes))
	for _, n := range g.nodes {
		out = append(out, n)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })

	return out
}

// Segments returns every segment in the graph, in insertion order.
//
// Complexity: O(E).
func (g *RoadGraph) Segments() []*Segment {
	out := make([]*Segment, len(g.segments))
	copy(out, g.segments)

	return out
}

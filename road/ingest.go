// Package road - constructing a RoadGraph from already-parsed records.
//
// Ingest is the core's constructor contract. It is not a deserializer: it
// accepts records an external XML/JSON loader has already produced, and
// rejects inputs whose shape violates the graph's invariants.
package road

import "fmt"

// Ingest builds a RoadGraph from node and segment records plus a warehouse
// node ID. Every segment's origin and destination must resolve to a supplied
// node record; violations are rejected here rather than producing a
// partially-built graph.
//
// Segment IDs are synthesized deterministically as "s<index>" in input order;
// callers that already have stable segment identifiers of their own should
// track the mapping externally (Ingest does not echo input indices back).
//
// Errors:
//   - ErrEmptyNodeID if any node record has an empty ID.
//   - ErrDuplicateNodeID if two node records share an ID.
//   - ErrNegativeLength if any segment's length is negative.
//   - ErrDanglingSegment if a segment's origin or destination is not among nodes.
//   - ErrNoWarehouse if warehouseID does not resolve to a supplied node.
//
// Complexity: O(V + E).
func Ingest(nodes []NodeRecord, segments []SegmentRecord, warehouseID string) (*RoadGraph, error) {
	g := &RoadGraph{
		nodes:    make(map[string]*Node, len(nodes)),
		segments: make([]*Segment, 0, len(segments)),
		incident: make(map[string][]*Segment, len(nodes)),
	}

	for _, nr := range nodes {
		if nr.ID == "" {
			return nil, ErrEmptyNodeID
		}
		if _, dup := g.nodes[nr.ID]; dup {
			return nil, fmt.Errorf("%w: %q", ErrDuplicateNodeID, nr.ID)
		}
		g.nodes[nr.ID] = &Node{ID: nr.ID, Lat: nr.Lat, Lon: nr.Lon}
	}

	for i, sr := range segments {
		if sr.Length < 0 {
			return nil, fmt.Errorf("%w: segment %d", ErrNegativeLength, i)
		}
		if _, ok := g.nodes[sr.OriginID]; !ok {
			return nil, fmt.Errorf("%w: origin %q", ErrDanglingSegment, sr.OriginID)
		}
		if _, ok := g.nodes[sr.DestinationID]; !ok {
			return nil, fmt.Errorf("%w: destination %q", ErrDanglingSegment, sr.DestinationID)
		}

		s := &Segment{
			ID:     fmt.Sprintf("s%d", i),
			From:   sr.OriginID,
			To:     sr.DestinationID,
			Name:   sr.StreetName,
			Length: sr.Length,
		}
		g.segments = append(g.segments, s)
		g.incident[s.From] = append(g.incident[s.From], s)
		if s.To != s.From {
			g.incident[s.To] = append(g.incident[s.To], s)
		}
	}

	if _, ok := g.nodes[warehouseID]; !ok {
		return nil, ErrNoWarehouse
	}
	g.warehouse = warehouseID

	return g, nil
}

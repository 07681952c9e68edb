// Package road - core types and sentinel errors for the street-network graph.
//
// Errors:
//
//	ErrEmptyNodeID       - a node record has an empty ID.
//	ErrDuplicateNodeID   - two node records share an ID.
//	ErrDanglingSegment   - a segment references a node ID absent from the graph.
//	ErrNegativeLength    - a segment's length is negative.
//	ErrNoWarehouse       - the designated warehouse ID is not present among the nodes.
package road

import "errors"

// Sentinel errors returned while building or querying a RoadGraph.
var (
	// ErrEmptyNodeID indicates a node record was supplied with an empty ID.
	ErrEmptyNodeID = errors.New("road: node ID is empty")

	// ErrDuplicateNodeID indicates two node records share the same ID.
	ErrDuplicateNodeID = errors.New("road: duplicate node ID")

	// ErrDanglingSegment indicates a segment's origin or destination does not
	// resolve to any node in the graph being built.
	ErrDanglingSegment = errors.New("road: segment endpoint not found in graph")

	// ErrNegativeLength indicates a segment was given a negative length.
	ErrNegativeLength = errors.New("road: segment length is negative")

	// ErrNoWarehouse indicates the warehouse node ID does not resolve to any
	// node present in the graph being built.
	ErrNoWarehouse = errors.New("road: warehouse node not found")
)

// Node is a map intersection. Immutable after construction.
type Node struct {
	// ID uniquely identifies this Node within its RoadGraph. Compared only for
	// equality; callers must not assume any particular encoding.
	ID string

	// Lat and Lon are the node's geographic coordinates in decimal degrees (WGS84).
	Lat float64
	Lon float64
}

// Segment is a directed street edge between two Nodes. Immutable after
// construction. Bidirectional streets are represented as two Segments with
// swapped From/To, not as a single undirected record.
type Segment struct {
	// ID uniquely identifies this Segment within its RoadGraph.
	ID string

	// From and To are the origin and destination Node IDs.
	From string
	To   string

	// Name is the human-readable street name (not used by routing itself).
	Name string

	// Length is the segment's length in meters. Always non-negative.
	Length float64
}

// NodeRecord is the external, pre-parsed shape of a node used when building a
// RoadGraph (see Ingest). It is identical in field layout to Node; kept as a
// distinct type so callers never need to know Node's zero value is meaningful.
type NodeRecord struct {
	ID  string
	Lat float64
	Lon float64
}

// SegmentRecord is the external, pre-parsed shape of a segment used when
// building a RoadGraph (see Ingest).
type SegmentRecord struct {
	OriginID      string
	DestinationID string
	StreetName    string
	Length        float64
}

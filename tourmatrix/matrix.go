// Package tourmatrix - Matrix construction: all-pairs leg cache.
//
// Fill invokes pathfind.ShortestPath for every ordered pair of distinct
// points and caches the resulting Leg plus its travel time, keyed by the
// ordered pair of underlying node ids. This is deliberately O(k²) calls for
// k points (warehouse + 2*demands); tour sizes in this domain are small
// enough (tens of stops) that the quadratic cost is negligible next to the
// shortest-path work itself.
//
// Complexity: O(k² · (V+E) log V) time, O(k² · pathLength) space for the
// cached legs.
package tourmatrix

import (
	"sort"

	"github.com/lastmile-labs/tourcore/pathfind"
	"github.com/lastmile-labs/tourcore/road"
)

// legKey is the ordered pair of node ids identifying a cached leg.
type legKey struct {
	From string
	To   string
}

// Matrix is the read-only, write-once all-pairs leg cache for one planning
// session. Not shared across sessions using a different algorithm or graph.
type Matrix struct {
	travelTime map[legKey]int64
	legs       map[legKey]*Leg

	// precedence maps a delivery's node id to its matching pickup's node id.
	precedence map[string]string

	points []*TourPoint
}

// Fill builds a Matrix over warehouse plus points, using algo for every
// pairwise shortest path. Points must have unique node ids and must not
// include the warehouse itself. Fill is all-or-nothing: if any ordered pair
// lacks a path, it returns ErrUnreachablePair and no Matrix.
//
// Complexity: see package doc.
func Fill(g *road.RoadGraph, warehouse *TourPoint, points []*TourPoint, algo pathfind.Algorithm) (*Matrix, error) {
	if g == nil {
		return nil, ErrNilGraph
	}
	if len(points) == 0 {
		return nil, ErrNoPoints
	}

	all := make([]*TourPoint, 0, len(points)+1)
	all = append(all, warehouse)
	all = append(all, points...)

	seen := make(map[string]bool, len(all))
	for _, p := range all {
		if seen[p.Node.ID] {
			return nil, ErrDuplicatePoint
		}
		seen[p.Node.ID] = true
	}

	// Sort a stable copy of node ids so iteration order (and therefore any
	// observable tie-break during Fill) is deterministic regardless of the
	// order callers assembled points in.
	ids := make([]string, len(all))
	for i, p := range all {
		ids[i] = p.Node.ID
	}
	sort.Strings(ids)

	byNodeID := make(map[string]*TourPoint, len(all))
	for _, p := range all {
		byNodeID[p.Node.ID] = p
	}

	m := &Matrix{
		travelTime: make(map[legKey]int64, len(ids)*(len(ids)-1)),
		legs:       make(map[legKey]*Leg, len(ids)*(len(ids)-1)),
		precedence: make(map[string]string),
		points:     all,
	}

	for _, fromID := range ids {
		for _, toID := range ids {
			if fromID == toID {
				continue
			}

			res, ok, err := pathfind.ShortestPath(g, fromID, toID, algo)
			if err != nil {
				return nil, err
			}
			if !ok {
				return nil, ErrUnreachablePair
			}

			leg := &Leg{
				From:         byNodeID[fromID],
				To:           byNodeID[toID],
				PathNodes:    res.PathNodes,
				PathSegments: res.Segments,
				Distance:     res.Distance,
				TravelTime:   pathfind.TravelTimeSeconds(res.Distance),
			}
			key := legKey{From: fromID, To: toID}
			m.travelTime[key] = leg.TravelTime
			m.legs[key] = leg
		}
	}

	for _, p := range points {
		if p.Kind == KindDelivery && p.RelatedNodeID != "" {
			m.precedence[p.Node.ID] = p.RelatedNodeID
		}
	}

	return m, nil
}

// TravelTime returns the cached travel time in seconds for the ordered pair
// (from, to), and whether it is present.
func (m *Matrix) TravelTime(from, to string) (int64, bool) {
	tt, ok := m.travelTime[legKey{From: from, To: to}]
	return tt, ok
}

// Leg returns the cached Leg for the ordered pair (from, to), and whether it
// is present.
func (m *Matrix) Leg(from, to string) (*Leg, bool) {
	leg, ok := m.legs[legKey{From: from, To: to}]
	return leg, ok
}

// PickupOf returns the pickup node id matching the given delivery node id,
// and whether the delivery is known to this matrix.
func (m *Matrix) PickupOf(deliveryNodeID string) (string, bool) {
	pickup, ok := m.precedence[deliveryNodeID]
	return pickup, ok
}

// Precedence returns the full delivery-node-id -> pickup-node-id map. The
// returned map must not be mutated by callers.
func (m *Matrix) Precedence() map[string]string {
	return m.precedence
}

// Points returns the warehouse plus every point this matrix was built over,
// in the stable order Fill assembled them.
func (m *Matrix) Points() []*TourPoint {
	return m.points
}

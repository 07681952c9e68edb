// Package routeplan - sequence cost and precedence validation shared by all
// three strategies. Cost summation and invariant checking are kept as small,
// allocation-light, side-effect-free helpers so every solver can call them
// identically.
package routeplan

import (
	"github.com/lastmile-labs/tourcore/tourmatrix"
)

// sequenceCost sums the travel time of every consecutive leg in seq using m.
// Returns ErrMissingLeg if any consecutive pair lacks a cached travel time
// (should not happen after a successful Fill).
//
// Complexity: O(len(seq)).
func sequenceCost(seq []*tourmatrix.TourPoint, m *tourmatrix.Matrix) (int64, error) {
	var total int64
	for i := 0; i+1 < len(seq); i++ {
		tt, ok := m.TravelTime(seq[i].Node.ID, seq[i+1].Node.ID)
		if !ok {
			return 0, ErrMissingLeg
		}
		total += tt
	}

	return total, nil
}

// validatePrecedence checks that seq starts and ends at a Warehouse point
// and that every Delivery appears after its matching Pickup. It does not
// check that each point appears exactly once.
func validatePrecedence(seq []*tourmatrix.TourPoint) bool {
	if len(seq) < 2 {
		return false
	}
	if seq[0].Kind != tourmatrix.KindWarehouse || seq[len(seq)-1].Kind != tourmatrix.KindWarehouse {
		return false
	}

	visitedAt := make(map[string]int, len(seq))
	for i, p := range seq {
		visitedAt[p.Node.ID] = i
	}

	for i, p := range seq {
		if p.Kind != tourmatrix.KindDelivery {
			continue
		}
		pickupIdx, ok := visitedAt[p.RelatedNodeID]
		if !ok || pickupIdx >= i {
			return false
		}
	}

	return true
}

// byNodeID indexes points by their node id for O(1) pair lookup.
func byNodeID(points []*tourmatrix.TourPoint) map[string]*tourmatrix.TourPoint {
	m := make(map[string]*tourmatrix.TourPoint, len(points))
	for _, p := range points {
		m[p.Node.ID] = p
	}

	return m
}

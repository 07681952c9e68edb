// Package routeplan - V0: any feasible order, no cost minimization.
//
// V0 iterates the supplied points, and for each Pickup it has not yet
// emitted, appends the Pickup immediately followed by its matching
// Delivery. Iteration order over points is the caller's order, so V0 is
// deterministic given a deterministic point list - it exists purely as a
// debugging/baseline strategy, not a production default.
package routeplan

import "github.com/lastmile-labs/tourcore/tourmatrix"

// SolveV0 produces any precedence-valid order of points. It does not consult
// a Matrix and therefore cannot compute a cost; callers that need a cost
// should sum it separately via a Matrix.
//
// Complexity: O(n).
func SolveV0(warehouse *tourmatrix.TourPoint, points []*tourmatrix.TourPoint) ([]*tourmatrix.TourPoint, error) {
	if len(points) == 0 {
		return nil, ErrNoPoints
	}

	index := byNodeID(points)
	seq := make([]*tourmatrix.TourPoint, 0, len(points)+2)
	seq = append(seq, warehouse)

	for _, p := range points {
		if p.Kind != tourmatrix.KindPickup {
			continue
		}
		delivery, ok := index[p.RelatedNodeID]
		if !ok || delivery.Kind != tourmatrix.KindDelivery {
			return nil, ErrMissingPair
		}
		seq = append(seq, p, delivery)
	}
	seq = append(seq, warehouse)

	if !validatePrecedence(seq) {
		return nil, ErrMissingPair
	}

	return seq, nil
}

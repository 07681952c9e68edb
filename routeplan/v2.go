// Package routeplan - V2: greedy nearest-neighbor construction + 2-opt.
//
// Phase A builds an initial precedence-valid tour by repeatedly advancing to
// the cheapest reachable unvisited point (a delivery is reachable only once
// its pickup has been visited). Phase B repeatedly scans every non-adjacent
// edge pair, reverses the best strictly-improving candidate (most negative
// delta, below a 1e-9 tolerance) that keeps the tour precedence-valid, and
// repeats until no improving move exists. Uses a best-improvement-per-pass
// scan plus a precedence feasibility check before accepting a move.
//
// Complexity: O(n²) construction; each accepted 2-opt move costs O(n³) in
// the worst case (O(n²) candidates scanned, each improving one checked for
// precedence in O(n)).
package routeplan

import "github.com/lastmile-labs/tourcore/tourmatrix"

// twoOptTolerance is the minimal strictly-negative delta accepted as an
// improving move.
const twoOptTolerance = 1e-9

// greedyNearestNeighbor builds a precedence-valid tour over indices
// [0,n) starting from the warehouse, using startCost(i) for the warehouse's
// outgoing edges and tt(i,j) for point-to-point edges. isDelivery[i] reports
// whether index i is a delivery; pairIdx[i] is the index of its paired point.
//
// Complexity: O(n²).
func greedyNearestNeighbor(n int, startCost func(i int) int64, tt func(i, j int) int64, pairIdx []int, isDelivery []bool) ([]int, bool) {
	visited := make([]bool, n)
	order := make([]int, 0, n)

	cur := -1 // -1 denotes "at the warehouse"
	for len(order) < n {
		best := -1
		var bestCost int64

		for j := 0; j < n; j++ {
			if visited[j] {
				continue
			}
			if isDelivery[j] && !visited[pairIdx[j]] {
				continue // precedence: pickup must already be visited
			}

			var c int64
			if cur == -1 {
				c = startCost(j)
			} else {
				c = tt(cur, j)
			}

			if best == -1 || c < bestCost || (c == bestCost && j < best) {
				best = j
				bestCost = c
			}
		}

		if best == -1 {
			return nil, false // no feasible next point (ErrInfeasible at the caller)
		}

		visited[best] = true
		order = append(order, best)
		cur = best
	}

	return order, true
}

// SolveV2 constructs a tour via greedy nearest-neighbor and refines it with
// precedence-respecting 2-opt.
func SolveV2(warehouse *tourmatrix.TourPoint, points []*tourmatrix.TourPoint, m *tourmatrix.Matrix) (*Result, error) {
	if len(points) == 0 {
		return nil, ErrNoPoints
	}

	n := len(points)
	ids := make([]string, n)
	for i, p := range points {
		ids[i] = p.Node.ID
	}

	pairIdx := make([]int, n)
	isDelivery := make([]bool, n)
	indexOf := make(map[string]int, n)
	for i, p := range points {
		indexOf[p.Node.ID] = i
	}
	for i, p := range points {
		if p.Kind == tourmatrix.KindDelivery {
			isDelivery[i] = true
		}
		if p.RelatedNodeID != "" {
			j, ok := indexOf[p.RelatedNodeID]
			if !ok {
				return nil, ErrMissingPair
			}
			pairIdx[i] = j
		}
	}

	startCost := func(i int) int64 {
		tt, ok := m.TravelTime(warehouse.Node.ID, ids[i])
		if !ok {
			return 1<<62 - 1
		}
		return tt
	}
	tt := func(i, j int) int64 {
		v, ok := m.TravelTime(ids[i], ids[j])
		if !ok {
			return 1<<62 - 1
		}
		return v
	}

	order, ok := greedyNearestNeighbor(n, startCost, tt, pairIdx, isDelivery)
	if !ok {
		return nil, ErrInfeasible
	}

	// seq indices: 0 is the warehouse, 1..n are order[0..n-1], n+1 is the warehouse.
	seqIdx := make([]int, n+2)
	seqIdx[0] = -1
	for i, pIdx := range order {
		seqIdx[i+1] = pIdx
	}
	seqIdx[n+1] = -1

	edgeCost := func(a, b int) int64 {
		if a == -1 && b == -1 {
			return 0
		}
		if a == -1 {
			return startCost(b)
		}
		if b == -1 {
			v, ok := m.TravelTime(ids[a], warehouse.Node.ID)
			if !ok {
				return 1<<62 - 1
			}
			return v
		}
		return tt(a, b)
	}

	twoOptRefine(seqIdx, edgeCost, pairIdx, isDelivery)

	seq := make([]*tourmatrix.TourPoint, n+2)
	seq[0] = warehouse
	seq[n+1] = warehouse
	for i := 1; i <= n; i++ {
		seq[i] = points[seqIdx[i]]
	}

	if !validatePrecedence(seq) {
		return nil, ErrInfeasible
	}

	cost, err := sequenceCost(seq, m)
	if err != nil {
		return nil, err
	}

	return &Result{Sequence: seq, Cost: cost}, nil
}

// twoOptRefine repeatedly applies the single most-improving precedence-valid
// 2-opt move to seqIdx (index -1 denotes the fixed warehouse endpoints)
// until no strictly improving move remains.
//
// Complexity: O(n²) candidates per accepted move, each improving candidate
// checked for precedence in O(n).
func twoOptRefine(seqIdx []int, edgeCost func(a, b int) int64, pairIdx []int, isDelivery []bool) {
	n := len(seqIdx) - 2 // number of non-warehouse stops

	for {
		bestDelta := -twoOptTolerance // only deltas strictly below this improve
		bestI, bestJ := -1, -1

		for i := 1; i <= n-1; i++ {
			for j := i + 1; j <= n; j++ {
				a, b := seqIdx[i-1], seqIdx[i]
				c, d := seqIdx[j], seqIdx[j+1]

				delta := float64(edgeCost(a, c)+edgeCost(b, d)) - float64(edgeCost(a, b)+edgeCost(c, d))
				if delta < bestDelta {
					// Trial reversal; reversing the same range twice restores the order.
					reverseInPlace(seqIdx, i, j)
					feasible := precedenceHoldsAfterReverse(seqIdx, pairIdx, isDelivery)
					reverseInPlace(seqIdx, i, j)
					if feasible {
						bestDelta = delta
						bestI, bestJ = i, j
					}
				}
			}
		}

		if bestI == -1 {
			return // local optimum
		}

		reverseInPlace(seqIdx, bestI, bestJ)
	}
}

func reverseInPlace(seqIdx []int, i, j int) {
	for i < j {
		seqIdx[i], seqIdx[j] = seqIdx[j], seqIdx[i]
		i++
		j--
	}
}

// precedenceHoldsAfterReverse scans the sequence once and checks every
// delivery's index against its pickup's index.
func precedenceHoldsAfterReverse(seqIdx []int, pairIdx []int, isDelivery []bool) bool {
	posOfPoint := make(map[int]int, len(seqIdx))
	for pos, idx := range seqIdx {
		if idx == -1 {
			continue
		}
		posOfPoint[idx] = pos
	}

	for idx, pos := range posOfPoint {
		if !isDelivery[idx] {
			continue
		}
		pickupPos, ok := posOfPoint[pairIdx[idx]]
		if !ok || pickupPos >= pos {
			return false
		}
	}

	return true
}

// Package routeplan - V1: exact depth-first branch-and-bound.
//
// Enumerates permutations in depth-first order, pruned by:
//  1. Precedence: a delivery is only explored once its pickup is visited.
//  2. Incumbent: any partial path whose accumulated time already meets or
//     exceeds the best known complete tour is abandoned.
//  3. Lower bound: minOut(u) = min travel time from u to any other point;
//     ret(u) = travel time from u back to the warehouse. After tentatively
//     moving to a candidate next point, the optimistic completion cost is
//     t' + ret(next) + sum of minOut(u) over the still-unvisited points
//     (excluding next); branches whose optimistic completion already meets
//     or exceeds the incumbent are pruned.
//  4. Ordering: candidates at each node are tried in ascending immediate
//     travel time, tightening the incumbent early.
//
// Implemented as a dedicated engine struct (not closures) holding dense
// precomputed travel times, per-origin candidate order, and incumbent
// state, giving a deterministic DFS with an admissible lower bound over
// node-id keyed travel times plus the precedence constraint above.
//
// Complexity: worst-case exponential in n; V1 is only invoked for n<=16.
package routeplan

import (
	"math"
	"sort"

	"github.com/lastmile-labs/tourcore/tourmatrix"
)

const bbEps = 1e-9

type bbEngine struct {
	n int

	startCost func(i int) int64
	tt        func(i, j int) int64
	retW      []int64
	minOut    []int64

	pairIdx    []int
	isDelivery []bool

	order      [][]int // order[i+1] holds point i's candidates sorted by ascending tt
	fromWOrder []int   // candidates sorted by ascending travel time from the warehouse

	visited  []bool
	path     []int
	bestPath []int
	bestCost int64
	found    bool
}

func (e *bbEngine) lowerBound(tentative int64, next int, unvisitedExcludingNext []int) int64 {
	bound := tentative + e.retW[next]
	for _, u := range unvisitedExcludingNext {
		bound += e.minOut[u]
	}

	return bound
}

func (e *bbEngine) dfs(last int, depth int, costSoFar int64) {
	if depth == e.n {
		total := costSoFar + e.retWOrZero(last)
		if total < e.bestCost {
			e.bestCost = total
			copy(e.bestPath, e.path)
			e.found = true
		}

		return
	}

	candidates := e.fromWOrder
	if last != -1 {
		candidates = e.order[last+1]
	}

	unvisited := make([]int, 0, e.n-depth)
	for j := 0; j < e.n; j++ {
		if !e.visited[j] {
			unvisited = append(unvisited, j)
		}
	}

	for _, v := range candidates {
		if e.visited[v] {
			continue
		}
		if e.isDelivery[v] && !e.visited[e.pairIdx[v]] {
			continue
		}

		var edge int64
		if last == -1 {
			edge = e.startCost(v)
		} else {
			edge = e.tt(last, v)
		}
		tentative := costSoFar + edge

		rest := make([]int, 0, len(unvisited)-1)
		for _, u := range unvisited {
			if u != v {
				rest = append(rest, u)
			}
		}

		if e.lowerBound(tentative, v, rest) >= e.bestCost-int64(bbEps) {
			continue
		}

		e.visited[v] = true
		e.path[depth] = v
		e.dfs(v, depth+1, tentative)
		e.visited[v] = false
	}
}

func (e *bbEngine) retWOrZero(last int) int64 {
	if last == -1 {
		return 0
	}

	return e.retW[last]
}

// SolveV1 runs exact branch-and-bound over points. It is exact: its total
// cost is never worse than any other strategy's on the same instance, but its
// worst-case runtime is exponential; callers should only invoke it for
// small point counts (see Solve's ExactThreshold).
func SolveV1(warehouse *tourmatrix.TourPoint, points []*tourmatrix.TourPoint, m *tourmatrix.Matrix) (*Result, error) {
	if len(points) == 0 {
		return nil, ErrNoPoints
	}

	n := len(points)
	ids := make([]string, n)
	for i, p := range points {
		ids[i] = p.Node.ID
	}

	indexOf := make(map[string]int, n)
	for i, p := range points {
		indexOf[p.Node.ID] = i
	}

	pairIdx := make([]int, n)
	isDelivery := make([]bool, n)
	for i, p := range points {
		isDelivery[i] = p.Kind == tourmatrix.KindDelivery
		if p.RelatedNodeID != "" {
			j, ok := indexOf[p.RelatedNodeID]
			if !ok {
				return nil, ErrMissingPair
			}
			pairIdx[i] = j
		}
	}

	ttFn := func(i, j int) int64 {
		v, ok := m.TravelTime(ids[i], ids[j])
		if !ok {
			return math.MaxInt64 / 4
		}
		return v
	}
	startCost := func(i int) int64 {
		v, ok := m.TravelTime(warehouse.Node.ID, ids[i])
		if !ok {
			return math.MaxInt64 / 4
		}
		return v
	}

	e := &bbEngine{
		n:          n,
		startCost:  startCost,
		tt:         ttFn,
		pairIdx:    pairIdx,
		isDelivery: isDelivery,
		visited:    make([]bool, n),
		path:       make([]int, n),
		bestPath:   make([]int, n),
	}

	e.retW = make([]int64, n)
	for i := 0; i < n; i++ {
		v, ok := m.TravelTime(ids[i], warehouse.Node.ID)
		if !ok {
			return nil, ErrMissingLeg
		}
		e.retW[i] = v
	}

	e.minOut = make([]int64, n)
	for i := 0; i < n; i++ {
		min := int64(math.MaxInt64 / 4)
		for j := 0; j < n; j++ {
			if i == j {
				continue
			}
			if c := ttFn(i, j); c < min {
				min = c
			}
		}
		e.minOut[i] = min
	}

	e.order = make([][]int, n+1) // slot 0 unused; dfs indexes by last+1
	for i := 0; i < n; i++ {
		cand := make([]int, 0, n-1)
		for j := 0; j < n; j++ {
			if j != i {
				cand = append(cand, j)
			}
		}
		sort.Slice(cand, func(a, b int) bool {
			ca, cb := ttFn(i, cand[a]), ttFn(i, cand[b])
			if ca == cb {
				return cand[a] < cand[b]
			}
			return ca < cb
		})
		e.order[i+1] = cand
	}

	e.fromWOrder = make([]int, n)
	for i := range e.fromWOrder {
		e.fromWOrder[i] = i
	}
	sort.Slice(e.fromWOrder, func(a, b int) bool {
		ca, cb := startCost(e.fromWOrder[a]), startCost(e.fromWOrder[b])
		if ca == cb {
			return e.fromWOrder[a] < e.fromWOrder[b]
		}
		return ca < cb
	})

	// Seed the incumbent with a cheap feasible construction (greedy nearest
	// neighbor) so the lower-bound prune is effective from the first branch.
	e.bestCost = math.MaxInt64 / 4
	if seedOrder, ok := greedyNearestNeighbor(n, startCost, ttFn, pairIdx, isDelivery); ok {
		cost := startCost(seedOrder[0])
		for i := 0; i+1 < len(seedOrder); i++ {
			cost += ttFn(seedOrder[i], seedOrder[i+1])
		}
		cost += e.retW[seedOrder[n-1]]
		e.bestCost = cost
		copy(e.bestPath, seedOrder)
		e.found = true
	}

	e.dfs(-1, 0, 0)

	if !e.found {
		return nil, ErrInfeasible
	}

	seq := make([]*tourmatrix.TourPoint, n+2)
	seq[0] = warehouse
	seq[n+1] = warehouse
	for i, idx := range e.bestPath {
		seq[i+1] = points[idx]
	}

	if !validatePrecedence(seq) {
		return nil, ErrInfeasible
	}

	return &Result{Sequence: seq, Cost: e.bestCost}, nil
}

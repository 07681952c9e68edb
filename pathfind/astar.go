// Package pathfind - A* guided by an admissible planar-Euclidean heuristic.
//
// Priority is g(n) + h(n), where g is accumulated path length and h is the
// projected Euclidean distance to the target (euclideanHeuristicMeters).
// Open-set entries may be re-relaxed (lazy decrease-key, shared nodePQ);
// closed nodes are skipped.
//
// Design decision: this implementation checks the termination condition
// *after* popping a node from the open set (pop-then-check) rather than
// before, which is the tighter of the two variants a reprojected heuristic
// allows. Because the projected heuristic is not uniformly consistent across
// reprojections, the returned distance can still exceed Dijkstra's (bounded
// below by Dijkstra's distance and above by any known route's length) -
// pop-then-check merely makes near-optimality more
// likely in practice, it does not restore strict admissibility.
//
// Complexity: O((V+E) log V) time, O(V+E) space.
package pathfind

import (
	"container/heap"

	"github.com/lastmile-labs/tourcore/road"
)

func runAStar(g *road.RoadGraph, startID, endID string) (*Result, bool) {
	target, ok := g.GetNode(endID)
	if !ok {
		return nil, false
	}

	gScore := map[string]float64{startID: 0}
	prevNode := make(map[string]string)
	prevSeg := make(map[string]*road.Segment)
	closed := make(map[string]bool)

	startNode, _ := g.GetNode(startID)
	pq := &nodePQ{{id: startID, priority: euclideanHeuristicMeters(startNode, target)}}
	heap.Init(pq)

	for pq.Len() > 0 {
		item := heap.Pop(pq).(*pqItem)
		u := item.id
		if closed[u] {
			continue
		}
		closed[u] = true

		if u == endID {
			return buildResult(g, startID, endID, gScore[endID], prevNode, prevSeg)
		}

		edges, _ := g.GetEdgesFrom(u)
		for _, e := range edges {
			v := e.To
			if v == u {
				v = e.From
			}
			if closed[v] {
				continue
			}

			tentativeG := gScore[u] + e.Length
			if old, ok := gScore[v]; ok && tentativeG >= old {
				continue
			}

			gScore[v] = tentativeG
			prevNode[v] = u
			prevSeg[v] = e

			vNode, _ := g.GetNode(v)
			priority := tentativeG + euclideanHeuristicMeters(vNode, target)
			heap.Push(pq, &pqItem{id: v, priority: priority})
		}
	}

	return nil, false
}

// Package pathfind - Dijkstra's algorithm, early-terminated at the target.
//
// Dijkstra explores nodes in order of increasing tentative distance from
// start, relaxing every incident segment (bidirectional traversal, per
// road.RoadGraph's contract) until the target is popped from the heap or the
// heap empties (unreachable). Ties among equal tentative distances resolve to
// whichever relaxation discovers them first, which is deterministic given
// RoadGraph's insertion-ordered GetEdgesFrom.
//
// Complexity: O((V+E) log V) time, O(V+E) space.
package pathfind

import (
	"container/heap"

	"github.com/lastmile-labs/tourcore/road"
)

func runDijkstra(g *road.RoadGraph, startID, endID string) (*Result, bool) {
	dist := map[string]float64{startID: 0}
	prevNode := make(map[string]string)
	prevSeg := make(map[string]*road.Segment)
	closed := make(map[string]bool)

	pq := &nodePQ{{id: startID, priority: 0}}
	heap.Init(pq)

	for pq.Len() > 0 {
		item := heap.Pop(pq).(*pqItem)
		u := item.id
		if closed[u] {
			continue
		}
		closed[u] = true

		if u == endID {
			return buildResult(g, startID, endID, dist[endID], prevNode, prevSeg)
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

			newDist := dist[u] + e.Length
			if old, ok := dist[v]; ok && newDist >= old {
				continue
			}

			dist[v] = newDist
			prevNode[v] = u
			prevSeg[v] = e
			heap.Push(pq, &pqItem{id: v, priority: newDist})
		}
	}

	return nil, false // target unreachable: start and end are in different components
}

// buildResult walks prevNode/prevSeg back from endID to startID and reverses
// the result into start->end order.
func buildResult(g *road.RoadGraph, startID, endID string, distance float64, prevNode map[string]string, prevSeg map[string]*road.Segment) (*Result, bool) {
	var nodesRev []string
	var segsRev []*road.Segment

	cur := endID
	for cur != startID {
		nodesRev = append(nodesRev, cur)
		seg, ok := prevSeg[cur]
		if !ok {
			return nil, false // defensive: broken predecessor chain
		}
		segsRev = append(segsRev, seg)
		cur = prevNode[cur]
	}
	nodesRev = append(nodesRev, startID)

	nodes := make([]string, len(nodesRev))
	for i, n := range nodesRev {
		nodes[len(nodesRev)-1-i] = n
	}
	segs := make([]*road.Segment, len(segsRev))
	for i, s := range segsRev {
		segs[len(segsRev)-1-i] = s
	}

	return &Result{PathNodes: nodes, Distance: distance, Segments: segs}, true
}

// Package pathfind - public entry point dispatching to Dijkstra or A*.
package pathfind

import "github.com/lastmile-labs/tourcore/road"

// ShortestPath computes the shortest path from startID to endID in g using
// the requested algorithm.
//
// Returns (result, true) on success. Returns (nil, false) - "absent" - when:
//   - startID or endID is not present in g;
//   - startID and endID are not in the same weakly-connected component
//     (via the bidirectional neighbor relation).
//
// If startID == endID, returns the trivial result: a single-node path,
// distance 0, no segments - without running either algorithm.
//
// err is non-nil only for a genuine precondition violation (nil graph or an
// unrecognized Algorithm value); a missing or unreachable node is reported via
// the boolean, not an error - every read operation here is total.
//
// Complexity: O((V+E) log V) time, O(V+E) space.
func ShortestPath(g *road.RoadGraph, startID, endID string, algo Algorithm) (*Result, bool, error) {
	if g == nil {
		return nil, false, ErrNilGraph
	}

	if _, ok := g.GetNode(startID); !ok {
		return nil, false, nil
	}
	if _, ok := g.GetNode(endID); !ok {
		return nil, false, nil
	}

	if startID == endID {
		return &Result{PathNodes: []string{startID}, Distance: 0, Segments: nil}, true, nil
	}

	switch algo {
	case DijkstraAlgorithm:
		res, ok := runDijkstra(g, startID, endID)
		return res, ok, nil
	case AStarAlgorithm:
		res, ok := runAStar(g, startID, endID)
		return res, ok, nil
	default:
		return nil, false, ErrUnknownAlgorithm
	}
}

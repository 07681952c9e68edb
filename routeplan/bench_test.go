package routeplan_test

import (
	"testing"

	"github.com/lastmile-labs/tourcore/pathfind"
	"github.com/lastmile-labs/tourcore/road"
	"github.com/lastmile-labs/tourcore/routeplan"
	"github.com/lastmile-labs/tourcore/tourmatrix"
)

// buildBranchAndBoundFixture builds a warehouse plus n pickup/delivery
// demands spaced around a ring, matrix-filled with Dijkstra.
func buildBranchAndBoundFixture(b *testing.B, n int) (*tourmatrix.TourPoint, []*tourmatrix.TourPoint, *tourmatrix.Matrix) {
	b.Helper()

	nodeCount := 2*n + 1
	nodes := make([]road.NodeRecord, 0, nodeCount)
	segs := make([]road.SegmentRecord, 0, nodeCount)

	nodes = append(nodes, road.NodeRecord{ID: "W", Lat: 0, Lon: 0})
	prev := "W"
	for i := 0; i < 2*n; i++ {
		id := string(rune('A' + i))
		nodes = append(nodes, road.NodeRecord{ID: id, Lat: 0, Lon: float64(i + 1)})
		segs = append(segs, road.SegmentRecord{OriginID: prev, DestinationID: id, Length: 100})
		prev = id
	}
	segs = append(segs, road.SegmentRecord{OriginID: prev, DestinationID: "W", Length: 100})

	g, err := road.Ingest(nodes, segs, "W")
	if err != nil {
		b.Fatalf("Ingest: %v", err)
	}

	wNode, _ := g.GetNode("W")
	warehouse := &tourmatrix.TourPoint{Node: wNode, Kind: tourmatrix.KindWarehouse}

	points := make([]*tourmatrix.TourPoint, 0, 2*n)
	for i := 0; i < n; i++ {
		pickupID := string(rune('A' + 2*i))
		deliveryID := string(rune('A' + 2*i + 1))
		pickupNode, _ := g.GetNode(pickupID)
		deliveryNode, _ := g.GetNode(deliveryID)
		points = append(points,
			&tourmatrix.TourPoint{Node: pickupNode, Kind: tourmatrix.KindPickup, RelatedNodeID: deliveryID},
			&tourmatrix.TourPoint{Node: deliveryNode, Kind: tourmatrix.KindDelivery, RelatedNodeID: pickupID},
		)
	}

	m, err := tourmatrix.Fill(g, warehouse, points, pathfind.DijkstraAlgorithm)
	if err != nil {
		b.Fatalf("Fill: %v", err)
	}

	return warehouse, points, m
}

// BenchmarkSolveV1 measures the exact branch-and-bound solver on 5 demands
// (10 points), exercising its precedence/incumbent/lower-bound pruning.
func BenchmarkSolveV1(b *testing.B) {
	warehouse, points, m := buildBranchAndBoundFixture(b, 5)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := routeplan.SolveV1(warehouse, points, m); err != nil {
			b.Fatalf("SolveV1: %v", err)
		}
	}
}

// BenchmarkSolveV2 measures greedy construction plus 2-opt refinement on 13
// demands (26 points), above the exact-search threshold.
func BenchmarkSolveV2(b *testing.B) {
	warehouse, points, m := buildBranchAndBoundFixture(b, 13)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := routeplan.SolveV2(warehouse, points, m); err != nil {
			b.Fatalf("SolveV2: %v", err)
		}
	}
}

package pathfind_test

import (
	"fmt"

	"github.com/lastmile-labs/tourcore/pathfind"
	"github.com/lastmile-labs/tourcore/road"
)

// ExampleShortestPath demonstrates computing the shortest distance between
// two intersections on a small triangle of streets.
func ExampleShortestPath() {
	nodes := []road.NodeRecord{
		{ID: "W", Lat: 45.75, Lon: 4.85},
		{ID: "A", Lat: 45.76, Lon: 4.86},
		{ID: "B", Lat: 45.77, Lon: 4.87},
	}
	segs := []road.SegmentRecord{
		{OriginID: "W", DestinationID: "A", Length: 100},
		{OriginID: "A", DestinationID: "B", Length: 150},
		{OriginID: "W", DestinationID: "B", Length: 400},
	}
	g, err := road.Ingest(nodes, segs, "W")
	if err != nil {
		fmt.Println("error:", err)
		return
	}

	res, ok, err := pathfind.ShortestPath(g, "W", "B", pathfind.DijkstraAlgorithm)
	if err != nil || !ok {
		fmt.Println("no path:", err)
		return
	}

	fmt.Printf("path=%v distance=%.0f travelTime=%ds\n", res.PathNodes, res.Distance, pathfind.TravelTimeSeconds(res.Distance))
	// Output: path=[W A B] distance=250 travelTime=60s
}

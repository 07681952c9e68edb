package pathfind_test

import (
	"testing"

	"github.com/lastmile-labs/tourcore/pathfind"
	"github.com/lastmile-labs/tourcore/road"
	"github.com/stretchr/testify/require"
)

// buildTriangle is a small triangle graph: W(45.75,4.85), A(45.76,4.86),
// B(45.77,4.87); W->A 100, A->B 150, W->B 400.
func buildTriangle(t *testing.T) *road.RoadGraph {
	t.Helper()
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
	require.NoError(t, err)

	return g
}

func TestShortestPath_TrivialPath(t *testing.T) {
	g := buildTriangle(t)
	res, ok, err := pathfind.ShortestPath(g, "A", "A", pathfind.DijkstraAlgorithm)
	require.NoError(t, err)
	require.True(t, ok)
	require.Equal(t, []string{"A"}, res.PathNodes)
	require.Equal(t, 0.0, res.Distance)
	require.Empty(t, res.Segments)
}

func TestShortestPath_Dijkstra_Triangle(t *testing.T) {
	g := buildTriangle(t)
	res, ok, err := pathfind.ShortestPath(g, "W", "B", pathfind.DijkstraAlgorithm)
	require.NoError(t, err)
	require.True(t, ok)
	require.Equal(t, []string{"W", "A", "B"}, res.PathNodes)
	require.Equal(t, 250.0, res.Distance)
	require.Len(t, res.Segments, 2)
}

func TestShortestPath_AStar_BoundedByKnownRoute(t *testing.T) {
	g := buildTriangle(t)
	res, ok, err := pathfind.ShortestPath(g, "W", "B", pathfind.AStarAlgorithm)
	require.NoError(t, err)
	require.True(t, ok)
	require.Equal(t, "W", res.PathNodes[0])
	require.Equal(t, "B", res.PathNodes[len(res.PathNodes)-1])
	// A*'s distance is bounded: >= Dijkstra's (250) and <= the known direct route (400).
	require.GreaterOrEqual(t, res.Distance, 250.0)
	require.LessOrEqual(t, res.Distance, 400.0)
}

func TestShortestPath_Disconnected(t *testing.T) {
	nodes := []road.NodeRecord{{ID: "W"}, {ID: "A"}, {ID: "D"}}
	segs := []road.SegmentRecord{{OriginID: "W", DestinationID: "A", Length: 10}}
	g, err := road.Ingest(nodes, segs, "W")
	require.NoError(t, err)

	for _, algo := range []pathfind.Algorithm{pathfind.DijkstraAlgorithm, pathfind.AStarAlgorithm} {
		_, ok, err := pathfind.ShortestPath(g, "W", "D", algo)
		require.NoError(t, err)
		require.False(t, ok)
	}
}

func TestShortestPath_MissingNode(t *testing.T) {
	g := buildTriangle(t)
	_, ok, err := pathfind.ShortestPath(g, "W", "ghost", pathfind.DijkstraAlgorithm)
	require.NoError(t, err)
	require.False(t, ok)
}

func TestShortestPath_NilGraph(t *testing.T) {
	_, ok, err := pathfind.ShortestPath(nil, "W", "A", pathfind.DijkstraAlgorithm)
	require.False(t, ok)
	require.ErrorIs(t, err, pathfind.ErrNilGraph)
}

func TestTravelTimeSeconds_CeilsUp(t *testing.T) {
	// 250 m at 15 km/h (4.1666... m/s) = 60s exactly for 250.
	require.Equal(t, int64(60), pathfind.TravelTimeSeconds(250))
	// 1 meter should still round up to 1 second, not truncate to 0.
	require.Equal(t, int64(1), pathfind.TravelTimeSeconds(1))
}

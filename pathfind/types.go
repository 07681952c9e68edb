// Package pathfind - shared types, sentinel errors, and the speed constant.
package pathfind

import (
	"errors"
	"math"

	"github.com/lastmile-labs/tourcore/road"
	"gonum.org/v1/gonum/spatial/r2"
)

// Sentinel errors returned by ShortestPath.
var (
	// ErrNilGraph indicates a nil *road.RoadGraph was supplied.
	ErrNilGraph = errors.New("pathfind: graph is nil")

	// ErrUnknownAlgorithm indicates an Algorithm value outside {Dijkstra, AStar}.
	ErrUnknownAlgorithm = errors.New("pathfind: unknown algorithm")
)

// Algorithm selects the shortest-path strategy.
type Algorithm int

const (
	// DijkstraAlgorithm computes provably optimal shortest paths.
	DijkstraAlgorithm Algorithm = iota

	// AStarAlgorithm guides the search with a planar-Euclidean heuristic;
	// near-optimal (see astar.go's file comment for the bound this gives up).
	AStarAlgorithm
)

// metersPerDegree approximates the length of one degree of latitude in
// meters, used by the A* heuristic's planar projection.
const metersPerDegree = 111000.0

// courierSpeedMetersPerSecond is the fixed courier travel speed (15 km/h),
// a core invariant of the domain.
const courierSpeedMetersPerSecond = 15000.0 / 3600.0

// Result is the outcome of a successful ShortestPath call.
type Result struct {
	// PathNodes is the ordered sequence of node IDs from start to end inclusive.
	PathNodes []string

	// Distance is the total path length in meters.
	Distance float64

	// Segments is the ordered sequence of segments traversed (len == len(PathNodes)-1).
	Segments []*road.Segment
}

// TravelTimeSeconds derives travel time from a distance in meters at the
// fixed courier speed of 15 km/h, rounding up to the next whole second:
// travelTime_seconds = ceil(distance_meters / (15000/3600)).
//
// Complexity: O(1).
func TravelTimeSeconds(distanceMeters float64) int64 {
	return int64(math.Ceil(distanceMeters / courierSpeedMetersPerSecond))
}

// euclideanHeuristicMeters computes the admissible planar-Euclidean distance
// in meters between two nodes by projecting their latitude/longitude
// difference:
//
//	h = sqrt( (Δlat·111000)² + (Δlon·111000·cos(lat_to·π/180))² )
//
// Complexity: O(1).
func euclideanHeuristicMeters(from, to *road.Node) float64 {
	projected := r2.Vec{
		X: (to.Lat - from.Lat) * metersPerDegree,
		Y: (to.Lon - from.Lon) * metersPerDegree * math.Cos(to.Lat*math.Pi/180),
	}

	return r2.Norm(projected)
}

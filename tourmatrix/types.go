package tourmatrix

import (
	"errors"

	"github.com/lastmile-labs/tourcore/road"
)

// Sentinel errors returned while building or querying a Matrix.
var (
	// ErrNoPoints indicates Fill was called with fewer than one non-warehouse point.
	ErrNoPoints = errors.New("tourmatrix: no points to route")

	// ErrDuplicatePoint indicates two points in the input set share a node id.
	ErrDuplicatePoint = errors.New("tourmatrix: duplicate point node id")

	// ErrUnreachablePair indicates some ordered pair of points has no path in
	// the underlying road graph; the containing planning attempt must be
	// abandoned rather than proceed with a partial matrix.
	ErrUnreachablePair = errors.New("tourmatrix: no path between points")

	// ErrNilGraph indicates a nil *road.RoadGraph was supplied to Fill.
	ErrNilGraph = errors.New("tourmatrix: graph is nil")
)

// Kind classifies a TourPoint's role in a tour.
type Kind int

const (
	// KindWarehouse marks the single depot point of a tour.
	KindWarehouse Kind = iota

	// KindPickup marks a demand's pickup visit.
	KindPickup

	// KindDelivery marks a demand's delivery visit.
	KindDelivery
)

// Demand is a transport request: move something from a pickup node to a
// delivery node, spending the given service durations at each.
type Demand struct {
	// ID uniquely identifies this demand among its siblings.
	ID string

	// PickupNodeID and DeliveryNodeID must resolve to distinct nodes in the
	// road graph the demand is evaluated against.
	PickupNodeID   string
	DeliveryNodeID string

	// PickupDuration and DeliveryDuration are service times in seconds, >= 0.
	PickupDuration   int64
	DeliveryDuration int64
}

// TourPoint is a single visit instance within a tour: the warehouse, a
// pickup, or a delivery. RelatedNodeID holds the node id of the paired
// pickup/delivery (empty for Warehouse) rather than a direct pointer,
// avoiding a reference cycle between a pickup and its delivery.
type TourPoint struct {
	// Node is the underlying road-graph intersection this point visits.
	Node *road.Node

	// ServiceDuration is time spent at this stop, in seconds.
	ServiceDuration int64

	// Kind classifies this point as Warehouse, Pickup, or Delivery.
	Kind Kind

	// Demand is the originating demand. Nil for Warehouse.
	Demand *Demand

	// RelatedNodeID is the node id of the matching pickup (if this is a
	// Delivery) or delivery (if this is a Pickup). Empty for Warehouse.
	RelatedNodeID string
}

// Leg is the routed path between two consecutive TourPoints.
type Leg struct {
	// From and To are the endpoint TourPoints this leg connects.
	From *TourPoint
	To   *TourPoint

	// PathNodes is the ordered sequence of node ids from From to To,
	// inclusive of both endpoints.
	PathNodes []string

	// PathSegments is the ordered sequence of segments traversed; one fewer
	// element than PathNodes.
	PathSegments []*road.Segment

	// Distance is the total leg length in meters; equals the sum of
	// PathSegments' lengths.
	Distance float64

	// TravelTime is the leg's travel time in seconds at the fixed courier speed.
	TravelTime int64
}

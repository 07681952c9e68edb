// Package fleet - Plan, the public orchestrator.
package fleet

import (
	"fmt"

	"github.com/lastmile-labs/tourcore/road"
	"github.com/lastmile-labs/tourcore/routeplan"
	"github.com/lastmile-labs/tourcore/tourmatrix"
	"gonum.org/v1/gonum/spatial/r2"
)

// Plan partitions demands among couriers and assembles a Tour for each
// non-empty courier in three steps: distribution, per-courier construction,
// and a workday budget check. Every precondition and internal failure is
// translated into Code at this boundary; Plan never returns a Go error. It
// accepts functional options (WithAlgorithm, WithRoutePlanOptions, WithSeed,
// WithMaxKMeansIterations); with none given, DefaultOptions applies.
//
// Complexity: O(|couriers| · k-means passes) for Step 1, plus
// O(|demands in the largest cluster|² · shortest-path cost) for Step 2.
func Plan(g *road.RoadGraph, warehouseID string, demands []DemandRecord, couriers []*Courier, opts ...Option) (Code, []*Tour) {
	if g == nil {
		return Error, nil
	}
	warehouseNode, ok := g.GetNode(warehouseID)
	if !ok {
		return Error, nil
	}
	if len(demands) == 0 {
		return Error, nil
	}
	if len(couriers) == 0 {
		return Error, nil
	}

	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}

	clusters, err := distributeDemands(g, demands, couriers, cfg)
	if err != nil {
		return Error, nil
	}

	tours := make([]*Tour, 0, len(couriers))

	for ci, cluster := range clusters {
		if len(cluster) == 0 {
			continue // courier left idle
		}

		tour, err := buildTour(g, warehouseNode, cluster, couriers[ci], cfg)
		if err != nil {
			return Error, nil
		}

		tours = append(tours, tour)

		if tour.TotalDuration > workdaySeconds {
			return WorkdayExceeded, tours
		}
	}

	return Ok, tours
}

// buildTour materializes TourPoints for one courier's cluster, fills the
// tour-point matrix, solves the TSP, and assembles the resulting Tour.
func buildTour(g *road.RoadGraph, warehouseNode *road.Node, cluster []DemandRecord, courier *Courier, opts Options) (*Tour, error) {
	warehouse := &tourmatrix.TourPoint{Node: warehouseNode, Kind: tourmatrix.KindWarehouse}

	points := make([]*tourmatrix.TourPoint, 0, 2*len(cluster))
	for i := range cluster {
		d := cluster[i]

		pickupNode, ok := g.GetNode(d.PickupNodeID)
		if !ok {
			return nil, fmt.Errorf("fleet: demand %q: pickup node not found", d.ID)
		}
		deliveryNode, ok := g.GetNode(d.DeliveryNodeID)
		if !ok {
			return nil, fmt.Errorf("fleet: demand %q: delivery node not found", d.ID)
		}

		tourmatrixDemand := &tourmatrix.Demand{
			ID:               d.ID,
			PickupNodeID:     d.PickupNodeID,
			DeliveryNodeID:   d.DeliveryNodeID,
			PickupDuration:   d.PickupDuration,
			DeliveryDuration: d.DeliveryDuration,
		}

		pickup := &tourmatrix.TourPoint{
			Node:            pickupNode,
			ServiceDuration: d.PickupDuration,
			Kind:            tourmatrix.KindPickup,
			Demand:          tourmatrixDemand,
			RelatedNodeID:   d.DeliveryNodeID,
		}
		delivery := &tourmatrix.TourPoint{
			Node:            deliveryNode,
			ServiceDuration: d.DeliveryDuration,
			Kind:            tourmatrix.KindDelivery,
			Demand:          tourmatrixDemand,
			RelatedNodeID:   d.PickupNodeID,
		}

		points = append(points, pickup, delivery)
	}

	matrix, err := tourmatrix.Fill(g, warehouse, points, opts.Algorithm)
	if err != nil {
		return nil, err
	}

	result, err := routeplan.Solve(warehouse, points, matrix, opts.RoutePlan...)
	if err != nil {
		return nil, err
	}

	legs := make([]*tourmatrix.Leg, 0, len(result.Sequence)-1)
	var totalDistance float64
	var totalDuration int64
	for i := 0; i+1 < len(result.Sequence); i++ {
		leg, ok := matrix.Leg(result.Sequence[i].Node.ID, result.Sequence[i+1].Node.ID)
		if !ok {
			return nil, fmt.Errorf("fleet: missing leg %s->%s", result.Sequence[i].Node.ID, result.Sequence[i+1].Node.ID)
		}
		legs = append(legs, leg)
		totalDistance += leg.Distance
		totalDuration += leg.TravelTime
	}
	for _, stop := range result.Sequence {
		totalDuration += stop.ServiceDuration
	}

	return &Tour{
		ID:            fmt.Sprintf("tour-%s", courier.ID),
		DepartureTime: fixedDepartureTime,
		Courier:       courier,
		Stops:         result.Sequence,
		Legs:          legs,
		TotalDistance: totalDistance,
		TotalDuration: totalDuration,
	}, nil
}

// distributeDemands assigns one demand per courier when there are at most as
// many demands as couriers, otherwise falls back to k-means++
// clustering keyed on each demand's pickup/delivery midpoint. clusters[i]
// holds the demands assigned to couriers[i]; entries may be empty.
func distributeDemands(g *road.RoadGraph, demands []DemandRecord, couriers []*Courier, opts Options) ([][]DemandRecord, error) {
	clusters := make([][]DemandRecord, len(couriers))

	if len(demands) <= len(couriers) {
		for i, d := range demands {
			clusters[i] = []DemandRecord{d}
		}

		return clusters, nil
	}

	positions := make([]r2.Vec, len(demands))
	for i, d := range demands {
		pickupNode, ok := g.GetNode(d.PickupNodeID)
		if !ok {
			return nil, fmt.Errorf("fleet: demand %q: pickup node not found", d.ID)
		}
		deliveryNode, ok := g.GetNode(d.DeliveryNodeID)
		if !ok {
			return nil, fmt.Errorf("fleet: demand %q: delivery node not found", d.ID)
		}
		positions[i] = demandMidpoint(pickupNode, deliveryNode)
	}

	maxIter := opts.MaxKMeansIterations
	if maxIter <= 0 {
		maxIter = DefaultOptions().MaxKMeansIterations
	}

	assignments := kMeansPlusPlus(positions, len(couriers), rngFromSeed(opts.Seed), maxIter)
	for i, d := range demands {
		c := assignments[i]
		clusters[c] = append(clusters[c], d)
	}

	return clusters, nil
}

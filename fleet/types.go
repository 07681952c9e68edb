package fleet

import (
	"errors"

	"github.com/lastmile-labs/tourcore/pathfind"
	"github.com/lastmile-labs/tourcore/routeplan"
	"github.com/lastmile-labs/tourcore/tourmatrix"
)

// Sentinel errors surfaced only internally; Plan translates every one of
// them into Code Error at its boundary rather than propagating a Go error.
var (
	// ErrNoGraph indicates a nil *road.RoadGraph was supplied to Plan.
	ErrNoGraph = errors.New("fleet: graph is nil")

	// ErrNoWarehouse indicates the warehouse id does not resolve in the graph.
	ErrNoWarehouse = errors.New("fleet: warehouse not found")

	// ErrNoDemands indicates Plan was called with zero demands.
	ErrNoDemands = errors.New("fleet: no demands")

	// ErrNoCouriers indicates Plan was called with zero couriers.
	ErrNoCouriers = errors.New("fleet: no couriers")
)

// Code is Plan's three-valued result, preserved bit-for-bit as 0/1/2 for
// compatibility with existing callers. It is deliberately not a Go error:
// WorkdayExceeded is a successful computation that still needs reporting,
// and the numeric values themselves are part of the contract.
type Code int

const (
	// Ok indicates every produced tour fits within the workday budget.
	Ok Code = 0

	// Error indicates a precondition failure, an unreachable pair, or an
	// algorithmic failure (infeasible TSP).
	Error Code = 1

	// WorkdayExceeded indicates at least one produced tour exceeds the
	// 8-hour workday; tours still contains everything computed so far.
	WorkdayExceeded Code = 2
)

// workdaySeconds is the 8-hour workday budget.
const workdaySeconds = 8 * 3600

// fixedDepartureTime is the departure time-of-day for every tour in this
// core; time windows are not modeled.
const fixedDepartureTime = "08:00"

// Courier is a stable identifier and display name. Never mutated by Plan.
type Courier struct {
	ID   string
	Name string
}

// Tour is one courier's completed plan for the day.
type Tour struct {
	// ID uniquely identifies this tour among its siblings.
	ID string

	// DepartureTime is the local time-of-day the tour starts, "HH:MM".
	DepartureTime string

	// Courier is the assigned courier. Never nil for a produced Tour.
	Courier *Courier

	// Stops is the ordered visit sequence: Warehouse, ..., Warehouse.
	Stops []*tourmatrix.TourPoint

	// Legs is the ordered sequence of routed legs; len(Legs) == len(Stops)-1.
	Legs []*tourmatrix.Leg

	// TotalDistance is the sum of every leg's distance, in meters.
	TotalDistance float64

	// TotalDuration is the sum of every leg's travel time plus every stop's
	// service duration, in seconds.
	TotalDuration int64
}

// DemandRecord is the external, pre-parsed shape of a demand, validated by
// IngestDemands. Duration fields are in seconds.
type DemandRecord struct {
	ID               string
	PickupNodeID     string
	DeliveryNodeID   string
	PickupDuration   int64
	DeliveryDuration int64
}

// Options tunes Plan's algorithm selection and k-means++ behavior.
type Options struct {
	// Algorithm selects the shortest-path algorithm used to fill every
	// per-courier tourmatrix.Matrix. Default: pathfind.DijkstraAlgorithm.
	Algorithm pathfind.Algorithm

	// RoutePlan carries functional options forwarded to routeplan.Solve.
	// Default: nil (routeplan.DefaultOptions applies).
	RoutePlan []routeplan.Option

	// Seed controls the deterministic RNG used for k-means++ centroid
	// seeding. Default: 0 (fixed seed).
	Seed int64

	// MaxKMeansIterations caps the clustering refinement passes.
	// Default: 10.
	MaxKMeansIterations int
}

// DefaultOptions returns Options with this core's default tuning. Use this
// as a starting point for further functional-options overrides.
func DefaultOptions() Options {
	return Options{
		Algorithm:           pathfind.DijkstraAlgorithm,
		RoutePlan:           nil,
		Seed:                0,
		MaxKMeansIterations: 10,
	}
}

// Option represents a functional option for configuring Plan.
type Option func(*Options)

// WithAlgorithm selects the shortest-path algorithm used to fill every
// per-courier tourmatrix.Matrix.
func WithAlgorithm(algo pathfind.Algorithm) Option {
	return func(o *Options) {
		o.Algorithm = algo
	}
}

// WithRoutePlanOptions appends functional options forwarded to
// routeplan.Solve, such as routeplan.WithExactThreshold.
func WithRoutePlanOptions(opts ...routeplan.Option) Option {
	return func(o *Options) {
		o.RoutePlan = append(o.RoutePlan, opts...)
	}
}

// WithSeed sets the deterministic RNG seed used for k-means++ centroid
// seeding.
func WithSeed(seed int64) Option {
	return func(o *Options) {
		o.Seed = seed
	}
}

// WithMaxKMeansIterations caps the number of clustering refinement passes.
func WithMaxKMeansIterations(n int) Option {
	return func(o *Options) {
		o.MaxKMeansIterations = n
	}
}

package fleet_test

import (
	"testing"

	"github.com/lastmile-labs/tourcore/fleet"
	"github.com/lastmile-labs/tourcore/road"
	"github.com/stretchr/testify/require"
)

func buildTriangleGraph(t *testing.T) *road.RoadGraph {
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

func TestPlan_SingleDemandTour(t *testing.T) {
	g := buildTriangleGraph(t)
	demands := []fleet.DemandRecord{
		{ID: "d1", PickupNodeID: "A", DeliveryNodeID: "B", PickupDuration: 60, DeliveryDuration: 60},
	}
	couriers := []*fleet.Courier{{ID: "c1", Name: "Alice"}}

	code, tours := fleet.Plan(g, "W", demands, couriers)
	require.Equal(t, fleet.Ok, code)
	require.Len(t, tours, 1)

	tour := tours[0]
	require.Len(t, tour.Stops, 4)
	require.Len(t, tour.Legs, 3)
	require.InDelta(t, 500.0, tour.TotalDistance, 1e-9)

	// Cached totals must equal the sum over legs/stops.
	var wantDistance float64
	var wantDuration int64
	for _, leg := range tour.Legs {
		wantDistance += leg.Distance
		wantDuration += leg.TravelTime
	}
	for _, stop := range tour.Stops {
		wantDuration += stop.ServiceDuration
	}
	require.InDelta(t, wantDistance, tour.TotalDistance, 1e-9)
	require.Equal(t, wantDuration, tour.TotalDuration)
}

// More couriers than demands leaves surplus couriers idle.
func TestPlan_OverflowCouriers(t *testing.T) {
	g := buildTriangleGraph(t)
	demands := []fleet.DemandRecord{
		{ID: "d1", PickupNodeID: "A", DeliveryNodeID: "B", PickupDuration: 0, DeliveryDuration: 0},
	}
	couriers := make([]*fleet.Courier, 0, 10)
	for i := 0; i < 10; i++ {
		couriers = append(couriers, &fleet.Courier{ID: string(rune('a' + i)), Name: "c"})
	}

	code, tours := fleet.Plan(g, "W", demands, couriers)
	require.Equal(t, fleet.Ok, code)
	require.LessOrEqual(t, len(tours), len(demands))
}

// A tour whose duration exceeds the 8h workday triggers WorkdayExceeded.
func TestPlan_WorkdayExceeded(t *testing.T) {
	nodes := []road.NodeRecord{
		{ID: "W", Lat: 0, Lon: 0},
		{ID: "A", Lat: 0, Lon: 0},
		{ID: "B", Lat: 0, Lon: 0},
	}
	// 9 hours of travel one-way at 15km/h: 9*3600*15000/3600 = 135000 m.
	segs := []road.SegmentRecord{
		{OriginID: "W", DestinationID: "A", Length: 135000},
		{OriginID: "A", DestinationID: "B", Length: 1},
		{OriginID: "W", DestinationID: "B", Length: 135001},
	}
	g, err := road.Ingest(nodes, segs, "W")
	require.NoError(t, err)

	demands := []fleet.DemandRecord{
		{ID: "d1", PickupNodeID: "A", DeliveryNodeID: "B"},
	}
	couriers := []*fleet.Courier{{ID: "c1", Name: "Alice"}}

	code, tours := fleet.Plan(g, "W", demands, couriers)
	require.Equal(t, fleet.WorkdayExceeded, code)
	require.Len(t, tours, 1)
	require.Greater(t, tours[0].TotalDuration, int64(8*3600))
}

// Preconditions: empty demands/couriers or a nil graph fail immediately.
func TestPlan_Preconditions(t *testing.T) {
	g := buildTriangleGraph(t)
	courier := []*fleet.Courier{{ID: "c1", Name: "Alice"}}
	demand := []fleet.DemandRecord{{ID: "d1", PickupNodeID: "A", DeliveryNodeID: "B"}}

	code, tours := fleet.Plan(nil, "W", demand, courier)
	require.Equal(t, fleet.Error, code)
	require.Nil(t, tours)

	code, tours = fleet.Plan(g, "nope", demand, courier)
	require.Equal(t, fleet.Error, code)
	require.Nil(t, tours)

	code, tours = fleet.Plan(g, "W", nil, courier)
	require.Equal(t, fleet.Error, code)
	require.Nil(t, tours)

	code, tours = fleet.Plan(g, "W", demand, nil)
	require.Equal(t, fleet.Error, code)
	require.Nil(t, tours)
}

func TestIngestDemands_SkipsInvalid(t *testing.T) {
	g := buildTriangleGraph(t)
	records := []fleet.DemandRecord{
		{ID: "ok", PickupNodeID: "A", DeliveryNodeID: "B"},
		{ID: "same-node", PickupNodeID: "A", DeliveryNodeID: "A"},
		{ID: "bad-pickup", PickupNodeID: "nope", DeliveryNodeID: "B"},
		{ID: "bad-delivery", PickupNodeID: "A", DeliveryNodeID: "nope"},
	}

	valid, skipped := fleet.IngestDemands(g, records)
	require.Len(t, valid, 1)
	require.Equal(t, "ok", valid[0].ID)
	require.Equal(t, 3, skipped)
}

// Clustering partitions demands across couriers, keeping each demand's
// pickup and delivery together, and still produces a full plan when the
// fleet is smaller than the demand count.
func TestPlan_ClusteringManyDemands(t *testing.T) {
	nodes := []road.NodeRecord{{ID: "W", Lat: 0, Lon: 0}}
	segs := []road.SegmentRecord{}
	for i := 0; i < 6; i++ {
		p := "p" + string(rune('0'+i))
		d := "d" + string(rune('0'+i))
		lat := float64(i) * 0.01
		nodes = append(nodes, road.NodeRecord{ID: p, Lat: lat, Lon: lat})
		nodes = append(nodes, road.NodeRecord{ID: d, Lat: lat + 0.001, Lon: lat + 0.001})
		segs = append(segs,
			road.SegmentRecord{OriginID: "W", DestinationID: p, Length: 100},
			road.SegmentRecord{OriginID: p, DestinationID: d, Length: 50},
			road.SegmentRecord{OriginID: d, DestinationID: "W", Length: 100},
		)
	}
	g, err := road.Ingest(nodes, segs, "W")
	require.NoError(t, err)

	var demands []fleet.DemandRecord
	for i := 0; i < 6; i++ {
		p := "p" + string(rune('0'+i))
		d := "d" + string(rune('0'+i))
		demands = append(demands, fleet.DemandRecord{ID: p + d, PickupNodeID: p, DeliveryNodeID: d})
	}
	couriers := []*fleet.Courier{{ID: "c1", Name: "A"}, {ID: "c2", Name: "B"}}

	code, tours := fleet.Plan(g, "W", demands, couriers)
	require.Equal(t, fleet.Ok, code)
	require.LessOrEqual(t, len(tours), len(couriers))

	seen := make(map[string]bool)
	for _, tour := range tours {
		for _, stop := range tour.Stops {
			seen[stop.Node.ID] = true
		}
	}
	for _, d := range demands {
		require.True(t, seen[d.PickupNodeID], "pickup %s covered", d.PickupNodeID)
		require.True(t, seen[d.DeliveryNodeID], "delivery %s covered", d.DeliveryNodeID)
	}
}

// Determinism: identical input yields identical output across reruns.
func TestPlan_Deterministic(t *testing.T) {
	g := buildTriangleGraph(t)
	demands := []fleet.DemandRecord{{ID: "d1", PickupNodeID: "A", DeliveryNodeID: "B", PickupDuration: 30, DeliveryDuration: 30}}
	couriers := []*fleet.Courier{{ID: "c1", Name: "Alice"}}

	code1, tours1 := fleet.Plan(g, "W", demands, couriers)
	code2, tours2 := fleet.Plan(g, "W", demands, couriers)
	require.Equal(t, code1, code2)
	require.Equal(t, tours1[0].TotalDistance, tours2[0].TotalDistance)
	require.Equal(t, tours1[0].TotalDuration, tours2[0].TotalDuration)
}

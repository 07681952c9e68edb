// Package fleet - demand ingestion. Mirrors road.Ingest's constructor-contract
// role but with a skip-and-count policy instead of all-or-nothing rejection:
// an invalid demand is dropped and counted, not fatal to the whole batch.
package fleet

import "github.com/lastmile-labs/tourcore/road"

// IngestDemands validates each DemandRecord against g: both node ids must be
// present and the pickup id must differ from the delivery id. Invalid
// records are skipped rather than aborting the batch; skipped reports how
// many were dropped.
//
// Complexity: O(len(records)).
func IngestDemands(g *road.RoadGraph, records []DemandRecord) (valid []DemandRecord, skipped int) {
	valid = make([]DemandRecord, 0, len(records))

	for _, r := range records {
		if r.PickupNodeID == r.DeliveryNodeID {
			skipped++
			continue
		}
		if _, ok := g.GetNode(r.PickupNodeID); !ok {
			skipped++
			continue
		}
		if _, ok := g.GetNode(r.DeliveryNodeID); !ok {
			skipped++
			continue
		}

		valid = append(valid, r)
	}

	return valid, skipped
}

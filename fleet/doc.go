// Package fleet partitions demands among couriers and assembles a complete
// Tour for each, reporting a three-valued result code rather than a Go
// error at its public boundary (Plan's code is part of the wire contract
// and must be preserved bit-for-bit: 0=Ok, 1=Error, 2=WorkdayExceeded).
//
// Planning proceeds in three steps:
//
//  1. Demand distribution - one demand per courier when there are at most
//     as many demands as couriers; otherwise k-means++ clustering over each
//     demand's pickup/delivery midpoint, with pickup and delivery always
//     assigned atomically to the same cluster.
//  2. Per-courier tour construction - build a tourmatrix.Matrix over each
//     non-empty cluster's points, solve with routeplan, assemble the Tour.
//  3. Workday check - abort (without planning further couriers) the moment
//     any produced tour exceeds the 8-hour workday budget.
//
// File layout:
//   - types.go   - Code, Courier, Tour, Options, sentinel errors.
//   - ingest.go  - IngestDemands (skip-and-count validation).
//   - rng.go     - deterministic RNG plumbing for k-means++ seeding.
//   - kmeans.go  - k-means++ demand clustering.
//   - plan.go    - Plan, the public orchestrator.
package fleet

// Package tourcore is the tour-planning core of a pickup-and-delivery
// vehicle routing application for urban last-mile delivery.
//
// Given a street network, a warehouse, a set of pickup->delivery demands and
// a fleet of couriers, the core produces, for each courier, an ordered visit
// sequence that starts and ends at the warehouse, visits every assigned
// pickup before its matching delivery, minimizes total travel time, and
// stays within an 8-hour working-day budget.
//
// The core is five cooperating components, each its own package, wired
// leaves-first:
//
//	road/        - directed weighted graph of intersections and street
//	               segments; neighbor and edge lookup (bidirectional
//	               traversal over directed segments).
//	pathfind/    - Dijkstra and A* shortest paths over road, with the
//	               domain's fixed 15 km/h travel-time derivation.
//	tourmatrix/  - all-pairs leg cache (travel time + full path) for a
//	               chosen set of pickup/delivery/warehouse points.
//	routeplan/   - the TSP-with-precedence solver: V0 (feasible-only),
//	               V1 (exact branch-and-bound, small instances), V2
//	               (greedy nearest-neighbor + 2-opt, larger instances).
//	fleet/       - k-means++ demand clustering across couriers, per-courier
//	               tour assembly, and the 8-hour workday budget check.
//
// Dependency order matches the list above: road <- pathfind <- tourmatrix
// <- routeplan <- fleet. There is no code at the repository root beyond this
// overview; callers import the subpackage they need.
//
// The core is deliberately narrow: it does not parse XML/JSON street or
// demand files, persist computed tours, render any UI, reverse-geocode
// coordinates, or expose an HTTP facade. Those are external collaborators
// that call into road.Ingest and fleet.Plan.
package tourcore

// Package fleet - k-means++ demand clustering, one cluster per courier.
//
// Each demand is reduced to a single 2-D point, the midpoint of its pickup
// and delivery coordinates, so that clustering is atomic "for free": a
// demand is assigned to a cluster as a unit, and its pickup and delivery
// TourPoints always end up in the same courier's cluster because there is
// only ever one position per demand.
//
// Follows a plain-struct, no-closures style with an explicitly seeded RNG
// for reproducible clustering; gonum's r2.Vec stands in for a 2-D point type.
package fleet

import (
	"math/rand"

	"github.com/lastmile-labs/tourcore/road"
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/spatial/r2"
)

// vecDistance returns the Euclidean (L2) distance between two points, via
// gonum/floats' general Minkowski-distance helper rather than a hand-rolled
// sqrt(dx²+dy²).
func vecDistance(a, b r2.Vec) float64 {
	return floats.Distance([]float64{a.X, a.Y}, []float64{b.X, b.Y}, 2)
}

// centroidShiftTolerance is the per-centroid movement below which k-means++
// is considered converged.
const centroidShiftTolerance = 0.001

// demandMidpoint returns the midpoint, in raw decimal-degree coordinates, of
// a demand's pickup and delivery nodes. The clustering distance metric is
// Euclidean in degree units, so no meters projection is applied here -
// unlike pathfind's A* heuristic, which does project.
func demandMidpoint(pickup, delivery *road.Node) r2.Vec {
	return r2.Vec{
		X: (pickup.Lat + delivery.Lat) / 2,
		Y: (pickup.Lon + delivery.Lon) / 2,
	}
}

// kMeansPlusPlusSeed chooses k initial centroids from positions using the
// k-means++ rule: the first centroid is the position of a uniformly random
// point; each subsequent centroid is the point whose minimum distance to the
// already-chosen centroids is maximal, with ties broken by earliest index.
//
// Complexity: O(k·n).
func kMeansPlusPlusSeed(positions []r2.Vec, k int, rng *rand.Rand) []r2.Vec {
	centroids := make([]r2.Vec, 0, k)
	centroids = append(centroids, positions[rng.Intn(len(positions))])

	for len(centroids) < k {
		bestIdx := -1
		bestDist := -1.0
		for i, p := range positions {
			d := minDistToCentroids(p, centroids)
			if d > bestDist {
				bestDist = d
				bestIdx = i
			}
		}
		centroids = append(centroids, positions[bestIdx])
	}

	return centroids
}

// minDistToCentroids returns the smallest Euclidean distance from p to any
// already-chosen centroid.
func minDistToCentroids(p r2.Vec, centroids []r2.Vec) float64 {
	min := vecDistance(p, centroids[0])
	for _, c := range centroids[1:] {
		if d := vecDistance(p, c); d < min {
			min = d
		}
	}

	return min
}

// nearestCentroidIndex returns the index of the centroid closest to p,
// breaking ties by the lowest index.
func nearestCentroidIndex(p r2.Vec, centroids []r2.Vec) int {
	best := 0
	bestDist := vecDistance(p, centroids[0])
	for i := 1; i < len(centroids); i++ {
		if d := vecDistance(p, centroids[i]); d < bestDist {
			best = i
			bestDist = d
		}
	}

	return best
}

// kMeansPlusPlus clusters positions into k groups, returning the cluster
// index assigned to each position. It seeds with kMeansPlusPlusSeed, then
// iterates at most maxIter passes of reassign-then-recompute, stopping early
// once every centroid moves less than centroidShiftTolerance. A cluster that
// loses all members during reassignment keeps its
// previous centroid rather than collapsing to the origin.
//
// Complexity: O(maxIter · k · n).
func kMeansPlusPlus(positions []r2.Vec, k int, rng *rand.Rand, maxIter int) []int {
	n := len(positions)
	assignments := make([]int, n)

	if k <= 0 || n == 0 {
		return assignments
	}
	if k >= n {
		// Degenerate: more clusters than points. Every point is its own
		// cluster; remaining cluster indices simply stay empty.
		for i := range positions {
			assignments[i] = i
		}

		return assignments
	}

	centroids := kMeansPlusPlusSeed(positions, k, rng)

	for iter := 0; iter < maxIter; iter++ {
		for i, p := range positions {
			assignments[i] = nearestCentroidIndex(p, centroids)
		}

		sums := make([]r2.Vec, k)
		counts := make([]int, k)
		for i, p := range positions {
			c := assignments[i]
			sums[c] = r2.Add(sums[c], p)
			counts[c]++
		}

		maxShift := 0.0
		next := make([]r2.Vec, k)
		for c := 0; c < k; c++ {
			if counts[c] == 0 {
				next[c] = centroids[c]
				continue
			}

			next[c] = r2.Scale(1/float64(counts[c]), sums[c])
			if shift := r2.Norm(r2.Sub(next[c], centroids[c])); shift > maxShift {
				maxShift = shift
			}
		}

		centroids = next
		if maxShift < centroidShiftTolerance {
			break
		}
	}

	for i, p := range positions {
		assignments[i] = nearestCentroidIndex(p, centroids)
	}

	return assignments
}

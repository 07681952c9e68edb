// Package pathfind - lazy-deletion priority queue shared by Dijkstra and A*.
//
// Both algorithms push duplicate entries instead of decreasing keys in place
// (the "lazy decrease-key" pattern): when a shorter distance/priority to a
// node is found, a fresh entry is pushed and the stale one is later skipped
// when popped, by checking a visited/closed set.
package pathfind

// pqItem is one entry in the priority queue: a node ID and its priority.
// For Dijkstra, priority is the tentative distance; for A*, it is g+h.
type pqItem struct {
	id       string
	priority float64
}

// nodePQ is a min-heap of *pqItem ordered by priority ascending.
type nodePQ []*pqItem

func (pq nodePQ) Len() int            { return len(pq) }
func (pq nodePQ) Less(i, j int) bool  { return pq[i].priority < pq[j].priority }
func (pq nodePQ) Swap(i, j int)       { pq[i], pq[j] = pq[j], pq[i] }
func (pq *nodePQ) Push(x interface{}) { *pq = append(*pq, x.(*pqItem)) }
func (pq *nodePQ) Pop() interface{} {
	old := *pq
	n := len(old)
	item := old[n-1]
	*pq = old[:n-1]

	return item
}

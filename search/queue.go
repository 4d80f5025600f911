// Package search implements the gradient-descent selector and candidate
// priority queue: spec §4.D.
package search

import (
	"container/heap"

	"github.com/motionstack/frenetplan/frenet"
	"github.com/motionstack/frenetplan/sampling"
)

// candidateItem is one entry in the min-heap: a materialized path plus the
// grid index it came from (kept for diagnostics/telemetry, not required for
// correctness).
type candidateItem struct {
	path *frenet.Path
	idx  sampling.Index
}

// candidateHeap is a container/heap-based min-heap ordered by FinalCost,
// grounded on the one concrete min-heap idiom found in the retrieval pack
// (katalvlaran-lvlath/graph/dijkstra.go's container/heap-based nodePQ).
type candidateHeap []*candidateItem

func (h candidateHeap) Len() int { return len(h) }
func (h candidateHeap) Less(i, j int) bool {
	return h[i].path.FinalCost() < h[j].path.FinalCost()
}
func (h candidateHeap) Swap(i, j int) { h[i], h[j] = h[j], h[i] }

func (h *candidateHeap) Push(x interface{}) {
	*h = append(*h, x.(*candidateItem))
}

func (h *candidateHeap) Pop() interface{} {
	old := *h
	n := len(old)
	item := old[n-1]
	old[n-1] = nil
	*h = old[:n-1]
	return item
}

// CandidateQueue is a min-heap of materialized candidates, keyed by
// FinalCost. Because every grid cell is generated at most once
// (Cell.IsGenerated), no (i,j,k) can ever be pushed twice (spec §3: "Candidate
// queue ... multiple entries for the same (i,j,k) are forbidden").
type CandidateQueue struct {
	h candidateHeap
}

// NewCandidateQueue returns an empty, initialized queue.
func NewCandidateQueue() *CandidateQueue {
	q := &CandidateQueue{}
	heap.Init(&q.h)
	return q
}

// Push adds a materialized candidate to the queue.
func (q *CandidateQueue) Push(path *frenet.Path, idx sampling.Index) {
	heap.Push(&q.h, &candidateItem{path: path, idx: idx})
}

// Len returns the number of candidates still in the queue.
func (q *CandidateQueue) Len() int { return q.h.Len() }

// Pop removes and returns the candidate with the lowest FinalCost. It panics
// if the queue is empty; callers must check Len() first.
func (q *CandidateQueue) Pop() (*frenet.Path, sampling.Index) {
	item := heap.Pop(&q.h).(*candidateItem)
	return item.path, item.idx
}

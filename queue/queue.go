// Package queue provides a score-ordered priority queue used for top-k
// result extraction.
package queue

import "container/heap"

// Compile time check to ensure PriorityQueue satisfies the heap interface.
var _ heap.Interface = (*PriorityQueue)(nil)

// PriorityQueueItem represents an item in the priority queue.
type PriorityQueueItem struct {
	Ref   int     // Ref is the position of the scored item in its owning collection.
	Score float64 // Score is the priority of the item in the queue.
	Index int     // Index is maintained by the heap.Interface methods.
}

// PriorityQueue implements heap.Interface and holds PriorityQueueItems.
type PriorityQueue struct {
	Order bool                 // Order false keeps the lowest score on top, true the highest.
	Items []*PriorityQueueItem // Items contains the elements of the priority queue.
}

// NewMin creates a min-ordered priority queue: the lowest score is on top.
// Used to keep the k best results by evicting the worst of the kept set.
func NewMin(capacity int) *PriorityQueue {
	return &PriorityQueue{Items: make([]*PriorityQueueItem, 0, capacity)}
}

// NewMax creates a max-ordered priority queue: the highest score is on top.
func NewMax(capacity int) *PriorityQueue {
	return &PriorityQueue{Order: true, Items: make([]*PriorityQueueItem, 0, capacity)}
}

// Len returns the number of elements in the priority queue.
func (pq *PriorityQueue) Len() int { return len(pq.Items) }

// Less reports whether the element with index i should sort before the element with index j.
func (pq *PriorityQueue) Less(i, j int) bool {
	if !pq.Order {
		return pq.Items[i].Score < pq.Items[j].Score
	}
	return pq.Items[i].Score > pq.Items[j].Score
}

// Swap swaps the elements with indexes i and j.
func (pq *PriorityQueue) Swap(i, j int) {
	pq.Items[i], pq.Items[j] = pq.Items[j], pq.Items[i]
	pq.Items[i].Index, pq.Items[j].Index = i, j // Update indices
}

// Push adds x to the priority queue.
func (pq *PriorityQueue) Push(x any) {
	item, _ := x.(*PriorityQueueItem)
	item.Index = len(pq.Items)
	pq.Items = append(pq.Items, item)
}

// Pop removes and returns the top element from the priority queue.
func (pq *PriorityQueue) Pop() any {
	if len(pq.Items) == 0 {
		return nil
	}

	old := pq.Items
	n := len(old)
	item := old[n-1]
	old[n-1] = nil       // Avoid memory leak
	item.Index = -1      // For safety
	pq.Items = old[:n-1] // Reslice without creating a new underlying array

	return item
}

// Top returns the top element of the priority queue without removing it.
func (pq *PriorityQueue) Top() *PriorityQueueItem {
	return pq.Items[0]
}

package queue

import (
	"container/heap"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func push(pq *PriorityQueue, scores ...float64) {
	for i, s := range scores {
		heap.Push(pq, &PriorityQueueItem{Ref: i, Score: s})
	}
}

func popScores(pq *PriorityQueue) []float64 {
	var out []float64
	for pq.Len() > 0 {
		item, _ := heap.Pop(pq).(*PriorityQueueItem)
		out = append(out, item.Score)
	}
	return out
}

func TestMinOrder(t *testing.T) {
	pq := NewMin(8)
	push(pq, 0.5, 0.1, 0.9, 0.3)

	assert.Equal(t, 0.1, pq.Top().Score)
	assert.Equal(t, []float64{0.1, 0.3, 0.5, 0.9}, popScores(pq))
}

func TestMaxOrder(t *testing.T) {
	pq := NewMax(8)
	push(pq, 0.5, 0.1, 0.9, 0.3)

	assert.Equal(t, 0.9, pq.Top().Score)
	assert.Equal(t, []float64{0.9, 0.5, 0.3, 0.1}, popScores(pq))
}

func TestRefSurvivesHeapOperations(t *testing.T) {
	pq := NewMin(4)
	push(pq, 0.7, 0.2, 0.4)

	item, _ := heap.Pop(pq).(*PriorityQueueItem)
	require.NotNil(t, item)
	assert.Equal(t, 1, item.Ref) // 0.2 was pushed second
	assert.Equal(t, -1, item.Index)
}

func TestPopEmpty(t *testing.T) {
	pq := NewMin(0)
	assert.Nil(t, pq.Pop())
}

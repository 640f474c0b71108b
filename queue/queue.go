// Package queue provides the discrete-event simulator's priority queue:
// messages ordered by arrival time, ties broken by insertion sequence so
// delivery order is deterministic for a given run.
package queue

import (
	"container/heap"

	"github.com/kprusa/distsim/core"
)

// item wraps a *core.Message for heap bookkeeping. index lets Fix/Remove locate
// an entry in O(log n); this module never needs Fix/Remove today, but keeping
// the field costs nothing and matches container/heap's usual shape.
type item struct {
	msg   *core.Message
	index int
}

// innerHeap implements heap.Interface over []*item, the same shape lvlath's
// graph/dijkstra.go uses for its nodePQ: Less compares on the ordering key,
// Push/Pop append/remove at the slice tail, and a separate exported type
// wraps it so callers never touch heap.Interface directly.
type innerHeap []*item

func (h innerHeap) Len() int { return len(h) }

func (h innerHeap) Less(i, j int) bool {
	if h[i].msg.ArrivalTime != h[j].msg.ArrivalTime {
		return h[i].msg.ArrivalTime < h[j].msg.ArrivalTime
	}
	return h[i].msg.Seq < h[j].msg.Seq
}

func (h innerHeap) Swap(i, j int) {
	h[i], h[j] = h[j], h[i]
	h[i].index = i
	h[j].index = j
}

func (h *innerHeap) Push(x any) {
	it := x.(*item)
	it.index = len(*h)
	*h = append(*h, it)
}

func (h *innerHeap) Pop() any {
	old := *h
	n := len(old)
	it := old[n-1]
	old[n-1] = nil
	*h = old[:n-1]
	return it
}

// EventQueue is a min-heap of pending messages ordered by (ArrivalTime, Seq).
// A zero EventQueue is not usable; construct one with New.
type EventQueue struct {
	h       innerHeap
	nextSeq uint64
}

// New returns an empty EventQueue ready for use.
func New() *EventQueue {
	return &EventQueue{h: make(innerHeap, 0)}
}

// Push enqueues msg, always stamping it with the next insertion sequence
// number and overwriting any Seq the caller supplied (a caller-supplied 0
// could not be told apart from an unstamped message).
func (q *EventQueue) Push(msg *core.Message) {
	msg.Seq = q.nextSeq
	q.nextSeq++
	heap.Push(&q.h, &item{msg: msg})
}

// Pop removes and returns the message with the smallest (ArrivalTime, Seq),
// or (nil, false) if the queue is empty.
func (q *EventQueue) Pop() (*core.Message, bool) {
	if q.h.Len() == 0 {
		return nil, false
	}
	it := heap.Pop(&q.h).(*item)
	return it.msg, true
}

// Peek returns the next message without removing it, or (nil, false) if the
// queue is empty.
func (q *EventQueue) Peek() (*core.Message, bool) {
	if q.h.Len() == 0 {
		return nil, false
	}
	return q.h[0].msg, true
}

// Len reports the number of pending messages.
func (q *EventQueue) Len() int { return q.h.Len() }

// Empty reports whether the queue has no pending messages.
func (q *EventQueue) Empty() bool { return q.h.Len() == 0 }

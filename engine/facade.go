// Package engine drains the event queue against a set of core.Node values,
// dispatching each delivered message to its destination's bound algorithm.
// Its shape is grounded on the teacher's Node.Run/handler pair, collapsed
// from a real-time ticker-driven select loop into a pure queue-drain loop
// since this module's clock is simulated, not wall-clock.
package engine

import (
	"math/rand"

	"github.com/kprusa/distsim/core"
	"github.com/kprusa/distsim/queue"
)

// DelayFunc produces the delay a newly sent message waits before arrival.
// Constant and Random below are the two modes scenarios in this module use;
// algorithms never construct a DelayFunc themselves, only the engine does
// based on run configuration.
type DelayFunc func() float64

// Facade is the engine's sole implementation of core.Communicator. Every
// Algorithm reaches the event queue exclusively through the Facade handed to
// its Init/OnMessage hooks, mirroring the teacher's sendHello/sendTC/sendData
// trio that funnels every outgoing message through one Node method each.
type Facade struct {
	nodes map[core.NodeID]*core.Node
	q     *queue.EventQueue
	delay DelayFunc
}

// NewFacade builds a Facade over nodes (keyed by id) and q, using delay to
// compute each message's travel time.
func NewFacade(nodes map[core.NodeID]*core.Node, q *queue.EventQueue, delay DelayFunc) *Facade {
	return &Facade{nodes: nodes, q: q, delay: delay}
}

// terminated reports whether source is known and currently terminated; a
// terminated node's Send/SendToAll calls are silently dropped. Delivery
// itself is never gated this way: a message already in flight to a
// terminated node still invokes OnMessage, per this module's design note
// that only the send side enforces the guard.
func (f *Facade) terminated(source core.NodeID) bool {
	n, ok := f.nodes[source]
	return ok && n.State() == core.StateTerminated
}

// Send enqueues content from source to dest with sentTime defaulted to 0.
func (f *Facade) Send(source, dest core.NodeID, content string) {
	f.SendAt(source, dest, content, 0)
}

// SendAt enqueues content from source to dest with an explicit sentTime; the
// message's ArrivalTime is sentTime plus this Facade's configured delay.
func (f *Facade) SendAt(source, dest core.NodeID, content string, sentTime float64) {
	if f.terminated(source) {
		return
	}
	f.q.Push(&core.Message{
		Source:      source,
		Dest:        dest,
		ArrivalTime: sentTime + f.delay(),
		Content:     content,
	})
}

// SendToAll enqueues content from source to every one of its neighbors, with
// sentTime defaulted to 0.
func (f *Facade) SendToAll(source core.NodeID, content string) {
	f.SendToAllAt(source, content, 0)
}

// SendToAllAt is SendToAll with an explicit sentTime.
func (f *Facade) SendToAllAt(source core.NodeID, content string, sentTime float64) {
	if f.terminated(source) {
		return
	}
	n, ok := f.nodes[source]
	if !ok {
		return
	}
	for _, dest := range n.Neighbors() {
		f.q.Push(&core.Message{
			Source:      source,
			Dest:        dest,
			ArrivalTime: sentTime + f.delay(),
			Content:     content,
		})
	}
}

// Constant returns a DelayFunc that always yields 1.0, the fixed per-hop
// delay this module's Constant delay mode uses.
func Constant() DelayFunc {
	return func() float64 { return 1.0 }
}

// Random returns a DelayFunc that draws a fresh delay from rng.Float64() on
// every call, the jittered per-hop delay this module's Random delay mode uses.
func Random(rng *rand.Rand) DelayFunc {
	return func() float64 { return rng.Float64() }
}

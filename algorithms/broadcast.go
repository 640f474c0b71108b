// Package algorithms holds the built-in Algorithm implementations this
// module ships, registered into core's static registry the way database/sql
// drivers register themselves from an init() function.
package algorithms

import "github.com/kprusa/distsim/core"

func init() {
	core.Register("broadcast", func() core.Algorithm { return &Broadcast{} })
}

// Broadcast is the simplest flooding algorithm: the root informs every
// neighbor, and any node hearing the broadcast for the first time relays it
// onward once. Grounded on the teacher's sendHello/handleHello pair, which
// floods a HELLO the same way minus OLSR's sequence-number bookkeeping.
type Broadcast struct{}

// Init starts the flood from the root and terminates it; every other node
// waits. The relay happens before the state transition since the facade
// gates Send/SendToAll on the source's state at call time — marking the
// node terminated first would make its own flood a no-op.
func (b *Broadcast) Init(node *core.Node, comm core.Communicator) {
	if node.IsRoot() {
		comm.SendToAll(node.ID(), "broadcast")
		node.SetState(core.StateTerminated)
	}
}

// OnMessage relays the broadcast onward exactly once per node, then
// terminates.
func (b *Broadcast) OnMessage(node *core.Node, comm core.Communicator, arrivalTime float64, content string) {
	if node.State() == core.StateTerminated {
		return
	}
	comm.SendToAllAt(node.ID(), "broadcast", arrivalTime)
	node.SetState(core.StateTerminated)
}

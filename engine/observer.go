package engine

import "github.com/kprusa/distsim/core"

// Observer is the read-only boundary an external consumer (a GUI, a test
// harness) uses to watch a run without reaching into the engine's internals.
// Grounded on the clocks-simulation example's Simulation.GetState/GetNodes
// pair, adapted from a push callback to a pull/poll shape since this
// module's display layer drives its own refresh cadence.
type Observer interface {
	// Nodes returns the run's node set, keyed by id. Callers must not mutate
	// the returned nodes; Observer is read-only by convention, not by copy.
	Nodes() map[core.NodeID]*core.Node
	// Poll returns the next unread change log entry, or ok=false if the
	// consumer has caught up to the engine.
	Poll() (rec ChangeRecord, ok bool)
}

// PollingObserver is the engine's Observer implementation.
type PollingObserver struct {
	nodes map[core.NodeID]*core.Node
	log   *ChangeLog
}

// NewPollingObserver wraps nodes and log for read-only external consumption.
func NewPollingObserver(nodes map[core.NodeID]*core.Node, log *ChangeLog) *PollingObserver {
	return &PollingObserver{nodes: nodes, log: log}
}

func (o *PollingObserver) Nodes() map[core.NodeID]*core.Node {
	return o.nodes
}

func (o *PollingObserver) Poll() (ChangeRecord, bool) {
	return o.log.Next()
}

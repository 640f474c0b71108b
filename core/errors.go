package core

import "fmt"

// ErrAlgorithmLoadFailed reports that the algorithm loader could not resolve or
// bind the requested algorithm. Fatal: the engine aborts before the drain loop.
type ErrAlgorithmLoadFailed struct {
	Reason string
}

func (e *ErrAlgorithmLoadFailed) Error() string {
	return fmt.Sprintf("algorithm load failed: %s", e.Reason)
}

// ErrMissingHook reports that a node has no algorithm bound for the given phase.
// At the Init phase it is fatal: NewEngine returns it and no run starts. During
// Run it is a per-delivery fault: the engine reports it once per node, skips
// the delivery, and continues.
type ErrMissingHook struct {
	Node  NodeID
	Phase string
}

func (e *ErrMissingHook) Error() string {
	return fmt.Sprintf("node %d: missing hook for phase %s", e.Node, e.Phase)
}

// ErrUnknownDestination reports that a message targets an id absent from the
// run's node set. Per-delivery fault: the engine logs and drops it.
type ErrUnknownDestination struct {
	Dest NodeID
}

func (e *ErrUnknownDestination) Error() string {
	return fmt.Sprintf("unknown destination: %d", e.Dest)
}

package engine

import (
	"github.com/kprusa/distsim/core"
	"github.com/kprusa/distsim/queue"
)

// DisplayMode controls whether a run's change log records anything. Text
// mode runs without a graphical observer attached, so recording snapshots
// would just be wasted memory; Graph mode is what a GUI/visualizer polls.
type DisplayMode string

const (
	DisplayText  DisplayMode = "Text"
	DisplayGraph DisplayMode = "Graph"
)

// Engine owns a run's event queue, node set, facade, change log, and tracer,
// and drives delivery until the queue empties. Its drain loop is grounded on
// the teacher's Node.Run: that loop ticked a real-time clock and selected
// over channels per tick; this one pops the next due message directly,
// since nothing here needs a wall-clock tick once delivery order is fixed
// by the event queue.
type Engine struct {
	nodes   map[core.NodeID]*core.Node
	q       *queue.EventQueue
	facade  *Facade
	log     *ChangeLog
	tracer  *Tracer
	display DisplayMode
}

// NewEngine builds an Engine over nodes (already shaped by topology and
// identity), using delay to compute message travel time, level to control
// trace verbosity, and display to gate change-log recording. It calls Init
// on every node's bound algorithm before returning, so Run only ever drains
// messages those Init calls or later deliveries produce.
func NewEngine(nodes []*core.Node, delay DelayFunc, level TraceLevel, display DisplayMode) (*Engine, error) {
	byID := make(map[core.NodeID]*core.Node, len(nodes))
	for _, n := range nodes {
		byID[n.ID()] = n
	}

	q := queue.New()
	facade := NewFacade(byID, q, delay)
	e := &Engine{
		nodes:   byID,
		q:       q,
		facade:  facade,
		log:     NewChangeLog(),
		tracer:  NewTracer(level),
		display: display,
	}

	e.tracer.Start(len(nodes))

	for _, n := range nodes {
		alg := n.Algorithm()
		if alg == nil {
			return nil, &core.ErrMissingHook{Node: n.ID(), Phase: "Init"}
		}
		alg.Init(n, facade)
		e.recordIfChanged(n, 0)
	}
	e.tracer.InitSummary(len(nodes))
	return e, nil
}

// Nodes returns the run's node set, keyed by id.
func (e *Engine) Nodes() map[core.NodeID]*core.Node {
	return e.nodes
}

// ChangeLog returns the run's change log, for wiring into an Observer.
func (e *Engine) ChangeLog() *ChangeLog {
	return e.log
}

// Tracer returns the run's tracer.
func (e *Engine) Tracer() *Tracer {
	return e.tracer
}

// Run drains the event queue to completion, dispatching each message to its
// destination's bound algorithm. Per-delivery faults (an unknown destination,
// a node with no bound algorithm) are traced and skipped rather than aborting
// the run, matching this module's fatal-vs-isolated error split.
func (e *Engine) Run() {
	deliveries := 0
	reportedMissing := make(map[core.NodeID]bool)
	for {
		msg, ok := e.q.Pop()
		if !ok {
			break
		}
		e.tracer.Delivery(msg)
		deliveries++

		dest, known := e.nodes[msg.Dest]
		if !known {
			e.tracer.Fault(&core.ErrUnknownDestination{Dest: msg.Dest})
			continue
		}
		alg := dest.Algorithm()
		if alg == nil {
			if !reportedMissing[msg.Dest] {
				reportedMissing[msg.Dest] = true
				e.tracer.Fault(&core.ErrMissingHook{Node: msg.Dest, Phase: "OnMessage"})
			}
			continue
		}

		alg.OnMessage(dest, e.facade, msg.ArrivalTime, msg.Content)
		e.recordIfChanged(dest, msg.ArrivalTime)
	}
	e.tracer.End(deliveries)
}

// recordIfChanged appends a change-log entry only when display is Graph; the
// changed flag itself is always reset, since the dispatcher's "flag is false
// on entry" invariant holds regardless of whether anything observes the log.
func (e *Engine) recordIfChanged(n *core.Node, t float64) {
	if !n.HasChanged() {
		return
	}
	if e.display == DisplayGraph {
		e.log.Append(ChangeRecord{Node: n.ID(), Time: t, Snap: n.Snapshot()})
	}
	n.ResetChanged()
}

package algorithms

import (
	"testing"

	"github.com/kprusa/distsim/core"
	"github.com/kprusa/distsim/engine"
)

func buildLine(n int) []*core.Node {
	nodes := make([]*core.Node, n)
	for i := range nodes {
		nodes[i] = core.NewNode(core.NodeID(i))
	}
	for i := 0; i+1 < n; i++ {
		nodes[i].AddNeighbor(nodes[i+1].ID())
		nodes[i+1].AddNeighbor(nodes[i].ID())
	}
	return nodes
}

func TestBroadcast_ReachesEveryNode(t *testing.T) {
	nodes := buildLine(5)
	for _, n := range nodes {
		n.BindAlgorithm(&Broadcast{})
	}
	nodes[0].SetRoot(true)

	e, err := engine.NewEngine(nodes, engine.Constant(), engine.Short, engine.DisplayGraph)
	if err != nil {
		t.Fatalf("NewEngine error: %v", err)
	}
	e.Run()

	for _, n := range nodes {
		if n.State() != core.StateTerminated {
			t.Errorf("node %d state = %q, want %q", n.ID(), n.State(), core.StateTerminated)
		}
	}
}

func TestLoad_Broadcast(t *testing.T) {
	alg, err := core.Load("broadcast")
	if err != nil {
		t.Fatalf("Load(broadcast) error: %v", err)
	}
	if _, ok := alg.(*Broadcast); !ok {
		t.Fatalf("Load(broadcast) = %T, want *Broadcast", alg)
	}
}

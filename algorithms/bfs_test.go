package algorithms

import (
	"testing"

	"github.com/kprusa/distsim/core"
	"github.com/kprusa/distsim/engine"
)

func TestBFS_AssignsDistancesAlongLine(t *testing.T) {
	nodes := buildLine(4)
	for _, n := range nodes {
		n.BindAlgorithm(&BFS{})
	}
	nodes[0].SetRoot(true)

	e, err := engine.NewEngine(nodes, engine.Constant(), engine.Short, engine.DisplayGraph)
	if err != nil {
		t.Fatalf("NewEngine error: %v", err)
	}
	e.Run()

	for i, n := range nodes {
		d, ok := n.Get("distance")
		if !ok || d != i {
			t.Errorf("node %d distance = %v, want %d", n.ID(), d, i)
		}
	}
	for i := 1; i < len(nodes); i++ {
		parent, ok := nodes[i].Get("parent")
		if !ok || parent != nodes[i-1].ID() {
			t.Errorf("node %d parent = %v, want %d", nodes[i].ID(), parent, nodes[i-1].ID())
		}
	}
}

func TestLoad_BFS(t *testing.T) {
	alg, err := core.Load("bfs")
	if err != nil {
		t.Fatalf("Load(bfs) error: %v", err)
	}
	if _, ok := alg.(*BFS); !ok {
		t.Fatalf("Load(bfs) = %T, want *BFS", alg)
	}
}

func TestEncodeDecodeBFS_RoundTrip(t *testing.T) {
	content := encodeBFS(3, core.NodeID(7))
	distance, sender, ok := decodeBFS(content)
	if !ok || distance != 3 || sender != 7 {
		t.Errorf("decodeBFS(%q) = %d, %d, %v, want 3, 7, true", content, distance, sender, ok)
	}
}

package identity

import (
	"math/rand"
	"testing"

	"github.com/kprusa/distsim/core"
)

func newPlaceholders(n int) []*core.Node {
	nodes := make([]*core.Node, n)
	for i := range nodes {
		nodes[i] = core.NewNode(core.NodeID(i))
	}
	return nodes
}

func TestAssign_Sequential(t *testing.T) {
	nodes := Assign(newPlaceholders(4), Sequential, nil)
	for i, n := range nodes {
		if n.ID() != core.NodeID(i) {
			t.Errorf("nodes[%d].ID() = %d, want %d", i, n.ID(), i)
		}
	}
}

func TestAssign_RandomProducesDistinctIDsInRange(t *testing.T) {
	rng := rand.New(rand.NewSource(1))
	n := 5
	nodes := Assign(newPlaceholders(n), Random, rng)

	seen := make(map[core.NodeID]bool)
	for _, node := range nodes {
		id := node.ID()
		if id < 100 || id >= core.NodeID(100*n) {
			t.Errorf("id %d out of range [100, %d)", id, 100*n)
		}
		if seen[id] {
			t.Errorf("duplicate id %d", id)
		}
		seen[id] = true
	}
	if len(seen) != n {
		t.Fatalf("got %d distinct ids, want %d", len(seen), n)
	}
}

func TestAssign_RandomReordersBySortedID(t *testing.T) {
	rng := rand.New(rand.NewSource(2))
	nodes := Assign(newPlaceholders(6), Random, rng)

	for i := 1; i < len(nodes); i++ {
		if nodes[i-1].ID() >= nodes[i].ID() {
			t.Fatalf("nodes not sorted by id ascending at index %d: %d >= %d", i, nodes[i-1].ID(), nodes[i].ID())
		}
	}
}

// Package identity assigns NodeIDs to a freshly built set of nodes, the step
// the teacher's NewNode performed inline but which this module splits out so
// topology construction never has to know which id-assignment mode is active.
package identity

import (
	"math/rand"
	"sort"

	"github.com/kprusa/distsim/core"
)

// Mode selects how ids are handed to a set of nodes.
type Mode string

const (
	// Sequential assigns id == index, 0..N-1.
	Sequential Mode = "Sequential"
	// Random assigns N distinct ids drawn from [100, 100N), then re-sorts the
	// node slice by assigned id so index order still tracks id order.
	Random Mode = "Random"
)

// Assign mutates nodes in place, giving each a NodeID per mode. nodes must
// already exist (e.g. via core.NewNode(0) placeholders); Assign only sets
// ids, it never creates or removes nodes. For Random it reorders nodes
// in place to keep slice order consistent with id order, matching how the
// rest of this module assumes nodes[i] can stand in for "the i-th node".
func Assign(nodes []*core.Node, mode Mode, rng *rand.Rand) []*core.Node {
	switch mode {
	case Random:
		return assignRandom(nodes, rng)
	default:
		return assignSequential(nodes)
	}
}

func assignSequential(nodes []*core.Node) []*core.Node {
	for i, n := range nodes {
		n.SetID(core.NodeID(i))
	}
	return nodes
}

// assignRandom draws len(nodes) distinct ids from [100, 100*len(nodes)) without
// replacement: it shuffles the whole candidate range and takes the first
// len(nodes) entries, so no id is picked twice.
func assignRandom(nodes []*core.Node, rng *rand.Rand) []*core.Node {
	n := len(nodes)
	if n == 0 {
		return nodes
	}
	span := 100 * n
	candidates := make([]int, span-100)
	for i := range candidates {
		candidates[i] = 100 + i
	}
	rng.Shuffle(len(candidates), func(i, j int) {
		candidates[i], candidates[j] = candidates[j], candidates[i]
	})

	for i, node := range nodes {
		node.SetID(core.NodeID(candidates[i]))
	}

	sort.Slice(nodes, func(i, j int) bool { return nodes[i].ID() < nodes[j].ID() })
	return nodes
}

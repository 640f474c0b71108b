package algorithms

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/kprusa/distsim/core"
)

func init() {
	core.Register("bfs", func() core.Algorithm { return &BFS{} })
}

const bfsVisited = "visited"

// BFS computes a breadth-first shortest-path tree rooted at the designated
// root, grounded on the lvlath bfs package's frontier-growth shape and on
// the teacher's handleTC pattern of accepting a report only when it improves
// on what the node already holds. Since an Algorithm's OnMessage is not handed its
// sender's id directly, BFS encodes (distance, senderID) into the message
// content itself and decodes it on arrival.
type BFS struct{}

func encodeBFS(distance int, sender core.NodeID) string {
	return fmt.Sprintf("%d|%d", distance, sender)
}

func decodeBFS(content string) (distance int, sender core.NodeID, ok bool) {
	parts := strings.SplitN(content, "|", 2)
	if len(parts) != 2 {
		return 0, 0, false
	}
	d, err1 := strconv.Atoi(parts[0])
	s, err2 := strconv.Atoi(parts[1])
	if err1 != nil || err2 != nil {
		return 0, 0, false
	}
	return d, core.NodeID(s), true
}

// Init seeds the search from the root; non-root nodes wait for their first
// distance report.
func (b *BFS) Init(node *core.Node, comm core.Communicator) {
	if !node.IsRoot() {
		return
	}
	node.SetState(bfsVisited)
	node.Set("distance", 0)
	comm.SendToAll(node.ID(), encodeBFS(1, node.ID()))
}

// OnMessage accepts a distance report only when it is smaller than the
// distance the node already holds (or the node holds none yet), and relays
// the next layer to its own neighbors. Under Random delay a longer path can
// arrive first; the smaller-distance guard lets a later, shorter report
// replace it.
func (b *BFS) OnMessage(node *core.Node, comm core.Communicator, arrivalTime float64, content string) {
	distance, sender, ok := decodeBFS(content)
	if !ok {
		return
	}
	if cur, seen := node.Get("distance"); seen {
		if d, isInt := cur.(int); isInt && d <= distance {
			return
		}
	}
	node.SetState(bfsVisited)
	node.Set("distance", distance)
	node.Set("parent", sender)
	comm.SendToAllAt(node.ID(), encodeBFS(distance+1, node.ID()), arrivalTime)
}

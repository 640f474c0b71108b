// Package topology wires core.Node neighbor sets into one of the supported
// network shapes, grounded on lvlath's builder package: each shape is a
// small, validate-first constructor, and Random's connectivity is proven the
// same way lvlath's prim_kruskal package proves a spanning forest is a single
// tree — iterative union-find with path compression and union by rank.
package topology

import (
	"fmt"
	"math"
	"math/rand"

	"github.com/kprusa/distsim/core"
)

// Kind selects which network shape Build produces.
type Kind string

const (
	Line   Kind = "Line"
	Clique Kind = "Clique"
	Random Kind = "Random"
	Tree   Kind = "Tree"
	Star   Kind = "Star"
)

// Options configures Build. MaxDepth only matters for Tree (0 means use the
// default of floor(log2 N)+1); MaxRetries only matters for Random.
type Options struct {
	Kind       Kind
	MaxDepth   int
	MaxRetries int // bounded re-draws for Random to find a connected graph, default 20
	Rng        *rand.Rand
}

// ErrInvalidConfiguration reports that Build or SelectRoot cannot satisfy its
// options, e.g. an unknown kind or root mode, a missing root for Star/Tree, a
// Tree depth bound too small for N, or a missing random source.
type ErrInvalidConfiguration struct {
	Reason string
}

func (e *ErrInvalidConfiguration) Error() string {
	return fmt.Sprintf("invalid topology configuration: %s", e.Reason)
}

// ErrNotConnected reports that Build exhausted its retry budget without
// producing a connected graph (Random only; every other shape is connected
// by construction).
type ErrNotConnected struct {
	Attempts int
}

func (e *ErrNotConnected) Error() string {
	return fmt.Sprintf("topology not connected after %d attempts", e.Attempts)
}

// Build assigns neighbor sets to nodes according to opts.Kind. Nodes must
// already have ids assigned (see package identity) and, for Tree and Star,
// a root already designated (see SelectRoot, which callers must run before
// Build); Build never reorders or renames nodes, only links them.
//
// A single node is trivially connected with no edges under any Kind, so N=1
// short-circuits here regardless of which shape was requested.
func Build(nodes []*core.Node, opts Options) error {
	if len(nodes) <= 1 {
		return nil
	}
	switch opts.Kind {
	case Line:
		return buildLine(nodes)
	case Clique:
		return buildClique(nodes)
	case Star:
		return buildStar(nodes)
	case Tree:
		return buildTree(nodes, opts)
	case Random:
		return buildRandom(nodes, opts)
	default:
		return &ErrInvalidConfiguration{Reason: "unknown topology kind " + string(opts.Kind)}
	}
}

func link(a, b *core.Node) {
	a.AddNeighbor(b.ID())
	b.AddNeighbor(a.ID())
}

func findRoot(nodes []*core.Node) *core.Node {
	for _, n := range nodes {
		if n.IsRoot() {
			return n
		}
	}
	return nil
}

func buildLine(nodes []*core.Node) error {
	for i := 0; i+1 < len(nodes); i++ {
		link(nodes[i], nodes[i+1])
	}
	return nil
}

func buildClique(nodes []*core.Node) error {
	for i := 0; i < len(nodes); i++ {
		for j := i + 1; j < len(nodes); j++ {
			link(nodes[i], nodes[j])
		}
	}
	return nil
}

// buildStar connects the pre-designated root to every other node. The root
// must already be marked via SelectRoot; Build does not pick one itself.
func buildStar(nodes []*core.Node) error {
	center := findRoot(nodes)
	if center == nil {
		return &ErrInvalidConfiguration{Reason: "Star requires a pre-designated root"}
	}
	for _, n := range nodes {
		if n != center {
			link(center, n)
		}
	}
	return nil
}

// defaultTreeDepth is spec's default max_depth of floor(log2 N) + 1.
func defaultTreeDepth(n int) int {
	return int(math.Floor(math.Log2(float64(n)))) + 1
}

// buildTree grows a binary-fan-out BFS tree from the pre-designated root:
// each frontier node claims up to 2 of the still-unplaced nodes as children,
// breadth-first, until every node is placed or the depth bound is reached.
func buildTree(nodes []*core.Node, opts Options) error {
	rootIdx := -1
	for i, n := range nodes {
		if n.IsRoot() {
			rootIdx = i
			break
		}
	}
	if rootIdx == -1 {
		return &ErrInvalidConfiguration{Reason: "Tree requires a pre-designated root"}
	}

	maxDepth := opts.MaxDepth
	if maxDepth <= 0 {
		maxDepth = defaultTreeDepth(len(nodes))
	}

	unplaced := make([]int, 0, len(nodes)-1)
	for i := range nodes {
		if i != rootIdx {
			unplaced = append(unplaced, i)
		}
	}

	type frontierItem struct{ idx, depth int }
	frontier := []frontierItem{{rootIdx, 0}}
	cursor := 0

	for len(frontier) > 0 && cursor < len(unplaced) {
		cur := frontier[0]
		frontier = frontier[1:]
		if cur.depth >= maxDepth {
			continue
		}
		for c := 0; c < 2 && cursor < len(unplaced); c++ {
			childIdx := unplaced[cursor]
			cursor++
			link(nodes[cur.idx], nodes[childIdx])
			frontier = append(frontier, frontierItem{childIdx, cur.depth + 1})
		}
	}

	if cursor < len(unplaced) {
		return &ErrInvalidConfiguration{Reason: "max_depth too small to place every node"}
	}
	return nil
}

// buildRandom draws each node's neighbor set per spec's degree model — a
// per-node degree drawn uniformly from [1, 2*floor(ln(N-1))], that many
// distinct peers picked uniformly at random and symmetrized — with explicit
// N=2/N=3 special cases, then proves connectivity with union-find; a
// disconnected draw is discarded and redrawn up to opts.MaxRetries times.
func buildRandom(nodes []*core.Node, opts Options) error {
	rng := opts.Rng
	if rng == nil {
		return &ErrInvalidConfiguration{Reason: "Random requires a random source"}
	}
	maxRetries := opts.MaxRetries
	if maxRetries <= 0 {
		maxRetries = 20
	}

	n := len(nodes)
	for attempt := 1; attempt <= maxRetries; attempt++ {
		clearNeighbors(nodes)
		switch n {
		case 2:
			link(nodes[0], nodes[1])
		case 3:
			drawRandomTriple(nodes, rng)
		default:
			drawRandomDegrees(nodes, rng)
		}
		if IsConnected(nodes) {
			return nil
		}
	}
	return &ErrNotConnected{Attempts: maxRetries}
}

// drawRandomDegrees implements the general-N degree model: each node draws a
// degree uniformly from [1, 2*floor(ln(N-1))] and picks that many distinct
// peers uniformly at random, excluding itself. link is naturally idempotent
// over the underlying neighbor sets, so a peer drawn from both ends needs no
// separate dedup step.
func drawRandomDegrees(nodes []*core.Node, rng *rand.Rand) {
	n := len(nodes)
	maxDegree := 2 * int(math.Floor(math.Log(float64(n-1))))
	if maxDegree < 1 {
		maxDegree = 1
	}
	for i := range nodes {
		degree := 1 + rng.Intn(maxDegree)
		if degree > n-1 {
			degree = n - 1
		}
		peers := make([]int, 0, n-1)
		for j := range nodes {
			if j != i {
				peers = append(peers, j)
			}
		}
		rng.Shuffle(len(peers), func(a, b int) { peers[a], peers[b] = peers[b], peers[a] })
		for _, j := range peers[:degree] {
			link(nodes[i], nodes[j])
		}
	}
}

// drawRandomTriple implements the N=3 special case: one of {line, V-shape,
// triangle} chosen uniformly. The V-shape branch itself picks its center
// uniformly between the two nodes that are not the line's center, so over
// many draws both distinct V-shapes appear alongside the line and triangle.
func drawRandomTriple(nodes []*core.Node, rng *rand.Rand) {
	switch rng.Intn(3) {
	case 0: // line: 0-1-2
		link(nodes[0], nodes[1])
		link(nodes[1], nodes[2])
	case 1: // V-shape: center is 0 or 2
		centers := [2]int{0, 2}
		center := centers[rng.Intn(2)]
		for i := 0; i < 3; i++ {
			if i != center {
				link(nodes[center], nodes[i])
			}
		}
	default: // triangle
		link(nodes[0], nodes[1])
		link(nodes[1], nodes[2])
		link(nodes[0], nodes[2])
	}
}

func clearNeighbors(nodes []*core.Node) {
	for _, n := range nodes {
		for _, id := range n.Neighbors() {
			n.RemoveNeighbor(id)
		}
	}
}

// unionFind is an iterative disjoint-set over node indices 0..n-1 with path
// compression and union by rank, the same shape as lvlath's
// prim_kruskal/kruskal.go find/union closures, adapted from its map[string]string
// parent table to a plain slice since this module's elements are dense indices.
type unionFind struct {
	parent []int
	rank   []int
	n      int
}

func newUnionFind(n int) *unionFind {
	parent := make([]int, n)
	for i := range parent {
		parent[i] = i
	}
	return &unionFind{parent: parent, rank: make([]int, n), n: n}
}

func (u *unionFind) find(x int) int {
	for u.parent[x] != x {
		u.parent[x] = u.parent[u.parent[x]]
		x = u.parent[x]
	}
	return x
}

func (u *unionFind) union(a, b int) {
	ra, rb := u.find(a), u.find(b)
	if ra == rb {
		return
	}
	if u.rank[ra] < u.rank[rb] {
		ra, rb = rb, ra
	}
	u.parent[rb] = ra
	if u.rank[ra] == u.rank[rb] {
		u.rank[ra]++
	}
}

// connected reports whether every index shares a single root.
func (u *unionFind) connected() bool {
	if u.n == 0 {
		return true
	}
	root := u.find(0)
	for i := 1; i < u.n; i++ {
		if u.find(i) != root {
			return false
		}
	}
	return true
}

// IsConnected reports whether nodes form a single connected component under
// their current neighbor sets, independent of how they got that way.
// cmd/distsim calls this after Build for every topology kind; NewEngine in
// package engine does not check connectivity.
func IsConnected(nodes []*core.Node) bool {
	if len(nodes) == 0 {
		return true
	}
	index := make(map[core.NodeID]int, len(nodes))
	for i, n := range nodes {
		index[n.ID()] = i
	}
	uf := newUnionFind(len(nodes))
	for i, n := range nodes {
		for _, nb := range n.Neighbors() {
			if j, ok := index[nb]; ok {
				uf.union(i, j)
			}
		}
	}
	return uf.connected()
}

// RootMode selects how SelectRoot designates a node as root.
type RootMode string

const (
	RootNone   RootMode = "NoRoot"
	RootRandom RootMode = "Random"
	RootMinID  RootMode = "MinID"
)

// SelectRoot marks exactly one node as root per mode, and MUST run before
// Build for any Kind that needs a root (Tree, Star). RootNone leaves every
// node's IsRoot false.
func SelectRoot(nodes []*core.Node, mode RootMode, rng *rand.Rand) error {
	switch mode {
	case RootNone:
		return nil
	case RootRandom:
		if rng == nil {
			return &ErrInvalidConfiguration{Reason: "Random root selection requires a random source"}
		}
		if len(nodes) == 0 {
			return &ErrInvalidConfiguration{Reason: "cannot select a root from an empty node set"}
		}
		nodes[rng.Intn(len(nodes))].SetRoot(true)
		return nil
	case RootMinID:
		if len(nodes) == 0 {
			return &ErrInvalidConfiguration{Reason: "cannot select a root from an empty node set"}
		}
		min := nodes[0]
		for _, n := range nodes[1:] {
			if n.ID() < min.ID() {
				min = n
			}
		}
		min.SetRoot(true)
		return nil
	default:
		return &ErrInvalidConfiguration{Reason: "unknown root mode " + string(mode)}
	}
}

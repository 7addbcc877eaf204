package graph

import (
	"container/heap"

	"github.com/turtle-bazon/icfpc-2017/boardmap"
)

// StepKind tags the action a StepFunc asks the traversal to take once it
// has decided what to do with the site it was just handed.
type StepKind int

const (
	// StepContinue expands the site's neighbors, carrying seed forward to
	// each of them.
	StepContinue StepKind = iota
	// StepStop finalizes the site without expanding it; the traversal
	// keeps draining the queue.
	StepStop
	// StepTerminate finalizes the site and ends the traversal immediately,
	// returning the path that reached it.
	StepTerminate
)

// StepCommand is what a StepFunc returns: what to do with the current
// site, and — for StepContinue — the seed handed to every neighbor it
// discovers.
type StepCommand struct {
	Kind StepKind
	Seed any
}

// Continue expands the current site's neighbors, passing seed to each.
func Continue(seed any) StepCommand {
	return StepCommand{Kind: StepContinue, Seed: seed}
}

// Stop finalizes the current site without expanding it.
func Stop() StepCommand {
	return StepCommand{Kind: StepStop}
}

// Terminate ends the traversal at the current site.
func Terminate() StepCommand {
	return StepCommand{Kind: StepTerminate}
}

// StepFunc is called once per site dequeued in increasing-cost order, with
// the path that reached it (source first, site last), the accumulated
// cost, and the seed threaded from its parent (or the seed GenericBFS was
// started with, for the source itself).
type StepFunc func(path []boardmap.SiteId, cost int64, seed any) StepCommand

// EdgeAttr is what a ProbeFunc reports about one directed hop: either the
// cost of taking it, or that it cannot be taken at all.
type EdgeAttr struct {
	blocked bool
	cost    int64
}

// Accessible reports an edge as usable at the given non-negative cost.
func Accessible(cost int64) EdgeAttr {
	return EdgeAttr{cost: cost}
}

// Blocked reports an edge as unusable.
var Blocked = EdgeAttr{blocked: true}

// IsBlocked reports whether the edge cannot be taken.
func (a EdgeAttr) IsBlocked() bool {
	return a.blocked
}

// Cost is the edge's traversal cost. Meaningless if IsBlocked is true.
func (a EdgeAttr) Cost() int64 {
	return a.cost
}

// ProbeFunc reports the attributes of the directed hop from u to v. It is
// consulted once per candidate neighbor per dequeue, never cached by the
// traversal itself, so a caller whose ownership view changes mid-game
// (gnsolver re-running shortestPath every turn) always sees current state.
type ProbeFunc func(u, v boardmap.SiteId) EdgeAttr

// arenaNode is one entry of a Cache's path-reconstruction arena: a site
// and the arena index of the node that discovered it.
type arenaNode struct {
	site   boardmap.SiteId
	parent int
}

// pqItem is one priority-queue entry.
type pqItem struct {
	site boardmap.SiteId
	cost int64
	node int // index into Cache.arena, also the deterministic tie-break id
	seed any
}

// pqHeap implements container/heap.Interface. Ties break first on site id,
// then on node (creation order), so two runs over the same graph with the
// same seeds visit sites in exactly the same order.
type pqHeap []pqItem

func (h pqHeap) Len() int { return len(h) }

func (h pqHeap) Less(i, j int) bool {
	if h[i].cost != h[j].cost {
		return h[i].cost < h[j].cost
	}
	if h[i].site != h[j].site {
		return h[i].site < h[j].site
	}

	return h[i].node < h[j].node
}

func (h pqHeap) Swap(i, j int) { h[i], h[j] = h[j], h[i] }

func (h *pqHeap) Push(x any) { *h = append(*h, x.(pqItem)) }

func (h *pqHeap) Pop() any {
	old := *h
	n := len(old)
	item := old[n-1]
	*h = old[:n-1]

	return item
}

// Cache holds all mutable state a GenericBFS run touches: the priority
// queue, the finalized set, the best provisional cost per site, and the
// path-reconstruction arena. GenericBFS resets it on entry, so one Cache
// can be reused across an entire game's worth of calls without
// reallocating its backing maps and slices on every turn.
type Cache struct {
	arena     []arenaNode
	pq        pqHeap
	bestCost  map[boardmap.SiteId]int64
	finalized map[boardmap.SiteId]bool
	scratch   []boardmap.SiteId
}

// NewCache returns an empty, ready-to-use Cache.
func NewCache() *Cache {
	return &Cache{
		bestCost:  make(map[boardmap.SiteId]int64),
		finalized: make(map[boardmap.SiteId]bool),
	}
}

func (c *Cache) reset() {
	c.arena = c.arena[:0]
	c.pq = c.pq[:0]
	for k := range c.bestCost {
		delete(c.bestCost, k)
	}
	for k := range c.finalized {
		delete(c.finalized, k)
	}
}

func (c *Cache) newNode(site boardmap.SiteId, parent int) int {
	c.arena = append(c.arena, arenaNode{site: site, parent: parent})

	return len(c.arena) - 1
}

// path reconstructs the source-to-node path by walking parent links. The
// returned slice is owned by the Cache and is only valid until the next
// call that mutates it; StepFunc implementations that need to keep a path
// must copy it.
func (c *Cache) path(node int) []boardmap.SiteId {
	c.scratch = c.scratch[:0]
	for node >= 0 {
		n := c.arena[node]
		c.scratch = append(c.scratch, n.site)
		node = n.parent
	}
	for i, j := 0, len(c.scratch)-1; i < j; i, j = i+1, j-1 {
		c.scratch[i], c.scratch[j] = c.scratch[j], c.scratch[i]
	}

	return c.scratch
}

// GenericBFS is the single traversal primitive every derived operation in
// this package is built on: a best-first search ordered by accumulated
// cost, where the caller decides per-edge cost and reachability via probe
// and per-site disposition via step. It returns the path StepTerminate was
// returned for, and whether the traversal terminated that way (false if
// the queue drained first).
//
// Determinism: ties in cost break on site id, then on discovery order, so
// repeated runs over an unchanged graph with the same seeds and probe
// always visit sites in the same sequence.
func GenericBFS(g *Graph, source boardmap.SiteId, sourceSeed any, step StepFunc, probe ProbeFunc, cache *Cache) ([]boardmap.SiteId, bool) {
	cache.reset()
	if !g.HasSite(source) {
		return nil, false
	}

	root := cache.newNode(source, -1)
	cache.bestCost[source] = 0
	heap.Init(&cache.pq)
	heap.Push(&cache.pq, pqItem{site: source, cost: 0, node: root, seed: sourceSeed})

	for cache.pq.Len() > 0 {
		item := heap.Pop(&cache.pq).(pqItem)
		if cache.finalized[item.site] {
			continue
		}
		if best, ok := cache.bestCost[item.site]; ok && item.cost > best {
			continue
		}

		path := cache.path(item.node)
		switch cmd := step(path, item.cost, item.seed); cmd.Kind {
		case StepTerminate:
			out := make([]boardmap.SiteId, len(path))
			copy(out, path)

			return out, true
		case StepStop:
			cache.finalized[item.site] = true
		case StepContinue:
			cache.finalized[item.site] = true
			for _, nb := range g.Neighbors(item.site) {
				if nb == item.site || cache.finalized[nb] {
					continue
				}
				attr := probe(item.site, nb)
				if attr.IsBlocked() {
					continue
				}
				nextCost := item.cost + attr.Cost()
				if best, ok := cache.bestCost[nb]; ok && nextCost >= best {
					continue
				}
				cache.bestCost[nb] = nextCost
				node := cache.newNode(nb, item.node)
				heap.Push(&cache.pq, pqItem{site: nb, cost: nextCost, node: node, seed: cmd.Seed})
			}
		}
	}

	return nil, false
}

package graph

import (
	"sort"
	"sync"

	"github.com/turtle-bazon/icfpc-2017/boardmap"
)

// Graph is the undirected adjacency of a board, built once from its rivers
// and immutable afterward. Reads are safe for concurrent use (guarded by
// muAdj) since the futures worker borrows a shared reference to the graph
// precomputed at setup from its own goroutine while the main solver keeps
// playing against the same instance.
type Graph struct {
	muAdj sync.RWMutex
	adj   map[boardmap.SiteId][]boardmap.SiteId
}

// newGraph allocates an empty adjacency map.
func newGraph() *Graph {
	return &Graph{adj: make(map[boardmap.SiteId][]boardmap.SiteId)}
}

// addEdge inserts the undirected edge (from, to), deduplicating a repeated
// river (a second call for the same pair is a no-op) and a self-loop
// (from == to is silently ignored, matching the board format's guarantee
// that rivers never connect a site to itself).
func (g *Graph) addEdge(from, to boardmap.SiteId) {
	if from == to {
		return
	}
	g.ensureVertex(from)
	g.ensureVertex(to)
	if !g.linked(from, to) {
		g.adj[from] = append(g.adj[from], to)
		g.adj[to] = append(g.adj[to], from)
	}
}

// ensureVertex registers site with an empty neighbor list if it is not
// already present, so an isolated site still shows up in Sites().
func (g *Graph) ensureVertex(site boardmap.SiteId) {
	if _, ok := g.adj[site]; !ok {
		g.adj[site] = nil
	}
}

func (g *Graph) linked(from, to boardmap.SiteId) bool {
	for _, n := range g.adj[from] {
		if n == to {
			return true
		}
	}

	return false
}

// FromMap builds the Graph from a board's rivers, mirroring Graph::from_map
// in the original solver: every river contributes an undirected edge.
func FromMap(m boardmap.Map) *Graph {
	edges := make([]boardmap.River, len(m.Rivers))
	copy(edges, m.Rivers)

	return FromIter(edges)
}

// FromIter builds the Graph from an explicit edge list, deduplicating
// parallel rivers (a second river between the same pair of sites is simply
// ignored rather than surfaced as an error, since construction has no error
// return in the original source).
func FromIter(rivers []boardmap.River) *Graph {
	g := newGraph()
	for _, r := range rivers {
		g.addEdge(r.Source, r.Target)
	}

	return g
}

// HasSite reports whether site is a vertex of the graph.
func (g *Graph) HasSite(site boardmap.SiteId) bool {
	g.muAdj.RLock()
	defer g.muAdj.RUnlock()

	_, ok := g.adj[site]

	return ok
}

// Sites returns every site in the graph, sorted ascending by id so callers
// get a stable traversal seed across runs.
func (g *Graph) Sites() []boardmap.SiteId {
	g.muAdj.RLock()
	defer g.muAdj.RUnlock()

	out := make([]boardmap.SiteId, 0, len(g.adj))
	for s := range g.adj {
		out = append(out, s)
	}
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })

	return out
}

// Neighbors returns the sites adjacent to site, sorted ascending by id.
func (g *Graph) Neighbors(site boardmap.SiteId) []boardmap.SiteId {
	g.muAdj.RLock()
	defer g.muAdj.RUnlock()

	ns, ok := g.adj[site]
	if !ok {
		return nil
	}
	out := make([]boardmap.SiteId, len(ns))
	copy(out, ns)
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })

	return out
}

package graph

import "github.com/turtle-bazon/icfpc-2017/boardmap"

// betweennessScratch holds the per-source working state of Brandes'
// algorithm, reused across sources so a full RiversBetweenness run
// allocates its maps and slices once rather than once per site.
type betweennessScratch struct {
	sigma map[boardmap.SiteId]float64 // number of shortest paths from the source to v
	dist  map[boardmap.SiteId]int     // distance from the source to v, absent = unvisited
	delta map[boardmap.SiteId]float64 // dependency of the source on v
	pred  map[boardmap.SiteId][]boardmap.SiteId
	queue []boardmap.SiteId
	stack []boardmap.SiteId
}

func newBetweennessScratch(n int) *betweennessScratch {
	return &betweennessScratch{
		sigma: make(map[boardmap.SiteId]float64, n),
		dist:  make(map[boardmap.SiteId]int, n),
		delta: make(map[boardmap.SiteId]float64, n),
		pred:  make(map[boardmap.SiteId][]boardmap.SiteId, n),
		queue: make([]boardmap.SiteId, 0, n),
		stack: make([]boardmap.SiteId, 0, n),
	}
}

func (b *betweennessScratch) reset() {
	for k := range b.sigma {
		delete(b.sigma, k)
	}
	for k := range b.dist {
		delete(b.dist, k)
	}
	for k := range b.delta {
		delete(b.delta, k)
	}
	for k := range b.pred {
		delete(b.pred, k)
	}
	b.queue = b.queue[:0]
	b.stack = b.stack[:0]
}

// singleSource runs one BFS-based pass of Brandes' algorithm rooted at
// source, accumulating each river's share of source's shortest-path
// dependency into out. Only rivers on source's shortest-path DAG get a
// contribution; a river joining two sites at the same distance from source
// gets none from this pass.
func (b *betweennessScratch) singleSource(g *Graph, source boardmap.SiteId, out map[boardmap.River]float64) {
	b.reset()
	b.sigma[source] = 1
	b.dist[source] = 0
	b.queue = append(b.queue, source)

	for len(b.queue) > 0 {
		v := b.queue[0]
		b.queue = b.queue[1:]
		b.stack = append(b.stack, v)

		for _, w := range g.Neighbors(v) {
			if _, seen := b.dist[w]; !seen {
				b.dist[w] = b.dist[v] + 1
				b.queue = append(b.queue, w)
			}
			if b.dist[w] == b.dist[v]+1 {
				b.sigma[w] += b.sigma[v]
				b.pred[w] = append(b.pred[w], v)
			}
		}
	}

	for i := len(b.stack) - 1; i >= 0; i-- {
		w := b.stack[i]
		for _, v := range b.pred[w] {
			share := (b.sigma[v] / b.sigma[w]) * (1 + b.delta[w])
			out[boardmap.NewRiver(v, w)] += share
			b.delta[v] += share
		}
	}
}

// RiversBetweenness computes the Girvan-Newman edge betweenness of every
// river in g: the fraction of all-pairs shortest paths that cross it,
// summed over every (source, target) pair in the graph. It runs one BFS
// per site (Brandes' algorithm) and halves the result at the end, since
// an undirected graph's two BFS passes over the same pair count the
// crossing from both directions.
func RiversBetweenness(g *Graph) map[boardmap.River]float64 {
	sites := g.Sites()
	out := make(map[boardmap.River]float64)
	scratch := newBetweennessScratch(len(sites))

	for _, s := range sites {
		scratch.singleSource(g, s, out)
	}
	for r := range out {
		out[r] /= 2
	}

	return out
}

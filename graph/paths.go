package graph

import "github.com/turtle-bazon/icfpc-2017/boardmap"

// unitProbe treats every edge of g as traversable at cost 1, regardless of
// ownership — plain hop-count adjacency.
func unitProbe(*Graph) ProbeFunc {
	return func(boardmap.SiteId, boardmap.SiteId) EdgeAttr {
		return Accessible(1)
	}
}

// ShortestPathOnly returns the hop-count-shortest path from source to
// target over the unowned graph, matching shortest_path_only in the
// original solver: every river costs 1, ownership plays no part. The
// second return value is false if target is unreachable from source.
func ShortestPathOnly(g *Graph, source, target boardmap.SiteId, cache *Cache) ([]boardmap.SiteId, bool) {
	return ShortestPath(g, source, target, unitProbe(g), cache)
}

// ShortestPath returns the cheapest path from source to target under the
// caller-supplied probe, terminating the traversal the instant target is
// dequeued (it is then guaranteed optimal, since GenericBFS dequeues in
// non-decreasing cost order). This is what the GN solver calls every turn
// with an ownership-aware probe: cost 0 across its own rivers, cost 1
// across unclaimed or option-eligible rivers, Blocked otherwise.
func ShortestPath(g *Graph, source, target boardmap.SiteId, probe ProbeFunc, cache *Cache) ([]boardmap.SiteId, bool) {
	step := func(path []boardmap.SiteId, _ int64, _ any) StepCommand {
		if path[len(path)-1] == target {
			return Terminate()
		}

		return Continue(nil)
	}

	return GenericBFS(g, source, nil, step, probe, cache)
}

// LongestJourneyFrom returns the furthest site from source by hop count
// (the graph's eccentricity witness at source) and the path that reaches
// it. GenericBFS dequeues in non-decreasing cost order, so the last site
// it ever hands to step is, by construction, the one with the greatest
// distance from source.
func LongestJourneyFrom(g *Graph, source boardmap.SiteId, cache *Cache) ([]boardmap.SiteId, bool) {
	found := false
	var farthest []boardmap.SiteId

	step := func(path []boardmap.SiteId, _ int64, _ any) StepCommand {
		found = true
		farthest = append(farthest[:0], path...)

		return Continue(nil)
	}

	GenericBFS(g, source, nil, step, unitProbe(g), cache)
	if !found {
		return nil, false
	}

	out := make([]boardmap.SiteId, len(farthest))
	copy(out, farthest)

	return out, true
}

package graph_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/turtle-bazon/icfpc-2017/boardmap"
	"github.com/turtle-bazon/icfpc-2017/graph"
)

func site(v uint64) boardmap.SiteId { return boardmap.SiteId(v) }

func riverList(pairs [][2]uint64) []boardmap.River {
	out := make([]boardmap.River, len(pairs))
	for i, p := range pairs {
		out[i] = boardmap.NewRiver(site(p[0]), site(p[1]))
	}

	return out
}

// sampleMap is the 8-site map used throughout the specification's worked
// examples and seeded end-to-end scenarios.
func sampleMap() *graph.Graph {
	return graph.FromIter(riverList([][2]uint64{
		{3, 4}, {0, 1}, {2, 3}, {1, 3}, {5, 6}, {4, 5},
		{3, 5}, {6, 7}, {5, 7}, {1, 7}, {0, 7}, {1, 2},
	}))
}

func pathOf(ids ...uint64) []boardmap.SiteId {
	out := make([]boardmap.SiteId, len(ids))
	for i, v := range ids {
		out[i] = site(v)
	}

	return out
}

func TestShortestPathOnlySampleMap(t *testing.T) {
	g := sampleMap()
	cache := graph.NewCache()

	path, ok := graph.ShortestPathOnly(g, site(1), site(4), cache)
	require.True(t, ok)
	assert.Equal(t, pathOf(1, 3, 4), path)

	path, ok = graph.ShortestPathOnly(g, site(1), site(5), cache)
	require.True(t, ok)
	assert.Contains(t, [][]boardmap.SiteId{pathOf(1, 3, 5), pathOf(1, 7, 5)}, path)

	path, ok = graph.ShortestPathOnly(g, site(0), site(4), cache)
	require.True(t, ok)
	assert.Len(t, path, 4)
}

func TestShortestPathOnlyDeterministic(t *testing.T) {
	g := sampleMap()
	cache := graph.NewCache()

	first, ok := graph.ShortestPathOnly(g, site(1), site(5), cache)
	require.True(t, ok)
	for i := 0; i < 5; i++ {
		again, ok := graph.ShortestPathOnly(g, site(1), site(5), cache)
		require.True(t, ok)
		assert.Equal(t, first, again)
	}
}

func TestLongestJourneyFrom(t *testing.T) {
	g := sampleMap()
	cache := graph.NewCache()

	path, ok := graph.LongestJourneyFrom(g, site(0), cache)
	require.True(t, ok)
	assert.Equal(t, site(0), path[0])
	assert.GreaterOrEqual(t, len(path), 4)
}

func TestShortestPathConsecutivePairsAreEdges(t *testing.T) {
	g := sampleMap()
	cache := graph.NewCache()

	path, ok := graph.ShortestPathOnly(g, site(0), site(4), cache)
	require.True(t, ok)
	require.Equal(t, site(0), path[0])
	require.Equal(t, site(4), path[len(path)-1])
	for i := 0; i+1 < len(path); i++ {
		assert.Contains(t, g.Neighbors(path[i]), path[i+1])
	}
}

// girvanNewmanGraph is the textbook two-triangle-plus-bridge example from
// Girvan and Newman's original betweenness paper.
func girvanNewmanGraph() *graph.Graph {
	return graph.FromIter(riverList([][2]uint64{
		{0, 1}, {0, 2}, {1, 2}, {1, 3}, {3, 4}, {3, 5}, {3, 6}, {4, 5}, {5, 6},
	}))
}

func TestRiversBetweennessTextbookGraph(t *testing.T) {
	g := girvanNewmanGraph()
	got := graph.RiversBetweenness(g)

	want := map[boardmap.River]float64{
		boardmap.NewRiver(site(0), site(1)): 5,
		boardmap.NewRiver(site(0), site(2)): 1,
		boardmap.NewRiver(site(1), site(2)): 5,
		boardmap.NewRiver(site(1), site(3)): 12,
		boardmap.NewRiver(site(3), site(4)): 4.5,
		boardmap.NewRiver(site(3), site(5)): 4,
		boardmap.NewRiver(site(3), site(6)): 4.5,
		boardmap.NewRiver(site(4), site(5)): 1.5,
		boardmap.NewRiver(site(5), site(6)): 1.5,
	}

	require.Len(t, got, len(want))
	for r, v := range want {
		assert.InDelta(t, v, got[r], 1e-9, "river %v", r)
	}
}

func TestRiversBetweennessSymmetricAndNonNegative(t *testing.T) {
	g := sampleMap()
	bt := graph.RiversBetweenness(g)
	for r, v := range bt {
		assert.GreaterOrEqual(t, v, 0.0)
		assert.Equal(t, r, boardmap.NewRiver(r.Source, r.Target))
	}
}

// ownershipProbe mirrors the GN solver's per-turn probe: free passage
// across rivers we already hold, unit cost across anything still up for
// grabs, and no passage at all across a river an enemy has claimed.
func ownershipProbe(claimed boardmap.ClaimedRivers, me boardmap.PunterId) graph.ProbeFunc {
	return func(u, v boardmap.SiteId) graph.EdgeAttr {
		r := boardmap.NewRiver(u, v)
		switch {
		case claimed.OwnedBy(r, me):
			return graph.Accessible(0)
		case !claimed.IsClaimed(r):
			return graph.Accessible(1)
		default:
			return graph.Blocked
		}
	}
}

func TestShortestPathOwnershipAware(t *testing.T) {
	g := sampleMap()
	cache := graph.NewCache()
	claimed := boardmap.NewClaimedRivers()

	const me, enemy = boardmap.PunterId(0), boardmap.PunterId(1)
	claimed.Claim(boardmap.NewRiver(site(0), site(1)), me)
	claimed.Claim(boardmap.NewRiver(site(1), site(3)), enemy)

	path, ok := graph.ShortestPath(g, site(0), site(4), ownershipProbe(claimed, me), cache)
	require.True(t, ok)

	for i := 0; i+1 < len(path); i++ {
		assert.NotEqual(t, boardmap.NewRiver(site(1), site(3)), boardmap.NewRiver(path[i], path[i+1]))
	}
	assert.Equal(t, site(1), path[1], "the zero-cost (0,1) hop should be preferred first")
}

package montecarlo_test

import (
	"math/rand"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/turtle-bazon/icfpc-2017/boardmap"
	"github.com/turtle-bazon/icfpc-2017/graph"
	"github.com/turtle-bazon/icfpc-2017/montecarlo"
)

func site(v uint64) boardmap.SiteId { return boardmap.SiteId(v) }

func riverList(pairs [][2]uint64) []boardmap.River {
	out := make([]boardmap.River, len(pairs))
	for i, p := range pairs {
		out[i] = boardmap.NewRiver(site(p[0]), site(p[1]))
	}

	return out
}

func sampleMapGraph() (*graph.Graph, map[boardmap.River]float64) {
	g := graph.FromIter(riverList([][2]uint64{
		{3, 4}, {0, 1}, {2, 3}, {1, 3}, {5, 6}, {4, 5},
		{3, 5}, {6, 7}, {5, 7}, {1, 7}, {0, 7}, {1, 2},
	}))

	return g, graph.RiversBetweenness(g)
}

// firstUnclaimed claims the first river of route nobody holds yet —
// the simplest possible move function, good enough to drive a
// probability estimate without any board-wide strategy.
func firstUnclaimed(route []boardmap.River, claimed boardmap.ClaimedRivers) (boardmap.River, bool) {
	for _, r := range route {
		if !claimed.IsClaimed(r) {
			return r, true
		}
	}

	return boardmap.River{}, false
}

func journeyOf(ids ...uint64) []boardmap.SiteId {
	out := make([]boardmap.SiteId, len(ids))
	for i, v := range ids {
		out[i] = site(v)
	}

	return out
}

func TestJourneySuccessProbabilitySingleRiverAlwaysSucceeds(t *testing.T) {
	_, bw := sampleMapGraph()
	cache := montecarlo.NewCache()
	rng := rand.New(rand.NewSource(1))

	for _, journey := range [][]boardmap.SiteId{
		journeyOf(1, 0), journeyOf(1, 2), journeyOf(1, 3), journeyOf(1, 7),
	} {
		prob, ok := montecarlo.JourneySuccessProbability(journey, bw, 0, 2, 0, 100, firstUnclaimed, cache, rng)
		require.True(t, ok)
		assert.Equal(t, 1.0, prob, "single-river journey claimed on our own first turn should always succeed")
	}
}

func TestJourneySuccessProbabilityTooShort(t *testing.T) {
	_, bw := sampleMapGraph()
	cache := montecarlo.NewCache()
	rng := rand.New(rand.NewSource(1))

	_, ok := montecarlo.JourneySuccessProbability(journeyOf(1), bw, 0, 2, 0, 100, firstUnclaimed, cache, rng)
	assert.False(t, ok)

	_, ok = montecarlo.JourneySuccessProbability(journeyOf(1, 2), bw, 0, 1, 0, 100, firstUnclaimed, cache, rng)
	assert.False(t, ok)
}

func TestEstimateBestFutureSampleMap(t *testing.T) {
	g, bw := sampleMapGraph()
	mcache := montecarlo.NewCache()
	gcache := graph.NewCache()
	rng := rand.New(rand.NewSource(7))

	future, ok := montecarlo.EstimateBestFuture(
		g, site(1), []boardmap.SiteId{site(1), site(5)}, bw,
		1, 2, 0, 10000, 5*time.Second, firstUnclaimed, mcache, gcache, rng)

	require.True(t, ok)
	assert.Contains(t, []boardmap.SiteId{site(4), site(6)}, future.Target)
}

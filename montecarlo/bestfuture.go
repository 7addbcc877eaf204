package montecarlo

import (
	"math/rand"
	"time"

	"github.com/turtle-bazon/icfpc-2017/boardmap"
	"github.com/turtle-bazon/icfpc-2017/graph"
)

// BestFuture is a candidate future goal: declaring it at setup commits the
// punter to reaching target from source. PathLen is the number of sites
// along that journey (one more than its river count), carried for the
// caller's own bookkeeping.
type BestFuture struct {
	Source  boardmap.SiteId
	Target  boardmap.SiteId
	PathLen int
}

// EstimateBestFuture searches outward from mine for the site whose journey
// carries the greatest expected reward: future_reward = hops^3 times the
// simulated success probability of actually completing that journey,
// compared against the reward of just playing for it directly (hops^2). It
// explores with graph.GenericBFS over plain unit-cost rivers — futures are
// about the map's geometry, not the current game's ownership — pruning a
// branch as soon as its expected reward stops improving on its parent's,
// and stopping the whole search once timeLimit elapses.
//
// The second return value is false if no candidate ever cleared the
// regular-reward bar.
func EstimateBestFuture(
	g *graph.Graph,
	mine boardmap.SiteId,
	mines []boardmap.SiteId,
	riversBw map[boardmap.River]float64,
	myPunter boardmap.PunterId,
	puntersCount int,
	startTurn int,
	gamesCount int,
	timeLimit time.Duration,
	makeMove MakeMoveFunc,
	mcache *Cache,
	gcache *graph.Cache,
	rng *rand.Rand,
	opts ...Option,
) (BestFuture, bool) {
	cfg := newConfig(opts...)
	var best BestFuture
	var bestReward float64
	found := false
	deadline := time.Now().Add(timeLimit)

	isMine := func(site boardmap.SiteId) bool {
		for _, m := range mines {
			if m == site {
				return true
			}
		}

		return false
	}

	step := func(path []boardmap.SiteId, cost int64, seed any) graph.StepCommand {
		if time.Now().After(deadline) {
			cfg.logger.Debugw("future search deadline reached", "mine", mine)
			return graph.Terminate()
		}

		target := path[len(path)-1]
		if isMine(target) {
			return graph.Continue(0.0)
		}

		prob, ok := JourneySuccessProbability(path, riversBw, myPunter, puntersCount, startTurn, gamesCount, makeMove, mcache, rng)
		if !ok {
			return graph.Stop()
		}

		regularReward := float64(cost * cost)
		futureReward := float64(cost * cost * cost)
		expectedReward := futureReward * prob
		if expectedReward < regularReward {
			return graph.Continue(0.0)
		}

		if !found || bestReward < expectedReward {
			best = BestFuture{Source: path[0], Target: target, PathLen: len(path)}
			bestReward = expectedReward
			found = true
			cfg.logger.Debugw("improved future candidate", "mine", mine, "target", target, "reward", expectedReward)
		}

		prevReward := seed.(float64)
		if expectedReward > prevReward {
			return graph.Continue(expectedReward)
		}

		return graph.Stop()
	}

	standard := func(boardmap.SiteId, boardmap.SiteId) graph.EdgeAttr { return graph.Accessible(1) }
	graph.GenericBFS(g, mine, 0.0, step, standard, gcache)

	return best, found
}

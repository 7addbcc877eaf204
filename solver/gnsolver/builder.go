package gnsolver

import (
	"math/rand"
	"sort"
	"time"

	"go.uber.org/zap"

	"github.com/turtle-bazon/icfpc-2017/boardmap"
	"github.com/turtle-bazon/icfpc-2017/graph"
	"github.com/turtle-bazon/icfpc-2017/montecarlo"
	"github.com/turtle-bazon/icfpc-2017/protocol"
	"github.com/turtle-bazon/icfpc-2017/session"
)

// maxFutureTimeout bounds the whole of setup-time future guessing, mines
// included, mirroring the original solver's own budget for a single Setup
// response.
const maxFutureTimeout = 8 * time.Second

// GNGameStateBuilder builds the Girvan-Newman solver's initial state: it
// precomputes the board's river betweenness once, spends up to
// maxFutureTimeout estimating a future per mine when futures are enabled,
// and otherwise (or when no estimate clears its reward bar) falls back to
// pairing mines directly.
type GNGameStateBuilder struct {
	logger *zap.SugaredLogger
}

// Build implements session.GameStateBuilder.
func (b GNGameStateBuilder) Build(setup boardmap.Setup) session.GameState {
	logger := b.resolveLogger()
	deadline := time.Now().Add(maxFutureTimeout)
	g := graph.FromMap(setup.Map)
	gcache := graph.NewCache()
	riversBw := graph.RiversBetweenness(g)
	mines := setup.Map.MineList()

	var futures []protocol.Future
	if setup.Settings.Futures {
		futures = estimateFutures(g, setup, mines, riversBw, deadline, logger)
	}

	var goals []goal
	if len(futures) > 0 {
		goals = make([]goal, len(futures))
		for i, f := range futures {
			goals[i] = goal{source: f.Source, target: f.Target}
		}
	} else {
		goals = linkMines(g, mines, gcache)
	}

	logger.Debugw("starting goals", "punter", setup.Punter, "goals", len(goals), "mines", len(mines))

	optionsLeft := 0
	if setup.Settings.Options {
		optionsLeft = len(mines)
	}

	return &GNGameState{
		punter:      setup.Punter,
		punters:     setup.Punters,
		rivers:      append([]boardmap.River(nil), setup.Map.Rivers...),
		g:           g,
		goals:       goals,
		claimed:     boardmap.NewClaimedRivers(),
		futures:     futures,
		mines:       mines,
		riversBw:    riversBw,
		optionsLeft: optionsLeft,
		gcache:      gcache,
		rng:         rand.New(rand.NewSource(time.Now().UnixNano())),
		logger:      logger,
	}
}

// simGamesCount bounds the Monte-Carlo games played per journey estimate
// by the map's river count, the same way the original solver scales it.
func simGamesCount(riverCount int) int {
	switch {
	case riverCount < 128:
		return 128
	case riverCount > 1024:
		return 1024
	default:
		return riverCount
	}
}

// estimateFutures tries, mine by mine, to guess a profitable future in
// its own goroutine bounded by whatever of deadline remains, collecting
// whichever estimates complete in time and giving up on the rest the
// instant the clock runs out.
func estimateFutures(g *graph.Graph, setup boardmap.Setup, mines []boardmap.SiteId, riversBw map[boardmap.River]float64, deadline time.Time, logger *zap.SugaredLogger) []protocol.Future {
	games := simGamesCount(len(setup.Map.Rivers))
	startTurn := 0
	estimated := make([]protocol.Future, 0, len(mines))

	makeMove := func(route []boardmap.River, claimed boardmap.ClaimedRivers) (boardmap.River, bool) {
		var best boardmap.River
		var bestBw float64
		found := false
		for _, r := range route {
			if claimed.IsClaimed(r) {
				continue
			}
			bw := riversBw[r]
			if !found || bw > bestBw {
				best, bestBw, found = r, bw, true
			}
		}

		return best, found
	}

	for _, mine := range mines {
		timeLeft := time.Until(deadline)
		if timeLeft <= 0 {
			logger.Debugw("futures guessing budget expired")
			break
		}
		logger.Debugw("guessing future", "mine", mine, "time_left", timeLeft)

		type outcome struct {
			bf    montecarlo.BestFuture
			found bool
		}
		resultCh := make(chan outcome, 1)
		mine, startTurn := mine, startTurn
		go func() {
			bf, found := montecarlo.EstimateBestFuture(
				g, mine, mines, riversBw, setup.Punter, setup.Punters, startTurn, games, timeLeft,
				makeMove, montecarlo.NewCache(), graph.NewCache(), rand.New(rand.NewSource(time.Now().UnixNano())),
				montecarlo.WithLogger(logger),
			)
			resultCh <- outcome{bf: bf, found: found}
		}()

		select {
		case res := <-resultCh:
			if res.found {
				logger.Debugw("guessed future", "source", res.bf.Source, "target", res.bf.Target, "path_len", res.bf.PathLen)
				estimated = append(estimated, protocol.Future{Source: res.bf.Source, Target: res.bf.Target})
				startTurn += res.bf.PathLen * setup.Punters
			} else {
				logger.Warnw("no future estimate found for mine, proceeding with next", "mine", mine)
			}
		case <-time.After(timeLeft):
			logger.Warnw("futures guessing timed out mid-estimate")
			return reverseFutures(estimated)
		}
	}

	return reverseFutures(estimated)
}

func reverseFutures(futures []protocol.Future) []protocol.Future {
	if len(futures) == 0 {
		return nil
	}
	for i, j := 0, len(futures)-1; i < j; i, j = i+1, j-1 {
		futures[i], futures[j] = futures[j], futures[i]
	}

	return futures
}

type minePair struct {
	a boardmap.SiteId
	b boardmap.SiteId
}

func orderedMinePair(a, b boardmap.SiteId) minePair {
	if a <= b {
		return minePair{a: a, b: b}
	}

	return minePair{a: b, b: a}
}

// linkMines falls back to connecting mines directly when futures are off
// or yielded nothing: a single mine gets its longest reachable journey, two
// or more get every pairwise shortest path, and the resulting goals are
// stacked so the shortest path is popped first (the easiest wins are
// banked before the solver reaches for a longer one).
func linkMines(g *graph.Graph, mines []boardmap.SiteId, gcache *graph.Cache) []goal {
	paths := make(map[minePair][]boardmap.SiteId)

	switch {
	case len(mines) == 1:
		mine := mines[0]
		if path, ok := graph.LongestJourneyFrom(g, mine, gcache); ok && len(path) > 0 {
			end := path[len(path)-1]
			paths[orderedMinePair(mine, end)] = append([]boardmap.SiteId(nil), path...)
		}
	case len(mines) > 1:
		for _, a := range mines {
			for _, b := range mines {
				if a == b {
					continue
				}
				key := orderedMinePair(a, b)
				if _, ok := paths[key]; ok {
					continue
				}
				if path, ok := graph.ShortestPathOnly(g, key.a, key.b, gcache); ok {
					paths[key] = append([]boardmap.SiteId(nil), path...)
				}
			}
		}
	}

	type entry struct {
		key  minePair
		path []boardmap.SiteId
	}
	entries := make([]entry, 0, len(paths))
	for k, p := range paths {
		entries = append(entries, entry{key: k, path: p})
	}
	sort.Slice(entries, func(i, j int) bool {
		if len(entries[i].path) != len(entries[j].path) {
			return len(entries[i].path) < len(entries[j].path)
		}
		if entries[i].key.a != entries[j].key.a {
			return entries[i].key.a < entries[j].key.a
		}

		return entries[i].key.b < entries[j].key.b
	})

	// Play pops goals from the end, so the shortest entry goes last.
	goals := make([]goal, len(entries))
	for i, e := range entries {
		goals[len(entries)-1-i] = goal{source: e.key.a, target: e.key.b}
	}

	return goals
}

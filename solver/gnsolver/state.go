package gnsolver

import (
	"math/rand"

	"go.uber.org/zap"

	"github.com/turtle-bazon/icfpc-2017/boardmap"
	"github.com/turtle-bazon/icfpc-2017/graph"
	"github.com/turtle-bazon/icfpc-2017/protocol"
	"github.com/turtle-bazon/icfpc-2017/session"
)

// goal is one (source, target) journey the solver is currently working
// toward. goals is used as a stack: Play always advances the most
// recently pushed goal, pushing (target, source) back once it makes
// progress so the journey is revisited from the other end next turn.
type goal struct {
	source boardmap.SiteId
	target boardmap.SiteId
}

// GNGameState is the Girvan-Newman betweenness-guided solver's state.
// Play and Stop mutate and return the same state rather than copying it —
// its goal stack and claimed-river index are unbounded in principle, and
// nothing about this solver benefits from value semantics.
type GNGameState struct {
	punter      boardmap.PunterId
	punters     int
	rivers      []boardmap.River
	g           *graph.Graph
	goals       []goal
	claimed     boardmap.ClaimedRivers
	futures     []protocol.Future
	mines       []boardmap.SiteId
	riversBw    map[boardmap.River]float64
	optionsLeft int
	gcache      *graph.Cache
	rng         *rand.Rand
	logger      *zap.SugaredLogger
}

// log returns s.logger, or a no-op logger for a GNGameState built without
// going through GNGameStateBuilder (e.g. constructed directly in tests).
func (s *GNGameState) log() *zap.SugaredLogger {
	if s.logger == nil {
		return zap.NewNop().Sugar()
	}

	return s.logger
}

// Play implements session.GameState.
func (s *GNGameState) Play(moves []boardmap.Move) (boardmap.Move, session.GameState, error) {
	s.claimed.ApplyAll(moves)

	for len(s.goals) > 0 {
		current := s.goals[len(s.goals)-1]
		s.goals = s.goals[:len(s.goals)-1]

		path, ok := s.shortestPath(current.source, current.target)
		if !ok {
			s.log().Debugw("no route for goal, skipping", "source", current.source, "target", current.target)
			continue
		}

		if move, found := s.chooseRouteSegment(path); found {
			if move.Kind == boardmap.MoveOption {
				s.optionsLeft--
			}
			s.goals = append(s.goals, goal{source: current.target, target: current.source})

			return move, s, nil
		}
	}

	if path, mine, target, ok := s.chooseFallback(); ok {
		if move, found := s.chooseRouteSegment(path); found {
			if move.Kind == boardmap.MoveOption {
				s.optionsLeft--
			}
			s.goals = append(s.goals, goal{source: mine, target: target})

			return move, s, nil
		}
	}

	var free []boardmap.River
	for _, r := range s.rivers {
		if !s.claimed.IsClaimed(r) {
			free = append(free, r)
		}
	}
	if len(free) == 0 {
		return boardmap.Pass(s.punter), s, nil
	}
	r := free[s.rng.Intn(len(free))]

	return boardmap.Claim(s.punter, r.Source, r.Target), s, nil
}

// Stop implements session.GameState.
func (s *GNGameState) Stop(moves []boardmap.Move) (session.GameState, error) {
	s.claimed.ApplyAll(moves)

	for _, f := range s.futures {
		_, completed := s.shortestPath(f.Source, f.Target)
		s.log().Debugw("future status", "source", f.Source, "target", f.Target, "completed", completed)
	}

	return s, nil
}

// Punter implements session.GameState.
func (s *GNGameState) Punter() boardmap.PunterId { return s.punter }

// Futures implements session.GameState.
func (s *GNGameState) Futures() []protocol.Future { return s.futures }

// shortestPath finds the cheapest route from source to target under
// current ownership: a river I already hold costs nothing, an unclaimed
// one costs 1, and an enemy-held one costs 1 but consumes one unit of the
// Option budget carried along the search — once that budget is spent, an
// enemy river blocks the branch instead of merely costing more.
func (s *GNGameState) shortestPath(source, target boardmap.SiteId) ([]boardmap.SiteId, bool) {
	myPunter := s.punter
	claimed := s.claimed

	step := func(path []boardmap.SiteId, _ int64, seed any) graph.StepCommand {
		optionsLeft := seed.(int)
		pt := path[len(path)-1]
		if pt == target {
			return graph.Terminate()
		}
		if len(path) > 1 {
			ps := path[len(path)-2]
			mask := claimed.Owner(boardmap.NewRiver(ps, pt))
			if mask != 0 && !mask.Has(myPunter) {
				if optionsLeft > 0 {
					return graph.Continue(optionsLeft - 1)
				}

				return graph.Stop()
			}
		}

		return graph.Continue(optionsLeft)
	}

	return graph.GenericBFS(s.g, source, s.optionsLeft, step, s.ownershipProbe(), s.gcache)
}

// ownershipProbe reports a river I already hold as free to cross, an
// unclaimed river as costing 1, an enemy-held river as costing 1 only
// while the Option budget is non-empty, and an Option-ineligible river
// (already co-owned by two punters, or the budget spent) as blocked.
func (s *GNGameState) ownershipProbe() graph.ProbeFunc {
	myPunter := s.punter
	claimed := s.claimed
	optionsLeft := s.optionsLeft

	return func(u, v boardmap.SiteId) graph.EdgeAttr {
		mask := claimed.Owner(boardmap.NewRiver(u, v))
		switch {
		case mask == 0:
			return graph.Accessible(1)
		case mask.Has(myPunter):
			return graph.Accessible(0)
		case mask.Count() > 1:
			return graph.Blocked
		case optionsLeft > 0:
			return graph.Accessible(1)
		default:
			return graph.Blocked
		}
	}
}

// chooseRouteSegment picks the highest-betweenness river along path that I
// do not already own, claiming it outright if unclaimed or spending an
// Option if it is enemy-held and the budget allows. It returns found=false
// only when every segment of path is already mine, or when the one
// segment worth taking needs an Option I no longer have.
func (s *GNGameState) chooseRouteSegment(path []boardmap.SiteId) (boardmap.Move, bool) {
	var best boardmap.River
	var bestBw float64
	haveBest := false

	for i := 0; i+1 < len(path); i++ {
		river := boardmap.NewRiver(path[i], path[i+1])
		if s.claimed.OwnedBy(river, s.punter) {
			continue
		}
		bw := s.riversBw[river]
		if !haveBest || bw > bestBw {
			best, bestBw, haveBest = river, bw, true
		}
	}

	if !haveBest {
		return boardmap.Move{}, false
	}

	if s.claimed.IsClaimed(best) {
		if s.optionsLeft > 0 {
			return boardmap.OptionMove(s.punter, best.Source, best.Target), true
		}
		s.log().Warnw("wanted an option with none left", "river", best)

		return boardmap.Move{}, false
	}

	return boardmap.Claim(s.punter, best.Source, best.Target), true
}

// chooseFallback looks for a mine, in random order, whose Option-aware
// reachable frontier still has somewhere productive to grow, returning
// the farthest path it finds from that mine, the mine itself, and the
// site it reaches.
func (s *GNGameState) chooseFallback() ([]boardmap.SiteId, boardmap.SiteId, boardmap.SiteId, bool) {
	shuffled := append([]boardmap.SiteId(nil), s.mines...)
	s.rng.Shuffle(len(shuffled), func(i, j int) { shuffled[i], shuffled[j] = shuffled[j], shuffled[i] })

	myPunter := s.punter
	claimed := s.claimed

	for _, mine := range shuffled {
		var bestCost int64 = -1
		var bestPath []boardmap.SiteId
		var bestTarget boardmap.SiteId

		step := func(path []boardmap.SiteId, cost int64, seed any) graph.StepCommand {
			optionsLeft := seed.(int)
			pt := path[len(path)-1]
			cmd := graph.Continue(optionsLeft)
			if len(path) > 1 {
				ps := path[len(path)-2]
				mask := claimed.Owner(boardmap.NewRiver(ps, pt))
				if mask != 0 && !mask.Has(myPunter) {
					if optionsLeft > 0 {
						cmd = graph.Continue(optionsLeft - 1)
					} else {
						cmd = graph.Stop()
					}
				}
			}

			if cmd.Kind == graph.StepContinue && (bestCost < 0 || cost > bestCost) {
				bestCost = cost
				bestPath = append([]boardmap.SiteId(nil), path...)
				bestTarget = pt
			}

			return cmd
		}

		graph.GenericBFS(s.g, mine, s.optionsLeft, step, s.ownershipProbe(), s.gcache)

		if len(bestPath) > 1 {
			return bestPath, mine, bestTarget, true
		}
	}

	return nil, 0, 0, false
}

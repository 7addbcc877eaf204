package trivial

import (
	"github.com/turtle-bazon/icfpc-2017/boardmap"
	"github.com/turtle-bazon/icfpc-2017/protocol"
	"github.com/turtle-bazon/icfpc-2017/session"
)

// NearestBuilder builds a state that prefers rivers touching a mine over
// any other river, claiming the first unclaimed one it finds in whichever
// bucket is non-empty and passing only once both are exhausted.
type NearestBuilder struct{}

// Build implements session.GameStateBuilder.
func (NearestBuilder) Build(setup boardmap.Setup) session.GameState {
	mineTouching := make(map[boardmap.River]struct{})
	other := make(map[boardmap.River]struct{})
	for _, r := range setup.Map.Rivers {
		if setup.Map.IsMine(r.Source) || setup.Map.IsMine(r.Target) {
			mineTouching[r] = struct{}{}
		} else {
			other[r] = struct{}{}
		}
	}

	return nearestState{
		punter:       setup.Punter,
		mineTouching: mineTouching,
		other:        other,
	}
}

type nearestState struct {
	punter       boardmap.PunterId
	mineTouching map[boardmap.River]struct{}
	other        map[boardmap.River]struct{}
}

func (s nearestState) Play(moves []boardmap.Move) (boardmap.Move, session.GameState, error) {
	s.absorb(moves)

	if r, ok := firstOf(s.mineTouching); ok {
		return boardmap.Claim(s.punter, r.Source, r.Target), s, nil
	}
	if r, ok := firstOf(s.other); ok {
		return boardmap.Claim(s.punter, r.Source, r.Target), s, nil
	}

	return boardmap.Pass(s.punter), s, nil
}

func (s nearestState) Stop(moves []boardmap.Move) (session.GameState, error) {
	s.absorb(moves)

	return s, nil
}

func (s nearestState) Punter() boardmap.PunterId { return s.punter }

func (s nearestState) Futures() []protocol.Future { return nil }

// absorb removes every claimed river from both buckets, regardless of who
// claimed it — once a river is gone, it is gone for everyone.
func (s nearestState) absorb(moves []boardmap.Move) {
	for _, m := range moves {
		switch m.Kind {
		case boardmap.MoveClaim:
			r := boardmap.NewRiver(m.Source, m.Target)
			delete(s.mineTouching, r)
			delete(s.other, r)
		case boardmap.MoveSplurge:
			for _, r := range m.Segments() {
				delete(s.mineTouching, r)
				delete(s.other, r)
			}
		}
	}
}

// firstOf returns an arbitrary element of bucket. Map iteration order is
// randomized by Go's runtime, matching the original's HashSet-backed
// "whichever comes first" selection — neither promises a particular river,
// only that one is returned whenever the bucket is non-empty.
func firstOf(bucket map[boardmap.River]struct{}) (boardmap.River, bool) {
	for r := range bucket {
		return r, true
	}

	return boardmap.River{}, false
}

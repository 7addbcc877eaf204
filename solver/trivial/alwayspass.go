// Package trivial holds the two simplest baseline solvers: one that never
// claims a river, and one that grabs whatever unclaimed river touching a
// mine it can find. Neither plans ahead; both exist as a correctness floor
// the GN solver is expected to beat.
package trivial

import (
	"github.com/turtle-bazon/icfpc-2017/boardmap"
	"github.com/turtle-bazon/icfpc-2017/protocol"
	"github.com/turtle-bazon/icfpc-2017/session"
)

// AlwaysPassBuilder builds a state that passes every turn.
type AlwaysPassBuilder struct{}

// Build implements session.GameStateBuilder.
func (AlwaysPassBuilder) Build(setup boardmap.Setup) session.GameState {
	return alwaysPassState{punter: setup.Punter}
}

type alwaysPassState struct {
	punter boardmap.PunterId
}

func (s alwaysPassState) Play([]boardmap.Move) (boardmap.Move, session.GameState, error) {
	return boardmap.Pass(s.punter), s, nil
}

func (s alwaysPassState) Stop([]boardmap.Move) (session.GameState, error) {
	return s, nil
}

func (s alwaysPassState) Punter() boardmap.PunterId { return s.punter }

func (s alwaysPassState) Futures() []protocol.Future { return nil }

package session

import (
	"encoding/json"

	"github.com/turtle-bazon/icfpc-2017/boardmap"
	"github.com/turtle-bazon/icfpc-2017/protocol"
)

// GameState is the contract every solver implements. Play and Stop return a
// new state rather than mutating the receiver, mirroring the original
// ownership-transferring trait: a solver that wants in-place mutation is
// free to return itself, but the driver never assumes it may.
type GameState interface {
	// Play absorbs the moves made since the last turn and returns the
	// move this punter makes in response, along with the resulting state.
	Play(moves []boardmap.Move) (boardmap.Move, GameState, error)

	// Stop absorbs the final move batch and returns the resulting state,
	// for solvers that log or assert on the finished game.
	Stop(moves []boardmap.Move) (GameState, error)

	// Punter returns this state's own punter id.
	Punter() boardmap.PunterId

	// Futures returns the journeys this punter declared at setup, or nil
	// if futures are disabled or none were accepted.
	Futures() []protocol.Future
}

// GameStateBuilder constructs the solver's initial state from the Setup
// the server sent. Construction never fails: a solver unable to compute
// part of its plan (e.g. a per-mine future) simply omits that part.
type GameStateBuilder interface {
	Build(setup boardmap.Setup) GameState
}

// StateCodec serializes a GameState to the offline mode's opaque wire
// blob and restores one from it. What the blob contains is entirely up to
// the implementation — the driver only ever passes it through.
type StateCodec interface {
	Encode(state GameState) (json.RawMessage, error)
	Decode(blob json.RawMessage) (GameState, error)
}

// SendFunc transmits one outbound message. A non-nil error is fatal to the session.
type SendFunc func(protocol.Req) error

// RecvFunc receives one inbound message. A non-nil error is fatal to the session.
type RecvFunc func() (protocol.Rep, error)

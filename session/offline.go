package session

import (
	"fmt"

	"github.com/turtle-bazon/icfpc-2017/protocol"
)

// RunOfflineStep performs the single request/response exchange the
// offline driver is responsible for in one process invocation: Setup
// produces Ready carrying the freshly built state's encoding, Move
// decodes the state the previous invocation emitted, plays, and
// re-encodes it, and Stop decodes the state one last time and returns the
// final scores. Handshake carries no state in either mode, so it is
// handled by the shared Handshake helper instead of here.
//
// The returned bool is true only once Stop has been processed, at which
// point scores is populated and req is the zero Req (nothing left to send).
func RunOfflineStep(rep protocol.Rep, builder GameStateBuilder, codec StateCodec, opts ...Option) (req protocol.Req, scores []protocol.Score, done bool, err error) {
	cfg := newConfig(opts...)
	switch rep.Kind {
	case protocol.RepSetup:
		if rep.State != nil {
			return protocol.Req{}, nil, false, fmt.Errorf("%w: setup carried a state blob", ErrStateContinuity)
		}
		state := builder.Build(rep.Setup)
		blob, err := codec.Encode(state)
		if err != nil {
			return protocol.Req{}, nil, false, fmt.Errorf("%w: %v", ErrStateContinuity, err)
		}
		cfg.logger.Debugw("offline setup handled", "punter", state.Punter())

		return protocol.ReadyReq(state.Punter(), state.Futures(), blob), nil, false, nil

	case protocol.RepMove:
		if rep.State == nil {
			return protocol.Req{}, nil, false, fmt.Errorf("%w: move carried no state", ErrStateContinuity)
		}
		state, err := codec.Decode(rep.State)
		if err != nil {
			return protocol.Req{}, nil, false, fmt.Errorf("%w: %v", ErrStateContinuity, err)
		}
		move, next, err := state.Play(rep.Moves)
		if err != nil {
			return protocol.Req{}, nil, false, fmt.Errorf("%w: %v", ErrSolverFailed, err)
		}
		blob, err := codec.Encode(next)
		if err != nil {
			return protocol.Req{}, nil, false, fmt.Errorf("%w: %v", ErrStateContinuity, err)
		}
		cfg.logger.Debugw("offline move played", "punter", move.Punter, "kind", move.Kind)

		return protocol.MoveReq(move, blob), nil, false, nil

	case protocol.RepStop:
		if rep.State == nil {
			return protocol.Req{}, nil, false, fmt.Errorf("%w: stop carried no state", ErrStateContinuity)
		}
		state, err := codec.Decode(rep.State)
		if err != nil {
			return protocol.Req{}, nil, false, fmt.Errorf("%w: %v", ErrStateContinuity, err)
		}
		if _, err := state.Stop(rep.Moves); err != nil {
			return protocol.Req{}, nil, false, fmt.Errorf("%w: %v", ErrSolverFailed, err)
		}
		cfg.logger.Debugw("offline game stopped", "scores", rep.Scores)

		return protocol.Req{}, rep.Scores, true, nil

	default:
		return protocol.Req{}, nil, false, fmt.Errorf("%w: unexpected message kind %d in offline exchange", ErrUnexpectedPhase, rep.Kind)
	}
}

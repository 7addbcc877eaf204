package session

import (
	"fmt"

	"github.com/turtle-bazon/icfpc-2017/protocol"
)

// Handshake sends the punter's name and waits for the server's matching
// echo. It is shared by Run and whatever drives the offline variant's
// first exchange, since handshake carries no state blob in either mode.
func Handshake(name string, send SendFunc, recv RecvFunc) error {
	if err := send(protocol.HandshakeReq(name)); err != nil {
		return fmt.Errorf("%w: %v", ErrTransportSend, err)
	}

	rep, err := recv()
	if err != nil {
		return fmt.Errorf("%w: %v", ErrTransportRecv, err)
	}
	if rep.Kind != protocol.RepHandshake || rep.Name != name {
		return fmt.Errorf("%w: handshake echo mismatch (got %q)", ErrUnexpectedPhase, rep.Name)
	}

	return nil
}

// Run drives one complete online game: handshake, Setup, Ready, then the
// Move/Stop loop, returning the final scores once the server sends Stop.
// It short-circuits on the first error from the transport or the solver.
func Run(name string, send SendFunc, recv RecvFunc, builder GameStateBuilder, opts ...Option) ([]protocol.Score, error) {
	cfg := newConfig(opts...)
	if err := Handshake(name, send, recv); err != nil {
		return nil, err
	}

	rep, err := recv()
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrTransportRecv, err)
	}
	if rep.Kind != protocol.RepSetup {
		return nil, fmt.Errorf("%w: expected setup, got message kind %d", ErrUnexpectedPhase, rep.Kind)
	}

	state := builder.Build(rep.Setup)
	cfg.logger.Debugw("setup received, state built", "punter", state.Punter())
	if err := send(protocol.ReadyReq(state.Punter(), state.Futures(), nil)); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrTransportSend, err)
	}

	for {
		rep, err := recv()
		if err != nil {
			return nil, fmt.Errorf("%w: %v", ErrTransportRecv, err)
		}

		switch rep.Kind {
		case protocol.RepTimeout:
			cfg.logger.Warnw("timeout message received, continuing to wait")
			continue

		case protocol.RepMove:
			move, next, err := state.Play(rep.Moves)
			if err != nil {
				return nil, fmt.Errorf("%w: %v", ErrSolverFailed, err)
			}
			state = next
			cfg.logger.Debugw("move played", "punter", move.Punter, "kind", move.Kind)
			if err := send(protocol.MoveReq(move, nil)); err != nil {
				return nil, fmt.Errorf("%w: %v", ErrTransportSend, err)
			}

		case protocol.RepStop:
			if _, err := state.Stop(rep.Moves); err != nil {
				return nil, fmt.Errorf("%w: %v", ErrSolverFailed, err)
			}
			cfg.logger.Debugw("game stopped", "scores", rep.Scores)

			return rep.Scores, nil

		default:
			return nil, fmt.Errorf("%w: unexpected message kind %d during move loop", ErrUnexpectedPhase, rep.Kind)
		}
	}
}

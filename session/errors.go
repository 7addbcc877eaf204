// Package session drives one game of Lambda Punter against a server: the
// handshake, Setup, the per-turn Move/Stop loop, and the offline variant
// that threads the solver's state through the wire instead of holding it
// in memory across calls. The driver itself never chooses a move — that is
// entirely up to the GameState a GameStateBuilder hands it at Setup time.
package session

import "errors"

// Sentinel errors for each of the driver's distinct failure kinds. The
// driver always wraps the underlying cause with fmt.Errorf("%w: ...", ...),
// so callers can distinguish kinds with errors.Is while still seeing the
// original error in the message.
var (
	// ErrTransportSend indicates the caller-supplied send callable failed.
	ErrTransportSend = errors.New("session: transport send failed")

	// ErrTransportRecv indicates the caller-supplied recv callable failed.
	ErrTransportRecv = errors.New("session: transport recv failed")

	// ErrUnexpectedPhase indicates a structurally valid message arrived at
	// a phase of the exchange that cannot accept it.
	ErrUnexpectedPhase = errors.New("session: unexpected phase")

	// ErrSolverFailed indicates the game state's Play or Stop returned an error.
	ErrSolverFailed = errors.New("session: solver failed")

	// ErrStateContinuity indicates the offline driver's state blob was
	// missing where one was required, or present where none was expected.
	ErrStateContinuity = errors.New("session: state continuity violation")
)

// Package protocol implements the JSON message shapes the session driver
// exchanges with the server, mirroring proto.rs: a Req the driver sends, a
// Rep the driver receives, and the Setup/Move/Score payloads nested inside
// them. Only the message bodies are this package's concern — the
// length-prefixed transport framing that carries them is out of scope and
// lives with whatever calls this package.
package protocol

import (
	"encoding/json"

	"github.com/turtle-bazon/icfpc-2017/boardmap"
)

// Future is one (source, target) pair declared at Ready time, committing
// the punter to that journey for the rest of the game.
type Future struct {
	Source boardmap.SiteId
	Target boardmap.SiteId
}

// Score is one punter's final tally. Scores may be negative.
type Score struct {
	Punter boardmap.PunterId
	Value  int
}

// ReqKind tags the variant carried by a Req.
type ReqKind int

const (
	// ReqHandshake announces the punter's name.
	ReqHandshake ReqKind = iota
	// ReqReady acknowledges Setup and optionally declares futures.
	ReqReady
	// ReqMove reports the punter's chosen move.
	ReqMove
)

// Req is every message the driver ever sends. State, when non-nil, is the
// offline mode's opaque state blob ferried alongside Ready and Move.
type Req struct {
	Kind    ReqKind
	Name    string
	Punter  boardmap.PunterId
	Futures []Future
	Move    boardmap.Move
	State   json.RawMessage
}

// HandshakeReq builds the initial `{"me": name}` message.
func HandshakeReq(name string) Req {
	return Req{Kind: ReqHandshake, Name: name}
}

// ReadyReq builds the post-Setup `{"ready": punter, ...}` message. futures
// and state may both be nil.
func ReadyReq(punter boardmap.PunterId, futures []Future, state json.RawMessage) Req {
	return Req{Kind: ReqReady, Punter: punter, Futures: futures, State: state}
}

// MoveReq builds the per-turn move message. state may be nil.
func MoveReq(move boardmap.Move, state json.RawMessage) Req {
	return Req{Kind: ReqMove, Move: move, State: state}
}

// RepKind tags the variant carried by a Rep.
type RepKind int

const (
	// RepHandshake is the server's handshake echo.
	RepHandshake RepKind = iota
	// RepTimeout is a non-fatal advisory the driver ignores.
	RepTimeout
	// RepSetup carries the initial board and game settings.
	RepSetup
	// RepMove carries the batch of moves made since the driver's last turn.
	RepMove
	// RepStop carries the final move batch and the game's scores.
	RepStop
)

// Rep is every message the driver ever receives.
type Rep struct {
	Kind      RepKind
	Name      string
	TimeoutMs int
	Setup     boardmap.Setup
	Moves     []boardmap.Move
	Scores    []Score
	State     json.RawMessage
}

package protocol

import (
	"encoding/json"
	"errors"
	"fmt"
)

// ErrUnexpectedJSON indicates a server message was well-formed JSON but
// matched none of the recognized top-level shapes.
var ErrUnexpectedJSON = errors.New("protocol: unexpected json shape")

// MarshalJSON renders r as the single-key object the server expects.
func (r Req) MarshalJSON() ([]byte, error) {
	switch r.Kind {
	case ReqHandshake:
		return json.Marshal(map[string]string{"me": r.Name})
	case ReqReady:
		body := map[string]any{"ready": r.Punter}
		if len(r.Futures) > 0 {
			wire := make([]wireRiver, len(r.Futures))
			for i, f := range r.Futures {
				wire[i] = wireRiver{Source: f.Source, Target: f.Target}
			}
			body["futures"] = wire
		}
		if r.State != nil {
			body["state"] = r.State
		}

		return json.Marshal(body)
	case ReqMove:
		env := moveEnvelope(r.Move)
		body := map[string]any{}
		switch {
		case env.Claim != nil:
			body["claim"] = env.Claim
		case env.Pass != nil:
			body["pass"] = env.Pass
		case env.Splurge != nil:
			body["splurge"] = env.Splurge
		case env.Option != nil:
			body["option"] = env.Option
		}
		if r.State != nil {
			body["state"] = r.State
		}

		return json.Marshal(body)
	default:
		return nil, fmt.Errorf("protocol: unknown request kind %d", r.Kind)
	}
}

// UnmarshalJSON parses the server's message into r, sniffing which of the
// recognized top-level keys is present — move, stop, the setup trio,
// timeout, or the handshake echo — in the same priority order the original
// client used.
func (r *Rep) UnmarshalJSON(data []byte) error {
	var fields map[string]json.RawMessage
	if err := json.Unmarshal(data, &fields); err != nil {
		return err
	}

	switch {
	case fields["move"] != nil:
		var batch wireMoveBatch
		if err := json.Unmarshal(fields["move"], &batch); err != nil {
			return err
		}
		moves, err := decodeMoves(batch.Moves)
		if err != nil {
			return err
		}
		*r = Rep{Kind: RepMove, Moves: moves, State: fields["state"]}

		return nil

	case fields["stop"] != nil:
		var stop wireStop
		if err := json.Unmarshal(fields["stop"], &stop); err != nil {
			return err
		}
		moves, err := decodeMoves(stop.Moves)
		if err != nil {
			return err
		}
		*r = Rep{Kind: RepStop, Moves: moves, Scores: decodeScores(stop.Scores), State: fields["state"]}

		return nil

	case fields["punter"] != nil && fields["punters"] != nil && fields["map"] != nil:
		var setup wireSetup
		if err := json.Unmarshal(fields["punter"], &setup.Punter); err != nil {
			return err
		}
		if err := json.Unmarshal(fields["punters"], &setup.Punters); err != nil {
			return err
		}
		if err := json.Unmarshal(fields["map"], &setup.Map); err != nil {
			return err
		}
		if raw, ok := fields["settings"]; ok {
			var settings wireSettings
			if err := json.Unmarshal(raw, &settings); err != nil {
				return err
			}
			setup.Settings = &settings
		}
		*r = Rep{Kind: RepSetup, Setup: setup.toSetup()}

		return nil

	case fields["timeout"] != nil:
		var timeout int
		if err := json.Unmarshal(fields["timeout"], &timeout); err != nil {
			return err
		}
		*r = Rep{Kind: RepTimeout, TimeoutMs: timeout}

		return nil

	case fields["you"] != nil:
		var name string
		if err := json.Unmarshal(fields["you"], &name); err != nil {
			return err
		}
		*r = Rep{Kind: RepHandshake, Name: name}

		return nil

	default:
		return ErrUnexpectedJSON
	}
}

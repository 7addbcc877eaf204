package session_test

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/turtle-bazon/icfpc-2017/boardmap"
	"github.com/turtle-bazon/icfpc-2017/protocol"
	"github.com/turtle-bazon/icfpc-2017/session"
)

// fakeState is the simplest possible GameState: it always passes, and
// remembers how many moves it has absorbed. It exists only to drive
// the session package's own tests — real solvers live in solver/.
type fakeState struct {
	punter   boardmap.PunterId
	absorbed int
}

func (s fakeState) Play(moves []boardmap.Move) (boardmap.Move, session.GameState, error) {
	next := fakeState{punter: s.punter, absorbed: s.absorbed + len(moves)}

	return boardmap.Pass(s.punter), next, nil
}

func (s fakeState) Stop(moves []boardmap.Move) (session.GameState, error) {
	return fakeState{punter: s.punter, absorbed: s.absorbed + len(moves)}, nil
}

func (s fakeState) Punter() boardmap.PunterId    { return s.punter }
func (s fakeState) Futures() []protocol.Future { return nil }

type fakeBuilder struct{}

func (fakeBuilder) Build(setup boardmap.Setup) session.GameState {
	return fakeState{punter: setup.Punter}
}

type fakeStateWire struct {
	Punter   boardmap.PunterId `json:"punter"`
	Absorbed int               `json:"absorbed"`
}

type fakeCodec struct{}

func (fakeCodec) Encode(state session.GameState) (json.RawMessage, error) {
	fs := state.(fakeState)

	return json.Marshal(fakeStateWire{Punter: fs.punter, Absorbed: fs.absorbed})
}

func (fakeCodec) Decode(blob json.RawMessage) (session.GameState, error) {
	var wire fakeStateWire
	if err := json.Unmarshal(blob, &wire); err != nil {
		return nil, err
	}

	return fakeState{punter: wire.Punter, absorbed: wire.Absorbed}, nil
}

func TestHandshakeMismatchReturnsUnexpectedPhase(t *testing.T) {
	send := func(protocol.Req) error { return nil }
	recv := func() (protocol.Rep, error) {
		return protocol.Rep{Kind: protocol.RepHandshake, Name: "bob"}, nil
	}

	err := session.Handshake("alice", send, recv)
	require.Error(t, err)
	assert.ErrorIs(t, err, session.ErrUnexpectedPhase)
}

func TestRunDrivesFullGame(t *testing.T) {
	setup := boardmap.Setup{
		Punter:  0,
		Punters: 2,
		Map: boardmap.Map{
			Sites:  []boardmap.SiteId{0, 1},
			Rivers: []boardmap.River{boardmap.NewRiver(0, 1)},
			Mines:  map[boardmap.SiteId]struct{}{0: {}},
		},
	}

	var sent []protocol.Req
	recvQueue := []protocol.Rep{
		{Kind: protocol.RepHandshake, Name: "alice"},
		{Kind: protocol.RepSetup, Setup: setup},
		{Kind: protocol.RepMove, Moves: []boardmap.Move{boardmap.Pass(1)}},
		{Kind: protocol.RepStop, Scores: []protocol.Score{{Punter: 0, Value: 6}, {Punter: 1, Value: 6}}},
	}

	send := func(r protocol.Req) error {
		sent = append(sent, r)

		return nil
	}
	recv := func() (protocol.Rep, error) {
		r := recvQueue[0]
		recvQueue = recvQueue[1:]

		return r, nil
	}

	scores, err := session.Run("alice", send, recv, fakeBuilder{})
	require.NoError(t, err)
	assert.Equal(t, []protocol.Score{{Punter: 0, Value: 6}, {Punter: 1, Value: 6}}, scores)
	require.Len(t, sent, 3)
	assert.Equal(t, protocol.ReqHandshake, sent[0].Kind)
	assert.Equal(t, protocol.ReqReady, sent[1].Kind)
	assert.Equal(t, protocol.ReqMove, sent[2].Kind)
}

// Offline state round-trip: building state from Setup, serializing it,
// restoring it, and absorbing a Move batch must be indistinguishable from
// absorbing that batch directly against the in-memory state.
func TestOfflineStateRoundTrip(t *testing.T) {
	setup := boardmap.Setup{Punter: 1, Punters: 2}
	builder := fakeBuilder{}
	codec := fakeCodec{}

	setupRep := protocol.Rep{Kind: protocol.RepSetup, Setup: setup}
	readyReq, _, done, err := session.RunOfflineStep(setupRep, builder, codec)
	require.NoError(t, err)
	require.False(t, done)
	require.Equal(t, protocol.ReqReady, readyReq.Kind)

	direct := builder.Build(setup)
	_, directNext, err := direct.Play([]boardmap.Move{boardmap.Pass(0)})
	require.NoError(t, err)

	moveRep := protocol.Rep{Kind: protocol.RepMove, Moves: []boardmap.Move{boardmap.Pass(0)}, State: readyReq.State}
	moveReq, _, done, err := session.RunOfflineStep(moveRep, builder, codec)
	require.NoError(t, err)
	require.False(t, done)
	require.Equal(t, protocol.ReqMove, moveReq.Kind)

	restored, err := codec.Decode(moveReq.State)
	require.NoError(t, err)
	assert.Equal(t, directNext, restored)
}

func TestOfflineStepRejectsMissingState(t *testing.T) {
	_, _, _, err := session.RunOfflineStep(protocol.Rep{Kind: protocol.RepMove}, fakeBuilder{}, fakeCodec{})
	assert.ErrorIs(t, err, session.ErrStateContinuity)
}

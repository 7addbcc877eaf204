package protocol

import "github.com/turtle-bazon/icfpc-2017/boardmap"

// wireSite, wireRiver and wireMap mirror the server's nested map shape:
// `{"sites":[{"id":…}],"rivers":[{"source","target"}],"mines":[…]}`.
type wireSite struct {
	ID boardmap.SiteId `json:"id"`
}

type wireRiver struct {
	Source boardmap.SiteId `json:"source"`
	Target boardmap.SiteId `json:"target"`
}

type wireMap struct {
	Sites  []wireSite        `json:"sites"`
	Rivers []wireRiver       `json:"rivers"`
	Mines  []boardmap.SiteId `json:"mines"`
}

// wireSettings mirrors the Setup message's optional `"settings"` object.
// All three flags default to false when settings is absent altogether.
type wireSettings struct {
	Futures  bool `json:"futures,omitempty"`
	Splurges bool `json:"splurges,omitempty"`
	Options  bool `json:"options,omitempty"`
}

type wireSetup struct {
	Punter   boardmap.PunterId `json:"punter"`
	Punters  int               `json:"punters"`
	Map      wireMap           `json:"map"`
	Settings *wireSettings     `json:"settings,omitempty"`
}

func (s wireSetup) toSetup() boardmap.Setup {
	m := boardmap.Map{
		Sites:  make([]boardmap.SiteId, len(s.Map.Sites)),
		Rivers: make([]boardmap.River, len(s.Map.Rivers)),
		Mines:  make(map[boardmap.SiteId]struct{}, len(s.Map.Mines)),
	}
	for i, site := range s.Map.Sites {
		m.Sites[i] = site.ID
	}
	for i, r := range s.Map.Rivers {
		m.Rivers[i] = boardmap.NewRiver(r.Source, r.Target)
	}
	for _, mine := range s.Map.Mines {
		m.Mines[mine] = struct{}{}
	}

	var settings boardmap.Settings
	if s.Settings != nil {
		settings = boardmap.Settings{
			Futures:  s.Settings.Futures,
			Splurges: s.Settings.Splurges,
			Options:  s.Settings.Options,
		}
	}

	return boardmap.Setup{Punter: s.Punter, Punters: s.Punters, Map: m, Settings: settings}
}

// wireClaim, wirePass, wireSplurge and wireOption are the bodies nested
// under their respective single-key move envelopes. Field order matches
// the original's BTreeMap-serialized key order (alphabetical).
type wireClaim struct {
	Punter boardmap.PunterId `json:"punter"`
	Source boardmap.SiteId   `json:"source"`
	Target boardmap.SiteId   `json:"target"`
}

type wirePass struct {
	Punter boardmap.PunterId `json:"punter"`
}

type wireSplurge struct {
	Punter boardmap.PunterId `json:"punter"`
	Route  []boardmap.SiteId `json:"route"`
}

type wireOption struct {
	Punter boardmap.PunterId `json:"punter"`
	Source boardmap.SiteId   `json:"source"`
	Target boardmap.SiteId   `json:"target"`
}

// wireMoveEnvelope is the tagged-union shape a single move arrives as:
// exactly one of its fields is non-nil.
type wireMoveEnvelope struct {
	Claim   *wireClaim   `json:"claim,omitempty"`
	Pass    *wirePass    `json:"pass,omitempty"`
	Splurge *wireSplurge `json:"splurge,omitempty"`
	Option  *wireOption  `json:"option,omitempty"`
}

func (e wireMoveEnvelope) toMove() (boardmap.Move, error) {
	switch {
	case e.Claim != nil:
		return boardmap.Claim(e.Claim.Punter, e.Claim.Source, e.Claim.Target), nil
	case e.Pass != nil:
		return boardmap.Pass(e.Pass.Punter), nil
	case e.Splurge != nil:
		return boardmap.Splurge(e.Splurge.Punter, e.Splurge.Route), nil
	case e.Option != nil:
		return boardmap.OptionMove(e.Option.Punter, e.Option.Source, e.Option.Target), nil
	default:
		return boardmap.Move{}, ErrUnexpectedJSON
	}
}

func moveEnvelope(m boardmap.Move) wireMoveEnvelope {
	switch m.Kind {
	case boardmap.MoveClaim:
		return wireMoveEnvelope{Claim: &wireClaim{Punter: m.Punter, Source: m.Source, Target: m.Target}}
	case boardmap.MovePass:
		return wireMoveEnvelope{Pass: &wirePass{Punter: m.Punter}}
	case boardmap.MoveSplurge:
		return wireMoveEnvelope{Splurge: &wireSplurge{Punter: m.Punter, Route: m.Route}}
	case boardmap.MoveOption:
		return wireMoveEnvelope{Option: &wireOption{Punter: m.Punter, Source: m.Source, Target: m.Target}}
	default:
		return wireMoveEnvelope{}
	}
}

type wireMoveBatch struct {
	Moves []wireMoveEnvelope `json:"moves"`
}

type wireScore struct {
	Punter boardmap.PunterId `json:"punter"`
	Score  int               `json:"score"`
}

type wireStop struct {
	Moves  []wireMoveEnvelope `json:"moves"`
	Scores []wireScore        `json:"scores"`
}

func decodeMoves(envs []wireMoveEnvelope) ([]boardmap.Move, error) {
	out := make([]boardmap.Move, len(envs))
	for i, e := range envs {
		m, err := e.toMove()
		if err != nil {
			return nil, err
		}
		out[i] = m
	}

	return out, nil
}

func decodeScores(ws []wireScore) []Score {
	out := make([]Score, len(ws))
	for i, s := range ws {
		out[i] = Score{Punter: s.Punter, Value: s.Score}
	}

	return out
}

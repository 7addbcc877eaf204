package boardmap

// MoveKind tags the variant carried by a Move.
type MoveKind int

const (
	// MoveClaim claims a single unowned river exclusively.
	MoveClaim MoveKind = iota
	// MovePass plays no river this turn.
	MovePass
	// MoveSplurge claims every consecutive river along Route in one move.
	MoveSplurge
	// MoveOption co-claims a river already owned by exactly one other punter.
	MoveOption
)

// Move is the tagged variant every player action is reported as:
// Claim(punter, source, target) | Pass(punter) | Splurge(punter, route) |
// Option(punter, source, target).
type Move struct {
	Kind   MoveKind
	Punter PunterId
	Source SiteId
	Target SiteId
	Route  []SiteId
}

// Claim builds a Claim move.
func Claim(punter PunterId, source, target SiteId) Move {
	return Move{Kind: MoveClaim, Punter: punter, Source: source, Target: target}
}

// Pass builds a Pass move.
func Pass(punter PunterId) Move {
	return Move{Kind: MovePass, Punter: punter}
}

// Splurge builds a Splurge move over route, a sequence of consecutively
// connected sites. A splurge of length k represents k consecutive claims.
func Splurge(punter PunterId, route []SiteId) Move {
	return Move{Kind: MoveSplurge, Punter: punter, Route: route}
}

// OptionMove builds an Option move (named to avoid colliding with the
// Options settings flag).
func OptionMove(punter PunterId, source, target SiteId) Move {
	return Move{Kind: MoveOption, Punter: punter, Source: source, Target: target}
}

// Segments returns the rivers a Splurge move claims, one per consecutive
// pair of sites along Route. For non-Splurge moves it returns nil.
func (m Move) Segments() []River {
	if m.Kind != MoveSplurge || len(m.Route) < 2 {
		return nil
	}
	segs := make([]River, 0, len(m.Route)-1)
	for i := 0; i+1 < len(m.Route); i++ {
		segs = append(segs, NewRiver(m.Route[i], m.Route[i+1]))
	}

	return segs
}

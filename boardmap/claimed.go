package boardmap

import "math/bits"

// OwnerMask is a bitset over punter ids: bit p is set iff punter p holds
// the associated river. Without the Option rule at most one bit is ever
// set; with it, co-owned rivers carry two.
type OwnerMask uint64

// bitFor returns the single-bit mask for punter.
func bitFor(punter PunterId) OwnerMask {
	return OwnerMask(1) << uint(punter)
}

// Has reports whether punter owns (any share of) the river carrying this mask.
func (m OwnerMask) Has(punter PunterId) bool {
	return m&bitFor(punter) != 0
}

// Count returns the number of punters that co-own the river.
func (m OwnerMask) Count() int {
	return bits.OnesCount64(uint64(m))
}

// ClaimedRivers maps every claimed River to its OwnerMask. A river absent
// from the index is unclaimed. This is the solver's single source of truth
// for who owns what; it is created at setup and only ever grows.
type ClaimedRivers map[River]OwnerMask

// NewClaimedRivers returns an empty index.
func NewClaimedRivers() ClaimedRivers {
	return make(ClaimedRivers)
}

// Owner returns the ownership mask of river, or 0 if it is unclaimed.
func (c ClaimedRivers) Owner(r River) OwnerMask {
	return c[r]
}

// IsClaimed reports whether river has any owner at all.
func (c ClaimedRivers) IsClaimed(r River) bool {
	_, ok := c[r]

	return ok
}

// OwnedBy reports whether punter holds (a share of) river.
func (c ClaimedRivers) OwnedBy(r River, punter PunterId) bool {
	return c[r].Has(punter)
}

// Claim records an exclusive claim of river by punter, overwriting any
// prior mask. Used for Move.Claim and for each segment of a Move.Splurge —
// the original source recorded Splurge segments with the raw punter id
// rather than the bitmask form used for Claim; this index stores the
// bitmask uniformly for both, and for Option, per spec.
func (c ClaimedRivers) Claim(r River, punter PunterId) {
	c[r] = bitFor(punter)
}

// AddOption ORs punter's bit into river's existing mask, co-claiming a
// river that may already carry another punter's bit.
func (c ClaimedRivers) AddOption(r River, punter PunterId) {
	c[r] |= bitFor(punter)
}

// Apply absorbs a single observed Move into the index.
func (c ClaimedRivers) Apply(m Move) {
	switch m.Kind {
	case MoveClaim:
		c.Claim(NewRiver(m.Source, m.Target), m.Punter)
	case MoveSplurge:
		for _, seg := range m.Segments() {
			c.Claim(seg, m.Punter)
		}
	case MoveOption:
		c.AddOption(NewRiver(m.Source, m.Target), m.Punter)
	case MovePass:
		// no river changes hands
	}
}

// ApplyAll absorbs a batch of moves in order.
func (c ClaimedRivers) ApplyAll(moves []Move) {
	for _, m := range moves {
		c.Apply(m)
	}
}

// SoleEnemyOwner returns the single punter owning river when that punter is
// not me and no one else co-owns it yet, i.e. the river is eligible for an
// Option by me. The second return value is false when river is unclaimed,
// claimed by me, or already co-owned by more than one punter.
func (c ClaimedRivers) SoleEnemyOwner(r River, me PunterId) (PunterId, bool) {
	mask := c[r]
	if mask == 0 || mask.Has(me) || mask.Count() != 1 {
		return 0, false
	}
	for p := PunterId(0); p < MaxPunters; p++ {
		if mask.Has(p) {
			return p, true
		}
	}

	return 0, false
}

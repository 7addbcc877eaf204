package montecarlo

import "github.com/turtle-bazon/icfpc-2017/boardmap"

// weightedRiver is one entry of a cumulative-weight draw: river, with its
// quantized betweenness weight.
type weightedRiver struct {
	river  boardmap.River
	weight uint32
}

// Cache holds the scratch state one simulation run needs, reused across
// games and across calls so a setup-time EstimateBestFuture run — which
// can call JourneySuccessProbability thousands of times — allocates its
// maps and slices once.
type Cache struct {
	claimed     boardmap.ClaimedRivers
	weighted    []weightedRiver
	routeRivers []boardmap.River
}

// NewCache returns an empty, ready-to-use Cache.
func NewCache() *Cache {
	return &Cache{claimed: boardmap.NewClaimedRivers()}
}

func (c *Cache) clearClaimed() {
	for k := range c.claimed {
		delete(c.claimed, k)
	}
}

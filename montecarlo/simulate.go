package montecarlo

import (
	"math"
	"math/rand"

	"github.com/turtle-bazon/icfpc-2017/boardmap"
)

// MakeMoveFunc decides which river of route to claim next, given the
// rivers already claimed by anyone. It returns ok=false to pass.
// Implementations only ever need to look at route — JourneySuccessProbability
// never asks them about a river outside it.
type MakeMoveFunc func(route []boardmap.River, claimed boardmap.ClaimedRivers) (boardmap.River, bool)

// JourneySuccessProbability estimates, by replaying gamesCount randomized
// games, the probability that myPunter completes journey (claims every
// river along it, none of them already held by an opponent) by the time
// the simulation ends. Enemy turns are simulated as weighted-random claims
// over every still-unclaimed river on the board, weighted by riversBw so
// contested, high-betweenness rivers are more likely to be taken first.
//
// The second return value is false if journey is too short to have any
// rivers, or if fewer than two punters are in the game — there is nothing
// to simulate either way.
func JourneySuccessProbability(
	journey []boardmap.SiteId,
	riversBw map[boardmap.River]float64,
	myPunter boardmap.PunterId,
	puntersCount int,
	startTurn int,
	gamesCount int,
	makeMove MakeMoveFunc,
	cache *Cache,
	rng *rand.Rand,
) (float64, bool) {
	if len(journey) < 2 || puntersCount < 2 {
		return 0, false
	}

	cache.routeRivers = cache.routeRivers[:0]
	for i := 0; i+1 < len(journey); i++ {
		cache.routeRivers = append(cache.routeRivers, boardmap.NewRiver(journey[i], journey[i+1]))
	}

	var bwSum float64
	for _, w := range riversBw {
		bwSum += w
	}
	bwScale := math.MaxUint32 / bwSum

	successCount := 0
	for i := 0; i < gamesCount; i++ {
		if playJourney(riversBw, myPunter, puntersCount, startTurn, makeMove, bwScale, cache, rng) {
			successCount++
		}
	}

	return float64(successCount) / float64(gamesCount), true
}

// playJourney plays one randomized game to its conclusion for the
// journey currently staged in cache.routeRivers, returning true iff every
// river of the journey ends up owned by myPunter before any of them falls
// to an opponent.
func playJourney(
	riversBw map[boardmap.River]float64,
	myPunter boardmap.PunterId,
	puntersCount int,
	startTurn int,
	makeMove MakeMoveFunc,
	bwScale float64,
	cache *Cache,
	rng *rand.Rand,
) bool {
	cache.clearClaimed()

	for turnCounter := 0; ; turnCounter++ {
		finished := true
		for _, river := range cache.routeRivers {
			switch {
			case cache.claimed.OwnedBy(river, myPunter):
				continue
			case cache.claimed.IsClaimed(river):
				return false
			default:
				finished = false
			}
			break
		}
		if finished {
			return true
		}

		turn := turnCounter % puntersCount
		if turnCounter >= startTurn && turn == int(myPunter) {
			if river, ok := makeMove(cache.routeRivers, cache.claimed); ok {
				cache.claimed.Claim(river, myPunter)
			}
			continue
		}

		enemy := boardmap.PunterId(turn)
		cache.weighted = cache.weighted[:0]
		for river, bw := range riversBw {
			if cache.claimed.IsClaimed(river) {
				continue
			}
			cache.weighted = append(cache.weighted, weightedRiver{river: river, weight: uint32(bw * bwScale)})
		}
		if river, ok := pickWeighted(cache.weighted, rng); ok {
			cache.claimed.Claim(river, enemy)
		}
	}
}

// pickWeighted draws one river from weighted with probability proportional
// to its weight. It returns ok=false when weighted is empty or every entry's
// quantized weight rounded down to zero, a degeneracy treated as no move
// possible rather than a panic out of rng.Int63n.
func pickWeighted(weighted []weightedRiver, rng *rand.Rand) (boardmap.River, bool) {
	var total int64
	for _, w := range weighted {
		total += int64(w.weight)
	}
	if total <= 0 {
		return boardmap.River{}, false
	}

	pick := rng.Int63n(total)
	var cum int64
	for _, w := range weighted {
		cum += int64(w.weight)
		if pick < cum {
			return w.river, true
		}
	}

	return weighted[len(weighted)-1].river, true
}

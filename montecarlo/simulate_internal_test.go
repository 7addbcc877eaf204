package montecarlo

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/turtle-bazon/icfpc-2017/boardmap"
)

// TestPickWeightedZeroTotalIsNoMove guards against the degenerate case where
// every candidate's quantized weight rounds down to zero: rng.Int63n would
// panic on a zero bound, so this must report ok=false instead.
func TestPickWeightedZeroTotalIsNoMove(t *testing.T) {
	rng := rand.New(rand.NewSource(1))

	weighted := []weightedRiver{
		{river: boardmap.NewRiver(0, 1), weight: 0},
		{river: boardmap.NewRiver(1, 2), weight: 0},
	}

	_, ok := pickWeighted(weighted, rng)
	assert.False(t, ok)

	_, ok = pickWeighted(nil, rng)
	assert.False(t, ok)
}

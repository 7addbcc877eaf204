package boardmap_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/turtle-bazon/icfpc-2017/boardmap"
)

func TestRiverCanonicalization(t *testing.T) {
	a := boardmap.NewRiver(3, 7)
	b := boardmap.NewRiver(7, 3)

	assert.Equal(t, a, b)
	assert.Equal(t, boardmap.SiteId(3), a.Source)
	assert.Equal(t, boardmap.SiteId(7), a.Target)

	// Equal Rivers must also be equal map keys — Go structs with
	// comparable fields hash identically, so this is really asserting
	// River carries no hidden non-comparable state.
	set := map[boardmap.River]bool{a: true}
	assert.True(t, set[b])
}

func TestOwnerMaskHasAndCount(t *testing.T) {
	claimed := boardmap.NewClaimedRivers()
	river := boardmap.NewRiver(1, 2)

	claimed.Claim(river, 0)
	assert.True(t, claimed.OwnedBy(river, 0))
	assert.False(t, claimed.OwnedBy(river, 1))
	assert.Equal(t, 1, claimed.Owner(river).Count())

	claimed.AddOption(river, 1)
	assert.True(t, claimed.OwnedBy(river, 0))
	assert.True(t, claimed.OwnedBy(river, 1))
	assert.Equal(t, 2, claimed.Owner(river).Count())
}

func TestClaimedRiversApplyEveryMoveKind(t *testing.T) {
	claimed := boardmap.NewClaimedRivers()

	claimed.Apply(boardmap.Claim(0, 1, 2))
	assert.True(t, claimed.IsClaimed(boardmap.NewRiver(1, 2)))

	claimed.Apply(boardmap.Pass(1))
	assert.Equal(t, 1, len(claimed))

	claimed.Apply(boardmap.Splurge(1, []boardmap.SiteId{2, 3, 4}))
	assert.True(t, claimed.OwnedBy(boardmap.NewRiver(2, 3), 1))
	assert.True(t, claimed.OwnedBy(boardmap.NewRiver(3, 4), 1))

	claimed.Apply(boardmap.Claim(0, 5, 6))
	claimed.Apply(boardmap.OptionMove(1, 5, 6))
	assert.Equal(t, 2, claimed.Owner(boardmap.NewRiver(5, 6)).Count())
}

func TestSoleEnemyOwner(t *testing.T) {
	claimed := boardmap.NewClaimedRivers()
	river := boardmap.NewRiver(0, 1)

	_, ok := claimed.SoleEnemyOwner(river, 0)
	assert.False(t, ok, "unclaimed river is not option-eligible")

	claimed.Claim(river, 2)
	owner, ok := claimed.SoleEnemyOwner(river, 0)
	assert.True(t, ok)
	assert.Equal(t, boardmap.PunterId(2), owner)

	_, ok = claimed.SoleEnemyOwner(river, 2)
	assert.False(t, ok, "my own river is not option-eligible for me")

	claimed.AddOption(river, 0)
	_, ok = claimed.SoleEnemyOwner(river, 1)
	assert.False(t, ok, "a river already co-owned by two punters is no longer option-eligible")
}

func TestMoveSegmentsOnlyForSplurge(t *testing.T) {
	route := []boardmap.SiteId{1, 2, 3, 4}
	segs := boardmap.Splurge(0, route).Segments()
	assert.Equal(t, []boardmap.River{
		boardmap.NewRiver(1, 2),
		boardmap.NewRiver(2, 3),
		boardmap.NewRiver(3, 4),
	}, segs)

	assert.Nil(t, boardmap.Claim(0, 1, 2).Segments())
	assert.Nil(t, boardmap.Pass(0).Segments())
}

func TestMapIsMineAndMineList(t *testing.T) {
	m := boardmap.Map{
		Sites: []boardmap.SiteId{0, 1, 2, 3},
		Mines: map[boardmap.SiteId]struct{}{1: {}, 3: {}},
	}

	assert.True(t, m.IsMine(1))
	assert.False(t, m.IsMine(0))
	assert.Equal(t, []boardmap.SiteId{1, 3}, m.MineList())
}

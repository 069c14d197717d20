package levelup

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/KirkDiggler/dnd-levelup/internal/domain/character"
	"github.com/KirkDiggler/dnd-levelup/internal/domain/shared"
)

func TestRescaleResources_UpdatesMatchingSlot(t *testing.T) {
	svc := newTestService(nil)
	existing := []character.ResourceSlot{
		{Key: "res1", Name: "rage", Current: 1, Max: 2},
		{Key: "res2"},
		{Key: "res3"},
	}

	slots, status := svc.rescaleResources("barbarian", 3, nil, existing)

	assert.Equal(t, 1, status.ExpectedCount)
	assert.Equal(t, 1, status.UpdatedCount)
	assert.False(t, status.NeedsManualReview)

	// Matching is case-insensitive and replenishes the pool
	assert.Equal(t, "rage", slots[0].Name)
	assert.Equal(t, 3, slots[0].Max)
	assert.Equal(t, 3, slots[0].Current)

	// The input slice is untouched
	assert.Equal(t, 2, existing[0].Max)
	assert.Equal(t, 1, existing[0].Current)
}

func TestRescaleResources_FillsEmptySlots(t *testing.T) {
	svc := newTestService(nil)
	existing := []character.ResourceSlot{
		{Key: "res1", Name: "Second Wind", Current: 0, Max: 1},
		{Key: "res2"},
		{Key: "res3"},
	}

	slots, status := svc.rescaleResources("fighter", 9, nil, existing)

	// Second Wind, Action Surge, Indomitable at level 9
	assert.Equal(t, 3, status.ExpectedCount)
	assert.Equal(t, 3, status.UpdatedCount)
	assert.False(t, status.NeedsManualReview)

	assert.Equal(t, "Second Wind", slots[0].Name)
	assert.Equal(t, 1, slots[0].Current, "leveling restores spent uses")
	assert.Equal(t, "Action Surge", slots[1].Name)
	assert.Equal(t, "Indomitable", slots[2].Name)
	assert.Equal(t, 1, slots[2].Max)
}

func TestRescaleResources_FullSlotsNeedReview(t *testing.T) {
	svc := newTestService(nil)
	existing := []character.ResourceSlot{
		{Key: "res1", Name: "Bardic Inspiration", Current: 2, Max: 3},
		{Key: "res2", Name: "Luck Points", Current: 3, Max: 3},
	}

	slots, status := svc.rescaleResources("barbarian", 4, nil, existing)

	assert.True(t, status.NeedsManualReview, "no slot left for Rage")
	assert.Zero(t, status.UpdatedCount)

	// Occupied slots are never overwritten
	assert.Equal(t, "Bardic Inspiration", slots[0].Name)
	assert.Equal(t, "Luck Points", slots[1].Name)
	assert.Equal(t, 2, slots[0].Current)
}

func TestRescaleResources_AbilityScaledPool(t *testing.T) {
	svc := newTestService(nil)
	scores := map[shared.Attribute]int{shared.AttributeCharisma: 16}
	existing := []character.ResourceSlot{{Key: "res1"}}

	slots, status := svc.rescaleResources("bard", 2, scores, existing)

	require.Equal(t, 1, status.UpdatedCount)
	assert.Equal(t, "Bardic Inspiration", slots[0].Name)
	assert.Equal(t, 3, slots[0].Max, "uses equal the Charisma modifier")
}

func TestRescaleResources_NoPoolsForClass(t *testing.T) {
	svc := newTestService(nil)
	existing := []character.ResourceSlot{{Key: "res1"}}

	slots, status := svc.rescaleResources("wizard", 5, nil, existing)

	assert.Zero(t, status.ExpectedCount)
	assert.Zero(t, status.UpdatedCount)
	assert.False(t, status.NeedsManualReview)
	assert.Equal(t, existing, slots)
}

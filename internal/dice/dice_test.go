package dice

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRoll(t *testing.T) {
	result, err := Roll(3, 6, 2)
	require.NoError(t, err)

	assert.Equal(t, 3, result.Count)
	assert.Equal(t, 6, result.Sides)
	assert.Equal(t, 2, result.Bonus)
	require.Len(t, result.Rolls, 3)

	sum := 0
	for _, roll := range result.Rolls {
		assert.GreaterOrEqual(t, roll, 1)
		assert.LessOrEqual(t, roll, 6)
		sum += roll
	}
	assert.Equal(t, sum+2, result.Total)
}

func TestRoll_InvalidInput(t *testing.T) {
	_, err := Roll(0, 6, 0)
	assert.Error(t, err)

	_, err = Roll(1, 0, 0)
	assert.Error(t, err)
}

func TestRandomRoller(t *testing.T) {
	roller := NewRandomRoller()

	result, err := roller.Roll(1, 20, 0)
	require.NoError(t, err)
	assert.GreaterOrEqual(t, result.Total, 1)
	assert.LessOrEqual(t, result.Total, 20)
}

func TestMockRoller(t *testing.T) {
	roller := NewMockRoller()
	roller.SetRolls([]int{4, 6})

	result, err := roller.Roll(2, 6, 1)
	require.NoError(t, err)
	assert.Equal(t, 11, result.Total)
	assert.Equal(t, []int{4, 6}, result.Rolls)
}

func TestMockRoller_Exhausted(t *testing.T) {
	roller := NewMockRoller()
	roller.SetNextRoll(5)

	_, err := roller.Roll(1, 6, 0)
	require.NoError(t, err)

	_, err = roller.Roll(1, 6, 0)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "no more predetermined rolls")
}

func TestMockRoller_Reset(t *testing.T) {
	roller := NewMockRoller()
	roller.SetRolls([]int{3})

	_, err := roller.Roll(1, 6, 0)
	require.NoError(t, err)

	roller.Reset()
	roller.SetNextRoll(6)

	result, err := roller.Roll(1, 6, 0)
	require.NoError(t, err)
	assert.Equal(t, 6, result.Total)
}

func TestMockRoller_InvalidCount(t *testing.T) {
	roller := NewMockRoller()

	_, err := roller.Roll(0, 6, 0)
	assert.Error(t, err)
}

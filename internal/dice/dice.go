package dice

import (
	"errors"
	"math/rand"
)

// RollResult holds the outcome of a dice roll
type RollResult struct {
	Total int   `json:"total"`
	Rolls []int `json:"rolls"`
	Bonus int   `json:"bonus"`
	Count int   `json:"count"`
	Sides int   `json:"sides"`
}

// Roll rolls count dice with the given number of sides and adds a bonus
func Roll(count, sides, bonus int) (*RollResult, error) {
	if count < 1 {
		return nil, errors.New("invalid dice count")
	}

	if sides < 1 {
		return nil, errors.New("invalid dice size")
	}

	total := 0
	rolls := make([]int, count)
	for i := 0; i < count; i++ {
		roll := rand.Intn(sides) + 1
		rolls[i] = roll
		total += roll
	}

	return &RollResult{
		Total: total + bonus,
		Rolls: rolls,
		Bonus: bonus,
		Count: count,
		Sides: sides,
	}, nil
}

package character

import (
	"fmt"

	"github.com/KirkDiggler/dnd-levelup/internal/domain/shared"
)

// AbilityScore pairs a raw score with its derived modifier
type AbilityScore struct {
	Score int `json:"score"`
	Bonus int `json:"bonus"`
}

// NewAbilityScore creates an AbilityScore with the modifier derived from the score
func NewAbilityScore(score int) *AbilityScore {
	return &AbilityScore{
		Score: score,
		Bonus: shared.Modifier(score),
	}
}

// AddBonus raises the score and recalculates the modifier
func (a *AbilityScore) AddBonus(bonus int) *AbilityScore {
	a.Score += bonus
	a.Bonus = shared.Modifier(a.Score)
	return a
}

func (a *AbilityScore) String() string {
	return fmt.Sprintf("%d (%+d)", a.Score, a.Bonus)
}

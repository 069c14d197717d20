package testutils

import (
	"github.com/KirkDiggler/dnd-levelup/internal/domain/character"
	"github.com/KirkDiggler/dnd-levelup/internal/domain/shared"
)

// CreateTestCharacter creates a fully formed single-class character
func CreateTestCharacter(id, ownerID, name string) *character.Character {
	char := &character.Character{
		ID:      id,
		OwnerID: ownerID,
		Name:    name,
		Race:    "human",
		Level:   3,
		Classes: []character.ClassLevel{
			{Class: "fighter", Subclass: "champion", Level: 3, SubclassLevel: 3},
		},
		Attributes: map[shared.Attribute]*character.AbilityScore{
			shared.AttributeStrength:     character.NewAbilityScore(16),
			shared.AttributeDexterity:    character.NewAbilityScore(12),
			shared.AttributeConstitution: character.NewAbilityScore(14),
			shared.AttributeIntelligence: character.NewAbilityScore(10),
			shared.AttributeWisdom:       character.NewAbilityScore(10),
			shared.AttributeCharisma:     character.NewAbilityScore(8),
		},
		MaxHP:     28,
		CurrentHP: 28,
		HitDice:   character.HitDice{Size: 10, Total: 3, Remaining: 3},
	}
	char.EnsureResourceSlots()
	return char
}

// CreateTestWizard creates a leveled wizard with a spellbook and slots
func CreateTestWizard(id, ownerID, name string) *character.Character {
	char := &character.Character{
		ID:      id,
		OwnerID: ownerID,
		Name:    name,
		Race:    "high-elf",
		Level:   4,
		Classes: []character.ClassLevel{
			{Class: "wizard", Subclass: "evocation", Level: 4, SubclassLevel: 2},
		},
		Attributes: map[shared.Attribute]*character.AbilityScore{
			shared.AttributeStrength:     character.NewAbilityScore(8),
			shared.AttributeDexterity:    character.NewAbilityScore(14),
			shared.AttributeConstitution: character.NewAbilityScore(14),
			shared.AttributeIntelligence: character.NewAbilityScore(16),
			shared.AttributeWisdom:       character.NewAbilityScore(12),
			shared.AttributeCharisma:     character.NewAbilityScore(10),
		},
		MaxHP:     22,
		CurrentHP: 22,
		HitDice:   character.HitDice{Size: 6, Total: 4, Remaining: 4},
		Spells: []character.KnownSpell{
			{Name: "Fire Bolt", Level: 0, School: "Evocation"},
			{Name: "Magic Missile", Level: 1, School: "Evocation"},
			{Name: "Shield", Level: 1, School: "Abjuration"},
			{Name: "Misty Step", Level: 2, School: "Conjuration"},
		},
		SpellSlots: map[int]character.SlotInfo{
			1: {Max: 4},
			2: {Max: 3},
		},
	}
	char.EnsureResourceSlots()
	return char
}

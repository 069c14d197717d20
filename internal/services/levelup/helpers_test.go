package levelup

import (
	"time"

	"github.com/KirkDiggler/dnd-levelup/internal/dice"
	"github.com/KirkDiggler/dnd-levelup/internal/domain/character"
	"github.com/KirkDiggler/dnd-levelup/internal/domain/rulebook"
	"github.com/KirkDiggler/dnd-levelup/internal/domain/shared"
)

// newTestService wires the engine against the embedded rules tables
func newTestService(roller dice.Roller) *service {
	return NewService(&ServiceConfig{
		Provider: rulebook.NewStaticProvider(),
		Catalog:  rulebook.NewStaticCatalog(),
		Roller:   roller,
	}).(*service)
}

func testScores(str, dex, con, intl, wis, cha int) map[shared.Attribute]*character.AbilityScore {
	return map[shared.Attribute]*character.AbilityScore{
		shared.AttributeStrength:     character.NewAbilityScore(str),
		shared.AttributeDexterity:    character.NewAbilityScore(dex),
		shared.AttributeConstitution: character.NewAbilityScore(con),
		shared.AttributeIntelligence: character.NewAbilityScore(intl),
		shared.AttributeWisdom:       character.NewAbilityScore(wis),
		shared.AttributeCharisma:     character.NewAbilityScore(cha),
	}
}

// testCharacter builds a minimal valid single-class character
func testCharacter(class string, level int) *character.Character {
	char := &character.Character{
		ID:         "char-test-1",
		OwnerID:    "user-test-1",
		Name:       "Tester",
		Race:       "human",
		Level:      level,
		Classes:    []character.ClassLevel{{Class: class, Level: level}},
		Attributes: testScores(10, 10, 14, 10, 10, 10),
		MaxHP:      10 + 5*(level-1),
		CurrentHP:  10 + 5*(level-1),
		HitDice:    character.HitDice{Size: 8, Total: level, Remaining: level},
		CreatedAt:  time.Now(),
		UpdatedAt:  time.Now(),
	}
	char.EnsureResourceSlots()
	return char
}

// testWizard is a level-4 evocation wizard with a small spellbook
func testWizard() *character.Character {
	char := testCharacter("wizard", 4)
	char.Classes[0].Subclass = "evocation"
	char.Classes[0].SubclassLevel = 2
	char.Attributes = testScores(8, 14, 14, 16, 12, 10)
	char.HitDice.Size = 6
	char.Spells = []character.KnownSpell{
		{Name: "Fire Bolt", Level: 0, School: "Evocation"},
		{Name: "Magic Missile", Level: 1, School: "Evocation"},
		{Name: "Shield", Level: 1, School: "Abjuration"},
		{Name: "Misty Step", Level: 2, School: "Conjuration"},
	}
	char.SpellSlots = map[int]character.SlotInfo{
		1: {Max: 4, Used: 2},
		2: {Max: 3, Used: 1},
	}
	return char
}

// testSorcerer is a level-5 draconic sorcerer knowing six leveled spells,
// the full table count for its level
func testSorcerer() *character.Character {
	char := testCharacter("sorcerer", 5)
	char.Classes[0].Subclass = "draconic"
	char.Classes[0].SubclassLevel = 1
	char.Attributes = testScores(8, 14, 14, 10, 12, 16)
	char.HitDice.Size = 6
	char.Spells = []character.KnownSpell{
		{Name: "Fire Bolt", Level: 0, School: "Evocation"},
		{Name: "Magic Missile", Level: 1, School: "Evocation"},
		{Name: "Shield", Level: 1, School: "Abjuration"},
		{Name: "Burning Hands", Level: 1, School: "Evocation"},
		{Name: "Misty Step", Level: 2, School: "Conjuration"},
		{Name: "Scorching Ray", Level: 2, School: "Evocation"},
		{Name: "Counterspell", Level: 3, School: "Abjuration"},
	}
	char.SpellSlots = map[int]character.SlotInfo{
		1: {Max: 4},
		2: {Max: 3},
		3: {Max: 2},
	}
	char.Resources[0] = character.ResourceSlot{Key: "res1", Name: "Sorcery Points", Current: 3, Max: 5}
	return char
}

func testSorcererExtraSpell(name string, level int) character.KnownSpell {
	return character.KnownSpell{Name: name, Level: level}
}

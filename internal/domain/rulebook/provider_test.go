package rulebook

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/KirkDiggler/dnd-levelup/internal/domain/shared"
	dnderr "github.com/KirkDiggler/dnd-levelup/internal/errors"
)

func TestClassData(t *testing.T) {
	p := NewStaticProvider()

	data, err := p.ClassData("wizard")
	require.NoError(t, err)
	assert.Equal(t, "wizard", data.Key)
	assert.Equal(t, 6, data.HitDie)
	assert.Equal(t, CasterFull, data.Caster)
	assert.Equal(t, LearningSpellbook, data.Learning)

	// keys are normalized before lookup
	data, err = p.ClassData(" Fighter ")
	require.NoError(t, err)
	assert.Equal(t, "fighter", data.Key)
	assert.Equal(t, 10, data.HitDie)

	_, err = p.ClassData("bloodhunter")
	require.Error(t, err)
	assert.True(t, dnderr.IsNotFound(err))
}

func TestProficiencyBonus(t *testing.T) {
	p := NewStaticProvider()

	tests := []struct {
		level int
		want  int
	}{
		{1, 2},
		{4, 2},
		{5, 3},
		{8, 3},
		{9, 4},
		{13, 5},
		{17, 6},
		{20, 6},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, p.ProficiencyBonus(tt.level), "level %d", tt.level)
	}
}

func TestHasASI(t *testing.T) {
	p := NewStaticProvider()

	// fighter has extra ASI levels beyond the default five
	assert.True(t, p.HasASI("fighter", 4))
	assert.True(t, p.HasASI("fighter", 6))
	assert.True(t, p.HasASI("fighter", 14))

	assert.True(t, p.HasASI("wizard", 4))
	assert.False(t, p.HasASI("wizard", 6))
	assert.False(t, p.HasASI("wizard", 5))

	assert.False(t, p.HasASI("bloodhunter", 4))
}

func TestFeaturesAt(t *testing.T) {
	p := NewStaticProvider()

	assert.Equal(t, []string{"Extra Attack"}, p.FeaturesAt("fighter", 5))
	assert.Contains(t, p.FeaturesAt("barbarian", 1), "Rage")
	assert.Empty(t, p.FeaturesAt("fighter", 4))
	assert.Empty(t, p.FeaturesAt("bloodhunter", 1))
}

func TestSubclassSelectionRequired(t *testing.T) {
	p := NewStaticProvider()

	assert.True(t, p.SubclassSelectionRequired("fighter", 3, false))
	assert.False(t, p.SubclassSelectionRequired("fighter", 2, false))
	assert.False(t, p.SubclassSelectionRequired("fighter", 3, true))

	// a missed pick stays outstanding at later levels
	assert.True(t, p.SubclassSelectionRequired("fighter", 7, false))

	// clerics pick their domain at level 1
	assert.True(t, p.SubclassSelectionRequired("cleric", 1, false))
}

func TestSubclassOptions(t *testing.T) {
	p := NewStaticProvider()

	options, err := p.SubclassOptions("fighter")
	require.NoError(t, err)
	names := make([]string, 0, len(options))
	for _, opt := range options {
		names = append(names, opt.Name)
	}
	assert.Contains(t, names, "Champion")

	_, err = p.SubclassOptions("bloodhunter")
	require.Error(t, err)
	assert.True(t, dnderr.IsNotFound(err))
}

func TestSubclassFeaturesAt(t *testing.T) {
	p := NewStaticProvider()

	// lookup works by key or display name
	assert.NotEmpty(t, p.SubclassFeaturesAt("fighter", "champion", 3))
	assert.NotEmpty(t, p.SubclassFeaturesAt("fighter", "Champion", 3))
	assert.Empty(t, p.SubclassFeaturesAt("fighter", "samurai", 3))
}

func TestSpellSlotsAt(t *testing.T) {
	p := NewStaticProvider()

	slots, ok := p.SpellSlotsAt("wizard", 5)
	require.True(t, ok)
	assert.Equal(t, [9]int{4, 3, 2, 0, 0, 0, 0, 0, 0}, slots)

	// half casters lag behind the full table
	slots, ok = p.SpellSlotsAt("paladin", 4)
	require.True(t, ok)
	assert.Equal(t, [9]int{3, 0, 0, 0, 0, 0, 0, 0, 0}, slots)

	_, ok = p.SpellSlotsAt("fighter", 5)
	assert.False(t, ok)

	// warlocks use pact magic, not the standard table
	_, ok = p.SpellSlotsAt("warlock", 5)
	assert.False(t, ok)
}

func TestPactSlotsAt(t *testing.T) {
	p := NewStaticProvider()

	slots, ok := p.PactSlotsAt("warlock", 3)
	require.True(t, ok)
	assert.Equal(t, 2, slots.Level)
	assert.Equal(t, 2, slots.Slots)

	_, ok = p.PactSlotsAt("wizard", 3)
	assert.False(t, ok)
}

func TestSpellsKnownAt(t *testing.T) {
	p := NewStaticProvider()

	count, ok := p.SpellsKnownAt("sorcerer", 6)
	require.True(t, ok)
	assert.Equal(t, 7, count)

	// spellbook casters have no spells-known table
	_, ok = p.SpellsKnownAt("wizard", 6)
	assert.False(t, ok)
}

func TestMulticlassPrerequisites(t *testing.T) {
	p := NewStaticProvider()

	scores := map[shared.Attribute]int{
		shared.AttributeStrength:  15,
		shared.AttributeDexterity: 8,
		shared.AttributeCharisma:  10,
	}

	result, err := p.MulticlassPrerequisites("barbarian", scores)
	require.NoError(t, err)
	assert.True(t, result.MeetsRequirements)

	// paladin needs both Strength and Charisma
	result, err = p.MulticlassPrerequisites("paladin", scores)
	require.NoError(t, err)
	assert.False(t, result.MeetsRequirements)
	assert.Equal(t, []string{"Charisma 13"}, result.Missing)

	// fighter takes either Strength or Dexterity
	result, err = p.MulticlassPrerequisites("fighter", map[shared.Attribute]int{
		shared.AttributeStrength:  10,
		shared.AttributeDexterity: 10,
	})
	require.NoError(t, err)
	assert.False(t, result.MeetsRequirements)
	assert.Equal(t, []string{"Strength 13 or Dexterity 13"}, result.Missing)

	_, err = p.MulticlassPrerequisites("bloodhunter", scores)
	require.Error(t, err)
	assert.True(t, dnderr.IsNotFound(err))
}

func TestClassResources(t *testing.T) {
	p := NewStaticProvider()

	resources := p.ClassResources("fighter", 9, nil)
	require.Len(t, resources, 3)
	assert.Equal(t, "Second Wind", resources[0].Name)
	assert.Equal(t, "Action Surge", resources[1].Name)
	assert.Equal(t, "Indomitable", resources[2].Name)

	resources = p.ClassResources("barbarian", 6, nil)
	require.Len(t, resources, 1)
	assert.Equal(t, 4, resources[0].Max)

	// bardic inspiration scales off Charisma, floor 1
	resources = p.ClassResources("bard", 5, map[shared.Attribute]int{
		shared.AttributeCharisma: 8,
	})
	require.Len(t, resources, 1)
	assert.Equal(t, 1, resources[0].Max)

	assert.Empty(t, p.ClassResources("wizard", 5, nil))
}

func TestRacialFeature(t *testing.T) {
	p := NewStaticProvider()

	feature := p.RacialFeature("tiefling", "", 3)
	require.NotNil(t, feature)
	assert.Equal(t, "Infernal Legacy", feature.Name)
	assert.Empty(t, feature.Options)

	feature = p.RacialFeature("aasimar", "", 3)
	require.NotNil(t, feature)
	assert.Equal(t, "Celestial Revelation", feature.Name)
	assert.Len(t, feature.Options, 3)

	assert.Nil(t, p.RacialFeature("human", "", 3))
	assert.Nil(t, p.RacialFeature("tiefling", "", 4))
}

func TestRacialFeature_SubraceFirst(t *testing.T) {
	p := NewStaticProvider()

	// drow grants resolve through the subrace key
	feature := p.RacialFeature("elf", "drow", 3)
	require.NotNil(t, feature)
	assert.Equal(t, "Drow Magic", feature.Name)
}

func TestRacialSpellsAtLevel(t *testing.T) {
	p := NewStaticProvider()

	spells := p.RacialSpellsAtLevel("tiefling", "", 3)
	require.Len(t, spells, 1)
	assert.Equal(t, "Hellish Rebuke", spells[0].Spell)

	assert.Empty(t, p.RacialSpellsAtLevel("human", "", 3))
}

func TestAllFeats(t *testing.T) {
	p := NewStaticProvider()

	names := p.AllFeats()
	assert.Contains(t, names, "Lucky")
	assert.Contains(t, names, "Great Weapon Master")
	assert.IsIncreasing(t, names)
}

func TestFeatData(t *testing.T) {
	p := NewStaticProvider()

	feat, err := p.FeatData("lucky")
	require.NoError(t, err)
	assert.Equal(t, "Lucky", feat.Name)
	assert.Empty(t, feat.AbilityIncrease)

	// display-name lookup
	feat, err = p.FeatData("Great Weapon Master")
	require.NoError(t, err)
	assert.Equal(t, "great-weapon-master", feat.Key)

	feat, err = p.FeatData("resilient")
	require.NoError(t, err)
	assert.Equal(t, []shared.Attribute{shared.AttributeConstitution}, feat.AbilityIncrease)

	_, err = p.FeatData("mage-slayer")
	require.Error(t, err)
	assert.True(t, dnderr.IsNotFound(err))
}

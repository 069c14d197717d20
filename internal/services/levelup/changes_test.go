package levelup

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/KirkDiggler/dnd-levelup/internal/dice"
	"github.com/KirkDiggler/dnd-levelup/internal/domain/rulebook"
	mockrulebook "github.com/KirkDiggler/dnd-levelup/internal/domain/rulebook/mock"
	dnderr "github.com/KirkDiggler/dnd-levelup/internal/errors"
)

func TestComputeChanges_WizardFourToFive(t *testing.T) {
	svc := newTestService(nil)
	char := testWizard()

	changes, err := svc.ComputeChanges("wizard", 4, 5, char)
	require.NoError(t, err)

	assert.Equal(t, "wizard", changes.Class)
	assert.Equal(t, 5, changes.Level)
	assert.Equal(t, 6, changes.HitDie)
	assert.False(t, changes.HasASI, "wizard 5 is not an ASI level")
	assert.False(t, changes.SubclassRequired, "subclass already chosen at level 2")
	assert.Equal(t, 3, changes.ProficiencyBonus)

	require.NotNil(t, changes.SpellSlots)
	assert.Equal(t, [9]int{4, 3, 2, 0, 0, 0, 0, 0, 0}, *changes.SpellSlots)
	assert.Nil(t, changes.PactSlots, "slot caster never carries pact slots")

	require.NotNil(t, changes.SpellRules)
	assert.Equal(t, 2, changes.SpellRules.NewSpells, "spellbook grows by two per level")
	assert.Equal(t, 3, changes.SpellRules.MaxSpellLevel)
	assert.False(t, changes.SpellRules.IsPreparedCaster)
	assert.False(t, changes.SpellRules.CanSwap)
}

func TestComputeChanges_Deterministic(t *testing.T) {
	svc := newTestService(nil)
	char := testWizard()

	first, err := svc.ComputeChanges("wizard", 4, 5, char)
	require.NoError(t, err)
	second, err := svc.ComputeChanges("wizard", 4, 5, char)
	require.NoError(t, err)

	assert.Equal(t, first, second)
}

func TestComputeChanges_FighterASILevel(t *testing.T) {
	svc := newTestService(nil)
	char := testCharacter("fighter", 3)
	char.Classes[0].Subclass = "champion"
	char.Classes[0].SubclassLevel = 3

	changes, err := svc.ComputeChanges("fighter", 3, 4, char)
	require.NoError(t, err)

	assert.True(t, changes.HasASI)
	assert.Nil(t, changes.SpellSlots)
	assert.Nil(t, changes.SpellRules)
	assert.Equal(t, 10, changes.HitDie)
}

func TestComputeChanges_SubclassUnlock(t *testing.T) {
	svc := newTestService(nil)
	char := testCharacter("fighter", 2)

	changes, err := svc.ComputeChanges("fighter", 2, 3, char)
	require.NoError(t, err)

	assert.True(t, changes.SubclassRequired)
	assert.Contains(t, changes.Features, "Martial Archetype")
}

func TestComputeChanges_WarlockPactSlots(t *testing.T) {
	svc := newTestService(nil)
	char := testCharacter("warlock", 2)
	char.Attributes = testScores(8, 12, 14, 10, 10, 16)
	char.Classes[0].Subclass = "fiend"
	char.Classes[0].SubclassLevel = 1

	changes, err := svc.ComputeChanges("warlock", 2, 3, char)
	require.NoError(t, err)

	assert.Nil(t, changes.SpellSlots)
	require.NotNil(t, changes.PactSlots)
	assert.Equal(t, 2, changes.PactSlots.Level)
	assert.Equal(t, 2, changes.PactSlots.Slots)

	require.NotNil(t, changes.SpellRules)
	assert.Equal(t, 2, changes.SpellRules.MaxSpellLevel)
	assert.True(t, changes.SpellRules.CanSwap)
}

func TestComputeChanges_KnownCasterCountsExistingSpells(t *testing.T) {
	svc := newTestService(nil)
	char := testSorcerer()

	// The fixture already knows the full six leveled sorcerer spells for
	// level 5; the table says seven at level 6, leaving exactly one pick.
	changes, err := svc.ComputeChanges("sorcerer", 5, 6, char)
	require.NoError(t, err)

	require.NotNil(t, changes.SpellRules)
	assert.Equal(t, 1, changes.SpellRules.NewSpells)
	assert.True(t, changes.SpellRules.CanSwap)
	assert.Equal(t, 3, changes.SpellRules.MaxSpellLevel)
}

func TestComputeChanges_KnownCasterNeverNegative(t *testing.T) {
	svc := newTestService(nil)
	char := testSorcerer()

	// An over-full spell list clamps the new pick count at zero rather
	// than going negative.
	char.Spells = append(char.Spells,
		testSorcererExtraSpell("Fireball", 3),
		testSorcererExtraSpell("Haste", 3),
		testSorcererExtraSpell("Fly", 3),
	)

	changes, err := svc.ComputeChanges("sorcerer", 5, 6, char)
	require.NoError(t, err)

	require.NotNil(t, changes.SpellRules)
	assert.Equal(t, 0, changes.SpellRules.NewSpells)
}

func TestComputeChanges_PreparedCasterNoPickCount(t *testing.T) {
	svc := newTestService(nil)
	char := testCharacter("cleric", 3)
	char.Classes[0].Subclass = "life"
	char.Classes[0].SubclassLevel = 1
	char.Attributes = testScores(12, 10, 14, 10, 16, 10)

	changes, err := svc.ComputeChanges("cleric", 3, 4, char)
	require.NoError(t, err)

	require.NotNil(t, changes.SpellRules)
	assert.True(t, changes.SpellRules.IsPreparedCaster)
	assert.Equal(t, 0, changes.SpellRules.NewSpells, "prepared casters pick from the full list, not a count")
	assert.Equal(t, 2, changes.SpellRules.MaxSpellLevel)
}

func TestComputeChanges_RacialFeatureOffTotalLevel(t *testing.T) {
	svc := newTestService(nil)
	char := testCharacter("barbarian", 2)
	char.Race = "aasimar"

	changes, err := svc.ComputeChanges("barbarian", 2, 3, char)
	require.NoError(t, err)

	require.NotNil(t, changes.RacialFeature)
	assert.Equal(t, "Celestial Revelation", changes.RacialFeature.Name)
	assert.Len(t, changes.RacialFeature.Options, 3)
}

func TestComputeChanges_UnknownClass(t *testing.T) {
	svc := newTestService(nil)
	char := testCharacter("fighter", 3)

	_, err := svc.ComputeChanges("bloodhunter", 3, 4, char)
	require.Error(t, err)
	assert.True(t, dnderr.IsNotFound(err))
}

func TestComputeChanges_HomebrewProviderTables(t *testing.T) {
	ctrl := gomock.NewController(t)
	provider := mockrulebook.NewMockProvider(ctrl)

	provider.EXPECT().ClassData("witcher").Return(&rulebook.ClassData{
		Key:      "witcher",
		Name:     "Witcher",
		HitDie:   10,
		Learning: rulebook.LearningNone,
	}, nil).Times(2)
	provider.EXPECT().HasASI("witcher", 4).Return(false)
	provider.EXPECT().FeaturesAt("witcher", 4).Return([]string{"Signs"})
	provider.EXPECT().ProficiencyBonus(4).Return(2)
	provider.EXPECT().SubclassSelectionRequired("witcher", 4, false).Return(false)
	provider.EXPECT().SpellSlotsAt("witcher", 4).Return([9]int{}, false)
	provider.EXPECT().PactSlotsAt("witcher", 4).Return(rulebook.PactSlots{}, false)
	provider.EXPECT().RacialFeature("human", "", 4).Return(nil)

	svc := NewService(&ServiceConfig{
		Provider: provider,
		Catalog:  rulebook.NewStaticCatalog(),
		Roller:   dice.NewMockRoller(),
	})

	char := testCharacter("fighter", 3)
	changes, err := svc.ComputeChanges("witcher", 3, 4, char)
	require.NoError(t, err)

	assert.Equal(t, "witcher", changes.Class)
	assert.Equal(t, 10, changes.HitDie)
	assert.Equal(t, []string{"Signs"}, changes.Features)
	assert.Nil(t, changes.SpellSlots)
	assert.Nil(t, changes.PactSlots)
	assert.Nil(t, changes.SpellRules, "a non-caster gains no spell picks")
}

func TestComputeChanges_ProviderFailurePreservesCode(t *testing.T) {
	ctrl := gomock.NewController(t)
	provider := mockrulebook.NewMockProvider(ctrl)

	provider.EXPECT().ClassData("witcher").
		Return(nil, dnderr.Internal("rules table corrupted"))

	svc := NewService(&ServiceConfig{
		Provider: provider,
		Catalog:  rulebook.NewStaticCatalog(),
		Roller:   dice.NewMockRoller(),
	})

	char := testCharacter("fighter", 3)
	_, err := svc.ComputeChanges("witcher", 3, 4, char)
	require.Error(t, err)
	assert.True(t, dnderr.Is(err, dnderr.CodeInternal))
	assert.Contains(t, err.Error(), "cannot level up class 'witcher'")
}

func TestComputeChanges_OneStepOnly(t *testing.T) {
	svc := newTestService(nil)
	char := testCharacter("fighter", 3)

	_, err := svc.ComputeChanges("fighter", 3, 5, char)
	require.Error(t, err)
	assert.True(t, dnderr.IsInvalidArgument(err))
}

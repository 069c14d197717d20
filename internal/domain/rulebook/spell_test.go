package rulebook

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSpell_ForClass(t *testing.T) {
	spell := Spell{
		Name:    "Fireball",
		Level:   3,
		Classes: []string{"sorcerer", "wizard"},
	}

	assert.True(t, spell.ForClass("wizard"))
	assert.True(t, spell.ForClass("Wizard"))
	assert.False(t, spell.ForClass("cleric"))
}

func TestSpell_Matches(t *testing.T) {
	spell := Spell{
		Name:   "Fireball",
		Level:  3,
		School: "Evocation",
		Tags:   []string{"damage", "fire"},
	}

	tests := []struct {
		term string
		want bool
	}{
		{"", true},
		{"fire", true},
		{"FIREBALL", true},
		{"evoc", true},
		{"damage", true},
		{"healing", false},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, spell.Matches(tt.term), "term %q", tt.term)
	}
}

func TestStaticCatalog(t *testing.T) {
	catalog := NewStaticCatalog()

	wizardSpells := catalog.SpellsForClass("wizard")
	require.NotEmpty(t, wizardSpells)
	for _, spell := range wizardSpells {
		assert.True(t, spell.ForClass("wizard"), "%s is not a wizard spell", spell.Name)
	}

	spell := catalog.SpellByName("fireball")
	require.NotNil(t, spell)
	assert.Equal(t, "Fireball", spell.Name)
	assert.Equal(t, 3, spell.Level)

	assert.Nil(t, catalog.SpellByName("Wish Harder"))
}

func TestNewCatalog(t *testing.T) {
	catalog := NewCatalog([]Spell{
		{Name: "Homebrew Bolt", Level: 1, Classes: []string{"wizard"}},
	})

	require.Len(t, catalog.SpellsForClass("wizard"), 1)
	assert.Empty(t, catalog.SpellsForClass("cleric"))
	assert.NotNil(t, catalog.SpellByName("Homebrew Bolt"))
}

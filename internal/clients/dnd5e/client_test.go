package dnd5e

import (
	"testing"

	apiDnd5e "github.com/fadedpez/dnd5e-api/clients/dnd5e"
	apiEntities "github.com/fadedpez/dnd5e-api/entities"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeSpellAPI serves canned spells without touching the network
type fakeSpellAPI struct {
	spells map[string]*apiEntities.Spell
}

func (f *fakeSpellAPI) ListSpells(input *apiDnd5e.ListSpellsInput) ([]*apiEntities.ReferenceItem, error) {
	var refs []*apiEntities.ReferenceItem
	for key, spell := range f.spells {
		for _, class := range spell.SpellClasses {
			if class.Key == input.Class {
				refs = append(refs, &apiEntities.ReferenceItem{Key: key, Name: spell.Name})
			}
		}
	}
	return refs, nil
}

func (f *fakeSpellAPI) GetSpell(key string) (*apiEntities.Spell, error) {
	return f.spells[key], nil
}

func fakeAPI() *fakeSpellAPI {
	wizardOnly := []*apiEntities.ReferenceItem{{Key: "wizard", Name: "Wizard"}}
	return &fakeSpellAPI{
		spells: map[string]*apiEntities.Spell{
			"fireball": {
				Key:           "fireball",
				Name:          "Fireball",
				SpellLevel:    3,
				SpellSchool:   &apiEntities.ReferenceItem{Key: "evocation", Name: "Evocation"},
				SpellClasses:  wizardOnly,
				Concentration: false,
			},
			"magic-missile": {
				Key:          "magic-missile",
				Name:         "Magic Missile",
				SpellLevel:   1,
				SpellSchool:  &apiEntities.ReferenceItem{Key: "evocation", Name: "Evocation"},
				SpellClasses: wizardOnly,
			},
			"haste": {
				Key:           "haste",
				Name:          "Haste",
				SpellLevel:    3,
				SpellSchool:   &apiEntities.ReferenceItem{Key: "transmutation", Name: "Transmutation"},
				SpellClasses:  wizardOnly,
				Concentration: true,
			},
			"polymorph": {
				Key:          "polymorph",
				Name:         "Polymorph",
				SpellLevel:   4,
				SpellSchool:  &apiEntities.ReferenceItem{Key: "transmutation", Name: "Transmutation"},
				SpellClasses: wizardOnly,
			},
		},
	}
}

func TestClient_GetSpell(t *testing.T) {
	c := &client{api: fakeAPI()}

	spell, err := c.GetSpell("fireball")
	require.NoError(t, err)
	assert.Equal(t, "Fireball", spell.Name)
	assert.Equal(t, 3, spell.Level)
	assert.Equal(t, "Evocation", spell.School)
	assert.True(t, spell.ForClass("wizard"))
}

func TestClient_ImportClassSpells(t *testing.T) {
	c := &client{api: fakeAPI()}

	spells, err := c.ImportClassSpells("wizard", 3)
	require.NoError(t, err)
	require.Len(t, spells, 3, "Polymorph sits above the level cutoff")

	// Results come sorted by level then name
	assert.Equal(t, "Magic Missile", spells[0].Name)
	assert.Equal(t, "Fireball", spells[1].Name)
	assert.Equal(t, "Haste", spells[2].Name)
	assert.True(t, spells[2].Concentration)
}

func TestClient_ImportClassSpellsUnbounded(t *testing.T) {
	c := &client{api: fakeAPI()}

	spells, err := c.ImportClassSpells("wizard", -1)
	require.NoError(t, err)
	assert.Len(t, spells, 4)
}

func TestNew_RequiresConfig(t *testing.T) {
	_, err := New(nil)
	require.Error(t, err)
}

// Package rulebook is the read-only rules oracle for the level-up engine:
// class tables, spell-slot progressions, subclass catalogs, multiclass
// prerequisites, class resources, racial grants, and the feat catalog.
package rulebook

import (
	"strings"

	"github.com/KirkDiggler/dnd-levelup/internal/domain/shared"
	dnderr "github.com/KirkDiggler/dnd-levelup/internal/errors"
)

//go:generate mockgen -destination=mock/mock.go -package=mockrulebook -source=provider.go

// Provider exposes the static rules tables as pure, synchronous queries
type Provider interface {
	// ClassData returns the rules facts for a class, NotFound if unsupported
	ClassData(class string) (*ClassData, error)

	// ProficiencyBonus returns the universal proficiency bonus at a level
	ProficiencyBonus(level int) int

	// HasASI reports whether the class grants an ASI/feat choice at the level
	HasASI(class string, level int) bool

	// FeaturesAt lists the class features gained at exactly the level
	FeaturesAt(class string, level int) []string

	// SubclassFeaturesAt lists subclass features gained at exactly the level
	SubclassFeaturesAt(class, subclass string, level int) []string

	// SubclassSelectionRequired reports whether the level-up must pick a subclass
	SubclassSelectionRequired(class string, toLevel int, hasSubclass bool) bool

	// SubclassOptions returns the subclass catalog for a class
	SubclassOptions(class string) ([]SubclassOption, error)

	// SpellSlotsAt returns the 9-slot array for a slot caster; false if the
	// class does not use the standard slot table
	SpellSlotsAt(class string, level int) ([9]int, bool)

	// PactSlotsAt returns the pact-magic slots; false if not a pact caster
	PactSlotsAt(class string, level int) (PactSlots, bool)

	// SpellsKnownAt returns the cumulative known-spell count for known
	// casters; false for classes without a spells-known table
	SpellsKnownAt(class string, level int) (int, bool)

	// MulticlassPrerequisites checks the ability-score gates for entering a class
	MulticlassPrerequisites(class string, scores map[shared.Attribute]int) (*PrereqResult, error)

	// ClassResources lists the limited-use pools a class carries at a level
	ClassResources(class string, level int, scores map[shared.Attribute]int) []ClassResource

	// RacialFeature returns the race feature unlocking at the level, nil if none
	RacialFeature(race, subrace string, level int) *RacialFeature

	// RacialSpellsAtLevel returns racial spells granted at the level
	RacialSpellsAtLevel(race, subrace string, level int) []RacialSpell

	// AllFeats lists every feat name in the catalog
	AllFeats() []string

	// FeatData returns the feat by key or name, NotFound if unknown
	FeatData(name string) (*Feat, error)
}

// StaticProvider implements Provider over the embedded PHB tables
type StaticProvider struct{}

// NewStaticProvider creates a provider backed by the embedded tables
func NewStaticProvider() *StaticProvider {
	return &StaticProvider{}
}

var _ Provider = (*StaticProvider)(nil)

func normalizeKey(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}

// ClassData returns the rules facts for a class
func (p *StaticProvider) ClassData(class string) (*ClassData, error) {
	data, ok := classes[normalizeKey(class)]
	if !ok {
		return nil, dnderr.NotFoundf("unsupported class '%s'", class).
			WithMeta("class", class)
	}
	return data, nil
}

// ProficiencyBonus returns the universal proficiency bonus at a level
func (p *StaticProvider) ProficiencyBonus(level int) int {
	return proficiencyBonusForLevel(level)
}

// HasASI reports whether the class grants an ASI/feat choice at the level
func (p *StaticProvider) HasASI(class string, level int) bool {
	data, ok := classes[normalizeKey(class)]
	if !ok {
		return false
	}
	for _, asiLevel := range data.ASILevels {
		if asiLevel == level {
			return true
		}
	}
	return false
}

// FeaturesAt lists the class features gained at exactly the level
func (p *StaticProvider) FeaturesAt(class string, level int) []string {
	levels, ok := classFeatures[normalizeKey(class)]
	if !ok {
		return nil
	}
	return levels[level]
}

// SubclassFeaturesAt lists subclass features gained at exactly the level
func (p *StaticProvider) SubclassFeaturesAt(class, subclass string, level int) []string {
	for _, option := range subclassOptions[normalizeKey(class)] {
		if strings.EqualFold(option.Key, subclass) || strings.EqualFold(option.Name, subclass) {
			return option.FeaturesByLevel[level]
		}
	}
	return nil
}

// SubclassSelectionRequired reports whether the level-up must pick a subclass
func (p *StaticProvider) SubclassSelectionRequired(class string, toLevel int, hasSubclass bool) bool {
	if hasSubclass {
		return false
	}
	data, ok := classes[normalizeKey(class)]
	if !ok {
		return false
	}
	return toLevel >= data.SubclassLevel
}

// SubclassOptions returns the subclass catalog for a class
func (p *StaticProvider) SubclassOptions(class string) ([]SubclassOption, error) {
	options, ok := subclassOptions[normalizeKey(class)]
	if !ok {
		return nil, dnderr.NotFoundf("no subclass options for class '%s'", class).
			WithMeta("class", class)
	}
	return options, nil
}

// SpellSlotsAt returns the standard 9-slot array for a slot caster
func (p *StaticProvider) SpellSlotsAt(class string, level int) ([9]int, bool) {
	data, ok := classes[normalizeKey(class)]
	if !ok {
		return [9]int{}, false
	}

	switch data.Caster {
	case CasterFull:
		slots, ok := fullCasterSlots[level]
		return slots, ok
	case CasterHalf:
		slots, ok := halfCasterSlots[level]
		return slots, ok
	default:
		return [9]int{}, false
	}
}

// PactSlotsAt returns the pact-magic slots for pact casters
func (p *StaticProvider) PactSlotsAt(class string, level int) (PactSlots, bool) {
	data, ok := classes[normalizeKey(class)]
	if !ok || data.Caster != CasterPact {
		return PactSlots{}, false
	}
	slots, ok := pactMagicSlots[level]
	return slots, ok
}

// SpellsKnownAt returns the cumulative known-spell count for known casters
func (p *StaticProvider) SpellsKnownAt(class string, level int) (int, bool) {
	table, ok := spellsKnown[normalizeKey(class)]
	if !ok {
		return 0, false
	}
	count, ok := table[level]
	return count, ok
}

// MulticlassPrerequisites checks the ability-score gates for entering a class
func (p *StaticProvider) MulticlassPrerequisites(class string, scores map[shared.Attribute]int) (*PrereqResult, error) {
	req, ok := multiclassPrereqs[normalizeKey(class)]
	if !ok {
		return nil, dnderr.NotFoundf("unsupported class '%s'", class).
			WithMeta("class", class)
	}
	return checkMulticlassPrereqs(req, scores), nil
}

// ClassResources lists the limited-use pools a class carries at a level
func (p *StaticProvider) ClassResources(class string, level int, scores map[shared.Attribute]int) []ClassResource {
	return classResourcesAt(normalizeKey(class), level, scores)
}

// RacialFeature returns the race feature unlocking at the level
func (p *StaticProvider) RacialFeature(race, subrace string, level int) *RacialFeature {
	return racialFeatureAt(normalizeKey(race), normalizeKey(subrace), level)
}

// RacialSpellsAtLevel returns racial spells granted at the level
func (p *StaticProvider) RacialSpellsAtLevel(race, subrace string, level int) []RacialSpell {
	return racialSpellsAt(normalizeKey(race), normalizeKey(subrace), level)
}

// AllFeats lists every feat name in the catalog
func (p *StaticProvider) AllFeats() []string {
	return allFeatNames()
}

// FeatData returns the feat by key or name
func (p *StaticProvider) FeatData(name string) (*Feat, error) {
	if feat, ok := feats[normalizeKey(name)]; ok {
		return feat, nil
	}
	for _, feat := range feats {
		if strings.EqualFold(feat.Name, name) {
			return feat, nil
		}
	}
	return nil, dnderr.NotFoundf("unknown feat '%s'", name).WithMeta("feat", name)
}

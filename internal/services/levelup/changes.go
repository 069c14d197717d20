package levelup

import (
	"github.com/KirkDiggler/dnd-levelup/internal/domain/character"
	"github.com/KirkDiggler/dnd-levelup/internal/domain/rulebook"
	"github.com/KirkDiggler/dnd-levelup/internal/domain/shared"
	dnderr "github.com/KirkDiggler/dnd-levelup/internal/errors"
)

// wizardSpellsPerLevel is the spellbook growth rate after 1st level
const wizardSpellsPerLevel = 2

// ComputeChanges derives the ChangeSet for leveling className from fromLevel
// to toLevel. The character is read only; calling twice with identical
// inputs yields identical ChangeSets.
func (s *service) ComputeChanges(className string, fromLevel, toLevel int, char *character.Character) (*ChangeSet, error) {
	if toLevel != fromLevel+1 {
		return nil, dnderr.InvalidArgumentf("can only level one step at a time, got %d -> %d", fromLevel, toLevel)
	}
	if toLevel < 1 || toLevel > character.MaxLevel {
		return nil, dnderr.InvalidArgumentf("target level %d out of range 1..%d", toLevel, character.MaxLevel)
	}

	data, err := s.provider.ClassData(className)
	if err != nil {
		return nil, dnderr.Wrapf(err, "cannot level up class '%s'", className)
	}

	changes := &ChangeSet{
		Class:            data.Key,
		Level:            toLevel,
		HitDie:           data.HitDie,
		HasASI:           s.provider.HasASI(data.Key, toLevel),
		Features:         append([]string(nil), s.provider.FeaturesAt(data.Key, toLevel)...),
		ProficiencyBonus: s.provider.ProficiencyBonus(char.Level + 1),
	}

	// Subclass features only apply once the subclass is chosen
	if subclass := char.SubclassFor(data.Key); subclass != "" {
		changes.Features = append(changes.Features, s.provider.SubclassFeaturesAt(data.Key, subclass, toLevel)...)
	}

	changes.SubclassRequired = s.provider.SubclassSelectionRequired(data.Key, toLevel, char.SubclassFor(data.Key) != "")

	// A class uses the standard slot table or pact magic, never both
	if slots, ok := s.provider.SpellSlotsAt(data.Key, toLevel); ok {
		changes.SpellSlots = &slots
	} else if pact, ok := s.provider.PactSlotsAt(data.Key, toLevel); ok {
		changes.PactSlots = &pact
	}

	changes.SpellRules = s.spellRulesFor(data.Key, toLevel, char, changes)

	// The racial feature unlocks off the character's total level
	changes.RacialFeature = s.provider.RacialFeature(char.Race, char.Subrace, char.Level+1)

	return changes, nil
}

// spellRulesFor populates SpellLearningRules, nil when the class gains no
// spell pick and does not prepare from the full list at this level.
func (s *service) spellRulesFor(classKey string, toLevel int, char *character.Character, changes *ChangeSet) *SpellLearningRules {
	data, err := s.provider.ClassData(classKey)
	if err != nil {
		return nil
	}

	maxLevel := 0
	if changes.SpellSlots != nil {
		maxLevel = maxSlotLevel(*changes.SpellSlots)
	} else if changes.PactSlots != nil {
		maxLevel = changes.PactSlots.Level
	}

	switch data.Learning {
	case rulebook.LearningPrepared:
		if maxLevel == 0 {
			return nil
		}
		return &SpellLearningRules{
			ClassName:        classKey,
			IsPreparedCaster: true,
			MaxSpellLevel:    maxLevel,
		}
	case rulebook.LearningSpellbook:
		return &SpellLearningRules{
			ClassName:     classKey,
			NewSpells:     wizardSpellsPerLevel,
			MaxSpellLevel: maxLevel,
		}
	case rulebook.LearningKnown:
		target, ok := s.provider.SpellsKnownAt(classKey, toLevel)
		if !ok {
			return nil
		}
		// Already-known class spells are never double-counted
		newSpells := target - s.countKnownClassSpells(classKey, char)
		if newSpells < 0 {
			newSpells = 0
		}
		if newSpells == 0 && maxLevel == 0 {
			return nil
		}
		return &SpellLearningRules{
			ClassName:     classKey,
			NewSpells:     newSpells,
			MaxSpellLevel: maxLevel,
			CanSwap:       true,
		}
	default:
		return nil
	}
}

// countKnownClassSpells counts leveled spells on the character's list that
// appear on the class's catalog list
func (s *service) countKnownClassSpells(classKey string, char *character.Character) int {
	count := 0
	for _, known := range char.Spells {
		if known.Level == 0 {
			continue
		}
		if spell := s.catalog.SpellByName(known.Name); spell != nil && spell.ForClass(classKey) {
			count++
		}
	}
	return count
}

func maxSlotLevel(slots [9]int) int {
	for i := 8; i >= 0; i-- {
		if slots[i] > 0 {
			return i + 1
		}
	}
	return 0
}

// averageHPGain is the fixed alternative to rolling the hit die
func averageHPGain(hitDie, conMod int) int {
	gain := hitDie/2 + 1 + conMod
	if gain < 1 {
		gain = 1
	}
	return gain
}

func conModifier(char *character.Character) int {
	if score, ok := char.Attributes[shared.AttributeConstitution]; ok && score != nil {
		return score.Bonus
	}
	return 0
}

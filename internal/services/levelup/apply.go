package levelup

import (
	"fmt"
	"strings"

	"github.com/KirkDiggler/dnd-levelup/internal/domain/character"
	dnderr "github.com/KirkDiggler/dnd-levelup/internal/errors"
)

// Apply runs a fully-validated LevelUpResult against a character snapshot
// and returns the new snapshot plus the resource rescale status. The input
// character is never touched: the mutation happens on a clone, so an error
// leaves the caller's record byte-for-byte unchanged. Validation belongs to
// the session's completion gate; once the steps below start there is no
// partial-failure path, but a resource pool that could not be placed is
// reported through the status so callers can flag it for manual review.
func (s *service) Apply(char *character.Character, result *LevelUpResult) (*character.Character, *RescaleStatus, error) {
	if err := char.Validate(); err != nil {
		return nil, nil, dnderr.Wrap(err, "malformed character")
	}
	if result == nil {
		return nil, nil, dnderr.InvalidArgument("level-up result is required")
	}
	if char.Level >= character.MaxLevel {
		return nil, nil, dnderr.InvalidArgumentf("character is already at maximum level %d", character.MaxLevel)
	}
	if result.NewLevel != char.Level+1 {
		return nil, nil, dnderr.InvalidArgumentf("result targets level %d, character is at %d", result.NewLevel, char.Level)
	}
	if result.HPGain <= 0 {
		return nil, nil, dnderr.InvalidArgumentf("HP gain must be positive, got %d", result.HPGain)
	}
	if result.Path == PathMulticlass && result.NewClass == "" {
		return nil, nil, dnderr.InvalidArgument("multiclass result missing the new class")
	}

	next := char.Clone()

	// 1. Level and class composition
	next.Level = result.NewLevel
	entry := applyPath(next, result.Path, result.NewClass)

	// 2. Subclass and racial feature recording
	if result.Subclass != "" {
		entry.Subclass = result.Subclass
		entry.SubclassLevel = entry.Level
	}
	if result.RacialFeatureChoice != "" && !next.HasRacialChoice(next.Level, result.RacialFeatureChoice) {
		next.RacialFeatures = append(next.RacialFeatures, character.RacialChoice{
			Level:  next.Level,
			Choice: result.RacialFeatureChoice,
		})
	}

	// 3. HP rises by the same delta for current and max
	next.MaxHP += result.HPGain
	next.CurrentHP += result.HPGain

	// 4. ASI or feat
	if result.ASI != nil {
		for attr, delta := range result.ASI {
			next.Attributes[attr].AddBonus(delta)
		}
	} else if result.Feat != "" {
		s.applyFeat(next, result.Feat)
	}

	// 5. Spell slot or pact slot replenishment from the new level's table
	if slots, ok := s.provider.SpellSlotsAt(entry.Class, entry.Level); ok {
		next.SpellSlots = make(map[int]character.SlotInfo)
		for i, max := range slots {
			if max > 0 {
				next.SpellSlots[i+1] = character.SlotInfo{Max: max}
			}
		}
	} else if pact, ok := s.provider.PactSlotsAt(entry.Class, entry.Level); ok {
		next.PactLevel = pact.Level
		next.PactMax = pact.Slots
		next.PactUsed = 0
	}

	// 6. Resource rescale for the leveled class
	next.EnsureResourceSlots()
	rescaled, rescale := s.rescaleResources(entry.Class, entry.Level, abilityScores(next), next.Resources)
	next.Resources = rescaled

	// 7. Hit-die bookkeeping: one die added to the pool and to remaining
	next.HitDice.Total = next.Level
	next.HitDice.Remaining++
	if next.HitDice.Size == 0 {
		if data, err := s.provider.ClassData(next.Class()); err == nil {
			next.HitDice.Size = data.HitDie
		}
	}

	// 8. Spell list mutation: swap removal before any addition
	if result.SpellSwapped != nil {
		s.removeSpell(next, result.SpellSwapped.OldSpell)
		s.addSpell(next, result.SpellSwapped.NewSpell)
	}
	for _, name := range result.SpellsLearned {
		s.addSpell(next, name)
	}

	// 9. Racial auto-grants at this level, idempotent by name
	s.applyRacialGrants(next)

	// 10. Feature text
	s.appendFeatureLog(next, entry, result)

	return next, &rescale, nil
}

// applyFeat records the feat and applies its +1 to the first eligible
// ability in the feat's declared choice set
func (s *service) applyFeat(next *character.Character, featName string) {
	if next.HasFeat(featName) {
		return
	}
	next.Feats = append(next.Feats, featName)

	feat, err := s.provider.FeatData(featName)
	if err != nil {
		return
	}
	for _, attr := range feat.AbilityIncrease {
		score := next.Attributes[attr]
		if score != nil && score.Score < character.MaxAbilityScore {
			score.AddBonus(1)
			break
		}
	}
}

// addSpell appends a catalog spell if not already known (case-insensitive)
func (s *service) addSpell(next *character.Character, name string) {
	if next.KnowsSpell(name) {
		return
	}

	known := character.KnownSpell{Name: name}
	if spell := s.catalog.SpellByName(name); spell != nil {
		known.Name = spell.Name
		known.Level = spell.Level
		known.School = spell.School
		known.Concentration = spell.Concentration
	}
	next.Spells = append(next.Spells, known)
}

func (s *service) removeSpell(next *character.Character, name string) {
	for i := range next.Spells {
		if strings.EqualFold(next.Spells[i].Name, name) {
			next.Spells = append(next.Spells[:i], next.Spells[i+1:]...)
			return
		}
	}
}

// applyRacialGrants adds racial spells and records option-free racial
// features unlocking at the new total level; repeats are skipped
func (s *service) applyRacialGrants(next *character.Character) {
	for _, grant := range s.provider.RacialSpellsAtLevel(next.Race, next.Subrace, next.Level) {
		s.addSpell(next, grant.Spell)
	}

	feature := s.provider.RacialFeature(next.Race, next.Subrace, next.Level)
	if feature != nil && len(feature.Options) == 0 && !next.HasRacialChoice(next.Level, feature.Name) {
		next.RacialFeatures = append(next.RacialFeatures, character.RacialChoice{
			Level:  next.Level,
			Choice: feature.Name,
		})
	}
}

// appendFeatureLog records human-readable feature text; never read by logic
func (s *service) appendFeatureLog(next *character.Character, entry *character.ClassLevel, result *LevelUpResult) {
	prefix := fmt.Sprintf("Level %d (%s %d)", next.Level, entry.Class, entry.Level)

	for _, feature := range s.provider.FeaturesAt(entry.Class, entry.Level) {
		next.FeatureLog = append(next.FeatureLog, fmt.Sprintf("%s: %s", prefix, feature))
	}
	if entry.Subclass != "" {
		for _, feature := range s.provider.SubclassFeaturesAt(entry.Class, entry.Subclass, entry.Level) {
			next.FeatureLog = append(next.FeatureLog, fmt.Sprintf("%s: %s", prefix, feature))
		}
	}
	if result.Feat != "" {
		next.FeatureLog = append(next.FeatureLog, fmt.Sprintf("%s: Feat - %s", prefix, result.Feat))
	}
	if result.Subclass != "" {
		next.FeatureLog = append(next.FeatureLog, fmt.Sprintf("%s: Subclass - %s", prefix, result.Subclass))
	}
	if result.RacialFeatureChoice != "" {
		next.FeatureLog = append(next.FeatureLog, fmt.Sprintf("%s: Racial - %s", prefix, result.RacialFeatureChoice))
	}
}

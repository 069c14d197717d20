package levelup

import (
	"github.com/KirkDiggler/dnd-levelup/internal/domain/character"
	"github.com/KirkDiggler/dnd-levelup/internal/domain/shared"
	dnderr "github.com/KirkDiggler/dnd-levelup/internal/errors"
)

// ResolvePath checks whether the chosen path is open to the character.
// Continuing the current class always succeeds; the multiclass path checks
// the target class's ability-score prerequisites and reports the unmet
// requirements without blocking the continue path.
func (s *service) ResolvePath(char *character.Character, path PathChoice, targetClass string) (*PathResolution, error) {
	switch path {
	case PathContinue:
		return &PathResolution{OK: true}, nil
	case PathMulticlass:
		// noop, handled below
	default:
		return nil, dnderr.InvalidArgumentf("unknown level-up path '%s'", path)
	}

	if targetClass == "" {
		return nil, dnderr.InvalidArgument("multiclass path requires a target class")
	}
	if _, err := s.provider.ClassData(targetClass); err != nil {
		return nil, dnderr.Wrapf(err, "cannot multiclass into '%s'", targetClass)
	}
	if char.ClassLevelFor(targetClass) != nil {
		return nil, dnderr.InvalidArgumentf("character already has levels in %s", targetClass).
			WithMeta("class", targetClass)
	}

	prereqs, err := s.provider.MulticlassPrerequisites(targetClass, abilityScores(char))
	if err != nil {
		return nil, err
	}
	if !prereqs.MeetsRequirements {
		return &PathResolution{
			OK:             false,
			MissingPrereqs: append([]string(nil), prereqs.Missing...),
		}, nil
	}

	return &PathResolution{OK: true}, nil
}

// applyPath rewrites the class composition for the chosen path. Continue
// increments the primary entry; multiclass appends a fresh level-1 entry,
// keeping the composition complete and order-preserving.
func applyPath(char *character.Character, path PathChoice, targetClass string) *character.ClassLevel {
	if path == PathMulticlass {
		char.Classes = append(char.Classes, character.ClassLevel{
			Class: targetClass,
			Level: 1,
		})
		return &char.Classes[len(char.Classes)-1]
	}

	entry := &char.Classes[0]
	entry.Level++
	if entry.Subclass != "" {
		entry.SubclassLevel = entry.Level
	}
	return entry
}

func abilityScores(char *character.Character) map[shared.Attribute]int {
	scores := make(map[shared.Attribute]int, len(char.Attributes))
	for attr, score := range char.Attributes {
		if score != nil {
			scores[attr] = score.Score
		}
	}
	return scores
}

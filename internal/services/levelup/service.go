// Package levelup implements the level-up decision engine: change
// derivation, path resolution, the per-session selection collector with its
// completion gate, spell learning, resource rescaling, and the atomic
// character mutation that finishes a confirmed level-up.
package levelup

import (
	"github.com/KirkDiggler/dnd-levelup/internal/dice"
	"github.com/KirkDiggler/dnd-levelup/internal/domain/character"
	"github.com/KirkDiggler/dnd-levelup/internal/domain/rulebook"
	dnderr "github.com/KirkDiggler/dnd-levelup/internal/errors"
)

// Service is the engine's public surface. It takes and returns values and
// owns no ambient state; one Session exists per level-up attempt.
type Service interface {
	// ComputeChanges derives the ChangeSet for leveling className from
	// fromLevel to toLevel. Side-effect free and safe to call speculatively.
	ComputeChanges(className string, fromLevel, toLevel int, char *character.Character) (*ChangeSet, error)

	// ResolvePath checks whether the chosen path is open to the character
	ResolvePath(char *character.Character, path PathChoice, targetClass string) (*PathResolution, error)

	// StartSession begins a level-up attempt for the character's primary class
	StartSession(char *character.Character) (*Session, error)

	// Apply runs the validated result against a character snapshot and
	// returns the new snapshot plus the resource rescale status; the
	// input character is never mutated.
	Apply(char *character.Character, result *LevelUpResult) (*character.Character, *RescaleStatus, error)
}

// ServiceConfig holds the engine dependencies
type ServiceConfig struct {
	Provider rulebook.Provider     // required
	Catalog  rulebook.SpellCatalog // required
	Roller   dice.Roller           // optional, defaults to a random roller
}

type service struct {
	provider rulebook.Provider
	catalog  rulebook.SpellCatalog
	roller   dice.Roller
}

// NewService creates the level-up engine
func NewService(cfg *ServiceConfig) Service {
	if cfg.Provider == nil {
		panic("rulebook provider is required")
	}
	if cfg.Catalog == nil {
		panic("spell catalog is required")
	}

	svc := &service{
		provider: cfg.Provider,
		catalog:  cfg.Catalog,
		roller:   cfg.Roller,
	}
	if svc.roller == nil {
		svc.roller = dice.NewRandomRoller()
	}

	return svc
}

// StartSession begins a level-up attempt for the character's primary class
func (s *service) StartSession(char *character.Character) (*Session, error) {
	if err := char.Validate(); err != nil {
		return nil, dnderr.Wrap(err, "malformed character")
	}
	if char.Level >= character.MaxLevel {
		return nil, dnderr.InvalidArgumentf("character is already at maximum level %d", character.MaxLevel).
			WithMeta("level", char.Level)
	}

	sess := &Session{
		svc:  s,
		char: char,
		path: PathContinue,
	}
	if err := sess.recompute(); err != nil {
		return nil, err
	}

	return sess, nil
}

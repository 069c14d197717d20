package character

import (
	"strings"
	"time"

	"github.com/KirkDiggler/dnd-levelup/internal/domain/shared"
	dnderr "github.com/KirkDiggler/dnd-levelup/internal/errors"
)

const (
	// MaxLevel is the level cap; level-up attempts at this level are rejected
	MaxLevel = 20

	// MaxAbilityScore caps ability scores for ASI allocation
	MaxAbilityScore = 20

	// ResourceSlotCount is the number of named resource pools a character carries
	ResourceSlotCount = 5
)

// ClassLevel is one entry of a character's class composition.
// The first entry is the primary class used for display.
type ClassLevel struct {
	Class         string `json:"class"`
	Subclass      string `json:"subclass,omitempty"`
	Level         int    `json:"level"`
	SubclassLevel int    `json:"subclass_level,omitempty"`
}

// KnownSpell is a spell on the character's learned list
type KnownSpell struct {
	Name          string `json:"name"`
	Level         int    `json:"level"`
	School        string `json:"school,omitempty"`
	Concentration bool   `json:"concentration,omitempty"`
}

// SlotInfo tracks spell slots at a single slot level
type SlotInfo struct {
	Max  int `json:"max"`
	Used int `json:"used"`
}

// HitDice tracks the hit-die pool as structured counts, never parsed from text
type HitDice struct {
	Size      int `json:"size"`
	Total     int `json:"total"`
	Remaining int `json:"remaining"`
}

// ResourceSlot is one positional named resource pool (res1..res5)
type ResourceSlot struct {
	Key     string `json:"key"`
	Name    string `json:"name"`
	Current int    `json:"current"`
	Max     int    `json:"max"`
}

// RacialChoice records a racial feature option picked at a given level
type RacialChoice struct {
	Level  int    `json:"level"`
	Choice string `json:"choice"`
}

// Character is the root entity the engine reads and replaces.
// The engine never mutates a Character in place; the mutator clones first.
type Character struct {
	ID      string `json:"id"`
	OwnerID string `json:"owner_id"`
	Name    string `json:"name"`
	Race    string `json:"race"`
	Subrace string `json:"subrace,omitempty"`

	Level   int          `json:"level"`
	Classes []ClassLevel `json:"classes"`

	Attributes map[shared.Attribute]*AbilityScore `json:"attributes"`

	MaxHP     int     `json:"max_hp"`
	CurrentHP int     `json:"current_hp"`
	HitDice   HitDice `json:"hit_dice"`

	Spells     []KnownSpell     `json:"spells,omitempty"`
	SpellSlots map[int]SlotInfo `json:"spell_slots,omitempty"`

	// Pact magic keeps its own slot model; a class never uses both
	PactLevel int `json:"pact_level,omitempty"`
	PactMax   int `json:"pact_max,omitempty"`
	PactUsed  int `json:"pact_used,omitempty"`

	Resources []ResourceSlot `json:"resources"`

	Feats          []string       `json:"feats,omitempty"`
	RacialFeatures []RacialChoice `json:"racial_features,omitempty"`

	// FeatureLog accumulates human-readable feature text; never used for logic
	FeatureLog []string `json:"feature_log,omitempty"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// Class returns the primary class name for display
func (c *Character) Class() string {
	if len(c.Classes) == 0 {
		return ""
	}
	return c.Classes[0].Class
}

// ClassLevelFor returns the composition entry for the named class, nil if absent
func (c *Character) ClassLevelFor(class string) *ClassLevel {
	for i := range c.Classes {
		if strings.EqualFold(c.Classes[i].Class, class) {
			return &c.Classes[i]
		}
	}
	return nil
}

// SubclassFor returns the chosen subclass for the named class, empty if none
func (c *Character) SubclassFor(class string) string {
	if entry := c.ClassLevelFor(class); entry != nil {
		return entry.Subclass
	}
	return ""
}

// KnowsSpell reports whether the named spell is already on the spell list.
// Spell names are compared case-insensitively.
func (c *Character) KnowsSpell(name string) bool {
	for _, s := range c.Spells {
		if strings.EqualFold(s.Name, name) {
			return true
		}
	}
	return false
}

// HasFeat reports whether the character already has the named feat
func (c *Character) HasFeat(name string) bool {
	for _, f := range c.Feats {
		if strings.EqualFold(f, name) {
			return true
		}
	}
	return false
}

// HasRacialChoice reports whether a racial choice is already recorded at the level
func (c *Character) HasRacialChoice(level int, choice string) bool {
	for _, rc := range c.RacialFeatures {
		if rc.Level == level && strings.EqualFold(rc.Choice, choice) {
			return true
		}
	}
	return false
}

// ResourceByName finds the resource slot matching the name case-insensitively
func (c *Character) ResourceByName(name string) *ResourceSlot {
	for i := range c.Resources {
		if strings.EqualFold(c.Resources[i].Name, name) {
			return &c.Resources[i]
		}
	}
	return nil
}

// FirstEmptyResource returns the first slot with no name, nil if all occupied
func (c *Character) FirstEmptyResource() *ResourceSlot {
	for i := range c.Resources {
		if c.Resources[i].Name == "" {
			return &c.Resources[i]
		}
	}
	return nil
}

// EnsureResourceSlots backfills the positional resource slots res1..res5
func (c *Character) EnsureResourceSlots() {
	for len(c.Resources) < ResourceSlotCount {
		c.Resources = append(c.Resources, ResourceSlot{
			Key: resourceKey(len(c.Resources) + 1),
		})
	}
}

func resourceKey(n int) string {
	return "res" + string(rune('0'+n))
}

// Clone returns a deep copy of the character
func (c *Character) Clone() *Character {
	clone := *c

	clone.Classes = make([]ClassLevel, len(c.Classes))
	copy(clone.Classes, c.Classes)

	clone.Attributes = make(map[shared.Attribute]*AbilityScore, len(c.Attributes))
	for attr, score := range c.Attributes {
		if score != nil {
			copied := *score
			clone.Attributes[attr] = &copied
		}
	}

	clone.Spells = make([]KnownSpell, len(c.Spells))
	copy(clone.Spells, c.Spells)

	if c.SpellSlots != nil {
		clone.SpellSlots = make(map[int]SlotInfo, len(c.SpellSlots))
		for lvl, slot := range c.SpellSlots {
			clone.SpellSlots[lvl] = slot
		}
	}

	clone.Resources = make([]ResourceSlot, len(c.Resources))
	copy(clone.Resources, c.Resources)

	clone.Feats = append([]string(nil), c.Feats...)
	clone.RacialFeatures = append([]RacialChoice(nil), c.RacialFeatures...)
	clone.FeatureLog = append([]string(nil), c.FeatureLog...)

	return &clone
}

// Validate checks the character snapshot at the engine boundary.
// A malformed character is a reported condition, not a silent default.
func (c *Character) Validate() error {
	if c == nil {
		return dnderr.Validation("character is required")
	}
	if c.Level < 1 || c.Level > MaxLevel {
		return dnderr.Validationf("character level %d out of range 1..%d", c.Level, MaxLevel).
			WithMeta("level", c.Level)
	}
	if len(c.Classes) == 0 {
		return dnderr.Validation("character has no class composition")
	}

	levelSum := 0
	for _, entry := range c.Classes {
		if entry.Class == "" {
			return dnderr.Validation("class composition entry missing class name")
		}
		if entry.Level < 1 {
			return dnderr.Validationf("class %s has invalid level %d", entry.Class, entry.Level)
		}
		levelSum += entry.Level
	}
	if levelSum != c.Level {
		return dnderr.Validationf("class levels sum to %d, character level is %d", levelSum, c.Level).
			WithMeta("class_level_sum", levelSum).
			WithMeta("level", c.Level)
	}

	for _, attr := range shared.Attributes {
		score, ok := c.Attributes[attr]
		if !ok || score == nil {
			return dnderr.Validationf("missing ability score for %s", attr.Name())
		}
		if score.Score < 3 || score.Score > MaxAbilityScore {
			return dnderr.Validationf("%s score %d out of range 3..%d", attr.Name(), score.Score, MaxAbilityScore)
		}
	}

	if c.MaxHP < 0 || c.CurrentHP < 0 {
		return dnderr.Validation("hit points cannot be negative")
	}
	if c.CurrentHP > c.MaxHP {
		return dnderr.Validationf("current HP %d exceeds max HP %d", c.CurrentHP, c.MaxHP)
	}
	if c.HitDice.Remaining > c.HitDice.Total {
		return dnderr.Validationf("hit dice remaining %d exceeds total %d", c.HitDice.Remaining, c.HitDice.Total)
	}

	return nil
}

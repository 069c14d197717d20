package levelup

import (
	"github.com/KirkDiggler/dnd-levelup/internal/domain/rulebook"
	"github.com/KirkDiggler/dnd-levelup/internal/domain/shared"
)

// PathChoice selects between continuing the current class and multiclassing
type PathChoice string

const (
	// PathContinue levels the primary class
	PathContinue PathChoice = "continue"

	// PathMulticlass starts a new class at level 1
	PathMulticlass PathChoice = "multiclass"
)

// HPMethod records how the HP gain was produced
type HPMethod string

const (
	HPMethodRoll    HPMethod = "roll"
	HPMethodAverage HPMethod = "average"
)

// SpellLearningRules describes spell acquisition for one class level-up
type SpellLearningRules struct {
	ClassName        string `json:"class_name"`
	IsPreparedCaster bool   `json:"is_prepared_caster"`
	NewSpells        int    `json:"new_spells"`
	MaxSpellLevel    int    `json:"max_spell_level"`
	CanSwap          bool   `json:"can_swap"`
}

// ChangeSet describes everything a level gain requires or grants.
// It is ephemeral: recomputed per attempt, never persisted.
type ChangeSet struct {
	Class            string                  `json:"class"`
	Level            int                     `json:"level"`
	HitDie           int                     `json:"hit_die"`
	HasASI           bool                    `json:"has_asi"`
	Features         []string                `json:"features,omitempty"`
	SpellSlots       *[9]int                 `json:"spell_slots,omitempty"`
	PactSlots        *rulebook.PactSlots     `json:"pact_slots,omitempty"`
	SpellRules       *SpellLearningRules     `json:"spell_rules,omitempty"`
	ProficiencyBonus int                     `json:"proficiency_bonus"`
	SubclassRequired bool                    `json:"subclass_required"`
	RacialFeature    *rulebook.RacialFeature `json:"racial_feature,omitempty"`
}

// SpellSwap names the one known spell replaced by a candidate spell
type SpellSwap struct {
	OldSpell string `json:"old_spell"`
	NewSpell string `json:"new_spell"`
}

// LevelUpResult is the fully-validated payload handed to the mutator.
// It is constructed once per confirmed level-up and consumed exactly once.
type LevelUpResult struct {
	NewLevel            int                      `json:"new_level"`
	HPGain              int                      `json:"hp_gain"`
	HPMethod            HPMethod                 `json:"hp_method"`
	ASI                 map[shared.Attribute]int `json:"asi,omitempty"`
	Feat                string                   `json:"feat,omitempty"`
	Subclass            string                   `json:"subclass,omitempty"`
	RacialFeatureChoice string                   `json:"racial_feature_choice,omitempty"`
	SpellsLearned       []string                 `json:"spells_learned,omitempty"`
	SpellSwapped        *SpellSwap               `json:"spell_swapped,omitempty"`
	Path                PathChoice               `json:"path"`
	NewClass            string                   `json:"new_class,omitempty"`
}

// PathResolution reports whether a level-up path is open to the character
type PathResolution struct {
	OK             bool     `json:"ok"`
	MissingPrereqs []string `json:"missing_prereqs,omitempty"`
}

// RescaleStatus summarizes a resource rescale pass
type RescaleStatus struct {
	UpdatedCount      int  `json:"updated_count"`
	ExpectedCount     int  `json:"expected_count"`
	NeedsManualReview bool `json:"needs_manual_review"`
}

package rulebook

import (
	"github.com/KirkDiggler/dnd-levelup/internal/domain/shared"
)

// CasterKind distinguishes the spell-slot model a class uses
type CasterKind string

const (
	CasterNone CasterKind = "none"
	CasterFull CasterKind = "full"
	CasterHalf CasterKind = "half"
	CasterPact CasterKind = "pact"
)

// SpellLearning distinguishes how a class acquires spells on level-up
type SpellLearning string

const (
	// LearningNone - the class never picks spells on level-up
	LearningNone SpellLearning = "none"

	// LearningKnown - fixed known-spell count from a table, swap allowed
	LearningKnown SpellLearning = "known"

	// LearningSpellbook - wizard-style, two new spells per level, no swap
	LearningSpellbook SpellLearning = "spellbook"

	// LearningPrepared - prepares from the full class list each day
	LearningPrepared SpellLearning = "prepared"
)

// ClassData holds the static rules facts for one class
type ClassData struct {
	Key            string           `json:"key"`
	Name           string           `json:"name"`
	HitDie         int              `json:"hit_die"`
	PrimaryAbility shared.Attribute `json:"primary_ability"`
	Caster         CasterKind       `json:"caster"`
	Learning       SpellLearning    `json:"learning"`

	// ASILevels are the levels granting an ability score improvement or feat
	ASILevels []int `json:"asi_levels"`

	// SubclassLevel is the level at which the subclass is chosen
	SubclassLevel int `json:"subclass_level"`
}

var defaultASILevels = []int{4, 8, 12, 16, 19}

var classes = map[string]*ClassData{
	"barbarian": {
		Key:            "barbarian",
		Name:           "Barbarian",
		HitDie:         12,
		PrimaryAbility: shared.AttributeStrength,
		Caster:         CasterNone,
		Learning:       LearningNone,
		ASILevels:      defaultASILevels,
		SubclassLevel:  3,
	},
	"bard": {
		Key:            "bard",
		Name:           "Bard",
		HitDie:         8,
		PrimaryAbility: shared.AttributeCharisma,
		Caster:         CasterFull,
		Learning:       LearningKnown,
		ASILevels:      defaultASILevels,
		SubclassLevel:  3,
	},
	"cleric": {
		Key:            "cleric",
		Name:           "Cleric",
		HitDie:         8,
		PrimaryAbility: shared.AttributeWisdom,
		Caster:         CasterFull,
		Learning:       LearningPrepared,
		ASILevels:      defaultASILevels,
		SubclassLevel:  1,
	},
	"druid": {
		Key:            "druid",
		Name:           "Druid",
		HitDie:         8,
		PrimaryAbility: shared.AttributeWisdom,
		Caster:         CasterFull,
		Learning:       LearningPrepared,
		ASILevels:      defaultASILevels,
		SubclassLevel:  2,
	},
	"fighter": {
		Key:            "fighter",
		Name:           "Fighter",
		HitDie:         10,
		PrimaryAbility: shared.AttributeStrength,
		Caster:         CasterNone,
		Learning:       LearningNone,
		ASILevels:      []int{4, 6, 8, 12, 14, 16, 19},
		SubclassLevel:  3,
	},
	"monk": {
		Key:            "monk",
		Name:           "Monk",
		HitDie:         8,
		PrimaryAbility: shared.AttributeDexterity,
		Caster:         CasterNone,
		Learning:       LearningNone,
		ASILevels:      defaultASILevels,
		SubclassLevel:  3,
	},
	"paladin": {
		Key:            "paladin",
		Name:           "Paladin",
		HitDie:         10,
		PrimaryAbility: shared.AttributeStrength,
		Caster:         CasterHalf,
		Learning:       LearningPrepared,
		ASILevels:      defaultASILevels,
		SubclassLevel:  3,
	},
	"ranger": {
		Key:            "ranger",
		Name:           "Ranger",
		HitDie:         10,
		PrimaryAbility: shared.AttributeDexterity,
		Caster:         CasterHalf,
		Learning:       LearningKnown,
		ASILevels:      defaultASILevels,
		SubclassLevel:  3,
	},
	"rogue": {
		Key:            "rogue",
		Name:           "Rogue",
		HitDie:         8,
		PrimaryAbility: shared.AttributeDexterity,
		Caster:         CasterNone,
		Learning:       LearningNone,
		ASILevels:      []int{4, 8, 10, 12, 16, 19},
		SubclassLevel:  3,
	},
	"sorcerer": {
		Key:            "sorcerer",
		Name:           "Sorcerer",
		HitDie:         6,
		PrimaryAbility: shared.AttributeCharisma,
		Caster:         CasterFull,
		Learning:       LearningKnown,
		ASILevels:      defaultASILevels,
		SubclassLevel:  1,
	},
	"warlock": {
		Key:            "warlock",
		Name:           "Warlock",
		HitDie:         8,
		PrimaryAbility: shared.AttributeCharisma,
		Caster:         CasterPact,
		Learning:       LearningKnown,
		ASILevels:      defaultASILevels,
		SubclassLevel:  1,
	},
	"wizard": {
		Key:            "wizard",
		Name:           "Wizard",
		HitDie:         6,
		PrimaryAbility: shared.AttributeIntelligence,
		Caster:         CasterFull,
		Learning:       LearningSpellbook,
		ASILevels:      defaultASILevels,
		SubclassLevel:  2,
	},
}

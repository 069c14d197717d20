package rulebook

import (
	"sort"

	"github.com/KirkDiggler/dnd-levelup/internal/domain/shared"
)

// Feat is one entry of the feat catalog
type Feat struct {
	Key         string `json:"key"`
	Name        string `json:"name"`
	Description string `json:"description"`

	// Prerequisite is display text; empty when the feat has no gate
	Prerequisite string `json:"prerequisite,omitempty"`

	// AbilityIncrease lists the abilities of which one gains +1 when the
	// feat is taken; empty for feats with no score increase
	AbilityIncrease []shared.Attribute `json:"ability_increase,omitempty"`
}

var feats = map[string]*Feat{
	"actor": {
		Key:             "actor",
		Name:            "Actor",
		Description:     "Skilled at mimicry and dramatics, you gain advantage on Deception and Performance checks to pass yourself off as another person.",
		AbilityIncrease: []shared.Attribute{shared.AttributeCharisma},
	},
	"alert": {
		Key:         "alert",
		Name:        "Alert",
		Description: "Always on the lookout for danger: +5 to initiative, you can't be surprised while conscious.",
	},
	"athlete": {
		Key:             "athlete",
		Name:            "Athlete",
		Description:     "You have undergone extensive physical training; climbing and standing from prone cost less movement.",
		AbilityIncrease: []shared.Attribute{shared.AttributeStrength, shared.AttributeDexterity},
	},
	"durable": {
		Key:             "durable",
		Name:            "Durable",
		Description:     "Hardy and resilient; when you roll a Hit Die to regain hit points, the minimum you regain equals twice your Constitution modifier.",
		AbilityIncrease: []shared.Attribute{shared.AttributeConstitution},
	},
	"great-weapon-master": {
		Key:         "great-weapon-master",
		Name:        "Great Weapon Master",
		Description: "Before making a melee attack with a heavy weapon, you can take -5 to hit for +10 damage.",
	},
	"keen-mind": {
		Key:             "keen-mind",
		Name:            "Keen Mind",
		Description:     "You have a mind that can track time, direction, and detail with uncanny precision.",
		AbilityIncrease: []shared.Attribute{shared.AttributeIntelligence},
	},
	"lucky": {
		Key:         "lucky",
		Name:        "Lucky",
		Description: "You have 3 luck points; spend one to roll an additional d20 for an attack, check, or save.",
	},
	"observant": {
		Key:             "observant",
		Name:            "Observant",
		Description:     "Quick to notice details of your environment: +5 to passive Perception and Investigation.",
		AbilityIncrease: []shared.Attribute{shared.AttributeIntelligence, shared.AttributeWisdom},
	},
	"resilient": {
		Key:             "resilient",
		Name:            "Resilient",
		Description:     "Choose one ability score; you gain proficiency in saving throws using that ability.",
		AbilityIncrease: []shared.Attribute{shared.AttributeConstitution},
	},
	"sharpshooter": {
		Key:         "sharpshooter",
		Name:        "Sharpshooter",
		Description: "Attacking at long range doesn't impose disadvantage; you can take -5 to hit for +10 damage with ranged weapons.",
	},
	"tough": {
		Key:         "tough",
		Name:        "Tough",
		Description: "Your hit point maximum increases by 2 for each level you have.",
	},
	"war-caster": {
		Key:          "war-caster",
		Name:         "War Caster",
		Description:  "Advantage on Constitution saves to maintain concentration; you can perform somatic components with weapons in hand.",
		Prerequisite: "The ability to cast at least one spell",
	},
}

func allFeatNames() []string {
	names := make([]string, 0, len(feats))
	for _, f := range feats {
		names = append(names, f.Name)
	}
	sort.Strings(names)
	return names
}

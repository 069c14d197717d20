package rulebook

// RacialFeature is a race feature unlocking at a specific level.
// Features with Options require the player to pick exactly one.
type RacialFeature struct {
	Name        string   `json:"name"`
	Description string   `json:"description"`
	Options     []string `json:"options,omitempty"`
	Note        string   `json:"note,omitempty"`
}

// RacialSpell is a spell or innate casting granted by race at a level
type RacialSpell struct {
	Spell string `json:"spell"`
	Type  string `json:"type"` // "innate" or "known"
	Note  string `json:"note,omitempty"`
}

type racialLevelEntry struct {
	feature *RacialFeature
	spells  []RacialSpell
}

// racialProgression is keyed by race (or subrace key when the grant is
// subrace specific) and then by character level.
var racialProgression = map[string]map[int]racialLevelEntry{
	"tiefling": {
		3: {
			feature: &RacialFeature{
				Name:        "Infernal Legacy",
				Description: "You can cast Hellish Rebuke as a 2nd-level spell once per long rest.",
			},
			spells: []RacialSpell{{Spell: "Hellish Rebuke", Type: "innate", Note: "1/long rest"}},
		},
		5: {
			feature: &RacialFeature{
				Name:        "Infernal Legacy",
				Description: "You can cast Darkness once per long rest.",
			},
			spells: []RacialSpell{{Spell: "Darkness", Type: "innate", Note: "1/long rest"}},
		},
	},
	"drow": {
		3: {
			feature: &RacialFeature{
				Name:        "Drow Magic",
				Description: "You can cast Faerie Fire once per long rest.",
			},
			spells: []RacialSpell{{Spell: "Faerie Fire", Type: "innate", Note: "1/long rest"}},
		},
		5: {
			feature: &RacialFeature{
				Name:        "Drow Magic",
				Description: "You can cast Darkness once per long rest.",
			},
			spells: []RacialSpell{{Spell: "Darkness", Type: "innate", Note: "1/long rest"}},
		},
	},
	"aasimar": {
		3: {
			feature: &RacialFeature{
				Name:        "Celestial Revelation",
				Description: "Your celestial nature manifests; choose the form it takes.",
				Options:     []string{"Necrotic Shroud", "Radiant Consumption", "Radiant Soul"},
			},
		},
	},
	"dragonborn": {
		5: {
			feature: &RacialFeature{
				Name:        "Breath Weapon",
				Description: "Your breath weapon damage increases to 3d6.",
				Note:        "damage scales again at levels 11 and 16",
			},
		},
	},
}

// racialFeatureAt resolves the feature unlocking at the level, subrace first
func racialFeatureAt(race, subrace string, level int) *RacialFeature {
	if entry, ok := lookupRacialEntry(subrace, level); ok && entry.feature != nil {
		return entry.feature
	}
	if entry, ok := lookupRacialEntry(race, level); ok {
		return entry.feature
	}
	return nil
}

// racialSpellsAt resolves the spells unlocking at the level, subrace first
func racialSpellsAt(race, subrace string, level int) []RacialSpell {
	if entry, ok := lookupRacialEntry(subrace, level); ok && len(entry.spells) > 0 {
		return entry.spells
	}
	if entry, ok := lookupRacialEntry(race, level); ok {
		return entry.spells
	}
	return nil
}

func lookupRacialEntry(key string, level int) (racialLevelEntry, bool) {
	if key == "" {
		return racialLevelEntry{}, false
	}
	levels, ok := racialProgression[normalizeKey(key)]
	if !ok {
		return racialLevelEntry{}, false
	}
	entry, ok := levels[level]
	return entry, ok
}

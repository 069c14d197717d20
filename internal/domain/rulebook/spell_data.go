package rulebook

// catalogSpells is the embedded spell list. A broader catalog can be
// hydrated from the dnd5eapi.co API via the dnd5e client.
var catalogSpells = []Spell{
	// Cantrips
	{Name: "Fire Bolt", Level: 0, School: "Evocation", Classes: []string{"sorcerer", "wizard"}, Tags: []string{"damage", "fire"}},
	{Name: "Mage Hand", Level: 0, School: "Conjuration", Classes: []string{"bard", "sorcerer", "warlock", "wizard"}, Tags: []string{"utility"}},
	{Name: "Sacred Flame", Level: 0, School: "Evocation", Classes: []string{"cleric"}, Tags: []string{"damage", "radiant"}},
	{Name: "Eldritch Blast", Level: 0, School: "Evocation", Classes: []string{"warlock"}, Tags: []string{"damage", "force"}},
	{Name: "Vicious Mockery", Level: 0, School: "Enchantment", Classes: []string{"bard"}, Tags: []string{"damage", "psychic"}},
	{Name: "Guidance", Level: 0, School: "Divination", Classes: []string{"cleric", "druid"}, Tags: []string{"utility"}, Concentration: true},

	// 1st level
	{Name: "Burning Hands", Level: 1, School: "Evocation", Classes: []string{"sorcerer", "wizard"}, Tags: []string{"damage", "fire"}},
	{Name: "Charm Person", Level: 1, School: "Enchantment", Classes: []string{"bard", "druid", "sorcerer", "warlock", "wizard"}, Tags: []string{"control"}},
	{Name: "Cure Wounds", Level: 1, School: "Evocation", Classes: []string{"bard", "cleric", "druid", "paladin", "ranger"}, Tags: []string{"healing"}},
	{Name: "Detect Magic", Level: 1, School: "Divination", Classes: []string{"bard", "cleric", "druid", "paladin", "ranger", "sorcerer", "wizard"}, Tags: []string{"utility", "ritual"}, Concentration: true},
	{Name: "Faerie Fire", Level: 1, School: "Evocation", Classes: []string{"bard", "druid"}, Tags: []string{"control"}, Concentration: true},
	{Name: "Guiding Bolt", Level: 1, School: "Evocation", Classes: []string{"cleric"}, Tags: []string{"damage", "radiant"}},
	{Name: "Healing Word", Level: 1, School: "Evocation", Classes: []string{"bard", "cleric", "druid"}, Tags: []string{"healing"}},
	{Name: "Hellish Rebuke", Level: 1, School: "Evocation", Classes: []string{"warlock"}, Tags: []string{"damage", "fire"}},
	{Name: "Hex", Level: 1, School: "Enchantment", Classes: []string{"warlock"}, Tags: []string{"damage"}, Concentration: true},
	{Name: "Hunter's Mark", Level: 1, School: "Divination", Classes: []string{"ranger"}, Tags: []string{"damage"}, Concentration: true},
	{Name: "Magic Missile", Level: 1, School: "Evocation", Classes: []string{"sorcerer", "wizard"}, Tags: []string{"damage", "force"}},
	{Name: "Shield", Level: 1, School: "Abjuration", Classes: []string{"sorcerer", "wizard"}, Tags: []string{"defense"}},
	{Name: "Sleep", Level: 1, School: "Enchantment", Classes: []string{"bard", "sorcerer", "wizard"}, Tags: []string{"control"}},
	{Name: "Thunderwave", Level: 1, School: "Evocation", Classes: []string{"bard", "druid", "sorcerer", "wizard"}, Tags: []string{"damage", "thunder"}},
	{Name: "Bless", Level: 1, School: "Enchantment", Classes: []string{"cleric", "paladin"}, Tags: []string{"buff"}, Concentration: true},
	{Name: "Entangle", Level: 1, School: "Conjuration", Classes: []string{"druid"}, Tags: []string{"control"}, Concentration: true},

	// 2nd level
	{Name: "Aid", Level: 2, School: "Abjuration", Classes: []string{"cleric", "paladin"}, Tags: []string{"buff", "healing"}},
	{Name: "Darkness", Level: 2, School: "Evocation", Classes: []string{"sorcerer", "warlock", "wizard"}, Tags: []string{"control"}, Concentration: true},
	{Name: "Hold Person", Level: 2, School: "Enchantment", Classes: []string{"bard", "cleric", "druid", "sorcerer", "warlock", "wizard"}, Tags: []string{"control"}, Concentration: true},
	{Name: "Invisibility", Level: 2, School: "Illusion", Classes: []string{"bard", "sorcerer", "warlock", "wizard"}, Tags: []string{"utility"}, Concentration: true},
	{Name: "Misty Step", Level: 2, School: "Conjuration", Classes: []string{"sorcerer", "warlock", "wizard"}, Tags: []string{"movement"}},
	{Name: "Moonbeam", Level: 2, School: "Evocation", Classes: []string{"druid"}, Tags: []string{"damage", "radiant"}, Concentration: true},
	{Name: "Scorching Ray", Level: 2, School: "Evocation", Classes: []string{"sorcerer", "wizard"}, Tags: []string{"damage", "fire"}},
	{Name: "Shatter", Level: 2, School: "Evocation", Classes: []string{"bard", "sorcerer", "warlock", "wizard"}, Tags: []string{"damage", "thunder"}},
	{Name: "Spiritual Weapon", Level: 2, School: "Evocation", Classes: []string{"cleric"}, Tags: []string{"damage", "force"}},
	{Name: "Suggestion", Level: 2, School: "Enchantment", Classes: []string{"bard", "sorcerer", "warlock", "wizard"}, Tags: []string{"control"}, Concentration: true},
	{Name: "Lesser Restoration", Level: 2, School: "Abjuration", Classes: []string{"bard", "cleric", "druid", "paladin", "ranger"}, Tags: []string{"healing"}},
	{Name: "Pass Without Trace", Level: 2, School: "Abjuration", Classes: []string{"druid", "ranger"}, Tags: []string{"stealth"}, Concentration: true},

	// 3rd level
	{Name: "Counterspell", Level: 3, School: "Abjuration", Classes: []string{"sorcerer", "warlock", "wizard"}, Tags: []string{"defense"}},
	{Name: "Dispel Magic", Level: 3, School: "Abjuration", Classes: []string{"bard", "cleric", "druid", "paladin", "sorcerer", "warlock", "wizard"}, Tags: []string{"utility"}},
	{Name: "Fear", Level: 3, School: "Illusion", Classes: []string{"bard", "sorcerer", "warlock", "wizard"}, Tags: []string{"control"}, Concentration: true},
	{Name: "Fireball", Level: 3, School: "Evocation", Classes: []string{"sorcerer", "wizard"}, Tags: []string{"damage", "fire"}},
	{Name: "Fly", Level: 3, School: "Transmutation", Classes: []string{"sorcerer", "warlock", "wizard"}, Tags: []string{"movement"}, Concentration: true},
	{Name: "Haste", Level: 3, School: "Transmutation", Classes: []string{"sorcerer", "wizard"}, Tags: []string{"buff"}, Concentration: true},
	{Name: "Hypnotic Pattern", Level: 3, School: "Illusion", Classes: []string{"bard", "sorcerer", "warlock", "wizard"}, Tags: []string{"control"}, Concentration: true},
	{Name: "Lightning Bolt", Level: 3, School: "Evocation", Classes: []string{"sorcerer", "wizard"}, Tags: []string{"damage", "lightning"}},
	{Name: "Revivify", Level: 3, School: "Necromancy", Classes: []string{"cleric", "paladin"}, Tags: []string{"healing"}},
	{Name: "Spirit Guardians", Level: 3, School: "Conjuration", Classes: []string{"cleric"}, Tags: []string{"damage", "radiant"}, Concentration: true},
	{Name: "Conjure Animals", Level: 3, School: "Conjuration", Classes: []string{"druid", "ranger"}, Tags: []string{"summoning"}, Concentration: true},

	// 4th level
	{Name: "Banishment", Level: 4, School: "Abjuration", Classes: []string{"cleric", "paladin", "sorcerer", "warlock", "wizard"}, Tags: []string{"control"}, Concentration: true},
	{Name: "Dimension Door", Level: 4, School: "Conjuration", Classes: []string{"bard", "sorcerer", "warlock", "wizard"}, Tags: []string{"movement"}},
	{Name: "Greater Invisibility", Level: 4, School: "Illusion", Classes: []string{"bard", "sorcerer", "wizard"}, Tags: []string{"utility"}, Concentration: true},
	{Name: "Polymorph", Level: 4, School: "Transmutation", Classes: []string{"bard", "druid", "sorcerer", "wizard"}, Tags: []string{"control"}, Concentration: true},
	{Name: "Wall of Fire", Level: 4, School: "Evocation", Classes: []string{"druid", "sorcerer", "wizard"}, Tags: []string{"damage", "fire"}, Concentration: true},

	// 5th level
	{Name: "Animate Objects", Level: 5, School: "Transmutation", Classes: []string{"bard", "sorcerer", "wizard"}, Tags: []string{"summoning"}, Concentration: true},
	{Name: "Cone of Cold", Level: 5, School: "Evocation", Classes: []string{"sorcerer", "wizard"}, Tags: []string{"damage", "cold"}},
	{Name: "Greater Restoration", Level: 5, School: "Abjuration", Classes: []string{"bard", "cleric", "druid"}, Tags: []string{"healing"}},
	{Name: "Hold Monster", Level: 5, School: "Enchantment", Classes: []string{"bard", "sorcerer", "warlock", "wizard"}, Tags: []string{"control"}, Concentration: true},
	{Name: "Mass Cure Wounds", Level: 5, School: "Evocation", Classes: []string{"bard", "cleric", "druid"}, Tags: []string{"healing"}},

	// 6th level
	{Name: "Chain Lightning", Level: 6, School: "Evocation", Classes: []string{"sorcerer", "wizard"}, Tags: []string{"damage", "lightning"}},
	{Name: "Disintegrate", Level: 6, School: "Transmutation", Classes: []string{"sorcerer", "wizard"}, Tags: []string{"damage", "force"}},
	{Name: "Heal", Level: 6, School: "Evocation", Classes: []string{"cleric", "druid"}, Tags: []string{"healing"}},
	{Name: "Mass Suggestion", Level: 6, School: "Enchantment", Classes: []string{"bard", "sorcerer", "warlock", "wizard"}, Tags: []string{"control"}},

	// 7th level
	{Name: "Fire Storm", Level: 7, School: "Evocation", Classes: []string{"cleric", "druid", "sorcerer"}, Tags: []string{"damage", "fire"}},
	{Name: "Plane Shift", Level: 7, School: "Conjuration", Classes: []string{"cleric", "druid", "sorcerer", "warlock", "wizard"}, Tags: []string{"movement"}},
	{Name: "Teleport", Level: 7, School: "Conjuration", Classes: []string{"bard", "sorcerer", "wizard"}, Tags: []string{"movement"}},

	// 8th level
	{Name: "Dominate Monster", Level: 8, School: "Enchantment", Classes: []string{"bard", "sorcerer", "warlock", "wizard"}, Tags: []string{"control"}, Concentration: true},
	{Name: "Sunburst", Level: 8, School: "Evocation", Classes: []string{"druid", "sorcerer", "wizard"}, Tags: []string{"damage", "radiant"}},

	// 9th level
	{Name: "Foresight", Level: 9, School: "Divination", Classes: []string{"bard", "druid", "warlock", "wizard"}, Tags: []string{"buff"}},
	{Name: "Meteor Swarm", Level: 9, School: "Evocation", Classes: []string{"sorcerer", "wizard"}, Tags: []string{"damage", "fire"}},
	{Name: "Power Word Kill", Level: 9, School: "Enchantment", Classes: []string{"bard", "sorcerer", "warlock", "wizard"}, Tags: []string{"damage"}},
	{Name: "True Resurrection", Level: 9, School: "Necromancy", Classes: []string{"cleric", "druid"}, Tags: []string{"healing"}},
	{Name: "Wish", Level: 9, School: "Conjuration", Classes: []string{"sorcerer", "wizard"}, Tags: []string{"utility"}},
}

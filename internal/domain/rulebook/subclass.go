package rulebook

// SubclassOption is one choice in a class's subclass catalog
type SubclassOption struct {
	Key             string           `json:"key"`
	Name            string           `json:"name"`
	Description     string           `json:"description"`
	FeaturesByLevel map[int][]string `json:"features_by_level,omitempty"`
}

var subclassOptions = map[string][]SubclassOption{
	"barbarian": {
		{
			Key:         "berserker",
			Name:        "Path of the Berserker",
			Description: "Channel rage into unchecked fury.",
			FeaturesByLevel: map[int][]string{
				3: {"Frenzy"}, 6: {"Mindless Rage"}, 10: {"Intimidating Presence"}, 14: {"Retaliation"},
			},
		},
		{
			Key:         "totem-warrior",
			Name:        "Path of the Totem Warrior",
			Description: "Accept a spirit animal as guide, protector, and inspiration.",
			FeaturesByLevel: map[int][]string{
				3: {"Spirit Seeker", "Totem Spirit"}, 6: {"Aspect of the Beast"}, 10: {"Spirit Walker"}, 14: {"Totemic Attunement"},
			},
		},
	},
	"bard": {
		{
			Key:         "lore",
			Name:        "College of Lore",
			Description: "Knowledge and performance gathered from many sources.",
			FeaturesByLevel: map[int][]string{
				3: {"Bonus Proficiencies", "Cutting Words"}, 6: {"Additional Magical Secrets"}, 14: {"Peerless Skill"},
			},
		},
		{
			Key:         "valor",
			Name:        "College of Valor",
			Description: "Daring bards whose tales keep alive the memory of great heroes.",
			FeaturesByLevel: map[int][]string{
				3: {"Bonus Proficiencies", "Combat Inspiration"}, 6: {"Extra Attack"}, 14: {"Battle Magic"},
			},
		},
	},
	"cleric": {
		{
			Key:         "life",
			Name:        "Life Domain",
			Description: "The vibrant energy that sustains all life.",
			FeaturesByLevel: map[int][]string{
				1: {"Bonus Proficiency", "Disciple of Life"}, 2: {"Channel Divinity: Preserve Life"},
				6: {"Blessed Healer"}, 8: {"Divine Strike"}, 17: {"Supreme Healing"},
			},
		},
		{
			Key:         "light",
			Name:        "Light Domain",
			Description: "Ideals of rebirth, truth, vigilance, and beauty.",
			FeaturesByLevel: map[int][]string{
				1: {"Bonus Cantrip", "Warding Flare"}, 2: {"Channel Divinity: Radiance of the Dawn"},
				6: {"Improved Flare"}, 8: {"Potent Spellcasting"}, 17: {"Corona of Light"},
			},
		},
		{
			Key:         "war",
			Name:        "War Domain",
			Description: "Honor in combat and the courage of champions.",
			FeaturesByLevel: map[int][]string{
				1: {"Bonus Proficiencies", "War Priest"}, 2: {"Channel Divinity: Guided Strike"},
				6: {"Channel Divinity: War God's Blessing"}, 8: {"Divine Strike"}, 17: {"Avatar of Battle"},
			},
		},
	},
	"druid": {
		{
			Key:         "land",
			Name:        "Circle of the Land",
			Description: "Mystics and sages safeguarding ancient knowledge.",
			FeaturesByLevel: map[int][]string{
				2: {"Bonus Cantrip", "Natural Recovery"}, 3: {"Circle Spells"}, 6: {"Land's Stride"},
				10: {"Nature's Ward"}, 14: {"Nature's Sanctuary"},
			},
		},
		{
			Key:         "moon",
			Name:        "Circle of the Moon",
			Description: "Fierce guardians of the wilds.",
			FeaturesByLevel: map[int][]string{
				2: {"Combat Wild Shape", "Circle Forms"}, 6: {"Primal Strike"}, 10: {"Elemental Wild Shape"}, 14: {"Thousand Forms"},
			},
		},
	},
	"fighter": {
		{
			Key:         "champion",
			Name:        "Champion",
			Description: "Raw physical power honed to deadly perfection.",
			FeaturesByLevel: map[int][]string{
				3: {"Improved Critical"}, 7: {"Remarkable Athlete"}, 10: {"Additional Fighting Style"},
				15: {"Superior Critical"}, 18: {"Survivor"},
			},
		},
		{
			Key:         "battle-master",
			Name:        "Battle Master",
			Description: "Martial techniques passed down through generations.",
			FeaturesByLevel: map[int][]string{
				3: {"Combat Superiority", "Student of War"}, 7: {"Know Your Enemy"},
				10: {"Improved Combat Superiority"}, 15: {"Relentless"},
			},
		},
		{
			Key:         "eldritch-knight",
			Name:        "Eldritch Knight",
			Description: "Martial prowess supplemented with wizardry.",
			FeaturesByLevel: map[int][]string{
				3: {"Spellcasting", "Weapon Bond"}, 7: {"War Magic"}, 10: {"Eldritch Strike"},
				15: {"Arcane Charge"}, 18: {"Improved War Magic"},
			},
		},
	},
	"monk": {
		{
			Key:         "open-hand",
			Name:        "Way of the Open Hand",
			Description: "Masters of unarmed combat.",
			FeaturesByLevel: map[int][]string{
				3: {"Open Hand Technique"}, 6: {"Wholeness of Body"}, 11: {"Tranquility"}, 17: {"Quivering Palm"},
			},
		},
		{
			Key:         "shadow",
			Name:        "Way of Shadow",
			Description: "Stealth and subterfuge in service of the ki.",
			FeaturesByLevel: map[int][]string{
				3: {"Shadow Arts"}, 6: {"Shadow Step"}, 11: {"Cloak of Shadows"}, 17: {"Opportunist"},
			},
		},
	},
	"paladin": {
		{
			Key:         "devotion",
			Name:        "Oath of Devotion",
			Description: "The loftiest ideals of justice, virtue, and order.",
			FeaturesByLevel: map[int][]string{
				3: {"Channel Divinity: Sacred Weapon", "Channel Divinity: Turn the Unholy"},
				7: {"Aura of Devotion"}, 15: {"Purity of Spirit"}, 20: {"Holy Nimbus"},
			},
		},
		{
			Key:         "vengeance",
			Name:        "Oath of Vengeance",
			Description: "Punishing those who have committed grievous sins.",
			FeaturesByLevel: map[int][]string{
				3: {"Channel Divinity: Abjure Enemy", "Channel Divinity: Vow of Enmity"},
				7: {"Relentless Avenger"}, 15: {"Soul of Vengeance"}, 20: {"Avenging Angel"},
			},
		},
	},
	"ranger": {
		{
			Key:         "hunter",
			Name:        "Hunter",
			Description: "A bulwark between civilization and the terrors of the wilderness.",
			FeaturesByLevel: map[int][]string{
				3: {"Hunter's Prey"}, 7: {"Defensive Tactics"}, 11: {"Multiattack"}, 15: {"Superior Hunter's Defense"},
			},
		},
		{
			Key:         "beast-master",
			Name:        "Beast Master",
			Description: "A bond with a beast companion of the wilds.",
			FeaturesByLevel: map[int][]string{
				3: {"Ranger's Companion"}, 7: {"Exceptional Training"}, 11: {"Bestial Fury"}, 15: {"Share Spells"},
			},
		},
	},
	"rogue": {
		{
			Key:         "thief",
			Name:        "Thief",
			Description: "Agility, stealth, and a knack for larceny.",
			FeaturesByLevel: map[int][]string{
				3: {"Fast Hands", "Second-Story Work"}, 9: {"Supreme Sneak"}, 13: {"Use Magic Device"}, 17: {"Thief's Reflexes"},
			},
		},
		{
			Key:         "assassin",
			Name:        "Assassin",
			Description: "The grim art of death.",
			FeaturesByLevel: map[int][]string{
				3: {"Bonus Proficiencies", "Assassinate"}, 9: {"Infiltration Expertise"}, 13: {"Impostor"}, 17: {"Death Strike"},
			},
		},
		{
			Key:         "arcane-trickster",
			Name:        "Arcane Trickster",
			Description: "Enchantment and illusion in support of mischief.",
			FeaturesByLevel: map[int][]string{
				3: {"Spellcasting", "Mage Hand Legerdemain"}, 9: {"Magical Ambush"}, 13: {"Versatile Trickster"}, 17: {"Spell Thief"},
			},
		},
	},
	"sorcerer": {
		{
			Key:         "draconic",
			Name:        "Draconic Bloodline",
			Description: "Innate magic from draconic ancestry.",
			FeaturesByLevel: map[int][]string{
				1: {"Dragon Ancestor", "Draconic Resilience"}, 6: {"Elemental Affinity"},
				14: {"Dragon Wings"}, 18: {"Draconic Presence"},
			},
		},
		{
			Key:         "wild-magic",
			Name:        "Wild Magic",
			Description: "Forces of chaos underlying the order of creation.",
			FeaturesByLevel: map[int][]string{
				1: {"Wild Magic Surge", "Tides of Chaos"}, 6: {"Bend Luck"},
				14: {"Controlled Chaos"}, 18: {"Spell Bombardment"},
			},
		},
	},
	"warlock": {
		{
			Key:         "fiend",
			Name:        "The Fiend",
			Description: "A pact with a fiend of the lower planes.",
			FeaturesByLevel: map[int][]string{
				1: {"Dark One's Blessing"}, 6: {"Dark One's Own Luck"}, 10: {"Fiendish Resilience"}, 14: {"Hurl Through Hell"},
			},
		},
		{
			Key:         "archfey",
			Name:        "The Archfey",
			Description: "A pact with a lord or lady of the fey.",
			FeaturesByLevel: map[int][]string{
				1: {"Fey Presence"}, 6: {"Misty Escape"}, 10: {"Beguiling Defenses"}, 14: {"Dark Delirium"},
			},
		},
		{
			Key:         "great-old-one",
			Name:        "The Great Old One",
			Description: "A pact with an entity from beyond the Far Realm.",
			FeaturesByLevel: map[int][]string{
				1: {"Awakened Mind"}, 6: {"Entropic Ward"}, 10: {"Thought Shield"}, 14: {"Create Thrall"},
			},
		},
	},
	"wizard": {
		{
			Key:         "evocation",
			Name:        "School of Evocation",
			Description: "Sculpting the raw energies of elemental magic.",
			FeaturesByLevel: map[int][]string{
				2: {"Evocation Savant", "Sculpt Spells"}, 6: {"Potent Cantrip"},
				10: {"Empowered Evocation"}, 14: {"Overchannel"},
			},
		},
		{
			Key:         "abjuration",
			Name:        "School of Abjuration",
			Description: "Wards, banishments, and protective magic.",
			FeaturesByLevel: map[int][]string{
				2: {"Abjuration Savant", "Arcane Ward"}, 6: {"Projected Ward"},
				10: {"Improved Abjuration"}, 14: {"Spell Resistance"},
			},
		},
		{
			Key:         "divination",
			Name:        "School of Divination",
			Description: "Peeling back the veil of space, time, and consciousness.",
			FeaturesByLevel: map[int][]string{
				2: {"Divination Savant", "Portent"}, 6: {"Expert Divination"},
				10: {"The Third Eye"}, 14: {"Greater Portent"},
			},
		},
	},
}

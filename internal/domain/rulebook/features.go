package rulebook

// classFeatures lists feature names gained at exactly each level.
// ASIs are not listed here; they are derived from ClassData.ASILevels.
var classFeatures = map[string]map[int][]string{
	"barbarian": {
		1:  {"Rage", "Unarmored Defense"},
		2:  {"Reckless Attack", "Danger Sense"},
		3:  {"Primal Path"},
		5:  {"Extra Attack", "Fast Movement"},
		7:  {"Feral Instinct"},
		9:  {"Brutal Critical (1 die)"},
		11: {"Relentless Rage"},
		13: {"Brutal Critical (2 dice)"},
		15: {"Persistent Rage"},
		17: {"Brutal Critical (3 dice)"},
		18: {"Indomitable Might"},
		20: {"Primal Champion"},
	},
	"bard": {
		1:  {"Spellcasting", "Bardic Inspiration (d6)"},
		2:  {"Jack of All Trades", "Song of Rest (d6)"},
		3:  {"Bard College", "Expertise"},
		5:  {"Bardic Inspiration (d8)", "Font of Inspiration"},
		6:  {"Countercharm"},
		9:  {"Song of Rest (d8)"},
		10: {"Bardic Inspiration (d10)", "Expertise", "Magical Secrets"},
		13: {"Song of Rest (d10)"},
		14: {"Magical Secrets"},
		15: {"Bardic Inspiration (d12)"},
		17: {"Song of Rest (d12)"},
		18: {"Magical Secrets"},
		20: {"Superior Inspiration"},
	},
	"cleric": {
		1:  {"Spellcasting", "Divine Domain"},
		2:  {"Channel Divinity (1/rest)", "Divine Domain feature"},
		5:  {"Destroy Undead (CR 1/2)"},
		6:  {"Channel Divinity (2/rest)", "Divine Domain feature"},
		8:  {"Destroy Undead (CR 1)", "Divine Domain feature"},
		10: {"Divine Intervention"},
		11: {"Destroy Undead (CR 2)"},
		14: {"Destroy Undead (CR 3)"},
		17: {"Destroy Undead (CR 4)", "Divine Domain feature"},
		18: {"Channel Divinity (3/rest)"},
		20: {"Divine Intervention improvement"},
	},
	"druid": {
		1:  {"Druidic", "Spellcasting"},
		2:  {"Wild Shape", "Druid Circle"},
		4:  {"Wild Shape improvement"},
		8:  {"Wild Shape improvement"},
		18: {"Timeless Body", "Beast Spells"},
		20: {"Archdruid"},
	},
	"fighter": {
		1:  {"Fighting Style", "Second Wind"},
		2:  {"Action Surge (one use)"},
		3:  {"Martial Archetype"},
		5:  {"Extra Attack"},
		9:  {"Indomitable (one use)"},
		11: {"Extra Attack (2)"},
		13: {"Indomitable (two uses)"},
		15: {"Superior Critical"},
		17: {"Action Surge (two uses)", "Indomitable (three uses)"},
		20: {"Extra Attack (3)"},
	},
	"monk": {
		1:  {"Unarmored Defense", "Martial Arts"},
		2:  {"Ki", "Unarmored Movement"},
		3:  {"Monastic Tradition", "Deflect Missiles"},
		4:  {"Slow Fall"},
		5:  {"Extra Attack", "Stunning Strike"},
		6:  {"Ki-Empowered Strikes"},
		7:  {"Evasion", "Stillness of Mind"},
		10: {"Purity of Body"},
		13: {"Tongue of the Sun and Moon"},
		14: {"Diamond Soul"},
		15: {"Timeless Body"},
		18: {"Empty Body"},
		20: {"Perfect Self"},
	},
	"paladin": {
		1:  {"Divine Sense", "Lay on Hands"},
		2:  {"Fighting Style", "Spellcasting", "Divine Smite"},
		3:  {"Divine Health", "Sacred Oath"},
		5:  {"Extra Attack"},
		6:  {"Aura of Protection"},
		10: {"Aura of Courage"},
		11: {"Improved Divine Smite"},
		14: {"Cleansing Touch"},
		18: {"Aura improvements"},
		20: {"Sacred Oath feature"},
	},
	"ranger": {
		1:  {"Favored Enemy", "Natural Explorer"},
		2:  {"Fighting Style", "Spellcasting"},
		3:  {"Ranger Archetype", "Primeval Awareness"},
		5:  {"Extra Attack"},
		8:  {"Land's Stride"},
		10: {"Hide in Plain Sight"},
		14: {"Vanish"},
		18: {"Feral Senses"},
		20: {"Foe Slayer"},
	},
	"rogue": {
		1:  {"Expertise", "Sneak Attack", "Thieves' Cant"},
		2:  {"Cunning Action"},
		3:  {"Roguish Archetype"},
		5:  {"Uncanny Dodge"},
		6:  {"Expertise"},
		7:  {"Evasion"},
		11: {"Reliable Talent"},
		14: {"Blindsense"},
		15: {"Slippery Mind"},
		18: {"Elusive"},
		20: {"Stroke of Luck"},
	},
	"sorcerer": {
		1:  {"Spellcasting", "Sorcerous Origin"},
		2:  {"Font of Magic"},
		3:  {"Metamagic"},
		10: {"Metamagic"},
		17: {"Metamagic"},
		20: {"Sorcerous Restoration"},
	},
	"warlock": {
		1:  {"Otherworldly Patron", "Pact Magic"},
		2:  {"Eldritch Invocations"},
		3:  {"Pact Boon"},
		11: {"Mystic Arcanum (6th level)"},
		13: {"Mystic Arcanum (7th level)"},
		15: {"Mystic Arcanum (8th level)"},
		17: {"Mystic Arcanum (9th level)"},
		20: {"Eldritch Master"},
	},
	"wizard": {
		1:  {"Spellcasting", "Arcane Recovery"},
		2:  {"Arcane Tradition"},
		18: {"Spell Mastery"},
		20: {"Signature Spells"},
	},
}

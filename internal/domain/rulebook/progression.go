package rulebook

// PactSlots describes the pact-magic slot model at a given level
type PactSlots struct {
	Level int `json:"level"`
	Slots int `json:"slots"`
}

// fullCasterSlots is the shared slot table for bard, cleric, druid,
// sorcerer and wizard, indexed by class level 1..20.
var fullCasterSlots = map[int][9]int{
	1:  {2, 0, 0, 0, 0, 0, 0, 0, 0},
	2:  {3, 0, 0, 0, 0, 0, 0, 0, 0},
	3:  {4, 2, 0, 0, 0, 0, 0, 0, 0},
	4:  {4, 3, 0, 0, 0, 0, 0, 0, 0},
	5:  {4, 3, 2, 0, 0, 0, 0, 0, 0},
	6:  {4, 3, 3, 0, 0, 0, 0, 0, 0},
	7:  {4, 3, 3, 1, 0, 0, 0, 0, 0},
	8:  {4, 3, 3, 2, 0, 0, 0, 0, 0},
	9:  {4, 3, 3, 3, 1, 0, 0, 0, 0},
	10: {4, 3, 3, 3, 2, 0, 0, 0, 0},
	11: {4, 3, 3, 3, 2, 1, 0, 0, 0},
	12: {4, 3, 3, 3, 2, 1, 0, 0, 0},
	13: {4, 3, 3, 3, 2, 1, 1, 0, 0},
	14: {4, 3, 3, 3, 2, 1, 1, 0, 0},
	15: {4, 3, 3, 3, 2, 1, 1, 1, 0},
	16: {4, 3, 3, 3, 2, 1, 1, 1, 0},
	17: {4, 3, 3, 3, 2, 1, 1, 1, 1},
	18: {4, 3, 3, 3, 3, 1, 1, 1, 1},
	19: {4, 3, 3, 3, 3, 2, 1, 1, 1},
	20: {4, 3, 3, 3, 3, 2, 2, 1, 1},
}

// halfCasterSlots covers paladin and ranger
var halfCasterSlots = map[int][9]int{
	1:  {0, 0, 0, 0, 0, 0, 0, 0, 0},
	2:  {2, 0, 0, 0, 0, 0, 0, 0, 0},
	3:  {3, 0, 0, 0, 0, 0, 0, 0, 0},
	4:  {3, 0, 0, 0, 0, 0, 0, 0, 0},
	5:  {4, 2, 0, 0, 0, 0, 0, 0, 0},
	6:  {4, 2, 0, 0, 0, 0, 0, 0, 0},
	7:  {4, 3, 0, 0, 0, 0, 0, 0, 0},
	8:  {4, 3, 0, 0, 0, 0, 0, 0, 0},
	9:  {4, 3, 2, 0, 0, 0, 0, 0, 0},
	10: {4, 3, 2, 0, 0, 0, 0, 0, 0},
	11: {4, 3, 3, 0, 0, 0, 0, 0, 0},
	12: {4, 3, 3, 0, 0, 0, 0, 0, 0},
	13: {4, 3, 3, 1, 0, 0, 0, 0, 0},
	14: {4, 3, 3, 1, 0, 0, 0, 0, 0},
	15: {4, 3, 3, 2, 0, 0, 0, 0, 0},
	16: {4, 3, 3, 2, 0, 0, 0, 0, 0},
	17: {4, 3, 3, 3, 1, 0, 0, 0, 0},
	18: {4, 3, 3, 3, 1, 0, 0, 0, 0},
	19: {4, 3, 3, 3, 2, 0, 0, 0, 0},
	20: {4, 3, 3, 3, 2, 0, 0, 0, 0},
}

// pactMagicSlots is the warlock pact table: slot level and slot count
var pactMagicSlots = map[int]PactSlots{
	1:  {Level: 1, Slots: 1},
	2:  {Level: 1, Slots: 2},
	3:  {Level: 2, Slots: 2},
	4:  {Level: 2, Slots: 2},
	5:  {Level: 3, Slots: 2},
	6:  {Level: 3, Slots: 2},
	7:  {Level: 4, Slots: 2},
	8:  {Level: 4, Slots: 2},
	9:  {Level: 5, Slots: 2},
	10: {Level: 5, Slots: 2},
	11: {Level: 5, Slots: 3},
	12: {Level: 5, Slots: 3},
	13: {Level: 5, Slots: 3},
	14: {Level: 5, Slots: 3},
	15: {Level: 5, Slots: 3},
	16: {Level: 5, Slots: 3},
	17: {Level: 5, Slots: 4},
	18: {Level: 5, Slots: 4},
	19: {Level: 5, Slots: 4},
	20: {Level: 5, Slots: 4},
}

// spellsKnown tables for the known casters (bard, ranger, sorcerer, warlock),
// indexed by class level 1..20.
var spellsKnown = map[string]map[int]int{
	"bard": {
		1: 4, 2: 5, 3: 6, 4: 7, 5: 8, 6: 9, 7: 10, 8: 11, 9: 12, 10: 14,
		11: 15, 12: 15, 13: 16, 14: 18, 15: 19, 16: 19, 17: 20, 18: 22, 19: 22, 20: 22,
	},
	"ranger": {
		1: 0, 2: 2, 3: 3, 4: 3, 5: 4, 6: 4, 7: 5, 8: 5, 9: 6, 10: 6,
		11: 7, 12: 7, 13: 8, 14: 8, 15: 9, 16: 9, 17: 10, 18: 10, 19: 11, 20: 11,
	},
	"sorcerer": {
		1: 2, 2: 3, 3: 4, 4: 5, 5: 6, 6: 7, 7: 8, 8: 9, 9: 10, 10: 11,
		11: 12, 12: 12, 13: 13, 14: 13, 15: 14, 16: 14, 17: 15, 18: 15, 19: 15, 20: 15,
	},
	"warlock": {
		1: 2, 2: 3, 3: 4, 4: 5, 5: 6, 6: 7, 7: 8, 8: 9, 9: 10, 10: 10,
		11: 11, 12: 11, 13: 12, 14: 12, 15: 13, 16: 13, 17: 14, 18: 14, 19: 15, 20: 15,
	},
}

// proficiencyBonusForLevel follows the universal progression table
func proficiencyBonusForLevel(level int) int {
	if level < 1 {
		return 2
	}
	if level > 20 {
		level = 20
	}
	return 2 + (level-1)/4
}

package shared

// Attribute identifies one of the six ability scores
type Attribute string

// Attributes lists the six abilities in display order
var Attributes = []Attribute{AttributeStrength, AttributeDexterity, AttributeConstitution, AttributeIntelligence, AttributeWisdom, AttributeCharisma}

const (
	AttributeNone         Attribute = ""
	AttributeStrength     Attribute = "Str"
	AttributeDexterity    Attribute = "Dex"
	AttributeConstitution Attribute = "Con"
	AttributeIntelligence Attribute = "Int"
	AttributeWisdom       Attribute = "Wis"
	AttributeCharisma     Attribute = "Cha"
)

var attributeNames = map[Attribute]string{
	AttributeStrength:     "Strength",
	AttributeDexterity:    "Dexterity",
	AttributeConstitution: "Constitution",
	AttributeIntelligence: "Intelligence",
	AttributeWisdom:       "Wisdom",
	AttributeCharisma:     "Charisma",
}

// Name returns the full display name of the attribute
func (a Attribute) Name() string {
	if name, ok := attributeNames[a]; ok {
		return name
	}
	return string(a)
}

// Modifier returns the ability modifier for a raw score
func Modifier(score int) int {
	if score < 10 && (score-10)%2 != 0 {
		// Go truncates toward zero; ability modifiers round down
		return (score-10)/2 - 1
	}
	return (score - 10) / 2
}

package rulebook

import (
	"fmt"

	"github.com/KirkDiggler/dnd-levelup/internal/domain/shared"
)

const multiclassMinimum = 13

// abilityRequirement is one minimum-score gate. AnyOf holds the attributes of
// which at least one must meet the minimum; AllOf must all meet it.
type abilityRequirement struct {
	AllOf []shared.Attribute
	AnyOf []shared.Attribute
}

// multiclassPrereqs follows the PHB multiclassing table
var multiclassPrereqs = map[string]abilityRequirement{
	"barbarian": {AllOf: []shared.Attribute{shared.AttributeStrength}},
	"bard":      {AllOf: []shared.Attribute{shared.AttributeCharisma}},
	"cleric":    {AllOf: []shared.Attribute{shared.AttributeWisdom}},
	"druid":     {AllOf: []shared.Attribute{shared.AttributeWisdom}},
	"fighter":   {AnyOf: []shared.Attribute{shared.AttributeStrength, shared.AttributeDexterity}},
	"monk":      {AllOf: []shared.Attribute{shared.AttributeDexterity, shared.AttributeWisdom}},
	"paladin":   {AllOf: []shared.Attribute{shared.AttributeStrength, shared.AttributeCharisma}},
	"ranger":    {AllOf: []shared.Attribute{shared.AttributeDexterity, shared.AttributeWisdom}},
	"rogue":     {AllOf: []shared.Attribute{shared.AttributeDexterity}},
	"sorcerer":  {AllOf: []shared.Attribute{shared.AttributeCharisma}},
	"warlock":   {AllOf: []shared.Attribute{shared.AttributeCharisma}},
	"wizard":    {AllOf: []shared.Attribute{shared.AttributeIntelligence}},
}

// PrereqResult reports whether multiclass ability gates are met
type PrereqResult struct {
	MeetsRequirements bool     `json:"meets_requirements"`
	Missing           []string `json:"missing,omitempty"`
}

func checkMulticlassPrereqs(req abilityRequirement, scores map[shared.Attribute]int) *PrereqResult {
	result := &PrereqResult{MeetsRequirements: true}

	for _, attr := range req.AllOf {
		if scores[attr] < multiclassMinimum {
			result.MeetsRequirements = false
			result.Missing = append(result.Missing, requirementText(attr))
		}
	}

	if len(req.AnyOf) > 0 {
		met := false
		for _, attr := range req.AnyOf {
			if scores[attr] >= multiclassMinimum {
				met = true
				break
			}
		}
		if !met {
			result.MeetsRequirements = false
			text := requirementText(req.AnyOf[0])
			for _, attr := range req.AnyOf[1:] {
				text += " or " + requirementText(attr)
			}
			result.Missing = append(result.Missing, text)
		}
	}

	return result
}

func requirementText(attr shared.Attribute) string {
	return fmt.Sprintf("%s %d", attr.Name(), multiclassMinimum)
}

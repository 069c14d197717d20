package rulebook

import (
	"github.com/KirkDiggler/dnd-levelup/internal/domain/shared"
)

// ClassResource is a named limited-use pool reported for a class and level
type ClassResource struct {
	Name string `json:"name"`
	Max  int    `json:"max"`
}

// rageUses follows the barbarian rage table; 99 stands in for unlimited at 20
var rageUses = map[int]int{
	1: 2, 2: 2, 3: 3, 4: 3, 5: 3, 6: 4, 7: 4, 8: 4, 9: 4, 10: 4,
	11: 4, 12: 5, 13: 5, 14: 5, 15: 5, 16: 5, 17: 6, 18: 6, 19: 6, 20: 99,
}

// classResourcesAt reports the resource pools a class carries at a level.
// Pools that scale off an ability modifier read from the provided scores.
func classResourcesAt(class string, level int, scores map[shared.Attribute]int) []ClassResource {
	switch class {
	case "barbarian":
		return []ClassResource{{Name: "Rage", Max: rageUses[level]}}
	case "bard":
		uses := shared.Modifier(scores[shared.AttributeCharisma])
		if uses < 1 {
			uses = 1
		}
		return []ClassResource{{Name: "Bardic Inspiration", Max: uses}}
	case "cleric":
		if level < 2 {
			return nil
		}
		uses := 1
		if level >= 18 {
			uses = 3
		} else if level >= 6 {
			uses = 2
		}
		return []ClassResource{{Name: "Channel Divinity", Max: uses}}
	case "druid":
		if level < 2 {
			return nil
		}
		return []ClassResource{{Name: "Wild Shape", Max: 2}}
	case "fighter":
		resources := []ClassResource{{Name: "Second Wind", Max: 1}}
		if level >= 2 {
			uses := 1
			if level >= 17 {
				uses = 2
			}
			resources = append(resources, ClassResource{Name: "Action Surge", Max: uses})
		}
		if level >= 9 {
			uses := 1
			if level >= 17 {
				uses = 3
			} else if level >= 13 {
				uses = 2
			}
			resources = append(resources, ClassResource{Name: "Indomitable", Max: uses})
		}
		return resources
	case "monk":
		if level < 2 {
			return nil
		}
		return []ClassResource{{Name: "Ki", Max: level}}
	case "paladin":
		resources := []ClassResource{{Name: "Lay on Hands", Max: level * 5}}
		if level >= 3 {
			resources = append(resources, ClassResource{Name: "Channel Divinity", Max: 1})
		}
		return resources
	case "sorcerer":
		if level < 2 {
			return nil
		}
		return []ClassResource{{Name: "Sorcery Points", Max: level}}
	default:
		return nil
	}
}

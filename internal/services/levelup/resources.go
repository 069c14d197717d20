package levelup

import (
	"strings"

	"github.com/KirkDiggler/dnd-levelup/internal/domain/character"
	"github.com/KirkDiggler/dnd-levelup/internal/domain/shared"
)

// rescaleResources recomputes the class's resource pools for the new level
// and reconciles them against the character's positional resource slots.
// A provider-declared resource that cannot be matched or placed is a
// reported condition, not a fatal error: the slot is left untouched and the
// status asks for manual review.
func (s *service) rescaleResources(className string, newLevel int, scores map[shared.Attribute]int, existing []character.ResourceSlot) ([]character.ResourceSlot, RescaleStatus) {
	slots := make([]character.ResourceSlot, len(existing))
	copy(slots, existing)

	expected := s.provider.ClassResources(className, newLevel, scores)
	status := RescaleStatus{ExpectedCount: len(expected)}

	for _, resource := range expected {
		if slot := findSlotByName(slots, resource.Name); slot != nil {
			// Level-up fully replenishes resources, matching a long rest
			slot.Max = resource.Max
			slot.Current = resource.Max
			status.UpdatedCount++
			continue
		}

		if slot := firstEmptySlot(slots); slot != nil {
			slot.Name = resource.Name
			slot.Max = resource.Max
			slot.Current = resource.Max
			status.UpdatedCount++
			continue
		}

		status.NeedsManualReview = true
	}

	return slots, status
}

func findSlotByName(slots []character.ResourceSlot, name string) *character.ResourceSlot {
	for i := range slots {
		if strings.EqualFold(slots[i].Name, name) {
			return &slots[i]
		}
	}
	return nil
}

func firstEmptySlot(slots []character.ResourceSlot) *character.ResourceSlot {
	for i := range slots {
		if slots[i].Name == "" {
			return &slots[i]
		}
	}
	return nil
}

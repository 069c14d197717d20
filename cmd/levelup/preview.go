package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/KirkDiggler/dnd-levelup/internal/domain/character"
	"github.com/KirkDiggler/dnd-levelup/internal/domain/rulebook"
	"github.com/KirkDiggler/dnd-levelup/internal/domain/shared"
	"github.com/KirkDiggler/dnd-levelup/internal/services/levelup"
)

var (
	previewClass string
	previewLevel int
	previewRace  string
)

var previewCmd = &cobra.Command{
	Use:   "preview",
	Short: "Show what gaining a level grants",
	RunE:  runPreview,
}

func init() {
	previewCmd.Flags().StringVar(&previewClass, "class", "fighter", "class being leveled")
	previewCmd.Flags().IntVar(&previewLevel, "level", 1, "current level")
	previewCmd.Flags().StringVar(&previewRace, "race", "human", "character race")
}

func runPreview(cmd *cobra.Command, args []string) error {
	engine := levelup.NewService(&levelup.ServiceConfig{
		Provider: rulebook.NewStaticProvider(),
		Catalog:  rulebook.NewStaticCatalog(),
	})

	char := sampleCharacter(previewClass, previewLevel, previewRace)
	changes, err := engine.ComputeChanges(previewClass, previewLevel, previewLevel+1, char)
	if err != nil {
		return err
	}

	printChangeSet(cmd, changes)
	return nil
}

func printChangeSet(cmd *cobra.Command, changes *levelup.ChangeSet) {
	cmd.Printf("%s level %d\n", changes.Class, changes.Level)
	cmd.Printf("  Hit die:           d%d\n", changes.HitDie)
	cmd.Printf("  Proficiency bonus: +%d\n", changes.ProficiencyBonus)
	if len(changes.Features) > 0 {
		cmd.Printf("  Features:          %s\n", strings.Join(changes.Features, ", "))
	}
	if changes.HasASI {
		cmd.Println("  Ability score improvement (or feat)")
	}
	if changes.SubclassRequired {
		cmd.Println("  Subclass choice unlocks")
	}
	if changes.SpellSlots != nil {
		cmd.Printf("  Spell slots:       %s\n", formatSlots(changes.SpellSlots))
	}
	if changes.PactSlots != nil {
		cmd.Printf("  Pact slots:        %d x level %d\n", changes.PactSlots.Slots, changes.PactSlots.Level)
	}
	if rules := changes.SpellRules; rules != nil {
		if rules.IsPreparedCaster {
			cmd.Println("  Prepared caster: spell list refreshes daily, no picks here")
		} else if rules.NewSpells > 0 {
			cmd.Printf("  New spells:        %d (up to level %d)\n", rules.NewSpells, rules.MaxSpellLevel)
			if rules.CanSwap {
				cmd.Println("  One known spell may be swapped")
			}
		}
	}
	if rf := changes.RacialFeature; rf != nil {
		cmd.Printf("  Racial feature:    %s\n", rf.Name)
		if len(rf.Options) > 0 {
			cmd.Printf("    Options: %s\n", strings.Join(rf.Options, ", "))
		}
	}
}

func formatSlots(slots *[9]int) string {
	parts := make([]string, 0, 9)
	for i, count := range slots {
		if count > 0 {
			parts = append(parts, fmt.Sprintf("L%d:%d", i+1, count))
		}
	}
	if len(parts) == 0 {
		return "none"
	}
	return strings.Join(parts, " ")
}

// sampleCharacter builds a plausible character for rule inspection
func sampleCharacter(class string, level int, race string) *character.Character {
	classData, err := rulebook.NewStaticProvider().ClassData(class)
	hitDie := 8
	if err == nil {
		hitDie = classData.HitDie
	}

	char := &character.Character{
		ID:      "preview",
		OwnerID: "preview",
		Name:    "Preview",
		Race:    race,
		Level:   level,
		Classes: []character.ClassLevel{
			{Class: class, Level: level},
		},
		Attributes: map[shared.Attribute]*character.AbilityScore{
			shared.AttributeStrength:     character.NewAbilityScore(14),
			shared.AttributeDexterity:    character.NewAbilityScore(14),
			shared.AttributeConstitution: character.NewAbilityScore(14),
			shared.AttributeIntelligence: character.NewAbilityScore(14),
			shared.AttributeWisdom:       character.NewAbilityScore(14),
			shared.AttributeCharisma:     character.NewAbilityScore(14),
		},
		MaxHP:   hitDie + (level-1)*(hitDie/2+1+2) + 2,
		HitDice: character.HitDice{Size: hitDie, Total: level, Remaining: level},
	}
	char.CurrentHP = char.MaxHP
	char.EnsureResourceSlots()
	return char
}

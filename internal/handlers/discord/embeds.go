package discord

import (
	"fmt"
	"strings"

	"github.com/bwmarrin/discordgo"

	"github.com/KirkDiggler/dnd-levelup/internal/domain/character"
	"github.com/KirkDiggler/dnd-levelup/internal/domain/rulebook"
	"github.com/KirkDiggler/dnd-levelup/internal/services/levelup"
)

const (
	colorBlue  = 0x3498db
	colorGreen = 0x2ecc71
)

var decisionLabels = map[levelup.Decision]string{
	levelup.DecisionHPMethod:         "Hit points (`/levelup hp`)",
	levelup.DecisionSubclass:         "Subclass (`/levelup subclass`)",
	levelup.DecisionRacialFeature:    "Racial feature (`/levelup racial`)",
	levelup.DecisionASIOrFeat:        "Ability increase or feat (`/levelup asi` or `/levelup feat`)",
	levelup.DecisionSpells:           "Spell picks (`/levelup spells`)",
	levelup.DecisionMulticlassTarget: "Multiclass target (`/levelup path`)",
}

// buildChangesField summarizes what the new level grants
func buildChangesField(changes *levelup.ChangeSet) string {
	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("Hit die: d%d | Proficiency bonus: +%d\n", changes.HitDie, changes.ProficiencyBonus))
	if len(changes.Features) > 0 {
		sb.WriteString(fmt.Sprintf("Features: %s\n", strings.Join(changes.Features, ", ")))
	}
	if changes.HasASI {
		sb.WriteString("Ability score improvement (or feat)\n")
	}
	if changes.SubclassRequired {
		sb.WriteString("Subclass choice unlocks\n")
	}
	if changes.SpellSlots != nil {
		sb.WriteString(fmt.Sprintf("Spell slots: %s\n", formatSlots(changes.SpellSlots)))
	}
	if changes.PactSlots != nil {
		sb.WriteString(fmt.Sprintf("Pact slots: %d x level %d\n", changes.PactSlots.Slots, changes.PactSlots.Level))
	}
	if rules := changes.SpellRules; rules != nil && rules.NewSpells > 0 {
		sb.WriteString(fmt.Sprintf("New spells: %d (up to level %d)\n", rules.NewSpells, rules.MaxSpellLevel))
	}
	if rf := changes.RacialFeature; rf != nil {
		sb.WriteString(fmt.Sprintf("Racial feature: %s\n", rf.Name))
	}
	return sb.String()
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

// buildRequirementsField lists outstanding and completed decisions
func buildRequirementsField(reqs []levelup.Requirement) string {
	var sb strings.Builder
	for _, req := range reqs {
		if !req.Required {
			continue
		}
		label, ok := decisionLabels[req.Decision]
		if !ok {
			label = string(req.Decision)
		}
		mark := "⬜"
		if req.Satisfied {
			mark = "✅"
		}
		sb.WriteString(fmt.Sprintf("%s %s\n", mark, label))
	}
	if sb.Len() == 0 {
		return "Nothing to decide"
	}
	return sb.String()
}

// buildSessionEmbed renders the current state of a level-up session
func buildSessionEmbed(char *character.Character, sess *levelup.Session) *discordgo.MessageEmbed {
	changes := sess.Changes()

	embed := &discordgo.MessageEmbed{
		Title: fmt.Sprintf("⬆️ %s: %s %d → %d", char.Name, changes.Class, changes.Level-1, changes.Level),
		Color: colorBlue,
		Fields: []*discordgo.MessageEmbedField{
			{
				Name:   "This level grants",
				Value:  buildChangesField(changes),
				Inline: false,
			},
			{
				Name:   "Decisions",
				Value:  buildRequirementsField(sess.Requirements()),
				Inline: false,
			},
		},
	}

	if gain := sess.HPGain(); gain > 0 {
		embed.Fields = append(embed.Fields, &discordgo.MessageEmbedField{
			Name:   "HP gain",
			Value:  fmt.Sprintf("+%d", gain),
			Inline: true,
		})
	}
	if picks := sess.SelectedSpells(); len(picks) > 0 {
		embed.Fields = append(embed.Fields, &discordgo.MessageEmbedField{
			Name:   "Spell picks",
			Value:  strings.Join(picks, ", "),
			Inline: true,
		})
	}
	if sess.AllRequiredSatisfied() {
		embed.Footer = &discordgo.MessageEmbedFooter{
			Text: "All decisions made. Run /levelup confirm to apply.",
		}
	}

	return embed
}

// buildResultEmbed renders the character after a confirmed level-up
func buildResultEmbed(before, after *character.Character, result *levelup.LevelUpResult, rescale *levelup.RescaleStatus) *discordgo.MessageEmbed {
	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("**HP:** %d → %d (+%d, %s)\n", before.MaxHP, after.MaxHP, result.HPGain, result.HPMethod))
	if result.Subclass != "" {
		sb.WriteString(fmt.Sprintf("**Subclass:** %s\n", result.Subclass))
	}
	if result.Feat != "" {
		sb.WriteString(fmt.Sprintf("**Feat:** %s\n", result.Feat))
	}
	if len(result.ASI) > 0 {
		parts := make([]string, 0, len(result.ASI))
		for attr, bump := range result.ASI {
			parts = append(parts, fmt.Sprintf("%s +%d", attr.Name(), bump))
		}
		sb.WriteString(fmt.Sprintf("**Abilities:** %s\n", strings.Join(parts, ", ")))
	}
	if len(result.SpellsLearned) > 0 {
		sb.WriteString(fmt.Sprintf("**Spells learned:** %s\n", strings.Join(result.SpellsLearned, ", ")))
	}
	if swap := result.SpellSwapped; swap != nil {
		sb.WriteString(fmt.Sprintf("**Spell swapped:** %s → %s\n", swap.OldSpell, swap.NewSpell))
	}
	if result.RacialFeatureChoice != "" {
		sb.WriteString(fmt.Sprintf("**Racial feature:** %s\n", result.RacialFeatureChoice))
	}

	embed := &discordgo.MessageEmbed{
		Title:       fmt.Sprintf("🎉 %s is now level %d!", after.Name, after.Level),
		Description: sb.String(),
		Color:       colorGreen,
	}

	if rescale != nil && rescale.NeedsManualReview {
		embed.Fields = append(embed.Fields, &discordgo.MessageEmbedField{
			Name:  "⚠️ Resources need review",
			Value: "Not every class resource fit on the sheet. Check the resource slots by hand.",
		})
	}

	return embed
}

// buildSpellMenu renders spell candidates as a select menu. Discord caps
// select menus at 25 options, which is also the selector's page size.
func buildSpellMenu(candidates []rulebook.Spell) discordgo.SelectMenu {
	options := make([]discordgo.SelectMenuOption, 0, len(candidates))
	for _, spell := range candidates {
		options = append(options, discordgo.SelectMenuOption{
			Label:       spell.Name,
			Value:       spell.Name,
			Description: describeSpell(&spell),
		})
	}

	return discordgo.SelectMenu{
		CustomID:    customIDSpellSelect,
		Placeholder: "Pick a spell to learn",
		Options:     options,
	}
}

func describeSpell(spell *rulebook.Spell) string {
	level := "Cantrip"
	if spell.Level > 0 {
		level = fmt.Sprintf("Level %d", spell.Level)
	}
	if spell.School != "" {
		return fmt.Sprintf("%s %s", level, spell.School)
	}
	return level
}

package main

import (
	"fmt"
	"net/http"
	"sort"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/KirkDiggler/dnd-levelup/internal/clients/dnd5e"
	"github.com/KirkDiggler/dnd-levelup/internal/domain/rulebook"
)

var (
	spellsClass    string
	spellsMaxLevel int
	spellsSearch   string
	spellsLive     bool
)

var spellsCmd = &cobra.Command{
	Use:   "spells",
	Short: "List the spells a class can learn",
	RunE:  runSpells,
}

func init() {
	spellsCmd.Flags().StringVar(&spellsClass, "class", "wizard", "class spell list")
	spellsCmd.Flags().IntVar(&spellsMaxLevel, "max-level", -1, "highest spell level to include, -1 for all")
	spellsCmd.Flags().StringVar(&spellsSearch, "search", "", "filter spells by name")
	spellsCmd.Flags().BoolVar(&spellsLive, "live", false, "fetch from the D&D 5e API instead of the built-in catalog")
}

func runSpells(cmd *cobra.Command, args []string) error {
	spells, err := loadSpells()
	if err != nil {
		return err
	}

	if spellsSearch != "" {
		filtered := spells[:0]
		for _, spell := range spells {
			if strings.Contains(strings.ToLower(spell.Name), strings.ToLower(spellsSearch)) {
				filtered = append(filtered, spell)
			}
		}
		spells = filtered
	}

	if len(spells) == 0 {
		cmd.Println("No matching spells.")
		return nil
	}

	for _, spell := range spells {
		level := "Cantrip"
		if spell.Level > 0 {
			level = fmt.Sprintf("Level %d", spell.Level)
		}
		cmd.Printf("%-28s %-8s %s\n", spell.Name, level, spell.School)
	}
	cmd.Printf("%d spell(s)\n", len(spells))

	return nil
}

func loadSpells() ([]rulebook.Spell, error) {
	if spellsLive {
		client, err := dnd5e.New(&dnd5e.Config{
			HttpClient: &http.Client{
				Timeout: 30 * time.Second,
			},
		})
		if err != nil {
			return nil, err
		}
		return client.ImportClassSpells(spellsClass, spellsMaxLevel)
	}

	spells := rulebook.NewStaticCatalog().SpellsForClass(spellsClass)
	if spellsMaxLevel >= 0 {
		filtered := spells[:0]
		for _, spell := range spells {
			if spell.Level <= spellsMaxLevel {
				filtered = append(filtered, spell)
			}
		}
		spells = filtered
	}

	sort.Slice(spells, func(i, j int) bool {
		if spells[i].Level != spells[j].Level {
			return spells[i].Level < spells[j].Level
		}
		return spells[i].Name < spells[j].Name
	})

	return spells, nil
}

package main

import (
	"log"
	"net/http"
	"os"
	"time"

	"github.com/KirkDiggler/dnd-levelup/internal/clients/dnd5e"
	"github.com/KirkDiggler/dnd-levelup/internal/domain/rulebook"
)

// casterClasses are the classes whose spell lists are worth importing
var casterClasses = []string{
	"bard", "cleric", "druid", "paladin", "ranger", "sorcerer", "warlock", "wizard",
}

func rulebookProvider() rulebook.Provider {
	return rulebook.NewStaticProvider()
}

// buildCatalog imports spell lists from the D&D 5e API when enabled,
// falling back to the built-in catalog on any failure
func buildCatalog() rulebook.SpellCatalog {
	if os.Getenv("DND5E_LIVE_CATALOG") != "true" {
		return rulebook.NewStaticCatalog()
	}

	client, err := dnd5e.New(&dnd5e.Config{
		HttpClient: &http.Client{
			Timeout: 30 * time.Second,
		},
	})
	if err != nil {
		log.Printf("Failed to create D&D 5e client: %v", err)
		log.Println("Falling back to built-in spell catalog")
		return rulebook.NewStaticCatalog()
	}

	log.Println("Importing spell lists from the D&D 5e API")

	seen := make(map[string]bool)
	var spells []rulebook.Spell

	for _, class := range casterClasses {
		imported, importErr := client.ImportClassSpells(class, -1)
		if importErr != nil {
			log.Printf("Failed to import %s spells: %v", class, importErr)
			log.Println("Falling back to built-in spell catalog")
			return rulebook.NewStaticCatalog()
		}
		for _, spell := range imported {
			if seen[spell.Name] {
				continue
			}
			seen[spell.Name] = true
			spells = append(spells, spell)
		}
	}

	log.Printf("Imported %d spells", len(spells))

	return rulebook.NewCatalog(spells)
}

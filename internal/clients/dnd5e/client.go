// Package dnd5e fetches spell data from the D&D 5e API and converts it
// into the engine's catalog model, as an alternative to the embedded
// catalog.
package dnd5e

import (
	"fmt"
	"net/http"
	"sort"

	apiDnd5e "github.com/fadedpez/dnd5e-api/clients/dnd5e"
	apiEntities "github.com/fadedpez/dnd5e-api/entities"
	"golang.org/x/sync/errgroup"

	"github.com/KirkDiggler/dnd-levelup/internal/domain/rulebook"
	dnderr "github.com/KirkDiggler/dnd-levelup/internal/errors"
)

// fetchConcurrency bounds parallel spell detail requests
const fetchConcurrency = 4

// Client exposes the spell lookups the level-up engine can hydrate from
type Client interface {
	// GetSpell retrieves one spell by API key
	GetSpell(key string) (*rulebook.Spell, error)

	// ImportClassSpells fetches every spell of a class up to maxLevel;
	// pass a negative maxLevel for the full list
	ImportClassSpells(classKey string, maxLevel int) ([]rulebook.Spell, error)
}

// spellAPI is the slice of the dnd5e API interface this client uses
type spellAPI interface {
	ListSpells(input *apiDnd5e.ListSpellsInput) ([]*apiEntities.ReferenceItem, error)
	GetSpell(key string) (*apiEntities.Spell, error)
}

type client struct {
	api spellAPI
}

// Config holds the client dependencies
type Config struct {
	HttpClient *http.Client
}

// New creates a D&D 5e API client
func New(cfg *Config) (Client, error) {
	if cfg == nil {
		return nil, dnderr.InvalidArgument("cfg is required")
	}

	api, err := apiDnd5e.NewDND5eAPI(&apiDnd5e.DND5eAPIConfig{
		Client: cfg.HttpClient,
	})
	if err != nil {
		return nil, err
	}

	return &client{api: api}, nil
}

func (c *client) GetSpell(key string) (*rulebook.Spell, error) {
	apiSpell, err := c.api.GetSpell(key)
	if err != nil {
		return nil, fmt.Errorf("failed to get spell %s: %w", key, err)
	}

	spell := convertSpell(apiSpell)
	return &spell, nil
}

func (c *client) ImportClassSpells(classKey string, maxLevel int) ([]rulebook.Spell, error) {
	refs, err := c.api.ListSpells(&apiDnd5e.ListSpellsInput{
		Class: classKey,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to list spells for class %s: %w", classKey, err)
	}

	// The list endpoint only returns references; fan out for the details
	g := new(errgroup.Group)
	g.SetLimit(fetchConcurrency)
	fetched := make([]*apiEntities.Spell, len(refs))
	for i, ref := range refs {
		i, ref := i, ref
		g.Go(func() error {
			apiSpell, err := c.api.GetSpell(ref.Key)
			if err != nil {
				return fmt.Errorf("failed to get spell %s: %w", ref.Key, err)
			}
			fetched[i] = apiSpell
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	spells := make([]rulebook.Spell, 0, len(fetched))
	for _, apiSpell := range fetched {
		if maxLevel >= 0 && apiSpell.SpellLevel > maxLevel {
			continue
		}
		spells = append(spells, convertSpell(apiSpell))
	}

	sort.Slice(spells, func(i, j int) bool {
		if spells[i].Level != spells[j].Level {
			return spells[i].Level < spells[j].Level
		}
		return spells[i].Name < spells[j].Name
	})

	return spells, nil
}

// convertSpell maps an API spell onto the engine's catalog model
func convertSpell(apiSpell *apiEntities.Spell) rulebook.Spell {
	spell := rulebook.Spell{
		Name:          apiSpell.Name,
		Level:         apiSpell.SpellLevel,
		Concentration: apiSpell.Concentration,
		Classes:       extractClassKeys(apiSpell.SpellClasses),
	}
	if apiSpell.SpellSchool != nil {
		spell.School = apiSpell.SpellSchool.Name
	}
	return spell
}

func extractClassKeys(refs []*apiEntities.ReferenceItem) []string {
	keys := make([]string, len(refs))
	for i, ref := range refs {
		keys[i] = ref.Key
	}
	return keys
}

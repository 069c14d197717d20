package rulebook

import "strings"

// Spell is one immutable record of the spell catalog
type Spell struct {
	Name          string   `json:"name"`
	Level         int      `json:"level"` // 0 for cantrips
	School        string   `json:"school"`
	Classes       []string `json:"classes"`
	Tags          []string `json:"tags,omitempty"`
	Concentration bool     `json:"concentration,omitempty"`
}

// ForClass reports whether the spell is on the named class's list
func (s *Spell) ForClass(class string) bool {
	for _, c := range s.Classes {
		if strings.EqualFold(c, class) {
			return true
		}
	}
	return false
}

// Matches reports whether a case-insensitive search term matches the
// spell's name, school, or any tag
func (s *Spell) Matches(term string) bool {
	if term == "" {
		return true
	}
	term = strings.ToLower(term)
	if strings.Contains(strings.ToLower(s.Name), term) {
		return true
	}
	if strings.Contains(strings.ToLower(s.School), term) {
		return true
	}
	for _, tag := range s.Tags {
		if strings.Contains(strings.ToLower(tag), term) {
			return true
		}
	}
	return false
}

// SpellCatalog is the read-only boundary with the spell list
type SpellCatalog interface {
	// SpellsForClass returns every catalog spell on the class's list
	SpellsForClass(class string) []Spell

	// SpellByName returns the named spell, nil if absent
	SpellByName(name string) *Spell
}

// StaticCatalog implements SpellCatalog over an in-memory spell list
type StaticCatalog struct {
	spells []Spell
}

// NewStaticCatalog creates a catalog over the embedded spell list
func NewStaticCatalog() *StaticCatalog {
	return &StaticCatalog{spells: catalogSpells}
}

// NewCatalog creates a catalog over a caller-provided spell list
func NewCatalog(spells []Spell) *StaticCatalog {
	return &StaticCatalog{spells: spells}
}

var _ SpellCatalog = (*StaticCatalog)(nil)

// SpellsForClass returns every catalog spell on the class's list
func (c *StaticCatalog) SpellsForClass(class string) []Spell {
	var out []Spell
	for _, s := range c.spells {
		if s.ForClass(class) {
			out = append(out, s)
		}
	}
	return out
}

// SpellByName returns the named spell, nil if absent
func (c *StaticCatalog) SpellByName(name string) *Spell {
	for i := range c.spells {
		if strings.EqualFold(c.spells[i].Name, name) {
			return &c.spells[i]
		}
	}
	return nil
}

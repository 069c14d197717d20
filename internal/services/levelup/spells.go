package levelup

import (
	"sort"
	"strings"

	"github.com/KirkDiggler/dnd-levelup/internal/domain/rulebook"
	dnderr "github.com/KirkDiggler/dnd-levelup/internal/errors"
)

// AllSpellLevels disables the level filter when passed to FilterCandidates
const AllSpellLevels = -1

// candidatePageSize bounds the filtered candidate list to the UI display
// limit (a Discord select menu holds at most 25 options)
const candidatePageSize = 25

// SpellSelector collects spell picks for one level-up. It enforces the
// known-spell exclusion, the selection-count cap, and the optional single
// spell swap.
type SpellSelector struct {
	catalog  rulebook.SpellCatalog
	rules    *SpellLearningRules
	known    map[string]bool
	selected []string
	swap     *SpellSwap
}

func newSpellSelector(catalog rulebook.SpellCatalog, rules *SpellLearningRules, knownSpells []string) *SpellSelector {
	known := make(map[string]bool, len(knownSpells))
	for _, name := range knownSpells {
		known[strings.ToLower(name)] = true
	}
	return &SpellSelector{
		catalog: catalog,
		rules:   rules,
		known:   known,
	}
}

// FilterCandidates returns the eligible spells matching the search term and
// level filter, ordered by ascending spell level then name, capped to the
// display page size. The underlying filter is unbounded and restartable.
func (sel *SpellSelector) FilterCandidates(searchTerm string, levelFilter int) []rulebook.Spell {
	var out []rulebook.Spell
	for _, spell := range sel.catalog.SpellsForClass(sel.rules.ClassName) {
		if spell.Level > sel.rules.MaxSpellLevel {
			continue
		}
		if sel.known[strings.ToLower(spell.Name)] {
			continue
		}
		if !spell.Matches(searchTerm) {
			continue
		}
		if levelFilter != AllSpellLevels && spell.Level != levelFilter {
			continue
		}
		out = append(out, spell)
	}

	sort.Slice(out, func(i, j int) bool {
		if out[i].Level != out[j].Level {
			return out[i].Level < out[j].Level
		}
		return out[i].Name < out[j].Name
	})

	if len(out) > candidatePageSize {
		out = out[:candidatePageSize]
	}
	return out
}

// Selected returns the current picks in selection order
func (sel *SpellSelector) Selected() []string {
	return append([]string(nil), sel.selected...)
}

// Swap returns the pending swap, nil if none
func (sel *SpellSelector) Swap() *SpellSwap {
	if sel.swap == nil {
		return nil
	}
	copied := *sel.swap
	return &copied
}

// Select adds a spell pick. The offending input is rejected with no state
// change once the selection count reaches the required spell count.
func (sel *SpellSelector) Select(name string) error {
	if len(sel.selected) >= sel.rules.NewSpells {
		return dnderr.InvalidArgumentf("spell selection limit of %d reached", sel.rules.NewSpells).
			WithMeta("limit", sel.rules.NewSpells)
	}

	spell, err := sel.eligibleCandidate(name)
	if err != nil {
		return err
	}
	for _, picked := range sel.selected {
		if strings.EqualFold(picked, spell.Name) {
			return dnderr.AlreadyExists("spell already selected").WithMeta("spell", spell.Name)
		}
	}

	sel.selected = append(sel.selected, spell.Name)
	return nil
}

// Deselect removes a previous pick
func (sel *SpellSelector) Deselect(name string) error {
	for i, picked := range sel.selected {
		if strings.EqualFold(picked, name) {
			sel.selected = append(sel.selected[:i], sel.selected[i+1:]...)
			return nil
		}
	}
	return dnderr.NotFoundf("spell '%s' is not selected", name)
}

// TrySwap exchanges one known spell for one candidate spell. The swap is
// independent of the selection cap: it is net-neutral on the learned count.
func (sel *SpellSelector) TrySwap(oldSpell, newSpell string) error {
	if !sel.rules.CanSwap {
		return dnderr.InvalidArgumentf("%s cannot swap spells at this level", sel.rules.ClassName)
	}
	if !sel.known[strings.ToLower(oldSpell)] {
		return dnderr.NotFoundf("spell '%s' is not known", oldSpell)
	}

	spell, err := sel.eligibleCandidate(newSpell)
	if err != nil {
		return err
	}
	for _, picked := range sel.selected {
		if strings.EqualFold(picked, spell.Name) {
			return dnderr.AlreadyExists("spell already selected as a new pick").WithMeta("spell", spell.Name)
		}
	}

	sel.swap = &SpellSwap{OldSpell: oldSpell, NewSpell: spell.Name}
	return nil
}

// ClearSwap drops the pending swap
func (sel *SpellSelector) ClearSwap() {
	sel.swap = nil
}

// eligibleCandidate validates a pick against the candidate predicate
func (sel *SpellSelector) eligibleCandidate(name string) (*rulebook.Spell, error) {
	spell := sel.catalog.SpellByName(name)
	if spell == nil {
		return nil, dnderr.NotFoundf("unknown spell '%s'", name)
	}
	if !spell.ForClass(sel.rules.ClassName) {
		return nil, dnderr.InvalidArgumentf("'%s' is not a %s spell", spell.Name, sel.rules.ClassName)
	}
	if spell.Level > sel.rules.MaxSpellLevel {
		return nil, dnderr.InvalidArgumentf("'%s' is level %d, above the maximum castable level %d", spell.Name, spell.Level, sel.rules.MaxSpellLevel)
	}
	if sel.known[strings.ToLower(spell.Name)] {
		return nil, dnderr.AlreadyExists("spell is already known").WithMeta("spell", spell.Name)
	}
	return spell, nil
}

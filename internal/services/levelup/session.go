package levelup

import (
	"github.com/KirkDiggler/dnd-levelup/internal/domain/character"
	"github.com/KirkDiggler/dnd-levelup/internal/domain/rulebook"
	"github.com/KirkDiggler/dnd-levelup/internal/domain/shared"
	dnderr "github.com/KirkDiggler/dnd-levelup/internal/errors"
)

// Decision identifies one independent choice point in a level-up
type Decision string

const (
	DecisionHPMethod         Decision = "hp_method"
	DecisionSubclass         Decision = "subclass"
	DecisionRacialFeature    Decision = "racial_feature"
	DecisionASIOrFeat        Decision = "asi_or_feat"
	DecisionSpells           Decision = "spells"
	DecisionMulticlassTarget Decision = "multiclass_target"
)

// Requirement reports whether one decision is required and satisfied
type Requirement struct {
	Decision  Decision `json:"decision"`
	Required  bool     `json:"required"`
	Satisfied bool     `json:"satisfied"`
}

// Command is a typed level-up decision applied to a session. Every UI
// interaction becomes one of these; the engine owns no rendering state.
type Command interface {
	isCommand()
}

// SetHPGain records an externally produced HP gain (e.g. a table roll)
type SetHPGain struct {
	Gain   int
	Method HPMethod
}

// RollHP rolls the class hit die and applies the Constitution modifier
type RollHP struct{}

// UseAverageHP takes the fixed average hit-die value plus Constitution modifier
type UseAverageHP struct{}

// ChoosePath selects between continuing the class and multiclassing
type ChoosePath struct {
	Path        PathChoice
	TargetClass string
}

// SelectSubclass picks the subclass unlocking at this level
type SelectSubclass struct {
	Subclass string
}

// SelectRacialOption picks one option of a racial feature unlocking now
type SelectRacialOption struct {
	Option string
}

// SetASI allocates the +2 ability score improvement; clears any feat pick
type SetASI struct {
	Allocation map[shared.Attribute]int
}

// SelectFeat takes a feat instead of the ASI; clears any ASI allocation
type SelectFeat struct {
	Feat string
}

// SelectSpell adds a spell pick
type SelectSpell struct {
	Spell string
}

// DeselectSpell removes a spell pick
type DeselectSpell struct {
	Spell string
}

// SwapSpell exchanges one known spell for one candidate spell
type SwapSpell struct {
	OldSpell string
	NewSpell string
}

func (SetHPGain) isCommand()          {}
func (RollHP) isCommand()             {}
func (UseAverageHP) isCommand()       {}
func (ChoosePath) isCommand()         {}
func (SelectSubclass) isCommand()     {}
func (SelectRacialOption) isCommand() {}
func (SetASI) isCommand()             {}
func (SelectFeat) isCommand()         {}
func (SelectSpell) isCommand()        {}
func (DeselectSpell) isCommand()      {}
func (SwapSpell) isCommand()          {}

// Session collects the decisions of one level-up attempt. It is owned by
// the caller for the attempt's lifetime; decisions can be freely revised
// until the completion gate reports satisfied and the result is applied.
type Session struct {
	svc  *service
	char *character.Character

	changes *ChangeSet

	path        PathChoice
	targetClass string

	hpGain   int
	hpMethod HPMethod

	subclass     string
	racialChoice string

	asi  map[shared.Attribute]int
	feat string

	spells *SpellSelector
}

// Character returns the snapshot the session was started from
func (sess *Session) Character() *character.Character {
	return sess.char
}

// Changes returns the current ChangeSet for the chosen path
func (sess *Session) Changes() *ChangeSet {
	return sess.changes
}

// Path returns the chosen path and multiclass target
func (sess *Session) Path() (PathChoice, string) {
	return sess.path, sess.targetClass
}

// HPGain returns the currently recorded HP gain, 0 if undecided
func (sess *Session) HPGain() int {
	return sess.hpGain
}

// SpellCandidates filters the eligible spells for the current picks
func (sess *Session) SpellCandidates(searchTerm string, levelFilter int) []rulebook.Spell {
	if sess.spells == nil {
		return nil
	}
	return sess.spells.FilterCandidates(searchTerm, levelFilter)
}

// SelectedSpells returns the current spell picks
func (sess *Session) SelectedSpells() []string {
	if sess.spells == nil {
		return nil
	}
	return sess.spells.Selected()
}

// recompute rebuilds the ChangeSet for the current path and resets every
// collected decision: the decision context changes with the path.
func (sess *Session) recompute() error {
	className := sess.char.Class()
	fromLevel := sess.char.Classes[0].Level
	if sess.path == PathMulticlass {
		className = sess.targetClass
		fromLevel = 0
	}

	changes, err := sess.svc.ComputeChanges(className, fromLevel, fromLevel+1, sess.char)
	if err != nil {
		return err
	}

	sess.changes = changes
	sess.hpGain = 0
	sess.hpMethod = ""
	sess.subclass = ""
	sess.racialChoice = ""
	sess.asi = nil
	sess.feat = ""
	sess.spells = nil

	if changes.SpellRules != nil {
		knownNames := make([]string, 0, len(sess.char.Spells))
		for _, s := range sess.char.Spells {
			knownNames = append(knownNames, s.Name)
		}
		sess.spells = newSpellSelector(sess.svc.catalog, changes.SpellRules, knownNames)
	}

	return nil
}

// Apply runs one typed command against the session. Illegal inputs are
// rejected at the point of selection with no state change.
func (sess *Session) Apply(cmd Command) error {
	switch c := cmd.(type) {
	case SetHPGain:
		return sess.setHPGain(c.Gain, c.Method)
	case RollHP:
		return sess.rollHP()
	case UseAverageHP:
		return sess.useAverageHP()
	case ChoosePath:
		return sess.choosePath(c.Path, c.TargetClass)
	case SelectSubclass:
		return sess.selectSubclass(c.Subclass)
	case SelectRacialOption:
		return sess.selectRacialOption(c.Option)
	case SetASI:
		return sess.setASI(c.Allocation)
	case SelectFeat:
		return sess.selectFeat(c.Feat)
	case SelectSpell:
		return sess.applySpellCommand(func() error { return sess.spells.Select(c.Spell) })
	case DeselectSpell:
		return sess.applySpellCommand(func() error { return sess.spells.Deselect(c.Spell) })
	case SwapSpell:
		return sess.applySpellCommand(func() error { return sess.spells.TrySwap(c.OldSpell, c.NewSpell) })
	default:
		return dnderr.InvalidArgumentf("unknown command %T", cmd)
	}
}

func (sess *Session) setHPGain(gain int, method HPMethod) error {
	if gain <= 0 {
		return dnderr.InvalidArgumentf("HP gain must be positive, got %d", gain)
	}
	maxGain := sess.changes.HitDie
	if mod := conModifier(sess.char); mod > 0 {
		maxGain += mod
	}
	if gain > maxGain {
		return dnderr.InvalidArgumentf("HP gain %d exceeds maximum possible %d", gain, maxGain)
	}

	sess.hpGain = gain
	sess.hpMethod = method
	return nil
}

func (sess *Session) rollHP() error {
	roll, err := sess.svc.roller.Roll(1, sess.changes.HitDie, conModifier(sess.char))
	if err != nil {
		return dnderr.Wrap(err, "failed to roll hit die")
	}

	gain := roll.Total
	if gain < 1 {
		gain = 1
	}
	sess.hpGain = gain
	sess.hpMethod = HPMethodRoll
	return nil
}

func (sess *Session) useAverageHP() error {
	sess.hpGain = averageHPGain(sess.changes.HitDie, conModifier(sess.char))
	sess.hpMethod = HPMethodAverage
	return nil
}

func (sess *Session) choosePath(path PathChoice, targetClass string) error {
	resolution, err := sess.svc.ResolvePath(sess.char, path, targetClass)
	if err != nil {
		return err
	}
	if !resolution.OK {
		return dnderr.Prerequisite("multiclass prerequisites not met", resolution.MissingPrereqs).
			WithMeta("class", targetClass)
	}

	sess.path = path
	sess.targetClass = ""
	if path == PathMulticlass {
		sess.targetClass = targetClass
	}
	return sess.recompute()
}

func (sess *Session) selectSubclass(subclass string) error {
	if !sess.changes.SubclassRequired {
		return dnderr.InvalidArgument("no subclass selection at this level")
	}

	options, err := sess.svc.provider.SubclassOptions(sess.changes.Class)
	if err != nil {
		return err
	}
	for _, option := range options {
		if option.Key == subclass || option.Name == subclass {
			sess.subclass = option.Key
			return nil
		}
	}
	return dnderr.NotFoundf("unknown %s subclass '%s'", sess.changes.Class, subclass)
}

func (sess *Session) selectRacialOption(option string) error {
	feature := sess.changes.RacialFeature
	if feature == nil || len(feature.Options) == 0 {
		return dnderr.InvalidArgument("no racial feature choice at this level")
	}
	for _, candidate := range feature.Options {
		if candidate == option {
			sess.racialChoice = option
			return nil
		}
	}
	return dnderr.NotFoundf("'%s' is not an option of %s", option, feature.Name)
}

func (sess *Session) setASI(allocation map[shared.Attribute]int) error {
	if !sess.changes.HasASI {
		return dnderr.InvalidArgument("no ability score improvement at this level")
	}

	total := 0
	for attr, delta := range allocation {
		if delta != 1 && delta != 2 {
			return dnderr.InvalidArgumentf("ability increase for %s must be 1 or 2, got %d", attr.Name(), delta)
		}
		score, ok := sess.char.Attributes[attr]
		if !ok || score == nil {
			return dnderr.InvalidArgumentf("unknown ability '%s'", attr)
		}
		if score.Score+delta > character.MaxAbilityScore {
			return dnderr.InvalidArgumentf("%s cannot rise above %d", attr.Name(), character.MaxAbilityScore)
		}
		total += delta
	}
	if total != 2 {
		return dnderr.InvalidArgumentf("ability increases must total exactly 2, got %d", total)
	}

	copied := make(map[shared.Attribute]int, len(allocation))
	for attr, delta := range allocation {
		copied[attr] = delta
	}
	sess.asi = copied
	sess.feat = ""
	return nil
}

func (sess *Session) selectFeat(name string) error {
	if !sess.changes.HasASI {
		return dnderr.InvalidArgument("no feat choice at this level")
	}

	feat, err := sess.svc.provider.FeatData(name)
	if err != nil {
		return err
	}
	if sess.char.HasFeat(feat.Name) {
		return dnderr.AlreadyExists("feat already taken").WithMeta("feat", feat.Name)
	}

	sess.feat = feat.Name
	sess.asi = nil
	return nil
}

func (sess *Session) applySpellCommand(fn func() error) error {
	if sess.spells == nil {
		return dnderr.InvalidArgument("no spell learning at this level")
	}
	return fn()
}

// Requirements reports each decision's required/satisfied state. It is a
// pure query, recomputed from current session state on every call.
func (sess *Session) Requirements() []Requirement {
	feature := sess.changes.RacialFeature
	racialRequired := feature != nil && len(feature.Options) > 1

	spellsRequired := sess.changes.SpellRules != nil
	spellsSatisfied := true
	if spellsRequired {
		spellsSatisfied = len(sess.spells.selected) == sess.changes.SpellRules.NewSpells
	}

	return []Requirement{
		{
			Decision:  DecisionHPMethod,
			Required:  true,
			Satisfied: sess.hpGain > 0,
		},
		{
			Decision:  DecisionSubclass,
			Required:  sess.changes.SubclassRequired,
			Satisfied: !sess.changes.SubclassRequired || sess.subclass != "",
		},
		{
			Decision:  DecisionRacialFeature,
			Required:  racialRequired,
			Satisfied: !racialRequired || sess.racialChoice != "",
		},
		{
			Decision:  DecisionASIOrFeat,
			Required:  sess.changes.HasASI,
			Satisfied: !sess.changes.HasASI || sess.asi != nil || sess.feat != "",
		},
		{
			Decision:  DecisionSpells,
			Required:  spellsRequired,
			Satisfied: spellsSatisfied,
		},
		{
			Decision:  DecisionMulticlassTarget,
			Required:  sess.path == PathMulticlass,
			Satisfied: sess.path != PathMulticlass || sess.targetClass != "",
		},
	}
}

// AllRequiredSatisfied is the completion gate: true once every required
// decision is satisfied. Callers use it to enable the confirm action.
func (sess *Session) AllRequiredSatisfied() bool {
	for _, req := range sess.Requirements() {
		if req.Required && !req.Satisfied {
			return false
		}
	}
	return true
}

// BuildResult assembles the validated LevelUpResult. It fails while any
// required decision is unsatisfied; only its output may reach Apply.
func (sess *Session) BuildResult() (*LevelUpResult, error) {
	var missing []string
	for _, req := range sess.Requirements() {
		if req.Required && !req.Satisfied {
			missing = append(missing, string(req.Decision))
		}
	}
	if len(missing) > 0 {
		return nil, dnderr.Validation("level-up selections incomplete").
			WithMeta("missing", missing)
	}

	result := &LevelUpResult{
		NewLevel:            sess.char.Level + 1,
		HPGain:              sess.hpGain,
		HPMethod:            sess.hpMethod,
		Subclass:            sess.subclass,
		RacialFeatureChoice: sess.racialChoice,
		Feat:                sess.feat,
		Path:                sess.path,
		NewClass:            sess.targetClass,
	}

	if sess.asi != nil {
		result.ASI = make(map[shared.Attribute]int, len(sess.asi))
		for attr, delta := range sess.asi {
			result.ASI[attr] = delta
		}
	}
	if sess.spells != nil {
		result.SpellsLearned = sess.spells.Selected()
		result.SpellSwapped = sess.spells.Swap()
	}

	return result, nil
}

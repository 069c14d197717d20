// Package discord wires the level-up engine to Discord slash commands.
// Every interaction is translated into one engine command; rendering state
// lives here, decision state lives in the session.
package discord

import (
	"context"
	"fmt"
	"log"
	"strings"

	"github.com/bwmarrin/discordgo"

	"github.com/KirkDiggler/dnd-levelup/internal/domain/shared"
	dnderr "github.com/KirkDiggler/dnd-levelup/internal/errors"
	"github.com/KirkDiggler/dnd-levelup/internal/repositories/characters"
	"github.com/KirkDiggler/dnd-levelup/internal/services/levelup"
)

const (
	commandName = "levelup"

	customIDSpellSelect = "levelup:spell_select"
)

// Handler handles all Discord interactions for the level-up flow
type Handler struct {
	repo     characters.Repository
	engine   levelup.Service
	sessions *sessionStore
}

// HandlerConfig holds configuration for the Discord handler
type HandlerConfig struct {
	Repository characters.Repository
	Engine     levelup.Service
}

// NewHandler creates a new Discord handler
func NewHandler(cfg *HandlerConfig) *Handler {
	if cfg == nil {
		panic("handler config is required")
	}
	if cfg.Repository == nil {
		panic("character repository is required")
	}
	if cfg.Engine == nil {
		panic("level-up engine is required")
	}

	return &Handler{
		repo:     cfg.Repository,
		engine:   cfg.Engine,
		sessions: newSessionStore(),
	}
}

// RegisterCommands registers the levelup slash command. When guildID is
// empty the command is registered globally.
func (h *Handler) RegisterCommands(s *discordgo.Session, appID, guildID string) error {
	command := &discordgo.ApplicationCommand{
		Name:        commandName,
		Description: "Level up a character",
		Options: []*discordgo.ApplicationCommandOption{
			{
				Type:        discordgo.ApplicationCommandOptionSubCommand,
				Name:        "start",
				Description: "Start a level-up for one of your characters",
				Options: []*discordgo.ApplicationCommandOption{
					{
						Type:        discordgo.ApplicationCommandOptionString,
						Name:        "character_id",
						Description: "The character to level up",
						Required:    true,
					},
				},
			},
			{
				Type:        discordgo.ApplicationCommandOptionSubCommand,
				Name:        "path",
				Description: "Continue your class or multiclass",
				Options: []*discordgo.ApplicationCommandOption{
					{
						Type:        discordgo.ApplicationCommandOptionString,
						Name:        "path",
						Description: "Which path to take",
						Required:    true,
						Choices: []*discordgo.ApplicationCommandOptionChoice{
							{Name: "Continue current class", Value: string(levelup.PathContinue)},
							{Name: "Multiclass", Value: string(levelup.PathMulticlass)},
						},
					},
					{
						Type:        discordgo.ApplicationCommandOptionString,
						Name:        "class",
						Description: "Target class when multiclassing",
					},
				},
			},
			{
				Type:        discordgo.ApplicationCommandOptionSubCommand,
				Name:        "hp",
				Description: "Decide this level's hit point gain",
				Options: []*discordgo.ApplicationCommandOption{
					{
						Type:        discordgo.ApplicationCommandOptionString,
						Name:        "method",
						Description: "How to determine the gain",
						Required:    true,
						Choices: []*discordgo.ApplicationCommandOptionChoice{
							{Name: "Take the average", Value: string(levelup.HPMethodAverage)},
							{Name: "Roll the hit die", Value: string(levelup.HPMethodRoll)},
						},
					},
				},
			},
			{
				Type:        discordgo.ApplicationCommandOptionSubCommand,
				Name:        "asi",
				Description: "Allocate the +2 ability score improvement",
				Options: []*discordgo.ApplicationCommandOption{
					{
						Type:        discordgo.ApplicationCommandOptionString,
						Name:        "first",
						Description: "First ability (+1)",
						Required:    true,
						Choices:     abilityChoices(),
					},
					{
						Type:        discordgo.ApplicationCommandOptionString,
						Name:        "second",
						Description: "Second ability (+1, may match the first)",
						Required:    true,
						Choices:     abilityChoices(),
					},
				},
			},
			{
				Type:        discordgo.ApplicationCommandOptionSubCommand,
				Name:        "feat",
				Description: "Take a feat instead of the ability score improvement",
				Options: []*discordgo.ApplicationCommandOption{
					{
						Type:        discordgo.ApplicationCommandOptionString,
						Name:        "name",
						Description: "Feat name",
						Required:    true,
					},
				},
			},
			{
				Type:        discordgo.ApplicationCommandOptionSubCommand,
				Name:        "subclass",
				Description: "Pick the subclass unlocking at this level",
				Options: []*discordgo.ApplicationCommandOption{
					{
						Type:        discordgo.ApplicationCommandOptionString,
						Name:        "name",
						Description: "Subclass name",
						Required:    true,
					},
				},
			},
			{
				Type:        discordgo.ApplicationCommandOptionSubCommand,
				Name:        "racial",
				Description: "Pick a racial feature option unlocking at this level",
				Options: []*discordgo.ApplicationCommandOption{
					{
						Type:        discordgo.ApplicationCommandOptionString,
						Name:        "option",
						Description: "Feature option",
						Required:    true,
					},
				},
			},
			{
				Type:        discordgo.ApplicationCommandOptionSubCommand,
				Name:        "spells",
				Description: "Browse and pick new spells",
				Options: []*discordgo.ApplicationCommandOption{
					{
						Type:        discordgo.ApplicationCommandOptionString,
						Name:        "search",
						Description: "Filter spells by name",
					},
					{
						Type:        discordgo.ApplicationCommandOptionInteger,
						Name:        "level",
						Description: "Filter spells by level",
					},
				},
			},
			{
				Type:        discordgo.ApplicationCommandOptionSubCommand,
				Name:        "status",
				Description: "Show the current level-up state",
			},
			{
				Type:        discordgo.ApplicationCommandOptionSubCommand,
				Name:        "confirm",
				Description: "Apply the completed level-up",
			},
			{
				Type:        discordgo.ApplicationCommandOptionSubCommand,
				Name:        "cancel",
				Description: "Abandon the in-progress level-up",
			},
		},
	}

	_, err := s.ApplicationCommandCreate(appID, guildID, command)
	if err != nil {
		return fmt.Errorf("failed to register %s command: %w", commandName, err)
	}

	return nil
}

// HandleInteraction is the discordgo InteractionCreate handler
func (h *Handler) HandleInteraction(s *discordgo.Session, i *discordgo.InteractionCreate) {
	switch i.Type {
	case discordgo.InteractionApplicationCommand:
		if i.ApplicationCommandData().Name == commandName {
			h.handleCommand(s, i)
		}
	case discordgo.InteractionMessageComponent:
		if i.MessageComponentData().CustomID == customIDSpellSelect {
			h.handleSpellSelect(s, i)
		}
	}
}

func (h *Handler) handleCommand(s *discordgo.Session, i *discordgo.InteractionCreate) {
	userID := interactionUserID(i)
	if userID == "" {
		respondEphemeral(s, i, "❌ Could not identify you from this interaction.")
		return
	}

	options := i.ApplicationCommandData().Options
	if len(options) == 0 {
		return
	}
	sub := options[0]
	opts := optionMap(sub.Options)

	var (
		embed *discordgo.MessageEmbed
		err   error
	)

	switch sub.Name {
	case "start":
		embed, err = h.startLevelUp(context.Background(), userID, stringOption(opts, "character_id"))
	case "path":
		embed, err = h.applyCommand(userID, levelup.ChoosePath{
			Path:        levelup.PathChoice(stringOption(opts, "path")),
			TargetClass: stringOption(opts, "class"),
		})
	case "hp":
		embed, err = h.decideHP(userID, levelup.HPMethod(stringOption(opts, "method")))
	case "asi":
		embed, err = h.allocateASI(userID, stringOption(opts, "first"), stringOption(opts, "second"))
	case "feat":
		embed, err = h.applyCommand(userID, levelup.SelectFeat{Feat: stringOption(opts, "name")})
	case "subclass":
		embed, err = h.applyCommand(userID, levelup.SelectSubclass{Subclass: stringOption(opts, "name")})
	case "racial":
		embed, err = h.applyCommand(userID, levelup.SelectRacialOption{Option: stringOption(opts, "option")})
	case "spells":
		h.showSpells(s, i, userID, stringOption(opts, "search"), intOption(opts, "level", levelup.AllSpellLevels))
		return
	case "status":
		embed, err = h.sessionStatus(userID)
	case "confirm":
		embed, err = h.confirmLevelUp(context.Background(), userID)
	case "cancel":
		h.sessions.Delete(userID)
		respondEphemeral(s, i, "Level-up cancelled.")
		return
	default:
		return
	}

	if err != nil {
		respondEphemeral(s, i, fmt.Sprintf("❌ %s", userMessage(err)))
		return
	}

	respondEmbed(s, i, embed)
}

// startLevelUp loads the character, verifies ownership, and opens a session
func (h *Handler) startLevelUp(ctx context.Context, userID, characterID string) (*discordgo.MessageEmbed, error) {
	if characterID == "" {
		return nil, dnderr.InvalidArgument("character_id is required")
	}

	char, err := h.repo.Get(ctx, characterID)
	if err != nil {
		return nil, err
	}
	if char.OwnerID != userID {
		return nil, dnderr.NotFoundf("character '%s' not found", characterID)
	}

	sess, err := h.engine.StartSession(char)
	if err != nil {
		return nil, err
	}

	h.sessions.Put(userID, &activeSession{CharacterID: char.ID, Session: sess})

	return buildSessionEmbed(char, sess), nil
}

// applyCommand runs one engine command against the user's open session
func (h *Handler) applyCommand(userID string, cmd levelup.Command) (*discordgo.MessageEmbed, error) {
	active, ok := h.sessions.Get(userID)
	if !ok {
		return nil, dnderr.NotFound("no level-up in progress; run /levelup start first")
	}

	if err := active.Session.Apply(cmd); err != nil {
		return nil, err
	}

	return buildSessionEmbed(active.Session.Character(), active.Session), nil
}

func (h *Handler) decideHP(userID string, method levelup.HPMethod) (*discordgo.MessageEmbed, error) {
	switch method {
	case levelup.HPMethodAverage:
		return h.applyCommand(userID, levelup.UseAverageHP{})
	case levelup.HPMethodRoll:
		return h.applyCommand(userID, levelup.RollHP{})
	default:
		return nil, dnderr.InvalidArgumentf("unknown hp method '%s'", method)
	}
}

func (h *Handler) allocateASI(userID, first, second string) (*discordgo.MessageEmbed, error) {
	firstAttr := parseAbility(first)
	secondAttr := parseAbility(second)
	if firstAttr == shared.AttributeNone || secondAttr == shared.AttributeNone {
		return nil, dnderr.InvalidArgument("unknown ability name")
	}

	allocation := map[shared.Attribute]int{firstAttr: 1}
	allocation[secondAttr]++

	return h.applyCommand(userID, levelup.SetASI{Allocation: allocation})
}

func (h *Handler) sessionStatus(userID string) (*discordgo.MessageEmbed, error) {
	active, ok := h.sessions.Get(userID)
	if !ok {
		return nil, dnderr.NotFound("no level-up in progress; run /levelup start first")
	}
	return buildSessionEmbed(active.Session.Character(), active.Session), nil
}

// confirmLevelUp builds the result, applies it, and persists the new snapshot
func (h *Handler) confirmLevelUp(ctx context.Context, userID string) (*discordgo.MessageEmbed, error) {
	active, ok := h.sessions.Get(userID)
	if !ok {
		return nil, dnderr.NotFound("no level-up in progress; run /levelup start first")
	}

	result, err := active.Session.BuildResult()
	if err != nil {
		return nil, err
	}

	before := active.Session.Character()
	after, rescale, err := h.engine.Apply(before, result)
	if err != nil {
		return nil, err
	}

	if err := h.repo.Update(ctx, after); err != nil {
		return nil, err
	}

	h.sessions.Delete(userID)

	return buildResultEmbed(before, after, result, rescale), nil
}

func (h *Handler) showSpells(s *discordgo.Session, i *discordgo.InteractionCreate, userID, search string, level int) {
	active, ok := h.sessions.Get(userID)
	if !ok {
		respondEphemeral(s, i, "❌ No level-up in progress; run /levelup start first.")
		return
	}

	candidates := active.Session.SpellCandidates(search, level)
	if len(candidates) == 0 {
		respondEphemeral(s, i, "No matching spells. Try a different search or level filter.")
		return
	}

	err := s.InteractionRespond(i.Interaction, &discordgo.InteractionResponse{
		Type: discordgo.InteractionResponseChannelMessageWithSource,
		Data: &discordgo.InteractionResponseData{
			Content: fmt.Sprintf("%d candidate spell(s):", len(candidates)),
			Flags:   discordgo.MessageFlagsEphemeral,
			Components: []discordgo.MessageComponent{
				discordgo.ActionsRow{
					Components: []discordgo.MessageComponent{buildSpellMenu(candidates)},
				},
			},
		},
	})
	if err != nil {
		log.Printf("Failed to respond with spell menu: %v", err)
	}
}

func (h *Handler) handleSpellSelect(s *discordgo.Session, i *discordgo.InteractionCreate) {
	userID := interactionUserID(i)

	values := i.MessageComponentData().Values
	if len(values) == 0 {
		return
	}

	embed, err := h.applyCommand(userID, levelup.SelectSpell{Spell: values[0]})
	if err != nil {
		respondEphemeral(s, i, fmt.Sprintf("❌ %s", userMessage(err)))
		return
	}

	respondEmbed(s, i, embed)
}

// userMessage strips internal wrapping so errors read cleanly in Discord
func userMessage(err error) string {
	if dnderr.IsPrerequisite(err) {
		meta := dnderr.GetMeta(err)
		if missing, ok := meta["missing"].([]string); ok && len(missing) > 0 {
			return fmt.Sprintf("%s (missing: %s)", err.Error(), strings.Join(missing, ", "))
		}
	}
	return err.Error()
}

func interactionUserID(i *discordgo.InteractionCreate) string {
	if i.Member != nil && i.Member.User != nil {
		return i.Member.User.ID
	}
	if i.User != nil {
		return i.User.ID
	}
	return ""
}

func respondEphemeral(s *discordgo.Session, i *discordgo.InteractionCreate, content string) {
	err := s.InteractionRespond(i.Interaction, &discordgo.InteractionResponse{
		Type: discordgo.InteractionResponseChannelMessageWithSource,
		Data: &discordgo.InteractionResponseData{
			Content: content,
			Flags:   discordgo.MessageFlagsEphemeral,
		},
	})
	if err != nil {
		log.Printf("Failed to respond to interaction: %v", err)
	}
}

func respondEmbed(s *discordgo.Session, i *discordgo.InteractionCreate, embed *discordgo.MessageEmbed) {
	err := s.InteractionRespond(i.Interaction, &discordgo.InteractionResponse{
		Type: discordgo.InteractionResponseChannelMessageWithSource,
		Data: &discordgo.InteractionResponseData{
			Embeds: []*discordgo.MessageEmbed{embed},
			Flags:  discordgo.MessageFlagsEphemeral,
		},
	})
	if err != nil {
		log.Printf("Failed to respond to interaction: %v", err)
	}
}

func abilityChoices() []*discordgo.ApplicationCommandOptionChoice {
	choices := make([]*discordgo.ApplicationCommandOptionChoice, 0, len(shared.Attributes))
	for _, attr := range shared.Attributes {
		choices = append(choices, &discordgo.ApplicationCommandOptionChoice{
			Name:  attr.Name(),
			Value: string(attr),
		})
	}
	return choices
}

func parseAbility(value string) shared.Attribute {
	for _, attr := range shared.Attributes {
		if strings.EqualFold(value, string(attr)) || strings.EqualFold(value, attr.Name()) {
			return attr
		}
	}
	return shared.AttributeNone
}

func optionMap(options []*discordgo.ApplicationCommandInteractionDataOption) map[string]*discordgo.ApplicationCommandInteractionDataOption {
	m := make(map[string]*discordgo.ApplicationCommandInteractionDataOption, len(options))
	for _, opt := range options {
		m[opt.Name] = opt
	}
	return m
}

func stringOption(opts map[string]*discordgo.ApplicationCommandInteractionDataOption, name string) string {
	if opt, ok := opts[name]; ok {
		return opt.StringValue()
	}
	return ""
}

func intOption(opts map[string]*discordgo.ApplicationCommandInteractionDataOption, name string, fallback int) int {
	if opt, ok := opts[name]; ok {
		return int(opt.IntValue())
	}
	return fallback
}

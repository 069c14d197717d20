package main

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/spf13/cobra"

	"github.com/KirkDiggler/dnd-levelup/internal/domain/character"
	"github.com/KirkDiggler/dnd-levelup/internal/domain/rulebook"
	"github.com/KirkDiggler/dnd-levelup/internal/domain/shared"
	dnderr "github.com/KirkDiggler/dnd-levelup/internal/errors"
	"github.com/KirkDiggler/dnd-levelup/internal/repositories/characters"
	"github.com/KirkDiggler/dnd-levelup/internal/services/levelup"
)

var (
	simulateClass string
	simulateLevel int
	simulateRace  string
	simulateHP    string
	simulateSave  bool
)

var simulateCmd = &cobra.Command{
	Use:   "simulate",
	Short: "Run a level-up end to end with sensible default picks",
	RunE:  runSimulate,
}

func init() {
	simulateCmd.Flags().StringVar(&simulateClass, "class", "fighter", "class being leveled")
	simulateCmd.Flags().IntVar(&simulateLevel, "level", 1, "current level")
	simulateCmd.Flags().StringVar(&simulateRace, "race", "human", "character race")
	simulateCmd.Flags().StringVar(&simulateHP, "hp", "average", "hp method: average or roll")
	simulateCmd.Flags().BoolVar(&simulateSave, "save", false, "persist the leveled snapshot to Redis")
}

func runSimulate(cmd *cobra.Command, args []string) error {
	provider := rulebook.NewStaticProvider()
	engine := levelup.NewService(&levelup.ServiceConfig{
		Provider: provider,
		Catalog:  rulebook.NewStaticCatalog(),
	})

	char := sampleCharacter(simulateClass, simulateLevel, simulateRace)
	sess, err := engine.StartSession(char)
	if err != nil {
		return err
	}

	switch simulateHP {
	case "roll":
		err = sess.Apply(levelup.RollHP{})
	case "average":
		err = sess.Apply(levelup.UseAverageHP{})
	default:
		return dnderr.InvalidArgumentf("unknown hp method '%s'", simulateHP)
	}
	if err != nil {
		return err
	}

	if err := makeDefaultPicks(provider, sess); err != nil {
		return err
	}

	result, err := sess.BuildResult()
	if err != nil {
		return err
	}

	after, rescale, err := engine.Apply(char, result)
	if err != nil {
		return err
	}

	cmd.Printf("%s: %s %d -> %d\n", after.Name, after.Class(), char.Level, after.Level)
	cmd.Printf("  HP:        %d -> %d (+%d, %s)\n", char.MaxHP, after.MaxHP, result.HPGain, result.HPMethod)
	if result.Subclass != "" {
		cmd.Printf("  Subclass:  %s\n", result.Subclass)
	}
	if len(result.ASI) > 0 {
		parts := make([]string, 0, len(result.ASI))
		for attr, bump := range result.ASI {
			parts = append(parts, fmt.Sprintf("%s +%d", attr.Name(), bump))
		}
		cmd.Printf("  ASI:       %s\n", strings.Join(parts, ", "))
	}
	if len(result.SpellsLearned) > 0 {
		cmd.Printf("  Spells:    %s\n", strings.Join(result.SpellsLearned, ", "))
	}
	if result.RacialFeatureChoice != "" {
		cmd.Printf("  Racial:    %s\n", result.RacialFeatureChoice)
	}
	for _, line := range after.FeatureLog {
		cmd.Printf("  Log:       %s\n", line)
	}
	if rescale != nil && rescale.NeedsManualReview {
		cmd.Printf("  Warning:   not every class resource fit on the sheet; review the resource slots\n")
	}

	if simulateSave {
		id, err := saveSnapshot(after)
		if err != nil {
			return err
		}
		cmd.Printf("  Saved:     %s\n", id)
	}

	return nil
}

// saveSnapshot stores the leveled character in Redis under a fresh ID
func saveSnapshot(after *character.Character) (string, error) {
	client := redis.NewClient(&redis.Options{
		Addr:     cliConfig.Redis.Addr,
		Password: cliConfig.Redis.Password,
		DB:       cliConfig.Redis.DB,
	})
	defer client.Close()

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := client.Ping(ctx).Err(); err != nil {
		return "", fmt.Errorf("redis at %s is unreachable: %w", cliConfig.Redis.Addr, err)
	}

	saved := after.Clone()
	saved.ID = ""
	if err := characters.NewRedis(client).Create(ctx, saved); err != nil {
		return "", err
	}
	return saved.ID, nil
}

// makeDefaultPicks satisfies every outstanding decision with the first
// available option so the simulation always completes
func makeDefaultPicks(provider rulebook.Provider, sess *levelup.Session) error {
	for _, req := range sess.Requirements() {
		if !req.Required || req.Satisfied {
			continue
		}

		switch req.Decision {
		case levelup.DecisionSubclass:
			options, err := provider.SubclassOptions(sess.Changes().Class)
			if err != nil {
				return err
			}
			if len(options) == 0 {
				return dnderr.Internalf("no subclass options for %s", sess.Changes().Class)
			}
			if err := sess.Apply(levelup.SelectSubclass{Subclass: options[0].Name}); err != nil {
				return err
			}
		case levelup.DecisionRacialFeature:
			rf := sess.Changes().RacialFeature
			if rf == nil || len(rf.Options) == 0 {
				continue
			}
			if err := sess.Apply(levelup.SelectRacialOption{Option: rf.Options[0]}); err != nil {
				return err
			}
		case levelup.DecisionASIOrFeat:
			classData, err := provider.ClassData(sess.Changes().Class)
			if err != nil {
				return err
			}
			allocation := map[shared.Attribute]int{classData.PrimaryAbility: 2}
			if err := sess.Apply(levelup.SetASI{Allocation: allocation}); err != nil {
				return err
			}
		case levelup.DecisionSpells:
			if err := pickFirstSpells(sess); err != nil {
				return err
			}
		}
	}

	return nil
}

func pickFirstSpells(sess *levelup.Session) error {
	rules := sess.Changes().SpellRules
	if rules == nil {
		return nil
	}
	for len(sess.SelectedSpells()) < rules.NewSpells {
		candidates := sess.SpellCandidates("", levelup.AllSpellLevels)
		picked := false
		for _, spell := range candidates {
			err := sess.Apply(levelup.SelectSpell{Spell: spell.Name})
			if err == nil {
				picked = true
				break
			}
			if !dnderr.Is(err, dnderr.CodeAlreadyExists) {
				return err
			}
		}
		if !picked {
			return dnderr.Internal("ran out of spell candidates")
		}
	}
	return nil
}

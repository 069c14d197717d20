package discord

import (
	"context"
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/KirkDiggler/dnd-levelup/internal/dice"
	"github.com/KirkDiggler/dnd-levelup/internal/domain/character"
	"github.com/KirkDiggler/dnd-levelup/internal/domain/rulebook"
	dnderr "github.com/KirkDiggler/dnd-levelup/internal/errors"
	mockcharacters "github.com/KirkDiggler/dnd-levelup/internal/repositories/characters/mock"
	"github.com/KirkDiggler/dnd-levelup/internal/services/levelup"
	"github.com/KirkDiggler/dnd-levelup/internal/testutils"
)

func newTestHandler(t *testing.T) (*Handler, *mockcharacters.MockRepository) {
	t.Helper()

	ctrl := gomock.NewController(t)
	repo := mockcharacters.NewMockRepository(ctrl)

	engine := levelup.NewService(&levelup.ServiceConfig{
		Provider: rulebook.NewStaticProvider(),
		Catalog:  rulebook.NewStaticCatalog(),
		Roller:   dice.NewMockRoller(),
	})

	h := NewHandler(&HandlerConfig{
		Repository: repo,
		Engine:     engine,
	})

	return h, repo
}

func TestStartLevelUp(t *testing.T) {
	h, repo := newTestHandler(t)
	ctx := context.Background()

	wizard := testutils.CreateTestWizard("char-1", "user-1", "Mordenkainen")
	repo.EXPECT().Get(gomock.Any(), "char-1").Return(wizard, nil)

	embed, err := h.startLevelUp(ctx, "user-1", "char-1")
	require.NoError(t, err)

	assert.Contains(t, embed.Title, "Mordenkainen")
	assert.Contains(t, embed.Title, "wizard 4 → 5")

	active, ok := h.sessions.Get("user-1")
	require.True(t, ok)
	assert.Equal(t, "char-1", active.CharacterID)
}

func TestStartLevelUp_WrongOwner(t *testing.T) {
	h, repo := newTestHandler(t)

	wizard := testutils.CreateTestWizard("char-1", "someone-else", "Mordenkainen")
	repo.EXPECT().Get(gomock.Any(), "char-1").Return(wizard, nil)

	_, err := h.startLevelUp(context.Background(), "user-1", "char-1")
	require.Error(t, err)
	assert.True(t, dnderr.IsNotFound(err))

	_, ok := h.sessions.Get("user-1")
	assert.False(t, ok)
}

func TestStartLevelUp_MissingCharacterID(t *testing.T) {
	h, _ := newTestHandler(t)

	_, err := h.startLevelUp(context.Background(), "user-1", "")
	require.Error(t, err)
	assert.True(t, dnderr.IsInvalidArgument(err))
}

func TestStartLevelUp_RepoError(t *testing.T) {
	h, repo := newTestHandler(t)

	repo.EXPECT().Get(gomock.Any(), "char-1").Return(nil, dnderr.NotFound("character not found"))

	_, err := h.startLevelUp(context.Background(), "user-1", "char-1")
	require.Error(t, err)
	assert.True(t, dnderr.IsNotFound(err))
}

func TestApplyCommand_NoSession(t *testing.T) {
	h, _ := newTestHandler(t)

	_, err := h.applyCommand("user-1", levelup.UseAverageHP{})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "no level-up in progress")
}

func TestConfirmLevelUp_FullFlow(t *testing.T) {
	h, repo := newTestHandler(t)
	ctx := context.Background()

	wizard := testutils.CreateTestWizard("char-1", "user-1", "Mordenkainen")
	repo.EXPECT().Get(gomock.Any(), "char-1").Return(wizard, nil)

	_, err := h.startLevelUp(ctx, "user-1", "char-1")
	require.NoError(t, err)

	_, err = h.decideHP("user-1", levelup.HPMethodAverage)
	require.NoError(t, err)

	_, err = h.applyCommand("user-1", levelup.SelectSpell{Spell: "Fireball"})
	require.NoError(t, err)
	embed, err := h.applyCommand("user-1", levelup.SelectSpell{Spell: "Counterspell"})
	require.NoError(t, err)
	require.NotNil(t, embed.Footer)
	assert.Contains(t, embed.Footer.Text, "/levelup confirm")

	var saved *character.Character
	repo.EXPECT().Update(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, char *character.Character) error {
			saved = char
			return nil
		})

	result, err := h.confirmLevelUp(ctx, "user-1")
	require.NoError(t, err)
	assert.Contains(t, result.Title, "level 5")

	require.NotNil(t, saved)
	assert.Equal(t, 5, saved.Level)
	assert.True(t, saved.KnowsSpell("Fireball"))
	assert.True(t, saved.KnowsSpell("Counterspell"))

	// wizard 4 had no gain yet; average on a d6 with +2 Con is 6
	assert.Equal(t, wizard.MaxHP+6, saved.MaxHP)

	// the input snapshot is never touched
	assert.Equal(t, 4, wizard.Level)

	_, ok := h.sessions.Get("user-1")
	assert.False(t, ok, "session should be cleared after confirm")
}

func TestConfirmLevelUp_Incomplete(t *testing.T) {
	h, repo := newTestHandler(t)
	ctx := context.Background()

	wizard := testutils.CreateTestWizard("char-1", "user-1", "Mordenkainen")
	repo.EXPECT().Get(gomock.Any(), "char-1").Return(wizard, nil)

	_, err := h.startLevelUp(ctx, "user-1", "char-1")
	require.NoError(t, err)

	_, err = h.confirmLevelUp(ctx, "user-1")
	require.Error(t, err)
	assert.True(t, dnderr.IsValidation(err))

	// failed confirm keeps the session so decisions can be finished
	_, ok := h.sessions.Get("user-1")
	assert.True(t, ok)
}

func TestConfirmLevelUp_UpdateFailureKeepsSession(t *testing.T) {
	h, repo := newTestHandler(t)
	ctx := context.Background()

	fighter := testutils.CreateTestCharacter("char-1", "user-1", "Borin")
	repo.EXPECT().Get(gomock.Any(), "char-1").Return(fighter, nil)

	_, err := h.startLevelUp(ctx, "user-1", "char-1")
	require.NoError(t, err)
	_, err = h.decideHP("user-1", levelup.HPMethodAverage)
	require.NoError(t, err)
	_, err = h.allocateASI("user-1", "Str", "Str")
	require.NoError(t, err)

	repo.EXPECT().Update(gomock.Any(), gomock.Any()).Return(dnderr.Internal("redis down"))

	_, err = h.confirmLevelUp(ctx, "user-1")
	require.Error(t, err)

	_, ok := h.sessions.Get("user-1")
	assert.True(t, ok)
}

func TestConfirmLevelUp_ResourceReviewWarning(t *testing.T) {
	h, repo := newTestHandler(t)
	ctx := context.Background()

	// every resource slot is already taken, so the class resources have
	// nowhere to land and the confirm embed must say so
	fighter := testutils.CreateTestCharacter("char-1", "user-1", "Borin")
	for i := range fighter.Resources {
		fighter.Resources[i].Name = fmt.Sprintf("Homebrew Pool %d", i+1)
		fighter.Resources[i].Max = 2
		fighter.Resources[i].Current = 2
	}
	repo.EXPECT().Get(gomock.Any(), "char-1").Return(fighter, nil)

	_, err := h.startLevelUp(ctx, "user-1", "char-1")
	require.NoError(t, err)
	_, err = h.decideHP("user-1", levelup.HPMethodAverage)
	require.NoError(t, err)
	_, err = h.allocateASI("user-1", "Str", "Str")
	require.NoError(t, err)

	repo.EXPECT().Update(gomock.Any(), gomock.Any()).Return(nil)

	result, err := h.confirmLevelUp(ctx, "user-1")
	require.NoError(t, err)

	var warned bool
	for _, field := range result.Fields {
		if strings.Contains(field.Name, "Resources need review") {
			warned = true
		}
	}
	assert.True(t, warned, "confirm embed should flag the unplaced resources")
}

func TestAllocateASI(t *testing.T) {
	h, repo := newTestHandler(t)
	ctx := context.Background()

	// fighter 3 -> 4 carries the first ability score improvement
	fighter := testutils.CreateTestCharacter("char-1", "user-1", "Borin")
	repo.EXPECT().Get(gomock.Any(), "char-1").Return(fighter, nil)

	_, err := h.startLevelUp(ctx, "user-1", "char-1")
	require.NoError(t, err)

	_, err = h.allocateASI("user-1", "Str", "Str")
	require.NoError(t, err)

	_, err = h.allocateASI("user-1", "strength", "dexterity")
	require.NoError(t, err)

	_, err = h.allocateASI("user-1", "fortitude", "Str")
	require.Error(t, err)
	assert.True(t, dnderr.IsInvalidArgument(err))
}

func TestSessionStatus(t *testing.T) {
	h, repo := newTestHandler(t)
	ctx := context.Background()

	_, err := h.sessionStatus("user-1")
	require.Error(t, err)

	fighter := testutils.CreateTestCharacter("char-1", "user-1", "Borin")
	repo.EXPECT().Get(gomock.Any(), "char-1").Return(fighter, nil)

	_, err = h.startLevelUp(ctx, "user-1", "char-1")
	require.NoError(t, err)

	embed, err := h.sessionStatus("user-1")
	require.NoError(t, err)
	assert.Contains(t, embed.Title, "fighter 3 → 4")
}

func TestDecideHP_UnknownMethod(t *testing.T) {
	h, _ := newTestHandler(t)

	_, err := h.decideHP("user-1", levelup.HPMethod("guess"))
	require.Error(t, err)
	assert.True(t, dnderr.IsInvalidArgument(err))
}

func TestParseAbility(t *testing.T) {
	tests := []struct {
		input string
		want  string
	}{
		{"Str", "Str"},
		{"strength", "Str"},
		{"CHARISMA", "Cha"},
		{"wis", "Wis"},
		{"fortitude", ""},
		{"", ""},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, string(parseAbility(tt.input)), "input %q", tt.input)
	}
}

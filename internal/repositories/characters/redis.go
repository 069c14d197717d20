package characters

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
	"golang.org/x/sync/errgroup"

	"github.com/KirkDiggler/dnd-levelup/internal/domain/character"
	"github.com/KirkDiggler/dnd-levelup/internal/domain/shared"
	dnderr "github.com/KirkDiggler/dnd-levelup/internal/errors"
	"github.com/KirkDiggler/dnd-levelup/internal/uuid"
)

// getConcurrency bounds the parallel character loads in GetByOwner
const getConcurrency = 8

// CharacterData represents the serialized form of a character in Redis.
// It is a stable storage schema decoupled from the domain entity.
type CharacterData struct {
	ID             string                            `json:"id"`
	OwnerID        string                            `json:"owner_id"`
	Name           string                            `json:"name"`
	Race           string                            `json:"race"`
	Subrace        string                            `json:"subrace,omitempty"`
	Level          int                               `json:"level"`
	Classes        []character.ClassLevel            `json:"classes"`
	Attributes     map[shared.Attribute]*AbilityData `json:"attributes"`
	MaxHP          int                               `json:"max_hp"`
	CurrentHP      int                               `json:"current_hp"`
	HitDice        character.HitDice                 `json:"hit_dice"`
	Spells         []character.KnownSpell            `json:"spells,omitempty"`
	SpellSlots     map[int]character.SlotInfo        `json:"spell_slots,omitempty"`
	PactLevel      int                               `json:"pact_level,omitempty"`
	PactMax        int                               `json:"pact_max,omitempty"`
	PactUsed       int                               `json:"pact_used,omitempty"`
	Resources      []character.ResourceSlot          `json:"resources"`
	Feats          []string                          `json:"feats,omitempty"`
	RacialFeatures []character.RacialChoice          `json:"racial_features,omitempty"`
	FeatureLog     []string                          `json:"feature_log,omitempty"`
	CreatedAt      time.Time                         `json:"created_at"`
	UpdatedAt      time.Time                         `json:"updated_at"`
}

// AbilityData stores one ability score; the modifier is rederived on load
type AbilityData struct {
	Score int `json:"score"`
}

// redisRepo implements the Repository interface using Redis
type redisRepo struct {
	client        redis.UniversalClient
	uuidGenerator uuid.Generator
}

// RedisRepoConfig holds configuration for the Redis repository
type RedisRepoConfig struct {
	Client        redis.UniversalClient
	UUIDGenerator uuid.Generator
}

// NewRedisRepository creates a new Redis-backed character repository
func NewRedisRepository(cfg *RedisRepoConfig) Repository {
	if cfg == nil {
		panic("RedisRepoConfig cannot be nil")
	}
	if cfg.Client == nil {
		panic("Redis client cannot be nil")
	}
	if cfg.UUIDGenerator == nil {
		cfg.UUIDGenerator = uuid.NewGoogleUUIDGenerator()
	}

	return &redisRepo{
		client:        cfg.Client,
		uuidGenerator: cfg.UUIDGenerator,
	}
}

// NewRedis creates a Redis repository with default dependencies
func NewRedis(client redis.UniversalClient) Repository {
	return NewRedisRepository(&RedisRepoConfig{
		Client:        client,
		UUIDGenerator: uuid.NewGoogleUUIDGenerator(),
	})
}

// key generates the Redis key for a character
func (r *redisRepo) key(id string) string {
	return fmt.Sprintf("character:%s", id)
}

// ownerCharactersKey generates the Redis key for the owner's character index
func (r *redisRepo) ownerCharactersKey(ownerID string) string {
	return fmt.Sprintf("owner:%s:characters", ownerID)
}

func (r *redisRepo) Create(ctx context.Context, char *character.Character) error {
	if char == nil {
		return dnderr.InvalidArgument("character cannot be nil")
	}
	if char.OwnerID == "" {
		return dnderr.InvalidArgument("character owner ID is required")
	}
	if char.ID == "" {
		char.ID = r.uuidGenerator.New()
	}

	exists, err := r.client.Exists(ctx, r.key(char.ID)).Result()
	if err != nil {
		return fmt.Errorf("failed to check character existence: %w", err)
	}
	if exists > 0 {
		return dnderr.AlreadyExists("character already exists").
			WithMeta("character_id", char.ID)
	}

	data := toCharacterData(char)
	data.CreatedAt = time.Now().UTC()
	data.UpdatedAt = data.CreatedAt

	jsonData, err := json.Marshal(data)
	if err != nil {
		return fmt.Errorf("failed to marshal character: %w", err)
	}

	// Store character and owner index atomically
	pipe := r.client.Pipeline()
	pipe.Set(ctx, r.key(char.ID), string(jsonData), 0)
	pipe.SAdd(ctx, r.ownerCharactersKey(char.OwnerID), char.ID)
	if _, err := pipe.Exec(ctx); err != nil {
		return fmt.Errorf("failed to create character: %w", err)
	}

	return nil
}

func (r *redisRepo) Get(ctx context.Context, id string) (*character.Character, error) {
	if id == "" {
		return nil, dnderr.InvalidArgument("character ID is required")
	}

	jsonData, err := r.client.Get(ctx, r.key(id)).Result()
	if err == redis.Nil {
		return nil, dnderr.NotFoundf("character with ID '%s' not found", id).
			WithMeta("character_id", id)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get character: %w", err)
	}

	var data CharacterData
	if unmarshalErr := json.Unmarshal([]byte(jsonData), &data); unmarshalErr != nil {
		return nil, fmt.Errorf("failed to unmarshal character: %w", unmarshalErr)
	}

	return fromCharacterData(&data), nil
}

func (r *redisRepo) GetByOwner(ctx context.Context, ownerID string) ([]*character.Character, error) {
	if ownerID == "" {
		return nil, dnderr.InvalidArgument("owner ID is required")
	}

	ids, err := r.client.SMembers(ctx, r.ownerCharactersKey(ownerID)).Result()
	if err != nil {
		return nil, fmt.Errorf("failed to list character IDs: %w", err)
	}

	// Load in parallel; stale index entries are skipped, real failures abort
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(getConcurrency)
	loaded := make([]*character.Character, len(ids))
	for i, id := range ids {
		i, id := i, id
		g.Go(func() error {
			char, err := r.Get(gctx, id)
			if dnderr.IsNotFound(err) {
				return nil
			}
			if err != nil {
				return err
			}
			loaded[i] = char
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	characters := make([]*character.Character, 0, len(loaded))
	for _, char := range loaded {
		if char != nil {
			characters = append(characters, char)
		}
	}
	return characters, nil
}

func (r *redisRepo) Update(ctx context.Context, char *character.Character) error {
	if char == nil {
		return dnderr.InvalidArgument("character cannot be nil")
	}
	if char.ID == "" {
		return dnderr.InvalidArgument("character ID is required")
	}

	// Verify existence and preserve the creation timestamp
	existingData, err := r.client.Get(ctx, r.key(char.ID)).Result()
	if err == redis.Nil {
		return dnderr.NotFoundf("character with ID '%s' not found", char.ID).
			WithMeta("character_id", char.ID)
	}
	if err != nil {
		return fmt.Errorf("failed to get existing character: %w", err)
	}

	var existing CharacterData
	if unmarshalErr := json.Unmarshal([]byte(existingData), &existing); unmarshalErr != nil {
		return fmt.Errorf("failed to unmarshal existing character: %w", unmarshalErr)
	}

	data := toCharacterData(char)
	data.CreatedAt = existing.CreatedAt
	data.UpdatedAt = time.Now().UTC()

	jsonData, err := json.Marshal(data)
	if err != nil {
		return fmt.Errorf("failed to marshal character: %w", err)
	}

	if err := r.client.Set(ctx, r.key(char.ID), string(jsonData), 0).Err(); err != nil {
		return fmt.Errorf("failed to update character: %w", err)
	}

	// Reindex when ownership changed
	if existing.OwnerID != char.OwnerID {
		pipe := r.client.Pipeline()
		pipe.SRem(ctx, r.ownerCharactersKey(existing.OwnerID), char.ID)
		pipe.SAdd(ctx, r.ownerCharactersKey(char.OwnerID), char.ID)
		if _, err := pipe.Exec(ctx); err != nil {
			return fmt.Errorf("failed to update character indexes: %w", err)
		}
	}

	return nil
}

func (r *redisRepo) Delete(ctx context.Context, id string) error {
	if id == "" {
		return dnderr.InvalidArgument("character ID is required")
	}

	char, err := r.Get(ctx, id)
	if err != nil {
		return err
	}

	pipe := r.client.Pipeline()
	pipe.Del(ctx, r.key(id))
	pipe.SRem(ctx, r.ownerCharactersKey(char.OwnerID), id)
	if _, err := pipe.Exec(ctx); err != nil {
		return fmt.Errorf("failed to delete character: %w", err)
	}

	return nil
}

// toCharacterData converts the domain entity to its storage schema
func toCharacterData(char *character.Character) *CharacterData {
	attributes := make(map[shared.Attribute]*AbilityData, len(char.Attributes))
	for attr, score := range char.Attributes {
		if score != nil {
			attributes[attr] = &AbilityData{Score: score.Score}
		}
	}

	return &CharacterData{
		ID:             char.ID,
		OwnerID:        char.OwnerID,
		Name:           char.Name,
		Race:           char.Race,
		Subrace:        char.Subrace,
		Level:          char.Level,
		Classes:        char.Classes,
		Attributes:     attributes,
		MaxHP:          char.MaxHP,
		CurrentHP:      char.CurrentHP,
		HitDice:        char.HitDice,
		Spells:         char.Spells,
		SpellSlots:     char.SpellSlots,
		PactLevel:      char.PactLevel,
		PactMax:        char.PactMax,
		PactUsed:       char.PactUsed,
		Resources:      char.Resources,
		Feats:          char.Feats,
		RacialFeatures: char.RacialFeatures,
		FeatureLog:     char.FeatureLog,
		CreatedAt:      char.CreatedAt,
		UpdatedAt:      char.UpdatedAt,
	}
}

// fromCharacterData converts the storage schema back to the domain entity,
// rederiving ability modifiers from the stored scores
func fromCharacterData(data *CharacterData) *character.Character {
	attributes := make(map[shared.Attribute]*character.AbilityScore, len(data.Attributes))
	for attr, stored := range data.Attributes {
		if stored != nil {
			attributes[attr] = character.NewAbilityScore(stored.Score)
		}
	}

	return &character.Character{
		ID:             data.ID,
		OwnerID:        data.OwnerID,
		Name:           data.Name,
		Race:           data.Race,
		Subrace:        data.Subrace,
		Level:          data.Level,
		Classes:        data.Classes,
		Attributes:     attributes,
		MaxHP:          data.MaxHP,
		CurrentHP:      data.CurrentHP,
		HitDice:        data.HitDice,
		Spells:         data.Spells,
		SpellSlots:     data.SpellSlots,
		PactLevel:      data.PactLevel,
		PactMax:        data.PactMax,
		PactUsed:       data.PactUsed,
		Resources:      data.Resources,
		Feats:          data.Feats,
		RacialFeatures: data.RacialFeatures,
		FeatureLog:     data.FeatureLog,
		CreatedAt:      data.CreatedAt,
		UpdatedAt:      data.UpdatedAt,
	}
}

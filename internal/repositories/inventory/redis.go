package inventory

import (
	"context"
	"encoding/json"
	"time"

	redis "github.com/redis/go-redis/v9"

	"github.com/noctale/noctale/internal/errors"
	"github.com/noctale/noctale/internal/pkg/clock"
	redisclient "github.com/noctale/noctale/internal/redis"
)

// activeWindow bounds how recently a user must have pulled to count as
// active for like notifications.
const activeWindow = 14 * 24 * time.Hour

const (
	// Error messages
	errGuildIDEmpty     = "guild ID cannot be empty"
	errUserIDEmpty      = "user ID cannot be empty"
	errCharacterIDEmpty = "character ID cannot be empty"
	errTargetIDEmpty    = "target ID cannot be empty"
	errBadTarget        = "target must be character or media"
)

// Config holds the dependencies for the Redis repository
type Config struct {
	Client redisclient.Client
	Clock  clock.Clock
}

// Validate checks required dependencies and fills defaults
func (cfg *Config) Validate() error {
	if cfg.Client == nil {
		return errors.InvalidArgument("redis client is required")
	}
	if cfg.Clock == nil {
		cfg.Clock = clock.New()
	}
	return nil
}

type redisRepository struct {
	client redisclient.Client
	clock  clock.Clock
}

// NewRedisRepository creates a new Redis-backed inventory repository
func NewRedisRepository(cfg *Config) (Repository, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &redisRepository{
		client: cfg.Client,
		clock:  cfg.Clock,
	}, nil
}

func characterKey(guildID, userID, characterID string) string {
	return "inventory:" + guildID + ":" + userID + ":character:" + characterID
}

func userCharactersKey(guildID, userID string) string {
	return "inventory:" + guildID + ":" + userID + ":characters"
}

func lastPullKey(guildID, userID string) string {
	return "inventory:" + guildID + ":" + userID + ":lastpull"
}

func likeKey(guildID string, target LikeTarget, targetID string) string {
	return "likes:" + guildID + ":" + string(target) + ":" + targetID
}

func (r *redisRepository) AddCharacter(ctx context.Context, input AddCharacterInput) (*AddCharacterOutput, error) {
	if input.GuildID == "" {
		return nil, errors.InvalidArgument(errGuildIDEmpty)
	}
	if input.UserID == "" {
		return nil, errors.InvalidArgument(errUserIDEmpty)
	}
	if input.CharacterID == "" {
		return nil, errors.InvalidArgument(errCharacterIDEmpty)
	}

	record := &CharacterRecord{
		GuildID:     input.GuildID,
		UserID:      input.UserID,
		CharacterID: input.CharacterID,
		MediaID:     input.MediaID,
		Rating:      input.Rating,
		Guaranteed:  input.Guaranteed,
		Sacrifices:  input.Sacrifices,
		CreatedAt:   r.clock.Now(),
	}

	data, err := json.Marshal(record)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to marshal record for %s", input.CharacterID)
	}

	// SetNX is the uniqueness constraint: exactly one insert wins for a
	// given (guild, user, character) triple.
	key := characterKey(input.GuildID, input.UserID, input.CharacterID)
	inserted, err := r.client.SetNX(ctx, key, data, 0).Result()
	if err != nil {
		if err == redis.TxFailedErr {
			return nil, errors.Aborted("write conflict inserting character")
		}
		return nil, errors.Wrapf(err, "failed to insert character %s", input.CharacterID)
	}
	if !inserted {
		return nil, errors.AlreadyExistsf("character %s already owned in guild %s", input.CharacterID, input.GuildID)
	}

	pipe := r.client.TxPipeline()
	pipe.SAdd(ctx, userCharactersKey(input.GuildID, input.UserID), input.CharacterID)
	pipe.Set(ctx, lastPullKey(input.GuildID, input.UserID), record.CreatedAt.Unix(), 0)

	if _, err := pipe.Exec(ctx); err != nil {
		if err == redis.TxFailedErr {
			return nil, errors.Aborted("write conflict updating pull bookkeeping")
		}
		return nil, errors.Wrapf(err, "failed to record pull for user %s", input.UserID)
	}

	return &AddCharacterOutput{Record: record}, nil
}

func (r *redisRepository) GetActiveUsersIfLiked(ctx context.Context, input GetActiveUsersIfLikedInput) (*GetActiveUsersIfLikedOutput, error) {
	if input.GuildID == "" {
		return nil, errors.InvalidArgument(errGuildIDEmpty)
	}
	if input.CharacterID == "" {
		return nil, errors.InvalidArgument(errCharacterIDEmpty)
	}

	keys := []string{likeKey(input.GuildID, LikeTargetCharacter, input.CharacterID)}
	for _, mediaID := range input.MediaIDs {
		keys = append(keys, likeKey(input.GuildID, LikeTargetMedia, mediaID))
	}

	userIDs, err := r.client.SUnion(ctx, keys...).Result()
	if err != nil {
		return nil, errors.Wrapf(err, "failed to read likes for %s", input.CharacterID)
	}
	if len(userIDs) == 0 {
		return &GetActiveUsersIfLikedOutput{}, nil
	}

	cutoff := r.clock.Now().Add(-activeWindow).Unix()

	active := make([]string, 0, len(userIDs))
	for _, userID := range userIDs {
		lastPull, err := r.client.Get(ctx, lastPullKey(input.GuildID, userID)).Int64()
		if err != nil {
			if err == redis.Nil {
				continue
			}
			return nil, errors.Wrapf(err, "failed to read last pull for user %s", userID)
		}
		if lastPull >= cutoff {
			active = append(active, userID)
		}
	}

	return &GetActiveUsersIfLikedOutput{UserIDs: active}, nil
}

func (r *redisRepository) Like(ctx context.Context, input LikeInput) (*LikeOutput, error) {
	if err := validateLike(input); err != nil {
		return nil, err
	}

	key := likeKey(input.GuildID, input.Target, input.TargetID)
	if err := r.client.SAdd(ctx, key, input.UserID).Err(); err != nil {
		return nil, errors.Wrapf(err, "failed to add like for %s", input.TargetID)
	}
	return &LikeOutput{}, nil
}

func (r *redisRepository) Unlike(ctx context.Context, input LikeInput) (*LikeOutput, error) {
	if err := validateLike(input); err != nil {
		return nil, err
	}

	key := likeKey(input.GuildID, input.Target, input.TargetID)
	if err := r.client.SRem(ctx, key, input.UserID).Err(); err != nil {
		return nil, errors.Wrapf(err, "failed to remove like for %s", input.TargetID)
	}
	return &LikeOutput{}, nil
}

func validateLike(input LikeInput) error {
	if input.GuildID == "" {
		return errors.InvalidArgument(errGuildIDEmpty)
	}
	if input.UserID == "" {
		return errors.InvalidArgument(errUserIDEmpty)
	}
	if input.TargetID == "" {
		return errors.InvalidArgument(errTargetIDEmpty)
	}
	if input.Target != LikeTargetCharacter && input.Target != LikeTargetMedia {
		return errors.InvalidArgument(errBadTarget)
	}
	return nil
}

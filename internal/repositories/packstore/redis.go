package packstore

import (
	"context"
	"encoding/json"

	redis "github.com/redis/go-redis/v9"

	"github.com/noctale/noctale/internal/entities/pack"
	"github.com/noctale/noctale/internal/errors"
	redisclient "github.com/noctale/noctale/internal/redis"
)

const (
	// Error messages
	errGuildIDEmpty    = "guild ID cannot be empty"
	errPackNil         = "pack cannot be nil"
	errManifestNil     = "pack manifest cannot be nil"
	errManifestIDEmpty = "manifest ID cannot be empty"
)

type redisRepository struct {
	client redisclient.Client
}

// NewRedisRepository creates a new Redis-backed pack repository
func NewRedisRepository(client redisclient.Client) Repository {
	return &redisRepository{
		client: client,
	}
}

// orderKey holds manifest ids in install order, manifestKey holds the
// serialized pack per id.
func orderKey(guildID string) string {
	return "packs:" + guildID + ":order"
}

func manifestKey(guildID, manifestID string) string {
	return "packs:" + guildID + ":manifest:" + manifestID
}

func (r *redisRepository) GetGuildPacks(ctx context.Context, input GetGuildPacksInput) (*GetGuildPacksOutput, error) {
	if input.GuildID == "" {
		return nil, errors.InvalidArgument(errGuildIDEmpty)
	}

	ids, err := r.client.LRange(ctx, orderKey(input.GuildID), 0, -1).Result()
	if err != nil {
		return nil, errors.Wrapf(err, "failed to list packs for guild %s", input.GuildID)
	}
	if len(ids) == 0 {
		return &GetGuildPacksOutput{}, nil
	}

	keys := make([]string, 0, len(ids))
	for _, id := range ids {
		keys = append(keys, manifestKey(input.GuildID, id))
	}

	values, err := r.client.MGet(ctx, keys...).Result()
	if err != nil {
		return nil, errors.Wrapf(err, "failed to fetch packs for guild %s", input.GuildID)
	}

	packs := make([]*pack.Pack, 0, len(values))
	for i, value := range values {
		raw, ok := value.(string)
		if !ok {
			// order entry without a manifest, skip the orphan
			continue
		}

		var p pack.Pack
		if err := json.Unmarshal([]byte(raw), &p); err != nil {
			return nil, errors.Wrapf(err, "failed to unmarshal pack %s", ids[i])
		}
		packs = append(packs, &p)
	}

	return &GetGuildPacksOutput{Packs: packs}, nil
}

func (r *redisRepository) Install(ctx context.Context, input InstallInput) (*InstallOutput, error) {
	if input.GuildID == "" {
		return nil, errors.InvalidArgument(errGuildIDEmpty)
	}
	if input.Pack == nil {
		return nil, errors.InvalidArgument(errPackNil)
	}
	if input.Pack.Manifest == nil {
		return nil, errors.InvalidArgument(errManifestNil)
	}
	if input.Pack.Manifest.ID == "" {
		return nil, errors.InvalidArgument(errManifestIDEmpty)
	}

	manifestID := input.Pack.Manifest.ID

	data, err := json.Marshal(input.Pack)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to marshal pack %s", manifestID)
	}

	installed, err := r.client.Exists(ctx, manifestKey(input.GuildID, manifestID)).Result()
	if err != nil {
		return nil, errors.Wrapf(err, "failed to check pack %s", manifestID)
	}

	pipe := r.client.TxPipeline()
	if installed == 0 {
		pipe.RPush(ctx, orderKey(input.GuildID), manifestID)
	}
	pipe.Set(ctx, manifestKey(input.GuildID, manifestID), data, 0)

	if _, err := pipe.Exec(ctx); err != nil {
		return nil, errors.Wrapf(err, "failed to install pack %s", manifestID)
	}

	return &InstallOutput{Pack: input.Pack}, nil
}

func (r *redisRepository) Remove(ctx context.Context, input RemoveInput) (*RemoveOutput, error) {
	if input.GuildID == "" {
		return nil, errors.InvalidArgument(errGuildIDEmpty)
	}
	if input.ManifestID == "" {
		return nil, errors.InvalidArgument(errManifestIDEmpty)
	}

	key := manifestKey(input.GuildID, input.ManifestID)
	raw, err := r.client.Get(ctx, key).Result()
	if err != nil {
		if err == redis.Nil {
			return nil, errors.NotFoundf("pack %s is not installed", input.ManifestID)
		}
		return nil, errors.Wrapf(err, "failed to fetch pack %s", input.ManifestID)
	}

	var p pack.Pack
	if err := json.Unmarshal([]byte(raw), &p); err != nil {
		return nil, errors.Wrapf(err, "failed to unmarshal pack %s", input.ManifestID)
	}

	pipe := r.client.TxPipeline()
	pipe.LRem(ctx, orderKey(input.GuildID), 0, input.ManifestID)
	pipe.Del(ctx, key)

	if _, err := pipe.Exec(ctx); err != nil {
		return nil, errors.Wrapf(err, "failed to remove pack %s", input.ManifestID)
	}

	return &RemoveOutput{Pack: &p}, nil
}

package effects

import (
	"context"
	"encoding/json"

	redis "github.com/redis/go-redis/v9"

	"github.com/KirkDiggler/reliquary-api/internal/entities/reliquary"
	"github.com/KirkDiggler/reliquary-api/internal/errors"
	redisclient "github.com/KirkDiggler/reliquary-api/internal/redis"
)

// DefaultRedisKey is where the catalog is stored when no key is configured
const DefaultRedisKey = "reliquary:catalog:effects"

type redisRepository struct {
	client redisclient.Client
	key    string
}

// RedisConfig contains configuration for the Redis catalog repository
type RedisConfig struct {
	Client redisclient.Client
	// Key defaults to DefaultRedisKey
	Key string
}

// Validate validates the RedisConfig
func (cfg *RedisConfig) Validate() error {
	if cfg == nil {
		return errors.InvalidArgument("config cannot be nil")
	}
	if cfg.Client == nil {
		return errors.InvalidArgument("client cannot be nil")
	}
	return nil
}

// NewRedis creates a Redis-backed catalog repository. The catalog is one JSON
// array stored under a single key.
func NewRedis(cfg *RedisConfig) (Repository, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	key := cfg.Key
	if key == "" {
		key = DefaultRedisKey
	}

	return &redisRepository{
		client: cfg.Client,
		key:    key,
	}, nil
}

func (r *redisRepository) List(ctx context.Context, _ ListInput) (*ListOutput, error) {
	result, err := r.client.Get(ctx, r.key).Result()
	if err != nil {
		if err == redis.Nil {
			return nil, errors.NotFoundf("no catalog stored at %s", r.key).WithMeta("key", r.key)
		}
		return nil, errors.WrapWithCode(err, errors.CodeUnavailable, "failed to read catalog from redis")
	}

	var effects []*reliquary.Effect
	if err := json.Unmarshal([]byte(result), &effects); err != nil {
		return nil, errors.WrapWithCode(err, errors.CodeDataLoss, "failed to unmarshal stored catalog")
	}

	return &ListOutput{Effects: effects}, nil
}

func (r *redisRepository) Replace(ctx context.Context, input ReplaceInput) (*ReplaceOutput, error) {
	if len(input.Effects) == 0 {
		return nil, errors.InvalidArgument("effects cannot be empty")
	}

	data, err := json.Marshal(input.Effects)
	if err != nil {
		return nil, errors.Wrap(err, "failed to marshal catalog")
	}

	if err := r.client.Set(ctx, r.key, data, 0).Err(); err != nil {
		return nil, errors.WrapWithCode(err, errors.CodeUnavailable, "failed to write catalog to redis")
	}

	return &ReplaceOutput{Count: len(input.Effects)}, nil
}

package monster

import (
	"context"
	"encoding/json"
	"log/slog"

	redis "github.com/redis/go-redis/v9"

	"github.com/KirkDiggler/statblock-importer/internal/entities/drawsteel"
	"github.com/KirkDiggler/statblock-importer/internal/errors"
	redisclient "github.com/KirkDiggler/statblock-importer/internal/redis"
)

const (
	monsterKeyPrefix = "monster:"
	monsterIndexKey  = "monster:index"

	// Error messages
	errMonsterNil     = "monster cannot be nil"
	errMonsterIDEmpty = "monster ID cannot be empty"
)

type redisRepository struct {
	client redisclient.Client
}

// RedisConfig contains configuration for the Redis monster repository
type RedisConfig struct {
	Client redisclient.Client
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

// NewRedis creates a new Redis-backed monster repository
func NewRedis(cfg *RedisConfig) (Repository, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &redisRepository{client: cfg.Client}, nil
}

func (r *redisRepository) Create(ctx context.Context, input CreateInput) (*CreateOutput, error) {
	if input.Monster == nil {
		return nil, errors.InvalidArgument(errMonsterNil)
	}
	if input.Monster.ID == "" {
		return nil, errors.InvalidArgument(errMonsterIDEmpty)
	}

	key := monsterKeyPrefix + input.Monster.ID

	data, err := json.Marshal(input.Monster)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to marshal monster")
	}

	pipe := r.client.TxPipeline()
	created := pipe.SetNX(ctx, key, data, 0)
	pipe.SAdd(ctx, monsterIndexKey, input.Monster.ID)

	if _, err := pipe.Exec(ctx); err != nil {
		return nil, errors.Wrapf(err, "failed to create monster")
	}
	if !created.Val() {
		return nil, errors.AlreadyExistsf("monster with ID %s already exists", input.Monster.ID)
	}

	slog.DebugContext(ctx, "stored monster",
		"monster_id", input.Monster.ID,
		"name", input.Monster.Name,
		"items", len(input.Monster.Items))

	return &CreateOutput{Monster: input.Monster}, nil
}

func (r *redisRepository) Get(ctx context.Context, input GetInput) (*GetOutput, error) {
	if input.ID == "" {
		return nil, errors.InvalidArgument(errMonsterIDEmpty)
	}

	result, err := r.client.Get(ctx, monsterKeyPrefix+input.ID).Result()
	if err != nil {
		if err == redis.Nil {
			return nil, errors.NotFoundf("monster with ID %s not found", input.ID)
		}
		return nil, errors.Wrapf(err, "failed to get monster")
	}

	m, err := decode([]byte(result))
	if err != nil {
		return nil, err
	}
	return &GetOutput{Monster: m}, nil
}

func (r *redisRepository) List(ctx context.Context, input ListInput) (*ListOutput, error) {
	ids, err := r.client.SMembers(ctx, monsterIndexKey).Result()
	if err != nil {
		return nil, errors.Wrapf(err, "failed to read monster index")
	}

	monsters := make([]*drawsteel.Monster, 0, len(ids))
	for _, id := range ids {
		out, err := r.Get(ctx, GetInput{ID: id})
		if err != nil {
			if errors.IsNotFound(err) {
				slog.WarnContext(ctx, "monster not found, cleaning up index",
					"monster_id", id)
				r.client.SRem(ctx, monsterIndexKey, id)
				continue
			}
			return nil, errors.Wrapf(err, "failed to get monster %s", id)
		}
		monsters = append(monsters, out.Monster)
	}

	slog.DebugContext(ctx, "listed monsters", "count", len(monsters))

	return &ListOutput{Monsters: sortAndLimit(monsters, input.Limit)}, nil
}

func (r *redisRepository) Delete(ctx context.Context, input DeleteInput) (*DeleteOutput, error) {
	if input.ID == "" {
		return nil, errors.InvalidArgument(errMonsterIDEmpty)
	}

	if _, err := r.Get(ctx, GetInput(input)); err != nil {
		return nil, err
	}

	pipe := r.client.TxPipeline()
	pipe.Del(ctx, monsterKeyPrefix+input.ID)
	pipe.SRem(ctx, monsterIndexKey, input.ID)

	if _, err := pipe.Exec(ctx); err != nil {
		return nil, errors.Wrapf(err, "failed to delete monster")
	}

	return &DeleteOutput{}, nil
}

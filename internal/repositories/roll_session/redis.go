package rollsession

import (
	"context"
	"encoding/json"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/KirkDiggler/statblock-importer/internal/errors"
	"github.com/KirkDiggler/statblock-importer/internal/pkg/clock"
	redisclient "github.com/KirkDiggler/statblock-importer/internal/redis"
)

const (
	// Key pattern: roll_session:{monster_id}
	sessionKeyPrefix = "roll_session:"
	defaultTTL       = 15 * time.Minute

	// Watched appends retry this many times before giving up
	maxAppendAttempts = 5

	errMonsterIDEmpty = "monster ID cannot be empty"
)

// Config holds the configuration for the Redis repository
type Config struct {
	Client redisclient.Client
	Clock  clock.Clock
}

// Validate ensures all required dependencies are provided
func (c *Config) Validate() error {
	vb := errors.NewValidationBuilder()

	if c.Client == nil {
		vb.RequiredField("Client")
	}
	if c.Clock == nil {
		vb.RequiredField("Clock")
	}

	return vb.Build()
}

type redisRepository struct {
	client redisclient.Client
	clock  clock.Clock
}

// NewRedisRepository creates a new Redis repository for roll sessions
func NewRedisRepository(cfg *Config) (Repository, error) {
	if cfg == nil {
		return nil, errors.InvalidArgument("config is required")
	}
	if err := cfg.Validate(); err != nil {
		return nil, errors.Wrap(err, "invalid config")
	}

	return &redisRepository{
		client: cfg.Client,
		clock:  cfg.Clock,
	}, nil
}

var _ Repository = (*redisRepository)(nil)

// Append records a roll under WATCH so concurrent appends are not lost
func (r *redisRepository) Append(ctx context.Context, input AppendInput) (*AppendOutput, error) {
	if input.MonsterID == "" {
		return nil, errors.InvalidArgument(errMonsterIDEmpty)
	}

	ttl := input.TTL
	if ttl <= 0 {
		ttl = defaultTTL
	}
	key := buildKey(input.MonsterID)

	var session *Session
	txf := func(tx *redis.Tx) error {
		now := r.clock.Now()

		current, err := r.load(ctx, tx, key)
		if err != nil {
			return err
		}
		if current == nil || !now.Before(current.ExpiresAt) {
			current = &Session{
				MonsterID: input.MonsterID,
				CreatedAt: now,
				ExpiresAt: now.Add(ttl),
			}
		}

		roll := input.Roll
		roll.Sequence = len(current.Rolls) + 1
		if roll.RolledAt.IsZero() {
			roll.RolledAt = now
		}
		current.Rolls = append(current.Rolls, roll)

		data, err := json.Marshal(current)
		if err != nil {
			return errors.Wrap(err, "failed to marshal session")
		}

		_, err = tx.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
			pipe.Set(ctx, key, data, current.ExpiresAt.Sub(now))
			return nil
		})
		if err != nil {
			return err
		}

		session = current
		return nil
	}

	for attempt := 0; attempt < maxAppendAttempts; attempt++ {
		err := r.client.Watch(ctx, txf, key)
		if err == nil {
			return &AppendOutput{Session: session}, nil
		}
		if errors.Is(err, redis.TxFailedErr) {
			continue
		}
		return nil, errors.Wrapf(err, "failed to append roll for monster %s", input.MonsterID)
	}

	return nil, errors.Abortedf("roll session for monster %s changed %d times during append", input.MonsterID, maxAppendAttempts)
}

// Get retrieves the live session for a monster
func (r *redisRepository) Get(ctx context.Context, input GetInput) (*GetOutput, error) {
	if input.MonsterID == "" {
		return nil, errors.InvalidArgument(errMonsterIDEmpty)
	}

	key := buildKey(input.MonsterID)
	session, err := r.load(ctx, r.client, key)
	if err != nil {
		return nil, err
	}
	if session == nil {
		return nil, errors.NotFoundf("no roll session for monster %s", input.MonsterID)
	}

	if !r.clock.Now().Before(session.ExpiresAt) {
		_ = r.client.Del(ctx, key) // nolint:errcheck // redis TTL removes it anyway
		return nil, errors.NotFoundf("roll session for monster %s has expired", input.MonsterID)
	}

	return &GetOutput{Session: session}, nil
}

// Delete removes a monster's session
func (r *redisRepository) Delete(ctx context.Context, input DeleteInput) (*DeleteOutput, error) {
	if input.MonsterID == "" {
		return nil, errors.InvalidArgument(errMonsterIDEmpty)
	}

	key := buildKey(input.MonsterID)

	var rollsDeleted int
	if session, err := r.load(ctx, r.client, key); err == nil && session != nil {
		rollsDeleted = len(session.Rolls)
	}

	if err := r.client.Del(ctx, key).Err(); err != nil {
		return nil, errors.Wrapf(err, "failed to delete roll session for monster %s", input.MonsterID)
	}

	return &DeleteOutput{RollsDeleted: rollsDeleted}, nil
}

// load reads and decodes a session, returning nil when the key is absent
func (r *redisRepository) load(ctx context.Context, c redis.Cmdable, key string) (*Session, error) {
	data, err := c.Get(ctx, key).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, nil
		}
		return nil, errors.Wrap(err, "failed to get roll session from Redis")
	}

	var session Session
	if err := json.Unmarshal(data, &session); err != nil {
		return nil, errors.Wrap(err, "failed to unmarshal roll session")
	}
	return &session, nil
}

func buildKey(monsterID string) string {
	return sessionKeyPrefix + monsterID
}

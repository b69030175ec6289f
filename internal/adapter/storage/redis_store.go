package storage

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/sneha3498/infosysproject/internal/entity"
	"github.com/sneha3498/infosysproject/internal/port"
)

const (
	sessionKeyPrefix = "session:"
	dialTimeout      = 5 * time.Second
)

// RedisStore keeps the session in Redis, keyed by profile name. Useful for
// kiosk and shared-host setups where several client processes share one
// identity. TTL bounds how long a stale token can linger.
type RedisStore struct {
	client  *redis.Client
	profile string
	ttl     time.Duration
}

func NewRedisClient(ctx context.Context, addr, password string, db int) (*redis.Client, error) {
	client := redis.NewClient(&redis.Options{
		Addr:     addr,
		Password: password,
		DB:       db,
	})

	dialCtx, cancel := context.WithTimeout(ctx, dialTimeout)
	defer cancel()

	if err := client.Ping(dialCtx).Err(); err != nil {
		client.Close()
		return nil, fmt.Errorf("failed to connect to redis at %s: %w", addr, err)
	}
	return client, nil
}

func NewRedisStore(client *redis.Client, profile string, ttl time.Duration) port.SessionStore {
	return &RedisStore{client: client, profile: profile, ttl: ttl}
}

func (s *RedisStore) key() string {
	return sessionKeyPrefix + s.profile
}

func (s *RedisStore) Load(ctx context.Context) (*entity.Session, error) {
	val, err := s.client.Get(ctx, s.key()).Result()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, nil
		}
		return nil, fmt.Errorf("RedisStore.Load: failed to get %s: %w", s.key(), err)
	}

	var session entity.Session
	if err := json.Unmarshal([]byte(val), &session); err != nil {
		return nil, fmt.Errorf("RedisStore.Load: corrupt session at %s: %w", s.key(), err)
	}
	return &session, nil
}

func (s *RedisStore) Save(ctx context.Context, session *entity.Session) error {
	if session == nil {
		return fmt.Errorf("RedisStore.Save: %w: nil session", entity.ErrValidation)
	}

	data, err := json.Marshal(session)
	if err != nil {
		return fmt.Errorf("RedisStore.Save: failed to marshal session: %w", err)
	}
	if err := s.client.Set(ctx, s.key(), data, s.ttl).Err(); err != nil {
		return fmt.Errorf("RedisStore.Save: failed to set %s: %w", s.key(), err)
	}
	return nil
}

func (s *RedisStore) Clear(ctx context.Context) error {
	if err := s.client.Del(ctx, s.key()).Err(); err != nil {
		return fmt.Errorf("RedisStore.Clear: failed to delete %s: %w", s.key(), err)
	}
	return nil
}

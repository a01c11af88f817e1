package session

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"fukuro_studio/internal/domain/entities"
	"fukuro_studio/internal/usecase/interfaces"

	"github.com/redis/go-redis/v9"
)

const keyPrefix = "fukuro:intake:"

// RedisStore keeps sessions in Redis; every Save refreshes the TTL.
type RedisStore struct {
	client *redis.Client
	ttl    time.Duration
}

var _ interfaces.IIntakeSessionStore = (*RedisStore)(nil)

// NewRedisStore connects using a redis:// URL and pings the server.
func NewRedisStore(ctx context.Context, redisURL string, ttl time.Duration) (*RedisStore, error) {
	opt, err := redis.ParseURL(redisURL)
	if err != nil {
		return nil, fmt.Errorf("parse redis url: %w", err)
	}
	client := redis.NewClient(opt)
	if err := client.Ping(ctx).Err(); err != nil {
		_ = client.Close()
		return nil, fmt.Errorf("redis ping: %w", err)
	}
	return &RedisStore{client: client, ttl: ttl}, nil
}

func (s *RedisStore) Save(ctx context.Context, session entities.IntakeSession) error {
	raw, err := json.Marshal(session)
	if err != nil {
		return err
	}
	return s.client.Set(ctx, keyPrefix+session.ID, raw, s.ttl).Err()
}

func (s *RedisStore) Get(ctx context.Context, id string) (entities.IntakeSession, error) {
	raw, err := s.client.Get(ctx, keyPrefix+id).Bytes()
	if errors.Is(err, redis.Nil) {
		return entities.IntakeSession{}, nil
	}
	if err != nil {
		return entities.IntakeSession{}, err
	}

	var session entities.IntakeSession
	if err := json.Unmarshal(raw, &session); err != nil {
		return entities.IntakeSession{}, fmt.Errorf("decode session %s: %w", id, err)
	}
	return session, nil
}

func (s *RedisStore) Close() error {
	return s.client.Close()
}

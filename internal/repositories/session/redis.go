package session

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/redis/go-redis/v9"

	"github.com/dayspring/gather/internal/models"
)

const (
	// Key prefixes for Redis
	sessionKeyPrefix  = "session:"
	publicSessionsKey = "sessions:public"
)

// Config holds configuration for the Redis session store
type Config struct {
	// Redis client
	RedisClient *redis.Client
}

// redisRemote implements the Remote interface against the shared Redis store
type redisRemote struct {
	client *redis.Client
}

// NewRedis creates a new Redis-backed remote session store
func NewRedis(cfg *Config) (*redisRemote, error) {
	if cfg == nil {
		return nil, errors.New("config cannot be nil")
	}
	if cfg.RedisClient == nil {
		return nil, errors.New("redis client cannot be nil")
	}

	if err := cfg.RedisClient.Ping(context.Background()).Err(); err != nil {
		return nil, fmt.Errorf("failed to connect to Redis: %w", err)
	}

	return &redisRemote{
		client: cfg.RedisClient,
	}, nil
}

// Upsert writes one session to the shared store and maintains the
// public-sessions index
func (r *redisRemote) Upsert(ctx context.Context, input *UpsertInput) error {
	if input == nil || input.Session == nil {
		return errors.New("input and session cannot be nil")
	}

	sessionJSON, err := json.Marshal(input.Session)
	if err != nil {
		return fmt.Errorf("failed to marshal session: %w", err)
	}

	pipe := r.client.Pipeline()

	sessionKey := fmt.Sprintf("%s%s", sessionKeyPrefix, input.Session.ID)
	pipe.Set(ctx, sessionKey, sessionJSON, 0)

	if input.Session.Private {
		pipe.SRem(ctx, publicSessionsKey, input.Session.ID)
	} else {
		pipe.SAdd(ctx, publicSessionsKey, input.Session.ID)
	}

	if _, err := pipe.Exec(ctx); err != nil {
		return fmt.Errorf("failed to upsert session: %w", err)
	}

	return nil
}

// FetchAll retrieves every public session from the shared store
func (r *redisRemote) FetchAll(ctx context.Context, input *FetchAllInput) ([]*models.Session, error) {
	sessionIDs, err := r.client.SMembers(ctx, publicSessionsKey).Result()
	if err != nil {
		return nil, fmt.Errorf("failed to get public session IDs: %w", err)
	}

	if len(sessionIDs) == 0 {
		return []*models.Session{}, nil
	}

	pipe := r.client.Pipeline()
	cmds := make(map[string]*redis.StringCmd, len(sessionIDs))
	for _, id := range sessionIDs {
		cmds[id] = pipe.Get(ctx, fmt.Sprintf("%s%s", sessionKeyPrefix, id))
	}

	if _, err := pipe.Exec(ctx); err != nil && err != redis.Nil {
		return nil, fmt.Errorf("failed to fetch sessions: %w", err)
	}

	sessions := make([]*models.Session, 0, len(sessionIDs))
	for id, cmd := range cmds {
		sessionJSON, err := cmd.Result()
		if err != nil {
			if err == redis.Nil {
				// Session removed between index read and fetch
				continue
			}
			return nil, fmt.Errorf("failed to fetch session %s: %w", id, err)
		}

		var s models.Session
		if err := json.Unmarshal([]byte(sessionJSON), &s); err != nil {
			return nil, fmt.Errorf("failed to unmarshal session %s: %w", id, err)
		}
		sessions = append(sessions, &s)
	}

	return sessions, nil
}

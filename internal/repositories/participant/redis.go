package participant

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
	participantKeyPrefix = "participant:"
	sessionMembersPrefix = "session:members:"
)

// Config holds configuration for the Redis participant store
type Config struct {
	// Redis client
	RedisClient *redis.Client
}

// redisRemote implements the Remote interface against the shared Redis store
type redisRemote struct {
	client *redis.Client
}

// NewRedis creates a new Redis-backed remote participant store
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

// Upsert writes one membership record and indexes it under its session
func (r *redisRemote) Upsert(ctx context.Context, input *UpsertInput) error {
	if input == nil || input.Participant == nil {
		return errors.New("input and participant cannot be nil")
	}

	participantJSON, err := json.Marshal(input.Participant)
	if err != nil {
		return fmt.Errorf("failed to marshal participant: %w", err)
	}

	pipe := r.client.Pipeline()

	participantKey := fmt.Sprintf("%s%s", participantKeyPrefix, input.Participant.ID)
	pipe.Set(ctx, participantKey, participantJSON, 0)

	membersKey := fmt.Sprintf("%s%s", sessionMembersPrefix, input.Participant.SessionID)
	pipe.ZAdd(ctx, membersKey, redis.Z{
		Score:  float64(input.Participant.JoinedAt.UnixNano()),
		Member: input.Participant.ID,
	})

	if _, err := pipe.Exec(ctx); err != nil {
		return fmt.Errorf("failed to upsert participant: %w", err)
	}

	return nil
}

// FetchAll retrieves every membership record for a session, join order first
func (r *redisRemote) FetchAll(ctx context.Context, input *FetchAllInput) ([]*models.Participant, error) {
	if input == nil || input.SessionID == "" {
		return nil, errors.New("input and session ID cannot be empty")
	}

	membersKey := fmt.Sprintf("%s%s", sessionMembersPrefix, input.SessionID)
	ids, err := r.client.ZRange(ctx, membersKey, 0, -1).Result()
	if err != nil {
		return nil, fmt.Errorf("failed to get participant IDs: %w", err)
	}

	if len(ids) == 0 {
		return []*models.Participant{}, nil
	}

	pipe := r.client.Pipeline()
	cmds := make([]*redis.StringCmd, len(ids))
	for i, id := range ids {
		cmds[i] = pipe.Get(ctx, fmt.Sprintf("%s%s", participantKeyPrefix, id))
	}

	if _, err := pipe.Exec(ctx); err != nil && err != redis.Nil {
		return nil, fmt.Errorf("failed to fetch participants: %w", err)
	}

	participants := make([]*models.Participant, 0, len(ids))
	for i, cmd := range cmds {
		participantJSON, err := cmd.Result()
		if err != nil {
			if err == redis.Nil {
				continue
			}
			return nil, fmt.Errorf("failed to fetch participant %s: %w", ids[i], err)
		}

		var p models.Participant
		if err := json.Unmarshal([]byte(participantJSON), &p); err != nil {
			return nil, fmt.Errorf("failed to unmarshal participant %s: %w", ids[i], err)
		}
		participants = append(participants, &p)
	}

	return participants, nil
}

package invitation

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
	invitationKeyPrefix  = "invitation:"
	sessionInvitesPrefix = "session:invites:"
)

// Config holds configuration for the Redis invitation store
type Config struct {
	// Redis client
	RedisClient *redis.Client
}

// redisRemote implements the Remote interface against the shared Redis store
type redisRemote struct {
	client *redis.Client
}

// NewRedis creates a new Redis-backed remote invitation store
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

// Upsert writes one invitation and indexes it under its session
func (r *redisRemote) Upsert(ctx context.Context, input *UpsertInput) error {
	if input == nil || input.Invitation == nil {
		return errors.New("input and invitation cannot be nil")
	}

	invitationJSON, err := json.Marshal(input.Invitation)
	if err != nil {
		return fmt.Errorf("failed to marshal invitation: %w", err)
	}

	pipe := r.client.Pipeline()

	invitationKey := fmt.Sprintf("%s%s", invitationKeyPrefix, input.Invitation.ID)
	pipe.Set(ctx, invitationKey, invitationJSON, 0)

	invitesKey := fmt.Sprintf("%s%s", sessionInvitesPrefix, input.Invitation.SessionID)
	pipe.ZAdd(ctx, invitesKey, redis.Z{
		Score:  float64(input.Invitation.CreatedAt.UnixNano()),
		Member: input.Invitation.ID,
	})

	if _, err := pipe.Exec(ctx); err != nil {
		return fmt.Errorf("failed to upsert invitation: %w", err)
	}

	return nil
}

// FetchAll retrieves every invitation for a session, newest first
func (r *redisRemote) FetchAll(ctx context.Context, input *FetchAllInput) ([]*models.Invitation, error) {
	if input == nil || input.SessionID == "" {
		return nil, errors.New("input and session ID cannot be empty")
	}

	invitesKey := fmt.Sprintf("%s%s", sessionInvitesPrefix, input.SessionID)
	ids, err := r.client.ZRevRange(ctx, invitesKey, 0, -1).Result()
	if err != nil {
		return nil, fmt.Errorf("failed to get invitation IDs: %w", err)
	}

	if len(ids) == 0 {
		return []*models.Invitation{}, nil
	}

	pipe := r.client.Pipeline()
	cmds := make([]*redis.StringCmd, len(ids))
	for i, id := range ids {
		cmds[i] = pipe.Get(ctx, fmt.Sprintf("%s%s", invitationKeyPrefix, id))
	}

	if _, err := pipe.Exec(ctx); err != nil && err != redis.Nil {
		return nil, fmt.Errorf("failed to fetch invitations: %w", err)
	}

	invitations := make([]*models.Invitation, 0, len(ids))
	for i, cmd := range cmds {
		invitationJSON, err := cmd.Result()
		if err != nil {
			if err == redis.Nil {
				continue
			}
			return nil, fmt.Errorf("failed to fetch invitation %s: %w", ids[i], err)
		}

		var inv models.Invitation
		if err := json.Unmarshal([]byte(invitationJSON), &inv); err != nil {
			return nil, fmt.Errorf("failed to unmarshal invitation %s: %w", ids[i], err)
		}
		invitations = append(invitations, &inv)
	}

	return invitations, nil
}

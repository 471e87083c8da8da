package message

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
	messageKeyPrefix  = "message:"
	sessionChatPrefix = "session:chat:"
)

// Config holds configuration for the Redis message store
type Config struct {
	// Redis client
	RedisClient *redis.Client
}

// redisRemote implements the Remote interface against the shared Redis store
type redisRemote struct {
	client *redis.Client
}

// NewRedis creates a new Redis-backed remote message store
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

// Upsert writes one message and indexes it in the session's chat timeline
func (r *redisRemote) Upsert(ctx context.Context, input *UpsertInput) error {
	if input == nil || input.Message == nil {
		return errors.New("input and message cannot be nil")
	}

	messageJSON, err := json.Marshal(input.Message)
	if err != nil {
		return fmt.Errorf("failed to marshal message: %w", err)
	}

	pipe := r.client.Pipeline()

	messageKey := fmt.Sprintf("%s%s", messageKeyPrefix, input.Message.ID)
	pipe.Set(ctx, messageKey, messageJSON, 0)

	chatKey := fmt.Sprintf("%s%s", sessionChatPrefix, input.Message.SessionID)
	pipe.ZAdd(ctx, chatKey, redis.Z{
		Score:  float64(input.Message.Timestamp.UnixNano()),
		Member: input.Message.ID,
	})

	if _, err := pipe.Exec(ctx); err != nil {
		return fmt.Errorf("failed to upsert message: %w", err)
	}

	return nil
}

// FetchAll retrieves every message for a session in chronological order
func (r *redisRemote) FetchAll(ctx context.Context, input *FetchAllInput) ([]*models.ChatMessage, error) {
	if input == nil || input.SessionID == "" {
		return nil, errors.New("input and session ID cannot be empty")
	}

	chatKey := fmt.Sprintf("%s%s", sessionChatPrefix, input.SessionID)
	ids, err := r.client.ZRange(ctx, chatKey, 0, -1).Result()
	if err != nil {
		return nil, fmt.Errorf("failed to get message IDs: %w", err)
	}

	if len(ids) == 0 {
		return []*models.ChatMessage{}, nil
	}

	pipe := r.client.Pipeline()
	cmds := make([]*redis.StringCmd, len(ids))
	for i, id := range ids {
		cmds[i] = pipe.Get(ctx, fmt.Sprintf("%s%s", messageKeyPrefix, id))
	}

	if _, err := pipe.Exec(ctx); err != nil && err != redis.Nil {
		return nil, fmt.Errorf("failed to fetch messages: %w", err)
	}

	messages := make([]*models.ChatMessage, 0, len(ids))
	for i, cmd := range cmds {
		messageJSON, err := cmd.Result()
		if err != nil {
			if err == redis.Nil {
				continue
			}
			return nil, fmt.Errorf("failed to fetch message %s: %w", ids[i], err)
		}

		var m models.ChatMessage
		if err := json.Unmarshal([]byte(messageJSON), &m); err != nil {
			return nil, fmt.Errorf("failed to unmarshal message %s: %w", ids[i], err)
		}
		messages = append(messages, &m)
	}

	return messages, nil
}

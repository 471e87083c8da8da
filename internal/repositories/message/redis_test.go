package message

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/suite"

	"github.com/dayspring/gather/internal/models"
)

type RedisRemoteTestSuite struct {
	suite.Suite
	mr      *miniredis.Miniredis
	client  *redis.Client
	remote  Remote
	testNow time.Time
}

func (s *RedisRemoteTestSuite) SetupTest() {
	mr, err := miniredis.Run()
	s.Require().NoError(err)
	s.mr = mr

	s.client = redis.NewClient(&redis.Options{
		Addr: s.mr.Addr(),
	})

	remote, err := NewRedis(&Config{
		RedisClient: s.client,
	})
	s.Require().NoError(err)
	s.remote = remote

	s.testNow = time.Date(2026, 3, 1, 19, 0, 0, 0, time.UTC)
}

func (s *RedisRemoteTestSuite) TearDownTest() {
	s.client.Close()
	s.mr.Close()
}

func TestRedisRemoteTestSuite(t *testing.T) {
	suite.Run(t, new(RedisRemoteTestSuite))
}

func (s *RedisRemoteTestSuite) newMessage(id string, at time.Time) *models.ChatMessage {
	return &models.ChatMessage{
		ID:        id,
		SessionID: "sess-1",
		UserID:    "user-1",
		UserName:  "Ruth",
		Body:      "Psalm 46:10",
		Timestamp: at,
		Type:      models.MessageTypeScripture,
	}
}

func (s *RedisRemoteTestSuite) TestUpsertAndFetchAllChronological() {
	ctx := context.Background()

	s.Require().NoError(s.remote.Upsert(ctx, &UpsertInput{Message: s.newMessage("m-2", s.testNow.Add(time.Minute))}))
	s.Require().NoError(s.remote.Upsert(ctx, &UpsertInput{Message: s.newMessage("m-1", s.testNow)}))
	s.Require().NoError(s.remote.Upsert(ctx, &UpsertInput{Message: s.newMessage("m-3", s.testNow.Add(2*time.Minute))}))

	messages, err := s.remote.FetchAll(ctx, &FetchAllInput{SessionID: "sess-1"})
	s.Require().NoError(err)
	s.Require().Len(messages, 3)
	s.Equal("m-1", messages[0].ID)
	s.Equal("m-2", messages[1].ID)
	s.Equal("m-3", messages[2].ID)
}

func (s *RedisRemoteTestSuite) TestUpsertIsIdempotent() {
	ctx := context.Background()

	m := s.newMessage("m-1", s.testNow)
	s.Require().NoError(s.remote.Upsert(ctx, &UpsertInput{Message: m}))
	s.Require().NoError(s.remote.Upsert(ctx, &UpsertInput{Message: m}))

	messages, err := s.remote.FetchAll(ctx, &FetchAllInput{SessionID: "sess-1"})
	s.Require().NoError(err)
	s.Len(messages, 1)
}

func (s *RedisRemoteTestSuite) TestFetchAllEmptySession() {
	messages, err := s.remote.FetchAll(context.Background(), &FetchAllInput{SessionID: "sess-quiet"})
	s.Require().NoError(err)
	s.Empty(messages)
}

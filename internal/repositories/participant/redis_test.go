package participant

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

func (s *RedisRemoteTestSuite) newParticipant(id, sessionID, userID string, joinedAt time.Time) *models.Participant {
	return &models.Participant{
		ID:        id,
		SessionID: sessionID,
		UserID:    userID,
		UserName:  "User " + userID,
		JoinedAt:  joinedAt,
		Active:    true,
	}
}

func (s *RedisRemoteTestSuite) TestUpsertAndFetchAllOrdered() {
	ctx := context.Background()

	second := s.newParticipant("p-2", "sess-1", "user-2", s.testNow.Add(time.Minute))
	first := s.newParticipant("p-1", "sess-1", "user-1", s.testNow)

	s.Require().NoError(s.remote.Upsert(ctx, &UpsertInput{Participant: second}))
	s.Require().NoError(s.remote.Upsert(ctx, &UpsertInput{Participant: first}))

	participants, err := s.remote.FetchAll(ctx, &FetchAllInput{SessionID: "sess-1"})
	s.Require().NoError(err)
	s.Require().Len(participants, 2)

	// Join order, earliest first
	s.Equal("p-1", participants[0].ID)
	s.Equal("p-2", participants[1].ID)
}

func (s *RedisRemoteTestSuite) TestFetchAllScopedToSession() {
	ctx := context.Background()

	s.Require().NoError(s.remote.Upsert(ctx, &UpsertInput{
		Participant: s.newParticipant("p-1", "sess-1", "user-1", s.testNow),
	}))
	s.Require().NoError(s.remote.Upsert(ctx, &UpsertInput{
		Participant: s.newParticipant("p-2", "sess-2", "user-1", s.testNow),
	}))

	participants, err := s.remote.FetchAll(ctx, &FetchAllInput{SessionID: "sess-1"})
	s.Require().NoError(err)
	s.Require().Len(participants, 1)
	s.Equal("p-1", participants[0].ID)
}

func (s *RedisRemoteTestSuite) TestUpsertLeavePropagates() {
	ctx := context.Background()

	p := s.newParticipant("p-1", "sess-1", "user-1", s.testNow)
	s.Require().NoError(s.remote.Upsert(ctx, &UpsertInput{Participant: p}))

	left := s.testNow.Add(10 * time.Minute)
	p.Active = false
	p.LeftAt = &left
	s.Require().NoError(s.remote.Upsert(ctx, &UpsertInput{Participant: p}))

	participants, err := s.remote.FetchAll(ctx, &FetchAllInput{SessionID: "sess-1"})
	s.Require().NoError(err)
	s.Require().Len(participants, 1)
	s.False(participants[0].Active)
	s.Require().NotNil(participants[0].LeftAt)
	s.True(participants[0].LeftAt.Equal(left))
}

func (s *RedisRemoteTestSuite) TestFetchAllEmptySession() {
	participants, err := s.remote.FetchAll(context.Background(), &FetchAllInput{SessionID: "sess-none"})
	s.Require().NoError(err)
	s.Empty(participants)
}

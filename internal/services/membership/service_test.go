package membership

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"

	clockMocks "github.com/dayspring/gather/internal/common/clock/mocks"
	uuidMocks "github.com/dayspring/gather/internal/common/uuid/mocks"
	"github.com/dayspring/gather/internal/models"
	participantRepo "github.com/dayspring/gather/internal/repositories/participant"
	participantMocks "github.com/dayspring/gather/internal/repositories/participant/mocks"
	sessionRepo "github.com/dayspring/gather/internal/repositories/session"
	sessionMocks "github.com/dayspring/gather/internal/repositories/session/mocks"
)

type MembershipServiceTestSuite struct {
	suite.Suite
	mockCtrl            *gomock.Controller
	mockSessionRepo     *sessionMocks.MockRepository
	mockParticipantRepo *participantMocks.MockRepository
	mockClock           *clockMocks.MockClock
	mockUUID            *uuidMocks.MockUUID
	svc                 Service
	ctx                 context.Context

	testTime      time.Time
	testSessionID string
	testUserID    string
	testUserName  string
}

func (s *MembershipServiceTestSuite) SetupTest() {
	s.mockCtrl = gomock.NewController(s.T())
	s.mockSessionRepo = sessionMocks.NewMockRepository(s.mockCtrl)
	s.mockParticipantRepo = participantMocks.NewMockRepository(s.mockCtrl)
	s.mockClock = clockMocks.NewMockClock(s.mockCtrl)
	s.mockUUID = uuidMocks.NewMockUUID(s.mockCtrl)

	s.ctx = context.Background()

	s.testTime = time.Date(2026, 3, 1, 19, 0, 0, 0, time.UTC)
	s.testSessionID = "test-session-id"
	s.testUserID = "test-user-id"
	s.testUserName = "Test User"

	s.mockClock.EXPECT().Now().Return(s.testTime).AnyTimes()

	svc, err := New(&Config{
		SessionRepo:     s.mockSessionRepo,
		ParticipantRepo: s.mockParticipantRepo,
		Clock:           s.mockClock,
		UUID:            s.mockUUID,
	})
	s.Require().NoError(err)
	s.svc = svc
}

func (s *MembershipServiceTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestMembershipServiceTestSuite(t *testing.T) {
	suite.Run(t, new(MembershipServiceTestSuite))
}

func (s *MembershipServiceTestSuite) session(current, max int) *models.Session {
	return &models.Session{
		ID:                  s.testSessionID,
		Title:               "Evening Prayer",
		HostID:              "host-id",
		StartTime:           s.testTime.Add(-time.Hour),
		Active:              true,
		MaxParticipants:     max,
		CurrentParticipants: current,
		Private:             true,
		UpdatedAt:           s.testTime.Add(-time.Hour),
	}
}

func (s *MembershipServiceTestSuite) activeParticipant(id, userID string) *models.Participant {
	return &models.Participant{
		ID:        id,
		SessionID: s.testSessionID,
		UserID:    userID,
		UserName:  "User " + userID,
		JoinedAt:  s.testTime.Add(-30 * time.Minute),
		Active:    true,
	}
}

func (s *MembershipServiceTestSuite) TestJoinSessionSuccess() {
	s.mockSessionRepo.EXPECT().
		GetSession(s.ctx, &sessionRepo.GetSessionInput{SessionID: s.testSessionID}).
		Return(s.session(1, 5), nil)

	s.mockParticipantRepo.EXPECT().
		ListBySession(s.ctx, &participantRepo.ListBySessionInput{SessionID: s.testSessionID}).
		Return([]*models.Participant{s.activeParticipant("p-1", "other-user")}, nil)

	s.mockUUID.EXPECT().NewUUID().Return("new-participant-id")

	s.mockParticipantRepo.EXPECT().
		SaveParticipant(s.ctx, gomock.Any()).
		DoAndReturn(func(_ context.Context, input *participantRepo.SaveParticipantInput) error {
			s.Equal("new-participant-id", input.Participant.ID)
			s.Equal(s.testUserID, input.Participant.UserID)
			s.True(input.Participant.Active)
			s.True(input.Participant.JoinedAt.Equal(s.testTime))
			return nil
		})

	s.mockSessionRepo.EXPECT().
		SaveSession(s.ctx, gomock.Any()).
		DoAndReturn(func(_ context.Context, input *sessionRepo.SaveSessionInput) error {
			s.Equal(2, input.Session.CurrentParticipants)
			s.True(input.Session.UpdatedAt.Equal(s.testTime))
			return nil
		})

	out, err := s.svc.JoinSession(s.ctx, &JoinSessionInput{
		SessionID: s.testSessionID,
		UserID:    s.testUserID,
		UserName:  s.testUserName,
	})
	s.Require().NoError(err)
	s.Equal(2, out.Session.CurrentParticipants)
	s.Equal("new-participant-id", out.Participant.ID)
}

func (s *MembershipServiceTestSuite) TestJoinSessionFullRejects() {
	s.mockSessionRepo.EXPECT().
		GetSession(s.ctx, gomock.Any()).
		Return(s.session(2, 2), nil)

	s.mockParticipantRepo.EXPECT().
		ListBySession(s.ctx, gomock.Any()).
		Return([]*models.Participant{
			s.activeParticipant("p-1", "user-a"),
			s.activeParticipant("p-2", "user-b"),
		}, nil)

	_, err := s.svc.JoinSession(s.ctx, &JoinSessionInput{
		SessionID: s.testSessionID,
		UserID:    s.testUserID,
	})
	s.ErrorIs(err, ErrSessionFull)
}

func (s *MembershipServiceTestSuite) TestJoinSessionCapacityUsesCountNotCachedCounter() {
	// Cached counter says full, but only one participant is actually
	// active: the set, not the counter, decides.
	s.mockSessionRepo.EXPECT().
		GetSession(s.ctx, gomock.Any()).
		Return(s.session(2, 2), nil)

	s.mockParticipantRepo.EXPECT().
		ListBySession(s.ctx, gomock.Any()).
		Return([]*models.Participant{s.activeParticipant("p-1", "user-a")}, nil)

	s.mockUUID.EXPECT().NewUUID().Return("new-participant-id")
	s.mockParticipantRepo.EXPECT().SaveParticipant(s.ctx, gomock.Any()).Return(nil)

	s.mockSessionRepo.EXPECT().
		SaveSession(s.ctx, gomock.Any()).
		DoAndReturn(func(_ context.Context, input *sessionRepo.SaveSessionInput) error {
			s.Equal(2, input.Session.CurrentParticipants)
			return nil
		})

	_, err := s.svc.JoinSession(s.ctx, &JoinSessionInput{
		SessionID: s.testSessionID,
		UserID:    s.testUserID,
	})
	s.NoError(err)
}

func (s *MembershipServiceTestSuite) TestJoinSessionAlreadyMember() {
	s.mockSessionRepo.EXPECT().
		GetSession(s.ctx, gomock.Any()).
		Return(s.session(1, 5), nil)

	s.mockParticipantRepo.EXPECT().
		ListBySession(s.ctx, gomock.Any()).
		Return([]*models.Participant{s.activeParticipant("p-1", s.testUserID)}, nil)

	_, err := s.svc.JoinSession(s.ctx, &JoinSessionInput{
		SessionID: s.testSessionID,
		UserID:    s.testUserID,
	})
	s.ErrorIs(err, ErrAlreadyMember)
}

func (s *MembershipServiceTestSuite) TestJoinSessionRejoinAfterLeaving() {
	left := s.testTime.Add(-10 * time.Minute)
	gone := s.activeParticipant("p-1", s.testUserID)
	gone.Active = false
	gone.LeftAt = &left

	s.mockSessionRepo.EXPECT().
		GetSession(s.ctx, gomock.Any()).
		Return(s.session(0, 5), nil)

	s.mockParticipantRepo.EXPECT().
		ListBySession(s.ctx, gomock.Any()).
		Return([]*models.Participant{gone}, nil)

	s.mockUUID.EXPECT().NewUUID().Return("new-participant-id")
	s.mockParticipantRepo.EXPECT().SaveParticipant(s.ctx, gomock.Any()).Return(nil)
	s.mockSessionRepo.EXPECT().
		SaveSession(s.ctx, gomock.Any()).
		DoAndReturn(func(_ context.Context, input *sessionRepo.SaveSessionInput) error {
			s.Equal(1, input.Session.CurrentParticipants)
			return nil
		})

	_, err := s.svc.JoinSession(s.ctx, &JoinSessionInput{
		SessionID: s.testSessionID,
		UserID:    s.testUserID,
	})
	s.NoError(err)
}

func (s *MembershipServiceTestSuite) TestJoinSessionEnded() {
	sess := s.session(0, 5)
	sess.Active = false
	end := s.testTime.Add(-time.Minute)
	sess.EndTime = &end

	s.mockSessionRepo.EXPECT().
		GetSession(s.ctx, gomock.Any()).
		Return(sess, nil)

	_, err := s.svc.JoinSession(s.ctx, &JoinSessionInput{
		SessionID: s.testSessionID,
		UserID:    s.testUserID,
	})
	s.ErrorIs(err, ErrSessionEnded)
}

func (s *MembershipServiceTestSuite) TestJoinSessionRollsBackOnSessionSaveFailure() {
	s.mockSessionRepo.EXPECT().
		GetSession(s.ctx, gomock.Any()).
		Return(s.session(0, 5), nil)

	s.mockParticipantRepo.EXPECT().
		ListBySession(s.ctx, gomock.Any()).
		Return([]*models.Participant{}, nil)

	s.mockUUID.EXPECT().NewUUID().Return("new-participant-id")
	s.mockParticipantRepo.EXPECT().SaveParticipant(s.ctx, gomock.Any()).Return(nil)

	saveErr := errors.New("disk full")
	s.mockSessionRepo.EXPECT().SaveSession(s.ctx, gomock.Any()).Return(saveErr)

	// The just-inserted row must be removed again
	s.mockParticipantRepo.EXPECT().
		DeleteParticipant(s.ctx, &participantRepo.DeleteParticipantInput{ParticipantID: "new-participant-id"}).
		Return(nil)

	_, err := s.svc.JoinSession(s.ctx, &JoinSessionInput{
		SessionID: s.testSessionID,
		UserID:    s.testUserID,
	})
	s.ErrorIs(err, saveErr)
}

func (s *MembershipServiceTestSuite) TestLeaveSession() {
	member := s.activeParticipant("p-1", s.testUserID)

	s.mockSessionRepo.EXPECT().
		GetSession(s.ctx, gomock.Any()).
		Return(s.session(1, 5), nil)

	s.mockParticipantRepo.EXPECT().
		ListBySession(s.ctx, gomock.Any()).
		Return([]*models.Participant{member}, nil)

	s.mockParticipantRepo.EXPECT().
		SaveParticipant(s.ctx, gomock.Any()).
		DoAndReturn(func(_ context.Context, input *participantRepo.SaveParticipantInput) error {
			s.False(input.Participant.Active)
			s.Require().NotNil(input.Participant.LeftAt)
			s.True(input.Participant.LeftAt.Equal(s.testTime))
			return nil
		})

	s.mockSessionRepo.EXPECT().
		SaveSession(s.ctx, gomock.Any()).
		DoAndReturn(func(_ context.Context, input *sessionRepo.SaveSessionInput) error {
			s.Equal(0, input.Session.CurrentParticipants)
			return nil
		})

	out, err := s.svc.LeaveSession(s.ctx, &LeaveSessionInput{
		SessionID: s.testSessionID,
		UserID:    s.testUserID,
	})
	s.Require().NoError(err)
	s.Equal(0, out.Session.CurrentParticipants)
}

func (s *MembershipServiceTestSuite) TestLeaveSessionNotMember() {
	s.mockSessionRepo.EXPECT().
		GetSession(s.ctx, gomock.Any()).
		Return(s.session(1, 5), nil)

	s.mockParticipantRepo.EXPECT().
		ListBySession(s.ctx, gomock.Any()).
		Return([]*models.Participant{s.activeParticipant("p-1", "someone-else")}, nil)

	_, err := s.svc.LeaveSession(s.ctx, &LeaveSessionInput{
		SessionID: s.testSessionID,
		UserID:    s.testUserID,
	})
	s.ErrorIs(err, ErrNotMember)
}

func (s *MembershipServiceTestSuite) TestLeaveCountNeverBelowZero() {
	member := s.activeParticipant("p-1", s.testUserID)

	sess := s.session(0, 5) // counter already drifted to zero

	s.mockSessionRepo.EXPECT().GetSession(s.ctx, gomock.Any()).Return(sess, nil)
	s.mockParticipantRepo.EXPECT().
		ListBySession(s.ctx, gomock.Any()).
		Return([]*models.Participant{member}, nil)
	s.mockParticipantRepo.EXPECT().SaveParticipant(s.ctx, gomock.Any()).Return(nil)

	s.mockSessionRepo.EXPECT().
		SaveSession(s.ctx, gomock.Any()).
		DoAndReturn(func(_ context.Context, input *sessionRepo.SaveSessionInput) error {
			s.Equal(0, input.Session.CurrentParticipants)
			return nil
		})

	_, err := s.svc.LeaveSession(s.ctx, &LeaveSessionInput{
		SessionID: s.testSessionID,
		UserID:    s.testUserID,
	})
	s.NoError(err)
}

func (s *MembershipServiceTestSuite) TestActiveParticipantsFiltersInactive() {
	left := s.testTime.Add(-time.Minute)
	gone := s.activeParticipant("p-2", "user-b")
	gone.Active = false
	gone.LeftAt = &left

	s.mockParticipantRepo.EXPECT().
		ListBySession(s.ctx, gomock.Any()).
		Return([]*models.Participant{s.activeParticipant("p-1", "user-a"), gone}, nil)

	out, err := s.svc.ActiveParticipants(s.ctx, &ActiveParticipantsInput{SessionID: s.testSessionID})
	s.Require().NoError(err)
	s.Require().Len(out.Participants, 1)
	s.Equal("p-1", out.Participants[0].ID)
}

func (s *MembershipServiceTestSuite) TestReconcileCountRepairsDrift() {
	s.mockSessionRepo.EXPECT().
		GetSession(s.ctx, gomock.Any()).
		Return(s.session(5, 8), nil)

	s.mockParticipantRepo.EXPECT().
		ListBySession(s.ctx, gomock.Any()).
		Return([]*models.Participant{
			s.activeParticipant("p-1", "user-a"),
			s.activeParticipant("p-2", "user-b"),
		}, nil)

	s.mockSessionRepo.EXPECT().
		SaveSession(s.ctx, gomock.Any()).
		DoAndReturn(func(_ context.Context, input *sessionRepo.SaveSessionInput) error {
			s.Equal(2, input.Session.CurrentParticipants)
			return nil
		})

	out, err := s.svc.ReconcileCount(s.ctx, &ReconcileCountInput{SessionID: s.testSessionID})
	s.Require().NoError(err)
	s.Equal(2, out.Count)
}

func (s *MembershipServiceTestSuite) TestReconcileCountNoDriftNoWrite() {
	s.mockSessionRepo.EXPECT().
		GetSession(s.ctx, gomock.Any()).
		Return(s.session(1, 8), nil)

	s.mockParticipantRepo.EXPECT().
		ListBySession(s.ctx, gomock.Any()).
		Return([]*models.Participant{s.activeParticipant("p-1", "user-a")}, nil)

	out, err := s.svc.ReconcileCount(s.ctx, &ReconcileCountInput{SessionID: s.testSessionID})
	s.Require().NoError(err)
	s.Equal(1, out.Count)
}

func (s *MembershipServiceTestSuite) TestJoinSessionReplicatesDetachedCopy() {
	sessionRemote := sessionMocks.NewMockRemote(s.mockCtrl)
	participantRemote := participantMocks.NewMockRemote(s.mockCtrl)

	svc, err := New(&Config{
		SessionRepo:       s.mockSessionRepo,
		ParticipantRepo:   s.mockParticipantRepo,
		SessionRemote:     sessionRemote,
		ParticipantRemote: participantRemote,
		Clock:             s.mockClock,
		UUID:              s.mockUUID,
	})
	s.Require().NoError(err)

	sess := s.session(1, 5)
	sess.Private = false

	s.mockSessionRepo.EXPECT().GetSession(s.ctx, gomock.Any()).Return(sess, nil)
	s.mockParticipantRepo.EXPECT().ListBySession(s.ctx, gomock.Any()).Return(nil, nil)
	s.mockUUID.EXPECT().NewUUID().Return("new-participant-id")
	s.mockParticipantRepo.EXPECT().SaveParticipant(s.ctx, gomock.Any()).Return(nil)
	s.mockSessionRepo.EXPECT().SaveSession(s.ctx, gomock.Any()).Return(nil)

	pushedSess := make(chan *models.Session, 1)
	sessionRemote.EXPECT().
		Upsert(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, input *sessionRepo.UpsertInput) error {
			pushedSess <- input.Session
			return nil
		})

	pushedPart := make(chan *models.Participant, 1)
	participantRemote.EXPECT().
		Upsert(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, input *participantRepo.UpsertInput) error {
			pushedPart <- input.Participant
			return nil
		})

	out, err := svc.JoinSession(s.ctx, &JoinSessionInput{
		SessionID: s.testSessionID,
		UserID:    s.testUserID,
		UserName:  s.testUserName,
	})
	s.Require().NoError(err)

	// The rows handed to the remote are copies: mutating the returned
	// rows afterward must not show up in what gets pushed
	out.Session.CurrentParticipants = 99
	out.Participant.UserName = "someone else"

	select {
	case got := <-pushedSess:
		s.NotSame(out.Session, got)
		s.Equal(1, got.CurrentParticipants)
	case <-time.After(time.Second):
		s.Fail("session was never replicated")
	}

	select {
	case got := <-pushedPart:
		s.NotSame(out.Participant, got)
		s.Equal(s.testUserName, got.UserName)
	case <-time.After(time.Second):
		s.Fail("participant was never replicated")
	}
}

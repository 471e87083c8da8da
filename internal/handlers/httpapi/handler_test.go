package httpapi

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"

	"github.com/dayspring/gather/internal/models"
	invitationSvc "github.com/dayspring/gather/internal/services/invitation"
	invitationMocks "github.com/dayspring/gather/internal/services/invitation/mocks"
	"github.com/dayspring/gather/internal/services/membership"
	membershipMocks "github.com/dayspring/gather/internal/services/membership/mocks"
	sessionSvc "github.com/dayspring/gather/internal/services/session"
	sessionMocks "github.com/dayspring/gather/internal/services/session/mocks"
)

type HandlerTestSuite struct {
	suite.Suite
	mockCtrl        *gomock.Controller
	mockSessions    *sessionMocks.MockService
	mockMembership  *membershipMocks.MockService
	mockInvitations *invitationMocks.MockService
	router          http.Handler

	testTime      time.Time
	testSessionID string
}

func (s *HandlerTestSuite) SetupTest() {
	s.mockCtrl = gomock.NewController(s.T())
	s.mockSessions = sessionMocks.NewMockService(s.mockCtrl)
	s.mockMembership = membershipMocks.NewMockService(s.mockCtrl)
	s.mockInvitations = invitationMocks.NewMockService(s.mockCtrl)

	s.testTime = time.Date(2026, 3, 1, 19, 0, 0, 0, time.UTC)
	s.testSessionID = "test-session-id"

	h, err := New(&Config{
		SessionService:    s.mockSessions,
		MembershipService: s.mockMembership,
		InvitationService: s.mockInvitations,
	})
	s.Require().NoError(err)
	s.router = h.Router()
}

func (s *HandlerTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestHandlerTestSuite(t *testing.T) {
	suite.Run(t, new(HandlerTestSuite))
}

func (s *HandlerTestSuite) do(method, path string, body any) *httptest.ResponseRecorder {
	var buf bytes.Buffer
	if body != nil {
		s.Require().NoError(json.NewEncoder(&buf).Encode(body))
	}

	req := httptest.NewRequest(method, path, &buf)
	rec := httptest.NewRecorder()
	s.router.ServeHTTP(rec, req)
	return rec
}

func (s *HandlerTestSuite) decode(rec *httptest.ResponseRecorder) map[string]any {
	var body map[string]any
	s.Require().NoError(json.Unmarshal(rec.Body.Bytes(), &body))
	return body
}

func (s *HandlerTestSuite) liveSession() *models.Session {
	return &models.Session{
		ID:                  s.testSessionID,
		Title:               "Evening Prayer",
		HostID:              "test-host-id",
		StartTime:           s.testTime,
		Active:              true,
		MaxParticipants:     5,
		CurrentParticipants: 1,
		UpdatedAt:           s.testTime,
	}
}

func (s *HandlerTestSuite) TestHealth() {
	rec := s.do(http.MethodGet, "/health", nil)
	s.Equal(http.StatusOK, rec.Code)
}

func (s *HandlerTestSuite) TestCreateSession() {
	s.mockSessions.EXPECT().
		CreateSession(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, input *sessionSvc.CreateSessionInput) (*sessionSvc.CreateSessionOutput, error) {
			s.Equal("Evening Prayer", input.Title)
			s.Equal("test-host-id", input.HostID)
			return &sessionSvc.CreateSessionOutput{
				Session: s.liveSession(),
				Host:    &models.Participant{ID: "host-row", Host: true},
			}, nil
		})

	rec := s.do(http.MethodPost, "/api/v1/sessions", map[string]any{
		"hostId":   "test-host-id",
		"hostName": "Hannah",
		"title":    "Evening Prayer",
	})

	s.Equal(http.StatusCreated, rec.Code)
	body := s.decode(rec)
	s.Contains(body, "session")
	s.Contains(body, "host")
}

func (s *HandlerTestSuite) TestCreateSessionMissingTitle() {
	s.mockSessions.EXPECT().
		CreateSession(gomock.Any(), gomock.Any()).
		Return(nil, sessionSvc.ErrMissingTitle)

	rec := s.do(http.MethodPost, "/api/v1/sessions", map[string]any{"hostId": "test-host-id"})

	s.Equal(http.StatusBadRequest, rec.Code)
	s.Equal("session title cannot be empty", s.decode(rec)["error"])
}

func (s *HandlerTestSuite) TestJoinSessionFull() {
	s.mockMembership.EXPECT().
		JoinSession(gomock.Any(), gomock.Any()).
		Return(nil, membership.ErrSessionFull)

	rec := s.do(http.MethodPost, "/api/v1/sessions/"+s.testSessionID+"/join", map[string]any{
		"userId": "test-user-id",
	})

	s.Equal(http.StatusConflict, rec.Code)
	s.Equal("session is at maximum capacity", s.decode(rec)["error"])
}

func (s *HandlerTestSuite) TestJoinSessionAnnounces() {
	s.mockMembership.EXPECT().
		JoinSession(gomock.Any(), &membership.JoinSessionInput{
			SessionID: s.testSessionID,
			UserID:    "test-user-id",
			UserName:  "Ruth",
		}).
		Return(&membership.JoinSessionOutput{
			Participant: &models.Participant{ID: "p1", UserID: "test-user-id"},
			Session:     s.liveSession(),
		}, nil)

	s.mockSessions.EXPECT().
		SendMessage(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, input *sessionSvc.SendMessageInput) (*sessionSvc.SendMessageOutput, error) {
			s.Equal(models.MessageTypeSystem, input.Type)
			s.Equal("Ruth joined the session", input.Body)
			return &sessionSvc.SendMessageOutput{
				Message: &models.ChatMessage{ID: "sys-1", Type: models.MessageTypeSystem},
			}, nil
		})

	rec := s.do(http.MethodPost, "/api/v1/sessions/"+s.testSessionID+"/join", map[string]any{
		"userId":   "test-user-id",
		"userName": "Ruth",
	})

	s.Equal(http.StatusOK, rec.Code)
}

func (s *HandlerTestSuite) TestPersistenceErrorStaysGeneric() {
	s.mockSessions.EXPECT().
		GetSession(gomock.Any(), gomock.Any()).
		Return(nil, errors.New("redis: connection refused"))

	rec := s.do(http.MethodGet, "/api/v1/sessions/"+s.testSessionID, nil)

	s.Equal(http.StatusInternalServerError, rec.Code)
	s.Equal("something went wrong, please try again", s.decode(rec)["error"])
}

func (s *HandlerTestSuite) TestEndSessionNotHost() {
	s.mockSessions.EXPECT().
		EndSession(gomock.Any(), gomock.Any()).
		Return(nil, sessionSvc.ErrNotHost)

	rec := s.do(http.MethodPost, "/api/v1/sessions/"+s.testSessionID+"/end", map[string]any{
		"userId": "not-the-host",
	})

	s.Equal(http.StatusForbidden, rec.Code)
}

func (s *HandlerTestSuite) TestCreateInvitation() {
	s.mockInvitations.EXPECT().
		CreateInvitation(gomock.Any(), &invitationSvc.CreateInvitationInput{
			SessionID: s.testSessionID,
			HostID:    "test-host-id",
			HostName:  "Hannah",
		}).
		Return(&invitationSvc.CreateInvitationOutput{
			Invitation: &models.Invitation{
				ID:         "inv-1",
				SessionID:  s.testSessionID,
				InviteCode: "ABCD1234",
				Status:     models.InvitationStatusPending,
			},
			DeepLink: "app://session/test-session-id/code/ABCD1234",
		}, nil)

	rec := s.do(http.MethodPost, "/api/v1/sessions/"+s.testSessionID+"/invitations", map[string]any{
		"hostId":   "test-host-id",
		"hostName": "Hannah",
	})

	s.Equal(http.StatusCreated, rec.Code)
	s.Equal("app://session/test-session-id/code/ABCD1234", s.decode(rec)["deepLink"])
}

func (s *HandlerTestSuite) TestAcceptExpiredInvitation() {
	s.mockInvitations.EXPECT().
		AcceptInvitation(gomock.Any(), gomock.Any()).
		Return(nil, invitationSvc.ErrInvitationExpired)

	rec := s.do(http.MethodPost, "/api/v1/invitations/ABCD1234/accept", map[string]any{
		"userId": "test-user-id",
	})

	s.Equal(http.StatusGone, rec.Code)
}

func (s *HandlerTestSuite) TestDeepLinkFlagsSessionMismatch() {
	s.mockInvitations.EXPECT().
		ResolveInvitation(gomock.Any(), &invitationSvc.ResolveInvitationInput{Code: "ABCD1234"}).
		Return(&invitationSvc.ResolveInvitationOutput{
			Invitation: &models.Invitation{
				ID:         "inv-1",
				SessionID:  s.testSessionID,
				InviteCode: "ABCD1234",
				Status:     models.InvitationStatusPending,
			},
			Valid: true,
		}, nil)

	// The link names a different session than the invitation
	rec := s.do(http.MethodGet, "/session/some-other-session/code/ABCD1234", nil)

	s.Equal(http.StatusOK, rec.Code)
	body := s.decode(rec)
	s.Equal(true, body["valid"])
	s.Equal(false, body["linkedSessionMatches"])
	s.Equal(s.testSessionID, body["sessionId"])
}

func (s *HandlerTestSuite) TestResolveUnknownCode() {
	s.mockInvitations.EXPECT().
		ResolveInvitation(gomock.Any(), gomock.Any()).
		Return(nil, invitationSvc.ErrInvitationNotFound)

	rec := s.do(http.MethodGet, "/api/v1/invitations/NOPE0000", nil)

	s.Equal(http.StatusNotFound, rec.Code)
}

func (s *HandlerTestSuite) TestSendMessage() {
	s.mockSessions.EXPECT().
		SendMessage(gomock.Any(), &sessionSvc.SendMessageInput{
			SessionID: s.testSessionID,
			UserID:    "test-user-id",
			UserName:  "Ruth",
			Body:      "Amen",
			Type:      models.MessageTypeText,
		}).
		Return(&sessionSvc.SendMessageOutput{
			Message: &models.ChatMessage{
				ID:        "m1",
				SessionID: s.testSessionID,
				Body:      "Amen",
				Type:      models.MessageTypeText,
				Timestamp: s.testTime,
			},
		}, nil)

	rec := s.do(http.MethodPost, "/api/v1/sessions/"+s.testSessionID+"/messages", map[string]any{
		"userId":   "test-user-id",
		"userName": "Ruth",
		"body":     "Amen",
		"type":     "text",
	})

	s.Equal(http.StatusCreated, rec.Code)
}

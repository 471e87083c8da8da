package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"github.com/redis/go-redis/v9"
	"github.com/robfig/cron/v3"
	"go.uber.org/zap"

	"github.com/dayspring/gather/internal/common/clock"
	"github.com/dayspring/gather/internal/common/invitecode"
	"github.com/dayspring/gather/internal/common/uuid"
	"github.com/dayspring/gather/internal/config"
	"github.com/dayspring/gather/internal/handlers/httpapi"
	invitationRepo "github.com/dayspring/gather/internal/repositories/invitation"
	messageRepo "github.com/dayspring/gather/internal/repositories/message"
	participantRepo "github.com/dayspring/gather/internal/repositories/participant"
	sessionRepo "github.com/dayspring/gather/internal/repositories/session"
	invitationService "github.com/dayspring/gather/internal/services/invitation"
	membershipService "github.com/dayspring/gather/internal/services/membership"
	"github.com/dayspring/gather/internal/services/notify"
	sessionService "github.com/dayspring/gather/internal/services/session"
	syncService "github.com/dayspring/gather/internal/services/sync"
)

func main() {
	// Load .env if present; the real environment still wins
	_ = godotenv.Load()

	logger, err := zap.NewProduction()
	if err != nil {
		log.Fatalf("Failed to create logger: %v", err)
	}
	defer logger.Sync()
	zap.ReplaceGlobals(logger)

	cfg, err := config.Load()
	if err != nil {
		zap.S().Fatalw("failed to load configuration", "error", err)
	}

	// Initialize the shared-store client
	redisClient := redis.NewClient(&redis.Options{
		Addr:     cfg.RedisAddr,
		Password: cfg.RedisPassword,
		DB:       cfg.RedisDB,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := redisClient.Ping(ctx).Err(); err != nil {
		zap.S().Fatalw("failed to connect to redis", "addr", cfg.RedisAddr, "error", err)
	}

	// Local caches
	sessionCache := sessionRepo.NewMemory()
	participantCache := participantRepo.NewMemory()
	invitationCache := invitationRepo.NewMemory()
	messageCache := messageRepo.NewMemory()

	// Shared remotes
	sessionRemote, err := sessionRepo.NewRedis(&sessionRepo.Config{RedisClient: redisClient})
	if err != nil {
		zap.S().Fatalw("failed to create session remote", "error", err)
	}

	participantRemote, err := participantRepo.NewRedis(&participantRepo.Config{RedisClient: redisClient})
	if err != nil {
		zap.S().Fatalw("failed to create participant remote", "error", err)
	}

	invitationRemote, err := invitationRepo.NewRedis(&invitationRepo.Config{RedisClient: redisClient})
	if err != nil {
		zap.S().Fatalw("failed to create invitation remote", "error", err)
	}

	messageRemote, err := messageRepo.NewRedis(&messageRepo.Config{RedisClient: redisClient})
	if err != nil {
		zap.S().Fatalw("failed to create message remote", "error", err)
	}

	clk := clock.New()
	uuider := uuid.New()

	membershipSvc, err := membershipService.New(&membershipService.Config{
		SessionRepo:       sessionCache,
		ParticipantRepo:   participantCache,
		SessionRemote:     sessionRemote,
		ParticipantRemote: participantRemote,
		Clock:             clk,
		UUID:              uuider,
	})
	if err != nil {
		zap.S().Fatalw("failed to create membership service", "error", err)
	}

	var emailSender notify.EmailSender
	if cfg.SendgridAPIKey != "" {
		emailSender, err = notify.NewSendgrid(&notify.SendgridConfig{
			APIKey:    cfg.SendgridAPIKey,
			FromName:  cfg.InviteFromName,
			FromEmail: cfg.InviteFromEmail,
		})
		if err != nil {
			zap.S().Fatalw("failed to create email sender", "error", err)
		}
	}

	invitationSvc, err := invitationService.New(&invitationService.Config{
		InvitationRepo:   invitationCache,
		SessionRepo:      sessionCache,
		InvitationRemote: invitationRemote,
		Membership:       membershipSvc,
		Notifier:         notify.NewLog(),
		EmailSender:      emailSender,
		CodeGenerator:    invitecode.New(),
		Clock:            clk,
		UUID:             uuider,
	})
	if err != nil {
		zap.S().Fatalw("failed to create invitation service", "error", err)
	}

	sessionSvc, err := sessionService.New(&sessionService.Config{
		SessionRepo:            sessionCache,
		MessageRepo:            messageCache,
		SessionRemote:          sessionRemote,
		MessageRemote:          messageRemote,
		Membership:             membershipSvc,
		DefaultMaxParticipants: cfg.DefaultMaxParticipants,
		Clock:                  clk,
		UUID:                   uuider,
	})
	if err != nil {
		zap.S().Fatalw("failed to create session service", "error", err)
	}

	syncSvc, err := syncService.New(&syncService.Config{
		SessionRepo:       sessionCache,
		ParticipantRepo:   participantCache,
		InvitationRepo:    invitationCache,
		MessageRepo:       messageCache,
		SessionRemote:     sessionRemote,
		ParticipantRemote: participantRemote,
		InvitationRemote:  invitationRemote,
		MessageRemote:     messageRemote,
		Clock:             clk,
	})
	if err != nil {
		zap.S().Fatalw("failed to create sync service", "error", err)
	}

	handler, err := httpapi.New(&httpapi.Config{
		SessionService:    sessionSvc,
		MembershipService: membershipSvc,
		InvitationService: invitationSvc,
		SyncService:       syncSvc,
	})
	if err != nil {
		zap.S().Fatalw("failed to create http handler", "error", err)
	}

	// Periodic reconciliation; cron triggers coalesce with on-demand
	// ones through the scheduler
	scheduler := cron.New()
	_, err = scheduler.AddFunc("@every "+cfg.SyncInterval.String(), func() {
		runSyncPass(sessionCache, syncSvc)
	})
	if err != nil {
		zap.S().Fatalw("failed to schedule periodic sync", "error", err)
	}
	scheduler.Start()
	defer scheduler.Stop()

	server := &http.Server{
		Addr:    cfg.HTTPAddr,
		Handler: handler.Router(),
	}

	go func() {
		zap.S().Infow("listening", "addr", cfg.HTTPAddr)
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			zap.S().Fatalw("server failed", "error", err)
		}
	}()

	// Wait for a termination signal
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	<-sigCh

	zap.S().Info("shutting down")

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer shutdownCancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		zap.S().Errorw("shutdown failed", "error", err)
	}
}

// runSyncPass reconciles the session list and every locally known
// active session's records
func runSyncPass(sessions sessionRepo.Repository, svc syncService.Service) {
	ctx := context.Background()

	if _, err := svc.SyncSessions(ctx, &syncService.SyncSessionsInput{}); err != nil {
		zap.S().Warnw("failed to trigger session sync", "error", err)
	}

	known, err := sessions.ListSessions(ctx, &sessionRepo.ListSessionsInput{})
	if err != nil {
		zap.S().Warnw("failed to list sessions for sync pass", "error", err)
		return
	}

	for _, sess := range known {
		if !sess.Active {
			continue
		}

		sessionID := sess.ID
		svc.SyncParticipants(ctx, &syncService.SyncParticipantsInput{SessionID: sessionID})
		svc.SyncInvitations(ctx, &syncService.SyncInvitationsInput{SessionID: sessionID})
		svc.SyncMessages(ctx, &syncService.SyncMessagesInput{SessionID: sessionID})
	}
}

package notify

//go:generate mockgen -package=mocks -destination=mocks/mock_notify.go github.com/dayspring/gather/internal/services/notify Notifier,EmailSender

import "context"

// Notifier delivers in-app notifications. Calls are fire-and-forget
// from the caller's point of view; a failed delivery is logged, never
// propagated into the operation that triggered it.
type Notifier interface {
	Notify(ctx context.Context, input *NotifyInput) error
}

// EmailSender delivers invitation emails.
type EmailSender interface {
	SendInvite(ctx context.Context, input *SendInviteInput) error
}

type NotifyInput struct {
	UserID  string
	Message string
}

type SendInviteInput struct {
	ToEmail      string
	HostName     string
	SessionTitle string
	InviteCode   string
}

package notify

import (
	"context"
	"errors"

	"go.uber.org/zap"
)

// logNotifier is the default Notifier. Push delivery belongs to the host
// application; this records what would have been delivered.
type logNotifier struct{}

// NewLog creates a logging notifier
func NewLog() *logNotifier {
	return &logNotifier{}
}

// Notify logs the notification
func (n *logNotifier) Notify(ctx context.Context, input *NotifyInput) error {
	if input == nil || input.UserID == "" {
		return errors.New("input and user ID cannot be empty")
	}

	zap.S().Infow("notification", "user_id", input.UserID, "message", input.Message)
	return nil
}

package notify

import (
	"context"
	"errors"
	"fmt"

	"github.com/sendgrid/sendgrid-go"
	"github.com/sendgrid/sendgrid-go/helpers/mail"
)

// SendgridConfig holds configuration for the sendgrid email sender
type SendgridConfig struct {
	// APIKey is the sendgrid API key
	APIKey string

	// FromName and FromEmail identify the sending address
	FromName  string
	FromEmail string
}

// sendgridSender implements EmailSender with sendgrid
type sendgridSender struct {
	client *sendgrid.Client
	from   *mail.Email
}

// NewSendgrid creates a sendgrid-backed email sender
func NewSendgrid(cfg *SendgridConfig) (*sendgridSender, error) {
	if cfg == nil {
		return nil, errors.New("config cannot be nil")
	}
	if cfg.APIKey == "" {
		return nil, errors.New("sendgrid API key cannot be empty")
	}
	if cfg.FromEmail == "" {
		return nil, errors.New("from email cannot be empty")
	}

	return &sendgridSender{
		client: sendgrid.NewSendClient(cfg.APIKey),
		from:   mail.NewEmail(cfg.FromName, cfg.FromEmail),
	}, nil
}

// SendInvite emails an invitation with its shareable code
func (s *sendgridSender) SendInvite(ctx context.Context, input *SendInviteInput) error {
	if input == nil || input.ToEmail == "" {
		return errors.New("input and recipient email cannot be empty")
	}

	subject := fmt.Sprintf("%s invited you to %q", input.HostName, input.SessionTitle)
	plain := fmt.Sprintf(
		"%s invited you to join the session %q.\n\nYour invite code is %s. It expires in 7 days.",
		input.HostName, input.SessionTitle, input.InviteCode,
	)
	html := fmt.Sprintf(
		"<p>%s invited you to join the session <strong>%s</strong>.</p><p>Your invite code is <strong>%s</strong>. It expires in 7 days.</p>",
		input.HostName, input.SessionTitle, input.InviteCode,
	)

	to := mail.NewEmail("", input.ToEmail)
	message := mail.NewSingleEmail(s.from, subject, to, plain, html)

	response, err := s.client.SendWithContext(ctx, message)
	if err != nil {
		return fmt.Errorf("failed to send invite email: %w", err)
	}

	if response.StatusCode < 200 || response.StatusCode >= 300 {
		return fmt.Errorf("invite email rejected with status %d", response.StatusCode)
	}

	return nil
}

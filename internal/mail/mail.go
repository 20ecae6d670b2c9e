package mail

import (
	"context"
	"fmt"
	"os"

	"github.com/sendgrid/sendgrid-go"
	sgmail "github.com/sendgrid/sendgrid-go/helpers/mail"

	"github.com/Sachidanand-dev/ai-powered-lms-edu-ai/internal/config"
)

// Service sends transactional mail (OTP codes).
type Service interface {
	Send(ctx context.Context, toEmail, subject, body string) error
}

type sendgridService struct {
	client *sendgrid.Client
	from   *sgmail.Email
}

// NewSendgridService builds the SendGrid-backed mail service.
func NewSendgridService(apiKey, appName, fromEmail string) Service {
	return &sendgridService{
		client: sendgrid.NewSendClient(apiKey),
		from:   sgmail.NewEmail(appName, fromEmail),
	}
}

func (s *sendgridService) Send(ctx context.Context, toEmail, subject, body string) error {
	log := config.WithContext(ctx)

	to := sgmail.NewEmail("", toEmail)
	message := sgmail.NewSingleEmail(s.from, subject, to, body, body)

	resp, err := s.client.SendWithContext(ctx, message)
	if err != nil {
		return fmt.Errorf("sendgrid send: %w", err)
	}
	if resp.StatusCode >= 400 {
		return fmt.Errorf("sendgrid send: status %d", resp.StatusCode)
	}

	log.Infof("sent %q email to %s", subject, toEmail)
	return nil
}

type consoleService struct{}

// NewConsoleService logs mail instead of sending it. Used when no
// SENDGRID_API_KEY is configured (local development).
func NewConsoleService() Service {
	return &consoleService{}
}

func (s *consoleService) Send(ctx context.Context, toEmail, subject, body string) error {
	config.WithContext(ctx).Infof("console mail to=%s subject=%q body=%q", toEmail, subject, body)
	return nil
}

// NewFromEnv picks the SendGrid service when a key is configured and the
// console service otherwise.
func NewFromEnv() Service {
	key := os.Getenv("SENDGRID_API_KEY")
	if key == "" {
		return NewConsoleService()
	}
	from := os.Getenv("MAIL_FROM")
	if from == "" {
		from = "no-reply@edu-ai.app"
	}
	return NewSendgridService(key, "EduAI", from)
}

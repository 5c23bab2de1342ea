// Package service implements the application's business logic on top of the
// repository layer. Services enforce uniqueness, credential, ownership, and
// token rules and return errors from the shared taxonomy.
package service

import (
	"fmt"

	"github.com/rs/zerolog/log"
	"github.com/sendgrid/sendgrid-go"
	"github.com/sendgrid/sendgrid-go/helpers/mail"

	"github.com/niiakoadjei/BlogApp/internal/config"
)

// EmailSender sends transactional email. Abstracted so tests can capture
// outgoing mail instead of hitting the provider.
type EmailSender interface {
	SendPasswordReset(toEmail, toName, resetToken string) error
}

// SendGridEmailService sends email through the SendGrid API.
type SendGridEmailService struct {
	client *sendgrid.Client
	config *config.MailSettings
}

// NewSendGridEmailService creates an email service from mail settings.
func NewSendGridEmailService(cfg *config.MailSettings) *SendGridEmailService {
	return &SendGridEmailService{
		client: sendgrid.NewSendClient(cfg.APIKey),
		config: cfg,
	}
}

// SendPasswordReset sends a password reset email containing a link with the
// reset token. The token itself is never logged.
func (s *SendGridEmailService) SendPasswordReset(toEmail, toName, resetToken string) error {
	from := mail.NewEmail(s.config.FromName, s.config.FromAddress)
	to := mail.NewEmail(toName, toEmail)

	resetLink := fmt.Sprintf("%s?token=%s", s.config.ResetURL, resetToken)
	plainText := fmt.Sprintf(
		"To reset your password, visit the following link:\n\n%s\n\n"+
			"The link expires in 30 minutes. If you did not request a password reset, "+
			"simply ignore this email and no changes will be made.",
		resetLink,
	)
	htmlContent := fmt.Sprintf(
		`<p>To reset your password, <a href="%s">click here</a>.</p>`+
			`<p>The link expires in 30 minutes. If you did not request a password reset, `+
			`simply ignore this email and no changes will be made.</p>`,
		resetLink,
	)

	message := mail.NewSingleEmail(from, "Password Reset Request", to, plainText, htmlContent)

	response, err := s.client.Send(message)
	if err != nil {
		return fmt.Errorf("failed to send password reset email: %w", err)
	}
	if response.StatusCode >= 400 {
		return fmt.Errorf("password reset email rejected with status %d", response.StatusCode)
	}

	log.Info().
		Str("to", toEmail).
		Int("status", response.StatusCode).
		Msg("Password reset email sent")

	return nil
}

// Package mailer sends transactional email over SMTP.
package mailer

import (
	"fmt"
	"net/smtp"

	"github.com/jordan-wright/email"

	"expensia/internal/config"
	"expensia/internal/logger"
)

// Mailer dispatches notification email. Implementations must return an error
// when delivery cannot be confirmed so callers can roll back dependent state.
type Mailer interface {
	SendPasswordReset(to, name, resetURL string) error
}

// SMTPMailer sends email through an SMTP relay using credentials fixed at
// construction.
type SMTPMailer struct {
	host     string
	port     string
	username string
	password string
	from     string
}

// NewSMTP creates an SMTPMailer from application configuration.
func NewSMTP(cfg *config.Config) *SMTPMailer {
	return &SMTPMailer{
		host:     cfg.SMTPHost,
		port:     cfg.SMTPPort,
		username: cfg.SMTPUsername,
		password: cfg.SMTPPassword,
		from:     cfg.SenderEmail,
	}
}

// SendPasswordReset sends a password reset email containing the reset link.
// The link expires one hour after issuance.
func (m *SMTPMailer) SendPasswordReset(to, name, resetURL string) error {
	e := email.NewEmail()
	e.From = fmt.Sprintf("Expensia Support <%s>", m.from)
	e.To = []string{to}
	e.Subject = "Password Reset Request - Expensia"

	body := fmt.Sprintf(
		"Hello %s,\n\n"+
			"We received a request to reset the password for your Expensia account.\n"+
			"Open the link below to choose a new password:\n\n"+
			"%s\n\n"+
			"This link will expire in 1 hour.\n\n"+
			"If you didn't request a password reset, you can ignore this email and\n"+
			"your password will remain unchanged.\n\n"+
			"Expensia",
		name, resetURL,
	)
	e.Text = []byte(body)

	addr := fmt.Sprintf("%s:%s", m.host, m.port)
	auth := smtp.PlainAuth("", m.username, m.password, m.host)
	if err := e.Send(addr, auth); err != nil {
		logger.Get().Errorw("failed to send password reset email", "error", err)
		return fmt.Errorf("failed to send password reset email: %w", err)
	}

	logger.Get().Infow("password reset email sent", "to", to)
	return nil
}

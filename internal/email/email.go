package email

import (
	"fmt"

	"giglink_backend/internal/config"
	"giglink_backend/internal/logger"

	"gopkg.in/gomail.v2"
)

// Sender delivers notification mail. Delivery is best effort: callers log
// failures and never fail the request over them.
type Sender interface {
	SendWelcome(to, displayName string) error
	SendApplicationStatus(to, jobTitle, status string) error
}

type SMTPSender struct {
	dialer   *gomail.Dialer
	from     string
	fromName string
}

// NoopSender is used when mail is disabled in config.
type NoopSender struct{}

func NewSender(cfg *config.Config) Sender {
	if !cfg.Email.Enabled {
		return &NoopSender{}
	}
	return &SMTPSender{
		dialer:   gomail.NewDialer(cfg.Email.SMTPHost, cfg.Email.SMTPPort, cfg.Email.SMTPUsername, cfg.Email.SMTPPassword),
		from:     cfg.Email.FromEmail,
		fromName: cfg.Email.FromName,
	}
}

func (s *SMTPSender) send(to, subject, body string) error {
	m := gomail.NewMessage()
	m.SetAddressHeader("From", s.from, s.fromName)
	m.SetHeader("To", to)
	m.SetHeader("Subject", subject)
	m.SetBody("text/plain", body)
	return s.dialer.DialAndSend(m)
}

func (s *SMTPSender) SendWelcome(to, displayName string) error {
	body := fmt.Sprintf(
		"Hi %s,\n\nWelcome to GigLink. Fill out your profile and start connecting with artists and venues.\n",
		displayName,
	)
	return s.send(to, "Welcome to GigLink", body)
}

func (s *SMTPSender) SendApplicationStatus(to, jobTitle, status string) error {
	body := fmt.Sprintf(
		"Hi,\n\nYour application for %q was %s.\n",
		jobTitle, status,
	)
	return s.send(to, "Application update: "+jobTitle, body)
}

func (n *NoopSender) SendWelcome(to, displayName string) error {
	logger.Debug("email disabled, skipping welcome mail", "to", to)
	return nil
}

func (n *NoopSender) SendApplicationStatus(to, jobTitle, status string) error {
	logger.Debug("email disabled, skipping status mail", "to", to)
	return nil
}

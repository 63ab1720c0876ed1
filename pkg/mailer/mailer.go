package mailer

import (
	"fmt"

	"bike-service/pkg/utils"

	"go.uber.org/zap"
	"gopkg.in/gomail.v2"
)

// Mailer sends a single HTML email. Implementations are side-effect only;
// callers decide what a failure means.
type Mailer interface {
	Send(to, subject, htmlBody string) error
}

// SMTPMailer sends through the SMTP relay configured in EmailConfig.
type SMTPMailer struct {
	config utils.EmailConfig
}

func NewSMTPMailer(config utils.EmailConfig) *SMTPMailer {
	return &SMTPMailer{config: config}
}

func (m *SMTPMailer) Send(to, subject, htmlBody string) error {
	msg := gomail.NewMessage()
	msg.SetHeader("From", m.config.From)
	msg.SetHeader("To", to)
	msg.SetHeader("Subject", subject)
	msg.SetBody("text/html", htmlBody)

	dialer := gomail.NewDialer(m.config.Host, m.config.Port, m.config.User, m.config.Password)

	if err := dialer.DialAndSend(msg); err != nil {
		return fmt.Errorf("send email to %s: %w", to, err)
	}

	return nil
}

// NopMailer logs instead of sending. Used when SMTP is not configured.
type NopMailer struct {
	log *zap.Logger
}

func NewNopMailer(log *zap.Logger) *NopMailer {
	return &NopMailer{log: log.With(zap.String("mailer", "nop"))}
}

func (m *NopMailer) Send(to, subject, htmlBody string) error {
	m.log.Info("Email suppressed (SMTP not configured)",
		zap.String("to", to),
		zap.String("subject", subject),
	)
	return nil
}

// FromConfig picks the SMTP mailer when a host is configured, the nop
// mailer otherwise.
func FromConfig(config utils.EmailConfig, log *zap.Logger) Mailer {
	if config.Host == "" {
		return NewNopMailer(log)
	}
	return NewSMTPMailer(config)
}

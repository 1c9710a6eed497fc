package email

import (
	"fmt"

	"newsroom_backend/internal/config"

	"gopkg.in/gomail.v2"
)

// SMTPProvider реализует Provider поверх gomail
type SMTPProvider struct {
	cfg *config.Config
}

func NewSMTPProvider(cfg *config.Config) *SMTPProvider {
	return &SMTPProvider{cfg: cfg}
}

func (p *SMTPProvider) Send(email *Email) error {
	if len(email.To) == 0 {
		return fmt.Errorf("no recipients specified")
	}

	m := gomail.NewMessage()
	m.SetHeader("From", m.FormatAddress(p.cfg.Email.FromEmail, p.cfg.Email.FromName))
	m.SetHeader("To", email.To...)
	m.SetHeader("Subject", email.Subject)
	m.SetBody("text/html", email.HTMLBody)

	d := gomail.NewDialer(
		p.cfg.Email.SMTPHost,
		p.cfg.Email.SMTPPort,
		p.cfg.Email.SMTPUsername,
		p.cfg.Email.SMTPPassword,
	)

	return d.DialAndSend(m)
}

func (p *SMTPProvider) SendVerification(to, code string) error {
	return p.Send(&Email{
		To:       []string{to},
		Subject:  "Verify your account",
		HTMLBody: renderCodeEmail(verificationTemplate, code),
	})
}

func (p *SMTPProvider) SendPasswordReset(to, code string) error {
	return p.Send(&Email{
		To:       []string{to},
		Subject:  "Reset your password",
		HTMLBody: renderCodeEmail(passwordResetTemplate, code),
	})
}

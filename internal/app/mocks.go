package app

import (
	"newsroom_backend/internal/email"
	"newsroom_backend/internal/logger"
)

// MockEmailProvider пишет письма в лог вместо отправки.
// Используется когда email.enabled = false (локальная разработка).
type MockEmailProvider struct{}

func (m *MockEmailProvider) Send(msg *email.Email) error {
	logger.Info("[mock email] send", "to", msg.To, "subject", msg.Subject)
	return nil
}

func (m *MockEmailProvider) SendVerification(to, code string) error {
	logger.Info("[mock email] verification code", "to", to, "code", code)
	return nil
}

func (m *MockEmailProvider) SendPasswordReset(to, code string) error {
	logger.Info("[mock email] password reset code", "to", to, "code", code)
	return nil
}

package email

// Email - одно исходящее письмо
type Email struct {
	To       []string
	Subject  string
	HTMLBody string
}

// Provider определяет интерфейс для отправки email
type Provider interface {
	// Send отправляет произвольное письмо
	Send(email *Email) error

	// SendVerification отправляет код верификации аккаунта
	SendVerification(to, code string) error

	// SendPasswordReset отправляет OTP для сброса пароля
	SendPasswordReset(to, code string) error
}

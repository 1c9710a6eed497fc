package services

import (
	"testing"
	"time"

	"newsroom_backend/internal/auth"
	"newsroom_backend/internal/config"
	"newsroom_backend/internal/logger"
	"newsroom_backend/internal/models"
	"newsroom_backend/internal/services/dto"
	"newsroom_backend/pkg/apperrors"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestAuthService(t *testing.T) (AuthService, *fakeUserRepo, *recordingEmailProvider) {
	t.Helper()

	cfg := &config.Config{}
	cfg.JWT.Secret = "test-secret"
	cfg.JWT.AccessTTLMinutes = 15
	cfg.JWT.RefreshTTLDays = 60
	config.AppConfig = cfg
	logger.Init("test")

	userRepo := newFakeUserRepo()
	emailProvider := &recordingEmailProvider{}
	return NewAuthService(userRepo, emailProvider), userRepo, emailProvider
}

func signupRequest() *dto.SignupRequest {
	return &dto.SignupRequest{
		Username: "alice",
		FullName: "Alice Rahman",
		Email:    "alice@example.com",
		Password: "secret-password",
	}
}

func TestSignupCreatesUnverifiedSubscriber(t *testing.T) {
	svc, userRepo, emailProvider := newTestAuthService(t)

	resp, err := svc.Signup(nil, signupRequest())
	require.NoError(t, err)
	assert.Equal(t, models.UserRoleSubscriber, resp.Role)
	assert.False(t, resp.IsVerified)

	stored, err := userRepo.FindByUsername(nil, "alice")
	require.NoError(t, err)
	assert.NotEqual(t, "secret-password", stored.HashedPassword)
	assert.True(t, auth.CheckPasswordHash("secret-password", stored.HashedPassword))

	// Код из письма совпадает с сохраненным
	assert.Equal(t, "alice@example.com", emailProvider.lastVerificationTo)
	assert.Equal(t, stored.VerificationCode, emailProvider.lastVerificationCode)
	require.Len(t, stored.VerificationCode, 6)
}

func TestSignupRejectsDuplicateUsername(t *testing.T) {
	svc, _, _ := newTestAuthService(t)

	_, err := svc.Signup(nil, signupRequest())
	require.NoError(t, err)

	_, err = svc.Signup(nil, signupRequest())
	assert.ErrorIs(t, err, apperrors.ErrUsernameAlreadyExists)
}

func TestSignupRejectsDuplicateEmail(t *testing.T) {
	svc, _, _ := newTestAuthService(t)

	_, err := svc.Signup(nil, signupRequest())
	require.NoError(t, err)

	req := signupRequest()
	req.Username = "bob"
	_, err = svc.Signup(nil, req)
	assert.ErrorIs(t, err, apperrors.ErrEmailAlreadyExists)
}

func TestSignupRejectsWeakPassword(t *testing.T) {
	svc, _, _ := newTestAuthService(t)

	req := signupRequest()
	req.Password = "short"
	_, err := svc.Signup(nil, req)
	assert.ErrorIs(t, err, apperrors.ErrWeakPassword)
}

func TestVerifyFlow(t *testing.T) {
	svc, userRepo, emailProvider := newTestAuthService(t)

	_, err := svc.Signup(nil, signupRequest())
	require.NoError(t, err)

	// Неверный код отклоняется
	err = svc.Verify(nil, &dto.VerifyRequest{Username: "alice", Code: "000000"})
	if emailProvider.lastVerificationCode != "000000" {
		assert.ErrorIs(t, err, apperrors.ErrInvalidVerifyCode)
	}

	// Верный код активирует аккаунт и гасит код
	err = svc.Verify(nil, &dto.VerifyRequest{Username: "alice", Code: emailProvider.lastVerificationCode})
	require.NoError(t, err)

	stored, err := userRepo.FindByUsername(nil, "alice")
	require.NoError(t, err)
	assert.True(t, stored.IsVerified)
	assert.Empty(t, stored.VerificationCode)
	assert.Nil(t, stored.VerificationExpiry)

	// Повторная верификация не ошибка
	err = svc.Verify(nil, &dto.VerifyRequest{Username: "alice", Code: "irrelevant"})
	assert.NoError(t, err)
}

func TestVerifyRejectsExpiredCode(t *testing.T) {
	svc, userRepo, emailProvider := newTestAuthService(t)

	_, err := svc.Signup(nil, signupRequest())
	require.NoError(t, err)

	stored, err := userRepo.FindByUsername(nil, "alice")
	require.NoError(t, err)
	expired := time.Now().Add(-time.Minute)
	stored.VerificationExpiry = &expired
	require.NoError(t, userRepo.Update(nil, stored))

	err = svc.Verify(nil, &dto.VerifyRequest{Username: "alice", Code: emailProvider.lastVerificationCode})
	assert.ErrorIs(t, err, apperrors.ErrInvalidVerifyCode)
}

func TestResendVerificationRotatesCode(t *testing.T) {
	svc, userRepo, emailProvider := newTestAuthService(t)

	_, err := svc.Signup(nil, signupRequest())
	require.NoError(t, err)
	firstCode := emailProvider.lastVerificationCode

	require.NoError(t, svc.ResendVerification(nil, &dto.ResendVerificationRequest{Username: "alice"}))

	stored, err := userRepo.FindByUsername(nil, "alice")
	require.NoError(t, err)

	// Активен ровно один код - последний отправленный
	assert.Equal(t, emailProvider.lastVerificationCode, stored.VerificationCode)
	if firstCode != emailProvider.lastVerificationCode {
		err = svc.Verify(nil, &dto.VerifyRequest{Username: "alice", Code: firstCode})
		assert.ErrorIs(t, err, apperrors.ErrInvalidVerifyCode)
	}
}

func TestLoginRequiresVerifiedUnblockedUser(t *testing.T) {
	svc, userRepo, emailProvider := newTestAuthService(t)

	_, err := svc.Signup(nil, signupRequest())
	require.NoError(t, err)

	login := &dto.LoginRequest{Username: "alice", Password: "secret-password"}

	// До верификации входа нет
	_, err = svc.Login(nil, login)
	assert.ErrorIs(t, err, apperrors.ErrUserNotVerified)

	require.NoError(t, svc.Verify(nil, &dto.VerifyRequest{Username: "alice", Code: emailProvider.lastVerificationCode}))

	resp, err := svc.Login(nil, login)
	require.NoError(t, err)
	assert.NotEmpty(t, resp.AccessToken)
	assert.NotEmpty(t, resp.RefreshToken)
	assert.Equal(t, "alice", resp.User.Username)

	// Неверный пароль и несуществующий пользователь неразличимы
	_, err = svc.Login(nil, &dto.LoginRequest{Username: "alice", Password: "wrong"})
	assert.ErrorIs(t, err, apperrors.ErrInvalidCredentials)
	_, err = svc.Login(nil, &dto.LoginRequest{Username: "nobody", Password: "whatever"})
	assert.ErrorIs(t, err, apperrors.ErrInvalidCredentials)

	// Блокировка закрывает вход
	stored, _ := userRepo.FindByUsername(nil, "alice")
	stored.IsBlocked = true
	require.NoError(t, userRepo.Update(nil, stored))
	_, err = svc.Login(nil, login)
	assert.ErrorIs(t, err, apperrors.ErrUserBlocked)
}

func TestRefreshTokenFlow(t *testing.T) {
	svc, _, emailProvider := newTestAuthService(t)

	_, err := svc.Signup(nil, signupRequest())
	require.NoError(t, err)
	require.NoError(t, svc.Verify(nil, &dto.VerifyRequest{Username: "alice", Code: emailProvider.lastVerificationCode}))

	loginResp, err := svc.Login(nil, &dto.LoginRequest{Username: "alice", Password: "secret-password"})
	require.NoError(t, err)

	refreshResp, err := svc.Refresh(nil, loginResp.RefreshToken)
	require.NoError(t, err)
	assert.NotEmpty(t, refreshResp.AccessToken)

	// Access-токен не годится как refresh
	_, err = svc.Refresh(nil, loginResp.AccessToken)
	assert.ErrorIs(t, err, apperrors.ErrInvalidToken)
}

func TestPasswordResetFlow(t *testing.T) {
	svc, _, emailProvider := newTestAuthService(t)

	_, err := svc.Signup(nil, signupRequest())
	require.NoError(t, err)
	require.NoError(t, svc.Verify(nil, &dto.VerifyRequest{Username: "alice", Code: emailProvider.lastVerificationCode}))

	// Существование аккаунта не раскрывается
	sentBefore := emailProvider.sent
	require.NoError(t, svc.RequestPasswordReset(nil, &dto.PasswordResetRequest{Username: "nobody"}))
	assert.Equal(t, sentBefore, emailProvider.sent)

	require.NoError(t, svc.RequestPasswordReset(nil, &dto.PasswordResetRequest{Username: "alice"}))
	require.NotEmpty(t, emailProvider.lastResetCode)

	err = svc.ConfirmPasswordReset(nil, &dto.PasswordResetConfirm{
		Username:    "alice",
		Code:        emailProvider.lastResetCode,
		NewPassword: "brand-new-password",
	})
	require.NoError(t, err)

	_, err = svc.Login(nil, &dto.LoginRequest{Username: "alice", Password: "secret-password"})
	assert.ErrorIs(t, err, apperrors.ErrInvalidCredentials)

	resp, err := svc.Login(nil, &dto.LoginRequest{Username: "alice", Password: "brand-new-password"})
	require.NoError(t, err)
	assert.NotEmpty(t, resp.AccessToken)
}

package services

import (
	"time"

	"newsroom_backend/internal/auth"
	"newsroom_backend/internal/email"
	"newsroom_backend/internal/logger"
	"newsroom_backend/internal/models"
	"newsroom_backend/internal/repositories"
	"newsroom_backend/internal/services/dto"
	"newsroom_backend/pkg/apperrors"

	"gorm.io/gorm"
)

// Код верификации живет ограниченное время
const verificationCodeTTL = 30 * time.Minute

type AuthService interface {
	Signup(db *gorm.DB, req *dto.SignupRequest) (*dto.UserResponse, error)
	Verify(db *gorm.DB, req *dto.VerifyRequest) error
	ResendVerification(db *gorm.DB, req *dto.ResendVerificationRequest) error
	Login(db *gorm.DB, req *dto.LoginRequest) (*dto.AuthResponse, error)
	Refresh(db *gorm.DB, refreshToken string) (*dto.AuthResponse, error)
	RequestPasswordReset(db *gorm.DB, req *dto.PasswordResetRequest) error
	ConfirmPasswordReset(db *gorm.DB, req *dto.PasswordResetConfirm) error
}

type AuthServiceImpl struct {
	userRepo      repositories.UserRepository
	emailProvider email.Provider
}

func NewAuthService(userRepo repositories.UserRepository, emailProvider email.Provider) AuthService {
	return &AuthServiceImpl{
		userRepo:      userRepo,
		emailProvider: emailProvider,
	}
}

// Signup - открытая регистрация, роль всегда subscriber
func (s *AuthServiceImpl) Signup(db *gorm.DB, req *dto.SignupRequest) (*dto.UserResponse, error) {
	if err := auth.ValidatePassword(req.Password); err != nil {
		return nil, apperrors.ErrWeakPassword
	}

	if _, err := s.userRepo.FindByUsername(db, req.Username); err == nil {
		return nil, apperrors.ErrUsernameAlreadyExists
	} else if !apperrors.Is(err, repositories.ErrUserNotFound) {
		return nil, apperrors.InternalError(err)
	}

	if _, err := s.userRepo.FindByEmail(db, req.Email); err == nil {
		return nil, apperrors.ErrEmailAlreadyExists
	} else if !apperrors.Is(err, repositories.ErrUserNotFound) {
		return nil, apperrors.InternalError(err)
	}

	hashed, err := auth.HashPassword(req.Password)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}

	code := auth.GenerateVerificationCode()
	expiry := time.Now().Add(verificationCodeTTL)

	user := &models.User{
		Username:           req.Username,
		FullName:           req.FullName,
		Email:              req.Email,
		HashedPassword:     hashed,
		Role:               models.UserRoleSubscriber,
		VerificationCode:   code,
		VerificationExpiry: &expiry,
	}

	if err := s.userRepo.Create(db, user); err != nil {
		if apperrors.Is(err, repositories.ErrUserAlreadyExists) {
			return nil, apperrors.ErrUsernameAlreadyExists
		}
		return nil, apperrors.InternalError(err)
	}

	// Ошибка отправки не откатывает регистрацию
	if err := s.emailProvider.SendVerification(user.Email, code); err != nil {
		logger.WithError(err).Error("failed to send verification email", "username", user.Username)
	}

	resp := dto.NewUserResponse(user)
	return &resp, nil
}

// Verify - подтверждение аккаунта по коду из письма
func (s *AuthServiceImpl) Verify(db *gorm.DB, req *dto.VerifyRequest) error {
	user, err := s.findUser(db, req.Username)
	if err != nil {
		return err
	}
	if user.IsVerified {
		return nil
	}
	if !codeValid(user, req.Code) {
		return apperrors.ErrInvalidVerifyCode
	}

	user.IsVerified = true
	user.VerificationCode = ""
	user.VerificationExpiry = nil
	if err := s.userRepo.Update(db, user); err != nil {
		return apperrors.InternalError(err)
	}
	return nil
}

// ResendVerification перегенерирует единственный активный код
func (s *AuthServiceImpl) ResendVerification(db *gorm.DB, req *dto.ResendVerificationRequest) error {
	user, err := s.findUser(db, req.Username)
	if err != nil {
		return err
	}
	if user.IsVerified {
		return apperrors.NewBadRequestError("Account is already verified")
	}

	code := auth.GenerateVerificationCode()
	expiry := time.Now().Add(verificationCodeTTL)
	user.VerificationCode = code
	user.VerificationExpiry = &expiry
	if err := s.userRepo.Update(db, user); err != nil {
		return apperrors.InternalError(err)
	}

	if err := s.emailProvider.SendVerification(user.Email, code); err != nil {
		logger.WithError(err).Error("failed to send verification email", "username", user.Username)
	}
	return nil
}

// Login - выдача пары токенов по паролю
func (s *AuthServiceImpl) Login(db *gorm.DB, req *dto.LoginRequest) (*dto.AuthResponse, error) {
	user, err := s.userRepo.FindByUsername(db, req.Username)
	if err != nil {
		if apperrors.Is(err, repositories.ErrUserNotFound) {
			return nil, apperrors.ErrInvalidCredentials
		}
		return nil, apperrors.InternalError(err)
	}

	if !auth.CheckPasswordHash(req.Password, user.HashedPassword) {
		return nil, apperrors.ErrInvalidCredentials
	}
	if user.IsBlocked {
		return nil, apperrors.ErrUserBlocked
	}
	if !user.IsVerified {
		return nil, apperrors.ErrUserNotVerified
	}

	return s.issueTokens(user)
}

// Refresh - обмен refresh-токена на новую пару
func (s *AuthServiceImpl) Refresh(db *gorm.DB, refreshToken string) (*dto.AuthResponse, error) {
	claims, err := auth.ParseToken(refreshToken, auth.TokenTypeRefresh)
	if err != nil {
		return nil, apperrors.ErrInvalidToken
	}

	user, err := s.userRepo.FindByUsername(db, claims.Subject)
	if err != nil {
		if apperrors.Is(err, repositories.ErrUserNotFound) {
			return nil, apperrors.ErrInvalidToken
		}
		return nil, apperrors.InternalError(err)
	}
	if user.IsBlocked {
		return nil, apperrors.ErrUserBlocked
	}

	return s.issueTokens(user)
}

// RequestPasswordReset отправляет OTP; существование аккаунта не раскрывается
func (s *AuthServiceImpl) RequestPasswordReset(db *gorm.DB, req *dto.PasswordResetRequest) error {
	user, err := s.userRepo.FindByUsername(db, req.Username)
	if err != nil {
		if apperrors.Is(err, repositories.ErrUserNotFound) {
			return nil
		}
		return apperrors.InternalError(err)
	}

	code := auth.GenerateVerificationCode()
	expiry := time.Now().Add(verificationCodeTTL)
	user.VerificationCode = code
	user.VerificationExpiry = &expiry
	if err := s.userRepo.Update(db, user); err != nil {
		return apperrors.InternalError(err)
	}

	if err := s.emailProvider.SendPasswordReset(user.Email, code); err != nil {
		logger.WithError(err).Error("failed to send password reset email", "username", user.Username)
	}
	return nil
}

// ConfirmPasswordReset - смена пароля по OTP из письма
func (s *AuthServiceImpl) ConfirmPasswordReset(db *gorm.DB, req *dto.PasswordResetConfirm) error {
	user, err := s.findUser(db, req.Username)
	if err != nil {
		return err
	}
	if !codeValid(user, req.Code) {
		return apperrors.ErrInvalidVerifyCode
	}
	if err := auth.ValidatePassword(req.NewPassword); err != nil {
		return apperrors.ErrWeakPassword
	}

	hashed, err := auth.HashPassword(req.NewPassword)
	if err != nil {
		return apperrors.InternalError(err)
	}

	user.HashedPassword = hashed
	user.VerificationCode = ""
	user.VerificationExpiry = nil
	if err := s.userRepo.Update(db, user); err != nil {
		return apperrors.InternalError(err)
	}
	return nil
}

func (s *AuthServiceImpl) issueTokens(user *models.User) (*dto.AuthResponse, error) {
	accessToken, err := auth.GenerateAccessToken(user.Username, string(user.Role))
	if err != nil {
		return nil, apperrors.InternalError(err)
	}
	refreshToken, err := auth.GenerateRefreshToken(user.Username)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}
	return &dto.AuthResponse{
		AccessToken:  accessToken,
		RefreshToken: refreshToken,
		TokenType:    "bearer",
		User:         dto.NewUserDTO(user),
	}, nil
}

func (s *AuthServiceImpl) findUser(db *gorm.DB, username string) (*models.User, error) {
	user, err := s.userRepo.FindByUsername(db, username)
	if err != nil {
		if apperrors.Is(err, repositories.ErrUserNotFound) {
			return nil, apperrors.ErrUserNotFound
		}
		return nil, apperrors.InternalError(err)
	}
	return user, nil
}

// codeValid сравнивает код и проверяет срок его действия
func codeValid(user *models.User, code string) bool {
	if user.VerificationCode == "" || user.VerificationCode != code {
		return false
	}
	if user.VerificationExpiry == nil || time.Now().After(*user.VerificationExpiry) {
		return false
	}
	return true
}

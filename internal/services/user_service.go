package services

import (
	"newsroom_backend/internal/auth"
	"newsroom_backend/internal/models"
	"newsroom_backend/internal/repositories"
	"newsroom_backend/internal/services/dto"
	"newsroom_backend/pkg/apperrors"

	"gorm.io/gorm"
)

type UserService interface {
	List(db *gorm.DB, skip, limit int) (*dto.UserListResponse, error)
	Create(db *gorm.DB, req *dto.CreateUserRequest) (*dto.UserResponse, error)
	GetByID(db *gorm.DB, id uint) (*dto.UserResponse, error)
	GetByUsername(db *gorm.DB, username string) (*models.User, error)
	Update(db *gorm.DB, id uint, req *dto.UpdateUserRequest) (*dto.UserResponse, error)
	UpdateMe(db *gorm.DB, username string, req *dto.UpdateMeRequest) (*dto.UserResponse, error)
	Delete(db *gorm.DB, id uint) error
}

type UserServiceImpl struct {
	userRepo repositories.UserRepository
}

func NewUserService(userRepo repositories.UserRepository) UserService {
	return &UserServiceImpl{userRepo: userRepo}
}

func (s *UserServiceImpl) List(db *gorm.DB, skip, limit int) (*dto.UserListResponse, error) {
	if limit <= 0 || limit > 100 {
		limit = 20
	}
	users, err := s.userRepo.FindAll(db, limit, skip)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}
	total, err := s.userRepo.CountAll(db)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}

	resp := &dto.UserListResponse{
		Users: make([]dto.UserResponse, 0, len(users)),
		Total: total,
	}
	for i := range users {
		resp.Users = append(resp.Users, dto.NewUserResponse(&users[i]))
	}
	return resp, nil
}

// Create - создание пользователя администратором с произвольной ролью
func (s *UserServiceImpl) Create(db *gorm.DB, req *dto.CreateUserRequest) (*dto.UserResponse, error) {
	if !models.ValidUserRole(req.Role) {
		return nil, apperrors.ErrInvalidUserRole
	}
	if err := auth.ValidatePassword(req.Password); err != nil {
		return nil, apperrors.ErrWeakPassword
	}

	if _, err := s.userRepo.FindByUsername(db, req.Username); err == nil {
		return nil, apperrors.ErrUsernameAlreadyExists
	} else if !apperrors.Is(err, repositories.ErrUserNotFound) {
		return nil, apperrors.InternalError(err)
	}

	if err := s.checkEmailFree(db, req.Email); err != nil {
		return nil, err
	}

	hashed, err := auth.HashPassword(req.Password)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}

	user := &models.User{
		Username:       req.Username,
		FullName:       req.FullName,
		Email:          req.Email,
		HashedPassword: hashed,
		Role:           req.Role,
		// Созданные админом аккаунты верифицированы, если не сказано иное
		IsVerified: true,
	}
	if req.PostReviewBeforePublish != nil {
		user.PostReviewBeforePublish = *req.PostReviewBeforePublish
	}
	if req.IsVerified != nil {
		user.IsVerified = *req.IsVerified
	}

	if err := s.userRepo.Create(db, user); err != nil {
		if apperrors.Is(err, repositories.ErrUserAlreadyExists) {
			return nil, apperrors.ErrUsernameAlreadyExists
		}
		return nil, apperrors.InternalError(err)
	}

	resp := dto.NewUserResponse(user)
	return &resp, nil
}

func (s *UserServiceImpl) GetByID(db *gorm.DB, id uint) (*dto.UserResponse, error) {
	user, err := s.userRepo.FindByID(db, id)
	if err != nil {
		if apperrors.Is(err, repositories.ErrUserNotFound) {
			return nil, apperrors.ErrUserNotFound
		}
		return nil, apperrors.InternalError(err)
	}
	resp := dto.NewUserResponse(user)
	return &resp, nil
}

func (s *UserServiceImpl) GetByUsername(db *gorm.DB, username string) (*models.User, error) {
	user, err := s.userRepo.FindByUsername(db, username)
	if err != nil {
		if apperrors.Is(err, repositories.ErrUserNotFound) {
			return nil, apperrors.ErrUserNotFound
		}
		return nil, apperrors.InternalError(err)
	}
	return user, nil
}

// Update - частичное административное обновление
func (s *UserServiceImpl) Update(db *gorm.DB, id uint, req *dto.UpdateUserRequest) (*dto.UserResponse, error) {
	user, err := s.userRepo.FindByID(db, id)
	if err != nil {
		if apperrors.Is(err, repositories.ErrUserNotFound) {
			return nil, apperrors.ErrUserNotFound
		}
		return nil, apperrors.InternalError(err)
	}

	if req.Role != nil {
		if !models.ValidUserRole(*req.Role) {
			return nil, apperrors.ErrInvalidUserRole
		}
		user.Role = *req.Role
	}
	if req.FullName != nil {
		user.FullName = *req.FullName
	}
	if req.Email != nil && *req.Email != user.Email {
		if err := s.checkEmailFree(db, *req.Email); err != nil {
			return nil, err
		}
		user.Email = *req.Email
	}
	if req.Password != nil {
		if err := auth.ValidatePassword(*req.Password); err != nil {
			return nil, apperrors.ErrWeakPassword
		}
		hashed, err := auth.HashPassword(*req.Password)
		if err != nil {
			return nil, apperrors.InternalError(err)
		}
		user.HashedPassword = hashed
	}
	if req.PostReviewBeforePublish != nil {
		user.PostReviewBeforePublish = *req.PostReviewBeforePublish
	}
	if req.IsVerified != nil {
		user.IsVerified = *req.IsVerified
	}
	if req.IsBlocked != nil {
		user.IsBlocked = *req.IsBlocked
	}

	if err := s.userRepo.Update(db, user); err != nil {
		return nil, apperrors.InternalError(err)
	}

	resp := dto.NewUserResponse(user)
	return &resp, nil
}

// UpdateMe - обновление собственного профиля
func (s *UserServiceImpl) UpdateMe(db *gorm.DB, username string, req *dto.UpdateMeRequest) (*dto.UserResponse, error) {
	user, err := s.GetByUsername(db, username)
	if err != nil {
		return nil, err
	}

	if req.FullName != nil {
		user.FullName = *req.FullName
	}
	if req.Email != nil && *req.Email != user.Email {
		if err := s.checkEmailFree(db, *req.Email); err != nil {
			return nil, err
		}
		user.Email = *req.Email
	}
	if req.Password != nil {
		if err := auth.ValidatePassword(*req.Password); err != nil {
			return nil, apperrors.ErrWeakPassword
		}
		hashed, err := auth.HashPassword(*req.Password)
		if err != nil {
			return nil, apperrors.InternalError(err)
		}
		user.HashedPassword = hashed
	}

	if err := s.userRepo.Update(db, user); err != nil {
		return nil, apperrors.InternalError(err)
	}

	resp := dto.NewUserResponse(user)
	return &resp, nil
}

// checkEmailFree - email уникален среди всех пользователей
func (s *UserServiceImpl) checkEmailFree(db *gorm.DB, email string) error {
	if _, err := s.userRepo.FindByEmail(db, email); err == nil {
		return apperrors.ErrEmailAlreadyExists
	} else if !apperrors.Is(err, repositories.ErrUserNotFound) {
		return apperrors.InternalError(err)
	}
	return nil
}

func (s *UserServiceImpl) Delete(db *gorm.DB, id uint) error {
	if err := s.userRepo.Delete(db, id); err != nil {
		if apperrors.Is(err, repositories.ErrUserNotFound) {
			return apperrors.ErrUserNotFound
		}
		return apperrors.InternalError(err)
	}
	return nil
}

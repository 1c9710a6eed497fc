package services

import (
	"testing"

	"newsroom_backend/internal/models"
	"newsroom_backend/internal/services/dto"
	"newsroom_backend/pkg/apperrors"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestUserService() (UserService, *fakeUserRepo) {
	userRepo := newFakeUserRepo()
	return NewUserService(userRepo), userRepo
}

func createUserRequest(username, email string) *dto.CreateUserRequest {
	return &dto.CreateUserRequest{
		Username: username,
		FullName: "Test User",
		Email:    email,
		Password: "secret-password",
		Role:     models.UserRoleWriter,
	}
}

func TestCreateUserRejectsDuplicateEmail(t *testing.T) {
	svc, _ := newTestUserService()

	_, err := svc.Create(nil, createUserRequest("alice", "alice@example.com"))
	require.NoError(t, err)

	_, err = svc.Create(nil, createUserRequest("bob", "alice@example.com"))
	assert.ErrorIs(t, err, apperrors.ErrEmailAlreadyExists)
}

func TestUpdateUserRejectsTakenEmail(t *testing.T) {
	svc, _ := newTestUserService()

	alice, err := svc.Create(nil, createUserRequest("alice", "alice@example.com"))
	require.NoError(t, err)
	_, err = svc.Create(nil, createUserRequest("bob", "bob@example.com"))
	require.NoError(t, err)

	taken := "bob@example.com"
	_, err = svc.Update(nil, alice.ID, &dto.UpdateUserRequest{Email: &taken})
	assert.ErrorIs(t, err, apperrors.ErrEmailAlreadyExists)
}

func TestUpdateMeKeepsOwnEmail(t *testing.T) {
	svc, _ := newTestUserService()

	_, err := svc.Create(nil, createUserRequest("alice", "alice@example.com"))
	require.NoError(t, err)

	// Повторная отправка собственного email не считается конфликтом
	own := "alice@example.com"
	name := "Alice Rahman"
	resp, err := svc.UpdateMe(nil, "alice", &dto.UpdateMeRequest{Email: &own, FullName: &name})
	require.NoError(t, err)
	assert.Equal(t, "Alice Rahman", resp.FullName)
	assert.Equal(t, "alice@example.com", resp.Email)
}

func TestUpdateMeRejectsTakenEmail(t *testing.T) {
	svc, _ := newTestUserService()

	_, err := svc.Create(nil, createUserRequest("alice", "alice@example.com"))
	require.NoError(t, err)
	_, err = svc.Create(nil, createUserRequest("bob", "bob@example.com"))
	require.NoError(t, err)

	taken := "alice@example.com"
	_, err = svc.UpdateMe(nil, "bob", &dto.UpdateMeRequest{Email: &taken})
	assert.ErrorIs(t, err, apperrors.ErrEmailAlreadyExists)
}

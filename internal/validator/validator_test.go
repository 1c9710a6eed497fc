package validator

import (
	"testing"

	"newsroom_backend/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type sampleRequest struct {
	Email  string            `json:"email" validate:"required,email"`
	Role   models.UserRole   `json:"role" validate:"omitempty,is-user-role"`
	Status models.PostStatus `json:"status" validate:"omitempty,is-post-status"`
}

func TestValidateReportsJSONFieldNames(t *testing.T) {
	v := New()

	err := v.Validate(&sampleRequest{Email: "not-an-email"})
	require.Error(t, err)

	vErr, ok := err.(*ValidationError)
	require.True(t, ok)

	// Имя поля берется из json-тега, не из имени в Go
	_, hasEmail := vErr.Errors["email"]
	assert.True(t, hasEmail)
	_, hasGoName := vErr.Errors["Email"]
	assert.False(t, hasGoName)
}

func TestValidateCustomRoleRule(t *testing.T) {
	v := New()

	err := v.Validate(&sampleRequest{Email: "a@b.co", Role: "superuser"})
	require.Error(t, err)
	vErr := err.(*ValidationError)
	assert.Equal(t, "Invalid user role", vErr.Errors["role"])

	assert.NoError(t, v.Validate(&sampleRequest{Email: "a@b.co", Role: models.UserRoleWriter}))
	// Пустая роль отдается на откуп 'required'
	assert.NoError(t, v.Validate(&sampleRequest{Email: "a@b.co"}))
}

func TestValidateCustomStatusRule(t *testing.T) {
	v := New()

	err := v.Validate(&sampleRequest{Email: "a@b.co", Status: "archived"})
	require.Error(t, err)
	vErr := err.(*ValidationError)
	assert.Equal(t, "Invalid post status", vErr.Errors["status"])

	for _, s := range []models.PostStatus{
		models.PostStatusDraft,
		models.PostStatusPending,
		models.PostStatusPublished,
		models.PostStatusRejected,
		models.PostStatusScheduled,
	} {
		assert.NoError(t, v.Validate(&sampleRequest{Email: "a@b.co", Status: s}))
	}
}

package models

type UserRole string
type PostStatus string

const (
	// Единая таксономия ролей. Исторически у сервиса были два поля
	// (user_type + admin_type); здесь они схлопнуты в одну роль.
	UserRoleSubscriber UserRole = "subscriber"
	UserRoleWriter     UserRole = "writer"
	UserRoleMaintainer UserRole = "maintainer"
	UserRoleAdmin      UserRole = "admin"

	PostStatusDraft     PostStatus = "draft"
	PostStatusPending   PostStatus = "pending"
	PostStatusPublished PostStatus = "published"
	PostStatusRejected  PostStatus = "rejected"
	PostStatusScheduled PostStatus = "scheduled"
)

// ValidUserRole проверяет что роль известна
func ValidUserRole(r UserRole) bool {
	switch r {
	case UserRoleSubscriber, UserRoleWriter, UserRoleMaintainer, UserRoleAdmin:
		return true
	}
	return false
}

// ValidPostStatus проверяет что статус известен
func ValidPostStatus(s PostStatus) bool {
	switch s {
	case PostStatusDraft, PostStatusPending, PostStatusPublished, PostStatusRejected, PostStatusScheduled:
		return true
	}
	return false
}

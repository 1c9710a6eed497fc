package auth

import "newsroom_backend/internal/models"

// Capabilities - набор возможностей, детерминированно выводимый из роли.
// Заменяет исторические поля user_type/admin_type одним источником истины.
type Capabilities struct {
	CanPublish bool // создание и редактирование собственных постов
	CanReview  bool // модерация: смена статусов, чужие посты, чужие комментарии
	CanAdmin   bool // управление пользователями и рубриками
}

// PermissionsFor возвращает набор возможностей для роли
func PermissionsFor(role models.UserRole) Capabilities {
	switch role {
	case models.UserRoleWriter:
		return Capabilities{CanPublish: true}
	case models.UserRoleMaintainer:
		return Capabilities{CanPublish: true, CanReview: true}
	case models.UserRoleAdmin:
		return Capabilities{CanPublish: true, CanReview: true, CanAdmin: true}
	default:
		return Capabilities{}
	}
}

// CanPublish проверяет право создавать посты
func CanPublish(user *models.User) bool {
	return user != nil && PermissionsFor(user.Role).CanPublish
}

// CanReview проверяет право модерации
func CanReview(user *models.User) bool {
	return user != nil && PermissionsFor(user.Role).CanReview
}

// CanAdmin проверяет административные права
func CanAdmin(user *models.User) bool {
	return user != nil && PermissionsFor(user.Role).CanAdmin
}

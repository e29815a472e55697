package profileservice

import "github.com/google/uuid"

// Роли пользователей в профильном сервисе
const (
	RolePhotographer = "photographer"
	RoleClient       = "client"
)

// Profile модель пользователя из профильного сервиса
type Profile struct {
	ID          uuid.UUID `json:"id"`
	DisplayName string    `json:"display_name"`
	Role        string    `json:"role"`
	Email       string    `json:"email"`
}

// IsPhotographer возвращает true для профиля фотографа
func (p *Profile) IsPhotographer() bool {
	return p.Role == RolePhotographer
}

// ErrorResponse модель ошибки от профильного сервиса
type ErrorResponse struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

package models

import (
	"time"

	"github.com/google/uuid"
)

// Роли пользователей. Хранятся строкой, по умолчанию — RoleUser.
const (
	RoleUser  = "user"
	RoleAdmin = "admin"
)

// User — учётная запись в таблице users.
// PasswordHash — bcrypt-хэш; сырой пароль нигде не хранится и не логируется.
type User struct {
	ID           uuid.UUID
	Username     string
	Email        string
	PasswordHash string
	Role         string
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

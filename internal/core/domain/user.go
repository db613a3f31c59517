package domain

import (
	"errors"
	"time"
)

const (
	RoleAdmin     = "admin"
	RoleSuperuser = "superuser"
	RoleUser      = "user"
)

var ErrInvalidCredentials = errors.New("invalid credentials")
var ErrInvalidInput = errors.New("invalid input")
var ErrUserExists = errors.New("user already exists")
var ErrUserNotFound = errors.New("user not found")
var ErrEmployeeNotFound = errors.New("employee not found")
var ErrItemNotFound = errors.New("item not found")

// KnownRole reports whether role is one of the three configured roles.
// Roles are stored, never inferred; anything outside this set is rejected
// at registration time and granted nothing at permission-check time.
func KnownRole(role string) bool {
	return role == RoleAdmin || role == RoleSuperuser || role == RoleUser
}

// User models an authenticated actor in the system.
type User struct {
	ID           uint      `json:"id" gorm:"primaryKey"`
	Username     string    `json:"username" gorm:"size:64;uniqueIndex;not null"`
	PasswordHash string    `json:"-" gorm:"size:255;not null"`
	Role         string    `json:"role" gorm:"size:32;not null"`
	CreatedAt    time.Time `json:"created_at"`
}

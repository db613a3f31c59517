package postgres

import (
	"context"
	"fmt"

	"github.com/rs/zerolog"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"github.com/opsdesk/backoffice/internal/core/domain"
)

const (
	seedUsername = "admin"
	seedPassword = "admin123"
)

// EnsureAdmin creates the bootstrap admin account when the users table is
// empty. Registration is admin-gated, so without this seed a fresh install
// would have no way to log in. No-op when any user already exists.
func EnsureAdmin(ctx context.Context, db *gorm.DB, logger zerolog.Logger) error {
	var count int64
	if err := db.WithContext(ctx).Model(&domain.User{}).Count(&count).Error; err != nil {
		return fmt.Errorf("count users: %w", err)
	}
	if count > 0 {
		return nil
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(seedPassword), bcrypt.DefaultCost)
	if err != nil {
		return fmt.Errorf("hash seed password: %w", err)
	}

	admin := &domain.User{
		Username:     seedUsername,
		PasswordHash: string(hash),
		Role:         domain.RoleAdmin,
	}
	if err := db.WithContext(ctx).Create(admin).Error; err != nil {
		return fmt.Errorf("insert seed admin: %w", err)
	}

	logger.Warn().Str("username", seedUsername).Msg("seed admin created with default password; change it immediately")
	return nil
}

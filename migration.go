package pool_service

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"github.com/pdcgo/pool_service/authorization"
	"github.com/pdcgo/pool_service/configs"
	"github.com/pdcgo/pool_service/pool_core"
	"github.com/pdcgo/pool_service/pool_model"
	"github.com/pdcgo/pool_service/user"
	"gorm.io/gorm"
)

type MigrationHandler func() error

func NewMigrationHandler(
	db *gorm.DB,
) MigrationHandler {
	return func() error {
		slog.Info("migrating pool service")
		return db.AutoMigrate(pool_model.AllTables()...)
	}
}

type SeedHandler func() error

// NewSeedHandler creates the bootstrap admin when it does not exist yet.
func NewSeedHandler(
	db *gorm.DB,
	cfg *configs.AppConfig,
) SeedHandler {
	return func() error {
		seed := cfg.Seed
		if seed.AdminUsername == "" {
			slog.Info("seed admin not configured, skipping")
			return nil
		}

		if seed.AdminPassword == "" {
			return pool_core.NewValidationError("seed admin password is empty", "seed.admin_password")
		}

		var existing pool_model.User
		err := db.Where("username = ?", seed.AdminUsername).First(&existing).Error
		if err == nil {
			slog.Info("seed admin already present", slog.String("username", existing.Username))
			return nil
		}
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			return err
		}

		hash, err := authorization.HashPassword(seed.AdminPassword)
		if err != nil {
			return err
		}

		admin := pool_model.User{
			Username:     seed.AdminUsername,
			PasswordHash: hash,
			Role:         pool_model.AdminRole,
			CreatedAt:    time.Now(),
		}

		err = user.CreateUser(context.Background(), db, &admin)
		if err != nil {
			return err
		}

		slog.Info("seed admin created", slog.String("username", admin.Username))
		return nil
	}
}

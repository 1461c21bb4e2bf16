package main

import (
	"log/slog"

	"github.com/pdcgo/pool_service"
	"github.com/pdcgo/pool_service/configs"
	"github.com/pdcgo/pool_service/db_connect"
	"github.com/pdcgo/pool_service/pkg/pool_logging"
	"gorm.io/gorm"
)

func NewLogger(cfg *configs.AppConfig) *slog.Logger {
	return pool_logging.SetLoggingDefault(&cfg.Log)
}

func NewDatabase(cfg *configs.AppConfig) (*gorm.DB, error) {
	return db_connect.NewProductionDatabase("pool_migration", &cfg.Database)
}

type Migration struct {
	Run func() error
}

func NewMigration(
	logger *slog.Logger,
	migrate pool_service.MigrationHandler,
	seed pool_service.SeedHandler,
) *Migration {
	return &Migration{
		Run: func() error {
			err := migrate()
			if err != nil {
				return err
			}

			err = seed()
			if err != nil {
				return err
			}

			logger.Info("migration done")
			return nil
		},
	}
}

func main() {
	mig, err := InitializeMigration()
	if err != nil {
		panic(err)
	}

	err = mig.Run()
	if err != nil {
		panic(err)
	}
}

//go:build wireinject
// +build wireinject

package main

import (
	"github.com/google/wire"
	"github.com/pdcgo/pool_service"
	"github.com/pdcgo/pool_service/configs"
)

func InitializeMigration() (*Migration, error) {
	wire.Build(
		configs.NewProductionConfig,
		NewLogger,
		NewDatabase,
		pool_service.NewMigrationHandler,
		pool_service.NewSeedHandler,
		NewMigration,
	)

	return &Migration{}, nil
}

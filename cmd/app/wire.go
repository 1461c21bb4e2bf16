//go:build wireinject
// +build wireinject

package main

import (
	"net/http"

	"github.com/google/wire"
	"github.com/pdcgo/pool_service"
	"github.com/pdcgo/pool_service/configs"
	"github.com/pdcgo/pool_service/custom_connect"
)

func InitializeApp() (*App, error) {
	wire.Build(
		configs.NewProductionConfig,
		http.NewServeMux,
		NewLogger,
		NewDatabase,
		NewTokenIssuer,
		NewAuthorization,
		custom_connect.NewDefaultInterceptor,
		pool_service.NewRegister,
		NewApp,
	)

	return &App{}, nil
}

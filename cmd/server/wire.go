//go:build wireinject
// +build wireinject

package main

import (
	"context"

	"github.com/google/wire"
	"github.com/localsquares/board-rotation/internal/config"
	"github.com/localsquares/board-rotation/internal/controllers"
	"github.com/localsquares/board-rotation/internal/repositories"
	"github.com/localsquares/board-rotation/internal/services"
)

func wireApp(ctx context.Context, path config.ConfigPath) (*application, func(), error) {
	panic(wire.Build(
		config.ProviderSet,
		repositories.ProviderSet,
		services.ProviderSet,
		controllers.ProviderSet,
		newApplication,
	))
}

func wireResetJob(ctx context.Context, path config.ConfigPath) (*resetJob, func(), error) {
	panic(wire.Build(
		config.ProviderSet,
		repositories.ProviderSet,
		services.ProviderSet,
		newResetJob,
	))
}

package di

import (
	"go.uber.org/fx"

	"github.com/polkiloo/accounts/internal/app"
	"github.com/polkiloo/accounts/internal/config"
	"github.com/polkiloo/accounts/internal/logger"
	"github.com/polkiloo/accounts/internal/pkg/auth"
	"github.com/polkiloo/accounts/internal/server/http/router"
	"github.com/polkiloo/accounts/internal/storage"
	"github.com/polkiloo/accounts/internal/usecase"
)

func Module(opts ...fx.Option) fx.Option {
	modules := []fx.Option{
		config.Module,
		logger.Module,
		auth.Module,
		storage.Module,
		usecase.Module,
		router.Module,
		app.Module,
	}
	modules = append(modules, opts...)
	return fx.Options(modules...)
}

package di

import (
	"go.uber.org/fx"

	"github.com/mikimas/truster/internal/app"
	"github.com/mikimas/truster/internal/config"
	"github.com/mikimas/truster/internal/logger"
	"github.com/mikimas/truster/internal/notifier"
	"github.com/mikimas/truster/internal/server/http/handlers"
	"github.com/mikimas/truster/internal/server/http/router"
	"github.com/mikimas/truster/internal/storage"
	"github.com/mikimas/truster/internal/usecase"
)

func Module(opts ...fx.Option) fx.Option {
	modules := []fx.Option{
		config.Module,
		logger.Module,
		storage.Module,
		notifier.Module,
		usecase.Module,
		fx.Provide(func(f *app.IntakeFacade) handlers.OrderFacade { return f }),
		router.Module,
		app.Module,
	}
	modules = append(modules, opts...)
	return fx.Options(modules...)
}

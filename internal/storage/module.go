package storage

import (
	"context"
	"log/slog"

	"go.uber.org/fx"

	"github.com/mikimas/truster/internal/config"
	"github.com/mikimas/truster/internal/domain/repository"
	"github.com/mikimas/truster/internal/storage/memory"
	"github.com/mikimas/truster/internal/storage/postgres"
)

// Module wires the order repository. With a database URI configured orders go
// to PostgreSQL; without one they stay in process memory.
var Module = fx.Provide(newOrderRepository)

type params struct {
	fx.In

	Ctx       context.Context
	Config    *config.Config
	Logger    *slog.Logger
	Lifecycle fx.Lifecycle
}

func newOrderRepository(p params) (repository.OrderRepository, error) {
	if p.Config.DatabaseURI == "" {
		p.Logger.Info("using in-memory order store")
		return memory.New(), nil
	}

	st, err := postgres.New(p.Ctx, p.Config.DatabaseURI, p.Logger)
	if err != nil {
		return nil, err
	}

	p.Lifecycle.Append(fx.Hook{
		OnStop: func(context.Context) error {
			st.Close()
			return nil
		},
	})

	return st.Orders(), nil
}

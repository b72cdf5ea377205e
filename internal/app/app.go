package app

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/zap"

	"github.com/samape/samape/internal/config"
	"github.com/samape/samape/internal/pg"
	"github.com/samape/samape/internal/repo"
	"github.com/samape/samape/internal/service"
	"github.com/samape/samape/pkg/logger"
)

// Application is the composition root. Start provisions the database
// (schema, achievement catalog seed, identity backfill) and wires the core
// services; the presentation layer embeds Services for its calls.
type Application struct {
	cfg  *config.Config
	pool *pgxpool.Pool
	repo *repo.Repositories
	srv  *service.Services
}

func New() *Application {
	return &Application{}
}

func (a *Application) Start(ctx context.Context) error {
	cfg := config.New()

	if err := logger.InitLogger(cfg); err != nil {
		return fmt.Errorf("can't init logger: %w", err)
	}

	pool, err := getPgxpool(ctx, cfg)
	if err != nil {
		zap.L().Error("build pgx pool failed: ", zap.Error(err))
		return fmt.Errorf("can't build pgx pool: %w", err)
	}
	if err := pg.RunMigrations(pool); err != nil {
		zap.L().Error("migrations failed: ", zap.Error(err))
		return fmt.Errorf("can't run migrations: %w", err)
	}
	txManager := pg.NewTXManager(pool)
	conn := pg.New(pool)

	a.cfg = cfg
	a.pool = pool
	a.repo = repo.New(conn, txManager)
	a.srv = service.New(a.repo, txManager)

	zap.L().Info("database provisioned, core services ready")
	return nil
}

// Services exposes the core API surface to the embedding layer.
func (a *Application) Services() *service.Services {
	return a.srv
}

func (a *Application) Stop() {
	if a.pool != nil {
		a.pool.Close()
	}
}

func getPgxpool(ctx context.Context, cfg *config.Config) (*pgxpool.Pool, error) {
	cfgpool, err := pgxpool.ParseConfig(cfg.Database)
	if err != nil {
		return nil, err
	}
	dbpool, err := pgxpool.NewWithConfig(ctx, cfgpool)
	if err != nil {
		return nil, err
	}
	if err = dbpool.Ping(ctx); err != nil {
		return nil, err
	}
	return dbpool, nil
}

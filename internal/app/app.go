// Package app wires configuration into a ready pipeline. Both binaries
// start here.
package app

import (
	"context"
	"fmt"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"

	"openform/internal/config"
	"openform/internal/customdict"
	"openform/internal/model"
	"openform/internal/pipeline"
)

type App struct {
	Config   config.Config
	Logger   *zap.Logger
	Pipeline *pipeline.Pipeline
	// Dict is nil when no Redis address is configured.
	Dict *customdict.CustomDict

	client redis.UniversalClient
}

// New connects the custom dictionary if configured and builds the model.
func New(ctx context.Context, cfg config.Config, logger *zap.Logger) (*App, error) {
	if logger == nil {
		logger = zap.NewNop()
	}
	a := &App{Config: cfg, Logger: logger}

	src := model.Sources{
		Corpora:      cfg.Corpora,
		CountFiles:   cfg.CountFiles,
		WordList:     cfg.WordList,
		StopwordList: cfg.StopwordList,
	}
	if cfg.Redis.Addr != "" {
		a.client = redis.NewClient(&redis.Options{
			Addr:     cfg.Redis.Addr,
			Password: cfg.Redis.Password,
			DB:       cfg.Redis.DB,
		})
		a.Dict = customdict.New(a.client, cfg.Redis.Key)
		src.Custom = a.Dict
	}

	m, err := model.Build(ctx, src, cfg.Corrector(), logger)
	if err != nil {
		a.Close()
		return nil, fmt.Errorf("app: %w", err)
	}
	a.Pipeline = pipeline.New(m,
		pipeline.WithDefaults(cfg.Defaults),
		pipeline.WithLogger(logger),
	)
	return a, nil
}

// Close releases the Redis connection.
func (a *App) Close() error {
	if a.client == nil {
		return nil
	}
	return a.client.Close()
}

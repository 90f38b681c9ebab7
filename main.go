package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/lost-woods/mechanica/src/config"
	"github.com/lost-woods/mechanica/src/rng"
	"github.com/lost-woods/mechanica/src/server"
)

func main() {
	zapLogger, _ := zap.NewProduction()
	defer func() { _ = zapLogger.Sync() }()
	log := zapLogger.Sugar()

	cfg, err := config.Load()
	if err != nil {
		log.Fatal(err)
	}

	src, health, err := openSource(cfg)
	if err != nil {
		log.Fatalw("entropy source unavailable", "source", cfg.Source, "error", err)
	}
	log.Infow("entropy source ready", "source", cfg.Source)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	g, ctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		rng.PeriodicHealthCheck(ctx, src, health, cfg.HealthInterval(), rng.WithLogger(log))
		return nil
	})
	g.Go(func() error {
		return server.New(cfg.Port, cfg.APIKey, src, health, log).Run(ctx)
	})

	if err := g.Wait(); err != nil {
		log.Fatal(err)
	}
}

func openSource(cfg config.Config) (rng.Source, *rng.Health, error) {
	var src rng.Source
	switch cfg.Source {
	case config.SourceSerial:
		return rng.OpenSerial(cfg.Serial.RNGConfig())
	case config.SourceSeeded:
		src = rng.NewSeededSource(cfg.Seed)
	default:
		src = rng.NewCryptoSource()
	}

	h := rng.NewHealth()
	if err := rng.Check(src, h); err != nil {
		return nil, h, err
	}
	return src, h, nil
}

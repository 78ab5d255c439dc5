// dbhealth opens the configured database, pings it, and exits. Meant for
// container healthchecks and deploy smoke tests.
package main

import (
	"context"
	"log/slog"
	"os"
	"time"

	"github.com/haulboard/haulboard/internal/common"
	repo "github.com/haulboard/haulboard/internal/repository"
)

func main() {
	logger := slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	}))

	cfg := common.LoadConfig()
	if err := cfg.Validate(); err != nil {
		logger.Error("invalid configuration", "error", err)
		os.Exit(1)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	entc, pool, err := repo.Open(ctx, repo.Config{
		Driver:      cfg.Database.Driver,
		DSN:         cfg.Database.DSN,
		MaxConns:    2,
		MinConns:    1,
		DialTimeout: 3 * time.Second,
	}, logger)
	if err != nil {
		logger.Error("failed to open database", "error", err)
		os.Exit(1)
	}
	defer repo.Close(entc, pool, logger)

	if err := repo.HealthCheck(ctx, pool, 5*time.Second, logger); err != nil {
		logger.Error("database ping failed", "error", err)
		os.Exit(1)
	}
	logger.Info("database healthy", "driver", cfg.Database.Driver)
}

package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"whirlscope/internal/config"
	"whirlscope/internal/model"
	"whirlscope/internal/observability"
	"whirlscope/internal/orca"
	"whirlscope/internal/snapshot"
	"whirlscope/internal/storage"
	"whirlscope/internal/storage/postgres"
)

func runSnapshot(cmd *cobra.Command, _ []string) error {
	cfgFile, _ := cmd.Flags().GetString("config")
	cfg, err := config.LoadSnapshot(cfgFile, cmd.Flags())
	if err != nil {
		return err
	}

	logger, err := newLogger(cfg.LogLevel)
	if err != nil {
		return err
	}
	defer logger.Sync()

	stats := make([]model.TimePeriod, 0, len(cfg.Stats))
	for _, s := range cfg.Stats {
		p, err := model.ParseTimePeriod(s)
		if err != nil {
			return err
		}
		stats = append(stats, p)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	client, err := orca.NewClient(cfg.BaseURL)
	if err != nil {
		return fmt.Errorf("create client: %w", err)
	}

	var sink storage.Storage
	if cfg.PGDSN != "" {
		store, err := postgres.NewStore(ctx, cfg.PGDSN)
		if err != nil {
			return fmt.Errorf("connect postgres: %w", err)
		}
		defer store.Close()
		sink = store
	} else {
		sink = storage.NewJsonlStorage(cfg.Out)
	}

	if cfg.MetricsAddr != "" {
		mux := http.NewServeMux()
		mux.Handle("/metrics", observability.Handler())
		go func() {
			if err := http.ListenAndServe(cfg.MetricsAddr, mux); err != nil {
				logger.Warn("metrics listener stopped", zap.Error(err))
			}
		}()
	}

	runner := snapshot.NewRunner(snapshot.RunConfig{
		Chain:             cfg.Chain,
		PageSize:          cfg.PageSize,
		MaxPages:          cfg.MaxPages,
		MinTvl:            cfg.MinTvl,
		Stats:             stats,
		CheckpointPath:    cfg.Checkpoint,
		CheckpointEnabled: cfg.CheckpointEnabled,
		MaxRetries:        cfg.MaxRetries,
		RetryBackoff:      cfg.RetryBackoff,
		Metrics:           observability.DefaultMetrics,
	}, client, sink, logger)

	logger.Info("snapshot start",
		zap.String("chain", cfg.Chain),
		zap.Uint32("page_size", cfg.PageSize),
		zap.Int("max_pages", cfg.MaxPages),
		zap.Float64("min_tvl", cfg.MinTvl),
		zap.Bool("postgres", cfg.PGDSN != ""),
		zap.String("out", cfg.Out),
		zap.Bool("checkpoint_enabled", cfg.CheckpointEnabled),
		zap.String("checkpoint", cfg.Checkpoint),
	)

	return runner.Run(ctx)
}

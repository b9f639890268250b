package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"text/tabwriter"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"whirlscope/internal/config"
	"whirlscope/internal/model"
	"whirlscope/internal/orca"
	"whirlscope/internal/rank"
)

func runTop(cmd *cobra.Command, _ []string) error {
	cfgFile, _ := cmd.Flags().GetString("config")
	cfg, err := config.LoadTop(cfgFile, cmd.Flags())
	if err != nil {
		return err
	}

	logger, err := newLogger(cfg.LogLevel)
	if err != nil {
		return err
	}
	defer logger.Sync()

	metric, err := rank.ParseMetric(cfg.Metric)
	if err != nil {
		return err
	}
	period, err := model.ParseTimePeriod(cfg.Period)
	if err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	client, err := orca.NewClient(cfg.BaseURL)
	if err != nil {
		return fmt.Errorf("create client: %w", err)
	}

	pools, err := fetchPools(ctx, client, cfg, period, logger)
	if err != nil {
		return err
	}

	entries := rank.TopPools(pools, period, metric, cfg.Limit)

	w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
	fmt.Fprintf(w, "#\tPOOL\tPAIR\tTVL (USDC)\t%s (%s)\n", cfg.Metric, cfg.Period)
	for i, e := range entries {
		fmt.Fprintf(w, "%d\t%s\t%s/%s\t%.2f\t%.4f\n", i+1, e.Address, e.SymbolA, e.SymbolB, e.TvlUsdc, e.Value)
	}
	return w.Flush()
}

// fetchPools follows cursors manually; the client itself never paginates.
func fetchPools(ctx context.Context, client *orca.Client, cfg config.TopConfig, period model.TimePeriod, logger *zap.Logger) ([]model.Whirlpool, error) {
	var pools []model.Whirlpool
	var cursor *string

	for page := 0; cfg.Pages <= 0 || page < cfg.Pages; page++ {
		params := orca.PoolsParams{
			Size:  orca.Uint32(cfg.Size),
			Next:  cursor,
			Stats: []model.TimePeriod{period},
		}
		if cfg.MinTvl > 0 {
			params.MinTvl = orca.Float64(cfg.MinTvl)
		}

		result, err := client.GetPools(ctx, cfg.Chain, params)
		if err != nil {
			return nil, fmt.Errorf("get pools: %w", err)
		}
		pools = append(pools, result.Data...)
		logger.Debug("page fetched", zap.Int("page", page+1), zap.Int("pools", len(result.Data)))

		if result.Meta.Next == nil {
			break
		}
		cursor = result.Meta.Next
	}

	return pools, nil
}

package main

import (
	"os"
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

func main() {
	root := &cobra.Command{
		Use:          "whirlscope",
		Short:        "Orca whirlpool analytics toolkit",
		SilenceUsage: true,
	}

	root.PersistentFlags().String("config", "", "config file path")
	root.PersistentFlags().String("base-url", "", "API base URL (default production)")
	root.PersistentFlags().String("chain", "solana", "chain path segment")
	root.PersistentFlags().String("log-level", "info", "log level (debug, info, warn, error)")

	protocolCmd := &cobra.Command{
		Use:   "protocol",
		Short: "Print protocol financials and native token info",
		RunE:  runProtocol,
	}
	root.AddCommand(protocolCmd)

	root.AddCommand(newPoolsCmd())

	tokensCmd := &cobra.Command{
		Use:   "tokens",
		Short: "List or search tokens",
		RunE:  runTokens,
	}
	tokensCmd.Flags().String("query", "", "free-text search (routes to the search endpoint)")
	tokensCmd.Flags().String("mint", "", "fetch a single token by mint address")
	tokensCmd.Flags().String("next", "", "pagination cursor (forward)")
	tokensCmd.Flags().String("previous", "", "pagination cursor (backward)")
	tokensCmd.Flags().Uint32("size", 0, "page size")
	tokensCmd.Flags().String("sort-by", "", "sort field")
	tokensCmd.Flags().String("sort-direction", "", "asc or desc")
	tokensCmd.Flags().String("tokens", "", "token filter")
	root.AddCommand(tokensCmd)

	snapshotCmd := &cobra.Command{
		Use:   "snapshot",
		Short: "Walk the pool listing and persist snapshot rows",
		RunE:  runSnapshot,
	}
	snapshotCmd.Flags().Uint32("page-size", 200, "pools per page")
	snapshotCmd.Flags().Int("max-pages", 0, "page limit, 0 means until exhausted")
	snapshotCmd.Flags().Float64("min-tvl", 0, "minimum TVL filter in USDC")
	snapshotCmd.Flags().StringSlice("stats", nil, "stat windows to request (e.g. 24h)")
	snapshotCmd.Flags().String("out", "./data/pools.jsonl", "output JSONL path")
	snapshotCmd.Flags().String("pg-dsn", "", "Postgres DSN (overrides JSONL output)")
	snapshotCmd.Flags().String("checkpoint", "./data/checkpoint.json", "checkpoint file path")
	snapshotCmd.Flags().Bool("checkpoint-enabled", true, "enable checkpointing")
	snapshotCmd.Flags().Int("max-retries", 5, "maximum retry attempts per page")
	snapshotCmd.Flags().Duration("retry-backoff", 500*time.Millisecond, "initial retry backoff")
	snapshotCmd.Flags().String("metrics-addr", "", "prometheus listen address (empty disables)")
	root.AddCommand(snapshotCmd)

	topCmd := &cobra.Command{
		Use:   "top",
		Short: "Rank pools by a stat window metric",
		RunE:  runTop,
	}
	topCmd.Flags().String("metric", "volume", "ranking metric (volume, fees, yield, tvl)")
	topCmd.Flags().String("period", "24h", "stat window")
	topCmd.Flags().Int("limit", 20, "number of pools to print")
	topCmd.Flags().Int("pages", 5, "maximum pages to fetch")
	topCmd.Flags().Uint32("size", 200, "pools per page")
	topCmd.Flags().Float64("min-tvl", 0, "minimum TVL filter in USDC")
	root.AddCommand(topCmd)

	if err := root.Execute(); err != nil {
		os.Exit(1)
	}
}

func newLogger(level string) (*zap.Logger, error) {
	cfg := zap.NewProductionConfig()
	cfg.Level = zap.NewAtomicLevel()
	if err := cfg.Level.UnmarshalText([]byte(level)); err != nil {
		return nil, err
	}

	cfg.EncoderConfig.TimeKey = "ts"
	cfg.EncoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder

	return cfg.Build()
}

package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"whirlscope/internal/config"
	"whirlscope/internal/orca"
)

func runProtocol(cmd *cobra.Command, _ []string) error {
	cfgFile, _ := cmd.Flags().GetString("config")
	cfg, err := config.LoadClient(cfgFile, cmd.Flags())
	if err != nil {
		return err
	}

	logger, err := newLogger(cfg.LogLevel)
	if err != nil {
		return err
	}
	defer logger.Sync()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	client, err := orca.NewClient(cfg.BaseURL)
	if err != nil {
		return fmt.Errorf("create client: %w", err)
	}

	info, err := client.GetProtocolInfo(ctx, cfg.Chain)
	if err != nil {
		return fmt.Errorf("get protocol info: %w", err)
	}

	token, err := client.GetTokenInfo(ctx, cfg.Chain)
	if err != nil {
		return fmt.Errorf("get token info: %w", err)
	}

	circulating, err := client.GetCirculatingSupply(ctx, cfg.Chain)
	if err != nil {
		return fmt.Errorf("get circulating supply: %w", err)
	}

	total, err := client.GetTotalSupply(ctx, cfg.Chain)
	if err != nil {
		return fmt.Errorf("get total supply: %w", err)
	}

	logger.Debug("protocol fetched", zap.String("chain", cfg.Chain))

	out := map[string]any{
		"protocol":           info,
		"token":              token,
		"circulating_supply": circulating.CirculatingSupply,
		"total_supply":       total.TotalSupply,
	}
	return printJSON(out)
}

func printJSON(v any) error {
	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

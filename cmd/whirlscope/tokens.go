package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"whirlscope/internal/config"
	"whirlscope/internal/orca"
)

func runTokens(cmd *cobra.Command, _ []string) error {
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

	if mint, _ := cmd.Flags().GetString("mint"); mint != "" {
		page, err := client.GetToken(ctx, cfg.Chain, mint)
		if err != nil {
			return fmt.Errorf("get token: %w", err)
		}
		return printJSON(page)
	}

	if cmd.Flags().Changed("query") {
		query, _ := cmd.Flags().GetString("query")
		page, err := client.SearchTokens(ctx, cfg.Chain, query)
		if err != nil {
			return fmt.Errorf("search tokens: %w", err)
		}
		return printJSON(page)
	}

	params := orca.TokensParams{
		Next:          stringFlag(cmd, "next"),
		Previous:      stringFlag(cmd, "previous"),
		Size:          uint32Flag(cmd, "size"),
		SortBy:        stringFlag(cmd, "sort-by"),
		SortDirection: stringFlag(cmd, "sort-direction"),
		Tokens:        stringFlag(cmd, "tokens"),
	}
	page, err := client.GetTokens(ctx, cfg.Chain, params)
	if err != nil {
		return fmt.Errorf("get tokens: %w", err)
	}
	return printJSON(page)
}

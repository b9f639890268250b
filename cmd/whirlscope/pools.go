package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"whirlscope/internal/config"
	"whirlscope/internal/model"
	"whirlscope/internal/orca"
)

func newPoolsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "pools",
		Short: "List or search pools with optional filters",
		RunE:  runPools,
	}
	cmd.Flags().String("query", "", "free-text search (routes to the search endpoint)")
	cmd.Flags().String("address", "", "fetch a single pool by address")
	cmd.Flags().String("sort-by", "", "sort field")
	cmd.Flags().String("sort-direction", "", "asc or desc")
	cmd.Flags().String("next", "", "pagination cursor (forward)")
	cmd.Flags().String("previous", "", "pagination cursor, backward (list only)")
	cmd.Flags().Bool("has-rewards", false, "only pools with active rewards")
	cmd.Flags().Bool("has-warning", false, "only pools with warnings (list only)")
	cmd.Flags().Bool("has-adaptive-fee", false, "only adaptive-fee pools (list only)")
	cmd.Flags().Bool("is-wavebreak", false, "only wavebreak pools (list only)")
	cmd.Flags().Float64("min-tvl", 0, "minimum TVL in USDC")
	cmd.Flags().Float64("min-volume", 0, "minimum volume in USDC")
	cmd.Flags().Float64("min-locked-liquidity-percent", 0, "minimum locked liquidity percentage (list only)")
	cmd.Flags().Uint32("size", 0, "page size")
	cmd.Flags().UintSlice("token", nil, "token filter ids (list only)")
	cmd.Flags().StringSlice("tokens-both-of", nil, "pools containing all listed mints (list only)")
	cmd.Flags().StringSlice("addresses", nil, "pool addresses (list only)")
	cmd.Flags().StringSlice("stats", nil, "stat windows to include (e.g. 5m,1h,24h)")
	cmd.Flags().StringSlice("user-tokens", nil, "user token mints (search only)")
	cmd.Flags().Bool("verified-only", false, "only verified pools (search only)")
	cmd.Flags().Bool("has-locked-liquidity", false, "only pools with locked liquidity (search only)")
	cmd.Flags().Bool("include-blocked", false, "include blocked pools (list only)")
	return cmd
}

// Flag routing: --address fetches one pool, --query routes to the search
// endpoint, otherwise the listing is used. Each endpoint accepts a different
// filter set.
var (
	poolSearchOnlyFlags = []string{"user-tokens", "verified-only", "has-locked-liquidity"}
	poolListOnlyFlags   = []string{
		"previous", "has-warning", "has-adaptive-fee", "is-wavebreak",
		"min-locked-liquidity-percent", "token", "tokens-both-of",
		"addresses", "include-blocked",
	}
	poolFilterFlags = []string{
		"query", "sort-by", "sort-direction", "next", "previous",
		"has-rewards", "has-warning", "has-adaptive-fee", "is-wavebreak",
		"min-tvl", "min-volume", "min-locked-liquidity-percent", "size",
		"token", "tokens-both-of", "addresses", "stats",
		"user-tokens", "verified-only", "has-locked-liquidity",
		"include-blocked",
	}
)

// poolFlagConflicts rejects flags the chosen endpoint cannot express instead
// of silently dropping them.
func poolFlagConflicts(cmd *cobra.Command) error {
	flags := cmd.Flags()
	switch {
	case flags.Changed("address"):
		for _, name := range poolFilterFlags {
			if flags.Changed(name) {
				return fmt.Errorf("--%s cannot be combined with --address", name)
			}
		}
	case flags.Changed("query"):
		for _, name := range poolListOnlyFlags {
			if flags.Changed(name) {
				return fmt.Errorf("--%s applies to the pool listing, not to --query search", name)
			}
		}
	default:
		for _, name := range poolSearchOnlyFlags {
			if flags.Changed(name) {
				return fmt.Errorf("--%s requires --query", name)
			}
		}
	}
	return nil
}

func runPools(cmd *cobra.Command, _ []string) error {
	if err := poolFlagConflicts(cmd); err != nil {
		return err
	}

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

	if address, _ := cmd.Flags().GetString("address"); address != "" {
		page, err := client.GetPool(ctx, cfg.Chain, address)
		if err != nil {
			return fmt.Errorf("get pool: %w", err)
		}
		return printJSON(page)
	}

	stats, err := parsePeriods(cmd)
	if err != nil {
		return err
	}

	if cmd.Flags().Changed("query") {
		query, _ := cmd.Flags().GetString("query")
		params := orca.SearchPoolsParams{
			Q:                  query,
			Next:               stringFlag(cmd, "next"),
			Size:               uint32Flag(cmd, "size"),
			SortBy:             stringFlag(cmd, "sort-by"),
			SortDirection:      stringFlag(cmd, "sort-direction"),
			MinTvl:             float64Flag(cmd, "min-tvl"),
			MinVolume:          float64Flag(cmd, "min-volume"),
			Stats:              stats,
			UserTokens:         stringSliceFlag(cmd, "user-tokens"),
			HasRewards:         boolFlag(cmd, "has-rewards"),
			VerifiedOnly:       boolFlag(cmd, "verified-only"),
			HasLockedLiquidity: boolFlag(cmd, "has-locked-liquidity"),
		}
		page, err := client.SearchPools(ctx, cfg.Chain, params)
		if err != nil {
			return fmt.Errorf("search pools: %w", err)
		}
		return printJSON(page)
	}

	params := orca.PoolsParams{
		SortBy:                    stringFlag(cmd, "sort-by"),
		SortDirection:             stringFlag(cmd, "sort-direction"),
		Next:                      stringFlag(cmd, "next"),
		Previous:                  stringFlag(cmd, "previous"),
		HasRewards:                boolFlag(cmd, "has-rewards"),
		HasWarning:                boolFlag(cmd, "has-warning"),
		HasAdaptiveFee:            boolFlag(cmd, "has-adaptive-fee"),
		IsWavebreak:               boolFlag(cmd, "is-wavebreak"),
		MinTvl:                    float64Flag(cmd, "min-tvl"),
		MinVolume:                 float64Flag(cmd, "min-volume"),
		MinLockedLiquidityPercent: float64Flag(cmd, "min-locked-liquidity-percent"),
		Size:                      uint32Flag(cmd, "size"),
		Token:                     uint64SliceFlag(cmd, "token"),
		TokensBothOf:              stringSliceFlag(cmd, "tokens-both-of"),
		Addresses:                 stringSliceFlag(cmd, "addresses"),
		Stats:                     stats,
		IncludeBlocked:            boolFlag(cmd, "include-blocked"),
	}
	page, err := client.GetPools(ctx, cfg.Chain, params)
	if err != nil {
		return fmt.Errorf("get pools: %w", err)
	}
	return printJSON(page)
}

func parsePeriods(cmd *cobra.Command) ([]model.TimePeriod, error) {
	raw, _ := cmd.Flags().GetStringSlice("stats")
	if len(raw) == 0 {
		return nil, nil
	}
	periods := make([]model.TimePeriod, 0, len(raw))
	for _, s := range raw {
		p, err := model.ParseTimePeriod(s)
		if err != nil {
			return nil, err
		}
		periods = append(periods, p)
	}
	return periods, nil
}

// Optional filters distinguish "unset" from the flag's zero value, so they
// are read only when the flag was changed.

func stringFlag(cmd *cobra.Command, name string) *string {
	if !cmd.Flags().Changed(name) {
		return nil
	}
	v, _ := cmd.Flags().GetString(name)
	return &v
}

func boolFlag(cmd *cobra.Command, name string) *bool {
	if !cmd.Flags().Changed(name) {
		return nil
	}
	v, _ := cmd.Flags().GetBool(name)
	return &v
}

func float64Flag(cmd *cobra.Command, name string) *float64 {
	if !cmd.Flags().Changed(name) {
		return nil
	}
	v, _ := cmd.Flags().GetFloat64(name)
	return &v
}

func uint32Flag(cmd *cobra.Command, name string) *uint32 {
	if !cmd.Flags().Changed(name) {
		return nil
	}
	v, _ := cmd.Flags().GetUint32(name)
	return &v
}

func stringSliceFlag(cmd *cobra.Command, name string) []string {
	if !cmd.Flags().Changed(name) {
		return nil
	}
	v, _ := cmd.Flags().GetStringSlice(name)
	return v
}

func uint64SliceFlag(cmd *cobra.Command, name string) []uint64 {
	if !cmd.Flags().Changed(name) {
		return nil
	}
	raw, _ := cmd.Flags().GetUintSlice(name)
	out := make([]uint64, 0, len(raw))
	for _, v := range raw {
		out = append(out, uint64(v))
	}
	return out
}

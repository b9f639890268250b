package model

import "time"

// PoolRecord is the flattened pool snapshot row written to storage.
type PoolRecord struct {
	Chain         string  `json:"chain"`
	Address       string  `json:"address"`
	TokenMintA    string  `json:"token_mint_a"`
	TokenMintB    string  `json:"token_mint_b"`
	SymbolA       string  `json:"symbol_a"`
	SymbolB       string  `json:"symbol_b"`
	FeeRate       uint32  `json:"fee_rate"`
	PoolType      string  `json:"pool_type"`
	Price         string  `json:"price"`
	TvlUsdc       string  `json:"tvl_usdc"`
	Volume24h     *string `json:"volume_24h"`
	Fees24h       *string `json:"fees_24h"`
	YieldOverTvl  string  `json:"yield_over_tvl"`
	RewardCount   int     `json:"reward_count"`
	AdaptiveFee   bool    `json:"adaptive_fee"`
	HasWarning    bool    `json:"has_warning"`
	UpdatedAt     string  `json:"updated_at"`
	FetchedAt     string  `json:"fetched_at"`
}

// NewPoolRecord flattens a Whirlpool into a snapshot row. The 24h window is
// taken from the pool stats when the server included it.
func NewPoolRecord(chain string, pool Whirlpool, fetchedAt time.Time) PoolRecord {
	rec := PoolRecord{
		Chain:        chain,
		Address:      pool.Address,
		TokenMintA:   pool.TokenMintA,
		TokenMintB:   pool.TokenMintB,
		SymbolA:      pool.TokenA.Symbol,
		SymbolB:      pool.TokenB.Symbol,
		FeeRate:      pool.FeeRate,
		PoolType:     pool.PoolType,
		Price:        pool.Price,
		TvlUsdc:      pool.TvlUsdc,
		YieldOverTvl: pool.YieldOverTvl,
		RewardCount:  len(pool.Rewards),
		AdaptiveFee:  pool.AdaptiveFeeEnabled,
		HasWarning:   pool.HasWarning,
		UpdatedAt:    pool.UpdatedAt,
		FetchedAt:    fetchedAt.UTC().Format(time.RFC3339Nano),
	}
	if stats, ok := pool.Stats[Period24h]; ok {
		volume := stats.Volume
		fees := stats.Fees
		rec.Volume24h = &volume
		rec.Fees24h = &fees
	}
	return rec
}

package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"whirlscope/internal/model"
)

// Store provides Postgres persistence for pool snapshots.
type Store struct {
	pool *pgxpool.Pool
}

func NewStore(ctx context.Context, dsn string) (*Store, error) {
	if dsn == "" {
		return nil, fmt.Errorf("pg dsn is required")
	}
	pool, err := pgxpool.New(ctx, dsn)
	if err != nil {
		return nil, err
	}
	return &Store{pool: pool}, nil
}

func (s *Store) Close() {
	if s.pool != nil {
		s.pool.Close()
	}
}

// PutPoolBatch upserts a batch of snapshot rows keyed by (chain, address).
func (s *Store) PutPoolBatch(ctx context.Context, records []model.PoolRecord) error {
	if len(records) == 0 {
		return nil
	}
	batch := &pgx.Batch{}
	for _, rec := range records {
		batch.Queue(`
			INSERT INTO pools (
				chain, address, token_mint_a, token_mint_b, symbol_a, symbol_b,
				fee_rate, pool_type, price, tvl_usdc, volume_24h, fees_24h,
				yield_over_tvl, reward_count, adaptive_fee, has_warning,
				updated_at, fetched_at, created_at
			) VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9,$10,$11,$12,$13,$14,$15,$16,$17,$18,now())
			ON CONFLICT (chain, address)
			DO UPDATE SET
				token_mint_a = EXCLUDED.token_mint_a,
				token_mint_b = EXCLUDED.token_mint_b,
				symbol_a = EXCLUDED.symbol_a,
				symbol_b = EXCLUDED.symbol_b,
				fee_rate = EXCLUDED.fee_rate,
				pool_type = EXCLUDED.pool_type,
				price = EXCLUDED.price,
				tvl_usdc = EXCLUDED.tvl_usdc,
				volume_24h = EXCLUDED.volume_24h,
				fees_24h = EXCLUDED.fees_24h,
				yield_over_tvl = EXCLUDED.yield_over_tvl,
				reward_count = EXCLUDED.reward_count,
				adaptive_fee = EXCLUDED.adaptive_fee,
				has_warning = EXCLUDED.has_warning,
				updated_at = EXCLUDED.updated_at,
				fetched_at = EXCLUDED.fetched_at
		`,
			rec.Chain,
			rec.Address,
			rec.TokenMintA,
			rec.TokenMintB,
			rec.SymbolA,
			rec.SymbolB,
			int64(rec.FeeRate),
			rec.PoolType,
			rec.Price,
			rec.TvlUsdc,
			rec.Volume24h,
			rec.Fees24h,
			rec.YieldOverTvl,
			rec.RewardCount,
			rec.AdaptiveFee,
			rec.HasWarning,
			rec.UpdatedAt,
			rec.FetchedAt,
		)
	}

	br := s.pool.SendBatch(ctx, batch)
	defer br.Close()

	for range records {
		if _, err := br.Exec(); err != nil {
			return err
		}
	}
	return nil
}

// LoadCursor returns the saved resume cursor for a chain.
func (s *Store) LoadCursor(ctx context.Context, chain string) (string, bool, error) {
	if chain == "" {
		return "", false, fmt.Errorf("chain is required")
	}
	var cursor string
	row := s.pool.QueryRow(ctx, `SELECT next_cursor FROM snapshot_state WHERE chain=$1`, chain)
	if err := row.Scan(&cursor); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return "", false, nil
		}
		return "", false, err
	}
	return cursor, true, nil
}

// SaveCursor upserts the resume cursor for a chain.
func (s *Store) SaveCursor(ctx context.Context, chain, cursor string) error {
	if chain == "" {
		return fmt.Errorf("chain is required")
	}
	_, err := s.pool.Exec(ctx, `
		INSERT INTO snapshot_state (chain, next_cursor, updated_at)
		VALUES ($1, $2, now())
		ON CONFLICT (chain) DO UPDATE
		SET next_cursor = EXCLUDED.next_cursor, updated_at = now()
	`, chain, cursor)
	return err
}

// ClearCursor removes the resume cursor after a run reaches the end of the
// listing.
func (s *Store) ClearCursor(ctx context.Context, chain string) error {
	if chain == "" {
		return fmt.Errorf("chain is required")
	}
	_, err := s.pool.Exec(ctx, `DELETE FROM snapshot_state WHERE chain=$1`, chain)
	return err
}

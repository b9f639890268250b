package snapshot

import (
	"context"
	"fmt"
	"time"

	"go.uber.org/zap"

	"whirlscope/internal/model"
	"whirlscope/internal/observability"
	"whirlscope/internal/orca"
	"whirlscope/internal/storage"
)

// RunConfig holds runtime settings for a snapshot run.
type RunConfig struct {
	Chain             string
	PageSize          uint32
	MaxPages          int
	MinTvl            float64
	Stats             []model.TimePeriod
	CheckpointPath    string
	CheckpointEnabled bool
	MaxRetries        int
	RetryBackoff      time.Duration
	Metrics           *observability.Metrics
}

// Runner walks the paginated pool listing and writes flattened snapshot rows
// to storage. Cursor sequencing lives here, not in the client: the next page
// is requested only after the previous page's cursor has been observed.
type Runner struct {
	cfg     RunConfig
	client  *orca.Client
	storage storage.Storage
	logger  *zap.Logger
	metrics *observability.Metrics
	seen    map[string]struct{}
	state   StateStore
}

// NewRunner builds a Runner with its dependencies. When checkpointing is
// enabled and the sink implements CursorStorage, the resume cursor is kept in
// the sink; otherwise it goes to the checkpoint file.
func NewRunner(cfg RunConfig, client *orca.Client, storageSink storage.Storage, logger *zap.Logger) *Runner {
	if logger == nil {
		logger = zap.NewNop()
	}
	metrics := cfg.Metrics
	if metrics == nil {
		metrics = observability.DefaultMetrics
	}

	var state StateStore
	if cfg.CheckpointEnabled {
		if db, ok := storageSink.(CursorStorage); ok {
			state = &dbState{chain: cfg.Chain, db: db}
		} else {
			state = NewCheckpointStore(cfg.CheckpointPath, true)
		}
	}

	return &Runner{
		cfg:     cfg,
		client:  client,
		storage: storageSink,
		logger:  logger,
		metrics: metrics,
		seen:    make(map[string]struct{}),
		state:   state,
	}
}

// Run executes the snapshot loop until the listing is exhausted, MaxPages is
// reached, or the context is cancelled.
func (r *Runner) Run(ctx context.Context) error {
	if r.client == nil {
		return fmt.Errorf("client is nil")
	}
	if r.storage == nil {
		return fmt.Errorf("storage is nil")
	}
	if r.cfg.Chain == "" {
		return fmt.Errorf("chain is required")
	}
	if r.cfg.PageSize == 0 {
		return fmt.Errorf("page size must be greater than zero")
	}

	var cursor *string
	if r.state != nil {
		cp, ok, err := r.state.Load(ctx)
		if err != nil {
			return err
		}
		if ok && cp.Chain == r.cfg.Chain && cp.NextCursor != "" {
			next := cp.NextCursor
			cursor = &next
			r.logger.Info("resume from checkpoint", zap.String("cursor", cp.NextCursor))
		}
	}

	pages := 0
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		default:
		}

		params := orca.PoolsParams{
			Size:  orca.Uint32(r.cfg.PageSize),
			Next:  cursor,
			Stats: r.cfg.Stats,
		}
		if r.cfg.MinTvl > 0 {
			params.MinTvl = orca.Float64(r.cfg.MinTvl)
		}

		page, err := r.fetchPageWithRetry(ctx, params)
		if err != nil {
			return fmt.Errorf("fetch pools page: %w", err)
		}
		r.metrics.RecordPageFetched()

		fetchedAt := time.Now().UTC()
		records := make([]model.PoolRecord, 0, len(page.Data))
		for _, pool := range page.Data {
			if r.isDuplicate(pool.Address) {
				continue
			}
			records = append(records, model.NewPoolRecord(r.cfg.Chain, pool, fetchedAt))
		}

		if err := r.storage.PutPoolBatch(ctx, records); err != nil {
			return fmt.Errorf("store pools: %w", err)
		}
		r.metrics.RecordPoolsStored(len(records))

		pages++
		r.logger.Info("page complete",
			zap.Int("page", pages),
			zap.Int("pools", len(records)),
			zap.Bool("has_next", page.Meta.Next != nil),
		)

		if page.Meta.Next == nil {
			if r.state != nil {
				if err := r.state.Clear(ctx); err != nil {
					return err
				}
			}
			break
		}
		cursor = page.Meta.Next
		if r.state != nil {
			if err := r.state.Save(ctx, r.cfg.Chain, *cursor); err != nil {
				return err
			}
		}

		if r.cfg.MaxPages > 0 && pages >= r.cfg.MaxPages {
			r.logger.Info("page limit reached", zap.Int("max_pages", r.cfg.MaxPages))
			break
		}
	}

	r.metrics.SetLastSnapshot(time.Now())
	r.logger.Info("snapshot complete", zap.Int("pages", pages), zap.Int("unique_pools", len(r.seen)))
	return nil
}

func (r *Runner) fetchPageWithRetry(ctx context.Context, params orca.PoolsParams) (*model.Paginated[model.Whirlpool], error) {
	var page *model.Paginated[model.Whirlpool]
	err := withRetry(ctx, r.cfg.MaxRetries, r.cfg.RetryBackoff, func(ctx context.Context) error {
		var err error
		page, err = r.client.GetPools(ctx, r.cfg.Chain, params)
		if err != nil {
			r.metrics.RecordAPIError("get_pools")
			r.logger.Warn("fetch pools failed", zap.Error(err))
		}
		return err
	})
	return page, err
}

// isDuplicate suppresses pools already seen in this run; listings can shift
// between pages while the snapshot walks them.
func (r *Runner) isDuplicate(address string) bool {
	if _, ok := r.seen[address]; ok {
		return true
	}
	r.seen[address] = struct{}{}
	return false
}

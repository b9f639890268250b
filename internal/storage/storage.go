package storage

import (
	"context"

	"whirlscope/internal/model"
)

// Storage defines a sink for pool snapshot rows.
type Storage interface {
	PutPoolBatch(ctx context.Context, records []model.PoolRecord) error
}

package snapshot

import "context"

// StateStore persists the cursor a snapshot run resumes from.
type StateStore interface {
	Load(ctx context.Context) (Checkpoint, bool, error)
	Save(ctx context.Context, chain, nextCursor string) error
	Clear(ctx context.Context) error
}

// CursorStorage is implemented by storage sinks that can keep the resume
// cursor next to the data, such as the Postgres store. When the sink
// implements it, the runner prefers it over the checkpoint file so the
// snapshot state travels with the snapshot rows.
type CursorStorage interface {
	LoadCursor(ctx context.Context, chain string) (string, bool, error)
	SaveCursor(ctx context.Context, chain, cursor string) error
	ClearCursor(ctx context.Context, chain string) error
}

var _ StateStore = (*CheckpointStore)(nil)
var _ StateStore = (*dbState)(nil)

// dbState adapts a CursorStorage sink to the StateStore interface for one
// chain.
type dbState struct {
	chain string
	db    CursorStorage
}

func (s *dbState) Load(ctx context.Context) (Checkpoint, bool, error) {
	cursor, ok, err := s.db.LoadCursor(ctx, s.chain)
	if err != nil || !ok {
		return Checkpoint{}, false, err
	}
	return Checkpoint{NextCursor: cursor, Chain: s.chain}, true, nil
}

func (s *dbState) Save(ctx context.Context, chain, nextCursor string) error {
	return s.db.SaveCursor(ctx, chain, nextCursor)
}

func (s *dbState) Clear(ctx context.Context) error {
	return s.db.ClearCursor(ctx, s.chain)
}

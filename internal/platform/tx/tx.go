package tx

import "context"

// Manager runs fn inside a single commit boundary. Saving a note spans
// two adapters (the vault file and the SQLite index row), which is the
// boundary this guards.
type Manager interface {
	Within(ctx context.Context, fn func(context.Context) error) error
}

// NoopManager runs fn directly. The vault markdown stays the source of
// truth; the reindex command rebuilds the SQLite side from it.
type NoopManager struct{}

func (NoopManager) Within(ctx context.Context, fn func(context.Context) error) error {
	return fn(ctx)
}

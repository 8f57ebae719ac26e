package out

import "context"

// Sink persists a finished export under its destination directory and
// returns the path it wrote.
type Sink interface {
	Write(ctx context.Context, name string, payload []byte) (string, error)
}

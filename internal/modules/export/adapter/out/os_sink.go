package out

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"go.uber.org/zap"
)

// OSSink writes exports under a single directory, creating it on demand.
type OSSink struct {
	dir string
	log *zap.Logger
}

func NewOSSink(dir string, log *zap.Logger) *OSSink {
	if log == nil {
		log = zap.NewNop()
	}
	return &OSSink{dir: dir, log: log}
}

func (s *OSSink) Write(_ context.Context, name string, payload []byte) (string, error) {
	if err := os.MkdirAll(s.dir, 0o755); err != nil {
		return "", fmt.Errorf("create exports dir: %w", err)
	}
	path := filepath.Join(s.dir, name)
	if err := os.WriteFile(path, payload, 0o644); err != nil {
		return "", fmt.Errorf("write export: %w", err)
	}
	s.log.Info("export written", zap.String("path", path), zap.Int("bytes", len(payload)))
	return path, nil
}

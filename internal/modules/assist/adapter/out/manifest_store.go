package out

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"inkwell/internal/modules/assist/domain"
	assistout "inkwell/internal/modules/assist/port/out"
)

// FileManifestStore reads plugins.json from the plugins directory. A
// missing file means no plugins are installed.
type FileManifestStore struct {
	pluginsPath string
}

func NewFileManifestStore(pluginsPath string) assistout.ManifestStore {
	return &FileManifestStore{pluginsPath: pluginsPath}
}

func (s *FileManifestStore) Load(_ context.Context) ([]domain.Manifest, error) {
	f, err := os.Open(filepath.Join(s.pluginsPath, "plugins.json"))
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return []domain.Manifest{}, nil
		}
		return nil, fmt.Errorf("read plugin manifest store: %w", err)
	}
	defer func() { _ = f.Close() }()

	decoder := json.NewDecoder(f)
	decoder.DisallowUnknownFields()
	var manifests []domain.Manifest
	if err := decoder.Decode(&manifests); err != nil {
		return nil, fmt.Errorf("decode plugin manifests: %w", err)
	}
	for i, manifest := range manifests {
		if manifest.Binary == "" || filepath.IsAbs(manifest.Binary) {
			continue
		}
		manifests[i].Binary = filepath.Clean(filepath.Join(s.pluginsPath, manifest.Binary))
	}
	return manifests, nil
}

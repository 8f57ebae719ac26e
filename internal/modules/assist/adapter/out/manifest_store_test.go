package out_test

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	assistadapter "inkwell/internal/modules/assist/adapter/out"
)

func writePluginsJSON(t *testing.T, dir, raw string) {
	t.Helper()
	if err := os.WriteFile(filepath.Join(dir, "plugins.json"), []byte(raw), 0o644); err != nil {
		t.Fatalf("write plugins.json: %v", err)
	}
}

func TestManifestStoreEmptyWithoutFile(t *testing.T) {
	t.Parallel()
	manifests, err := assistadapter.NewFileManifestStore(t.TempDir()).Load(context.Background())
	if err != nil {
		t.Fatalf("load manifests: %v", err)
	}
	if len(manifests) != 0 {
		t.Fatalf("expected no manifests, got %d", len(manifests))
	}
}

func TestManifestStoreResolvesRelativeBinary(t *testing.T) {
	t.Parallel()
	dir := t.TempDir()
	writePluginsJSON(t, dir, `[
  {
    "name": "reference",
    "version": "1.0.0",
    "binary": "reference/reference-plugin",
    "sha256": "aaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaa",
    "enabled": true,
    "capabilities": ["transform"]
  }
]`)

	manifests, err := assistadapter.NewFileManifestStore(dir).Load(context.Background())
	if err != nil {
		t.Fatalf("load manifests: %v", err)
	}
	if len(manifests) != 1 {
		t.Fatalf("expected one manifest, got %d", len(manifests))
	}
	want := filepath.Join(dir, "reference", "reference-plugin")
	if manifests[0].Binary != want {
		t.Fatalf("binary = %s, want %s", manifests[0].Binary, want)
	}
}

func TestManifestStoreRejectsUnknownField(t *testing.T) {
	t.Parallel()
	dir := t.TempDir()
	writePluginsJSON(t, dir, `[
  {
    "name": "reference",
    "version": "1.0.0",
    "binary": "/tmp/reference-plugin",
    "sha256": "aaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaa",
    "enabled": true,
    "capabilities": ["transform"],
    "unknown_field": true
  }
]`)

	if _, err := assistadapter.NewFileManifestStore(dir).Load(context.Background()); err == nil {
		t.Fatalf("expected unknown field error")
	}
}

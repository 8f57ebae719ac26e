package out

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"os"
	"path/filepath"

	"inkwell/internal/modules/assist/domain"
	assistout "inkwell/internal/modules/assist/port/out"
	apperrors "inkwell/internal/platform/errors"
)

// PluginTransformer routes transforms to the first enabled manifest
// with the transform capability.
type PluginTransformer struct {
	store assistout.ManifestStore
	host  assistout.PluginHost
}

func NewPluginTransformer(store assistout.ManifestStore, host assistout.PluginHost) assistout.TextTransformer {
	return &PluginTransformer{store: store, host: host}
}

func (t *PluginTransformer) Name() string {
	return "plugin"
}

func (t *PluginTransformer) Transform(ctx context.Context, action domain.Action, text string) (string, error) {
	manifest, err := t.selectManifest(ctx)
	if err != nil {
		return "", err
	}
	descriptors, err := t.host.ListActions(ctx, manifest)
	if err != nil {
		return "", err
	}
	descriptor, err := requireAction(descriptors, action.ID)
	if err != nil {
		return "", err
	}
	return t.host.Transform(ctx, manifest, descriptor, action.Prompt, text)
}

func (t *PluginTransformer) Actions(ctx context.Context) ([]domain.Action, error) {
	manifest, err := t.selectManifest(ctx)
	if err != nil {
		return nil, err
	}
	descriptors, err := t.host.ListActions(ctx, manifest)
	if err != nil {
		return nil, err
	}
	out := make([]domain.Action, 0, len(descriptors))
	for _, descriptor := range descriptors {
		if err := descriptor.Validate(); err != nil {
			return nil, err
		}
		out = append(out, domain.Action{ID: descriptor.ID, Title: descriptor.Title})
	}
	return out, nil
}

func (t *PluginTransformer) Doctor(ctx context.Context) []domain.ProviderCheck {
	manifests, err := t.store.Load(ctx)
	if err != nil {
		return []domain.ProviderCheck{{Target: "plugins.json", OK: false, Detail: err.Error()}}
	}
	if len(manifests) == 0 {
		return []domain.ProviderCheck{{Target: "plugins.json", OK: false, Detail: "no plugins declared"}}
	}
	checks := make([]domain.ProviderCheck, 0, len(manifests))
	for _, manifest := range manifests {
		check := domain.ProviderCheck{Target: "plugin:" + manifest.Name}
		switch validateErr := manifest.Validate(); {
		case validateErr != nil:
			check.Detail = validateErr.Error()
		case !fileExists(manifest.Binary):
			check.Detail = fmt.Sprintf("binary does not exist: %s", manifest.Binary)
		case checksumMatches(manifest.Binary, manifest.SHA256) != nil:
			check.Detail = "checksum mismatch"
		case !manifest.Enabled:
			check.Detail = "disabled"
		default:
			if err := t.host.CheckLifecycle(ctx, manifest); err != nil {
				check.Detail = err.Error()
			} else {
				check.OK = true
				check.Detail = "ok"
			}
		}
		checks = append(checks, check)
	}
	return checks
}

func (t *PluginTransformer) selectManifest(ctx context.Context) (domain.Manifest, error) {
	manifests, err := t.store.Load(ctx)
	if err != nil {
		return domain.Manifest{}, err
	}
	seenNames := map[string]struct{}{}
	for _, manifest := range manifests {
		if err := manifest.Validate(); err != nil {
			return domain.Manifest{}, err
		}
		if _, ok := seenNames[manifest.Name]; ok {
			return domain.Manifest{}, fmt.Errorf("duplicate plugin name: %s", manifest.Name)
		}
		seenNames[manifest.Name] = struct{}{}
	}
	for _, manifest := range manifests {
		if !manifest.Enabled || !manifest.HasCapability(domain.CapabilityTransform) {
			continue
		}
		if err := checksumMatches(manifest.Binary, manifest.SHA256); err != nil {
			return domain.Manifest{}, err
		}
		return manifest, nil
	}
	return domain.Manifest{}, fmt.Errorf("%w: no enabled transform plugin", apperrors.ErrProviderUnavailable)
}

func requireAction(descriptors []domain.ActionDescriptor, actionID string) (domain.ActionDescriptor, error) {
	for _, descriptor := range descriptors {
		if err := descriptor.Validate(); err != nil {
			return domain.ActionDescriptor{}, err
		}
		if descriptor.ID == actionID {
			return descriptor, nil
		}
	}
	return domain.ActionDescriptor{}, fmt.Errorf("%w: %s", domain.ErrActionUnsupported, actionID)
}

func checksumMatches(path string, expected string) error {
	payload, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read plugin binary: %w", err)
	}
	hash := sha256.Sum256(payload)
	actual := hex.EncodeToString(hash[:])
	if actual != expected {
		return fmt.Errorf("%w: %s", domain.ErrChecksumMismatch, filepath.Base(path))
	}
	return nil
}

func fileExists(path string) bool {
	_, err := os.Stat(path)
	return err == nil
}

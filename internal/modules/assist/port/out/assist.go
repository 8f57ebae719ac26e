package out

import (
	"context"

	"inkwell/internal/modules/assist/domain"
)

// TextTransformer is one configured AI backend.
type TextTransformer interface {
	Name() string
	Transform(ctx context.Context, action domain.Action, text string) (string, error)
	Doctor(ctx context.Context) []domain.ProviderCheck
}

// ActionLister is implemented by transformers that advertise actions of
// their own beyond the built-in set.
type ActionLister interface {
	Actions(ctx context.Context) ([]domain.Action, error)
}

type ManifestStore interface {
	Load(ctx context.Context) ([]domain.Manifest, error)
}

// PluginHost runs a plugin binary and speaks the transform contract.
type PluginHost interface {
	CheckLifecycle(ctx context.Context, manifest domain.Manifest) error
	GetMetadata(ctx context.Context, manifest domain.Manifest) (domain.Metadata, error)
	ListActions(ctx context.Context, manifest domain.Manifest) ([]domain.ActionDescriptor, error)
	Transform(ctx context.Context, manifest domain.Manifest, descriptor domain.ActionDescriptor, prompt, text string) (string, error)
}

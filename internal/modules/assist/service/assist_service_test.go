package service_test

import (
	"context"
	"errors"
	"testing"

	"inkwell/internal/modules/assist/domain"
	"inkwell/internal/modules/assist/service"
	apperrors "inkwell/internal/platform/errors"
)

type fakeTransformer struct {
	calls       int
	err         error
	emptyResult bool
}

func (f *fakeTransformer) Name() string {
	return "fake"
}

func (f *fakeTransformer) Transform(_ context.Context, action domain.Action, text string) (string, error) {
	f.calls++
	if f.err != nil {
		return "", f.err
	}
	if f.emptyResult {
		return "   ", nil
	}
	return "[" + action.ID + "] " + text, nil
}

func (f *fakeTransformer) Doctor(_ context.Context) []domain.ProviderCheck {
	return []domain.ProviderCheck{{Target: "fake", OK: true, Detail: "ok"}}
}

type fakeListingTransformer struct {
	fakeTransformer
	extras    []domain.Action
	extrasErr error
}

func (f *fakeListingTransformer) Actions(_ context.Context) ([]domain.Action, error) {
	return f.extras, f.extrasErr
}

func TestTransformCachesResults(t *testing.T) {
	provider := &fakeTransformer{}
	svc := service.NewAssistService(provider)
	ctx := context.Background()

	first, err := svc.Transform(ctx, "summarize", "some text")
	if err != nil {
		t.Fatalf("transform: %v", err)
	}
	second, err := svc.Transform(ctx, "summarize", "some text")
	if err != nil {
		t.Fatalf("transform again: %v", err)
	}
	if first != second {
		t.Fatalf("expected identical cached result, got %q vs %q", first, second)
	}
	if provider.calls != 1 {
		t.Fatalf("expected one provider call, got %d", provider.calls)
	}

	if _, err := svc.Transform(ctx, "summarize", "other text"); err != nil {
		t.Fatalf("transform other: %v", err)
	}
	if provider.calls != 2 {
		t.Fatalf("expected cache miss on new text, got %d calls", provider.calls)
	}
	if _, err := svc.Transform(ctx, "rewrite", "some text"); err != nil {
		t.Fatalf("transform rewrite: %v", err)
	}
	if provider.calls != 3 {
		t.Fatalf("expected cache keyed by action too, got %d calls", provider.calls)
	}
}

func TestTransformFailuresAreNotCached(t *testing.T) {
	provider := &fakeTransformer{err: errors.New("backend down")}
	svc := service.NewAssistService(provider)
	ctx := context.Background()

	if _, err := svc.Transform(ctx, "summarize", "text"); err == nil {
		t.Fatalf("expected provider error")
	}
	provider.err = nil
	out, err := svc.Transform(ctx, "summarize", "text")
	if err != nil {
		t.Fatalf("transform after recovery: %v", err)
	}
	if out != "[summarize] text" {
		t.Fatalf("unexpected result %q", out)
	}
	if provider.calls != 2 {
		t.Fatalf("expected retry to reach provider, got %d calls", provider.calls)
	}
}

func TestTransformRejectsEmptyProviderResult(t *testing.T) {
	provider := &fakeTransformer{emptyResult: true}
	svc := service.NewAssistService(provider)

	if _, err := svc.Transform(context.Background(), "summarize", "text"); err == nil {
		t.Fatalf("expected empty result to fail")
	}
}

func TestTransformInputValidation(t *testing.T) {
	svc := service.NewAssistService(&fakeTransformer{})
	ctx := context.Background()

	if _, err := svc.Transform(ctx, "summarize", "   "); !errors.Is(err, apperrors.ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput for blank text, got %v", err)
	}
	if _, err := svc.Transform(ctx, "nope", "text"); !errors.Is(err, apperrors.ErrActionUnknown) {
		t.Fatalf("expected ErrActionUnknown, got %v", err)
	}
}

func TestTransformWithoutProvider(t *testing.T) {
	svc := service.NewAssistService(nil)
	ctx := context.Background()

	if _, err := svc.Transform(ctx, "summarize", "text"); !errors.Is(err, apperrors.ErrProviderUnavailable) {
		t.Fatalf("expected ErrProviderUnavailable, got %v", err)
	}

	actions, err := svc.Actions(ctx)
	if err != nil {
		t.Fatalf("actions: %v", err)
	}
	if len(actions) != len(domain.Builtins()) {
		t.Fatalf("expected built-ins without provider, got %d", len(actions))
	}

	checks, err := svc.Doctor(ctx)
	if err != nil {
		t.Fatalf("doctor: %v", err)
	}
	if len(checks) != 1 || checks[0].OK {
		t.Fatalf("expected failing provider check, got %+v", checks)
	}
	if svc.ProviderName() != "none" {
		t.Fatalf("expected provider name none, got %s", svc.ProviderName())
	}
}

func TestActionsMergeProviderExtras(t *testing.T) {
	provider := &fakeListingTransformer{
		extras: []domain.Action{
			{ID: "shout", Title: "Shout"},
			{ID: "summarize", Title: "Duplicate of a built-in"},
		},
	}
	svc := service.NewAssistService(provider)
	ctx := context.Background()

	actions, err := svc.Actions(ctx)
	if err != nil {
		t.Fatalf("actions: %v", err)
	}
	want := len(domain.Builtins()) + 1
	if len(actions) != want {
		t.Fatalf("expected %d actions, got %d", want, len(actions))
	}
	last := actions[len(actions)-1]
	if last.ID != "shout" {
		t.Fatalf("expected provider extra appended, got %+v", last)
	}

	out, err := svc.Transform(ctx, "shout", "hello")
	if err != nil {
		t.Fatalf("transform extra action: %v", err)
	}
	if out != "[shout] hello" {
		t.Fatalf("unexpected result %q", out)
	}
}

func TestActionsTolerateProviderListFailure(t *testing.T) {
	provider := &fakeListingTransformer{extrasErr: errors.New("plugin down")}
	svc := service.NewAssistService(provider)

	actions, err := svc.Actions(context.Background())
	if err != nil {
		t.Fatalf("actions: %v", err)
	}
	if len(actions) != len(domain.Builtins()) {
		t.Fatalf("expected built-ins on provider failure, got %d", len(actions))
	}
}

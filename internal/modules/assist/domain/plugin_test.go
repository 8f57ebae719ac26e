package domain_test

import (
	"testing"

	"inkwell/internal/modules/assist/domain"
)

func TestManifestValidate(t *testing.T) {
	t.Parallel()
	cases := []struct {
		name      string
		manifest  domain.Manifest
		shouldErr bool
	}{
		{name: "valid", manifest: domain.Manifest{Name: "p", Version: "1", Binary: "/tmp/p", SHA256: "aaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaa", Enabled: true, Capabilities: []domain.Capability{domain.CapabilityTransform}}, shouldErr: false},
		{name: "missing name", manifest: domain.Manifest{Version: "1", Binary: "/tmp/p", SHA256: "aaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaa", Enabled: true, Capabilities: []domain.Capability{domain.CapabilityTransform}}, shouldErr: true},
		{name: "missing version", manifest: domain.Manifest{Name: "p", Binary: "/tmp/p", SHA256: "aaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaa", Enabled: true, Capabilities: []domain.Capability{domain.CapabilityTransform}}, shouldErr: true},
		{name: "missing binary", manifest: domain.Manifest{Name: "p", Version: "1", SHA256: "aaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaa", Enabled: true, Capabilities: []domain.Capability{domain.CapabilityTransform}}, shouldErr: true},
		{name: "short sha", manifest: domain.Manifest{Name: "p", Version: "1", Binary: "/tmp/p", SHA256: "abc123", Enabled: true, Capabilities: []domain.Capability{domain.CapabilityTransform}}, shouldErr: true},
		{name: "no capabilities", manifest: domain.Manifest{Name: "p", Version: "1", Binary: "/tmp/p", SHA256: "aaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaa", Enabled: true}, shouldErr: true},
		{name: "invalid capability", manifest: domain.Manifest{Name: "p", Version: "1", Binary: "/tmp/p", SHA256: "aaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaa", Enabled: true, Capabilities: []domain.Capability{"invalid"}}, shouldErr: true},
		{name: "duplicate capability", manifest: domain.Manifest{Name: "p", Version: "1", Binary: "/tmp/p", SHA256: "aaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaa", Enabled: true, Capabilities: []domain.Capability{domain.CapabilityTransform, domain.CapabilityTransform}}, shouldErr: true},
	}
	for _, tc := range cases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			err := tc.manifest.Validate()
			if tc.shouldErr && err == nil {
				t.Fatalf("expected error")
			}
			if !tc.shouldErr && err != nil {
				t.Fatalf("expected no error, got %v", err)
			}
		})
	}
}

func TestBuiltinsAreWellFormed(t *testing.T) {
	t.Parallel()
	builtins := domain.Builtins()
	if len(builtins) != 5 {
		t.Fatalf("expected 5 built-in actions, got %d", len(builtins))
	}
	seen := map[string]struct{}{}
	for _, action := range builtins {
		if err := action.Validate(); err != nil {
			t.Fatalf("builtin %s invalid: %v", action.ID, err)
		}
		if action.Prompt == "" {
			t.Fatalf("builtin %s has no prompt", action.ID)
		}
		if _, ok := seen[action.ID]; ok {
			t.Fatalf("duplicate builtin id %s", action.ID)
		}
		seen[action.ID] = struct{}{}
	}
}

func TestActionDescriptorValidate(t *testing.T) {
	t.Parallel()
	if err := (domain.ActionDescriptor{ID: "shout", Title: "Shout"}).Validate(); err != nil {
		t.Fatalf("descriptor validate: %v", err)
	}
	if err := (domain.ActionDescriptor{Title: "Shout"}).Validate(); err == nil {
		t.Fatalf("expected missing id error")
	}
	if err := (domain.ActionDescriptor{ID: "shout"}).Validate(); err == nil {
		t.Fatalf("expected missing title error")
	}
}

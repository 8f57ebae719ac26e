package out

import (
	"context"
	"fmt"
	"io"
	"os/exec"
	"time"

	assistrpc "inkwell/internal/modules/assist/adapter/out/rpc"
	"inkwell/internal/modules/assist/domain"
	assistout "inkwell/internal/modules/assist/port/out"

	hclog "github.com/hashicorp/go-hclog"
	"github.com/hashicorp/go-plugin"
)

const (
	defaultStartTimeout     = 3 * time.Second
	defaultCallTimeout      = 5 * time.Second
	defaultTransformTimeout = 60 * time.Second
)

// GRPCHost launches the manifest's binary for each call and tears the
// process down when the call returns.
type GRPCHost struct{}

func NewGRPCHost() assistout.PluginHost {
	return &GRPCHost{}
}

func (h *GRPCHost) CheckLifecycle(ctx context.Context, manifest domain.Manifest) error {
	return h.withClient(ctx, manifest, defaultCallTimeout, func(ctx context.Context, client assistrpc.AssistPluginClient) error {
		if _, err := client.GetMetadata(ctx); err != nil {
			return fmt.Errorf("get metadata: %w", err)
		}
		return nil
	})
}

func (h *GRPCHost) GetMetadata(ctx context.Context, manifest domain.Manifest) (domain.Metadata, error) {
	var meta domain.Metadata
	err := h.withClient(ctx, manifest, defaultCallTimeout, func(ctx context.Context, client assistrpc.AssistPluginClient) error {
		remote, err := client.GetMetadata(ctx)
		if err != nil {
			return fmt.Errorf("get metadata: %w", err)
		}
		meta = domain.Metadata{
			Name:         remote.Name,
			Version:      remote.Version,
			Capabilities: toCapabilities(remote.Capabilities),
		}
		return nil
	})
	return meta, err
}

func (h *GRPCHost) ListActions(ctx context.Context, manifest domain.Manifest) ([]domain.ActionDescriptor, error) {
	var descriptors []domain.ActionDescriptor
	err := h.withClient(ctx, manifest, defaultCallTimeout, func(ctx context.Context, client assistrpc.AssistPluginClient) error {
		response, err := client.ListActions(ctx)
		if err != nil {
			return fmt.Errorf("list actions: %w", err)
		}
		descriptors = make([]domain.ActionDescriptor, 0, len(response.Actions))
		for _, action := range response.Actions {
			descriptors = append(descriptors, domain.ActionDescriptor{
				ID:        action.ID,
				Title:     action.Title,
				TimeoutMS: int(action.TimeoutMS),
			})
		}
		return nil
	})
	return descriptors, err
}

func (h *GRPCHost) Transform(ctx context.Context, manifest domain.Manifest, descriptor domain.ActionDescriptor, prompt, text string) (string, error) {
	timeout := defaultTransformTimeout
	if descriptor.TimeoutMS > 0 {
		timeout = time.Duration(descriptor.TimeoutMS) * time.Millisecond
	}
	var result string
	err := h.withClient(ctx, manifest, timeout, func(ctx context.Context, client assistrpc.AssistPluginClient) error {
		response, err := client.Transform(ctx, &assistrpc.TransformRequest{
			ActionID: descriptor.ID,
			Prompt:   prompt,
			Text:     text,
		})
		if err != nil {
			if ctx.Err() == context.DeadlineExceeded {
				return fmt.Errorf("%w: action %s", domain.ErrPluginTimeout, descriptor.ID)
			}
			return fmt.Errorf("transform: %w", err)
		}
		result = response.Text
		return nil
	})
	return result, err
}

// withClient owns the whole plugin lifetime: launch, handshake,
// dispense, one bounded call, kill.
func (h *GRPCHost) withClient(ctx context.Context, manifest domain.Manifest, timeout time.Duration, fn func(ctx context.Context, client assistrpc.AssistPluginClient) error) error {
	launcher := plugin.NewClient(&plugin.ClientConfig{
		HandshakeConfig:  assistrpc.HandshakeConfig,
		AllowedProtocols: []plugin.Protocol{plugin.ProtocolGRPC},
		Plugins:          assistrpc.PluginMap(nil),
		Cmd:              exec.Command(manifest.Binary),
		Managed:          true,
		StartTimeout:     defaultStartTimeout,
		Logger:           hclog.New(&hclog.LoggerOptions{Output: io.Discard, Level: hclog.NoLevel}),
	})
	defer launcher.Kill()

	proto, err := launcher.Client()
	if err != nil {
		return fmt.Errorf("start plugin client: %w", err)
	}
	raw, err := proto.Dispense(assistrpc.PluginMapKey)
	if err != nil {
		return fmt.Errorf("dispense plugin: %w", err)
	}
	client, ok := raw.(assistrpc.AssistPluginClient)
	if !ok {
		return fmt.Errorf("plugin rpc client type mismatch")
	}

	callCtx, cancel := boundedContext(ctx, timeout)
	defer cancel()
	return fn(callCtx, client)
}

// boundedContext caps calls that arrive without a deadline; callers
// that already carry one keep it.
func boundedContext(parent context.Context, timeout time.Duration) (context.Context, context.CancelFunc) {
	if _, ok := parent.Deadline(); ok {
		return context.WithCancel(parent)
	}
	return context.WithTimeout(parent, timeout)
}

func toCapabilities(raw []string) []domain.Capability {
	out := make([]domain.Capability, 0, len(raw))
	for _, capability := range raw {
		out = append(out, domain.Capability(capability))
	}
	return out
}

package main

import (
	"context"
	"fmt"
	"strings"

	assistrpc "inkwell/internal/modules/assist/adapter/out/rpc"

	"github.com/hashicorp/go-plugin"
)

type server struct{}

func (s *server) GetMetadata(_ context.Context, _ *assistrpc.Empty) (*assistrpc.Metadata, error) {
	return &assistrpc.Metadata{
		Name:         "reference",
		Version:      "1.0.0",
		Capabilities: []string{"transform"},
	}, nil
}

func (s *server) ListActions(_ context.Context, _ *assistrpc.Empty) (*assistrpc.ListActionsResponse, error) {
	return &assistrpc.ListActionsResponse{Actions: []assistrpc.ActionDescriptor{
		{ID: "shout", Title: "Shout", TimeoutMS: 2000},
		{ID: "word-count", Title: "Word count", TimeoutMS: 2000},
	}}, nil
}

func (s *server) Transform(_ context.Context, in *assistrpc.TransformRequest) (*assistrpc.TransformResponse, error) {
	switch in.ActionID {
	case "shout":
		return &assistrpc.TransformResponse{Text: strings.ToUpper(in.Text)}, nil
	case "word-count":
		count := len(strings.Fields(in.Text))
		return &assistrpc.TransformResponse{Text: fmt.Sprintf("%s\n\nWords: %d", in.Text, count)}, nil
	default:
		return nil, fmt.Errorf("unknown action: %s", in.ActionID)
	}
}

func main() {
	plugin.Serve(&plugin.ServeConfig{
		HandshakeConfig: assistrpc.HandshakeConfig,
		Plugins:         assistrpc.PluginMap(&server{}),
		GRPCServer:      plugin.DefaultGRPCServer,
	})
}

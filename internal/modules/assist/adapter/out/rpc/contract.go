package rpc

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/hashicorp/go-plugin"
	"google.golang.org/grpc"
	"google.golang.org/grpc/encoding"
)

const (
	PluginMapKey      = "inkwell"
	serviceName       = "inkwell.assist.v1.AssistPlugin"
	jsonCodecName     = "json"
	methodGetMetadata = "/" + serviceName + "/GetMetadata"
	methodListActions = "/" + serviceName + "/ListActions"
	methodTransform   = "/" + serviceName + "/Transform"
)

var HandshakeConfig = plugin.HandshakeConfig{
	ProtocolVersion:  1,
	MagicCookieKey:   "INKWELL_PLUGIN",
	MagicCookieValue: "inkwell",
}

// Requests and responses cross the wire as JSON, not protobuf, so the
// contract below is the whole schema.
type jsonCodec struct{}

func (jsonCodec) Marshal(v any) ([]byte, error) {
	return json.Marshal(v)
}

func (jsonCodec) Unmarshal(data []byte, v any) error {
	return json.Unmarshal(data, v)
}

func (jsonCodec) Name() string {
	return jsonCodecName
}

func init() {
	encoding.RegisterCodec(jsonCodec{})
}

type Empty struct{}

type Metadata struct {
	Name         string   `json:"name"`
	Version      string   `json:"version"`
	Capabilities []string `json:"capabilities"`
}

type ActionDescriptor struct {
	ID        string `json:"id"`
	Title     string `json:"title"`
	TimeoutMS int32  `json:"timeout_ms"`
}

type ListActionsResponse struct {
	Actions []ActionDescriptor `json:"actions"`
}

type TransformRequest struct {
	ActionID string `json:"action_id"`
	Prompt   string `json:"prompt"`
	Text     string `json:"text"`
}

type TransformResponse struct {
	Text string `json:"text"`
}

type AssistPluginServer interface {
	GetMetadata(ctx context.Context, in *Empty) (*Metadata, error)
	ListActions(ctx context.Context, in *Empty) (*ListActionsResponse, error)
	Transform(ctx context.Context, in *TransformRequest) (*TransformResponse, error)
}

type AssistPluginClient interface {
	GetMetadata(ctx context.Context) (*Metadata, error)
	ListActions(ctx context.Context) (*ListActionsResponse, error)
	Transform(ctx context.Context, in *TransformRequest) (*TransformResponse, error)
}

type assistPluginClient struct {
	conn *grpc.ClientConn
}

func NewAssistPluginClient(conn *grpc.ClientConn) AssistPluginClient {
	return &assistPluginClient{conn: conn}
}

func (c *assistPluginClient) GetMetadata(ctx context.Context) (*Metadata, error) {
	return invoke[Metadata](ctx, c.conn, methodGetMetadata, &Empty{})
}

func (c *assistPluginClient) ListActions(ctx context.Context) (*ListActionsResponse, error) {
	return invoke[ListActionsResponse](ctx, c.conn, methodListActions, &Empty{})
}

func (c *assistPluginClient) Transform(ctx context.Context, in *TransformRequest) (*TransformResponse, error) {
	return invoke[TransformResponse](ctx, c.conn, methodTransform, in)
}

func invoke[Resp any](ctx context.Context, conn *grpc.ClientConn, method string, in any) (*Resp, error) {
	out := new(Resp)
	if err := conn.Invoke(ctx, method, in, out, grpc.CallContentSubtype(jsonCodecName)); err != nil {
		return nil, err
	}
	return out, nil
}

// unary adapts a typed method to the grpc.MethodDesc handler shape,
// decoding into Req and honoring any installed interceptor.
func unary[Req any](fullMethod string, call func(ctx context.Context, in *Req) (any, error)) func(srv any, ctx context.Context, dec func(any) error, interceptor grpc.UnaryServerInterceptor) (any, error) {
	return func(srv any, ctx context.Context, dec func(any) error, interceptor grpc.UnaryServerInterceptor) (any, error) {
		in := new(Req)
		if err := dec(in); err != nil {
			return nil, err
		}
		if interceptor == nil {
			return call(ctx, in)
		}
		info := &grpc.UnaryServerInfo{Server: srv, FullMethod: fullMethod}
		return interceptor(ctx, in, info, func(ctx context.Context, req any) (any, error) {
			typed, ok := req.(*Req)
			if !ok {
				return nil, fmt.Errorf("unexpected request type %T", req)
			}
			return call(ctx, typed)
		})
	}
}

func RegisterAssistPluginServer(server grpc.ServiceRegistrar, impl AssistPluginServer) {
	server.RegisterService(&grpc.ServiceDesc{
		ServiceName: serviceName,
		HandlerType: (*AssistPluginServer)(nil),
		Methods: []grpc.MethodDesc{
			{
				MethodName: "GetMetadata",
				Handler: unary(methodGetMetadata, func(ctx context.Context, in *Empty) (any, error) {
					return impl.GetMetadata(ctx, in)
				}),
			},
			{
				MethodName: "ListActions",
				Handler: unary(methodListActions, func(ctx context.Context, in *Empty) (any, error) {
					return impl.ListActions(ctx, in)
				}),
			},
			{
				MethodName: "Transform",
				Handler: unary(methodTransform, func(ctx context.Context, in *TransformRequest) (any, error) {
					return impl.Transform(ctx, in)
				}),
			},
		},
		Streams:  []grpc.StreamDesc{},
		Metadata: "schemas/assist-rpc-v1.proto",
	}, impl)
}

type GRPCPlugin struct {
	plugin.NetRPCUnsupportedPlugin
	Impl AssistPluginServer
}

func (p *GRPCPlugin) GRPCServer(_ *plugin.GRPCBroker, server *grpc.Server) error {
	RegisterAssistPluginServer(server, p.Impl)
	return nil
}

func (p *GRPCPlugin) GRPCClient(_ context.Context, _ *plugin.GRPCBroker, conn *grpc.ClientConn) (any, error) {
	return NewAssistPluginClient(conn), nil
}

func PluginMap(impl AssistPluginServer) map[string]plugin.Plugin {
	return map[string]plugin.Plugin{
		PluginMapKey: &GRPCPlugin{Impl: impl},
	}
}

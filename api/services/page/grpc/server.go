package grpcserver

import (
	"context"
	"errors"
	"log/slog"

	envapp "github.com/tbeaudouin05/envpage/api/services/env/app"
	pageapp "github.com/tbeaudouin05/envpage/api/services/page/app"
	"google.golang.org/genproto/googleapis/api/httpbody"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/health"
	healthpb "google.golang.org/grpc/health/grpc_health_v1"
	"google.golang.org/grpc/status"
	"google.golang.org/protobuf/types/known/emptypb"
	"google.golang.org/protobuf/types/known/structpb"
)

const (
	ContentTypeHTML       = "text/html; charset=utf-8"
	ContentTypeJavaScript = "application/javascript; charset=utf-8"
)

// Server implements PageServiceServer on top of the env service and the page
// component. The component is rebuilt per call from the resolved env.
type Server struct {
	env    envapp.Service
	opts   []pageapp.Option
	health *health.Server
}

var _ PageServiceServer = (*Server)(nil)

// New returns a Server. Health reports NOT_SERVING while the env cannot be
// resolved.
func New(env envapp.Service, opts ...pageapp.Option) *Server {
	s := &Server{env: env, opts: opts, health: health.NewServer()}
	s.RefreshHealth()
	return s
}

// Register attaches the page and health services to a gRPC server.
func Register(r grpc.ServiceRegistrar, s *Server) {
	r.RegisterService(&ServiceDesc, s)
	healthpb.RegisterHealthServer(r, s.health)
}

// RefreshHealth re-resolves the env and updates the health status.
func (s *Server) RefreshHealth() {
	st := healthpb.HealthCheckResponse_SERVING
	if _, err := s.env.Env(); err != nil {
		slog.Warn("page service not ready", "err", err)
		st = healthpb.HealthCheckResponse_NOT_SERVING
	}
	s.health.SetServingStatus("", st)
	s.health.SetServingStatus(ServiceName, st)
}

// Shutdown flips every service to NOT_SERVING.
func (s *Server) Shutdown() { s.health.Shutdown() }

// Check answers a health probe for the named service ("" for the server).
func (s *Server) Check(ctx context.Context, service string) (*healthpb.HealthCheckResponse, error) {
	return s.health.Check(ctx, &healthpb.HealthCheckRequest{Service: service})
}

func (s *Server) component() (*pageapp.Component, error) {
	env, err := s.env.Env()
	if err != nil {
		return nil, err
	}
	return pageapp.New(env, s.opts...), nil
}

func (s *Server) GetEnv(ctx context.Context, _ *emptypb.Empty) (*structpb.Struct, error) {
	env, err := s.env.Env()
	if err != nil {
		return nil, toStatus(err)
	}
	out, err := structpb.NewStruct(env.AsMap())
	if err != nil {
		return nil, status.Errorf(codes.Internal, "encoding env: %v", err)
	}
	return out, nil
}

func (s *Server) RenderPage(ctx context.Context, _ *emptypb.Empty) (*httpbody.HttpBody, error) {
	c, err := s.component()
	if err != nil {
		return nil, toStatus(err)
	}
	doc, err := c.Document()
	if err != nil {
		return nil, toStatus(err)
	}
	return &httpbody.HttpBody{ContentType: ContentTypeHTML, Data: doc}, nil
}

func (s *Server) RenderScript(ctx context.Context, _ *emptypb.Empty) (*httpbody.HttpBody, error) {
	c, err := s.component()
	if err != nil {
		return nil, toStatus(err)
	}
	script, err := c.Script()
	if err != nil {
		return nil, toStatus(err)
	}
	return &httpbody.HttpBody{ContentType: ContentTypeJavaScript, Data: []byte(script + "\n")}, nil
}

// toStatus maps app-layer errors to gRPC status codes.
func toStatus(err error) error {
	switch {
	case errors.Is(err, envapp.ErrMissingConfig):
		return status.Error(codes.Unavailable, err.Error())
	case errors.Is(err, pageapp.ErrRender):
		return status.Error(codes.Internal, err.Error())
	default:
		return status.Error(codes.Unknown, err.Error())
	}
}

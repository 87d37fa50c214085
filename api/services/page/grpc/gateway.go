package grpcserver

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/grpc-ecosystem/grpc-gateway/v2/runtime"
	"google.golang.org/grpc/codes"
	healthpb "google.golang.org/grpc/health/grpc_health_v1"
	"google.golang.org/grpc/status"
	"google.golang.org/protobuf/proto"
	"google.golang.org/protobuf/types/known/emptypb"
)

// RegisterGateway maps the page service onto HTTP routes of mux. Handlers
// call srv in-process, so no gRPC connection is needed.
//
//	GET /          HTML document
//	GET /index.html
//	GET /env.js    window.__ENV__ script
//	GET /api/env   {"TEST_ENV_VALUE": "..."}
//	GET /healthz   health status
func RegisterGateway(ctx context.Context, mux *runtime.ServeMux, srv *Server) error {
	page := func(ctx context.Context) (proto.Message, error) { return srv.RenderPage(ctx, &emptypb.Empty{}) }
	routes := []struct {
		path string
		call func(context.Context) (proto.Message, error)
	}{
		{"/", page},
		{"/index.html", page},
		{"/env.js", func(ctx context.Context) (proto.Message, error) { return srv.RenderScript(ctx, &emptypb.Empty{}) }},
		{"/api/env", func(ctx context.Context) (proto.Message, error) { return srv.GetEnv(ctx, &emptypb.Empty{}) }},
		{"/healthz", srv.healthz},
	}
	for _, rt := range routes {
		call := rt.call
		err := mux.HandlePath(http.MethodGet, rt.path, func(w http.ResponseWriter, r *http.Request, _ map[string]string) {
			resp, err := call(r.Context())
			forward(r.Context(), mux, w, r, resp, err)
		})
		if err != nil {
			return fmt.Errorf("failed to register route %s: %w", rt.path, err)
		}
	}
	return nil
}

func (s *Server) healthz(ctx context.Context) (proto.Message, error) {
	resp, err := s.Check(ctx, "")
	if err != nil {
		return nil, err
	}
	if resp.GetStatus() != healthpb.HealthCheckResponse_SERVING {
		return nil, status.Errorf(codes.Unavailable, "status %s", resp.GetStatus())
	}
	return resp, nil
}

// forward writes resp with the marshaler the mux picks for r, or the
// gateway error response when err is set.
func forward(ctx context.Context, mux *runtime.ServeMux, w http.ResponseWriter, r *http.Request, resp proto.Message, err error) {
	_, outbound := runtime.MarshalerForRequest(mux, r)
	if err != nil {
		runtime.HTTPError(ctx, mux, outbound, w, r, err)
		return
	}
	buf, err := outbound.Marshal(resp)
	if err != nil {
		runtime.HTTPError(ctx, mux, outbound, w, r, status.Errorf(codes.Internal, "marshal response: %v", err))
		return
	}
	w.Header().Set("Content-Type", outbound.ContentType(resp))
	w.WriteHeader(http.StatusOK)
	if _, err := w.Write(buf); err != nil {
		slog.Warn("failed to write response", "path", r.URL.Path, "err", err)
	}
}

// ErrorHandler logs gateway errors before delegating to the default handler.
func ErrorHandler(ctx context.Context, mux *runtime.ServeMux, m runtime.Marshaler, w http.ResponseWriter, r *http.Request, err error) {
	st := status.Convert(err)
	attrs := []any{"method", r.Method, "path", r.URL.Path, "code", st.Code().String(), "err", st.Message()}
	if st.Code() == codes.Internal || st.Code() == codes.Unknown {
		slog.Error("gateway request failed", attrs...)
	} else {
		slog.Warn("gateway request failed", attrs...)
	}
	runtime.DefaultHTTPErrorHandler(ctx, mux, m, w, r, err)
}

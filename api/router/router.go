package router

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/grpc-ecosystem/grpc-gateway/v2/runtime"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	bootstrap "github.com/tbeaudouin05/envpage/api/bootstrap"
	grpcserver "github.com/tbeaudouin05/envpage/api/services/page/grpc"
)

// NewRouter returns the central HTTP router using grpc-gateway.
// It serves the page service routes plus /metrics.
func NewRouter() http.Handler {
	// Initialize app dependencies (non-fatal if it fails here; routes then 404).
	if err := bootstrap.Ensure(); err != nil {
		slog.Error("bootstrap ensure failed", "err", err)
	}
	return New(bootstrap.GetPageServer())
}

// New builds the router around an explicit page server.
func New(srv *grpcserver.Server) http.Handler {
	mux := runtime.NewServeMux(runtime.WithErrorHandler(grpcserver.ErrorHandler))
	if srv != nil {
		if err := grpcserver.RegisterGateway(context.Background(), mux, srv); err != nil {
			slog.Error("failed to register grpc-gateway", "err", err)
		}
	}
	metricsHandler := promhttp.Handler()
	if err := mux.HandlePath(http.MethodGet, "/metrics", func(w http.ResponseWriter, r *http.Request, _ map[string]string) {
		metricsHandler.ServeHTTP(w, r)
	}); err != nil {
		slog.Error("failed to register metrics route", "err", err)
	}
	return mux
}

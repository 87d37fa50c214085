package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"
	"github.com/tbeaudouin05/envpage/api/bootstrap"
	"github.com/tbeaudouin05/envpage/api/router"
	grpcserver "github.com/tbeaudouin05/envpage/api/services/page/grpc"
	"golang.org/x/sync/errgroup"
	"google.golang.org/grpc"
)

const shutdownTimeout = 10 * time.Second

func newServeCmd() *cobra.Command {
	var allowMissing bool
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve the page over HTTP and gRPC",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := setup(cmd)
			if err != nil {
				return err
			}
			if err := preflight(allowMissing); err != nil {
				return err
			}

			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()

			httpLis, err := net.Listen("tcp", cfg.HTTPAddr())
			if err != nil {
				return fmt.Errorf("failed to listen on %s: %w", cfg.HTTPAddr(), err)
			}
			grpcLis, err := net.Listen("tcp", cfg.GRPCAddr())
			if err != nil {
				httpLis.Close()
				return fmt.Errorf("failed to listen on %s: %w", cfg.GRPCAddr(), err)
			}
			return serve(ctx, httpLis, grpcLis, bootstrap.GetPageServer())
		},
	}
	cmd.Flags().BoolVar(&allowMissing, "allow-missing", false, "start even if TEST_ENV_VALUE is not set")
	return cmd
}

// preflight fails before listening unless the caller accepts a 503 page.
func preflight(allowMissing bool) error {
	if _, err := bootstrap.GetEnvService().Env(); err != nil {
		if !allowMissing {
			return fmt.Errorf("preflight failed: %w", err)
		}
		slog.Warn("starting without configuration; page requests will fail", "err", err)
	}
	return nil
}

// serve runs the HTTP gateway and the gRPC server until ctx is done or one of
// them fails, then shuts both down.
func serve(ctx context.Context, httpLis, grpcLis net.Listener, srv *grpcserver.Server) error {
	grpcSrv := grpc.NewServer(grpc.UnaryInterceptor(grpcserver.UnaryLogger(slog.Default())))
	grpcserver.Register(grpcSrv, srv)
	httpSrv := &http.Server{
		Handler:           router.New(srv),
		ReadHeaderTimeout: 5 * time.Second,
	}

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		slog.Info("http server listening", "addr", httpLis.Addr().String())
		if err := httpSrv.Serve(httpLis); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("http server: %w", err)
		}
		return nil
	})
	g.Go(func() error {
		slog.Info("grpc server listening", "addr", grpcLis.Addr().String())
		// Serve reports ErrServerStopped when shutdown wins the race with startup.
		if err := grpcSrv.Serve(grpcLis); err != nil && !errors.Is(err, grpc.ErrServerStopped) {
			return fmt.Errorf("grpc server: %w", err)
		}
		return nil
	})
	g.Go(func() error {
		<-gctx.Done()
		slog.Info("shutting down")
		srv.Shutdown()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		stopGRPC(shutdownCtx, grpcSrv)
		return httpSrv.Shutdown(shutdownCtx)
	})
	return g.Wait()
}

// stopGRPC drains in-flight RPCs until ctx expires, then closes them.
func stopGRPC(ctx context.Context, s *grpc.Server) {
	done := make(chan struct{})
	go func() {
		s.GracefulStop()
		close(done)
	}()
	select {
	case <-done:
	case <-ctx.Done():
		slog.Warn("grpc graceful stop timed out, forcing stop")
		s.Stop()
		<-done
	}
}

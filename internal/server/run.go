package server

import (
	"context"
	"errors"
	"net"
	"net/http"
	"time"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
	"google.golang.org/grpc"

	"github.com/fekuna/omnipos-catalog-service/pkg/logger"
)

type Servers struct {
	HTTP         *http.Server
	HTTPListener net.Listener
	GRPC         *grpc.Server
	GRPCListener net.Listener

	ShutdownTimeout time.Duration
	Logger          logger.ZapLogger
}

// Run serves both transports until ctx is done or one of them fails, then drains both.
func Run(ctx context.Context, s Servers) error {
	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		s.Logger.Info("Starting HTTP server", zap.String("addr", s.HTTPListener.Addr().String()))
		if err := s.HTTP.Serve(s.HTTPListener); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	})

	g.Go(func() error {
		s.Logger.Info("Starting gRPC server", zap.String("addr", s.GRPCListener.Addr().String()))
		return s.GRPC.Serve(s.GRPCListener)
	})

	g.Go(func() error {
		<-gctx.Done()
		s.Logger.Info("Shutting down servers...")

		timeout := s.ShutdownTimeout
		if timeout <= 0 {
			timeout = 10 * time.Second
		}
		shutdownCtx, cancel := context.WithTimeout(context.Background(), timeout)
		defer cancel()

		stopped := make(chan struct{})
		go func() {
			s.GRPC.GracefulStop()
			close(stopped)
		}()

		err := s.HTTP.Shutdown(shutdownCtx)
		select {
		case <-stopped:
		case <-shutdownCtx.Done():
			s.GRPC.Stop()
		}
		s.Logger.Info("Servers stopped")
		return err
	})

	return g.Wait()
}

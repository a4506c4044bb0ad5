package cli

import (
	"context"
	"errors"
	"net"
	"net/http"
	"time"

	httpAdapter "github.com/aretw0/live/pkg/adapters/http"
)

// ShutdownTimeout bounds the graceful drain of in-flight requests.
const ShutdownTimeout = 5 * time.Second

// RunServe accepts events over HTTP on ln until ctx is done, then shuts the
// server down gracefully.
func RunServe(ctx context.Context, rt *Runtime, ln net.Listener) error {
	srv := &http.Server{
		Handler:           httpAdapter.NewHandler(rt.Callback, rt.Registry, httpAdapter.WithLogger(rt.Logger)),
		ReadHeaderTimeout: 10 * time.Second,
	}

	serverErrors := make(chan error, 1)
	go func() {
		rt.Logger.Info("serving events", "addr", ln.Addr().String())
		serverErrors <- srv.Serve(ln)
	}()

	select {
	case err := <-serverErrors:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err

	case <-ctx.Done():
		rt.Logger.Info("shutting down server")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), ShutdownTimeout)
		defer cancel()

		if err := srv.Shutdown(shutdownCtx); err != nil {
			rt.Logger.Warn("graceful shutdown did not complete", "timeout", ShutdownTimeout, "err", err)
			if err := srv.Close(); err != nil {
				return err
			}
		}
		<-serverErrors
		return nil
	}
}

package main

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"golang.org/x/sync/errgroup"

	navhttp "sitenav/http"
)

// shutdownTimeout bounds how long in-flight requests may finish after a
// stop signal.
const shutdownTimeout = 5 * time.Second

// Run executes the serve command. It blocks until the context is canceled
// or an interrupt/termination signal arrives, then shuts down gracefully.
func (c *ServeCmd) Run(deps *Dependencies) error {
	ctx, stop := signal.NotifyContext(deps.Ctx, os.Interrupt, syscall.SIGTERM)
	defer stop()

	ln, err := net.Listen("tcp", c.Addr)
	if err != nil {
		fmt.Fprintln(deps.Stderr, "Hint: pass --addr to use a different listen address")
		return fmt.Errorf("failed to listen on %q: %w", c.Addr, err)
	}

	srv := &http.Server{
		Handler:           navhttp.NewServer(deps.Builder, deps.Logger),
		ReadHeaderTimeout: 5 * time.Second,
	}

	fmt.Fprintf(deps.Stdout, "serving navigation for %s on http://%s\n", deps.Content, ln.Addr())

	g, ctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		if err := srv.Serve(ln); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	})
	g.Go(func() error {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		return srv.Shutdown(shutdownCtx)
	})
	return g.Wait()
}

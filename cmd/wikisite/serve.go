package main

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"time"

	"github.com/skarvsladd/wikisite"
	whttp "github.com/skarvsladd/wikisite/http"
	"golang.org/x/sync/errgroup"
)

// ShutdownTimeout bounds how long in-flight requests may run after the
// server is asked to stop.
const ShutdownTimeout = 10 * time.Second

// Run executes the serve command. It blocks until the context is canceled.
func (c *ServeCmd) Run(deps *Dependencies) error {
	addr := c.Addr
	if addr == "" {
		addr = deps.Config.Addr
	}

	var opts []whttp.ServerOption
	if c.Preview {
		p, err := deps.NewPreviewer()
		if err != nil {
			return report(deps.Stderr, err)
		}
		defer p.Close()
		opts = append(opts, whttp.WithPreviewer(p))
	}

	handler, err := whttp.NewServer(deps.Builder, deps.Packager, deps.Logger, opts...)
	if err != nil {
		return report(deps.Stderr, err)
	}

	ln, err := net.Listen("tcp", addr)
	if err != nil {
		return report(deps.Stderr, wikisite.Errorf(wikisite.EINVALID, "could not listen on %s: %v", addr, err))
	}
	fmt.Fprintf(deps.Stdout, "Listening on http://%s\n", ln.Addr())

	return Serve(deps.Ctx, ln, handler)
}

// Serve runs handler on ln until ctx is canceled, then shuts down
// gracefully.
func Serve(ctx context.Context, ln net.Listener, handler http.Handler) error {
	srv := &http.Server{
		Handler:           handler,
		ReadHeaderTimeout: 10 * time.Second,
	}

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		if err := srv.Serve(ln); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	})
	g.Go(func() error {
		<-gctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), ShutdownTimeout)
		defer cancel()
		return srv.Shutdown(shutdownCtx)
	})
	return g.Wait()
}

// Package internal wires the gateway's components and serves the single
// activated connection.
package internal

import (
	"context"
	"fmt"
	"log/slog"
	"os"

	"github.com/vetle/manweb/internal/api"
	"github.com/vetle/manweb/internal/corpus"
	"github.com/vetle/manweb/internal/render"
	"github.com/vetle/manweb/internal/sockact"
	"github.com/vetle/manweb/internal/workers"
)

// Run starts the application with the given options. When the process was not
// handed a connected socket on fd 0 (and no connection was injected), Run
// returns nil without producing any output: that is the "not under socket
// activation" outcome, not a failure.
func Run(ctx context.Context, opts ...Option) error {
	app := &application{}

	for _, opt := range opts {
		opt(app)
	}

	if app.config == nil {
		return fmt.Errorf("config is required")
	}

	cfg := app.config

	// Structured JSON logs on stderr; under classic inetd, stdout is the
	// client connection.
	logger := slog.New(slog.NewJSONHandler(os.Stderr, &slog.HandlerOptions{
		Level: cfg.App.LogLevel,
	}))
	slog.SetDefault(logger)

	conn := app.conn
	if conn == nil {
		c, ok := sockact.Adopt(os.Stdin)
		if !ok {
			return nil
		}
		conn = c
	}

	store, err := corpus.NewFS(cfg.Man.Dir)
	if err != nil {
		return fmt.Errorf("init corpus: %w", err)
	}

	formatter := render.NewMandoc(cfg.Mandoc.Bin, cfg.Page.Stylesheet)
	pool := workers.NewPool(int64(cfg.App.Workers))

	router := api.NewRouter(api.NewHandler(store, formatter, pool))

	logger.Info("serving activated connection",
		slog.String("remote", conn.RemoteAddr().String()),
		slog.String("man_dir", cfg.Man.Dir))

	if err := sockact.ServeConn(ctx, conn, router); err != nil {
		return fmt.Errorf("serve connection: %w", err)
	}

	logger.Info("connection closed, exiting")
	return nil
}

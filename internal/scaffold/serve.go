package scaffold

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"go.followtheprocess.codes/scaffold/internal/config"
	"go.followtheprocess.codes/scaffold/internal/server"
	"go.followtheprocess.codes/scaffold/internal/store"
	"golang.org/x/sync/errgroup"
)

// ServeOptions are the options passed to the serve subcommand.
type ServeOptions struct {
	// Addr overrides the listen address from the config file.
	Addr string

	// Config is the path to an optional scaffold.toml config file.
	Config string

	// Debug enables debug logging.
	Debug bool
}

// Serve implements the serve subcommand, running the HTTP service until ctx
// is cancelled or the process is interrupted.
func (s Scaffold) Serve(ctx context.Context, options ServeOptions) error {
	logger := s.logger.Prefixed("serve")

	cfg, err := config.Load(options.Config)
	if err != nil {
		return err
	}

	if options.Addr != "" {
		cfg.Addr = options.Addr
	}

	logger.Debug("Serve configuration", slog.String("config", fmt.Sprintf("%+v", cfg)))

	ctx, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
	defer stop()

	srv := server.New(cfg, store.NewMemory(), s.generator, logger)
	httpServer := srv.HTTPServer()

	group, ctx := errgroup.WithContext(ctx)

	group.Go(func() error {
		logger.Info("Listening", slog.String("addr", cfg.Addr), slog.String("version", s.version))

		if err := httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("could not serve: %w", err)
		}

		return nil
	})

	group.Go(func() error {
		<-ctx.Done()

		logger.Info("Shutting down", slog.Duration("timeout", cfg.ShutdownTimeout.Duration))

		shutdownCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), cfg.ShutdownTimeout.Duration)
		defer cancel()

		return httpServer.Shutdown(shutdownCtx)
	})

	return group.Wait()
}

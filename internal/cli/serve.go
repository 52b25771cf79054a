package cli

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/roach88/athena/internal/server"
	"github.com/roach88/athena/internal/store"
)

// ServeOptions holds flags for the serve command.
type ServeOptions struct {
	*RootOptions
	Addr     string
	Database string
	Catalog  string
}

// NewServeCommand creates the serve command.
func NewServeCommand(rootOpts *RootOptions) *cobra.Command {
	opts := &ServeOptions{RootOptions: rootOpts}

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Start the HTTP explorer",
		Long: `Start the HTTP adapter: the JSON API plus the embedded explorer page.

Configuration is read from the environment (ATHENA_ADDR, ATHENA_DB,
ATHENA_LOG_LEVEL, ATHENA_CACHE_SIZE), with a .env file applied first
when present. Flags override the environment.

Example:
  athena serve
  athena serve --addr :9000 --db ./practice.db --verbose`,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runServe(opts, cmd)
		},
	}

	cmd.Flags().StringVar(&opts.Addr, "addr", "", "listen address (overrides ATHENA_ADDR)")
	cmd.Flags().StringVar(&opts.Database, "db", "", "path to the SQLite practice log (overrides ATHENA_DB)")
	cmd.Flags().StringVar(&opts.Catalog, "catalog", "", "directory of CUE system files (default: embedded catalog)")

	return cmd
}

func runServe(opts *ServeOptions, cmd *cobra.Command) error {
	cfg, err := server.Load()
	if err != nil {
		return WrapExitError(ExitCommandError, "load config", err)
	}
	if cmd.Flags().Changed("addr") {
		cfg.Addr = opts.Addr
	}
	if cmd.Flags().Changed("db") {
		cfg.Database = opts.Database
	}

	logLevel := cfg.Level()
	if opts.Verbose {
		logLevel = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: logLevel,
	}))
	slog.SetDefault(logger)

	reg, err := loadCatalog(opts.Catalog)
	if err != nil {
		return err
	}
	logger.Info("catalog loaded", "systems", reg.Len(), "hash", reg.Hash())

	st, err := store.Open(cfg.Database)
	if err != nil {
		return WrapExitError(ExitCommandError, "open practice log", err)
	}
	defer func() {
		if closeErr := st.Close(); closeErr != nil {
			logger.Error("error closing practice log", "error", closeErr)
		}
	}()

	srv, err := server.New(reg, st, logger, cfg.CacheSize)
	if err != nil {
		return WrapExitError(ExitCommandError, "build server", err)
	}

	// SIGINT and SIGTERM both trigger a graceful shutdown.
	parentCtx := cmd.Context()
	if parentCtx == nil {
		parentCtx = context.Background()
	}
	ctx, cancel := context.WithCancel(parentCtx)
	defer cancel()

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)
	defer signal.Stop(sigChan)

	go func() {
		select {
		case sig := <-sigChan:
			logger.Info("received signal, shutting down", "signal", sig)
			cancel()
		case <-ctx.Done():
		}
	}()

	fmt.Fprintf(cmd.OutOrStdout(), "Serving on %s\n", cfg.Addr)
	fmt.Fprintln(cmd.OutOrStdout(), "Press Ctrl-C to stop.")

	if err := srv.Run(ctx, cfg.Addr); err != nil && err != context.Canceled {
		return WrapExitError(ExitFailure, "server error", err)
	}

	logger.Info("server stopped")
	return nil
}

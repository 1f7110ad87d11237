// Command citymapd serves a registry of city graphs over HTTP.
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/katalvlaran/citymap/api"
	"github.com/katalvlaran/citymap/registry"
)

var version = "--- set from makefile ---"

// config holds the command-line configuration.
type config struct {
	addr            string
	logLevel        string
	seed            bool
	shutdownTimeout time.Duration
	showVersion     bool
}

func parseFlags(fs *flag.FlagSet, args []string) (config, error) {
	var cfg config
	fs.StringVar(&cfg.addr, "addr", ":8000", "HTTP network address")
	fs.StringVar(&cfg.logLevel, "log-level", "info", "log level: debug, info, warn, error")
	fs.BoolVar(&cfg.seed, "seed", false, `create a "demo" graph with sample cities`)
	fs.DurationVar(&cfg.shutdownTimeout, "shutdown-timeout", 30*time.Second, "graceful shutdown timeout")
	fs.BoolVar(&cfg.showVersion, "version", false, "show command version")

	if err := fs.Parse(args); err != nil {
		return cfg, err
	}

	return cfg, nil
}

// parseLevel maps a -log-level value to a slog.Level.
func parseLevel(s string) (slog.Level, error) {
	var lvl slog.Level
	if err := lvl.UnmarshalText([]byte(s)); err != nil {
		return slog.LevelInfo, fmt.Errorf("invalid log level %q: %w", s, err)
	}

	return lvl, nil
}

func main() {
	cfg, err := parseFlags(flag.CommandLine, os.Args[1:])
	if err != nil {
		os.Exit(2)
	}
	if cfg.showVersion {
		fmt.Println(version)
		return
	}

	lvl, err := parseLevel(cfg.logLevel)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(2)
	}
	logger := slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: lvl}))

	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	if err := run(ctx, cfg, logger); err != nil {
		logger.Error("application error", "error", err)
		os.Exit(1)
	}
}

func run(ctx context.Context, cfg config, logger *slog.Logger) error {
	// ----------------------------------------------------------------------------
	// Initialization

	reg := registry.New()
	if cfg.seed {
		if err := seedDemo(reg); err != nil {
			return fmt.Errorf("seed demo graph: %w", err)
		}
		logger.Info("seeded demo graph", "graph", demoGraphName)
	}

	// ----------------------------------------------------------------------------
	// Server Setup

	server := &http.Server{
		Addr:              cfg.addr,
		Handler:           api.NewServer(reg, logger).Routes(),
		ReadHeaderTimeout: 10 * time.Second,
	}

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		logger.Info("starting http server", "addr", cfg.addr, "version", version)
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("server error: %w", err)
		}
		return nil
	})

	// ----------------------------------------------------------------------------
	// Shutdown

	g.Go(func() error {
		<-gctx.Done()
		logger.Info("shutting down application")

		shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.shutdownTimeout)
		defer cancel()
		if err := server.Shutdown(shutdownCtx); err != nil {
			server.Close()
			return fmt.Errorf("could not stop server gracefully: %w", err)
		}
		return nil
	})

	if err := g.Wait(); err != nil {
		return err
	}

	if reg.Modified() {
		logger.Warn("exiting with unsaved changes", "graphs", reg.Len())
	}

	return nil
}

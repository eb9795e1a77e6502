package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/ddanilov/sitesync/internal/client/appstate"
	"github.com/ddanilov/sitesync/internal/client/cli"
	"github.com/ddanilov/sitesync/internal/client/config"
	"github.com/ddanilov/sitesync/internal/client/iocli"
	"github.com/ddanilov/sitesync/internal/client/netmon"
	"github.com/ddanilov/sitesync/internal/client/orchestrator"
	"github.com/ddanilov/sitesync/internal/client/storage"
	"github.com/ddanilov/sitesync/internal/client/storage/boltdb"
	"github.com/ddanilov/sitesync/internal/client/storage/sqlite"
	"github.com/ddanilov/sitesync/internal/client/transport"
)

// Version information set via ldflags during build
var (
	Version   = "dev"
	BuildDate = "unknown"
	GitCommit = "unknown"
)

// logStore объединяет три грани журнала, которые реализует каждый бэкенд
type logStore interface {
	storage.QueueStorage
	storage.ConflictStorage
	storage.MetaStorage
	Close() error
}

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	configPath := os.Getenv("SITESYNC_CONFIG")
	if configPath == "" {
		configPath = "sitesync.toml"
	}

	cfg, err := config.Load(configPath)
	if err != nil {
		return err
	}

	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: parseLevel(cfg.LogLevel),
	}))

	if err := os.MkdirAll(cfg.DataDir, 0o700); err != nil {
		return fmt.Errorf("failed to create data dir: %w", err)
	}

	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	store, err := openStore(ctx, cfg)
	if err != nil {
		return fmt.Errorf("failed to open durable log: %w", err)
	}
	defer func() {
		if err := store.Close(); err != nil {
			logger.Error("failed to close durable log", "error", err)
		}
	}()

	state := appstate.New(store, store, store, logger)
	state.Init(ctx)

	transportClient := transport.New(cfg.ServerURL, store, logger)
	orch := orchestrator.New(state, store, transportClient, logger)

	monitor := netmon.New(
		state,
		netmon.NewHTTPProbe(cfg.ServerURL, cfg.SampleInterval()),
		netmon.NewDirQuotaSampler(cfg.DataDir, cfg.StorageBudget()),
		cfg.SampleInterval(),
		logger,
	)
	monitor.SetDrainer(orch)

	c := cli.New(iocli.NewStdio(), state, transportClient, orch)
	c.SetMonitor(monitor)

	root := c.RootCommand()
	root.Version = fmt.Sprintf("%s (built %s, commit %s)", Version, BuildDate, GitCommit)
	return root.ExecuteContext(ctx)
}

func openStore(ctx context.Context, cfg config.Config) (logStore, error) {
	switch cfg.Backend {
	case config.BackendSQLite:
		return sqlite.New(ctx, cfg.DatabasePath())
	default:
		return boltdb.New(ctx, cfg.DatabasePath())
	}
}

func parseLevel(level string) slog.Level {
	switch strings.ToLower(level) {
	case "debug":
		return slog.LevelDebug
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

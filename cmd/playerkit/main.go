// Package main implements the PlayerKit demo binary. It loads a declarative
// player configuration, constructs the component tree, prints it, and can
// stay resident serving Prometheus metrics for the running tree.
package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"runtime"
	"syscall"

	"github.com/c360/playerkit/component"
	"github.com/c360/playerkit/config"
	"github.com/c360/playerkit/metric"
	"github.com/c360/playerkit/player"
)

// Build information constants
const (
	Version   = "0.1.0"
	BuildTime = "dev"
	appName   = "playerkit"
)

func main() {
	defer func() {
		if r := recover(); r != nil {
			buf := make([]byte, 4096)
			n := runtime.Stack(buf, false)
			_, _ = fmt.Fprintf(os.Stderr, "PANIC: %v\nStack trace:\n%s\n", r, string(buf[:n]))
			os.Exit(2)
		}
	}()

	if err := run(); err != nil {
		slog.Error("Application failed", "error", err, "exit_code", 1)
		os.Exit(1)
	}
}

func run() error {
	cliCfg := parseFlags()
	if err := validateFlags(cliCfg); err != nil {
		return fmt.Errorf("invalid flags: %w", err)
	}

	if cliCfg.ShowVersion {
		fmt.Printf("%s version %s\n", appName, Version)
		return nil
	}
	if cliCfg.ShowHelp {
		printDetailedHelp()
		return nil
	}

	logger := setupLogger(cliCfg.LogLevel, cliCfg.LogFormat)
	slog.SetDefault(logger)

	cfg, err := loadConfig(cliCfg.ConfigPath)
	if err != nil {
		return err
	}

	if cliCfg.Validate {
		slog.Info("Configuration is valid")
		return nil
	}

	deps, metricsServer := setupDependencies(cfg, logger)

	p, err := player.New(cfg, deps)
	if err != nil {
		return fmt.Errorf("construct player: %w", err)
	}

	fmt.Print(player.DumpTree(p.Component))

	if cliCfg.Serve || metricsServer != nil {
		if err := runUntilSignal(metricsServer); err != nil {
			_ = p.Dispose()
			return err
		}
	}

	if err := p.Dispose(); err != nil {
		return fmt.Errorf("dispose player: %w", err)
	}
	if metricsServer != nil {
		_ = metricsServer.Stop()
	}

	slog.Info("PlayerKit shutdown complete")
	return nil
}

// loadConfig loads the configuration file, or defaults when no path is given.
func loadConfig(path string) (*config.Config, error) {
	if path == "" {
		slog.Info("No config file given, running with defaults")
		return config.DefaultConfig(), nil
	}

	cfg, err := config.LoadFile(path)
	if err != nil {
		return nil, fmt.Errorf("load config: %w", err)
	}
	slog.Info("Configuration loaded", "path", path, "version", cfg.Version)
	return cfg, nil
}

// setupDependencies builds the component dependency set: registry with the
// standard types, logger, and, when enabled, an instrumented metrics registry
// with its HTTP server already started.
func setupDependencies(cfg *config.Config, logger *slog.Logger) (component.Dependencies, *metric.Server) {
	registry := component.NewRegistry()
	if err := player.RegisterBuiltins(registry); err != nil {
		slog.Warn("Builtin registration failed", "error", err)
	}

	deps := component.Dependencies{
		Logger:   logger,
		Registry: registry,
	}

	if !cfg.Metrics.Enabled {
		return deps, nil
	}

	metricsRegistry := metric.NewMetricsRegistry()
	deps.Metrics = metricsRegistry.CoreMetrics()
	registry.SetMetrics(metricsRegistry.CoreMetrics())

	server := metric.NewServer(cfg.Metrics.Port, cfg.Metrics.Path, metricsRegistry)
	go func() {
		if err := server.Start(); err != nil {
			slog.Error("Metrics server failed", "error", err)
		}
	}()
	slog.Info("Metrics server started", "address", server.Address())

	return deps, server
}

// runUntilSignal blocks until SIGINT or SIGTERM.
func runUntilSignal(metricsServer *metric.Server) error {
	signalCtx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	addr := ""
	if metricsServer != nil {
		addr = metricsServer.Address()
	}
	slog.Info("PlayerKit running, press Ctrl+C to stop", "metrics", addr)

	<-signalCtx.Done()
	slog.Info("Received shutdown signal")
	return nil
}

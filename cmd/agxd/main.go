// agxd is the agx daemon: it polls the task service queue, runs the
// execute/verify engine against claimed tasks, drives execution graphs,
// and serves the local HTTP API.
package main

import (
	"context"
	"flag"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"path/filepath"
	"strconv"
	"syscall"
	"time"

	"github.com/joho/godotenv"

	"github.com/agx-dev/agx/pkg/api"
	"github.com/agx-dev/agx/pkg/cleanup"
	"github.com/agx-dev/agx/pkg/config"
	"github.com/agx-dev/agx/pkg/database"
	"github.com/agx-dev/agx/pkg/engine"
	"github.com/agx-dev/agx/pkg/graph"
	"github.com/agx-dev/agx/pkg/provider"
	"github.com/agx-dev/agx/pkg/queue"
	"github.com/agx-dev/agx/pkg/store"
	"github.com/agx-dev/agx/pkg/taskservice"
	"github.com/agx-dev/agx/pkg/version"
)

// resolveDaemonID determines the daemon identifier used in worker names
// and task claims. Priority: AGX_DAEMON_ID env > HOSTNAME env > "local"
func resolveDaemonID() string {
	if id := os.Getenv("AGX_DAEMON_ID"); id != "" {
		return id
	}
	if hostname := os.Getenv("HOSTNAME"); hostname != "" {
		return hostname
	}
	return "local"
}

func main() {
	envPath := flag.String("env-file", ".env", "Path to optional .env file")
	flag.Parse()

	// Load .env before reading any configuration.
	if err := godotenv.Load(*envPath); err != nil {
		slog.Debug("No .env file loaded, using existing environment",
			"path", *envPath, "error", err)
	} else {
		slog.Info("Loaded environment", "path", *envPath)
	}

	cfg := config.Load()
	daemonID := resolveDaemonID()

	slog.Info("Starting agxd",
		"version", version.Full(),
		"daemon_id", daemonID,
		"cloud_url", cfg.CloudURL,
		"home", cfg.Home,
		"workers", cfg.Daemon.MaxWorkers)

	ctx := context.Background()

	// 1. Daemon state directory and pid file
	if err := os.MkdirAll(cfg.Home, 0o755); err != nil {
		slog.Error("Failed to create state directory", "dir", cfg.Home, "error", err)
		os.Exit(1)
	}
	pidPath := filepath.Join(cfg.Home, "agxd.pid")
	if err := os.WriteFile(pidPath, []byte(strconv.Itoa(os.Getpid())), 0o644); err != nil {
		slog.Error("Failed to write pid file", "path", pidPath, "error", err)
		os.Exit(1)
	}
	defer os.Remove(pidPath)

	// 2. Artifact store, provider process infrastructure, task service client
	st := store.New(filepath.Join(cfg.Home, "projects"))
	manager := provider.NewManager(filepath.Join(cfg.Home, "procs"))
	runner := provider.NewRunner(manager)
	tasks := taskservice.NewClient(cfg.CloudURL, cfg.UserID)

	// 3. Engine and worker pool
	eng := engine.New(st, runner, tasks, cfg.Engine)
	executor := queue.NewEngineExecutor(st, eng, tasks, cfg)
	workerPool := queue.NewWorkerPool(daemonID, tasks, cfg.Daemon, executor, manager)
	if err := workerPool.Start(ctx); err != nil {
		slog.Error("Failed to start worker pool", "error", err)
		os.Exit(1)
	}

	// 4. Graph runtime: Postgres-backed when the database is configured,
	// in-memory otherwise.
	var (
		dbClient   *database.Client
		graphStore graph.Store
		tickQueue  graph.TickQueue
	)
	if database.Enabled() {
		dbConfig, err := database.LoadConfigFromEnv()
		if err != nil {
			slog.Error("Failed to load database config", "error", err)
			os.Exit(1)
		}
		dbClient, err = database.NewClient(ctx, dbConfig)
		if err != nil {
			slog.Error("Failed to connect to database", "error", err)
			os.Exit(1)
		}
		defer func() {
			if err := dbClient.Close(); err != nil {
				slog.Error("Error closing database client", "error", err)
			}
		}()
		graphStore = graph.NewEntStore(dbClient)
		tickQueue = graph.NewEntQueue(dbClient)
		slog.Info("Graph runtime using PostgreSQL store")
	} else {
		graphStore = graph.NewMemStore()
		tickQueue = graph.NewMemQueue()
		slog.Warn("Database disabled, graph state will not survive restarts")
	}

	runtime := graph.NewRuntime(graphStore, tickQueue, graph.NewDefaultScheduler(), graph.RuntimeOptions{})
	if err := runtime.Start(ctx); err != nil {
		slog.Error("Failed to start graph runtime", "error", err)
		os.Exit(1)
	}

	// 5. Retention sweeper for local run artifacts
	cleanupService := cleanup.NewService(&cfg.Retention, st)
	cleanupService.Start(ctx)

	// 6. HTTP API (non-blocking)
	httpServer := api.NewServer(workerPool, graphStore, runtime, dbClient)
	errCh := make(chan error, 1)
	go func() {
		slog.Info("HTTP API listening", "addr", cfg.APIAddr)
		if err := httpServer.Start(cfg.APIAddr); err != nil && err != http.ErrServerClosed {
			slog.Error("HTTP server error", "error", err)
			errCh <- err
		}
	}()

	slog.Info("agxd started successfully", "daemon_id", daemonID)

	// 7. Wait for shutdown signal or server error
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGTERM, syscall.SIGINT)

	select {
	case sig := <-sigCh:
		slog.Info("Shutdown signal received", "signal", sig)
	case err := <-errCh:
		slog.Error("Server error triggered shutdown", "error", err)
	}

	// 8. Graceful shutdown: stop claiming and drain in-flight executions,
	// then halt tick processing and the background services.
	shutdownCtx, cancel := context.WithTimeout(ctx, cfg.Daemon.GracefulShutdownTimeout)
	defer cancel()

	done := make(chan struct{})
	go func() {
		workerPool.Stop()
		close(done)
	}()
	select {
	case <-done:
		slog.Info("Worker pool stopped gracefully")
	case <-shutdownCtx.Done():
		slog.Warn("Shutdown timeout exceeded, incomplete runs will be recovered on restart")
	}

	runtime.Stop()
	cleanupService.Stop()

	httpShutdownCtx, httpCancel := context.WithTimeout(ctx, 5*time.Second)
	defer httpCancel()
	if err := httpServer.Shutdown(httpShutdownCtx); err != nil {
		slog.Error("HTTP server shutdown error", "error", err)
	}

	slog.Info("Shutdown complete")
}

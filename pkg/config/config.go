// Package config loads daemon configuration from environment variables.
// Environment variables are authoritative; command-line flags in cmd/agxd
// override individual values after loading.
package config

import (
	"os"
	"path/filepath"
	"strconv"
	"time"
)

// Environment variable names recognized by the daemon.
const (
	EnvCloudURL            = "AGX_CLOUD_URL"
	EnvUserID              = "AGX_USER_ID"
	EnvDaemonMaxConcurrent = "AGX_DAEMON_MAX_CONCURRENT"
	EnvDaemonPollMs        = "AGX_DAEMON_POLL_MS"
	EnvSwarmTimeoutMs      = "AGX_SWARM_TIMEOUT_MS"
	EnvVerifyTimeoutMs     = "AGX_VERIFY_TIMEOUT_MS"
	EnvSwarmRetries        = "AGX_SWARM_RETRIES"
	EnvSwarmMaxIters       = "AGX_SWARM_MAX_ITERS"
	EnvSingleMaxIters      = "AGX_SINGLE_MAX_ITERS"
	EnvVerifyPromptMax     = "AGX_VERIFY_PROMPT_MAX_CHARS"
	EnvArtifactShaMax      = "AGX_LOCAL_ARTIFACT_SHA_MAX_BYTES"
	EnvHome                = "AGX_HOME"
	EnvAPIAddr             = "AGX_API_ADDR"
	EnvRunRetentionDays    = "AGX_RUN_RETENTION_DAYS"
	EnvMaxRunsPerTask      = "AGX_MAX_RUNS_PER_TASK"
)

// Config holds the full daemon configuration.
type Config struct {
	// CloudURL is the task service base URL.
	CloudURL string

	// UserID is sent as the x-user-id header on every task service request.
	UserID string

	// Home is the daemon state directory (pid files, heartbeats, caches, logs).
	// Defaults to ~/.agx.
	Home string

	// APIAddr is the local HTTP API listen address.
	APIAddr string

	Daemon    DaemonConfig
	Engine    EngineConfig
	Retention RetentionConfig
}

// RetentionConfig controls the run artifact retention sweeper.
type RetentionConfig struct {
	// RunRetentionDays is how long finalized run containers are kept.
	// Zero disables age-based deletion.
	RunRetentionDays int

	// MaxRunsPerTask caps retained run containers per task; the oldest
	// are deleted first. Zero disables the cap.
	MaxRunsPerTask int

	// CleanupInterval is the sweep period.
	CleanupInterval time.Duration
}

// DaemonConfig controls the worker pool.
type DaemonConfig struct {
	// MaxWorkers is the number of concurrent claim/execute workers. Min 1.
	MaxWorkers int

	// PollInterval is the sleep between empty queue polls. Min 200ms.
	PollInterval time.Duration

	// OrphanSweepInterval is how often heartbeat files of spawned provider
	// children are checked for dead pids.
	OrphanSweepInterval time.Duration

	// GracefulShutdownTimeout bounds the wait for in-flight executions
	// during shutdown.
	GracefulShutdownTimeout time.Duration
}

// EngineConfig controls the per-task iteration engine.
type EngineConfig struct {
	// ProviderTimeout bounds a single provider (execute-phase) invocation.
	ProviderTimeout time.Duration

	// VerifyTimeout bounds a single verifier invocation.
	VerifyTimeout time.Duration

	// ProviderRetries is the per-invocation retry count for execute spawns.
	ProviderRetries int

	// SwarmMaxIters caps execute/verify iterations for swarm tasks.
	SwarmMaxIters int

	// SingleMaxIters caps execute/verify iterations for single-agent tasks.
	SingleMaxIters int

	// VerifyPromptMaxChars truncates the assembled verifier prompt.
	VerifyPromptMaxChars int

	// ArtifactShaMaxBytes is the ceiling above which run-index manifest
	// entries omit the sha256 digest.
	ArtifactShaMaxBytes int64
}

// Load reads configuration from the environment, applying defaults and
// clamping out-of-range values.
func Load() *Config {
	cfg := &Config{
		CloudURL: getEnvOrDefault(EnvCloudURL, "http://localhost:41741"),
		UserID:   os.Getenv(EnvUserID),
		Home:     resolveHome(),
		APIAddr:  getEnvOrDefault(EnvAPIAddr, "127.0.0.1:41742"),
		Daemon: DaemonConfig{
			MaxWorkers:              getEnvInt(EnvDaemonMaxConcurrent, 1),
			PollInterval:            getEnvMillis(EnvDaemonPollMs, 1500),
			OrphanSweepInterval:     60 * time.Second,
			GracefulShutdownTimeout: 15 * time.Minute,
		},
		Engine: EngineConfig{
			ProviderTimeout:      getEnvMillis(EnvSwarmTimeoutMs, 600_000),
			VerifyTimeout:        getEnvMillis(EnvVerifyTimeoutMs, 300_000),
			ProviderRetries:      getEnvInt(EnvSwarmRetries, 1),
			SwarmMaxIters:        getEnvInt(EnvSwarmMaxIters, 2),
			SingleMaxIters:       getEnvInt(EnvSingleMaxIters, 6),
			VerifyPromptMaxChars: getEnvInt(EnvVerifyPromptMax, 6000),
			ArtifactShaMaxBytes:  getEnvInt64(EnvArtifactShaMax, 5*1024*1024),
		},
		Retention: RetentionConfig{
			RunRetentionDays: getEnvInt(EnvRunRetentionDays, 14),
			MaxRunsPerTask:   getEnvInt(EnvMaxRunsPerTask, 50),
			CleanupInterval:  time.Hour,
		},
	}
	cfg.clamp()
	return cfg
}

// clamp enforces minimum bounds on values that would break the daemon.
func (c *Config) clamp() {
	if c.Daemon.MaxWorkers < 1 {
		c.Daemon.MaxWorkers = 1
	}
	if c.Daemon.PollInterval < 200*time.Millisecond {
		c.Daemon.PollInterval = 200 * time.Millisecond
	}
	if c.Engine.ProviderRetries < 0 {
		c.Engine.ProviderRetries = 0
	}
	if c.Engine.SwarmMaxIters < 1 {
		c.Engine.SwarmMaxIters = 1
	}
	if c.Engine.SingleMaxIters < 1 {
		c.Engine.SingleMaxIters = 1
	}
	if c.Engine.VerifyPromptMaxChars < 1 {
		c.Engine.VerifyPromptMaxChars = 6000
	}
	if c.Engine.ArtifactShaMaxBytes < 0 {
		c.Engine.ArtifactShaMaxBytes = 0
	}
	if c.Retention.RunRetentionDays < 0 {
		c.Retention.RunRetentionDays = 0
	}
	if c.Retention.MaxRunsPerTask < 0 {
		c.Retention.MaxRunsPerTask = 0
	}
	if c.Retention.CleanupInterval < time.Minute {
		c.Retention.CleanupInterval = time.Minute
	}
}

// MaxItersFor returns the iteration cap for a task shape.
func (c *EngineConfig) MaxItersFor(swarm bool) int {
	if swarm {
		return c.SwarmMaxIters
	}
	return c.SingleMaxIters
}

// resolveHome returns the daemon state directory.
// Priority: AGX_HOME env > ~/.agx > ./.agx when the home dir is unknown.
func resolveHome() string {
	if h := os.Getenv(EnvHome); h != "" {
		return h
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return ".agx"
	}
	return filepath.Join(home, ".agx")
}

func getEnvOrDefault(key, defaultVal string) string {
	if val := os.Getenv(key); val != "" {
		return val
	}
	return defaultVal
}

func getEnvInt(key string, defaultVal int) int {
	val := os.Getenv(key)
	if val == "" {
		return defaultVal
	}
	n, err := strconv.Atoi(val)
	if err != nil {
		return defaultVal
	}
	return n
}

func getEnvInt64(key string, defaultVal int64) int64 {
	val := os.Getenv(key)
	if val == "" {
		return defaultVal
	}
	n, err := strconv.ParseInt(val, 10, 64)
	if err != nil {
		return defaultVal
	}
	return n
}

func getEnvMillis(key string, defaultVal int64) time.Duration {
	return time.Duration(getEnvInt64(key, defaultVal)) * time.Millisecond
}

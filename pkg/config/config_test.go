package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestLoadDefaults(t *testing.T) {
	// Ensure a clean environment for the variables under test.
	for _, key := range []string{
		EnvCloudURL, EnvUserID, EnvDaemonMaxConcurrent, EnvDaemonPollMs,
		EnvSwarmTimeoutMs, EnvVerifyTimeoutMs, EnvSwarmRetries,
		EnvSwarmMaxIters, EnvSingleMaxIters, EnvVerifyPromptMax, EnvArtifactShaMax,
	} {
		t.Setenv(key, "")
	}

	cfg := Load()

	assert.Equal(t, "http://localhost:41741", cfg.CloudURL)
	assert.Empty(t, cfg.UserID)
	assert.Equal(t, 1, cfg.Daemon.MaxWorkers)
	assert.Equal(t, 1500*time.Millisecond, cfg.Daemon.PollInterval)
	assert.Equal(t, 10*time.Minute, cfg.Engine.ProviderTimeout)
	assert.Equal(t, 5*time.Minute, cfg.Engine.VerifyTimeout)
	assert.Equal(t, 1, cfg.Engine.ProviderRetries)
	assert.Equal(t, 2, cfg.Engine.SwarmMaxIters)
	assert.Equal(t, 6, cfg.Engine.SingleMaxIters)
	assert.Equal(t, 6000, cfg.Engine.VerifyPromptMaxChars)
	assert.Equal(t, int64(5*1024*1024), cfg.Engine.ArtifactShaMaxBytes)
}

func TestLoadFromEnvironment(t *testing.T) {
	t.Setenv(EnvCloudURL, "http://board.example:9000")
	t.Setenv(EnvUserID, "user-42")
	t.Setenv(EnvDaemonMaxConcurrent, "4")
	t.Setenv(EnvDaemonPollMs, "2500")
	t.Setenv(EnvSwarmMaxIters, "3")

	cfg := Load()

	assert.Equal(t, "http://board.example:9000", cfg.CloudURL)
	assert.Equal(t, "user-42", cfg.UserID)
	assert.Equal(t, 4, cfg.Daemon.MaxWorkers)
	assert.Equal(t, 2500*time.Millisecond, cfg.Daemon.PollInterval)
	assert.Equal(t, 3, cfg.Engine.SwarmMaxIters)
}

func TestLoadClampsOutOfRangeValues(t *testing.T) {
	t.Setenv(EnvDaemonMaxConcurrent, "0")
	t.Setenv(EnvDaemonPollMs, "50")
	t.Setenv(EnvSwarmRetries, "-2")
	t.Setenv(EnvSingleMaxIters, "-1")

	cfg := Load()

	assert.Equal(t, 1, cfg.Daemon.MaxWorkers)
	assert.Equal(t, 200*time.Millisecond, cfg.Daemon.PollInterval)
	assert.Equal(t, 0, cfg.Engine.ProviderRetries)
	assert.Equal(t, 1, cfg.Engine.SingleMaxIters)
}

func TestLoadIgnoresMalformedNumbers(t *testing.T) {
	t.Setenv(EnvDaemonMaxConcurrent, "many")
	t.Setenv(EnvDaemonPollMs, "1.5s")

	cfg := Load()

	assert.Equal(t, 1, cfg.Daemon.MaxWorkers)
	assert.Equal(t, 1500*time.Millisecond, cfg.Daemon.PollInterval)
}

func TestLoadRetentionDefaults(t *testing.T) {
	t.Setenv(EnvRunRetentionDays, "")
	t.Setenv(EnvMaxRunsPerTask, "")

	cfg := Load()

	assert.Equal(t, "127.0.0.1:41742", cfg.APIAddr)
	assert.Equal(t, 14, cfg.Retention.RunRetentionDays)
	assert.Equal(t, 50, cfg.Retention.MaxRunsPerTask)
	assert.Equal(t, time.Hour, cfg.Retention.CleanupInterval)
}

func TestLoadRetentionClamps(t *testing.T) {
	t.Setenv(EnvRunRetentionDays, "-1")
	t.Setenv(EnvMaxRunsPerTask, "-5")

	cfg := Load()

	assert.Zero(t, cfg.Retention.RunRetentionDays, "negative disables age-based deletion")
	assert.Zero(t, cfg.Retention.MaxRunsPerTask, "negative disables the cap")
}

func TestMaxItersFor(t *testing.T) {
	engine := EngineConfig{SwarmMaxIters: 2, SingleMaxIters: 6}
	assert.Equal(t, 2, engine.MaxItersFor(true))
	assert.Equal(t, 6, engine.MaxItersFor(false))
}

func TestResolveHomeOverride(t *testing.T) {
	t.Setenv(EnvHome, "/tmp/agx-test-home")
	cfg := Load()
	assert.Equal(t, "/tmp/agx-test-home", cfg.Home)
}

package database

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/agx-dev/agx/ent/executiongraph"
	"github.com/agx-dev/agx/test/util"
)

func newTestClient(t *testing.T) *Client {
	t.Helper()
	if testing.Short() {
		t.Skip("skipping database integration test in short mode")
	}
	entClient, db := util.SetupTestDatabase(t)
	return NewClientFromEnt(entClient, db)
}

func TestClientGraphRow(t *testing.T) {
	client := newTestClient(t)
	ctx := context.Background()

	created, err := client.ExecutionGraph.Create().
		SetID("g1").
		SetTaskID("t1").
		SetDoc(map[string]interface{}{"nodes": map[string]interface{}{}}).
		Save(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(1), created.GraphVersion, "schema default version")
	assert.Equal(t, executiongraph.StatusInProgress, created.Status)
	assert.True(t, created.InProgress)

	got, err := client.ExecutionGraph.Get(ctx, "g1")
	require.NoError(t, err)
	assert.Equal(t, "t1", got.TaskID)
	assert.WithinDuration(t, time.Now(), got.CreatedAt, time.Minute)
}

func TestClientHealth(t *testing.T) {
	client := newTestClient(t)

	status, err := Health(context.Background(), client.DB())
	require.NoError(t, err)
	assert.Equal(t, "healthy", status.Status)
	assert.GreaterOrEqual(t, status.OpenConnections, 1)
}

func TestLoadConfigFromEnv(t *testing.T) {
	t.Setenv(EnvDBHost, "db.internal")
	t.Setenv(EnvDBPort, "15432")
	t.Setenv(EnvDBUser, "svc")
	t.Setenv(EnvDBName, "graphs")

	cfg, err := LoadConfigFromEnv()
	require.NoError(t, err)
	assert.Equal(t, "db.internal", cfg.Host)
	assert.Equal(t, 15432, cfg.Port)
	assert.Equal(t, "svc", cfg.User)
	assert.Equal(t, "graphs", cfg.Database)
	assert.Equal(t, "disable", cfg.SSLMode)

	t.Setenv(EnvDBPort, "not-a-port")
	_, err = LoadConfigFromEnv()
	assert.Error(t, err)
}

func TestEnabled(t *testing.T) {
	t.Setenv(EnvDBEnabled, "")
	assert.False(t, Enabled())
	t.Setenv(EnvDBEnabled, "true")
	assert.True(t, Enabled())
	t.Setenv(EnvDBEnabled, "1")
	assert.True(t, Enabled())
	t.Setenv(EnvDBEnabled, "0")
	assert.False(t, Enabled())
}

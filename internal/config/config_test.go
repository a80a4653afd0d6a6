package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseServerConfigAppliesDefaults(t *testing.T) {
	cfg, err := ParseServerConfig([]byte(`worker_capacity: 8`))
	require.NoError(t, err)
	assert.Equal(t, int64(8), cfg.WorkerCapacity)
	assert.Equal(t, DefaultListenAddr, cfg.ListenAddr)
	assert.Equal(t, DefaultTaskTimeout, cfg.TaskTimeout)
	assert.Equal(t, DefaultTasksDir, cfg.TasksDir)
}

func TestParseServerConfigOverridesEverything(t *testing.T) {
	cfg, err := ParseServerConfig([]byte(`
listen_addr: ":9090"
worker_capacity: 4
task_timeout: 2s
tasks_dir: /tmp/vta-tasks
compiler_path: clang++
template_depth: 10000
token_store_path: /tmp/tokens.db
`))
	require.NoError(t, err)
	assert.Equal(t, ":9090", cfg.ListenAddr)
	assert.Equal(t, int64(4), cfg.WorkerCapacity)
	assert.Equal(t, 2*time.Second, cfg.TaskTimeout)
	assert.Equal(t, "/tmp/vta-tasks", cfg.TasksDir)
	assert.Equal(t, "clang++", cfg.CompilerPath)
	assert.Equal(t, 10000, cfg.TemplateDepth)
}

func TestParseServerConfigRejectsNonPositiveCapacity(t *testing.T) {
	_, err := ParseServerConfig([]byte(`worker_capacity: -1`))
	assert.Error(t, err)
}

func TestDefaultServerConfigIsValid(t *testing.T) {
	cfg := DefaultServerConfig()
	assert.Equal(t, int64(DefaultWorkerCapacity), cfg.WorkerCapacity)
	assert.Equal(t, DefaultTaskTimeout, cfg.TaskTimeout)
}

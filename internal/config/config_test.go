package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "docker-host", cfg.DefaultHost)
	assert.Equal(t, "info", cfg.LogLevel)
	assert.Equal(t, "stdio", cfg.Transport)
	assert.Equal(t, ":8080", cfg.Listen)
	assert.Equal(t, "/mcp", cfg.Path)
	assert.Equal(t, "ssh", cfg.SSHBin)
	assert.Equal(t, 10*time.Second, cfg.ConnectTimeout)
	assert.Equal(t, 10*time.Second, cfg.ShutdownTimeout)
}

func TestLoadFromEnv(t *testing.T) {
	t.Setenv("DOCKER_SSH_MCP_HOST", "prod-docker")
	t.Setenv("DOCKER_SSH_MCP_TRANSPORT", "http")
	t.Setenv("DOCKER_SSH_MCP_CONNECT_TIMEOUT", "5s")

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, "prod-docker", cfg.DefaultHost)
	assert.Equal(t, "http", cfg.Transport)
	assert.Equal(t, 5*time.Second, cfg.ConnectTimeout)
}

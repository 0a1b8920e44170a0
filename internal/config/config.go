package config

import (
	"time"

	"github.com/caarlos0/env/v11"
)

// Config stores environment-driven settings for the server.
type Config struct {
	// DefaultHost is the SSH host alias used when a tool call omits one.
	DefaultHost string `env:"DOCKER_SSH_MCP_HOST" envDefault:"docker-host"`
	// LogLevel sets the logger level.
	LogLevel string `env:"DOCKER_SSH_MCP_LOG_LEVEL" envDefault:"info"`
	// Transport selects the MCP transport ("stdio" or "http").
	Transport string `env:"DOCKER_SSH_MCP_TRANSPORT" envDefault:"stdio"`
	// Listen is the HTTP listen address when Transport is "http".
	Listen string `env:"DOCKER_SSH_MCP_LISTEN" envDefault:":8080"`
	// Path is the MCP HTTP endpoint path.
	Path string `env:"DOCKER_SSH_MCP_PATH" envDefault:"/mcp"`
	// HostsConfig is an optional YAML file restricting host aliases and
	// overriding per-tool timeouts.
	HostsConfig string `env:"DOCKER_SSH_MCP_HOSTS_CONFIG"`
	// SSHBin is the ssh client binary.
	SSHBin string `env:"DOCKER_SSH_MCP_SSH_BIN" envDefault:"ssh"`
	// ConnectTimeout bounds the SSH connect phase.
	ConnectTimeout time.Duration `env:"DOCKER_SSH_MCP_CONNECT_TIMEOUT" envDefault:"10s"`
	// ShutdownTimeout controls graceful shutdown duration.
	ShutdownTimeout time.Duration `env:"DOCKER_SSH_MCP_SHUTDOWN_TIMEOUT" envDefault:"10s"`
}

// Load parses environment variables into Config.
func Load() (Config, error) {
	return env.ParseAs[Config]()
}

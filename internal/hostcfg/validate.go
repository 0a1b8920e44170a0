package hostcfg

import (
	"fmt"
	"time"

	"github.com/remoteops/docker-ssh-mcp-server/internal/dispatch"
	"github.com/remoteops/docker-ssh-mcp-server/internal/sanitize"
	"github.com/remoteops/docker-ssh-mcp-server/internal/timeutil"
)

// Validate verifies aliases, tool names, and duration syntax.
func Validate(cfg *Config) error {
	if cfg == nil {
		return fmt.Errorf("config is nil")
	}
	for _, alias := range cfg.Hosts {
		if _, err := sanitize.Identifier("host", alias); err != nil {
			return fmt.Errorf("hosts: %w", err)
		}
	}
	for tool, value := range cfg.Timeouts {
		if _, err := dispatch.ParseTool(tool); err != nil {
			return fmt.Errorf("timeouts: %w", err)
		}
		if _, err := time.ParseDuration(value); err != nil {
			return fmt.Errorf("timeouts.%s is invalid: %w", tool, err)
		}
	}
	if cfg.Limits.MaxTotal < 0 {
		return fmt.Errorf("limits.max_total must be >= 0")
	}
	if cfg.Limits.RatePerMinute < 0 {
		return fmt.Errorf("limits.rate_per_minute must be >= 0")
	}
	return nil
}

// ToolTimeouts converts the duration strings into per-tool budgets. Validate
// must have succeeded first; unparseable entries are skipped.
func (c *Config) ToolTimeouts() map[string]time.Duration {
	if c == nil || len(c.Timeouts) == 0 {
		return nil
	}
	out := make(map[string]time.Duration, len(c.Timeouts))
	for tool, value := range c.Timeouts {
		parsed := timeutil.ParseDurationOrDefault(value, 0)
		if parsed <= 0 {
			continue
		}
		out[tool] = parsed
	}
	return out
}

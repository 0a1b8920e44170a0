package hostcfg

// Config is the optional YAML hosts configuration.
type Config struct {
	// Hosts lists the allowed SSH host aliases. Empty means any
	// identifier-shaped alias is accepted.
	Hosts []string `yaml:"hosts"`
	// Timeouts overrides per-tool execution budgets, keyed by tool name,
	// as Go duration strings.
	Timeouts map[string]string `yaml:"timeouts"`
	// Limits configures the optional call guard.
	Limits LimitsConfig `yaml:"limits"`
}

// LimitsConfig configures call-volume limits.
type LimitsConfig struct {
	// MaxTotal caps calls per tool for the process lifetime.
	MaxTotal int `yaml:"max_total"`
	// RatePerMinute caps the sustained call rate per tool.
	RatePerMinute int `yaml:"rate_per_minute"`
}

// Enabled reports whether any limit is configured.
func (l LimitsConfig) Enabled() bool {
	return l.MaxTotal > 0 || l.RatePerMinute > 0
}

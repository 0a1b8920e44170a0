// Package startup runs the boot-time connectivity probe.
package startup

import (
	"context"
	"log/slog"
)

// Prober reports whether a host is reachable.
type Prober interface {
	TestConnection(ctx context.Context, host string) bool
}

// Probe checks the default host once at boot and logs the outcome. An
// unreachable host is a warning, not a fatal error: per-call errors are
// reported in-band and the host may come up later.
func Probe(ctx context.Context, prober Prober, host string, logger *slog.Logger) {
	if prober == nil || host == "" {
		return
	}
	if prober.TestConnection(ctx, host) {
		if logger != nil {
			logger.Info("default host reachable", "host", host)
		}
		return
	}
	if logger != nil {
		logger.Warn("default host unreachable at startup", "host", host)
	}
}

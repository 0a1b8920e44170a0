package audit

import (
	"context"
	"log/slog"
)

// Event represents an audit entry for a tool invocation.
type Event struct {
	// Type describes the event kind.
	Type string
	// Tool is the tool name.
	Tool string
	// Status is the execution status.
	Status string
	// Reason provides additional context.
	Reason string
}

// Logger records audit events.
type Logger interface {
	// Record stores an audit event.
	Record(ctx context.Context, event Event)
}

// StdLogger writes audit events to slog.
type StdLogger struct {
	logger *slog.Logger
}

// New returns a StdLogger.
func New(logger *slog.Logger) *StdLogger {
	return &StdLogger{logger: logger}
}

// Record logs an audit event.
func (l *StdLogger) Record(_ context.Context, event Event) {
	if l == nil || l.logger == nil {
		return
	}
	l.logger.Info("audit",
		"type", event.Type,
		"tool", event.Tool,
		"status", event.Status,
		"reason", event.Reason,
	)
}

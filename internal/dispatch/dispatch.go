// Package dispatch maps tool invocations onto remote docker commands and
// shapes their results. All argument validation happens here, before the
// remote executor is ever touched, and every failure is converted into an
// error-flagged result at this boundary instead of propagating to the MCP
// layer.
package dispatch

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/remoteops/docker-ssh-mcp-server/internal/audit"
	"github.com/remoteops/docker-ssh-mcp-server/internal/docker"
	"github.com/remoteops/docker-ssh-mcp-server/internal/guard"
	"github.com/remoteops/docker-ssh-mcp-server/internal/protocol"
	"github.com/remoteops/docker-ssh-mcp-server/internal/sanitize"
	"github.com/remoteops/docker-ssh-mcp-server/internal/security"
	"github.com/remoteops/docker-ssh-mcp-server/internal/sshexec"
)

// Default execution budgets. Log tailing gets a larger budget than the short
// snapshot operations.
const (
	defaultTimeout = 30 * time.Second
	logTimeout     = 60 * time.Second
)

// Executor runs commands on a remote host. Satisfied by sshexec.Client.
type Executor interface {
	Execute(ctx context.Context, host, command string, timeout time.Duration) (sshexec.Result, error)
	TestConnection(ctx context.Context, host string) bool
}

// Options configures a Dispatcher.
type Options struct {
	// DefaultHost is used when a call omits the host argument.
	DefaultHost string
	// AllowedHosts restricts host aliases when non-empty.
	AllowedHosts []string
	// Timeouts overrides per-tool execution budgets, keyed by tool name.
	Timeouts map[string]time.Duration
	// Guard limits call volume when set.
	Guard *guard.Guard
	// Logger records dispatches when set.
	Logger *slog.Logger
	// Audit records tool events when set.
	Audit audit.Logger
}

// Dispatcher routes tool invocations to the remote executor.
type Dispatcher struct {
	exec    Executor
	opts    Options
	allowed map[string]struct{}
}

// New builds a Dispatcher. The default host is threaded in explicitly so
// tests can supply arbitrary hosts without touching the process environment.
func New(exec Executor, opts Options) *Dispatcher {
	var allowed map[string]struct{}
	if len(opts.AllowedHosts) > 0 {
		allowed = make(map[string]struct{}, len(opts.AllowedHosts))
		for _, alias := range opts.AllowedHosts {
			allowed[alias] = struct{}{}
		}
	}
	return &Dispatcher{exec: exec, opts: opts, allowed: allowed}
}

// Dispatch validates the invocation, runs it remotely, and shapes the result.
// It never returns a Go error: every failure mode becomes an error-flagged
// Result.
func (d *Dispatcher) Dispatch(ctx context.Context, name string, args map[string]any) protocol.Result {
	tool, err := ParseTool(name)
	if err != nil {
		return d.fail(ctx, name, err)
	}

	if d.opts.Logger != nil {
		d.opts.Logger.Info("tool call", "tool", name, "args", security.RedactArguments(args))
	}
	if d.opts.Audit != nil {
		d.opts.Audit.Record(ctx, audit.Event{Type: "tool_call", Tool: name})
	}

	if d.opts.Guard != nil {
		if err := d.opts.Guard.Allow(name); err != nil {
			return d.fail(ctx, name, err)
		}
	}

	host, err := d.resolveHost(args)
	if err != nil {
		return d.fail(ctx, name, err)
	}

	var result protocol.Result
	switch tool {
	case ToolTestConnection:
		result = d.testConnection(ctx, host)
	case ToolListContainers:
		result = d.listContainers(ctx, host, args)
	case ToolContainerLogs:
		result = d.containerLogs(ctx, host, args)
	case ToolContainerStats:
		result = d.containerStats(ctx, host, args)
	case ToolInspectContainer:
		result = d.inspectContainer(ctx, host, args)
	case ToolComposeLogs:
		result = d.composeLogs(ctx, host, args)
	}

	if d.opts.Audit != nil {
		eventType := "tool_ok"
		if result.IsError {
			eventType = "tool_error"
		}
		d.opts.Audit.Record(ctx, audit.Event{Type: eventType, Tool: name, Status: result.Status()})
	}
	return result
}

func (d *Dispatcher) testConnection(ctx context.Context, host string) protocol.Result {
	if d.exec.TestConnection(ctx, host) {
		return protocol.Text(fmt.Sprintf("Connection to %s succeeded", host))
	}
	return protocol.Error(fmt.Sprintf("Connection to %s failed", host))
}

func (d *Dispatcher) listContainers(ctx context.Context, host string, args map[string]any) protocol.Result {
	command := docker.ListContainers(boolArg(args, "all", false), stringArg(args, "filter"))
	result, err := d.run(ctx, host, ToolListContainers, command)
	if err != nil {
		return errorResult(err)
	}
	if result.ExitCode != 0 {
		return protocol.Error(remoteFailure(result))
	}
	return protocol.Text(result.Stdout)
}

func (d *Dispatcher) containerLogs(ctx context.Context, host string, args map[string]any) protocol.Result {
	command, err := docker.ContainerLogs(
		stringArg(args, "container"),
		intArg(args, "tail", 100),
		stringArg(args, "since"),
		boolArg(args, "timestamps", true),
	)
	if err != nil {
		return errorResult(err)
	}
	result, err := d.run(ctx, host, ToolContainerLogs, command)
	if err != nil {
		return errorResult(err)
	}
	return shapeLogs(result)
}

func (d *Dispatcher) containerStats(ctx context.Context, host string, args map[string]any) protocol.Result {
	command, err := docker.ContainerStats(stringArg(args, "container"))
	if err != nil {
		return errorResult(err)
	}
	result, err := d.run(ctx, host, ToolContainerStats, command)
	if err != nil {
		return errorResult(err)
	}
	if result.ExitCode != 0 {
		return protocol.Error(remoteFailure(result))
	}
	return protocol.Text(result.Stdout)
}

func (d *Dispatcher) inspectContainer(ctx context.Context, host string, args map[string]any) protocol.Result {
	command, err := docker.InspectContainer(stringArg(args, "container"))
	if err != nil {
		return errorResult(err)
	}
	result, err := d.run(ctx, host, ToolInspectContainer, command)
	if err != nil {
		return errorResult(err)
	}
	if result.ExitCode != 0 {
		return protocol.Error(remoteFailure(result))
	}
	summary, ok := docker.Summarize(result.Stdout)
	if !ok && d.opts.Logger != nil {
		d.opts.Logger.Warn("inspect output not parseable, returning raw text", "host", host)
	}
	return protocol.Text(summary)
}

func (d *Dispatcher) composeLogs(ctx context.Context, host string, args map[string]any) protocol.Result {
	command, err := docker.ComposeLogs(
		stringArg(args, "project"),
		stringArg(args, "service"),
		intArg(args, "tail", 100),
	)
	if err != nil {
		return errorResult(err)
	}
	result, err := d.run(ctx, host, ToolComposeLogs, command)
	if err != nil {
		return errorResult(err)
	}
	return shapeLogs(result)
}

func (d *Dispatcher) run(ctx context.Context, host string, tool Tool, command string) (sshexec.Result, error) {
	return d.exec.Execute(ctx, host, command, d.timeout(tool))
}

func (d *Dispatcher) timeout(tool Tool) time.Duration {
	if override, ok := d.opts.Timeouts[tool.String()]; ok && override > 0 {
		return override
	}
	switch tool {
	case ToolContainerLogs, ToolComposeLogs:
		return logTimeout
	default:
		return defaultTimeout
	}
}

func (d *Dispatcher) resolveHost(args map[string]any) (string, error) {
	host := stringArg(args, "host")
	if host == "" {
		host = d.opts.DefaultHost
	}
	alias, err := sanitize.Identifier("host", host)
	if err != nil {
		return "", err
	}
	if d.allowed != nil {
		if _, ok := d.allowed[alias]; !ok {
			return "", fmt.Errorf("%w: host %q is not a configured alias", sanitize.ErrInvalidArgument, alias)
		}
	}
	return alias, nil
}

func (d *Dispatcher) fail(ctx context.Context, name string, err error) protocol.Result {
	if d.opts.Logger != nil {
		d.opts.Logger.Warn("tool call rejected", "tool", name, "error", err)
	}
	if d.opts.Audit != nil {
		d.opts.Audit.Record(ctx, audit.Event{Type: "tool_rejected", Tool: name, Status: protocol.StatusError, Reason: err.Error()})
	}
	return errorResult(err)
}

// shapeLogs implements the log-tool result rule: stdout when present, else
// stderr; a failure only when the remote exit status is non-zero and stdout
// is empty. Docker writes log content to stdout and its own diagnostics to
// stderr, so a non-zero exit with captured log lines is still log content.
func shapeLogs(result sshexec.Result) protocol.Result {
	if result.Stdout != "" {
		return protocol.Text(result.Stdout)
	}
	if result.ExitCode != 0 {
		return protocol.Error(remoteFailure(result))
	}
	return protocol.Text(result.Stderr)
}

func remoteFailure(result sshexec.Result) string {
	message := result.Stderr
	if message == "" {
		message = result.Stdout
	}
	if message == "" {
		message = "remote command produced no output"
	}
	return fmt.Sprintf("remote command failed with exit code %d: %s", result.ExitCode, message)
}

func errorResult(err error) protocol.Result {
	switch {
	case errors.Is(err, sshexec.ErrTimeout):
		return protocol.Error("Execution timed out: " + err.Error())
	case errors.Is(err, sshexec.ErrTransport):
		return protocol.Error("Execution failed: " + err.Error())
	default:
		return protocol.Error(err.Error())
	}
}

func stringArg(args map[string]any, key string) string {
	if args == nil {
		return ""
	}
	value, _ := args[key].(string)
	return value
}

func intArg(args map[string]any, key string, def int) int {
	if args == nil {
		return def
	}
	switch v := args[key].(type) {
	case float64:
		return int(v)
	case int:
		return v
	default:
		return def
	}
}

func boolArg(args map[string]any, key string, def bool) bool {
	if args == nil {
		return def
	}
	if v, ok := args[key].(bool); ok {
		return v
	}
	return def
}

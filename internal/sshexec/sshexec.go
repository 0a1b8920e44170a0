// Package sshexec runs one-shot commands on a remote host through the local
// ssh client. Each call spawns exactly one ssh process in batch mode; there
// is no connection reuse across calls.
package sshexec

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os/exec"
	"strings"
	"time"
)

// Sentinel errors distinguishing a blown budget from a transport that never
// ran the command at all.
var (
	ErrTimeout   = errors.New("remote command timed out")
	ErrTransport = errors.New("ssh transport failed")
)

// Result captures everything a remote command produced. A non-zero exit code
// is data, not an error: per-tool shaping decides what it means.
type Result struct {
	// Stdout is the trimmed standard output.
	Stdout string
	// Stderr is the trimmed standard error.
	Stderr string
	// ExitCode is the remote command's exit status.
	ExitCode int
}

// Client executes remote commands over ssh.
type Client struct {
	// Program is the ssh client binary.
	Program string
	// ConnectTimeout bounds the SSH connect phase, separate from the
	// per-command execution timeout.
	ConnectTimeout time.Duration
	// Logger records executions when set.
	Logger *slog.Logger
}

// New returns a Client with defaults applied.
func New(program string, connectTimeout time.Duration, logger *slog.Logger) *Client {
	if program == "" {
		program = "ssh"
	}
	if connectTimeout <= 0 {
		connectTimeout = 10 * time.Second
	}
	return &Client{Program: program, ConnectTimeout: connectTimeout, Logger: logger}
}

// Execute runs command on host and waits for it to finish or for timeout to
// elapse, whichever comes first. On timeout the process is killed and
// ErrTimeout is returned. Both output streams are fully drained before
// returning; a non-zero remote exit status is reported in Result, not as an
// error.
func (c *Client) Execute(ctx context.Context, host, command string, timeout time.Duration) (Result, error) {
	ctx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	args := []string{
		"-o", "BatchMode=yes",
		"-o", fmt.Sprintf("ConnectTimeout=%d", int(c.ConnectTimeout.Seconds())),
		host,
		command,
	}

	cmd := exec.CommandContext(ctx, c.Program, args...)
	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr
	// After a kill, stop waiting on pipes still held open by orphaned
	// descendants of the ssh process.
	cmd.WaitDelay = time.Second

	started := time.Now()
	runErr := cmd.Run()

	result := Result{
		Stdout: strings.TrimSpace(stdout.String()),
		Stderr: strings.TrimSpace(stderr.String()),
	}

	if runErr != nil {
		if errors.Is(ctx.Err(), context.DeadlineExceeded) {
			return result, fmt.Errorf("%w after %s on %s", ErrTimeout, timeout, host)
		}
		var exitErr *exec.ExitError
		if !errors.As(runErr, &exitErr) {
			return result, fmt.Errorf("%w: %v", ErrTransport, runErr)
		}
		result.ExitCode = exitErr.ExitCode()
	}

	if c.Logger != nil {
		c.Logger.Debug("remote command finished",
			"host", host,
			"exit_code", result.ExitCode,
			"duration", time.Since(started).String(),
		)
	}
	return result, nil
}

// TestConnection probes host with a trivial echo. It returns true only when
// the remote exit status is 0 and trimmed stdout is exactly "ok"; any error,
// including a timeout, yields false rather than propagating.
func (c *Client) TestConnection(ctx context.Context, host string) bool {
	result, execErr := c.Execute(ctx, host, "echo ok", 10*time.Second)
	if execErr != nil {
		if c.Logger != nil {
			c.Logger.Warn("connection probe failed", "host", host, "error", execErr)
		}
		return false
	}
	return result.ExitCode == 0 && result.Stdout == "ok"
}

package sshexec

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// stubSSH writes a shell script that, like ssh, treats its last argument as
// the remote command line and runs it locally.
func stubSSH(t *testing.T) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "fake-ssh")
	script := "#!/bin/sh\nfor last in \"$@\"; do :; done\neval \"$last\"\n"
	require.NoError(t, os.WriteFile(path, []byte(script), 0o755))
	return path
}

func TestExecuteCapturesTrimmedOutput(t *testing.T) {
	client := New(stubSSH(t), 10*time.Second, nil)

	result, err := client.Execute(context.Background(), "any-host", "echo '  hello  '", 5*time.Second)
	require.NoError(t, err)
	assert.Equal(t, "hello", result.Stdout)
	assert.Empty(t, result.Stderr)
	assert.Equal(t, 0, result.ExitCode)
}

func TestExecuteReturnsExitCodeAsData(t *testing.T) {
	client := New(stubSSH(t), 10*time.Second, nil)

	result, err := client.Execute(context.Background(), "any-host", "echo oops 1>&2; exit 3", 5*time.Second)
	require.NoError(t, err, "non-zero exit is data, not an error")
	assert.Equal(t, 3, result.ExitCode)
	assert.Equal(t, "oops", result.Stderr)
	assert.Empty(t, result.Stdout)
}

func TestExecuteTimesOut(t *testing.T) {
	client := New(stubSSH(t), 10*time.Second, nil)

	start := time.Now()
	_, err := client.Execute(context.Background(), "any-host", "sleep 5", 100*time.Millisecond)
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrTimeout)
	assert.Less(t, time.Since(start), 3*time.Second, "process must be killed, not awaited")
}

func TestExecuteTransportFailure(t *testing.T) {
	client := New(filepath.Join(t.TempDir(), "does-not-exist"), 10*time.Second, nil)

	_, err := client.Execute(context.Background(), "any-host", "echo hi", 5*time.Second)
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrTransport)
}

func TestTestConnection(t *testing.T) {
	client := New(stubSSH(t), 10*time.Second, nil)
	assert.True(t, client.TestConnection(context.Background(), "any-host"))
}

func TestTestConnectionFalseOnWrongOutput(t *testing.T) {
	path := filepath.Join(t.TempDir(), "fake-ssh")
	require.NoError(t, os.WriteFile(path, []byte("#!/bin/sh\necho nope\n"), 0o755))

	client := New(path, 10*time.Second, nil)
	assert.False(t, client.TestConnection(context.Background(), "any-host"))
}

func TestTestConnectionFalseOnTransportFailure(t *testing.T) {
	client := New(filepath.Join(t.TempDir(), "does-not-exist"), 10*time.Second, nil)
	assert.False(t, client.TestConnection(context.Background(), "any-host"))
}

func TestNewDefaults(t *testing.T) {
	client := New("", 0, nil)
	assert.Equal(t, "ssh", client.Program)
	assert.Equal(t, 10*time.Second, client.ConnectTimeout)
}

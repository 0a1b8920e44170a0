package security

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRedactArguments(t *testing.T) {
	args := map[string]any{
		"container":  "web-1",
		"ssh_token":  "hunter2",
		"Password":   "hunter2",
		"api_key":    "abc",
		"tail":       100,
		"timestamps": true,
	}
	redacted := RedactArguments(args)

	assert.Equal(t, "web-1", redacted["container"])
	assert.Equal(t, 100, redacted["tail"])
	assert.Equal(t, true, redacted["timestamps"])
	assert.Equal(t, "***", redacted["ssh_token"])
	assert.Equal(t, "***", redacted["Password"])
	assert.Equal(t, "***", redacted["api_key"])

	// Original map is untouched.
	assert.Equal(t, "hunter2", args["ssh_token"])
}

func TestRedactArgumentsNil(t *testing.T) {
	assert.Nil(t, RedactArguments(nil))
}

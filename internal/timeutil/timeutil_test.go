package timeutil

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestParseDurationOrDefault(t *testing.T) {
	assert.Equal(t, 5*time.Second, ParseDurationOrDefault("5s", time.Minute))
	assert.Equal(t, time.Minute, ParseDurationOrDefault("", time.Minute))
	assert.Equal(t, time.Minute, ParseDurationOrDefault("  ", time.Minute))
	assert.Equal(t, time.Minute, ParseDurationOrDefault("soon", time.Minute))
}

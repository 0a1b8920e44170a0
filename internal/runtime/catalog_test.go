package runtime

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/remoteops/docker-ssh-mcp-server/internal/dispatch"
)

func TestCatalogCoversAllToolsExactlyOnce(t *testing.T) {
	seen := map[dispatch.Tool]bool{}
	for _, def := range Catalog() {
		assert.False(t, seen[def.Tool], "duplicate catalog entry for %s", def.Tool)
		seen[def.Tool] = true
	}
	for _, tool := range dispatch.Tools() {
		assert.True(t, seen[tool], "missing catalog entry for %s", tool)
	}
}

func TestCatalogEntriesAreComplete(t *testing.T) {
	for _, def := range Catalog() {
		assert.NotEmpty(t, def.Title, def.Tool.String())
		assert.NotEmpty(t, def.Description, def.Tool.String())
		require.NotNil(t, def.InputSchema, def.Tool.String())
		assert.Equal(t, "object", def.InputSchema["type"], def.Tool.String())

		properties, ok := def.InputSchema["properties"].(map[string]any)
		require.True(t, ok, def.Tool.String())
		assert.Contains(t, properties, "host", "every tool accepts a host override")
	}
}

func TestCatalogRequiredArguments(t *testing.T) {
	required := map[dispatch.Tool][]string{
		dispatch.ToolContainerLogs:    {"container"},
		dispatch.ToolInspectContainer: {"container"},
		dispatch.ToolComposeLogs:      {"project"},
	}
	for _, def := range Catalog() {
		want, ok := required[def.Tool]
		if !ok {
			assert.NotContains(t, def.InputSchema, "required", def.Tool.String())
			continue
		}
		assert.Equal(t, want, def.InputSchema["required"], def.Tool.String())
	}
}

func TestBuildRegistersServer(t *testing.T) {
	server := Builder{Dispatcher: dispatch.New(nil, dispatch.Options{DefaultHost: "h"})}.Build()
	assert.NotNil(t, server)
}

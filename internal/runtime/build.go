// Package runtime wires the dispatcher into an MCP server.
package runtime

import (
	"context"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/remoteops/docker-ssh-mcp-server/internal/dispatch"
	"github.com/remoteops/docker-ssh-mcp-server/internal/protocol"
)

// Server identity advertised to MCP clients.
const (
	serverName    = "docker-ssh-mcp-server"
	serverVersion = "1.0.0"
)

// Builder constructs an MCP server around a Dispatcher.
type Builder struct {
	// Dispatcher routes tool calls to the remote host.
	Dispatcher *dispatch.Dispatcher
}

// Build creates the MCP server with the fixed tool catalog registered.
func (b Builder) Build() *mcp.Server {
	server := mcp.NewServer(&mcp.Implementation{
		Name:    serverName,
		Version: serverVersion,
	}, nil)

	for _, def := range Catalog() {
		b.addTool(server, def)
	}
	return server
}

func (b Builder) addTool(server *mcp.Server, def ToolDef) {
	name := def.Tool.String()

	mcpTool := &mcp.Tool{
		Name:        name,
		Title:       def.Title,
		Description: def.Description,
		InputSchema: def.InputSchema,
		Annotations: &mcp.ToolAnnotations{
			ReadOnlyHint: true,
			Title:        def.Title,
		},
	}

	mcp.AddTool(server, mcpTool, func(ctx context.Context, _ *mcp.CallToolRequest, input map[string]any) (*mcp.CallToolResult, any, error) {
		result := b.Dispatcher.Dispatch(ctx, name, input)
		return toCallToolResult(result), nil, nil
	})
}

func toCallToolResult(result protocol.Result) *mcp.CallToolResult {
	return &mcp.CallToolResult{
		Content: []mcp.Content{&mcp.TextContent{Text: result.Text}},
		IsError: result.IsError,
	}
}

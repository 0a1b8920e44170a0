package runtime

import "github.com/remoteops/docker-ssh-mcp-server/internal/dispatch"

// ToolDef describes one catalog entry advertised to MCP clients.
type ToolDef struct {
	Tool        dispatch.Tool
	Title       string
	Description string
	InputSchema map[string]any
}

func hostProperty() map[string]any {
	return map[string]any{
		"type":        "string",
		"description": "SSH host alias from the local SSH configuration; defaults to the configured host",
	}
}

// Catalog returns the fixed tool catalog. One entry per dispatch.Tool
// variant; catalogCoversAllTools in tests keeps the two sets in sync.
func Catalog() []ToolDef {
	return []ToolDef{
		{
			Tool:        dispatch.ToolTestConnection,
			Title:       "Test connection",
			Description: "Verify SSH connectivity to the Docker host",
			InputSchema: map[string]any{
				"type": "object",
				"properties": map[string]any{
					"host": hostProperty(),
				},
			},
		},
		{
			Tool:        dispatch.ToolListContainers,
			Title:       "List containers",
			Description: "List Docker containers on the remote host",
			InputSchema: map[string]any{
				"type": "object",
				"properties": map[string]any{
					"all": map[string]any{
						"type":        "boolean",
						"description": "Include stopped containers",
					},
					"filter": map[string]any{
						"type":        "string",
						"description": "Pattern to filter container rows by; the header row is always kept",
					},
					"host": hostProperty(),
				},
			},
		},
		{
			Tool:        dispatch.ToolContainerLogs,
			Title:       "Container logs",
			Description: "Fetch recent logs from a container",
			InputSchema: map[string]any{
				"type": "object",
				"properties": map[string]any{
					"container": map[string]any{
						"type":        "string",
						"description": "Container name or ID",
					},
					"tail": map[string]any{
						"type":        "integer",
						"description": "Number of most-recent lines to fetch",
						"default":     100,
					},
					"since": map[string]any{
						"type":        "string",
						"description": "Only logs since this time, e.g. 1h, 30m, or 2024-01-01T10:00:00",
					},
					"timestamps": map[string]any{
						"type":        "boolean",
						"description": "Prefix each line with its timestamp",
						"default":     true,
					},
					"host": hostProperty(),
				},
				"required": []string{"container"},
			},
		},
		{
			Tool:        dispatch.ToolContainerStats,
			Title:       "Container stats",
			Description: "One-shot resource usage snapshot of containers",
			InputSchema: map[string]any{
				"type": "object",
				"properties": map[string]any{
					"container": map[string]any{
						"type":        "string",
						"description": "Limit the snapshot to one container",
					},
					"host": hostProperty(),
				},
			},
		},
		{
			Tool:        dispatch.ToolInspectContainer,
			Title:       "Inspect container",
			Description: "Reduced inspection summary of a container: name, state, image, creation time, ports, environment, mounts",
			InputSchema: map[string]any{
				"type": "object",
				"properties": map[string]any{
					"container": map[string]any{
						"type":        "string",
						"description": "Container name or ID",
					},
					"host": hostProperty(),
				},
				"required": []string{"container"},
			},
		},
		{
			Tool:        dispatch.ToolComposeLogs,
			Title:       "Compose logs",
			Description: "Fetch recent logs from a docker compose project",
			InputSchema: map[string]any{
				"type": "object",
				"properties": map[string]any{
					"project": map[string]any{
						"type":        "string",
						"description": "Compose project name",
					},
					"service": map[string]any{
						"type":        "string",
						"description": "Limit logs to one service",
					},
					"tail": map[string]any{
						"type":        "integer",
						"description": "Number of most-recent lines to fetch",
						"default":     100,
					},
					"host": hostProperty(),
				},
				"required": []string{"project"},
			},
		},
	}
}

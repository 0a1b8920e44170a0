package dispatch

import (
	"errors"
	"fmt"
)

// ErrUnknownTool marks a tool name outside the fixed catalog.
var ErrUnknownTool = errors.New("unknown tool")

// Tool enumerates the fixed set of remote inspection operations. The set is
// closed: adding a tool means adding a variant here and a case to every
// switch, which the compiler and tests check.
type Tool int

const (
	ToolTestConnection Tool = iota
	ToolListContainers
	ToolContainerLogs
	ToolContainerStats
	ToolInspectContainer
	ToolComposeLogs
)

// Tool names as advertised in the MCP catalog.
const (
	NameTestConnection   = "test-connection"
	NameListContainers   = "list-containers"
	NameContainerLogs    = "get-container-logs"
	NameContainerStats   = "get-container-stats"
	NameInspectContainer = "inspect-container"
	NameComposeLogs      = "docker-compose-logs"
)

// ParseTool resolves a tool name to its variant.
func ParseTool(name string) (Tool, error) {
	switch name {
	case NameTestConnection:
		return ToolTestConnection, nil
	case NameListContainers:
		return ToolListContainers, nil
	case NameContainerLogs:
		return ToolContainerLogs, nil
	case NameContainerStats:
		return ToolContainerStats, nil
	case NameInspectContainer:
		return ToolInspectContainer, nil
	case NameComposeLogs:
		return ToolComposeLogs, nil
	default:
		return 0, fmt.Errorf("%w: %q", ErrUnknownTool, name)
	}
}

// String returns the advertised tool name.
func (t Tool) String() string {
	switch t {
	case ToolTestConnection:
		return NameTestConnection
	case ToolListContainers:
		return NameListContainers
	case ToolContainerLogs:
		return NameContainerLogs
	case ToolContainerStats:
		return NameContainerStats
	case ToolInspectContainer:
		return NameInspectContainer
	case ToolComposeLogs:
		return NameComposeLogs
	default:
		return fmt.Sprintf("tool(%d)", int(t))
	}
}

// Tools returns all catalog variants in advertisement order.
func Tools() []Tool {
	return []Tool{
		ToolTestConnection,
		ToolListContainers,
		ToolContainerLogs,
		ToolContainerStats,
		ToolInspectContainer,
		ToolComposeLogs,
	}
}

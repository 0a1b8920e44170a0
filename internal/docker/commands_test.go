package docker

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/remoteops/docker-ssh-mcp-server/internal/sanitize"
)

func TestListContainers(t *testing.T) {
	assert.Equal(t, "docker ps", ListContainers(false, ""))
	assert.Equal(t, "docker ps -a", ListContainers(true, ""))
	assert.Equal(t, `docker ps | grep -E "(CONTAINER ID|nginx)"`, ListContainers(false, "nginx"))
	assert.Equal(t, `docker ps -a | grep -E "(CONTAINER ID|web.*prod)"`, ListContainers(true, "web.*prod"))
}

func TestListContainersStripsMetacharacters(t *testing.T) {
	// A filter that is nothing but metacharacters collapses to no filter.
	assert.Equal(t, "docker ps", ListContainers(false, `;|&$()`))
	assert.Equal(t, `docker ps | grep -E "(CONTAINER ID|nginx rm -rf /)"`, ListContainers(false, "nginx; rm -rf /"))
}

func TestContainerLogs(t *testing.T) {
	cmd, err := ContainerLogs("web-1", 50, "", true)
	require.NoError(t, err)
	assert.Equal(t, "docker logs --tail 50 --timestamps web-1", cmd)

	cmd, err = ContainerLogs("web-1", 0, "1h", false)
	require.NoError(t, err)
	assert.Equal(t, "docker logs --tail 100 --since 1h web-1", cmd)

	cmd, err = ContainerLogs("db", 10, "2024-01-01T10:00:00", true)
	require.NoError(t, err)
	assert.Equal(t, "docker logs --tail 10 --timestamps --since 2024-01-01T10:00:00 db", cmd)
}

func TestContainerLogsRejectsBadInput(t *testing.T) {
	_, err := ContainerLogs("web; id", 100, "", true)
	assert.ErrorIs(t, err, sanitize.ErrInvalidArgument)

	_, err = ContainerLogs("web", 100, "1 hour", true)
	assert.ErrorIs(t, err, sanitize.ErrInvalidArgument)

	_, err = ContainerLogs("", 100, "", true)
	assert.ErrorIs(t, err, sanitize.ErrInvalidArgument)
}

func TestContainerStats(t *testing.T) {
	cmd, err := ContainerStats("")
	require.NoError(t, err)
	assert.Equal(t, "docker stats --no-stream", cmd)

	cmd, err = ContainerStats("web-1")
	require.NoError(t, err)
	assert.Equal(t, "docker stats --no-stream web-1", cmd)

	_, err = ContainerStats("$(id)")
	assert.ErrorIs(t, err, sanitize.ErrInvalidArgument)
}

func TestInspectContainer(t *testing.T) {
	cmd, err := InspectContainer("web-1")
	require.NoError(t, err)
	assert.Equal(t, "docker inspect web-1", cmd)

	_, err = InspectContainer("web 1")
	assert.ErrorIs(t, err, sanitize.ErrInvalidArgument)
}

func TestComposeLogs(t *testing.T) {
	cmd, err := ComposeLogs("myproj", "", 0)
	require.NoError(t, err)
	assert.Equal(t, "docker compose -p myproj logs --tail 100", cmd)

	cmd, err = ComposeLogs("myproj", "web", 20)
	require.NoError(t, err)
	assert.Equal(t, "docker compose -p myproj logs --tail 20 web", cmd)

	_, err = ComposeLogs("", "web", 20)
	assert.ErrorIs(t, err, sanitize.ErrInvalidArgument)

	_, err = ComposeLogs("proj", "web|db", 20)
	assert.ErrorIs(t, err, sanitize.ErrInvalidArgument)
}

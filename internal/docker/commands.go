// Package docker builds the remote docker CLI command strings. All
// caller-controlled tokens are sanitized before concatenation; nothing in
// this package may interpolate raw input.
package docker

import (
	"fmt"
	"strings"

	"github.com/remoteops/docker-ssh-mcp-server/internal/sanitize"
)

// psHeaderPattern keeps the docker ps header row visible when a filter is
// applied remotely.
const psHeaderPattern = "CONTAINER ID"

// ListContainers builds the docker ps command. includeStopped adds -a; a
// non-empty filter is applied as a remote grep that always preserves the
// header row. The filter has shell metacharacters stripped rather than being
// rejected, because it carries partial pattern text.
func ListContainers(includeStopped bool, filter string) string {
	cmd := "docker ps"
	if includeStopped {
		cmd += " -a"
	}
	cleaned := strings.TrimSpace(sanitize.FilterPattern(filter))
	if cleaned != "" {
		cmd += fmt.Sprintf(" | grep -E \"(%s|%s)\"", psHeaderPattern, cleaned)
	}
	return cmd
}

// ContainerLogs builds the docker logs command.
func ContainerLogs(container string, tail int, since string, timestamps bool) (string, error) {
	name, err := sanitize.Identifier("container", container)
	if err != nil {
		return "", err
	}
	if tail <= 0 {
		tail = 100
	}
	cmd := fmt.Sprintf("docker logs --tail %d", tail)
	if timestamps {
		cmd += " --timestamps"
	}
	if since != "" {
		bound, err := sanitize.Since(since)
		if err != nil {
			return "", err
		}
		cmd += " --since " + bound
	}
	return cmd + " " + name, nil
}

// ContainerStats builds a single-shot docker stats command, optionally scoped
// to one container.
func ContainerStats(container string) (string, error) {
	cmd := "docker stats --no-stream"
	if container == "" {
		return cmd, nil
	}
	name, err := sanitize.Identifier("container", container)
	if err != nil {
		return "", err
	}
	return cmd + " " + name, nil
}

// InspectContainer builds the docker inspect command for a single container.
func InspectContainer(container string) (string, error) {
	name, err := sanitize.Identifier("container", container)
	if err != nil {
		return "", err
	}
	return "docker inspect " + name, nil
}

// ComposeLogs builds the docker compose logs command for a project, optionally
// scoped to one service.
func ComposeLogs(project, service string, tail int) (string, error) {
	proj, err := sanitize.Identifier("project", project)
	if err != nil {
		return "", err
	}
	if tail <= 0 {
		tail = 100
	}
	cmd := fmt.Sprintf("docker compose -p %s logs --tail %d", proj, tail)
	if service != "" {
		svc, err := sanitize.Identifier("service", service)
		if err != nil {
			return "", err
		}
		cmd += " " + svc
	}
	return cmd, nil
}

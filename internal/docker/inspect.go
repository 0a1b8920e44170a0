package docker

import (
	"encoding/json"
	"strings"
)

// inspectEntry mirrors the docker inspect fields the summary keeps.
type inspectEntry struct {
	Name    string `json:"Name"`
	Created string `json:"Created"`
	State   struct {
		Status string `json:"Status"`
	} `json:"State"`
	Config struct {
		Image string   `json:"Image"`
		Env   []string `json:"Env"`
	} `json:"Config"`
	NetworkSettings struct {
		Ports map[string]any `json:"Ports"`
	} `json:"NetworkSettings"`
	Mounts []struct {
		Type        string `json:"Type"`
		Source      string `json:"Source"`
		Destination string `json:"Destination"`
		Mode        string `json:"Mode"`
	} `json:"Mounts"`
}

// InspectSummary is the reduced view of a docker inspect payload.
type InspectSummary struct {
	Name    string         `json:"name"`
	State   string         `json:"state"`
	Image   string         `json:"image"`
	Created string         `json:"created"`
	Ports   map[string]any `json:"ports"`
	Env     []string       `json:"env"`
	Mounts  []MountSummary `json:"mounts"`
}

// MountSummary is one mount in the reduced view.
type MountSummary struct {
	Type        string `json:"type"`
	Source      string `json:"source"`
	Destination string `json:"destination"`
	Mode        string `json:"mode,omitempty"`
}

// Summarize reduces raw docker inspect output to the summary fields and
// re-emits it as indented JSON. When raw is not the expected JSON array the
// input is returned verbatim with ok=false; the caller falls back to raw
// text instead of raising an error.
func Summarize(raw string) (string, bool) {
	var entries []inspectEntry
	if err := json.Unmarshal([]byte(raw), &entries); err != nil || len(entries) == 0 {
		return raw, false
	}

	entry := entries[0]
	summary := InspectSummary{
		Name:    strings.TrimPrefix(entry.Name, "/"),
		State:   entry.State.Status,
		Image:   entry.Config.Image,
		Created: entry.Created,
		Ports:   entry.NetworkSettings.Ports,
		Env:     entry.Config.Env,
	}
	for _, m := range entry.Mounts {
		summary.Mounts = append(summary.Mounts, MountSummary{
			Type:        m.Type,
			Source:      m.Source,
			Destination: m.Destination,
			Mode:        m.Mode,
		})
	}

	out, err := json.MarshalIndent(summary, "", "  ")
	if err != nil {
		return raw, false
	}
	return string(out), true
}

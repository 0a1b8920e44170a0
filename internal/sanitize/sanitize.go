// Package sanitize is the injection boundary for remote command construction.
// Every caller-supplied string must pass through here before it is
// interpolated into a shell command: there is no parameterized remote-command
// API over SSH, so textual concatenation of sanitized tokens is the only
// assembly mechanism available.
package sanitize

import (
	"errors"
	"fmt"
	"regexp"
	"strings"
)

// ErrInvalidArgument marks caller input that was rejected before reaching the
// remote host.
var ErrInvalidArgument = errors.New("invalid argument")

var (
	identifierRe = regexp.MustCompile(`^[A-Za-z0-9_.:-]+$`)
	relativeRe   = regexp.MustCompile(`^\d{1,5}[smhd]$`)
	isoRe        = regexp.MustCompile(`^\d{4}-\d{2}-\d{2}(T\d{2}:\d{2}(:\d{2})?)?$`)
)

// shellMeta lists the characters stripped from grep filter patterns.
const shellMeta = ";&|`$(){}[]<>\\!\"'"

// Identifier validates container names/IDs, project names, service names and
// host aliases. Anything outside [A-Za-z0-9_.:-] is rejected, never stripped.
func Identifier(field, value string) (string, error) {
	if value == "" {
		return "", fmt.Errorf("%w: %s is empty", ErrInvalidArgument, field)
	}
	if !identifierRe.MatchString(value) {
		return "", fmt.Errorf("%w: %s %q contains disallowed characters", ErrInvalidArgument, field, value)
	}
	return value, nil
}

// FilterPattern strips shell metacharacters from a grep filter and returns
// the remainder. Filters carry partial pattern text, so unlike identifiers
// they are cleaned rather than rejected; spaces and regex syntax such as
// ".*" pass through untouched.
func FilterPattern(value string) string {
	return strings.Map(func(r rune) rune {
		if strings.ContainsRune(shellMeta, r) {
			return -1
		}
		return r
	}, value)
}

// Since validates a docker --since argument: either a small integer with a
// single unit letter (s, m, h, d) or an ISO-style date optionally followed by
// a time of day.
func Since(value string) (string, error) {
	if relativeRe.MatchString(value) || isoRe.MatchString(value) {
		return value, nil
	}
	return "", fmt.Errorf("%w: since %q is not a duration like 1h or a date like 2024-01-01T10:00:00", ErrInvalidArgument, value)
}

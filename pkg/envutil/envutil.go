// Package envutil provides utilities for environment variable handling.
//
// This package centralizes the environment variable names toolbox uses for
// host/container coordination, plus the allowlist of desktop and session
// variables forwarded from the host into the container.
package envutil

import (
	"fmt"
	"os"
	"unicode/utf8"

	"toolbox/pkg/errors"
)

// Environment variable names used by toolbox for process coordination.
const (
	// StateFileEnvVar carries the handshake file name into the container.
	// It is the sole identity-handoff channel between the two phases.
	StateFileEnvVar = "TOOLBOX_STATEFILE"

	// RuntimeDirEnvVar locates the per-user runtime directory. Required
	// by both phases: the launcher writes the handshake file there, the
	// entrypoint reads it back through the /host mount.
	RuntimeDirEnvVar = "XDG_RUNTIME_DIR"

	// UserEnvVar names the invoking host user. Required by the launcher.
	UserEnvVar = "USER"

	// ShellEnvVar selects the interactive shell. Optional in both phases.
	ShellEnvVar = "SHELL"

	// PodmanEnvVar overrides the container runtime binary when set.
	PodmanEnvVar = "podman"
)

// PreservedEnv lists the host environment variables forwarded verbatim into
// the container when set. The order is fixed so the generated runtime
// arguments are deterministic. An unset name is simply skipped.
var PreservedEnv = []string{
	"COLORTERM",
	"DBUS_SESSION_BUS_ADDRESS",
	"DESKTOP_SESSION",
	"DISPLAY",
	"LANG",
	"SHELL",
	"SSH_AUTH_SOCK",
	"TERM",
	"VTE_VERSION",
	"XDG_CURRENT_DESKTOP",
	"XDG_DATA_DIRS",
	"XDG_MENU_PREFIX",
	"XDG_RUNTIME_DIR",
	"XDG_SEAT",
	"XDG_SESSION_DESKTOP",
	"XDG_SESSION_ID",
	"XDG_SESSION_TYPE",
	"XDG_VTNR",
}

// Required returns the value of a mandatory environment variable.
// It fails with errors.ErrMissingEnvVar when the variable is unset and
// errors.ErrInvalidEncoding when the value is not valid UTF-8.
func Required(name string) (string, error) {
	v, ok := os.LookupEnv(name)
	if !ok {
		return "", fmt.Errorf("%s: %w", name, errors.ErrMissingEnvVar)
	}
	if !utf8.ValidString(v) {
		return "", fmt.Errorf("%s: %w", name, errors.ErrInvalidEncoding)
	}
	return v, nil
}

// Lookup returns the value of an optional environment variable.
// An unset variable is reported via ok=false and is not an error; a set
// value that is not valid UTF-8 fails with errors.ErrInvalidEncoding.
func Lookup(name string) (value string, ok bool, err error) {
	v, ok := os.LookupEnv(name)
	if !ok {
		return "", false, nil
	}
	if !utf8.ValidString(v) {
		return "", false, fmt.Errorf("%s: %w", name, errors.ErrInvalidEncoding)
	}
	return v, true, nil
}

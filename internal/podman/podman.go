// Package podman wraps invocation of the container runtime.
//
// The runtime is always driven as a subprocess (inspect, pull) or by
// replacing the current process image outright (run). Toolbox never links
// against the runtime; it assumes podman implements image pull, namespace
// creation, bind-mount, and exec semantics correctly.
package podman

import (
	"fmt"
	"os"
	"os/exec"

	"golang.org/x/sys/unix"

	"toolbox/pkg/envutil"
	"toolbox/pkg/errors"
)

// execve is swappable so tests can intercept the process-image replacement.
var execve = unix.Exec

// Binary returns the runtime binary to invoke: the value of the `podman`
// environment variable when set, else "podman" resolved from PATH.
func Binary() string {
	if v := os.Getenv(envutil.PodmanEnvVar); v != "" {
		return v
	}
	return "podman"
}

// Command builds a runtime subprocess with the given arguments.
func Command(args ...string) *exec.Cmd {
	return exec.Command(Binary(), args...)
}

// Exec replaces the current process image with the runtime invocation.
//
// On success this function never returns: the interactive session's output
// and exit status belong to the replaced process image from here on.
// Callers therefore only ever observe the failure path.
func Exec(args []string) error {
	bin, err := exec.LookPath(Binary())
	if err != nil {
		return fmt.Errorf("%w: %v", errors.ErrLaunchFailed, err)
	}
	argv := append([]string{bin}, args...)
	if err := execve(bin, argv, os.Environ()); err != nil {
		return fmt.Errorf("%w: exec %s: %v", errors.ErrLaunchFailed, bin, err)
	}
	return nil
}

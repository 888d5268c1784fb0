// Package entrypoint implements the container phase.
//
// The launcher bind-mounts its own binary into the container and the
// runtime invokes it as the container's first process. This package
// recovers the host identity from the handshake file, materializes the
// matching user account, and replaces itself with the interactive shell.
package entrypoint

import (
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"strconv"
	"strings"

	log "github.com/sirupsen/logrus"
	"golang.org/x/sys/unix"

	"toolbox/internal/handshake"
	"toolbox/pkg/envutil"
	"toolbox/pkg/errors"
)

// HostPrefix is where the container sees the host filesystem. The handshake
// file lives in the host runtime directory, which is only reachable here.
const HostPrefix = "/host"

// fallbackShell is used when $SHELL is unusable or its exec fails.
const fallbackShell = "sh"

// adminGroup is the administrative group the created user joins.
const adminGroup = "wheel"

// Swappable so tests can intercept subprocess and exec behavior.
var (
	runCommand = func(cmd *exec.Cmd) error { return cmd.Run() }
	execve     = unix.Exec
)

// Run executes the container phase: read the handshake state, create the
// user, exec the shell. On success it never returns. On failure the
// container's first process exits, which tears the container down; with no
// supervisor inside there is nothing useful to keep alive.
func Run() error {
	return run(HostPrefix)
}

func run(hostPrefix string) error {
	stateFile, err := envutil.Required(envutil.StateFileEnvVar)
	if err != nil {
		return err
	}
	runtimeDir, err := envutil.Required(envutil.RuntimeDirEnvVar)
	if err != nil {
		return err
	}

	st, err := handshake.Read(filepath.Join(hostPrefix, runtimeDir, stateFile))
	if err != nil {
		return err
	}

	if err := addUser(st.Username, st.UID); err != nil {
		return err
	}

	return execShell(resolveShell())
}

// useraddArgs builds the argument list for the container's user-management
// tool: a system account with the host user's name and UID, no home
// directory, member of the administrative group.
func useraddArgs(name string, uid uint32) []string {
	return []string{
		"--no-create-home",
		"--uid", strconv.FormatUint(uint64(uid), 10),
		"--groups", adminGroup,
		name,
	}
}

func addUser(name string, uid uint32) error {
	cmd := exec.Command("useradd", useraddArgs(name, uid)...)
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr
	if err := runCommand(cmd); err != nil {
		return fmt.Errorf("%w: useradd %s: %v", errors.ErrUserCreation, name, err)
	}
	return nil
}

// resolveShell picks the interactive shell: $SHELL when set and valid
// UTF-8, else the fallback.
func resolveShell() string {
	v, ok, err := envutil.Lookup(envutil.ShellEnvVar)
	if err != nil || !ok || v == "" {
		return fallbackShell
	}
	return v
}

// execShell replaces the process image with the shell, falling back to a
// basic shell once. There is no third fallback.
func execShell(shell string) error {
	err := tryExec(shell)
	if err == nil {
		return nil
	}
	if shell != fallbackShell {
		log.Warnf("exec %s: %v; falling back to %s", shell, err, fallbackShell)
		err = tryExec(fallbackShell)
		if err == nil {
			return nil
		}
	}
	return fmt.Errorf("%w: %v", errors.ErrShellExec, err)
}

func tryExec(shell string) error {
	path := shell
	if !strings.Contains(shell, "/") {
		p, err := exec.LookPath(shell)
		if err != nil {
			return err
		}
		path = p
	}
	return execve(path, []string{shell}, os.Environ())
}

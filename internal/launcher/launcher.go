// Package launcher implements the host phase: it ensures the image is
// present, computes the user-namespace and mount plan, writes the handshake
// state file, and replaces the current process with the runtime invocation.
package launcher

import (
	"fmt"
	"os"
	"strings"

	log "github.com/sirupsen/logrus"

	"toolbox/internal/handshake"
	"toolbox/internal/hostenv"
	"toolbox/internal/image"
	"toolbox/internal/podman"
	"toolbox/pkg/envutil"
)

// Config is the immutable launch input, derived once from the environment
// and CLI flags at launcher start.
type Config struct {
	// Image is the container image reference to launch.
	Image string

	// RealUID is the invoking user's real host UID.
	RealUID int

	// RuntimeDir is the host's per-user runtime directory.
	RuntimeDir string

	// PID is the launcher's process id, part of the handshake file name.
	PID int

	// SelfBinary is the host path of the launcher executable.
	SelfBinary string

	// Host probes host filesystem state.
	Host hostenv.Host
}

// NewConfig derives the launch configuration for the current process.
func NewConfig(imageRef string) (Config, error) {
	runtimeDir, err := envutil.Required(envutil.RuntimeDirEnvVar)
	if err != nil {
		return Config{}, err
	}
	self, err := selfBinary()
	if err != nil {
		return Config{}, err
	}
	return Config{
		Image:      imageRef,
		RealUID:    os.Getuid(),
		RuntimeDir: runtimeDir,
		PID:        os.Getpid(),
		SelfBinary: self,
	}, nil
}

// selfBinary resolves the launcher's own executable path so it can be
// bind-mounted into the container as the entrypoint.
func selfBinary() (string, error) {
	if p, err := os.Readlink("/proc/self/exe"); err == nil {
		return p, nil
	}
	p, err := os.Executable()
	if err != nil {
		return "", fmt.Errorf("resolve own executable: %w", err)
	}
	return p, nil
}

// Run performs one launch. On success it never returns: the process image
// has been replaced by the container runtime and the interactive session
// owns the terminal from then on.
func Run(imageRef string) error {
	cfg, err := NewConfig(imageRef)
	if err != nil {
		return err
	}

	if err := image.Ensure(cfg.Image); err != nil {
		return err
	}
	// Metadata is informational only; a decode failure must not block the
	// launch of an image the runtime just confirmed present.
	if md, err := image.Inspect(cfg.Image); err != nil {
		log.Debugf("image metadata unavailable: %v", err)
	} else {
		log.Infof("using image %s (%s/%s)", md.Digest, md.Platform.OS, md.Platform.Architecture)
	}

	username, err := envutil.Required(envutil.UserEnvVar)
	if err != nil {
		return err
	}

	stateFile := handshake.NewFileName(cfg.PID)
	args, err := BuildPlan(cfg, stateFile)
	if err != nil {
		return err
	}

	st := handshake.State{
		Username:        username,
		UID:             uint32(cfg.RealUID),
		OSTreeBasedHost: cfg.Host.IsOSTreeBased(),
	}
	if err := handshake.Write(cfg.RuntimeDir, stateFile, st); err != nil {
		return err
	}

	log.Infof("running %s %s", podman.Binary(), strings.Join(args, " "))
	return podman.Exec(args)
}

package launcher

import (
	"fmt"

	"toolbox/pkg/envutil"
	"toolbox/pkg/errors"
)

// MaxUIDCount is the size of the container-side UID range. The three
// mapping triples below partition [0, MaxUIDCount) exactly once.
const MaxUIDCount = 65536

// EntrypointPath is where the launcher binary reappears inside the
// container, bind-mounted so the image does not need to ship it.
const EntrypointPath = "/toolbox.entrypoint"

const (
	containerName     = "coreos-toolbox"
	containerHostname = "toolbox"
)

// HostMountPrefix is where host paths are re-exposed inside the container.
const HostMountPrefix = "/host"

// devicePaths are mounted into the container at identical paths, each one
// only when it exists on the host at plan time.
var devicePaths = []string{"/dev/bus", "/dev/dri", "/dev/fuse"}

// hostPaths are always re-exposed under /host.
var hostPaths = []string{"/usr", "/var", "/etc", "/run"}

// traditionalHostPaths are re-exposed under /host only on non-image-based
// hosts; image-based hosts keep user data reachable via /sysroot instead.
var traditionalHostPaths = []string{"/media", "/mnt", "/home", "/srv"}

// UIDMaps returns the three user-namespace mapping arguments for the real
// host UID: the real UID becomes container root, UIDs below it shift up by
// one, and the remainder map through shifted by one as well.
//
// uid must be in [1, MaxUIDCount); 0 would make the second range empty and
// anything at or above MaxUIDCount would push the third range out of bounds.
func UIDMaps(uid int) ([]string, error) {
	if uid < 1 || uid >= MaxUIDCount {
		return nil, fmt.Errorf("uid %d: %w", uid, errors.ErrUIDOutOfRange)
	}
	return []string{
		fmt.Sprintf("--uidmap=%d:0:1", uid),
		fmt.Sprintf("--uidmap=0:1:%d", uid),
		fmt.Sprintf("--uidmap=%d:%d:%d", uid+1, uid+1, MaxUIDCount-uid),
	}, nil
}

// BuildPlan computes the full, ordered runtime argument list for one
// launch. The plan is a pure function of the config, the handshake file
// name, and the host state probed at call time.
func BuildPlan(cfg Config, stateFile string) ([]string, error) {
	args := []string{
		"run", "--rm", "-ti",
		"--hostname", containerHostname,
		"--name", containerName,
		"--network", "host",
		"--privileged",
		"--security-opt", "label-disable",
	}

	args = append(args, fmt.Sprintf("--volume=%s:%s:rslave", cfg.SelfBinary, EntrypointPath))

	maps, err := UIDMaps(cfg.RealUID)
	if err != nil {
		return nil, err
	}
	args = append(args, maps...)

	// TODO: detect which devices the invoking user can actually access
	// instead of mounting every present candidate.
	for _, p := range devicePaths {
		if cfg.Host.PathExists(p) {
			args = append(args, fmt.Sprintf("--volume=%s:%s:rslave", p, p))
		}
	}

	for _, p := range hostPaths {
		args = append(args, fmt.Sprintf("--volume=%s:%s%s:rslave", p, HostMountPrefix, p))
	}
	if cfg.Host.IsOSTreeBased() {
		args = append(args, fmt.Sprintf("--volume=/sysroot:%s/sysroot:rslave", HostMountPrefix))
	} else {
		for _, p := range traditionalHostPaths {
			args = append(args, fmt.Sprintf("--volume=%s:%s%s:rslave", p, HostMountPrefix, p))
		}
	}

	for _, n := range envutil.PreservedEnv {
		v, ok, err := envutil.Lookup(n)
		if err != nil {
			return nil, err
		}
		if !ok {
			continue
		}
		args = append(args, fmt.Sprintf("--env=%s=%s", n, v))
	}
	args = append(args, fmt.Sprintf("--env=%s=%s", envutil.StateFileEnvVar, stateFile))

	args = append(args, "--entrypoint="+EntrypointPath)
	args = append(args, cfg.Image)
	return args, nil
}

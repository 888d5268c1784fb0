// Package hostenv answers the host-facing questions that shape a launch:
// whether the host is an image-based (atomically updated) OS, and whether
// candidate mount paths exist.
package hostenv

import (
	"path/filepath"

	"toolbox/pkg/fileutil"
)

// OSTreeBootedPath is the marker whose presence identifies an
// image-based host.
const OSTreeBootedPath = "/run/ostree-booted"

// Host probes the host filesystem. Root optionally re-bases all probes
// under a different directory; the zero value probes the real host.
type Host struct {
	Root string
}

// IsOSTreeBased reports whether the host is an image-based OS.
func (h Host) IsOSTreeBased() bool {
	return h.PathExists(OSTreeBootedPath)
}

// PathExists reports whether the absolute host path exists.
func (h Host) PathExists(path string) bool {
	return fileutil.Exists(h.resolve(path))
}

func (h Host) resolve(path string) string {
	if h.Root == "" {
		return path
	}
	return filepath.Join(h.Root, path)
}

// Package handshake carries host identity across the container boundary.
//
// The launcher serializes a State to a uniquely named file in the host
// runtime directory before the container runtime is started, and passes the
// file name to the container via the TOOLBOX_STATEFILE environment variable.
// The entrypoint reads the file back through the /host mount. One writer,
// one reader, ordered by process sequencing; the file is never mutated.
package handshake

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"toolbox/pkg/errors"
	"toolbox/pkg/fileutil"
	"toolbox/pkg/idutil"
)

// FileNamePrefix is the common prefix of all handshake file names.
const FileNamePrefix = "toolbox-data"

// State is the identity record handed from launcher to entrypoint.
type State struct {
	// Username is the invoking host user's login name.
	Username string `json:"username"`

	// UID is the invoking host user's real UID.
	UID uint32 `json:"uid"`

	// OSTreeBasedHost records whether the host is an image-based OS,
	// so in-container tooling can tell which /host layout it sees.
	OSTreeBasedHost bool `json:"ostree_based_host"`
}

// NewFileName returns a handshake file name unique to one invocation,
// formatted as toolbox-data-<pid>-<hex-random>.
func NewFileName(pid int) string {
	return fmt.Sprintf("%s-%d-%s", FileNamePrefix, pid, idutil.RandomHex())
}

// Write serializes the state to dir/name and flushes it to storage.
// It must complete before the container runtime is started.
func Write(dir, name string, st State) error {
	data, err := json.Marshal(st)
	if err != nil {
		return fmt.Errorf("%w: %v", errors.ErrHandshakeWrite, err)
	}
	if err := fileutil.WriteFileSync(filepath.Join(dir, name), data, 0o600); err != nil {
		return fmt.Errorf("%w: %v", errors.ErrHandshakeWrite, err)
	}
	return nil
}

// Read deserializes a state from the given path.
func Read(path string) (State, error) {
	var st State
	data, err := os.ReadFile(path)
	if err != nil {
		return st, fmt.Errorf("%w: %v", errors.ErrHandshakeRead, err)
	}
	if err := json.Unmarshal(data, &st); err != nil {
		return st, fmt.Errorf("%w: %v", errors.ErrHandshakeParse, err)
	}
	return st, nil
}

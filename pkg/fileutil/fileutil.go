// Package fileutil provides file operation utilities.
//
// This package contains the small set of file operations shared by both
// toolbox phases: existence probes used when deciding which host paths to
// mount, and a flushed write used for the handshake state file.
package fileutil

import (
	"fmt"
	"os"
)

// Exists reports whether the given path exists. Any stat error other than
// non-existence is treated as absent; callers only need a yes/no answer to
// decide whether a path is mountable.
func Exists(path string) bool {
	_, err := os.Stat(path)
	return err == nil
}

// WriteFileSync writes data to a file and flushes it to storage before
// returning. The file is guaranteed fully written once this returns, which
// establishes the happens-before ordering the handshake protocol relies on:
// the reader process is only started after this call completes.
func WriteFileSync(path string, data []byte, perm os.FileMode) error {
	f, err := os.OpenFile(path, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, perm)
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}
	if _, err := f.Write(data); err != nil {
		_ = f.Close()
		return fmt.Errorf("write %s: %w", path, err)
	}
	if err := f.Sync(); err != nil {
		_ = f.Close()
		return fmt.Errorf("sync %s: %w", path, err)
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("close %s: %w", path, err)
	}
	return nil
}

package fileutil

import (
	"os"
	"path/filepath"
	"testing"
)

func TestExists(t *testing.T) {
	dir := t.TempDir()

	if Exists(filepath.Join(dir, "missing")) {
		t.Fatalf("missing path reported present")
	}

	path := filepath.Join(dir, "present")
	if err := os.WriteFile(path, []byte("x"), 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}
	if !Exists(path) {
		t.Fatalf("present path reported missing")
	}
}

func TestWriteFileSync(t *testing.T) {
	path := filepath.Join(t.TempDir(), "state")
	if err := WriteFileSync(path, []byte(`{"uid":1000}`), 0o600); err != nil {
		t.Fatalf("write: %v", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read back: %v", err)
	}
	if string(data) != `{"uid":1000}` {
		t.Fatalf("unexpected content %q", data)
	}
}

func TestWriteFileSyncMissingDir(t *testing.T) {
	err := WriteFileSync(filepath.Join(t.TempDir(), "nope", "state"), nil, 0o600)
	if err == nil {
		t.Fatalf("expected error for missing parent directory")
	}
}

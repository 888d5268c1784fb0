package hostenv

import (
	"os"
	"path/filepath"
	"testing"
)

func TestIsOSTreeBased(t *testing.T) {
	root := t.TempDir()
	h := Host{Root: root}

	if h.IsOSTreeBased() {
		t.Fatalf("host without marker reported as image-based")
	}

	if err := os.MkdirAll(filepath.Join(root, "run"), 0o755); err != nil {
		t.Fatalf("mkdir: %v", err)
	}
	if err := os.WriteFile(filepath.Join(root, OSTreeBootedPath), nil, 0o644); err != nil {
		t.Fatalf("write marker: %v", err)
	}

	if !h.IsOSTreeBased() {
		t.Fatalf("host with marker not reported as image-based")
	}
}

func TestPathExists(t *testing.T) {
	root := t.TempDir()
	h := Host{Root: root}

	if h.PathExists("/dev/dri") {
		t.Fatalf("missing path reported present")
	}

	if err := os.MkdirAll(filepath.Join(root, "dev", "dri"), 0o755); err != nil {
		t.Fatalf("mkdir: %v", err)
	}
	if !h.PathExists("/dev/dri") {
		t.Fatalf("present path reported missing")
	}
}

package handshake

import (
	"os"
	"path/filepath"
	"regexp"
	"testing"

	"github.com/stretchr/testify/require"

	"toolbox/pkg/errors"
)

func TestRoundTrip(t *testing.T) {
	states := []State{
		{Username: "alice", UID: 1000, OSTreeBasedHost: false},
		{Username: "алиса", UID: 1, OSTreeBasedHost: true},
		{Username: "टूलबॉक्स", UID: 65535, OSTreeBasedHost: false},
	}
	for _, st := range states {
		t.Run(st.Username, func(t *testing.T) {
			dir := t.TempDir()
			require.NoError(t, Write(dir, "toolbox-data-123-abc", st))

			got, err := Read(filepath.Join(dir, "toolbox-data-123-abc"))
			require.NoError(t, err)
			require.Equal(t, st, got)
		})
	}
}

func TestWriteEncoding(t *testing.T) {
	dir := t.TempDir()
	st := State{Username: "alice", UID: 1000, OSTreeBasedHost: false}
	require.NoError(t, Write(dir, "toolbox-data-123-abc", st))

	data, err := os.ReadFile(filepath.Join(dir, "toolbox-data-123-abc"))
	require.NoError(t, err)
	require.JSONEq(t, `{"username":"alice","uid":1000,"ostree_based_host":false}`, string(data))
}

func TestNewFileNameFormat(t *testing.T) {
	name := NewFileName(123)
	require.Regexp(t, regexp.MustCompile(`^toolbox-data-123-[0-9a-f]{8}$`), name)
}

func TestReadMissingFile(t *testing.T) {
	_, err := Read(filepath.Join(t.TempDir(), "toolbox-data-1-0"))
	require.ErrorIs(t, err, errors.ErrHandshakeRead)
}

func TestReadMalformedContent(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "toolbox-data-1-0")
	require.NoError(t, os.WriteFile(path, []byte("not json"), 0o600))

	_, err := Read(path)
	require.ErrorIs(t, err, errors.ErrHandshakeParse)
}

func TestWriteToMissingDir(t *testing.T) {
	err := Write(filepath.Join(t.TempDir(), "nope"), "toolbox-data-1-0", State{Username: "alice"})
	require.ErrorIs(t, err, errors.ErrHandshakeWrite)
}

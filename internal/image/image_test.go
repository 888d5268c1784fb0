package image

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

var inspectFixture = `[
  {
    "Id": "` + fixtureHex + `",
    "Digest": "sha256:` + fixtureHex + `",
    "Architecture": "amd64",
    "Os": "linux",
    "Config": {
      "Env": ["PATH=/usr/bin", "container=oci"],
      "Cmd": ["/bin/bash"]
    }
  }
]`

var fixtureHex = strings.Repeat("ab", 32)

func TestParseInspect(t *testing.T) {
	md, err := parseInspect([]byte(inspectFixture))
	require.NoError(t, err)

	require.Equal(t, "sha256:"+fixtureHex, md.Digest.String())
	require.Equal(t, "linux", md.Platform.OS)
	require.Equal(t, "amd64", md.Platform.Architecture)
	require.Contains(t, md.Config.Env, "container=oci")
	require.Equal(t, []string{"/bin/bash"}, md.Config.Cmd)
}

// Older podman versions omit the registry digest for locally built images;
// the bare image ID still identifies the content.
func TestParseInspectDerivesDigestFromID(t *testing.T) {
	data := `[{"Id": "` + fixtureHex + `", "Architecture": "arm64", "Os": "linux"}]`

	md, err := parseInspect([]byte(data))
	require.NoError(t, err)
	require.Equal(t, "sha256:"+fixtureHex, md.Digest.String())
}

func TestParseInspectRejectsBadInput(t *testing.T) {
	for name, data := range map[string]string{
		"not json":    "podman: command not found",
		"empty array": "[]",
		"bad digest":  `[{"Id": "zzz"}]`,
	} {
		t.Run(name, func(t *testing.T) {
			_, err := parseInspect([]byte(data))
			require.Error(t, err)
		})
	}
}

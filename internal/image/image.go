// Package image guarantees the requested container image is present in the
// runtime's local storage before launch, and decodes its metadata.
package image

import (
	"encoding/json"
	"fmt"
	"os"
	"os/exec"

	"github.com/opencontainers/go-digest"
	ocispec "github.com/opencontainers/image-spec/specs-go/v1"

	"toolbox/internal/podman"
	"toolbox/pkg/errors"
)

// Kind selects what a presence check inspects.
type Kind string

const (
	// KindImage checks local image storage.
	KindImage Kind = "image"

	// KindContainer checks existing containers.
	KindContainer Kind = "container"
)

// Metadata describes a locally stored image.
type Metadata struct {
	// Digest identifies the image content.
	Digest digest.Digest

	// Platform is the image's target platform.
	Platform ocispec.Platform

	// Config is the image's OCI runtime configuration.
	Config ocispec.ImageConfig
}

// inspectEntry is the subset of podman's inspect output toolbox reads.
type inspectEntry struct {
	ID           string              `json:"Id"`
	Digest       digest.Digest       `json:"Digest"`
	Architecture string              `json:"Architecture"`
	Os           string              `json:"Os"`
	Config       ocispec.ImageConfig `json:"Config"`
}

// Has reports whether the runtime knows the named image or container.
// Presence is the runtime's exit status; output is discarded.
func Has(kind Kind, name string) (bool, error) {
	cmd := podman.Command("inspect", "--type", string(kind), name)
	if err := cmd.Run(); err != nil {
		if _, ok := err.(*exec.ExitError); ok {
			return false, nil
		}
		return false, fmt.Errorf("inspect %s %s: %w", kind, name, err)
	}
	return true, nil
}

// Ensure pulls the named image unless it is already present. Repeated calls
// with a present image are no-ops; pull progress goes to the terminal.
func Ensure(name string) error {
	present, err := Has(KindImage, name)
	if err != nil {
		return err
	}
	if present {
		return nil
	}
	cmd := podman.Command("pull", name)
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr
	if err := cmd.Run(); err != nil {
		return fmt.Errorf("%w: pull %s: %v", errors.ErrImagePull, name, err)
	}
	return nil
}

// Inspect returns metadata for a locally present image.
func Inspect(name string) (*Metadata, error) {
	out, err := podman.Command("inspect", "--type", "image", "--format", "json", name).Output()
	if err != nil {
		return nil, fmt.Errorf("inspect image %s: %w", name, err)
	}
	return parseInspect(out)
}

// parseInspect decodes the JSON array podman inspect emits. The image ID is
// a bare sha256 hex string; the registry digest is preferred when recorded.
func parseInspect(data []byte) (*Metadata, error) {
	var entries []inspectEntry
	if err := json.Unmarshal(data, &entries); err != nil {
		return nil, fmt.Errorf("decode inspect output: %w", err)
	}
	if len(entries) == 0 {
		return nil, fmt.Errorf("decode inspect output: no entries")
	}
	e := entries[0]

	d := e.Digest
	if d == "" {
		d = digest.NewDigestFromEncoded(digest.SHA256, e.ID)
	}
	if err := d.Validate(); err != nil {
		return nil, fmt.Errorf("image digest %q: %w", d, err)
	}

	return &Metadata{
		Digest: d,
		Platform: ocispec.Platform{
			Architecture: e.Architecture,
			OS:           e.Os,
		},
		Config: e.Config,
	}, nil
}

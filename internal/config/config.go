// Package config resolves the launcher's configuration.
//
// There is deliberately no mutable global state: the default image can be
// overridden per user through a small dotenv-style file in the user config
// directory, and the final value is resolved once at process start with
// the precedence CLI flag > config file > built-in default.
package config

import (
	"os"
	"path/filepath"

	"github.com/joho/godotenv"
)

// DefaultImage is the built-in toolbox image reference.
const DefaultImage = "registry.fedoraproject.org/f30/fedora-toolbox:30"

const (
	configDirName  = "toolbox"
	configFileName = "toolbox.conf"

	// ImageKey is the config-file key overriding the default image.
	ImageKey = "IMAGE"
)

// File returns the path of the user's toolbox config file.
func File() (string, error) {
	dir, err := os.UserConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, configDirName, configFileName), nil
}

// Image resolves the image reference to launch. flagValue wins when the
// flag was given explicitly; otherwise the config file's IMAGE entry is
// used when present, and the built-in default last.
func Image(flagValue string, flagSet bool) string {
	if flagSet {
		return flagValue
	}
	path, err := File()
	if err != nil {
		return DefaultImage
	}
	if img := imageFromFile(path); img != "" {
		return img
	}
	return DefaultImage
}

// imageFromFile reads the IMAGE entry from a config file. A missing or
// unreadable file is not an error; the caller falls back to the default.
func imageFromFile(path string) string {
	vals, err := godotenv.Read(path)
	if err != nil {
		return ""
	}
	return vals[ImageKey]
}

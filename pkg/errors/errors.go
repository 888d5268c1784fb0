// Package errors provides standard error types for toolbox.
//
// These sentinel errors allow callers to check for specific error conditions
// using errors.Is(), enabling programmatic error handling. Every failure in
// either phase is terminal for the current process; nothing is retried.
package errors

import "errors"

// Environment errors
var (
	// ErrMissingEnvVar indicates a required environment variable is unset.
	ErrMissingEnvVar = errors.New("required environment variable is unset")

	// ErrInvalidEncoding indicates an environment value is not valid UTF-8.
	ErrInvalidEncoding = errors.New("environment value is not valid UTF-8")
)

// Launcher errors
var (
	// ErrImagePull indicates the runtime failed to pull the requested image.
	ErrImagePull = errors.New("image pull failed")

	// ErrUIDOutOfRange indicates the real UID cannot be expressed by the
	// user-namespace mapping (it must be in [1, 65536)).
	ErrUIDOutOfRange = errors.New("uid outside mappable range")

	// ErrHandshakeWrite indicates the handshake state file could not be written.
	ErrHandshakeWrite = errors.New("handshake write failed")

	// ErrLaunchFailed indicates the runtime invocation could not replace
	// the current process image.
	ErrLaunchFailed = errors.New("container launch failed")
)

// Entrypoint errors
var (
	// ErrHandshakeRead indicates the handshake state file could not be read.
	ErrHandshakeRead = errors.New("handshake read failed")

	// ErrHandshakeParse indicates the handshake state file content is malformed.
	ErrHandshakeParse = errors.New("handshake parse failed")

	// ErrUserCreation indicates the container's user-management tool exited non-zero.
	ErrUserCreation = errors.New("user creation failed")

	// ErrShellExec indicates neither the resolved shell nor the fallback
	// shell could replace the entrypoint process image.
	ErrShellExec = errors.New("shell exec failed")
)

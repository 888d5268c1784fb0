// Package idutil provides random suffix generation for per-invocation
// file names.
//
// Handshake file names must be collision-resistant across concurrent
// toolbox invocations sharing one runtime directory, so each name carries
// the launcher pid plus a random hex suffix produced here.
package idutil

import (
	"crypto/rand"
	"encoding/hex"
)

// suffixBytes is the number of random bytes in a suffix (8 hex characters).
const suffixBytes = 4

// RandomHex returns a random lowercase hex string of 2*suffixBytes characters.
func RandomHex() string {
	b := make([]byte, suffixBytes)
	if _, err := rand.Read(b); err != nil {
		// Fallback to a fixed suffix if random generation fails.
		// This should never happen in practice.
		return "00000000"
	}
	return hex.EncodeToString(b)
}

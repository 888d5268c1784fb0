package idutil

import (
	"regexp"
	"testing"
)

func TestRandomHexFormat(t *testing.T) {
	re := regexp.MustCompile(`^[0-9a-f]{8}$`)
	for i := 0; i < 100; i++ {
		if s := RandomHex(); !re.MatchString(s) {
			t.Fatalf("malformed suffix %q", s)
		}
	}
}

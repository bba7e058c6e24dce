package analysis

import (
	"fmt"

	"github.com/zeebo/xxh3"
)

// Fingerprint identifies a sequence in logs without printing it: its length
// and a 64-bit xxh3 hash.
func Fingerprint(seq string) string {
	return fmt.Sprintf("%d:%016x", len(seq), xxh3.HashString(seq))
}

package store

import (
	"crypto/sha256"
	"fmt"
	"sort"
	"strings"
)

// HashContent returns the hex SHA-256 of a file's bytes.
func HashContent(content []byte) string {
	return fmt.Sprintf("%x", sha256.Sum256(content))
}

// ComputeOptionsHash computes a deterministic fingerprint of the settings
// that affect rewrite output. Keys are sorted, so map order does not matter.
// A file is rewritten again when either its content hash or this
// fingerprint changes.
func ComputeOptionsHash(settings map[string]string) string {
	keys := make([]string, 0, len(settings))
	for k := range settings {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	h := sha256.New()
	for _, k := range keys {
		fmt.Fprintf(h, "%s=%s\n", k, strings.ReplaceAll(settings[k], "\n", `\n`))
	}
	return fmt.Sprintf("%x", h.Sum(nil))
}

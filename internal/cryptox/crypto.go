// Package cryptox holds the client's small cryptographic helpers.
package cryptox

import (
	"encoding/hex"
	"strings"

	"golang.org/x/crypto/blake2b"
)

// fingerprintBytes is how much of the digest is shown.
const fingerprintBytes = 10

// Fingerprint returns a short, colon-separated hex digest of a configured
// public key so the user can tell keys apart on the dashboard. Surrounding
// whitespace is ignored. It is an identifier only; nothing is verified.
func Fingerprint(key string) string {
	sum := blake2b.Sum256([]byte(strings.TrimSpace(key)))
	h := hex.EncodeToString(sum[:fingerprintBytes])

	parts := make([]string, 0, fingerprintBytes)
	for i := 0; i < len(h); i += 2 {
		parts = append(parts, h[i:i+2])
	}
	return strings.Join(parts, ":")
}

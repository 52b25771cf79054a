package numeral

import (
	"crypto/sha256"
	"encoding/hex"
)

// Hash domains. Every content-addressed identifier in the system is a
// SHA-256 over a domain prefix plus canonical JSON, so identifiers from
// different domains can never collide even for identical payloads.
// Changing a domain string invalidates every identifier derived under it.
const (
	// DomainCatalog scopes catalog content hashes.
	DomainCatalog = "athena/catalog/v1"
	// DomainPuzzle scopes puzzle identifiers.
	DomainPuzzle = "athena/puzzle/v1"
)

// ContentID derives a hex-encoded content identifier from fields under
// the given domain. Identical fields always produce identical IDs; any
// field difference, or a different domain, produces a different ID.
func ContentID(domain string, fields map[string]any) (string, error) {
	canonical, err := MarshalCanonical(fields)
	if err != nil {
		return "", err
	}
	return hashWithDomain(domain, canonical), nil
}

// hashWithDomain computes SHA-256 over domain || 0x00 || data. The NUL
// separator keeps domain/payload boundaries unambiguous.
func hashWithDomain(domain string, data []byte) string {
	h := sha256.New()
	h.Write([]byte(domain))
	h.Write([]byte{0x00})
	h.Write(data)
	return hex.EncodeToString(h.Sum(nil))
}

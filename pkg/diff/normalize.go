package diff

import (
	"path/filepath"
	"strings"
)

// NormalizeIdentity canonicalizes a raw entry path into the identity key
// used to match entries across snapshots. Redundant "./" prefixes and
// segments are stripped, separators collapse to forward slashes, and case
// is preserved. Two raw paths that normalize to the same key describe the
// same slot. Malformed input passes through best-effort; the function
// never fails.
func NormalizeIdentity(raw string) string {
	if raw == "" {
		return ""
	}

	p := filepath.ToSlash(raw)

	// Collapse duplicate slashes and "." segments without touching ".."
	// or case. strings.Split keeps this independent of the host platform.
	parts := strings.Split(p, "/")
	cleaned := parts[:0]
	for _, part := range parts {
		if part == "" || part == "." {
			continue
		}
		cleaned = append(cleaned, part)
	}

	if len(cleaned) == 0 {
		return ""
	}
	key := strings.Join(cleaned, "/")

	// Preserve a root-anchored identity so absolute and relative inputs
	// stay distinct.
	if strings.HasPrefix(p, "/") {
		key = "/" + key
	}
	return key
}

// parentIdentity returns the identity key of the parent slot, or ""
// for top-level identities.
func parentIdentity(identity string) string {
	idx := strings.LastIndex(identity, "/")
	if idx <= 0 {
		return ""
	}
	return identity[:idx]
}

// identityDepth returns the number of path components in an identity key
func identityDepth(identity string) int {
	if identity == "" {
		return 0
	}
	return strings.Count(strings.TrimPrefix(identity, "/"), "/") + 1
}

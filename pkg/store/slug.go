package store

import (
	"crypto/sha256"
	"encoding/hex"
	"strings"
	"unicode"
)

// SlugifyOptions controls slug generation.
type SlugifyOptions struct {
	// MaxLength truncates the slug after normalization. 0 means no limit.
	MaxLength int
}

// Slugify converts arbitrary text into a stable, URL-safe slug.
// Deterministic: the same input always yields the same slug.
func Slugify(text string, opts SlugifyOptions) string {
	var b strings.Builder
	lastDash := true // suppress leading dashes
	for _, r := range strings.ToLower(text) {
		switch {
		case r >= 'a' && r <= 'z', r >= '0' && r <= '9':
			b.WriteRune(r)
			lastDash = false
		case unicode.IsSpace(r), r == '-', r == '_', r == '/', r == '.':
			if !lastDash {
				b.WriteByte('-')
				lastDash = true
			}
		default:
			// Drop everything else (punctuation, emoji, control chars).
		}
	}
	slug := strings.TrimRight(b.String(), "-")
	if slug == "" {
		slug = "untitled"
	}
	if opts.MaxLength > 0 && len(slug) > opts.MaxLength {
		slug = strings.TrimRight(slug[:opts.MaxLength], "-")
	}
	return slug
}

// cloudIDSuffix derives a stable 8-hex-char suffix from a cloud identity.
// Used to disambiguate project folders when two cloud projects slugify to
// the same name. Hash-derived rather than a counter so folder selection is
// idempotent across restarts.
func cloudIDSuffix(cloudID string) string {
	sum := sha256.Sum256([]byte(cloudID))
	return hex.EncodeToString(sum[:4])
}

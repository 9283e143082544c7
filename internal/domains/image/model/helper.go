package model

import "strings"

// PublicURL resolves a stored URL against the configured serving base.
// Absolute storage URLs (already-hosted CDN objects) pass through untouched;
// relative keys are prefixed so the core never hardcodes a host.
func PublicURL(baseURL, stored string) string {
	if strings.HasPrefix(stored, "http://") || strings.HasPrefix(stored, "https://") {
		return stored
	}
	return strings.TrimRight(baseURL, "/") + "/" + strings.TrimLeft(stored, "/")
}

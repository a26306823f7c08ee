package repository

import (
	"net/url"
	"strings"
)

// SanitizeRemoteURL strips credentials and the ".git" suffix from a remote
// URL so it can serve as the repository's stable identity. Applying it to
// an already-sanitized URL is a no-op.
func SanitizeRemoteURL(remoteURL string) string {
	trimmed := strings.TrimSuffix(strings.TrimSuffix(remoteURL, "/"), ".git")

	parsed, err := url.Parse(trimmed)
	if err != nil || parsed.Scheme == "" {
		return trimmed
	}

	parsed.User = nil
	parsed.RawQuery = ""
	parsed.Fragment = ""
	return parsed.String()
}

// Package enrichment provides task handlers for enrichment operations.
package enrichment

import "strings"

// TruncateDiff truncates a diff to a reasonable length for LLM processing.
func TruncateDiff(diff string, maxLength int) string {
	if len(diff) <= maxLength {
		return diff
	}
	truncationNotice := "\n\n[diff truncated due to size]"
	return diff[:maxLength-len(truncationNotice)] + truncationNotice
}

// MaxDiffLength is the maximum characters for a commit diff (~25k tokens).
const MaxDiffLength = 100_000

// hasSubstantiveChange reports whether a diff carries any content worth an
// LLM enrichment call. Git emits a non-empty diff header for merge commits
// and mode-only changes even when no line content changed, so checking for
// an empty string alone lets those slip through and burn a model call on
// nothing.
func hasSubstantiveChange(diff string) bool {
	for _, line := range strings.Split(diff, "\n") {
		trimmed := strings.TrimSpace(line)
		if strings.HasPrefix(trimmed, "+") || strings.HasPrefix(trimmed, "-") {
			if trimmed != "+++" && trimmed != "---" && !strings.HasPrefix(trimmed, "+++ ") && !strings.HasPrefix(trimmed, "--- ") {
				return true
			}
		}
	}
	return false
}

package app

import (
	"regexp"
	"strings"
)

// Snapshot upserts carry whole match-detail blobs as parameters; the
// traced statement text stays bounded regardless.
const maxTracedQueryLen = 512

var collapseWhitespace = regexp.MustCompile(`\s+`)

func formatDBQueryForTrace(query string) string {
	normalized := collapseWhitespace.ReplaceAllString(strings.TrimSpace(query), " ")
	if len(normalized) > maxTracedQueryLen {
		return normalized[:maxTracedQueryLen] + "..."
	}
	return normalized
}

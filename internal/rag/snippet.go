package rag

import "strings"

// snippetMaxLen bounds reference snippets.
const snippetMaxLen = 100

// ExtractSnippet returns text unchanged when it fits within max bytes.
// Longer text is truncated at the last word boundary before max and an
// ellipsis marker is appended.
func ExtractSnippet(text string, max int) string {
	if len(text) <= max {
		return text
	}
	snippet := text[:max]
	if idx := strings.LastIndex(snippet, " "); idx > 0 {
		snippet = snippet[:idx]
	}
	return snippet + "..."
}

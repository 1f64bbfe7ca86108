package usecase

import "strings"

const fence = "```"

// extractJSON locates the JSON payload inside free-form model text.
// Preference order: a ```json fence, then any ``` fence, then the whole
// trimmed text. Pure function; validity of the result is the caller's call.
func extractJSON(text string) string {
	if i := strings.Index(text, fence+"json"); i >= 0 {
		rest := text[i+len(fence+"json"):]
		if j := strings.Index(rest, fence); j >= 0 {
			return strings.TrimSpace(rest[:j])
		}
		return strings.TrimSpace(rest)
	}

	if i := strings.Index(text, fence); i >= 0 {
		rest := text[i+len(fence):]
		if j := strings.Index(rest, fence); j >= 0 {
			return strings.TrimSpace(rest[:j])
		}
		return strings.TrimSpace(rest)
	}

	return strings.TrimSpace(text)
}

package resolver

import "strings"

// scrubNull treats absent values and the literal string "null" (which models
// emit despite instructions) as nil.
func scrubNull(v *string) *string {
	if v == nil {
		return nil
	}
	trimmed := strings.TrimSpace(*v)
	if trimmed == "" || strings.EqualFold(trimmed, "null") {
		return nil
	}
	return &trimmed
}

// campusHint extracts a campus area from the task description. "SGW" and
// "downtown" both anchor to the SGW campus.
func campusHint(description string) string {
	lower := strings.ToLower(description)
	switch {
	case strings.Contains(description, "SGW") || strings.Contains(lower, "downtown"):
		return "SGW Campus"
	case strings.Contains(description, "Loyola"):
		return "Loyola Campus"
	default:
		return ""
	}
}

func containsFold(s, substr string) bool {
	return strings.Contains(strings.ToLower(s), strings.ToLower(substr))
}

func strPtr(s string) *string {
	return &s
}

package parser

import "strings"

// NormalizeAnswer applies the per-answer fallback rule. Source files
// inconsistently leave an unanswered cell as the literal string "None"
// versus truly empty; both mean "no answer, try the fallback".
func NormalizeAnswer(primary, fallback string) string {
	if primary != "" && !strings.EqualFold(primary, "None") {
		return primary
	}
	return fallback
}

package extract

import (
	"regexp"
	"strings"
)

// jsonBlockRe matches a complete markdown code fence with an optional
// language tag and captures its body.
var jsonBlockRe = regexp.MustCompile("(?s)```(?:\\w+)?\\s*(.*?)\\s*```")

// extractJSONContent strips the formatting artifacts extraction models
// wrap JSON replies in: full or ragged code fences, and an unbalanced
// trailing brace count. The result is not guaranteed to parse; callers
// still handle parse failures.
func extractJSONContent(raw string) string {
	cleaned := strings.TrimSpace(raw)

	if m := jsonBlockRe.FindStringSubmatch(cleaned); len(m) > 1 {
		cleaned = strings.TrimSpace(m[1])
	} else {
		// No complete fence; peel a ragged suffix or prefix.
		if strings.HasSuffix(cleaned, "```") {
			cleaned = strings.TrimSpace(strings.TrimSuffix(cleaned, "```"))
		}
		if strings.HasPrefix(cleaned, "```") {
			if nl := strings.Index(cleaned, "\n"); nl != -1 {
				cleaned = strings.TrimSpace(cleaned[nl+1:])
			} else {
				cleaned = strings.TrimSpace(strings.TrimPrefix(cleaned, "```"))
			}
		}
	}

	// Balance trailing braces: models truncate or over-close objects.
	diff := strings.Count(cleaned, "{") - strings.Count(cleaned, "}")
	if diff > 0 {
		cleaned += strings.Repeat("}", diff)
	} else if diff < 0 {
		excess := strings.Repeat("}", -diff)
		if strings.HasSuffix(cleaned, excess) {
			cleaned = cleaned[:len(cleaned)+diff]
		}
	}
	return cleaned
}

package impl

import (
	"fmt"
	"strings"
	"unicode/utf8"
)

// stripCodeFences removes the markdown code fences language models like to
// wrap JSON answers in.
func stripCodeFences(text string) string {
	text = strings.ReplaceAll(text, "```json", "")
	text = strings.ReplaceAll(text, "```", "")

	return strings.TrimSpace(text)
}

// joinOrString normalizes a decoded JSON value into a flat string. Lists
// are joined with sep; scalars are stringified; nil becomes empty.
func joinOrString(value any, sep string) string {
	switch v := value.(type) {
	case nil:
		return ""
	case string:
		return v
	case []any:
		parts := make([]string, 0, len(v))
		for _, item := range v {
			parts = append(parts, fmt.Sprintf("%v", item))
		}

		return strings.Join(parts, sep)
	default:
		return fmt.Sprintf("%v", v)
	}
}

// truncateUTF8 bounds text to at most limit bytes without splitting a rune.
func truncateUTF8(text string, limit int) string {
	if len(text) <= limit {
		return text
	}
	for limit > 0 && !utf8.RuneStart(text[limit]) {
		limit--
	}

	return text[:limit]
}

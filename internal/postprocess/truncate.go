package postprocess

import (
	"strings"
	"unicode"
)

const ellipsis = "…"

// truncateAtWordBoundary shortens text so that the result including the
// trailing ellipsis never exceeds maxChars runes, cutting only at
// whitespace so no word is split. Returns the text unchanged when it
// already fits.
func truncateAtWordBoundary(text string, maxChars int) (string, bool) {
	runes := []rune(text)
	if len(runes) <= maxChars {
		return text, false
	}

	budget := maxChars - len([]rune(ellipsis))
	if budget <= 0 {
		return ellipsis, true
	}

	cut := budget
	boundary := -1
	for i := cut; i > 0; i-- {
		if unicode.IsSpace(runes[i]) {
			boundary = i
			break
		}
	}
	if boundary > 0 {
		cut = boundary
	}

	trimmed := strings.TrimRightFunc(string(runes[:cut]), unicode.IsSpace)
	if trimmed == "" {
		// Single unbroken word longer than the limit: hard cut.
		trimmed = string(runes[:budget])
	}

	return trimmed + ellipsis, true
}

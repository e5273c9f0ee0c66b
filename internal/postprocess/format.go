package postprocess

import (
	"regexp"
	"strings"

	"CopyForge/internal/domain"
)

var (
	newlineRuns = regexp.MustCompile(`\n+`)
	tripleBreak = regexp.MustCompile(`\n{3,}`)
	doubleBreak = regexp.MustCompile(`\n{2,}`)
	spaceRuns   = regexp.MustCompile(`[ \t]{2,}`)
)

// formatForPlatform normalizes line-break density per the template's
// style, then applies the platform's whitespace cleanups, trimming
// leading/trailing whitespace last.
func formatForPlatform(text string, platform domain.PlatformTemplate) string {
	switch platform.LineBreakStyle {
	case domain.LineBreakShort:
		text = tripleBreak.ReplaceAllString(text, "\n\n")
	default:
		// normal: promote single newlines to paragraph breaks.
		text = newlineRuns.ReplaceAllStringFunc(text, func(run string) string {
			if len(run) == 1 {
				return "\n\n"
			}
			return run
		})
	}

	switch platform.ID {
	case "instagram":
		text = spaceRuns.ReplaceAllString(text, " ")
	case "threads":
		text = doubleBreak.ReplaceAllString(text, "\n")
	case "place":
		text = tripleBreak.ReplaceAllString(text, "\n\n")
	}

	return strings.TrimSpace(text)
}

package postprocess

import (
	"regexp"
	"strings"
	"unicode/utf8"
)

// redactBanned replaces every match of every banned phrase with a run of
// '*' equal in rune length to the matched text. Matching is
// case-insensitive and boundary-safe for phrases that start or end with
// ASCII word characters. Returns the redacted text plus the list of
// phrases that were actually hit, in input order.
func redactBanned(text string, phrases []string) (string, []string) {
	var hits []string

	for _, phrase := range phrases {
		phrase = strings.TrimSpace(phrase)
		if phrase == "" {
			continue
		}

		re, err := compilePhrase(phrase)
		if err != nil {
			continue
		}

		if !re.MatchString(text) {
			continue
		}

		hits = append(hits, phrase)
		text = re.ReplaceAllStringFunc(text, func(match string) string {
			return strings.Repeat("*", utf8.RuneCountInString(match))
		})
	}

	return text, hits
}

// compilePhrase escapes special regex characters and attaches \b only on
// sides that begin or end with ASCII word characters; Go's \b is an ASCII
// word boundary and never matches next to Hangul.
func compilePhrase(phrase string) (*regexp.Regexp, error) {
	pattern := regexp.QuoteMeta(phrase)

	first, _ := utf8.DecodeRuneInString(phrase)
	last, _ := utf8.DecodeLastRuneInString(phrase)

	if isASCIIWord(first) {
		pattern = `\b` + pattern
	}
	if isASCIIWord(last) {
		pattern += `\b`
	}

	return regexp.Compile(`(?i)` + pattern)
}

func isASCIIWord(r rune) bool {
	switch {
	case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9', r == '_':
		return true
	}
	return false
}

// unionPhrases merges domain and platform lists preserving first
// occurrence order and dropping duplicates case-insensitively.
func unionPhrases(lists ...[]string) []string {
	seen := map[string]struct{}{}
	var union []string
	for _, list := range lists {
		for _, phrase := range list {
			key := strings.ToLower(strings.TrimSpace(phrase))
			if key == "" {
				continue
			}
			if _, ok := seen[key]; ok {
				continue
			}
			seen[key] = struct{}{}
			union = append(union, strings.TrimSpace(phrase))
		}
	}
	return union
}

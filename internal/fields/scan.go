package fields

import (
	"regexp"
	"strconv"
	"strings"
)

// strategy is one tier of a fallback chain: text in, value out,
// "" meaning the tier found nothing.
type strategy func(text string) string

// firstOf evaluates strategies in order and returns the first non-empty
// result. Fallback ordering is the whole policy, so it stays explicit here.
func firstOf(text string, strategies ...strategy) string {
	for _, s := range strategies {
		if v := s(text); v != "" {
			return v
		}
	}
	return ""
}

// window returns text[start-radius : end+radius], clamped to the text bounds.
func window(text string, start, end, radius int) string {
	lo := start - radius
	if lo < 0 {
		lo = 0
	}
	hi := end + radius
	if hi > len(text) {
		hi = len(text)
	}
	return text[lo:hi]
}

var reDigit = regexp.MustCompile(`\d`)

func hasDigit(s string) bool {
	return reDigit.MatchString(s)
}

// parseDecimal parses a printed number, tolerating thousands separators.
// The document family prints "12,345.67"; commas are never decimal points.
func parseDecimal(s string) (float64, bool) {
	v, err := strconv.ParseFloat(strings.ReplaceAll(s, ",", ""), 64)
	if err != nil {
		return 0, false
	}
	return v, true
}

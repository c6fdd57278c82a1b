package fields

import (
	"regexp"
	"sort"
	"strings"
)

// reContainer matches ISO-6346-shaped container codes: 4 letters + 7 digits.
var reContainer = regexp.MustCompile(`\b[A-Z]{4}\d{7}\b`)

// Containers returns every distinct container code in the document,
// sorted ascending and joined with line breaks.
func Containers(text string) string {
	seen := map[string]struct{}{}
	for _, code := range reContainer.FindAllString(text, -1) {
		seen[code] = struct{}{}
	}
	if len(seen) == 0 {
		return ""
	}
	codes := make([]string, 0, len(seen))
	for code := range seen {
		codes = append(codes, code)
	}
	sort.Strings(codes)
	return strings.Join(codes, "\n")
}

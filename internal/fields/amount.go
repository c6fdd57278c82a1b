package fields

import (
	"fmt"
	"regexp"
	"strings"
)

// unitVetoRadius bounds how far past the number a unit marker may appear
// and still disqualify the match as a weight/volume subtotal.
const unitVetoRadius = 40

var (
	reTotalLine = regexp.MustCompile(`(?im)^\s*Total\s+([\d.,]{2,})\b`)
	reTotalAny  = regexp.MustCompile(`(?i)Total\s+([\d.,]{2,})`)
	reUnitMark  = regexp.MustCompile(`(?i)\b(KG|CD3|WEIGHT|VOLUME)\b`)
)

// TotalAmountUSD extracts the invoice's monetary total, formatted to two
// fractional digits. The guarded tier requires a line-anchored "Total" with
// no weight/volume unit nearby; the fallback drops both guards and accepts
// the first "Total <number>" anywhere. The permissive fallback is
// deliberate: a mislabeled figure beats an empty cell when no cleaner
// monetary total exists.
func TotalAmountUSD(text string) string {
	return firstOf(text, totalFromGuardedLine, totalAnywhere)
}

func totalFromGuardedLine(text string) string {
	for _, idx := range reTotalLine.FindAllStringSubmatchIndex(text, -1) {
		if unitFollows(text, idx[3]) {
			continue
		}
		v, ok := parseDecimal(text[idx[2]:idx[3]])
		if !ok {
			return ""
		}
		return fmt.Sprintf("%.2f", v)
	}
	return ""
}

// unitFollows reports whether a unit marker starts within unitVetoRadius
// characters after pos, without crossing a line break.
func unitFollows(text string, pos int) bool {
	rest := text[pos:]
	if nl := strings.IndexByte(rest, '\n'); nl >= 0 {
		rest = rest[:nl]
	}
	loc := reUnitMark.FindStringIndex(rest)
	return loc != nil && loc[0] <= unitVetoRadius
}

func totalAnywhere(text string) string {
	m := reTotalAny.FindStringSubmatch(text)
	if m == nil {
		return ""
	}
	v, ok := parseDecimal(m[1])
	if !ok {
		return ""
	}
	return fmt.Sprintf("%.2f", v)
}

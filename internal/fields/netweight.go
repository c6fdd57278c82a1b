package fields

import (
	"fmt"
	"regexp"
)

const itemWeightRadius = 400

var (
	reTotalNetWeight = regexp.MustCompile(`(?i)TOTAL\s+NET\s+WEIGHT\s*[:#]?\s*([\d.,]+)\s*KG`)
	reItemNetWeight  = regexp.MustCompile(`(?i)Item\s+Net\s+Weight\s*:\s*([\d.,]+)\s*KG`)
)

// NetWeightKG extracts the shipment's net weight in kilograms, formatted to
// three fractional digits. The printed grand total wins; otherwise per-item
// weights are aggregated, counting each distinct container code once even
// when the code is printed in multiple sections.
func NetWeightKG(text string) string {
	return firstOf(text, netWeightFromTotal, netWeightFromItems)
}

func netWeightFromTotal(text string) string {
	m := reTotalNetWeight.FindStringSubmatch(text)
	if m == nil {
		return ""
	}
	v, ok := parseDecimal(m[1])
	if !ok {
		return ""
	}
	return fmt.Sprintf("%.3f", v)
}

func netWeightFromItems(text string) string {
	total := 0.0
	seen := map[string]struct{}{}
	for _, loc := range reContainer.FindAllStringIndex(text, -1) {
		code := text[loc[0]:loc[1]]
		if _, ok := seen[code]; ok {
			continue
		}
		m := reItemNetWeight.FindStringSubmatch(window(text, loc[0], loc[1], itemWeightRadius))
		if m == nil {
			continue
		}
		if v, ok := parseDecimal(m[1]); ok {
			total += v
			seen[code] = struct{}{}
		}
	}
	if total <= 0 {
		return ""
	}
	return fmt.Sprintf("%.3f", total)
}

package fields

import "regexp"

var (
	reOrderCanonical = regexp.MustCompile(`\bCE-\d{4}-\d{2}\b`)
	reOrderLabel     = regexp.MustCompile(`(?i)Customer\s+Order\s+Number\s*[:#]?\s*([A-Za-z0-9/-]+)`)
	reOrderLead      = regexp.MustCompile(`^[A-Za-z0-9/-]+`)
)

// OrderNumber extracts the customer order number. The canonical CE-####-##
// shape wins anywhere in the text; otherwise the labeled value is captured
// and trimmed back to the canonical shape if text extraction glued garbage
// onto it.
func OrderNumber(text string) string {
	if m := reOrderCanonical.FindString(text); m != "" {
		return m
	}
	m := reOrderLabel.FindStringSubmatch(text)
	if m == nil {
		return ""
	}
	val := m[1]
	if c := reOrderCanonical.FindString(val); c != "" {
		return c
	}
	return reOrderLead.FindString(val)
}

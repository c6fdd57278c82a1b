package fields

import (
	"regexp"
	"sort"
	"strings"
)

// The same document prints the true B/L number alongside a carrier booking
// reference (prefix EBKG) of a very similar shape. Every tier below rejects
// EBKG-prefixed tokens, requires at least one digit, and vetoes tokens
// sitting within 40 characters of the phrase "BOOKING REF".

const (
	bookingRefPrefix = "EBKG"
	anchorRadius     = 300
	vetoRadius       = 40
)

var (
	reBLLabel    = regexp.MustCompile(`(?im)^\s*(?:BILL\s+OF\s+LADING\s+No\.?|B/?L\s*No\.?)\s*[:#]?\s*([A-Z0-9]{8,20})`)
	reBLToken    = regexp.MustCompile(`\b[A-Z]{3,6}[A-Z0-9]{6,12}\b`)
	reBookingRef = regexp.MustCompile(`(?i)BOOKING\s+REF`)
)

// Anchors are tried in this order; the first anchor occurrence whose window
// yields any surviving candidate decides the result.
var blAnchors = []*regexp.Regexp{
	regexp.MustCompile(`(?i)BILL OF LADING`),
	regexp.MustCompile(`(?i)RIDER PAGE`),
	regexp.MustCompile(`(?i)BILL OF LADING No`),
	regexp.MustCompile(`(?i)RIDER`),
}

// BillOfLading extracts the bill-of-lading number via a three-tier chain:
// explicit label, keyword-proximity search, then a global scan.
func BillOfLading(text string) string {
	return firstOf(text, blFromLabel, blNearAnchor, blGlobal)
}

func blFromLabel(text string) string {
	m := reBLLabel.FindStringSubmatch(text)
	if m != nil && hasDigit(m[1]) {
		return m[1]
	}
	return ""
}

func blNearAnchor(text string) string {
	for _, anchor := range blAnchors {
		for _, loc := range anchor.FindAllStringIndex(text, -1) {
			win := window(text, loc[0], loc[1], anchorRadius)
			if tok := pickCandidate(win); tok != "" {
				return tok
			}
		}
	}
	return ""
}

// pickCandidate filters the window's B/L-shaped tokens and keeps the longest
// survivor; the printed B/L code is typically longer than adjacent reference
// codes.
func pickCandidate(win string) string {
	var survivors []string
	for _, tok := range reBLToken.FindAllString(win, -1) {
		if strings.HasPrefix(tok, bookingRefPrefix) || !hasDigit(tok) {
			continue
		}
		pos := strings.Index(win, tok)
		if reBookingRef.MatchString(window(win, pos, pos+len(tok), vetoRadius)) {
			continue
		}
		survivors = append(survivors, tok)
	}
	if len(survivors) == 0 {
		return ""
	}
	sort.SliceStable(survivors, func(i, j int) bool {
		return len(survivors[i]) > len(survivors[j])
	})
	return survivors[0]
}

func blGlobal(text string) string {
	for _, loc := range reBLToken.FindAllStringIndex(text, -1) {
		tok := text[loc[0]:loc[1]]
		if strings.HasPrefix(tok, bookingRefPrefix) || !hasDigit(tok) {
			continue
		}
		if reBookingRef.MatchString(window(text, loc[0], loc[1], vetoRadius)) {
			continue
		}
		return tok
	}
	return ""
}

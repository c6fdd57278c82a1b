package fields

import (
	"regexp"
	"strings"
)

// reProduct captures the product phrase: starts at AGILITY, ends at LDPE,
// with up to 120 characters in between on the same line.
var reProduct = regexp.MustCompile(`(?i)(AGILITY[^\n]{0,120}?LDPE)`)

// Product extracts the product description, canonicalized for storage:
// trademark glyphs stripped, whitespace collapsed, upper-cased.
func Product(text string) string {
	m := reProduct.FindStringSubmatch(text)
	if m == nil {
		return ""
	}
	product := strings.ReplaceAll(m[1], "™", "")
	product = strings.Join(strings.Fields(product), " ")
	return strings.ToUpper(product)
}

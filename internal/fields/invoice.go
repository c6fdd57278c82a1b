package fields

import "regexp"

var (
	reInvoiceLine = regexp.MustCompile(`(?im)^\s*Invoice\s+(\d{6,})\b`)
	reInvoiceAny  = regexp.MustCompile(`(?i)Invoice\s*[:#]?\s*(\d{6,})\b`)
)

// InvoiceNumber extracts the invoice number: a line starting with "Invoice"
// followed by at least six digits, with a looser anywhere-match fallback.
func InvoiceNumber(text string) string {
	return firstOf(text, invoiceFromLine, invoiceAnywhere)
}

func invoiceFromLine(text string) string {
	if m := reInvoiceLine.FindStringSubmatch(text); m != nil {
		return m[1]
	}
	return ""
}

func invoiceAnywhere(text string) string {
	if m := reInvoiceAny.FindStringSubmatch(text); m != nil {
		return m[1]
	}
	return ""
}

package fields

import (
	"context"
	"strings"
	"testing"
)

// sampleInvoiceText mimics one shipment's rendered paperwork: commercial
// invoice followed by the bill of lading.
const sampleInvoiceText = `COMMERCIAL INVOICE
Invoice 000482159
Customer Order Number: CE-4821-07
Goods: AGILITY™ EC 2021 LOW DENSITY POLYETHYLENE LDPE

TCLU7395862 Item Net Weight: 24,750.000 KG
ABCU1234567 Item Net Weight: 24,750.000 KG
TOTAL NET WEIGHT: 49,500.000 KG
Total 49500.000 KG
Total 36,450.00

BILL OF LADING No. HLCUVA250614788
BOOKING REF: EBKG20250614478
`

func TestParseDocumentFullRecord(t *testing.T) {
	rec := ParseDocument(context.Background(), sampleInvoiceText)

	want := Record{
		OrderNumber:   "CE-4821-07",
		BillOfLading:  "HLCUVA250614788",
		Containers:    "ABCU1234567\nTCLU7395862",
		Product:       "AGILITY EC 2021 LOW DENSITY POLYETHYLENE LDPE",
		NetWeightKG:   "49500.000",
		TotalUSD:      "36450.00",
		InvoiceNumber: "000482159",
	}
	if rec != want {
		t.Fatalf("ParseDocument() = %+v, want %+v", rec, want)
	}
	if rec.FieldsFound() != 7 {
		t.Errorf("FieldsFound() = %d, want 7", rec.FieldsFound())
	}
}

func TestParseDocumentEmptyTextKeepsAllKeys(t *testing.T) {
	rec := ParseDocument(context.Background(), "")
	values := rec.Values()
	if len(values) != len(Columns()) {
		t.Fatalf("Values() has %d cells, want %d", len(values), len(Columns()))
	}
	for i, v := range values {
		if v != "" {
			t.Errorf("column %q = %q, want empty", Columns()[i], v)
		}
	}
	if rec.FieldsFound() != 0 {
		t.Errorf("FieldsFound() = %d, want 0", rec.FieldsFound())
	}
}

func TestParseDocumentNoProductStillSevenKeys(t *testing.T) {
	text := strings.ReplaceAll(sampleInvoiceText, "AGILITY", "UNBRANDED")
	rec := ParseDocument(context.Background(), text)
	if rec.Product != "" {
		t.Errorf("Product = %q, want empty", rec.Product)
	}
	if got := len(rec.Values()); got != 7 {
		t.Errorf("Values() has %d cells, want 7", got)
	}
}

package fields

import (
	"context"

	"golang.org/x/sync/errgroup"

	"github.com/shipdesk/shipment-ledger/constants"
)

// Record holds the seven extracted field values for one document.
// A field that was not found is the empty string; absence is not an error.
type Record struct {
	OrderNumber   string
	BillOfLading  string
	Containers    string
	Product       string
	NetWeightKG   string
	TotalUSD      string
	InvoiceNumber string
}

// Values renders the record as one ledger row, in canonical column order.
func (r Record) Values() []string {
	return []string{
		r.OrderNumber,
		r.BillOfLading,
		r.Containers,
		r.Product,
		r.NetWeightKG,
		r.TotalUSD,
		r.InvoiceNumber,
	}
}

// FieldsFound counts how many of the seven fields carry a value.
func (r Record) FieldsFound() int {
	n := 0
	for _, v := range r.Values() {
		if v != "" {
			n++
		}
	}
	return n
}

// Columns returns the canonical column headers matching Values.
func Columns() []string {
	return constants.Columns
}

// ParseDocument runs the seven field parsers over the document text and
// assembles the record. The parsers are pure, independent functions of the
// same text, so they fan out concurrently; each writes its own field.
func ParseDocument(ctx context.Context, text string) Record {
	var rec Record
	g, _ := errgroup.WithContext(ctx)
	g.Go(func() error { rec.OrderNumber = OrderNumber(text); return nil })
	g.Go(func() error { rec.BillOfLading = BillOfLading(text); return nil })
	g.Go(func() error { rec.Containers = Containers(text); return nil })
	g.Go(func() error { rec.Product = Product(text); return nil })
	g.Go(func() error { rec.NetWeightKG = NetWeightKG(text); return nil })
	g.Go(func() error { rec.TotalUSD = TotalAmountUSD(text); return nil })
	g.Go(func() error { rec.InvoiceNumber = InvoiceNumber(text); return nil })
	_ = g.Wait()
	return rec
}

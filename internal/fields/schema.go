package fields

import (
	"bytes"
	"encoding/json"
	"fmt"

	"github.com/santhosh-tekuri/jsonschema/v5"
)

// recordJSON is the machine-readable rendering of a Record for downstream
// tooling (--json output).
type recordJSON struct {
	OrderNumber   string `json:"customer_order_number"`
	BillOfLading  string `json:"bl_number"`
	Containers    string `json:"containers"`
	Product       string `json:"product"`
	NetWeightKG   string `json:"net_weight_kg"`
	TotalUSD      string `json:"final_price_usd"`
	InvoiceNumber string `json:"invoice_number"`
}

// buildRecordSchema returns a JSON-Schema (draft 2020-12 subset) describing
// the record JSON. Empty strings are legal everywhere: "not found" is a
// normal outcome.
func buildRecordSchema() map[string]any {
	props := map[string]any{
		"customer_order_number": map[string]any{"type": "string"},
		"bl_number":             map[string]any{"type": "string"},
		"containers":            map[string]any{"type": "string"},
		"product":               map[string]any{"type": "string"},
		"net_weight_kg":         map[string]any{"type": "string", "pattern": `^$|^\d+(\.\d{3})?$`},
		"final_price_usd":       map[string]any{"type": "string", "pattern": `^$|^\d+(\.\d{2})?$`},
		"invoice_number":        map[string]any{"type": "string", "pattern": `^$|^\d{6,}$`},
	}
	required := []string{
		"customer_order_number", "bl_number", "containers", "product",
		"net_weight_kg", "final_price_usd", "invoice_number",
	}
	return map[string]any{
		"type":                 "object",
		"additionalProperties": false,
		"properties":           props,
		"required":             required,
	}
}

// MarshalValidatedJSON renders the record as JSON and validates the output
// against the record schema before handing it to the caller.
func (r Record) MarshalValidatedJSON() ([]byte, error) {
	data, err := json.MarshalIndent(recordJSON{
		OrderNumber:   r.OrderNumber,
		BillOfLading:  r.BillOfLading,
		Containers:    r.Containers,
		Product:       r.Product,
		NetWeightKG:   r.NetWeightKG,
		TotalUSD:      r.TotalUSD,
		InvoiceNumber: r.InvoiceNumber,
	}, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("marshal record: %w", err)
	}
	if err := validateAgainstSchema(buildRecordSchema(), data); err != nil {
		return nil, err
	}
	return data, nil
}

// validateAgainstSchema validates data against schemaMap.
func validateAgainstSchema(schemaMap map[string]any, data []byte) error {
	b, err := json.Marshal(schemaMap)
	if err != nil {
		return fmt.Errorf("marshal schema: %w", err)
	}
	compiler := jsonschema.NewCompiler()
	if err := compiler.AddResource("record.json", bytes.NewReader(b)); err != nil {
		return fmt.Errorf("add schema: %w", err)
	}
	schema, err := compiler.Compile("record.json")
	if err != nil {
		return fmt.Errorf("compile schema: %w", err)
	}
	var v any
	if err := json.Unmarshal(data, &v); err != nil {
		return fmt.Errorf("unmarshal record: %w", err)
	}
	if err := schema.Validate(v); err != nil {
		return fmt.Errorf("record does not match schema: %w", err)
	}
	return nil
}

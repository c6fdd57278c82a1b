package constants

// Columns holds the canonical ledger headers, in the order they are
// persisted. Every appended row carries exactly these seven cells.
var Columns = []string{
	"Customer Order Number",
	"B/L Number",
	"Containers (one per line)",
	"Product",
	"Net Weight (kg)",
	"Final Price (USD)",
	"Invoice Number",
}

// DefaultSheetName is the single sheet the ledger workbook writes to.
const DefaultSheetName = "Shipments"

// DefaultLedgerPath is where the master workbook lives unless overridden.
const DefaultLedgerPath = "Master_Shipments.xlsx"

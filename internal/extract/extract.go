package extract

import (
	"log/slog"
	"path/filepath"

	"github.com/shipdesk/shipment-ledger/constants"
	"github.com/shipdesk/shipment-ledger/internal/common"
)

// ForPath picks the extractor matching the document's extension.
func ForPath(path string, log *slog.Logger) (TextExtractor, error) {
	switch constants.NormalizeExt(filepath.Ext(path)) {
	case "pdf":
		return NewPDFExtractor(log), nil
	case "txt":
		return NewPlaintextExtractor(), nil
	default:
		return nil, common.NewAppError("EXTRACT_FORMAT", "no extractor for "+filepath.Ext(path), common.ErrUnsupported)
	}
}

package ingest

import (
	"path/filepath"
	"strings"

	"github.com/shipdesk/shipment-ledger/constants"
)

// AllowedExt checks if a file extension is in the allowed set (pdf/txt).
func AllowedExt(ext string) bool {
	_, ok := constants.AllowedExtensions[constants.NormalizeExt(ext)]
	return ok
}

// AllowedPath checks the extension of a full path.
func AllowedPath(path string) bool {
	return AllowedExt(filepath.Ext(path))
}

// IsHidden checks if a file or directory is hidden (starts with '.').
func IsHidden(path string) bool {
	return strings.HasPrefix(filepath.Base(path), ".")
}

package ledger

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"time"

	"github.com/gofrs/flock"
	"github.com/xuri/excelize/v2"

	"github.com/shipdesk/shipment-ledger/constants"
	"github.com/shipdesk/shipment-ledger/internal/common"
)

// Config holds the sink's target workbook and canonical schema.
type Config struct {
	Path    string
	Sheet   string
	Columns []string
}

// Workbook appends shipment rows to a master XLSX ledger. Every append is a
// full read-modify-write: the existing table is reloaded, reconciled to the
// canonical columns, extended by one row, and rewritten. An advisory file
// lock beside the workbook serializes concurrent appenders.
type Workbook struct {
	cfg Config
	log *slog.Logger
}

func NewWorkbook(cfg Config, log *slog.Logger) *Workbook {
	if log == nil {
		log = slog.Default()
	}
	if cfg.Sheet == "" {
		cfg.Sheet = constants.DefaultSheetName
	}
	if len(cfg.Columns) == 0 {
		cfg.Columns = constants.Columns
	}
	return &Workbook{cfg: cfg, log: log}
}

// AppendRow writes one row, given in canonical column order.
func (w *Workbook) AppendRow(ctx context.Context, row []string) error {
	start := time.Now()
	if len(row) != len(w.cfg.Columns) {
		return fmt.Errorf("row has %d cells, ledger has %d columns", len(row), len(w.cfg.Columns))
	}

	lock := flock.New(w.cfg.Path + ".lock")
	locked, err := lock.TryLockContext(ctx, 100*time.Millisecond)
	if err != nil {
		return fmt.Errorf("acquiring ledger lock: %w", err)
	}
	if !locked {
		return common.NewAppError("LEDGER_LOCK", w.cfg.Path, common.ErrLedgerLocked)
	}
	defer func() {
		if uerr := lock.Unlock(); uerr != nil {
			w.log.Warn("release ledger lock", "error", uerr)
		}
	}()

	rows, err := w.readExisting()
	if err != nil {
		return err
	}
	rows = append(rows, row)

	if err := w.write(rows); err != nil {
		return err
	}

	w.log.Info("ledger.append.ok",
		"path", w.cfg.Path,
		"sheet", w.cfg.Sheet,
		"rows", len(rows),
		"elapsed_ms", time.Since(start).Milliseconds(),
	)
	return nil
}

// readExisting loads prior data rows reconciled to the canonical columns:
// cells are re-keyed by the stored header, missing columns backfill empty,
// columns outside the canonical set are dropped.
func (w *Workbook) readExisting() ([][]string, error) {
	if _, err := os.Stat(w.cfg.Path); os.IsNotExist(err) {
		return nil, nil
	} else if err != nil {
		return nil, fmt.Errorf("stat ledger: %w", err)
	}

	f, err := excelize.OpenFile(w.cfg.Path)
	if err != nil {
		return nil, fmt.Errorf("open ledger: %w", err)
	}
	defer func() {
		if cerr := f.Close(); cerr != nil {
			w.log.Warn("close ledger", "error", cerr)
		}
	}()

	raw, err := f.GetRows(w.cfg.Sheet)
	if err != nil {
		// Sheet missing from an existing workbook: treat as empty table.
		return nil, nil
	}
	if len(raw) < 2 {
		return nil, nil
	}

	header := raw[0]
	colIdx := map[string]int{}
	for i, name := range header {
		colIdx[name] = i
	}

	out := make([][]string, 0, len(raw)-1)
	for _, stored := range raw[1:] {
		row := make([]string, len(w.cfg.Columns))
		for i, col := range w.cfg.Columns {
			if j, ok := colIdx[col]; ok && j < len(stored) {
				row[i] = stored[j]
			}
		}
		out = append(out, row)
	}
	return out, nil
}

// write rewrites the whole workbook: canonical header plus all data rows.
func (w *Workbook) write(rows [][]string) error {
	f := excelize.NewFile()
	defer func() {
		if cerr := f.Close(); cerr != nil {
			w.log.Warn("close workbook", "error", cerr)
		}
	}()

	if err := f.SetSheetName("Sheet1", w.cfg.Sheet); err != nil {
		return fmt.Errorf("name sheet: %w", err)
	}

	for i, h := range w.cfg.Columns {
		cell, _ := excelize.CoordinatesToCellName(i+1, 1)
		if err := f.SetCellValue(w.cfg.Sheet, cell, h); err != nil {
			return fmt.Errorf("write header: %w", err)
		}
	}
	for r, row := range rows {
		for c, v := range row {
			cell, _ := excelize.CoordinatesToCellName(c+1, r+2)
			if err := f.SetCellValue(w.cfg.Sheet, cell, v); err != nil {
				return fmt.Errorf("write row %d: %w", r+1, err)
			}
		}
	}

	// Widen the columns that hold long values.
	_ = f.SetColWidth(w.cfg.Sheet, "A", "B", 22)
	_ = f.SetColWidth(w.cfg.Sheet, "C", "C", 18)
	_ = f.SetColWidth(w.cfg.Sheet, "D", "D", 40)
	_ = f.SetColWidth(w.cfg.Sheet, "E", "F", 16)
	_ = f.SetColWidth(w.cfg.Sheet, "G", "G", 16)

	if err := f.SaveAs(w.cfg.Path); err != nil {
		return fmt.Errorf("save ledger: %w", err)
	}
	return nil
}

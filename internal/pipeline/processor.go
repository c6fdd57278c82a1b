package pipeline

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/shipdesk/shipment-ledger/internal/extract"
	"github.com/shipdesk/shipment-ledger/internal/fields"
)

// RowSink appends one ledger row given in canonical column order.
type RowSink interface {
	AppendRow(ctx context.Context, row []string) error
}

// Recorder tracks per-document processing history. A nil Recorder disables
// tracking; recorder failures are logged and never block the append.
type Recorder interface {
	Start(ctx context.Context, sourcePath string) (uuid.UUID, error)
	FinishSuccess(ctx context.Context, id uuid.UUID, fieldsFound int) error
	FinishFailure(ctx context.Context, id uuid.UUID, message string) error
}

// Processor runs one document through extract -> parse -> append.
type Processor struct {
	Log       *slog.Logger
	Extractor extract.TextExtractor
	Sink      RowSink
	History   Recorder
}

func NewProcessor(log *slog.Logger, ex extract.TextExtractor, sink RowSink, history Recorder) *Processor {
	if log == nil {
		log = slog.Default()
	}
	return &Processor{Log: log, Extractor: ex, Sink: sink, History: history}
}

// ProcessDocument extracts text, parses the seven fields, and appends the
// record to the ledger. Field absence is never an error; extraction and
// ledger failures are.
func (p *Processor) ProcessDocument(ctx context.Context, path string) (fields.Record, error) {
	start := time.Now()

	jobID := uuid.Nil
	if p.History != nil {
		id, err := p.History.Start(ctx, path)
		if err != nil {
			p.Log.Warn("history unavailable", "path", path, "error", err)
		} else {
			jobID = id
		}
	}
	fail := func(err error) (fields.Record, error) {
		if p.History != nil && jobID != uuid.Nil {
			if herr := p.History.FinishFailure(ctx, jobID, err.Error()); herr != nil {
				p.Log.Warn("history update failed", "job_id", jobID, "error", herr)
			}
		}
		return fields.Record{}, err
	}

	res, err := p.Extractor.Extract(ctx, path)
	if err != nil {
		p.Log.Error("pipeline.extract.failed", "path", path, "err", err)
		return fail(fmt.Errorf("extract text: %w", err))
	}
	p.Log.Info("pipeline.extract.ok",
		"path", path,
		"method", res.Method,
		"pages", res.Pages,
		"bytes", len(res.Text),
		"warnings", len(res.Warnings),
	)

	rec := fields.ParseDocument(ctx, res.Text)
	p.Log.Info("pipeline.parse.ok",
		"path", path,
		"fields_found", rec.FieldsFound(),
		"order", rec.OrderNumber,
		"bl", rec.BillOfLading,
		"invoice", rec.InvoiceNumber,
	)

	if err := p.Sink.AppendRow(ctx, rec.Values()); err != nil {
		p.Log.Error("pipeline.append.failed", "path", path, "err", err)
		return fail(fmt.Errorf("append to ledger: %w", err))
	}

	if p.History != nil && jobID != uuid.Nil {
		if herr := p.History.FinishSuccess(ctx, jobID, rec.FieldsFound()); herr != nil {
			p.Log.Warn("history update failed", "job_id", jobID, "error", herr)
		}
	}

	p.Log.Info("pipeline.append.ok",
		"path", path,
		"elapsed_ms", time.Since(start).Milliseconds(),
	)
	return rec, nil
}

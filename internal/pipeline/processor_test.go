package pipeline

import (
	"context"
	"errors"
	"testing"

	"github.com/google/uuid"

	"github.com/shipdesk/shipment-ledger/internal/extract"
)

type extractorFake struct {
	text string
	err  error
}

func (f *extractorFake) Extract(context.Context, string) (extract.TextExtractionResult, error) {
	if f.err != nil {
		return extract.TextExtractionResult{}, f.err
	}
	return extract.TextExtractionResult{Text: f.text, Pages: 1, Method: "fake"}, nil
}

type sinkFake struct {
	rows [][]string
	err  error
}

func (f *sinkFake) AppendRow(_ context.Context, row []string) error {
	if f.err != nil {
		return f.err
	}
	f.rows = append(f.rows, row)
	return nil
}

type recorderFake struct {
	started   []string
	succeeded []int
	failed    []string
	startErr  error
}

func (f *recorderFake) Start(_ context.Context, sourcePath string) (uuid.UUID, error) {
	if f.startErr != nil {
		return uuid.Nil, f.startErr
	}
	f.started = append(f.started, sourcePath)
	return uuid.New(), nil
}

func (f *recorderFake) FinishSuccess(_ context.Context, _ uuid.UUID, fieldsFound int) error {
	f.succeeded = append(f.succeeded, fieldsFound)
	return nil
}

func (f *recorderFake) FinishFailure(_ context.Context, _ uuid.UUID, message string) error {
	f.failed = append(f.failed, message)
	return nil
}

const fakeDocText = "Invoice 000123456\nCustomer Order Number: CE-1234-56\nTCLU7395862\nTOTAL NET WEIGHT: 500 KG\nTotal 1200.00\n"

func TestProcessDocumentAppendsRecord(t *testing.T) {
	sink := &sinkFake{}
	rec := &recorderFake{}
	p := NewProcessor(nil, &extractorFake{text: fakeDocText}, sink, rec)

	got, err := p.ProcessDocument(context.Background(), "/inbox/doc.pdf")
	if err != nil {
		t.Fatalf("ProcessDocument() error: %v", err)
	}
	if len(sink.rows) != 1 {
		t.Fatalf("sink received %d rows, want 1", len(sink.rows))
	}
	row := sink.rows[0]
	if len(row) != 7 {
		t.Fatalf("row has %d cells, want 7", len(row))
	}
	if row[0] != "CE-1234-56" {
		t.Errorf("order cell = %q, want CE-1234-56", row[0])
	}
	if row[6] != "000123456" {
		t.Errorf("invoice cell = %q, want 000123456", row[6])
	}
	if got.NetWeightKG != "500.000" {
		t.Errorf("NetWeightKG = %q, want 500.000", got.NetWeightKG)
	}
	if len(rec.succeeded) != 1 || rec.succeeded[0] != got.FieldsFound() {
		t.Errorf("recorder success calls = %v", rec.succeeded)
	}
}

func TestProcessDocumentExtractionFailure(t *testing.T) {
	sink := &sinkFake{}
	rec := &recorderFake{}
	p := NewProcessor(nil, &extractorFake{err: errors.New("malformed pdf")}, sink, rec)

	if _, err := p.ProcessDocument(context.Background(), "/inbox/bad.pdf"); err == nil {
		t.Fatal("expected extraction error")
	}
	if len(sink.rows) != 0 {
		t.Errorf("sink received %d rows, want 0", len(sink.rows))
	}
	if len(rec.failed) != 1 {
		t.Errorf("recorder failure calls = %v", rec.failed)
	}
}

func TestProcessDocumentLedgerFailureIsFatal(t *testing.T) {
	sink := &sinkFake{err: errors.New("disk full")}
	rec := &recorderFake{}
	p := NewProcessor(nil, &extractorFake{text: fakeDocText}, sink, rec)

	if _, err := p.ProcessDocument(context.Background(), "/inbox/doc.pdf"); err == nil {
		t.Fatal("expected ledger error")
	}
	if len(rec.failed) != 1 {
		t.Errorf("recorder failure calls = %v", rec.failed)
	}
}

func TestProcessDocumentHistoryOutageDoesNotBlock(t *testing.T) {
	sink := &sinkFake{}
	rec := &recorderFake{startErr: errors.New("db locked")}
	p := NewProcessor(nil, &extractorFake{text: fakeDocText}, sink, rec)

	if _, err := p.ProcessDocument(context.Background(), "/inbox/doc.pdf"); err != nil {
		t.Fatalf("ProcessDocument() error: %v", err)
	}
	if len(sink.rows) != 1 {
		t.Errorf("sink received %d rows, want 1", len(sink.rows))
	}
}

func TestProcessDocumentNilHistory(t *testing.T) {
	sink := &sinkFake{}
	p := NewProcessor(nil, &extractorFake{text: fakeDocText}, sink, nil)
	if _, err := p.ProcessDocument(context.Background(), "/inbox/doc.pdf"); err != nil {
		t.Fatalf("ProcessDocument() error: %v", err)
	}
}

package main

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"time"

	"github.com/shipdesk/shipment-ledger/internal/common"
	"github.com/shipdesk/shipment-ledger/internal/extract"
	"github.com/shipdesk/shipment-ledger/internal/history"
	"github.com/shipdesk/shipment-ledger/internal/ledger"
	"github.com/shipdesk/shipment-ledger/internal/pipeline"
)

func main() {
	var (
		ledgerPath = flag.String("ledger", "", "ledger workbook path (overrides LEDGER_PATH)")
		asJSON     = flag.Bool("json", false, "print the extracted record as JSON")
	)
	flag.Parse()

	logger := slog.New(slog.NewJSONHandler(os.Stderr, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	}))
	slog.SetDefault(logger)

	if flag.NArg() != 1 {
		fmt.Fprintln(os.Stderr, "usage: append-shipment [--ledger path] [--json] <document>")
		os.Exit(1)
	}
	docPath := flag.Arg(0)
	if _, err := os.Stat(docPath); err != nil {
		fmt.Fprintf(os.Stderr, "ERROR: cannot read document: %s\n", docPath)
		os.Exit(1)
	}

	cfg := common.LoadConfig()
	if *ledgerPath != "" {
		cfg.Ledger.Path = *ledgerPath
	}
	if err := cfg.Validate(); err != nil {
		fmt.Fprintf(os.Stderr, "ERROR: %v\n", err)
		os.Exit(1)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Minute)
	defer cancel()

	extractor, err := extract.ForPath(docPath, logger)
	if err != nil {
		fmt.Fprintf(os.Stderr, "ERROR: %v\n", err)
		os.Exit(1)
	}

	sink := ledger.NewWorkbook(ledger.Config{
		Path:  cfg.Ledger.Path,
		Sheet: cfg.Ledger.Sheet,
	}, logger)

	var recorder pipeline.Recorder
	if cfg.History.Enabled {
		store, err := history.Open(ctx, cfg.History.Path, logger)
		if err != nil {
			logger.Warn("history store unavailable", "path", cfg.History.Path, "error", err)
		} else {
			defer func() {
				if cerr := store.Close(); cerr != nil {
					logger.Warn("close history store", "error", cerr)
				}
			}()
			recorder = store
		}
	}

	p := pipeline.NewProcessor(logger, extractor, sink, recorder)
	rec, err := p.ProcessDocument(ctx, docPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "ERROR: %v\n", err)
		os.Exit(1)
	}

	if *asJSON {
		data, err := rec.MarshalValidatedJSON()
		if err != nil {
			fmt.Fprintf(os.Stderr, "ERROR: %v\n", err)
			os.Exit(1)
		}
		fmt.Println(string(data))
	}
	fmt.Printf("Done: row appended to %s\n", cfg.Ledger.Path)
}

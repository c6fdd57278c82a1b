package main

import (
	"context"
	"flag"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/shipdesk/shipment-ledger/internal/common"
	"github.com/shipdesk/shipment-ledger/internal/extract"
	"github.com/shipdesk/shipment-ledger/internal/history"
	"github.com/shipdesk/shipment-ledger/internal/ingest"
	"github.com/shipdesk/shipment-ledger/internal/ledger"
	"github.com/shipdesk/shipment-ledger/internal/pipeline"
)

func main() {
	var (
		dir        = flag.String("dir", "", "directory to process shipment documents from (required)")
		ledgerPath = flag.String("ledger", "", "ledger workbook path (overrides LEDGER_PATH)")
	)
	flag.Parse()

	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	}))
	slog.SetDefault(logger)

	if *dir == "" {
		fmt.Fprintln(os.Stderr, "ERROR: --dir is required")
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

	ctx := context.Background()

	var docs []string
	err := filepath.WalkDir(*dir, func(path string, d fs.DirEntry, walkErr error) error {
		if walkErr != nil {
			return walkErr
		}
		if d.IsDir() {
			if ingest.IsHidden(path) && path != *dir {
				return filepath.SkipDir
			}
			return nil
		}
		if ingest.AllowedPath(path) && !ingest.IsHidden(path) {
			docs = append(docs, path)
		}
		return nil
	})
	if err != nil {
		logger.Error("failed to scan directory", "dir", *dir, "error", err)
		os.Exit(1)
	}
	logger.Info("scan complete", "dir", *dir, "documents", len(docs))

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

	appended := 0
	failures := 0
	for _, doc := range docs {
		extractor, err := extract.ForPath(doc, logger)
		if err != nil {
			logger.Warn("skipping document", "path", doc, "error", err)
			failures++
			continue
		}
		p := pipeline.NewProcessor(logger, extractor, sink, recorder)
		if _, err := p.ProcessDocument(ctx, doc); err != nil {
			logger.Error("failed to process document", "path", doc, "error", err)
			failures++
			continue
		}
		appended++
	}

	logger.Info("batch complete",
		"documents", len(docs),
		"appended", appended,
		"failures", failures,
		"ledger", cfg.Ledger.Path,
	)
	fmt.Printf("Batch complete: %d appended, %d failed, ledger %s\n", appended, failures, cfg.Ledger.Path)
	if appended == 0 && len(docs) > 0 {
		os.Exit(1)
	}
}

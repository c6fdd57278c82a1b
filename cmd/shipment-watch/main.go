package main

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/shipdesk/shipment-ledger/internal/common"
	"github.com/shipdesk/shipment-ledger/internal/extract"
	"github.com/shipdesk/shipment-ledger/internal/history"
	"github.com/shipdesk/shipment-ledger/internal/ingest"
	"github.com/shipdesk/shipment-ledger/internal/ledger"
	"github.com/shipdesk/shipment-ledger/internal/pipeline"
)

func main() {
	ledgerPath := flag.String("ledger", "", "ledger workbook path (overrides LEDGER_PATH)")
	flag.Parse()

	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	}))
	slog.SetDefault(logger)

	roots := flag.Args()
	if len(roots) == 0 {
		fmt.Fprintln(os.Stderr, "usage: shipment-watch [--ledger path] <dir> [dir...]")
		os.Exit(1)
	}
	for _, root := range roots {
		if info, err := os.Stat(root); err != nil || !info.IsDir() {
			fmt.Fprintf(os.Stderr, "ERROR: not a directory: %s\n", root)
			os.Exit(1)
		}
	}

	cfg := common.LoadConfig()
	if *ledgerPath != "" {
		cfg.Ledger.Path = *ledgerPath
	}
	if err := cfg.Validate(); err != nil {
		fmt.Fprintf(os.Stderr, "ERROR: %v\n", err)
		os.Exit(1)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

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

	events, errs, err := ingest.Watch(ctx, ingest.WatchConfig{
		Roots:       roots,
		InitialScan: cfg.Watch.InitialScan,
		Debounce:    cfg.Watch.Debounce,
	}, logger)
	if err != nil {
		logger.Error("failed to start watcher", "error", err)
		os.Exit(1)
	}
	logger.Info("watching for shipment documents", "roots", roots, "ledger", cfg.Ledger.Path)

	for {
		select {
		case <-ctx.Done():
			logger.Info("shutting down")
			return
		case err, ok := <-errs:
			if ok {
				logger.Error("watch error", "error", err)
			}
		case path, ok := <-events:
			if !ok {
				return
			}
			extractor, err := extract.ForPath(path, logger)
			if err != nil {
				logger.Warn("skipping document", "path", path, "error", err)
				continue
			}
			p := pipeline.NewProcessor(logger, extractor, sink, recorder)
			if _, err := p.ProcessDocument(ctx, path); err != nil {
				logger.Error("failed to process document", "path", path, "error", err)
			}
		}
	}
}

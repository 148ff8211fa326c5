package pipeline

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/google/uuid"

	"agendaledger/internal"
	"agendaledger/internal/committee"
	"agendaledger/internal/config"
	"agendaledger/internal/storage"
	"agendaledger/internal/util"
)

// excludedMarkers mark subcommittee and appendix documents, which do not
// belong in a committee ledger.
var excludedMarkers = []string{internal.SubcommitteeMarker, internal.AppendixMarker}

type Summary struct {
	RunID      string
	Committees int
	Processed  int
	Skipped    int
	Failed     int
	Rows       int
	Errors     []internal.FileError
}

// BatchService walks root/<committee>/<year>/*.pdf and appends new rows to
// one ledger per canonical committee.
type BatchService struct {
	cfg       config.Config
	aliases   committee.Aliases
	processor *ProcessingService
	logger    *slog.Logger
}

func NewBatchService(cfg config.Config, aliases committee.Aliases, open Opener, logger *slog.Logger) *BatchService {
	return &BatchService{
		cfg:       cfg,
		aliases:   aliases,
		processor: NewProcessingService(cfg, aliases, open),
		logger:    logger,
	}
}

// Run processes every eligible file. Per-file failures are collected into the
// summary and the error log; only problems with the input root, the output
// directory or a ledger write abort the run.
func (s *BatchService) Run(ctx context.Context) (Summary, error) {
	summary := Summary{RunID: uuid.NewString()}
	log := s.logger.With("run_id", summary.RunID)

	committees, err := subdirs(s.cfg.InputDir)
	if err != nil {
		return summary, fmt.Errorf("reading input directory: %w", err)
	}
	if !s.cfg.DryRun {
		if err := os.MkdirAll(s.cfg.OutputDir, 0o755); err != nil {
			return summary, fmt.Errorf("creating output directory: %w", err)
		}
	}
	log.Info("run.start", "input", s.cfg.InputDir, "output", s.cfg.OutputDir, "committees", len(committees), "dry_run", s.cfg.DryRun)

	for _, folder := range committees {
		if err := ctx.Err(); err != nil {
			return summary, err
		}
		if err := s.runCommittee(ctx, folder, &summary, log); err != nil {
			return summary, err
		}
	}

	if len(summary.Errors) > 0 {
		if !s.cfg.DryRun {
			if err := storage.WriteErrorLog(s.cfg.ErrorLog, summary.Errors); err != nil {
				return summary, fmt.Errorf("writing error log: %w", err)
			}
		}
		log.Warn("run.errors", "count", len(summary.Errors), "error_log", s.cfg.ErrorLog)
	}

	log.Info("run.done",
		"committees", summary.Committees,
		"processed", summary.Processed,
		"skipped", summary.Skipped,
		"failed", summary.Failed,
		"rows", summary.Rows,
	)
	return summary, nil
}

func (s *BatchService) runCommittee(ctx context.Context, folder string, summary *Summary, log *slog.Logger) error {
	folderName := util.NFC(filepath.Base(folder))
	canonical := s.aliases.Resolve(folderName)
	ledgerPath := filepath.Join(s.cfg.OutputDir, canonical+".csv")
	log = log.With("committee", canonical)

	ledger, err := storage.OpenLedger(ledgerPath)
	if err != nil {
		summary.Errors = append(summary.Errors, internal.FileError{File: filepath.Base(ledgerPath), Message: err.Error()})
		log.Warn("committee.ledger_unusable", "ledger", ledgerPath, "error", err)
		return nil
	}
	summary.Committees++
	log.Info("committee.start", "folder", folderName, "ledger", ledger.Path(), "known_files", ledger.Len())

	years, err := subdirs(folder)
	if err != nil {
		summary.Errors = append(summary.Errors, internal.FileError{File: folderName, Message: err.Error()})
		log.Warn("committee.unreadable", "folder", folder, "error", err)
		return nil
	}

	newRows := []internal.LedgerRow{}
	for _, year := range years {
		if err := ctx.Err(); err != nil {
			return err
		}
		rows, err := s.runYear(year, ledger, summary, log)
		if err != nil {
			summary.Errors = append(summary.Errors, internal.FileError{File: filepath.Base(year), Message: err.Error()})
			log.Warn("year.unreadable", "folder", year, "error", err)
			continue
		}
		newRows = append(newRows, rows...)
	}

	if len(newRows) == 0 {
		log.Info("committee.done", "rows", 0)
		return nil
	}
	if s.cfg.DryRun {
		summary.Rows += len(newRows)
		log.Info("committee.done", "rows", len(newRows), "written", false)
		return nil
	}
	written, err := ledger.Append(newRows)
	if err != nil {
		return fmt.Errorf("appending to %s: %w", ledgerPath, err)
	}
	summary.Rows += written
	log.Info("committee.done", "rows", written, "written", true)
	return nil
}

func (s *BatchService) runYear(folder string, ledger *storage.Ledger, summary *Summary, log *slog.Logger) ([]internal.LedgerRow, error) {
	entries, err := os.ReadDir(folder)
	if err != nil {
		return nil, err
	}

	out := []internal.LedgerRow{}
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		name := util.NFC(entry.Name())
		if !strings.EqualFold(filepath.Ext(name), ".pdf") {
			continue
		}
		if util.ContainsAny(name, excludedMarkers) {
			summary.Skipped++
			log.Debug("file.excluded", "file", name)
			continue
		}
		if ledger.Has(name) {
			summary.Skipped++
			log.Debug("file.known", "file", name)
			continue
		}

		path := filepath.Join(folder, entry.Name())
		rows, err := s.processor.ProcessFile(path)
		if err != nil {
			summary.Failed++
			summary.Errors = append(summary.Errors, internal.FileError{File: name, Message: err.Error()})
			log.Warn("file.failed", "file", name, "error", err)
			continue
		}
		ledger.Mark(name)
		summary.Processed++
		log.Info("file.processed", "file", name, "items", len(rows))
		out = append(out, rows...)
	}
	return out, nil
}

func subdirs(dir string) ([]string, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, err
	}
	out := make([]string, 0, len(entries))
	for _, e := range entries {
		if e.IsDir() {
			out = append(out, filepath.Join(dir, e.Name()))
		}
	}
	return out, nil
}

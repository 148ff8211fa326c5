package pipeline

import (
	"fmt"
	"path/filepath"

	"agendaledger/internal"
	"agendaledger/internal/committee"
	"agendaledger/internal/config"
	"agendaledger/internal/pdftext"
)

// OpenDocument is a Document holding a file handle.
type OpenDocument interface {
	Document
	Close() error
}

// Opener opens the PDF at path.
type Opener func(path string) (OpenDocument, error)

func OpenPDF(path string) (OpenDocument, error) {
	doc, err := pdftext.Open(path)
	if err != nil {
		return nil, err
	}
	return doc, nil
}

// ProcessingService turns one meeting-record PDF into ledger rows.
type ProcessingService struct {
	parser   *FilenameParser
	open     Opener
	tocPages int
}

func NewProcessingService(cfg config.Config, aliases committee.Aliases, open Opener) *ProcessingService {
	if open == nil {
		open = OpenPDF
	}
	return &ProcessingService{
		parser:   NewFilenameParser(aliases, cfg.SessionFormat),
		open:     open,
		tocPages: cfg.TOCPages,
	}
}

// ProcessFile parses the file name, reads the agenda listing and resolves each
// item. A document without agenda lines yields no rows and no error. Panics
// from the PDF layer are returned as errors.
func (s *ProcessingService) ProcessFile(path string) (rows []internal.LedgerRow, err error) {
	defer func() {
		if rec := recover(); rec != nil {
			rows, err = nil, fmt.Errorf("unreadable pdf: %v", rec)
		}
	}()

	record, err := s.parser.Parse(filepath.Base(path))
	if err != nil {
		return nil, err
	}

	doc, err := s.open(path)
	if err != nil {
		return nil, err
	}
	defer doc.Close()

	items, err := ExtractTOC(doc, s.tocPages)
	if err != nil {
		return nil, err
	}
	if err := ResolveDecisions(doc, items); err != nil {
		return nil, err
	}

	rows = make([]internal.LedgerRow, 0, len(items))
	for _, item := range items {
		rows = append(rows, internal.LedgerRow{DocumentRecord: record, AgendaItem: item})
	}
	return rows, nil
}

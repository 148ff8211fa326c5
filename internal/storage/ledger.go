// Package storage persists extracted agenda rows as per-committee CSV ledgers.
//
// A ledger is append-only and keyed by source file name: a file whose name is
// already present is never extracted again. New ledgers start with a UTF-8 BOM
// so spreadsheet tools detect the encoding of the Korean text.
package storage

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"slices"
	"strings"

	"golang.org/x/text/encoding/unicode"
	"golang.org/x/text/transform"

	"agendaledger/internal"
	"agendaledger/internal/util"
)

var ErrSchemaMismatch = errors.New("ledger header does not match schema")

type Ledger struct {
	path      string
	hasHeader bool
	processed map[string]struct{}
}

// OpenLedger loads the processed file set of the ledger at path. A missing
// file is an empty ledger.
func OpenLedger(path string) (*Ledger, error) {
	l := &Ledger{path: path, processed: map[string]struct{}{}}

	header, rows, err := readAll(path)
	if errors.Is(err, os.ErrNotExist) {
		return l, nil
	}
	if err != nil {
		return nil, err
	}
	if header != nil && !slices.Equal(header, internal.LedgerHeader) {
		return nil, fmt.Errorf("%s: %w (schema v%d)", path, ErrSchemaMismatch, internal.LedgerSchemaVersion)
	}
	l.hasHeader = header != nil
	for _, row := range rows {
		l.Mark(row[0])
	}
	return l, nil
}

func (l *Ledger) Path() string {
	return l.path
}

func (l *Ledger) Has(filename string) bool {
	_, ok := l.processed[util.NFC(filename)]
	return ok
}

func (l *Ledger) Mark(filename string) {
	l.processed[util.NFC(filename)] = struct{}{}
}

func (l *Ledger) Len() int {
	return len(l.processed)
}

// Append adds rows to the end of the ledger. The header is written first when
// none has been read yet, preceded by the BOM when the file is empty. Existing
// content is never rewritten.
func (l *Ledger) Append(rows []internal.LedgerRow) (int, error) {
	if len(rows) == 0 {
		return 0, nil
	}
	if err := os.MkdirAll(filepath.Dir(l.path), 0o755); err != nil {
		return 0, err
	}

	f, err := os.OpenFile(l.path, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o644)
	if err != nil {
		return 0, err
	}
	defer f.Close()

	info, err := f.Stat()
	if err != nil {
		return 0, err
	}

	var w io.Writer = f
	var bom *transform.Writer
	if info.Size() == 0 {
		bom = transform.NewWriter(f, unicode.UTF8BOM.NewEncoder())
		w = bom
	}

	if err := WriteRows(w, rows, !l.hasHeader); err != nil {
		return 0, fmt.Errorf("writing %s: %w", l.path, err)
	}
	if bom != nil {
		if err := bom.Close(); err != nil {
			return 0, fmt.Errorf("writing %s: %w", l.path, err)
		}
	}
	l.hasHeader = true
	for _, row := range rows {
		l.Mark(row.Filename)
	}
	return len(rows), f.Close()
}

// WriteRows streams rows as CSV, optionally preceded by the ledger header.
func WriteRows(w io.Writer, rows []internal.LedgerRow, header bool) error {
	cw := csv.NewWriter(w)
	if header {
		if err := cw.Write(internal.LedgerHeader); err != nil {
			return err
		}
	}
	for _, row := range rows {
		if err := cw.Write(row.Record()); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}

// ReadLedger returns the header and data rows of the ledger at path.
func ReadLedger(path string) ([]string, [][]string, error) {
	return readAll(path)
}

func readAll(path string) ([]string, [][]string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, nil, err
	}
	defer f.Close()

	r := csv.NewReader(transform.NewReader(f, unicode.BOMOverride(unicode.UTF8.NewDecoder())))
	r.FieldsPerRecord = -1
	r.LazyQuotes = true

	var header []string
	rows := [][]string{}
	for {
		record, err := r.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, nil, fmt.Errorf("reading %s: %w", path, err)
		}
		if header == nil {
			header = record
			continue
		}
		if len(record) == 0 || strings.TrimSpace(record[0]) == "" {
			continue
		}
		rows = append(rows, record)
	}
	return header, rows, nil
}

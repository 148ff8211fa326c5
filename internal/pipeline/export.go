package pipeline

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/xuri/excelize/v2"

	"agendaledger/internal/storage"
	"agendaledger/internal/util"
)

const maxSheetName = 31

var sheetNameReplacer = strings.NewReplacer(":", "_", "\\", "_", "/", "_", "?", "_", "*", "_", "[", "_", "]", "_")

// ExportLedgersToXLSX writes every *.csv ledger in ledgerDir to one workbook,
// one sheet per committee. It returns the number of sheets written.
func ExportLedgersToXLSX(ledgerDir, outputPath string) (int, error) {
	paths, err := filepath.Glob(filepath.Join(ledgerDir, "*.csv"))
	if err != nil {
		return 0, err
	}
	sort.Strings(paths)
	if len(paths) == 0 {
		return 0, fmt.Errorf("no ledgers found in %s", ledgerDir)
	}

	f := excelize.NewFile()
	defer f.Close()
	defaultSheet := f.GetSheetName(0)

	used := map[string]int{}
	for i, path := range paths {
		header, rows, err := storage.ReadLedger(path)
		if err != nil {
			return 0, err
		}

		sheet := uniqueSheetName(sheetName(path), used)
		if i == 0 {
			if err := f.SetSheetName(defaultSheet, sheet); err != nil {
				return 0, err
			}
		} else if _, err := f.NewSheet(sheet); err != nil {
			return 0, err
		}

		if err := writeSheetRow(f, sheet, 1, header); err != nil {
			return 0, err
		}
		for r, row := range rows {
			if err := writeSheetRow(f, sheet, r+2, row); err != nil {
				return 0, err
			}
		}
	}

	if err := os.MkdirAll(filepath.Dir(outputPath), 0o755); err != nil {
		return 0, err
	}
	if err := f.SaveAs(outputPath); err != nil {
		return 0, err
	}
	return len(paths), nil
}

func writeSheetRow(f *excelize.File, sheet string, rowNum int, values []string) error {
	for col, value := range values {
		cell, err := excelize.CoordinatesToCellName(col+1, rowNum)
		if err != nil {
			return err
		}
		if err := f.SetCellStr(sheet, cell, value); err != nil {
			return err
		}
	}
	return nil
}

func sheetName(ledgerPath string) string {
	base := util.NFC(strings.TrimSuffix(filepath.Base(ledgerPath), filepath.Ext(ledgerPath)))
	name := strings.TrimSpace(sheetNameReplacer.Replace(base))
	name = strings.Trim(name, "'")
	if name == "" {
		name = "ledger"
	}
	r := []rune(name)
	if len(r) > maxSheetName {
		r = r[:maxSheetName]
	}
	return string(r)
}

func uniqueSheetName(name string, used map[string]int) string {
	key := strings.ToLower(name)
	n := used[key]
	used[key] = n + 1
	if n == 0 {
		return name
	}
	suffix := fmt.Sprintf("_%d", n+1)
	r := []rune(name)
	if len(r)+len(suffix) > maxSheetName {
		r = r[:maxSheetName-len(suffix)]
	}
	return string(r) + suffix
}

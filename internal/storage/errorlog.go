package storage

import (
	"os"
	"path/filepath"
	"strings"

	"agendaledger/internal"
)

// WriteErrorLog replaces the file at path with one "<file>: <message>" line per
// failure.
func WriteErrorLog(path string, errs []internal.FileError) error {
	lines := make([]string, 0, len(errs))
	for _, e := range errs {
		lines = append(lines, e.String())
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return err
	}
	return os.WriteFile(path, []byte(strings.Join(lines, "\n")), 0o644)
}

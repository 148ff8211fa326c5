// Package committee normalizes committee names so that differently named but
// equivalent committees share one ledger.
package committee

import (
	"fmt"
	"os"
	"strings"

	"go.yaml.in/yaml/v3"

	"agendaledger/internal/util"
)

// Aliases maps raw committee names to canonical ones.
type Aliases struct {
	table map[string]string
}

func DefaultTable() map[string]string {
	return map[string]string{
		"문화유산위원회":   "문화재위원회",
		"문화재위원회":    "문화재위원회",
		"자연문화재위원회": "자연문화재위원회",
	}
}

// New builds an alias table from the defaults with overrides applied on top.
func New(overrides map[string]string) Aliases {
	table := DefaultTable()
	for raw, canonical := range overrides {
		raw = util.NFC(strings.TrimSpace(raw))
		canonical = util.NFC(strings.TrimSpace(canonical))
		if raw == "" || canonical == "" {
			continue
		}
		table[raw] = canonical
	}
	return Aliases{table: table}
}

// Load reads a flat "raw: canonical" YAML map from path and merges it over the
// defaults. An empty path yields the defaults.
func Load(path string) (Aliases, error) {
	if strings.TrimSpace(path) == "" {
		return New(nil), nil
	}
	blob, err := os.ReadFile(path)
	if err != nil {
		return Aliases{}, fmt.Errorf("reading aliases file: %w", err)
	}
	overrides := map[string]string{}
	if err := yaml.Unmarshal(blob, &overrides); err != nil {
		return Aliases{}, fmt.Errorf("parsing aliases file %s: %w", path, err)
	}
	return New(overrides), nil
}

// Resolve never fails: unknown names come back unchanged (after NFC and trim).
func (a Aliases) Resolve(raw string) string {
	name := util.NFC(strings.TrimSpace(raw))
	if canonical, ok := a.table[name]; ok {
		return canonical
	}
	return name
}

func (a Aliases) Len() int {
	return len(a.table)
}

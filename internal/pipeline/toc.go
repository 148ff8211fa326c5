package pipeline

import (
	"regexp"
	"strings"

	"agendaledger/internal"
	"agendaledger/internal/pdftext"
	"agendaledger/internal/util"
)

// \p{Zs} covers U+3000 and U+00A0, which RE2's \s does not.
var agendaLine = regexp.MustCompile(`^(\d+)[\s\p{Zs}]+(.+)`)

// Document is the page/block view of an opened PDF.
type Document interface {
	NumPage() int
	Blocks(page int) ([]pdftext.Block, error)
}

// ExtractTOC parses the agenda listing on the first maxPages pages. Heading
// blocks switch the current section; "<n> <title>" blocks become items.
// Resolutions are left empty.
func ExtractTOC(doc Document, maxPages int) ([]internal.AgendaItem, error) {
	items := []internal.AgendaItem{}
	section := ""

	last := min(maxPages, doc.NumPage())
	for page := 1; page <= last; page++ {
		blocks, err := doc.Blocks(page)
		if err != nil {
			return nil, err
		}
		for _, block := range blocks {
			text := strings.TrimSpace(block.Text)

			if util.ContainsAny(text, internal.SectionMarkers) {
				section = util.StripAnnotations(text)
				continue
			}

			m := agendaLine.FindStringSubmatch(text)
			if m == nil {
				continue
			}
			current := section
			if current == "" {
				current = internal.DefaultSection
			}
			items = append(items, internal.AgendaItem{
				Section: current,
				Number:  m[1],
				Title:   strings.TrimSpace(m[2]),
			})
		}
	}
	return items, nil
}

package pipeline

import (
	"strings"

	"agendaledger/internal"
)

// ResolveDecisions sets the Resolution of every item in place.
//
// Each item takes the first keyword found in the first block, in page and
// reading order, that contains the item number as a plain substring and any
// keyword at all. Item "1" therefore also matches blocks about item "10"; that
// behaviour is what existing ledgers were produced with and is kept as is.
func ResolveDecisions(doc Document, items []internal.AgendaItem) error {
	for i := range items {
		resolution, err := findResolution(doc, items[i].Number)
		if err != nil {
			return err
		}
		items[i].Resolution = resolution
	}
	return nil
}

func findResolution(doc Document, number string) (string, error) {
	for page := 1; page <= doc.NumPage(); page++ {
		blocks, err := doc.Blocks(page)
		if err != nil {
			return "", err
		}
		for _, block := range blocks {
			text := strings.TrimSpace(block.Text)
			if !strings.Contains(text, number) {
				continue
			}
			for _, keyword := range internal.ResolutionKeywords {
				if strings.Contains(text, keyword) {
					return keyword, nil
				}
			}
		}
	}
	return internal.ResolutionNone, nil
}

// Package pdftext exposes the text layer of a PDF as ordered text blocks.
package pdftext

import (
	"fmt"
	"os"
	"sort"
	"strings"

	pdf "github.com/ledongthuc/pdf"

	"agendaledger/internal/util"
)

// gapRatio is the horizontal gap, relative to font size, treated as a space.
const gapRatio = 0.25

// Block is one visual text row of a page.
type Block struct {
	Page int
	Y    float64
	Text string
}

type Document struct {
	file   *os.File
	reader *pdf.Reader
	pages  map[int][]Block
}

func Open(path string) (*Document, error) {
	f, r, err := openReader(path)
	if err != nil {
		return nil, fmt.Errorf("opening pdf %s: %w", path, err)
	}
	return &Document{file: f, reader: r, pages: map[int][]Block{}}, nil
}

func openReader(path string) (f *os.File, r *pdf.Reader, err error) {
	defer func() {
		if rec := recover(); rec != nil {
			if f != nil {
				_ = f.Close()
			}
			f, r, err = nil, nil, fmt.Errorf("malformed pdf: %v", rec)
		}
	}()
	return pdf.Open(path)
}

func (d *Document) Close() error {
	if d.file == nil {
		return nil
	}
	err := d.file.Close()
	d.file = nil
	return err
}

func (d *Document) NumPage() int {
	return d.reader.NumPage()
}

// Blocks returns the rows of a 1-based page in reading order. Pages outside
// the document yield no blocks.
func (d *Document) Blocks(page int) ([]Block, error) {
	if page < 1 || page > d.NumPage() {
		return nil, nil
	}
	if cached, ok := d.pages[page]; ok {
		return cached, nil
	}

	rows, err := d.readRows(page)
	if err != nil {
		return nil, fmt.Errorf("reading page %d: %w", page, err)
	}
	blocks := RowsToBlocks(page, rows)
	d.pages[page] = blocks
	return blocks, nil
}

func (d *Document) readRows(page int) (rows pdf.Rows, err error) {
	defer func() {
		if rec := recover(); rec != nil {
			rows, err = nil, fmt.Errorf("malformed page content: %v", rec)
		}
	}()
	p := d.reader.Page(page)
	if p.V.IsNull() {
		return nil, nil
	}
	return p.GetTextByRow()
}

// RowsToBlocks orders rows top to bottom and glyph runs left to right, joining
// runs with a space where the gap between them is wide enough.
func RowsToBlocks(page int, rows pdf.Rows) []Block {
	ordered := make([]*pdf.Row, 0, len(rows))
	for _, row := range rows {
		if row != nil && len(row.Content) > 0 {
			ordered = append(ordered, row)
		}
	}
	sort.SliceStable(ordered, func(i, j int) bool { return ordered[i].Position > ordered[j].Position })

	out := make([]Block, 0, len(ordered))
	for _, row := range ordered {
		text := joinRow(row.Content)
		if text == "" {
			continue
		}
		out = append(out, Block{Page: page, Y: float64(row.Position), Text: text})
	}
	return out
}

func joinRow(content pdf.TextHorizontal) string {
	runs := make([]pdf.Text, len(content))
	copy(runs, content)
	sort.SliceStable(runs, func(i, j int) bool { return runs[i].X < runs[j].X })

	var b strings.Builder
	var prevEnd float64
	for _, t := range runs {
		// Td emits empty runs.
		if t.S == "" {
			continue
		}
		if b.Len() > 0 && t.X-prevEnd > gapRatio*t.FontSize && !strings.HasSuffix(b.String(), " ") && !strings.HasPrefix(t.S, " ") {
			b.WriteByte(' ')
		}
		b.WriteString(t.S)
		prevEnd = t.X + t.W
	}
	return util.NormalizeSpaces(util.NFC(b.String()))
}

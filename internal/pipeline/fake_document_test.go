package pipeline

import (
	"errors"
	"path/filepath"

	"agendaledger/internal/pdftext"
)

// fakeDocument serves canned text blocks per page.
type fakeDocument struct {
	pages  [][]string
	failOn int
	closed bool
}

func newFakeDocument(pages ...[]string) *fakeDocument {
	return &fakeDocument{pages: pages}
}

func (d *fakeDocument) NumPage() int { return len(d.pages) }

func (d *fakeDocument) Blocks(page int) ([]pdftext.Block, error) {
	if page == d.failOn {
		return nil, errors.New("broken page")
	}
	if page < 1 || page > len(d.pages) {
		return nil, nil
	}
	out := make([]pdftext.Block, 0, len(d.pages[page-1]))
	for _, text := range d.pages[page-1] {
		out = append(out, pdftext.Block{Page: page, Text: text})
	}
	return out, nil
}

func (d *fakeDocument) Close() error {
	d.closed = true
	return nil
}

// fakeOpener maps file base names to documents; unknown files fail to open.
type fakeOpener struct {
	docs   map[string]*fakeDocument
	opened []string
}

func (o *fakeOpener) Open(path string) (OpenDocument, error) {
	name := filepath.Base(path)
	o.opened = append(o.opened, name)
	doc, ok := o.docs[name]
	if !ok {
		return nil, errors.New("not a PDF file: invalid header")
	}
	return doc, nil
}

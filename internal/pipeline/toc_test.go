package pipeline

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"agendaledger/internal"
)

func TestExtractTOCDefaultSection(t *testing.T) {
	doc := newFakeDocument([]string{"제1차 회의 목차", "1 도로 개설", "  2   주차장 조성  ", "참석자 명단"})

	items, err := ExtractTOC(doc, 3)
	require.NoError(t, err)
	require.Len(t, items, 2)
	for _, item := range items {
		assert.Equal(t, internal.DefaultSection, item.Section)
		assert.Empty(t, item.Resolution)
	}
	assert.Equal(t, "1", items[0].Number)
	assert.Equal(t, "도로 개설", items[0].Title)
	assert.Equal(t, "2", items[1].Number)
	assert.Equal(t, "주차장 조성", items[1].Title)
}

func TestExtractTOCSeparatesSections(t *testing.T) {
	doc := newFakeDocument([]string{"심의사항", "1 Agenda A", "검토사항", "2 Agenda B"})

	items, err := ExtractTOC(doc, 3)
	require.NoError(t, err)
	assert.Equal(t, []internal.AgendaItem{
		{Section: "심의사항", Number: "1", Title: "Agenda A"},
		{Section: "검토사항", Number: "2", Title: "Agenda B"},
	}, items)
}

func TestExtractTOCCleansHeadings(t *testing.T) {
	doc := newFakeDocument(
		[]string{"【심의사항】 (5건)", "1 석탑 보수"},
		[]string{"【 보고사항 】", "7 발굴 결과"},
	)

	items, err := ExtractTOC(doc, 2)
	require.NoError(t, err)
	require.Len(t, items, 2)
	assert.Equal(t, "심의사항", items[0].Section)
	assert.Equal(t, "보고사항", items[1].Section)
	assert.Equal(t, "7", items[1].Number)
}

func TestExtractTOCHeadingLineIsNotAnItem(t *testing.T) {
	doc := newFakeDocument([]string{"1 심의사항 목록", "2 정자 이전"})

	items, err := ExtractTOC(doc, 1)
	require.NoError(t, err)
	require.Len(t, items, 1)
	assert.Equal(t, "1 심의사항 목록", items[0].Section)
	assert.Equal(t, "2", items[0].Number)
}

func TestExtractTOCPageRange(t *testing.T) {
	doc := newFakeDocument(
		[]string{"1 첫째"},
		[]string{"2 둘째"},
		[]string{"3 셋째"},
		[]string{"4 넷째 원안가결"},
	)

	items, err := ExtractTOC(doc, 2)
	require.NoError(t, err)
	require.Len(t, items, 2)
	assert.Equal(t, "2", items[1].Number)

	short := newFakeDocument([]string{"1 하나"})
	items, err = ExtractTOC(short, 3)
	require.NoError(t, err)
	assert.Len(t, items, 1)
}

func TestExtractTOCPageError(t *testing.T) {
	doc := newFakeDocument([]string{"1 첫째"}, []string{"2 둘째"})
	doc.failOn = 2

	_, err := ExtractTOC(doc, 3)
	require.Error(t, err)
}

func TestExtractTOCAcceptsIdeographicSpace(t *testing.T) {
	doc := newFakeDocument([]string{"심의사항", "1\u3000도로 개설", "2\u00a0담장 보수"})

	items, err := ExtractTOC(doc, 1)
	require.NoError(t, err)
	require.Len(t, items, 2)
	assert.Equal(t, "1", items[0].Number)
	assert.Equal(t, "도로 개설", items[0].Title)
	assert.Equal(t, "2", items[1].Number)
	assert.Equal(t, "담장 보수", items[1].Title)
}

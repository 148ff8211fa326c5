package pipeline

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"agendaledger/internal"
)

func TestResolveDecisionsNoResolution(t *testing.T) {
	doc := newFakeDocument(
		[]string{"심의사항", "3 도로 개설"},
		[]string{"3 도로 개설 안건은 다음 회의에서 논의"},
		[]string{"9 다른 안건 원안가결"},
	)
	items := []internal.AgendaItem{{Section: "심의사항", Number: "3", Title: "도로 개설"}}

	require.NoError(t, ResolveDecisions(doc, items))
	assert.Equal(t, internal.ResolutionNone, items[0].Resolution)
}

func TestResolveDecisionsFirstMatchingBlock(t *testing.T) {
	doc := newFakeDocument(
		[]string{"심의사항", "2 성곽 정비"},
		[]string{"2 성곽 정비: 보류"},
		[]string{"2 성곽 정비 재상정: 원안가결"},
	)
	items := []internal.AgendaItem{{Number: "2"}}

	require.NoError(t, ResolveDecisions(doc, items))
	assert.Equal(t, internal.ResolutionDeferred, items[0].Resolution)
}

func TestResolveDecisionsKeywordOrderWithinBlock(t *testing.T) {
	doc := newFakeDocument([]string{"4 안건 부결 후 수정안 조건부가결"})
	items := []internal.AgendaItem{{Number: "4"}}

	require.NoError(t, ResolveDecisions(doc, items))
	assert.Equal(t, internal.ResolutionConditionalApproval, items[0].Resolution)
}

// Item numbers match as plain substrings: item "1" picks up the outcome of
// item "10" when that block comes first.
func TestResolveDecisionsSubstringMatch(t *testing.T) {
	doc := newFakeDocument(
		[]string{"1 도로 개설", "10 담장 보수"},
		[]string{"10 담장 보수 부결"},
		[]string{"1 도로 개설 원안가결"},
	)
	items := []internal.AgendaItem{{Number: "1"}, {Number: "10"}}

	require.NoError(t, ResolveDecisions(doc, items))
	assert.Equal(t, internal.ResolutionRejected, items[0].Resolution)
	assert.Equal(t, internal.ResolutionRejected, items[1].Resolution)
}

func TestResolveDecisionsSearchesTOCPagesToo(t *testing.T) {
	doc := newFakeDocument([]string{"5 문화재 지정 원안의결"})
	items := []internal.AgendaItem{{Number: "5"}}

	require.NoError(t, ResolveDecisions(doc, items))
	assert.Equal(t, internal.ResolutionAdopted, items[0].Resolution)
}

func TestResolveDecisionsPageError(t *testing.T) {
	doc := newFakeDocument([]string{"1 안건"}, []string{"1 원안가결"})
	doc.failOn = 2
	items := []internal.AgendaItem{{Number: "1"}}

	require.Error(t, ResolveDecisions(doc, items))
}

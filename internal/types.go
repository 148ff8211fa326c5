package internal

import "fmt"

const (
	SectionDeliberation = "심의사항"
	SectionReview       = "검토사항"
	SectionReport       = "보고사항"

	DefaultSection = SectionDeliberation
)

// SectionMarkers are the headings that open a new agenda section.
var SectionMarkers = []string{SectionDeliberation, SectionReview, SectionReport}

const (
	ResolutionApproved            = "원안가결"
	ResolutionAdopted             = "원안의결"
	ResolutionConditionalApproval = "조건부가결"
	ResolutionDeferred            = "보류"
	ResolutionRejected            = "부결"

	ResolutionNone = "의결사항 없음"
)

// ResolutionKeywords is ordered: within one text block the first hit wins.
var ResolutionKeywords = []string{
	ResolutionApproved,
	ResolutionAdopted,
	ResolutionConditionalApproval,
	ResolutionDeferred,
	ResolutionRejected,
}

// SubcommitteeMarker flags a subcommittee session in a file name.
const SubcommitteeMarker = "소위원회"

// AppendixMarker flags an appendix document.
const AppendixMarker = "별첨"

type AgendaItem struct {
	Section    string
	Number     string
	Title      string
	Resolution string
}

type DocumentRecord struct {
	Filename       string
	Year           string
	Committee      string
	Subcommittee   string
	Session        string
	IsSubcommittee bool
}

type LedgerRow struct {
	DocumentRecord
	AgendaItem
}

// LedgerSchemaVersion is bumped whenever LedgerHeader changes.
const LedgerSchemaVersion = 2

var LedgerHeader = []string{
	"파일명", "년도", "위원회명", "분과명", "차수", "소위원회여부",
	"사항구분", "목차번호", "안건명", "의결사항",
}

func (r LedgerRow) Record() []string {
	flag := "N"
	if r.IsSubcommittee {
		flag = "Y"
	}
	resolution := r.Resolution
	if resolution == "" {
		resolution = ResolutionNone
	}
	return []string{
		r.Filename, r.Year, r.Committee, r.Subcommittee, r.Session, flag,
		r.Section, r.Number, r.Title, resolution,
	}
}

type FileError struct {
	File    string
	Message string
}

func (e FileError) String() string {
	return fmt.Sprintf("%s: %s", e.File, e.Message)
}

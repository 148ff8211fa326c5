package pipeline

import (
	"errors"
	"fmt"
	"path/filepath"
	"strings"

	"agendaledger/internal"
	"agendaledger/internal/committee"
	"agendaledger/internal/config"
	"agendaledger/internal/util"
)

var ErrFilenameFormat = errors.New("unexpected filename format")

const minFilenameTokens = 3

// FilenameParser splits "<year> <committee> [subcommittee] <session> [소위원회].pdf"
// into a DocumentRecord.
type FilenameParser struct {
	aliases       committee.Aliases
	sessionFormat string
}

func NewFilenameParser(aliases committee.Aliases, sessionFormat string) *FilenameParser {
	if sessionFormat == "" {
		sessionFormat = config.SessionVerbatim
	}
	return &FilenameParser{aliases: aliases, sessionFormat: sessionFormat}
}

func (p *FilenameParser) Parse(filename string) (internal.DocumentRecord, error) {
	name := util.NFC(filepath.Base(filename))
	stem := name
	if strings.EqualFold(filepath.Ext(stem), ".pdf") {
		stem = strings.TrimSuffix(stem, filepath.Ext(stem))
	}

	isSub := false
	tokens := make([]string, 0, 5)
	for _, tok := range strings.Fields(stem) {
		if tok == internal.SubcommitteeMarker {
			isSub = true
			continue
		}
		tokens = append(tokens, tok)
	}
	if len(tokens) < minFilenameTokens {
		return internal.DocumentRecord{}, fmt.Errorf("%w: %s: need at least %d tokens, got %d", ErrFilenameFormat, name, minFilenameTokens, len(tokens))
	}

	year := strings.TrimSuffix(tokens[0], "년도")
	if year == "" {
		return internal.DocumentRecord{}, fmt.Errorf("%w: %s: empty year", ErrFilenameFormat, name)
	}

	rec := internal.DocumentRecord{
		Filename:       name,
		Year:           year,
		Committee:      p.aliases.Resolve(tokens[1]),
		IsSubcommittee: isSub,
	}
	// A subcommittee sits between committee and session only when the
	// session carries the number; "제1차 회의록" keeps tokens[2] as session.
	sessionToken := tokens[2]
	if len(tokens) > minFilenameTokens && !util.HasDigit(tokens[2]) && util.HasDigit(tokens[3]) {
		rec.Subcommittee = tokens[2]
		sessionToken = tokens[3]
	}

	session := sessionToken
	if p.sessionFormat == config.SessionDigits {
		session = util.DigitsOnly(sessionToken)
		if session == "" {
			return internal.DocumentRecord{}, fmt.Errorf("%w: %s: session %q has no digits", ErrFilenameFormat, name, sessionToken)
		}
	}
	rec.Session = session
	return rec, nil
}

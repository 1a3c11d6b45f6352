package survey

import (
	"unicode"
	"unicode/utf8"

	"github.com/pkg/errors"
)

// ErrSheetNotFound is returned when a referenced sheet is not among the
// records being navigated.
var ErrSheetNotFound = errors.New("sheet not found in current results")

// minReferenceDigits is the shortest digit run treated as a sheet reference.
const minReferenceDigits = 4

// SegmentKind tells literal text apart from sheet references.
type SegmentKind int

const (
	SegmentText SegmentKind = iota
	SegmentReference
)

// Segment is one piece of a linked free-text field.
type Segment struct {
	Kind  SegmentKind
	Text  string // Displayed text; "(6084)" keeps its parentheses
	Sheet string // Target sheet, set on references only
}

// LinkReferences splits text into literal runs and sheet references.
//
// A reference is either a parenthesized run of 4+ digits, or a run of 4+
// digits that starts the text or follows a whitespace character and is
// followed by whitespace, a comma, a period or the end of the text. Matches
// are taken left to right without overlap. Joining the Text of every segment
// gives back the input.
func LinkReferences(text string) []Segment {
	if text == "" {
		return nil
	}

	var segments []Segment
	literalStart := 0
	i := 0
	for i < len(text) {
		m, ok := matchReference(text, i)
		if !ok {
			_, size := utf8.DecodeRuneInString(text[i:])
			i += size
			continue
		}
		segments = appendText(segments, text[literalStart:m.start])
		segments = appendText(segments, text[m.start:m.refStart])
		segments = append(segments, Segment{
			Kind:  SegmentReference,
			Text:  text[m.refStart:m.end],
			Sheet: m.sheet,
		})
		i = m.end
		literalStart = m.end
	}
	segments = appendText(segments, text[literalStart:])
	return segments
}

// References returns the sheets referenced in text, in order of appearance.
func References(text string) []string {
	var sheets []string
	for _, seg := range LinkReferences(text) {
		if seg.Kind == SegmentReference {
			sheets = append(sheets, seg.Sheet)
		}
	}
	return sheets
}

// LocateSheet finds sheet among records and returns the 1-based page it is
// on and its index within that page.
func LocateSheet(records []Record, sheet string, pageSize int) (page, index int, err error) {
	if pageSize <= 0 {
		pageSize = PageSize
	}
	for i, rec := range records {
		if rec.Sheet() == sheet {
			return i/pageSize + 1, i % pageSize, nil
		}
	}
	return 0, 0, errors.Wrapf(ErrSheetNotFound, "sheet %s", sheet)
}

type referenceMatch struct {
	start    int // first byte of the match, delimiter included
	refStart int // first byte of the displayed reference
	end      int
	sheet    string
}

func matchReference(text string, i int) (referenceMatch, bool) {
	// (1234)
	if text[i] == '(' {
		end := digitRun(text, i+1)
		if end-(i+1) >= minReferenceDigits && end < len(text) && text[end] == ')' {
			return referenceMatch{start: i, refStart: i, end: end + 1, sheet: text[i+1 : end]}, true
		}
	}

	// 1234 at the very start of the text
	if i == 0 {
		if m, ok := bareReference(text, 0, 0); ok {
			return m, true
		}
	}

	// whitespace followed by 1234
	r, size := utf8.DecodeRuneInString(text[i:])
	if unicode.IsSpace(r) {
		return bareReference(text, i, i+size)
	}
	return referenceMatch{}, false
}

func bareReference(text string, start, digits int) (referenceMatch, bool) {
	end := digitRun(text, digits)
	if end-digits < minReferenceDigits || !referenceBoundary(text, end) {
		return referenceMatch{}, false
	}
	return referenceMatch{start: start, refStart: digits, end: end, sheet: text[digits:end]}, true
}

// referenceBoundary reports whether a bare reference may end at pos.
func referenceBoundary(text string, pos int) bool {
	if pos == len(text) {
		return true
	}
	r, _ := utf8.DecodeRuneInString(text[pos:])
	return r == ',' || r == '.' || unicode.IsSpace(r)
}

func digitRun(text string, from int) int {
	end := from
	for end < len(text) && text[end] >= '0' && text[end] <= '9' {
		end++
	}
	return end
}

// appendText adds a literal run, merging it into a preceding literal.
func appendText(segments []Segment, s string) []Segment {
	if s == "" {
		return segments
	}
	if n := len(segments); n > 0 && segments[n-1].Kind == SegmentText {
		segments[n-1].Text += s
		return segments
	}
	return append(segments, Segment{Kind: SegmentText, Text: s})
}

package gui

import (
	"fmt"
	"strings"
	"time"

	"github.com/marjoballabani/lazysurvey/pkg/survey"
)

// cardField is a labelled field on the record card.
type cardField struct {
	label string
	name  string
}

var (
	metaFields = []cardField{
		{"Recorder", survey.FieldRecorder},
		{"Researcher", survey.FieldResearcher},
		{"Date", survey.FieldSheetDate},
		{"Season", survey.FieldSeason},
	}
	detailFields = []cardField{
		{"Structure", survey.FieldStructure},
		{"Sheet Type", survey.FieldSheetType},
		{"Space", survey.FieldSpaceNumber},
		{"Feature Type", survey.FieldFeatureType},
		{"Category", survey.FieldCategory},
		{"Space Type", survey.FieldSpaceType},
		{"Gate", survey.FieldGate},
		{"Usage", survey.FieldUsage},
		{"Negative Feature", survey.FieldNegativeFeature},
		{"Minority Report", survey.FieldMinorityReport},
	}
	archiveFields = []cardField{
		{"Photographer", survey.FieldPhotographer},
		{"BW Roll", survey.FieldBWRoll},
		{"Color Roll", survey.FieldColorRoll},
		{"Digital Image", survey.FieldDigitalImage},
		{"Videographer", survey.FieldVideographer},
		{"File Number", survey.FieldFileNumber},
		{"Tape Number", survey.FieldTapeNumber},
		{"Time Count", survey.FieldTimeCount},
		{"Artist", survey.FieldArtist},
	}
)

var sheetDateLayouts = []string{
	time.RFC3339,
	"2006-01-02T15:04:05",
	"2006-01-02 15:04:05",
	"2006-01-02",
	"01/02/2006",
	"1/2/2006",
}

// formatSheetDate renders a sheet date as "January 2, 2006". Values that do
// not parse are shown unchanged.
func formatSheetDate(s string) string {
	for _, layout := range sheetDateLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t.Format("January 2, 2006")
		}
	}
	return s
}

// renderCard renders a record as the details card. refColor is the ANSI
// prefix used for cross-references.
func renderCard(rec survey.Record, refColor string) string {
	var b strings.Builder

	fmt.Fprintf(&b, "\033[36m─── Sheet %s ───\033[0m\n", rec.Sheet())

	var tags []string
	for _, f := range []cardField{
		{"Region", survey.FieldRegion},
		{"Insula", survey.FieldInsula},
		{"Entrance", survey.FieldEntrance},
	} {
		if v, ok := rec.Field(f.name); ok {
			tags = append(tags, f.label+" "+v)
		}
	}
	if len(tags) > 0 {
		fmt.Fprintf(&b, "\033[35m%s\033[0m\n", strings.Join(tags, " · "))
	}
	b.WriteString("\n")

	for _, f := range metaFields {
		v, ok := rec.Field(f.name)
		if !ok {
			continue
		}
		if f.name == survey.FieldSheetDate {
			v = formatSheetDate(v)
		}
		writeCardField(&b, f.label, v)
	}

	writeCardHeading(&b, "Details")
	for _, f := range detailFields {
		if v, ok := rec.Field(f.name); ok {
			writeCardField(&b, f.label, v)
		}
	}

	if v, ok := rec.Field(survey.FieldDescription); ok {
		writeCardHeading(&b, "Description")
		fmt.Fprintf(&b, "  %s\n", v)
	}

	if v, ok := rec.Field(survey.FieldContiguousRelationship); ok {
		writeCardHeading(&b, "Contiguous Relationship")
		b.WriteString("  ")
		b.WriteString(renderLinked(v, refColor))
		b.WriteString("\n")
		if refs := survey.References(v); len(refs) > 0 {
			b.WriteString("  \033[90mPress f to follow a reference\033[0m\n")
		}
	}

	if n := len(rec.Photos); n > 0 {
		writeCardHeading(&b, "Photos")
		fmt.Fprintf(&b, "  %d %s \033[90m(see Photos panel, Enter to view)\033[0m\n", n, plural(n, "photo", "photos"))
	}

	writeCardHeading(&b, "Archive Information")
	for _, f := range archiveFields {
		if v, ok := rec.Field(f.name); ok {
			writeCardField(&b, f.label, v)
		}
	}
	if v, ok := rec.Field(survey.FieldVideoComments); ok {
		b.WriteString("  \033[33mVideo Comments:\033[0m\n")
		fmt.Fprintf(&b, "  %s\n", v)
	}

	return b.String()
}

// renderLinked colors the cross-references in text.
func renderLinked(text, refColor string) string {
	var b strings.Builder
	for _, seg := range survey.LinkReferences(text) {
		if seg.Kind == survey.SegmentReference {
			b.WriteString(refColor + seg.Text + colorReset)
			continue
		}
		b.WriteString(seg.Text)
	}
	return b.String()
}

func writeCardHeading(b *strings.Builder, title string) {
	fmt.Fprintf(b, "\n\033[36m─── %s ───\033[0m\n", title)
}

func writeCardField(b *strings.Builder, label, value string) {
	fmt.Fprintf(b, "  \033[33m%-17s\033[0m %s\n", label+":", value)
}

func plural(n int, one, many string) string {
	if n == 1 {
		return one
	}
	return many
}

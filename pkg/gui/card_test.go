package gui

import (
	"encoding/json"
	"strings"
	"testing"

	"github.com/marjoballabani/lazysurvey/pkg/survey"
)

func parseTestRecord(t *testing.T, doc string) survey.Record {
	t.Helper()
	rec, err := survey.ParseRecord(json.RawMessage(doc))
	if err != nil {
		t.Fatalf("ParseRecord() error = %v", err)
	}
	return rec
}

func TestFormatSheetDate(t *testing.T) {
	tests := []struct {
		input    string
		expected string
	}{
		{"1984-07-15", "July 15, 1984"},
		{"1984-07-15T00:00:00Z", "July 15, 1984"},
		{"1984-07-15 10:30:00", "July 15, 1984"},
		{"07/15/1984", "July 15, 1984"},
		{"summer 1984", "summer 1984"},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			if got := formatSheetDate(tt.input); got != tt.expected {
				t.Errorf("formatSheetDate(%q) = %q, expected %q", tt.input, got, tt.expected)
			}
		})
	}
}

func TestRenderCard(t *testing.T) {
	rec := parseTestRecord(t, `{
		"SHEET": 6083,
		"REGION": "VII",
		"INSULA": "12",
		"RECORDER_ID": "MR",
		"SHEET_DATE": "1984-07-15",
		"FEATURE_TYPE_ID": "Oven",
		"USAGE_ID": "",
		"DESCRIPTION": "Large bread oven",
		"CONTIGUOUS_RELATIONSHIP": "Oven (6084) next to mill 6085.",
		"VIDEO_COMMENTS": "Tape damaged",
		"photos": ["a.jpg", "b.jpg"]
	}`)

	out := renderCard(rec, "<ref>")

	for _, want := range []string{
		"Sheet 6083",
		"Region VII · Insula 12",
		"Recorder:",
		"July 15, 1984",
		"Feature Type:",
		"Large bread oven",
		"Oven <ref>(6084)\033[0m next to mill <ref>6085\033[0m.",
		"2 photos",
		"Archive Information",
		"Tape damaged",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("card missing %q\n%s", want, out)
		}
	}

	if strings.Contains(out, "Entrance") {
		t.Error("absent fields should not be rendered")
	}
	if strings.Contains(out, "Usage:") {
		t.Error("empty fields should not be rendered")
	}
}

func TestRenderCardMinimal(t *testing.T) {
	rec := parseTestRecord(t, `{"SHEET": "1"}`)
	out := renderCard(rec, "")

	if strings.Contains(out, "Description") || strings.Contains(out, "Photos") {
		t.Error("optional sections should be omitted")
	}
	if !strings.Contains(out, "Details") || !strings.Contains(out, "Archive Information") {
		t.Error("details and archive sections are always shown")
	}
}

func TestRenderLinkedPlainText(t *testing.T) {
	if got := renderLinked("no references here", "<ref>"); got != "no references here" {
		t.Errorf("renderLinked() = %q", got)
	}
}

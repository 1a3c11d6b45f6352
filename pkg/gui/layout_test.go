package gui

import (
	"strings"
	"testing"
)

func TestCountFields(t *testing.T) {
	tests := []struct {
		name     string
		data     any
		expected int
	}{
		{
			name:     "empty map",
			data:     map[string]any{},
			expected: 0,
		},
		{
			name:     "simple map",
			data:     map[string]any{"a": 1, "b": 2, "c": 3},
			expected: 3,
		},
		{
			name: "nested map",
			data: map[string]any{
				"a": 1,
				"b": map[string]any{
					"c": 2,
					"d": 3,
				},
			},
			expected: 4, // a, b, c, d
		},
		{
			name: "map with array",
			data: map[string]any{
				"items": []any{
					map[string]any{"id": 1},
					map[string]any{"id": 2},
				},
			},
			expected: 3, // items, id, id
		},
		{
			name:     "primitive value",
			data:     "string",
			expected: 0,
		},
		{
			name:     "nil",
			data:     nil,
			expected: 0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := countFields(tt.data)
			if result != tt.expected {
				t.Errorf("countFields() = %d, expected %d", result, tt.expected)
			}
		})
	}
}

func TestFormatBytes(t *testing.T) {
	tests := []struct {
		bytes    int
		expected string
	}{
		{0, "0 B"},
		{100, "100 B"},
		{1023, "1023 B"},
		{1024, "1.0 KB"},
		{1536, "1.5 KB"},
		{10240, "10.0 KB"},
		{1048576, "1.00 MB"},
		{1572864, "1.50 MB"},
	}

	for _, tt := range tests {
		t.Run(tt.expected, func(t *testing.T) {
			result := formatBytes(tt.bytes)
			if result != tt.expected {
				t.Errorf("formatBytes(%d) = %q, expected %q", tt.bytes, result, tt.expected)
			}
		})
	}
}

func TestRecordSummary(t *testing.T) {
	rec := parseTestRecord(t, `{"SHEET":"1042","REGION":"I","INSULA":"8","ENTRANCE":"3","FEATURE_TYPE_ID":"Hearth"}`)
	got := stripANSI(recordSummary(rec))
	if got != "Sheet 1042  I.8.3  Hearth" {
		t.Errorf("recordSummary() = %q", got)
	}

	rec = parseTestRecord(t, `{"SHEET":"7","DESCRIPTION":"Masonry counter with embedded dolia along the north wall"}`)
	got = stripANSI(recordSummary(rec))
	if got != "Sheet 7  Masonry counter with embedded dolia alo…" {
		t.Errorf("recordSummary() fallback = %q", got)
	}
}

func TestTruncate(t *testing.T) {
	if got := truncate("short", 10); got != "short" {
		t.Errorf("truncate() = %q", got)
	}
	if got := truncate("abcdefghij", 5); got != "abcd…" {
		t.Errorf("truncate() = %q", got)
	}
}

func TestCalculateRecordStats(t *testing.T) {
	doc := `{"SHEET":"1","REGION":"I","INSULA":"","NOTES":{"a":1},"photos":["x.jpg","y.jpg"]}`
	stats := calculateRecordStats(parseTestRecord(t, doc))

	if stats.sizeBytes != len(doc) {
		t.Errorf("sizeBytes = %d, expected %d", stats.sizeBytes, len(doc))
	}
	if stats.photos != 2 {
		t.Errorf("photos = %d, expected 2", stats.photos)
	}
	if stats.filled != 2 {
		t.Errorf("filled = %d, expected 2 (SHEET, REGION)", stats.filled)
	}
	// SHEET, REGION, INSULA, NOTES, a, photos
	if stats.fieldCount != 6 {
		t.Errorf("fieldCount = %d, expected 6", stats.fieldCount)
	}
}

func TestRenderLightbox(t *testing.T) {
	var l Lightbox
	l.Open("1042", []string{"a.jpg", "b.jpg"}, 1)

	out := stripANSI(renderLightbox(&l, "https://cdn.example.org/", nil, 10))
	if !strings.Contains(out, "https://cdn.example.org/b.jpg") {
		t.Errorf("lightbox should show the photo URL, got %q", out)
	}
	if !strings.Contains(out, "‹") || strings.Contains(out, "›") {
		t.Errorf("only the previous arrow should show on the last photo, got %q", out)
	}
	if !strings.Contains(out, l.Caption()) {
		t.Errorf("lightbox should show the caption, got %q", out)
	}

	out = stripANSI(renderLightbox(&l, "", map[string]bool{"b.jpg": true}, 10))
	if !strings.Contains(out, "photo unavailable: b.jpg") {
		t.Errorf("failed photo should show a placeholder, got %q", out)
	}

	l.Close()
	if out := renderLightbox(&l, "", nil, 10); out != "" {
		t.Errorf("closed lightbox renders nothing, got %q", out)
	}
}

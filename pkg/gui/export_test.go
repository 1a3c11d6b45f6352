package gui

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"
)

func TestSaveRecord(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "Downloads")

	path, err := saveRecord(dir, "6083", `{"SHEET": "6083"}`)
	if err != nil {
		t.Fatalf("saveRecord() error = %v", err)
	}
	if filepath.Base(path) != "sheet-6083.json" {
		t.Errorf("filename = %q, expected sheet-6083.json", filepath.Base(path))
	}
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	if string(data) != `{"SHEET": "6083"}` {
		t.Errorf("saved content = %q", data)
	}
}

func TestJqExport(t *testing.T) {
	rec := parseTestRecord(t, `{"SHEET": "6083", "photos": ["a.jpg", "b.jpg"]}`)

	out, ok := jqExport(".SHEET", rec)
	if !ok || out != `"6083"` {
		t.Errorf("single result = %q, %v", out, ok)
	}

	out, ok = jqExport(".photos[]", rec)
	if !ok {
		t.Fatal("multiple results should export")
	}
	var photos []string
	if err := json.Unmarshal([]byte(out), &photos); err != nil {
		t.Fatalf("multiple results should form a JSON array: %v", err)
	}
	if len(photos) != 2 {
		t.Errorf("exported %d photos, expected 2", len(photos))
	}

	if _, ok := jqExport(".[", rec); ok {
		t.Error("an invalid query should not export")
	}
}

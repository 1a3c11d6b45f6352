package gui

import (
	"encoding/json"
	"fmt"
	"strings"
	"testing"

	"github.com/pkg/errors"

	"github.com/marjoballabani/lazysurvey/pkg/survey"
)

// makeRecords builds n records with sheets 1000.. and the given description.
func makeRecords(t *testing.T, n int, desc func(i int) string) []survey.Record {
	t.Helper()
	records := make([]survey.Record, 0, n)
	for i := 0; i < n; i++ {
		doc := fmt.Sprintf(`{"SHEET": "%d", "DESCRIPTION": %q}`, 1000+i, desc(i))
		rec, err := survey.ParseRecord(json.RawMessage(doc))
		if err != nil {
			t.Fatal(err)
		}
		records = append(records, rec)
	}
	return records
}

func TestBrowseQueryResetsPage(t *testing.T) {
	b := newBrowseState()
	b.setRecords(makeRecords(t, 45, func(i int) string { return "oven" }))

	if !b.nextPage() || b.page != 2 {
		t.Fatalf("nextPage() failed, page = %d", b.page)
	}
	b.moveDown()

	b.setQuery("oven")
	if b.page != 1 || b.selected != 0 {
		t.Errorf("query change should reset to page 1 row 0, got page %d row %d", b.page, b.selected)
	}

	b.nextPage()
	b.setQuery("oven")
	if b.page != 2 {
		t.Error("setting the same query should not reset the page")
	}
}

func TestBrowsePaging(t *testing.T) {
	b := newBrowseState()
	b.setRecords(makeRecords(t, 45, func(i int) string { return "" }))

	if b.totalPages() != 3 {
		t.Fatalf("totalPages() = %d, expected 3", b.totalPages())
	}
	if b.prevPage() {
		t.Error("prevPage() on page 1 should be refused")
	}
	if !b.lastPage() || b.page != 3 {
		t.Errorf("lastPage() should move to 3, page = %d", b.page)
	}
	if b.nextPage() {
		t.Error("nextPage() on the last page should be refused")
	}
	if len(b.pageRecords()) != 5 {
		t.Errorf("last page should hold 5 records, got %d", len(b.pageRecords()))
	}
	if got := b.paginationText(); got != "Page 3 of 3 • Showing 41-45 of 45" {
		t.Errorf("paginationText() = %q", got)
	}
	if !b.firstPage() || b.page != 1 {
		t.Error("firstPage() should move back to page 1")
	}
	if got := b.paginationText(); got != "Page 1 of 3 • Showing 1-20 of 45" {
		t.Errorf("paginationText() = %q", got)
	}
}

func TestBrowseSelection(t *testing.T) {
	b := newBrowseState()
	b.setRecords(makeRecords(t, 3, func(i int) string { return "" }))

	if b.moveUp() {
		t.Error("moveUp() on the first row should be refused")
	}
	b.moveDown()
	b.moveDown()
	if b.moveDown() {
		t.Error("moveDown() on the last row should be refused")
	}
	rec, ok := b.selectedRecord()
	if !ok || rec.Sheet() != "1002" {
		t.Errorf("selectedRecord() = %q, %v", rec.Sheet(), ok)
	}
	if b.selectRow(5) {
		t.Error("selectRow() past the page should be refused")
	}
}

func TestBrowseEmpty(t *testing.T) {
	b := newBrowseState()
	if _, ok := b.selectedRecord(); ok {
		t.Error("no record should be selected without data")
	}
	if b.paginationText() != "" || b.pageStrip() != "" {
		t.Error("pagination should be hidden without results")
	}
}

func TestBrowseLocate(t *testing.T) {
	b := newBrowseState()
	b.setRecords(makeRecords(t, 45, func(i int) string {
		if i%2 == 0 {
			return "oven"
		}
		return "mill"
	}))

	if err := b.locate("1042"); err != nil {
		t.Fatalf("locate() error = %v", err)
	}
	if b.page != 3 || b.selected != 2 {
		t.Errorf("locate(1042) = page %d row %d, expected page 3 row 2", b.page, b.selected)
	}

	b.setQuery("mill")
	err := b.locate("1042")
	if !errors.Is(err, survey.ErrSheetNotFound) {
		t.Errorf("locate() of a filtered-out sheet should fail with ErrSheetNotFound, got %v", err)
	}
	if b.page != 1 {
		t.Error("a failed locate should not move")
	}
}

func TestBrowsePageStrip(t *testing.T) {
	b := newBrowseState()
	b.setRecords(makeRecords(t, 200, func(i int) string { return "" }))
	b.setPage(5)

	got := b.pageStrip()
	if got != "1 … 4 [5] 6 … 10" {
		t.Errorf("pageStrip() = %q", got)
	}
	if !strings.HasPrefix(got, "1") {
		t.Error("first page should always be listed")
	}
}

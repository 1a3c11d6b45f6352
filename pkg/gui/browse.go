package gui

import (
	"fmt"
	"strings"

	"github.com/marjoballabani/lazysurvey/pkg/survey"
)

// browseState is the search, page and row selection over the loaded
// records. Everything else is derived from it on each render.
type browseState struct {
	records  []survey.Record
	query    string
	page     int // 1-based
	selected int // row within the current page
}

func newBrowseState() *browseState {
	return &browseState{page: 1}
}

func (b *browseState) setRecords(records []survey.Record) {
	b.records = records
	b.page = 1
	b.selected = 0
}

// setQuery replaces the search text. Any change returns to page 1.
func (b *browseState) setQuery(query string) {
	if query == b.query {
		return
	}
	b.query = query
	b.page = 1
	b.selected = 0
}

func (b *browseState) reset() {
	b.query = ""
	b.page = 1
	b.selected = 0
}

func (b *browseState) filtered() []survey.Record {
	return survey.Filter(b.records, b.query)
}

func (b *browseState) totalPages() int {
	return survey.TotalPages(len(b.filtered()), survey.PageSize)
}

func (b *browseState) pageRecords() []survey.Record {
	return survey.Paginate(b.filtered(), b.page, survey.PageSize)
}

func (b *browseState) selectedRecord() (survey.Record, bool) {
	rows := b.pageRecords()
	if b.selected < 0 || b.selected >= len(rows) {
		return survey.Record{}, false
	}
	return rows[b.selected], true
}

// setPage moves to page p and selects its first row. Pages outside
// 1..totalPages are refused.
func (b *browseState) setPage(p int) bool {
	if p < 1 || p > b.totalPages() || p == b.page {
		return false
	}
	b.page = p
	b.selected = 0
	return true
}

func (b *browseState) nextPage() bool  { return b.setPage(b.page + 1) }
func (b *browseState) prevPage() bool  { return b.setPage(b.page - 1) }
func (b *browseState) firstPage() bool { return b.setPage(1) }
func (b *browseState) lastPage() bool  { return b.setPage(b.totalPages()) }

func (b *browseState) moveUp() bool {
	if b.selected == 0 {
		return false
	}
	b.selected--
	return true
}

func (b *browseState) moveDown() bool {
	if b.selected >= len(b.pageRecords())-1 {
		return false
	}
	b.selected++
	return true
}

// selectRow selects row i of the current page, e.g. from a mouse click.
func (b *browseState) selectRow(i int) bool {
	if i < 0 || i >= len(b.pageRecords()) {
		return false
	}
	b.selected = i
	return true
}

// locate moves to the page and row holding sheet within the current
// search results.
func (b *browseState) locate(sheet string) error {
	page, index, err := survey.LocateSheet(b.filtered(), sheet, survey.PageSize)
	if err != nil {
		return err
	}
	b.page = page
	b.selected = index
	return nil
}

// paginationText renders "Page p of T • Showing a-b of N".
func (b *browseState) paginationText() string {
	n := len(b.filtered())
	if n == 0 {
		return ""
	}
	start, end := survey.PageBounds(b.page, n, survey.PageSize)
	return fmt.Sprintf("Page %d of %d • Showing %d-%d of %d", b.page, b.totalPages(), start+1, end, n)
}

// pageStrip renders the condensed page-number list, bracketing the
// current page.
func (b *browseState) pageStrip() string {
	numbers := survey.PageNumbers(b.page, b.totalPages())
	if len(numbers) == 0 {
		return ""
	}
	parts := make([]string, 0, len(numbers))
	for _, n := range numbers {
		switch {
		case n == survey.Ellipsis:
			parts = append(parts, "…")
		case n == b.page:
			parts = append(parts, fmt.Sprintf("[%d]", n))
		default:
			parts = append(parts, fmt.Sprintf("%d", n))
		}
	}
	return strings.Join(parts, " ")
}

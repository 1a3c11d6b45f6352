package gui

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/itchyny/gojq"
	"github.com/jesseduffield/gocui"
	"github.com/pkg/errors"

	"github.com/marjoballabani/lazysurvey/pkg/survey"
)

// startFilter opens the input bar. The Records and Photos panels search
// the records; the Details panel filters the selected record's JSON.
func (g *Gui) startFilter(gui *gocui.Gui) error {
	if g.isModalOpen() || g.filterInputActive || g.lightbox.IsOpen() {
		return nil
	}
	panel := "records"
	if g.currentColumn == "details" {
		panel = "details"
		g.detailsFilter = ""
	} else {
		g.currentColumn = "records"
		g.applySearch("")
	}
	g.filterInputActive = true
	g.filterInputPanel = panel
	g.filterInputText = ""
	g.filterCursorPos = 0
	return g.Layout(gui)
}

func (g *Gui) commitFilter(gui *gocui.Gui) error {
	switch g.filterInputPanel {
	case "records":
		g.applySearch(g.filterInputText)
	case "details":
		g.detailsFilter = g.filterInputText
		g.detailsScrollPos = 0
	}

	// Exit input mode but keep filter active
	g.exitFilterInput()
	return g.Layout(gui)
}

// applySearch updates the record search. The result set follows every
// keystroke.
func (g *Gui) applySearch(query string) {
	if query == g.browse.query {
		return
	}
	g.browse.setQuery(query)
	g.recordChanged()
}

func (g *Gui) exitFilterInput() {
	g.filterInputActive = false
	g.filterInputText = ""
	g.filterInputPanel = ""
	g.filterCursorPos = 0
}

func (g *Gui) isFilteringPanel(panel string) bool {
	return g.filterInputActive && g.filterInputPanel == panel
}

func (g *Gui) getFilterForPanel(panel string) string {
	switch panel {
	case "records", "photos":
		return g.browse.query
	case "details":
		return g.detailsFilter
	}
	return ""
}

func (g *Gui) hasActiveFilter(panel string) bool {
	return g.getFilterForPanel(panel) != ""
}

func (g *Gui) clearCurrentFilter(gui *gocui.Gui) error {
	switch g.currentColumn {
	case "records", "photos":
		g.applySearch("")
	case "details":
		g.detailsFilter = ""
		g.detailsScrollPos = 0
	}
	return g.Layout(gui)
}

// cancelFilterInput abandons the input; the search it was editing is cleared.
func (g *Gui) cancelFilterInput(gui *gocui.Gui) error {
	if g.filterInputPanel == "records" {
		g.applySearch("")
	}
	g.exitFilterInput()
	return g.Layout(gui)
}

// insertFilterChar inserts a character at the cursor position
func (g *Gui) insertFilterChar(gui *gocui.Gui, ch rune) error {
	g.filterInputText = g.filterInputText[:g.filterCursorPos] + string(ch) + g.filterInputText[g.filterCursorPos:]
	g.filterCursorPos += len(string(ch))
	g.filterInputChanged()
	return g.Layout(gui)
}

func (g *Gui) filterInputChanged() {
	if g.filterInputPanel == "records" {
		g.applySearch(g.filterInputText)
	}
}

// getDetailsFilter returns the active filter for details panel
func (g *Gui) getDetailsFilter() string {
	if g.isFilteringPanel("details") {
		return g.filterInputText
	}
	return g.detailsFilter
}

// filterLines keeps the lines of a JSON document that contain filter.
func filterLines(doc, filter string) []string {
	var matched []string
	for _, line := range strings.Split(doc, "\n") {
		if survey.MatchesFilter(line, filter) {
			matched = append(matched, line)
		}
	}
	return matched
}

// runJq evaluates query against data and returns each result as indented
// JSON. An evaluation error stops at the failing result.
func runJq(query string, data any) ([]string, error) {
	jqQuery, err := gojq.Parse(query)
	if err != nil {
		return nil, errors.Wrap(err, "jq parse error")
	}

	var results []string
	iter := jqQuery.Run(data)
	for {
		result, ok := iter.Next()
		if !ok {
			break
		}
		if err, isErr := result.(error); isErr {
			return results, errors.Wrap(err, "jq error")
		}
		out, err := json.MarshalIndent(result, "", "  ")
		if err != nil {
			results = append(results, fmt.Sprintf("%v", result))
			continue
		}
		results = append(results, string(out))
	}
	return results, nil
}

// renderFilteredDetails shows only JSON lines that match the filter
// If filter starts with "." it's treated as a jq query
func (g *Gui) renderFilteredDetails(rec survey.Record) string {
	filter := g.getDetailsFilter()

	var content strings.Builder
	if strings.HasPrefix(filter, ".") {
		content.WriteString(fmt.Sprintf("\033[36m─── Sheet %s (jq: %s) ───\033[0m\n\n", rec.Sheet(), filter))
		results, err := runJq(filter, rec.Data())
		for _, r := range results {
			content.WriteString(colorizeJSON(r))
			content.WriteString("\n")
		}
		if err != nil {
			content.WriteString(fmt.Sprintf("\033[31m%v\033[0m\n", err))
		} else if len(results) == 0 {
			content.WriteString("\033[90mnull\033[0m\n")
		}
		return content.String()
	}

	pretty, err := rec.Pretty()
	if err != nil {
		return fmt.Sprintf("Error formatting data: %v\n", err)
	}

	content.WriteString(fmt.Sprintf("\033[36m─── Sheet %s (filtered) ───\033[0m\n\n", rec.Sheet()))
	lines := filterLines(pretty, filter)
	for _, line := range lines {
		content.WriteString(colorizeJSON(line))
		content.WriteString("\n")
	}
	if len(lines) == 0 {
		content.WriteString("\033[90mNo matching lines\033[0m\n")
	}
	return content.String()
}

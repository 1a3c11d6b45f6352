package gui

import (
	"fmt"

	"github.com/jesseduffield/gocui"
	"go.uber.org/zap"

	"github.com/marjoballabani/lazysurvey/pkg/survey"
)

// Actions - clean handler functions without state checks.
// State checks are handled by the binding system's contexts and GetDisabledReason.

// doQuit exits the application
func (g *Gui) doQuit() error {
	return gocui.ErrQuit
}

// doEscape handles escape key - closes overlays, cancels filter, or clears filter
func (g *Gui) doEscape() error {
	// Priority: popup > command log > lightbox > filter input > committed filter
	switch {
	case !g.gate.Authenticated():
		return nil
	case g.popup != nil:
		g.popup = nil
		return g.Layout(g.g)
	case g.modalOpen:
		g.modalOpen = false
		return g.Layout(g.g)
	case g.lightbox.IsOpen():
		g.lightbox.HandleKey(gocui.KeyEsc, 0)
		return g.Layout(g.g)
	case g.filterInputActive:
		return g.cancelFilterInput(g.g)
	case g.hasActiveFilter(g.currentColumn):
		return g.clearCurrentFilter(g.g)
	}
	return nil
}

// doToggleHelp toggles the help popup
func (g *Gui) doToggleHelp() error {
	if g.popup != nil {
		g.popup = nil
	} else {
		g.buildHelpPopup()
	}
	return g.Layout(g.g)
}

// doToggleModal toggles the command log modal
func (g *Gui) doToggleModal() error {
	g.modalOpen = !g.modalOpen
	return g.Layout(g.g)
}

func (g *Gui) doLogout() error {
	g.logout()
	return g.Layout(g.g)
}

// Context-specific handlers for popups
func (g *Gui) popupMoveUp() error {
	if g.popup != nil {
		g.popup.MoveUp()
	}
	return g.Layout(g.g)
}

func (g *Gui) popupMoveDown() error {
	if g.popup != nil {
		g.popup.MoveDown()
	}
	return g.Layout(g.g)
}

func (g *Gui) popupClose() error {
	g.popup = nil
	return g.Layout(g.g)
}

func (g *Gui) popupExecute() error {
	// Get selected item before closing
	var action func() error
	if g.popup != nil {
		item := g.popup.GetSelectedItem()
		if item != nil && item.Action != nil {
			action = item.Action
		}
	}

	g.popup = nil

	if action != nil {
		return action()
	}
	return g.Layout(g.g)
}

// Sign-in form handlers
func (g *Gui) loginToggleField() error {
	g.login.toggleField()
	return g.Layout(g.g)
}

func (g *Gui) loginBackspace() error {
	g.login.backspace()
	return g.Layout(g.g)
}

func (g *Gui) loginSubmit() error {
	if !g.login.submit(g.gate) {
		g.logger.Info("sign-in rejected")
		return g.Layout(g.g)
	}
	g.logger.Info("signed in", zap.String("session", g.gate.ID()))
	g.logCommand("auth", "Signed in", "success")
	g.startLoad()
	return g.Layout(g.g)
}

// insertChar types a character into the active input
func (g *Gui) insertChar(ch rune) error {
	switch g.getContext() {
	case ContextLogin:
		g.login.insert(ch)
		return g.Layout(g.g)
	case ContextFilter:
		return g.insertFilterChar(g.g, ch)
	}
	return nil
}

// Context-specific handlers for filter mode
func (g *Gui) filterCursorLeft() error {
	if g.filterCursorPos > 0 {
		g.filterCursorPos--
	}
	return g.Layout(g.g)
}

func (g *Gui) filterCursorRight() error {
	if g.filterCursorPos < len(g.filterInputText) {
		g.filterCursorPos++
	}
	return g.Layout(g.g)
}

// filterCommit commits the filter
func (g *Gui) filterCommit() error {
	return g.commitFilter(g.g)
}

// doStartFilter starts filter mode for current panel
func (g *Gui) doStartFilter() error {
	return g.startFilter(g.g)
}

// doFilterBackspace handles backspace in filter mode
func (g *Gui) doFilterBackspace() error {
	if g.filterCursorPos > 0 && len(g.filterInputText) > 0 {
		g.filterInputText = g.filterInputText[:g.filterCursorPos-1] + g.filterInputText[g.filterCursorPos:]
		g.filterCursorPos--
		g.filterInputChanged()
	}
	return g.Layout(g.g)
}

// Block handler - does nothing
func (g *Gui) blockAction() error {
	return nil
}

// makeLightboxKey forwards a key to the photo viewer
func (g *Gui) makeLightboxKey(key gocui.Key, ch rune) func() error {
	return func() error {
		g.lightbox.HandleKey(key, ch)
		return g.Layout(g.g)
	}
}

var columnOrder = []string{"records", "details", "photos"}

func (g *Gui) columnOffset(delta int) string {
	for i, c := range columnOrder {
		if c == g.currentColumn {
			return columnOrder[(i+delta+len(columnOrder))%len(columnOrder)]
		}
	}
	return columnOrder[0]
}

// doColumnLeft switches to the panel on the left
func (g *Gui) doColumnLeft() error {
	return g.setFocus(g.g, g.columnOffset(-1))
}

// doColumnRight switches to the panel on the right
func (g *Gui) doColumnRight() error {
	return g.setFocus(g.g, g.columnOffset(1))
}

// doNextColumn cycles to the next panel
func (g *Gui) doNextColumn() error {
	return g.setFocus(g.g, g.columnOffset(1))
}

// doCursorUp moves selection up in current panel
func (g *Gui) doCursorUp() error {
	switch g.currentColumn {
	case "records":
		if g.browse.moveUp() {
			g.recordChanged()
		}
	case "details":
		if g.detailsScrollPos > 0 {
			g.detailsScrollPos--
		}
	case "photos":
		if g.photoIdx > 0 {
			g.photoIdx--
		}
	}
	return g.Layout(g.g)
}

// doCursorDown moves selection down in current panel
func (g *Gui) doCursorDown() error {
	switch g.currentColumn {
	case "records":
		if g.browse.moveDown() {
			g.recordChanged()
		}
	case "details":
		g.detailsScrollPos++
	case "photos":
		if rec, ok := g.browse.selectedRecord(); ok && g.photoIdx < len(rec.Photos)-1 {
			g.photoIdx++
		}
	}
	return g.Layout(g.g)
}

// doEnter - normal mode enter handler
func (g *Gui) doEnter() error {
	switch g.currentColumn {
	case "records":
		if _, ok := g.browse.selectedRecord(); ok {
			return g.setFocus(g.g, "details")
		}
	case "photos":
		return g.openLightbox()
	}
	return nil
}

// openLightbox shows the photo under the Photos panel cursor
func (g *Gui) openLightbox() error {
	rec, ok := g.browse.selectedRecord()
	if !ok {
		return nil
	}
	if !g.lightbox.Open(rec.Sheet(), rec.Photos, g.photoIdx) {
		g.logCommand("photo", fmt.Sprintf("Sheet %s has no photos", rec.Sheet()), "warning")
	}
	return g.Layout(g.g)
}

// Paging

func (g *Gui) changePage(move func() bool, edge string) error {
	if !move() {
		g.logCommand("page", edge, "warning")
		return g.Layout(g.g)
	}
	g.recordChanged()
	g.logger.Debug("page changed", zap.Int("page", g.browse.page))
	return g.Layout(g.g)
}

func (g *Gui) doNextPage() error {
	return g.changePage(g.browse.nextPage, "Already on the last page")
}

func (g *Gui) doPrevPage() error {
	return g.changePage(g.browse.prevPage, "Already on the first page")
}

func (g *Gui) doFirstPage() error {
	return g.changePage(g.browse.firstPage, "Already on the first page")
}

func (g *Gui) doLastPage() error {
	return g.changePage(g.browse.lastPage, "Already on the last page")
}

// doCopyJSON copies the selected record to the clipboard
func (g *Gui) doCopyJSON() error {
	return g.copyJSONAction()
}

// doSaveJSON saves the selected record to a file
func (g *Gui) doSaveJSON() error {
	return g.saveJSONAction()
}

// doFollowReference navigates to a sheet named in the selected record's
// contiguous relationship. Several references open a picker.
func (g *Gui) doFollowReference() error {
	rec, ok := g.browse.selectedRecord()
	if !ok {
		return nil
	}
	refs := survey.References(rec.Value(survey.FieldContiguousRelationship))
	switch len(refs) {
	case 0:
		g.logCommand("goto", fmt.Sprintf("Sheet %s has no cross-references", rec.Sheet()), "warning")
		return g.Layout(g.g)
	case 1:
		return g.navigateToSheet(refs[0])
	}
	g.buildReferencePopup(rec, refs)
	return g.Layout(g.g)
}

// doToggleRaw switches the details panel between card and raw JSON
func (g *Gui) doToggleRaw() error {
	g.rawView = !g.rawView
	g.detailsScrollPos = 0
	return g.Layout(g.g)
}

func (g *Gui) doOpenPhoto() error {
	return g.openPhotoAction()
}

// Mouse click handlers

// clickedLine returns the buffer line under the mouse in view name.
func (g *Gui) clickedLine(name string) (int, bool) {
	v, _ := g.g.View(name)
	if v == nil {
		return 0, false
	}
	_, cy := v.Cursor()
	_, oy := v.Origin()
	return cy + oy, true
}

func (g *Gui) doPopupClick() error {
	if g.popup == nil {
		return nil
	}
	if line, ok := g.clickedLine(g.views.popup); ok {
		g.popup.Select(line)
	}
	return g.Layout(g.g)
}

// closeOverlayOnClick closes a popup when clicking elsewhere. It reports
// whether the click should be ignored.
func (g *Gui) closeOverlayOnClick() bool {
	if !g.gate.Authenticated() || g.modalOpen || g.lightbox.IsOpen() || g.filterInputActive {
		return true
	}
	if g.popup != nil {
		g.popup = nil
		return true
	}
	return false
}

func (g *Gui) doRecordsClick() error {
	if g.closeOverlayOnClick() {
		return g.Layout(g.g)
	}
	g.currentColumn = "records"
	if line, ok := g.clickedLine(g.views.records); ok && line != g.browse.selected {
		if g.browse.selectRow(line) {
			g.recordChanged()
		}
	}
	return g.Layout(g.g)
}

func (g *Gui) doDetailsClick() error {
	if g.closeOverlayOnClick() {
		return g.Layout(g.g)
	}
	g.currentColumn = "details"
	return g.Layout(g.g)
}

func (g *Gui) doPhotosClick() error {
	if g.closeOverlayOnClick() {
		return g.Layout(g.g)
	}
	g.currentColumn = "photos"
	if line, ok := g.clickedLine(g.views.photos); ok {
		if rec, ok := g.browse.selectedRecord(); ok && line < len(rec.Photos) {
			g.photoIdx = line
		}
	}
	return g.Layout(g.g)
}

// doLightboxClick navigates by clicking the left or right third of the viewer
func (g *Gui) doLightboxClick() error {
	if !g.lightbox.IsOpen() || g.popup != nil || g.modalOpen {
		return nil
	}
	v, _ := g.g.View(g.views.lightbox)
	if v == nil {
		return nil
	}
	cx, _ := v.Cursor()
	width, _ := v.Size()
	switch {
	case cx < width/3:
		g.lightbox.Prev()
	case cx >= width*2/3:
		g.lightbox.Next()
	}
	return g.Layout(g.g)
}

func (g *Gui) doOutsideClick() error {
	if g.popup != nil {
		g.popup = nil
		return g.Layout(g.g)
	}
	if g.lightbox.IsOpen() && !g.modalOpen {
		g.lightbox.Close()
		return g.Layout(g.g)
	}
	return nil
}

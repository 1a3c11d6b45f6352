package gui

import (
	"fmt"
	"strings"
	"time"

	"github.com/jesseduffield/gocui"
	"go.uber.org/zap"

	"github.com/marjoballabani/lazysurvey/pkg/gui/icons"
	"github.com/marjoballabani/lazysurvey/pkg/survey"
)

// highlightDuration is how long a row stays highlighted after navigation.
const highlightDuration = 2 * time.Second

// State checking helpers

func (g *Gui) isModalOpen() bool {
	return g.modalOpen || g.popup != nil
}

// setFocus sets the current column and updates gocui's current view
func (g *Gui) setFocus(gui *gocui.Gui, column string) error {
	g.currentColumn = column
	if _, err := gui.SetCurrentView(column); err != nil {
		return err
	}
	return nil
}

// selectedPhoto returns the photo under the Photos panel cursor.
func (g *Gui) selectedPhoto() (string, bool) {
	rec, ok := g.browse.selectedRecord()
	if !ok || g.photoIdx < 0 || g.photoIdx >= len(rec.Photos) {
		return "", false
	}
	return rec.Photos[g.photoIdx], true
}

// recordChanged resets everything tied to the selected record. An open
// lightbox belongs to the old record and is closed.
func (g *Gui) recordChanged() {
	g.lightbox.Close()
	g.photoIdx = 0
	g.detailsScrollPos = 0
}

// navigateToSheet jumps to a sheet within the current search results.
func (g *Gui) navigateToSheet(sheet string) error {
	if err := g.browse.locate(sheet); err != nil {
		g.logger.Info("sheet not in current results",
			zap.String("sheet", sheet),
			zap.String("query", g.browse.query))
		g.logCommand("goto", fmt.Sprintf("Sheet %s not found in current results. Try clearing your search.", sheet), "warning")
		return g.Layout(g.g)
	}

	g.recordChanged()
	g.currentColumn = "records"
	g.flashRow(sheet)
	g.logger.Debug("navigated to sheet", zap.String("sheet", sheet), zap.Int("page", g.browse.page))
	g.logCommand("goto", fmt.Sprintf("Sheet %s (page %d)", sheet, g.browse.page), "success")
	return g.Layout(g.g)
}

// flashRow highlights the row of sheet for highlightDuration. A newer
// flash replaces an older one.
func (g *Gui) flashRow(sheet string) {
	g.highlightSheet = sheet
	g.highlightGen++
	gen := g.highlightGen
	time.AfterFunc(highlightDuration, func() {
		g.g.Update(func(gui *gocui.Gui) error {
			if g.highlightGen == gen {
				g.highlightSheet = ""
			}
			return nil
		})
	})
}

// startLoad fetches the records once per process, after the first sign-in.
func (g *Gui) startLoad() {
	if g.loadStarted || g.load == nil {
		return
	}
	g.loadStarted = true
	g.isLoading.Store(true)
	g.loadingText = "Loading Pompeii Survey Data..."
	g.logCommand("load", "Loading records...", "running")

	ctx := g.ctx
	go func() {
		started := time.Now()
		store, err := g.load(ctx)

		g.g.Update(func(gui *gocui.Gui) error {
			g.isLoading.Store(false)
			g.loadingText = ""
			if err != nil {
				g.logger.Error("load records", zap.Error(err))
				g.logCommand("load", fmt.Sprintf("Failed: %v", err), "error")
				return nil
			}

			g.store = store
			g.browse.setRecords(store.Records())
			g.recordChanged()
			g.logger.Info("records loaded",
				zap.String("source", store.Source()),
				zap.Int("records", store.Len()),
				zap.Int("dropped", store.Dropped()),
				zap.Duration("elapsed", time.Since(started)),
				zap.String("session", g.gate.ID()))
			g.logCommand("load", fmt.Sprintf("Loaded %d records (%d dropped)", store.Len(), store.Dropped()), "success")

			if g.initialSheet != "" {
				sheet := g.initialSheet
				g.initialSheet = ""
				return g.navigateToSheet(sheet)
			}
			return nil
		})
	}()
}

// logout returns to the sign-in modal. The loaded records are kept.
func (g *Gui) logout() {
	g.logger.Info("signed out", zap.String("session", g.gate.ID()))
	g.gate.Logout()
	g.browse.reset()
	g.recordChanged()
	g.detailsFilter = ""
	g.rawView = false
	g.filterInputActive = false
	g.filterInputText = ""
	g.filterInputPanel = ""
	g.filterCursorPos = 0
	g.popup = nil
	g.modalOpen = false
	g.login.clear()
	g.currentColumn = "records"
	g.logCommand("auth", "Signed out", "success")
}

// Popup builders

func (g *Gui) buildHelpPopup() {
	items := []PopupItem{
		{Key: "", Label: "Global", IsHeader: true},
		{Key: "←/→ h/l", Label: "Switch panels"},
		{Key: "↑/↓ j/k", Label: "Move up/down"},
		{Key: "/", Label: "Search / Filter", Action: g.doStartFilter},
		{Key: "n / p", Label: "Next / previous page", Action: g.doNextPage},
		{Key: "g / G", Label: "First / last page", Action: g.doFirstPage},
		{Key: "Esc", Label: "Back / Clear / Close"},
		{Key: "@", Label: "Command log", Action: g.doToggleModal},
		{Key: "L", Label: "Sign out", Action: g.doLogout},
		{Key: "?", Label: "This help"},
		{Key: "q", Label: "Quit", Action: g.doQuit},
		{Key: "", Label: g.getPanelName(), IsHeader: true},
	}

	switch g.currentColumn {
	case "records":
		items = append(items,
			PopupItem{Key: "Enter", Label: "Show record", Action: g.doEnter},
			PopupItem{Key: "f", Label: "Follow a cross-reference", Action: g.doFollowReference},
			PopupItem{Key: "c", Label: "Copy JSON to clipboard", Action: g.doCopyJSON},
			PopupItem{Key: "s", Label: "Save JSON to Downloads", Action: g.doSaveJSON},
		)
	case "details":
		items = append(items,
			PopupItem{Key: "j/k", Label: "Scroll content"},
			PopupItem{Key: "v", Label: "Card / raw JSON", Action: g.doToggleRaw},
			PopupItem{Key: "/", Label: "Filter lines (.jq for jq)", Action: g.doStartFilter},
			PopupItem{Key: "f", Label: "Follow a cross-reference", Action: g.doFollowReference},
			PopupItem{Key: "c", Label: "Copy JSON to clipboard", Action: g.doCopyJSON},
			PopupItem{Key: "s", Label: "Save JSON to Downloads", Action: g.doSaveJSON},
		)
	case "photos":
		items = append(items,
			PopupItem{Key: "Enter", Label: "View photo", Action: g.doEnter},
			PopupItem{Key: "o", Label: "Open photo externally", Action: g.doOpenPhoto},
			PopupItem{Key: "←/→", Label: "Previous / next photo (viewer)"},
		)
	}

	g.popup = NewPopup("Keyboard Shortcuts", items, g.theme)
}

// buildReferencePopup lists the sheets a record refers to.
func (g *Gui) buildReferencePopup(rec survey.Record, refs []string) {
	items := []PopupItem{
		{Label: fmt.Sprintf("Sheet %s refers to", rec.Sheet()), IsHeader: true},
	}
	for i, ref := range refs {
		sheet := ref
		items = append(items, PopupItem{
			Key:   fmt.Sprintf("%d", i+1),
			Label: strings.TrimSpace(icons.LINK_ICON + " Sheet " + sheet),
			Action: func() error {
				return g.navigateToSheet(sheet)
			},
		})
	}
	g.popup = NewPopup("Follow Reference", items, g.theme)
}

func (g *Gui) getPanelName() string {
	return g.getPanelNameFor(g.currentColumn)
}

func (g *Gui) getPanelNameFor(panel string) string {
	switch panel {
	case "records":
		return "Records"
	case "details":
		return "Details"
	case "photos":
		return "Photos"
	default:
		return "Panel"
	}
}

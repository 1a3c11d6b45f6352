package gui

import (
	"errors"
	"fmt"
	"strings"

	"github.com/jesseduffield/gocui"

	"github.com/marjoballabani/lazysurvey/pkg/gui/icons"
	"github.com/marjoballabani/lazysurvey/pkg/survey"
)

func (g *Gui) Layout(gui *gocui.Gui) error {
	maxX, maxY := gui.Size()

	// Background view (covers entire screen, behind everything)
	if v, err := gui.SetView(g.views.background, -1, -1, maxX, maxY, 0); err != nil {
		if !errors.Is(err, gocui.ErrUnknownView) {
			return err
		}
		v.Frame = false
		v.BgColor = gocui.ColorDefault
		v.FgColor = gocui.ColorDefault
	}

	// Left panel width (1/3 of screen)
	leftWidth := maxX / 3
	commandsHeight := 3
	photosHeight := 6
	if g.currentColumn == "photos" {
		photosHeight = 10
	}
	detailsBottom := maxY - commandsHeight - 3 - photosHeight

	// Records panel (left, full height)
	if v, err := gui.SetView(g.views.records, 0, 0, leftWidth-1, maxY-3, 0); err != nil {
		if !errors.Is(err, gocui.ErrUnknownView) {
			return err
		}
		g.initPanel(v)
	}

	if v, err := gui.View(g.views.records); err == nil {
		g.styleFrame(gui, v, "records")
		v.Title = " " + icons.RECORDS_ICON + " Records "
		if g.browse.query != "" {
			v.Title = fmt.Sprintf(" %s Records matching '%s' ", icons.RECORDS_ICON, g.browse.query)
		}
		v.Footer = g.browse.pageStrip()
		g.updateRecordsView(v)
	}

	// Details panel (top-right, big)
	if v, err := gui.SetView(g.views.details, leftWidth, 0, maxX-1, detailsBottom, 0); err != nil {
		if !errors.Is(err, gocui.ErrUnknownView) {
			return err
		}
		g.initPanel(v)
		v.Wrap = true
		v.SelBgColor = gocui.ColorDefault
	}

	if v, err := gui.View(g.views.details); err == nil {
		g.styleFrame(gui, v, "details")
		switch {
		case g.hasActiveFilter("details"):
			v.Title = " " + icons.DETAILS_ICON + " Details (filtered) "
		case g.rawView:
			v.Title = " " + icons.DETAILS_ICON + " Details (raw JSON) "
		case g.currentColumn == "details":
			v.Title = " " + icons.DETAILS_ICON + " Details (j/k scroll) "
		default:
			v.Title = " " + icons.DETAILS_ICON + " Details "
		}
		g.updateDetailsView(v)
		if last := strings.Count(g.detailsContent, "\n"); g.detailsScrollPos > last {
			g.detailsScrollPos = last
		}
		v.SetOrigin(0, g.detailsScrollPos)
	}

	// Photos panel (right, below details)
	if v, err := gui.SetView(g.views.photos, leftWidth, detailsBottom+1, maxX-1, maxY-commandsHeight-3, 0); err != nil {
		if !errors.Is(err, gocui.ErrUnknownView) {
			return err
		}
		g.initPanel(v)
	}

	if v, err := gui.View(g.views.photos); err == nil {
		g.styleFrame(gui, v, "photos")
		v.Title = " " + icons.PHOTO_ICON + " Photos "
		g.updatePhotosView(v)
	}

	// Commands panel (bottom-right, single row)
	if v, err := gui.SetView(g.views.commands, leftWidth, maxY-commandsHeight-2, maxX-1, maxY-3, 0); err != nil {
		if !errors.Is(err, gocui.ErrUnknownView) {
			return err
		}
		g.initPanel(v)
		v.Title = " " + icons.COMMAND_ICON + " Commands "
		v.SelBgColor = gocui.ColorDefault
	}

	if v, err := gui.View(g.views.commands); err == nil {
		g.updateCommandsView(v)
	}

	// Help bar (bottom, full width)
	if v, err := gui.SetView(g.views.help, 0, maxY-2, maxX-1, maxY, 0); err != nil {
		if !errors.Is(err, gocui.ErrUnknownView) {
			return err
		}
		v.Frame = false
		v.BgColor = gocui.ColorDefault
		v.FgColor = gocui.ColorDefault
		v.SelBgColor = gocui.ColorDefault
		v.SelFgColor = gocui.ColorDefault
	}

	if v, err := gui.View(g.views.help); err == nil {
		g.updateHelpView(v)
	}

	// Sign-in modal hides everything until the gate opens
	if !g.gate.Authenticated() {
		return g.layoutLogin(gui, maxX, maxY)
	}
	_ = gui.DeleteView(g.views.login)

	// Photo viewer
	if g.lightbox.IsOpen() {
		if err := g.layoutLightbox(gui, maxX, maxY); err != nil {
			return err
		}
	} else {
		_ = gui.DeleteView(g.views.lightbox)
	}

	// Popup (help or reference picker)
	if g.popup != nil {
		modalWidth := 52
		modalHeight := g.popup.Height() + 1
		if modalHeight > maxY-4 {
			modalHeight = maxY - 4
		}
		modalX := (maxX - modalWidth) / 2
		modalY := (maxY - modalHeight) / 2

		if v, err := gui.SetView(g.views.popup, modalX, modalY, modalX+modalWidth, modalY+modalHeight, 0); err != nil {
			if !errors.Is(err, gocui.ErrUnknownView) {
				return err
			}
			v.TitleColor = g.theme.ActiveBorderColor
			v.FrameColor = g.theme.ActiveBorderColor
			v.FrameRunes = g.roundedFrameRunes
			v.SelBgColor = g.theme.SelectedLineBgColor
			v.SelFgColor = gocui.ColorDefault
		}

		if v, err := gui.View(g.views.popup); err == nil {
			v.Title = " " + icons.KEYBOARD_ICON + " " + g.popup.Title + " "
			g.popup.Render(v)
			if _, err := gui.SetCurrentView(g.views.popup); err != nil {
				return fmt.Errorf("failed to set popup view: %w", err)
			}
		}

		return nil
	}
	_ = gui.DeleteView(g.views.popup)

	// Modal (centered popup for command logs)
	if g.modalOpen {
		modalWidth := maxX - 10
		modalHeight := 15
		if modalHeight > maxY-6 {
			modalHeight = maxY - 6
		}
		modalX := (maxX - modalWidth) / 2
		modalY := (maxY - modalHeight) / 2

		if v, err := gui.SetView(g.views.modal, modalX, modalY, modalX+modalWidth, modalY+modalHeight, 0); err != nil {
			if !errors.Is(err, gocui.ErrUnknownView) {
				return err
			}
			v.Title = " Command Log "
			v.BgColor = gocui.ColorDefault
			v.FgColor = gocui.ColorDefault
			v.SelBgColor = gocui.ColorDefault
			v.SelFgColor = gocui.ColorDefault
			v.FrameRunes = g.roundedFrameRunes
			v.Wrap = true
		}

		if v, err := gui.View(g.views.modal); err == nil {
			v.Clear()
			if len(g.commandHistory) == 0 {
				fmt.Fprintln(v, "  No commands yet")
			} else {
				for _, cmd := range g.commandHistory {
					fmt.Fprintf(v, "  [%s] %s%s\033[0m: %s\n", cmd.Timestamp, statusColor(cmd.Status), cmd.Command, cmd.Description)
				}
			}
			fmt.Fprintln(v, "")
			fmt.Fprintf(v, "  %sPress Esc or @ to close\033[0m\n", g.getActiveColorCode())
			if _, err := gui.SetCurrentView(g.views.modal); err != nil {
				return fmt.Errorf("failed to set modal view: %w", err)
			}
		}

		return nil
	}
	_ = gui.DeleteView(g.views.modal)

	if g.lightbox.IsOpen() {
		if _, err := gui.SetCurrentView(g.views.lightbox); err != nil {
			return fmt.Errorf("failed to set lightbox view: %w", err)
		}
		return nil
	}

	// Set current view
	viewName := g.views.records
	switch g.currentColumn {
	case "details":
		viewName = g.views.details
	case "photos":
		viewName = g.views.photos
	}
	if _, err := gui.SetCurrentView(viewName); err != nil {
		return fmt.Errorf("failed to set current view '%s': %w", viewName, err)
	}

	return nil
}

// initPanel applies the shared look of a freshly created panel.
func (g *Gui) initPanel(v *gocui.View) {
	v.TitleColor = g.theme.InactiveBorderColor
	v.BgColor = gocui.ColorDefault
	v.FgColor = gocui.ColorDefault
	v.SelBgColor = g.theme.SelectedLineBgColor
	v.SelFgColor = gocui.ColorDefault
	v.FrameRunes = g.roundedFrameRunes
}

// styleFrame colors a panel's frame: filter color when focused with a
// committed filter, active color when focused, inactive otherwise.
func (g *Gui) styleFrame(gui *gocui.Gui, v *gocui.View, panel string) {
	isFocused := g.currentColumn == panel
	hasCommittedFilter := g.hasActiveFilter(panel) && !g.isFilteringPanel(panel)

	switch {
	case isFocused && hasCommittedFilter:
		// Must set global SelFrameColor because gocui uses it for focused views
		gui.SelFrameColor = g.theme.FilterBorderColor
		gui.SelFgColor = g.theme.FilterBorderColor
		v.TitleColor = g.theme.FilterBorderColor
		v.FrameColor = g.theme.FilterBorderColor
	case isFocused:
		gui.SelFrameColor = g.theme.ActiveBorderColor
		gui.SelFgColor = g.theme.ActiveBorderColor
		v.TitleColor = g.theme.ActiveBorderColor
		v.FrameColor = g.theme.ActiveBorderColor
	default:
		v.TitleColor = g.theme.InactiveBorderColor
		v.FrameColor = g.theme.InactiveBorderColor
	}
}

func (g *Gui) layoutLogin(gui *gocui.Gui, maxX, maxY int) error {
	width, height := 54, 14
	x0 := (maxX - width) / 2
	y0 := (maxY - height) / 2

	if v, err := gui.SetView(g.views.login, x0, y0, x0+width, y0+height, 0); err != nil {
		if !errors.Is(err, gocui.ErrUnknownView) {
			return err
		}
		v.Title = " " + icons.LOCK_ICON + " Sign in "
		v.TitleColor = g.theme.ActiveBorderColor
		v.FrameColor = g.theme.ActiveBorderColor
		v.FrameRunes = g.roundedFrameRunes
	}

	if v, err := gui.View(g.views.login); err == nil {
		v.SetContent(g.login.render())
		if _, err := gui.SetCurrentView(g.views.login); err != nil {
			return fmt.Errorf("failed to set login view: %w", err)
		}
	}
	return nil
}

func (g *Gui) layoutLightbox(gui *gocui.Gui, maxX, maxY int) error {
	x0, y0 := 4, 2
	x1, y1 := maxX-5, maxY-4

	if v, err := gui.SetView(g.views.lightbox, x0, y0, x1, y1, 0); err != nil {
		if !errors.Is(err, gocui.ErrUnknownView) {
			return err
		}
		v.TitleColor = g.theme.ActiveBorderColor
		v.FrameColor = g.theme.ActiveBorderColor
		v.FrameRunes = g.roundedFrameRunes
		v.Wrap = true
	}

	if v, err := gui.View(g.views.lightbox); err == nil {
		_, height := v.Size()
		v.Title = fmt.Sprintf(" %s Sheet %s ", icons.PHOTO_ICON, g.lightbox.Sheet())
		v.SetContent(renderLightbox(&g.lightbox, g.config.Photos.BaseURL, g.photoErrors, height))
	}
	return nil
}

// renderLightbox draws the photo frame: previous/next arrows, the photo
// URL or a placeholder, the caption and the key hint.
func renderLightbox(l *Lightbox, baseURL string, failed map[string]bool, height int) string {
	name, ok := l.Current()
	if !ok {
		return ""
	}

	prev, next := " ", " "
	if l.HasPrev() {
		prev = "‹"
	}
	if l.HasNext() {
		next = "›"
	}

	var body string
	if failed[name] {
		body = "\033[90m[ photo unavailable: " + name + " ]\033[0m"
	} else {
		body = "\033[36m" + survey.PhotoURL(baseURL, name) + "\033[0m"
	}

	var b strings.Builder
	top := (height - 5) / 2
	if top < 0 {
		top = 0
	}
	b.WriteString(strings.Repeat("\n", top))
	fmt.Fprintf(&b, " \033[1m%s\033[0m  %s  \033[1m%s\033[0m\n\n", prev, body, next)
	fmt.Fprintf(&b, " %s\n\n", l.Caption())
	fmt.Fprintf(&b, " \033[90m%s\033[0m", l.Hint())
	return b.String()
}

func (g *Gui) updateRecordsView(v *gocui.View) {
	v.Clear()

	if !g.gate.Authenticated() {
		v.Highlight = false
		fmt.Fprint(v, "\033[90mSign in to load records\033[0m")
		return
	}

	// Show loading indicator when records are being loaded
	if g.isLoading.Load() {
		v.Highlight = false
		fmt.Fprint(v, g.getLoadingText(g.loadingText))
		return
	}

	rows := g.browse.pageRecords()
	v.Highlight = g.currentColumn == "records" && len(rows) > 0

	if len(rows) == 0 {
		switch {
		case g.browse.query != "":
			fmt.Fprintf(v, "\033[90mNo features found matching \"%s\"\033[0m", g.browse.query)
		case g.store != nil:
			fmt.Fprint(v, "\033[90mNo records\033[0m")
		}
		return
	}

	icon := icons.SHEET_ICON
	if icon != "" {
		icon = icon + " "
	}

	for _, rec := range rows {
		line := icon + recordSummary(rec)
		if rec.Sheet() == g.highlightSheet {
			fmt.Fprintf(v, "\033[30;43m%s\033[0m\n", line)
			continue
		}
		fmt.Fprintln(v, line)
	}

	v.FocusPoint(0, g.browse.selected)
}

// recordSummary is the one-line form of a record in the Records panel.
func recordSummary(rec survey.Record) string {
	var parts []string
	for _, name := range []string{survey.FieldRegion, survey.FieldInsula, survey.FieldEntrance} {
		if v, ok := rec.Field(name); ok {
			parts = append(parts, v)
		}
	}
	location := strings.Join(parts, ".")

	label := rec.Value(survey.FieldFeatureType)
	if label == "" {
		label = rec.Value(survey.FieldDescription)
	}
	label = truncate(label, 40)

	summary := "Sheet " + rec.Sheet()
	if location != "" {
		summary += "  \033[35m" + location + "\033[0m"
	}
	if label != "" {
		summary += "  \033[90m" + label + "\033[0m"
	}
	return summary
}

// truncate shortens s to n runes, marking the cut with an ellipsis.
func truncate(s string, n int) string {
	r := []rune(s)
	if len(r) <= n {
		return s
	}
	return string(r[:n-1]) + "…"
}

func (g *Gui) updateDetailsView(v *gocui.View) {
	content := g.detailsText()
	if content == g.detailsContent {
		return
	}
	g.detailsContent = content
	v.SetContent(content)
}

// detailsText builds the Details panel for the current state.
func (g *Gui) detailsText() string {
	if !g.gate.Authenticated() {
		return ""
	}
	if g.isLoading.Load() {
		return g.getLoadingText("Loading document...")
	}

	rec, ok := g.browse.selectedRecord()
	if !ok {
		if g.store == nil {
			return welcomeText()
		}
		if g.browse.query != "" {
			return fmt.Sprintf("\033[90mNo features found matching \"%s\"\033[0m\n", g.browse.query)
		}
		return "\033[90mNo content\033[0m\n"
	}

	if g.getDetailsFilter() != "" {
		return g.renderFilteredDetails(rec)
	}

	pretty, err := rec.Pretty()
	if err != nil {
		return fmt.Sprintf("Error formatting data: %v\n", err)
	}

	var content strings.Builder
	stats := calculateRecordStats(rec)
	if g.rawView {
		content.WriteString(fmt.Sprintf("\033[36m─── Sheet %s ───\033[0m\n", rec.Sheet()))
		content.WriteString(formatRecordStats(stats))
		content.WriteString("\n\n")
		content.WriteString(highlightJSON(pretty))
		return content.String()
	}

	content.WriteString(renderCard(rec, g.theme.ReferenceAnsi()))
	content.WriteString("\n")
	content.WriteString(formatRecordStats(stats))
	return content.String()
}

func welcomeText() string {
	var b strings.Builder
	b.WriteString("\n")
	b.WriteString("\033[33m        _______________________\n")
	b.WriteString("\033[33m       /_______________________\\\n")
	b.WriteString("\033[38;5;180m        | |   | |   | |   | |\n")
	b.WriteString("\033[38;5;180m        | |   | |   | |   | |\n")
	b.WriteString("\033[38;5;180m        | |   | |   | |   | |\n")
	b.WriteString("\033[38;5;137m       _|_|___|_|___|_|___|_|_\n")
	b.WriteString("\033[38;5;137m      |_______________________|\033[0m\n")
	b.WriteString("\n")
	fmt.Fprintf(&b, "\033[36m   %s  P O M P E I I   S U R V E Y\033[0m\n", icons.APP_ICON)
	b.WriteString("\n")
	b.WriteString("\033[90m     Food & Drink feature sheets\033[0m\n")
	return b.String()
}

func (g *Gui) updatePhotosView(v *gocui.View) {
	v.Clear()

	rec, ok := g.browse.selectedRecord()
	if !ok || len(rec.Photos) == 0 {
		v.Highlight = false
		v.Footer = ""
		if ok {
			fmt.Fprint(v, "\033[90mNo photos\033[0m")
		}
		return
	}

	v.Highlight = g.currentColumn == "photos"
	v.Footer = fmt.Sprintf("%d of %d", g.photoIdx+1, len(rec.Photos))

	icon := icons.PHOTO_ICON
	if icon != "" {
		icon = icon + " "
	}
	for _, name := range rec.Photos {
		if g.photoErrors[name] {
			fmt.Fprintf(v, "%s\033[90m%s (unavailable)\033[0m\n", icon, name)
			continue
		}
		fmt.Fprintf(v, "%s%s\n", icon, name)
	}

	if g.photoIdx >= len(rec.Photos) {
		g.photoIdx = len(rec.Photos) - 1
	}
	v.FocusPoint(0, g.photoIdx)
}

func statusColor(status string) string {
	switch status {
	case "error":
		return "\033[31m" // Red
	case "running", "warning":
		return "\033[33m" // Yellow
	}
	return "\033[32m" // Green
}

func (g *Gui) updateCommandsView(v *gocui.View) {
	v.Clear()

	if len(g.commandHistory) == 0 {
		return
	}

	// Show last command
	cmd := g.commandHistory[len(g.commandHistory)-1]

	var statusIcon string
	switch cmd.Status {
	case "running":
		statusIcon = icons.LOADING
	case "error":
		statusIcon = icons.ERROR
	case "warning":
		statusIcon = icons.WARNING
	case "success":
		statusIcon = icons.SUCCESS
	default:
		statusIcon = "•"
	}

	fmt.Fprintf(v, "%s%s %s\033[0m %s",
		statusColor(cmd.Status),
		statusIcon,
		cmd.Command,
		cmd.Description)
}

func (g *Gui) updateHelpView(v *gocui.View) {
	v.Clear()

	if !g.gate.Authenticated() {
		fmt.Fprint(v, " \033[90mSign in to continue\033[0m")
		return
	}

	// Show filter input when typing
	if g.filterInputActive {
		label := "Search records"
		hints := "  \033[90m(Enter to keep, Esc to clear)\033[0m"
		if g.filterInputPanel == "details" {
			label = "Filter details"
			hints = "  \033[90m(start with . for jq, Enter to keep, Esc to cancel)\033[0m"
		}
		// Show text with cursor at correct position
		beforeCursor := g.filterInputText[:g.filterCursorPos]
		afterCursor := g.filterInputText[g.filterCursorPos:]
		// Cursor shown as reverse video - highlight char at cursor or space if at end
		var cursorChar, rest string
		if len(afterCursor) > 0 {
			cursorChar = string(afterCursor[0])
			rest = afterCursor[1:]
		} else {
			cursorChar = " "
			rest = ""
		}
		fmt.Fprintf(v, " \033[33m%s:\033[0m %s\033[7m%s\033[0m%s%s", label, beforeCursor, cursorChar, rest, hints)
		return
	}

	if g.lightbox.IsOpen() {
		fmt.Fprintf(v, " \033[33m%s\033[0m", g.lightbox.Hint())
		return
	}

	// Show filter status when panel has committed filter
	if filter := g.getFilterForPanel(g.currentColumn); filter != "" {
		panelName := g.getPanelNameFor(g.currentColumn)
		fmt.Fprintf(v, " \033[33m%s filtered:\033[0m '%s'  %s  \033[90m(Esc to clear filter)\033[0m", panelName, filter, g.browse.paginationText())
		return
	}

	helpText := " \033[36m←/→\033[0m cols  \033[36mj/k\033[0m move  \033[36mn/p\033[0m page  \033[33menter\033[0m open  \033[33mf\033[0m follow  \033[35m/\033[0m search  \033[35m?\033[0m help  \033[31mq\033[0m quit"
	status := g.browse.paginationText()
	versionText := fmt.Sprintf("%s  \033[90mv%s\033[0m ", status, g.version)

	// Calculate padding to right-align version
	width, _ := v.Size()
	helpLen := 86 // Approximate visible length without ANSI codes
	versionLen := len([]rune(status)) + len(g.version) + 4
	padding := width - helpLen - versionLen
	if padding < 1 {
		padding = 1
	}

	fmt.Fprintf(v, "%s%*s%s", helpText, padding, "", versionText)
}

// recordStats holds record statistics shown under the card
type recordStats struct {
	sizeBytes  int
	fieldCount int
	filled     int
	photos     int
}

// calculateRecordStats calculates the record statistics
func calculateRecordStats(rec survey.Record) recordStats {
	filled := 0
	for name := range rec.Fields {
		if _, ok := rec.Field(name); ok {
			filled++
		}
	}
	return recordStats{
		sizeBytes:  len(rec.Raw),
		fieldCount: countFields(rec.Data()),
		filled:     filled,
		photos:     len(rec.Photos),
	}
}

// countFields counts all fields including nested ones
func countFields(data any) int {
	switch v := data.(type) {
	case map[string]any:
		count := len(v)
		for _, val := range v {
			count += countFields(val)
		}
		return count
	case []any:
		count := 0
		for _, item := range v {
			count += countFields(item)
		}
		return count
	default:
		return 0
	}
}

// formatRecordStats returns a one-line summary of the record
func formatRecordStats(stats recordStats) string {
	return fmt.Sprintf("\033[90mSize:\033[0m %s  \033[90mFields:\033[0m %d (%d filled)  \033[90mPhotos:\033[0m %d",
		formatBytes(stats.sizeBytes), stats.fieldCount, stats.filled, stats.photos)
}

// formatBytes formats bytes into human readable string
func formatBytes(bytes int) string {
	if bytes < 1024 {
		return fmt.Sprintf("%d B", bytes)
	} else if bytes < 1024*1024 {
		return fmt.Sprintf("%.1f KB", float64(bytes)/1024)
	}
	return fmt.Sprintf("%.2f MB", float64(bytes)/(1024*1024))
}

package gui

import (
	"fmt"
	"strings"

	"github.com/jesseduffield/gocui"
)

// PopupItem is one line of a popup: a section header or a selectable entry.
type PopupItem struct {
	Key      string       // Shortcut shown in the key column
	Label    string
	IsHeader bool         // Headers are section titles and never selected
	Action   func() error // Run on Enter; nil entries only close the popup
}

// Popup is a modal list used for the help screen and the reference picker.
type Popup struct {
	Title    string
	Items    []PopupItem
	Selected int // Index into Items; -1 when nothing is selectable
	theme    *Theme
}

func NewPopup(title string, items []PopupItem, theme *Theme) *Popup {
	p := &Popup{Title: title, Items: items, Selected: -1, theme: theme}
	p.step(1)
	return p
}

// step moves the selection to the next selectable item in direction dir.
// It stays put at either end.
func (p *Popup) step(dir int) {
	for i := p.Selected + dir; i >= 0 && i < len(p.Items); i += dir {
		if !p.Items[i].IsHeader {
			p.Selected = i
			return
		}
	}
}

func (p *Popup) MoveUp()   { p.step(-1) }
func (p *Popup) MoveDown() { p.step(1) }

// GetSelectedItem returns the selected entry, or nil.
func (p *Popup) GetSelectedItem() *PopupItem {
	if p.Selected < 0 || p.Selected >= len(p.Items) {
		return nil
	}
	return &p.Items[p.Selected]
}

// Select moves the selection to line i if it is a selectable item.
func (p *Popup) Select(i int) bool {
	if i < 0 || i >= len(p.Items) || p.Items[i].IsHeader {
		return false
	}
	p.Selected = i
	return true
}

// Height returns the number of lines Render writes.
func (p *Popup) Height() int {
	return len(p.Items) + 2
}

// SelectableCount returns the number of non-header items.
func (p *Popup) SelectableCount() int {
	n := 0
	for _, item := range p.Items {
		if !item.IsHeader {
			n++
		}
	}
	return n
}

// Render writes the items and a footer, highlighting the selection with
// gocui's native line highlight.
func (p *Popup) Render(v *gocui.View) {
	v.Highlight = true
	v.SelBgColor = p.theme.SelectedLineBgColor
	v.SelFgColor = gocui.ColorDefault

	var b strings.Builder
	for _, item := range p.Items {
		if item.IsHeader {
			fmt.Fprintf(&b, "\033[36m ─── %s ───\033[0m\n", item.Label)
			continue
		}
		fmt.Fprintf(&b, "  \033[33m%-12s\033[0m %s\n", item.Key, item.Label)
	}

	footer := "Esc to close"
	if item := p.GetSelectedItem(); item != nil && item.Action != nil {
		footer = "Enter to run · Esc to close"
	}
	fmt.Fprintf(&b, "\n\033[90m  %s\033[0m", footer)

	v.SetContent(b.String())
	if p.Selected >= 0 {
		v.FocusPoint(0, p.Selected)
	}
}

package gui

import (
	"fmt"

	"github.com/jesseduffield/gocui"

	"github.com/marjoballabani/lazysurvey/pkg/survey"
)

// Lightbox is the full-screen photo viewer for one record's photos.
// Navigation never wraps.
type Lightbox struct {
	open   bool
	sheet  string
	photos []string
	index  int
}

// Open shows photo i of the given sheet. An empty photo list or an index
// out of range leaves the lightbox closed.
func (l *Lightbox) Open(sheet string, photos []string, i int) bool {
	if i < 0 || i >= len(photos) {
		return false
	}
	l.open = true
	l.sheet = sheet
	l.photos = photos
	l.index = i
	return true
}

// Close hides the lightbox and forgets its photos.
func (l *Lightbox) Close() {
	*l = Lightbox{}
}

func (l *Lightbox) IsOpen() bool { return l.open }
func (l *Lightbox) Index() int   { return l.index }
func (l *Lightbox) Total() int   { return len(l.photos) }
func (l *Lightbox) Sheet() string {
	return l.sheet
}

func (l *Lightbox) HasNext() bool {
	return l.open && l.index < len(l.photos)-1
}

func (l *Lightbox) HasPrev() bool {
	return l.open && l.index > 0
}

// Next advances one photo; it is a no-op on the last one.
func (l *Lightbox) Next() bool {
	if !l.HasNext() {
		return false
	}
	l.index++
	return true
}

// Prev goes back one photo; it is a no-op on the first one.
func (l *Lightbox) Prev() bool {
	if !l.HasPrev() {
		return false
	}
	l.index--
	return true
}

// Current returns the filename on display.
func (l *Lightbox) Current() (string, bool) {
	if !l.open {
		return "", false
	}
	return l.photos[l.index], true
}

// HandleKey applies a key press and reports whether the state changed.
// Keys are ignored while the lightbox is closed.
func (l *Lightbox) HandleKey(key gocui.Key, ch rune) bool {
	if !l.open {
		return false
	}
	switch {
	case key == gocui.KeyEsc:
		l.Close()
		return true
	case key == gocui.KeyArrowRight || ch == 'l':
		return l.Next()
	case key == gocui.KeyArrowLeft || ch == 'h':
		return l.Prev()
	}
	return false
}

// Caption is the line under the photo, with an "i / T" counter when there
// is more than one photo.
func (l *Lightbox) Caption() string {
	name, ok := l.Current()
	if !ok {
		return ""
	}
	caption := survey.PhotoCaption(l.sheet, l.index, name)
	if l.Total() > 1 {
		caption += fmt.Sprintf("  %d / %d", l.index+1, l.Total())
	}
	return caption
}

// Hint lists the keys that work in the current state.
func (l *Lightbox) Hint() string {
	hint := ""
	if l.Total() > 1 {
		hint = "Use ←/→ or h/l to navigate • "
	}
	return hint + "Press Esc to close • o to open externally"
}

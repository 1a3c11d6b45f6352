package gui

import "github.com/jesseduffield/gocui"

func (g *Gui) setKeybindings() error {
	km := g.newKeybindingManager()

	// Define all bindings
	km.RegisterAll(g.globalBindings(km))
	km.RegisterAll(g.navigationBindings(km))
	km.RegisterAll(g.pagingBindings(km))
	km.RegisterAll(g.inputBindings(km))
	km.RegisterAll(g.actionBindings(km))
	km.RegisterAll(g.mouseBindings())
	km.RegisterAll(g.typingBindings(km))

	return km.Apply()
}

// globalBindings - always available (quit, escape, help)
func (g *Gui) globalBindings(km *KeybindingManager) []*Binding {
	return []*Binding{
		{
			Key:         gocui.KeyCtrlC,
			Handler:     g.doQuit,
			Description: "Force quit",
			AnyContext:  true,
		},
		{
			Key:         'q',
			Handler:     g.doQuit,
			Description: "Quit",
		},
		{
			Key:         gocui.KeyEsc,
			Handler:     g.doEscape,
			Description: "Close/Cancel",
			AnyContext:  true,
		},
		{
			Key:         '?',
			Handler:     g.doToggleHelp,
			Description: "Show help",
			Contexts: map[Context]func() error{
				ContextPopup: g.popupClose,
			},
		},
		{
			Key:         '@',
			Handler:     g.doToggleModal,
			Description: "Command log",
			Contexts: map[Context]func() error{
				ContextModal: g.doToggleModal,
			},
		},
		{
			Key:               'L',
			Handler:           g.doLogout,
			Description:       "Sign out",
			GetDisabledReason: km.disabled.NotSignedIn,
		},
	}
}

// navigationBindings - panel and list navigation
func (g *Gui) navigationBindings(km *KeybindingManager) []*Binding {
	return []*Binding{
		// Arrow up/down - context aware
		{
			Key:         gocui.KeyArrowUp,
			Handler:     g.doCursorUp,
			Description: "Move up",
			Contexts: map[Context]func() error{
				ContextPopup: g.popupMoveUp,
			},
		},
		{
			Key:         gocui.KeyArrowDown,
			Handler:     g.doCursorDown,
			Description: "Move down",
			Contexts: map[Context]func() error{
				ContextPopup: g.popupMoveDown,
			},
		},
		// Arrow left/right - context aware
		{
			Key:         gocui.KeyArrowLeft,
			Handler:     g.doColumnLeft,
			Description: "Move left",
			Contexts: map[Context]func() error{
				ContextFilter:   g.filterCursorLeft,
				ContextLightbox: g.makeLightboxKey(gocui.KeyArrowLeft, 0),
			},
		},
		{
			Key:         gocui.KeyArrowRight,
			Handler:     g.doColumnRight,
			Description: "Move right",
			Contexts: map[Context]func() error{
				ContextFilter:   g.filterCursorRight,
				ContextLightbox: g.makeLightboxKey(gocui.KeyArrowRight, 0),
			},
		},
		// Vim keys - context aware
		{
			Key:         'j',
			Handler:     g.doCursorDown,
			Description: "Move down",
			Contexts: map[Context]func() error{
				ContextPopup: g.popupMoveDown,
			},
		},
		{
			Key:         'k',
			Handler:     g.doCursorUp,
			Description: "Move up",
			Contexts: map[Context]func() error{
				ContextPopup: g.popupMoveUp,
			},
		},
		{
			Key:         'h',
			Handler:     g.doColumnLeft,
			Description: "Move left",
			Contexts: map[Context]func() error{
				ContextLightbox: g.makeLightboxKey(0, 'h'),
			},
		},
		{
			Key:         'l',
			Handler:     g.doColumnRight,
			Description: "Move right",
			Contexts: map[Context]func() error{
				ContextLightbox: g.makeLightboxKey(0, 'l'),
			},
		},
		// Tab
		{
			Key:         gocui.KeyTab,
			Handler:     g.doNextColumn,
			Description: "Next panel",
			Contexts: map[Context]func() error{
				ContextLogin: g.loginToggleField,
			},
		},
		// Enter - context aware
		{
			Key:         gocui.KeyEnter,
			Handler:     g.doEnter,
			Description: "Confirm/Open",
			Contexts: map[Context]func() error{
				ContextLogin:  g.loginSubmit,
				ContextFilter: g.filterCommit,
				ContextPopup:  g.popupExecute,
			},
		},
	}
}

// pagingBindings - result pages
func (g *Gui) pagingBindings(km *KeybindingManager) []*Binding {
	return []*Binding{
		{Key: 'n', Handler: g.doNextPage, Description: "Next page"},
		{Key: 'p', Handler: g.doPrevPage, Description: "Previous page"},
		{Key: 'g', Handler: g.doFirstPage, Description: "First page"},
		{Key: 'G', Handler: g.doLastPage, Description: "Last page"},
	}
}

// inputBindings - editing keys shared by the search bar and the sign-in form
func (g *Gui) inputBindings(km *KeybindingManager) []*Binding {
	backspace := map[Context]func() error{
		ContextFilter: g.doFilterBackspace,
		ContextLogin:  g.loginBackspace,
	}
	return []*Binding{
		{
			Key:               '/',
			Handler:           g.doStartFilter,
			Description:       "Search",
			GetDisabledReason: km.disabled.NotSignedIn,
		},
		{Key: gocui.KeyBackspace, Handler: g.blockAction, Contexts: backspace},
		{Key: gocui.KeyBackspace2, Handler: g.blockAction, Contexts: backspace},
	}
}

// actionBindings - record actions
func (g *Gui) actionBindings(km *KeybindingManager) []*Binding {
	return []*Binding{
		{
			Key:               'c',
			Handler:           g.doCopyJSON,
			Description:       "Copy JSON",
			GetDisabledReason: km.disabled.NoRecord,
		},
		{
			Key:               's',
			Handler:           g.doSaveJSON,
			Description:       "Save JSON",
			GetDisabledReason: km.disabled.NoRecord,
		},
		{
			Key:               'f',
			Handler:           g.doFollowReference,
			Description:       "Follow reference",
			GetDisabledReason: km.disabled.NoRecord,
		},
		{
			Key:               'v',
			Handler:           g.doToggleRaw,
			Description:       "Card / raw JSON",
			GetDisabledReason: km.disabled.NoRecord,
		},
		{
			Key:               'o',
			Handler:           g.doOpenPhoto,
			Description:       "Open photo externally",
			GetDisabledReason: km.disabled.NoPhoto,
			Contexts: map[Context]func() error{
				ContextLightbox: g.doOpenPhoto,
			},
		},
	}
}

// mouseBindings - click handlers
func (g *Gui) mouseBindings() []*Binding {
	return []*Binding{
		{Key: gocui.MouseLeft, ViewName: "popup", Handler: g.doPopupClick, AnyContext: true},
		{Key: gocui.MouseLeft, ViewName: "records", Handler: g.doRecordsClick, AnyContext: true},
		{Key: gocui.MouseLeft, ViewName: "details", Handler: g.doDetailsClick, AnyContext: true},
		{Key: gocui.MouseLeft, ViewName: "photos", Handler: g.doPhotosClick, AnyContext: true},
		{Key: gocui.MouseLeft, ViewName: "lightbox", Handler: g.doLightboxClick, AnyContext: true},
		{Key: gocui.MouseLeft, ViewName: "commands", Handler: g.doOutsideClick, AnyContext: true},
		{Key: gocui.MouseLeft, ViewName: "help", Handler: g.doOutsideClick, AnyContext: true},
		{Key: gocui.MouseLeft, ViewName: "background", Handler: g.doOutsideClick, AnyContext: true},
	}
}

// typingBindings routes every remaining printable key to the active input.
// In normal mode these keys do nothing.
func (g *Gui) typingBindings(km *KeybindingManager) []*Binding {
	bound := km.boundRunes()
	bindings := []*Binding{
		{Key: gocui.KeySpace, Handler: g.blockAction},
	}
	for ch := '!'; ch <= '~'; ch++ {
		if bound[ch] {
			continue
		}
		bindings = append(bindings, &Binding{Key: ch, Handler: g.blockAction})
	}
	return bindings
}

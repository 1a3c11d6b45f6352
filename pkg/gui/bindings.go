package gui

import "github.com/jesseduffield/gocui"

// Context represents the current UI context/mode
type Context string

const (
	ContextNormal   Context = "normal"
	ContextLogin    Context = "login"    // Sign-in modal, keys go to the form
	ContextFilter   Context = "filter"   // Typing a search or details filter
	ContextPopup    Context = "popup"    // Help or reference picker
	ContextModal    Context = "modal"    // Command log
	ContextLightbox Context = "lightbox" // Photo viewer
)

// Binding represents a keybinding with context-aware handling
type Binding struct {
	Key         interface{} // gocui.Key or rune
	Modifier    gocui.Modifier
	ViewName    string // Empty for global, specific view name otherwise
	Handler     func() error
	Description string
	// GetDisabledReason returns nil if enabled, or a reason string if disabled
	GetDisabledReason func() string
	// Contexts maps specific contexts to different handlers (optional)
	// If current context has a handler here, it's used instead of Handler
	Contexts map[Context]func() error
	// AnyContext lets Handler run in every context without a specific entry
	AnyContext bool
}

// DisabledReasons provides common disable-reason check functions
type DisabledReasons struct {
	NotSignedIn func() string
	NoRecord    func() string
	NoPhoto     func() string
}

// newDisabledReasons creates the disabled-reason check functions
func (g *Gui) newDisabledReasons() DisabledReasons {
	return DisabledReasons{
		NotSignedIn: func() string {
			if !g.gate.Authenticated() {
				return "Sign in first"
			}
			return ""
		},
		NoRecord: func() string {
			if _, ok := g.browse.selectedRecord(); !ok {
				return "No record selected"
			}
			return ""
		},
		NoPhoto: func() string {
			if _, ok := g.selectedPhoto(); !ok {
				return "Record has no photos"
			}
			return ""
		},
	}
}

// require combines multiple disable-reason checks into one
// Returns first non-empty reason, or empty string if all pass
func require(checks ...func() string) func() string {
	return func() string {
		for _, check := range checks {
			if reason := check(); reason != "" {
				return reason
			}
		}
		return ""
	}
}

// getContext returns the current UI context
func (g *Gui) getContext() Context {
	if !g.gate.Authenticated() {
		return ContextLogin
	}
	if g.popup != nil {
		return ContextPopup
	}
	if g.modalOpen {
		return ContextModal
	}
	if g.lightbox.IsOpen() {
		return ContextLightbox
	}
	if g.filterInputActive {
		return ContextFilter
	}
	return ContextNormal
}

// isTextContext reports whether printable keys are typed into an input.
func isTextContext(ctx Context) bool {
	return ctx == ContextLogin || ctx == ContextFilter
}

// textRune returns the character a key types, if any.
func textRune(key interface{}) (rune, bool) {
	switch k := key.(type) {
	case rune:
		return k, k >= ' ' && k <= '~'
	case gocui.Key:
		if k == gocui.KeySpace {
			return ' ', true
		}
	}
	return 0, false
}

// KeybindingManager handles registration and execution of keybindings
type KeybindingManager struct {
	gui      *Gui
	bindings []*Binding
	disabled DisabledReasons
}

// newKeybindingManager creates a new keybinding manager
func (g *Gui) newKeybindingManager() *KeybindingManager {
	return &KeybindingManager{
		gui:      g,
		bindings: make([]*Binding, 0),
		disabled: g.newDisabledReasons(),
	}
}

// Register adds a binding to the manager
func (km *KeybindingManager) Register(b *Binding) {
	km.bindings = append(km.bindings, b)
}

// RegisterAll adds multiple bindings
func (km *KeybindingManager) RegisterAll(bindings []*Binding) {
	km.bindings = append(km.bindings, bindings...)
}

// boundRunes returns the global rune keys that already have a binding.
func (km *KeybindingManager) boundRunes() map[rune]bool {
	bound := make(map[rune]bool)
	for _, b := range km.bindings {
		if ch, ok := b.Key.(rune); ok && b.ViewName == "" {
			bound[ch] = true
		}
	}
	return bound
}

// Apply registers all bindings with gocui
func (km *KeybindingManager) Apply() error {
	for _, b := range km.bindings {
		handler := km.wrapHandler(b)

		var err error
		switch key := b.Key.(type) {
		case gocui.Key:
			err = km.gui.g.SetKeybinding(b.ViewName, key, b.Modifier, handler)
		case rune:
			err = km.gui.g.SetKeybinding(b.ViewName, key, b.Modifier, handler)
		}
		if err != nil {
			return err
		}
	}
	return nil
}

// wrapHandler creates a gocui-compatible handler that checks context and disabled state.
// Printable keys without an explicit handler for an input context are
// typed into that input.
func (km *KeybindingManager) wrapHandler(b *Binding) func(*gocui.Gui, *gocui.View) error {
	ch, printable := textRune(b.Key)
	return func(gui *gocui.Gui, v *gocui.View) error {
		ctx := km.gui.getContext()
		if b.Contexts != nil {
			if contextHandler, ok := b.Contexts[ctx]; ok {
				return contextHandler()
			}
		}

		if printable && isTextContext(ctx) {
			return km.gui.insertChar(ch)
		}

		// Anything else is swallowed while an overlay owns the keyboard
		if ctx != ContextNormal && !b.AnyContext {
			return nil
		}

		if b.GetDisabledReason != nil {
			if reason := b.GetDisabledReason(); reason != "" {
				km.gui.logCommand("key", reason, "warning")
				return nil
			}
		}
		return b.Handler()
	}
}

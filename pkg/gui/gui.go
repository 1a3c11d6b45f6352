package gui

import (
	"context"
	"sync/atomic"
	"time"

	"github.com/jesseduffield/gocui"
	"github.com/pkg/errors"
	"go.uber.org/zap"

	"github.com/marjoballabani/lazysurvey/pkg/config"
	"github.com/marjoballabani/lazysurvey/pkg/gui/icons"
	"github.com/marjoballabani/lazysurvey/pkg/session"
	"github.com/marjoballabani/lazysurvey/pkg/survey"
)

// Spinner frames for loading animation
var spinnerFrames = []string{"⠋", "⠙", "⠹", "⠸", "⠼", "⠴", "⠦", "⠧", "⠇", "⠏"}

type CommandExecution struct {
	Timestamp   string
	Command     string
	Description string
	Status      string
}

// Loader fetches the record store. It is called once, after the first
// successful sign-in.
type Loader func(ctx context.Context) (*survey.Store, error)

// Options wires the viewer to its collaborators.
type Options struct {
	Config  *config.Config
	Gate    *session.Gate
	Load    Loader
	Logger  *zap.Logger
	Version string
	// Sheet is selected once the records are loaded, if set
	Sheet string
}

type Gui struct {
	g       *gocui.Gui
	ctx     context.Context
	config  *config.Config
	gate    *session.Gate
	load    Loader
	logger  *zap.Logger
	version string
	theme   *Theme
	openURL func(string) error

	// Records state
	store        *survey.Store
	browse       *browseState
	loadStarted  bool
	initialSheet string

	// Sign-in form
	login loginForm

	// Details state
	rawView          bool
	detailsScrollPos int
	detailsFilter    string
	detailsContent   string // last content pushed to the details view

	// Photos state
	photoIdx    int
	photoErrors map[string]bool
	lightbox    Lightbox

	// Navigation highlight
	highlightSheet string
	highlightGen   int

	// Command execution tracking
	commandHistory []CommandExecution

	// View names
	views struct {
		background string
		records    string
		details    string
		photos     string
		commands   string
		help       string
		login      string
		modal      string
		popup      string
		lightbox   string
	}

	// Current column: "records", "details", "photos"
	currentColumn string

	// Overlays
	modalOpen bool
	popup     *Popup

	// Loading state
	isLoading    atomic.Bool
	loadingText  string
	spinnerFrame uint32 // Current spinner animation frame

	// Filter state
	filterInputActive bool   // true when typing in filter bar
	filterInputText   string // current input text
	filterInputPanel  string // which panel is being filtered
	filterCursorPos   int    // cursor position in filter text

	// Frame styling
	roundedFrameRunes []rune
}

func NewGui(opts Options) (*Gui, error) {
	if opts.Config == nil || opts.Gate == nil {
		return nil, errors.New("gui needs a config and a session gate")
	}
	logger := opts.Logger
	if logger == nil {
		logger = zap.NewNop()
	}

	g, err := gocui.NewGui(gocui.NewGuiOpts{
		OutputMode:      gocui.OutputTrue,
		SupportOverlaps: true,
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to create gui")
	}

	// Create theme from config
	theme := NewTheme(opts.Config.UI.Theme)

	// Initialize icons based on config
	if !opts.Config.UI.ShowIcons {
		icons.SetEnabled(false)
	} else {
		switch opts.Config.UI.NerdFontsVersion {
		case "2":
			icons.PatchForNerdFontsV2()
		case "3":
			// Default v3 icons, nothing to do
		default:
			// Disable icons for graceful fallback
			icons.SetEnabled(false)
		}
	}

	gui := &Gui{
		g:             g,
		ctx:           context.Background(),
		config:        opts.Config,
		gate:          opts.Gate,
		load:          opts.Load,
		logger:        logger,
		version:       opts.Version,
		theme:         theme,
		openURL:       openExternal,
		browse:        newBrowseState(),
		initialSheet:  opts.Sheet,
		photoErrors:   make(map[string]bool),
		currentColumn: "records",
	}

	// Set view names
	gui.views.background = "background"
	gui.views.records = "records"
	gui.views.details = "details"
	gui.views.photos = "photos"
	gui.views.commands = "commands"
	gui.views.help = "help"
	gui.views.login = "login"
	gui.views.modal = "modal"
	gui.views.popup = "popup"
	gui.views.lightbox = "lightbox"

	// Configure gocui
	g.Cursor = false
	g.Mouse = true
	g.InputEsc = true
	g.ShowListFooter = true // Show "X of Y" footer

	// Set colors for frames from theme
	g.BgColor = gocui.ColorDefault
	g.FgColor = gocui.ColorDefault
	g.FrameColor = gui.theme.InactiveBorderColor
	g.SelFrameColor = gui.theme.ActiveBorderColor
	g.SelFgColor = gui.theme.ActiveBorderColor
	g.Highlight = true

	// Rounded frame characters: ─ │ ╭ ╮ ╰ ╯
	gui.roundedFrameRunes = []rune{'─', '│', '╭', '╮', '╰', '╯'}

	// Set layout function
	g.SetManagerFunc(func(g *gocui.Gui) error {
		return gui.Layout(g)
	})

	// Set up keybindings
	if err := gui.setKeybindings(); err != nil {
		return nil, err
	}

	gui.logCommand("init", "lazysurvey starting...", "success")

	return gui, nil
}

func (g *Gui) getActiveColorCode() string {
	return g.theme.GetAnsiColorCode()
}

func (g *Gui) logCommand(command, description, status string) {
	timestamp := time.Now().Format("15:04:05")

	cmdExec := CommandExecution{
		Timestamp:   timestamp,
		Command:     command,
		Description: description,
		Status:      status,
	}

	g.commandHistory = append(g.commandHistory, cmdExec)

	// Keep only last 10 commands
	if len(g.commandHistory) > 10 {
		g.commandHistory = g.commandHistory[1:]
	}
}

// Run starts the event loop. ctx bounds the record fetch.
func (g *Gui) Run(ctx context.Context) error {
	defer g.g.Close()

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()
	g.ctx = ctx

	// Start spinner animation ticker
	go func() {
		ticker := time.NewTicker(80 * time.Millisecond)
		defer ticker.Stop()
		for {
			select {
			case <-ctx.Done():
				return
			case <-ticker.C:
				atomic.AddUint32(&g.spinnerFrame, 1)
				if g.isLoading.Load() {
					g.g.Update(func(gui *gocui.Gui) error {
						return nil
					})
				}
			}
		}
	}()

	if err := g.g.MainLoop(); err != nil && !errors.Is(err, gocui.ErrQuit) {
		return err
	}
	return nil
}

// getLoadingText returns formatted loading text with animated spinner
func (g *Gui) getLoadingText(text string) string {
	frame := atomic.LoadUint32(&g.spinnerFrame)
	spinner := spinnerFrames[frame%uint32(len(spinnerFrames))]
	return "\033[33m" + spinner + " " + text + "\033[0m"
}

// Package app is the main application entry point for LazySurvey.
// It coordinates initialization of configuration, logging, the session gate,
// and the GUI.
package app

import (
	"context"
	"net/http"
	"time"

	"github.com/pkg/errors"
	"go.uber.org/zap"

	"github.com/marjoballabani/lazysurvey/pkg/config"
	"github.com/marjoballabani/lazysurvey/pkg/gui"
	"github.com/marjoballabani/lazysurvey/pkg/logging"
	"github.com/marjoballabani/lazysurvey/pkg/session"
	"github.com/marjoballabani/lazysurvey/pkg/survey"
)

// fetchTimeout bounds a remote feature document download.
const fetchTimeout = 30 * time.Second

// BuildInfo contains version information set at compile time.
type BuildInfo struct {
	Version string
	Commit  string
	Date    string
}

// Options are the command-line overrides for a viewer run.
type Options struct {
	ConfigFile string
	Source     string // Overrides data.source when set
	Sheet      string // Sheet to select once records load
	Verbose    bool
}

// App is the main application struct that holds all components.
type App struct {
	buildInfo *BuildInfo
	opts      Options
	config    *config.Config
	logger    *zap.Logger
	gate      *session.Gate
	gui       *gui.Gui
}

// NewApp creates a new App instance with the given build information.
// It loads configuration and opens the log but does not start the GUI yet.
func NewApp(buildInfo *BuildInfo, opts Options) (*App, error) {
	cfg, err := config.LoadConfig(opts.ConfigFile)
	if err != nil {
		return nil, errors.Wrap(err, "failed to load config")
	}
	if opts.Source != "" {
		cfg.Data.Source = opts.Source
	}

	logger, err := logging.New(cfg.Log, opts.Verbose)
	if err != nil {
		return nil, errors.Wrap(err, "failed to open log")
	}

	return &App{
		buildInfo: buildInfo,
		opts:      opts,
		config:    cfg,
		logger:    logger,
		gate:      session.New(cfg.Auth.Username, cfg.Auth.Password),
	}, nil
}

// Run creates the GUI and runs the main event loop. It blocks until the
// user quits or ctx is cancelled.
func (app *App) Run(ctx context.Context) error {
	defer func() { _ = app.logger.Sync() }()

	app.logger.Info("starting",
		zap.String("version", app.buildInfo.Version),
		zap.String("commit", app.buildInfo.Commit),
		zap.String("source", app.config.Data.Source))

	g, err := gui.NewGui(gui.Options{
		Config:  app.config,
		Gate:    app.gate,
		Load:    app.loader(),
		Logger:  app.logger,
		Version: app.buildInfo.Version,
		Sheet:   app.opts.Sheet,
	})
	if err != nil {
		return errors.Wrap(err, "failed to initialize GUI")
	}
	app.gui = g

	if err := app.gui.Run(ctx); err != nil {
		app.logger.Error("gui exited", zap.Error(err))
		return err
	}
	app.logger.Info("quit")
	return nil
}

// loader reads the configured source once per call.
func (app *App) loader() gui.Loader {
	source := app.config.Data.Source
	client := &http.Client{Timeout: fetchTimeout}
	return func(ctx context.Context) (*survey.Store, error) {
		return survey.Load(ctx, source, survey.WithHTTPClient(client))
	}
}

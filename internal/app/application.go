package app

import (
	"fmt"
	"sync/atomic"

	"zoop-converter/internal/codec"
	"zoop-converter/internal/config"
	"zoop-converter/internal/controllers"
	"zoop-converter/internal/logger"
	"zoop-converter/internal/models"
	"zoop-converter/internal/prefs"
	"zoop-converter/internal/report"
	"zoop-converter/internal/services"
	"zoop-converter/internal/shutdown"
	"zoop-converter/internal/views"
	"zoop-converter/internal/views/components"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/app"
)

const (
	AppName         = "Zoop"
	AppID           = "io.zoop.converter"
	AppVersion      = "1.0.0"
	MinWindowWidth  = 800
	MinWindowHeight = 600
)

type Application struct {
	fyneApp    fyne.App
	window     fyne.Window
	view       *views.MainView
	controller *controllers.MainController
	state      *models.ConversionStateRepository
	handlers   *Handlers
	lifecycle  *Lifecycle
	shutdown   *shutdown.Manager
	logger     logger.Logger
	running    atomic.Bool
}

func NewApplication(cfg config.Config, log logger.Logger) (*Application, error) {
	return newApplication(app.NewWithID(AppID), cfg, log)
}

func newApplication(fyneApp fyne.App, cfg config.Config, log logger.Logger) (*Application, error) {
	if log == nil {
		log = logger.NoOpLogger{}
	}

	imageCodec, err := NewCodec(cfg)
	if err != nil {
		return nil, err
	}

	options := models.NewOutputOptions(cfg.OutputDirectory, cfg.OutputFormat, imageCodec.EncodableExtensions())
	if err := options.SetFormat(cfg.OutputFormat); err != nil {
		return nil, fmt.Errorf("codec %s: %w", imageCodec.Name(), err)
	}

	store := prefs.NewStore(prefsBackend(fyneApp, cfg), log)
	preferences := store.Load()
	fyneApp.Settings().SetTheme(views.ThemeFor(preferences.Theme))

	window := fyneApp.NewWindow(AppName)
	window.Resize(fyne.NewSize(MinWindowWidth, MinWindowHeight))
	window.CenterOnScreen()
	window.SetMaster()

	log.Info("Application", "starting application", map[string]interface{}{
		"version":  AppVersion,
		"codec":    imageCodec.Name(),
		"theme":    preferences.Theme,
		"config":   cfg.ConfigFileUsed,
		"output":   cfg.OutputDirectory,
		"format":   cfg.OutputFormat,
		"prefs":    cfg.PrefsBackend,
	})

	thumbs := components.NewThumbnailCache(cfg.ThumbnailSize,
		thumbnailLoader(codec.NewImagingCodec(cfg.JPEGQuality, cfg.AutoOrient)))

	view := views.NewMainView(window, views.ViewOptions{
		Formats: options.Formats(),
		Output:  options.OutputSpec(),
		Theme:   preferences.Theme,
		Thumbs:  thumbs,
	})

	emitter := report.Multi{views.NewEmitter(view), report.NewLogging(log)}
	state := models.NewConversionStateRepository()
	registry := models.NewFileRegistry(cfg.SupportedExtensions)
	runner := services.NewConversionRunner(imageCodec, emitter, state, log)
	controller := controllers.NewMainController(registry, runner, state, options, emitter, log)

	handlers := NewHandlers(controller, view, store, fyneApp.Settings(), thumbs, cfg.SupportedExtensions, log)
	lifecycle := NewLifecycle(handlers, thumbs, log)

	application := &Application{
		fyneApp:    fyneApp,
		window:     window,
		view:       view,
		controller: controller,
		state:      state,
		handlers:   handlers,
		lifecycle:  lifecycle,
		shutdown:   shutdown.NewManager(log),
		logger:     log,
	}

	// registered first so it runs last
	application.shutdown.Register(shutdown.Func(func() {
		if application.running.Load() {
			fyne.Do(fyneApp.Quit)
		}
	}))
	application.shutdown.Register(lifecycle)
	handlers.Bind(application.quit)

	log.Info("Application", "initialization complete", nil)
	return application, nil
}

func prefsBackend(fyneApp fyne.App, cfg config.Config) prefs.Backend {
	if cfg.PrefsBackend == config.PrefsBackendFile {
		return prefs.FileBackend{Path: cfg.PrefsFile}
	}
	return prefs.FyneBackend{Preferences: fyneApp.Preferences()}
}

// quit runs the shutdown sequence off the UI goroutine so a running batch
// can still post its last updates.
func (a *Application) quit() {
	a.logger.Info("Application", "shutdown requested", nil)
	go a.shutdown.Shutdown()
}

func (a *Application) Run() error {
	a.window.SetCloseIntercept(a.quit)
	a.shutdown.Listen()

	a.window.Show()
	a.logger.Info("Application", "GUI displayed", nil)
	a.running.Store(true)
	a.fyneApp.Run()
	a.running.Store(false)

	a.shutdown.Shutdown()
	return nil
}

package app

import (
	"errors"
	"fmt"
	"os"
	"sync"

	"zoop-converter/internal/controllers"
	"zoop-converter/internal/logger"
	"zoop-converter/internal/models"
	"zoop-converter/internal/prefs"
	"zoop-converter/internal/report"
	"zoop-converter/internal/views"
	"zoop-converter/internal/views/components"

	"fyne.io/fyne/v2"
)

// Handlers turns view events into controller commands
type Handlers struct {
	controller *controllers.MainController
	view       *views.MainView
	prefs      *prefs.Store
	settings   fyne.Settings
	thumbs     *components.ThumbnailCache
	logger     logger.Logger
	supported  []string
	quit       func()

	wg sync.WaitGroup
}

func NewHandlers(
	controller *controllers.MainController,
	view *views.MainView,
	store *prefs.Store,
	settings fyne.Settings,
	thumbs *components.ThumbnailCache,
	supported []string,
	log logger.Logger,
) *Handlers {
	return &Handlers{
		controller: controller,
		view:       view,
		prefs:      store,
		settings:   settings,
		thumbs:     thumbs,
		supported:  supported,
		logger:     log,
	}
}

// Bind connects every view event to its handler.
func (h *Handlers) Bind(quit func()) {
	h.quit = quit

	h.view.SetAddFilesHandler(h.HandleAddFiles)
	h.view.SetAddFolderHandler(h.HandleAddFolder)
	h.view.SetDroppedHandler(h.HandleDropped)
	h.view.SetRemoveHandler(h.HandleRemove)
	h.view.SetClearHandler(h.HandleClear)
	h.view.SetConvertSelectedHandler(h.HandleConvertSelected)
	h.view.SetConvertAllHandler(h.HandleConvertAll)
	h.view.SetFormatHandler(h.HandleFormatChange)
	h.view.SetDirectoryHandler(h.HandleDirectoryChange)
	h.view.SetBrowseHandler(h.HandleBrowse)
	h.view.SetThemeHandler(h.HandleThemeChange)
	h.view.SetCreditsHandler(h.HandleCredits)
	h.view.SetQuitHandler(h.HandleQuit)

	h.refresh()
}

func (h *Handlers) HandleAddFiles() {
	if h.controller.IsConverting() {
		return
	}
	h.view.ShowFileOpen(h.supported, func(path string) {
		h.addPaths([]string{path})
	})
}

func (h *Handlers) HandleAddFolder() {
	if h.controller.IsConverting() {
		return
	}
	h.view.ShowFolderOpen(func(_ string, children []string) {
		files := make([]string, 0, len(children))
		for _, p := range children {
			if info, err := os.Stat(p); err == nil && !info.IsDir() {
				files = append(files, p)
			}
		}
		h.addPaths(files)
	})
}

func (h *Handlers) HandleDropped(paths []string) {
	if h.controller.IsConverting() {
		return
	}
	h.addPaths(paths)
}

func (h *Handlers) addPaths(paths []string) {
	rep := h.controller.AddFiles(paths)
	if rep.Unsupported > 0 {
		h.view.AppendLog(report.ColorInfo, fmt.Sprintf("INFO : %d non supported file(s) selected", rep.Unsupported))
	}
	h.refresh()
	h.resolveDuplicates(rep.Duplicates)
}

// resolveDuplicates asks about one duplicate at a time.
func (h *Handlers) resolveDuplicates(paths []string) {
	if len(paths) == 0 {
		return
	}

	path := paths[0]
	h.view.ShowDuplicate(path, func(replace bool) {
		if err := h.controller.ResolveDuplicate(path, replace); err != nil {
			h.showError(err)
		} else if replace {
			h.thumbs.Forget(path)
		}
		h.refresh()
		h.resolveDuplicates(paths[1:])
	})
}

func (h *Handlers) HandleRemove() {
	if h.controller.IsConverting() {
		return
	}
	for _, path := range h.controller.RemoveSelected(h.view.Selection()) {
		h.thumbs.Forget(path)
	}
	h.refresh()
}

func (h *Handlers) HandleClear() {
	if h.controller.IsConverting() || h.controller.Registry().IsEmpty() {
		return
	}
	h.view.ShowClearConfirm(func(ok bool) {
		if !ok {
			return
		}
		h.controller.ClearAll()
		h.thumbs.Reset()
		h.refresh()
	})
}

func (h *Handlers) HandleConvertAll() {
	h.startConversion(h.controller.ConvertAll)
}

func (h *Handlers) HandleConvertSelected() {
	selection := h.view.Selection()
	h.startConversion(func() (models.Summary, error) {
		return h.controller.ConvertSelected(selection)
	})
}

// startConversion runs the batch off the UI goroutine; the emitter marshals
// progress back with fyne.Do.
func (h *Handlers) startConversion(run func() (models.Summary, error)) {
	if h.controller.IsConverting() {
		return
	}

	h.wg.Add(1)
	go func() {
		defer h.wg.Done()

		summary, err := run()
		if err != nil {
			if errors.Is(err, controllers.ErrBusy) {
				h.logger.Debug("Handlers", "conversion already running", nil)
				return
			}
			h.logger.Error("Handlers", err, nil)
			return
		}

		h.logger.Debug("Handlers", "conversion finished", map[string]interface{}{
			"success": summary.Success,
			"aborted": summary.Aborted,
		})
		fyne.Do(h.refresh)
	}()
}

func (h *Handlers) HandleFormatChange(ext string) {
	if err := h.controller.SetOutputFormat(ext); err != nil {
		h.showError(err)
	}
}

func (h *Handlers) HandleDirectoryChange(dir string) bool {
	return h.controller.SetOutputDirectory(dir)
}

func (h *Handlers) HandleBrowse() {
	h.view.ShowFolderOpen(func(dir string, _ []string) {
		h.view.ApplyDirectory(dir)
	})
}

func (h *Handlers) HandleThemeChange(name string) {
	if err := h.prefs.Save(prefs.Preferences{Theme: name}); err != nil {
		h.logger.Warning("Handlers", "theme not saved", map[string]interface{}{
			"theme": name,
			"error": err.Error(),
		})
	}
	if h.settings != nil {
		h.settings.SetTheme(views.ThemeFor(name))
	}
	h.view.SetThemeName(name)
}

func (h *Handlers) HandleCredits() {
	h.view.ShowCredits(AppVersion)
}

func (h *Handlers) HandleQuit() {
	if h.quit != nil {
		h.quit()
	}
}

// Wait blocks until a running conversion returns.
func (h *Handlers) Wait() {
	h.wg.Wait()
}

func (h *Handlers) refresh() {
	h.view.ShowEntries(h.controller.Registry().Live())
}

func (h *Handlers) showError(err error) {
	h.logger.Error("Handlers", err, nil)
	h.view.ShowError(err)
}

package views

import (
	"zoop-converter/internal/models"
	"zoop-converter/internal/report"
	"zoop-converter/internal/views/components"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/widget"
)

// MainView is the converter window: file list, options, log and state
type MainView struct {
	window        fyne.Window
	mainContainer *fyne.Container
	toolbar       *components.Toolbar
	fileList      *components.FileList
	options       *components.OptionsPanel
	logPane       *components.LogPane
	stateLabel    *components.StateLabel

	// Event handlers - connected by the application
	addFilesHandler   func()
	addFolderHandler  func()
	droppedHandler    func([]string)
	removeHandler     func()
	clearHandler      func()
	convertSelHandler func()
	convertAllHandler func()
	themeHandler      func(string)
	creditsHandler    func()
	quitHandler       func()

	themeName string
}

// ViewOptions carries the initial values the window is built with
type ViewOptions struct {
	Formats []string
	Output  models.OutputSpec
	Theme   string
	Thumbs  *components.ThumbnailCache
}

func NewMainView(window fyne.Window, opts ViewOptions) *MainView {
	view := &MainView{
		window:    window,
		themeName: opts.Theme,
	}

	view.initializeComponents(opts)
	view.buildLayout()
	view.setupEventHandlers()
	view.window.SetMainMenu(view.buildMainMenu())
	view.registerShortcuts()

	return view
}

func (mv *MainView) initializeComponents(opts ViewOptions) {
	mv.toolbar = components.NewToolbar()
	mv.fileList = components.NewFileList(opts.Thumbs)
	mv.options = components.NewOptionsPanel(opts.Formats, opts.Output.TargetExtension, opts.Output.TargetDirectory)
	mv.logPane = components.NewLogPane()
	mv.stateLabel = components.NewStateLabel()
}

func (mv *MainView) buildLayout() {
	split := container.NewVSplit(mv.fileList.GetContainer(), mv.logPane.GetContainer())
	split.SetOffset(0.7)

	bottomArea := container.NewVBox(
		widget.NewSeparator(),
		mv.options.GetContainer(),
		mv.stateLabel.GetContainer(),
	)

	mv.mainContainer = container.NewBorder(
		mv.toolbar.GetContainer(),
		bottomArea,
		nil,
		nil,
		split,
	)

	mv.window.SetContent(mv.mainContainer)
}

func (mv *MainView) setupEventHandlers() {
	mv.toolbar.SetAddHandler(func() { invoke(mv.addFilesHandler) })
	mv.toolbar.SetRemoveHandler(func() { invoke(mv.removeHandler) })
	mv.toolbar.SetClearHandler(func() { invoke(mv.clearHandler) })
	mv.toolbar.SetConvertSelHandler(func() { invoke(mv.convertSelHandler) })
	mv.toolbar.SetConvertAllHandler(func() { invoke(mv.convertAllHandler) })

	mv.window.SetOnDropped(func(_ fyne.Position, uris []fyne.URI) {
		if mv.droppedHandler == nil {
			return
		}
		paths := make([]string, 0, len(uris))
		for _, u := range uris {
			if u.Scheme() == "file" {
				paths = append(paths, u.Path())
			}
		}
		mv.droppedHandler(paths)
	})
}

func invoke(handler func()) {
	if handler != nil {
		handler()
	}
}

// Event handler setters - called by the application

func (mv *MainView) SetAddFilesHandler(handler func())             { mv.addFilesHandler = handler }
func (mv *MainView) SetAddFolderHandler(handler func())            { mv.addFolderHandler = handler }
func (mv *MainView) SetDroppedHandler(handler func([]string))      { mv.droppedHandler = handler }
func (mv *MainView) SetRemoveHandler(handler func())               { mv.removeHandler = handler }
func (mv *MainView) SetClearHandler(handler func())                { mv.clearHandler = handler }
func (mv *MainView) SetConvertSelectedHandler(handler func())      { mv.convertSelHandler = handler }
func (mv *MainView) SetConvertAllHandler(handler func())           { mv.convertAllHandler = handler }
func (mv *MainView) SetThemeHandler(handler func(string))          { mv.themeHandler = handler }
func (mv *MainView) SetCreditsHandler(handler func())              { mv.creditsHandler = handler }
func (mv *MainView) SetQuitHandler(handler func())                 { mv.quitHandler = handler }
func (mv *MainView) SetFormatHandler(handler func(string))         { mv.options.SetFormatHandler(handler) }
func (mv *MainView) SetDirectoryHandler(handler func(string) bool) { mv.options.SetDirectoryHandler(handler) }
func (mv *MainView) SetBrowseHandler(handler func())               { mv.options.SetBrowseHandler(handler) }

// UI update methods. These must run on the UI goroutine; callers on other
// goroutines wrap them in fyne.Do.

// ShowEntries refreshes the list from the registry's live entries.
func (mv *MainView) ShowEntries(entries []models.IndexedEntry) {
	mv.fileList.SetEntries(entries)
	mv.toolbar.SetHasFiles(len(entries) > 0)
}

// Selection returns the checked registry indices.
func (mv *MainView) Selection() []int {
	return mv.fileList.Selection()
}

func (mv *MainView) AppendLog(color report.Color, message string) {
	mv.logPane.Append(color, message)
}

func (mv *MainView) SetState(state models.ConversionState) {
	converting := state == models.StateConverting
	mv.stateLabel.SetState(state)
	mv.toolbar.SetConverting(converting)
	mv.options.SetEnabled(!converting)
}

func (mv *MainView) ApplyDirectory(dir string) {
	mv.options.ApplyDirectory(dir)
}

func (mv *MainView) SetThemeName(name string) {
	mv.themeName = name
	mv.window.SetMainMenu(mv.buildMainMenu())
}

func (mv *MainView) ThemeName() string {
	return mv.themeName
}

func (mv *MainView) GetWindow() fyne.Window {
	return mv.window
}

func (mv *MainView) GetContainer() *fyne.Container {
	return mv.mainContainer
}

// Components are exposed for tests driving the window.
func (mv *MainView) FileList() *components.FileList     { return mv.fileList }
func (mv *MainView) LogPane() *components.LogPane       { return mv.logPane }
func (mv *MainView) StateLabel() *components.StateLabel { return mv.stateLabel }
func (mv *MainView) Options() *components.OptionsPanel  { return mv.options }

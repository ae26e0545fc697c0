package controllers

import (
	"errors"
	"fmt"
	"sync"

	"zoop-converter/internal/logger"
	"zoop-converter/internal/models"
	"zoop-converter/internal/report"
	"zoop-converter/internal/services"
)

// ErrBusy is returned when a conversion is requested while one is running
var ErrBusy = errors.New("a conversion is already running")

// Commands is the action set the presentation layer invokes
type Commands interface {
	AddFiles(paths []string) AddReport
	ResolveDuplicate(path string, overwrite bool) error
	RemoveSelected(selection []int) []string
	ClearAll()
	ConvertAll() (models.Summary, error)
	ConvertSelected(selection []int) (models.Summary, error)
	SetOutputDirectory(dir string) bool
	SetOutputFormat(ext string) error
	OutputSpec() models.OutputSpec
}

// AddReport describes what happened to one batch of added files
type AddReport struct {
	Accepted    []string
	Duplicates  []string
	Unsupported int
}

// MainController owns the registry and drives conversions
type MainController struct {
	registry *models.FileRegistry
	resolver *models.SelectionResolver
	runner   *services.ConversionRunner
	state    *models.ConversionStateRepository
	options  *models.OutputOptions
	emitter  report.Emitter
	logger   logger.Logger

	mu         sync.Mutex
	converting bool
}

func NewMainController(
	registry *models.FileRegistry,
	runner *services.ConversionRunner,
	state *models.ConversionStateRepository,
	options *models.OutputOptions,
	emitter report.Emitter,
	log logger.Logger,
) *MainController {
	if log == nil {
		log = logger.NoOpLogger{}
	}
	return &MainController{
		registry: registry,
		resolver: models.NewSelectionResolver(registry),
		runner:   runner,
		state:    state,
		options:  options,
		emitter:  emitter,
		logger:   log,
	}
}

// Registry exposes the registry for read-only views.
func (mc *MainController) Registry() *models.FileRegistry {
	return mc.registry
}

// AddFiles admits every supported new path. Duplicates are returned for the
// caller to settle with ResolveDuplicate.
func (mc *MainController) AddFiles(paths []string) AddReport {
	var rep AddReport
	if len(paths) == 0 {
		mc.logger.Info("MainController", "no selected files", nil)
		return rep
	}

	for _, path := range paths {
		result, err := mc.registry.Add(path)
		if err != nil {
			mc.logger.Error("MainController", err, map[string]interface{}{"path": path})
			rep.Unsupported++
			continue
		}

		switch result {
		case models.Accepted:
			rep.Accepted = append(rep.Accepted, path)
		case models.Duplicate:
			rep.Duplicates = append(rep.Duplicates, path)
		case models.Unsupported:
			rep.Unsupported++
		}
	}

	if rep.Unsupported > 0 {
		mc.logger.Info("MainController", "non supported file(s) selected", map[string]interface{}{
			"count": rep.Unsupported,
		})
	}
	mc.logger.Debug("MainController", "files added", map[string]interface{}{
		"accepted":   len(rep.Accepted),
		"duplicates": len(rep.Duplicates),
		"total":      mc.registry.Len(),
	})
	return rep
}

// ResolveDuplicate applies the user's answer for a duplicate path. Skipping
// changes nothing.
func (mc *MainController) ResolveDuplicate(path string, overwrite bool) error {
	if !overwrite {
		mc.logger.Debug("MainController", "duplicate skipped", map[string]interface{}{"path": path})
		return nil
	}

	index, err := mc.registry.Replace(path)
	if err != nil {
		return err
	}
	mc.logger.Debug("MainController", "duplicate replaced", map[string]interface{}{
		"path":  path,
		"index": index,
	})
	return nil
}

func (mc *MainController) RemoveSelected(selection []int) []string {
	removed := mc.registry.RemoveByIndices(selection)
	if len(removed) > 0 {
		mc.logger.Info("MainController", "files removed", map[string]interface{}{
			"count": len(removed),
			"paths": removed,
		})
	}
	return removed
}

func (mc *MainController) ClearAll() {
	mc.registry.Clear()
	mc.logger.Info("MainController", "file list cleared", nil)
}

func (mc *MainController) ConvertAll() (models.Summary, error) {
	return mc.convert(models.ModeAll, nil)
}

func (mc *MainController) ConvertSelected(selection []int) (models.Summary, error) {
	return mc.convert(models.ModeSelected, selection)
}

// SetOutputDirectory keeps the previous directory when dir is empty or not a
// directory.
func (mc *MainController) SetOutputDirectory(dir string) bool {
	if !mc.options.SetDirectory(dir) {
		mc.logger.Debug("MainController", "output directory unchanged", map[string]interface{}{"input": dir})
		return false
	}
	mc.logger.Info("MainController", "output directory set", map[string]interface{}{"directory": dir})
	return true
}

func (mc *MainController) SetOutputFormat(ext string) error {
	if err := mc.options.SetFormat(ext); err != nil {
		return fmt.Errorf("set output format: %w", err)
	}
	mc.logger.Info("MainController", "output format set", map[string]interface{}{
		"extension": mc.options.OutputSpec().TargetExtension,
	})
	return nil
}

func (mc *MainController) OutputSpec() models.OutputSpec {
	return mc.options.OutputSpec()
}

// OutputFormats lists the extensions SetOutputFormat accepts.
func (mc *MainController) OutputFormats() []string {
	return mc.options.Formats()
}

// IsConverting reports whether a batch is in progress.
func (mc *MainController) IsConverting() bool {
	mc.mu.Lock()
	defer mc.mu.Unlock()
	return mc.converting
}

func (mc *MainController) convert(mode models.ConversionMode, selection []int) (models.Summary, error) {
	mc.mu.Lock()
	if mc.converting {
		mc.mu.Unlock()
		return models.Summary{}, ErrBusy
	}
	mc.converting = true
	mc.mu.Unlock()

	defer func() {
		mc.mu.Lock()
		mc.converting = false
		mc.mu.Unlock()
	}()

	mc.state.Start()
	mc.emitter.SetState(models.StateConverting)

	paths := mc.resolver.Resolve(mode, selection)
	mc.logger.Debug("MainController", "batch resolved", map[string]interface{}{
		"mode":  mode.String(),
		"files": len(paths),
	})

	return mc.runner.Run(paths, mc.options.OutputSpec()), nil
}

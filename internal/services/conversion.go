package services

import (
	"fmt"
	"os"
	"time"

	"zoop-converter/internal/codec"
	"zoop-converter/internal/logger"
	"zoop-converter/internal/models"
	"zoop-converter/internal/report"

	"github.com/google/uuid"
)

// ConversionRunner converts a resolved batch one file at a time
type ConversionRunner struct {
	codec    codec.ImageCodec
	emitter  report.Emitter
	state    *models.ConversionStateRepository
	logger   logger.Logger
	dirPerm  os.FileMode
	mkdirAll func(string, os.FileMode) error
}

// NewConversionRunner creates a runner. state may be nil.
func NewConversionRunner(c codec.ImageCodec, emitter report.Emitter, state *models.ConversionStateRepository, log logger.Logger) *ConversionRunner {
	if log == nil {
		log = logger.NoOpLogger{}
	}
	return &ConversionRunner{
		codec:    c,
		emitter:  emitter,
		state:    state,
		logger:   log,
		dirPerm:  0o755,
		mkdirAll: os.MkdirAll,
	}
}

// Run converts every path in order and never stops on a failed file. The
// state goes back to idle when the loop ends; the summary is only emitted
// when at least one file was attempted.
func (r *ConversionRunner) Run(paths []string, spec models.OutputSpec) models.Summary {
	batchID := uuid.NewString()
	startTime := time.Now()

	r.logger.Info("ConversionRunner", "batch started", map[string]interface{}{
		"batch_id":  batchID,
		"files":     len(paths),
		"codec":     r.codec.Name(),
		"directory": spec.TargetDirectory,
		"extension": spec.TargetExtension,
	})

	if len(paths) > 0 {
		r.prepareTarget(batchID, spec.TargetDirectory)
	}

	var summary models.Summary
	for _, path := range paths {
		outcome := r.convertOne(batchID, path, spec)
		summary.Record(outcome)
	}

	if r.state != nil {
		r.state.Finish(summary)
	}
	r.emitter.SetState(models.StateIdle)

	if summary.Attempted() > 0 {
		r.emitter.Summary(summary)
	}

	r.logger.Info("ConversionRunner", "batch finished", map[string]interface{}{
		"batch_id": batchID,
		"success":  summary.Success,
		"aborted":  summary.Aborted,
		"duration": time.Since(startTime).String(),
	})

	return summary
}

func (r *ConversionRunner) convertOne(batchID, path string, spec models.OutputSpec) models.Outcome {
	ext := models.NormalizeExtension(spec.TargetExtension)

	decoded, err := r.codec.Decode(path)
	if err != nil {
		r.fail(batchID, path, ext, err)
		return models.Aborted
	}
	defer decoded.Release()

	destination := spec.Destination(path)
	if err := r.codec.Encode(decoded, destination); err != nil {
		r.fail(batchID, path, ext, err)
		return models.Aborted
	}

	r.emitter.Log(report.ColorSuccess, fmt.Sprintf("INFO : Converted %s to %s", path, ext))
	r.logger.Debug("ConversionRunner", "file converted", map[string]interface{}{
		"batch_id":    batchID,
		"source":      path,
		"destination": destination,
	})
	return models.Success
}

func (r *ConversionRunner) fail(batchID, path, ext string, err error) {
	r.emitter.Log(report.ColorFailure, fmt.Sprintf("ERROR : Failed to convert %s to %s (%v)", path, ext, err))
	r.logger.Error("ConversionRunner", err, map[string]interface{}{
		"batch_id": batchID,
		"source":   path,
	})
}

func (r *ConversionRunner) prepareTarget(batchID, dir string) {
	if dir == "" {
		return
	}
	if err := r.mkdirAll(dir, r.dirPerm); err != nil {
		r.logger.Warning("ConversionRunner", "output directory could not be created", map[string]interface{}{
			"batch_id":  batchID,
			"directory": dir,
			"error":     err.Error(),
		})
	}
}

package app

import (
	"sync"

	"zoop-converter/internal/logger"
	"zoop-converter/internal/views/components"
)

type Lifecycle struct {
	handlers *Handlers
	thumbs   *components.ThumbnailCache
	logger   logger.Logger
	once     sync.Once
}

func NewLifecycle(h *Handlers, thumbs *components.ThumbnailCache, log logger.Logger) *Lifecycle {
	return &Lifecycle{
		handlers: h,
		thumbs:   thumbs,
		logger:   log,
	}
}

// Shutdown waits for a running batch to return before releasing previews.
func (l *Lifecycle) Shutdown() {
	l.once.Do(func() {
		l.logger.Info("Lifecycle", "shutdown sequence initiated", nil)

		if l.handlers != nil {
			l.handlers.Wait()
			l.logger.Debug("Lifecycle", "conversion goroutine finished", nil)
		}

		if l.thumbs != nil {
			l.thumbs.Reset()
		}

		l.logger.Info("Lifecycle", "shutdown sequence completed", nil)
	})
}

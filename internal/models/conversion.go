package models

import (
	"path/filepath"
	"strings"
	"sync"
	"time"
)

// ConversionState is the externally visible "is a batch running" indicator
type ConversionState int

const (
	StateIdle ConversionState = iota
	StateConverting
)

func (s ConversionState) String() string {
	if s == StateConverting {
		return "Converting..."
	}
	return "No conversion started"
}

// Outcome is the classification of one attempted file
type Outcome int

const (
	Success Outcome = iota
	Aborted
)

func (o Outcome) String() string {
	if o == Success {
		return "success"
	}
	return "aborted"
}

// Summary tallies one conversion run
type Summary struct {
	Success int
	Aborted int
}

// Attempted is the number of files the run tried.
func (s Summary) Attempted() int {
	return s.Success + s.Aborted
}

// Record adds one outcome to the tally.
func (s *Summary) Record(o Outcome) {
	if o == Success {
		s.Success++
	} else {
		s.Aborted++
	}
}

// OutputSpec is where and as what a batch is written
type OutputSpec struct {
	TargetDirectory string
	TargetExtension string
}

// Destination builds the output path for input. Only the final extension of
// the input name is replaced.
func (o OutputSpec) Destination(input string) string {
	base := filepath.Base(input)
	stem := strings.TrimSuffix(base, filepath.Ext(base))
	return filepath.Join(o.TargetDirectory, stem+NormalizeExtension(o.TargetExtension))
}

// ConversionStateRepository stores the current state and the last summary
type ConversionStateRepository struct {
	mu          sync.RWMutex
	state       ConversionState
	startedAt   time.Time
	lastSummary Summary
	runs        int
}

func NewConversionStateRepository() *ConversionStateRepository {
	return &ConversionStateRepository{state: StateIdle}
}

func (r *ConversionStateRepository) State() ConversionState {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.state
}

// Start marks a batch as running.
func (r *ConversionStateRepository) Start() {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.state = StateConverting
	r.startedAt = time.Now()
}

// Finish returns to idle and keeps summary as the latest result.
func (r *ConversionStateRepository) Finish(summary Summary) time.Duration {
	r.mu.Lock()
	defer r.mu.Unlock()

	var elapsed time.Duration
	if !r.startedAt.IsZero() {
		elapsed = time.Since(r.startedAt)
	}
	r.state = StateIdle
	r.startedAt = time.Time{}
	r.lastSummary = summary
	r.runs++
	return elapsed
}

// LastSummary returns the latest summary and how many runs have finished.
func (r *ConversionStateRepository) LastSummary() (Summary, int) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.lastSummary, r.runs
}

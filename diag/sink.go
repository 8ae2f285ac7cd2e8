package diag

import (
	"context"
	"log/slog"
	"sync"
)

// LogSink writes reports through a slog.Logger.
type LogSink struct {
	logger *slog.Logger
	mu     sync.Mutex

	// FatalAssumptions makes AssumptionFailure reports panic after logging.
	FatalAssumptions bool
}

// NewLogSink returns a sink writing to logger, or slog.Default when nil.
func NewLogSink(logger *slog.Logger) *LogSink {
	if logger == nil {
		logger = slog.Default()
	}
	return &LogSink{logger: logger}
}

func (s *LogSink) Report(r Report) {
	level := slog.LevelInfo
	switch r.Severity {
	case Warning:
		level = slog.LevelWarn
	case Error, AssumptionFailure:
		level = slog.LevelError
	}

	attrs := make([]slog.Attr, 0, len(r.Fields)+1)
	if r.Severity == AssumptionFailure {
		attrs = append(attrs, slog.Bool("assumption", true))
	}
	for _, f := range r.Fields {
		attrs = append(attrs, slog.Any(f.Name, f.Value))
	}

	s.mu.Lock()
	s.logger.LogAttrs(context.Background(), level, r.Message(), attrs...)
	s.mu.Unlock()

	if r.Severity == AssumptionFailure && s.FatalAssumptions {
		panic("assumption failed: " + r.Message())
	}
}

// Recorder keeps every report it receives.
type Recorder struct {
	mu      sync.Mutex
	reports []Report
}

func (r *Recorder) Report(rep Report) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.reports = append(r.reports, rep)
}

// Reports returns a copy of the recorded reports.
func (r *Recorder) Reports() []Report {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]Report, len(r.reports))
	copy(out, r.reports)
	return out
}

// Count returns the number of recorded reports with the given severity.
func (r *Recorder) Count(sev Severity) int {
	r.mu.Lock()
	defer r.mu.Unlock()
	n := 0
	for _, rep := range r.reports {
		if rep.Severity == sev {
			n++
		}
	}
	return n
}

// Len returns the number of recorded reports.
func (r *Recorder) Len() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.reports)
}

// Reset drops all recorded reports.
func (r *Recorder) Reset() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.reports = nil
}

// Tee forwards every report to each sink in order.
func Tee(sinks ...Sink) Sink {
	return SinkFunc(func(r Report) {
		for _, s := range sinks {
			if s != nil {
				s.Report(r)
			}
		}
	})
}

// Package diag provides the structured report sink used by devices and the
// input system for invalid access, unknown players and assumption failures.
//
// Reports never abort the caller. The sink decides how to present them.
package diag

import (
	"fmt"
	"strings"
)

// Severity classifies a Report.
type Severity int

const (
	Info Severity = iota
	Warning
	Error
	// AssumptionFailure marks an internal consistency violation. It is more
	// severe than Error and may be configured to panic.
	AssumptionFailure
)

func (s Severity) String() string {
	switch s {
	case Info:
		return "info"
	case Warning:
		return "warning"
	case Error:
		return "error"
	case AssumptionFailure:
		return "assumption failure"
	default:
		return fmt.Sprintf("severity(%d)", int(s))
	}
}

// Field is a named supplementary value attached to a Report.
type Field struct {
	Name  string
	Value any
}

// Report is a single diagnostic with ordered message lines and fields.
type Report struct {
	Severity Severity
	Lines    []string
	Fields   []Field
}

// Message returns the report lines joined with newlines.
func (r Report) Message() string {
	return strings.Join(r.Lines, "\n")
}

// Field returns the value of the first field with the given name.
func (r Report) Field(name string) (any, bool) {
	for _, f := range r.Fields {
		if f.Name == name {
			return f.Value, true
		}
	}
	return nil, false
}

// Sink receives reports.
type Sink interface {
	Report(r Report)
}

// SinkFunc adapts a function to a Sink.
type SinkFunc func(Report)

func (f SinkFunc) Report(r Report) { f(r) }

// Discard drops every report.
var Discard Sink = SinkFunc(func(Report) {})

// Builder accumulates a report before handing it to a sink.
type Builder struct {
	sink   Sink
	report Report
}

func newBuilder(sink Sink, sev Severity, format string, args ...any) *Builder {
	b := &Builder{sink: sink, report: Report{Severity: sev}}
	return b.Line(format, args...)
}

// NewInfo starts an Info report.
func NewInfo(sink Sink, format string, args ...any) *Builder {
	return newBuilder(sink, Info, format, args...)
}

// NewWarning starts a Warning report.
func NewWarning(sink Sink, format string, args ...any) *Builder {
	return newBuilder(sink, Warning, format, args...)
}

// NewError starts an Error report.
func NewError(sink Sink, format string, args ...any) *Builder {
	return newBuilder(sink, Error, format, args...)
}

// NewAssumption starts an AssumptionFailure report.
func NewAssumption(sink Sink, format string, args ...any) *Builder {
	return newBuilder(sink, AssumptionFailure, format, args...)
}

// Line appends a message line.
func (b *Builder) Line(format string, args ...any) *Builder {
	if len(args) == 0 {
		b.report.Lines = append(b.report.Lines, format)
	} else {
		b.report.Lines = append(b.report.Lines, fmt.Sprintf(format, args...))
	}
	return b
}

// Value appends a named field.
func (b *Builder) Value(name string, v any) *Builder {
	b.report.Fields = append(b.report.Fields, Field{Name: name, Value: v})
	return b
}

// Build returns the accumulated report without sending it.
func (b *Builder) Build() Report {
	return b.report
}

// Perform sends the report. A nil sink drops it.
func (b *Builder) Perform() {
	if b.sink == nil {
		return
	}
	b.sink.Report(b.report)
}

// Assume reports an AssumptionFailure when cond is false and returns cond.
// Fields are given as alternating name/value pairs.
func Assume(sink Sink, cond bool, msg string, kv ...any) bool {
	if cond {
		return true
	}
	b := NewAssumption(sink, msg)
	for i := 0; i+1 < len(kv); i += 2 {
		name, ok := kv[i].(string)
		if !ok {
			name = fmt.Sprint(kv[i])
		}
		b.Value(name, kv[i+1])
	}
	b.Perform()
	return false
}

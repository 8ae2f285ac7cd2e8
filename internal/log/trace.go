package log

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"log/slog"
	"strconv"
	"sync"

	"github.com/Alia5/inputmap/input"
)

// Trace writes one line per input change.
type Trace struct {
	w  io.Writer
	mu sync.Mutex
}

// NewTrace returns a tracer writing to w. A nil writer discards changes.
func NewTrace(w io.Writer) *Trace {
	return &Trace{w: w}
}

// TraceChange emits a single line with timestamp, slot, device and value.
func (t *Trace) TraceChange(e input.ChangeEvent) {
	if t.w == nil {
		return
	}

	var line bytes.Buffer
	line.WriteString(e.Time.Format("2006/01/02 15:04:05.000"))
	fmt.Fprintf(&line, " slot %d %q input %d = %s", e.Device, e.DeviceName, e.Input,
		strconv.FormatFloat(e.Value, 'g', -1, 64))
	if e.Flags.Has(input.Injected) {
		line.WriteString(" injected")
	}
	if e.Flags.Has(input.Repeated) {
		line.WriteString(" repeat")
	}
	line.WriteByte('\n')

	t.mu.Lock()
	_, _ = t.w.Write(line.Bytes())
	t.mu.Unlock()
}

// SlogTracer logs input changes at LevelTrace.
func SlogTracer(logger *slog.Logger) input.Tracer {
	return input.TracerFunc(func(e input.ChangeEvent) {
		if !logger.Enabled(context.Background(), LevelTrace) {
			return
		}
		logger.Log(context.Background(), LevelTrace, "Input changed",
			"slot", e.Device,
			"device", e.DeviceName,
			"input", uint64(e.Input),
			"value", e.Value,
			"injected", e.Flags.Has(input.Injected),
			"repeat", e.Flags.Has(input.Repeated),
		)
	})
}

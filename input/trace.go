package input

import (
	"time"

	"github.com/Alia5/inputmap/device"
)

// ChangeFlags qualifies a traced change.
type ChangeFlags uint8

const (
	// Injected changes came from InjectInputChange, InjectNavigation or ResetInput.
	Injected ChangeFlags = 1 << iota
	// Repeated changes are repeat events of a held input.
	Repeated
)

func (f ChangeFlags) Has(o ChangeFlags) bool { return f&o == o }

// ChangeEvent is one input change observed by a System.
type ChangeEvent struct {
	Time time.Time
	// Device is the slot of the top-level device. DeviceName names the
	// device that reported the change, which may be a sub-device.
	Device     int
	DeviceName string
	Input      device.InputID
	Value      float64
	Flags      ChangeFlags
}

// Tracer observes input changes.
type Tracer interface {
	TraceChange(e ChangeEvent)
}

// TracerFunc adapts a function to a Tracer.
type TracerFunc func(ChangeEvent)

func (f TracerFunc) TraceChange(e ChangeEvent) { f(e) }

type recordKey struct {
	slot  int
	input device.InputID
}

// Recording is a Tracer that keeps changes of selected devices and inputs.
// Nothing is recorded until a Start call selects a source.
type Recording struct {
	devices map[int]bool
	inputs  map[recordKey]bool
	limits  map[recordKey]int
	counts  map[recordKey]int
	events  []ChangeEvent
}

// NewRecording returns an idle recording.
func NewRecording() *Recording {
	return &Recording{
		devices: make(map[int]bool),
		inputs:  make(map[recordKey]bool),
		limits:  make(map[recordKey]int),
		counts:  make(map[recordKey]int),
	}
}

// StartDevice records every input of slot dev.
func (r *Recording) StartDevice(dev int) { r.devices[dev] = true }

// StartInput records one input of slot dev.
func (r *Recording) StartInput(dev int, id device.InputID) {
	r.inputs[recordKey{dev, id}] = true
}

// StartAll records every device, including ones connected later.
func (r *Recording) StartAll() { r.devices[NoDevice] = true }

// SetMaxRecorded caps the number of recorded changes of one input. A
// negative max removes the cap.
func (r *Recording) SetMaxRecorded(dev int, id device.InputID, max int) {
	k := recordKey{dev, id}
	if max < 0 {
		delete(r.limits, k)
		return
	}
	r.limits[k] = max
}

// StopInput stops recording one input selected by StartInput.
func (r *Recording) StopInput(dev int, id device.InputID) {
	delete(r.inputs, recordKey{dev, id})
}

// StopDevice stops recording slot dev.
func (r *Recording) StopDevice(dev int) {
	delete(r.devices, dev)
	for k := range r.inputs {
		if k.slot == dev {
			delete(r.inputs, k)
		}
	}
}

// StopAll stops recording. Recorded events are kept.
func (r *Recording) StopAll() {
	clear(r.devices)
	clear(r.inputs)
}

func (r *Recording) TraceChange(e ChangeEvent) {
	k := recordKey{e.Device, e.Input}
	if !r.devices[NoDevice] && !r.devices[e.Device] && !r.inputs[k] {
		return
	}
	if max, ok := r.limits[k]; ok && r.counts[k] >= max {
		return
	}
	r.counts[k]++
	r.events = append(r.events, e)
}

// Events returns the recorded changes in order.
func (r *Recording) Events() []ChangeEvent {
	return append([]ChangeEvent(nil), r.events...)
}

// Reset drops recorded changes and per-input counts.
func (r *Recording) Reset() {
	r.events = nil
	clear(r.counts)
}

// Tee forwards changes to every tracer in order.
func Tee(tracers ...Tracer) Tracer {
	return TracerFunc(func(e ChangeEvent) {
		for _, t := range tracers {
			if t != nil {
				t.TraceChange(e)
			}
		}
	})
}

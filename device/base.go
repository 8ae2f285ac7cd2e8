package device

import (
	"time"

	"github.com/go-gl/mathgl/mgl64"

	"github.com/Alia5/inputmap/diag"
)

// Host is the owning input system as seen by a device. Devices hold it as a
// non-owning back reference for reporting and activity tracking.
type Host interface {
	diag.Sink
	// DeviceChanged is called by a device whenever one of its inputs changed.
	DeviceChanged(c Change)
	Now() time.Time
}

// Change describes one input change reported by a device.
type Change struct {
	Device Device
	Input  InputID
	Value  float64
	Time   time.Time
	// Repeat is set for key repeat events of an input that stays pressed.
	Repeat bool
}

// Base carries the state shared by all built-in devices. Embed it and
// override what the backend supports.
type Base struct {
	host       Host
	name       string
	player     PlayerID
	lastActive time.Time
	status     Status
}

// NewBase returns a Base configured from o.
func NewBase(o *CreateOptions, defaultName string) Base {
	b := Base{name: defaultName, status: StatusReady}
	if o != nil {
		b.host = o.Host
		if o.Name != "" {
			b.name = o.Name
		}
		b.player = o.Player
	}
	return b
}

func (b *Base) Name() string { return b.name }

// SetName renames the device.
func (b *Base) SetName(name string) { b.name = name }

func (b *Base) Host() Host { return b.host }

// SetHost rebinds the device to another owning system.
func (b *Base) SetHost(h Host) { b.host = h }

func (b *Base) Flags() Flags { return 0 }

func (b *Base) Status() Status { return b.status }

func (b *Base) SetStatus(s Status) { b.status = s }

func (b *Base) IsActive() bool { return b.status == StatusReady }

func (b *Base) LastActiveTime() time.Time { return b.lastActive }

func (b *Base) SetLastActiveTime(t time.Time) { b.lastActive = t }

func (b *Base) AssociatedPlayer() PlayerID { return b.player }

func (b *Base) AssociatePlayer(p PlayerID) bool {
	b.player = p
	return true
}

func (b *Base) StringProperty(p StringProperty, _ string) (string, bool) {
	if p == PropertyName {
		return b.name, true
	}
	return "", false
}

func (b *Base) NumberProperty(NumberProperty) (mgl64.Vec3, bool) {
	return mgl64.Vec3{}, false
}

func (b *Base) ForceRefresh() {}

// Sink returns the host as a report sink, or diag.Discard when detached.
func (b *Base) Sink() diag.Sink {
	if b.host == nil {
		return diag.Discard
	}
	return b.host
}

// Now returns the host clock, or wall time when detached.
func (b *Base) Now() time.Time {
	if b.host == nil {
		return time.Now()
	}
	return b.host.Now()
}

// ReportInvalidInput reports an access to an id outside [0, max).
func (b *Base) ReportInvalidInput(id, max InputID) {
	diag.NewError(b.Sink(), "Input is not valid").
		Value("Input", id.String()).
		Value("Device", b.name).
		Value("ValidRange", uint64(max)-1).
		Perform()
}

// Changed records activity on input id of self and notifies the host.
func (b *Base) Changed(self Device, id InputID, v float64) {
	b.notify(Change{Device: self, Input: id, Value: v})
}

// Repeated records a repeat event of a held input.
func (b *Base) Repeated(self Device, id InputID, v float64) {
	b.notify(Change{Device: self, Input: id, Value: v, Repeat: true})
}

func (b *Base) notify(c Change) {
	c.Time = b.Now()
	b.lastActive = c.Time
	if b.host != nil {
		b.host.DeviceChanged(c)
	}
}

// NoOutputs answers every output request with false.
type NoOutputs struct{}

func (NoOutputs) MaxOutputID() OutputID { return 0 }
func (NoOutputs) IsOutputValid(OutputID) bool { return false }
func (NoOutputs) OutputProperties(OutputID) (OutputProperties, bool) { return OutputProperties{}, false }
func (NoOutputs) SetOutput(OutputID, mgl64.Vec3) bool { return false }
func (NoOutputs) ResetOutput(OutputID) bool { return false }
func (NoOutputs) SendOutputData(OutputID, []byte) bool { return false }
func (NoOutputs) SetOutputCallback(OutputID, func([]byte)) bool { return false }
func (NoOutputs) EnableOutput(OutputID, bool) bool { return false }

// Frame holds the current and last-frame state of a device. S must be a
// value type so that Advance produces a disjoint copy.
type Frame[S any] struct {
	Current S
	Last    S
}

// Advance copies Current into Last.
func (f *Frame[S]) Advance() {
	f.Last = f.Current
}

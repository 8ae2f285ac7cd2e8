// Package input resolves player-scoped logical actions to physical device
// inputs. A System owns the connected devices in numbered slots and a
// per-player mapping table, and answers frame-accurate queries such as
// IsButtonPressed and WasButtonPressed.
//
// A System is driven by a single goroutine: inject or poll input, query,
// then call Update once per tick.
package input

import (
	"fmt"
	"log/slog"
	"time"

	"github.com/Alia5/inputmap/device"
	"github.com/Alia5/inputmap/diag"
)

// Default device slots created by Init.
const (
	KeyboardSlot     = 0
	MouseSlot        = 1
	FirstGamepadSlot = 2
)

// NoDevice is returned where no device slot applies.
const NoDevice = -1

// DefaultDeviceTypes are the device types Init creates, in slot order.
var DefaultDeviceTypes = []string{"keyboard", "mouse", "xbox360"}

// Option configures a System.
type Option func(*System)

// WithSink sets the diagnostics sink. Defaults to a diag.LogSink on the
// system's logger.
func WithSink(sink diag.Sink) Option {
	return func(s *System) { s.sink = sink }
}

// WithLogger sets the logger for connection events.
func WithLogger(logger *slog.Logger) Option {
	return func(s *System) { s.logger = logger }
}

// WithClock replaces time.Now, mostly for replays and tests.
func WithClock(now func() time.Time) Option {
	return func(s *System) { s.now = now }
}

// WithTracer receives every input change observed by the system.
func WithTracer(t Tracer) Option {
	return func(s *System) { s.tracer = t }
}

// WithDeviceTypes sets the registered device types Init creates.
func WithDeviceTypes(types ...string) Option {
	return func(s *System) { s.deviceTypes = types }
}

// System owns devices and mappings and resolves action queries.
type System struct {
	sink        diag.Sink
	logger      *slog.Logger
	now         func() time.Time
	tracer      Tracer
	deviceTypes []string

	devices    []device.Device
	names      []string
	lastActive int

	players map[device.PlayerID]*player

	injecting bool
	pressedAt map[inputRef]time.Time
}

type inputRef struct {
	slot  int
	input device.InputID
}

// New returns an empty System. Call Init to create the default devices.
func New(opts ...Option) *System {
	s := &System{
		now:         time.Now,
		deviceTypes: DefaultDeviceTypes,
		lastActive:  NoDevice,
		players:     make(map[device.PlayerID]*player),
		pressedAt:   make(map[inputRef]time.Time),
	}
	for _, opt := range opts {
		opt(s)
	}
	if s.logger == nil {
		s.logger = slog.Default()
	}
	if s.sink == nil {
		s.sink = diag.NewLogSink(s.logger)
	}
	return s
}

// Init creates the configured device types into consecutive slots and makes
// the first slot the last active device.
func (s *System) Init() error {
	for _, name := range s.deviceTypes {
		d, err := device.Create(name, &device.CreateOptions{Host: s})
		if err != nil {
			return fmt.Errorf("init devices: %w", err)
		}
		s.AddDevice(d)
	}
	if len(s.devices) > 0 {
		s.SetLastActiveDevice(0, time.Time{})
	}
	return nil
}

// Report forwards r to the diagnostics sink.
func (s *System) Report(r diag.Report) { s.sink.Report(r) }

// Sink returns the diagnostics sink.
func (s *System) Sink() diag.Sink { return s.sink }

// Now returns the system clock.
func (s *System) Now() time.Time { return s.now() }

// Update starts a new frame on every connected device, in slot order.
func (s *System) Update() {
	for _, d := range s.devices {
		if d != nil {
			d.NewFrame()
		}
	}
}

// ForceRefresh polls every connected device without advancing frames.
func (s *System) ForceRefresh() {
	for _, d := range s.devices {
		if d != nil {
			d.ForceRefresh()
		}
	}
}

type hostBinder interface {
	SetHost(h device.Host)
}

// AddDevice connects d to a new slot and returns the slot index.
func (s *System) AddDevice(d device.Device) int {
	s.devices = append(s.devices, nil)
	s.names = append(s.names, "")
	idx := len(s.devices) - 1
	s.ConnectDevice(idx, d)
	return idx
}

// ConnectDevice places d into slot idx, growing the slot list as needed.
// Devices built on device.Base are rebound to this system.
func (s *System) ConnectDevice(idx int, d device.Device) {
	if idx < 0 || d == nil {
		return
	}
	for len(s.devices) <= idx {
		s.devices = append(s.devices, nil)
		s.names = append(s.names, "")
	}
	if hb, ok := d.(hostBinder); ok {
		hb.SetHost(s)
	}
	s.devices[idx] = d
	s.names[idx] = d.Name()
	s.logger.Debug("Device connected", "slot", idx, "name", d.Name(), "role", d.Role().String())
}

// DisconnectDevice empties slot idx. Bindings to the slot stay in place and
// are skipped until a device is connected again.
func (s *System) DisconnectDevice(idx int) {
	d := s.Device(idx)
	if d == nil {
		return
	}
	s.names[idx] = d.Name()
	s.devices[idx] = nil
	if s.lastActive == idx {
		s.lastActive = NoDevice
	}
	for ref := range s.pressedAt {
		if ref.slot == idx {
			delete(s.pressedAt, ref)
		}
	}
	s.logger.Debug("Device disconnected", "slot", idx, "name", s.names[idx])
}

// Device returns the device in slot idx, or nil when the slot is empty.
func (s *System) Device(idx int) device.Device {
	if idx < 0 || idx >= len(s.devices) {
		return nil
	}
	return s.devices[idx]
}

// Devices returns the connected devices in slot order.
func (s *System) Devices() []device.Device {
	out := make([]device.Device, 0, len(s.devices))
	for _, d := range s.devices {
		if d != nil {
			out = append(out, d)
		}
	}
	return out
}

// DeviceCount returns the number of slots, connected or not.
func (s *System) DeviceCount() int { return len(s.devices) }

// SlotOf returns the slot of d or of the top-level device d belongs to.
func (s *System) SlotOf(d device.Device) int {
	for d != nil {
		for i, dev := range s.devices {
			if dev == d {
				return i
			}
		}
		c := d.Capabilities().Composite
		if c == nil {
			break
		}
		d, _ = c.ParentDevice()
	}
	return NoDevice
}

// Keyboard returns the device in the keyboard slot.
func (s *System) Keyboard() device.Device { return s.Device(KeyboardSlot) }

// Mouse returns the device in the mouse slot.
func (s *System) Mouse() device.Device { return s.Device(MouseSlot) }

// FirstGamepad returns the device in the first gamepad slot.
func (s *System) FirstGamepad() device.Device { return s.Device(FirstGamepadSlot) }

// InputDeviceName names slot idx for display. Empty slots are named by
// index and, when known, by the device that was last connected there.
func (s *System) InputDeviceName(idx int) string {
	if d := s.Device(idx); d != nil {
		return d.Name()
	}
	if idx >= 0 && idx < len(s.names) && s.names[idx] != "" {
		return fmt.Sprintf("Disconnected Device %d (previously %s)", idx, s.names[idx])
	}
	return fmt.Sprintf("Disconnected Device %d", idx)
}

// SetLastActiveDevice marks slot idx as the most recently active device at t.
// The latest call wins. An empty slot clears the last active device.
func (s *System) SetLastActiveDevice(idx int, t time.Time) {
	d := s.Device(idx)
	if d == nil {
		s.lastActive = NoDevice
		return
	}
	d.SetLastActiveTime(t)
	s.lastActive = idx
}

// LastActiveDevice returns the slot of the most recently active device, or
// NoDevice.
func (s *System) LastActiveDevice() int { return s.lastActive }

// DeviceChanged is called by devices whenever one of their inputs changes.
func (s *System) DeviceChanged(c device.Change) {
	idx := s.SlotOf(c.Device)
	if idx == NoDevice {
		return
	}
	s.SetLastActiveDevice(idx, c.Time)

	if c.Device == s.devices[idx] {
		ref := inputRef{idx, c.Input}
		if c.Device.IsInputPressed(c.Input) {
			if _, ok := s.pressedAt[ref]; !ok {
				s.pressedAt[ref] = c.Time
			}
		} else {
			delete(s.pressedAt, ref)
		}
	}

	if s.tracer != nil {
		var flags ChangeFlags
		if s.injecting {
			flags |= Injected
		}
		if c.Repeat {
			flags |= Repeated
		}
		s.tracer.TraceChange(ChangeEvent{
			Time:       c.Time,
			Device:     idx,
			DeviceName: c.Device.Name(),
			Input:      c.Input,
			Value:      c.Value,
			Flags:      flags,
		})
	}
}

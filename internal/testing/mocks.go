package testing

import (
	"testing"
	"time"

	"github.com/Alia5/inputmap/device"
	"github.com/Alia5/inputmap/diag"
)

// MaxMockInputs bounds the number of inputs a MockDevice can declare.
const MaxMockInputs = 32

// MockHost records reports and device changes and runs on a manual clock.
type MockHost struct {
	diag.Recorder

	Clock   time.Time
	Changes []device.Change
}

func NewMockHost() *MockHost {
	return &MockHost{Clock: time.Unix(1700000000, 0)}
}

func (h *MockHost) DeviceChanged(c device.Change) {
	h.Changes = append(h.Changes, c)
}

func (h *MockHost) Now() time.Time { return h.Clock }

// Tick moves the clock forward.
func (h *MockHost) Tick(d time.Duration) { h.Clock = h.Clock.Add(d) }

// MockDevice is a generic device with a fixed list of inputs.
type MockDevice struct {
	device.Base

	props     []device.InputProperties
	frame     device.Frame[[MaxMockInputs]float64]
	NewFrames int
	Refreshes int
}

// NewMockDevice returns a device exposing one input per descriptor.
func NewMockDevice(o *device.CreateOptions, props ...device.InputProperties) *MockDevice {
	if len(props) > MaxMockInputs {
		props = props[:MaxMockInputs]
	}
	return &MockDevice{Base: device.NewBase(o, "Mock Device"), props: props}
}

func (m *MockDevice) Role() device.Role { return device.RoleUnknown }

func (m *MockDevice) Capabilities() device.Capabilities {
	return device.Capabilities{Injector: m}
}

func (m *MockDevice) MaxInputID() device.InputID { return device.InputID(len(m.props)) }

func (m *MockDevice) IsInputValid(id device.InputID) bool { return id < m.MaxInputID() }

func (m *MockDevice) IsAnyInputActive() bool {
	for i := range m.props {
		if m.IsInputPressed(device.InputID(i)) {
			return true
		}
	}
	return false
}

func (m *MockDevice) InputValue(id device.InputID) float64 {
	if !m.IsInputValid(id) {
		m.ReportInvalidInput(id, m.MaxInputID())
		return 0
	}
	return m.frame.Current[id]
}

func (m *MockDevice) IsInputPressed(id device.InputID) bool {
	if !m.IsInputValid(id) {
		m.ReportInvalidInput(id, m.MaxInputID())
		return false
	}
	return m.props[id].IsPressed(m.frame.Current[id])
}

func (m *MockDevice) InputValueLastFrame(id device.InputID) float64 {
	if !m.IsInputValid(id) {
		m.ReportInvalidInput(id, m.MaxInputID())
		return 0
	}
	return m.frame.Last[id]
}

func (m *MockDevice) WasInputPressedLastFrame(id device.InputID) bool {
	if !m.IsInputValid(id) {
		m.ReportInvalidInput(id, m.MaxInputID())
		return false
	}
	return m.props[id].IsPressed(m.frame.Last[id])
}

func (m *MockDevice) PropertiesOf(id device.InputID) (device.InputProperties, bool) {
	if !m.IsInputValid(id) {
		return device.InputProperties{}, false
	}
	return m.props[id], true
}

func (m *MockDevice) CanTriggerNavigation(device.Navigation) bool { return false }
func (m *MockDevice) IsNavigationPressed(device.Navigation) bool { return false }
func (m *MockDevice) WasNavigationPressedLastFrame(device.Navigation) bool { return false }

func (m *MockDevice) NewFrame() {
	m.NewFrames++
	m.frame.Advance()
}

func (m *MockDevice) ForceRefresh() { m.Refreshes++ }

// Set changes an input's current value and records activity.
func (m *MockDevice) Set(id device.InputID, v float64) {
	m.InjectInput(id, v)
}

func (m *MockDevice) InjectInput(id device.InputID, v float64) bool {
	if !m.IsInputValid(id) {
		m.ReportInvalidInput(id, m.MaxInputID())
		return false
	}
	v = m.props[id].Clamp(v)
	if m.frame.Current[id] != v {
		m.frame.Current[id] = v
		m.Changed(m, id, v)
	}
	return true
}

// CreateMockFactory returns a registry factory producing MockDevices.
func CreateMockFactory(
	t *testing.T,
	name string,
	props ...device.InputProperties,
) device.Factory {
	return func(o *device.CreateOptions) (device.Device, error) {
		opts := device.CreateOptions{Name: name}
		if o != nil {
			opts = *o
			if opts.Name == "" {
				opts.Name = name
			}
		}
		return NewMockDevice(&opts, props...), nil
	}
}

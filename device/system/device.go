// Package system implements the device representing the machine and its
// operating system: lid, power, media and session events, hardware sensors
// and user preferences.
package system

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"

	"github.com/Alia5/inputmap/device"
)

var inputProperties = func() [InputCount]device.InputProperties {
	var props [InputCount]device.InputProperties
	for id := device.InputID(0); id < InputCount; id++ {
		var p device.InputProperties
		switch id {
		case BatteryCharge, CPUFanUtilization, CPUUtilization, GPUUtilization,
			GPUFanUtilization, ChassisFanUtilization, WirelessNetworkStrength:
			p = device.DefaultInputProperties(inputNames[id])
			p.MinValue, p.DeadZoneMin, p.DeadZoneMax = 0, 0, 0
			p.Unit = "%"
		case CPUTemperature, GPUTemperature:
			p = device.DefaultInputProperties(inputNames[id])
			p.MinValue, p.MaxValue = math.Inf(-1), math.Inf(1)
			p.DeadZoneMin, p.DeadZoneMax = 0, 0
			p.Unit = "°C"
			p.Dimension = "temperature"
		default:
			p = device.ButtonProperties(inputNames[id], "")
			p.Flags &^= device.ReturnsToNeutral
		}
		props[id] = p
	}
	return props
}()

// System is the virtual machine/OS device. Platform layers feed it with Set.
type System struct {
	device.Base

	frame          device.Frame[[InputCount]float64]
	config         [ConfigCount]float64
	flags          ConfigFlag
	colorblindness ColorblindnessType
	powerMode      float64
}

// New returns a System with an open lid on wired power.
func New(o *device.CreateOptions) *System {
	s := &System{Base: device.NewBase(o, "System")}
	s.frame.Current[LidState] = 1
	s.frame.Last[LidState] = 1
	s.config[PreferredUIScale] = 1
	s.config[LimitAnimations] = 1
	s.powerMode = 1
	return s
}

func (s *System) Role() device.Role { return device.RoleSystem }

func (s *System) Flags() device.Flags { return device.UniquePerSystem }

func (s *System) Capabilities() device.Capabilities {
	return device.Capabilities{Injector: s, Power: s}
}

func (s *System) MaxInputID() device.InputID { return InputCount }

func (s *System) IsInputValid(id device.InputID) bool { return id < InputCount }

func (s *System) IsAnyInputActive() bool {
	for id := Sleep; id <= VolumeDown; id++ {
		if s.frame.Current[id] != 0 {
			return true
		}
	}
	return false
}

func (s *System) InputValue(id device.InputID) float64 {
	if !s.IsInputValid(id) {
		s.ReportInvalidInput(id, InputCount)
		return 0
	}
	return s.frame.Current[id]
}

func (s *System) IsInputPressed(id device.InputID) bool {
	if !s.IsInputValid(id) {
		s.ReportInvalidInput(id, InputCount)
		return false
	}
	return inputProperties[id].IsPressed(s.frame.Current[id])
}

func (s *System) InputValueLastFrame(id device.InputID) float64 {
	if !s.IsInputValid(id) {
		s.ReportInvalidInput(id, InputCount)
		return 0
	}
	return s.frame.Last[id]
}

func (s *System) WasInputPressedLastFrame(id device.InputID) bool {
	if !s.IsInputValid(id) {
		s.ReportInvalidInput(id, InputCount)
		return false
	}
	return inputProperties[id].IsPressed(s.frame.Last[id])
}

func (s *System) PropertiesOf(id device.InputID) (device.InputProperties, bool) {
	if !s.IsInputValid(id) {
		return device.InputProperties{}, false
	}
	return inputProperties[id], true
}

func (s *System) CanTriggerNavigation(device.Navigation) bool { return false }
func (s *System) IsNavigationPressed(device.Navigation) bool { return false }
func (s *System) WasNavigationPressedLastFrame(device.Navigation) bool {
	return false
}

func (s *System) NewFrame() { s.frame.Advance() }

// Set changes an input. Values are clamped to the input's range.
func (s *System) Set(id device.InputID, v float64) bool {
	if !s.IsInputValid(id) {
		s.ReportInvalidInput(id, InputCount)
		return false
	}
	v = inputProperties[id].Clamp(v)
	if inputProperties[id].Flags.Has(device.Digital) && v != 0 {
		v = 1
	}
	if s.frame.Current[id] == v {
		return true
	}
	s.frame.Current[id] = v
	s.Changed(s, id, v)
	return true
}

// SetBool sets a digital input.
func (s *System) SetBool(id device.InputID, on bool) bool {
	if on {
		return s.Set(id, 1)
	}
	return s.Set(id, 0)
}

func (s *System) InjectInput(id device.InputID, v float64) bool { return s.Set(id, v) }

// Config returns a system setting.
func (s *System) Config(c Config) float64 {
	if c < 0 || c >= ConfigCount {
		return 0
	}
	return s.config[c]
}

// SetConfig changes a system setting.
func (s *System) SetConfig(c Config, v float64) {
	if c >= 0 && c < ConfigCount {
		s.config[c] = v
	}
}

func (s *System) ConfigFlags() ConfigFlag { return s.flags }

func (s *System) SetConfigFlags(f ConfigFlag) { s.flags = f }

func (s *System) Colorblindness() ColorblindnessType { return s.colorblindness }

func (s *System) SetColorblindness(c ColorblindnessType) { s.colorblindness = c }

func (s *System) NumberProperty(p device.NumberProperty) (mgl64.Vec3, bool) {
	switch p {
	case device.ChargingState:
		return mgl64.Vec3{s.frame.Current[BatteryCharge], 0, 0}, true
	case device.InternalTemperature:
		return mgl64.Vec3{s.frame.Current[CPUTemperature], s.frame.Current[GPUTemperature], 0}, true
	case device.SignalStrength:
		return mgl64.Vec3{s.frame.Current[WirelessNetworkStrength], 0, 0}, true
	}
	return mgl64.Vec3{}, false
}

func (s *System) SupportedConnectionTypes() device.ConnectionType {
	return device.ConnectionInternal
}

func (s *System) CurrentConnectionType() device.ConnectionType {
	return device.ConnectionInternal
}

func (s *System) CurrentPowerSource() device.PowerSource {
	if s.frame.Current[OnBattery] != 0 {
		return device.PowerInternalAccu
	}
	return device.PowerWire
}

func (s *System) ConnectedPowerSources() device.PowerSource {
	if s.frame.Current[OnBattery] != 0 {
		return device.PowerInternalAccu
	}
	return device.PowerWire | device.PowerInternalAccu
}

func (s *System) SupportedPowerSources() device.PowerSource {
	return device.PowerWire | device.PowerInternalAccu
}

func (s *System) PowerMode() float64 { return s.powerMode }

// RequestPowerMode records the requested mode, 0 being the lowest power draw.
func (s *System) RequestPowerMode(mode float64) {
	s.powerMode = math.Max(0, math.Min(1, mode))
}

func (s *System) Disable() { s.SetStatus(device.StatusDisabled) }

func (s *System) Enable() { s.SetStatus(device.StatusReady) }

func (s *System) PutToSleep() {
	s.SetStatus(device.StatusAsleep)
	s.Set(Sleep, 1)
}

func (s *System) WakeUp() {
	s.SetStatus(device.StatusReady)
	s.Set(Sleep, 0)
}

package device

import "fmt"

// Flags is a bitset of device-wide traits.
type Flags uint8

const (
	// FlagComposite devices aggregate several physical devices.
	FlagComposite Flags = 1 << iota
	Wireless
	CanBeReset
	CanBeDisabled
	// UniquePerSystem devices exist at most once on the host.
	UniquePerSystem
	InputsSequential
	OutputsSequential
)

func (f Flags) Has(o Flags) bool { return f&o == o }

// Status is the lifecycle state of a device.
type Status int

const (
	StatusDisconnected Status = iota - 3
	StatusDisabled
	StatusActivating
	StatusReady
	StatusShuttingDown
	StatusFallingAsleep
	StatusAsleep
	StatusWakingUp
)

func (s Status) String() string {
	switch s {
	case StatusDisconnected:
		return "disconnected"
	case StatusDisabled:
		return "disabled"
	case StatusActivating:
		return "activating"
	case StatusReady:
		return "ready"
	case StatusShuttingDown:
		return "shutting down"
	case StatusFallingAsleep:
		return "falling asleep"
	case StatusAsleep:
		return "asleep"
	case StatusWakingUp:
		return "waking up"
	default:
		return fmt.Sprintf("status(%d)", int(s))
	}
}

// ConnectionType describes how a device is attached.
type ConnectionType uint8

const (
	ConnectionInternal ConnectionType = 1 << iota
	ConnectionAttached
	ConnectionWired
	ConnectionWireless
)

// PowerSource describes where a device draws power from.
type PowerSource uint8

const (
	PowerNone PowerSource = 1 << iota
	PowerWire
	PowerBatteries
	PowerInternalAccu
	PowerExternalAccu
	PowerUnknown
)

// StringProperty names a textual device property.
type StringProperty int

const (
	PropertyName StringProperty = iota
	PropertyManufacturer
	PropertyDistributor
	PropertySerialNumber
	PropertyVendorProductVersionID
	PropertyImageURL
	PropertyWebsite
	PropertySupportedLanguages
)

// NumberProperty names a vector-valued device property.
type NumberProperty int

const (
	// PhysicalSize in centimeters.
	PhysicalSize NumberProperty = iota
	// AutoOffTimes in seconds: before off, before sleep, before low power.
	AutoOffTimes
	OffsetToSensor
	Ranges
	ChargingState
	PowerDraw
	InternalTemperature
	ExternalTemperature
	// HIDUsage holds the usage page in X and the usage id in Y.
	HIDUsage
	PowerModes
	SignalStrength
)

// BodySide is used by devices worn on or tracking one side of the body.
type BodySide int

const (
	SideLeft BodySide = iota
	SideRight
	SideBoth
	SideEither
)

// Role tags the concrete kind of a device.
type Role int

const (
	RoleUnknown Role = iota
	RoleKeyboard
	RoleMouse
	RoleGamepad
	RoleVirtualSpace
	RoleEyeTracking
	RoleHandTracking
	RoleRoomScaleVR
	RoleTextInput
	RoleSystem
)

func (r Role) String() string {
	switch r {
	case RoleKeyboard:
		return "keyboard"
	case RoleMouse:
		return "mouse"
	case RoleGamepad:
		return "gamepad"
	case RoleVirtualSpace:
		return "virtual space"
	case RoleEyeTracking:
		return "eye tracking"
	case RoleHandTracking:
		return "hand tracking"
	case RoleRoomScaleVR:
		return "room scale vr"
	case RoleTextInput:
		return "text input"
	case RoleSystem:
		return "system"
	default:
		return "unknown"
	}
}

package device

import (
	"strings"
	"time"

	"github.com/go-gl/mathgl/mgl64"
)

// Device is the contract every input backend implements.
//
// InputValue and IsInputPressed read the current frame. The LastFrame
// variants read only the snapshot taken by the most recent NewFrame call.
// Queries with an invalid id are reported to the owning host and return 0
// or false.
type Device interface {
	Name() string
	Role() Role
	Flags() Flags
	// Capabilities lists the optional facets this device provides.
	Capabilities() Capabilities

	// MaxInputID is an exclusive upper bound on valid input ids.
	MaxInputID() InputID
	IsInputValid(id InputID) bool
	IsAnyInputActive() bool
	InputValue(id InputID) float64
	IsInputPressed(id InputID) bool
	InputValueLastFrame(id InputID) float64
	WasInputPressedLastFrame(id InputID) bool
	// PropertiesOf returns false when id is out of range or has no descriptor.
	PropertiesOf(id InputID) (InputProperties, bool)

	CanTriggerNavigation(n Navigation) bool
	IsNavigationPressed(n Navigation) bool
	WasNavigationPressedLastFrame(n Navigation) bool

	StringProperty(p StringProperty, lang string) (string, bool)
	NumberProperty(p NumberProperty) (mgl64.Vec3, bool)

	// NewFrame copies the current state into the last-frame buffer. It is
	// called once per tick by the owning system.
	NewFrame()
	// ForceRefresh polls the backend out of band. It never advances frames.
	ForceRefresh()

	Status() Status
	IsActive() bool

	LastActiveTime() time.Time
	SetLastActiveTime(t time.Time)

	AssociatedPlayer() PlayerID
	AssociatePlayer(p PlayerID) bool
}

// Capabilities holds the optional facets of a device. A nil facet is unsupported.
type Capabilities struct {
	Outputs   Outputs
	Composite Composite
	Gamepad   Gamepad
	Spatial   Spatial
	Eyes      EyeTracker
	Hand      HandTracker
	RoomScale RoomScale
	Injector  Injector
	Navigator Navigator
	Repeater  Repeater
	Power     Power
	Wire      WireDecoder
	Text      TextInput
}

// Outputs controls device outputs such as LEDs and rumble motors.
type Outputs interface {
	MaxOutputID() OutputID
	IsOutputValid(id OutputID) bool
	OutputProperties(id OutputID) (OutputProperties, bool)
	SetOutput(id OutputID, v mgl64.Vec3) bool
	ResetOutput(id OutputID) bool
	SendOutputData(id OutputID, data []byte) bool
	SetOutputCallback(id OutputID, f func([]byte)) bool
	EnableOutput(id OutputID, enable bool) bool
}

// Composite exposes sub-devices by index.
type Composite interface {
	SubDeviceCount() int
	SubDevice(i SubDeviceID) (Device, bool)
	ParentDevice() (Device, bool)
}

// Gamepad exposes stick and button layout queries.
type Gamepad interface {
	StickCount() int
	StickAxisCount(stick int) int
	ButtonCount() int
	IsButtonPressed(button int) bool
	WasButtonPressedLastFrame(button int) bool
	StickAxisValue(stick, axis int) float64
	StickAxisValueLastFrame(stick, axis int) float64
	StickValue(stick int) mgl64.Vec3
	StickValueLastFrame(stick int) mgl64.Vec3
	StickAxisInputs(stick int) [3]InputID
	InputForButton(button int) InputID
}

// Spatial is implemented by position and rotation tracked devices.
type Spatial interface {
	PositionInputs() [3]InputID
	RotationInputs() [4]InputID
	TracksPosition() bool
	TracksRotation() bool
	ForwardVector() mgl64.Vec3
	PositionUnits() string
}

// EyeTracker names the sub-devices tracking each eye.
type EyeTracker interface {
	LeftEyeIndex() SubDeviceID
	RightEyeIndex() SubDeviceID
}

// HandTracker exposes finger curl axes and the grip squeeze input.
type HandTracker interface {
	FingerAxisInputs() [5]InputID
	SqueezeInput() InputID
}

// RoomScale describes a tracked play space and its trackers.
type RoomScale interface {
	HeadTracker() SubDeviceID
	BodyTracker() SubDeviceID
	HandTrackers() [2]SubDeviceID
	EnvironExtentsInputs() [3]InputID
}

// Injector accepts programmatic input changes into the current frame.
type Injector interface {
	InjectInput(id InputID, value float64) bool
}

// Navigator exposes the physical source of each navigation action.
type Navigator interface {
	NavigationSource(n Navigation) (NavigationSource, bool)
}

// Repeater reports how many repeat events an input generated while held.
type Repeater interface {
	RepeatCount(id InputID) int
}

// Power exposes connection and power management.
type Power interface {
	SupportedConnectionTypes() ConnectionType
	CurrentConnectionType() ConnectionType
	CurrentPowerSource() PowerSource
	ConnectedPowerSources() PowerSource
	SupportedPowerSources() PowerSource
	PowerMode() float64
	RequestPowerMode(mode float64)
	Disable()
	Enable()
	PutToSleep()
	WakeUp()
}

// TextInput is implemented by devices that compose text.
type TextInput interface {
	StartTextInput(area Rect)
	CancelTextInput()
	IsTextInputActive() bool
	CurrentText() string
	CurrentSelection() (start, end int)
}

// Rect is an axis aligned screen rectangle.
type Rect struct {
	Min, Max mgl64.Vec2
}

// Contains reports whether p lies inside r, inclusive of the edges.
func (r Rect) Contains(p mgl64.Vec2) bool {
	return p.X() >= r.Min.X() && p.X() <= r.Max.X() && p.Y() >= r.Min.Y() && p.Y() <= r.Max.Y()
}

// LookupInput finds an input by name or short name, case-insensitively.
func LookupInput(d Device, name string) (InputID, bool) {
	if d == nil {
		return InvalidInput, false
	}
	for id := InputID(0); id < d.MaxInputID(); id++ {
		p, ok := d.PropertiesOf(id)
		if !ok {
			continue
		}
		if strings.EqualFold(p.Name, name) || (p.ShortName != "" && strings.EqualFold(p.ShortName, name)) {
			return id, true
		}
	}
	return InvalidInput, false
}

// InputValues reads several inputs at once. Invalid ids yield 0.
func InputValues(d Device, ids ...InputID) []float64 {
	out := make([]float64, len(ids))
	for i, id := range ids {
		if id.Valid() {
			out[i] = d.InputValue(id)
		}
	}
	return out
}

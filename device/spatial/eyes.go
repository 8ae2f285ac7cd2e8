package spatial

import (
	"github.com/go-gl/mathgl/mgl64"

	"github.com/Alia5/inputmap/device"
)

// Eye sub-device indices of an EyePair.
const (
	LeftEyeIndex device.SubDeviceID = iota
	RightEyeIndex
)

// EyePair is an eye tracker composed of one tracker per eye. It has no
// inputs of its own.
type EyePair struct {
	device.Base

	eyes [2]*Tracker
}

// NewEyePair returns an eye tracker whose eyes share o's host.
func NewEyePair(o *device.CreateOptions) *EyePair {
	e := &EyePair{Base: device.NewBase(o, "Eye Tracker")}
	for i, name := range [...]string{"Left Eye", "Right Eye"} {
		sub := device.CreateOptions{Name: name}
		if o != nil {
			sub.Host, sub.Player = o.Host, o.Player
		}
		eye := NewTracker(&sub)
		eye.side = device.BodySide(i)
		eye.parent = e
		e.eyes[i] = eye
	}
	return e
}

// SetHost rebinds the pair and both eyes.
func (e *EyePair) SetHost(h device.Host) {
	e.Base.SetHost(h)
	for _, eye := range e.eyes {
		eye.SetHost(h)
	}
}

func (e *EyePair) Role() device.Role { return device.RoleEyeTracking }

func (e *EyePair) Flags() device.Flags { return device.FlagComposite }

func (e *EyePair) Capabilities() device.Capabilities {
	return device.Capabilities{Composite: e, Eyes: e}
}

// Eye returns the tracker of one eye.
func (e *EyePair) Eye(i device.SubDeviceID) *Tracker {
	if i < 0 || i >= len(e.eyes) {
		return nil
	}
	return e.eyes[i]
}

// Gaze points both eyes from their positions at target.
func (e *EyePair) Gaze(left, right, target mgl64.Vec3) {
	e.eyes[LeftEyeIndex].LookAt(left, target)
	e.eyes[RightEyeIndex].LookAt(right, target)
}

func (e *EyePair) MaxInputID() device.InputID { return 0 }

func (e *EyePair) IsInputValid(device.InputID) bool { return false }

func (e *EyePair) IsAnyInputActive() bool { return false }

func (e *EyePair) InputValue(id device.InputID) float64 {
	e.ReportInvalidInput(id, 0)
	return 0
}

func (e *EyePair) IsInputPressed(id device.InputID) bool {
	e.ReportInvalidInput(id, 0)
	return false
}

func (e *EyePair) InputValueLastFrame(id device.InputID) float64 {
	e.ReportInvalidInput(id, 0)
	return 0
}

func (e *EyePair) WasInputPressedLastFrame(id device.InputID) bool {
	e.ReportInvalidInput(id, 0)
	return false
}

func (e *EyePair) PropertiesOf(device.InputID) (device.InputProperties, bool) {
	return device.InputProperties{}, false
}

func (e *EyePair) CanTriggerNavigation(device.Navigation) bool { return false }
func (e *EyePair) IsNavigationPressed(device.Navigation) bool { return false }
func (e *EyePair) WasNavigationPressedLastFrame(device.Navigation) bool {
	return false
}

// NewFrame advances both eyes.
func (e *EyePair) NewFrame() {
	for _, eye := range e.eyes {
		eye.NewFrame()
	}
}

func (e *EyePair) SubDeviceCount() int { return len(e.eyes) }

func (e *EyePair) SubDevice(i device.SubDeviceID) (device.Device, bool) {
	if eye := e.Eye(i); eye != nil {
		return eye, true
	}
	return nil, false
}

func (e *EyePair) ParentDevice() (device.Device, bool) { return nil, false }

func (e *EyePair) LeftEyeIndex() device.SubDeviceID { return LeftEyeIndex }

func (e *EyePair) RightEyeIndex() device.SubDeviceID { return RightEyeIndex }

package spatial

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"

	"github.com/Alia5/inputmap/device"
)

// Rig sub-device indices.
const (
	HeadIndex device.SubDeviceID = iota
	BodyIndex
	LeftHandIndex
	RightHandIndex

	rigTrackerCount
)

// Rig input ids: the play space extents.
const (
	ExtentX device.InputID = iota
	ExtentY
	ExtentZ

	RigInputCount
)

var extentProperties = func() [RigInputCount]device.InputProperties {
	var props [RigInputCount]device.InputProperties
	for i, name := range [...]string{"Play Area Width", "Play Area Height", "Play Area Depth"} {
		p := device.DefaultInputProperties(name)
		p.MinValue, p.MaxValue = 0, math.Inf(1)
		p.DeadZoneMin, p.DeadZoneMax = 0, 0
		p.Unit = PositionUnit
		p.Dimension = "length"
		props[i] = p
	}
	return props
}()

// Rig is a room-scale VR setup: a head, a body and two hand trackers inside
// a play space centered on the origin.
type Rig struct {
	device.Base

	frame    device.Frame[[RigInputCount]float64]
	trackers [rigTrackerCount]*Tracker
}

// NewRig returns a rig with an empty play space.
func NewRig(o *device.CreateOptions) *Rig {
	r := &Rig{Base: device.NewBase(o, "Room Scale VR")}
	sub := func(name string) *device.CreateOptions {
		so := device.CreateOptions{Name: name}
		if o != nil {
			so.Host, so.Player = o.Host, o.Player
		}
		return &so
	}
	r.trackers[HeadIndex] = NewTracker(sub("Head"))
	r.trackers[BodyIndex] = NewTracker(sub("Body"))
	r.trackers[LeftHandIndex] = NewHand(sub("Left Hand"), device.SideLeft)
	r.trackers[RightHandIndex] = NewHand(sub("Right Hand"), device.SideRight)
	for _, t := range r.trackers {
		t.parent = r
	}
	return r
}

// SetHost rebinds the rig and all of its trackers.
func (r *Rig) SetHost(h device.Host) {
	r.Base.SetHost(h)
	for _, t := range r.trackers {
		t.SetHost(h)
	}
}

func (r *Rig) Role() device.Role { return device.RoleRoomScaleVR }

func (r *Rig) Flags() device.Flags { return device.FlagComposite }

func (r *Rig) Capabilities() device.Capabilities {
	return device.Capabilities{Composite: r, RoomScale: r, Injector: r}
}

// Tracker returns one of the rig's trackers.
func (r *Rig) Tracker(i device.SubDeviceID) *Tracker {
	if i < 0 || i >= len(r.trackers) {
		return nil
	}
	return r.trackers[i]
}

// SetExtents sets the play space size.
func (r *Rig) SetExtents(size mgl64.Vec3) {
	for i := 0; i < 3; i++ {
		r.set(ExtentX+device.InputID(i), size[i])
	}
}

func (r *Rig) set(id device.InputID, v float64) {
	v = extentProperties[id].Clamp(v)
	if r.frame.Current[id] == v {
		return
	}
	r.frame.Current[id] = v
	r.Changed(r, id, v)
}

func (r *Rig) InjectInput(id device.InputID, v float64) bool {
	if !r.IsInputValid(id) {
		r.ReportInvalidInput(id, RigInputCount)
		return false
	}
	r.set(id, v)
	return true
}

func (r *Rig) MaxInputID() device.InputID { return RigInputCount }

func (r *Rig) IsInputValid(id device.InputID) bool { return id < RigInputCount }

func (r *Rig) IsAnyInputActive() bool {
	for _, t := range r.trackers {
		if t.IsAnyInputActive() {
			return true
		}
	}
	return false
}

func (r *Rig) InputValue(id device.InputID) float64 {
	if !r.IsInputValid(id) {
		r.ReportInvalidInput(id, RigInputCount)
		return 0
	}
	return r.frame.Current[id]
}

// IsInputPressed is always false: extents are measurements.
func (r *Rig) IsInputPressed(id device.InputID) bool {
	if !r.IsInputValid(id) {
		r.ReportInvalidInput(id, RigInputCount)
	}
	return false
}

func (r *Rig) InputValueLastFrame(id device.InputID) float64 {
	if !r.IsInputValid(id) {
		r.ReportInvalidInput(id, RigInputCount)
		return 0
	}
	return r.frame.Last[id]
}

func (r *Rig) WasInputPressedLastFrame(id device.InputID) bool {
	if !r.IsInputValid(id) {
		r.ReportInvalidInput(id, RigInputCount)
	}
	return false
}

func (r *Rig) PropertiesOf(id device.InputID) (device.InputProperties, bool) {
	if !r.IsInputValid(id) {
		return device.InputProperties{}, false
	}
	return extentProperties[id], true
}

func (r *Rig) CanTriggerNavigation(device.Navigation) bool { return false }
func (r *Rig) IsNavigationPressed(device.Navigation) bool { return false }
func (r *Rig) WasNavigationPressedLastFrame(device.Navigation) bool {
	return false
}

// NewFrame advances the rig and all of its trackers.
func (r *Rig) NewFrame() {
	r.frame.Advance()
	for _, t := range r.trackers {
		t.NewFrame()
	}
}

func (r *Rig) SubDeviceCount() int { return len(r.trackers) }

func (r *Rig) SubDevice(i device.SubDeviceID) (device.Device, bool) {
	if t := r.Tracker(i); t != nil {
		return t, true
	}
	return nil, false
}

func (r *Rig) ParentDevice() (device.Device, bool) { return nil, false }

func (r *Rig) HeadTracker() device.SubDeviceID { return HeadIndex }

func (r *Rig) BodyTracker() device.SubDeviceID { return BodyIndex }

func (r *Rig) HandTrackers() [2]device.SubDeviceID {
	return [2]device.SubDeviceID{LeftHandIndex, RightHandIndex}
}

func (r *Rig) EnvironExtentsInputs() [3]device.InputID {
	return [3]device.InputID{ExtentX, ExtentY, ExtentZ}
}

// Safety returns the play space safety at the head tracker's position.
func (r *Rig) Safety() float64 {
	return QueryEnvironSafety(r, Position(r.trackers[HeadIndex]))
}

package spatial

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"

	"github.com/Alia5/inputmap/device"
)

// Tracker input ids.
const (
	PositionX device.InputID = iota
	PositionY
	PositionZ
	RotationW
	RotationX
	RotationY
	RotationZ

	TrackerInputCount
)

// Hand input ids follow the tracker inputs.
const (
	FingerThumb device.InputID = TrackerInputCount + iota
	FingerIndex
	FingerMiddle
	FingerRing
	FingerPinky
	HandSqueeze

	HandInputCount
)

// PositionUnit is the unit of tracked positions.
const PositionUnit = "m"

var trackerProperties = func() [HandInputCount]device.InputProperties {
	var props [HandInputCount]device.InputProperties
	for i, name := range [...]string{"Position X", "Position Y", "Position Z"} {
		p := device.DefaultInputProperties(name)
		p.MinValue, p.MaxValue = math.Inf(-1), math.Inf(1)
		p.DeadZoneMin, p.DeadZoneMax = 0, 0
		p.Unit = PositionUnit
		p.Dimension = "length"
		p.RepresentsDirection[i] = 1
		props[PositionX+device.InputID(i)] = p
	}
	for i, name := range [...]string{"Rotation W", "Rotation X", "Rotation Y", "Rotation Z"} {
		p := device.DefaultInputProperties(name)
		p.DeadZoneMin, p.DeadZoneMax = 0, 0
		p.Flags = device.Correlated
		props[RotationW+device.InputID(i)] = p
	}
	for f := Thumb; f < FingerCount; f++ {
		p := device.AxisProperties(f.String()+" Curl", 0, 1)
		props[FingerThumb+device.InputID(f)] = p
	}
	props[HandSqueeze] = device.AxisProperties("Squeeze", 0, 1)
	return props
}()

// Tracker is a virtual 6DoF tracked device. With hand tracking enabled it
// also reports finger curls and grip squeeze.
type Tracker struct {
	device.Base

	frame  device.Frame[[HandInputCount]float64]
	count  device.InputID
	side   device.BodySide
	parent device.Device
}

// NewTracker returns a position and rotation tracker at the origin with
// the identity orientation.
func NewTracker(o *device.CreateOptions) *Tracker {
	t := &Tracker{Base: device.NewBase(o, "Tracker"), count: TrackerInputCount, side: device.SideEither}
	t.frame.Current[RotationW] = 1
	t.frame.Last[RotationW] = 1
	return t
}

// NewHand returns a hand tracker for side.
func NewHand(o *device.CreateOptions, side device.BodySide) *Tracker {
	t := NewTracker(o)
	t.count = HandInputCount
	t.side = side
	if o == nil || o.Name == "" {
		switch side {
		case device.SideLeft:
			t.SetName("Left Hand")
		case device.SideRight:
			t.SetName("Right Hand")
		default:
			t.SetName("Hand")
		}
	}
	return t
}

func (t *Tracker) Role() device.Role {
	if t.IsHand() {
		return device.RoleHandTracking
	}
	return device.RoleVirtualSpace
}

// IsHand reports whether t tracks a hand.
func (t *Tracker) IsHand() bool { return t.count == HandInputCount }

// Side returns the body side t is worn on.
func (t *Tracker) Side() device.BodySide { return t.side }

func (t *Tracker) Capabilities() device.Capabilities {
	c := device.Capabilities{
		Spatial:  t,
		Injector: t,
	}
	if t.IsHand() {
		c.Hand = t
	}
	if t.parent != nil {
		c.Composite = t
	}
	return c
}

func (t *Tracker) MaxInputID() device.InputID { return t.count }

func (t *Tracker) IsInputValid(id device.InputID) bool { return id < t.count }

// IsAnyInputActive only considers the hand inputs, since a pose is always present.
func (t *Tracker) IsAnyInputActive() bool {
	for id := TrackerInputCount; id < t.count; id++ {
		if trackerProperties[id].IsPressed(t.frame.Current[id]) {
			return true
		}
	}
	return false
}

func (t *Tracker) InputValue(id device.InputID) float64 {
	if !t.IsInputValid(id) {
		t.ReportInvalidInput(id, t.count)
		return 0
	}
	return t.frame.Current[id]
}

func (t *Tracker) IsInputPressed(id device.InputID) bool {
	if !t.IsInputValid(id) {
		t.ReportInvalidInput(id, t.count)
		return false
	}
	return trackerProperties[id].IsPressed(t.frame.Current[id])
}

func (t *Tracker) InputValueLastFrame(id device.InputID) float64 {
	if !t.IsInputValid(id) {
		t.ReportInvalidInput(id, t.count)
		return 0
	}
	return t.frame.Last[id]
}

func (t *Tracker) WasInputPressedLastFrame(id device.InputID) bool {
	if !t.IsInputValid(id) {
		t.ReportInvalidInput(id, t.count)
		return false
	}
	return trackerProperties[id].IsPressed(t.frame.Last[id])
}

func (t *Tracker) PropertiesOf(id device.InputID) (device.InputProperties, bool) {
	if !t.IsInputValid(id) {
		return device.InputProperties{}, false
	}
	return trackerProperties[id], true
}

// Trackers have no navigation source.
func (t *Tracker) CanTriggerNavigation(device.Navigation) bool { return false }
func (t *Tracker) IsNavigationPressed(device.Navigation) bool { return false }
func (t *Tracker) WasNavigationPressedLastFrame(device.Navigation) bool {
	return false
}

func (t *Tracker) NewFrame() { t.frame.Advance() }

func (t *Tracker) set(id device.InputID, v float64) {
	v = trackerProperties[id].Clamp(v)
	if t.frame.Current[id] == v {
		return
	}
	t.frame.Current[id] = v
	t.Changed(t, id, v)
	if t.parent != nil {
		t.parent.SetLastActiveTime(t.LastActiveTime())
	}
}

func (t *Tracker) InjectInput(id device.InputID, v float64) bool {
	if !t.IsInputValid(id) {
		t.ReportInvalidInput(id, t.count)
		return false
	}
	t.set(id, v)
	return true
}

// SetPose updates position and orientation at once.
func (t *Tracker) SetPose(pos mgl64.Vec3, rot mgl64.Quat) {
	for i := 0; i < 3; i++ {
		t.set(PositionX+device.InputID(i), pos[i])
	}
	rot = rot.Normalize()
	t.set(RotationW, rot.W)
	t.set(RotationX, rot.V.X())
	t.set(RotationY, rot.V.Y())
	t.set(RotationZ, rot.V.Z())
}

// LookAt orients t from pos towards target.
func (t *Tracker) LookAt(pos, target mgl64.Vec3) {
	dir := target.Sub(pos)
	rot := mgl64.QuatIdent()
	if dir.Len() > 0 {
		rot = mgl64.QuatBetweenVectors(DefaultForward, dir.Normalize())
	}
	t.SetPose(pos, rot)
}

func (t *Tracker) PositionInputs() [3]device.InputID {
	return [3]device.InputID{PositionX, PositionY, PositionZ}
}

func (t *Tracker) RotationInputs() [4]device.InputID {
	return [4]device.InputID{RotationW, RotationX, RotationY, RotationZ}
}

func (t *Tracker) TracksPosition() bool { return true }

func (t *Tracker) TracksRotation() bool { return true }

func (t *Tracker) ForwardVector() mgl64.Vec3 { return DefaultForward }

func (t *Tracker) PositionUnits() string { return PositionUnit }

func (t *Tracker) FingerAxisInputs() [5]device.InputID {
	if !t.IsHand() {
		return [5]device.InputID{device.InvalidInput, device.InvalidInput, device.InvalidInput, device.InvalidInput, device.InvalidInput}
	}
	return [5]device.InputID{FingerThumb, FingerIndex, FingerMiddle, FingerRing, FingerPinky}
}

func (t *Tracker) SqueezeInput() device.InputID {
	if !t.IsHand() {
		return device.InvalidInput
	}
	return HandSqueeze
}

func (t *Tracker) SubDeviceCount() int { return 0 }

func (t *Tracker) SubDevice(device.SubDeviceID) (device.Device, bool) { return nil, false }

// ParentDevice returns the composite device t belongs to, if any.
func (t *Tracker) ParentDevice() (device.Device, bool) {
	return t.parent, t.parent != nil
}

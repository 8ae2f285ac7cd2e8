// Package spatial implements tracked devices: position and rotation
// trackers, eye trackers, hand trackers and room-scale VR rigs.
package spatial

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"

	"github.com/Alia5/inputmap/device"
)

// VirtualSpace is the facet of devices tracked in 3D space.
type VirtualSpace = device.Spatial

// DefaultForward is the forward vector of an unrotated device.
var DefaultForward = mgl64.Vec3{0, 0, 1}

func spatialOf(d device.Device) device.Spatial {
	if d == nil {
		return nil
	}
	return d.Capabilities().Spatial
}

// Position returns the tracked position of d, or the origin when d is not tracked.
func Position(d device.Device) mgl64.Vec3 {
	s := spatialOf(d)
	if s == nil {
		return mgl64.Vec3{}
	}
	ids := s.PositionInputs()
	v := device.InputValues(d, ids[:]...)
	return mgl64.Vec3{v[0], v[1], v[2]}
}

// Rotation returns the orientation of d from its W, X, Y, Z rotation inputs.
// Untracked or zero rotations yield the identity.
func Rotation(d device.Device) mgl64.Quat {
	s := spatialOf(d)
	if s == nil || !s.TracksRotation() {
		return mgl64.QuatIdent()
	}
	ids := s.RotationInputs()
	v := device.InputValues(d, ids[:]...)
	q := mgl64.Quat{W: v[0], V: mgl64.Vec3{v[1], v[2], v[3]}}
	if q.Len() == 0 {
		return mgl64.QuatIdent()
	}
	return q.Normalize()
}

// Direction is the device's forward vector rotated by its orientation.
func Direction(d device.Device) mgl64.Vec3 {
	s := spatialOf(d)
	if s == nil {
		return DefaultForward
	}
	return Rotation(d).Rotate(s.ForwardVector())
}

// RayOf returns the view ray of d.
func RayOf(d device.Device) device.Ray {
	return device.Ray{Position: Position(d), Direction: Direction(d)}
}

// Transform returns the model matrix of d: rotation followed by translation.
func Transform(d device.Device) mgl64.Mat4 {
	p := Position(d)
	return mgl64.Translate3D(p.X(), p.Y(), p.Z()).Mul4(Rotation(d).Mat4())
}

func subSpatial(d device.Device, i device.SubDeviceID) (device.Device, bool) {
	c := d.Capabilities().Composite
	if c == nil {
		return nil, false
	}
	sub, ok := c.SubDevice(i)
	if !ok || spatialOf(sub) == nil {
		return nil, false
	}
	return sub, true
}

// LeftEye returns the tracked left eye sub-device of an eye tracker.
func LeftEye(d device.Device) (device.Device, bool) {
	if d == nil || d.Capabilities().Eyes == nil {
		return nil, false
	}
	return subSpatial(d, d.Capabilities().Eyes.LeftEyeIndex())
}

// RightEye returns the tracked right eye sub-device of an eye tracker.
func RightEye(d device.Device) (device.Device, bool) {
	if d == nil || d.Capabilities().Eyes == nil {
		return nil, false
	}
	return subSpatial(d, d.Capabilities().Eyes.RightEyeIndex())
}

// EyeFocusPosition is the point both eyes converge on. It is device.NaNVec3
// when either eye is unavailable.
func EyeFocusPosition(d device.Device) mgl64.Vec3 {
	l, lok := LeftEye(d)
	r, rok := RightEye(d)
	if !lok || !rok {
		return device.NaNVec3
	}
	return device.ClosestPointBetween(RayOf(l), RayOf(r))
}

// Finger indexes FingerAxisInputs.
type Finger int

const (
	Thumb Finger = iota
	Index
	Middle
	Ring
	Pinky

	FingerCount
)

var fingerNames = [FingerCount]string{"Thumb", "Index", "Middle", "Ring", "Pinky"}

func (f Finger) String() string {
	if f < 0 || f >= FingerCount {
		return "Finger(?)"
	}
	return fingerNames[f]
}

// FingerCurl returns the curl of finger f on a hand tracker, 0 when d
// tracks no hand.
func FingerCurl(d device.Device, f Finger) float64 {
	h := d.Capabilities().Hand
	if h == nil || f < 0 || f >= FingerCount {
		return 0
	}
	id := h.FingerAxisInputs()[f]
	if !id.Valid() {
		return 0
	}
	return d.InputValue(id)
}

// Squeeze returns the grip squeeze of a hand tracker.
func Squeeze(d device.Device) float64 {
	h := d.Capabilities().Hand
	if h == nil || !h.SqueezeInput().Valid() {
		return 0
	}
	return d.InputValue(h.SqueezeInput())
}

// SafetyFunction maps the proximity to the play space edge (0 far away, 1
// at the edge) to a safety value in [0, 1].
func SafetyFunction(proximity float64) float64 {
	p := math.Max(0, math.Min(1, proximity))
	return math.Pow(1-p, 4)
}

// EnvironExtents returns the play space size of a room-scale device.
func EnvironExtents(d device.Device) mgl64.Vec3 {
	rs := d.Capabilities().RoomScale
	if rs == nil {
		return mgl64.Vec3{}
	}
	ids := rs.EnvironExtentsInputs()
	v := device.InputValues(d, ids[:]...)
	return mgl64.Vec3{v[0], v[1], v[2]}
}

// QueryEnvironSafety returns the lowest per-axis safety of pos inside the
// play space of d, which is centered on the origin. Devices without a play
// space are always safe.
func QueryEnvironSafety(d device.Device, pos mgl64.Vec3) float64 {
	if d.Capabilities().RoomScale == nil {
		return 1
	}
	half := EnvironExtents(d).Mul(0.5)
	safety := 1.0
	for i := 0; i < 3; i++ {
		p := 1.0
		if half[i] > 0 {
			p = math.Abs(pos[i]) / half[i]
		}
		safety = math.Min(safety, SafetyFunction(p))
	}
	return safety
}

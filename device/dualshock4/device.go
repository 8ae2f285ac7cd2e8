// Package dualshock4 implements the DualShock 4 layout: 16 buttons, two
// sticks, two triggers, a touchpad, a motion sensor, two rumble motors and
// a light bar.
package dualshock4

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"

	"github.com/Alia5/inputmap/device"
)

const glyphPrefix = "ps/"

var inputProperties = func() [InputCount]device.InputProperties {
	var props [InputCount]device.InputProperties
	for b := Cross; b < ButtonCount; b++ {
		props[b] = device.ButtonProperties(b.String(), glyphPrefix+b.String())
	}
	analog := [...]struct {
		name     string
		min, max float64
	}{
		{"Left Stick X Axis", -1, 1},
		{"Left Stick Y Axis", -1, 1},
		{"Right Stick X Axis", -1, 1},
		{"Right Stick Y Axis", -1, 1},
		{"L2", 0, 1},
		{"R2", 0, 1},
		{"Touch X", 0, 1},
		{"Touch Y", 0, 1},
	}
	for i, a := range analog {
		p := device.AxisProperties(a.name, a.min, a.max)
		p.GlyphURI = glyphPrefix + a.name
		props[LeftStickX+device.InputID(i)] = p
	}
	props[TouchX].Flags = 0
	props[TouchY].Flags = 0

	gyroMax := math.MaxInt16 / GyroCountsPerDps
	accelMax := math.MaxInt16 / AccelCountsPerMS2
	for i, axis := range []string{"X", "Y", "Z"} {
		g := device.AxisProperties("Gyro "+axis, -gyroMax, gyroMax)
		g.Unit, g.Dimension = "°/s", "angular velocity"
		g.StepSize = 1 / GyroCountsPerDps
		props[GyroX+device.InputID(i)] = g

		a := device.AxisProperties("Accelerometer "+axis, -accelMax, accelMax)
		a.Flags = device.Correlated
		a.Unit, a.Dimension = "m/s²", "acceleration"
		a.StepSize = 1 / AccelCountsPerMS2
		props[AccelX+device.InputID(i)] = a
	}
	props[TouchContact] = device.ButtonProperties("Touch", glyphPrefix+"Touch")
	return props
}()

func isMotion(id device.InputID) bool { return id >= GyroX && id <= AccelZ }

// Controller is a virtual DualShock 4 fed by InputState reports or injection.
//
// Motion sensor readings update the frame without counting as activity, so
// a controller lying on a desk never becomes the last active device.
type Controller struct {
	device.Base

	frame device.Frame[[InputCount]float64]

	out      OutputState
	disabled [outputCount]bool
	callback [outputCount]func([]byte)
}

// New returns a new Controller at rest.
func New(o *device.CreateOptions) *Controller {
	c := &Controller{Base: device.NewBase(o, "DualShock 4")}
	c.frame.Current[AccelX] = AccelRawToMS2(DefaultAccelXRaw)
	c.frame.Current[AccelY] = AccelRawToMS2(DefaultAccelYRaw)
	c.frame.Current[AccelZ] = AccelRawToMS2(DefaultAccelZRaw)
	c.frame.Last = c.frame.Current
	c.out.LedRed, c.out.LedGreen, c.out.LedBlue = DefaultLedRed, DefaultLedGreen, DefaultLedBlue
	return c
}

func (c *Controller) Role() device.Role { return device.RoleGamepad }

func (c *Controller) Capabilities() device.Capabilities {
	return device.Capabilities{
		Outputs:   c,
		Gamepad:   c,
		Injector:  c,
		Navigator: c,
		Wire:      c,
	}
}

func (c *Controller) MaxInputID() device.InputID { return InputCount }

func (c *Controller) IsInputValid(id device.InputID) bool { return id < InputCount }

func (c *Controller) IsAnyInputActive() bool {
	for id := device.InputID(0); id < InputCount; id++ {
		if !isMotion(id) && inputProperties[id].IsPressed(c.frame.Current[id]) {
			return true
		}
	}
	return false
}

func (c *Controller) InputValue(id device.InputID) float64 {
	if !c.IsInputValid(id) {
		c.ReportInvalidInput(id, InputCount)
		return 0
	}
	return c.frame.Current[id]
}

func (c *Controller) IsInputPressed(id device.InputID) bool {
	if !c.IsInputValid(id) {
		c.ReportInvalidInput(id, InputCount)
		return false
	}
	return inputProperties[id].IsPressed(c.frame.Current[id])
}

func (c *Controller) InputValueLastFrame(id device.InputID) float64 {
	if !c.IsInputValid(id) {
		c.ReportInvalidInput(id, InputCount)
		return 0
	}
	return c.frame.Last[id]
}

func (c *Controller) WasInputPressedLastFrame(id device.InputID) bool {
	if !c.IsInputValid(id) {
		c.ReportInvalidInput(id, InputCount)
		return false
	}
	return inputProperties[id].IsPressed(c.frame.Last[id])
}

func (c *Controller) PropertiesOf(id device.InputID) (device.InputProperties, bool) {
	if !c.IsInputValid(id) {
		return device.InputProperties{}, false
	}
	return inputProperties[id], true
}

func (c *Controller) NewFrame() { c.frame.Advance() }

func (c *Controller) set(id device.InputID, v float64) {
	v = inputProperties[id].Clamp(v)
	if c.frame.Current[id] == v {
		return
	}
	c.frame.Current[id] = v
	if !isMotion(id) {
		c.Changed(c, id, v)
	}
}

func (c *Controller) InjectInput(id device.InputID, v float64) bool {
	if !c.IsInputValid(id) {
		c.ReportInvalidInput(id, InputCount)
		return false
	}
	if inputProperties[id].Flags.Has(device.Digital) && v != 0 {
		v = 1
	}
	c.set(id, v)
	return true
}

// SetButton presses or releases b.
func (c *Controller) SetButton(b Button, pressed bool) {
	if !b.Valid() {
		return
	}
	v := 0.0
	if pressed {
		v = 1
	}
	c.set(b.Input(), v)
}

// ApplyState replaces the whole controller state with a report. Only the
// first touch point is mapped; the touch position reads 0 without contact.
func (c *Controller) ApplyState(st InputState) {
	for b := Cross; b < Right; b++ {
		c.SetButton(b, st.Buttons&buttonMasks[b] != 0)
	}
	for b := Right; b < ButtonCount; b++ {
		c.SetButton(b, st.DPad&dpadMasks[b-Right] != 0)
	}
	c.set(LeftStickX, NormalizeStick(st.LX))
	c.set(LeftStickY, -NormalizeStick(st.LY))
	c.set(RightStickX, NormalizeStick(st.RX))
	c.set(RightStickY, -NormalizeStick(st.RY))
	c.set(L2, NormalizeTrigger(st.L2))
	c.set(R2, NormalizeTrigger(st.R2))

	if st.Touch1Active {
		c.set(TouchX, float64(st.Touch1X)/float64(TouchpadMaxX))
		c.set(TouchY, float64(st.Touch1Y)/float64(TouchpadMaxY))
		c.set(TouchContact, 1)
	} else {
		c.set(TouchX, 0)
		c.set(TouchY, 0)
		c.set(TouchContact, 0)
	}

	c.set(GyroX, GyroRawToDps(st.GyroX))
	c.set(GyroY, GyroRawToDps(st.GyroY))
	c.set(GyroZ, GyroRawToDps(st.GyroZ))
	c.set(AccelX, AccelRawToMS2(st.AccelX))
	c.set(AccelY, AccelRawToMS2(st.AccelY))
	c.set(AccelZ, AccelRawToMS2(st.AccelZ))
}

// ApplyWire decodes an InputState report and applies it.
func (c *Controller) ApplyWire(data []byte) error {
	var st InputState
	if err := st.UnmarshalBinary(data); err != nil {
		return err
	}
	c.ApplyState(st)
	return nil
}

// State returns the current frame as an InputState. The digital L2 and R2
// bits are set while the triggers are held.
func (c *Controller) State() InputState {
	cur := &c.frame.Current
	var st InputState
	for b := Cross; b < Right; b++ {
		if cur[b] != 0 {
			st.Buttons |= buttonMasks[b]
		}
	}
	for b := Right; b < ButtonCount; b++ {
		if cur[b] != 0 {
			st.DPad |= dpadMasks[b-Right]
		}
	}
	if c.IsInputPressed(L2) {
		st.Buttons |= MaskL2
	}
	if c.IsInputPressed(R2) {
		st.Buttons |= MaskR2
	}
	st.LX, st.LY = rawStick(cur[LeftStickX]), rawStick(-cur[LeftStickY])
	st.RX, st.RY = rawStick(cur[RightStickX]), rawStick(-cur[RightStickY])
	st.L2, st.R2 = rawUnit(cur[L2]), rawUnit(cur[R2])
	if cur[TouchContact] != 0 {
		st.Touch1Active = true
		st.Touch1X = uint16(math.Round(cur[TouchX] * float64(TouchpadMaxX)))
		st.Touch1Y = uint16(math.Round(cur[TouchY] * float64(TouchpadMaxY)))
	}
	st.GyroX, st.GyroY, st.GyroZ = GyroDpsToRaw(cur[GyroX]), GyroDpsToRaw(cur[GyroY]), GyroDpsToRaw(cur[GyroZ])
	st.AccelX, st.AccelY, st.AccelZ = AccelMS2ToRaw(cur[AccelX]), AccelMS2ToRaw(cur[AccelY]), AccelMS2ToRaw(cur[AccelZ])
	return st
}

// Motion returns the angular velocity in °/s and the acceleration in m/s².
func (c *Controller) Motion() (gyro, accel mgl64.Vec3) {
	cur := &c.frame.Current
	return mgl64.Vec3{cur[GyroX], cur[GyroY], cur[GyroZ]}, mgl64.Vec3{cur[AccelX], cur[AccelY], cur[AccelZ]}
}

func (c *Controller) StickCount() int { return StickCount }

func (c *Controller) StickAxisCount(stick int) int {
	if stick < 0 || stick >= StickCount {
		return 0
	}
	return StickAxisCount
}

func (c *Controller) ButtonCount() int { return int(ButtonCount) }

func (c *Controller) IsButtonPressed(button int) bool {
	return Button(button).Valid() && c.frame.Current[button] != 0
}

func (c *Controller) WasButtonPressedLastFrame(button int) bool {
	return Button(button).Valid() && c.frame.Last[button] != 0
}

func (c *Controller) StickAxisInputs(stick int) [3]device.InputID {
	ids := [3]device.InputID{device.InvalidInput, device.InvalidInput, device.InvalidInput}
	if stick < 0 || stick >= StickCount {
		return ids
	}
	base := LeftStickX + device.InputID(stick*StickAxisCount)
	ids[0], ids[1] = base, base+1
	return ids
}

func (c *Controller) InputForButton(button int) device.InputID {
	if !Button(button).Valid() {
		return device.InvalidInput
	}
	return device.InputID(button)
}

func (c *Controller) StickAxisValue(stick, axis int) float64 {
	if axis < 0 || axis >= c.StickAxisCount(stick) {
		return 0
	}
	return c.frame.Current[c.StickAxisInputs(stick)[axis]]
}

func (c *Controller) StickAxisValueLastFrame(stick, axis int) float64 {
	if axis < 0 || axis >= c.StickAxisCount(stick) {
		return 0
	}
	return c.frame.Last[c.StickAxisInputs(stick)[axis]]
}

func (c *Controller) StickValue(stick int) mgl64.Vec3 {
	return mgl64.Vec3{c.StickAxisValue(stick, 0), c.StickAxisValue(stick, 1), 0}
}

func (c *Controller) StickValueLastFrame(stick int) mgl64.Vec3 {
	return mgl64.Vec3{c.StickAxisValueLastFrame(stick, 0), c.StickAxisValueLastFrame(stick, 1), 0}
}

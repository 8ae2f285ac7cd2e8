// Package xbox360 implements the Xbox gamepad layout: 14 buttons, two
// sticks with two axes each, two triggers and two rumble motors.
package xbox360

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"

	"github.com/Alia5/inputmap/device"
)

var inputProperties = func() [InputCount]device.InputProperties {
	var props [InputCount]device.InputProperties
	for b := A; b < ButtonCount; b++ {
		p := device.DefaultInputProperties(b.String())
		p.Flags = device.Digital
		p.DeadZoneMin, p.DeadZoneMax, p.MinValue = 0, 0, 0
		p.StepSize = 1
		p.GlyphURI = "xbox/" + b.String()
		props[b] = p
	}
	axes := [...]struct {
		name     string
		min, max float64
	}{
		{"Left Stick X Axis", -1, 1},
		{"Left Stick Y Axis", -1, 1},
		{"Right Stick X Axis", -1, 1},
		{"Right Stick Y Axis", -1, 1},
		{"Left Trigger", 0, 1},
		{"Right Trigger", 0, 1},
	}
	for i, a := range axes {
		p := device.AxisProperties(a.name, a.min, a.max)
		p.GlyphURI = "xbox/" + a.name
		props[LeftStickX+device.InputID(i)] = p
	}
	return props
}()

// Gamepad is a virtual Xbox layout controller fed by XInput reports or injection.
type Gamepad struct {
	device.Base

	frame device.Frame[[InputCount]float64]

	motors   [motorCount]float64
	disabled [motorCount]bool
	rumble   [motorCount]func([]byte)
}

// New returns a new Gamepad device.
func New(o *device.CreateOptions) *Gamepad {
	return &Gamepad{Base: device.NewBase(o, "Xbox Controller")}
}

func (g *Gamepad) Role() device.Role { return device.RoleGamepad }

func (g *Gamepad) Capabilities() device.Capabilities {
	return device.Capabilities{
		Outputs:   g,
		Gamepad:   g,
		Injector:  g,
		Navigator: g,
		Wire:      g,
	}
}

func (g *Gamepad) MaxInputID() device.InputID { return InputCount }

func (g *Gamepad) IsInputValid(id device.InputID) bool { return id < InputCount }

func (g *Gamepad) IsAnyInputActive() bool {
	for id := device.InputID(0); id < InputCount; id++ {
		if inputProperties[id].IsPressed(g.frame.Current[id]) {
			return true
		}
	}
	return false
}

func (g *Gamepad) InputValue(id device.InputID) float64 {
	if !g.IsInputValid(id) {
		g.ReportInvalidInput(id, InputCount)
		return 0
	}
	return g.frame.Current[id]
}

func (g *Gamepad) IsInputPressed(id device.InputID) bool {
	if !g.IsInputValid(id) {
		g.ReportInvalidInput(id, InputCount)
		return false
	}
	return inputProperties[id].IsPressed(g.frame.Current[id])
}

func (g *Gamepad) InputValueLastFrame(id device.InputID) float64 {
	if !g.IsInputValid(id) {
		g.ReportInvalidInput(id, InputCount)
		return 0
	}
	return g.frame.Last[id]
}

func (g *Gamepad) WasInputPressedLastFrame(id device.InputID) bool {
	if !g.IsInputValid(id) {
		g.ReportInvalidInput(id, InputCount)
		return false
	}
	return inputProperties[id].IsPressed(g.frame.Last[id])
}

func (g *Gamepad) PropertiesOf(id device.InputID) (device.InputProperties, bool) {
	if !g.IsInputValid(id) {
		return device.InputProperties{}, false
	}
	return inputProperties[id], true
}

func (g *Gamepad) NewFrame() { g.frame.Advance() }

func (g *Gamepad) set(id device.InputID, v float64) {
	v = inputProperties[id].Clamp(v)
	if g.frame.Current[id] == v {
		return
	}
	g.frame.Current[id] = v
	g.Changed(g, id, v)
}

func (g *Gamepad) InjectInput(id device.InputID, v float64) bool {
	if !g.IsInputValid(id) {
		g.ReportInvalidInput(id, InputCount)
		return false
	}
	if id < device.InputID(ButtonCount) && v != 0 {
		v = 1
	}
	g.set(id, v)
	return true
}

// SetButton presses or releases b.
func (g *Gamepad) SetButton(b Button, pressed bool) {
	if !b.Valid() {
		return
	}
	v := 0.0
	if pressed {
		v = 1
	}
	g.set(b.Input(), v)
}

// ApplyState replaces the whole controller state with an XInput report.
func (g *Gamepad) ApplyState(st InputState) {
	for b := A; b < ButtonCount; b++ {
		g.SetButton(b, st.Buttons&b.Mask() != 0)
	}
	g.set(LeftStickX, NormalizeStick(st.LX))
	g.set(LeftStickY, NormalizeStick(st.LY))
	g.set(RightStickX, NormalizeStick(st.RX))
	g.set(RightStickY, NormalizeStick(st.RY))
	g.set(LeftTrigger, NormalizeTrigger(st.LT))
	g.set(RightTrigger, NormalizeTrigger(st.RT))
}

// ApplyWire decodes a 20-byte InputState report and applies it.
func (g *Gamepad) ApplyWire(data []byte) error {
	var st InputState
	if err := st.UnmarshalBinary(data); err != nil {
		return err
	}
	g.ApplyState(st)
	return nil
}

// State returns the current frame as an InputState.
func (g *Gamepad) State() InputState {
	var st InputState
	for b := A; b < ButtonCount; b++ {
		if g.frame.Current[b] != 0 {
			st.Buttons |= b.Mask()
		}
	}
	stick := func(v float64) int16 { return int16(math.Round(v * math.MaxInt16)) }
	trigger := func(v float64) uint8 { return uint8(math.Round(v * math.MaxUint8)) }
	st.LX = stick(g.frame.Current[LeftStickX])
	st.LY = stick(g.frame.Current[LeftStickY])
	st.RX = stick(g.frame.Current[RightStickX])
	st.RY = stick(g.frame.Current[RightStickY])
	st.LT = trigger(g.frame.Current[LeftTrigger])
	st.RT = trigger(g.frame.Current[RightTrigger])
	return st
}

func (g *Gamepad) StickCount() int { return StickCount }

func (g *Gamepad) StickAxisCount(stick int) int {
	if stick < 0 || stick >= StickCount {
		return 0
	}
	return StickAxisCount
}

func (g *Gamepad) ButtonCount() int { return int(ButtonCount) }

func (g *Gamepad) IsButtonPressed(button int) bool {
	return Button(button).Valid() && g.frame.Current[button] != 0
}

func (g *Gamepad) WasButtonPressedLastFrame(button int) bool {
	return Button(button).Valid() && g.frame.Last[button] != 0
}

// StickAxisInputs returns the axis inputs of stick. The third axis is
// always invalid for this layout.
func (g *Gamepad) StickAxisInputs(stick int) [3]device.InputID {
	ids := [3]device.InputID{device.InvalidInput, device.InvalidInput, device.InvalidInput}
	if stick < 0 || stick >= StickCount {
		return ids
	}
	base := LeftStickX + device.InputID(stick*StickAxisCount)
	ids[0], ids[1] = base, base+1
	return ids
}

func (g *Gamepad) InputForButton(button int) device.InputID {
	if !Button(button).Valid() {
		return device.InvalidInput
	}
	return device.InputID(button)
}

func (g *Gamepad) StickAxisValue(stick, axis int) float64 {
	return g.stickAxis(&g.frame.Current, stick, axis)
}

func (g *Gamepad) StickAxisValueLastFrame(stick, axis int) float64 {
	return g.stickAxis(&g.frame.Last, stick, axis)
}

func (g *Gamepad) stickAxis(state *[InputCount]float64, stick, axis int) float64 {
	if axis < 0 || axis >= g.StickAxisCount(stick) {
		return 0
	}
	return state[g.StickAxisInputs(stick)[axis]]
}

func (g *Gamepad) StickValue(stick int) mgl64.Vec3 {
	return mgl64.Vec3{g.StickAxisValue(stick, 0), g.StickAxisValue(stick, 1), 0}
}

func (g *Gamepad) StickValueLastFrame(stick int) mgl64.Vec3 {
	return mgl64.Vec3{g.StickAxisValueLastFrame(stick, 0), g.StickAxisValueLastFrame(stick, 1), 0}
}

// Rumble returns the motor intensities in [0, 1].
func (g *Gamepad) Rumble() (left, right float64) {
	return g.motors[OutputLeftMotor], g.motors[OutputRightMotor]
}

func (g *Gamepad) rumbleState() RumbleState {
	return RumbleState{
		LeftMotor:  uint8(math.Round(g.motors[OutputLeftMotor] * math.MaxUint8)),
		RightMotor: uint8(math.Round(g.motors[OutputRightMotor] * math.MaxUint8)),
	}
}

func (g *Gamepad) setMotor(id device.OutputID, v float64) {
	v = math.Max(0, math.Min(1, v))
	if g.disabled[id] {
		v = 0
	}
	if g.motors[id] == v {
		return
	}
	g.motors[id] = v
	if cb := g.rumble[id]; cb != nil {
		st := g.rumbleState()
		b, _ := st.MarshalBinary()
		cb(b)
	}
}

func (g *Gamepad) MaxOutputID() device.OutputID { return motorCount }

func (g *Gamepad) IsOutputValid(id device.OutputID) bool { return id < motorCount }

func (g *Gamepad) OutputProperties(id device.OutputID) (device.OutputProperties, bool) {
	if !g.IsOutputValid(id) {
		return device.OutputProperties{}, false
	}
	p := device.DefaultOutputProperties(motorNames[id])
	p.Type = device.OutputVibration
	p.Flags = device.OutputContinuous | device.OutputCanBeDisabled
	p.Resolution = mgl64.Vec3{1.0 / math.MaxUint8, 0, 0}
	return p, true
}

// SetOutput sets a motor intensity from v.X().
func (g *Gamepad) SetOutput(id device.OutputID, v mgl64.Vec3) bool {
	if !g.IsOutputValid(id) {
		return false
	}
	g.setMotor(id, v.X())
	return true
}

func (g *Gamepad) ResetOutput(id device.OutputID) bool {
	return g.SetOutput(id, mgl64.Vec3{})
}

// SendOutputData accepts an encoded RumbleState and applies the motor
// selected by id.
func (g *Gamepad) SendOutputData(id device.OutputID, data []byte) bool {
	if !g.IsOutputValid(id) {
		return false
	}
	var st RumbleState
	if err := st.UnmarshalBinary(data); err != nil {
		return false
	}
	raw := st.LeftMotor
	if id == OutputRightMotor {
		raw = st.RightMotor
	}
	g.setMotor(id, float64(raw)/math.MaxUint8)
	return true
}

// SetOutputCallback registers f to receive the encoded RumbleState
// whenever motor id changes.
func (g *Gamepad) SetOutputCallback(id device.OutputID, f func([]byte)) bool {
	if !g.IsOutputValid(id) {
		return false
	}
	g.rumble[id] = f
	return true
}

// EnableOutput enables or disables a motor. Disabling stops it.
func (g *Gamepad) EnableOutput(id device.OutputID, enable bool) bool {
	if !g.IsOutputValid(id) {
		return false
	}
	g.disabled[id] = !enable
	if !enable {
		g.setMotor(id, 0)
	}
	return true
}

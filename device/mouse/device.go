// Package mouse implements the mouse role: five buttons, two wheels and an
// absolute cursor position, plus a virtual mouse backend.
package mouse

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"

	"github.com/Alia5/inputmap/device"
)

const glyphPrefix = "ControllerGraphics/Keyboard & Mouse/Dark/Keyboard_White_Mouse_"

// Mouse is a virtual mouse fed by pointer events, relative reports or injection.
type Mouse struct {
	device.Base

	frame         device.Frame[[InputCount]float64]
	cursorVisible bool
	cursor        CursorShape
	regions       []device.Rect
}

// New returns a new Mouse device.
func New(o *device.CreateOptions) *Mouse {
	return &Mouse{
		Base:          device.NewBase(o, "Main Mouse"),
		cursorVisible: true,
		cursor:        CursorDefault,
	}
}

func (m *Mouse) Role() device.Role { return device.RoleMouse }

func (m *Mouse) Capabilities() device.Capabilities {
	return device.Capabilities{
		Injector:  m,
		Navigator: m,
		Wire:      m,
	}
}

func (m *Mouse) MaxInputID() device.InputID { return InputCount }

func (m *Mouse) IsInputValid(id device.InputID) bool { return id < InputCount }

func (m *Mouse) IsAnyInputActive() bool {
	for b := Left; b < ButtonCount; b++ {
		if m.frame.Current[b] != 0 {
			return true
		}
	}
	return m.frame.Current[WheelVertical] != 0 || m.frame.Current[WheelHorizontal] != 0
}

func (m *Mouse) InputValue(id device.InputID) float64 {
	if !m.IsInputValid(id) {
		m.ReportInvalidInput(id, InputCount)
		return 0
	}
	return m.frame.Current[id]
}

// IsInputPressed is only meaningful for buttons; wheels and axes are never pressed.
func (m *Mouse) IsInputPressed(id device.InputID) bool {
	if !m.IsInputValid(id) {
		m.ReportInvalidInput(id, InputCount)
		return false
	}
	return id < device.InputID(ButtonCount) && m.frame.Current[id] != 0
}

func (m *Mouse) InputValueLastFrame(id device.InputID) float64 {
	if !m.IsInputValid(id) {
		m.ReportInvalidInput(id, InputCount)
		return 0
	}
	return m.frame.Last[id]
}

func (m *Mouse) WasInputPressedLastFrame(id device.InputID) bool {
	if !m.IsInputValid(id) {
		m.ReportInvalidInput(id, InputCount)
		return false
	}
	return id < device.InputID(ButtonCount) && m.frame.Last[id] != 0
}

func (m *Mouse) PropertiesOf(id device.InputID) (device.InputProperties, bool) {
	switch id {
	case Left.Input(), Right.Input(), Middle.Input():
		b := Button(id)
		return device.ButtonProperties(b.String(), glyphPrefix+b.String()+".png"), true
	case Button4.Input(), Button5.Input():
		return device.ButtonProperties(Button(id).String(), ""), true
	case WheelVertical:
		return wheelProperties("Vertical Wheel"), true
	case WheelHorizontal:
		return wheelProperties("Horizontal Wheel"), true
	case AxisX:
		return axisProperties("X Axis"), true
	case AxisY:
		return axisProperties("Y Axis"), true
	}
	return device.InputProperties{}, false
}

func wheelProperties(name string) device.InputProperties {
	p := device.DefaultInputProperties(name)
	p.Flags = device.ReturnsToNeutral
	p.MinValue = math.Inf(-1)
	p.MaxValue = math.Inf(1)
	return p
}

func axisProperties(name string) device.InputProperties {
	p := device.DefaultInputProperties(name)
	p.MinValue = 0
	p.MaxValue = math.MaxFloat64
	p.Unit = "px"
	return p
}

// NewFrame snapshots the state and resets the wheels, which only report
// movement within one frame.
func (m *Mouse) NewFrame() {
	m.frame.Advance()
	m.frame.Current[WheelVertical] = 0
	m.frame.Current[WheelHorizontal] = 0
}

func (m *Mouse) set(id device.InputID, v float64) {
	if math.IsNaN(v) {
		v = 0
	}
	if m.frame.Current[id] == v {
		return
	}
	m.frame.Current[id] = v
	m.Changed(m, id, v)
}

// ButtonPressed records a button down event.
func (m *Mouse) ButtonPressed(b Button) {
	if b.Valid() {
		m.set(b.Input(), 1)
	}
}

// ButtonReleased records a button up event.
func (m *Mouse) ButtonReleased(b Button) {
	if b.Valid() {
		m.set(b.Input(), 0)
	}
}

// Button reports whether b is held in the current frame.
func (m *Mouse) Button(b Button) bool {
	return b.Valid() && m.frame.Current[b] != 0
}

// Moved records an absolute cursor position.
func (m *Mouse) Moved(x, y float64) {
	m.set(AxisX, math.Max(0, x))
	m.set(AxisY, math.Max(0, y))
}

// Scrolled accumulates wheel movement for the current frame. Wheel 0 is
// vertical, wheel 1 horizontal.
func (m *Mouse) Scrolled(delta float64, wheel int) {
	if delta == 0 || wheel < 0 || wheel > 1 {
		return
	}
	id := WheelVertical + device.InputID(wheel)
	m.set(id, m.frame.Current[id]+delta)
}

// Position returns the cursor position.
func (m *Mouse) Position() mgl64.Vec2 {
	return mgl64.Vec2{m.frame.Current[AxisX], m.frame.Current[AxisY]}
}

// Wheel returns the vertical wheel movement of the current frame.
func (m *Mouse) Wheel() float64 { return m.frame.Current[WheelVertical] }

func (m *Mouse) InjectInput(id device.InputID, v float64) bool {
	if !m.IsInputValid(id) {
		m.ReportInvalidInput(id, InputCount)
		return false
	}
	switch {
	case id < device.InputID(ButtonCount):
		if v != 0 {
			v = 1
		}
	case id == AxisX || id == AxisY:
		v = math.Max(0, v)
	}
	m.set(id, v)
	return true
}

// ApplyState applies a relative report: buttons are replaced, deltas move
// the cursor and wheel movement accumulates.
func (m *Mouse) ApplyState(st InputState) {
	for b := Left; b < ButtonCount; b++ {
		if st.Pressed(b) {
			m.ButtonPressed(b)
		} else {
			m.ButtonReleased(b)
		}
	}
	if st.DX != 0 || st.DY != 0 {
		p := m.Position()
		m.Moved(p.X()+float64(st.DX), p.Y()+float64(st.DY))
	}
	m.Scrolled(-float64(st.Wheel), 0)
	m.Scrolled(float64(st.Pan), 1)
}

// ApplyWire decodes a 9-byte InputState report and applies it.
func (m *Mouse) ApplyWire(data []byte) error {
	var st InputState
	if err := st.UnmarshalBinary(data); err != nil {
		return err
	}
	m.ApplyState(st)
	return nil
}

func (m *Mouse) ShowCursor(show bool) { m.cursorVisible = show }

func (m *Mouse) IsCursorVisible() bool { return m.cursorVisible }

// IsCursorShapeAvailable reports whether shape is a system cursor.
func (m *Mouse) IsCursorShapeAvailable(shape CursorShape) bool {
	return shape >= CursorNone && shape < systemCursorCount
}

// SetCursorShape changes the cursor shape. Unavailable shapes are ignored.
func (m *Mouse) SetCursorShape(shape CursorShape) bool {
	if !m.IsCursorShapeAvailable(shape) {
		return false
	}
	m.cursor = shape
	return true
}

func (m *Mouse) CursorShape() CursorShape { return m.cursor }

func (m *Mouse) CanWarp() bool { return true }

// Warp moves the cursor to pos. When valid regions are set, pos must lie
// in one of them.
func (m *Mouse) Warp(pos mgl64.Vec2) bool {
	if !m.inValidRegion(pos) {
		return false
	}
	m.Moved(pos.X(), pos.Y())
	return true
}

func (m *Mouse) inValidRegion(pos mgl64.Vec2) bool {
	if len(m.regions) == 0 {
		return true
	}
	for _, r := range m.regions {
		if r.Contains(pos) {
			return true
		}
	}
	return false
}

// ValidRegions returns the screen regions the cursor may be warped into.
func (m *Mouse) ValidRegions() []device.Rect {
	return append([]device.Rect(nil), m.regions...)
}

func (m *Mouse) SetValidRegions(regions ...device.Rect) {
	m.regions = append(m.regions[:0], regions...)
}

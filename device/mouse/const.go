package mouse

import "github.com/Alia5/inputmap/device"

// Button identifies a mouse button. Its value is also its input id.
type Button int

const (
	Left Button = iota
	Right
	Middle
	Button4
	Button5

	ButtonCount
)

var buttonNames = [ButtonCount]string{"Left", "Right", "Middle", "Button4", "Button5"}

func (b Button) Valid() bool { return b >= 0 && b < ButtonCount }

func (b Button) String() string {
	if !b.Valid() {
		return "Button(?)"
	}
	return buttonNames[b]
}

// Input returns the input id of b.
func (b Button) Input() device.InputID { return device.InputID(b) }

// Non-button inputs. Wheels use screen-space signs: negative scrolls up or left.
const (
	WheelVertical device.InputID = device.InputID(ButtonCount) + iota
	WheelHorizontal
	AxisX
	AxisY

	InputCount
)

// Button bits of InputState.Buttons.
const (
	BitLeft    = 0x01
	BitRight   = 0x02
	BitMiddle  = 0x04
	BitButton4 = 0x08 // Back
	BitButton5 = 0x10 // Forward
)

// CursorShape is a system cursor shape.
type CursorShape int

const (
	CursorNone CursorShape = iota
	CursorDefault
	CursorArrow
	CursorBusy     // or Wait
	CursorQuestion // or Help
	CursorEdit     // or IBeam
	CursorMove
	CursorResizeN
	CursorResizeW
	CursorResizeS
	CursorResizeE
	CursorResizeNW
	CursorResizeSW
	CursorResizeSE
	CursorResizeNE
	CursorProgress
	CursorPrecision // or Crosshair
	CursorLink      // or Hand
	CursorAltSelect // or UpArrow
	CursorUnavailable

	CursorDrag
	CursorCanDrop
	CursorCannotDrop
)

// systemCursorCount is the number of shapes every platform cursor set provides.
const systemCursorCount = CursorUnavailable + 1

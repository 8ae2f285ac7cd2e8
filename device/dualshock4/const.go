package dualshock4

import (
	"strings"

	"github.com/Alia5/inputmap/device"
)

// Button is a digital input of the DualShock 4 layout. Its value is its input id.
type Button int

const (
	Cross Button = iota
	Circle
	Square
	Triangle
	L1
	R1
	L3
	R3
	Share
	Options
	PS
	Touchpad
	Right
	Left
	Down
	Up

	ButtonCount
)

var buttonNames = [ButtonCount]string{
	"Cross", "Circle", "Square", "Triangle",
	"L1", "R1", "L3", "R3",
	"Share", "Options", "PS", "Touchpad",
	"Right", "Left", "Down", "Up",
}

func (b Button) Valid() bool { return b >= 0 && b < ButtonCount }

func (b Button) String() string {
	if !b.Valid() {
		return "Button(?)"
	}
	return buttonNames[b]
}

// Input returns the input id of b.
func (b Button) Input() device.InputID { return device.InputID(b) }

// ParseButton resolves a button by name, ignoring case and spaces.
func ParseButton(s string) (Button, bool) {
	s = strings.ReplaceAll(s, " ", "")
	for b := Cross; b < ButtonCount; b++ {
		if strings.EqualFold(buttonNames[b], s) {
			return b, true
		}
	}
	return 0, false
}

// Analog inputs follow the buttons. The motion axes are reported in
// physical units.
const (
	LeftStickX device.InputID = device.InputID(ButtonCount) + iota
	LeftStickY
	RightStickX
	RightStickY
	L2
	R2
	TouchX
	TouchY
	GyroX
	GyroY
	GyroZ
	AccelX
	AccelY
	AccelZ
	// TouchContact is 1 while a finger rests on the touchpad.
	TouchContact

	InputCount
)

const (
	StickCount     = 2
	StickAxisCount = 2
)

// NavigationThreshold is the stick deflection that triggers stick navigation.
const NavigationThreshold = 0.1

// Button bits of InputState.Buttons, as in the USB report.
const (
	MaskSquare   uint16 = 0x0010
	MaskCross    uint16 = 0x0020
	MaskCircle   uint16 = 0x0040
	MaskTriangle uint16 = 0x0080
	MaskL1       uint16 = 0x0100
	MaskR1       uint16 = 0x0200
	MaskL2       uint16 = 0x0400
	MaskR2       uint16 = 0x0800
	MaskShare    uint16 = 0x1000
	MaskOptions  uint16 = 0x2000
	MaskL3       uint16 = 0x4000
	MaskR3       uint16 = 0x8000

	MaskPS       uint16 = 0x0001
	MaskTouchpad uint16 = 0x0002
)

// D-pad bits of InputState.DPad.
const (
	DPadUp    uint8 = 0x01
	DPadDown  uint8 = 0x02
	DPadLeft  uint8 = 0x04
	DPadRight uint8 = 0x08
)

var buttonMasks = [Right]uint16{
	Cross:    MaskCross,
	Circle:   MaskCircle,
	Square:   MaskSquare,
	Triangle: MaskTriangle,
	L1:       MaskL1,
	R1:       MaskR1,
	L3:       MaskL3,
	R3:       MaskR3,
	Share:    MaskShare,
	Options:  MaskOptions,
	PS:       MaskPS,
	Touchpad: MaskTouchpad,
}

var dpadMasks = [ButtonCount - Right]uint8{
	Right - Right: DPadRight,
	Left - Right:  DPadLeft,
	Down - Right:  DPadDown,
	Up - Right:    DPadUp,
}

// Gyro and accelerometer fields are fixed point: raw = value * scale.
const (
	// GyroCountsPerDps gives 0.0625 °/s resolution over about ±2048 °/s.
	GyroCountsPerDps = 16.0
	// AccelCountsPerMS2 gives about 0.002 m/s² resolution over ±64 m/s².
	AccelCountsPerMS2 = 512.0

	StandardGravityMS2 = 9.81
)

// Accelerometer reading of a controller lying flat on a table.
const (
	DefaultAccelXRaw int16 = 0
	DefaultAccelYRaw int16 = 0
	DefaultAccelZRaw int16 = -5023
)

const (
	TouchpadMaxX uint16 = 1920
	TouchpadMaxY uint16 = 942
)

// Output ids.
const (
	OutputLargeMotor device.OutputID = iota
	OutputSmallMotor
	OutputLightBar

	outputCount
)

var outputNames = [outputCount]string{"Large Motor", "Small Motor", "Light Bar"}

// Light bar color of a freshly connected controller.
const (
	DefaultLedRed   = 0x00
	DefaultLedGreen = 0x00
	DefaultLedBlue  = 0x40
)

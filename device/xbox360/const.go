package xbox360

import (
	"strings"

	"github.com/Alia5/inputmap/device"
)

// Button is a digital input of the Xbox layout. Its value is its input id.
type Button int

const (
	A Button = iota
	B
	X
	Y
	RightBumper
	LeftBumper
	RightStick
	LeftStick
	Back
	Start
	Right
	Left
	Down
	Up

	ButtonCount
)

var buttonNames = [ButtonCount]string{
	"A", "B", "X", "Y",
	"Right Bumper", "Left Bumper", "Right Stick", "Left Stick",
	"Back", "Start",
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

// ParseButton resolves a button by display name or identifier, case-insensitively.
func ParseButton(s string) (Button, bool) {
	for b := A; b < ButtonCount; b++ {
		if equalFoldCompact(buttonNames[b], s) {
			return b, true
		}
	}
	return 0, false
}

// Axis inputs follow the buttons.
const (
	LeftStickX device.InputID = device.InputID(ButtonCount) + iota
	LeftStickY
	RightStickX
	RightStickY
	LeftTrigger
	RightTrigger

	InputCount
)

const (
	StickCount     = 2
	StickAxisCount = 2
)

// NavigationThreshold is the stick deflection that triggers stick navigation.
const NavigationThreshold = 0.1

// Button bitmasks of InputState (XInput compatible)
const (
	MaskDPadUp    = 0x0001
	MaskDPadDown  = 0x0002
	MaskDPadLeft  = 0x0004
	MaskDPadRight = 0x0008
	MaskStart     = 0x0010
	MaskBack      = 0x0020
	MaskLThumb    = 0x0040 // Left stick button
	MaskRThumb    = 0x0080 // Right stick button
	MaskLShoulder = 0x0100 // Left bumper (LB)
	MaskRShoulder = 0x0200 // Right bumper (RB)
	MaskGuide     = 0x0400 // Xbox/Guide button (center logo)
	MaskA         = 0x1000
	MaskB         = 0x2000
	MaskX         = 0x4000
	MaskY         = 0x8000
)

var buttonMasks = [ButtonCount]uint32{
	A:           MaskA,
	B:           MaskB,
	X:           MaskX,
	Y:           MaskY,
	RightBumper: MaskRShoulder,
	LeftBumper:  MaskLShoulder,
	RightStick:  MaskRThumb,
	LeftStick:   MaskLThumb,
	Back:        MaskBack,
	Start:       MaskStart,
	Right:       MaskDPadRight,
	Left:        MaskDPadLeft,
	Down:        MaskDPadDown,
	Up:          MaskDPadUp,
}

// Mask returns the InputState bit of b.
func (b Button) Mask() uint32 {
	if !b.Valid() {
		return 0
	}
	return buttonMasks[b]
}

// Rumble output ids.
const (
	OutputLeftMotor device.OutputID = iota
	OutputRightMotor

	motorCount
)

var motorNames = [motorCount]string{"Left Motor", "Right Motor"}

func equalFoldCompact(name, s string) bool {
	return strings.EqualFold(strings.ReplaceAll(name, " ", ""), strings.ReplaceAll(s, " ", ""))
}

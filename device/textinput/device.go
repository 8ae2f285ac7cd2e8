// Package textinput implements the text-input role: a device that composes
// text for an on-screen area instead of reporting numeric inputs.
package textinput

import (
	"unicode/utf8"

	"github.com/Alia5/inputmap/device"
)

// CompositionEvent is the lifecycle stage of a composition.
type CompositionEvent int

const (
	CompositionStarted CompositionEvent = iota
	CompositionFinished
	CompositionCanceled
)

func (e CompositionEvent) String() string {
	switch e {
	case CompositionStarted:
		return "started"
	case CompositionFinished:
		return "finished"
	case CompositionCanceled:
		return "canceled"
	}
	return "unknown"
}

// CompositionFunc observes composition events. text is the composed text
// when the composition finished.
type CompositionFunc func(e CompositionEvent, text string)

// Device is a virtual text-input device. It has no numeric inputs; text
// arrives through Insert, Backspace and Select while a composition is active.
type Device struct {
	device.Base

	area     device.Rect
	active   bool
	text     []rune
	selStart int
	selEnd   int
	onEvent  CompositionFunc
	keyboard device.Device
}

// New returns a text-input device.
func New(o *device.CreateOptions) *Device {
	return &Device{Base: device.NewBase(o, "Text Input")}
}

func (d *Device) Role() device.Role { return device.RoleTextInput }

func (d *Device) Capabilities() device.Capabilities {
	return device.Capabilities{Text: d}
}

// OnComposition registers f for composition events.
func (d *Device) OnComposition(f CompositionFunc) { d.onEvent = f }

// SetScreenKeyboard attaches an on-screen keyboard device.
func (d *Device) SetScreenKeyboard(k device.Device) { d.keyboard = k }

// ScreenKeyboard returns the attached on-screen keyboard.
func (d *Device) ScreenKeyboard() (device.Device, bool) { return d.keyboard, d.keyboard != nil }

func (d *Device) HasScreenKeyboardSupport() bool { return d.keyboard != nil }

func (d *Device) emit(e CompositionEvent, text string) {
	if d.onEvent != nil {
		d.onEvent(e, text)
	}
}

// StartTextInput begins a new composition for area. A running composition
// is canceled first.
func (d *Device) StartTextInput(area device.Rect) {
	if d.active {
		d.CancelTextInput()
	}
	d.area = area
	d.active = true
	d.text = d.text[:0]
	d.selStart, d.selEnd = 0, 0
	d.emit(CompositionStarted, "")
}

// CancelTextInput discards the composition.
func (d *Device) CancelTextInput() {
	if !d.active {
		return
	}
	d.active = false
	d.text = d.text[:0]
	d.selStart, d.selEnd = 0, 0
	d.emit(CompositionCanceled, "")
}

// Finish ends the composition and returns the composed text.
func (d *Device) Finish() string {
	if !d.active {
		return ""
	}
	text := string(d.text)
	d.active = false
	d.emit(CompositionFinished, text)
	return text
}

func (d *Device) IsTextInputActive() bool { return d.active }

// Area returns the screen area of the active composition.
func (d *Device) Area() device.Rect { return d.area }

func (d *Device) CurrentText() string { return string(d.text) }

// CurrentSelection returns the selected rune range. An empty selection is
// the caret position.
func (d *Device) CurrentSelection() (start, end int) { return d.selStart, d.selEnd }

// Insert replaces the selection with s and places the caret after it.
func (d *Device) Insert(s string) bool {
	if !d.active || !utf8.ValidString(s) {
		return false
	}
	ins := []rune(s)
	out := make([]rune, 0, len(d.text)-(d.selEnd-d.selStart)+len(ins))
	out = append(out, d.text[:d.selStart]...)
	out = append(out, ins...)
	out = append(out, d.text[d.selEnd:]...)
	d.text = out
	d.selStart += len(ins)
	d.selEnd = d.selStart
	d.SetLastActiveTime(d.Now())
	return true
}

// Backspace deletes the selection, or the rune before the caret.
func (d *Device) Backspace() bool {
	if !d.active {
		return false
	}
	start, end := d.selStart, d.selEnd
	if start == end {
		if start == 0 {
			return false
		}
		start--
	}
	d.text = append(d.text[:start], d.text[end:]...)
	d.selStart, d.selEnd = start, start
	d.SetLastActiveTime(d.Now())
	return true
}

// Select sets the selection, clamped to the text.
func (d *Device) Select(start, end int) {
	clamp := func(v int) int { return max(0, min(len(d.text), v)) }
	start, end = clamp(start), clamp(end)
	if start > end {
		start, end = end, start
	}
	d.selStart, d.selEnd = start, end
}

func (d *Device) MaxInputID() device.InputID { return 0 }

func (d *Device) IsInputValid(device.InputID) bool { return false }

func (d *Device) IsAnyInputActive() bool { return d.active }

func (d *Device) InputValue(id device.InputID) float64 {
	d.ReportInvalidInput(id, 0)
	return 0
}

func (d *Device) IsInputPressed(id device.InputID) bool {
	d.ReportInvalidInput(id, 0)
	return false
}

func (d *Device) InputValueLastFrame(id device.InputID) float64 {
	d.ReportInvalidInput(id, 0)
	return 0
}

func (d *Device) WasInputPressedLastFrame(id device.InputID) bool {
	d.ReportInvalidInput(id, 0)
	return false
}

func (d *Device) PropertiesOf(device.InputID) (device.InputProperties, bool) {
	return device.InputProperties{}, false
}

func (d *Device) CanTriggerNavigation(device.Navigation) bool { return false }
func (d *Device) IsNavigationPressed(device.Navigation) bool { return false }
func (d *Device) WasNavigationPressedLastFrame(device.Navigation) bool {
	return false
}

func (d *Device) NewFrame() {}

package input

import (
	"time"

	"github.com/go-gl/mathgl/mgl64"

	"github.com/Alia5/inputmap/device"
	"github.com/Alia5/inputmap/device/keyboard"
	"github.com/Alia5/inputmap/device/mouse"
	"github.com/Alia5/inputmap/diag"
)

// firstMatch returns true on the first binding of a whose device is
// connected and satisfies pred. Bindings to empty slots are skipped.
func (s *System) firstMatch(a Action, pred func(d device.Device, b Binding) bool) bool {
	for _, b := range s.bindings(a) {
		d := s.Device(b.Device)
		if d == nil {
			continue
		}
		if pred(d, b) {
			return true
		}
	}
	return false
}

// IsButtonPressed reports whether any connected binding of a is pressed.
func (s *System) IsButtonPressed(a Action) bool {
	return s.firstMatch(a, func(d device.Device, b Binding) bool {
		return b.pressed(d)
	})
}

// WasButtonPressed reports a rising edge on a binding of a: pressed now and
// not pressed at the last Update.
func (s *System) WasButtonPressed(a Action) bool {
	return s.firstMatch(a, func(d device.Device, b Binding) bool {
		return b.pressed(d) && !b.pressedLastFrame(d)
	})
}

// WasButtonReleased reports a falling edge on a binding of a.
func (s *System) WasButtonReleased(a Action) bool {
	return s.firstMatch(a, func(d device.Device, b Binding) bool {
		return !b.pressed(d) && b.pressedLastFrame(d)
	})
}

func (s *System) warnUnknownPlayer(a Action) {
	diag.NewWarning(s.sink, "Player not found for input").
		Value("PlayerID", uint64(a.Player)).
		Value("ActionID", a.ID).
		Perform()
}

// firstConnected returns the first binding of a whose device is connected.
// An unknown player is reported once and yields false.
func (s *System) firstConnected(a Action) (device.Device, Binding, bool) {
	pl, ok := s.player(a.Player)
	if !ok {
		s.warnUnknownPlayer(a)
		return nil, Binding{}, false
	}
	for _, b := range pl.mappings[a.ID] {
		if d := s.Device(b.Device); d != nil {
			return d, b, true
		}
	}
	return nil, Binding{}, false
}

// AxisValue returns the value of the first connected binding of a, or 0.
func (s *System) AxisValue(a Action) float64 {
	d, b, ok := s.firstConnected(a)
	if !ok {
		return 0
	}
	return b.value(d)
}

// Axis2DValue returns the vector of the first connected binding of a.
// One-dimensional bindings yield (value, 0).
func (s *System) Axis2DValue(a Action) mgl64.Vec2 {
	d, b, ok := s.firstConnected(a)
	if !ok {
		return mgl64.Vec2{}
	}
	if b.is2D() {
		return mgl64.Vec2{d.InputValue(b.Inputs[0]), d.InputValue(b.Inputs[1])}
	}
	return mgl64.Vec2{b.value(d), 0}
}

// ButtonRepeatCount returns the repeat count of the first pressed binding
// of a on a device that counts repeats.
func (s *System) ButtonRepeatCount(a Action) int {
	for _, b := range s.bindings(a) {
		d := s.Device(b.Device)
		if d == nil {
			continue
		}
		r := d.Capabilities().Repeater
		if r != nil && b.pressed(d) {
			return r.RepeatCount(b.Inputs[0])
		}
	}
	return 0
}

// InputPressedTime returns when the first pressed binding of a went down.
func (s *System) InputPressedTime(a Action) (time.Time, bool) {
	for _, b := range s.bindings(a) {
		d := s.Device(b.Device)
		if d == nil || !b.pressed(d) {
			continue
		}
		if t, ok := s.pressedAt[inputRef{b.Device, b.Inputs[0]}]; ok {
			return t, true
		}
	}
	return time.Time{}, false
}

func (s *System) slotInput(slot int, id device.InputID, pred func(d device.Device, id device.InputID) bool) bool {
	d := s.Device(slot)
	return d != nil && pred(d, id)
}

func isPressed(d device.Device, id device.InputID) bool { return d.IsInputPressed(id) }

func wasPressed(d device.Device, id device.InputID) bool {
	return d.IsInputPressed(id) && !d.WasInputPressedLastFrame(id)
}

func wasReleased(d device.Device, id device.InputID) bool {
	return !d.IsInputPressed(id) && d.WasInputPressedLastFrame(id)
}

// IsKeyPressed queries the keyboard slot directly.
func (s *System) IsKeyPressed(k keyboard.Key) bool {
	return s.slotInput(KeyboardSlot, device.InputID(k), isPressed)
}

// WasKeyPressed reports whether k went down this frame.
func (s *System) WasKeyPressed(k keyboard.Key) bool {
	return s.slotInput(KeyboardSlot, device.InputID(k), wasPressed)
}

// WasKeyReleased reports whether k went up this frame.
func (s *System) WasKeyReleased(k keyboard.Key) bool {
	return s.slotInput(KeyboardSlot, device.InputID(k), wasReleased)
}

// IsMouseButtonPressed queries the mouse slot directly.
func (s *System) IsMouseButtonPressed(b mouse.Button) bool {
	return s.slotInput(MouseSlot, b.Input(), isPressed)
}

// WasMouseButtonPressed reports whether b went down this frame.
func (s *System) WasMouseButtonPressed(b mouse.Button) bool {
	return s.slotInput(MouseSlot, b.Input(), wasPressed)
}

// WasMouseButtonReleased reports whether b went up this frame.
func (s *System) WasMouseButtonReleased(b mouse.Button) bool {
	return s.slotInput(MouseSlot, b.Input(), wasReleased)
}

// MousePosition returns the cursor position of the mouse slot.
func (s *System) MousePosition() mgl64.Vec2 {
	d := s.Mouse()
	if d == nil {
		return mgl64.Vec2{}
	}
	return mgl64.Vec2{d.InputValue(mouse.AxisX), d.InputValue(mouse.AxisY)}
}

func (s *System) anyDevice(pred func(d device.Device) bool) bool {
	for _, d := range s.devices {
		if d != nil && pred(d) {
			return true
		}
	}
	return false
}

// IsNavigationPressed reports whether any connected device triggers n.
func (s *System) IsNavigationPressed(n device.Navigation) bool {
	return s.anyDevice(func(d device.Device) bool { return d.IsNavigationPressed(n) })
}

// WasNavigationPressed reports whether any device started triggering n this frame.
func (s *System) WasNavigationPressed(n device.Navigation) bool {
	return s.anyDevice(func(d device.Device) bool {
		return d.IsNavigationPressed(n) && !d.WasNavigationPressedLastFrame(n)
	})
}

// WasNavigationReleased reports whether any device stopped triggering n this frame.
func (s *System) WasNavigationReleased(n device.Navigation) bool {
	return s.anyDevice(func(d device.Device) bool {
		return !d.IsNavigationPressed(n) && d.WasNavigationPressedLastFrame(n)
	})
}

// NavigationRepeatCount returns the repeat count of the first held
// navigation source that counts repeats.
func (s *System) NavigationRepeatCount(n device.Navigation) int {
	for _, d := range s.devices {
		if d == nil || !d.IsNavigationPressed(n) {
			continue
		}
		c := d.Capabilities()
		if c.Navigator == nil || c.Repeater == nil {
			continue
		}
		if src, ok := c.Navigator.NavigationSource(n); ok {
			return c.Repeater.RepeatCount(src.Input)
		}
	}
	return 0
}

// Package keyboard implements the keyboard role: HID key codes, the ISO/US
// key table, UI navigation and a virtual keyboard backend with LED support.
package keyboard

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"

	"github.com/Alia5/inputmap/device"
)

// KeyState is the per-key state kept for both frames.
type KeyState struct {
	Down        bool
	RepeatCount int
}

// LED output ids.
const (
	OutputNumLock device.OutputID = iota
	OutputCapsLock
	OutputScrollLock
	OutputCompose
	OutputKana

	ledCount
)

var ledNames = [ledCount]string{"Num Lock", "Caps Lock", "Scroll Lock", "Compose", "Kana"}

// Keyboard is a virtual keyboard fed by key events, input reports or injection.
type Keyboard struct {
	device.Base

	frame       device.Frame[[MaxKey]KeyState]
	leds        [ledCount]bool
	ledCallback [ledCount]func([]byte)
}

// New returns a new Keyboard device.
func New(o *device.CreateOptions) *Keyboard {
	return &Keyboard{Base: device.NewBase(o, "Main Keyboard")}
}

func (k *Keyboard) Role() device.Role { return device.RoleKeyboard }

func (k *Keyboard) Capabilities() device.Capabilities {
	return device.Capabilities{
		Outputs:   k,
		Injector:  k,
		Navigator: k,
		Repeater:  k,
		Wire:      k,
	}
}

func (k *Keyboard) MaxInputID() device.InputID { return MaxKey }

func (k *Keyboard) IsInputValid(id device.InputID) bool { return id < MaxKey }

func (k *Keyboard) IsAnyInputActive() bool {
	for _, st := range k.frame.Current {
		if st.Down {
			return true
		}
	}
	return false
}

func (k *Keyboard) InputValue(id device.InputID) float64 {
	if k.IsInputPressed(id) {
		return 1
	}
	return 0
}

func (k *Keyboard) IsInputPressed(id device.InputID) bool {
	if !k.IsInputValid(id) {
		k.ReportInvalidInput(id, MaxKey)
		return false
	}
	return k.frame.Current[id].Down
}

func (k *Keyboard) InputValueLastFrame(id device.InputID) float64 {
	if k.WasInputPressedLastFrame(id) {
		return 1
	}
	return 0
}

func (k *Keyboard) WasInputPressedLastFrame(id device.InputID) bool {
	if !k.IsInputValid(id) {
		k.ReportInvalidInput(id, MaxKey)
		return false
	}
	return k.frame.Last[id].Down
}

func (k *Keyboard) PropertiesOf(id device.InputID) (device.InputProperties, bool) {
	if !k.IsInputValid(id) {
		return device.InputProperties{}, false
	}
	key := Key(id)
	p := device.ButtonProperties(KeyName(key), Glyph(key))
	p.Flags |= device.CanRepeat
	p.HIDUsage = []uint16{0x07, uint16(key)}
	if d, ok := Describe(key); ok {
		p.PreviewPosition = mgl64.Vec3{d.Position.X(), d.Position.Y(), 0}
	}
	return p, true
}

// IsKeyDown reports whether key is held in the current frame.
func (k *Keyboard) IsKeyDown(key Key) bool { return k.frame.Current[key].Down }

// RepeatCount returns the number of repeat events of a held key.
func (k *Keyboard) RepeatCount(id device.InputID) int {
	if !k.IsInputValid(id) {
		k.ReportInvalidInput(id, MaxKey)
		return 0
	}
	return k.frame.Current[id].RepeatCount
}

// KeyPressed records a key down event. A press of a key that is already
// down counts as a repeat.
func (k *Keyboard) KeyPressed(key Key) {
	st := &k.frame.Current[key]
	if st.Down {
		st.RepeatCount++
		k.Repeated(k, device.InputID(key), 1)
		return
	}
	st.Down = true
	k.Changed(k, device.InputID(key), 1)
}

// KeyReleased records a key up event.
func (k *Keyboard) KeyReleased(key Key) {
	st := &k.frame.Current[key]
	wasDown := st.Down
	st.Down = false
	st.RepeatCount = 0
	if wasDown {
		k.Changed(k, device.InputID(key), 0)
	}
}

func (k *Keyboard) InjectInput(id device.InputID, v float64) bool {
	if !k.IsInputValid(id) {
		k.ReportInvalidInput(id, MaxKey)
		return false
	}
	if v != 0 && !math.IsNaN(v) {
		k.KeyPressed(Key(id))
	} else {
		k.KeyReleased(Key(id))
	}
	return true
}

// ApplyState replaces the pressed key set with st. Modifier bits are
// mapped to the modifier keys.
func (k *Keyboard) ApplyState(st InputState) {
	for c := 0; c < MaxKey; c++ {
		key := Key(c)
		down := st.Pressed(key)
		if down == k.frame.Current[c].Down {
			continue
		}
		if down {
			k.KeyPressed(key)
		} else {
			k.KeyReleased(key)
		}
	}
}

// ApplyWire decodes an InputState report and applies it.
func (k *Keyboard) ApplyWire(data []byte) error {
	var st InputState
	if err := st.UnmarshalBinary(data); err != nil {
		return err
	}
	k.ApplyState(st)
	return nil
}

// State returns the current frame as an InputState.
func (k *Keyboard) State() InputState {
	var st InputState
	for c := 0; c < MaxKey; c++ {
		if !k.frame.Current[c].Down {
			continue
		}
		if bit, ok := modifierBit(Key(c)); ok {
			st.Modifiers |= bit
			continue
		}
		st.KeyBitmap[c/8] |= 1 << uint(c%8)
	}
	return st
}

func (k *Keyboard) NewFrame() { k.frame.Advance() }

// ReleaseAll releases every held key.
func (k *Keyboard) ReleaseAll() {
	for c := 0; c < MaxKey; c++ {
		if k.frame.Current[c].Down {
			k.KeyReleased(Key(c))
		}
	}
}

// LEDs returns the current LED state.
func (k *Keyboard) LEDs() LEDState {
	return LEDState{
		NumLock:    k.leds[OutputNumLock],
		CapsLock:   k.leds[OutputCapsLock],
		ScrollLock: k.leds[OutputScrollLock],
		Compose:    k.leds[OutputCompose],
		Kana:       k.leds[OutputKana],
	}
}

// SetLEDs applies a full LED state, as reported by the host OS.
func (k *Keyboard) SetLEDs(st LEDState) {
	next := [ledCount]bool{st.NumLock, st.CapsLock, st.ScrollLock, st.Compose, st.Kana}
	for id := range next {
		k.setLED(device.OutputID(id), next[id])
	}
}

func (k *Keyboard) setLED(id device.OutputID, on bool) {
	if k.leds[id] == on {
		return
	}
	k.leds[id] = on
	if cb := k.ledCallback[id]; cb != nil {
		b, _ := k.LEDs().MarshalBinary()
		cb(b)
	}
}

func (k *Keyboard) MaxOutputID() device.OutputID { return ledCount }

func (k *Keyboard) IsOutputValid(id device.OutputID) bool { return id < ledCount }

func (k *Keyboard) OutputProperties(id device.OutputID) (device.OutputProperties, bool) {
	if !k.IsOutputValid(id) {
		return device.OutputProperties{}, false
	}
	p := device.DefaultOutputProperties(ledNames[id])
	p.Type = device.OutputFlag
	p.Flags = device.OutputContinuous
	return p, true
}

func (k *Keyboard) SetOutput(id device.OutputID, v mgl64.Vec3) bool {
	if !k.IsOutputValid(id) {
		return false
	}
	k.setLED(id, v.X() != 0)
	return true
}

func (k *Keyboard) ResetOutput(id device.OutputID) bool {
	return k.SetOutput(id, mgl64.Vec3{})
}

// SendOutputData sets a LED from the first byte of data.
func (k *Keyboard) SendOutputData(id device.OutputID, data []byte) bool {
	if !k.IsOutputValid(id) || len(data) == 0 {
		return false
	}
	k.setLED(id, data[0] != 0)
	return true
}

// SetOutputCallback registers f to receive the encoded LEDState whenever
// LED id changes.
func (k *Keyboard) SetOutputCallback(id device.OutputID, f func([]byte)) bool {
	if !k.IsOutputValid(id) {
		return false
	}
	k.ledCallback[id] = f
	return true
}

func (k *Keyboard) EnableOutput(device.OutputID, bool) bool { return false }

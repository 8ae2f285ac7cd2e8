package keyboard_test

import (
	"math"
	"testing"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Alia5/inputmap/device"
	"github.com/Alia5/inputmap/device/keyboard"
	inputmapTesting "github.com/Alia5/inputmap/internal/testing"
)

func newKeyboard(t *testing.T) (*keyboard.Keyboard, *inputmapTesting.MockHost) {
	t.Helper()
	host := inputmapTesting.NewMockHost()
	return keyboard.New(&device.CreateOptions{Host: host}), host
}

func TestKeyNames(t *testing.T) {
	type testCase struct {
		key  keyboard.Key
		name string
	}

	cases := []testCase{
		{keyboard.KeyA, "A"},
		{keyboard.Key0, "0"},
		{keyboard.KeyEnter, "Return"},
		{keyboard.KeyMinus, "-"},
		{keyboard.KeyNonUSHash, "#"},
		{keyboard.KeyNumLock, "Numlock"},
		{keyboard.KeyKpSlash, "Keypad /"},
		{keyboard.KeyKpDot, "Keypad ."},
		{keyboard.KeyApplication, "Application"},
		{keyboard.KeyKpEqualAS400, "Keypad = (AS400)"},
		{keyboard.KeyClearAgain, "Clear / Again"},
		{keyboard.KeyKpDblVerticalBar, "Keypad ||"},
		{keyboard.KeyLeftCtrl, "Left Ctrl"},
		{keyboard.KeyRightGUI, "Right GUI"},
		{keyboard.Key(0x83), "Key 0x83"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.name, keyboard.KeyName(tc.key))
			assert.Equal(t, tc.name, tc.key.String())
		})
	}
}

func TestKeyByName(t *testing.T) {
	k, ok := keyboard.KeyByName("space")
	assert.True(t, ok)
	assert.Equal(t, keyboard.KeySpace, k)

	k, ok = keyboard.KeyByName("Return")
	assert.True(t, ok)
	assert.Equal(t, keyboard.KeyEnter, k, "lowest code wins for duplicated names")

	_, ok = keyboard.KeyByName("Hyper")
	assert.False(t, ok)
}

func TestKeyRepeat(t *testing.T) {
	kb, host := newKeyboard(t)

	kb.KeyPressed(keyboard.KeySpace)
	kb.KeyPressed(keyboard.KeySpace)
	kb.KeyPressed(keyboard.KeySpace)
	assert.Equal(t, 2, kb.RepeatCount(device.InputID(keyboard.KeySpace)))
	require.Len(t, host.Changes, 3)
	assert.False(t, host.Changes[0].Repeat)
	assert.True(t, host.Changes[1].Repeat)

	kb.KeyReleased(keyboard.KeySpace)
	assert.Equal(t, 0, kb.RepeatCount(device.InputID(keyboard.KeySpace)))
	assert.False(t, kb.IsKeyDown(keyboard.KeySpace))

	kb.KeyReleased(keyboard.KeySpace)
	assert.Len(t, host.Changes, 4, "releasing a released key is not activity")
}

func TestFrames(t *testing.T) {
	kb, _ := newKeyboard(t)
	id := device.InputID(keyboard.KeyW)

	kb.KeyPressed(keyboard.KeyW)
	assert.True(t, kb.IsInputPressed(id))
	assert.False(t, kb.WasInputPressedLastFrame(id))
	assert.Equal(t, 1.0, kb.InputValue(id))
	assert.True(t, kb.IsAnyInputActive())

	kb.NewFrame()
	assert.True(t, kb.WasInputPressedLastFrame(id))
	assert.Equal(t, 1.0, kb.InputValueLastFrame(id))

	kb.KeyReleased(keyboard.KeyW)
	assert.True(t, kb.WasInputPressedLastFrame(id), "last frame is only changed by NewFrame")
	assert.False(t, kb.IsAnyInputActive())
}

func TestInvalidInput(t *testing.T) {
	kb, host := newKeyboard(t)

	assert.False(t, kb.IsInputPressed(keyboard.MaxKey))
	assert.Equal(t, 0.0, kb.InputValue(keyboard.MaxKey+5))
	assert.Equal(t, 2, host.Len())

	_, ok := kb.PropertiesOf(keyboard.MaxKey)
	assert.False(t, ok)
}

func TestInjectNaNReleases(t *testing.T) {
	kb, _ := newKeyboard(t)
	id := device.InputID(keyboard.KeyA)

	require.True(t, kb.InjectInput(id, 1))
	require.True(t, kb.InjectInput(id, math.NaN()))
	assert.False(t, kb.IsInputPressed(id))
}

func TestProperties(t *testing.T) {
	kb, _ := newKeyboard(t)

	p, ok := kb.PropertiesOf(device.InputID(keyboard.KeyLeftShift))
	require.True(t, ok)
	assert.Equal(t, "Left Shift", p.Name)
	assert.True(t, p.Flags.Has(device.Digital))
	assert.True(t, p.Flags.Has(device.CanRepeat))
	assert.Equal(t, []uint16{0x07, 0xE1}, p.HIDUsage)
	assert.Equal(t, "keyboard/key_e1", p.GlyphURI)

	id, ok := device.LookupInput(kb, "Keypad Enter")
	assert.True(t, ok)
	assert.Equal(t, device.InputID(keyboard.KeyKpEnter), id)
}

func TestNavigation(t *testing.T) {
	type testCase struct {
		nav       device.Navigation
		supported bool
		key       keyboard.Key
	}

	cases := []testCase{
		{device.NavAccept, true, keyboard.KeyEnter},
		{device.NavCancel, true, keyboard.KeyEscape},
		{device.NavLeft, true, keyboard.KeyLeft},
		{device.NavRight, true, keyboard.KeyRight},
		{device.NavUp, true, keyboard.KeyUp},
		{device.NavDown, true, keyboard.KeyDown},
		{device.NavHome, true, keyboard.KeyHome},
		{device.NavEnd, true, keyboard.KeyEnd},
		{device.NavPageUp, true, keyboard.KeyPageUp},
		{device.NavPageDown, true, keyboard.KeyPageDown},
		{device.NavMenu, false, 0},
		{device.NavView, false, 0},
		{device.NavBack, false, 0},
		{device.NavForward, false, 0},
		{device.NavPageLeft, false, 0},
		{device.NavPageRight, false, 0},
		{device.NavScrollUp, false, 0},
		{device.NavScrollDown, false, 0},
		{device.NavScrollLeft, false, 0},
		{device.NavScrollRight, false, 0},
	}
	require.Len(t, cases, len(device.Navigations()))

	for _, tc := range cases {
		t.Run(tc.nav.String(), func(t *testing.T) {
			kb, _ := newKeyboard(t)
			assert.Equal(t, tc.supported, kb.CanTriggerNavigation(tc.nav))
			if !tc.supported {
				assert.False(t, kb.IsNavigationPressed(tc.nav))
				_, ok := kb.NavigationSource(tc.nav)
				assert.False(t, ok)
				return
			}
			src, ok := kb.NavigationSource(tc.nav)
			require.True(t, ok)
			assert.Equal(t, device.InputID(tc.key), src.Input)

			kb.KeyPressed(tc.key)
			assert.True(t, kb.IsNavigationPressed(tc.nav))
			assert.False(t, kb.WasNavigationPressedLastFrame(tc.nav))
			kb.NewFrame()
			assert.True(t, kb.WasNavigationPressedLastFrame(tc.nav))
		})
	}
}

func TestApplyWire(t *testing.T) {
	kb, _ := newKeyboard(t)

	st := keyboard.PressKeyWithMod(keyboard.ModLeftShift, keyboard.KeyA, keyboard.KeyB)
	data, err := st.MarshalBinary()
	require.NoError(t, err)
	assert.Equal(t, []byte{keyboard.ModLeftShift, 2, 0x04, 0x05}, data)

	require.NoError(t, kb.ApplyWire(data))
	assert.True(t, kb.IsKeyDown(keyboard.KeyA))
	assert.True(t, kb.IsKeyDown(keyboard.KeyB))
	assert.True(t, kb.IsKeyDown(keyboard.KeyLeftShift))
	assert.Equal(t, st, kb.State())

	require.NoError(t, kb.ApplyWire([]byte{0, 1, byte(keyboard.KeyB)}))
	assert.False(t, kb.IsKeyDown(keyboard.KeyA))
	assert.False(t, kb.IsKeyDown(keyboard.KeyLeftShift))
	assert.True(t, kb.IsKeyDown(keyboard.KeyB))

	assert.Error(t, kb.ApplyWire([]byte{0, 3, 1}))
	assert.Error(t, kb.ApplyWire(nil))
}

func TestTypeString(t *testing.T) {
	states := keyboard.TypeString("Hi!\x01")
	require.Len(t, states, 6)
	assert.Equal(t, keyboard.PressKeyWithMod(keyboard.ModLeftShift, keyboard.KeyH), states[0])
	assert.Equal(t, keyboard.Release(), states[1])
	assert.Equal(t, keyboard.PressKey(keyboard.KeyI), states[2])
	assert.True(t, states[4].Pressed(keyboard.Key1))
	assert.True(t, states[4].Pressed(keyboard.KeyLeftShift))
}

func TestLEDOutputs(t *testing.T) {
	kb, _ := newKeyboard(t)

	var got [][]byte
	require.True(t, kb.SetOutputCallback(keyboard.OutputCapsLock, func(b []byte) { got = append(got, b) }))
	assert.False(t, kb.SetOutputCallback(keyboard.OutputKana+1, nil))

	p, ok := kb.OutputProperties(keyboard.OutputCapsLock)
	require.True(t, ok)
	assert.Equal(t, "Caps Lock", p.Name)
	assert.Equal(t, device.OutputFlag, p.Type)

	assert.True(t, kb.SetOutput(keyboard.OutputCapsLock, mgl64.Vec3{1, 0, 0}))
	assert.True(t, kb.LEDs().CapsLock)
	require.Len(t, got, 1)
	assert.Equal(t, []byte{keyboard.LEDCapsLock}, got[0])

	assert.True(t, kb.SetOutput(keyboard.OutputCapsLock, mgl64.Vec3{1, 0, 0}))
	assert.Len(t, got, 1, "unchanged LED does not notify")

	kb.SetLEDs(keyboard.LEDState{NumLock: true})
	assert.Equal(t, keyboard.LEDState{NumLock: true}, kb.LEDs())
	require.Len(t, got, 2)
	assert.Equal(t, []byte{keyboard.LEDNumLock}, got[1])

	assert.True(t, kb.ResetOutput(keyboard.OutputNumLock))
	assert.False(t, kb.EnableOutput(keyboard.OutputNumLock, false))
}

func TestRegistered(t *testing.T) {
	d, err := device.Create("Keyboard", &device.CreateOptions{Name: "Desk"})
	require.NoError(t, err)
	assert.Equal(t, "Desk", d.Name())
	assert.Equal(t, device.RoleKeyboard, d.Role())
	assert.NotNil(t, d.Capabilities().Repeater)
}

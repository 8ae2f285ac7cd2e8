package mouse_test

import (
	"math"
	"testing"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Alia5/inputmap/device"
	"github.com/Alia5/inputmap/device/mouse"
	inputmapTesting "github.com/Alia5/inputmap/internal/testing"
)

func newMouse(t *testing.T) (*mouse.Mouse, *inputmapTesting.MockHost) {
	t.Helper()
	host := inputmapTesting.NewMockHost()
	return mouse.New(&device.CreateOptions{Host: host}), host
}

func TestLayout(t *testing.T) {
	m, _ := newMouse(t)
	assert.Equal(t, device.InputID(9), m.MaxInputID())
	assert.Equal(t, device.InputID(5), mouse.WheelVertical)
	assert.Equal(t, device.InputID(8), mouse.AxisY)

	type testCase struct {
		id      device.InputID
		name    string
		digital bool
		glyph   string
	}

	cases := []testCase{
		{mouse.Left.Input(), "Left", true, "ControllerGraphics/Keyboard & Mouse/Dark/Keyboard_White_Mouse_Left.png"},
		{mouse.Middle.Input(), "Middle", true, "ControllerGraphics/Keyboard & Mouse/Dark/Keyboard_White_Mouse_Middle.png"},
		{mouse.Button5.Input(), "Button5", true, ""},
		{mouse.WheelVertical, "Vertical Wheel", false, ""},
		{mouse.WheelHorizontal, "Horizontal Wheel", false, ""},
		{mouse.AxisX, "X Axis", false, ""},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			p, ok := m.PropertiesOf(tc.id)
			require.True(t, ok)
			assert.Equal(t, tc.name, p.Name)
			assert.Equal(t, tc.digital, p.Flags.Has(device.Digital))
			assert.Equal(t, tc.glyph, p.GlyphURI)
			assert.NoError(t, p.Validate())
		})
	}

	p, _ := m.PropertiesOf(mouse.WheelVertical)
	assert.True(t, math.IsInf(p.MinValue, -1))

	_, ok := m.PropertiesOf(mouse.InputCount)
	assert.False(t, ok)
}

func TestButtons(t *testing.T) {
	m, host := newMouse(t)

	m.ButtonPressed(mouse.Left)
	assert.True(t, m.Button(mouse.Left))
	assert.True(t, m.IsInputPressed(mouse.Left.Input()))
	assert.False(t, m.WasInputPressedLastFrame(mouse.Left.Input()))
	require.Len(t, host.Changes, 1)

	m.ButtonPressed(mouse.Left)
	assert.Len(t, host.Changes, 1)

	m.NewFrame()
	m.ButtonReleased(mouse.Left)
	assert.False(t, m.IsInputPressed(mouse.Left.Input()))
	assert.True(t, m.WasInputPressedLastFrame(mouse.Left.Input()))

	m.ButtonPressed(mouse.ButtonCount)
	assert.Len(t, host.Changes, 2)
}

func TestInjectNaN(t *testing.T) {
	m, host := newMouse(t)

	require.True(t, m.InjectInput(mouse.AxisX, math.NaN()))
	require.True(t, m.InjectInput(mouse.WheelVertical, math.NaN()))
	assert.Equal(t, mgl64.Vec2{}, m.Position())
	assert.Equal(t, 0.0, m.Wheel())
	assert.Empty(t, host.Changes)
}

func TestWheelResetsEachFrame(t *testing.T) {
	m, _ := newMouse(t)

	m.Scrolled(-1, 0)
	m.Scrolled(-2, 0)
	assert.Equal(t, -3.0, m.Wheel())
	assert.False(t, m.IsInputPressed(mouse.WheelVertical), "wheels are never pressed")
	assert.True(t, m.IsAnyInputActive())

	m.NewFrame()
	assert.Equal(t, 0.0, m.Wheel())
	assert.Equal(t, -3.0, m.InputValueLastFrame(mouse.WheelVertical))

	m.NewFrame()
	assert.Equal(t, 0.0, m.InputValueLastFrame(mouse.WheelVertical))
}

func TestNavigation(t *testing.T) {
	type testCase struct {
		nav       device.Navigation
		supported bool
		press     func(m *mouse.Mouse)
	}

	cases := []testCase{
		{device.NavAccept, true, func(m *mouse.Mouse) { m.ButtonPressed(mouse.Left) }},
		{device.NavCancel, true, func(m *mouse.Mouse) { m.ButtonPressed(mouse.Right) }},
		{device.NavScrollUp, true, func(m *mouse.Mouse) { m.Scrolled(-1, 0) }},
		{device.NavScrollDown, true, func(m *mouse.Mouse) { m.Scrolled(1, 0) }},
		{device.NavScrollLeft, true, func(m *mouse.Mouse) { m.Scrolled(-1, 1) }},
		{device.NavScrollRight, true, func(m *mouse.Mouse) { m.Scrolled(1, 1) }},
		{device.NavMenu, false, nil},
		{device.NavView, false, nil},
		{device.NavLeft, false, nil},
		{device.NavRight, false, nil},
		{device.NavUp, false, nil},
		{device.NavDown, false, nil},
		{device.NavHome, false, nil},
		{device.NavEnd, false, nil},
		{device.NavBack, false, nil},
		{device.NavForward, false, nil},
		{device.NavPageUp, false, nil},
		{device.NavPageDown, false, nil},
		{device.NavPageLeft, false, nil},
		{device.NavPageRight, false, nil},
	}
	require.Len(t, cases, len(device.Navigations()))

	for _, tc := range cases {
		t.Run(tc.nav.String(), func(t *testing.T) {
			m, _ := newMouse(t)
			assert.Equal(t, tc.supported, m.CanTriggerNavigation(tc.nav))
			if !tc.supported {
				assert.False(t, m.IsNavigationPressed(tc.nav))
				assert.False(t, m.WasNavigationPressedLastFrame(tc.nav))
				return
			}
			assert.False(t, m.IsNavigationPressed(tc.nav))
			tc.press(m)
			assert.True(t, m.IsNavigationPressed(tc.nav))
			m.NewFrame()
			assert.True(t, m.WasNavigationPressedLastFrame(tc.nav))
		})
	}
}

func TestApplyWire(t *testing.T) {
	m, _ := newMouse(t)
	m.Moved(100, 50)

	st := mouse.InputState{Buttons: mouse.BitLeft | mouse.BitButton5, DX: -10, DY: 5, Wheel: 1, Pan: -2}
	data, err := st.MarshalBinary()
	require.NoError(t, err)
	require.Len(t, data, mouse.ReportSize)

	require.NoError(t, m.ApplyWire(data))
	assert.True(t, m.Button(mouse.Left))
	assert.True(t, m.Button(mouse.Button5))
	assert.False(t, m.Button(mouse.Right))
	assert.Equal(t, mgl64.Vec2{90, 55}, m.Position())
	assert.Equal(t, -1.0, m.Wheel(), "wheel away from the user scrolls up")
	assert.Equal(t, -2.0, m.InputValue(mouse.WheelHorizontal))

	var back mouse.InputState
	require.NoError(t, back.UnmarshalBinary(data))
	assert.Equal(t, st, back)

	assert.Error(t, m.ApplyWire(data[:4]))
}

func TestMoveClampsToOrigin(t *testing.T) {
	m, _ := newMouse(t)
	m.ApplyState(mouse.InputState{DX: -5, DY: -5})
	assert.Equal(t, mgl64.Vec2{0, 0}, m.Position())
}

func TestCursorAndWarp(t *testing.T) {
	m, _ := newMouse(t)

	assert.True(t, m.IsCursorVisible())
	m.ShowCursor(false)
	assert.False(t, m.IsCursorVisible())

	assert.Equal(t, mouse.CursorDefault, m.CursorShape())
	assert.True(t, m.SetCursorShape(mouse.CursorLink))
	assert.False(t, m.SetCursorShape(mouse.CursorDrag))
	assert.Equal(t, mouse.CursorLink, m.CursorShape())

	assert.True(t, m.Warp(mgl64.Vec2{500, 500}))
	m.SetValidRegions(device.Rect{Min: mgl64.Vec2{0, 0}, Max: mgl64.Vec2{100, 100}})
	assert.False(t, m.Warp(mgl64.Vec2{500, 500}))
	assert.True(t, m.Warp(mgl64.Vec2{10, 20}))
	assert.Equal(t, mgl64.Vec2{10, 20}, m.Position())
	assert.Len(t, m.ValidRegions(), 1)
}

func TestInject(t *testing.T) {
	m, host := newMouse(t)

	assert.True(t, m.InjectInput(mouse.Right.Input(), 0.3))
	assert.Equal(t, 1.0, m.InputValue(mouse.Right.Input()))
	assert.True(t, m.InjectInput(mouse.AxisX, 42))
	assert.Equal(t, 42.0, m.Position().X())
	assert.False(t, m.InjectInput(mouse.InputCount, 1))
	assert.Equal(t, 1, host.Len())
}

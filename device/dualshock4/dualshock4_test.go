package dualshock4_test

import (
	"bytes"
	"testing"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Alia5/inputmap/device"
	"github.com/Alia5/inputmap/device/dualshock4"
	inputmapTesting "github.com/Alia5/inputmap/internal/testing"
)

func newController(t *testing.T) (*dualshock4.Controller, *inputmapTesting.MockHost) {
	t.Helper()
	host := inputmapTesting.NewMockHost()
	return dualshock4.New(&device.CreateOptions{Host: host}), host
}

func TestLayout(t *testing.T) {
	c, _ := newController(t)

	assert.Equal(t, device.InputID(31), c.MaxInputID())
	assert.Equal(t, 16, c.ButtonCount())
	assert.Equal(t, device.InputID(16), dualshock4.LeftStickX)
	assert.Equal(t, device.InputID(30), dualshock4.TouchContact)

	for id := device.InputID(0); id < dualshock4.InputCount; id++ {
		p, ok := c.PropertiesOf(id)
		require.True(t, ok)
		assert.NoError(t, p.Validate(), p.Name)
	}

	type testCase struct {
		id    device.InputID
		name  string
		glyph string
		unit  string
	}

	cases := []testCase{
		{dualshock4.Cross.Input(), "Cross", "ps/Cross", ""},
		{dualshock4.Touchpad.Input(), "Touchpad", "ps/Touchpad", ""},
		{dualshock4.L2, "L2", "ps/L2", ""},
		{dualshock4.GyroY, "Gyro Y", "", "°/s"},
		{dualshock4.AccelZ, "Accelerometer Z", "", "m/s²"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			p, _ := c.PropertiesOf(tc.id)
			assert.Equal(t, tc.name, p.Name)
			assert.Equal(t, tc.glyph, p.GlyphURI)
			assert.Equal(t, tc.unit, p.Unit)
		})
	}

	assert.InDelta(t, -dualshock4.StandardGravityMS2, c.InputValue(dualshock4.AccelZ), 0.01)
	assert.False(t, c.IsAnyInputActive())
}

func TestApplyWire(t *testing.T) {
	c, host := newController(t)

	st := dualshock4.InputState{
		Buttons:      dualshock4.MaskCross | dualshock4.MaskPS | dualshock4.MaskL2,
		DPad:         dualshock4.DPadUp | dualshock4.DPadLeft,
		LX:           127,
		LY:           -128,
		L2:           255,
		Touch1X:      960,
		Touch1Active: true,
		GyroX:        dualshock4.GyroDpsToRaw(90),
		AccelZ:       dualshock4.DefaultAccelZRaw,
	}
	data, err := st.MarshalBinary()
	require.NoError(t, err)
	require.Len(t, data, dualshock4.ReportSize)

	require.NoError(t, c.ApplyWire(data))
	assert.True(t, c.IsButtonPressed(int(dualshock4.Cross)))
	assert.True(t, c.IsButtonPressed(int(dualshock4.PS)))
	assert.True(t, c.IsButtonPressed(int(dualshock4.Up)))
	assert.True(t, c.IsButtonPressed(int(dualshock4.Left)))
	assert.False(t, c.IsButtonPressed(int(dualshock4.Circle)))
	assert.Equal(t, 1.0, c.InputValue(dualshock4.LeftStickX))
	assert.Equal(t, 1.0, c.InputValue(dualshock4.LeftStickY), "stick Y is flipped to point up")
	assert.Equal(t, 1.0, c.InputValue(dualshock4.L2))
	assert.Equal(t, 0.5, c.InputValue(dualshock4.TouchX))
	assert.True(t, c.IsInputPressed(dualshock4.TouchContact))
	assert.Equal(t, 90.0, c.InputValue(dualshock4.GyroX))
	assert.Len(t, host.Changes, 9, "motion changes are not activity")

	back := c.State()
	assert.Equal(t, st.Buttons, back.Buttons)
	assert.Equal(t, st.DPad, back.DPad)
	assert.Equal(t, st.LX, back.LX)
	assert.Equal(t, int8(-127), back.LY)
	assert.Equal(t, st.Touch1X, back.Touch1X)
	assert.True(t, back.Touch1Active)
	assert.Equal(t, st.GyroX, back.GyroX)
	assert.Equal(t, st.AccelZ, back.AccelZ)

	assert.Error(t, c.ApplyWire(data[:10]))
}

func TestMotionIsNotActivity(t *testing.T) {
	c, host := newController(t)

	c.ApplyState(dualshock4.InputState{
		GyroZ:  dualshock4.GyroDpsToRaw(-45),
		AccelX: dualshock4.AccelMS2ToRaw(2),
		AccelZ: dualshock4.DefaultAccelZRaw,
	})
	assert.Empty(t, host.Changes)
	assert.True(t, c.LastActiveTime().IsZero())
	assert.False(t, c.IsAnyInputActive())

	gyro, accel := c.Motion()
	assert.Equal(t, mgl64.Vec3{0, 0, -45}, gyro)
	assert.Equal(t, 2.0, accel.X())

	assert.True(t, c.InjectInput(dualshock4.Square.Input(), 0.3))
	assert.Equal(t, 1.0, c.InputValue(dualshock4.Square.Input()), "digital injection snaps to 1")
	assert.Len(t, host.Changes, 1)
}

func TestTouchReleaseClearsPosition(t *testing.T) {
	c, _ := newController(t)

	c.ApplyState(dualshock4.InputState{Touch1Active: true, Touch1X: 1920, Touch1Y: 471})
	assert.Equal(t, 1.0, c.InputValue(dualshock4.TouchX))
	assert.InDelta(t, 0.5, c.InputValue(dualshock4.TouchY), 1e-3)

	c.ApplyState(dualshock4.InputState{Touch1X: 1920})
	assert.Equal(t, 0.0, c.InputValue(dualshock4.TouchX))
	assert.False(t, c.IsInputPressed(dualshock4.TouchContact))
}

func TestReportStream(t *testing.T) {
	c, _ := newController(t)

	var buf bytes.Buffer
	for _, st := range []dualshock4.InputState{{Buttons: dualshock4.MaskCircle}, {DPad: dualshock4.DPadDown}} {
		data, err := st.MarshalBinary()
		require.NoError(t, err)
		buf.Write(data)
	}

	stream := device.NewReportStream(&buf, dualshock4.ReadReport, c)
	ok, err := stream.Next()
	require.NoError(t, err)
	assert.True(t, ok)
	assert.True(t, c.IsButtonPressed(int(dualshock4.Circle)))

	ok, err = stream.Next()
	require.NoError(t, err)
	assert.True(t, ok)
	assert.False(t, c.IsButtonPressed(int(dualshock4.Circle)))
	assert.True(t, c.IsButtonPressed(int(dualshock4.Down)))

	ok, err = stream.Next()
	assert.NoError(t, err)
	assert.False(t, ok)
}

func TestNavigation(t *testing.T) {
	type testCase struct {
		nav   device.Navigation
		input device.InputID
		value float64
	}

	cases := []testCase{
		{device.NavAccept, dualshock4.Cross.Input(), 1},
		{device.NavCancel, dualshock4.Circle.Input(), 1},
		{device.NavMenu, dualshock4.Options.Input(), 1},
		{device.NavView, dualshock4.Touchpad.Input(), 1},
		{device.NavUp, dualshock4.Up.Input(), 1},
		{device.NavBack, dualshock4.L1.Input(), 1},
		{device.NavForward, dualshock4.R1.Input(), 1},
		{device.NavPageDown, dualshock4.LeftStickX, 0.2},
		{device.NavScrollUp, dualshock4.RightStickX, -0.2},
	}

	for _, tc := range cases {
		t.Run(tc.nav.String(), func(t *testing.T) {
			c, _ := newController(t)
			src, ok := c.NavigationSource(tc.nav)
			require.True(t, ok)
			assert.Equal(t, tc.input, src.Input)

			assert.False(t, c.IsNavigationPressed(tc.nav))
			c.InjectInput(tc.input, tc.value)
			assert.True(t, c.IsNavigationPressed(tc.nav))
			assert.False(t, c.WasNavigationPressedLastFrame(tc.nav))
			c.NewFrame()
			assert.True(t, c.WasNavigationPressedLastFrame(tc.nav))
		})
	}

	c, _ := newController(t)
	assert.False(t, c.CanTriggerNavigation(device.NavHome))
	assert.False(t, c.CanTriggerNavigation(device.NavEnd))
}

func TestOutputs(t *testing.T) {
	c, _ := newController(t)

	var got []dualshock4.OutputState
	cb := func(b []byte) {
		var st dualshock4.OutputState
		require.NoError(t, st.UnmarshalBinary(b))
		got = append(got, st)
	}
	for id := device.OutputID(0); id < c.MaxOutputID(); id++ {
		require.True(t, c.SetOutputCallback(id, cb))
	}

	p, ok := c.OutputProperties(dualshock4.OutputLightBar)
	require.True(t, ok)
	assert.Equal(t, device.OutputColor, p.Type)
	p, _ = c.OutputProperties(dualshock4.OutputLargeMotor)
	assert.Equal(t, device.OutputVibration, p.Type)
	assert.Equal(t, "Large Motor", p.Name)

	assert.Equal(t, uint8(dualshock4.DefaultLedBlue), c.Feedback().LedBlue)

	assert.True(t, c.SetOutput(dualshock4.OutputLightBar, mgl64.Vec3{1, 0, 0.5}))
	small := dualshock4.OutputState{RumbleSmall: 51, RumbleLarge: 200}
	data, _ := small.MarshalBinary()
	assert.True(t, c.SendOutputData(dualshock4.OutputSmallMotor, data))

	require.Len(t, got, 2)
	assert.Equal(t, dualshock4.OutputState{LedRed: 255, LedBlue: 128}, got[0])
	assert.Equal(t, dualshock4.OutputState{RumbleSmall: 51, LedRed: 255, LedBlue: 128}, got[1])

	assert.True(t, c.EnableOutput(dualshock4.OutputLightBar, false))
	assert.Equal(t, mgl64.Vec3{}, c.LightBar())
	c.SetOutput(dualshock4.OutputLightBar, mgl64.Vec3{1, 1, 1})
	assert.Equal(t, mgl64.Vec3{}, c.LightBar(), "disabled light bar stays off")
	assert.Len(t, got, 3)

	assert.True(t, c.EnableOutput(dualshock4.OutputLightBar, true))
	assert.True(t, c.ResetOutput(dualshock4.OutputLightBar))
	assert.Equal(t, uint8(dualshock4.DefaultLedBlue), c.Feedback().LedBlue)

	assert.False(t, c.SetOutput(3, mgl64.Vec3{1, 0, 0}))
	assert.False(t, c.SendOutputData(dualshock4.OutputLargeMotor, []byte{1, 2}))
}

func TestParseButton(t *testing.T) {
	b, ok := dualshock4.ParseButton("touch pad")
	assert.True(t, ok)
	assert.Equal(t, dualshock4.Touchpad, b)

	_, ok = dualshock4.ParseButton("Guide")
	assert.False(t, ok)
}

func TestRegistered(t *testing.T) {
	host := inputmapTesting.NewMockHost()
	d, err := device.Create("DualShock4", &device.CreateOptions{Host: host, Player: 3})
	require.NoError(t, err)
	assert.Equal(t, "DualShock 4", d.Name())
	assert.Equal(t, device.RoleGamepad, d.Role())
	assert.Equal(t, device.PlayerID(3), d.AssociatedPlayer())
	assert.NotNil(t, d.Capabilities().Gamepad)
	assert.NotNil(t, d.Capabilities().Wire)
}

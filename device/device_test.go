package device_test

import (
	"math"
	"strings"
	"testing"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Alia5/inputmap/device"
	"github.com/Alia5/inputmap/diag"
	inputmapTesting "github.com/Alia5/inputmap/internal/testing"
)

func TestButtonProperties(t *testing.T) {
	p := device.ButtonProperties("Space", "glyph://space")

	assert.Equal(t, "Space", p.Name)
	assert.Equal(t, "glyph://space", p.GlyphURI)
	assert.True(t, p.Flags.Has(device.Digital))
	assert.True(t, p.Flags.Has(device.ReturnsToNeutral))
	assert.False(t, p.Flags.Has(device.HasDeadzone))
	assert.Equal(t, 0.0, p.MinValue)
	assert.Equal(t, 0.0, p.DeadZoneMin)
	assert.Equal(t, 0.0, p.DeadZoneMax)
	assert.Equal(t, 1.0, p.MaxValue)
	assert.Equal(t, 1.0, p.StepSize)
	assert.Equal(t, 0.5, p.PressedThreshold)
	assert.NoError(t, p.Validate())
}

func TestDefaultInputProperties(t *testing.T) {
	p := device.DefaultInputProperties("Axis")
	assert.Equal(t, -1.0, p.MinValue)
	assert.Equal(t, 0.0, p.NeutralValue)
	assert.Equal(t, 1.0, p.MaxValue)
	assert.Equal(t, -0.1, p.DeadZoneMin)
	assert.Equal(t, 0.1, p.DeadZoneMax)
	assert.Equal(t, 0.0, p.StepSize)
	assert.NoError(t, p.Validate())
}

func TestInputPropertiesValidate(t *testing.T) {
	type testCase struct {
		name    string
		mutate  func(p *device.InputProperties)
		wantErr bool
	}
	cases := []testCase{
		{name: "defaults", mutate: func(p *device.InputProperties) {}},
		{name: "neutral below min", mutate: func(p *device.InputProperties) { p.NeutralValue = -2 }, wantErr: true},
		{name: "neutral above max", mutate: func(p *device.InputProperties) { p.NeutralValue = 2 }, wantErr: true},
		{name: "dead zone min positive", mutate: func(p *device.InputProperties) { p.DeadZoneMin = 0.1 }, wantErr: true},
		{name: "dead zone max negative", mutate: func(p *device.InputProperties) { p.DeadZoneMax = -0.1 }, wantErr: true},
		{name: "trigger range", mutate: func(p *device.InputProperties) { *p = device.AxisProperties("LT", 0, 1) }},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			p := device.DefaultInputProperties("x")
			tc.mutate(&p)
			err := p.Validate()
			if tc.wantErr {
				assert.ErrorIs(t, err, device.ErrInvalidProperties)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestIsPressed(t *testing.T) {
	btn := device.ButtonProperties("A", "")
	assert.False(t, btn.IsPressed(0))
	assert.True(t, btn.IsPressed(1))

	axis := device.AxisProperties("X", -1, 1)
	assert.False(t, axis.IsPressed(0.49))
	assert.True(t, axis.IsPressed(0.5))
	assert.True(t, axis.IsPressed(-0.7))

	assert.True(t, axis.InDeadZone(0.05))
	assert.False(t, axis.InDeadZone(0.2))
	assert.Equal(t, 1.0, axis.Clamp(3))
	assert.Equal(t, -1.0, axis.Clamp(-3))
	assert.Equal(t, 0.0, axis.Clamp(math.NaN()))

	trigger := device.AxisProperties("T", 0, 1)
	assert.Equal(t, 0.0, trigger.Clamp(math.NaN()))
}

func TestNavigationDirection(t *testing.T) {
	type testCase struct {
		nav  device.Navigation
		want mgl64.Vec2
	}
	cases := []testCase{
		{device.NavAccept, mgl64.Vec2{}},
		{device.NavLeft, mgl64.Vec2{-1, 0}},
		{device.NavRight, mgl64.Vec2{1, 0}},
		{device.NavUp, mgl64.Vec2{0, -1}},
		{device.NavDown, mgl64.Vec2{0, 1}},
		{device.NavPageUp, mgl64.Vec2{0, -10}},
		{device.NavPageDown, mgl64.Vec2{0, 10}},
		{device.NavBack, mgl64.Vec2{-1, 0}},
		{device.NavScrollRight, mgl64.Vec2{1, 0}},
	}
	for _, tc := range cases {
		t.Run(tc.nav.String(), func(t *testing.T) {
			assert.Equal(t, tc.want, tc.nav.Direction())
		})
	}

	assert.True(t, math.IsInf(device.NavHome.Direction().Y(), -1))
	assert.True(t, math.IsInf(device.NavEnd.Direction().Y(), 1))
}

func TestParseNavigation(t *testing.T) {
	for _, n := range device.Navigations() {
		got, ok := device.ParseNavigation(n.String())
		assert.True(t, ok)
		assert.Equal(t, n, got)
	}
	n, ok := device.ParseNavigation("scrollup")
	assert.True(t, ok)
	assert.Equal(t, device.NavScrollUp, n)

	_, ok = device.ParseNavigation("Jump")
	assert.False(t, ok)
	assert.Len(t, device.Navigations(), 20)
}

func TestNavigationSource(t *testing.T) {
	host := inputmapTesting.NewMockHost()
	d := inputmapTesting.NewMockDevice(&device.CreateOptions{Host: host},
		device.ButtonProperties("A", ""),
		device.AxisProperties("X", -1, 1),
	)

	press := device.NavigationSource{Input: 0}
	left := device.NavigationSource{Input: 1, Sign: -1, Threshold: 0.1}
	right := device.NavigationSource{Input: 1, Sign: 1, Threshold: 0.1}

	d.Set(0, 1)
	d.Set(1, -0.1)
	assert.True(t, press.Pressed(d))
	assert.False(t, left.Pressed(d), "threshold is exclusive")

	d.Set(1, -0.5)
	assert.True(t, left.Pressed(d))
	assert.False(t, right.Pressed(d))
	assert.False(t, left.PressedLastFrame(d))

	d.NewFrame()
	assert.True(t, left.PressedLastFrame(d))
	assert.True(t, press.PressedLastFrame(d))

	assert.Equal(t, 1.0, press.InjectValue())
	assert.Equal(t, -1.0, left.InjectValue())
}

func TestFrameAdvanceCopies(t *testing.T) {
	var f device.Frame[[4]float64]
	f.Current[2] = 0.75
	f.Advance()
	f.Current[2] = 0.25
	assert.Equal(t, 0.75, f.Last[2])
	assert.Equal(t, 0.25, f.Current[2])
}

func TestFrameIsolation(t *testing.T) {
	host := inputmapTesting.NewMockHost()
	d := inputmapTesting.NewMockDevice(&device.CreateOptions{Host: host},
		device.AxisProperties("X", -1, 1),
		device.AxisProperties("Y", -1, 1),
		device.ButtonProperties("A", ""),
	)

	values := [][]float64{{0.3, -0.2, 1}, {1, 1, 0}, {-1, 0.4, 1}}
	for _, tick := range values {
		var before []float64
		for i, v := range tick {
			d.Set(device.InputID(i), v)
			before = append(before, d.InputValue(device.InputID(i)))
		}
		d.NewFrame()
		for i := range tick {
			assert.Equal(t, before[i], d.InputValueLastFrame(device.InputID(i)))
		}
	}
	assert.Equal(t, 0, host.Len())
}

func TestBaseReportInvalidInput(t *testing.T) {
	host := inputmapTesting.NewMockHost()
	d := inputmapTesting.NewMockDevice(&device.CreateOptions{Host: host, Name: "Pad"}, device.ButtonProperties("A", ""))

	assert.Equal(t, 0.0, d.InputValue(5))
	assert.False(t, d.IsInputPressed(device.InvalidInput))

	reps := host.Reports()
	require.Len(t, reps, 2)
	assert.Equal(t, diag.Error, reps[0].Severity)
	v, _ := reps[0].Field("Device")
	assert.Equal(t, "Pad", v)
	v, _ = reps[0].Field("Input")
	assert.Equal(t, "5", v)
	v, _ = reps[1].Field("Input")
	assert.Equal(t, "invalid", v)

	_, ok := d.PropertiesOf(9)
	assert.False(t, ok)
}

func TestBaseChanged(t *testing.T) {
	host := inputmapTesting.NewMockHost()
	d := inputmapTesting.NewMockDevice(&device.CreateOptions{Host: host, Player: 2}, device.ButtonProperties("A", ""))

	assert.Equal(t, device.PlayerID(2), d.AssociatedPlayer())
	assert.True(t, d.AssociatePlayer(3))
	assert.Equal(t, device.PlayerID(3), d.AssociatedPlayer())

	d.Set(0, 1)
	assert.Equal(t, host.Clock, d.LastActiveTime())
	require.Len(t, host.Changes, 1)
	assert.Same(t, d, host.Changes[0].Device)
	assert.Equal(t, device.InputID(0), host.Changes[0].Input)
	assert.Equal(t, 1.0, host.Changes[0].Value)
	assert.Equal(t, host.Clock, host.Changes[0].Time)
	assert.False(t, host.Changes[0].Repeat)

	d.Set(0, 1)
	assert.Len(t, host.Changes, 1, "unchanged value must not count as activity")

	name, ok := d.StringProperty(device.PropertyName, "")
	assert.True(t, ok)
	assert.Equal(t, "Mock Device", name)
	assert.True(t, d.IsActive())
	assert.Equal(t, device.StatusReady, d.Status())
}

func TestLookupInput(t *testing.T) {
	d := inputmapTesting.NewMockDevice(nil,
		device.ButtonProperties("Left Bumper", ""),
		device.AxisProperties("Left Stick X Axis", -1, 1),
	)
	id, ok := device.LookupInput(d, "left stick x axis")
	assert.True(t, ok)
	assert.Equal(t, device.InputID(1), id)

	_, ok = device.LookupInput(d, "Nope")
	assert.False(t, ok)
	_, ok = device.LookupInput(nil, "A")
	assert.False(t, ok)
}

func TestRegistry(t *testing.T) {
	tests := []struct {
		name         string
		registerName string
		lookupName   string
		shouldFind   bool
	}{
		{name: "register and retrieve exact match", registerName: "testdevice", lookupName: "testdevice", shouldFind: true},
		{name: "case insensitive lookup", registerName: "TestDevice", lookupName: "testdevice", shouldFind: true},
		{name: "case insensitive lookup uppercase", registerName: "mydevice", lookupName: "MYDEVICE", shouldFind: true},
		{name: "lookup non-existent device", registerName: "device1", lookupName: "device2", shouldFind: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			regName := tt.name + "_" + tt.registerName
			device.Register(regName, inputmapTesting.CreateMockFactory(t, tt.registerName, device.ButtonProperties("A", "")))

			lookupName := tt.name + "_" + tt.lookupName
			f := device.Lookup(lookupName)
			d, err := device.Create(lookupName, nil)

			if tt.shouldFind {
				require.NotNil(t, f)
				require.NoError(t, err)
				assert.Equal(t, tt.registerName, d.Name())
				assert.Contains(t, device.Types(), strings.ToLower(regName))
			} else {
				assert.Nil(t, f)
				assert.ErrorIs(t, err, device.ErrUnknownType)
			}
		})
	}
}

func TestClosestPointBetween(t *testing.T) {
	type testCase struct {
		name string
		r1   device.Ray
		r2   device.Ray
		want mgl64.Vec3
	}
	cases := []testCase{
		{
			name: "crossing rays",
			r1:   device.Ray{Position: mgl64.Vec3{-1, 0, 0}, Direction: mgl64.Vec3{1, 0, 1}},
			r2:   device.Ray{Position: mgl64.Vec3{1, 0, 0}, Direction: mgl64.Vec3{-1, 0, 1}},
			want: mgl64.Vec3{0, 0, 1},
		},
		{
			name: "skew rays",
			r1:   device.Ray{Position: mgl64.Vec3{0, 0, 0}, Direction: mgl64.Vec3{1, 0, 0}},
			r2:   device.Ray{Position: mgl64.Vec3{0, 1, 2}, Direction: mgl64.Vec3{0, 0, 1}},
			want: mgl64.Vec3{0, 0.5, 0},
		},
		{
			name: "parallel rays",
			r1:   device.Ray{Position: mgl64.Vec3{0, 0, 0}, Direction: mgl64.Vec3{0, 0, 1}},
			r2:   device.Ray{Position: mgl64.Vec3{2, 0, 0}, Direction: mgl64.Vec3{0, 0, 2}},
			want: mgl64.Vec3{1, 0, 0},
		},
		{
			name: "zero direction",
			r1:   device.Ray{Position: mgl64.Vec3{0, 2, 0}},
			r2:   device.Ray{Position: mgl64.Vec3{0, 0, 0}, Direction: mgl64.Vec3{1, 0, 0}},
			want: mgl64.Vec3{0, 1, 0},
		},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := device.ClosestPointBetween(tc.r1, tc.r2)
			assert.True(t, got.ApproxEqualThreshold(tc.want, 1e-9), "got %v want %v", got, tc.want)
		})
	}
}

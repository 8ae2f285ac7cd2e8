package spatial_test

import (
	"math"
	"testing"
	"time"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Alia5/inputmap/device"
	"github.com/Alia5/inputmap/device/spatial"
	"github.com/Alia5/inputmap/diag"
	inputmapTesting "github.com/Alia5/inputmap/internal/testing"
)

func assertVec3InDelta(t *testing.T, want, got mgl64.Vec3) {
	t.Helper()
	for i := 0; i < 3; i++ {
		assert.InDelta(t, want[i], got[i], 1e-6, "component %d of %v", i, got)
	}
}

func TestTrackerDefaults(t *testing.T) {
	host := inputmapTesting.NewMockHost()
	tr := spatial.NewTracker(&device.CreateOptions{Host: host})

	assert.Equal(t, device.RoleVirtualSpace, tr.Role())
	assert.Equal(t, spatial.TrackerInputCount, tr.MaxInputID())
	assert.Equal(t, mgl64.Vec3{}, spatial.Position(tr))
	assert.Equal(t, mgl64.QuatIdent(), spatial.Rotation(tr))
	assertVec3InDelta(t, spatial.DefaultForward, spatial.Direction(tr))
	assert.Nil(t, tr.Capabilities().Hand)
	assert.Nil(t, tr.Capabilities().Composite)
	assert.False(t, tr.IsAnyInputActive())

	p, ok := tr.PropertiesOf(spatial.PositionY)
	require.True(t, ok)
	assert.Equal(t, "m", p.Unit)
	assert.True(t, math.IsInf(p.MaxValue, 1))
	assert.NoError(t, p.Validate())

	assert.False(t, tr.InjectInput(spatial.HandSqueeze, 1))
	assert.Equal(t, 1, host.Count(diag.Error))
}

func TestPoseHelpers(t *testing.T) {
	tr := spatial.NewTracker(nil)
	rot := mgl64.QuatRotate(math.Pi/2, mgl64.Vec3{0, 1, 0})
	tr.SetPose(mgl64.Vec3{1, 2, 3}, rot)

	assert.Equal(t, mgl64.Vec3{1, 2, 3}, spatial.Position(tr))
	assertVec3InDelta(t, mgl64.Vec3{1, 0, 0}, spatial.Direction(tr))

	ray := spatial.RayOf(tr)
	assert.Equal(t, mgl64.Vec3{1, 2, 3}, ray.Position)

	m := spatial.Transform(tr)
	assertVec3InDelta(t, mgl64.Vec3{1, 2, 3}, mgl64.TransformCoordinate(mgl64.Vec3{}, m))
	assertVec3InDelta(t, mgl64.Vec3{2, 2, 3}, mgl64.TransformCoordinate(mgl64.Vec3{0, 0, 1}, m))

	tr.NewFrame()
	tr.InjectInput(spatial.PositionX, 5)
	assert.Equal(t, 1.0, tr.InputValueLastFrame(spatial.PositionX))
	assert.Equal(t, 5.0, tr.InputValue(spatial.PositionX))
}

func TestZeroRotationIsIdentity(t *testing.T) {
	tr := spatial.NewTracker(nil)
	tr.InjectInput(spatial.RotationW, 0)
	assert.Equal(t, mgl64.QuatIdent(), spatial.Rotation(tr))
}

func TestHand(t *testing.T) {
	h := spatial.NewHand(nil, device.SideLeft)

	assert.Equal(t, "Left Hand", h.Name())
	assert.Equal(t, device.RoleHandTracking, h.Role())
	assert.Equal(t, spatial.HandInputCount, h.MaxInputID())
	require.NotNil(t, h.Capabilities().Hand)
	assert.Equal(t, spatial.HandSqueeze, h.SqueezeInput())

	h.InjectInput(spatial.FingerIndex, 0.75)
	h.InjectInput(spatial.HandSqueeze, 2)
	assert.Equal(t, 0.75, spatial.FingerCurl(h, spatial.Index))
	assert.Equal(t, 1.0, spatial.Squeeze(h))
	assert.True(t, h.IsAnyInputActive())
	assert.True(t, h.IsInputPressed(spatial.FingerIndex))

	tr := spatial.NewTracker(nil)
	assert.Equal(t, 0.0, spatial.FingerCurl(tr, spatial.Index))
	assert.Equal(t, device.InvalidInput, tr.SqueezeInput())
}

func TestEyeFocusPosition(t *testing.T) {
	host := inputmapTesting.NewMockHost()
	eyes := spatial.NewEyePair(&device.CreateOptions{Host: host})

	assert.Equal(t, device.RoleEyeTracking, eyes.Role())
	assert.Equal(t, 2, eyes.SubDeviceCount())
	assert.True(t, eyes.Flags().Has(device.FlagComposite))

	left, ok := spatial.LeftEye(eyes)
	require.True(t, ok)
	assert.Equal(t, "Left Eye", left.Name())
	parent, ok := left.Capabilities().Composite.ParentDevice()
	require.True(t, ok)
	assert.Same(t, eyes, parent)

	target := mgl64.Vec3{0, 0, 2}
	host.Tick(time.Second)
	eyes.Gaze(mgl64.Vec3{-0.03, 0, 0}, mgl64.Vec3{0.03, 0, 0}, target)
	assertVec3InDelta(t, target, spatial.EyeFocusPosition(eyes))
	assert.Equal(t, host.Clock, eyes.LastActiveTime())

	tr := spatial.NewTracker(nil)
	focus := spatial.EyeFocusPosition(tr)
	assert.True(t, math.IsNaN(focus.X()))
}

func TestParallelGazeUsesMidpoint(t *testing.T) {
	eyes := spatial.NewEyePair(nil)
	eyes.Eye(spatial.LeftEyeIndex).SetPose(mgl64.Vec3{-1, 0, 0}, mgl64.QuatIdent())
	eyes.Eye(spatial.RightEyeIndex).SetPose(mgl64.Vec3{1, 0, 0}, mgl64.QuatIdent())

	assertVec3InDelta(t, mgl64.Vec3{}, spatial.EyeFocusPosition(eyes))
}

func TestSafetyFunction(t *testing.T) {
	type testCase struct {
		name      string
		proximity float64
		want      float64
	}

	cases := []testCase{
		{"center", 0, 1},
		{"halfway", 0.5, 0.0625},
		{"edge", 1, 0},
		{"outside", 2, 0},
		{"negative", -1, 1},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.InDelta(t, tc.want, spatial.SafetyFunction(tc.proximity), 1e-12)
		})
	}
}

func TestQueryEnvironSafety(t *testing.T) {
	rig := spatial.NewRig(nil)
	rig.SetExtents(mgl64.Vec3{4, 3, 4})

	assert.Equal(t, mgl64.Vec3{4, 3, 4}, spatial.EnvironExtents(rig))
	assert.InDelta(t, 1.0, spatial.QueryEnvironSafety(rig, mgl64.Vec3{}), 1e-12)
	assert.InDelta(t, 0.0625, spatial.QueryEnvironSafety(rig, mgl64.Vec3{1, 0, 0}), 1e-12)
	assert.InDelta(t, 0.0625, spatial.QueryEnvironSafety(rig, mgl64.Vec3{0, 0, -1}), 1e-12)
	assert.InDelta(t, 0.0, spatial.QueryEnvironSafety(rig, mgl64.Vec3{0, 1.5, 0}), 1e-12)

	rig.Tracker(spatial.HeadIndex).SetPose(mgl64.Vec3{1, 0, 0}, mgl64.QuatIdent())
	assert.InDelta(t, 0.0625, rig.Safety(), 1e-12)

	assert.Equal(t, 1.0, spatial.QueryEnvironSafety(spatial.NewTracker(nil), mgl64.Vec3{100, 0, 0}))
}

func TestRigLayout(t *testing.T) {
	rig := spatial.NewRig(nil)

	assert.Equal(t, 4, rig.SubDeviceCount())
	hands := rig.HandTrackers()
	left, ok := rig.SubDevice(hands[0])
	require.True(t, ok)
	assert.Equal(t, "Left Hand", left.Name())
	assert.NotNil(t, left.Capabilities().Hand)
	head, _ := rig.SubDevice(rig.HeadTracker())
	assert.Nil(t, head.Capabilities().Hand)

	_, ok = rig.SubDevice(4)
	assert.False(t, ok)

	rig.Tracker(spatial.RightHandIndex).InjectInput(spatial.HandSqueeze, 1)
	assert.True(t, rig.IsAnyInputActive())
	rig.NewFrame()
	right := rig.Tracker(spatial.RightHandIndex)
	assert.True(t, right.WasInputPressedLastFrame(spatial.HandSqueeze))
}

func TestRegistered(t *testing.T) {
	for _, name := range []string{"tracker", "lefthand", "righthand", "eyes", "roomscale"} {
		t.Run(name, func(t *testing.T) {
			d, err := device.Create(name, nil)
			require.NoError(t, err)
			assert.NotNil(t, d)
		})
	}
}

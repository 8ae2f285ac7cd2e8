package system_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Alia5/inputmap/device"
	"github.com/Alia5/inputmap/device/system"
	inputmapTesting "github.com/Alia5/inputmap/internal/testing"
)

func TestDefaults(t *testing.T) {
	s := system.New(nil)

	assert.Equal(t, "System", s.Name())
	assert.Equal(t, device.RoleSystem, s.Role())
	assert.True(t, s.Flags().Has(device.UniquePerSystem))
	assert.Equal(t, device.InputID(36), s.MaxInputID())
	assert.True(t, s.IsInputPressed(system.LidState))
	assert.False(t, s.IsAnyInputActive())
	assert.Equal(t, 1.0, s.Config(system.PreferredUIScale))
	assert.Equal(t, device.PowerWire, s.CurrentPowerSource())
}

func TestProperties(t *testing.T) {
	type testCase struct {
		id      device.InputID
		name    string
		digital bool
		unit    string
	}

	cases := []testCase{
		{system.LidState, "Lid State", true, ""},
		{system.PrevTrack, "Previous Track", true, ""},
		{system.BatteryCharge, "Battery Charge", false, "%"},
		{system.GPUTemperature, "GPU Temperature", false, "°C"},
		{system.NetworkConnectionMetered, "Network Connection Metered", true, ""},
	}

	s := system.New(nil)
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			p, ok := s.PropertiesOf(tc.id)
			require.True(t, ok)
			assert.Equal(t, tc.name, p.Name)
			assert.Equal(t, tc.digital, p.Flags.Has(device.Digital))
			assert.Equal(t, tc.unit, p.Unit)
			assert.NoError(t, p.Validate())
		})
	}

	_, ok := s.PropertiesOf(system.InputCount)
	assert.False(t, ok)
}

func TestSet(t *testing.T) {
	host := inputmapTesting.NewMockHost()
	s := system.New(&device.CreateOptions{Host: host})

	require.True(t, s.Set(system.BatteryCharge, 1.5))
	assert.Equal(t, 1.0, s.InputValue(system.BatteryCharge))
	require.True(t, s.Set(system.CPUTemperature, 71.5))
	assert.Equal(t, 71.5, s.InputValue(system.CPUTemperature))
	require.True(t, s.Set(system.Mute, 0.3))
	assert.Equal(t, 1.0, s.InputValue(system.Mute))
	assert.True(t, s.IsAnyInputActive())
	assert.Len(t, host.Changes, 3)

	s.NewFrame()
	s.SetBool(system.Mute, false)
	assert.True(t, s.WasInputPressedLastFrame(system.Mute))
	assert.False(t, s.IsInputPressed(system.Mute))

	assert.False(t, s.Set(system.InputCount, 1))
	assert.Equal(t, 1, host.Len())

	temps, ok := s.NumberProperty(device.InternalTemperature)
	require.True(t, ok)
	assert.Equal(t, 71.5, temps.X())
}

func TestPower(t *testing.T) {
	s := system.New(nil)
	power := s.Capabilities().Power
	require.NotNil(t, power)

	s.SetBool(system.OnBattery, true)
	assert.Equal(t, device.PowerInternalAccu, power.CurrentPowerSource())

	power.PutToSleep()
	assert.Equal(t, device.StatusAsleep, s.Status())
	assert.True(t, s.IsInputPressed(system.Sleep))
	power.WakeUp()
	assert.True(t, s.IsActive())
	assert.False(t, s.IsInputPressed(system.Sleep))

	power.RequestPowerMode(2)
	assert.Equal(t, 1.0, power.PowerMode())
}

func TestPreferences(t *testing.T) {
	s := system.New(nil)
	s.SetConfigFlags(system.DarkMode | system.HighContrast)
	s.SetColorblindness(system.RedGreenProtanopia)
	s.SetConfig(system.DPI, 144)

	assert.True(t, s.ConfigFlags().Has(system.DarkMode))
	assert.False(t, s.ConfigFlags().Has(system.LimitFlashing))
	assert.Equal(t, system.RedGreenProtanopia, s.Colorblindness())
	assert.Equal(t, 144.0, s.Config(system.DPI))
	assert.Equal(t, 0.0, s.Config(system.ConfigCount))
	assert.Equal(t, "Key Repeat Delay", system.KeyRepeatDelay.String())
	assert.Equal(t, system.BiometricInput(0x16), system.HeartRate)
}

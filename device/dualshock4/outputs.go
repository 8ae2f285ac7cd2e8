package dualshock4

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"

	"github.com/Alia5/inputmap/device"
)

// Feedback returns the current output command.
func (c *Controller) Feedback() OutputState { return c.out }

// LightBar returns the light bar color with components in [0, 1].
func (c *Controller) LightBar() mgl64.Vec3 {
	return mgl64.Vec3{
		NormalizeTrigger(c.out.LedRed),
		NormalizeTrigger(c.out.LedGreen),
		NormalizeTrigger(c.out.LedBlue),
	}
}

func (c *Controller) apply(id device.OutputID, next OutputState) {
	if c.disabled[id] {
		switch id {
		case OutputLargeMotor:
			next.RumbleLarge = 0
		case OutputSmallMotor:
			next.RumbleSmall = 0
		case OutputLightBar:
			next.LedRed, next.LedGreen, next.LedBlue = 0, 0, 0
		}
	}
	if next == c.out {
		return
	}
	c.out = next
	if cb := c.callback[id]; cb != nil {
		data, _ := c.out.MarshalBinary()
		cb(data)
	}
}

func (c *Controller) MaxOutputID() device.OutputID { return outputCount }

func (c *Controller) IsOutputValid(id device.OutputID) bool { return id < outputCount }

func (c *Controller) OutputProperties(id device.OutputID) (device.OutputProperties, bool) {
	if !c.IsOutputValid(id) {
		return device.OutputProperties{}, false
	}
	p := device.DefaultOutputProperties(outputNames[id])
	p.Flags = device.OutputContinuous | device.OutputCanBeDisabled
	if id == OutputLightBar {
		p.Type = device.OutputColor
		p.Resolution = mgl64.Vec3{1.0 / math.MaxUint8, 1.0 / math.MaxUint8, 1.0 / math.MaxUint8}
		return p, true
	}
	p.Type = device.OutputVibration
	p.Resolution = mgl64.Vec3{1.0 / math.MaxUint8, 0, 0}
	return p, true
}

// SetOutput sets a motor intensity from v.X() or the light bar color from
// v, with components clamped to [0, 1].
func (c *Controller) SetOutput(id device.OutputID, v mgl64.Vec3) bool {
	if !c.IsOutputValid(id) {
		return false
	}
	unit := func(f float64) uint8 { return rawUnit(math.Max(0, math.Min(1, f))) }
	next := c.out
	switch id {
	case OutputLargeMotor:
		next.RumbleLarge = unit(v.X())
	case OutputSmallMotor:
		next.RumbleSmall = unit(v.X())
	case OutputLightBar:
		next.LedRed, next.LedGreen, next.LedBlue = unit(v.X()), unit(v.Y()), unit(v.Z())
	}
	c.apply(id, next)
	return true
}

func (c *Controller) ResetOutput(id device.OutputID) bool {
	if id == OutputLightBar {
		return c.SetOutput(id, mgl64.Vec3{
			NormalizeTrigger(DefaultLedRed),
			NormalizeTrigger(DefaultLedGreen),
			NormalizeTrigger(DefaultLedBlue),
		})
	}
	return c.SetOutput(id, mgl64.Vec3{})
}

// SendOutputData accepts an encoded OutputState and applies the part
// selected by id. Flash timings travel with the light bar.
func (c *Controller) SendOutputData(id device.OutputID, data []byte) bool {
	if !c.IsOutputValid(id) {
		return false
	}
	var in OutputState
	if err := in.UnmarshalBinary(data); err != nil {
		return false
	}
	next := c.out
	switch id {
	case OutputLargeMotor:
		next.RumbleLarge = in.RumbleLarge
	case OutputSmallMotor:
		next.RumbleSmall = in.RumbleSmall
	case OutputLightBar:
		next.LedRed, next.LedGreen, next.LedBlue = in.LedRed, in.LedGreen, in.LedBlue
		next.FlashOn, next.FlashOff = in.FlashOn, in.FlashOff
	}
	c.apply(id, next)
	return true
}

// SetOutputCallback registers f to receive the encoded OutputState whenever
// output id changes.
func (c *Controller) SetOutputCallback(id device.OutputID, f func([]byte)) bool {
	if !c.IsOutputValid(id) {
		return false
	}
	c.callback[id] = f
	return true
}

// EnableOutput enables or disables an output. Disabling turns it off.
func (c *Controller) EnableOutput(id device.OutputID, enable bool) bool {
	if !c.IsOutputValid(id) {
		return false
	}
	c.disabled[id] = !enable
	if !enable {
		c.apply(id, c.out)
	}
	return true
}

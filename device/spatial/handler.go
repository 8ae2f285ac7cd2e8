package spatial

import "github.com/Alia5/inputmap/device"

func init() {
	device.Register("tracker", func(o *device.CreateOptions) (device.Device, error) {
		return NewTracker(o), nil
	})
	device.Register("lefthand", func(o *device.CreateOptions) (device.Device, error) {
		return NewHand(o, device.SideLeft), nil
	})
	device.Register("righthand", func(o *device.CreateOptions) (device.Device, error) {
		return NewHand(o, device.SideRight), nil
	})
	device.Register("eyes", func(o *device.CreateOptions) (device.Device, error) {
		return NewEyePair(o), nil
	})
	device.Register("roomscale", func(o *device.CreateOptions) (device.Device, error) {
		return NewRig(o), nil
	})
}

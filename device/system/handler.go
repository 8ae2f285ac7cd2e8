package system

import "github.com/Alia5/inputmap/device"

func init() {
	device.Register("system", func(o *device.CreateOptions) (device.Device, error) {
		return New(o), nil
	})
}

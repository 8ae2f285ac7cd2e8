package dualshock4

import "github.com/Alia5/inputmap/device"

func init() {
	device.Register("dualshock4", func(o *device.CreateOptions) (device.Device, error) {
		return New(o), nil
	})
}

// ReadReport reads one InputState report.
var ReadReport = device.FixedReports(ReportSize)

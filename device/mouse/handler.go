package mouse

import "github.com/Alia5/inputmap/device"

func init() {
	device.Register("mouse", func(o *device.CreateOptions) (device.Device, error) {
		return New(o), nil
	})
}

// ReadReport reads one InputState report.
var ReadReport = device.FixedReports(ReportSize)

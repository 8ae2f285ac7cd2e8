package keyboard

import (
	"io"

	"github.com/Alia5/inputmap/device"
)

func init() {
	device.Register("keyboard", func(o *device.CreateOptions) (device.Device, error) {
		return New(o), nil
	})
}

// ReadReport reads one variable-length InputState report.
func ReadReport(r io.Reader) ([]byte, error) {
	head := make([]byte, 2)
	if _, err := io.ReadFull(r, head); err != nil {
		return nil, err
	}
	b := make([]byte, 2+int(head[1]))
	copy(b, head)
	if _, err := io.ReadFull(r, b[2:]); err != nil {
		return nil, err
	}
	return b, nil
}

package device

import "encoding"

// WireDecoder applies a backend's binary input report to the current frame.
type WireDecoder interface {
	ApplyWire(data []byte) error
}

// WireState is a typed input report with a binary wire form.
type WireState interface {
	encoding.BinaryMarshaler
	encoding.BinaryUnmarshaler
}

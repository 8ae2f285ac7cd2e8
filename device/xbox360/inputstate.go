package xbox360

import (
	"encoding/binary"
	"io"
	"math"
)

// InputState is a controller report in XInput's layout.
type InputState struct {
	// Button bitfield (lower 16 bits used typically), higher bits reserved
	Buttons uint32
	// Triggers: 0-255
	LT, RT uint8
	// Sticks: signed 16-bit, Y positive is up
	LX, LY   int16
	RX, RY   int16
	Reserved [6]byte
}

// ReportSize is the encoded size of an InputState.
const ReportSize = 20

// MarshalBinary encodes the fields in order, little endian.
func (x *InputState) MarshalBinary() ([]byte, error) {
	return binary.Append(make([]byte, 0, ReportSize), binary.LittleEndian, x)
}

func (x *InputState) UnmarshalBinary(data []byte) error {
	if len(data) < ReportSize {
		return io.ErrUnexpectedEOF
	}
	_, err := binary.Decode(data[:ReportSize], binary.LittleEndian, x)
	return err
}

// NormalizeStick maps a raw stick value to [-1, 1].
func NormalizeStick(v int16) float64 {
	return math.Max(-1, float64(v)/math.MaxInt16)
}

// NormalizeTrigger maps a raw trigger value to [0, 1].
func NormalizeTrigger(v uint8) float64 {
	return float64(v) / math.MaxUint8
}

// RumbleState is the motor command delivered to rumble output callbacks.
//
//	LeftMotor: 1 byte (0-255)
//	RightMotor: 1 byte (0-255)
type RumbleState struct {
	LeftMotor  uint8
	RightMotor uint8
}

// MarshalBinary encodes RumbleState to 2 bytes.
func (r *RumbleState) MarshalBinary() ([]byte, error) {
	return []byte{r.LeftMotor, r.RightMotor}, nil
}

// UnmarshalBinary decodes 2 bytes into RumbleState.
func (r *RumbleState) UnmarshalBinary(data []byte) error {
	if len(data) < 2 {
		return io.ErrUnexpectedEOF
	}
	r.LeftMotor = data[0]
	r.RightMotor = data[1]
	return nil
}

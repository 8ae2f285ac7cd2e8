package dualshock4

import (
	"encoding/binary"
	"io"
)

// InputState is a controller report. Stick Y is positive downwards, as on
// the controller itself.
//
// The wire form is the fields in order, little endian, bools as one byte.
type InputState struct {
	LX, LY  int8
	RX, RY  int8
	Buttons uint16
	DPad    uint8
	L2, R2  uint8

	Touch1X, Touch1Y uint16
	Touch1Active     bool
	Touch2X, Touch2Y uint16
	Touch2Active     bool

	GyroX, GyroY, GyroZ    int16
	AccelX, AccelY, AccelZ int16
}

// ReportSize is the encoded size of an InputState.
const ReportSize = 31

func (s *InputState) MarshalBinary() ([]byte, error) {
	return binary.Append(make([]byte, 0, ReportSize), binary.LittleEndian, s)
}

func (s *InputState) UnmarshalBinary(data []byte) error {
	if len(data) < ReportSize {
		return io.ErrUnexpectedEOF
	}
	_, err := binary.Decode(data[:ReportSize], binary.LittleEndian, s)
	return err
}

// OutputState is the feedback command delivered to output callbacks.
type OutputState struct {
	RumbleSmall uint8
	RumbleLarge uint8
	LedRed      uint8
	LedGreen    uint8
	LedBlue     uint8
	// Flash times are in units of 2.5 ms.
	FlashOn  uint8
	FlashOff uint8
}

// OutputSize is the encoded size of an OutputState.
const OutputSize = 7

func (f *OutputState) MarshalBinary() ([]byte, error) {
	return []byte{f.RumbleSmall, f.RumbleLarge, f.LedRed, f.LedGreen, f.LedBlue, f.FlashOn, f.FlashOff}, nil
}

func (f *OutputState) UnmarshalBinary(data []byte) error {
	if len(data) < OutputSize {
		return io.ErrUnexpectedEOF
	}
	*f = OutputState{
		RumbleSmall: data[0],
		RumbleLarge: data[1],
		LedRed:      data[2],
		LedGreen:    data[3],
		LedBlue:     data[4],
		FlashOn:     data[5],
		FlashOff:    data[6],
	}
	return nil
}

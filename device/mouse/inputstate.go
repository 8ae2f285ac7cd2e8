package mouse

import (
	"encoding/binary"
	"io"
)

// InputState is a relative mouse report as delivered by a backend.
type InputState struct {
	// Button bitfield: bit 0=Left, 1=Right, 2=Middle, 3=Back, 4=Forward
	Buttons uint8
	// Delta X/Y: signed 16-bit relative movement
	DX, DY int16
	// Wheel: signed 16-bit vertical scroll, positive away from the user
	Wheel int16
	// Pan: signed 16-bit horizontal scroll, positive to the right
	Pan int16
}

// ReportSize is the encoded size of an InputState.
const ReportSize = 9

// Pressed reports whether button b is set.
func (m InputState) Pressed(b Button) bool {
	return b.Valid() && m.Buttons&(1<<uint(b)) != 0
}

// MarshalBinary encodes InputState to 9 bytes.
//
// Layout:
//
//	Byte 0: Button bitfield
//	Bytes 1-2: DX (int16 little-endian)
//	Bytes 3-4: DY (int16 little-endian)
//	Bytes 5-6: Wheel (int16 little-endian)
//	Bytes 7-8: Pan (int16 little-endian)
func (m *InputState) MarshalBinary() ([]byte, error) {
	b := make([]byte, ReportSize)
	b[0] = m.Buttons
	binary.LittleEndian.PutUint16(b[1:3], uint16(m.DX))
	binary.LittleEndian.PutUint16(b[3:5], uint16(m.DY))
	binary.LittleEndian.PutUint16(b[5:7], uint16(m.Wheel))
	binary.LittleEndian.PutUint16(b[7:9], uint16(m.Pan))
	return b, nil
}

// UnmarshalBinary decodes 9 bytes into InputState.
func (m *InputState) UnmarshalBinary(data []byte) error {
	if len(data) < ReportSize {
		return io.ErrUnexpectedEOF
	}
	m.Buttons = data[0]
	m.DX = int16(binary.LittleEndian.Uint16(data[1:3]))
	m.DY = int16(binary.LittleEndian.Uint16(data[3:5]))
	m.Wheel = int16(binary.LittleEndian.Uint16(data[5:7]))
	m.Pan = int16(binary.LittleEndian.Uint16(data[7:9]))
	return nil
}

package keyboard

import (
	"io"
)

// InputState is a full keyboard snapshot as delivered by a backend.
// Internally uses a 256-bit bitmap for N-key rollover support.
type InputState struct {
	Modifiers uint8     // bit 0-7: LCtrl, LShift, LAlt, LGui, RCtrl, RShift, RAlt, RGui
	KeyBitmap [32]uint8 // 256 bits for HID usage codes 0x00-0xFF
}

// Pressed reports whether k is down, either in the bitmap or as a modifier bit.
func (st InputState) Pressed(k Key) bool {
	if st.KeyBitmap[k/8]&(1<<(k%8)) != 0 {
		return true
	}
	if bit, ok := modifierBit(k); ok {
		return st.Modifiers&bit != 0
	}
	return false
}

func modifierBit(k Key) (uint8, bool) {
	for i, mk := range modifierKeys {
		if mk == k {
			return 1 << uint(i), true
		}
	}
	return 0, false
}

// Keys returns the pressed keys of the bitmap in code order.
func (st InputState) Keys() []Key {
	var keys []Key
	for i := 0; i < MaxKey; i++ {
		if st.KeyBitmap[i/8]&(1<<uint(i%8)) != 0 {
			keys = append(keys, Key(i))
		}
	}
	return keys
}

// LEDState represents the state of the keyboard LEDs.
type LEDState struct {
	NumLock    bool
	CapsLock   bool
	ScrollLock bool
	Compose    bool
	Kana       bool
}

// MarshalBinary encodes LEDState as a 1-byte bitmask.
func (st LEDState) MarshalBinary() ([]byte, error) {
	var b uint8
	if st.NumLock {
		b |= LEDNumLock
	}
	if st.CapsLock {
		b |= LEDCapsLock
	}
	if st.ScrollLock {
		b |= LEDScrollLock
	}
	if st.Compose {
		b |= LEDCompose
	}
	if st.Kana {
		b |= LEDKana
	}
	return []byte{b}, nil
}

// UnmarshalBinary decodes a 1-byte LED bitmask into LEDState.
// Bits are defined by LEDNumLock, LEDCapsLock, LEDScrollLock, LEDCompose, LEDKana.
func (st *LEDState) UnmarshalBinary(data []byte) error {
	if len(data) < 1 {
		return io.ErrUnexpectedEOF
	}
	b := data[0]
	st.NumLock = b&LEDNumLock != 0
	st.CapsLock = b&LEDCapsLock != 0
	st.ScrollLock = b&LEDScrollLock != 0
	st.Compose = b&LEDCompose != 0
	st.Kana = b&LEDKana != 0
	return nil
}

// MarshalBinary encodes InputState to variable-length wire format.
//
// Wire format:
//
//	Byte 0: Modifiers
//	Byte 1: Key count
//	Bytes 2+: Key codes (HID usage codes of pressed keys)
func (st *InputState) MarshalBinary() ([]byte, error) {
	keys := st.Keys()
	b := make([]byte, 2+len(keys))
	b[0] = st.Modifiers
	b[1] = uint8(len(keys))
	for i, k := range keys {
		b[2+i] = uint8(k)
	}
	return b, nil
}

// UnmarshalBinary decodes the variable-length wire format into InputState.
func (st *InputState) UnmarshalBinary(data []byte) error {
	if len(data) < 2 {
		return io.ErrUnexpectedEOF
	}

	st.Modifiers = data[0]
	keyCount := int(data[1])

	if len(data) < 2+keyCount {
		return io.ErrUnexpectedEOF
	}

	for i := range st.KeyBitmap {
		st.KeyBitmap[i] = 0
	}
	for i := 0; i < keyCount; i++ {
		keyCode := data[2+i]
		st.KeyBitmap[keyCode/8] |= 1 << (keyCode % 8)
	}

	return nil
}

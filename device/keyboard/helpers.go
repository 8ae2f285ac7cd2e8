package keyboard

// CharToKey maps ASCII characters to their corresponding keys.
// For shifted characters (uppercase, symbols), use with NeedsShift().
var CharToKey = map[byte]Key{
	'a': KeyA, 'b': KeyB, 'c': KeyC, 'd': KeyD, 'e': KeyE, 'f': KeyF, 'g': KeyG,
	'h': KeyH, 'i': KeyI, 'j': KeyJ, 'k': KeyK, 'l': KeyL, 'm': KeyM, 'n': KeyN,
	'o': KeyO, 'p': KeyP, 'q': KeyQ, 'r': KeyR, 's': KeyS, 't': KeyT, 'u': KeyU,
	'v': KeyV, 'w': KeyW, 'x': KeyX, 'y': KeyY, 'z': KeyZ,

	'A': KeyA, 'B': KeyB, 'C': KeyC, 'D': KeyD, 'E': KeyE, 'F': KeyF, 'G': KeyG,
	'H': KeyH, 'I': KeyI, 'J': KeyJ, 'K': KeyK, 'L': KeyL, 'M': KeyM, 'N': KeyN,
	'O': KeyO, 'P': KeyP, 'Q': KeyQ, 'R': KeyR, 'S': KeyS, 'T': KeyT, 'U': KeyU,
	'V': KeyV, 'W': KeyW, 'X': KeyX, 'Y': KeyY, 'Z': KeyZ,

	'1': Key1, '2': Key2, '3': Key3, '4': Key4, '5': Key5,
	'6': Key6, '7': Key7, '8': Key8, '9': Key9, '0': Key0,

	'!': Key1, '@': Key2, '#': Key3, '$': Key4, '%': Key5,
	'^': Key6, '&': Key7, '*': Key8, '(': Key9, ')': Key0,

	'-':  KeyMinus,
	'=':  KeyEqual,
	'[':  KeyLeftBrace,
	']':  KeyRightBrace,
	'\\': KeyBackslash,
	';':  KeySemicolon,
	'\'': KeyApostrophe,
	'`':  KeyGrave,
	',':  KeyComma,
	'.':  KeyPeriod,
	'/':  KeySlash,

	'_': KeyMinus,
	'+': KeyEqual,
	'{': KeyLeftBrace,
	'}': KeyRightBrace,
	'|': KeyBackslash,
	':': KeySemicolon,
	'"': KeyApostrophe,
	'~': KeyGrave,
	'<': KeyComma,
	'>': KeyPeriod,
	'?': KeySlash,

	' ':  KeySpace,
	'\n': KeyEnter,
	'\r': KeyEnter,
	'\t': KeyTab,
}

// ShiftChars defines which characters require the Shift modifier.
var ShiftChars = map[byte]bool{
	'A': true, 'B': true, 'C': true, 'D': true, 'E': true, 'F': true, 'G': true,
	'H': true, 'I': true, 'J': true, 'K': true, 'L': true, 'M': true, 'N': true,
	'O': true, 'P': true, 'Q': true, 'R': true, 'S': true, 'T': true, 'U': true,
	'V': true, 'W': true, 'X': true, 'Y': true, 'Z': true,

	'!': true, '@': true, '#': true, '$': true, '%': true,
	'^': true, '&': true, '*': true, '(': true, ')': true,

	'_': true, '+': true, '{': true, '}': true, '|': true,
	':': true, '"': true, '~': true, '<': true, '>': true, '?': true,
}

// CharToHID converts an ASCII character to its key.
// Returns KeyNone if the character is not supported.
func CharToHID(c byte) Key {
	if code, ok := CharToKey[c]; ok {
		return code
	}
	return KeyNone
}

// NeedsShift returns true if the character requires the Shift modifier.
func NeedsShift(c byte) bool {
	return ShiftChars[c]
}

// TypeString converts a string into a sequence of InputState press/release pairs.
// Unsupported characters are skipped.
//
// Example:
//
//	states := TypeString("Hi!")
//	// Returns: [Press Shift+H, Release, Press i, Release, Press Shift+1, Release]
func TypeString(s string) []InputState {
	var states []InputState
	for i := 0; i < len(s); i++ {
		press, release, ok := TypeChar(s[i])
		if !ok {
			continue
		}
		states = append(states, press, release)
	}
	return states
}

// TypeChar converts a single character to a press/release InputState pair.
// Automatically adds Shift modifier if needed.
func TypeChar(c byte) (press, release InputState, ok bool) {
	key := CharToHID(c)
	if key == KeyNone {
		return InputState{}, InputState{}, false
	}

	modifiers := uint8(0)
	if NeedsShift(c) {
		modifiers = ModLeftShift
	}
	return PressKeyWithMod(modifiers, key), Release(), true
}

// PressKey creates an InputState with the specified keys pressed.
//
// Example:
//
//	state := PressKey(KeyA, KeyB) // Press A and B simultaneously
func PressKey(keys ...Key) InputState {
	return PressKeyWithMod(0, keys...)
}

// PressKeyWithMod creates an InputState with modifiers and keys pressed.
//
// Example:
//
//	state := PressKeyWithMod(ModLeftCtrl, KeyC) // Ctrl+C
func PressKeyWithMod(modifiers uint8, keys ...Key) InputState {
	var state InputState
	state.Modifiers = modifiers
	for _, key := range keys {
		state.KeyBitmap[key/8] |= 1 << (key % 8)
	}
	return state
}

// Release creates an empty InputState with all keys released.
func Release() InputState {
	return InputState{}
}

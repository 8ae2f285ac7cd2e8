package keyboard

// Modifier key bitmasks
const (
	ModLeftCtrl   = 0x01
	ModLeftShift  = 0x02
	ModLeftAlt    = 0x04
	ModLeftGUI    = 0x08 // Windows/Command key
	ModRightCtrl  = 0x10
	ModRightShift = 0x20
	ModRightAlt   = 0x40
	ModRightGUI   = 0x80
)

// LED bitmasks
const (
	LEDNumLock    = 0x01
	LEDCapsLock   = 0x02
	LEDScrollLock = 0x04
	LEDCompose    = 0x08
	LEDKana       = 0x10
)

// Key is a physical key identified by its HID usage code (Keyboard/Keypad
// usage page). Keys are scancodes: they do not depend on the layout.
type Key uint8

// MaxKey is the exclusive upper bound of key input ids.
const MaxKey = 0x100

const (
	KeyNone Key = 0x00

	// Letters A-Z
	KeyA Key = 0x04
	KeyB Key = 0x05
	KeyC Key = 0x06
	KeyD Key = 0x07
	KeyE Key = 0x08
	KeyF Key = 0x09
	KeyG Key = 0x0A
	KeyH Key = 0x0B
	KeyI Key = 0x0C
	KeyJ Key = 0x0D
	KeyK Key = 0x0E
	KeyL Key = 0x0F
	KeyM Key = 0x10
	KeyN Key = 0x11
	KeyO Key = 0x12
	KeyP Key = 0x13
	KeyQ Key = 0x14
	KeyR Key = 0x15
	KeyS Key = 0x16
	KeyT Key = 0x17
	KeyU Key = 0x18
	KeyV Key = 0x19
	KeyW Key = 0x1A
	KeyX Key = 0x1B
	KeyY Key = 0x1C
	KeyZ Key = 0x1D

	// Numbers 1-0 (top row)
	Key1 Key = 0x1E
	Key2 Key = 0x1F
	Key3 Key = 0x20
	Key4 Key = 0x21
	Key5 Key = 0x22
	Key6 Key = 0x23
	Key7 Key = 0x24
	Key8 Key = 0x25
	Key9 Key = 0x26
	Key0 Key = 0x27

	KeyEnter      Key = 0x28
	KeyEscape     Key = 0x29
	KeyBackspace  Key = 0x2A
	KeyTab        Key = 0x2B
	KeySpace      Key = 0x2C
	KeyMinus      Key = 0x2D // - and _
	KeyEqual      Key = 0x2E // = and +
	KeyLeftBrace  Key = 0x2F // [ and {
	KeyRightBrace Key = 0x30 // ] and }
	KeyBackslash  Key = 0x31 // \ and |
	KeyNonUSHash  Key = 0x32 // Non-US # and ~
	KeySemicolon  Key = 0x33 // ; and :
	KeyApostrophe Key = 0x34 // ' and "
	KeyGrave      Key = 0x35 // ` and ~
	KeyComma      Key = 0x36 // , and <
	KeyPeriod     Key = 0x37 // . and >
	KeySlash      Key = 0x38 // / and ?
	KeyCapsLock   Key = 0x39

	KeyF1  Key = 0x3A
	KeyF2  Key = 0x3B
	KeyF3  Key = 0x3C
	KeyF4  Key = 0x3D
	KeyF5  Key = 0x3E
	KeyF6  Key = 0x3F
	KeyF7  Key = 0x40
	KeyF8  Key = 0x41
	KeyF9  Key = 0x42
	KeyF10 Key = 0x43
	KeyF11 Key = 0x44
	KeyF12 Key = 0x45

	KeyPrintScreen Key = 0x46
	KeyScrollLock  Key = 0x47
	KeyPause       Key = 0x48
	KeyInsert      Key = 0x49
	KeyHome        Key = 0x4A
	KeyPageUp      Key = 0x4B
	KeyDelete      Key = 0x4C
	KeyEnd         Key = 0x4D
	KeyPageDown    Key = 0x4E

	KeyRight Key = 0x4F
	KeyLeft  Key = 0x50
	KeyDown  Key = 0x51
	KeyUp    Key = 0x52

	// Numpad
	KeyNumLock    Key = 0x53
	KeyKpSlash    Key = 0x54
	KeyKpAsterisk Key = 0x55
	KeyKpMinus    Key = 0x56
	KeyKpPlus     Key = 0x57
	KeyKpEnter    Key = 0x58
	KeyKp1        Key = 0x59 // and End
	KeyKp2        Key = 0x5A // and Down
	KeyKp3        Key = 0x5B // and PageDn
	KeyKp4        Key = 0x5C // and Left
	KeyKp5        Key = 0x5D
	KeyKp6        Key = 0x5E // and Right
	KeyKp7        Key = 0x5F // and Home
	KeyKp8        Key = 0x60 // and Up
	KeyKp9        Key = 0x61 // and PageUp
	KeyKp0        Key = 0x62 // and Insert
	KeyKpDot      Key = 0x63 // and Delete

	KeyNonUSBackslash Key = 0x64 // Non-US \ and |
	KeyApplication    Key = 0x65 // Windows Menu key
	KeyPower          Key = 0x66
	KeyKpEqual        Key = 0x67

	KeyF13 Key = 0x68
	KeyF14 Key = 0x69
	KeyF15 Key = 0x6A
	KeyF16 Key = 0x6B
	KeyF17 Key = 0x6C
	KeyF18 Key = 0x6D
	KeyF19 Key = 0x6E
	KeyF20 Key = 0x6F
	KeyF21 Key = 0x70
	KeyF22 Key = 0x71
	KeyF23 Key = 0x72
	KeyF24 Key = 0x73

	KeyExecute    Key = 0x74
	KeyHelp       Key = 0x75
	KeyMenu       Key = 0x76
	KeySelect     Key = 0x77
	KeyStop       Key = 0x78
	KeyAgain      Key = 0x79 // Redo
	KeyUndo       Key = 0x7A
	KeyCut        Key = 0x7B
	KeyCopy       Key = 0x7C
	KeyPaste      Key = 0x7D
	KeyFind       Key = 0x7E
	KeyMute       Key = 0x7F
	KeyVolumeUp   Key = 0x80
	KeyVolumeDown Key = 0x81

	KeyKpComma        Key = 0x85
	KeyKpEqualAS400   Key = 0x86
	KeyInternational1 Key = 0x87
	KeyInternational2 Key = 0x88
	KeyInternational3 Key = 0x89
	KeyInternational4 Key = 0x8A
	KeyInternational5 Key = 0x8B
	KeyInternational6 Key = 0x8C
	KeyInternational7 Key = 0x8D
	KeyInternational8 Key = 0x8E
	KeyInternational9 Key = 0x8F
	KeyLang1          Key = 0x90
	KeyLang2          Key = 0x91
	KeyLang3          Key = 0x92
	KeyLang4          Key = 0x93
	KeyLang5          Key = 0x94
	KeyLang6          Key = 0x95
	KeyLang7          Key = 0x96
	KeyLang8          Key = 0x97
	KeyLang9          Key = 0x98

	KeyAltErase   Key = 0x99
	KeySysReq     Key = 0x9A
	KeyCancel     Key = 0x9B
	KeyClear      Key = 0x9C
	KeyPrior      Key = 0x9D
	KeyReturn2    Key = 0x9E
	KeySeparator  Key = 0x9F
	KeyOut        Key = 0xA0
	KeyOper       Key = 0xA1
	KeyClearAgain Key = 0xA2
	KeyCrSel      Key = 0xA3
	KeyExSel      Key = 0xA4

	KeyKp00               Key = 0xB0
	KeyKp000              Key = 0xB1
	KeyThousandsSeparator Key = 0xB2
	KeyDecimalSeparator   Key = 0xB3
	KeyCurrencyUnit       Key = 0xB4
	KeyCurrencySubunit    Key = 0xB5
	KeyKpLeftParen        Key = 0xB6
	KeyKpRightParen       Key = 0xB7
	KeyKpLeftBrace        Key = 0xB8
	KeyKpRightBrace       Key = 0xB9
	KeyKpTab              Key = 0xBA
	KeyKpBackspace        Key = 0xBB
	KeyKpA                Key = 0xBC
	KeyKpB                Key = 0xBD
	KeyKpC                Key = 0xBE
	KeyKpD                Key = 0xBF
	KeyKpE                Key = 0xC0
	KeyKpF                Key = 0xC1
	KeyKpXor              Key = 0xC2
	KeyKpPower            Key = 0xC3
	KeyKpPercent          Key = 0xC4
	KeyKpLess             Key = 0xC5
	KeyKpGreater          Key = 0xC6
	KeyKpAmpersand        Key = 0xC7
	KeyKpDblAmpersand     Key = 0xC8
	KeyKpVerticalBar      Key = 0xC9
	KeyKpDblVerticalBar   Key = 0xCA
	KeyKpColon            Key = 0xCB
	KeyKpHash             Key = 0xCC
	KeyKpSpace            Key = 0xCD
	KeyKpAt               Key = 0xCE
	KeyKpExclam           Key = 0xCF
	KeyKpMemStore         Key = 0xD0
	KeyKpMemRecall        Key = 0xD1
	KeyKpMemClear         Key = 0xD2
	KeyKpMemAdd           Key = 0xD3
	KeyKpMemSubtract      Key = 0xD4
	KeyKpMemMultiply      Key = 0xD5
	KeyKpMemDivide        Key = 0xD6
	KeyKpPlusMinus        Key = 0xD7
	KeyKpClear            Key = 0xD8
	KeyKpClearEntry       Key = 0xD9
	KeyKpBinary           Key = 0xDA
	KeyKpOctal            Key = 0xDB
	KeyKpDecimal          Key = 0xDC
	KeyKpHexadecimal      Key = 0xDD

	KeyLeftCtrl   Key = 0xE0
	KeyLeftShift  Key = 0xE1
	KeyLeftAlt    Key = 0xE2
	KeyLeftGUI    Key = 0xE3
	KeyRightCtrl  Key = 0xE4
	KeyRightShift Key = 0xE5
	KeyRightAlt   Key = 0xE6
	KeyRightGUI   Key = 0xE7

	// Media control keys
	KeyMediaPlayPause Key = 0xE8
	KeyMediaStop      Key = 0xE9
	KeyMediaNext      Key = 0xEB
	KeyMediaPrevious  Key = 0xEC
)

// KeyReturn is the main Enter key.
const KeyReturn = KeyEnter

// modifierKeys maps the modifier bits of InputState to their key codes.
var modifierKeys = [8]Key{
	KeyLeftCtrl, KeyLeftShift, KeyLeftAlt, KeyLeftGUI,
	KeyRightCtrl, KeyRightShift, KeyRightAlt, KeyRightGUI,
}

package keyboard

import (
	"fmt"
	"strings"

	"github.com/go-gl/mathgl/mgl64"
)

// Descriptor describes one key of the ISO/US layout.
type Descriptor struct {
	Name string
	// Position is the key's location on a reference layout, zero if unknown.
	Position mgl64.Vec2
	URI      string
}

// descriptors holds every key the keyboard role knows about.
var descriptors = map[Key]Descriptor{
	KeyA: {Name: "A"}, KeyB: {Name: "B"}, KeyC: {Name: "C"}, KeyD: {Name: "D"},
	KeyE: {Name: "E"}, KeyF: {Name: "F"}, KeyG: {Name: "G"}, KeyH: {Name: "H"},
	KeyI: {Name: "I"}, KeyJ: {Name: "J"}, KeyK: {Name: "K"}, KeyL: {Name: "L"},
	KeyM: {Name: "M"}, KeyN: {Name: "N"}, KeyO: {Name: "O"}, KeyP: {Name: "P"},
	KeyQ: {Name: "Q"}, KeyR: {Name: "R"}, KeyS: {Name: "S"}, KeyT: {Name: "T"},
	KeyU: {Name: "U"}, KeyV: {Name: "V"}, KeyW: {Name: "W"}, KeyX: {Name: "X"},
	KeyY: {Name: "Y"}, KeyZ: {Name: "Z"},

	Key1: {Name: "1"}, Key2: {Name: "2"}, Key3: {Name: "3"}, Key4: {Name: "4"}, Key5: {Name: "5"},
	Key6: {Name: "6"}, Key7: {Name: "7"}, Key8: {Name: "8"}, Key9: {Name: "9"}, Key0: {Name: "0"},

	KeyEnter:      {Name: "Return"},
	KeyEscape:     {Name: "Escape"},
	KeyBackspace:  {Name: "Backspace"},
	KeyTab:        {Name: "Tab"},
	KeySpace:      {Name: "Space"},
	KeyMinus:      {Name: "-"},
	KeyEqual:      {Name: "="},
	KeyLeftBrace:  {Name: "["},
	KeyRightBrace: {Name: "]"},
	KeyBackslash:  {Name: "\\"},
	KeyNonUSHash:  {Name: "#"},
	KeySemicolon:  {Name: ";"},
	KeyApostrophe: {Name: "'"},
	KeyGrave:      {Name: "`"},
	KeyComma:      {Name: ","},
	KeyPeriod:     {Name: "."},
	KeySlash:      {Name: "/"},
	KeyCapsLock:   {Name: "CapsLock"},

	KeyF1: {Name: "F1"}, KeyF2: {Name: "F2"}, KeyF3: {Name: "F3"}, KeyF4: {Name: "F4"},
	KeyF5: {Name: "F5"}, KeyF6: {Name: "F6"}, KeyF7: {Name: "F7"}, KeyF8: {Name: "F8"},
	KeyF9: {Name: "F9"}, KeyF10: {Name: "F10"}, KeyF11: {Name: "F11"}, KeyF12: {Name: "F12"},

	KeyPrintScreen: {Name: "PrintScreen"},
	KeyScrollLock:  {Name: "ScrollLock"},
	KeyPause:       {Name: "Pause"},
	KeyInsert:      {Name: "Insert"},
	KeyHome:        {Name: "Home"},
	KeyPageUp:      {Name: "PageUp"},
	KeyDelete:      {Name: "Delete"},
	KeyEnd:         {Name: "End"},
	KeyPageDown:    {Name: "PageDown"},
	KeyRight:       {Name: "Right"},
	KeyLeft:        {Name: "Left"},
	KeyDown:        {Name: "Down"},
	KeyUp:          {Name: "Up"},

	KeyNumLock:    {Name: "Numlock"},
	KeyKpSlash:    {Name: "Keypad /"},
	KeyKpAsterisk: {Name: "Keypad *"},
	KeyKpMinus:    {Name: "Keypad -"},
	KeyKpPlus:     {Name: "Keypad +"},
	KeyKpEnter:    {Name: "Keypad Enter"},
	KeyKp1:        {Name: "Keypad 1"},
	KeyKp2:        {Name: "Keypad 2"},
	KeyKp3:        {Name: "Keypad 3"},
	KeyKp4:        {Name: "Keypad 4"},
	KeyKp5:        {Name: "Keypad 5"},
	KeyKp6:        {Name: "Keypad 6"},
	KeyKp7:        {Name: "Keypad 7"},
	KeyKp8:        {Name: "Keypad 8"},
	KeyKp9:        {Name: "Keypad 9"},
	KeyKp0:        {Name: "Keypad 0"},
	KeyKpDot:      {Name: "Keypad ."},

	KeyNonUSBackslash: {Name: "Non-US \\"},
	KeyApplication:    {Name: "Application"},
	KeyPower:          {Name: "Power"},
	KeyKpEqual:        {Name: "Keypad ="},

	KeyF13: {Name: "F13"}, KeyF14: {Name: "F14"}, KeyF15: {Name: "F15"}, KeyF16: {Name: "F16"},
	KeyF17: {Name: "F17"}, KeyF18: {Name: "F18"}, KeyF19: {Name: "F19"}, KeyF20: {Name: "F20"},
	KeyF21: {Name: "F21"}, KeyF22: {Name: "F22"}, KeyF23: {Name: "F23"}, KeyF24: {Name: "F24"},

	KeyExecute:    {Name: "Execute"},
	KeyHelp:       {Name: "Help"},
	KeyMenu:       {Name: "Menu"},
	KeySelect:     {Name: "Select"},
	KeyStop:       {Name: "Stop"},
	KeyAgain:      {Name: "Again"},
	KeyUndo:       {Name: "Undo"},
	KeyCut:        {Name: "Cut"},
	KeyCopy:       {Name: "Copy"},
	KeyPaste:      {Name: "Paste"},
	KeyFind:       {Name: "Find"},
	KeyMute:       {Name: "Mute"},
	KeyVolumeUp:   {Name: "VolumeUp"},
	KeyVolumeDown: {Name: "VolumeDown"},

	KeyKpComma:      {Name: "Keypad ,"},
	KeyKpEqualAS400: {Name: "Keypad = (AS400)"},

	KeyInternational1: {Name: "International 1"},
	KeyInternational2: {Name: "International 2"},
	KeyInternational3: {Name: "International 3"},
	KeyInternational4: {Name: "International 4"},
	KeyInternational5: {Name: "International 5"},
	KeyInternational6: {Name: "International 6"},
	KeyInternational7: {Name: "International 7"},
	KeyInternational8: {Name: "International 8"},
	KeyInternational9: {Name: "International 9"},
	KeyLang1:          {Name: "Lang 1"},
	KeyLang2:          {Name: "Lang 2"},
	KeyLang3:          {Name: "Lang 3"},
	KeyLang4:          {Name: "Lang 4"},
	KeyLang5:          {Name: "Lang 5"},
	KeyLang6:          {Name: "Lang 6"},
	KeyLang7:          {Name: "Lang 7"},
	KeyLang8:          {Name: "Lang 8"},
	KeyLang9:          {Name: "Lang 9"},

	KeyAltErase:   {Name: "AltErase"},
	KeySysReq:     {Name: "SysReq"},
	KeyCancel:     {Name: "Cancel"},
	KeyClear:      {Name: "Clear"},
	KeyPrior:      {Name: "Prior"},
	KeyReturn2:    {Name: "Return"},
	KeySeparator:  {Name: "Separator"},
	KeyOut:        {Name: "Out"},
	KeyOper:       {Name: "Oper"},
	KeyClearAgain: {Name: "Clear / Again"},
	KeyCrSel:      {Name: "CrSel"},
	KeyExSel:      {Name: "ExSel"},

	KeyKp00:               {Name: "Keypad 00"},
	KeyKp000:              {Name: "Keypad 000"},
	KeyThousandsSeparator: {Name: "ThousandsSeparator"},
	KeyDecimalSeparator:   {Name: "DecimalSeparator"},
	KeyCurrencyUnit:       {Name: "CurrencyUnit"},
	KeyCurrencySubunit:    {Name: "CurrencySubUnit"},
	KeyKpLeftParen:        {Name: "Keypad ("},
	KeyKpRightParen:       {Name: "Keypad )"},
	KeyKpLeftBrace:        {Name: "Keypad {"},
	KeyKpRightBrace:       {Name: "Keypad }"},
	KeyKpTab:              {Name: "Keypad Tab"},
	KeyKpBackspace:        {Name: "Keypad Backspace"},
	KeyKpA:                {Name: "Keypad A"},
	KeyKpB:                {Name: "Keypad B"},
	KeyKpC:                {Name: "Keypad C"},
	KeyKpD:                {Name: "Keypad D"},
	KeyKpE:                {Name: "Keypad E"},
	KeyKpF:                {Name: "Keypad F"},
	KeyKpXor:              {Name: "Keypad XOR"},
	KeyKpPower:            {Name: "Keypad ^"},
	KeyKpPercent:          {Name: "Keypad %"},
	KeyKpLess:             {Name: "Keypad <"},
	KeyKpGreater:          {Name: "Keypad >"},
	KeyKpAmpersand:        {Name: "Keypad &"},
	KeyKpDblAmpersand:     {Name: "Keypad &&"},
	KeyKpVerticalBar:      {Name: "Keypad |"},
	KeyKpDblVerticalBar:   {Name: "Keypad ||"},
	KeyKpColon:            {Name: "Keypad :"},
	KeyKpHash:             {Name: "Keypad #"},
	KeyKpSpace:            {Name: "Keypad Space"},
	KeyKpAt:               {Name: "Keypad @"},
	KeyKpExclam:           {Name: "Keypad !"},
	KeyKpMemStore:         {Name: "Keypad MemStore"},
	KeyKpMemRecall:        {Name: "Keypad MemRecall"},
	KeyKpMemClear:         {Name: "Keypad MemClear"},
	KeyKpMemAdd:           {Name: "Keypad MemAdd"},
	KeyKpMemSubtract:      {Name: "Keypad MemSubtract"},
	KeyKpMemMultiply:      {Name: "Keypad MemMultiply"},
	KeyKpMemDivide:        {Name: "Keypad MemDivide"},
	KeyKpPlusMinus:        {Name: "Keypad +/-"},
	KeyKpClear:            {Name: "Keypad Clear"},
	KeyKpClearEntry:       {Name: "Keypad ClearEntry"},
	KeyKpBinary:           {Name: "Keypad Binary"},
	KeyKpOctal:            {Name: "Keypad Octal"},
	KeyKpDecimal:          {Name: "Keypad Decimal"},
	KeyKpHexadecimal:      {Name: "Keypad Hexadecimal"},

	KeyLeftCtrl:   {Name: "Left Ctrl"},
	KeyLeftShift:  {Name: "Left Shift"},
	KeyLeftAlt:    {Name: "Left Alt"},
	KeyLeftGUI:    {Name: "Left GUI"},
	KeyRightCtrl:  {Name: "Right Ctrl"},
	KeyRightShift: {Name: "Right Shift"},
	KeyRightAlt:   {Name: "Right Alt"},
	KeyRightGUI:   {Name: "Right GUI"},

	KeyMediaPlayPause: {Name: "Play/Pause"},
	KeyMediaStop:      {Name: "Media Stop"},
	KeyMediaNext:      {Name: "Next Track"},
	KeyMediaPrevious:  {Name: "Previous Track"},
}

// Describe returns the descriptor of k.
func Describe(k Key) (Descriptor, bool) {
	d, ok := descriptors[k]
	return d, ok
}

// Known reports whether k is part of the layout.
func Known(k Key) bool {
	_, ok := descriptors[k]
	return ok
}

// KeyName returns the display name of k. Unknown keys are named by code.
func KeyName(k Key) string {
	if d, ok := descriptors[k]; ok {
		return d.Name
	}
	return fmt.Sprintf("Key 0x%02X", uint8(k))
}

func (k Key) String() string { return KeyName(k) }

// KeyByName finds a key by display name, case-insensitively. The first
// key in code order wins for duplicated names.
func KeyByName(name string) (Key, bool) {
	for c := 0; c < MaxKey; c++ {
		d, ok := descriptors[Key(c)]
		if ok && strings.EqualFold(d.Name, name) {
			return Key(c), true
		}
	}
	return KeyNone, false
}

// Glyph returns the glyph URI of k.
func Glyph(k Key) string {
	if d, ok := descriptors[k]; ok && d.URI != "" {
		return d.URI
	}
	return fmt.Sprintf("keyboard/key_%02x", uint8(k))
}

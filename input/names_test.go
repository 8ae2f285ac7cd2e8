package input_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/Alia5/inputmap/device/keyboard"
	"github.com/Alia5/inputmap/device/xbox360"
	"github.com/Alia5/inputmap/input"
)

func TestButtonNameForInput(t *testing.T) {
	type testCase struct {
		name   string
		setup  func(f *fixture)
		want   string
		all    string
		glyph  string
		format string
	}

	cases := []testCase{
		{
			name:  "no bindings",
			setup: func(f *fixture) {},
			want:  "",
			all:   "",
		},
		{
			name: "tie goes to the latest binding",
			setup: func(f *fixture) {
				f.s.MapKeyAndButton(jump, keyboard.KeySpace, xbox360.A)
			},
			want:  "A",
			all:   "Space, A",
			glyph: "xbox/A",
		},
		{
			name: "most recently active device",
			setup: func(f *fixture) {
				f.s.MapKeyAndButton(jump, keyboard.KeySpace, xbox360.A)
				f.tick(time.Second)
				f.gp.SetButton(xbox360.A, true)
			},
			want:  "A",
			all:   "Space, A",
			glyph: "xbox/A",
		},
		{
			name: "activity on another input counts",
			setup: func(f *fixture) {
				f.s.MapKeyAndButton(jump, keyboard.KeySpace, xbox360.A)
				f.tick(time.Second)
				f.gp.SetButton(xbox360.A, true)
				f.tick(time.Second)
				f.kb.KeyPressed(keyboard.KeyQ)
			},
			want:  "Space",
			all:   "Space, A",
			glyph: keyboard.Glyph(keyboard.KeySpace),
		},
		{
			name: "custom format",
			setup: func(f *fixture) {
				f.s.MapKeyAndButton(jump, keyboard.KeySpace, xbox360.A)
			},
			format: "[%s]",
			want:   "[A]",
			all:    "[Space], [A]",
			glyph:  "xbox/A",
		},
		{
			name: "two dimensional binding",
			setup: func(f *fixture) {
				f.s.MapAxis2D(xbox360.LeftStickX, xbox360.LeftStickY, input.FirstGamepadSlot, jump)
			},
			want:  "Left Stick X Axis/Left Stick Y Axis",
			all:   "Left Stick X Axis/Left Stick Y Axis",
			glyph: "xbox/Left Stick X Axis",
		},
		{
			name: "disconnected device",
			setup: func(f *fixture) {
				f.s.MapKey(keyboard.KeySpace, jump)
				f.s.DisconnectDevice(input.KeyboardSlot)
			},
			want:  "Disconnected Device 0 (previously Main Keyboard)",
			all:   "Disconnected Device 0 (previously Main Keyboard)",
			glyph: "",
		},
		{
			name: "connected device preferred over a disconnected one",
			setup: func(f *fixture) {
				f.s.MapKeyAndButton(jump, keyboard.KeySpace, xbox360.A)
				f.s.DisconnectDevice(input.KeyboardSlot)
			},
			want:  "A",
			all:   "Disconnected Device 0 (previously Main Keyboard), A",
			glyph: "xbox/A",
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			f := newFixture(t)
			tc.setup(f)
			format := tc.format
			if format == "" {
				format = input.DefaultNameFormat
			}
			assert.Equal(t, tc.want, f.s.ButtonNameForInputFormat(jump, format))
			assert.Equal(t, tc.all, f.s.ButtonNamesForInputFormat(jump, format))
			assert.Equal(t, tc.glyph, f.s.CurrentGlyphForInput(jump))
			if tc.format == "" {
				assert.Equal(t, tc.want, f.s.ButtonNameForInput(jump))
				assert.Equal(t, tc.all, f.s.ButtonNamesForInput(jump))
			}
		})
	}
}

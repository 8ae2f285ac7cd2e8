package textinput_test

import (
	"testing"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Alia5/inputmap/device"
	"github.com/Alia5/inputmap/device/keyboard"
	"github.com/Alia5/inputmap/device/textinput"
	inputmapTesting "github.com/Alia5/inputmap/internal/testing"
)

type event struct {
	kind textinput.CompositionEvent
	text string
}

func TestComposition(t *testing.T) {
	host := inputmapTesting.NewMockHost()
	d := textinput.New(&device.CreateOptions{Host: host})
	var events []event
	d.OnComposition(func(e textinput.CompositionEvent, text string) {
		events = append(events, event{e, text})
	})

	assert.False(t, d.Insert("x"), "inactive device ignores text")

	area := device.Rect{Min: mgl64.Vec2{10, 10}, Max: mgl64.Vec2{200, 30}}
	d.StartTextInput(area)
	require.True(t, d.IsTextInputActive())
	assert.Equal(t, area, d.Area())

	d.Insert("héllo")
	d.Insert(" wörld")
	assert.Equal(t, "héllo wörld", d.CurrentText())
	start, end := d.CurrentSelection()
	assert.Equal(t, 11, start)
	assert.Equal(t, 11, end)
	assert.Equal(t, host.Clock, d.LastActiveTime())

	d.Select(6, 11)
	d.Insert("there")
	assert.Equal(t, "héllo there", d.CurrentText())

	d.Backspace()
	assert.Equal(t, "héllo ther", d.CurrentText())

	assert.Equal(t, "héllo ther", d.Finish())
	assert.False(t, d.IsTextInputActive())

	assert.Equal(t, []event{
		{textinput.CompositionStarted, ""},
		{textinput.CompositionFinished, "héllo ther"},
	}, events)
}

func TestCancel(t *testing.T) {
	d := textinput.New(nil)
	var kinds []textinput.CompositionEvent
	d.OnComposition(func(e textinput.CompositionEvent, _ string) { kinds = append(kinds, e) })

	d.StartTextInput(device.Rect{})
	d.Insert("abc")
	d.StartTextInput(device.Rect{})
	assert.Equal(t, "", d.CurrentText())
	d.CancelTextInput()
	d.CancelTextInput()

	assert.Equal(t, []textinput.CompositionEvent{
		textinput.CompositionStarted,
		textinput.CompositionCanceled,
		textinput.CompositionStarted,
		textinput.CompositionCanceled,
	}, kinds)
	assert.Equal(t, "", d.Finish())
}

func TestSelectionClamps(t *testing.T) {
	d := textinput.New(nil)
	d.StartTextInput(device.Rect{})
	d.Insert("abc")

	d.Select(5, -1)
	start, end := d.CurrentSelection()
	assert.Equal(t, 0, start)
	assert.Equal(t, 3, end)

	assert.True(t, d.Backspace())
	assert.Equal(t, "", d.CurrentText())
	assert.False(t, d.Backspace())
}

func TestNoNumericInputs(t *testing.T) {
	host := inputmapTesting.NewMockHost()
	d := textinput.New(&device.CreateOptions{Host: host})

	assert.Equal(t, device.RoleTextInput, d.Role())
	assert.Equal(t, device.InputID(0), d.MaxInputID())
	assert.NotNil(t, d.Capabilities().Text)
	assert.Equal(t, 0.0, d.InputValue(0))
	assert.Equal(t, 1, host.Len())

	assert.False(t, d.HasScreenKeyboardSupport())
	d.SetScreenKeyboard(keyboard.New(nil))
	k, ok := d.ScreenKeyboard()
	require.True(t, ok)
	assert.Equal(t, device.RoleKeyboard, k.Role())
}

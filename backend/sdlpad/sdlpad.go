//go:build sdl

// Package sdlpad feeds real game controllers, opened through SDL3, into
// xbox360.Gamepad devices of an input.System.
package sdlpad

import (
	"fmt"
	"log/slog"
	"math"
	"slices"

	"github.com/Zyko0/go-sdl3/bin/binsdl"
	"github.com/Zyko0/go-sdl3/sdl"

	"github.com/Alia5/inputmap/device"
	"github.com/Alia5/inputmap/device/xbox360"
	"github.com/Alia5/inputmap/input"
)

// RumbleDuration is the length of each rumble command in milliseconds. A
// motor change always sends a fresh command.
const RumbleDuration = 1000

var buttonMap = [...]struct {
	button sdl.GamepadButton
	mask   uint32
}{
	{sdl.GAMEPAD_BUTTON_SOUTH, xbox360.MaskA},
	{sdl.GAMEPAD_BUTTON_EAST, xbox360.MaskB},
	{sdl.GAMEPAD_BUTTON_WEST, xbox360.MaskX},
	{sdl.GAMEPAD_BUTTON_NORTH, xbox360.MaskY},
	{sdl.GAMEPAD_BUTTON_BACK, xbox360.MaskBack},
	{sdl.GAMEPAD_BUTTON_GUIDE, xbox360.MaskGuide},
	{sdl.GAMEPAD_BUTTON_START, xbox360.MaskStart},
	{sdl.GAMEPAD_BUTTON_LEFT_STICK, xbox360.MaskLThumb},
	{sdl.GAMEPAD_BUTTON_RIGHT_STICK, xbox360.MaskRThumb},
	{sdl.GAMEPAD_BUTTON_LEFT_SHOULDER, xbox360.MaskLShoulder},
	{sdl.GAMEPAD_BUTTON_RIGHT_SHOULDER, xbox360.MaskRShoulder},
	{sdl.GAMEPAD_BUTTON_DPAD_UP, xbox360.MaskDPadUp},
	{sdl.GAMEPAD_BUTTON_DPAD_DOWN, xbox360.MaskDPadDown},
	{sdl.GAMEPAD_BUTTON_DPAD_LEFT, xbox360.MaskDPadLeft},
	{sdl.GAMEPAD_BUTTON_DPAD_RIGHT, xbox360.MaskDPadRight},
}

type pad struct {
	id   sdl.JoystickID
	gp   *sdl.Gamepad
	dev  *xbox360.Gamepad
	slot int
}

// Source polls SDL gamepads. Each controller gets its own slot, starting
// with the system's first gamepad slot.
type Source struct {
	sys    *input.System
	logger *slog.Logger
	unload func()
	pads   []*pad
}

// Open loads SDL and initialises its gamepad subsystem.
func Open(sys *input.System, logger *slog.Logger) (*Source, error) {
	lib := binsdl.Load()
	if err := sdl.Init(sdl.INIT_GAMEPAD); err != nil {
		lib.Unload()
		return nil, fmt.Errorf("init sdl gamepads: %w", err)
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &Source{sys: sys, logger: logger, unload: func() { lib.Unload() }}, nil
}

// Close closes every open controller and shuts SDL down.
func (s *Source) Close() {
	for _, p := range s.pads {
		p.gp.Close()
	}
	s.pads = nil
	sdl.Quit()
	s.unload()
}

// Poll opens new controllers, disconnects removed ones and copies the state
// of the rest into their devices. Call it once per tick before querying.
func (s *Source) Poll() error {
	sdl.UpdateGamepads()
	ids, err := sdl.GetGamepads()
	if err != nil {
		return fmt.Errorf("list gamepads: %w", err)
	}

	s.pads = slices.DeleteFunc(s.pads, func(p *pad) bool {
		if slices.Contains(ids, p.id) {
			return false
		}
		s.logger.Info("Gamepad removed", "slot", p.slot)
		p.gp.Close()
		s.sys.DisconnectDevice(p.slot)
		return true
	})

	for _, id := range ids {
		if s.find(id) != nil {
			continue
		}
		if err := s.open(id); err != nil {
			s.logger.Warn("Failed to open gamepad", "id", uint32(id), "error", err)
		}
	}

	for _, p := range s.pads {
		p.dev.ApplyState(readState(p.gp))
	}
	return nil
}

func (s *Source) find(id sdl.JoystickID) *pad {
	for _, p := range s.pads {
		if p.id == id {
			return p
		}
	}
	return nil
}

// freeSlot returns the first empty slot at or after the first gamepad slot.
func (s *Source) freeSlot() int {
	slot := input.FirstGamepadSlot
	for s.sys.Device(slot) != nil {
		slot++
	}
	return slot
}

func (s *Source) open(id sdl.JoystickID) error {
	gp, err := id.OpenGamepad()
	if err != nil {
		return err
	}
	slot := s.freeSlot()
	dev := xbox360.New(&device.CreateOptions{Name: fmt.Sprintf("SDL Gamepad %d", uint32(id))})
	p := &pad{id: id, gp: gp, dev: dev, slot: slot}

	rumble := func(data []byte) {
		var st xbox360.RumbleState
		if err := st.UnmarshalBinary(data); err != nil {
			return
		}
		low := uint16(st.LeftMotor) * 0x101
		high := uint16(st.RightMotor) * 0x101
		if err := gp.Rumble(low, high, RumbleDuration); err != nil {
			s.logger.Debug("Rumble failed", "slot", slot, "error", err)
		}
	}
	dev.SetOutputCallback(xbox360.OutputLeftMotor, rumble)
	dev.SetOutputCallback(xbox360.OutputRightMotor, rumble)

	s.sys.ConnectDevice(slot, dev)
	s.pads = append(s.pads, p)
	s.logger.Info("Gamepad opened", "slot", slot, "name", dev.Name())
	return nil
}

func trigger(v int16) uint8 {
	return uint8(math.Round(math.Max(0, float64(v)) / math.MaxInt16 * math.MaxUint8))
}

// flipY converts SDL's downward positive stick Y to XInput's upward
// positive Y.
func flipY(v int16) int16 {
	if v == math.MinInt16 {
		return math.MaxInt16
	}
	return -v
}

func readState(gp *sdl.Gamepad) xbox360.InputState {
	var st xbox360.InputState
	for _, b := range buttonMap {
		if gp.Button(b.button) {
			st.Buttons |= b.mask
		}
	}
	st.LX = gp.Axis(sdl.GAMEPAD_AXIS_LEFTX)
	st.LY = flipY(gp.Axis(sdl.GAMEPAD_AXIS_LEFTY))
	st.RX = gp.Axis(sdl.GAMEPAD_AXIS_RIGHTX)
	st.RY = flipY(gp.Axis(sdl.GAMEPAD_AXIS_RIGHTY))
	st.LT = trigger(gp.Axis(sdl.GAMEPAD_AXIS_LEFT_TRIGGER))
	st.RT = trigger(gp.Axis(sdl.GAMEPAD_AXIS_RIGHT_TRIGGER))
	return st
}

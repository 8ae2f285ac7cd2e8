package input

import (
	"sort"

	"github.com/Alia5/inputmap/device"
	"github.com/Alia5/inputmap/device/keyboard"
	"github.com/Alia5/inputmap/device/mouse"
	"github.com/Alia5/inputmap/device/xbox360"
)

func (s *System) player(id device.PlayerID) (*player, bool) {
	p, ok := s.players[id]
	return p, ok
}

func (s *System) ensurePlayer(id device.PlayerID) *player {
	p, ok := s.players[id]
	if !ok {
		p = newPlayer()
		s.players[id] = p
	}
	return p
}

func (s *System) bind(a Action, b Binding) {
	s.ensurePlayer(a.Player).add(a.ID, b)
}

// MapButton appends a button binding of input on slot dev to a.
func (s *System) MapButton(input device.InputID, dev int, a Action) {
	s.bind(a, Binding{Kind: BindButton, Device: dev, Inputs: [2]device.InputID{input, device.InvalidInput}})
}

// MapAxis1D appends a one-dimensional axis binding.
func (s *System) MapAxis1D(input device.InputID, dev int, a Action) {
	s.bind(a, Binding{Kind: BindAxis1D, Device: dev, Inputs: [2]device.InputID{input, device.InvalidInput}})
}

// MapAxis2D appends a binding combining two inputs of one device into a vector.
func (s *System) MapAxis2D(x, y device.InputID, dev int, a Action) {
	s.bind(a, Binding{Kind: BindAxis2D, Device: dev, Inputs: [2]device.InputID{x, y}})
}

// MapButtonToAxis appends a binding that reports pressed or released as the
// action's axis value.
func (s *System) MapButtonToAxis(input device.InputID, dev int, pressed, released float64, a Action) {
	s.bind(a, Binding{
		Kind:     BindButtonToAxis,
		Device:   dev,
		Inputs:   [2]device.InputID{input, device.InvalidInput},
		Pressed:  pressed,
		Released: released,
	})
}

// MapHalfAxis appends a binding that treats one side of an axis as a
// button. sign selects the side; the axis must pass threshold.
func (s *System) MapHalfAxis(input device.InputID, dev int, sign, threshold float64, a Action) {
	if sign >= 0 {
		sign = 1
	} else {
		sign = -1
	}
	s.bind(a, Binding{
		Kind:      BindHalfAxis,
		Device:    dev,
		Inputs:    [2]device.InputID{input, device.InvalidInput},
		Sign:      sign,
		Threshold: threshold,
	})
}

// MapKey binds a key of the keyboard slot.
func (s *System) MapKey(k keyboard.Key, a Action) {
	s.MapButton(device.InputID(k), KeyboardSlot, a)
}

// MapMouse binds a button of the mouse slot.
func (s *System) MapMouse(b mouse.Button, a Action) {
	s.MapButton(b.Input(), MouseSlot, a)
}

// MapGamepad binds a button of the first gamepad slot.
func (s *System) MapGamepad(b xbox360.Button, a Action) {
	s.MapButton(b.Input(), FirstGamepadSlot, a)
}

// MapKeyAndButton binds a key and a gamepad button, in that order.
func (s *System) MapKeyAndButton(a Action, k keyboard.Key, b xbox360.Button) {
	s.MapKey(k, a)
	s.MapGamepad(b, a)
}

// MapNavigation binds the physical source of n on every connected device
// that can trigger it, in slot order. Stick and wheel sources become
// half-axis bindings with the device's navigation threshold.
func (s *System) MapNavigation(n device.Navigation, a Action) {
	for idx, d := range s.devices {
		if d == nil {
			continue
		}
		nav := d.Capabilities().Navigator
		if nav == nil {
			continue
		}
		src, ok := nav.NavigationSource(n)
		if !ok {
			continue
		}
		if src.Sign == 0 {
			s.MapButton(src.Input, idx, a)
		} else {
			s.MapHalfAxis(src.Input, idx, src.Sign, src.Threshold, a)
		}
	}
}

// BindDevice records slot dev as bound to p and associates p on the device.
func (s *System) BindDevice(p device.PlayerID, dev int) {
	pl := s.ensurePlayer(p)
	for _, d := range pl.devices {
		if d == dev {
			return
		}
	}
	pl.devices = append(pl.devices, dev)
	if d := s.Device(dev); d != nil {
		d.AssociatePlayer(p)
	}
}

// BoundDevices returns the slots bound to p.
func (s *System) BoundDevices(p device.PlayerID) []int {
	pl, ok := s.player(p)
	if !ok {
		return nil
	}
	return append([]int(nil), pl.devices...)
}

// ClearAllMappings empties the mapping table for every player.
func (s *System) ClearAllMappings() {
	s.players = make(map[device.PlayerID]*player)
}

// ClearMappings removes every binding of a.
func (s *System) ClearMappings(a Action) {
	pl, ok := s.player(a.Player)
	if !ok {
		return
	}
	if _, ok := pl.mappings[a.ID]; !ok {
		return
	}
	delete(pl.mappings, a.ID)
	for i, id := range pl.order {
		if id == a.ID {
			pl.order = append(pl.order[:i], pl.order[i+1:]...)
			break
		}
	}
}

// Players returns the players that have mappings or bound devices, ascending.
func (s *System) Players() []device.PlayerID {
	out := make([]device.PlayerID, 0, len(s.players))
	for id := range s.players {
		out = append(out, id)
	}
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })
	return out
}

// Actions returns the action ids mapped for p, sorted.
func (s *System) Actions(p device.PlayerID) []string {
	pl, ok := s.player(p)
	if !ok {
		return nil
	}
	out := append([]string(nil), pl.order...)
	sort.Strings(out)
	return out
}

// Mappings returns a copy of a's bindings in registration order.
func (s *System) Mappings(a Action) []Binding {
	pl, ok := s.player(a.Player)
	if !ok {
		return nil
	}
	return append([]Binding(nil), pl.mappings[a.ID]...)
}

func (s *System) bindings(a Action) []Binding {
	pl, ok := s.player(a.Player)
	if !ok {
		return nil
	}
	return pl.mappings[a.ID]
}

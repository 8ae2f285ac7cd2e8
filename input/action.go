package input

import (
	"fmt"

	"github.com/Alia5/inputmap/device"
)

// Action is a player-scoped logical input such as "Jump". It is the only
// key applications query the system with and stays stable across device
// reconnection.
type Action struct {
	ID     string
	Player device.PlayerID
}

// On returns the action id bound to player.
func On(player device.PlayerID, id string) Action {
	return Action{ID: id, Player: player}
}

func (a Action) String() string {
	return fmt.Sprintf("%s@%d", a.ID, a.Player)
}

// BindingKind selects how a binding's physical inputs are read.
type BindingKind int

const (
	// BindButton reads one input as a button.
	BindButton BindingKind = iota
	// BindAxis1D reads one input as an axis.
	BindAxis1D
	// BindAxis2D combines two inputs into a vector.
	BindAxis2D
	// BindButtonToAxis reads a button and reports a fixed value per state.
	BindButtonToAxis
	// BindHalfAxis reads one side of an axis as a button. It is pressed
	// while the value is beyond Threshold in the direction of Sign.
	BindHalfAxis
)

var bindingKindNames = [...]string{"button", "axis1d", "axis2d", "button_to_axis", "half_axis"}

func (k BindingKind) String() string {
	if k < 0 || int(k) >= len(bindingKindNames) {
		return fmt.Sprintf("BindingKind(%d)", int(k))
	}
	return bindingKindNames[k]
}

// ParseBindingKind is the inverse of BindingKind.String.
func ParseBindingKind(s string) (BindingKind, bool) {
	for i, name := range bindingKindNames {
		if name == s {
			return BindingKind(i), true
		}
	}
	return 0, false
}

// Binding associates an action with one device slot and one or two of its
// inputs. Inputs[1] is device.InvalidInput for one-dimensional bindings.
type Binding struct {
	Kind   BindingKind
	Device int
	Inputs [2]device.InputID

	// Pressed and Released are the axis values of BindButtonToAxis bindings.
	Pressed  float64
	Released float64

	// Sign and Threshold select the active side of BindHalfAxis bindings.
	Sign      float64
	Threshold float64
}

func (b Binding) pressedBy(v float64) bool {
	if b.Sign < 0 {
		return v < -b.Threshold
	}
	return v > b.Threshold
}

// pressed evaluates the binding's button predicate on the current frame.
func (b Binding) pressed(d device.Device) bool {
	if b.Kind == BindHalfAxis {
		return b.pressedBy(d.InputValue(b.Inputs[0]))
	}
	return d.IsInputPressed(b.Inputs[0])
}

func (b Binding) pressedLastFrame(d device.Device) bool {
	if b.Kind == BindHalfAxis {
		return b.pressedBy(d.InputValueLastFrame(b.Inputs[0]))
	}
	return d.WasInputPressedLastFrame(b.Inputs[0])
}

// value evaluates the binding as an axis on the current frame.
func (b Binding) value(d device.Device) float64 {
	switch b.Kind {
	case BindButtonToAxis:
		if d.IsInputPressed(b.Inputs[0]) {
			return b.Pressed
		}
		return b.Released
	case BindHalfAxis:
		v := d.InputValue(b.Inputs[0])
		if b.Sign < 0 {
			v = -v
		}
		return max(0, v)
	}
	return d.InputValue(b.Inputs[0])
}

func (b Binding) is2D() bool {
	return b.Kind == BindAxis2D && b.Inputs[1].Valid()
}

// player is the per-player mapping state.
type player struct {
	mappings map[string][]Binding
	// order records action ids in first-mapped order.
	order   []string
	devices []int
}

func newPlayer() *player {
	return &player{mappings: make(map[string][]Binding)}
}

func (p *player) add(action string, b Binding) {
	if _, ok := p.mappings[action]; !ok {
		p.order = append(p.order, action)
	}
	p.mappings[action] = append(p.mappings[action], b)
}

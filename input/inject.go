package input

import (
	"github.com/go-gl/mathgl/mgl64"

	"github.com/Alia5/inputmap/device"
)

func (s *System) inject(inj device.Injector, id device.InputID, v float64) bool {
	s.injecting = true
	defer func() { s.injecting = false }()
	return inj.InjectInput(id, v)
}

// InjectInputChange writes v into the first connected binding of a whose
// device accepts injection, as if the device had reported it. X drives the
// first input, Y the second input of two-dimensional bindings.
func (s *System) InjectInputChange(a Action, v mgl64.Vec3) bool {
	for _, b := range s.bindings(a) {
		d := s.Device(b.Device)
		if d == nil {
			continue
		}
		inj := d.Capabilities().Injector
		if inj == nil {
			continue
		}
		switch b.Kind {
		case BindButtonToAxis:
			on := 0.0
			if v.X() != b.Released {
				on = 1
			}
			return s.inject(inj, b.Inputs[0], on)
		case BindHalfAxis:
			return s.inject(inj, b.Inputs[0], v.X()*b.Sign)
		case BindAxis2D:
			ok := s.inject(inj, b.Inputs[0], v.X())
			if b.Inputs[1].Valid() {
				ok = s.inject(inj, b.Inputs[1], v.Y()) && ok
			}
			return ok
		default:
			return s.inject(inj, b.Inputs[0], v.X())
		}
	}
	return false
}

// InjectNavigation presses or releases the source of n on the first
// connected device that can trigger it and accepts injection.
func (s *System) InjectNavigation(n device.Navigation, pressed bool) bool {
	for _, d := range s.devices {
		if d == nil {
			continue
		}
		c := d.Capabilities()
		if c.Navigator == nil || c.Injector == nil {
			continue
		}
		src, ok := c.Navigator.NavigationSource(n)
		if !ok {
			continue
		}
		v := 0.0
		if pressed {
			v = src.InjectValue()
		}
		return s.inject(c.Injector, src.Input, v)
	}
	return false
}

// ResetInput returns every connected binding of a to its neutral value.
func (s *System) ResetInput(a Action) {
	for _, b := range s.bindings(a) {
		d := s.Device(b.Device)
		if d == nil {
			continue
		}
		inj := d.Capabilities().Injector
		if inj == nil {
			continue
		}
		for _, id := range b.Inputs {
			if !id.Valid() {
				continue
			}
			neutral := 0.0
			if p, ok := d.PropertiesOf(id); ok {
				neutral = p.NeutralValue
			}
			s.inject(inj, id, neutral)
		}
	}
}

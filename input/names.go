package input

import (
	"fmt"
	"strings"
)

// DefaultNameFormat formats a binding name unchanged.
const DefaultNameFormat = "%s"

// bindingName names the inputs of b, or its slot when b's device is gone.
func (s *System) bindingName(b Binding) string {
	d := s.Device(b.Device)
	if d == nil {
		return s.InputDeviceName(b.Device)
	}
	names := make([]string, 0, 2)
	for _, id := range b.Inputs {
		if !id.Valid() {
			continue
		}
		if p, ok := d.PropertiesOf(id); ok && p.Name != "" {
			names = append(names, p.Name)
		} else {
			names = append(names, fmt.Sprintf("%s input %d", d.Name(), id))
		}
	}
	return strings.Join(names, "/")
}

// activeBinding picks the binding of a whose device was active most
// recently. Ties go to the latest binding. With no connected device the
// first binding is returned.
func (s *System) activeBinding(a Action) (Binding, bool) {
	bindings := s.bindings(a)
	if len(bindings) == 0 {
		return Binding{}, false
	}
	best := -1
	for i, b := range bindings {
		d := s.Device(b.Device)
		if d == nil {
			continue
		}
		if best < 0 || !d.LastActiveTime().Before(s.Device(bindings[best].Device).LastActiveTime()) {
			best = i
		}
	}
	if best < 0 {
		return bindings[0], true
	}
	return bindings[best], true
}

// ButtonNameForInput names the binding of a on the most recently active
// device. It is empty when a has no bindings.
func (s *System) ButtonNameForInput(a Action) string {
	return s.ButtonNameForInputFormat(a, DefaultNameFormat)
}

// ButtonNameForInputFormat is ButtonNameForInput with the name substituted
// into format, which must hold one %s verb.
func (s *System) ButtonNameForInputFormat(a Action, format string) string {
	b, ok := s.activeBinding(a)
	if !ok {
		return ""
	}
	return fmt.Sprintf(format, s.bindingName(b))
}

// ButtonNamesForInput names every binding of a, joined by ", ".
func (s *System) ButtonNamesForInput(a Action) string {
	return s.ButtonNamesForInputFormat(a, DefaultNameFormat)
}

// ButtonNamesForInputFormat is ButtonNamesForInput with each name
// substituted into format.
func (s *System) ButtonNamesForInputFormat(a Action, format string) string {
	bindings := s.bindings(a)
	names := make([]string, 0, len(bindings))
	for _, b := range bindings {
		names = append(names, fmt.Sprintf(format, s.bindingName(b)))
	}
	return strings.Join(names, ", ")
}

// CurrentGlyphForInput returns the glyph URI of the binding
// ButtonNameForInput would name, or "" when it has none.
func (s *System) CurrentGlyphForInput(a Action) string {
	b, ok := s.activeBinding(a)
	if !ok {
		return ""
	}
	d := s.Device(b.Device)
	if d == nil {
		return ""
	}
	p, ok := d.PropertiesOf(b.Inputs[0])
	if !ok {
		return ""
	}
	return p.GlyphURI
}

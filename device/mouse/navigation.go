package mouse

import "github.com/Alia5/inputmap/device"

// NavigationSource maps Accept and Cancel to the left and right buttons and
// scrolling to the wheel signs. Everything else has no mouse source.
func (m *Mouse) NavigationSource(n device.Navigation) (device.NavigationSource, bool) {
	switch n {
	case device.NavAccept:
		return device.NavigationSource{Input: Left.Input()}, true
	case device.NavCancel:
		return device.NavigationSource{Input: Right.Input()}, true
	case device.NavScrollUp:
		return device.NavigationSource{Input: WheelVertical, Sign: -1}, true
	case device.NavScrollDown:
		return device.NavigationSource{Input: WheelVertical, Sign: 1}, true
	case device.NavScrollLeft:
		return device.NavigationSource{Input: WheelHorizontal, Sign: -1}, true
	case device.NavScrollRight:
		return device.NavigationSource{Input: WheelHorizontal, Sign: 1}, true
	case device.NavLeft, device.NavRight, device.NavUp, device.NavDown,
		device.NavHome, device.NavEnd, device.NavBack, device.NavForward,
		device.NavMenu, device.NavView,
		device.NavPageLeft, device.NavPageRight, device.NavPageUp, device.NavPageDown:
		return device.NavigationSource{}, false
	}
	return device.NavigationSource{}, false
}

func (m *Mouse) CanTriggerNavigation(n device.Navigation) bool {
	_, ok := m.NavigationSource(n)
	return ok
}

func (m *Mouse) IsNavigationPressed(n device.Navigation) bool {
	src, ok := m.NavigationSource(n)
	return ok && src.Pressed(m)
}

func (m *Mouse) WasNavigationPressedLastFrame(n device.Navigation) bool {
	src, ok := m.NavigationSource(n)
	return ok && src.PressedLastFrame(m)
}

package dualshock4

import "github.com/Alia5/inputmap/device"

func stickSource(id device.InputID, sign float64) (device.NavigationSource, bool) {
	return device.NavigationSource{Input: id, Sign: sign, Threshold: NavigationThreshold}, true
}

var buttonNavigation = map[device.Navigation]Button{
	device.NavAccept:  Cross,
	device.NavCancel:  Circle,
	device.NavMenu:    Options,
	device.NavView:    Touchpad,
	device.NavLeft:    Left,
	device.NavRight:   Right,
	device.NavUp:      Up,
	device.NavDown:    Down,
	device.NavBack:    L1,
	device.NavForward: R1,
}

// NavigationSource follows the Xbox layout with Cross as accept, Options
// as menu and the touchpad click as view.
func (c *Controller) NavigationSource(n device.Navigation) (device.NavigationSource, bool) {
	if b, ok := buttonNavigation[n]; ok {
		return device.NavigationSource{Input: b.Input()}, true
	}
	switch n {
	case device.NavPageUp:
		return stickSource(LeftStickX, -1)
	case device.NavPageDown:
		return stickSource(LeftStickX, 1)
	case device.NavPageLeft:
		return stickSource(LeftStickY, -1)
	case device.NavPageRight:
		return stickSource(LeftStickY, 1)
	case device.NavScrollUp:
		return stickSource(RightStickX, -1)
	case device.NavScrollDown:
		return stickSource(RightStickX, 1)
	case device.NavScrollLeft:
		return stickSource(RightStickY, -1)
	case device.NavScrollRight:
		return stickSource(RightStickY, 1)
	}
	return device.NavigationSource{}, false
}

func (c *Controller) CanTriggerNavigation(n device.Navigation) bool {
	_, ok := c.NavigationSource(n)
	return ok
}

func (c *Controller) IsNavigationPressed(n device.Navigation) bool {
	src, ok := c.NavigationSource(n)
	return ok && src.Pressed(c)
}

func (c *Controller) WasNavigationPressedLastFrame(n device.Navigation) bool {
	src, ok := c.NavigationSource(n)
	return ok && src.PressedLastFrame(c)
}

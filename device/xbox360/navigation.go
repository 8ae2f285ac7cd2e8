package xbox360

import "github.com/Alia5/inputmap/device"

func buttonSource(b Button) (device.NavigationSource, bool) {
	return device.NavigationSource{Input: b.Input()}, true
}

func stickSource(id device.InputID, sign float64) (device.NavigationSource, bool) {
	return device.NavigationSource{Input: id, Sign: sign, Threshold: NavigationThreshold}, true
}

// NavigationSource maps UI navigation to the face buttons, the D-pad, the
// bumpers and the sticks. Home and End have no gamepad source.
func (g *Gamepad) NavigationSource(n device.Navigation) (device.NavigationSource, bool) {
	switch n {
	case device.NavAccept:
		return buttonSource(A)
	case device.NavCancel:
		return buttonSource(B)
	case device.NavMenu:
		return buttonSource(Start)
	case device.NavView:
		return buttonSource(Back)
	case device.NavLeft:
		return buttonSource(Left)
	case device.NavRight:
		return buttonSource(Right)
	case device.NavUp:
		return buttonSource(Up)
	case device.NavDown:
		return buttonSource(Down)
	case device.NavBack:
		return buttonSource(LeftBumper)
	case device.NavForward:
		return buttonSource(RightBumper)
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
	case device.NavHome, device.NavEnd:
		return device.NavigationSource{}, false
	}
	return device.NavigationSource{}, false
}

func (g *Gamepad) CanTriggerNavigation(n device.Navigation) bool {
	_, ok := g.NavigationSource(n)
	return ok
}

func (g *Gamepad) IsNavigationPressed(n device.Navigation) bool {
	src, ok := g.NavigationSource(n)
	return ok && src.Pressed(g)
}

func (g *Gamepad) WasNavigationPressedLastFrame(n device.Navigation) bool {
	src, ok := g.NavigationSource(n)
	return ok && src.PressedLastFrame(g)
}

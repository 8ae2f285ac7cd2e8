package keyboard

import "github.com/Alia5/inputmap/device"

// NavigationSource maps UI navigation to keys. Menu, View, Back, Forward,
// horizontal paging and scrolling have no keyboard source.
func (k *Keyboard) NavigationSource(n device.Navigation) (device.NavigationSource, bool) {
	key, ok := navigationKey(n)
	if !ok {
		return device.NavigationSource{}, false
	}
	return device.NavigationSource{Input: device.InputID(key)}, true
}

func navigationKey(n device.Navigation) (Key, bool) {
	switch n {
	case device.NavAccept:
		return KeyEnter, true
	case device.NavCancel:
		return KeyEscape, true
	case device.NavLeft:
		return KeyLeft, true
	case device.NavRight:
		return KeyRight, true
	case device.NavUp:
		return KeyUp, true
	case device.NavDown:
		return KeyDown, true
	case device.NavHome:
		return KeyHome, true
	case device.NavEnd:
		return KeyEnd, true
	case device.NavPageUp:
		return KeyPageUp, true
	case device.NavPageDown:
		return KeyPageDown, true
	case device.NavMenu, device.NavView, device.NavBack, device.NavForward,
		device.NavPageLeft, device.NavPageRight,
		device.NavScrollUp, device.NavScrollDown, device.NavScrollLeft, device.NavScrollRight:
		return KeyNone, false
	}
	return KeyNone, false
}

func (k *Keyboard) CanTriggerNavigation(n device.Navigation) bool {
	_, ok := navigationKey(n)
	return ok
}

func (k *Keyboard) IsNavigationPressed(n device.Navigation) bool {
	key, ok := navigationKey(n)
	return ok && k.frame.Current[key].Down
}

func (k *Keyboard) WasNavigationPressedLastFrame(n device.Navigation) bool {
	key, ok := navigationKey(n)
	return ok && k.frame.Last[key].Down
}

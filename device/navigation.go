package device

import (
	"math"
	"strings"

	"github.com/go-gl/mathgl/mgl64"
)

// Navigation is the closed set of UI navigation actions every role maps.
type Navigation int

const (
	NavAccept Navigation = iota
	NavCancel
	NavMenu
	NavView
	NavLeft
	NavRight
	NavUp
	NavDown
	NavHome
	NavEnd
	NavBack
	NavForward
	NavPageUp
	NavPageDown
	NavPageLeft
	NavPageRight
	NavScrollUp
	NavScrollDown
	NavScrollLeft
	NavScrollRight

	navigationCount
)

var navigationNames = [navigationCount]string{
	"Accept", "Cancel", "Menu", "View",
	"Left", "Right", "Up", "Down",
	"Home", "End", "Back", "Forward",
	"PageUp", "PageDown", "PageLeft", "PageRight",
	"ScrollUp", "ScrollDown", "ScrollLeft", "ScrollRight",
}

// Navigations returns every navigation action in declaration order.
func Navigations() []Navigation {
	out := make([]Navigation, navigationCount)
	for i := range out {
		out[i] = Navigation(i)
	}
	return out
}

func (n Navigation) Valid() bool { return n >= 0 && n < navigationCount }

func (n Navigation) String() string {
	if !n.Valid() {
		return "Navigation(?)"
	}
	return navigationNames[n]
}

// ParseNavigation resolves a navigation name, case-insensitively.
func ParseNavigation(s string) (Navigation, bool) {
	for i, name := range navigationNames {
		if strings.EqualFold(name, s) {
			return Navigation(i), true
		}
	}
	return 0, false
}

// Direction is the screen-space direction the action moves a UI cursor,
// with +Y pointing down. Home and End jump by an infinite distance.
func (n Navigation) Direction() mgl64.Vec2 {
	switch n {
	case NavLeft, NavBack, NavPageLeft, NavScrollLeft:
		return mgl64.Vec2{-1, 0}
	case NavRight, NavForward, NavPageRight, NavScrollRight:
		return mgl64.Vec2{1, 0}
	case NavUp, NavScrollUp:
		return mgl64.Vec2{0, -1}
	case NavDown, NavScrollDown:
		return mgl64.Vec2{0, 1}
	case NavHome:
		return mgl64.Vec2{0, math.Inf(-1)}
	case NavEnd:
		return mgl64.Vec2{0, math.Inf(1)}
	case NavPageUp:
		return mgl64.Vec2{0, -10}
	case NavPageDown:
		return mgl64.Vec2{0, 10}
	case NavAccept, NavCancel, NavMenu, NavView:
		return mgl64.Vec2{}
	}
	return mgl64.Vec2{}
}

// NavigationSource ties a navigation action to one physical input.
//
// With Sign zero the input's pressed state is used. With Sign -1 or +1 the
// input's value must be beyond Threshold on that side.
type NavigationSource struct {
	Input     InputID
	Sign      float64
	Threshold float64
}

func (s NavigationSource) active(v float64) bool {
	if s.Sign < 0 {
		return v < -s.Threshold
	}
	return v > s.Threshold
}

// Pressed evaluates the source against d's current state.
func (s NavigationSource) Pressed(d Device) bool {
	if s.Sign == 0 {
		return d.IsInputPressed(s.Input)
	}
	return s.active(d.InputValue(s.Input))
}

// PressedLastFrame evaluates the source against d's last-frame state.
func (s NavigationSource) PressedLastFrame(d Device) bool {
	if s.Sign == 0 {
		return d.WasInputPressedLastFrame(s.Input)
	}
	return s.active(d.InputValueLastFrame(s.Input))
}

// InjectValue is the input value that activates this source.
func (s NavigationSource) InjectValue() float64 {
	if s.Sign == 0 {
		return 1
	}
	return s.Sign
}

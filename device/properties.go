package device

import (
	"errors"
	"fmt"
	"math"
	"time"

	"github.com/go-gl/mathgl/mgl64"
)

// InputFlags is a bitset describing an input's semantics.
type InputFlags uint16

const (
	// Digital inputs are boolean rather than real valued.
	Digital InputFlags = 1 << iota
	ReturnsToNeutral
	HasDeadzone
	// Correlated inputs influence or are influenced by another input.
	Correlated
	// Emulated inputs are derived from inputs of the other kind.
	Emulated
	CanRepeat
	CanChangeUpdateFrequency
	HasForceFeedback
)

// Has reports whether all bits of f are set.
func (fl InputFlags) Has(f InputFlags) bool { return fl&f == f }

// ComponentProperties are shared by input and output descriptors.
type ComponentProperties struct {
	Name      string
	ShortName string
	GlyphURI  string

	// UpdateFrequency is zero when unknown.
	UpdateFrequency time.Duration

	PhysicalPosition mgl64.Vec3
	PreviewPosition  mgl64.Vec3

	HIDUsage []uint16
}

// InputProperties describes one physical input.
type InputProperties struct {
	ComponentProperties

	Flags InputFlags

	PressedThreshold float64

	DeadZoneMin float64
	DeadZoneMax float64

	MinValue     float64
	NeutralValue float64
	MaxValue     float64
	StepSize     float64

	// Effort is a relative weight of how hard the input is to activate.
	Effort float64

	Unit                string
	Dimension           string
	RepresentsDirection mgl64.Vec3
}

// DefaultInputProperties returns a descriptor with the standard analog defaults.
func DefaultInputProperties(name string) InputProperties {
	return InputProperties{
		ComponentProperties: ComponentProperties{Name: name},
		PressedThreshold:    0.5,
		DeadZoneMin:         -0.1,
		DeadZoneMax:         0.1,
		MinValue:            -1,
		NeutralValue:        0,
		MaxValue:            1,
	}
}

// ButtonProperties returns the descriptor preset for a digital button.
func ButtonProperties(name, glyph string) InputProperties {
	p := DefaultInputProperties(name)
	p.GlyphURI = glyph
	p.Flags |= Digital | ReturnsToNeutral
	p.DeadZoneMin, p.DeadZoneMax, p.MinValue = 0, 0, 0
	p.StepSize = 1
	return p
}

// AxisProperties returns the descriptor preset for a self-centering analog axis.
func AxisProperties(name string, min, max float64) InputProperties {
	p := DefaultInputProperties(name)
	p.Flags |= ReturnsToNeutral | HasDeadzone
	p.MinValue, p.MaxValue = min, max
	p.NeutralValue = p.Clamp(p.NeutralValue)
	return p
}

var ErrInvalidProperties = errors.New("invalid input properties")

// Validate checks the range and dead zone ordering.
func (p InputProperties) Validate() error {
	if !(p.MinValue <= p.NeutralValue && p.NeutralValue <= p.MaxValue) {
		return fmt.Errorf("%w: %q range min=%v neutral=%v max=%v", ErrInvalidProperties, p.Name, p.MinValue, p.NeutralValue, p.MaxValue)
	}
	if !(p.DeadZoneMin <= 0 && 0 <= p.DeadZoneMax) {
		return fmt.Errorf("%w: %q dead zone [%v, %v]", ErrInvalidProperties, p.Name, p.DeadZoneMin, p.DeadZoneMax)
	}
	return nil
}

// Clamp limits v to the declared range. NaN reads as neutral.
func (p InputProperties) Clamp(v float64) float64 {
	if math.IsNaN(v) {
		return p.NeutralValue
	}
	return math.Max(p.MinValue, math.Min(p.MaxValue, v))
}

// InDeadZone reports whether v lies within the dead zone around neutral.
func (p InputProperties) InDeadZone(v float64) bool {
	d := v - p.NeutralValue
	return d >= p.DeadZoneMin && d <= p.DeadZoneMax
}

// IsPressed applies the digital or threshold interpretation to v.
func (p InputProperties) IsPressed(v float64) bool {
	if p.Flags.Has(Digital) {
		return v != p.NeutralValue
	}
	return math.Abs(v) >= p.PressedThreshold
}

// OutputType classifies an output component.
type OutputType int

const (
	OutputFlag OutputType = iota
	OutputValue
	OutputColor
	OutputVibration
	OutputImage
	OutputVideo
	OutputAudio
	OutputText
	OutputPersistentData
	OutputOther
)

// OutputFlags is a bitset describing output behavior.
type OutputFlags uint8

const (
	// OutputContinuous outputs hold a value instead of reacting to requests.
	OutputContinuous OutputFlags = 1 << iota
	OutputCanBeDisabled
	OutputNotification
)

// OutputProperties describes one output component.
type OutputProperties struct {
	ComponentProperties

	Type       OutputType
	Flags      OutputFlags
	Resolution mgl64.Vec3
}

// DefaultOutputProperties returns a descriptor of type OutputOther with unit resolution.
func DefaultOutputProperties(name string) OutputProperties {
	return OutputProperties{
		ComponentProperties: ComponentProperties{Name: name},
		Type:                OutputOther,
		Resolution:          mgl64.Vec3{1, 1, 1},
	}
}

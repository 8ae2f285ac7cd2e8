// Package replay drives an input.System from a script of timed input events
// and reports the resulting action states tick by tick.
package replay

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"

	toml "github.com/pelletier/go-toml"
	yaml "gopkg.in/yaml.v3"

	"github.com/Alia5/inputmap/device"
	"github.com/Alia5/inputmap/input"
)

// DefaultInterval is the simulated time between ticks in milliseconds.
const DefaultInterval = 16

var ErrInvalidScript = errors.New("invalid replay script")

// Script is a replay: the devices to create, the bindings to apply, the
// actions to watch and the ticks to play.
type Script struct {
	Name string `json:"name,omitempty" yaml:"name,omitempty" toml:"name,omitempty"`
	// Devices are registered device types created into consecutive slots.
	// Empty selects input.DefaultDeviceTypes.
	Devices []string `json:"devices,omitempty" yaml:"devices,omitempty" toml:"devices,omitempty"`
	// Interval is the tick length in milliseconds.
	Interval int                `json:"interval_ms,omitempty" yaml:"interval_ms,omitempty" toml:"interval_ms,omitempty"`
	Mappings input.MappingTable `json:"mappings,omitempty" yaml:"mappings,omitempty" toml:"mappings,omitempty"`
	Binds    []Bind             `json:"binds,omitempty" yaml:"binds,omitempty" toml:"binds,omitempty"`
	Watch    []Watch            `json:"watch" yaml:"watch" toml:"watch"`
	Ticks    []Tick             `json:"ticks" yaml:"ticks" toml:"ticks"`
}

// Bind maps an action to inputs named as their devices name them, or to a
// navigation action on every device.
type Bind struct {
	Player     uint64   `json:"player" yaml:"player" toml:"player"`
	Action     string   `json:"action" yaml:"action" toml:"action"`
	Kind       string   `json:"kind,omitempty" yaml:"kind,omitempty" toml:"kind,omitempty"`
	Device     int      `json:"device,omitempty" yaml:"device,omitempty" toml:"device,omitempty"`
	Inputs     []string `json:"inputs,omitempty" yaml:"inputs,omitempty,flow" toml:"inputs,omitempty"`
	Navigation string   `json:"navigation,omitempty" yaml:"navigation,omitempty" toml:"navigation,omitempty"`
	Pressed    float64  `json:"pressed,omitempty" yaml:"pressed,omitempty" toml:"pressed,omitempty"`
	Released   float64  `json:"released,omitempty" yaml:"released,omitempty" toml:"released,omitempty"`
	Sign       float64  `json:"sign,omitempty" yaml:"sign,omitempty" toml:"sign,omitempty"`
	Threshold  float64  `json:"threshold,omitempty" yaml:"threshold,omitempty" toml:"threshold,omitempty"`
}

// Watch selects an action reported after every tick.
type Watch struct {
	Player uint64 `json:"player" yaml:"player" toml:"player"`
	Action string `json:"action" yaml:"action" toml:"action"`
}

// Tick is one frame of the replay. Events are applied in order before the
// watched actions are queried.
type Tick struct {
	// Repeat plays the tick this many times. Zero plays it once.
	Repeat int     `json:"repeat,omitempty" yaml:"repeat,omitempty" toml:"repeat,omitempty"`
	Events []Event `json:"events,omitempty" yaml:"events,omitempty" toml:"events,omitempty"`
}

// EventKind selects what an Event does.
type EventKind string

const (
	// EventAction injects Value into an action's first connected binding.
	EventAction EventKind = "action"
	// EventInput sets a named input of a device slot.
	EventInput EventKind = "input"
	// EventNavigation presses a navigation action while Value[0] is non-zero.
	EventNavigation EventKind = "navigation"
	// EventReset returns an action's bindings to neutral.
	EventReset EventKind = "reset"
	// EventDisconnect empties a device slot.
	EventDisconnect EventKind = "disconnect"
)

// Event is one input change of a tick.
type Event struct {
	Kind       EventKind `json:"kind" yaml:"kind" toml:"kind"`
	Player     uint64    `json:"player,omitempty" yaml:"player,omitempty" toml:"player,omitempty"`
	Action     string    `json:"action,omitempty" yaml:"action,omitempty" toml:"action,omitempty"`
	Device     int       `json:"device,omitempty" yaml:"device,omitempty" toml:"device,omitempty"`
	Input      string    `json:"input,omitempty" yaml:"input,omitempty" toml:"input,omitempty"`
	Navigation string    `json:"navigation,omitempty" yaml:"navigation,omitempty" toml:"navigation,omitempty"`
	Value      []float64 `json:"value,omitempty" yaml:"value,omitempty,flow" toml:"value,omitempty"`
}

func (e Event) value(i int) float64 {
	if i < len(e.Value) {
		return e.Value[i]
	}
	return 0
}

// Validate checks the script without creating devices.
func (s Script) Validate() error {
	if s.Interval < 0 {
		return fmt.Errorf("%w: negative interval", ErrInvalidScript)
	}
	for i, b := range s.Binds {
		if b.Action == "" {
			return fmt.Errorf("%w: bind %d: empty action", ErrInvalidScript, i)
		}
		if b.Navigation != "" {
			if _, ok := device.ParseNavigation(b.Navigation); !ok {
				return fmt.Errorf("%w: bind %d: unknown navigation %q", ErrInvalidScript, i, b.Navigation)
			}
			continue
		}
		kind := input.BindButton
		if b.Kind != "" {
			k, ok := input.ParseBindingKind(b.Kind)
			if !ok {
				return fmt.Errorf("%w: bind %d: unknown kind %q", ErrInvalidScript, i, b.Kind)
			}
			kind = k
		}
		want := 1
		if kind == input.BindAxis2D {
			want = 2
		}
		if len(b.Inputs) != want {
			return fmt.Errorf("%w: bind %d: %s needs %d inputs", ErrInvalidScript, i, kind, want)
		}
	}
	for i, w := range s.Watch {
		if w.Action == "" {
			return fmt.Errorf("%w: watch %d: empty action", ErrInvalidScript, i)
		}
	}
	for i, t := range s.Ticks {
		if t.Repeat < 0 {
			return fmt.Errorf("%w: tick %d: negative repeat", ErrInvalidScript, i)
		}
		for j, e := range t.Events {
			if err := e.validate(); err != nil {
				return fmt.Errorf("%w: tick %d event %d: %w", ErrInvalidScript, i, j, err)
			}
		}
	}
	return nil
}

func (e Event) validate() error {
	switch e.Kind {
	case EventAction, EventReset:
		if e.Action == "" {
			return errors.New("missing action")
		}
	case EventInput:
		if e.Input == "" {
			return errors.New("missing input")
		}
	case EventNavigation:
		if _, ok := device.ParseNavigation(e.Navigation); !ok {
			return fmt.Errorf("unknown navigation %q", e.Navigation)
		}
	case EventDisconnect:
	default:
		return fmt.Errorf("unknown kind %q", e.Kind)
	}
	return nil
}

// Load decodes and validates a script.
func Load(r io.Reader, f input.Format) (Script, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return Script{}, fmt.Errorf("read script: %w", err)
	}
	var s Script
	switch f {
	case input.FormatJSON:
		dec := json.NewDecoder(bytes.NewReader(data))
		dec.DisallowUnknownFields()
		err = dec.Decode(&s)
	case input.FormatYAML:
		err = yaml.Unmarshal(data, &s)
	case input.FormatTOML:
		err = toml.Unmarshal(data, &s)
	default:
		return Script{}, fmt.Errorf("%w: %q", input.ErrUnknownFormat, f)
	}
	if err != nil {
		return Script{}, fmt.Errorf("decode %s script: %w", f, err)
	}
	if err := s.Validate(); err != nil {
		return Script{}, err
	}
	return s, nil
}

// LoadFile loads a script, picking the format from the file extension.
func LoadFile(path string) (Script, error) {
	f, err := input.FormatFromPath(path)
	if err != nil {
		return Script{}, err
	}
	file, err := os.Open(path)
	if err != nil {
		return Script{}, fmt.Errorf("open script: %w", err)
	}
	defer file.Close()
	return Load(file, f)
}

package replay

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/go-gl/mathgl/mgl64"

	"github.com/Alia5/inputmap/device"
	"github.com/Alia5/inputmap/input"
)

// Epoch is the simulated time of tick zero.
var Epoch = time.Date(2000, 1, 1, 0, 0, 0, 0, time.UTC)

// State is a watched action after one tick.
type State struct {
	Player   uint64     `json:"player"`
	Action   string     `json:"action"`
	Pressed  bool       `json:"pressed"`
	Down     bool       `json:"down"`
	Up       bool       `json:"up"`
	Value    float64    `json:"value"`
	Vector   [2]float64 `json:"vector"`
	Repeats  int        `json:"repeats,omitempty"`
	Name     string     `json:"name"`
	LastSlot int        `json:"last_active"`
}

// TickResult holds the watched states of one tick.
type TickResult struct {
	Tick    int           `json:"tick"`
	Elapsed time.Duration `json:"elapsed"`
	States  []State       `json:"states"`
}

// Runner plays a Script against its own System.
type Runner struct {
	script   Script
	sys      *input.System
	logger   *slog.Logger
	now      time.Time
	interval time.Duration
}

// New builds the script's devices and mappings. opts are applied after the
// runner's own clock and device options.
func New(s Script, logger *slog.Logger, opts ...input.Option) (*Runner, error) {
	if err := s.Validate(); err != nil {
		return nil, err
	}
	if logger == nil {
		logger = slog.Default()
	}
	r := &Runner{script: s, logger: logger, now: Epoch}
	r.interval = time.Duration(s.Interval) * time.Millisecond
	if s.Interval == 0 {
		r.interval = DefaultInterval * time.Millisecond
	}

	base := []input.Option{
		input.WithLogger(logger),
		input.WithClock(func() time.Time { return r.now }),
	}
	if len(s.Devices) > 0 {
		base = append(base, input.WithDeviceTypes(s.Devices...))
	}
	r.sys = input.New(append(base, opts...)...)
	if err := r.sys.Init(); err != nil {
		return nil, err
	}
	if err := r.sys.LoadMappings(s.Mappings); err != nil {
		return nil, fmt.Errorf("load mappings: %w", err)
	}
	for i, b := range s.Binds {
		if err := r.bind(b); err != nil {
			return nil, fmt.Errorf("bind %d: %w", i, err)
		}
	}
	return r, nil
}

// System returns the system the runner drives.
func (r *Runner) System() *input.System { return r.sys }

func (r *Runner) lookup(slot int, name string) (device.InputID, error) {
	d := r.sys.Device(slot)
	if d == nil {
		return device.InvalidInput, fmt.Errorf("no device in slot %d", slot)
	}
	id, ok := device.LookupInput(d, name)
	if !ok {
		return device.InvalidInput, fmt.Errorf("%s has no input %q", d.Name(), name)
	}
	return id, nil
}

func (r *Runner) bind(b Bind) error {
	a := input.On(device.PlayerID(b.Player), b.Action)
	if b.Navigation != "" {
		n, _ := device.ParseNavigation(b.Navigation)
		r.sys.MapNavigation(n, a)
		return nil
	}

	ids := make([]device.InputID, len(b.Inputs))
	for i, name := range b.Inputs {
		id, err := r.lookup(b.Device, name)
		if err != nil {
			return err
		}
		ids[i] = id
	}

	kind := input.BindButton
	if b.Kind != "" {
		kind, _ = input.ParseBindingKind(b.Kind)
	}
	switch kind {
	case input.BindButton:
		r.sys.MapButton(ids[0], b.Device, a)
	case input.BindAxis1D:
		r.sys.MapAxis1D(ids[0], b.Device, a)
	case input.BindAxis2D:
		r.sys.MapAxis2D(ids[0], ids[1], b.Device, a)
	case input.BindButtonToAxis:
		r.sys.MapButtonToAxis(ids[0], b.Device, b.Pressed, b.Released, a)
	case input.BindHalfAxis:
		r.sys.MapHalfAxis(ids[0], b.Device, b.Sign, b.Threshold, a)
	}
	return nil
}

func (r *Runner) apply(e Event) error {
	switch e.Kind {
	case EventAction:
		a := input.On(device.PlayerID(e.Player), e.Action)
		if !r.sys.InjectInputChange(a, mgl64.Vec3{e.value(0), e.value(1), e.value(2)}) {
			r.logger.Warn("Action injection had no target", "action", a.String())
		}
	case EventReset:
		r.sys.ResetInput(input.On(device.PlayerID(e.Player), e.Action))
	case EventInput:
		id, err := r.lookup(e.Device, e.Input)
		if err != nil {
			return err
		}
		inj := r.sys.Device(e.Device).Capabilities().Injector
		if inj == nil {
			return fmt.Errorf("slot %d does not accept input", e.Device)
		}
		inj.InjectInput(id, e.value(0))
	case EventNavigation:
		n, _ := device.ParseNavigation(e.Navigation)
		if !r.sys.InjectNavigation(n, e.value(0) != 0) {
			r.logger.Warn("No device can trigger navigation", "navigation", n.String())
		}
	case EventDisconnect:
		r.sys.DisconnectDevice(e.Device)
	}
	return nil
}

func (r *Runner) states() []State {
	out := make([]State, 0, len(r.script.Watch))
	for _, w := range r.script.Watch {
		a := input.On(device.PlayerID(w.Player), w.Action)
		// X of the vector is the axis value for every binding kind.
		v2 := r.sys.Axis2DValue(a)
		out = append(out, State{
			Player:   w.Player,
			Action:   w.Action,
			Pressed:  r.sys.IsButtonPressed(a),
			Down:     r.sys.WasButtonPressed(a),
			Up:       r.sys.WasButtonReleased(a),
			Value:    v2.X(),
			Vector:   [2]float64{v2.X(), v2.Y()},
			Repeats:  r.sys.ButtonRepeatCount(a),
			Name:     r.sys.ButtonNameForInput(a),
			LastSlot: r.sys.LastActiveDevice(),
		})
	}
	return out
}

// Run plays every tick: apply events, report the watched states, then
// start the next frame. It stops early when ctx is done or emit fails.
func (r *Runner) Run(ctx context.Context, emit func(TickResult) error) error {
	n := 0
	for i, t := range r.script.Ticks {
		plays := max(1, t.Repeat)
		for range plays {
			if err := ctx.Err(); err != nil {
				return err
			}
			for j, e := range t.Events {
				if err := r.apply(e); err != nil {
					return fmt.Errorf("tick %d event %d: %w", i, j, err)
				}
			}
			res := TickResult{Tick: n, Elapsed: r.now.Sub(Epoch), States: r.states()}
			if err := emit(res); err != nil {
				return err
			}
			r.sys.Update()
			r.now = r.now.Add(r.interval)
			n++
		}
	}
	r.logger.Debug("Replay finished", "script", r.script.Name, "ticks", n)
	return nil
}

package input

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"path/filepath"
	"sort"
	"strings"

	toml "github.com/pelletier/go-toml"
	yaml "gopkg.in/yaml.v3"

	"github.com/Alia5/inputmap/device"
)

var (
	ErrUnknownFormat  = errors.New("unknown mapping format")
	ErrInvalidMapping = errors.New("invalid mapping")
)

// MappingTable is the serialized form of a System's mapping table.
type MappingTable struct {
	Players []PlayerMappings `json:"players" yaml:"players" toml:"players"`
}

// PlayerMappings holds the bound devices and actions of one player.
type PlayerMappings struct {
	Player  uint64           `json:"player" yaml:"player" toml:"player"`
	Devices []int            `json:"devices,omitempty" yaml:"devices,omitempty" toml:"devices,omitempty"`
	Actions []ActionMappings `json:"actions" yaml:"actions" toml:"actions"`
}

// ActionMappings holds the ordered bindings of one action.
type ActionMappings struct {
	Action   string          `json:"action" yaml:"action" toml:"action"`
	Bindings []BindingRecord `json:"bindings" yaml:"bindings" toml:"bindings"`
}

// BindingRecord is the serialized form of a Binding.
type BindingRecord struct {
	Kind      string   `json:"kind" yaml:"kind" toml:"kind"`
	Device    int      `json:"device" yaml:"device" toml:"device"`
	Inputs    []uint64 `json:"inputs" yaml:"inputs,flow" toml:"inputs"`
	Pressed   float64  `json:"pressed,omitempty" yaml:"pressed,omitempty" toml:"pressed,omitempty"`
	Released  float64  `json:"released,omitempty" yaml:"released,omitempty" toml:"released,omitempty"`
	Sign      float64  `json:"sign,omitempty" yaml:"sign,omitempty" toml:"sign,omitempty"`
	Threshold float64  `json:"threshold,omitempty" yaml:"threshold,omitempty" toml:"threshold,omitempty"`
}

func recordOf(b Binding) BindingRecord {
	r := BindingRecord{
		Kind:      b.Kind.String(),
		Device:    b.Device,
		Pressed:   b.Pressed,
		Released:  b.Released,
		Sign:      b.Sign,
		Threshold: b.Threshold,
	}
	for _, id := range b.Inputs {
		if id.Valid() {
			r.Inputs = append(r.Inputs, uint64(id))
		}
	}
	return r
}

func (r BindingRecord) binding() (Binding, error) {
	kind, ok := ParseBindingKind(r.Kind)
	if !ok {
		return Binding{}, fmt.Errorf("%w: unknown kind %q", ErrInvalidMapping, r.Kind)
	}
	want := 1
	if kind == BindAxis2D {
		want = 2
	}
	if len(r.Inputs) != want {
		return Binding{}, fmt.Errorf("%w: %s binding needs %d inputs, got %d", ErrInvalidMapping, kind, want, len(r.Inputs))
	}
	if r.Device < 0 {
		return Binding{}, fmt.Errorf("%w: negative device slot %d", ErrInvalidMapping, r.Device)
	}
	b := Binding{
		Kind:      kind,
		Device:    r.Device,
		Inputs:    [2]device.InputID{device.InvalidInput, device.InvalidInput},
		Pressed:   r.Pressed,
		Released:  r.Released,
		Sign:      r.Sign,
		Threshold: r.Threshold,
	}
	for i, id := range r.Inputs {
		if !device.InputID(id).Valid() {
			return Binding{}, fmt.Errorf("%w: invalid input id", ErrInvalidMapping)
		}
		b.Inputs[i] = device.InputID(id)
	}
	if kind == BindHalfAxis && r.Sign == 0 {
		return Binding{}, fmt.Errorf("%w: half axis binding without sign", ErrInvalidMapping)
	}
	return b, nil
}

// SerializeMappings exports the mapping table. Players are ordered by id
// and actions by name; bindings keep their registration order.
func (s *System) SerializeMappings() MappingTable {
	var t MappingTable
	for _, id := range s.Players() {
		pl := s.players[id]
		pm := PlayerMappings{Player: uint64(id), Devices: append([]int(nil), pl.devices...)}
		for _, action := range s.Actions(id) {
			am := ActionMappings{Action: action}
			for _, b := range pl.mappings[action] {
				am.Bindings = append(am.Bindings, recordOf(b))
			}
			pm.Actions = append(pm.Actions, am)
		}
		t.Players = append(t.Players, pm)
	}
	return t
}

// LoadMappings replaces the mapping table with t. The table is validated
// first; on error the current mappings are left untouched.
func (s *System) LoadMappings(t MappingTable) error {
	players := make(map[device.PlayerID]*player, len(t.Players))
	for _, pm := range t.Players {
		id := device.PlayerID(pm.Player)
		if _, dup := players[id]; dup {
			return fmt.Errorf("%w: duplicate player %d", ErrInvalidMapping, pm.Player)
		}
		pl := newPlayer()
		pl.devices = append(pl.devices, pm.Devices...)
		for _, am := range pm.Actions {
			if am.Action == "" {
				return fmt.Errorf("%w: player %d: empty action id", ErrInvalidMapping, pm.Player)
			}
			for i, r := range am.Bindings {
				b, err := r.binding()
				if err != nil {
					return fmt.Errorf("player %d action %q binding %d: %w", pm.Player, am.Action, i, err)
				}
				pl.add(am.Action, b)
			}
		}
		players[id] = pl
	}

	s.players = players
	for id, pl := range players {
		for _, dev := range pl.devices {
			if d := s.Device(dev); d != nil {
				d.AssociatePlayer(id)
			}
		}
	}
	return nil
}

// Format is a mapping table encoding.
type Format string

const (
	FormatJSON Format = "json"
	FormatYAML Format = "yaml"
	FormatTOML Format = "toml"
)

// ParseFormat resolves a format name, accepting "yml" for YAML.
func ParseFormat(s string) (Format, error) {
	switch strings.ToLower(s) {
	case "json":
		return FormatJSON, nil
	case "yaml", "yml":
		return FormatYAML, nil
	case "toml":
		return FormatTOML, nil
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownFormat, s)
}

// FormatFromPath picks the format from a file extension.
func FormatFromPath(path string) (Format, error) {
	ext := strings.TrimPrefix(filepath.Ext(path), ".")
	if ext == "" {
		return "", fmt.Errorf("%w: %s has no extension", ErrUnknownFormat, path)
	}
	return ParseFormat(ext)
}

// EncodeMappings writes t to w in format f.
func EncodeMappings(w io.Writer, f Format, t MappingTable) error {
	var (
		data []byte
		err  error
	)
	switch f {
	case FormatJSON:
		data, err = json.MarshalIndent(t, "", "  ")
		data = append(data, '\n')
	case FormatYAML:
		data, err = yaml.Marshal(t)
	case FormatTOML:
		data, err = toml.Marshal(t)
	default:
		return fmt.Errorf("%w: %q", ErrUnknownFormat, f)
	}
	if err != nil {
		return fmt.Errorf("encode %s mappings: %w", f, err)
	}
	if _, err := w.Write(data); err != nil {
		return fmt.Errorf("write mappings: %w", err)
	}
	return nil
}

// DecodeMappings reads a table in format f from r.
func DecodeMappings(r io.Reader, f Format) (MappingTable, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return MappingTable{}, fmt.Errorf("read mappings: %w", err)
	}
	var t MappingTable
	switch f {
	case FormatJSON:
		dec := json.NewDecoder(bytes.NewReader(data))
		dec.DisallowUnknownFields()
		err = dec.Decode(&t)
	case FormatYAML:
		err = yaml.Unmarshal(data, &t)
	case FormatTOML:
		err = toml.Unmarshal(data, &t)
	default:
		return MappingTable{}, fmt.Errorf("%w: %q", ErrUnknownFormat, f)
	}
	if err != nil {
		return MappingTable{}, fmt.Errorf("decode %s mappings: %w", f, err)
	}
	return t, nil
}

// SortedPlayers returns the player ids of t in ascending order.
func (t MappingTable) SortedPlayers() []uint64 {
	out := make([]uint64, 0, len(t.Players))
	for _, p := range t.Players {
		out = append(out, p.Player)
	}
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })
	return out
}

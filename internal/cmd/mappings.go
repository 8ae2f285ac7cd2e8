package cmd

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/Alia5/inputmap/input"
	"github.com/Alia5/inputmap/internal/configpaths"
)

// DefaultAppName names the per-user data directory of saved profiles.
const DefaultAppName = "inputmap"

// MappingsCommand groups mapping table subcommands.
type MappingsCommand struct {
	Convert MappingsConvert `cmd:"" help:"Convert a mapping table between json, yaml and toml"`
	Check   MappingsCheck   `cmd:"" help:"Validate a mapping table and list its bindings"`
	Save    MappingsSave    `cmd:"" help:"Store a mapping table as a named profile"`
	Load    MappingsLoad    `cmd:"" help:"Export a named profile to a file"`
}

func readTable(path string) (input.MappingTable, error) {
	f, err := input.FormatFromPath(path)
	if err != nil {
		return input.MappingTable{}, err
	}
	file, err := os.Open(path)
	if err != nil {
		return input.MappingTable{}, fmt.Errorf("open mappings: %w", err)
	}
	defer file.Close()
	return input.DecodeMappings(file, f)
}

func writeTable(path string, t input.MappingTable, force bool) error {
	f, err := input.FormatFromPath(path)
	if err != nil {
		return err
	}
	if !force {
		if _, err := os.Stat(path); err == nil {
			return errors.New("destination exists; use --force to overwrite")
		}
	}
	if err := configpaths.EnsureDir(path); err != nil {
		return err
	}
	file, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create mappings: %w", err)
	}
	if err := input.EncodeMappings(file, f, t); err != nil {
		_ = file.Close()
		return err
	}
	return file.Close()
}

// MappingsConvert re-encodes a mapping table.
type MappingsConvert struct {
	In    string `arg:"" name:"in" help:"Source file" type:"existingfile"`
	Out   string `arg:"" name:"out" help:"Destination file; the extension selects the format"`
	Force bool   `help:"Overwrite if the file already exists"`
}

func (c *MappingsConvert) Run(logger *slog.Logger) error {
	t, err := readTable(c.In)
	if err != nil {
		return err
	}
	if err := writeTable(c.Out, t, c.Force); err != nil {
		return err
	}
	logger.Info("Converted mappings", "in", c.In, "out", c.Out, "players", len(t.Players))
	return nil
}

// MappingsCheck loads a mapping table into a fresh system and prints it.
type MappingsCheck struct {
	File    string   `arg:"" name:"file" help:"Mapping table" type:"existingfile"`
	Devices []string `help:"Device types created into slots before loading" default:"keyboard,mouse,xbox360"`
}

func (c *MappingsCheck) Run(logger *slog.Logger) error {
	return c.run(logger, os.Stdout)
}

func (c *MappingsCheck) run(logger *slog.Logger, out io.Writer) error {
	t, err := readTable(c.File)
	if err != nil {
		return err
	}
	sys := input.New(input.WithLogger(logger), input.WithDeviceTypes(c.Devices...))
	if err := sys.Init(); err != nil {
		return err
	}
	if err := sys.LoadMappings(t); err != nil {
		return err
	}

	for _, p := range sys.Players() {
		fmt.Fprintf(out, "player %d\n", p)
		for _, slot := range sys.BoundDevices(p) {
			fmt.Fprintf(out, "  device %d: %s\n", slot, sys.InputDeviceName(slot))
		}
		for _, id := range sys.Actions(p) {
			a := input.On(p, id)
			fmt.Fprintf(out, "  %s: %s\n", id, sys.ButtonNamesForInput(a))
			for _, b := range sys.Mappings(a) {
				if sys.Device(b.Device) == nil {
					logger.Warn("Binding targets an empty slot", "player", uint64(p), "action", id, "slot", b.Device)
					continue
				}
				for _, in := range b.Inputs {
					if in.Valid() && !sys.Device(b.Device).IsInputValid(in) {
						return fmt.Errorf("%w: player %d action %q: %s has no input %d",
							input.ErrInvalidMapping, p, id, sys.InputDeviceName(b.Device), in)
					}
				}
			}
		}
	}
	return nil
}

func openProfiles(app string) (*input.ProfileStore, error) {
	if app == "" {
		app = DefaultAppName
	}
	return input.OpenProfileStore(app)
}

// MappingsSave stores a mapping table file as a profile.
type MappingsSave struct {
	Name string `arg:"" name:"name" help:"Profile name"`
	File string `arg:"" name:"file" help:"Mapping table" type:"existingfile"`
	App  string `help:"Application data directory name" default:"inputmap" env:"INPUTMAP_APP"`
}

func (c *MappingsSave) Run(logger *slog.Logger) error {
	t, err := readTable(c.File)
	if err != nil {
		return err
	}
	store, err := openProfiles(c.App)
	if err != nil {
		return err
	}
	if err := store.SaveProfile(c.Name, t); err != nil {
		return err
	}
	logger.Info("Saved profile", "name", c.Name, "players", len(t.Players))
	return nil
}

// MappingsLoad writes a stored profile to a file.
type MappingsLoad struct {
	Name  string `arg:"" name:"name" help:"Profile name"`
	File  string `arg:"" name:"file" help:"Destination file; the extension selects the format"`
	App   string `help:"Application data directory name" default:"inputmap" env:"INPUTMAP_APP"`
	Force bool   `help:"Overwrite if the file already exists"`
}

func (c *MappingsLoad) Run(logger *slog.Logger) error {
	store, err := openProfiles(c.App)
	if err != nil {
		return err
	}
	t, err := store.LoadProfile(c.Name)
	if err != nil {
		return err
	}
	if err := writeTable(c.File, t, c.Force); err != nil {
		return err
	}
	logger.Info("Exported profile", "name", c.Name, "file", c.File)
	return nil
}

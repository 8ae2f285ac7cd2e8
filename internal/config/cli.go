package config

import (
	"github.com/Alia5/inputmap/internal/cmd"
	"github.com/Alia5/inputmap/internal/log"
)

// CLI is the root command line of inputmap.
type CLI struct {
	Config string     `help:"Path to a configuration file (json, yaml or toml)" env:"INPUTMAP_CONFIG" type:"path"`
	Log    log.Config `embed:"" prefix:"log."`

	Replay   cmd.Replay          `cmd:"" help:"Play a replay script against a fresh input system"`
	Mappings cmd.MappingsCommand `cmd:"" help:"Inspect, convert and store mapping tables"`
	Cfg      cmd.ConfigCommand   `cmd:"" name:"config" help:"Configuration helpers"`

	Platform PlatformCommands `embed:""`
}

//go:build sdl

package config

import "github.com/Alia5/inputmap/internal/cmd"

// DefaultGUICommand runs when the binary is started from a file manager.
const DefaultGUICommand = "pads"

// PlatformCommands holds commands that depend on optional build tags.
type PlatformCommands struct {
	Pads cmd.Pads `cmd:"" help:"Read physical controllers through SDL"`
}

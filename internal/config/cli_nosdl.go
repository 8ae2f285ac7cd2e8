//go:build !sdl

package config

// DefaultGUICommand runs when the binary is started from a file manager.
// Builds without SDL have no interactive command.
const DefaultGUICommand = ""

// PlatformCommands holds commands that depend on optional build tags.
type PlatformCommands struct{}

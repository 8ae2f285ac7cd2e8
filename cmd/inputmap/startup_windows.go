//go:build windows

package main

import (
	"log/slog"
	"os"

	"github.com/Alia5/inputmap/internal/config"
	"github.com/Alia5/inputmap/internal/util"
)

func init() {
	if !util.IsRunFromGUI() || len(os.Args) > 1 {
		return
	}
	if config.DefaultGUICommand == "" {
		slog.Warn("inputmap is a command line tool, run it from a terminal")
		return
	}
	slog.Info("Detected GUI startup, running " + config.DefaultGUICommand)
	os.Args = append(os.Args, config.DefaultGUICommand)
}

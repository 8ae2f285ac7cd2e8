//go:build sdl

package cmd

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/Alia5/inputmap/backend/sdlpad"
	"github.com/Alia5/inputmap/input"
	"github.com/Alia5/inputmap/internal/log"
)

// Pads reads physical controllers through SDL and prints their input.
type Pads struct {
	Mappings string        `help:"Mapping table; pressed actions are printed by name" type:"existingfile" env:"INPUTMAP_PADS_MAPPINGS"`
	Rate     time.Duration `help:"Polling interval" default:"16ms" env:"INPUTMAP_PADS_RATE"`
	Raw      bool          `help:"Print every input change"`
}

// Run is called by Kong when the pads command is executed.
func (p *Pads) Run(logger *slog.Logger) error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	var tracer input.Tracer = log.SlogTracer(logger)
	if p.Raw {
		tracer = input.Tee(tracer, log.NewTrace(os.Stdout))
	}
	sys := input.New(
		input.WithLogger(logger),
		input.WithTracer(tracer),
		input.WithDeviceTypes("keyboard", "mouse"),
	)
	if err := sys.Init(); err != nil {
		return err
	}
	if p.Mappings != "" {
		t, err := readTable(p.Mappings)
		if err != nil {
			return err
		}
		if err := sys.LoadMappings(t); err != nil {
			return fmt.Errorf("load mappings: %w", err)
		}
	}

	src, err := sdlpad.Open(sys, logger)
	if err != nil {
		return err
	}
	defer src.Close()

	logger.Info("Polling gamepads", "rate", p.Rate)
	ticker := time.NewTicker(p.Rate)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			return nil
		case <-ticker.C:
		}
		if err := src.Poll(); err != nil {
			return err
		}
		printActions(os.Stdout, sys)
		sys.Update()
	}
}

// printActions writes one line for every action pressed or released this tick.
func printActions(w io.Writer, sys *input.System) {
	for _, pl := range sys.Players() {
		for _, id := range sys.Actions(pl) {
			a := input.On(pl, id)
			switch {
			case sys.WasButtonPressed(a):
				fmt.Fprintf(w, "player %d %s pressed (%s)\n", pl, id, sys.ButtonNameForInput(a))
			case sys.WasButtonReleased(a):
				fmt.Fprintf(w, "player %d %s released\n", pl, id)
			}
		}
	}
}

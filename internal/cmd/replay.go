package cmd

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"strconv"
	"strings"
	"syscall"
	"text/tabwriter"

	"golang.org/x/term"

	"github.com/Alia5/inputmap/diag"
	"github.com/Alia5/inputmap/input"
	"github.com/Alia5/inputmap/internal/log"
	"github.com/Alia5/inputmap/internal/replay"
)

// Replay plays a replay script and prints the watched action states.
type Replay struct {
	Script      string `arg:"" name:"script" help:"Replay script (json, yaml or toml)" type:"existingfile"`
	Output      string `help:"Output style; auto prints a table on terminals and JSON lines otherwise" enum:"auto,table,json" default:"auto" env:"INPUTMAP_REPLAY_OUTPUT"`
	Trace       string `help:"Write every input change to this file, - for stdout" env:"INPUTMAP_REPLAY_TRACE"`
	Strict      bool   `help:"Treat assumption failures as fatal" env:"INPUTMAP_REPLAY_STRICT"`
	OnlyChanges bool   `help:"Only print ticks whose states differ from the previous tick"`
}

// Run is called by Kong when the replay command is executed.
func (r *Replay) Run(logger *slog.Logger) error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	return r.run(ctx, logger, os.Stdout)
}

func (r *Replay) run(ctx context.Context, logger *slog.Logger, out io.Writer) error {
	script, err := replay.LoadFile(r.Script)
	if err != nil {
		return err
	}

	tracers := []input.Tracer{log.SlogTracer(logger)}
	switch r.Trace {
	case "":
	case "-":
		tracers = append(tracers, log.NewTrace(out))
	default:
		f, err := os.OpenFile(r.Trace, os.O_CREATE|os.O_TRUNC|os.O_WRONLY, 0o644)
		if err != nil {
			return fmt.Errorf("open trace file: %w", err)
		}
		defer f.Close()
		tracers = append(tracers, log.NewTrace(f))
	}

	sink := diag.NewLogSink(logger)
	sink.FatalAssumptions = r.Strict
	runner, err := replay.New(script, logger, input.WithSink(sink), input.WithTracer(input.Tee(tracers...)))
	if err != nil {
		return err
	}

	p := newStatePrinter(out, r.Output, r.OnlyChanges)
	logger.Info("Replaying script", "script", r.Script, "ticks", len(script.Ticks), "watch", len(script.Watch))
	if err := runner.Run(ctx, p.print); err != nil {
		return err
	}
	return p.flush()
}

type statePrinter struct {
	table       bool
	onlyChanges bool
	w           io.Writer
	tw          *tabwriter.Writer
	enc         *json.Encoder
	last        []replay.State
	header      bool
}

func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	return ok && term.IsTerminal(int(f.Fd()))
}

func newStatePrinter(w io.Writer, style string, onlyChanges bool) *statePrinter {
	p := &statePrinter{w: w, onlyChanges: onlyChanges}
	switch style {
	case "table":
		p.table = true
	case "json":
	default:
		p.table = isTerminal(w)
	}
	if p.table {
		p.tw = tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	} else {
		p.enc = json.NewEncoder(w)
	}
	return p
}

func sameStates(a, b []replay.State) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

func flag(on bool, s string) string {
	if on {
		return s
	}
	return "-"
}

func (p *statePrinter) print(res replay.TickResult) error {
	if p.onlyChanges && p.last != nil && sameStates(p.last, res.States) {
		return nil
	}
	p.last = res.States
	if !p.table {
		return p.enc.Encode(res)
	}

	if !p.header {
		fmt.Fprintln(p.tw, "TICK\tMS\tPLAYER\tACTION\tPRESSED\tEDGE\tVALUE\tVECTOR\tBINDING")
		p.header = true
	}
	for _, s := range res.States {
		edge := "-"
		switch {
		case s.Down:
			edge = "down"
		case s.Up:
			edge = "up"
		}
		fmt.Fprintf(p.tw, "%d\t%d\t%d\t%s\t%s\t%s\t%s\t%s\t%s\n",
			res.Tick,
			res.Elapsed.Milliseconds(),
			s.Player,
			s.Action,
			flag(s.Pressed, "yes"),
			edge,
			strconv.FormatFloat(s.Value, 'f', 3, 64),
			fmt.Sprintf("%.3f,%.3f", s.Vector[0], s.Vector[1]),
			strings.TrimSpace(s.Name),
		)
	}
	return nil
}

func (p *statePrinter) flush() error {
	if p.tw != nil {
		return p.tw.Flush()
	}
	return nil
}

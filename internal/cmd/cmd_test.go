package cmd

import (
	"bytes"
	"encoding/json"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"reflect"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Alia5/inputmap/input"
	"github.com/Alia5/inputmap/internal/replay"

	_ "github.com/Alia5/inputmap/internal/registry"
)

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

const tapScript = `{
  "binds": [{"player": 1, "action": "Jump", "inputs": ["Space"]}],
  "watch": [{"player": 1, "action": "Jump"}],
  "ticks": [
    {"events": [{"kind": "input", "input": "Space", "value": [1]}]},
    {"repeat": 2},
    {"events": [{"kind": "input", "input": "Space", "value": [0]}]}
  ]
}`

func TestReplayJSONLines(t *testing.T) {
	path := writeFile(t, "tap.json", tapScript)
	var out bytes.Buffer

	r := &Replay{Script: path, Output: "json"}
	require.NoError(t, r.run(t.Context(), discardLogger(), &out))

	lines := strings.Split(strings.TrimSpace(out.String()), "\n")
	require.Len(t, lines, 4)

	var first, last replay.TickResult
	require.NoError(t, json.Unmarshal([]byte(lines[0]), &first))
	require.NoError(t, json.Unmarshal([]byte(lines[3]), &last))
	assert.True(t, first.States[0].Down)
	assert.Equal(t, "Space", first.States[0].Name)
	assert.True(t, last.States[0].Up)
	assert.Equal(t, 3, last.Tick)
}

func TestReplayTableOnlyChanges(t *testing.T) {
	path := writeFile(t, "tap.json", tapScript)
	var out bytes.Buffer

	r := &Replay{Script: path, Output: "table", OnlyChanges: true, Trace: "-"}
	require.NoError(t, r.run(t.Context(), discardLogger(), &out))

	text := out.String()
	assert.Contains(t, text, "TICK")
	assert.Contains(t, text, `slot 0 "Main Keyboard" input 44 = 1`)

	var rows []string
	for _, line := range strings.Split(text, "\n") {
		if strings.Contains(line, "Jump") {
			rows = append(rows, line)
		}
	}
	require.Len(t, rows, 3, "tick 2 repeats tick 1")
	assert.Contains(t, rows[0], "down")
	assert.Contains(t, rows[2], "up")
}

func TestReplayMissingScript(t *testing.T) {
	r := &Replay{Script: filepath.Join(t.TempDir(), "none.yaml"), Output: "json"}
	assert.Error(t, r.run(t.Context(), discardLogger(), io.Discard))
}

const sampleTable = `players:
  - player: 1
    devices: [2]
    actions:
      - action: Jump
        bindings:
          - {kind: button, device: 0, inputs: [44]}
          - {kind: button, device: 2, inputs: [0]}
`

func TestMappingsConvert(t *testing.T) {
	in := writeFile(t, "table.yaml", sampleTable)
	out := filepath.Join(t.TempDir(), "nested", "table.toml")

	c := &MappingsConvert{In: in, Out: out}
	require.NoError(t, c.Run(discardLogger()))
	assert.ErrorContains(t, c.Run(discardLogger()), "destination exists")

	want, err := readTable(in)
	require.NoError(t, err)
	got, err := readTable(out)
	require.NoError(t, err)
	assert.Equal(t, want, got)

	c.Force = true
	assert.NoError(t, c.Run(discardLogger()))
}

func TestMappingsCheck(t *testing.T) {
	type testCase struct {
		name  string
		table string
		want  []string
		err   string
	}

	cases := []testCase{
		{
			name:  "valid",
			table: sampleTable,
			want:  []string{"player 1", "  device 2: Xbox Controller", "  Jump: Space, A"},
		},
		{
			name:  "input out of range",
			table: strings.Replace(sampleTable, "inputs: [0]", "inputs: [99]", 1),
			err:   "Xbox Controller has no input 99",
		},
		{
			name:  "invalid record",
			table: strings.Replace(sampleTable, "kind: button, device: 0", "kind: chord, device: 0", 1),
			err:   "invalid mapping",
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			path := writeFile(t, "table.yml", tc.table)
			var out bytes.Buffer
			c := &MappingsCheck{File: path, Devices: input.DefaultDeviceTypes}
			err := c.run(discardLogger(), &out)
			if tc.err != "" {
				require.Error(t, err)
				assert.Contains(t, err.Error(), tc.err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tc.want, strings.Split(strings.TrimSpace(out.String()), "\n"))
		})
	}
}

func TestConfigInit(t *testing.T) {
	type testCase struct {
		command string
		format  string
		file    string
	}

	cases := []testCase{
		{command: "replay", format: "json", file: "replay.json"},
		{command: "replay", format: "yml", file: "replay.yaml"},
		{command: "check", format: "toml", file: "check.toml"},
	}

	for _, tc := range cases {
		t.Run(tc.command+"/"+tc.format, func(t *testing.T) {
			dest := filepath.Join(t.TempDir(), tc.file)
			c := &ConfigInit{Command: tc.command, Format: tc.format, Output: dest}
			require.NoError(t, c.Run())

			data, err := os.ReadFile(dest)
			require.NoError(t, err)
			assert.Contains(t, string(data), "level")
			assert.ErrorContains(t, c.Run(), "destination exists")
		})
	}

	_, err := templateFor("server")
	assert.Error(t, err)
	assert.ErrorContains(t, (&ConfigInit{Command: "replay", Format: "ini"}).Run(), "unsupported format")
}

func TestTemplateFor(t *testing.T) {
	root, err := templateFor("replay")
	require.NoError(t, err)

	assert.NotContains(t, root, "script")
	assert.Equal(t, "auto", root["output"])
	assert.Equal(t, false, root["only-changes"])
	assert.Equal(t, map[string]any{"level": "info", "file": "", "format": "text"}, root["log"])

	root, err = templateFor("check")
	require.NoError(t, err)
	assert.Equal(t, []string{"keyboard", "mouse", "xbox360"}, root["devices"])
}

func TestFlagName(t *testing.T) {
	type flags struct {
		OnlyChanges bool
		App         string
		HTTPAddr    string
		Named       string `name:"custom"`
	}
	want := []string{"only-changes", "app", "http-addr", "custom"}
	typ := reflect.TypeOf(flags{})
	for i, w := range want {
		assert.Equal(t, w, flagName(typ.Field(i)))
	}
}

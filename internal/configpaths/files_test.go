package configpaths_test

import (
	"path/filepath"
	"runtime"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Alia5/inputmap/internal/configpaths"
)

func TestFindUserConfig(t *testing.T) {
	type testCase struct {
		name string
		args []string
		env  string
		want string
	}

	cases := []testCase{
		{name: "equals form", args: []string{"replay", "--config=/tmp/a.yaml"}, want: "/tmp/a.yaml"},
		{name: "separate form", args: []string{"--config", "b.toml", "replay"}, want: "b.toml"},
		{name: "dangling flag", args: []string{"--config"}, env: "", want: ""},
		{name: "environment", args: []string{"replay"}, env: "/etc/x.json", want: "/etc/x.json"},
		{name: "flag beats environment", args: []string{"--config=c.json"}, env: "/etc/x.json", want: "c.json"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			t.Setenv(configpaths.EnvConfig, tc.env)
			assert.Equal(t, tc.want, configpaths.FindUserConfig(tc.args))
		})
	}
}

func TestConfigCandidatePaths(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", "/xdg")
	t.Setenv("AppData", "/appdata")

	jsonPaths, yamlPaths, tomlPaths := configpaths.ConfigCandidatePaths("/home/me/custom.YML")

	require.NotEmpty(t, yamlPaths)
	assert.Equal(t, "/home/me/custom.YML", yamlPaths[0])
	assert.NotContains(t, jsonPaths, "/home/me/custom.YML")
	assert.Len(t, yamlPaths, 2*len(jsonPaths)+1)
	assert.Len(t, tomlPaths, len(jsonPaths))

	dir, err := configpaths.DefaultConfigDir()
	require.NoError(t, err)
	assert.Contains(t, tomlPaths, filepath.Join(dir, "replay.toml"))
	if runtime.GOOS != "windows" {
		assert.Equal(t, filepath.Join("/xdg", "inputmap"), dir)
		assert.Contains(t, jsonPaths, "/etc/inputmap/mappings.json")
	}
}

func TestDefaultNamedConfigPath(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", "/xdg")
	t.Setenv("AppData", "/appdata")

	dir, err := configpaths.DefaultConfigDir()
	require.NoError(t, err)

	for format, ext := range map[string]string{"json": "json", "yml": "yaml", "TOML": "toml", "ini": "json"} {
		p, err := configpaths.DefaultNamedConfigPath("replay", format)
		require.NoError(t, err)
		assert.Equal(t, filepath.Join(dir, "replay."+ext), p)
	}
}

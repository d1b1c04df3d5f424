// Package integration_test tests hierarchical configuration loading and merging behavior.
// Related: internal/config/config.go
// Tags: integration, config, hierarchical, env-vars, yaml, toml

package integration

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/accordproject/ergorun/internal/config"
)

// TestCrossPlatformConfigLoading tests configuration loading on all platforms
func TestCrossPlatformConfigLoading(t *testing.T) {
	tests := map[string]struct {
		fileName      string
		configContent string
		envVars       map[string]string
		wantEngineCmd string
		wantTimeout   int
	}{
		"json config": {
			fileName:      "config.json",
			configContent: `{"engine_cmd": "ergo", "timeout": 30}`,
			wantEngineCmd: "ergo",
			wantTimeout:   30,
		},
		"yaml config": {
			fileName:      "config.yaml",
			configContent: "engine_cmd: ergo-yaml\ntimeout: 10\n",
			wantEngineCmd: "ergo-yaml",
			wantTimeout:   10,
		},
		"toml config": {
			fileName:      "config.toml",
			configContent: "engine_cmd = \"ergo-toml\"\ntimeout = 5\n",
			wantEngineCmd: "ergo-toml",
			wantTimeout:   5,
		},
		"env var override": {
			fileName:      "config.json",
			configContent: `{"engine_cmd": "ergo", "timeout": 30}`,
			envVars: map[string]string{
				"ERGORUN_TIMEOUT": "90",
			},
			wantEngineCmd: "ergo",
			wantTimeout:   90,
		},
	}

	for name, tc := range tests {
		t.Run(name, func(t *testing.T) {
			t.Setenv("HOME", t.TempDir())
			t.Chdir(t.TempDir())

			configPath := filepath.Join(t.TempDir(), ".ergorun", tc.fileName)
			require.NoError(t, os.MkdirAll(filepath.Dir(configPath), 0o755))
			require.NoError(t, os.WriteFile(configPath, []byte(tc.configContent), 0o644))

			for key, value := range tc.envVars {
				t.Setenv(key, value)
			}

			cfg, err := config.Load(configPath)
			require.NoError(t, err)

			assert.Equal(t, tc.wantEngineCmd, cfg.EngineCmd)
			assert.Equal(t, tc.wantTimeout, cfg.Timeout)
		})
	}
}

// TestGlobalAndLocalConfigMerge tests that local config overrides only the keys it sets
func TestGlobalAndLocalConfigMerge(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)
	work := t.TempDir()
	t.Chdir(work)

	globalPath := filepath.Join(home, ".ergorun", "config.yaml")
	require.NoError(t, os.MkdirAll(filepath.Dir(globalPath), 0o755))
	require.NoError(t, os.WriteFile(globalPath, []byte("engine_cmd: global-engine\nshow_progress: true\n"), 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(work, ".ergorun.toml"), []byte("engine_cmd = \"local-engine\"\n"), 0o644))

	cfg, err := config.Load("")
	require.NoError(t, err)

	assert.Equal(t, "local-engine", cfg.EngineCmd)
	assert.True(t, cfg.ShowProgress, "global setting survives when local does not set it")
	assert.Equal(t, "cto", cfg.SchemaExt)
	assert.Equal(t, "ergo", cfg.LogicExt)
}

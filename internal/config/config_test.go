// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestDefault(t *testing.T) {
	cfg := Default()

	require.Equal(t, "http://127.0.0.1:8000", cfg.API.BaseURL)
	require.Equal(t, 120, cfg.API.SendTimeoutSecs)
	require.Equal(t, "auto", cfg.UI.Theme)
	require.NoError(t, cfg.Validate(), "default config must validate")
}

func TestLoadFromPath(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	content := `
default_model = "gpt-4o"

[api]
base_url = "https://fundus.example.org"

[ui]
theme = "dark"
show_timestamps = true
`
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))

	cfg, err := LoadFromPath(path)
	require.NoError(t, err)

	require.Equal(t, "gpt-4o", cfg.DefaultModel)
	require.Equal(t, "https://fundus.example.org", cfg.API.BaseURL)
	require.Equal(t, "dark", cfg.UI.Theme)
	require.True(t, cfg.UI.ShowTimestamps)

	// Fields absent from the file keep their defaults.
	require.Equal(t, 120, cfg.API.SendTimeoutSecs)
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr bool
	}{
		{"default is valid", func(c *Config) {}, false},
		{"missing scheme", func(c *Config) { c.API.BaseURL = "127.0.0.1:8000" }, true},
		{"bad scheme", func(c *Config) { c.API.BaseURL = "ftp://example.org" }, true},
		{"negative timeout", func(c *Config) { c.API.SendTimeoutSecs = -1 }, true},
		{"unknown theme", func(c *Config) { c.UI.Theme = "solarized" }, true},
		{"light theme", func(c *Config) { c.UI.Theme = "light" }, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Default()
			tt.mutate(cfg)
			err := cfg.Validate()
			if tt.wantErr {
				require.Error(t, err)
			} else {
				require.NoError(t, err)
			}
		})
	}
}

func TestApplyEnvOverrides(t *testing.T) {
	t.Setenv("FUNDUS_API_URL", "http://10.0.0.5:8000")
	t.Setenv("FUNDUS_MODEL", "llama3")
	t.Setenv("FUNDUS_THEME", "light")
	t.Setenv("FUNDUS_DEBUG", "true")

	cfg := Default()
	cfg.ApplyEnvOverrides()

	require.Equal(t, "http://10.0.0.5:8000", cfg.API.BaseURL)
	require.Equal(t, "llama3", cfg.DefaultModel)
	require.Equal(t, "light", cfg.UI.Theme)
	require.True(t, cfg.Log.Debug)
}

func TestTimeoutDurations(t *testing.T) {
	cfg := Default()
	require.Equal(t, 120.0, cfg.SendTimeout().Seconds())
	require.Equal(t, 30.0, cfg.LookupTimeout().Seconds())
}

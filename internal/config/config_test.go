package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.json")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func TestLoadConfig(t *testing.T) {
	path := writeConfig(t, `{
		"api_key": "test-key",
		"database_url": "postgres://localhost/optimizer",
		"target_domain": "Fintech",
		"port": 9090,
		"concurrency": 4
	}`)

	cfg, err := LoadConfig(path)
	require.NoError(t, err)

	assert.Equal(t, "test-key", cfg.APIKey)
	assert.Equal(t, "postgres://localhost/optimizer", cfg.DatabaseURL)
	assert.Equal(t, "Fintech", cfg.TargetDomain)
	assert.Equal(t, 9090, cfg.Port)
	assert.Equal(t, 4, cfg.Concurrency)
}

func TestLoadConfig_EmptyPath(t *testing.T) {
	_, err := LoadConfig("")
	assert.Error(t, err)
}

func TestLoadConfig_MissingFile(t *testing.T) {
	_, err := LoadConfig(filepath.Join(t.TempDir(), "missing.json"))
	assert.Error(t, err)
}

func TestLoadConfig_InvalidJSON(t *testing.T) {
	path := writeConfig(t, `{not json`)
	_, err := LoadConfig(path)
	assert.Error(t, err)
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		cfg     Config
		wantErr bool
	}{
		{"empty config", Config{}, false},
		{"valid port", Config{Port: 8080}, false},
		{"port too large", Config{Port: 70000}, true},
		{"negative port", Config{Port: -1}, true},
		{"negative concurrency", Config{Concurrency: -2}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.cfg.Validate()
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestMergeWithDefaults(t *testing.T) {
	cfg := Config{APIKey: "explicit-key"}
	defaults := Config{
		APIKey:      "default-key",
		DatabaseURL: "postgres://localhost/optimizer",
		Port:        9090,
	}

	merged := cfg.MergeWithDefaults(defaults)

	assert.Equal(t, "explicit-key", merged.APIKey)
	assert.Equal(t, "postgres://localhost/optimizer", merged.DatabaseURL)
	assert.Equal(t, 9090, merged.Port)
}

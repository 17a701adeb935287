package server

import (
	"io/ioutil"
	"os"
	"path/filepath"
	"testing"

	"github.com/safehold/safehold/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func tempHome(t *testing.T) string {
	t.Helper()
	home, err := ioutil.TempDir("", "safehold-server")
	require.NoError(t, err)
	t.Cleanup(func() { os.RemoveAll(home) })
	return home
}

func TestLoadConfigDefaults(t *testing.T) {
	cfg, err := LoadConfig(tempHome(t))
	require.NoError(t, err)
	assert.Equal(t, DefaultConfig(), cfg)
}

func TestConfigRoundTrip(t *testing.T) {
	home := tempHome(t)
	want := Config{
		Bind:        "tcp://127.0.0.1:9999",
		Debug:       true,
		LogLevel:    "debug",
		MetricsAddr: "127.0.0.1:9100",
		DBName:      "state.db",
	}
	require.NoError(t, WriteConfig(home, want))
	got, err := LoadConfig(home)
	require.NoError(t, err)
	assert.Equal(t, want, got)
}

func TestLoadConfigPartial(t *testing.T) {
	home := tempHome(t)
	require.NoError(t, ioutil.WriteFile(filepath.Join(home, ConfigFile), []byte(`log_level = "error"`), 0644))
	cfg, err := LoadConfig(home)
	require.NoError(t, err)
	assert.Equal(t, "error", cfg.LogLevel)
	assert.Equal(t, DefaultConfig().Bind, cfg.Bind)
}

func TestLoadConfigInvalid(t *testing.T) {
	cases := map[string]struct {
		content string
		wantErr *errors.Error
	}{
		"not toml": {
			content: `bind = `,
			wantErr: errors.ErrInput,
		},
		"unknown level": {
			content: `log_level = "loud"`,
			wantErr: errors.ErrInput,
		},
		"empty bind": {
			content: `bind = ""`,
			wantErr: errors.ErrEmpty,
		},
	}
	for testName, tc := range cases {
		t.Run(testName, func(t *testing.T) {
			home := tempHome(t)
			require.NoError(t, ioutil.WriteFile(filepath.Join(home, ConfigFile), []byte(tc.content), 0644))
			_, err := LoadConfig(home)
			assert.True(t, tc.wantErr.Is(err), "got %v", err)
		})
	}
}

func TestParseFlags(t *testing.T) {
	cfg, err := parseFlags(DefaultConfig(), []string{"-bind", "tcp://0.0.0.0:1", "-debug", "-metrics", ":9100"})
	require.NoError(t, err)
	assert.Equal(t, "tcp://0.0.0.0:1", cfg.Bind)
	assert.True(t, cfg.Debug)
	assert.Equal(t, ":9100", cfg.MetricsAddr)
	assert.Equal(t, "info", cfg.LogLevel)

	_, err = parseFlags(DefaultConfig(), []string{"-unknown"})
	assert.True(t, errors.ErrInput.Is(err))
}

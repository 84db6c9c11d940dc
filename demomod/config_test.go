package demomod

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultConfig_Valid(t *testing.T) {
	cfg := DefaultConfig()

	require.NoError(t, cfg.Validate())
	assert.Equal(t, 180, cfg.Width)
	assert.Equal(t, 80, cfg.Height)
	assert.Equal(t, 10, cfg.Margin)
	assert.Equal(t, "Ugaris Demo Mod", cfg.Title)
}

func TestConfig_Validate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr bool
	}{
		{name: "defaults", mutate: func(*Config) {}, wantErr: false},
		{name: "zero width", mutate: func(c *Config) { c.Width = 0 }, wantErr: true},
		{name: "negative height", mutate: func(c *Config) { c.Height = -1 }, wantErr: true},
		{name: "negative margin", mutate: func(c *Config) { c.Margin = -1 }, wantErr: true},
		{name: "zero margin ok", mutate: func(c *Config) { c.Margin = 0 }, wantErr: false},
		{name: "empty title", mutate: func(c *Config) { c.Title = "" }, wantErr: true},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			cfg := DefaultConfig()
			tc.mutate(&cfg)
			err := cfg.Validate()
			if tc.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestLoadConfig(t *testing.T) {
	t.Run("empty input yields defaults", func(t *testing.T) {
		cfg, err := LoadConfig(nil)
		require.NoError(t, err)
		assert.Equal(t, DefaultConfig(), cfg)
	})

	t.Run("partial json keeps defaults", func(t *testing.T) {
		cfg, err := LoadConfig([]byte(`{"width": 240}`))
		require.NoError(t, err)
		assert.Equal(t, 240, cfg.Width)
		assert.Equal(t, 80, cfg.Height)
	})

	t.Run("invalid json", func(t *testing.T) {
		_, err := LoadConfig([]byte(`{width}`))
		assert.Error(t, err)
	})

	t.Run("invalid values rejected", func(t *testing.T) {
		_, err := LoadConfig([]byte(`{"width": -5}`))
		assert.Error(t, err)
	})
}

func TestConfigSchema(t *testing.T) {
	schema, err := ConfigSchema()
	require.NoError(t, err)

	assert.Contains(t, string(schema), `"width"`)
	assert.Contains(t, string(schema), `"title"`)
}

func TestWithConfig_PanicsOnInvalid(t *testing.T) {
	assert.Panics(t, func() {
		New(WithConfig(Config{}))
	})
}

package config

import (
	"testing"
	"time"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func defaultViper() *viper.Viper {
	v := viper.New()
	v.SetDefault("bindgen.crate_dir", ".")
	v.SetDefault("bindgen.timeout", "2m")
	v.SetDefault("frontend.pointer_width", 8)
	v.SetDefault("log.level", "info")
	v.SetDefault("log.format", "json")
	return v
}

func TestNew(t *testing.T) {
	cfg := New(defaultViper())

	require.NotNil(t, cfg)
	assert.Equal(t, ".", cfg.Bindgen.CrateDir)
	assert.Equal(t, 2*time.Minute, cfg.Bindgen.Timeout)
	assert.Equal(t, int64(8), cfg.Frontend.PointerWidth)
	assert.Equal(t, "info", cfg.Log.Level)
}

func TestNew_PanicsOnInvalidConfig(t *testing.T) {
	v := defaultViper()
	v.Set("frontend.pointer_width", 3)

	assert.Panics(t, func() {
		New(v)
	})
}

func TestConfig_Validate(t *testing.T) {
	base := func() Config {
		return Config{
			Bindgen:  BindgenConfig{CrateDir: ".", Timeout: time.Minute},
			Frontend: FrontendConfig{PointerWidth: 8},
			Log:      LogConfig{Level: "info", Format: "json"},
		}
	}

	t.Run("valid config passes", func(t *testing.T) {
		cfg := base()
		require.NoError(t, cfg.Validate())
	})

	t.Run("32-bit pointer width passes", func(t *testing.T) {
		cfg := base()
		cfg.Frontend.PointerWidth = 4
		require.NoError(t, cfg.Validate())
	})

	t.Run("unsupported pointer width fails", func(t *testing.T) {
		cfg := base()
		cfg.Frontend.PointerWidth = 16
		assert.Error(t, cfg.Validate())
	})

	t.Run("negative timeout fails", func(t *testing.T) {
		cfg := base()
		cfg.Bindgen.Timeout = -time.Second
		assert.Error(t, cfg.Validate())
	})

	t.Run("unknown log level fails", func(t *testing.T) {
		cfg := base()
		cfg.Log.Level = "verbose"
		assert.Error(t, cfg.Validate())
	})
}

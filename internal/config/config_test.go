package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad(t *testing.T) {
	cfg, err := Load("testdata/config.toml")
	require.NoError(t, err)

	assert.Equal(t, 9090, cfg.Server.HTTPPort)
	assert.Equal(t, 5, cfg.Server.ShutdownTimeout)
	// не заданные в файле значения берутся по умолчанию
	assert.Equal(t, 15, cfg.Server.ReadTimeout)
	assert.Equal(t, "disable", cfg.Database.SSLMode)

	assert.Equal(t, "host=db port=5433 user=tint password=secret dbname=appointments sslmode=disable", cfg.Database.DSN())
	assert.True(t, cfg.Metrics.Enabled)
	assert.Equal(t, "/internal/metrics", cfg.Metrics.Path)
	assert.True(t, cfg.Auth.Enabled)
	assert.Equal(t, []string{"https://shop.example.com"}, cfg.CORS.AllowedOrigins)

	assert.True(t, cfg.Scheduling.StrictServiceIDs)
	assert.True(t, cfg.Scheduling.PreciseAvailabilityMinutes)
	assert.Equal(t, time.UTC.String(), cfg.Scheduling.Location().String())
	assert.Equal(t, "catalog.toml", cfg.Catalog.File)
}

func TestLoad_Errors(t *testing.T) {
	_, err := Load("testdata/unknown_key.toml")
	assert.ErrorIs(t, err, ErrInvalidConfig)

	_, err = Load("testdata/bad_timezone.toml")
	assert.ErrorIs(t, err, ErrInvalidConfig)

	_, err = Load("testdata/missing.toml")
	assert.Error(t, err)
}

func TestValidate(t *testing.T) {
	cfg := defaults()
	require.NoError(t, cfg.Validate())
	assert.Equal(t, time.Local, cfg.Scheduling.Location())

	cfg.Logs.Level = "verbose"
	assert.ErrorIs(t, cfg.Validate(), ErrInvalidConfig)

	cfg = defaults()
	cfg.Server.HTTPPort = 70000
	assert.ErrorIs(t, cfg.Validate(), ErrInvalidConfig)

	cfg = defaults()
	cfg.Database.MaxIdleConns = 100
	assert.ErrorIs(t, cfg.Validate(), ErrInvalidConfig)
}

func TestPath(t *testing.T) {
	t.Setenv(EnvConfigPath, "")
	assert.Equal(t, DefaultPath, Path())

	t.Setenv(EnvConfigPath, "/etc/tinting/config.toml")
	assert.Equal(t, "/etc/tinting/config.toml", Path())
}

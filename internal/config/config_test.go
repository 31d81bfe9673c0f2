package config

import (
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "info", cfg.Log.Level)
	assert.Equal(t, "text", cfg.Log.Format)
	assert.Equal(t, ",", cfg.CSV.Delimiter)
	assert.Equal(t, 3.0, cfg.Extraction.RowBand)
	assert.Equal(t, int64(5000), cfg.Tax.UFQuantity)
	assert.Equal(t, int64(38000), cfg.Tax.UFValue)
}

func TestLoadHonoursEnvironment(t *testing.T) {
	t.Setenv("BALANCE_LOG_LEVEL", "debug")
	t.Setenv("BALANCE_TAX_UF_VALUE", "39250")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "debug", cfg.Log.Level)
	assert.Equal(t, int64(39250), cfg.Tax.UFValue)
}

func TestValidateConfigRejectsBadValues(t *testing.T) {
	cfg, err := Load()
	require.NoError(t, err)

	bad := *cfg
	bad.Log.Level = "loudest"
	assert.Error(t, validateConfig(&bad))

	bad = *cfg
	bad.Log.Format = "xml"
	assert.Error(t, validateConfig(&bad))

	bad = *cfg
	bad.CSV.Delimiter = ";;"
	assert.Error(t, validateConfig(&bad))

	bad = *cfg
	bad.Extraction.RowBand = 0
	assert.Error(t, validateConfig(&bad))

	bad = *cfg
	bad.Tax.UFValue = -1
	assert.Error(t, validateConfig(&bad))
}

func TestConfigureLogging(t *testing.T) {
	cfg, err := Load()
	require.NoError(t, err)

	cfg.Log.Level = "warn"
	cfg.Log.Format = "json"
	logger := ConfigureLogging(cfg)

	assert.Equal(t, logrus.WarnLevel, logger.GetLevel())
	assert.IsType(t, &logrus.JSONFormatter{}, logger.Formatter)
}

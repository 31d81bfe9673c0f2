// Package config provides Viper-based hierarchical configuration management:
// defaults, an optional config file and BALANCE_-prefixed environment
// variables, in that order of precedence.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"
	"github.com/spf13/viper"
)

var once sync.Once

// Config is the complete application configuration.
type Config struct {
	Log struct {
		Level  string `mapstructure:"level" yaml:"level"`
		Format string `mapstructure:"format" yaml:"format"`
	} `mapstructure:"log" yaml:"log"`

	CSV struct {
		Delimiter string `mapstructure:"delimiter" yaml:"delimiter"`
	} `mapstructure:"csv" yaml:"csv"`

	Extraction struct {
		// RowBand is the vertical quantization band, in page units, used to
		// cluster tokens into rows.
		RowBand float64 `mapstructure:"row_band" yaml:"row_band"`
	} `mapstructure:"extraction" yaml:"extraction"`

	Tax struct {
		// UFQuantity and UFValue define the savings-incentive deduction cap:
		// UFQuantity units at UFValue pesos each.
		UFQuantity int64 `mapstructure:"uf_quantity" yaml:"uf_quantity"`
		UFValue    int64 `mapstructure:"uf_value" yaml:"uf_value"`
		// AccountTables optionally points at a YAML file overriding the
		// built-in worksheet account tables.
		AccountTables string `mapstructure:"account_tables" yaml:"account_tables"`
	} `mapstructure:"tax" yaml:"tax"`
}

// Load initializes Viper configuration with hierarchical loading.
func Load() (*Config, error) {
	v := viper.New()

	setDefaults(v)

	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath("$HOME/.balance-rli")
	v.AddConfigPath(".balance-rli")
	v.AddConfigPath(".")

	v.SetEnvPrefix("BALANCE")
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			// A malformed config file should not take the tool down; defaults
			// and env vars still apply.
			fmt.Printf("Warning: error reading config file %s: %v\n", v.ConfigFileUsed(), err)
		}
	}

	var config Config
	if err := v.Unmarshal(&config); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	if err := validateConfig(&config); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return &config, nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("log.level", "info")
	v.SetDefault("log.format", "text")

	v.SetDefault("csv.delimiter", ",")

	v.SetDefault("extraction.row_band", 3.0)

	// 5.000 UF is the statutory cap of the savings-incentive deduction; the
	// peso value of one UF changes over time and stays editable.
	v.SetDefault("tax.uf_quantity", 5000)
	v.SetDefault("tax.uf_value", 38000)
	v.SetDefault("tax.account_tables", "")
}

func validateConfig(config *Config) error {
	if _, err := logrus.ParseLevel(config.Log.Level); err != nil {
		return fmt.Errorf("invalid log level: %s", config.Log.Level)
	}

	if config.Log.Format != "text" && config.Log.Format != "json" {
		return fmt.Errorf("invalid log format: %s (must be 'text' or 'json')", config.Log.Format)
	}

	if len(config.CSV.Delimiter) != 1 {
		return fmt.Errorf("CSV delimiter must be a single character, got: %s", config.CSV.Delimiter)
	}

	if config.Extraction.RowBand <= 0 {
		return fmt.Errorf("extraction.row_band must be positive, got: %v", config.Extraction.RowBand)
	}

	if config.Tax.UFQuantity < 0 || config.Tax.UFValue < 0 {
		return fmt.Errorf("tax.uf_quantity and tax.uf_value must be non-negative")
	}

	return nil
}

// LoadEnv loads environment variables from a .env file if one exists in the
// current or parent directory.
func LoadEnv() {
	once.Do(func() {
		envFile := ".env"
		if _, err := os.Stat(envFile); os.IsNotExist(err) {
			envFile = filepath.Join("..", ".env")
			if _, err := os.Stat(envFile); os.IsNotExist(err) {
				return
			}
		}
		_ = godotenv.Load(envFile)
	})
}

// ConfigureLogging builds a logrus logger from the loaded configuration.
func ConfigureLogging(config *Config) *logrus.Logger {
	logger := logrus.New()

	logLevel, err := logrus.ParseLevel(strings.ToLower(config.Log.Level))
	if err != nil {
		logger.Warnf("Invalid log level '%s', using 'info'", config.Log.Level)
		logLevel = logrus.InfoLevel
	}
	logger.SetLevel(logLevel)

	if strings.ToLower(config.Log.Format) == "json" {
		logger.SetFormatter(&logrus.JSONFormatter{})
	} else {
		logger.SetFormatter(&logrus.TextFormatter{
			FullTimestamp: true,
		})
	}

	return logger
}

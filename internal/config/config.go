package config

import (
	"strings"

	"sustaincalc/internal/domain"

	"github.com/shopspring/decimal"
	"github.com/spf13/viper"
)

// Config holds application configuration (env + Viper).
type Config struct {
	Env        string
	Port       int
	Thresholds domain.SustainabilityThresholds
}

// Load reads config from the environment and an optional .env file.
// Threshold overrides let a deployment tighten or loosen the default
// sustainability scoring without a rebuild.
func Load() (*Config, error) {
	viper.SetConfigFile(".env")
	_ = viper.ReadInConfig()

	viper.AutomaticEnv()
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	port := viper.GetInt("PORT")
	if port == 0 {
		port = 8080
	}
	env := viper.GetString("SUSTAINCALC_ENV")
	if env == "" {
		env = "dev"
	}

	thresholds := domain.DefaultThresholds()
	if v := viper.GetString("MIN_SDG_SCORE"); v != "" {
		d, err := decimal.NewFromString(v)
		if err != nil {
			return nil, err
		}
		thresholds.MinSDGScore = d
	}
	if v := viper.GetString("MIN_ESG_SCORE"); v != "" {
		d, err := decimal.NewFromString(v)
		if err != nil {
			return nil, err
		}
		thresholds.MinESGScore = d
	}
	if v := viper.GetString("MIN_MSCI_SCORE"); v != "" {
		d, err := decimal.NewFromString(v)
		if err != nil {
			return nil, err
		}
		thresholds.MinMSCIScore = d
	}

	return &Config{
		Env:        env,
		Port:       port,
		Thresholds: thresholds,
	}, nil
}

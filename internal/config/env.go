// Package config defines environment configuration structs and loaders.
package config

import (
	"time"

	"github.com/caarlos0/env/v11"
)

type AppConfig struct {
	CompareEnvConfig
	ServerEnvConfig
	ClientEnvConfig
}

func LoadConfig() (*AppConfig, error) {
	cfg := &AppConfig{}
	if err := env.Parse(cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}

// CompareEnvConfig names the columns a comparison operates on and how many
// ranked extremes to report.
type CompareEnvConfig struct {
	CoordAField string `env:"COORD_A_FIELD" envDefault:"Phi[deg]"`
	CoordBField string `env:"COORD_B_FIELD" envDefault:"Theta[deg]"`
	ValueField  string `env:"VALUE_FIELD" envDefault:"dB10normalize(GainTotal)"`
	TopN        int    `env:"TOP_N" envDefault:"5"`
}

// ServerEnvConfig configures the comparison service.
type ServerEnvConfig struct {
	Address       string `env:"SERVER_ADDRESS" envDefault:"0.0.0.0"`
	Port          int    `env:"SERVER_PORT" envDefault:"8080"`
	BodySizeLimit int    `env:"SERVER_BODY_LIMIT" envDefault:"16777216"`
}

// ClientEnvConfig configures remote table retrieval.
type ClientEnvConfig struct {
	ClientTimeout time.Duration `env:"CLIENT_TIMEOUT" envDefault:"30s"`
	RetryMax      int           `env:"CLIENT_RETRY_MAX" envDefault:"3"`
	RetryWaitMin  time.Duration `env:"CLIENT_RETRY_WAIT_MIN" envDefault:"500ms"`
	RetryWaitMax  time.Duration `env:"CLIENT_RETRY_WAIT_MAX" envDefault:"5s"`
}

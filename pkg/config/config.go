package config

import (
	"fmt"
	"os"

	"github.com/ilyakaznacheev/cleanenv"
)

const configFile = "config.yaml"

// Config holds all configuration for schemascore-engine.
// Values come from config.yaml with environment variable overrides;
// environment variables always win for fields that support both. The file
// is optional: without it, configuration comes from the environment alone.
type Config struct {
	// Server configuration
	BindAddr string `yaml:"bind_addr" env:"BIND_ADDR" env-default:"127.0.0.1"`
	Port     string `yaml:"port" env:"PORT" env-default:"8080"`
	Env      string `yaml:"env" env:"ENVIRONMENT" env-default:"local"`
	Debug    bool   `yaml:"debug" env:"DEBUG" env-default:"false"`
	Version  string `yaml:"-"` // Set at load time, not from config

	// Scoring policy
	Scoring ScoringConfig `yaml:"scoring"`
}

// ScoringConfig holds the tunable evaluator thresholds.
type ScoringConfig struct {
	// SimilarityThreshold is the minimum normalized name similarity (0..1)
	// at which two columns in one table count as ambiguous.
	SimilarityThreshold float64 `yaml:"similarity_threshold" env:"SCORING_SIMILARITY_THRESHOLD" env-default:"0.85"`
	// MinNameLength is the minimum rune count for a column name.
	MinNameLength int `yaml:"min_name_length" env:"SCORING_MIN_NAME_LENGTH" env-default:"4"`
	// MinDescriptionLength is the minimum rune count for a description to
	// count as adequate.
	MinDescriptionLength int `yaml:"min_description_length" env:"SCORING_MIN_DESCRIPTION_LENGTH" env-default:"10"`
}

// Load reads configuration from config.yaml (when present) with environment
// variable overrides. The version parameter is injected at build time and
// set on the returned Config.
func Load(version string) (*Config, error) {
	cfg := &Config{Version: version}

	if _, err := os.Stat(configFile); err == nil {
		if err := cleanenv.ReadConfig(configFile, cfg); err != nil {
			return nil, fmt.Errorf("failed to read %s: %w", configFile, err)
		}
	} else {
		if err := cleanenv.ReadEnv(cfg); err != nil {
			return nil, fmt.Errorf("failed to read environment: %w", err)
		}
	}

	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *Config) validate() error {
	if c.Scoring.SimilarityThreshold <= 0 || c.Scoring.SimilarityThreshold > 1 {
		return fmt.Errorf("scoring.similarity_threshold must be in (0, 1], got %g", c.Scoring.SimilarityThreshold)
	}
	if c.Scoring.MinNameLength < 1 {
		return fmt.Errorf("scoring.min_name_length must be positive, got %d", c.Scoring.MinNameLength)
	}
	if c.Scoring.MinDescriptionLength < 1 {
		return fmt.Errorf("scoring.min_description_length must be positive, got %d", c.Scoring.MinDescriptionLength)
	}
	return nil
}

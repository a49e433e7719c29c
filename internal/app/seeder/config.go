package seeder

import (
	"fmt"

	"github.com/ilyakaznacheev/cleanenv"
)

// Config holds seeder settings. CLI flags override the environment.
type Config struct {
	UserEmail string `yaml:"user_email" env:"SEEDER_USER_EMAIL"`
	File      string `yaml:"file"       env:"SEEDER_FILE"       env-default:"seed.yaml"`
	// Date is YYYY-MM-DD and overrides the document's default date.
	Date   string `yaml:"date"    env:"SEEDER_DATE"`
	DryRun bool   `yaml:"dry_run" env:"SEEDER_DRY_RUN"`
}

// LoadConfig reads seeder settings from the environment.
func LoadConfig() (*Config, error) {
	var cfg Config
	if err := cleanenv.ReadEnv(&cfg); err != nil {
		return nil, fmt.Errorf("seeder config: read env: %w", err)
	}
	return &cfg, nil
}

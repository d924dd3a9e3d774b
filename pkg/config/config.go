package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/ilyakaznacheev/cleanenv"
	"gopkg.in/yaml.v3"
)

// AppConfig holds all user-defined persistent settings. Environment
// variables override values from the file.
type AppConfig struct {
	BaseURL         string        `yaml:"base_url"         env:"LP_BASE_URL"         env-default:"http://www.lp.edu.ua/students_schedule"`
	Timeout         time.Duration `yaml:"timeout"          env:"LP_TIMEOUT"          env-default:"30s"`
	RequestInterval time.Duration `yaml:"request_interval" env:"LP_REQUEST_INTERVAL" env-default:"0s"`
	Output          string        `yaml:"output,omitempty"          env:"LP_OUTPUT"`
	Multi           bool          `yaml:"multi"            env:"LP_MULTI"`
	Iterative       bool          `yaml:"iterative"        env:"LP_ITERATIVE"`
	Pretty          bool          `yaml:"pretty"           env:"LP_PRETTY"`
	MongoURI        string        `yaml:"mongo_uri,omitempty"       env:"LP_MONGO_URI"`
	SemesterStart   string        `yaml:"semester_start,omitempty"  env:"LP_SEMESTER_START"`
	SavedInstitute  string        `yaml:"saved_institute,omitempty"`
	SavedGroup      string        `yaml:"saved_group,omitempty"`
}

// Path returns the absolute path to the config file, ~/.lptimetable.yaml
// unless LP_CONFIG names another one.
func Path() (string, error) {
	if path := os.Getenv("LP_CONFIG"); path != "" {
		return path, nil
	}
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("could not find user home directory: %w", err)
	}
	return filepath.Join(homeDir, ".lptimetable.yaml"), nil
}

// Load reads the application configuration from disk and the environment.
// A missing file yields the defaults.
func Load() (*AppConfig, error) {
	path, err := Path()
	if err != nil {
		return nil, err
	}

	var cfg AppConfig
	if _, err := os.Stat(path); errors.Is(err, os.ErrNotExist) {
		if err := cleanenv.ReadEnv(&cfg); err != nil {
			return nil, fmt.Errorf("failed to read config from environment: %w", err)
		}
		return &cfg, nil
	}

	if err := cleanenv.ReadConfig(path, &cfg); err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}
	return &cfg, nil
}

// Save writes the application configuration back to disk.
func Save(cfg *AppConfig) error {
	path, err := Path()
	if err != nil {
		return err
	}

	data, err := yaml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("failed to serialize config: %w", err)
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}

	return nil
}

// ParseSemesterStart parses the configured semester start date (2006-01-02).
func (c *AppConfig) ParseSemesterStart() (time.Time, error) {
	if c.SemesterStart == "" {
		return time.Time{}, errors.New("semester start is not configured")
	}
	t, err := time.Parse(time.DateOnly, c.SemesterStart)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid semester start %q: %w", c.SemesterStart, err)
	}
	return t, nil
}

package config

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/viper"
)

const envPrefix = "ROSTER"

type Config struct {
	Env        string           `yaml:"env"        env-default:"production"` // Env is the current environment: local, development, production.
	Department DepartmentConfig `yaml:"department"`                          // Department holds the managed department settings.
	Metrics    MetricsConfig    `yaml:"metrics"`                             // Metrics holds the metrics export settings.
}

// DepartmentConfig struct holds the settings of the single managed department.
type DepartmentConfig struct {
	Name string `yaml:"name" env-default:"Sales"` // Name is the department name stamped on every new employee.
}

// MetricsConfig struct holds the settings of the metrics dump.
type MetricsConfig struct {
	Textfile string `yaml:"textfile"` // Textfile is the path the metrics are written to on exit. Empty disables it.
}

// Load reads the configuration from the YAML file at path, if any, and from ROSTER_* environment variables.
// An empty path means defaults and environment only.
func Load(path string) (*Config, error) {
	vpr := viper.New()

	vpr.SetDefault("env", "production")
	vpr.SetDefault("department.name", "Sales")
	vpr.SetDefault("metrics.textfile", "")

	vpr.SetEnvPrefix(envPrefix)
	vpr.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	vpr.AutomaticEnv()

	if path != "" {
		// check if file exists
		if _, err := os.Stat(path); errors.Is(err, os.ErrNotExist) {
			return nil, fmt.Errorf("config file does not exist: %s", path)
		}

		vpr.SetConfigFile(path)
		vpr.SetConfigType("yaml")
		if err := vpr.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("failed to read config: %w", err)
		}
	}

	cfg := &Config{
		Env: vpr.GetString("env"),
		Department: DepartmentConfig{
			Name: vpr.GetString("department.name"),
		},
		Metrics: MetricsConfig{
			Textfile: vpr.GetString("metrics.textfile"),
		},
	}

	if strings.TrimSpace(cfg.Department.Name) == "" {
		return nil, errors.New("department name is empty")
	}

	return cfg, nil
}

// MustLoad loads the configuration from the file named by CONFIG_PATH and panics on failure.
func MustLoad() *Config {
	cfg, err := Load(os.Getenv("CONFIG_PATH"))
	if err != nil {
		panic("config error: " + err.Error())
	}

	return cfg
}

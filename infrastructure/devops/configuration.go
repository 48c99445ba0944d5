package devops

import (
	"fmt"
	"os"
	"strconv"
	"sync"

	"gopkg.in/yaml.v3"
)

// Config is the service configuration, read once from a YAML file.
// Environment variables override file values so deployments can keep the
// secret out of the file.
type Config struct {
	Addr           string `yaml:"addr"`
	DSN            string `yaml:"dsn"`
	SigningSecret  string `yaml:"signingSecret"` // base64
	MaxConnections int    `yaml:"maxConnections"`
	LogLevel       int    `yaml:"logLevel"`
}

var (
	once    sync.Once
	config  Config
	loadErr error
)

// LoadConfig reads the configuration file at path (CONFIG_PATH wins over the
// argument, "config.yaml" is the fallback) and applies env overrides.
func LoadConfig(path string) (Config, error) {
	once.Do(func() {
		if env := os.Getenv("CONFIG_PATH"); env != "" {
			path = env
		}
		if path == "" {
			path = "config.yaml"
		}

		raw, err := os.ReadFile(path)
		if err != nil && !os.IsNotExist(err) {
			loadErr = fmt.Errorf("read config: %w", err)
			return
		}
		if err == nil {
			if err := yaml.Unmarshal(raw, &config); err != nil {
				loadErr = fmt.Errorf("unmarshal config: %w", err)
				return
			}
		}

		applyEnvOverrides(&config)
		applyDefaults(&config)

		if config.DSN == "" {
			loadErr = fmt.Errorf("no DSN configured (set dsn in %s or the DSN env var)", path)
			return
		}
		if config.SigningSecret == "" {
			loadErr = fmt.Errorf("no signing secret configured (set signingSecret in %s or the FASOL_SIGNING_SECRET env var)", path)
		}
	})

	return config, loadErr
}

func applyEnvOverrides(cfg *Config) {
	if v := os.Getenv("ADDR"); v != "" {
		cfg.Addr = v
	}
	if v := os.Getenv("DSN"); v != "" {
		cfg.DSN = v
	}
	if v := os.Getenv("FASOL_SIGNING_SECRET"); v != "" {
		cfg.SigningSecret = v
	}
	if v := os.Getenv("MAX_CONNECTIONS"); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			cfg.MaxConnections = n
		}
	}
}

func applyDefaults(cfg *Config) {
	if cfg.Addr == "" {
		cfg.Addr = ":8080"
	}
	if cfg.MaxConnections == 0 {
		cfg.MaxConnections = 10
	}
}

package config

import (
	"fmt"
	"os"
	"strconv"
)

type Config struct {
	Port       int
	TrustProxy bool
}

func Default() Config {
	return Config{
		Port:       8000,
		TrustProxy: false,
	}
}

func Load() (*Config, error) {
	cfg := Default()

	if port := os.Getenv("PORT"); port != "" {
		p, err := strconv.Atoi(port)
		if err != nil || p < 1 || p > 65535 {
			return nil, fmt.Errorf("invalid PORT %q", port)
		}
		cfg.Port = p
	}

	if os.Getenv("TRUST_PROXY") == "true" {
		cfg.TrustProxy = true
	}

	return &cfg, nil
}

// ListenAddr returns the address for http.Server, e.g. ":8000".
func (c *Config) ListenAddr() string {
	return fmt.Sprintf(":%d", c.Port)
}

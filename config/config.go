package config

import "os"

// Config holds the service settings, all sourced from environment
// variables with demo-friendly defaults.
type Config struct {
	Port           string
	StaticDir      string
	JaegerEndpoint string
}

func Load() *Config {
	return &Config{
		Port:           getEnv("PORT", "5000"),
		StaticDir:      getEnv("STATIC_DIR", "./public"),
		JaegerEndpoint: getEnv("JAEGER_ENDPOINT", "http://localhost:14268/api/traces"),
	}
}

func (c *Config) Addr() string {
	return ":" + c.Port
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

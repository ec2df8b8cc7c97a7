package cli

import "os"

// Config holds CLI configuration
type Config struct {
	ServerURL string
	Key       string
	RedisURL  string
	Output    string
	Verbose   bool
}

// DefaultConfig returns a Config with default values
func DefaultConfig() *Config {
	return &Config{
		ServerURL: getEnvOrDefault("REGCTL_SERVER", "http://localhost:8080"),
		Key:       os.Getenv("REGCTL_KEY"),
		RedisURL:  getEnvOrDefault("REGCTL_REDIS_URL", "redis://localhost:6379"),
		Output:    "text",
		Verbose:   false,
	}
}

func getEnvOrDefault(key, defaultVal string) string {
	if val := os.Getenv(key); val != "" {
		return val
	}
	return defaultVal
}

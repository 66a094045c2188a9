package config

import (
	"fmt"

	"github.com/spf13/viper"
)

// Config stores all configuration for the application.
type Config struct {
	ServerPort    string `mapstructure:"SERVER_PORT"`
	WikiAPIURL    string `mapstructure:"WIKI_API_URL"`
	WikiLanguage  string `mapstructure:"WIKI_LANGUAGE"`
	WikiUserAgent string `mapstructure:"WIKI_USER_AGENT"`
	OutputDir     string `mapstructure:"OUTPUT_DIR"`
	FetchTimeout  int    `mapstructure:"FETCH_TIMEOUT"`
	AllowedOrigin string `mapstructure:"ALLOWED_ORIGIN"`
}

// Load reads configuration from file or environment variables.
func Load() (*Config, error) {
	viper.SetConfigFile(".env")
	viper.SetConfigType("env")
	viper.AutomaticEnv()

	// Attempt to read the .env file, but don't fail if it's not present
	// This allows configuration purely through environment variables in production
	_ = viper.ReadInConfig()

	// Set default values
	viper.SetDefault("SERVER_PORT", "8080")
	viper.SetDefault("WIKI_API_URL", "")
	viper.SetDefault("WIKI_LANGUAGE", "en")
	viper.SetDefault("WIKI_USER_AGENT", "WikiForge/1.0")
	viper.SetDefault("OUTPUT_DIR", "output")
	viper.SetDefault("FETCH_TIMEOUT", 30) // in seconds
	viper.SetDefault("ALLOWED_ORIGIN", "http://localhost:5173")

	var cfg Config
	if err := viper.Unmarshal(&cfg); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// APIBaseURL returns the encyclopedia API endpoint, derived from the
// configured language when no explicit URL is set.
func (c *Config) APIBaseURL() string {
	if c.WikiAPIURL != "" {
		return c.WikiAPIURL
	}
	return fmt.Sprintf("https://%s.wikipedia.org/w/api.php", c.WikiLanguage)
}

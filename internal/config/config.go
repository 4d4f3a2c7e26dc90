package config

import (
	"strings"

	"github.com/spf13/viper"

	"weekwise/backend/internal/llm"
)

// Config is the process configuration, built once at startup and passed by
// reference to everything that needs it. There is no ambient global state.
type Config struct {
	AppPort      int    `mapstructure:"APP_PORT"`
	DatabasePath string `mapstructure:"DATABASE_PATH"`
	StaticDir    string `mapstructure:"STATIC_DIR"`
	GitHubToken  string `mapstructure:"GITHUB_TOKEN"`
	AIEndpoint   string `mapstructure:"AI_ENDPOINT"`
	AIModel      string `mapstructure:"AI_MODEL"`
	LogLevel     string `mapstructure:"LOG_LEVEL"`
}

// LoadConfig reads configuration from defaults, an optional .env file, and
// the environment, in increasing precedence. A missing .env file is fine;
// any other read error is not.
func LoadConfig() (*Config, error) {
	viper.SetDefault("APP_PORT", 3001)
	viper.SetDefault("DATABASE_PATH", "./data/weekwise.db")
	viper.SetDefault("STATIC_DIR", "./dist")
	viper.SetDefault("GITHUB_TOKEN", "")
	viper.SetDefault("AI_ENDPOINT", llm.DefaultEndpoint)
	viper.SetDefault("AI_MODEL", llm.DefaultModel)
	viper.SetDefault("LOG_LEVEL", "INFO")

	viper.SetConfigName(".env")
	viper.SetConfigType("env")
	viper.AddConfigPath(".")

	viper.AutomaticEnv()
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, err
		}
	}

	var cfg Config
	if err := viper.Unmarshal(&cfg); err != nil {
		return nil, err
	}

	return &cfg, nil
}

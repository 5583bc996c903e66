package config

import (
	"errors"
	"fmt"
	"io/fs"
	"strings"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

var ErrMissingEnvironmentVariables = errors.New("missing required environment variables")

// Config holds application configuration loaded from files and environment variables.
type Config struct {
	Env               string   `mapstructure:"env"`                 // current application environment (local, dev, production etc)
	QuestionsJSONPath string   `mapstructure:"questions_json_path"` // path to JSON file with quiz questions
	Log               Log      `mapstructure:"log"`                 // logging configuration section
	Metrics           Metrics  `mapstructure:"metrics"`             // metrics endpoint configuration section
	Telegram          Telegram `mapstructure:"telegram"`            // telegram front-end configuration section
}

// Log contains logging output parameters.
type Log struct {
	File       string `mapstructure:"file"`         // rotating log file path; empty logs to console only
	MaxSizeMB  int    `mapstructure:"max_size_mb"`  // size of a log file before it is rotated
	MaxBackups int    `mapstructure:"max_backups"`  // number of rotated files to keep
	MaxAgeDays int    `mapstructure:"max_age_days"` // days to keep rotated files
}

// Metrics contains the prometheus endpoint settings.
type Metrics struct {
	Addr string `mapstructure:"addr"` // listen address for /metrics; empty disables it
}

// Telegram contains bot-related configuration parameters.
type Telegram struct {
	APIToken    string `mapstructure:"-"`            // bot token loaded from environment
	PollTimeout int    `mapstructure:"poll_timeout"` // long polling timeout in seconds
	Debug       bool   `mapstructure:"debug"`        // verbose telegram API logging
}

// Token returns the bot token if it is configured.
func (t Telegram) Token() (string, error) {
	if t.APIToken == "" {
		return "", ErrMissingEnvironmentVariables
	}
	return t.APIToken, nil
}

// Load reads configuration from .env, config files and environment variables.
func Load() (*Config, error) {
	// Variables from .env never override ones already set in the environment.
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("error loading .env file: %w", err)
	}

	v := viper.New()
	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath("./config")

	setDefaults(v)

	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_")) // map nested keys to ENV style names
	v.AutomaticEnv()

	_ = v.BindEnv("telegram_api_token", "TELEGRAM_API_TOKEN")
	_ = v.BindEnv("env", "APP_ENV")

	if err := v.ReadInConfig(); err != nil {
		var fileLookupErr viper.ConfigFileNotFoundError
		if !errors.As(err, &fileLookupErr) {
			return nil, fmt.Errorf("error loading config file: %w", err)
		}
	}

	return unmarshal(v)
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("env", "local")
	v.SetDefault("questions_json_path", "assets/data/questions.json")
	v.SetDefault("log.file", "")
	v.SetDefault("log.max_size_mb", 100)
	v.SetDefault("log.max_backups", 5)
	v.SetDefault("log.max_age_days", 30)
	v.SetDefault("metrics.addr", "")
	v.SetDefault("telegram.poll_timeout", 60)
	v.SetDefault("telegram.debug", false)
}

func unmarshal(v *viper.Viper) (*Config, error) {
	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("error unmarshalling config: %w", err)
	}

	// The token is only required by the telegram front-end, see Telegram.Token.
	cfg.Telegram.APIToken = v.GetString("telegram_api_token")

	return &cfg, nil
}

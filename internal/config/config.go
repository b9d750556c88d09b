package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/joho/godotenv"
	"github.com/mitchellh/mapstructure"
	"github.com/sirupsen/logrus"
	"github.com/spf13/viper"
)

type Config struct {
	App         App         `mapstructure:",squash"`
	Server      Server      `mapstructure:",squash"`
	Database    Database    `mapstructure:",squash"`
	Business    Business    `mapstructure:",squash"`
	DeepSeek    DeepSeek    `mapstructure:",squash"`
	InsightWarm InsightWarm `mapstructure:",squash"`
}

type App struct {
	LogLevel string `mapstructure:"log_level"`
}

type Server struct {
	Host string `mapstructure:"host"`
	Port string `mapstructure:"port"`
}

type Database struct {
	DSN      string `mapstructure:"-"`
	Driver   string `mapstructure:"database_driver"`
	Password string `mapstructure:"database_password"`
	URL      string `mapstructure:"database_url"`
	User     string `mapstructure:"database_user"`
}

// Business carries the fixed business timezone offset used for all
// day/week/month window boundaries.
type Business struct {
	TZOffset string `mapstructure:"business_tz_offset"`
}

// DeepSeek configures the narrative generation service. An empty APIKey
// means narrative generation always takes the deterministic fallback.
type DeepSeek struct {
	APIKey         string `mapstructure:"deepseek_api_key"`
	BaseURL        string `mapstructure:"deepseek_base_url"`
	Model          string `mapstructure:"deepseek_model"`
	TimeoutSeconds int    `mapstructure:"deepseek_timeout_seconds"`
	MaxRetries     int    `mapstructure:"deepseek_max_retries"`
}

// InsightWarm configures the cron job that pre-computes insight cache
// entries before the morning dashboard load.
type InsightWarm struct {
	CronSchedule string `mapstructure:"insight_warm_cron"`
	Enabled      bool   `mapstructure:"insight_warm_enabled"`
}

func SetDefaults() {
	viper.SetDefault("HOST", "localhost")
	viper.SetDefault("PORT", 8000)

	viper.SetDefault("DATABASE_DRIVER", "postgres")
	viper.SetDefault("DATABASE_URL", "localhost:5432/salesmonitor")
	viper.SetDefault("DATABASE_USER", "postgres")
	viper.SetDefault("DATABASE_PASSWORD", "root")

	viper.SetDefault("BUSINESS_TZ_OFFSET", "+07:00")

	viper.SetDefault("DEEPSEEK_API_KEY", "")
	viper.SetDefault("DEEPSEEK_BASE_URL", "https://api.deepseek.com/v1")
	viper.SetDefault("DEEPSEEK_MODEL", "deepseek-chat")
	viper.SetDefault("DEEPSEEK_TIMEOUT_SECONDS", 15)
	viper.SetDefault("DEEPSEEK_MAX_RETRIES", 1)

	viper.SetDefault("INSIGHT_WARM_CRON", "0 5 * * *") // every day at 05:00
	viper.SetDefault("INSIGHT_WARM_ENABLED", false)

	viper.SetDefault("LOG_LEVEL", "debug")
}

func NewConfig() (*Config, error) {
	loadEnvFile() // ONLY LOCAL

	config := &Config{}

	SetDefaults()

	viper.SetConfigType("env")
	viper.SetConfigFile(".env")
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err != nil {
		logrus.Info("using environment variables loaded by godotenv (viper could not read .env):", err)
	}

	err := viper.Unmarshal(&config, viper.DecodeHook(
		mapstructure.ComposeDecodeHookFunc(
			mapstructure.StringToTimeDurationHookFunc(),
			mapstructure.StringToSliceHookFunc(","),
		),
	))
	if err != nil {
		return nil, err
	}

	config.Database.DSN = fmt.Sprintf(
		"%s://%s:%s@%s",
		config.Database.Driver,
		config.Database.User,
		config.Database.Password,
		config.Database.URL,
	)

	return config, nil
}

// loadEnvFile loads a .env file from the usual local locations.
func loadEnvFile() {
	cwd, err := os.Getwd()
	if err != nil {
		logrus.Warn("could not determine working directory:", err)
		return
	}

	locations := []string{
		filepath.Join(cwd, ".env"),
		filepath.Join(filepath.Dir(cwd), ".env"),
		filepath.Join(cwd, "../.env"),
		filepath.Join(cwd, "../../.env"),
	}

	for _, location := range locations {
		if err := godotenv.Load(location); err == nil {
			logrus.Info(".env loaded from:", location)
			return
		}
	}

	logrus.Debug("no .env file found, relying on process environment")
}

package config

import (
	"errors"
	"fmt"
	"os"
	"time"
	_ "time/tzdata"

	"github.com/joho/godotenv"
	"github.com/labstack/gommon/log"
	"github.com/spf13/viper"
)

// LoadEnv loads environment variables from a .env file
func LoadEnv() {
	err := godotenv.Load(".env")
	if err != nil {
		log.Info("No .env file loaded")
	}
}

// GetEnv retrieves environment variables with a fallback
func GetEnv(key, fallback string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return fallback
}

type Config struct {
	Port                 string        `mapstructure:"port"`
	AppEnv               string        `mapstructure:"app_env"`
	MongoURI             string        `mapstructure:"mongodb_uri"`
	MongoDatabase        string        `mapstructure:"mongodb_database"`
	JWTSecret            string        `mapstructure:"jwt_secret"`
	JWTTTL               time.Duration `mapstructure:"jwt_ttl"`
	AdminEmail           string        `mapstructure:"admin_email"`
	AdminPasswordHash    string        `mapstructure:"admin_password_hash"`
	TelegramAPIURL       string        `mapstructure:"telegram_api_url"`
	KafkaBrokers         []string      `mapstructure:"kafka_brokers"`
	KafkaTopic           string        `mapstructure:"kafka_topic"`
	MapLookupDelay       time.Duration `mapstructure:"map_lookup_delay"`
	PaymentRedirectDelay time.Duration `mapstructure:"payment_redirect_delay"`
	SessionIdleTimeout   time.Duration `mapstructure:"session_idle_timeout"`
	ShopTimezone         string        `mapstructure:"shop_timezone"`
	OtelExporterURL      string        `mapstructure:"otel_exporter_url"`
	OtelSampleRate       float64       `mapstructure:"otel_sample_rate"`
}

var defaults = map[string]interface{}{
	"port":                   "3000",
	"app_env":                "development",
	"mongodb_uri":            "mongodb://localhost:27017",
	"mongodb_database":       "seafood",
	"jwt_secret":             "",
	"jwt_ttl":                "72h",
	"admin_email":            "",
	"admin_password_hash":    "",
	"telegram_api_url":       "https://api.telegram.org",
	"kafka_brokers":          []string{},
	"kafka_topic":            "orders",
	"map_lookup_delay":       "1s",
	"payment_redirect_delay": "2s",
	"session_idle_timeout":   "30m",
	"shop_timezone":          "Asia/Taipei",
	"otel_exporter_url":      "",
	"otel_sample_rate":       1.0,
}

// Load reads cfgFile when given, otherwise an optional config file in the
// working directory, with environment variables taking precedence.
func Load(cfgFile string) (*Config, error) {
	v := viper.New()
	for key, value := range defaults {
		v.SetDefault(key, value)
	}

	if cfgFile != "" {
		v.SetConfigFile(cfgFile)
	} else {
		v.AddConfigPath(".")
		v.SetConfigName("config")
	}
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if cfgFile != "" || !errors.As(err, &notFound) {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("unable to decode into struct, %w", err)
	}
	return &cfg, nil
}

// Location is the time zone order ids and timestamps are written in.
func (c *Config) Location() (*time.Location, error) {
	return time.LoadLocation(c.ShopTimezone)
}

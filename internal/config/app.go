package config

import (
	"fmt"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

type HTTPServer struct {
	Port string `mapstructure:"port"`
}

type DbServer struct {
	Host     string `mapstructure:"host"`
	Port     string `mapstructure:"port"`
	User     string `mapstructure:"user"`
	Pass     string `mapstructure:"pass"`
	Name     string `mapstructure:"name"`
	MaxConns int32  `mapstructure:"max_conns"`
}

func (config *DbServer) GetConnectionStr() string {
	return fmt.Sprintf(
		"user=%s password=%s host=%s port=%s dbname=%s sslmode=disable pool_max_conns=10",
		config.User, config.Pass, config.Host, config.Port, config.Name,
	)
}

type HTTPClient struct {
	TimeoutSeconds int `mapstructure:"timeout_seconds"`
}

type PricingAPI struct {
	BaseURL string `mapstructure:"base_url"`
}

type CheckoutAPI struct {
	BaseURL string `mapstructure:"base_url"`
	APIKey  string `mapstructure:"api_key"`
}

type Scheduler struct {
	JobDurationSec int `mapstructure:"job_duration_sec"`
}

type Cache struct {
	MaxItems int64 `mapstructure:"max_items"`
}

type Fees struct {
	PlatformRate  float64 `mapstructure:"platform_rate"`
	FollowingRate float64 `mapstructure:"following_rate"`
}

type Logging struct {
	Level string `mapstructure:"level"`
}

type AppConfig struct {
	HTTPServer  HTTPServer  `mapstructure:"http_server"`
	DbServer    DbServer    `mapstructure:"db_server"`
	HTTPClient  HTTPClient  `mapstructure:"http_client"`
	PricingAPI  PricingAPI  `mapstructure:"pricing_api"`
	CheckoutAPI CheckoutAPI `mapstructure:"checkout_api"`
	Scheduler   Scheduler   `mapstructure:"scheduler"`
	Cache       Cache       `mapstructure:"cache"`
	Fees        Fees        `mapstructure:"fees"`
	Logging     Logging     `mapstructure:"logging"`
}

func Init() (*AppConfig, error) {
	var cfg AppConfig

	if err := godotenv.Load(); err != nil {
		return nil, fmt.Errorf("error loading .env file: %w", err)
	}

	viper.SetConfigFile("config.yaml")
	viper.SetConfigType("yaml")
	if err := viper.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("error reading config file: %w", err)
	}

	viper.SetDefault("db_server.max_conns", 10)
	viper.SetDefault("http_client.timeout_seconds", 10)
	viper.SetDefault("scheduler.job_duration_sec", 10)
	viper.SetDefault("cache.max_items", 1000)
	viper.SetDefault("fees.platform_rate", 0.05)
	viper.SetDefault("fees.following_rate", 0.05)
	viper.SetDefault("logging.level", "info")

	// db server env vars
	_ = viper.BindEnv("db_server.host", "DB_HOST")
	_ = viper.BindEnv("db_server.port", "DB_PORT")
	_ = viper.BindEnv("db_server.user", "DB_USER")
	_ = viper.BindEnv("db_server.pass", "DB_PASS")
	_ = viper.BindEnv("db_server.name", "DB_NAME")
	_ = viper.BindEnv("db_server.max_conns", "DB_MAX_CONNS")

	// http client env vars
	_ = viper.BindEnv("http_client.timeout_seconds", "HTTP_CLIENT_TIMEOUT_SECONDS")

	// upstream api env vars
	_ = viper.BindEnv("pricing_api.base_url", "PRICING_API_BASE_URL")
	_ = viper.BindEnv("checkout_api.base_url", "CHECKOUT_API_BASE_URL")
	_ = viper.BindEnv("checkout_api.api_key", "CHECKOUT_API_KEY")

	if err := viper.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("error unmarshalling config: %w", err)
	}

	return &cfg, nil
}

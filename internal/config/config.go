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
	App                 App                 `mapstructure:",squash"`
	Server              Server              `mapstructure:",squash"`
	Database            Database            `mapstructure:",squash"`
	Auth                Auth                `mapstructure:",squash"`
	Client              Client              `mapstructure:",squash"`
	Images              Images              `mapstructure:",squash"`
	Cache               Cache               `mapstructure:",squash"`
	SalesSummarySync    SalesSummarySync    `mapstructure:",squash"`
	PurchaseSummarySync PurchaseSummarySync `mapstructure:",squash"`
	ExpenseSummarySync  ExpenseSummarySync  `mapstructure:",squash"`
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

type Auth struct {
	Secret string `mapstructure:"auth_secret"`
}

// Client configures the typed API client consumed by Go programs
type Client struct {
	BaseURL        string `mapstructure:"api_base_url"`
	TimeoutSeconds int    `mapstructure:"api_timeout_seconds"`
}

// Images restricts which remote hosts product image URLs may point at
type Images struct {
	AllowedHosts []string `mapstructure:"image_allowed_hosts"`
}

type Cache struct {
	TTLSeconds int `mapstructure:"cache_ttl_seconds"`
}

type SalesSummarySync struct {
	CronSchedule string `mapstructure:"sales_summary_sync_cron"`
	LookbackDays int    `mapstructure:"sales_summary_sync_lookback_days"`
	Enabled      bool   `mapstructure:"sales_summary_sync_enabled"`
}

type PurchaseSummarySync struct {
	CronSchedule string `mapstructure:"purchase_summary_sync_cron"`
	LookbackDays int    `mapstructure:"purchase_summary_sync_lookback_days"`
	Enabled      bool   `mapstructure:"purchase_summary_sync_enabled"`
}

type ExpenseSummarySync struct {
	CronSchedule string `mapstructure:"expense_summary_sync_cron"`
	LookbackDays int    `mapstructure:"expense_summary_sync_lookback_days"`
	Enabled      bool   `mapstructure:"expense_summary_sync_enabled"`
}

func SetDefaults() {
	viper.SetDefault("HOST", "localhost")
	viper.SetDefault("PORT", 8000)

	viper.SetDefault("DATABASE_DRIVER", "postgres")
	viper.SetDefault("DATABASE_URL", "localhost:5432/inventory")
	viper.SetDefault("DATABASE_USER", "postgres")
	viper.SetDefault("DATABASE_PASSWORD", "root")

	viper.SetDefault("AUTH_SECRET", "your_auth_secret")

	viper.SetDefault("API_BASE_URL", "http://localhost:8000")
	viper.SetDefault("API_TIMEOUT_SECONDS", 30)

	// Product images are served from a single S3 bucket
	viper.SetDefault("IMAGE_ALLOWED_HOSTS", "s3-inventorymanagement.s3.us-east-2.amazonaws.com")

	// Matches the keep-unused-data window of the dashboard's query layer
	viper.SetDefault("CACHE_TTL_SECONDS", 60)

	// Rollup defaults: one job per summary table, staggered early morning
	viper.SetDefault("SALES_SUMMARY_SYNC_CRON", "0 1 * * *")
	viper.SetDefault("SALES_SUMMARY_SYNC_LOOKBACK_DAYS", 7)
	viper.SetDefault("SALES_SUMMARY_SYNC_ENABLED", false)

	viper.SetDefault("PURCHASE_SUMMARY_SYNC_CRON", "0 2 * * *")
	viper.SetDefault("PURCHASE_SUMMARY_SYNC_LOOKBACK_DAYS", 7)
	viper.SetDefault("PURCHASE_SUMMARY_SYNC_ENABLED", false)

	viper.SetDefault("EXPENSE_SUMMARY_SYNC_CRON", "0 3 * * *")
	viper.SetDefault("EXPENSE_SUMMARY_SYNC_LOOKBACK_DAYS", 7)
	viper.SetDefault("EXPENSE_SUMMARY_SYNC_ENABLED", false)

	viper.SetDefault("LOG_LEVEL", "debug")
}

func NewConfig() (*Config, error) {
	// Load the .env file first with godotenv
	loadEnvFile() // ONLY LOCAL

	config := &Config{}

	SetDefaults()

	viper.SetConfigType("env")
	viper.SetConfigFile(".env")
	viper.AutomaticEnv() // lets viper read environment variables

	// Reading .env with viper is optional, godotenv already loaded it
	if err := viper.ReadInConfig(); err != nil {
		logrus.Info("Using variables loaded by godotenv (viper could not read .env):", err)
	} else {
		logrus.Info(".env file read by viper")
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

// loadEnvFile loads the .env file with godotenv, probing the usual locations
func loadEnvFile() {
	cwd, err := os.Getwd()
	if err != nil {
		logrus.Warn("Could not resolve the current directory:", err)
		return
	}

	locations := []string{
		filepath.Join(cwd, ".env"),
		filepath.Join(filepath.Dir(cwd), ".env"),
		filepath.Join(cwd, "../.env"),
		filepath.Join(cwd, "../../.env"),
	}

	for _, location := range locations {
		err := godotenv.Load(location)
		if err == nil {
			logrus.Info(".env file loaded from:", location)
			return
		}
	}

	logrus.Info("No .env file found, relying on process environment")
}

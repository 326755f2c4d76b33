package config

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/joho/godotenv"
	"github.com/mitchellh/mapstructure"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"github.com/spf13/viper"
)

const (
	SourceFixtures = "fixtures"
	SourcePostgres = "postgres"
)

var ErrInvalidConfig = errors.New("invalid config")

type Config struct {
	App             App             `mapstructure:",squash"`
	Server          Server          `mapstructure:",squash"`
	Database        Database        `mapstructure:",squash"`
	Dashboard       Dashboard       `mapstructure:",squash"`
	Dataset         Dataset         `mapstructure:",squash"`
	SnapshotRefresh SnapshotRefresh `mapstructure:",squash"`
	Auth            Auth            `mapstructure:",squash"`
	Cors            Cors            `mapstructure:",squash"`
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
	Migrate  bool   `mapstructure:"database_migrate"`
}

// Dashboard controls how values are rendered.
type Dashboard struct {
	Locale      string `mapstructure:"dashboard_locale"`
	Currency    string `mapstructure:"dashboard_currency"`
	Today       string `mapstructure:"dashboard_today"` // YYYY-MM-DD, empty means latest order day
	ItemPreview int    `mapstructure:"table_item_preview"`
}

// Dataset selects which records are served and where they come from.
type Dataset struct {
	Variant string `mapstructure:"dataset_variant"`
	Source  string `mapstructure:"dataset_source"`
}

type SnapshotRefresh struct {
	CronSchedule string `mapstructure:"snapshot_refresh_cron"`
	Enabled      bool   `mapstructure:"snapshot_refresh_enabled"`
}

type Auth struct {
	Enabled              bool          `mapstructure:"auth_enabled"`
	Secret               string        `mapstructure:"auth_secret"`
	TokenTTL             time.Duration `mapstructure:"auth_token_ttl"`
	OperatorEmail        string        `mapstructure:"auth_operator_email"`
	OperatorPasswordHash string        `mapstructure:"auth_operator_password_hash"`
	OperatorRole         int           `mapstructure:"auth_operator_role"`
}

type Cors struct {
	AllowedOrigins []string `mapstructure:"cors_allowed_origins"`
}

func SetDefaults() {
	viper.SetDefault("HOST", "localhost")
	viper.SetDefault("PORT", 8000)

	viper.SetDefault("DATABASE_DRIVER", "postgres")
	viper.SetDefault("DATABASE_URL", "localhost:5432/restaurant?sslmode=disable")
	viper.SetDefault("DATABASE_USER", "postgres")
	viper.SetDefault("DATABASE_PASSWORD", "root")
	viper.SetDefault("DATABASE_MIGRATE", false)

	viper.SetDefault("DASHBOARD_LOCALE", "en-US")
	viper.SetDefault("DASHBOARD_CURRENCY", "USD")
	viper.SetDefault("DASHBOARD_TODAY", "")
	viper.SetDefault("TABLE_ITEM_PREVIEW", 2)

	viper.SetDefault("DATASET_VARIANT", "en-US")
	viper.SetDefault("DATASET_SOURCE", SourceFixtures)

	viper.SetDefault("SNAPSHOT_REFRESH_CRON", "*/15 * * * *") // every 15 minutes
	viper.SetDefault("SNAPSHOT_REFRESH_ENABLED", false)

	viper.SetDefault("AUTH_ENABLED", false)
	viper.SetDefault("AUTH_SECRET", "your_secret_key")
	viper.SetDefault("AUTH_TOKEN_TTL", "24h")
	viper.SetDefault("AUTH_OPERATOR_EMAIL", "")
	viper.SetDefault("AUTH_OPERATOR_PASSWORD_HASH", "")
	viper.SetDefault("AUTH_OPERATOR_ROLE", 1)

	viper.SetDefault("CORS_ALLOWED_ORIGINS", []string{"*"})

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
		logrus.Debug("Using environment only, viper could not read .env: ", err)
	} else {
		logrus.Info("Loaded .env through viper")
	}

	err := viper.Unmarshal(&config, viper.DecodeHook(
		mapstructure.ComposeDecodeHookFunc(
			mapstructure.StringToTimeDurationHookFunc(),
			mapstructure.StringToSliceHookFunc(","),
		),
	))
	if err != nil {
		return nil, errors.Wrap(err, "decode config")
	}

	config.Database.DSN = fmt.Sprintf(
		"%s://%s:%s@%s",
		config.Database.Driver,
		config.Database.User,
		config.Database.Password,
		config.Database.URL,
	)

	if err := config.Validate(); err != nil {
		return nil, err
	}

	return config, nil
}

// Validate catches settings the server cannot start with. Locale and currency
// are checked when the formatter is built.
func (c *Config) Validate() error {
	if c.Dataset.Source != SourceFixtures && c.Dataset.Source != SourcePostgres {
		return errors.Wrapf(ErrInvalidConfig, "DATASET_SOURCE must be %q or %q, got %q",
			SourceFixtures, SourcePostgres, c.Dataset.Source)
	}

	if c.Dashboard.ItemPreview < 0 {
		return errors.Wrapf(ErrInvalidConfig, "TABLE_ITEM_PREVIEW must not be negative, got %d", c.Dashboard.ItemPreview)
	}

	if c.Dashboard.Today != "" {
		if _, err := time.Parse(time.DateOnly, c.Dashboard.Today); err != nil {
			return errors.Wrapf(ErrInvalidConfig, "DASHBOARD_TODAY must be YYYY-MM-DD, got %q", c.Dashboard.Today)
		}
	}

	if c.Auth.Enabled {
		if c.Auth.OperatorEmail == "" || c.Auth.OperatorPasswordHash == "" {
			return errors.Wrap(ErrInvalidConfig, "AUTH_OPERATOR_EMAIL and AUTH_OPERATOR_PASSWORD_HASH are required when AUTH_ENABLED")
		}
		if c.Auth.TokenTTL <= 0 {
			return errors.Wrapf(ErrInvalidConfig, "AUTH_TOKEN_TTL must be positive, got %s", c.Auth.TokenTTL)
		}
	}

	return nil
}

func (s Server) Addr() string {
	return fmt.Sprintf("%s:%s", s.Host, s.Port)
}

func loadEnvFile() {
	cwd, err := os.Getwd()
	if err != nil {
		logrus.Warn("Could not resolve working directory: ", err)
		return
	}

	locations := []string{
		filepath.Join(cwd, ".env"),
		filepath.Join(filepath.Dir(cwd), ".env"),
		filepath.Join(cwd, "../../.env"),
	}

	for _, location := range locations {
		if err := godotenv.Load(location); err == nil {
			logrus.Info("Loaded .env from ", location)
			return
		}
	}

	logrus.Debug("No .env file found, using process environment")
}

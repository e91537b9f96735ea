package cmd

import (
	"errors"
	"fmt"
	"io/fs"

	"orders/internal/adapters/out/storage"
	"orders/internal/core/domain/model/order"
	"orders/internal/jobs"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

type Config struct {
	HTTPPort             string
	DBDriver             string
	DBHost               string
	DBPort               string
	DBUser               string
	DBPassword           string
	DBName               string
	DBSslMode            string
	SQLiteDSN            string
	LogLevel             string
	LogEncoding          string
	SeedProducts         bool
	OrderStatusPolicy    string
	StatusReportSchedule string
}

// LoadConfig reads envFile into the process environment when it exists, then
// resolves every setting from the environment with defaults.
func LoadConfig(envFile string) (Config, error) {
	if envFile != "" {
		if err := godotenv.Load(envFile); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return Config{}, fmt.Errorf("failed to load %s: %w", envFile, err)
		}
	}

	v := viper.New()
	v.AutomaticEnv()

	v.SetDefault("HTTP_PORT", "8080")
	v.SetDefault("DB_DRIVER", storage.DriverPostgres)
	v.SetDefault("DB_HOST", "localhost")
	v.SetDefault("DB_PORT", "5432")
	v.SetDefault("DB_USER", "postgres")
	v.SetDefault("DB_PASSWORD", "")
	v.SetDefault("DB_NAME", "orders")
	v.SetDefault("DB_SSLMODE", "disable")
	v.SetDefault("SQLITE_DSN", "file:orders.db?_pragma=foreign_keys(1)")
	v.SetDefault("LOG_LEVEL", "info")
	v.SetDefault("LOG_ENCODING", "json")
	v.SetDefault("SEED_PRODUCTS", true)
	v.SetDefault("ORDER_STATUS_POLICY", order.Permissive.String())
	v.SetDefault("STATUS_REPORT_SCHEDULE", jobs.DefaultStatusReportSchedule)

	return Config{
		HTTPPort:             v.GetString("HTTP_PORT"),
		DBDriver:             v.GetString("DB_DRIVER"),
		DBHost:               v.GetString("DB_HOST"),
		DBPort:               v.GetString("DB_PORT"),
		DBUser:               v.GetString("DB_USER"),
		DBPassword:           v.GetString("DB_PASSWORD"),
		DBName:               v.GetString("DB_NAME"),
		DBSslMode:            v.GetString("DB_SSLMODE"),
		SQLiteDSN:            v.GetString("SQLITE_DSN"),
		LogLevel:             v.GetString("LOG_LEVEL"),
		LogEncoding:          v.GetString("LOG_ENCODING"),
		SeedProducts:         v.GetBool("SEED_PRODUCTS"),
		OrderStatusPolicy:    v.GetString("ORDER_STATUS_POLICY"),
		StatusReportSchedule: v.GetString("STATUS_REPORT_SCHEDULE"),
	}, nil
}

// StorageConfig selects the driver and builds its DSN.
func (c Config) StorageConfig() storage.Config {
	if c.DBDriver == storage.DriverSQLite {
		return storage.Config{Driver: storage.DriverSQLite, DSN: c.SQLiteDSN}
	}

	return storage.Config{
		Driver: c.DBDriver,
		DSN: fmt.Sprintf(
			"host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
			c.DBHost, c.DBPort, c.DBUser, c.DBPassword, c.DBName, c.DBSslMode,
		),
	}
}

func (c Config) TransitionPolicy() (order.TransitionPolicy, error) {
	return order.ParseTransitionPolicy(c.OrderStatusPolicy)
}

package cmd

import (
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"strings"

	"github.com/joho/godotenv"
	"github.com/shopspring/decimal"
	"github.com/spf13/viper"
)

const (
	StorageMemory   = "memory"
	StoragePostgres = "postgres"
)

type Config struct {
	AppEnv   string
	LogLevel string
	HTTPPort string
	Storage  string

	DBHost     string
	DBPort     string
	DBUser     string
	DBPassword string
	DBName     string
	DBSslMode  string

	JWTSecret string

	KafkaBrokers       string
	KafkaShipmentTopic string

	WeightTolerance       decimal.Decimal
	DamagedItemsAccounted bool
	DamagedItemsWeighed   bool
	ReorderScanSchedule   string
}

// LoadConfig reads the environment, after loading envFile into it when the
// file exists. Variables already set in the environment win over the file.
func LoadConfig(envFile string) (Config, error) {
	if err := godotenv.Load(envFile); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return Config{}, fmt.Errorf("load %s: %w", envFile, err)
	}

	v := viper.New()
	v.AutomaticEnv()
	setDefaults(v)

	tolerance, err := decimal.NewFromString(v.GetString("WEIGHT_TOLERANCE"))
	if err != nil {
		return Config{}, fmt.Errorf("WEIGHT_TOLERANCE: %w", err)
	}

	cfg := Config{
		AppEnv:                v.GetString("APP_ENV"),
		LogLevel:              v.GetString("LOG_LEVEL"),
		HTTPPort:              v.GetString("HTTP_PORT"),
		Storage:               strings.ToLower(v.GetString("STORAGE")),
		DBHost:                v.GetString("DB_HOST"),
		DBPort:                v.GetString("DB_PORT"),
		DBUser:                v.GetString("DB_USER"),
		DBPassword:            v.GetString("DB_PASSWORD"),
		DBName:                v.GetString("DB_NAME"),
		DBSslMode:             v.GetString("DB_SSLMODE"),
		JWTSecret:             v.GetString("JWT_SECRET"),
		KafkaBrokers:          v.GetString("KAFKA_BROKERS"),
		KafkaShipmentTopic:    v.GetString("KAFKA_SHIPMENT_TOPIC"),
		WeightTolerance:       tolerance,
		DamagedItemsAccounted: v.GetBool("DAMAGED_ITEMS_ACCOUNTED"),
		DamagedItemsWeighed:   v.GetBool("DAMAGED_ITEMS_WEIGHED"),
		ReorderScanSchedule:   v.GetString("REORDER_SCAN_SCHEDULE"),
	}
	if err = cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("APP_ENV", "development")
	v.SetDefault("LOG_LEVEL", "info")
	v.SetDefault("HTTP_PORT", "8080")
	v.SetDefault("STORAGE", StoragePostgres)
	v.SetDefault("DB_HOST", "localhost")
	v.SetDefault("DB_PORT", "5432")
	v.SetDefault("DB_USER", "postgres")
	v.SetDefault("DB_PASSWORD", "")
	v.SetDefault("DB_NAME", "logistics")
	v.SetDefault("DB_SSLMODE", "disable")
	v.SetDefault("JWT_SECRET", "")
	v.SetDefault("KAFKA_BROKERS", "")
	v.SetDefault("KAFKA_SHIPMENT_TOPIC", "shipment.status")
	v.SetDefault("WEIGHT_TOLERANCE", "0.5")
	v.SetDefault("DAMAGED_ITEMS_ACCOUNTED", true)
	v.SetDefault("DAMAGED_ITEMS_WEIGHED", false)
	v.SetDefault("REORDER_SCAN_SCHEDULE", "0 0 * * * *")
}

func (c Config) Validate() error {
	var errs []error
	if c.Storage != StorageMemory && c.Storage != StoragePostgres {
		errs = append(errs, fmt.Errorf("STORAGE must be %q or %q, got %q", StorageMemory, StoragePostgres, c.Storage))
	}
	if c.JWTSecret == "" {
		errs = append(errs, errors.New("JWT_SECRET is required"))
	}
	if c.HTTPPort == "" {
		errs = append(errs, errors.New("HTTP_PORT is required"))
	}
	if c.WeightTolerance.IsNegative() {
		errs = append(errs, errors.New("WEIGHT_TOLERANCE must not be negative"))
	}
	return errors.Join(errs...)
}

// DSN is the postgres connection string.
func (c Config) DSN() string {
	return fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		c.DBHost, c.DBPort, c.DBUser, c.DBPassword, c.DBName, c.DBSslMode)
}

// KafkaEnabled reports whether shipment events go to a broker instead of
// the in-process log.
func (c Config) KafkaEnabled() bool {
	return strings.TrimSpace(c.KafkaBrokers) != ""
}

func (c Config) SlogLevel() slog.Level {
	var level slog.Level
	if err := level.UnmarshalText([]byte(c.LogLevel)); err != nil {
		return slog.LevelInfo
	}
	return level
}

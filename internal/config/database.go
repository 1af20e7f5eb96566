package config

import (
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/Dmitriy-Grakovich/2025-12-otus-spring-GDV/internal/infrastructure/database"
)

// envReader parses typed variables and keeps every failure, so one run reports all bad values
type envReader struct {
	errs []error
}

func (r *envReader) int(key, def string) int {
	v, err := strconv.Atoi(getEnv(key, def))
	if err != nil {
		r.errs = append(r.errs, fmt.Errorf("invalid %s: %w", key, err))
	}
	return v
}

func (r *envReader) duration(key, def string) time.Duration {
	v, err := time.ParseDuration(getEnv(key, def))
	if err != nil {
		r.errs = append(r.errs, fmt.Errorf("invalid %s: %w", key, err))
	}
	return v
}

// LoadDatabaseConfig reads the PostgreSQL settings from environment variables.
// DATABASE_URL, when set, replaces the individual DB_HOST..DB_SSLMODE values.
func LoadDatabaseConfig() (*database.DBConfig, error) {
	var r envReader

	cfg := &database.DBConfig{
		URL:      getEnv("DATABASE_URL", ""),
		Host:     getEnv("DB_HOST", "localhost"),
		Port:     r.int("DB_PORT", "5432"),
		Username: getEnv("DB_USER", "library"),
		Password: getEnv("DB_PASSWORD", "secret"),
		DBName:   getEnv("DB_NAME", "library"),
		SSLMode:  getEnv("DB_SSLMODE", "disable"),

		MaxConns:          int32(r.int("DB_MAX_CONNECTIONS", "10")),
		MinConns:          int32(r.int("DB_MIN_CONNECTIONS", "1")),
		MaxConnLifetime:   r.duration("DB_MAX_CONN_LIFETIME", "5m"),
		MaxConnIdleTime:   r.duration("DB_MAX_CONN_IDLE_TIME", "1m"),
		HealthCheckPeriod: r.duration("DB_HEALTH_CHECK_PERIOD", "1m"),

		MaxRetries:     r.int("DB_MAX_RETRIES", "5"),
		RetryDelay:     r.duration("DB_RETRY_DELAY", "1s"),
		ConnectTimeout: r.duration("DB_CONNECT_TIMEOUT", "10s"),
	}
	if err := errors.Join(r.errs...); err != nil {
		return nil, err
	}

	if cfg.MinConns > cfg.MaxConns {
		return nil, fmt.Errorf("DB_MIN_CONNECTIONS (%d) exceeds DB_MAX_CONNECTIONS (%d)", cfg.MinConns, cfg.MaxConns)
	}
	return cfg, nil
}

package config

import (
	"fmt"
	"os"
	"strconv"
)

// Config holds the whole application configuration.
// It is populated from environment variables (and a .env file loaded by main).
type Config struct {
	App     AppConfig
	Quiz    QuizConfig
	Library LibraryConfig
	JWT     JWTConfig
}

type AppConfig struct {
	Name        string
	Environment string // development, staging, production
	Port        string
	Version     string
	LogLevel    string
}

// QuizConfig mirrors the question resource settings of the console quiz.
type QuizConfig struct {
	ResourceDir        string // empty: embedded resources
	CSVResource        string // base name without locale and extension
	CSVResourcePattern string // e.g. questions_{locale}.csv
	PassingLimit       int
	DefaultLocale      string
	AnswerPolicy       string // strict | lenient
}

type LibraryConfig struct {
	Store      string // sql | orm
	ORMDriver  string // postgres | sqlite
	SQLitePath string
}

type JWTConfig struct {
	Secret            string
	AccessTokenExpiry int // minutes
}

const (
	StoreSQL = "sql"
	StoreORM = "orm"

	DriverPostgres = "postgres"
	DriverSQLite   = "sqlite"

	PolicyStrict  = "strict"
	PolicyLenient = "lenient"

	defaultJWTSecret = "your-secret-key-change-in-production"
)

// Load reads config from environment variables
func Load() (*Config, error) {
	cfg := &Config{
		App: AppConfig{
			Name:        getEnv("APP_NAME", "Library & Quiz"),
			Environment: getEnv("APP_ENV", "development"),
			Port:        getEnv("APP_PORT", "8080"),
			Version:     getEnv("APP_VERSION", "1.0.0"),
			LogLevel:    getEnv("LOG_LEVEL", "info"),
		},
		Quiz: QuizConfig{
			ResourceDir:        getEnv("QUIZ_RESOURCE_DIR", ""),
			CSVResource:        getEnv("QUIZ_CSV_RESOURCE", "questions"),
			CSVResourcePattern: getEnv("QUIZ_CSV_RESOURCE_PATTERN", "questions_{locale}.csv"),
			PassingLimit:       getEnvInt("QUIZ_PASSING_LIMIT", 3),
			DefaultLocale:      getEnv("QUIZ_DEFAULT_LOCALE", "en"),
			AnswerPolicy:       getEnv("QUIZ_ANSWER_POLICY", PolicyStrict),
		},
		Library: LibraryConfig{
			Store:      getEnv("LIBRARY_STORE", StoreSQL),
			ORMDriver:  getEnv("LIBRARY_ORM_DRIVER", DriverPostgres),
			SQLitePath: getEnv("LIBRARY_SQLITE_PATH", "library.db"),
		},
		JWT: JWTConfig{
			Secret:            getEnv("JWT_SECRET", defaultJWTSecret),
			AccessTokenExpiry: getEnvInt("JWT_ACCESS_EXPIRY", 60),
		},
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("config validation failed: %w", err)
	}

	return cfg, nil
}

// Validate checks values that would otherwise fail late at runtime
func (c *Config) Validate() error {
	if c.Quiz.PassingLimit < 0 {
		return fmt.Errorf("QUIZ_PASSING_LIMIT must not be negative, got %d", c.Quiz.PassingLimit)
	}
	if c.Quiz.CSVResource == "" {
		return fmt.Errorf("QUIZ_CSV_RESOURCE must be set")
	}
	switch c.Quiz.AnswerPolicy {
	case PolicyStrict, PolicyLenient:
	default:
		return fmt.Errorf("unknown QUIZ_ANSWER_POLICY %q", c.Quiz.AnswerPolicy)
	}

	switch c.Library.Store {
	case StoreSQL, StoreORM:
	default:
		return fmt.Errorf("unknown LIBRARY_STORE %q", c.Library.Store)
	}
	switch c.Library.ORMDriver {
	case DriverPostgres, DriverSQLite:
	default:
		return fmt.Errorf("unknown LIBRARY_ORM_DRIVER %q", c.Library.ORMDriver)
	}

	if c.App.Environment == "production" && c.JWT.Secret == defaultJWTSecret {
		return fmt.Errorf("JWT_SECRET must be set in production")
	}

	return nil
}

// Helper functions
func getEnv(key, defaultValue string) string {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	return value
}

func getEnvInt(key string, defaultValue int) int {
	valueStr := os.Getenv(key)
	if valueStr == "" {
		return defaultValue
	}
	value, err := strconv.Atoi(valueStr)
	if err != nil {
		return defaultValue
	}
	return value
}

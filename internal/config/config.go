package config

import (
	"fmt"
	"net/url"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
)

const (
	DriverPostgres = "postgres"
	DriverSQLite   = "sqlite"
)

type Config struct {
	Driver string

	DBHost     string
	DBPort     string
	DBName     string
	DBUser     string
	DBPassword string
	DBSSLMode  string
	DBDSN      string // полный postgres URL, перекрывает поля выше
	DBPath     string // файл sqlite

	SecretKey     string
	Debug         bool
	ServerPort    string
	SQLMigrations bool
}

// Load читает .env (если есть) и переменные окружения.
func Load() (*Config, error) {
	_ = godotenv.Load()

	cfg := &Config{
		Driver:        strings.ToLower(getEnv("DB_DRIVER", DriverPostgres)),
		DBHost:        getEnv("DB_HOST", "localhost"),
		DBPort:        getEnv("DB_PORT", "5432"),
		DBName:        getEnv("DB_NAME", "client_management_system"),
		DBUser:        getEnv("DB_USER", "postgres"),
		DBPassword:    getEnv("DB_PASSWORD", "password"),
		DBSSLMode:     getEnv("DB_SSLMODE", "disable"),
		DBDSN:         os.Getenv("DB_DSN"),
		DBPath:        getEnv("DB_PATH", "clients.db"),
		SecretKey:     getEnv("SECRET_KEY", "dev-secret-key"),
		Debug:         parseBool("DEBUG", false),
		ServerPort:    getEnv("SERVER_PORT", "8080"),
		SQLMigrations: parseBool("MIGRATIONS", false),
	}

	switch cfg.Driver {
	case DriverPostgres, DriverSQLite:
	default:
		return nil, fmt.Errorf("unsupported DB_DRIVER %q", cfg.Driver)
	}

	return cfg, nil
}

// PostgresURL собирает DSN в URL-форме: её понимают и gorm, и golang-migrate.
func (c *Config) PostgresURL() string {
	if c.DBDSN != "" {
		return c.DBDSN
	}
	u := &url.URL{
		Scheme: "postgres",
		User:   url.UserPassword(c.DBUser, c.DBPassword),
		Host:   c.DBHost + ":" + c.DBPort,
		Path:   "/" + c.DBName,
	}
	q := url.Values{}
	q.Set("sslmode", c.DBSSLMode)
	u.RawQuery = q.Encode()
	return u.String()
}

func getEnv(key, def string) string {
	if v := strings.TrimSpace(os.Getenv(key)); v != "" {
		return v
	}
	return def
}

func parseBool(key string, def bool) bool {
	v := strings.TrimSpace(os.Getenv(key))
	if v == "" {
		return def
	}
	b, err := strconv.ParseBool(v)
	if err != nil {
		return def
	}
	return b
}

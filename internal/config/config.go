// Package config reads the settings of the server and the schema tool
// from the environment, optionally seeded from a dotenv file.
package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

// Config holds every setting of the application.
type Config struct {
	// Application
	AppHost      string
	AppPort      string
	LogLevel     string
	SecretKey    string
	SessionTTL   time.Duration
	SecureCookie bool

	// PostgreSQL
	PGHost         string
	PGPort         int
	PGUser         string
	PGPassword     string
	PGDB           string
	PGMaxOpenConns int
	PGMaxIdleConns int

	// Redis
	RedisHost         string
	RedisPort         int
	RedisDB           int
	RedisPassword     string
	RedisPoolSize     int
	RedisMinIdleConns int

	// Mail
	MailServer        string
	MailPort          int
	MailUsername      string
	MailPassword      string
	MailDefaultSender string

	// Kafka; no brokers disables rental events
	KafkaBrokers []string
	KafkaTopic   string
}

// Load reads the dotenv file at path, if it exists, and then the environment.
// Variables already set in the environment win over the file.
func Load(path string) (*Config, error) {
	_ = godotenv.Load(path)

	getEnv := func(key, defaultValue string) string {
		if val, ok := os.LookupEnv(key); ok && val != "" {
			return val
		}
		return defaultValue
	}

	var (
		cfg Config
		err error
	)
	atoi := func(key, defaultValue string) int {
		if err != nil {
			return 0
		}
		var n int
		if n, err = strconv.Atoi(getEnv(key, defaultValue)); err != nil {
			err = fmt.Errorf("%s: %w", key, err)
		}
		return n
	}

	// Application config
	cfg.AppHost = getEnv("APP_HOST", "localhost")
	cfg.AppPort = getEnv("APP_PORT", "8080")
	cfg.LogLevel = getEnv("APP_LOG_LEVEL", "info")
	cfg.SecretKey = getEnv("SECRET_KEY", "dev")
	cfg.SessionTTL = time.Duration(atoi("SESSION_TTL_SECOND", "86400")) * time.Second
	secure, boolErr := strconv.ParseBool(getEnv("COOKIE_SECURE", "false"))
	if boolErr != nil {
		return nil, fmt.Errorf("COOKIE_SECURE: %w", boolErr)
	}
	cfg.SecureCookie = secure

	// PostgreSQL config
	cfg.PGHost = getEnv("POSTGRES_HOST", "localhost")
	cfg.PGPort = atoi("POSTGRES_PORT", "5432")
	cfg.PGUser = getEnv("POSTGRES_USER", "user")
	cfg.PGPassword = getEnv("POSTGRES_PASSWORD", "password")
	cfg.PGDB = getEnv("POSTGRES_DB", "van_manager")
	cfg.PGMaxOpenConns = atoi("POSTGRES_MAX_OPEN_CONNS", "16")
	cfg.PGMaxIdleConns = atoi("POSTGRES_MAX_IDLE_CONNS", "8")

	// Redis config
	cfg.RedisHost = getEnv("REDIS_HOST", "localhost")
	cfg.RedisPort = atoi("REDIS_PORT", "6379")
	cfg.RedisDB = atoi("REDIS_DB", "0")
	cfg.RedisPassword = getEnv("REDIS_PASSWORD", "")
	cfg.RedisPoolSize = atoi("REDIS_POOL_SIZE", "10")
	cfg.RedisMinIdleConns = atoi("REDIS_MIN_IDLE_CONNS", "2")

	// Mail config
	cfg.MailServer = getEnv("MAIL_SERVER", "")
	cfg.MailPort = atoi("MAIL_PORT", "587")
	cfg.MailUsername = getEnv("MAIL_USERNAME", "")
	cfg.MailPassword = getEnv("MAIL_PASSWORD", "")
	cfg.MailDefaultSender = getEnv("MAIL_DEFAULT_SENDER", "")

	// Kafka config
	if brokers := getEnv("KAFKA_BROKERS", ""); brokers != "" {
		cfg.KafkaBrokers = strings.Split(brokers, ",")
	}
	cfg.KafkaTopic = getEnv("KAFKA_TOPIC", "rental-events")

	if err != nil {
		return nil, err
	}
	return &cfg, nil
}

// PostgresDSN returns the connection URL of the database.
func (c *Config) PostgresDSN() string {
	return fmt.Sprintf("postgres://%s:%s@%s:%d/%s?sslmode=disable",
		c.PGUser, c.PGPassword, c.PGHost, c.PGPort, c.PGDB)
}

// RedisAddr returns the host:port of the Redis server.
func (c *Config) RedisAddr() string {
	return fmt.Sprintf("%s:%d", c.RedisHost, c.RedisPort)
}

// Addr returns the address the HTTP server listens on.
func (c *Config) Addr() string {
	return fmt.Sprintf("%s:%s", c.AppHost, c.AppPort)
}

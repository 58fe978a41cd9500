package config

import (
	"os"
	"strconv"
	"strings"
	"time"
)

// StorageBackend selects the blob store holding the persisted collection.
type StorageBackend string

const (
	StorageMemory   StorageBackend = "memory"
	StorageFile     StorageBackend = "file"
	StorageRedis    StorageBackend = "redis"
	StoragePostgres StorageBackend = "postgres"
)

// Server captures process level configuration.
type Server struct {
	Addr             string
	ShutdownTimeout  time.Duration
	DefaultTimeLabel string
	Log              LogConfig
	Storage          StorageConfig
	Redis            RedisConfig
	Postgres         PostgresConfig
	Kafka            KafkaConfig
}

// LogConfig configures the slog handler.
type LogConfig struct {
	Level  string
	Format string
}

// StorageConfig picks the blob store backend.
type StorageConfig struct {
	Backend StorageBackend
	DataDir string
}

// RedisConfig configures the go-redis client.
type RedisConfig struct {
	URL          string
	KeyPrefix    string
	PoolSize     int
	MinIdleConns int
	DialTimeout  time.Duration
	ReadTimeout  time.Duration
	WriteTimeout time.Duration
}

// PostgresConfig configures the database/sql pool for the lib/pq driver.
type PostgresConfig struct {
	URL             string
	MaxOpenConns    int
	MaxIdleConns    int
	ConnMaxLifetime time.Duration
}

// KafkaConfig enables the change-event feed when Brokers is non-empty.
type KafkaConfig struct {
	Brokers  []string
	Topic    string
	ClientID string
}

// DefaultTimeLabel is the bucket label used when an item is added without one.
const DefaultTimeLabel = "記録"

// FromEnv builds a Server config from environment variables so main stays lean.
func FromEnv() Server {
	return Server{
		Addr:             getEnv("MEALOG_ADDR", ":8080"),
		ShutdownTimeout:  getDuration("MEALOG_SHUTDOWN_TIMEOUT", 10*time.Second),
		DefaultTimeLabel: getEnv("MEALOG_DEFAULT_TIME_LABEL", DefaultTimeLabel),
		Log: LogConfig{
			Level:  getEnv("MEALOG_LOG_LEVEL", "info"),
			Format: getEnv("MEALOG_LOG_FORMAT", "json"),
		},
		Storage: StorageConfig{
			Backend: StorageBackend(strings.ToLower(getEnv("MEALOG_STORAGE", string(StorageFile)))),
			DataDir: getEnv("MEALOG_DATA_DIR", "data"),
		},
		Redis: RedisConfig{
			URL:          os.Getenv("MEALOG_REDIS_URL"),
			KeyPrefix:    getEnv("MEALOG_REDIS_PREFIX", "mealog:"),
			PoolSize:     getInt("MEALOG_REDIS_POOL_SIZE", 10),
			MinIdleConns: getInt("MEALOG_REDIS_MIN_IDLE_CONNS", 2),
			DialTimeout:  getDuration("MEALOG_REDIS_DIAL_TIMEOUT", 5*time.Second),
			ReadTimeout:  getDuration("MEALOG_REDIS_READ_TIMEOUT", 3*time.Second),
			WriteTimeout: getDuration("MEALOG_REDIS_WRITE_TIMEOUT", 3*time.Second),
		},
		Postgres: PostgresConfig{
			URL:             os.Getenv("MEALOG_DATABASE_URL"),
			MaxOpenConns:    getInt("MEALOG_DB_MAX_OPEN_CONNS", 5),
			MaxIdleConns:    getInt("MEALOG_DB_MAX_IDLE_CONNS", 2),
			ConnMaxLifetime: getDuration("MEALOG_DB_CONN_MAX_LIFETIME", 30*time.Minute),
		},
		Kafka: KafkaConfig{
			Brokers:  splitList(os.Getenv("MEALOG_KAFKA_BROKERS")),
			Topic:    getEnv("MEALOG_KAFKA_TOPIC", "meal-record-changes"),
			ClientID: getEnv("MEALOG_KAFKA_CLIENT_ID", "mealog"),
		},
	}
}

func getEnv(key, fallback string) string {
	if v := strings.TrimSpace(os.Getenv(key)); v != "" {
		return v
	}
	return fallback
}

func getInt(key string, fallback int) int {
	v, err := strconv.Atoi(os.Getenv(key))
	if err != nil {
		return fallback
	}
	return v
}

func getDuration(key string, fallback time.Duration) time.Duration {
	v, err := time.ParseDuration(os.Getenv(key))
	if err != nil {
		return fallback
	}
	return v
}

func splitList(raw string) []string {
	var out []string
	for part := range strings.SplitSeq(raw, ",") {
		if p := strings.TrimSpace(part); p != "" {
			out = append(out, p)
		}
	}
	return out
}

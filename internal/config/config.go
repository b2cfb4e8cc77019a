package config

import (
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"
)

type Config struct {
	ServerHost string
	ServerPort string
	StaticDir  string

	StoreDriver string
	DataDir     string
	SQLitePath  string
	DBHost      string
	DBPort      string
	DBUser      string
	DBPassword  string
	DBName      string
	RedisURL    string
	StorageKey  string

	PersistDragOver    bool
	RevertDragNoTarget bool

	LogLevel  string
	LogFormat string

	ServerBin          string
	LaunchPollInterval time.Duration
	LaunchMaxAttempts  int
}

func Load() *Config {
	err := godotenv.Load()
	if err != nil {
		logrus.Debug("⚠️  No .env file found, using system environment variables")
	}
	return FromEnv()
}

// FromEnv reads the configuration from the process environment only.
func FromEnv() *Config {
	dataDir := getEnv("KANBAN_DATA_DIR", defaultDataDir())

	return &Config{
		ServerHost: getEnv("SERVER_HOST", "127.0.0.1"),
		ServerPort: getEnv("SERVER_PORT", "3000"),
		StaticDir:  getEnv("KANBAN_STATIC_DIR", "web/dist"),

		StoreDriver: getEnv("KANBAN_STORE_DRIVER", "file"),
		DataDir:     dataDir,
		SQLitePath:  getEnv("KANBAN_SQLITE_PATH", filepath.Join(dataDir, "kanban.db")),
		DBHost:      getEnv("DB_HOST", "localhost"),
		DBPort:      getEnv("DB_PORT", "5432"),
		DBUser:      getEnv("DB_USER", "kanban_user"),
		DBPassword:  getEnv("DB_PASSWORD", "kanban_pass"),
		DBName:      getEnv("DB_NAME", "kanban_db"),
		RedisURL:    getEnv("REDIS_URL", "redis://localhost:6379/0"),
		StorageKey:  getEnv("KANBAN_STORAGE_KEY", "kanban-boards"),

		PersistDragOver:    getBool("KANBAN_PERSIST_DRAG_OVER", false),
		RevertDragNoTarget: getBool("KANBAN_REVERT_DRAG_NO_TARGET", true),

		LogLevel:  getEnv("KANBAN_LOG_LEVEL", "info"),
		LogFormat: getEnv("KANBAN_LOG_FORMAT", "text"),

		ServerBin:          getEnv("KANBAN_SERVER_BIN", "kanban-server"),
		LaunchPollInterval: getDuration("KANBAN_LAUNCH_POLL_INTERVAL", time.Second),
		LaunchMaxAttempts:  getInt("KANBAN_LAUNCH_MAX_ATTEMPTS", 30),
	}
}

// Addr is the listen address of the HTTP server.
func (c *Config) Addr() string {
	return c.ServerHost + ":" + c.ServerPort
}

// ConfigureLogger applies the log level and format to the standard logrus logger.
func (c *Config) ConfigureLogger() {
	level, err := logrus.ParseLevel(c.LogLevel)
	if err != nil {
		logrus.WithField("level", c.LogLevel).Warn("unknown log level, using info")
		level = logrus.InfoLevel
	}
	logrus.SetLevel(level)

	if strings.EqualFold(c.LogFormat, "json") {
		logrus.SetFormatter(&logrus.JSONFormatter{})
		return
	}
	logrus.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})
}

func defaultDataDir() string {
	if dir, err := os.UserConfigDir(); err == nil {
		return filepath.Join(dir, "kanban")
	}
	return "data"
}

func getEnv(key, defaultVal string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return defaultVal
}

func getBool(key string, defaultVal bool) bool {
	value, exists := os.LookupEnv(key)
	if !exists {
		return defaultVal
	}
	b, err := strconv.ParseBool(value)
	if err != nil {
		logrus.WithField("key", key).Warnf("invalid boolean %q, using %t", value, defaultVal)
		return defaultVal
	}
	return b
}

func getInt(key string, defaultVal int) int {
	value, exists := os.LookupEnv(key)
	if !exists {
		return defaultVal
	}
	n, err := strconv.Atoi(value)
	if err != nil || n <= 0 {
		logrus.WithField("key", key).Warnf("invalid count %q, using %d", value, defaultVal)
		return defaultVal
	}
	return n
}

func getDuration(key string, defaultVal time.Duration) time.Duration {
	value, exists := os.LookupEnv(key)
	if !exists {
		return defaultVal
	}
	d, err := time.ParseDuration(value)
	if err != nil || d <= 0 {
		logrus.WithField("key", key).Warnf("invalid duration %q, using %s", value, defaultVal)
		return defaultVal
	}
	return d
}

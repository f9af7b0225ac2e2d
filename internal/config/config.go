package config

import (
	"os"
	"strconv"
)

type Config struct {
	// Database
	DBHost     string
	DBPort     string
	DBUser     string
	DBPassword string
	DBName     string
	DBSSLMode  string

	// Shared secret for the jobs/seed endpoints (cron triggers, admin tools)
	CronSecret string

	// Device fingerprinting
	DeviceHashSalt string

	// Report rate limiting (rolling windows)
	RateMaxPerHour int
	RateMaxPerDay  int

	// Job queue
	JobBatchSize int

	// Trust score window: newest N approved reports considered per place
	ScoreWindow int

	// Server
	Port        string
	CORSOrigins string
}

func Load() *Config {
	return &Config{
		DBHost:     getEnv("DB_HOST", "localhost"),
		DBPort:     getEnv("DB_PORT", "5432"),
		DBUser:     getEnv("DB_USER", "postgres"),
		DBPassword: getEnv("DB_PASSWORD", ""),
		DBName:     getEnv("DB_NAME", "shittter"),
		DBSSLMode:  getEnv("DB_SSLMODE", "disable"),

		CronSecret: getEnv("CRON_SECRET", ""),

		DeviceHashSalt: getEnv("DEVICE_HASH_SALT", "shittter-v1-salt"),

		RateMaxPerHour: getEnvInt("RATE_MAX_PER_HOUR", 3),
		RateMaxPerDay:  getEnvInt("RATE_MAX_PER_DAY", 10),

		JobBatchSize: getEnvInt("JOB_BATCH_SIZE", 20),

		ScoreWindow: getEnvInt("SCORE_WINDOW", 20),

		Port:        getEnv("PORT", "8080"),
		CORSOrigins: getEnv("CORS_ORIGINS", "*"),
	}
}

func (c *Config) DSN() string {
	return "host=" + c.DBHost +
		" user=" + c.DBUser +
		" password=" + c.DBPassword +
		" dbname=" + c.DBName +
		" port=" + c.DBPort +
		" sslmode=" + c.DBSSLMode +
		" TimeZone=UTC"
}

func getEnv(key, fallback string) string {
	if val := os.Getenv(key); val != "" {
		return val
	}
	return fallback
}

func getEnvInt(key string, fallback int) int {
	if val := os.Getenv(key); val != "" {
		if n, err := strconv.Atoi(val); err == nil && n > 0 {
			return n
		}
	}
	return fallback
}

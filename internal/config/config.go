package config

import (
	"log"
	"os"

	"github.com/joho/godotenv"
)

var (
	AppEnv       string
	LogLevel     string
	JwtSecret    string
	Issuer       string
	DbHost       string
	DbPort       string
	DbUser       string
	DbPassword   string
	DbName       string
	ServerPort   string
	RedisURL     string
	SnapshotFile string
)

// IsDevelopment reports whether error detail may be exposed in responses.
func IsDevelopment() bool {
	return AppEnv == "development"
}

func LoadConfig() {
	err := godotenv.Load()
	if err != nil {
		log.Println("No .env file found, using environment variables")
	}

	AppEnv = getEnv("APP_ENV", "production")
	LogLevel = getEnv("LOG_LEVEL", "info")
	JwtSecret = getEnv("JWT_SECRET", "defaultsecret")
	Issuer = getEnv("ISSUER", "jobboard")
	DbHost = getEnv("DB_HOST", "localhost")
	DbPort = getEnv("DB_PORT", "5432")
	DbUser = getEnv("DB_USER", "postgres")
	DbPassword = getEnv("DB_PASSWORD", "password")
	DbName = getEnv("DB_NAME", "jobboard")
	ServerPort = getEnv("SERVER_PORT", "8080")
	RedisURL = getEnv("REDIS_URL", "")
	SnapshotFile = getEnv("SNAPSHOT_FILE", "data/jobs_snapshot.json")
}

func getEnv(key, fallback string) string {
	if value, ok := os.LookupEnv(key); ok {
		return value
	}
	return fallback
}

package config

import (
	"log"
	"os"
	"strconv"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

type Config struct {
	App      AppConfig
	Database DatabaseConfig
	Redis    RedisConfig
}

type AppConfig struct {
	Port               string
	Environment        string
	Prefork            bool
	LogLevel           string
	LogFilePath        string
	CorsAllowedOrigins string
}

type DatabaseConfig struct {
	Connection string
	Host       string
	Port       string
	User       string
	Password   string
	DBName     string
	SSLMode    string
}

type RedisConfig struct {
	URL string
}

// Load reads .env, an optional config file, and the environment, in
// ascending priority. Environment variables always win.
func Load() *Config {
	if err := godotenv.Load(); err != nil {
		log.Println("Note: .env file not found, using system environment")
	}

	v := viper.New()
	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath(".")
	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			log.Printf("Warn: config file unreadable: %v", err)
		}
	}

	return &Config{
		App: AppConfig{
			Port:               getEnv(v, "APP_PORT", "app.port", "3000"),
			Environment:        getEnv(v, "GO_ENV", "app.environment", "development"),
			Prefork:            getEnvAsBool(v, "APP_PREFORK", "app.prefork", false),
			LogLevel:           getEnv(v, "LOG_LEVEL", "app.logLevel", "info"),
			LogFilePath:        getEnv(v, "LOG_FILE_PATH", "app.logFilePath", "app.log"),
			CorsAllowedOrigins: getEnv(v, "CORS_ALLOWED_ORIGINS", "app.corsAllowedOrigins", "http://localhost:5173"),
		},
		Database: DatabaseConfig{
			Connection: getEnv(v, "DB_CONNECTION_STRING", "database.connection", ""),
			Host:       getEnv(v, "DB_HOST", "database.host", "localhost"),
			Port:       getEnv(v, "DB_PORT", "database.port", "5432"),
			User:       getEnv(v, "DB_USER", "database.user", "postgres"),
			Password:   getEnv(v, "DB_PASSWORD", "database.password", ""),
			DBName:     getEnv(v, "DB_NAME", "database.name", "notekeeper"),
			SSLMode:    getEnv(v, "DB_SSL_MODE", "database.sslMode", "disable"),
		},
		Redis: RedisConfig{
			URL: getEnv(v, "REDIS_URL", "redis.url", "redis://localhost:6379"),
		},
	}
}

func getEnv(v *viper.Viper, envKey, fileKey, fallback string) string {
	if value, exists := os.LookupEnv(envKey); exists {
		return value
	}
	if v.IsSet(fileKey) {
		return v.GetString(fileKey)
	}
	return fallback
}

func getEnvAsBool(v *viper.Viper, envKey, fileKey string, fallback bool) bool {
	if strValue, exists := os.LookupEnv(envKey); exists {
		if value, err := strconv.ParseBool(strValue); err == nil {
			return value
		}
	}
	if v.IsSet(fileKey) {
		return v.GetBool(fileKey)
	}
	return fallback
}

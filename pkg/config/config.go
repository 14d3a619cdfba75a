package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
)

// New reads the configuration from the environment. A .env file in the
// working directory is loaded first so local development does not need to
// export everything by hand.
func New() (Config, error) {
	_ = godotenv.Load()

	port, err := requireEnvAsInt("PORT")
	if err != nil {
		return Config{}, err
	}

	postgresqlPort, err := requireEnvAsInt("DATABASE_PORT")
	if err != nil {
		return Config{}, err
	}

	redisPort, err := requireEnvAsInt("REDIS_PORT")
	if err != nil {
		return Config{}, err
	}

	sessionTTL, err := requireEnvAsInt("SESSION_TTL_SECONDS")
	if err != nil {
		return Config{}, err
	}

	hostname, err := requireEnv("HOSTNAME")
	if err != nil {
		return Config{}, err
	}

	databaseHost, err := requireEnv("DATABASE_HOST")
	if err != nil {
		return Config{}, err
	}
	databaseUsername, err := requireEnv("DATABASE_USERNAME")
	if err != nil {
		return Config{}, err
	}
	databasePassword, err := requireEnv("DATABASE_PASSWORD")
	if err != nil {
		return Config{}, err
	}
	databaseName, err := requireEnv("DATABASE_NAME")
	if err != nil {
		return Config{}, err
	}

	redisHost, err := requireEnv("REDIS_HOST")
	if err != nil {
		return Config{}, err
	}

	return Config{
		Environment: optionalEnv("ENVIRONMENT", "production"),
		Hostname:    hostname,
		Port:        port,
		BasePath:    optionalEnv("BASE_PATH", "/"),
		Postgresql: Postgresql{
			Host:         databaseHost,
			Port:         postgresqlPort,
			Username:     databaseUsername,
			Password:     databasePassword,
			DatabaseName: databaseName,
		},
		Redis: Redis{
			Host:     redisHost,
			Port:     redisPort,
			Password: optionalEnv("REDIS_PASSWORD", ""),
		},
		Session: Session{
			TTLSeconds: sessionTTL,
		},
		CorsAllowedOrigins: splitList(optionalEnv("CORS_ALLOWED_ORIGINS", "")),
		AdminUser: AdminUser{
			Username: os.Getenv("ADMIN_USERNAME"),
			Password: os.Getenv("ADMIN_PASSWORD"),
			Name:     optionalEnv("ADMIN_NAME", "Administrator"),
		},
	}, nil
}

type Config struct {
	Environment        string
	Hostname           string
	Port               int
	BasePath           string
	Postgresql         Postgresql
	Redis              Redis
	Session            Session
	CorsAllowedOrigins []string
	AdminUser          AdminUser
}

type Postgresql struct {
	Host         string
	Port         int
	Username     string
	Password     string
	DatabaseName string
}

type Redis struct {
	Host     string
	Port     int
	Password string
}

type Session struct {
	TTLSeconds int
}

// AdminUser seeds the initial administrator account. Seeding is skipped
// when the username is empty.
type AdminUser struct {
	Username string
	Password string
	Name     string
}

func requireEnv(key string) (string, error) {
	value, exists := os.LookupEnv(key)
	if !exists {
		return "", fmt.Errorf("can't find environment variable: %s", key)
	}
	return value, nil
}

func requireEnvAsInt(key string) (int, error) {
	valueStr, err := requireEnv(key)
	if err != nil {
		return 0, err
	}
	value, err := strconv.Atoi(valueStr)
	if err != nil {
		return 0, fmt.Errorf("can't parse %s as integer: %v", key, err)
	}
	return value, nil
}

func optionalEnv(key string, defaultValue string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return defaultValue
}

func splitList(value string) []string {
	if value == "" {
		return nil
	}
	parts := strings.Split(value, ",")
	for i := range parts {
		parts[i] = strings.TrimSpace(parts[i])
	}
	return parts
}

package config

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
)

const (
	StoreBackendMongo    = "mongo"
	StoreBackendPostgres = "postgres"
)

type Config struct {
	ServerPort   int
	StoreBackend string
	Mongo        MongoConfig
	Database     DatabaseConfig

	// JWTSecret signs session tokens. Required to run the server.
	JWTSecret string

	// OperatorToken gates the admin-provisioning endpoint. The endpoint
	// is disabled when empty.
	OperatorToken string
}

type MongoConfig struct {
	URI    string
	DBName string
}

type DatabaseConfig struct {
	Host     string
	Port     int
	User     string
	Password string
	DBName   string
	UseSSL   bool
}

func LoadConfig() Config {
	if os.Getenv("ENV") == "dev" {
		godotenv.Load()
	}

	mongoConfig := MongoConfig{
		URI:    getEnv("MONGO_URI", "mongodb://localhost:27017"),
		DBName: getEnv("MONGO_DB", "jobboard"),
	}

	dbConfig := DatabaseConfig{
		Host:     getEnv("DB_HOST", "localhost"),
		Port:     getEnvInt("DB_PORT", 5432),
		User:     getEnv("DB_USER", "jobboard"),
		Password: getEnv("DB_PASSWORD", "password"),
		DBName:   getEnv("DB_NAME", "jobboard_db"),
		UseSSL:   getEnvBool("DB_USE_SSL", false),
	}

	return Config{
		ServerPort:    getEnvInt("SERVER_PORT", 8080),
		StoreBackend:  getEnv("STORE_BACKEND", StoreBackendMongo),
		Mongo:         mongoConfig,
		Database:      dbConfig,
		JWTSecret:     os.Getenv("JWT_SECRET"),
		OperatorToken: os.Getenv("OPERATOR_TOKEN"),
	}
}

func getEnv(key, defaultValue string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return defaultValue
}

func getEnvInt(key string, defaultValue int) int {
	if valueStr, exists := os.LookupEnv(key); exists {
		var value int
		fmt.Sscanf(valueStr, "%d", &value)
		return value
	}
	return defaultValue
}

func getEnvBool(key string, defaultValue bool) bool {
	if valueStr, exists := os.LookupEnv(key); exists {
		return valueStr == "true" || valueStr == "1"
	}
	return defaultValue
}

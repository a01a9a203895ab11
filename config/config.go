package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"sync"
	"time"
)

var (
	config     *Config
	configOnce sync.Once
)

// Config stores all configuration of the application
type Config struct {
	// Environment type
	EnvType string

	// Server
	ServerPort string
	CORSOrigin string
	LogDir     string

	// Store: "memory", "mysql" or "redis"
	StoreDriver string

	// Database
	DBHost          string
	DBUser          string
	DBPassword      string
	DBName          string
	DBPort          string
	DBMigrationMode string // 数据库迁移模式: "auto"(默认), "alter"(修改), "drop"(删除重建)

	// Redis
	RedisHost     string
	RedisPort     string
	RedisPassword string
	RedisDB       int
	RedisPrefix   string

	// JWT Authentication
	JWTSecretKey string
	JWTTTL       time.Duration

	// Seed accounts
	DefaultAdminPassword string
	DefaultUserPassword  string

	// MQTT
	MQTTBrokerURL   string
	MQTTClientID    string
	MQTTUsername    string
	MQTTPassword    string
	MQTTTopicPrefix string

	// Simulation
	SimulationInterval time.Duration
	MotionResetDelay   time.Duration

	// Login rate limiting
	LoginRate  float64
	LoginBurst int
}

// LoadConfig loads config from environment variables based on ENV_TYPE
func LoadConfig() *Config {
	// Get environment type (default to LOCAL if not set)
	envType := getEnv("ENV_TYPE", "LOCAL")
	prefix := ""

	// Set prefix based on environment type
	if strings.ToUpper(envType) == "LOCAL" {
		prefix = "LOCAL_"
		envType = "LOCAL"
	} else if strings.ToUpper(envType) == "SERVER" {
		prefix = "SERVER_"
		envType = "SERVER"
	} else {
		fmt.Printf("Warning: Unknown ENV_TYPE '%s', defaulting to LOCAL environment\n", envType)
		prefix = "LOCAL_"
		envType = "LOCAL"
	}

	cfg := &Config{
		EnvType: envType,

		// Server config
		ServerPort: getEnv(prefix+"SERVER_PORT", getEnv("SERVER_PORT", "8080")),
		CORSOrigin: getEnv(prefix+"CORS_ORIGIN", getEnv("CORS_ORIGIN", "http://localhost:3000")),
		LogDir:     getEnv("LOG_DIR", "logs"),

		StoreDriver: strings.ToLower(getEnv(prefix+"STORE_DRIVER", getEnv("STORE_DRIVER", "memory"))),

		// Database config - use environment-specific variables if available
		DBHost:          getEnv(prefix+"DB_HOST", getEnv("DB_HOST", "localhost")),
		DBUser:          getEnv(prefix+"DB_USER", getEnv("DB_USER", "root")),
		DBPassword:      getEnv(prefix+"DB_PASSWORD", getEnv("DB_PASSWORD", "")),
		DBName:          getEnv(prefix+"DB_NAME", getEnv("DB_NAME", "smarthome_db")),
		DBPort:          getEnv(prefix+"DB_PORT", getEnv("DB_PORT", "3306")),
		DBMigrationMode: getEnv(prefix+"DB_MIGRATION_MODE", getEnv("DB_MIGRATION_MODE", "auto")),

		// Redis config
		RedisHost:     getEnv(prefix+"REDIS_HOST", getEnv("REDIS_HOST", "localhost")),
		RedisPort:     getEnv(prefix+"REDIS_PORT", getEnv("REDIS_PORT", "6379")),
		RedisPassword: getEnv(prefix+"REDIS_PASSWORD", getEnv("REDIS_PASSWORD", "")),
		RedisDB:       getEnvAsInt(prefix+"REDIS_DB", getEnvAsInt("REDIS_DB", 0)),
		RedisPrefix:   getEnv("REDIS_PREFIX", "smarthome:"),

		// JWT Config
		JWTSecretKey: getEnv("JWT_SECRET_KEY", "smarthome-secret-key-change-in-production"),
		JWTTTL:       getEnvAsDuration("JWT_TTL", 24*time.Hour),

		DefaultAdminPassword: getEnv("DEFAULT_ADMIN_PASSWORD", "admin123"),
		DefaultUserPassword:  getEnv("DEFAULT_USER_PASSWORD", "user123"),

		// MQTT config, empty broker disables publishing
		MQTTBrokerURL:   getEnv(prefix+"MQTT_BROKER_URL", getEnv("MQTT_BROKER_URL", "")),
		MQTTClientID:    getEnv("MQTT_CLIENT_ID", "smarthome-http-service"),
		MQTTUsername:    getEnv("MQTT_USERNAME", ""),
		MQTTPassword:    getEnv("MQTT_PASSWORD", ""),
		MQTTTopicPrefix: getEnv("MQTT_TOPIC_PREFIX", "smarthome"),

		SimulationInterval: getEnvAsDuration("SIMULATION_INTERVAL", 30*time.Second),
		MotionResetDelay:   getEnvAsDuration("MOTION_RESET_DELAY", 30*time.Second),

		LoginRate:  getEnvAsFloat("LOGIN_RATE", 1),
		LoginBurst: getEnvAsInt("LOGIN_BURST", 5),
	}

	// YAML 覆盖
	if path := getEnv("CONFIG_FILE", ""); path != "" {
		if err := applyYAMLFile(cfg, path); err != nil {
			fmt.Printf("Warning: failed to apply config file %s: %v\n", path, err)
		}
	}

	return cfg
}

// GetConfig returns the application configuration as a singleton
func GetConfig() *Config {
	configOnce.Do(func() {
		config = LoadConfig()
	})
	return config
}

// GetDSN returns the database connection string
func (c *Config) GetDSN() string {
	return c.DBUser + ":" + c.DBPassword + "@tcp(" + c.DBHost + ":" + c.DBPort + ")/" + c.DBName + "?charset=utf8mb4&parseTime=True&loc=Local&allowNativePasswords=true"
}

// GetRedisAddr returns the Redis address
func (c *Config) GetRedisAddr() string {
	return c.RedisHost + ":" + c.RedisPort
}

// IsLocal reports whether the service runs with the LOCAL profile
func (c *Config) IsLocal() bool {
	return c.EnvType == "LOCAL"
}

// Helper function to get environment variable with default value
func getEnv(key, defaultValue string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return defaultValue
}

// Helper function to get environment variable as integer with default value
func getEnvAsInt(key string, defaultValue int) int {
	valueStr := getEnv(key, "")
	if value, err := strconv.Atoi(valueStr); err == nil {
		return value
	}
	return defaultValue
}

func getEnvAsFloat(key string, defaultValue float64) float64 {
	valueStr := getEnv(key, "")
	if value, err := strconv.ParseFloat(valueStr, 64); err == nil {
		return value
	}
	return defaultValue
}

// Helper function to get environment variable as duration ("30s", "5m") with default value
func getEnvAsDuration(key string, defaultValue time.Duration) time.Duration {
	valueStr := getEnv(key, "")
	if value, err := time.ParseDuration(valueStr); err == nil && value > 0 {
		return value
	}
	return defaultValue
}

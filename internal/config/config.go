package config

import (
	"fmt"
	"log"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	HTTPPort         string
	VisionServiceURL string
	CORSOrigins      string

	MaxConnections   int
	MaxMessageSizeMB int
	LogLevel         string
	Environment      string

	// Proctoring policy
	FocusAlpha           float64
	FocusAlertThreshold  float64
	IdentityThreshold    float64
	PhoneConfThreshold   float64
	AlertCooldown        time.Duration
	WarningLimit         int
	RegistrationRetries  int
	ObjectDetectEvery    int
	FaceAbsentZeroFrames int

	DBName     string
	DBHost     string
	DBPort     string
	DBUser     string
	DBPassword string
	DBSSLMode  string
}

func (c *Config) DSN() string {
	return fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		c.DBHost, c.DBPort, c.DBUser, c.DBPassword, c.DBName, c.DBSSLMode)
}

// DSNForLog renders the DSN without the password for logging.
func (c *Config) DSNForLog() string {
	return fmt.Sprintf("host=%s port=%s user=%s password=*** dbname=%s sslmode=%s",
		c.DBHost, c.DBPort, c.DBUser, c.DBName, c.DBSSLMode)
}

func (c *Config) IsDev() bool {
	return c.Environment == "dev"
}

func LoadConfig() *Config {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using system environment variables")
	}

	cfg := &Config{
		HTTPPort:         getEnv("HTTP_PORT", "8080"),
		VisionServiceURL: getEnv("VISION_SERVICE_URL", "localhost:9000"),
		CORSOrigins:      getEnv("CORS_ORIGINS", "*"),
		MaxConnections:   getEnvInt("MAX_CONNECTIONS", 1000),
		MaxMessageSizeMB: getEnvInt("MAX_MESSAGE_SIZE_MB", 50),
		LogLevel:         getEnv("LOG_LEVEL", "INFO"),
		Environment:      getEnv("ENVIRONMENT", "production"),

		FocusAlpha:           getEnvFloat("FOCUS_ALPHA", 0.25),
		FocusAlertThreshold:  getEnvFloat("FOCUS_ALERT_THRESHOLD", 40),
		IdentityThreshold:    getEnvFloat("IDENTITY_THRESHOLD", 0.40),
		PhoneConfThreshold:   getEnvFloat("PHONE_CONF_THRESHOLD", 0.50),
		AlertCooldown:        time.Duration(getEnvInt("ALERT_COOLDOWN_SEC", 5)) * time.Second,
		WarningLimit:         getEnvInt("WARNING_LIMIT", 5),
		RegistrationRetries:  getEnvInt("REGISTRATION_RETRIES", 5),
		ObjectDetectEvery:    getEnvInt("OBJECT_DETECT_EVERY", 2),
		FaceAbsentZeroFrames: getEnvInt("FACE_ABSENT_ZERO_FRAMES", 3),

		DBHost:     getEnv("DB_HOST", "localhost"),
		DBPort:     getEnv("DB_PORT", "5432"),
		DBUser:     getEnv("DB_USER", "postgres"),
		DBPassword: getEnv("DB_PASSWORD", ""),
		DBName:     getEnv("DB_NAME", "ai_proctor"),
		DBSSLMode:  getEnv("DB_SSLMODE", "disable"),
	}

	if cfg.DBPassword == "" {
		fmt.Println("WARNING: DB_PASSWORD is not set!")
	}
	if cfg.ObjectDetectEvery < 1 {
		log.Println("OBJECT_DETECT_EVERY must be >= 1, using 1")
		cfg.ObjectDetectEvery = 1
	}

	return cfg
}

func getEnv(key string, defaultVal string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return defaultVal
}

func getEnvInt(key string, defaultVal int) int {
	if v := os.Getenv(key); v != "" {
		if intVal, err := strconv.Atoi(v); err == nil {
			return intVal
		}
	}
	return defaultVal
}

func getEnvFloat(key string, defaultVal float64) float64 {
	if v := os.Getenv(key); v != "" {
		if floatVal, err := strconv.ParseFloat(v, 64); err == nil {
			return floatVal
		}
	}
	return defaultVal
}

package config

import (
	"log"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
)

// Config 应用配置，全部来自环境变量
type Config struct {
	Addr          string
	DBDSN         string
	RedisAddr     string
	RedisPassword string
	RedisDB       int
	KafkaBrokers  []string
	KafkaTopic    string
	SessionSecret string
	LogLevel      string
	SMTPHost      string
	SMTPPort      int
	SMTPUsername  string
	SMTPPassword  string
	SMTPFrom      string
	UploadDir     string
}

var AppConfig Config

// Init 加载 .env 并读取环境变量
func Init() {
	if err := godotenv.Load(); err != nil {
		log.Printf("no .env file: %v", err)
	}

	AppConfig = Config{
		Addr:          getEnv("ADDR", ":8080"),
		DBDSN:         getEnv("DB_DSN", "user:password@tcp(127.0.0.1:3306)/vega_blog?charset=utf8mb4&parseTime=True"),
		RedisAddr:     getEnv("REDIS_ADDR", "127.0.0.1:6379"),
		RedisPassword: getEnv("REDIS_PASSWORD", ""),
		RedisDB:       getEnvAsInt("REDIS_DB", 0),
		KafkaBrokers:  splitEnv("KAFKA_BROKERS"),
		KafkaTopic:    getEnv("KAFKA_TOPIC", "social-events"),
		SessionSecret: getEnv("SESSION_SECRET", "secret-key"),
		LogLevel:      getEnv("LOG_LEVEL", "info"),
		SMTPHost:      getEnv("SMTP_HOST", ""),
		SMTPPort:      getEnvAsInt("SMTP_PORT", 587),
		SMTPUsername:  getEnv("SMTP_USERNAME", ""),
		SMTPPassword:  getEnv("SMTP_PASSWORD", ""),
		SMTPFrom:      getEnv("SMTP_FROM", "NoReply <no-reply@example.com>"),
		UploadDir:     getEnv("UPLOAD_DIR", "./uploads"),
	}
}

func getEnv(key, fallback string) string {
	if v, ok := os.LookupEnv(key); ok && v != "" {
		return v
	}
	return fallback
}

func getEnvAsInt(key string, fallback int) int {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return fallback
	}
	return n
}

func splitEnv(key string) []string {
	v := os.Getenv(key)
	if v == "" {
		return nil
	}
	return strings.Split(v, ",")
}

package config

import (
	"os"
	"strconv"
)

type Config struct {
	Port        string
	DatabaseURL string
	JWTSecret   string

	// Base URL used when building the public inspection link
	PublicBaseURL string

	// Directory where inspection photos are written
	UploadDir string

	// Email Configuration
	SMTPHost     string
	SMTPPort     int
	SMTPUsername string
	SMTPPassword string
	FromEmail    string
	FromName     string

	// Default admin seeded at startup
	AdminEmail    string
	AdminPassword string
}

func Load() *Config {
	smtpPort, _ := strconv.Atoi(getEnv("SMTP_PORT", "2525"))

	return &Config{
		Port:        getEnv("PORT", "8080"),
		DatabaseURL: getEnv("DATABASE_URL", "user:password@tcp(localhost:3306)/frotavistoria?charset=utf8mb4&parseTime=True&loc=Local"),
		JWTSecret:   getEnv("JWT_SECRET", "your-secret-key"),

		PublicBaseURL: getEnv("PUBLIC_BASE_URL", "http://localhost:3000"),
		UploadDir:     getEnv("UPLOAD_DIR", "uploads"),

		// Email settings
		SMTPHost:     getEnv("SMTP_HOST", "sandbox.smtp.mailtrap.io"),
		SMTPPort:     smtpPort,
		SMTPUsername: getEnv("SMTP_USERNAME", ""),
		SMTPPassword: getEnv("SMTP_PASSWORD", ""),
		FromEmail:    getEnv("FROM_EMAIL", "noreply@frotavistoria.com"),
		FromName:     getEnv("FROM_NAME", "FrotaVistoria"),

		AdminEmail:    getEnv("ADMIN_EMAIL", "admin@frotavistoria.com"),
		AdminPassword: getEnv("ADMIN_PASSWORD", "admin1234"),
	}
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

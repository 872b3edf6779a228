package config

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
)

// Config holds all runtime configuration. Required values cause Load to
// fail so the process exits at boot instead of limping along.
type Config struct {
	Port        string
	Env         string
	DatabaseURL string
	RedisURL    string
	FrontendURL string

	// Secret used to verify bearer tokens issued by the external
	// identity provider.
	ClerkSecretKey string

	// Video call provider credentials used for RTC token minting.
	AgoraAppID   string
	AgoraAppCert string

	// SMTP settings for transactional mail. Optional: when SMTPHost is
	// empty the mailer runs in no-op mode.
	SMTPHost     string
	SMTPPort     int
	SMTPUsername string
	SMTPPassword string
	SMTPFrom     string

	// Razorpay credentials for payment verification. Optional.
	RazorpayKeyID  string
	RazorpaySecret string
}

func Load() (*Config, error) {
	_ = godotenv.Load()

	c := &Config{
		Port:           getEnv("PORT", "8080"),
		Env:            getEnv("APP_ENV", "development"),
		DatabaseURL:    os.Getenv("DATABASE_URL"),
		RedisURL:       os.Getenv("REDIS_URL"),
		FrontendURL:    os.Getenv("FRONTEND_URL"),
		ClerkSecretKey: os.Getenv("CLERK_SECRET_KEY"),
		AgoraAppID:     os.Getenv("AGORA_APP_ID"),
		AgoraAppCert:   os.Getenv("AGORA_APP_CERT"),
		SMTPHost:       os.Getenv("SMTP_HOST"),
		SMTPPort:       getEnvInt("SMTP_PORT", 587),
		SMTPUsername:   os.Getenv("SMTP_USERNAME"),
		SMTPPassword:   os.Getenv("SMTP_PASSWORD"),
		SMTPFrom:       os.Getenv("SMTP_FROM"),
		RazorpayKeyID:  os.Getenv("RAZORPAY_KEY_ID"),
		RazorpaySecret: os.Getenv("RAZORPAY_SECRET"),
	}

	if c.DatabaseURL == "" {
		return nil, fmt.Errorf("DATABASE_URL is required")
	}
	if c.RedisURL == "" {
		return nil, fmt.Errorf("REDIS_URL is required")
	}
	if c.FrontendURL == "" {
		return nil, fmt.Errorf("FRONTEND_URL is required")
	}
	if c.ClerkSecretKey == "" {
		return nil, fmt.Errorf("CLERK_SECRET_KEY is required")
	}
	if c.SMTPFrom == "" {
		c.SMTPFrom = c.SMTPUsername
	}

	return c, nil
}

func (c *Config) IsProduction() bool {
	return c.Env == "production"
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func getEnvInt(key string, fallback int) int {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	var n int
	if _, err := fmt.Sscanf(v, "%d", &n); err != nil {
		return fallback
	}
	return n
}

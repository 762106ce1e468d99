package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
)

type Config struct {
	HTTPAddr  string
	DBPath    string
	OutputDir string

	SpreadsheetID   string
	CredentialsFile string
	ReloadOnStart   bool

	TwilioAccountSID string
	TwilioAuthToken  string
	TwilioFromNumber string
	TwilioTimeoutMs  int
	TwilioRPS        float64

	WebhookRateRPS   float64
	WebhookRateBurst int
}

func Load() (Config, error) {
	_ = godotenv.Load()

	cwd, err := os.Getwd()
	if err != nil {
		return Config{}, err
	}

	cfg := Config{
		HTTPAddr:  getEnv("HTTP_ADDR", ":5000"),
		DBPath:    getEnv("DB_PATH", filepath.Join(cwd, "data", "app.db")),
		OutputDir: getEnv("OUTPUT_DIR", filepath.Join(cwd, "out")),

		SpreadsheetID:   getEnv("SHEETS_SPREADSHEET_ID", ""),
		CredentialsFile: getEnv("GOOGLE_CREDENTIALS_FILE", filepath.Join(cwd, "credentials.json")),
		ReloadOnStart:   getEnvBool("CATALOG_RELOAD_ON_START", true),

		TwilioAccountSID: getEnv("TWILIO_ACCOUNT_SID", ""),
		TwilioAuthToken:  getEnv("TWILIO_AUTH_TOKEN", ""),
		TwilioFromNumber: getEnv("TWILIO_FROM_NUMBER", "whatsapp:+14155238886"),
		TwilioTimeoutMs:  getEnvInt("TWILIO_TIMEOUT_MS", 30000),
		TwilioRPS:        getEnvFloat("TWILIO_RATE_LIMIT_RPS", 1),

		WebhookRateRPS:   getEnvFloat("WEBHOOK_RATE_LIMIT_RPS", 10),
		WebhookRateBurst: getEnvInt("WEBHOOK_RATE_LIMIT_BURST", 20),
	}

	return cfg, nil
}

func (c Config) Require(name, value string) error {
	if strings.TrimSpace(value) == "" {
		return fmt.Errorf("missing required env var: %s", name)
	}
	return nil
}

func getEnv(key, fallback string) string {
	if value, ok := os.LookupEnv(key); ok {
		return value
	}
	return fallback
}

func getEnvInt(key string, fallback int) int {
	value := getEnv(key, "")
	if value == "" {
		return fallback
	}
	parsed, err := strconv.Atoi(value)
	if err != nil {
		return fallback
	}
	return parsed
}

func getEnvFloat(key string, fallback float64) float64 {
	value := getEnv(key, "")
	if value == "" {
		return fallback
	}
	parsed, err := strconv.ParseFloat(value, 64)
	if err != nil {
		return fallback
	}
	return parsed
}

func getEnvBool(key string, fallback bool) bool {
	value := strings.ToLower(strings.TrimSpace(getEnv(key, "")))
	if value == "" {
		return fallback
	}
	if value == "1" || value == "true" || value == "yes" || value == "on" {
		return true
	}
	if value == "0" || value == "false" || value == "no" || value == "off" {
		return false
	}
	return fallback
}

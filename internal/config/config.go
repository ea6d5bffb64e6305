package config

import (
	"fmt"
	"os"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	DBHost     string
	DBPort     string
	DBUser     string
	DBPassword string
	DBName     string
	DBSSLMode  string

	GinMode string

	// LLM chat. Either a plain OpenAI key, or an Azure OpenAI
	// endpoint + key + deployment. Whichever is configured wins;
	// when neither is set the chat endpoint is disabled.
	OpenAIAPIKey        string
	OpenAIModel         string
	AzureOpenAIEndpoint string
	AzureOpenAIAPIKey   string
	AzureOpenAIDeploy   string
	ChatTimeout         time.Duration

	// Google Sheets import
	SheetsSpreadsheetID string
	SheetsAPIKey        string
	SheetsTaskRange     string
	SheetsClassRange    string
}

func Load() (*Config, error) {
	// .env is optional; real deployments inject the environment directly
	_ = godotenv.Load()

	cfg := &Config{
		DBHost:     getEnv("DB_HOST", "localhost"),
		DBPort:     getEnv("DB_PORT", "5432"),
		DBUser:     getEnv("DB_USER", "unibot"),
		DBPassword: getEnv("DB_PASSWORD", "unibot"),
		DBName:     getEnv("DB_NAME", "unibot"),
		DBSSLMode:  getEnv("DB_SSLMODE", "disable"),

		GinMode: getEnv("GIN_MODE", "debug"),

		OpenAIAPIKey:        getEnv("OPENAI_API_KEY", ""),
		OpenAIModel:         getEnv("OPENAI_MODEL", ""),
		AzureOpenAIEndpoint: getEnv("AZURE_OPENAI_ENDPOINT", ""),
		AzureOpenAIAPIKey:   getEnv("AZURE_OPENAI_API_KEY", ""),
		AzureOpenAIDeploy:   getEnv("AZURE_OPENAI_DEPLOYMENT", "gpt-4"),

		SheetsSpreadsheetID: getEnv("SHEETS_SPREADSHEET_ID", ""),
		SheetsAPIKey:        getEnv("SHEETS_API_KEY", ""),
		SheetsTaskRange:     getEnv("SHEETS_TASK_RANGE", "Tareas!A2:Z1000"),
		SheetsClassRange:    getEnv("SHEETS_CLASS_RANGE", "Horario!A2:Z1000"),
	}

	timeout, err := time.ParseDuration(getEnv("CHAT_TIMEOUT", "30s"))
	if err != nil {
		return nil, fmt.Errorf("invalid CHAT_TIMEOUT: %w", err)
	}
	cfg.ChatTimeout = timeout

	// A half-configured provider is a deployment mistake, not something to
	// discover on the first chat request.
	if (cfg.AzureOpenAIEndpoint == "") != (cfg.AzureOpenAIAPIKey == "") {
		return nil, fmt.Errorf("AZURE_OPENAI_ENDPOINT and AZURE_OPENAI_API_KEY must be set together")
	}
	if (cfg.SheetsSpreadsheetID == "") != (cfg.SheetsAPIKey == "") {
		return nil, fmt.Errorf("SHEETS_SPREADSHEET_ID and SHEETS_API_KEY must be set together")
	}

	return cfg, nil
}

// ChatConfigured reports whether any LLM provider credentials are present.
func (c *Config) ChatConfigured() bool {
	return c.OpenAIAPIKey != "" || c.AzureOpenAIAPIKey != ""
}

// SheetsConfigured reports whether the Google Sheets import source is usable.
func (c *Config) SheetsConfigured() bool {
	return c.SheetsSpreadsheetID != ""
}

func getEnv(key, defaultValue string) string {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	return value
}

package config

import (
	"log"
	"os"
	"strings"

	"github.com/joho/godotenv"
)

// Config is read once at process start and passed by reference. Request
// handling never touches the environment directly.
type Config struct {
	Port string

	// OpenRouter credentials and the optional attribution headers
	// (HTTP-Referer / X-Title) OpenRouter uses for app rankings.
	OpenRouterAPIKey string
	SiteURL          string
	AppName          string

	// Provider selects the gateway engine: "openrouter" (default) or "gemini".
	Provider     string
	GeminiAPIKey string

	// EstimateModel is a fast/cheap model, AnalyzeModel a higher-capability one.
	EstimateModel string
	AnalyzeModel  string

	// DevMode attaches error detail strings to 500 responses.
	DevMode bool

	TelegramBotToken string
}

func getEnv(k, def string) string {
	if v := strings.TrimSpace(os.Getenv(k)); v != "" {
		return v
	}
	return def
}

// Load reads the environment (plus a .env file when present). A missing
// gateway credential is only a warning here; the hard failure happens on the
// first request that needs it.
func Load() *Config {
	_ = godotenv.Load()

	provider := strings.ToLower(getEnv("LLM_PROVIDER", "openrouter"))

	estimateDef, analyzeDef := "openai/gpt-4o-mini", "anthropic/claude-3.5-sonnet"
	if provider == "gemini" {
		estimateDef, analyzeDef = "gemini-2.5-flash", "gemini-2.5-pro"
	}

	cfg := &Config{
		Port:             getEnv("PORT", "4000"),
		OpenRouterAPIKey: os.Getenv("OPENROUTER_API_KEY"),
		SiteURL:          os.Getenv("SITE_URL"),
		AppName:          getEnv("APP_NAME", "carbon-coach"),
		Provider:         provider,
		GeminiAPIKey:     os.Getenv("GEMINI_API_KEY"),
		EstimateModel:    getEnv("ESTIMATE_MODEL", estimateDef),
		AnalyzeModel:     getEnv("ANALYZE_MODEL", analyzeDef),
		DevMode:          getEnv("APP_ENV", "production") == "development",
		TelegramBotToken: os.Getenv("TELEGRAM_BOT_TOKEN"),
	}

	if cfg.Credential() == "" {
		log.Printf("warning: no API key configured for provider %q, gateway calls will fail", cfg.Provider)
	}
	return cfg
}

// Credential returns the API key for the selected provider.
func (c *Config) Credential() string {
	if c.Provider == "gemini" {
		return c.GeminiAPIKey
	}
	return c.OpenRouterAPIKey
}

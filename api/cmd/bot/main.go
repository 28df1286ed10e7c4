package main

import (
	"log"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"

	"carbon-coach/api/internal/config"
	"carbon-coach/api/internal/llm"
	"carbon-coach/api/internal/llm/gemini"
	"carbon-coach/api/internal/llm/openrouter"
	"carbon-coach/api/internal/telegram"
)

func main() {
	cfg := config.Load()
	if cfg.TelegramBotToken == "" {
		log.Fatal("TELEGRAM_BOT_TOKEN is required")
	}

	api, err := tgbotapi.NewBotAPI(cfg.TelegramBotToken)
	if err != nil {
		log.Fatal(err)
	}

	engines := &llm.Engines{
		OpenRouter: openrouter.New(cfg.OpenRouterAPIKey, cfg.SiteURL, cfg.AppName),
		Gemini:     gemini.New(cfg.GeminiAPIKey),
	}
	eng, err := engines.Get(cfg.Provider)
	if err != nil {
		log.Fatal(err)
	}

	log.Printf("bot @%s polling (provider=%s)", api.Self.UserName, eng.Name())
	b := &telegram.Bot{API: api, Eng: eng, Model: cfg.EstimateModel}
	b.Run()
}

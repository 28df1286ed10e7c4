package telegram

import (
	"context"
	"fmt"
	"log"
	"strings"
	"time"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"

	"carbon-coach/api/internal/carbon"
	"carbon-coach/api/internal/llm"
)

// Bot answers plain-text activity descriptions with carbon estimates.
// It keeps no per-chat state; every message is an independent request.
type Bot struct {
	API   *tgbotapi.BotAPI
	Eng   llm.Engine
	Model string
}

// Run long-polls Telegram until the updates channel closes.
func (b *Bot) Run() {
	u := tgbotapi.NewUpdate(0)
	u.Timeout = 30

	for upd := range b.API.GetUpdatesChan(u) {
		if upd.Message == nil {
			continue
		}
		b.handleMessage(upd.Message)
	}
}

func (b *Bot) handleMessage(msg *tgbotapi.Message) {
	if msg.IsCommand() {
		switch msg.Command() {
		case "start", "help":
			b.send(msg.Chat.ID, "Describe an activity (\"drove 15 km to work\") and I'll estimate its carbon footprint.")
		}
		return
	}

	text := strings.TrimSpace(msg.Text)
	if text == "" {
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), 90*time.Second)
	defer cancel()

	out, err := carbon.Estimate(ctx, b.Eng, b.Model, text)
	if err != nil {
		log.Printf("bot estimate: %v", err)
		b.send(msg.Chat.ID, "Sorry, I couldn't estimate that one. Try again in a moment.")
		return
	}
	b.send(msg.Chat.ID, formatEstimate(out))
}

func formatEstimate(out map[string]any) string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "~%v g CO2e (%v)", out["carbon_grams"], out["category"])
	if s, ok := out["explanation"].(string); ok && s != "" {
		sb.WriteString("\n")
		sb.WriteString(s)
	}
	if s, ok := out["assumptions"].(string); ok && s != "" {
		sb.WriteString("\nAssumptions: ")
		sb.WriteString(s)
	}
	return sb.String()
}

func (b *Bot) send(chatID int64, text string) {
	if _, err := b.API.Send(tgbotapi.NewMessage(chatID, text)); err != nil {
		log.Printf("telegram send: %v", err)
	}
}

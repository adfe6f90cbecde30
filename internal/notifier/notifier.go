package notifier

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"strings"
	"time"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"

	"github.com/yukikurage/shift-schedule-api/internal/constants"
)

var (
	ErrDisabled      = errors.New("telegram notifications are not configured")
	ErrInvalidChatID = errors.New("invalid telegram chat id")
)

// Notifier delivers a text message to a user's chat identity.
type Notifier interface {
	Send(ctx context.Context, chatID, text string) error
}

// Config configures the Telegram notifier.
type Config struct {
	Token       string
	APIEndpoint string
	Timeout     time.Duration
}

// Enabled reports whether the token looks usable. Empty and placeholder tokens disable sending.
func (c Config) Enabled() bool {
	token := strings.TrimSpace(c.Token)
	return token != "" && token != constants.PlaceholderBotToken
}

// Telegram sends messages through the Bot API sendMessage method.
type Telegram struct {
	bot *tgbotapi.BotAPI
}

// NewTelegram builds a notifier without contacting Telegram. A disabled config
// yields a notifier whose every Send fails with ErrDisabled.
func NewTelegram(cfg Config) *Telegram {
	if !cfg.Enabled() {
		return &Telegram{}
	}

	bot := &tgbotapi.BotAPI{
		Token:  strings.TrimSpace(cfg.Token),
		Client: &http.Client{Timeout: cfg.Timeout},
		Buffer: 100,
	}
	endpoint := cfg.APIEndpoint
	if endpoint == "" {
		endpoint = tgbotapi.APIEndpoint
	}
	bot.SetAPIEndpoint(endpoint)

	return &Telegram{bot: bot}
}

// Send posts text to the chat. Each call is a single attempt.
func (t *Telegram) Send(ctx context.Context, chatID, text string) error {
	if t.bot == nil {
		return ErrDisabled
	}
	if err := ctx.Err(); err != nil {
		return err
	}

	id, err := strconv.ParseInt(strings.TrimSpace(chatID), 10, 64)
	if err != nil {
		return fmt.Errorf("%w: %q", ErrInvalidChatID, chatID)
	}

	if _, err := t.bot.Send(tgbotapi.NewMessage(id, text)); err != nil {
		return fmt.Errorf("telegram sendMessage failed: %w", err)
	}
	return nil
}

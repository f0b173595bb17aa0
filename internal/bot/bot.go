// Package bot is the Telegram transport layer: it decodes inbound updates,
// routes them into the survey engine and the resolver, and renders replies.
package bot

import (
	"context"
	"log/slog"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"

	"github.com/borissavenets/RecoFilmBot/internal/locale"
	"github.com/borissavenets/RecoFilmBot/internal/recommend"
	"github.com/borissavenets/RecoFilmBot/internal/repository"
	"github.com/borissavenets/RecoFilmBot/internal/survey"
	"github.com/borissavenets/RecoFilmBot/internal/tmdb"
)

// Bot wires the Telegram API to the application services.
type Bot struct {
	api      *tgbotapi.BotAPI
	users    *repository.UserRepository
	profiles *repository.ProfileRepository
	sessions *repository.SessionRepository
	saved    *repository.SavedRepository
	engine   *survey.Engine
	resolver *recommend.Resolver
	catalog  *tmdb.Client
}

// New creates the bot.
func New(
	token string,
	users *repository.UserRepository,
	profiles *repository.ProfileRepository,
	sessions *repository.SessionRepository,
	saved *repository.SavedRepository,
	engine *survey.Engine,
	resolver *recommend.Resolver,
	catalog *tmdb.Client,
) (*Bot, error) {
	api, err := tgbotapi.NewBotAPI(token)
	if err != nil {
		return nil, err
	}
	slog.Info("authorized on Telegram", "username", api.Self.UserName)

	return &Bot{
		api:      api,
		users:    users,
		profiles: profiles,
		sessions: sessions,
		saved:    saved,
		engine:   engine,
		resolver: resolver,
		catalog:  catalog,
	}, nil
}

// Run starts long polling and dispatches one goroutine per update. Telegram
// delivers updates for a single chat serially, so per-chat survey state is
// never touched concurrently.
func (b *Bot) Run(ctx context.Context) error {
	cfg := tgbotapi.NewUpdate(0)
	cfg.Timeout = 30
	updates := b.api.GetUpdatesChan(cfg)

	for {
		select {
		case <-ctx.Done():
			b.api.StopReceivingUpdates()
			return ctx.Err()
		case update, ok := <-updates:
			if !ok {
				return nil
			}
			go b.handleUpdate(ctx, update)
		}
	}
}

func (b *Bot) handleUpdate(ctx context.Context, update tgbotapi.Update) {
	defer func() {
		if r := recover(); r != nil {
			slog.Error("panic in update handler", "panic", r)
		}
	}()

	switch {
	case update.CallbackQuery != nil:
		b.handleCallback(ctx, update.CallbackQuery)
	case update.Message != nil:
		b.handleMessage(ctx, update.Message)
	}
}

func (b *Bot) handleMessage(ctx context.Context, msg *tgbotapi.Message) {
	if msg.IsCommand() {
		if msg.Command() == "start" {
			b.handleStart(ctx, msg)
		}
		return
	}
	b.handleSurveyText(ctx, msg)
}

func (b *Bot) handleCallback(ctx context.Context, cq *tgbotapi.CallbackQuery) {
	data := ParseCallback(cq.Data)

	switch data.Namespace {
	case "lang":
		b.handleLanguage(ctx, cq, data)
	case "menu":
		b.handleMenu(ctx, cq, data)
	case "rec":
		b.handleRecommendation(ctx, cq, data)
	case "saved":
		b.handleSaved(ctx, cq, data)
	default:
		// Everything else belongs to a survey step namespace.
		b.handleSurveyCallback(ctx, cq, data)
	}
}

// userLang returns the user's language, defaulting to Ukrainian.
func (b *Bot) userLang(telegramID int64) string {
	user, err := b.users.GetUser(telegramID)
	if err != nil || user == nil {
		return locale.LangUK
	}
	return user.Language
}

// ---- Send helpers ----

func (b *Bot) sendText(chatID int64, text string, markup *tgbotapi.InlineKeyboardMarkup) int {
	msg := tgbotapi.NewMessage(chatID, text)
	msg.ParseMode = tgbotapi.ModeMarkdown
	if markup != nil {
		msg.ReplyMarkup = markup
	}
	sent, err := b.api.Send(msg)
	if err != nil {
		slog.Error("failed to send message", "chat_id", chatID, "error", err)
		return 0
	}
	return sent.MessageID
}

func (b *Bot) editText(chatID int64, messageID int, text string, markup *tgbotapi.InlineKeyboardMarkup) {
	var cfg tgbotapi.EditMessageTextConfig
	if markup != nil {
		cfg = tgbotapi.NewEditMessageTextAndMarkup(chatID, messageID, text, *markup)
	} else {
		cfg = tgbotapi.NewEditMessageText(chatID, messageID, text)
	}
	cfg.ParseMode = tgbotapi.ModeMarkdown
	if _, err := b.api.Send(cfg); err != nil {
		slog.Error("failed to edit message", "chat_id", chatID, "error", err)
	}
}

func (b *Bot) editMarkup(chatID int64, messageID int, markup tgbotapi.InlineKeyboardMarkup) {
	cfg := tgbotapi.NewEditMessageReplyMarkup(chatID, messageID, markup)
	if _, err := b.api.Send(cfg); err != nil {
		slog.Error("failed to edit keyboard", "chat_id", chatID, "error", err)
	}
}

func (b *Bot) deleteMessage(chatID int64, messageID int) {
	if _, err := b.api.Request(tgbotapi.NewDeleteMessage(chatID, messageID)); err != nil {
		slog.Debug("failed to delete message", "chat_id", chatID, "error", err)
	}
}

// ack answers a callback query, optionally with a toast text.
func (b *Bot) ack(cq *tgbotapi.CallbackQuery, text string) {
	if _, err := b.api.Request(tgbotapi.NewCallback(cq.ID, text)); err != nil {
		slog.Debug("failed to answer callback", "error", err)
	}
}

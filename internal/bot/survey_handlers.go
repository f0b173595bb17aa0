package bot

import (
	"context"
	"log/slog"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"

	"github.com/borissavenets/RecoFilmBot/internal/locale"
	"github.com/borissavenets/RecoFilmBot/internal/survey"
)

// handleSurveyCallback feeds a decoded button press into the engine and
// renders the resulting effect onto the pressed message.
func (b *Bot) handleSurveyCallback(ctx context.Context, cq *tgbotapi.CallbackQuery, data CallbackData) {
	chatID := cq.Message.Chat.ID
	msgID := cq.Message.MessageID

	eff, err := b.engine.HandleCallback(ctx, chatID, data.Namespace, data.Action)
	if err != nil {
		slog.Error("survey callback failed", "chat_id", chatID, "error", err)
		b.ack(cq, locale.Text(b.userLang(cq.From.ID), "error_occurred"))
		return
	}

	switch eff.Kind {
	case survey.EffectWarn:
		b.ack(cq, locale.Text(eff.Lang, eff.WarnKey))

	case survey.EffectRerender:
		b.ack(cq, "")
		b.editMarkup(chatID, msgID, stepKeyboard(eff.Step, eff.Selected, eff.Lang))

	case survey.EffectPrompt:
		b.ack(cq, "")
		kb := stepKeyboard(eff.Step, eff.Selected, eff.Lang)
		b.editText(chatID, msgID, stepPrompt(eff.Step, eff.Lang), &kb)

	case survey.EffectComplete:
		b.ack(cq, "")
		b.finishSurvey(ctx, chatID, msgID, cq.From.ID, eff)

	default:
		b.ack(cq, "")
	}
}

// handleSurveyText feeds a free-text message into the engine. Outside a text
// step the message is ignored.
func (b *Bot) handleSurveyText(ctx context.Context, msg *tgbotapi.Message) {
	chatID := msg.Chat.ID

	eff, err := b.engine.HandleText(ctx, chatID, msg.Text)
	if err != nil {
		slog.Error("survey text failed", "chat_id", chatID, "error", err)
		return
	}

	switch eff.Kind {
	case survey.EffectPrompt:
		kb := stepKeyboard(eff.Step, eff.Selected, eff.Lang)
		b.sendText(chatID, stepPrompt(eff.Step, eff.Lang), &kb)

	case survey.EffectComplete:
		b.finishSurvey(ctx, chatID, 0, msg.From.ID, eff)
	}
}

// finishSurvey commits a completed survey. msgID is the message to edit in
// place, or 0 when the final answer arrived as text and a fresh message is
// needed.
func (b *Bot) finishSurvey(ctx context.Context, chatID int64, msgID int, userID int64, eff *survey.Effect) {
	switch eff.Survey {
	case survey.BaseSurvey:
		b.finishBaseSurvey(chatID, msgID, userID, eff)
	case survey.DynamicSurvey:
		b.finishDynamicSurvey(ctx, chatID, msgID, userID, eff)
	}
}

func (b *Bot) finishBaseSurvey(chatID int64, msgID int, userID int64, eff *survey.Effect) {
	lang := eff.Lang

	profile := survey.BuildProfile(userID, eff.Answers)
	if err := b.profiles.Upsert(profile); err != nil {
		slog.Error("failed to save profile", "telegram_id", userID, "error", err)
		b.respond(chatID, msgID, locale.Text(lang, "error_occurred"), nil)
		return
	}
	if err := b.users.SetProfileCompleted(userID, true); err != nil {
		slog.Error("failed to mark profile completed", "telegram_id", userID, "error", err)
	}

	text := locale.Text(lang, "base_survey_complete") + "\n\n" + locale.Text(lang, "try_find_movie")
	kb := mainMenuKeyboard(lang)
	b.respond(chatID, msgID, text, &kb)
}

func (b *Bot) finishDynamicSurvey(ctx context.Context, chatID int64, msgID int, userID int64, eff *survey.Effect) {
	lang := eff.Lang

	answers := survey.BuildDynamicAnswers(eff.Answers)
	sessionID, err := b.sessions.CreateSession(userID, answers)
	if err != nil {
		slog.Error("failed to create session", "telegram_id", userID, "error", err)
		kb := mainMenuKeyboard(lang)
		b.respond(chatID, msgID, locale.Text(lang, "error_occurred"), &kb)
		return
	}

	placeholderID := b.respond(chatID, msgID, locale.Text(lang, "searching_movie"), nil)
	b.showRecommendation(ctx, chatID, placeholderID, userID, sessionID, answers, lang)
}

// respond edits msgID when present, otherwise sends a new message. Returns
// the id of the message that now holds the text.
func (b *Bot) respond(chatID int64, msgID int, text string, markup *tgbotapi.InlineKeyboardMarkup) int {
	if msgID != 0 {
		b.editText(chatID, msgID, text, markup)
		return msgID
	}
	return b.sendText(chatID, text, markup)
}

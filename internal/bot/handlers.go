package bot

import (
	"context"
	"log/slog"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"

	"github.com/borissavenets/RecoFilmBot/internal/locale"
	"github.com/borissavenets/RecoFilmBot/internal/survey"
)

// handleStart resets any in-progress survey and lands the user where they
// belong: language choice for newcomers, the base survey until the profile
// exists, the main menu otherwise.
func (b *Bot) handleStart(ctx context.Context, msg *tgbotapi.Message) {
	chatID := msg.Chat.ID

	if err := b.engine.Abort(ctx, chatID); err != nil {
		slog.Warn("failed to clear survey state", "chat_id", chatID, "error", err)
	}

	user, err := b.users.GetUser(msg.From.ID)
	if err != nil {
		slog.Error("failed to load user", "telegram_id", msg.From.ID, "error", err)
		return
	}

	if user == nil {
		kb := languageKeyboard()
		b.sendText(chatID, locale.Text(locale.LangUK, "choose_language"), &kb)
		return
	}
	if !user.ProfileCompleted {
		b.sendText(chatID, locale.Text(user.Language, "welcome"), nil)
		b.beginBaseSurvey(ctx, chatID, user.Language)
		return
	}

	kb := mainMenuKeyboard(user.Language)
	b.sendText(chatID, locale.Text(user.Language, "main_menu"), &kb)
}

func (b *Bot) handleLanguage(ctx context.Context, cq *tgbotapi.CallbackQuery, data CallbackData) {
	lang := data.Action
	if lang != locale.LangUK && lang != locale.LangEN {
		b.ack(cq, "")
		return
	}
	chatID := cq.Message.Chat.ID
	userID := cq.From.ID

	user, err := b.users.GetUser(userID)
	if err != nil {
		slog.Error("failed to load user", "telegram_id", userID, "error", err)
		b.ack(cq, locale.Text(lang, "error_occurred"))
		return
	}
	if user == nil {
		if user, err = b.users.CreateUser(userID, lang); err != nil {
			slog.Error("failed to create user", "telegram_id", userID, "error", err)
			b.ack(cq, locale.Text(lang, "error_occurred"))
			return
		}
	} else if err := b.users.UpdateLanguage(userID, lang); err != nil {
		slog.Error("failed to update language", "telegram_id", userID, "error", err)
		b.ack(cq, locale.Text(lang, "error_occurred"))
		return
	}
	b.ack(cq, locale.Text(lang, "language_set"))

	if !user.ProfileCompleted {
		b.editText(chatID, cq.Message.MessageID, locale.Text(lang, "welcome"), nil)
		b.beginBaseSurvey(ctx, chatID, lang)
		return
	}
	kb := mainMenuKeyboard(lang)
	b.editText(chatID, cq.Message.MessageID, locale.Text(lang, "main_menu"), &kb)
}

func (b *Bot) handleMenu(ctx context.Context, cq *tgbotapi.CallbackQuery, data CallbackData) {
	chatID := cq.Message.Chat.ID
	msgID := cq.Message.MessageID
	userID := cq.From.ID
	lang := b.userLang(userID)

	switch data.Action {
	case "find_movie":
		user, err := b.users.GetUser(userID)
		if err != nil || user == nil || !user.ProfileCompleted {
			b.ack(cq, "")
			b.deleteMessage(chatID, msgID)
			b.beginBaseSurvey(ctx, chatID, lang)
			return
		}
		b.ack(cq, "")
		b.beginDynamicSurvey(ctx, chatID, msgID, lang)

	case "profile":
		profile, err := b.profiles.Get(userID)
		if err != nil {
			slog.Error("failed to load profile", "telegram_id", userID, "error", err)
			b.ack(cq, locale.Text(lang, "error_occurred"))
			return
		}
		b.ack(cq, "")
		if profile == nil {
			b.deleteMessage(chatID, msgID)
			b.beginBaseSurvey(ctx, chatID, lang)
			return
		}
		kb := backKeyboard(lang)
		b.editText(chatID, msgID, formatProfile(profile, lang), &kb)

	case "saved":
		b.ack(cq, "")
		b.showSavedList(chatID, msgID, userID, lang, 0)

	case "update_profile":
		b.ack(cq, "")
		b.editText(chatID, msgID, locale.Text(lang, "welcome"), nil)
		b.beginBaseSurvey(ctx, chatID, lang)

	case "change_language":
		b.ack(cq, "")
		kb := languageKeyboard()
		b.editText(chatID, msgID, locale.Text(lang, "choose_language"), &kb)

	case "back":
		b.ack(cq, "")
		kb := mainMenuKeyboard(lang)
		b.editText(chatID, msgID, locale.Text(lang, "main_menu"), &kb)

	default:
		b.ack(cq, "")
	}
}

// beginBaseSurvey sends the survey intro and the first question as fresh
// messages.
func (b *Bot) beginBaseSurvey(ctx context.Context, chatID int64, lang string) {
	b.sendText(chatID, locale.Text(lang, "base_survey_intro"), nil)

	eff, err := b.engine.Start(ctx, chatID, survey.BaseSurvey, lang)
	if err != nil {
		slog.Error("failed to start base survey", "chat_id", chatID, "error", err)
		b.sendText(chatID, locale.Text(lang, "error_occurred"), nil)
		return
	}
	kb := stepKeyboard(eff.Step, eff.Selected, lang)
	b.sendText(chatID, stepPrompt(eff.Step, lang), &kb)
}

// beginDynamicSurvey edits the menu message into the contextual survey's
// intro plus its first question.
func (b *Bot) beginDynamicSurvey(ctx context.Context, chatID int64, msgID int, lang string) {
	eff, err := b.engine.Start(ctx, chatID, survey.DynamicSurvey, lang)
	if err != nil {
		slog.Error("failed to start dynamic survey", "chat_id", chatID, "error", err)
		b.editText(chatID, msgID, locale.Text(lang, "error_occurred"), nil)
		return
	}
	kb := stepKeyboard(eff.Step, eff.Selected, lang)
	text := locale.Text(lang, "dynamic_intro") + "\n\n" + stepPrompt(eff.Step, lang)
	b.editText(chatID, msgID, text, &kb)
}

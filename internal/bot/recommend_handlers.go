package bot

import (
	"context"
	"log/slog"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"

	"github.com/borissavenets/RecoFilmBot/internal/locale"
	"github.com/borissavenets/RecoFilmBot/internal/models"
)

func (b *Bot) handleRecommendation(ctx context.Context, cq *tgbotapi.CallbackQuery, data CallbackData) {
	chatID := cq.Message.Chat.ID
	msgID := cq.Message.MessageID
	userID := cq.From.ID
	lang := b.userLang(userID)

	switch data.Action {
	case "save":
		b.handleSaveMovie(ctx, cq, data, lang)

	case "next":
		sessionID := data.IntArg(0)
		session, err := b.sessions.GetSession(sessionID)
		if err != nil || session == nil {
			slog.Error("failed to load session", "session_id", sessionID, "error", err)
			b.ack(cq, locale.Text(lang, "error_occurred"))
			return
		}
		b.ack(cq, "")
		b.deleteMessage(chatID, msgID)
		placeholderID := b.sendText(chatID, locale.Text(lang, "searching_movie"), nil)
		b.showRecommendation(ctx, chatID, placeholderID, userID, sessionID, session.Answers, lang)

	case "new_request":
		b.ack(cq, "")
		b.deleteMessage(chatID, msgID)
		kb := mainMenuKeyboard(lang)
		b.sendText(chatID, locale.Text(lang, "main_menu"), &kb)

	default:
		b.ack(cq, "")
	}
}

func (b *Bot) handleSaveMovie(ctx context.Context, cq *tgbotapi.CallbackQuery, data CallbackData, lang string) {
	chatID := cq.Message.Chat.ID
	msgID := cq.Message.MessageID
	userID := cq.From.ID

	tmdbID := int(data.IntArg(0))
	sessionID := data.IntArg(1)
	recID := data.IntArg(2)

	alreadySaved, err := b.saved.IsSaved(userID, tmdbID)
	if err != nil {
		slog.Error("saved check failed", "tmdb_id", tmdbID, "error", err)
		b.ack(cq, locale.Text(lang, "error_occurred"))
		return
	}
	if alreadySaved {
		b.ack(cq, locale.Text(lang, "btn_saved_mark"))
		return
	}

	tmdbLocale := locale.TMDBLocale(lang)
	movie, err := b.catalog.GetMovieDetails(ctx, tmdbID, tmdbLocale)
	if err != nil {
		slog.Error("catalog details failed", "tmdb_id", tmdbID, "error", err)
		b.ack(cq, locale.Text(lang, "error_occurred"))
		return
	}
	if err := b.saved.Save(userID, tmdbID, movie.Title, movie.PosterURL); err != nil {
		slog.Error("failed to save movie", "tmdb_id", tmdbID, "error", err)
		b.ack(cq, locale.Text(lang, "error_occurred"))
		return
	}
	if recID != 0 {
		if err := b.sessions.UpdateRecommendationAction(recID, models.ActionSaved); err != nil {
			slog.Warn("failed to mark recommendation saved", "rec_id", recID, "error", err)
		}
	}

	trailerURL, err := b.catalog.GetMovieTrailer(ctx, tmdbID, tmdbLocale)
	if err != nil {
		trailerURL = ""
	}
	b.editMarkup(chatID, msgID, recommendationKeyboard(lang, tmdbID, sessionID, recID, true, trailerURL))
	b.ack(cq, locale.Text(lang, "movie_saved"))
}

// showRecommendation runs the resolution pipeline and replaces the searching
// placeholder with the movie card. A poster card goes out as a photo message;
// when that fails the card degrades to the text edit.
func (b *Bot) showRecommendation(
	ctx context.Context,
	chatID int64,
	placeholderID int,
	userID, sessionID int64,
	answers models.DynamicAnswers,
	lang string,
) {
	card, err := b.resolver.RecommendForSession(ctx, userID, sessionID, answers, lang)
	if err != nil {
		slog.Error("recommendation failed", "telegram_id", userID, "session_id", sessionID, "error", err)
		kb := mainMenuKeyboard(lang)
		b.editText(chatID, placeholderID, locale.Text(lang, "error_occurred"), &kb)
		return
	}

	caption := locale.Text(lang, "recommendation_title") + "\n\n" + formatMovieCard(card.Movie, card.Reason, lang)
	kb := recommendationKeyboard(lang, card.Movie.ID, card.SessionID, card.RecommendationID, card.Saved, card.TrailerURL)

	if card.Movie.PosterURL != "" {
		photo := tgbotapi.NewPhoto(chatID, tgbotapi.FileURL(card.Movie.PosterURL))
		photo.Caption = caption
		photo.ParseMode = tgbotapi.ModeMarkdown
		photo.ReplyMarkup = kb
		if _, err := b.api.Send(photo); err == nil {
			b.deleteMessage(chatID, placeholderID)
			return
		}
		slog.Warn("poster send failed, falling back to text", "tmdb_id", card.Movie.ID)
	}
	b.editText(chatID, placeholderID, caption, &kb)
}

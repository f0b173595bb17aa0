package bot

import (
	"context"
	"log/slog"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"

	"github.com/borissavenets/RecoFilmBot/internal/locale"
)

func (b *Bot) handleSaved(ctx context.Context, cq *tgbotapi.CallbackQuery, data CallbackData) {
	chatID := cq.Message.Chat.ID
	msgID := cq.Message.MessageID
	userID := cq.From.ID
	lang := b.userLang(userID)

	switch data.Action {
	case "page":
		b.ack(cq, "")
		b.showSavedList(chatID, msgID, userID, lang, int(data.IntArg(0)))

	case "view":
		tmdbID := int(data.IntArg(0))
		tmdbLocale := locale.TMDBLocale(lang)

		movie, err := b.catalog.GetMovieDetails(ctx, tmdbID, tmdbLocale)
		if err != nil {
			slog.Error("catalog details failed", "tmdb_id", tmdbID, "error", err)
			b.ack(cq, locale.Text(lang, "error_occurred"))
			return
		}
		trailerURL, err := b.catalog.GetMovieTrailer(ctx, tmdbID, tmdbLocale)
		if err != nil {
			trailerURL = ""
		}
		b.ack(cq, "")
		kb := savedViewKeyboard(lang, tmdbID, trailerURL)
		b.editText(chatID, msgID, formatMovieCard(movie, "", lang), &kb)

	case "delete":
		tmdbID := int(data.IntArg(0))
		if err := b.saved.Delete(userID, tmdbID); err != nil {
			slog.Error("failed to delete saved movie", "tmdb_id", tmdbID, "error", err)
			b.ack(cq, locale.Text(lang, "error_occurred"))
			return
		}
		b.ack(cq, locale.Text(lang, "movie_deleted"))
		b.showSavedList(chatID, msgID, userID, lang, 0)

	default:
		b.ack(cq, "")
	}
}

// showSavedList edits the message into the saved-movies listing for the
// given page.
func (b *Bot) showSavedList(chatID int64, msgID int, userID int64, lang string, page int) {
	movies, err := b.saved.List(userID)
	if err != nil {
		slog.Error("failed to list saved movies", "telegram_id", userID, "error", err)
		kb := backKeyboard(lang)
		b.editText(chatID, msgID, locale.Text(lang, "error_occurred"), &kb)
		return
	}

	if len(movies) == 0 {
		kb := backKeyboard(lang)
		b.editText(chatID, msgID, locale.Text(lang, "no_saved_movies"), &kb)
		return
	}

	kb := savedMoviesKeyboard(movies, lang, page)
	b.editText(chatID, msgID, locale.Text(lang, "saved_movies_title"), &kb)
}

package bot

import (
	"fmt"
	"strconv"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"

	"github.com/borissavenets/RecoFilmBot/internal/locale"
	"github.com/borissavenets/RecoFilmBot/internal/models"
	"github.com/borissavenets/RecoFilmBot/internal/survey"
)

const savedPerPage = 5

func languageKeyboard() tgbotapi.InlineKeyboardMarkup {
	return tgbotapi.NewInlineKeyboardMarkup(
		tgbotapi.NewInlineKeyboardRow(
			tgbotapi.NewInlineKeyboardButtonData("Українська", "lang:uk"),
			tgbotapi.NewInlineKeyboardButtonData("English", "lang:en"),
		),
	)
}

func mainMenuKeyboard(lang string) tgbotapi.InlineKeyboardMarkup {
	return tgbotapi.NewInlineKeyboardMarkup(
		tgbotapi.NewInlineKeyboardRow(
			tgbotapi.NewInlineKeyboardButtonData(locale.Text(lang, "btn_find_movie"), "menu:find_movie"),
		),
		tgbotapi.NewInlineKeyboardRow(
			tgbotapi.NewInlineKeyboardButtonData(locale.Text(lang, "btn_my_profile"), "menu:profile"),
			tgbotapi.NewInlineKeyboardButtonData(locale.Text(lang, "btn_saved"), "menu:saved"),
		),
		tgbotapi.NewInlineKeyboardRow(
			tgbotapi.NewInlineKeyboardButtonData(locale.Text(lang, "btn_update_profile"), "menu:update_profile"),
		),
		tgbotapi.NewInlineKeyboardRow(
			tgbotapi.NewInlineKeyboardButtonData(locale.Text(lang, "btn_change_language"), "menu:change_language"),
		),
	)
}

// stepKeyboard renders the keyboard for a survey step. Multi-select options
// carry a checkbox prefix when toggled on.
func stepKeyboard(step *survey.Step, selected map[string]bool, lang string) tgbotapi.InlineKeyboardMarkup {
	var rows [][]tgbotapi.InlineKeyboardButton

	switch step.Kind {
	case survey.StepMulti:
		for _, opt := range step.Options {
			label := locale.Text(lang, opt.LabelKey)
			if selected[opt.ID] {
				label = "✅ " + label
			}
			rows = append(rows, tgbotapi.NewInlineKeyboardRow(
				tgbotapi.NewInlineKeyboardButtonData(label, step.Namespace+":"+opt.ID),
			))
		}
		rows = append(rows, tgbotapi.NewInlineKeyboardRow(
			tgbotapi.NewInlineKeyboardButtonData(locale.Text(lang, "btn_done"), step.Namespace+":done"),
		))

	case survey.StepSingle:
		for _, opt := range step.Options {
			rows = append(rows, tgbotapi.NewInlineKeyboardRow(
				tgbotapi.NewInlineKeyboardButtonData(locale.Text(lang, opt.LabelKey), step.Namespace+":"+opt.ID),
			))
		}

	case survey.StepText:
		rows = append(rows, tgbotapi.NewInlineKeyboardRow(
			tgbotapi.NewInlineKeyboardButtonData(locale.Text(lang, "btn_skip"), step.Namespace+":skip"),
		))
	}

	return tgbotapi.NewInlineKeyboardMarkup(rows...)
}

func recommendationKeyboard(lang string, tmdbID int, sessionID, recID int64, isSaved bool, trailerURL string) tgbotapi.InlineKeyboardMarkup {
	var firstRow []tgbotapi.InlineKeyboardButton
	if trailerURL != "" {
		firstRow = append(firstRow, tgbotapi.NewInlineKeyboardButtonURL(locale.Text(lang, "btn_trailer"), trailerURL))
	}

	saveLabel := locale.Text(lang, "btn_save")
	if isSaved {
		saveLabel = locale.Text(lang, "btn_saved_mark")
	}
	firstRow = append(firstRow, tgbotapi.NewInlineKeyboardButtonData(
		saveLabel,
		fmt.Sprintf("rec:save:%d:%d:%d", tmdbID, sessionID, recID),
	))

	return tgbotapi.NewInlineKeyboardMarkup(
		firstRow,
		tgbotapi.NewInlineKeyboardRow(
			tgbotapi.NewInlineKeyboardButtonData(locale.Text(lang, "btn_next"), fmt.Sprintf("rec:next:%d", sessionID)),
			tgbotapi.NewInlineKeyboardButtonData(locale.Text(lang, "btn_new_request"), "rec:new_request"),
		),
	)
}

func savedMoviesKeyboard(movies []models.SavedMovie, lang string, page int) tgbotapi.InlineKeyboardMarkup {
	var rows [][]tgbotapi.InlineKeyboardButton

	start := page * savedPerPage
	end := start + savedPerPage
	if start > len(movies) {
		start = len(movies)
	}
	if end > len(movies) {
		end = len(movies)
	}

	for _, m := range movies[start:end] {
		rows = append(rows, tgbotapi.NewInlineKeyboardRow(
			tgbotapi.NewInlineKeyboardButtonData(m.Title, fmt.Sprintf("saved:view:%d", m.TMDBID)),
			tgbotapi.NewInlineKeyboardButtonData(locale.Text(lang, "btn_delete"), fmt.Sprintf("saved:delete:%d", m.TMDBID)),
		))
	}

	var nav []tgbotapi.InlineKeyboardButton
	if page > 0 {
		nav = append(nav, tgbotapi.NewInlineKeyboardButtonData("◀️", "saved:page:"+strconv.Itoa(page-1)))
	}
	if end < len(movies) {
		nav = append(nav, tgbotapi.NewInlineKeyboardButtonData("▶️", "saved:page:"+strconv.Itoa(page+1)))
	}
	if len(nav) > 0 {
		rows = append(rows, nav)
	}

	rows = append(rows, tgbotapi.NewInlineKeyboardRow(
		tgbotapi.NewInlineKeyboardButtonData(locale.Text(lang, "btn_back"), "menu:back"),
	))

	return tgbotapi.NewInlineKeyboardMarkup(rows...)
}

func savedViewKeyboard(lang string, tmdbID int, trailerURL string) tgbotapi.InlineKeyboardMarkup {
	var rows [][]tgbotapi.InlineKeyboardButton
	if trailerURL != "" {
		rows = append(rows, tgbotapi.NewInlineKeyboardRow(
			tgbotapi.NewInlineKeyboardButtonURL(locale.Text(lang, "btn_trailer"), trailerURL),
		))
	}
	rows = append(rows,
		tgbotapi.NewInlineKeyboardRow(
			tgbotapi.NewInlineKeyboardButtonData(locale.Text(lang, "btn_delete"), fmt.Sprintf("saved:delete:%d", tmdbID)),
		),
		tgbotapi.NewInlineKeyboardRow(
			tgbotapi.NewInlineKeyboardButtonData(locale.Text(lang, "btn_back"), "menu:saved"),
		),
	)
	return tgbotapi.NewInlineKeyboardMarkup(rows...)
}

func backKeyboard(lang string) tgbotapi.InlineKeyboardMarkup {
	return tgbotapi.NewInlineKeyboardMarkup(
		tgbotapi.NewInlineKeyboardRow(
			tgbotapi.NewInlineKeyboardButtonData(locale.Text(lang, "btn_back"), "menu:back"),
		),
	)
}

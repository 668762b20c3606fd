package bot

import (
	"fmt"
	"time"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"

	"github.com/m04kA/PH-BookingBot/internal/bot/calendar"
	"github.com/m04kA/PH-BookingBot/internal/domain"
)

func petsKeyboard(pets []*domain.Pet) tgbotapi.InlineKeyboardMarkup {
	rows := make([][]tgbotapi.InlineKeyboardButton, 0, len(pets))
	for _, p := range pets {
		rows = append(rows, tgbotapi.NewInlineKeyboardRow(
			tgbotapi.NewInlineKeyboardButtonData(
				fmt.Sprintf("%s (ID:%d)", p.Name, p.ID),
				fmt.Sprintf("selectpet:%d", p.ID),
			),
		))
	}
	return tgbotapi.NewInlineKeyboardMarkup(rows...)
}

func kennelsKeyboard(kennels []*domain.Kennel) tgbotapi.InlineKeyboardMarkup {
	rows := make([][]tgbotapi.InlineKeyboardButton, 0, len(kennels))
	for _, k := range kennels {
		rows = append(rows, tgbotapi.NewInlineKeyboardRow(
			tgbotapi.NewInlineKeyboardButtonData(
				fmt.Sprintf("%s (%s) - $%.2f/day", k.Code, k.Size, k.DailyPrice),
				fmt.Sprintf("selectkennel:%d", k.ID),
			),
		))
	}
	return tgbotapi.NewInlineKeyboardMarkup(rows...)
}

func foodsKeyboard(foods []*domain.Food) tgbotapi.InlineKeyboardMarkup {
	rows := make([][]tgbotapi.InlineKeyboardButton, 0, len(foods)+1)
	for _, f := range foods {
		rows = append(rows, tgbotapi.NewInlineKeyboardRow(
			tgbotapi.NewInlineKeyboardButtonData(
				fmt.Sprintf("%s - $%.2f", f.Name, f.UnitPrice),
				fmt.Sprintf("selectfood:%d", f.ID),
			),
		))
	}
	rows = append(rows, tgbotapi.NewInlineKeyboardRow(
		tgbotapi.NewInlineKeyboardButtonData("My own food", "selectfood:own"),
	))
	return tgbotapi.NewInlineKeyboardMarkup(rows...)
}

func calendarKeyboard(year int, month time.Month, tag string) tgbotapi.InlineKeyboardMarkup {
	cells := calendar.Build(year, month, tag)
	rows := make([][]tgbotapi.InlineKeyboardButton, 0, len(cells))
	for _, row := range cells {
		buttons := make([]tgbotapi.InlineKeyboardButton, 0, len(row))
		for _, c := range row {
			buttons = append(buttons, tgbotapi.NewInlineKeyboardButtonData(c.Text, c.Data))
		}
		rows = append(rows, buttons)
	}
	return tgbotapi.NewInlineKeyboardMarkup(rows...)
}

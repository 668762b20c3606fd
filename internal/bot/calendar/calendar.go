package calendar

import (
	"fmt"
	"time"
)

// NoopData значение callback_data для декоративных кнопок
const NoopData = "noop"

// Cell одна кнопка inline-клавиатуры календаря
type Cell struct {
	Text string
	Data string
}

var weekdayHeader = []string{"Mo", "Tu", "We", "Th", "Fr", "Sa", "Su"}

// Build строит inline-календарь на месяц: строка дней недели с понедельника,
// недельные строки с датами и строка навигации с названием месяца посередине
// Кнопка даты несет "<tag>:day:YYYY-MM-DD", стрелки навигации
// "<tag>:month:YYYY-MM", пустые клетки и заголовки NoopData
func Build(year int, month time.Month, tag string) [][]Cell {
	rows := make([][]Cell, 0, 8)

	first := time.Date(year, month, 1, 0, 0, 0, 0, time.UTC)

	header := make([]Cell, 0, 7)
	for _, wd := range weekdayHeader {
		header = append(header, Cell{Text: wd, Data: NoopData})
	}
	rows = append(rows, header)

	daysInMonth := first.AddDate(0, 1, -1).Day()

	// time.Weekday считает с воскресенья, сдвигаем к понедельнику
	offset := (int(first.Weekday()) + 6) % 7

	week := make([]Cell, 0, 7)
	for i := 0; i < offset; i++ {
		week = append(week, Cell{Text: " ", Data: NoopData})
	}
	for d := 1; d <= daysInMonth; d++ {
		date := time.Date(year, month, d, 0, 0, 0, 0, time.UTC)
		week = append(week, Cell{
			Text: fmt.Sprintf("%d", d),
			Data: fmt.Sprintf("%s:day:%s", tag, date.Format("2006-01-02")),
		})
		if len(week) == 7 {
			rows = append(rows, week)
			week = make([]Cell, 0, 7)
		}
	}
	if len(week) > 0 {
		for len(week) < 7 {
			week = append(week, Cell{Text: " ", Data: NoopData})
		}
		rows = append(rows, week)
	}

	prev := first.AddDate(0, -1, 0)
	next := first.AddDate(0, 1, 0)
	rows = append(rows, []Cell{
		{Text: "<", Data: fmt.Sprintf("%s:month:%s", tag, prev.Format("2006-01"))},
		{Text: first.Format("January 2006"), Data: NoopData},
		{Text: ">", Data: fmt.Sprintf("%s:month:%s", tag, next.Format("2006-01"))},
	})

	return rows
}

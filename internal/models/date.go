package models

import "time"

// Today возвращает сегодняшнюю местную дату в полночь UTC, в таком виде даты хранятся в колонках date.
func Today() time.Time {
	return DateOf(time.Now())
}

// DateOf отбрасывает время, сохраняя календарный день в часовом поясе t.
func DateOf(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

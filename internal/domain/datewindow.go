package domain

import "time"

// DateWindow непрерывная последовательность календарных дат, начиная с сегодня
// Пересчитывается на каждую загрузку доски бронирования, не персистится
type DateWindow []time.Time

// NewDateWindow строит окно из DateWindowDays дат, начиная с дня now
func NewDateWindow(now time.Time) DateWindow {
	today := TruncateToDay(now)
	window := make(DateWindow, DateWindowDays)
	for i := range window {
		window[i] = today.AddDate(0, 0, i)
	}
	return window
}

// First первая дата окна
func (w DateWindow) First() time.Time {
	return w[0]
}

// Last последняя дата окна
func (w DateWindow) Last() time.Time {
	return w[len(w)-1]
}

// Contains проверяет, попадает ли дата в окно
func (w DateWindow) Contains(date time.Time) bool {
	for _, d := range w {
		if IsSameDay(d, date) {
			return true
		}
	}
	return false
}

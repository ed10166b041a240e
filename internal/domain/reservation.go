package domain

import "time"

// Reservation represents occupancy of one desk on one calendar date for one time slot
type Reservation struct {
	ID     string
	DeskID string
	UserID string
	Date   time.Time // calendar day, no time component
	Slot   TimeSlot

	// Snapshot of the booking user's chosen name at booking time
	DisplayName string

	CreatedAt time.Time
}

// IsOwnedBy returns true if the reservation belongs to the given user
func (r *Reservation) IsOwnedBy(userID string) bool {
	return r.UserID == userID
}

// IsOnDate returns true if the reservation occupies the given calendar day
func (r *Reservation) IsOnDate(date time.Time) bool {
	return IsSameDay(r.Date, date)
}

// ReservationFilter фильтр для выборки бронирований
type ReservationFilter struct {
	DeskIDs   []string   // Обязательный параметр, пустой список - пустой результат
	StartDate *time.Time // Начало периода (опционально)
	EndDate   *time.Time // Конец периода (опционально)
}

// IsSameDay проверяет, что две даты относятся к одному и тому же дню
func IsSameDay(date1, date2 time.Time) bool {
	y1, m1, d1 := date1.Date()
	y2, m2, d2 := date2.Date()
	return y1 == y2 && m1 == m2 && d1 == d2
}

// TruncateToDay обнуляет временную часть даты
func TruncateToDay(date time.Time) time.Time {
	return time.Date(date.Year(), date.Month(), date.Day(), 0, 0, 0, 0, date.Location())
}

package get_booking_board

import (
	"time"

	"github.com/m04kA/SMC-DeskBookingService/internal/domain"
)

// Request запрос доски бронирования офиса
type Request struct {
	OfficeSpaceID string

	// UserID пользователь, для которого собирается доска
	// Пустое значение допустимо: доска доступна и без аутентификации,
	// но флаги Mine будут false
	UserID string
}

// Response доска бронирования: окно дат, строки по столам и разметка офиса
type Response struct {
	OfficeSpaceID   string
	OfficeSpaceName string
	Dates           []time.Time
	Desks           []DeskRow
	Shapes          []ShapeView
}

// DeskRow строка доски: один стол и его ячейки по датам окна
type DeskRow struct {
	DeskID string
	Name   string
	Cells  []Cell
}

// Cell ячейка доски: состояние одного стола на одну дату
type Cell struct {
	Date            time.Time
	MorningBooked   bool
	AfternoonBooked bool
	FullDayBooked   bool
	Offered         []domain.TimeSlot
	Reservations    []ReservationView
}

// ReservationView бронирование в ячейке доски
type ReservationView struct {
	ID          string
	Slot        domain.TimeSlot
	DisplayName string

	// Mine true, если бронирование принадлежит запрашивающему пользователю
	Mine bool
}

// ShapeView фигура стола на карте офиса с флагом занятости на сегодня
type ShapeView struct {
	domain.DeskShape

	// OccupiedToday закрашивает фигуру, если на сегодня у стола
	// есть хотя бы одно бронирование
	OccupiedToday bool
}

package domain

import "errors"

// TimeSlot represents the bookable part of a day
type TimeSlot string

const (
	SlotMorning   TimeSlot = "morning"
	SlotAfternoon TimeSlot = "afternoon"
	SlotFullDay   TimeSlot = "full_day"
)

// ErrUnknownTimeSlot возвращается при попытке распарсить неизвестный слот
var ErrUnknownTimeSlot = errors.New("unknown time slot")

// AllTimeSlots все слоты в порядке предложения на доске бронирования
var AllTimeSlots = []TimeSlot{SlotMorning, SlotAfternoon, SlotFullDay}

// IsValid returns true if the slot is one of morning, afternoon or full_day
func (s TimeSlot) IsValid() bool {
	return s == SlotMorning || s == SlotAfternoon || s == SlotFullDay
}

// OccupiesMorning returns true if the slot covers the morning half of the day
func (s TimeSlot) OccupiesMorning() bool {
	return s == SlotMorning || s == SlotFullDay
}

// OccupiesAfternoon returns true if the slot covers the afternoon half of the day
func (s TimeSlot) OccupiesAfternoon() bool {
	return s == SlotAfternoon || s == SlotFullDay
}

// ParseTimeSlot конвертирует строку в TimeSlot с валидацией
func ParseTimeSlot(s string) (TimeSlot, error) {
	slot := TimeSlot(s)
	if !slot.IsValid() {
		return "", ErrUnknownTimeSlot
	}
	return slot, nil
}

package domain

// DayAvailability результат движка доступности слотов для одной пары (стол, дата)
// Чистая производная от набора бронирований, без скрытого состояния
type DayAvailability struct {
	MorningBooked   bool
	AfternoonBooked bool
	FullDayBooked   bool

	// Offered слоты, которые можно забронировать, в порядке AllTimeSlots
	Offered []TimeSlot
}

// CanBook returns true if the given slot is among the offered actions
func (a *DayAvailability) CanBook(slot TimeSlot) bool {
	for _, offered := range a.Offered {
		if offered == slot {
			return true
		}
	}
	return false
}

// ComputeDayAvailability вычисляет доступность слотов по набору бронирований
// одного стола на одну дату
//
// Правила (центральный бизнес-инвариант):
// - full_day исключает любые другие бронирования на этот стол/дату
// - morning и afternoon сосуществуют друг с другом, но не со своими дубликатами
// - full_day предлагается, только пока не занята ни одна половина дня
func ComputeDayAvailability(reservations []*Reservation) DayAvailability {
	a := DayAvailability{}

	for _, r := range reservations {
		if r.Slot == SlotFullDay {
			a.FullDayBooked = true
		}
		if r.Slot.OccupiesMorning() {
			a.MorningBooked = true
		}
		if r.Slot.OccupiesAfternoon() {
			a.AfternoonBooked = true
		}
	}

	if a.FullDayBooked {
		a.Offered = []TimeSlot{}
		return a
	}

	offered := make([]TimeSlot, 0, len(AllTimeSlots))
	if !a.MorningBooked {
		offered = append(offered, SlotMorning)
	}
	if !a.AfternoonBooked {
		offered = append(offered, SlotAfternoon)
	}
	if !a.MorningBooked && !a.AfternoonBooked {
		offered = append(offered, SlotFullDay)
	}
	a.Offered = offered

	return a
}

// CanCancel проверка владения: отменить бронирование может только его автор
func CanCancel(reservation *Reservation, userID string) bool {
	return userID != "" && reservation.IsOwnedBy(userID)
}

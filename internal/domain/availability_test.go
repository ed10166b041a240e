package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func res(slot TimeSlot, userID string) *Reservation {
	return &Reservation{
		ID:     "res-" + string(slot),
		DeskID: "desk-1",
		UserID: userID,
		Date:   time.Date(2026, 8, 31, 0, 0, 0, 0, time.UTC),
		Slot:   slot,
	}
}

func TestComputeDayAvailability_EmptyDay(t *testing.T) {
	a := ComputeDayAvailability(nil)

	assert.False(t, a.MorningBooked)
	assert.False(t, a.AfternoonBooked)
	assert.False(t, a.FullDayBooked)
	assert.Equal(t, []TimeSlot{SlotMorning, SlotAfternoon, SlotFullDay}, a.Offered)
}

func TestComputeDayAvailability_FullDayBlocksEverything(t *testing.T) {
	a := ComputeDayAvailability([]*Reservation{res(SlotFullDay, "u1")})

	assert.True(t, a.MorningBooked)
	assert.True(t, a.AfternoonBooked)
	assert.True(t, a.FullDayBooked)
	assert.Empty(t, a.Offered)
}

func TestComputeDayAvailability_MorningTaken(t *testing.T) {
	a := ComputeDayAvailability([]*Reservation{res(SlotMorning, "u1")})

	assert.True(t, a.MorningBooked)
	assert.False(t, a.AfternoonBooked)
	assert.False(t, a.FullDayBooked)

	// Занятая половина дня убирает и full_day
	assert.Equal(t, []TimeSlot{SlotAfternoon}, a.Offered)
	assert.False(t, a.CanBook(SlotMorning))
	assert.False(t, a.CanBook(SlotFullDay))
	assert.True(t, a.CanBook(SlotAfternoon))
}

func TestComputeDayAvailability_AfternoonTaken(t *testing.T) {
	a := ComputeDayAvailability([]*Reservation{res(SlotAfternoon, "u1")})

	assert.Equal(t, []TimeSlot{SlotMorning}, a.Offered)
}

func TestComputeDayAvailability_BothHalvesTaken(t *testing.T) {
	a := ComputeDayAvailability([]*Reservation{
		res(SlotMorning, "u1"),
		res(SlotAfternoon, "u2"),
	})

	assert.True(t, a.MorningBooked)
	assert.True(t, a.AfternoonBooked)
	assert.False(t, a.FullDayBooked)
	assert.Empty(t, a.Offered)
}

func TestComputeDayAvailability_Idempotent(t *testing.T) {
	reservations := []*Reservation{res(SlotMorning, "u1")}

	first := ComputeDayAvailability(reservations)
	second := ComputeDayAvailability(reservations)

	assert.Equal(t, first, second)
}

func TestCanCancel(t *testing.T) {
	r := res(SlotMorning, "owner")

	assert.True(t, CanCancel(r, "owner"))
	assert.False(t, CanCancel(r, "other"))
	assert.False(t, CanCancel(r, ""))
}

func TestParseTimeSlot(t *testing.T) {
	for _, raw := range []string{"morning", "afternoon", "full_day"} {
		slot, err := ParseTimeSlot(raw)
		require.NoError(t, err)
		assert.Equal(t, raw, string(slot))
	}

	_, err := ParseTimeSlot("evening")
	assert.ErrorIs(t, err, ErrUnknownTimeSlot)
}

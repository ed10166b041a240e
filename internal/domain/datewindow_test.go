package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewDateWindow(t *testing.T) {
	now := time.Date(2026, 8, 31, 15, 42, 7, 0, time.UTC)
	window := NewDateWindow(now)

	require.Len(t, window, DateWindowDays)

	// Первая дата - сегодня с обнуленным временем
	assert.Equal(t, time.Date(2026, 8, 31, 0, 0, 0, 0, time.UTC), window.First())
	assert.Equal(t, time.Date(2026, 9, 6, 0, 0, 0, 0, time.UTC), window.Last())

	// Даты идут подряд без дырок
	for i := 1; i < len(window); i++ {
		assert.Equal(t, window[i-1].AddDate(0, 0, 1), window[i])
	}
}

func TestDateWindow_Contains(t *testing.T) {
	now := time.Date(2026, 8, 31, 9, 0, 0, 0, time.UTC)
	window := NewDateWindow(now)

	// Время внутри дня не влияет на попадание
	assert.True(t, window.Contains(time.Date(2026, 8, 31, 23, 59, 0, 0, time.UTC)))
	assert.True(t, window.Contains(time.Date(2026, 9, 6, 0, 0, 0, 0, time.UTC)))

	assert.False(t, window.Contains(time.Date(2026, 8, 30, 12, 0, 0, 0, time.UTC)))
	assert.False(t, window.Contains(time.Date(2026, 9, 7, 0, 0, 0, 0, time.UTC)))
}

func TestIsSameDay(t *testing.T) {
	a := time.Date(2026, 8, 31, 0, 0, 0, 0, time.UTC)
	b := time.Date(2026, 8, 31, 23, 59, 59, 0, time.UTC)

	assert.True(t, IsSameDay(a, b))
	assert.False(t, IsSameDay(a, b.AddDate(0, 0, 1)))
}

func TestNormalizeRotation(t *testing.T) {
	assert.Equal(t, 0.0, NormalizeRotation(0))
	assert.Equal(t, 0.0, NormalizeRotation(360))
	assert.Equal(t, 90.0, NormalizeRotation(450))
	assert.Equal(t, 270.0, NormalizeRotation(-90))
}

func TestDeskShape_MatchesDesk(t *testing.T) {
	desk := &Desk{ID: "desk-1", Name: "Desk 1"}

	// desk_id выигрывает у совпадения имен
	withKey := &DeskShape{DeskID: "desk-1", Name: "renamed"}
	assert.True(t, withKey.MatchesDesk(desk))

	wrongKey := &DeskShape{DeskID: "desk-2", Name: "Desk 1"}
	assert.False(t, wrongKey.MatchesDesk(desk))

	// Разметки без ключа связываются по имени
	byName := &DeskShape{Name: "Desk 1"}
	assert.True(t, byName.MatchesDesk(desk))

	otherName := &DeskShape{Name: "Desk 2"}
	assert.False(t, otherName.MatchesDesk(desk))
}

package domain

import "math"

// DeskShape represents one rectangle on the office map
type DeskShape struct {
	// ID стабильный локальный идентификатор фигуры внутри разметки.
	// НЕ совпадает с идентификатором стола в хранилище (см. DeskID)
	ID string

	X      float64 // top-left position
	Y      float64
	Width  float64 // must be > 0
	Height float64 // must be > 0

	Fill     string // informational color
	Name     string // display label
	Rotation float64 // degrees, wraps modulo 360

	// DeskID идентификатор стола в хранилище.
	// Опционален: старые разметки его не содержат, тогда стол и фигура
	// связываются по совпадению Name
	DeskID string
}

// NormalizeRotation приводит угол к диапазону [0, 360)
func NormalizeRotation(degrees float64) float64 {
	r := math.Mod(degrees, 360)
	if r < 0 {
		r += 360
	}
	return r
}

// MatchesDesk returns true if the shape refers to the given desk.
// The desk_id foreign key wins; name matching is kept as a compatibility
// fallback for layout documents written before the key existed
func (s *DeskShape) MatchesDesk(desk *Desk) bool {
	if s.DeskID != "" {
		return s.DeskID == desk.ID
	}
	return s.Name == desk.Name
}

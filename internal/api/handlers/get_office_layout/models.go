package get_office_layout

import (
	"github.com/m04kA/SMC-DeskBookingService/internal/domain"
)

// ShapeResponse HTTP модель одной фигуры стола
// Повторяет wire-форму layout document-а
type ShapeResponse struct {
	ID       string  `json:"id"`
	X        float64 `json:"x"`
	Y        float64 `json:"y"`
	Width    float64 `json:"width"`
	Height   float64 `json:"height"`
	Fill     string  `json:"fill"`
	Name     string  `json:"name"`
	Rotation float64 `json:"rotation"`
	DeskID   string  `json:"desk_id,omitempty"`
}

// LayoutResponse HTTP response model
type LayoutResponse struct {
	Shapes []ShapeResponse `json:"shapes"`
}

// FromDomain конвертирует фигуры в HTTP response
func FromDomain(shapes []domain.DeskShape) *LayoutResponse {
	result := make([]ShapeResponse, 0, len(shapes))
	for _, s := range shapes {
		result = append(result, ShapeResponse{
			ID:       s.ID,
			X:        s.X,
			Y:        s.Y,
			Width:    s.Width,
			Height:   s.Height,
			Fill:     s.Fill,
			Name:     s.Name,
			Rotation: s.Rotation,
			DeskID:   s.DeskID,
		})
	}
	return &LayoutResponse{Shapes: result}
}

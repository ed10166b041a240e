// Package layout кодек layout document-а: сериализованной формы всех фигур
// столов офиса. Чистое преобразование без разделяемого состояния
package layout

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/m04kA/SMC-DeskBookingService/internal/domain"
)

// shapeDoc wire-форма одной фигуры внутри layout document
// Обязательные поля - указатели, чтобы отличать отсутствующее поле от нулевого
type shapeDoc struct {
	ID       *string  `json:"id"`
	X        *float64 `json:"x"`
	Y        *float64 `json:"y"`
	Width    *float64 `json:"width"`
	Height   *float64 `json:"height"`
	Fill     string   `json:"fill"`
	Name     string   `json:"name"`
	Rotation *float64 `json:"rotation"`
	DeskID   string   `json:"desk_id,omitempty"`
}

// Parse декодирует layout document в последовательность фигур
// Пустой или отсутствующий документ эквивалентен "[]" и НЕ является ошибкой
func Parse(doc string) ([]domain.DeskShape, error) {
	if strings.TrimSpace(doc) == "" {
		return []domain.DeskShape{}, nil
	}

	var raw []json.RawMessage
	if err := json.Unmarshal([]byte(doc), &raw); err != nil {
		return nil, fmt.Errorf("%w: not a JSON array: %v", ErrMalformedLayout, err)
	}

	shapes := make([]domain.DeskShape, 0, len(raw))
	seen := make(map[string]struct{}, len(raw))

	for i, element := range raw {
		var sd shapeDoc
		if err := json.Unmarshal(element, &sd); err != nil {
			return nil, fmt.Errorf("%w: element %d is not an object: %v", ErrMalformedLayout, i, err)
		}

		shape, err := sd.toDomain()
		if err != nil {
			return nil, fmt.Errorf("%w: element %d: %v", ErrMalformedLayout, i, err)
		}

		if _, dup := seen[shape.ID]; dup {
			return nil, fmt.Errorf("%w: duplicate shape id %q", ErrMalformedLayout, shape.ID)
		}
		seen[shape.ID] = struct{}{}

		shapes = append(shapes, shape)
	}

	return shapes, nil
}

// Serialize кодирует последовательность фигур в layout document
// Порядок сохраняется; Parse(Serialize(shapes)) == shapes (round-trip закон)
func Serialize(shapes []domain.DeskShape) (string, error) {
	docs := make([]shapeDoc, len(shapes))
	for i, shape := range shapes {
		if err := validateShape(&shape); err != nil {
			return "", err
		}
		s := shape
		docs[i] = shapeDoc{
			ID:       &s.ID,
			X:        &s.X,
			Y:        &s.Y,
			Width:    &s.Width,
			Height:   &s.Height,
			Fill:     s.Fill,
			Name:     s.Name,
			Rotation: &s.Rotation,
			DeskID:   s.DeskID,
		}
	}

	data, err := json.Marshal(docs)
	if err != nil {
		return "", fmt.Errorf("%w: marshal failed: %v", ErrInvalidShape, err)
	}

	return string(data), nil
}

func (d *shapeDoc) toDomain() (domain.DeskShape, error) {
	if d.ID == nil || *d.ID == "" {
		return domain.DeskShape{}, fmt.Errorf("missing or empty id")
	}
	if d.X == nil || d.Y == nil {
		return domain.DeskShape{}, fmt.Errorf("missing position")
	}
	if d.Width == nil || d.Height == nil {
		return domain.DeskShape{}, fmt.Errorf("missing size")
	}
	if *d.Width <= 0 || *d.Height <= 0 {
		return domain.DeskShape{}, fmt.Errorf("non-positive size %gx%g", *d.Width, *d.Height)
	}

	rotation := 0.0
	if d.Rotation != nil {
		rotation = domain.NormalizeRotation(*d.Rotation)
	}

	return domain.DeskShape{
		ID:       *d.ID,
		X:        *d.X,
		Y:        *d.Y,
		Width:    *d.Width,
		Height:   *d.Height,
		Fill:     d.Fill,
		Name:     d.Name,
		Rotation: rotation,
		DeskID:   d.DeskID,
	}, nil
}

func validateShape(s *domain.DeskShape) error {
	if s.ID == "" {
		return fmt.Errorf("%w: empty id", ErrInvalidShape)
	}
	if s.Width <= 0 || s.Height <= 0 {
		return fmt.Errorf("%w: non-positive size %gx%g", ErrInvalidShape, s.Width, s.Height)
	}
	return nil
}

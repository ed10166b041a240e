package create_desk

import (
	"github.com/m04kA/SMC-DeskBookingService/internal/service/layouteditor"
)

// CreateDeskRequest HTTP request model
// Пустое имя допустимо: сервис подставит автоматическое "Desk {n}"
type CreateDeskRequest struct {
	Name string `json:"name"`
}

// ShapeModel фигура созданного стола
type ShapeModel struct {
	ID       string  `json:"id"`
	X        float64 `json:"x"`
	Y        float64 `json:"y"`
	Width    float64 `json:"width"`
	Height   float64 `json:"height"`
	Fill     string  `json:"fill"`
	Rotation float64 `json:"rotation"`
}

// DeskResponse HTTP response model
type DeskResponse struct {
	ID            string     `json:"id"`
	OfficeSpaceID string     `json:"officeSpaceId"`
	Name          string     `json:"name"`
	Shape         ShapeModel `json:"shape"`
}

// FromEditorObject конвертирует объект поверхности редактора в HTTP response
func FromEditorObject(officeSpaceID string, obj *layouteditor.Object) *DeskResponse {
	resp := &DeskResponse{
		ID:            obj.DeskID,
		OfficeSpaceID: officeSpaceID,
		Name:          obj.Name,
	}
	if obj.Rect != nil {
		resp.Shape = ShapeModel{
			ID:       obj.ID,
			X:        obj.Rect.X,
			Y:        obj.Rect.Y,
			Width:    obj.Rect.Width,
			Height:   obj.Rect.Height,
			Fill:     obj.Rect.Fill,
			Rotation: obj.Rect.Rotation,
		}
	}
	return resp
}

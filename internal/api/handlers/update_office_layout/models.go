package update_office_layout

import (
	"encoding/json"
	"fmt"
)

// UpdateLayoutRequest HTTP request model
// Фигуры принимаются как сырые JSON объекты и валидируются кодеком
// layout document-а на стороне сервиса
type UpdateLayoutRequest struct {
	Shapes []json.RawMessage `json:"shapes"`
}

// ToLayoutDocument собирает из фигур запроса layout document
func (r *UpdateLayoutRequest) ToLayoutDocument() (string, error) {
	if r.Shapes == nil {
		return "[]", nil
	}
	data, err := json.Marshal(r.Shapes)
	if err != nil {
		return "", fmt.Errorf("failed to marshal shapes: %w", err)
	}
	return string(data), nil
}

package list_office_spaces

import (
	"time"

	"github.com/m04kA/SMC-DeskBookingService/internal/domain"
)

// OfficeSpaceResponse HTTP response model
type OfficeSpaceResponse struct {
	ID        string `json:"id"`
	Name      string `json:"name"`
	DeskCount int    `json:"deskCount"`
	CreatedAt string `json:"createdAt"`
}

// ListResponse HTTP response model
type ListResponse struct {
	OfficeSpaces []OfficeSpaceResponse `json:"officeSpaces"`
}

// FromDomain конвертирует доменные модели в HTTP response
func FromDomain(summaries []*domain.OfficeSpaceSummary) *ListResponse {
	result := make([]OfficeSpaceResponse, 0, len(summaries))
	for _, s := range summaries {
		result = append(result, OfficeSpaceResponse{
			ID:        s.ID,
			Name:      s.Name,
			DeskCount: s.DeskCount,
			CreatedAt: s.CreatedAt.Format(time.RFC3339),
		})
	}
	return &ListResponse{OfficeSpaces: result}
}

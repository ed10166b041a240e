package create_office_space

import (
	"time"

	"github.com/m04kA/SMC-DeskBookingService/internal/domain"
)

// CreateOfficeSpaceRequest HTTP request model
type CreateOfficeSpaceRequest struct {
	Name string `json:"name"`
}

// OfficeSpaceResponse HTTP response model
type OfficeSpaceResponse struct {
	ID        string `json:"id"`
	Name      string `json:"name"`
	CreatedAt string `json:"createdAt"`
}

// FromDomain конвертирует доменную модель в HTTP response
func FromDomain(office *domain.OfficeSpace) *OfficeSpaceResponse {
	return &OfficeSpaceResponse{
		ID:        office.ID,
		Name:      office.Name,
		CreatedAt: office.CreatedAt.Format(time.RFC3339),
	}
}

package domain

// Desk represents a bookable resource belonging to exactly one office space
type Desk struct {
	ID            string
	OfficeSpaceID string
	Name          string
}

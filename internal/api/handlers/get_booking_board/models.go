package get_booking_board

import (
	"github.com/m04kA/SMC-DeskBookingService/internal/domain"
	getBoard "github.com/m04kA/SMC-DeskBookingService/internal/usecase/get_booking_board"
)

// BoardResponse HTTP response model
type BoardResponse struct {
	OfficeSpaceID   string         `json:"officeSpaceId"`
	OfficeSpaceName string         `json:"officeSpaceName"`
	Dates           []string       `json:"dates"`
	Desks           []DeskRowModel `json:"desks"`
	Shapes          []ShapeModel   `json:"shapes"`
}

// DeskRowModel строка доски по одному столу
type DeskRowModel struct {
	DeskID string      `json:"deskId"`
	Name   string      `json:"name"`
	Cells  []CellModel `json:"cells"`
}

// CellModel состояние стола на одну дату
type CellModel struct {
	Date            string             `json:"date"`
	MorningBooked   bool               `json:"morningBooked"`
	AfternoonBooked bool               `json:"afternoonBooked"`
	FullDayBooked   bool               `json:"fullDayBooked"`
	Offered         []string           `json:"offered"`
	Reservations    []ReservationModel `json:"reservations"`
}

// ReservationModel бронирование в ячейке доски
type ReservationModel struct {
	ID          string `json:"id"`
	Slot        string `json:"slot"`
	DisplayName string `json:"displayName"`
	Mine        bool   `json:"mine"`
}

// ShapeModel фигура стола на карте офиса
type ShapeModel struct {
	ID            string  `json:"id"`
	X             float64 `json:"x"`
	Y             float64 `json:"y"`
	Width         float64 `json:"width"`
	Height        float64 `json:"height"`
	Fill          string  `json:"fill"`
	Name          string  `json:"name"`
	Rotation      float64 `json:"rotation"`
	DeskID        string  `json:"desk_id,omitempty"`
	OccupiedToday bool    `json:"occupiedToday"`
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *getBoard.Response) *BoardResponse {
	dates := make([]string, 0, len(resp.Dates))
	for _, d := range resp.Dates {
		dates = append(dates, d.Format(domain.DateFormat))
	}

	desks := make([]DeskRowModel, 0, len(resp.Desks))
	for _, row := range resp.Desks {
		cells := make([]CellModel, 0, len(row.Cells))
		for _, cell := range row.Cells {
			offered := make([]string, 0, len(cell.Offered))
			for _, slot := range cell.Offered {
				offered = append(offered, string(slot))
			}

			reservations := make([]ReservationModel, 0, len(cell.Reservations))
			for _, res := range cell.Reservations {
				reservations = append(reservations, ReservationModel{
					ID:          res.ID,
					Slot:        string(res.Slot),
					DisplayName: res.DisplayName,
					Mine:        res.Mine,
				})
			}

			cells = append(cells, CellModel{
				Date:            cell.Date.Format(domain.DateFormat),
				MorningBooked:   cell.MorningBooked,
				AfternoonBooked: cell.AfternoonBooked,
				FullDayBooked:   cell.FullDayBooked,
				Offered:         offered,
				Reservations:    reservations,
			})
		}

		desks = append(desks, DeskRowModel{
			DeskID: row.DeskID,
			Name:   row.Name,
			Cells:  cells,
		})
	}

	shapes := make([]ShapeModel, 0, len(resp.Shapes))
	for _, s := range resp.Shapes {
		shapes = append(shapes, ShapeModel{
			ID:            s.ID,
			X:             s.X,
			Y:             s.Y,
			Width:         s.Width,
			Height:        s.Height,
			Fill:          s.Fill,
			Name:          s.Name,
			Rotation:      s.Rotation,
			DeskID:        s.DeskID,
			OccupiedToday: s.OccupiedToday,
		})
	}

	return &BoardResponse{
		OfficeSpaceID:   resp.OfficeSpaceID,
		OfficeSpaceName: resp.OfficeSpaceName,
		Dates:           dates,
		Desks:           desks,
		Shapes:          shapes,
	}
}

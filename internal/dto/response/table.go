package response

import (
	"time"

	"wedding-planner/internal/data/entity"
)

type Position struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

type TableResponse struct {
	ID           string            `json:"id"`
	WeddingID    string            `json:"wedding_id"`
	Name         string            `json:"name"`
	Shape        entity.TableShape `json:"shape"`
	Capacity     int               `json:"capacity"`
	Location     *string           `json:"location,omitempty"`
	Position     *Position         `json:"position,omitempty"`
	Notes        *string           `json:"notes,omitempty"`
	DisplayOrder int               `json:"display_order"`
	CreatedAt    time.Time         `json:"created_at"`
	UpdatedAt    time.Time         `json:"updated_at"`
}

// TableWithOccupantsResponse is one row of the table list.
type TableWithOccupantsResponse struct {
	TableResponse
	Occupied  int        `json:"occupied"`
	Available int        `json:"available"`
	Occupants []Occupant `json:"occupants"`
}

type DeleteTableResponse struct {
	TableID    string `json:"table_id"`
	Unassigned int    `json:"unassigned"`
}

func TableToResponse(t *entity.Table) TableResponse {
	resp := TableResponse{
		ID:           t.ID.String(),
		WeddingID:    t.WeddingID.String(),
		Name:         t.Name,
		Shape:        t.Shape,
		Capacity:     t.Capacity,
		Location:     t.Location,
		Notes:        t.Notes,
		DisplayOrder: t.DisplayOrder,
		CreatedAt:    t.CreatedAt,
		UpdatedAt:    t.UpdatedAt,
	}
	if t.PositionX != nil && t.PositionY != nil {
		resp.Position = &Position{X: *t.PositionX, Y: *t.PositionY}
	}
	return resp
}

package response

import (
	"time"

	"wedding-planner/internal/data/entity"
)

type WeddingResponse struct {
	ID        string    `json:"id"`
	Title     string    `json:"title"`
	EventDate *string   `json:"event_date,omitempty"`
	Venue     *string   `json:"venue,omitempty"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func WeddingToResponse(w *entity.Wedding) WeddingResponse {
	resp := WeddingResponse{
		ID:        w.ID.String(),
		Title:     w.Title,
		Venue:     w.Venue,
		CreatedAt: w.CreatedAt,
		UpdatedAt: w.UpdatedAt,
	}
	if w.EventDate != nil {
		date := w.EventDate.Format("2006-01-02")
		resp.EventDate = &date
	}
	return resp
}

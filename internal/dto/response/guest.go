package response

import (
	"time"

	"wedding-planner/internal/data/entity"
)

type GuestResponse struct {
	ID         string            `json:"id"`
	WeddingID  string            `json:"wedding_id"`
	Name       string            `json:"name"`
	Email      *string           `json:"email,omitempty"`
	RSVPStatus entity.RSVPStatus `json:"rsvp_status"`
	Group      string            `json:"group"`
	TableID    *string           `json:"table_id"`
	SeatNumber *int              `json:"seat_number"`
	CreatedAt  time.Time         `json:"created_at"`
}

func GuestToResponse(g *entity.Guest) GuestResponse {
	resp := GuestResponse{
		ID:         g.ID.String(),
		WeddingID:  g.WeddingID.String(),
		Name:       g.Name,
		Email:      g.Email,
		RSVPStatus: g.RSVPStatus,
		Group:      g.GroupLabel,
		SeatNumber: g.SeatNumber,
		CreatedAt:  g.CreatedAt,
	}
	if g.TableID != nil {
		tableID := g.TableID.String()
		resp.TableID = &tableID
	}
	return resp
}

func GuestsToResponse(guests []*entity.Guest) []GuestResponse {
	out := make([]GuestResponse, len(guests))
	for i, g := range guests {
		out[i] = GuestToResponse(g)
	}
	return out
}

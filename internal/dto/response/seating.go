package response

import "wedding-planner/internal/data/entity"

type Occupant struct {
	GuestID    string `json:"guest_id"`
	Name       string `json:"name"`
	Group      string `json:"group,omitempty"`
	SeatNumber *int   `json:"seat_number"`
}

type OccupancyResponse struct {
	TableID   string     `json:"table_id"`
	Capacity  int        `json:"capacity"`
	Count     int        `json:"count"`
	Occupants []Occupant `json:"occupants"`
}

// SeatAssignment is one guest-to-seat mapping.
type SeatAssignment struct {
	GuestID    string `json:"guest_id"`
	TableID    string `json:"table_id"`
	SeatNumber *int   `json:"seat_number"`
}

type AutoAssignResponse struct {
	Seated   []SeatAssignment `json:"seated"`
	Unseated []string         `json:"unseated"`
}

type PositionsResponse struct {
	Updated int `json:"updated"`
}

func OccupantFromGuest(g *entity.Guest) Occupant {
	return Occupant{
		GuestID:    g.ID.String(),
		Name:       g.Name,
		Group:      g.GroupLabel,
		SeatNumber: g.SeatNumber,
	}
}

func OccupantsFromGuests(guests []*entity.Guest) []Occupant {
	out := make([]Occupant, len(guests))
	for i, g := range guests {
		out[i] = OccupantFromGuest(g)
	}
	return out
}

package request

type AssignSeatRequest struct {
	GuestID    string `json:"guest_id" validate:"required,uuid"`
	SeatNumber *int   `json:"seat_number,omitempty" validate:"omitempty,min=1"`
}

type AutoAssignRequest struct {
	WeddingID string `json:"wedding_id" validate:"required,uuid"`
}

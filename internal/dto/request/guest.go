package request

type CreateGuestRequest struct {
	Name       string  `json:"name" validate:"required,notblank,max=150"`
	Email      *string `json:"email,omitempty" validate:"omitempty,email,max=255"`
	RSVPStatus string  `json:"rsvp_status,omitempty" validate:"omitempty,rsvp_status"`
	Group      string  `json:"group,omitempty" validate:"max=100"`
}

// UpdateGuestRequest never carries seating fields; seats move through the ledger.
type UpdateGuestRequest struct {
	Name       *string `json:"name,omitempty" validate:"omitempty,notblank,max=150"`
	Email      *string `json:"email,omitempty" validate:"omitempty,email,max=255"`
	RSVPStatus *string `json:"rsvp_status,omitempty" validate:"omitempty,rsvp_status"`
	Group      *string `json:"group,omitempty" validate:"omitempty,max=100"`
}

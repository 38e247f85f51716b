package request

type CreateWeddingRequest struct {
	Title     string  `json:"title" validate:"required,notblank,max=200"`
	EventDate *string `json:"event_date,omitempty" validate:"omitempty,datetime=2006-01-02"`
	Venue     *string `json:"venue,omitempty" validate:"omitempty,max=200"`
}

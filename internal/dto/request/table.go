package request

type CreateTableRequest struct {
	Name     string  `json:"name" validate:"required,notblank,max=100"`
	Shape    string  `json:"shape,omitempty" validate:"omitempty,table_shape"`
	Capacity int     `json:"capacity" validate:"min=1,max=100"`
	Location *string `json:"location,omitempty" validate:"omitempty,max=200"`
	Notes    *string `json:"notes,omitempty"`
}

// UpdateTableRequest is a partial update; nil fields are left unchanged.
type UpdateTableRequest struct {
	Name         *string  `json:"name,omitempty" validate:"omitempty,notblank,max=100"`
	Shape        *string  `json:"shape,omitempty" validate:"omitempty,table_shape"`
	Capacity     *int     `json:"capacity,omitempty" validate:"omitempty,min=1,max=100"`
	Location     *string  `json:"location,omitempty" validate:"omitempty,max=200"`
	Notes        *string  `json:"notes,omitempty"`
	DisplayOrder *int     `json:"display_order,omitempty" validate:"omitempty,min=0"`
	PositionX    *float64 `json:"position_x,omitempty"`
	PositionY    *float64 `json:"position_y,omitempty"`
}

type TablePosition struct {
	TableID string  `json:"table_id" validate:"required,uuid"`
	X       float64 `json:"x"`
	Y       float64 `json:"y"`
}

type UpdatePositionsRequest struct {
	Positions []TablePosition `json:"positions" validate:"required,min=1,dive"`
}

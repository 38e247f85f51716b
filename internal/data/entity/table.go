package entity

import "github.com/google/uuid"

type TableShape string

const (
	ShapeRound       TableShape = "round"
	ShapeRectangular TableShape = "rectangular"
	ShapeSquare      TableShape = "square"
	ShapeOval        TableShape = "oval"
	ShapeUShape      TableShape = "u_shape"
	ShapeHeadTable   TableShape = "head_table"
)

const (
	MinTableCapacity = 1
	MaxTableCapacity = 100
)

// Table is a seating table. Occupancy is never stored here; it is
// counted from guests.table_id whenever it is needed.
type Table struct {
	Base
	WeddingID    uuid.UUID  `db:"wedding_id"`
	Name         string     `db:"name"`
	Shape        TableShape `db:"shape"`
	Capacity     int        `db:"capacity"`
	Location     *string    `db:"location"`
	PositionX    *float64   `db:"position_x"`
	PositionY    *float64   `db:"position_y"`
	Notes        *string    `db:"notes"`
	DisplayOrder int        `db:"display_order"`
}

package entity

import (
	"time"

	"github.com/google/uuid"
)

// Wedding is the tenant: every guest and table hangs off one.
type Wedding struct {
	Base
	OwnerID   uuid.UUID  `db:"owner_id"`
	Title     string     `db:"title"`
	EventDate *time.Time `db:"event_date"`
	Venue     *string    `db:"venue"`
}

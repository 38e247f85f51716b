package entity

import "github.com/google/uuid"

type RSVPStatus string

const (
	RSVPPending   RSVPStatus = "pending"
	RSVPConfirmed RSVPStatus = "confirmed"
	RSVPDeclined  RSVPStatus = "declined"
	RSVPMaybe     RSVPStatus = "maybe"
)

type Guest struct {
	Base
	WeddingID  uuid.UUID  `db:"wedding_id"`
	Name       string     `db:"name"`
	Email      *string    `db:"email"`
	RSVPStatus RSVPStatus `db:"rsvp_status"`
	GroupLabel string     `db:"group_label"`
	TableID    *uuid.UUID `db:"table_id"`
	SeatNumber *int       `db:"seat_number"`
}

// IsSeated reports whether the guest occupies a place at some table.
func (g *Guest) IsSeated() bool {
	return g.TableID != nil
}

// SeatedAt reports whether the guest occupies a place at tableID.
func (g *Guest) SeatedAt(tableID uuid.UUID) bool {
	return g.TableID != nil && *g.TableID == tableID
}

package wire

import (
	"wedding-planner/internal/adaptor"

	"github.com/go-chi/chi/v5"
)

func wireGuest(r chi.Router, guestHandler *adaptor.GuestHandler) {
	// Guests of a wedding
	r.Post("/api/weddings/{id}/guests", guestHandler.CreateGuest)
	r.Get("/api/weddings/{id}/guests", guestHandler.GetGuests)

	// Confirmed guests still waiting for a table
	r.Get("/api/weddings/{id}/guests/unassigned", guestHandler.GetUnassignedGuests)

	r.Patch("/api/guests/{id}", guestHandler.UpdateGuest)
}

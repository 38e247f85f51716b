package wire

import (
	"wedding-planner/internal/adaptor"

	"github.com/go-chi/chi/v5"
)

func wireSeating(r chi.Router, seatingHandler *adaptor.SeatingHandler) {
	r.Post("/api/tables/{id}/assign", seatingHandler.AssignSeat)
	r.Delete("/api/guests/{id}/seat", seatingHandler.UnassignSeat)
	r.Post("/api/auto-assign", seatingHandler.AutoAssign)
}

package wire

import (
	"wedding-planner/internal/adaptor"

	"github.com/go-chi/chi/v5"
)

func wireTable(r chi.Router, tableHandler *adaptor.TableHandler) {
	r.Post("/api/weddings/{id}/tables", tableHandler.CreateTable)
	r.Get("/api/weddings/{id}/tables", tableHandler.GetTables)

	r.Patch("/api/tables/{id}", tableHandler.UpdateTable)
	r.Delete("/api/tables/{id}", tableHandler.DeleteTable)
	r.Get("/api/tables/{id}/occupancy", tableHandler.GetOccupancy)

	// Floor plan layout, many tables at once
	r.Post("/api/positions", tableHandler.UpdatePositions)
}

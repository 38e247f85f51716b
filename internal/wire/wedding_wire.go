package wire

import (
	"wedding-planner/internal/adaptor"

	"github.com/go-chi/chi/v5"
)

// wireWedding expects r to already carry AuthSession.
func wireWedding(r chi.Router, weddingHandler *adaptor.WeddingHandler) {
	r.Post("/api/weddings", weddingHandler.CreateWedding)
	r.Get("/api/weddings", weddingHandler.GetWeddings)
	r.Get("/api/weddings/{id}", weddingHandler.GetWedding)

	// Cascades to the wedding's tables and guests
	r.Delete("/api/weddings/{id}", weddingHandler.DeleteWedding)
}

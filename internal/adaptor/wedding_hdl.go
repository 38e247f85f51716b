package adaptor

import (
	"net/http"

	"wedding-planner/internal/dto/request"
	"wedding-planner/internal/usecase"
	"wedding-planner/pkg/utils"

	"go.uber.org/zap"
)

type WeddingHandler struct {
	service usecase.WeddingService
	log     *zap.Logger
}

func NewWeddingHandler(service usecase.WeddingService, log *zap.Logger) *WeddingHandler {
	return &WeddingHandler{
		service: service,
		log:     log.With(zap.String("handler", "wedding")),
	}
}

// CreateWedding handles POST /api/weddings
func (h *WeddingHandler) CreateWedding(w http.ResponseWriter, r *http.Request) {
	userID, ok := currentUser(w, r)
	if !ok {
		return
	}

	var req request.CreateWeddingRequest
	if !decodeAndValidate(w, r, &req) {
		return
	}

	wedding, err := h.service.Create(r.Context(), userID, &req)
	if err != nil {
		handleServiceError(w, h.log, err, "create wedding")
		return
	}

	utils.ResponseCreated(w, "Wedding created successfully", wedding)
}

// GetWeddings handles GET /api/weddings
func (h *WeddingHandler) GetWeddings(w http.ResponseWriter, r *http.Request) {
	userID, ok := currentUser(w, r)
	if !ok {
		return
	}

	weddings, err := h.service.List(r.Context(), userID)
	if err != nil {
		handleServiceError(w, h.log, err, "list weddings")
		return
	}

	utils.ResponseSuccess(w, "success", weddings)
}

// GetWedding handles GET /api/weddings/{id}
func (h *WeddingHandler) GetWedding(w http.ResponseWriter, r *http.Request) {
	userID, ok := currentUser(w, r)
	if !ok {
		return
	}
	weddingID, ok := pathID(w, r, "id")
	if !ok {
		return
	}

	wedding, err := h.service.Get(r.Context(), userID, weddingID)
	if err != nil {
		handleServiceError(w, h.log, err, "get wedding")
		return
	}

	utils.ResponseSuccess(w, "success", wedding)
}

// DeleteWedding handles DELETE /api/weddings/{id}
func (h *WeddingHandler) DeleteWedding(w http.ResponseWriter, r *http.Request) {
	userID, ok := currentUser(w, r)
	if !ok {
		return
	}
	weddingID, ok := pathID(w, r, "id")
	if !ok {
		return
	}

	if err := h.service.Delete(r.Context(), userID, weddingID); err != nil {
		handleServiceError(w, h.log, err, "delete wedding")
		return
	}

	utils.ResponseSuccess(w, "Wedding deleted successfully", nil)
}

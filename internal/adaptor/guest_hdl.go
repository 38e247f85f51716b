package adaptor

import (
	"net/http"

	"wedding-planner/internal/dto/request"
	"wedding-planner/internal/usecase"
	"wedding-planner/pkg/utils"

	"go.uber.org/zap"
)

type GuestHandler struct {
	service usecase.GuestService
	ledger  usecase.LedgerService
	access  usecase.AccessService
	log     *zap.Logger
}

func NewGuestHandler(service usecase.GuestService, ledger usecase.LedgerService, access usecase.AccessService, log *zap.Logger) *GuestHandler {
	return &GuestHandler{
		service: service,
		ledger:  ledger,
		access:  access,
		log:     log.With(zap.String("handler", "guest")),
	}
}

// CreateGuest handles POST /api/weddings/{id}/guests
func (h *GuestHandler) CreateGuest(w http.ResponseWriter, r *http.Request) {
	userID, ok := currentUser(w, r)
	if !ok {
		return
	}
	weddingID, ok := pathID(w, r, "id")
	if !ok {
		return
	}

	var req request.CreateGuestRequest
	if !decodeAndValidate(w, r, &req) {
		return
	}

	if err := h.access.Wedding(r.Context(), userID, weddingID); err != nil {
		handleServiceError(w, h.log, err, "create guest")
		return
	}

	guest, err := h.service.Create(r.Context(), weddingID, &req)
	if err != nil {
		handleServiceError(w, h.log, err, "create guest")
		return
	}

	utils.ResponseCreated(w, "Guest created successfully", guest)
}

// GetGuests handles GET /api/weddings/{id}/guests
func (h *GuestHandler) GetGuests(w http.ResponseWriter, r *http.Request) {
	userID, ok := currentUser(w, r)
	if !ok {
		return
	}
	weddingID, ok := pathID(w, r, "id")
	if !ok {
		return
	}

	if err := h.access.Wedding(r.Context(), userID, weddingID); err != nil {
		handleServiceError(w, h.log, err, "list guests")
		return
	}

	guests, err := h.service.List(r.Context(), weddingID)
	if err != nil {
		handleServiceError(w, h.log, err, "list guests")
		return
	}

	utils.ResponseSuccess(w, "success", guests)
}

// GetUnassignedGuests handles GET /api/weddings/{id}/guests/unassigned
func (h *GuestHandler) GetUnassignedGuests(w http.ResponseWriter, r *http.Request) {
	userID, ok := currentUser(w, r)
	if !ok {
		return
	}
	weddingID, ok := pathID(w, r, "id")
	if !ok {
		return
	}

	if err := h.access.Wedding(r.Context(), userID, weddingID); err != nil {
		handleServiceError(w, h.log, err, "list unassigned guests")
		return
	}

	guests, err := h.ledger.UnassignedGuests(r.Context(), weddingID)
	if err != nil {
		handleServiceError(w, h.log, err, "list unassigned guests")
		return
	}

	utils.ResponseSuccess(w, "success", guests)
}

// UpdateGuest handles PATCH /api/guests/{id}
func (h *GuestHandler) UpdateGuest(w http.ResponseWriter, r *http.Request) {
	userID, ok := currentUser(w, r)
	if !ok {
		return
	}
	guestID, ok := pathID(w, r, "id")
	if !ok {
		return
	}

	var req request.UpdateGuestRequest
	if !decodeAndValidate(w, r, &req) {
		return
	}

	if _, err := h.access.Guest(r.Context(), userID, guestID); err != nil {
		handleServiceError(w, h.log, err, "update guest")
		return
	}

	guest, err := h.service.Update(r.Context(), guestID, &req)
	if err != nil {
		handleServiceError(w, h.log, err, "update guest")
		return
	}

	utils.ResponseSuccess(w, "Guest updated successfully", guest)
}

package adaptor

import (
	"net/http"

	"wedding-planner/internal/dto/request"
	"wedding-planner/internal/usecase"
	"wedding-planner/pkg/utils"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

type SeatingHandler struct {
	ledger  usecase.LedgerService
	planner usecase.PlannerService
	access  usecase.AccessService
	log     *zap.Logger
}

func NewSeatingHandler(ledger usecase.LedgerService, planner usecase.PlannerService, access usecase.AccessService, log *zap.Logger) *SeatingHandler {
	return &SeatingHandler{
		ledger:  ledger,
		planner: planner,
		access:  access,
		log:     log.With(zap.String("handler", "seating")),
	}
}

// AssignSeat handles POST /api/tables/{id}/assign
func (h *SeatingHandler) AssignSeat(w http.ResponseWriter, r *http.Request) {
	userID, ok := currentUser(w, r)
	if !ok {
		return
	}
	tableID, ok := pathID(w, r, "id")
	if !ok {
		return
	}

	var req request.AssignSeatRequest
	if !decodeAndValidate(w, r, &req) {
		return
	}
	guestID := uuid.MustParse(req.GuestID)

	// Both sides must belong to the caller. Same-owner, different-wedding
	// pairs get through here and are refused by the ledger.
	if _, err := h.access.Table(r.Context(), userID, tableID); err != nil {
		handleServiceError(w, h.log, err, "assign seat")
		return
	}
	if _, err := h.access.Guest(r.Context(), userID, guestID); err != nil {
		handleServiceError(w, h.log, err, "assign seat")
		return
	}

	assignment, err := h.ledger.Assign(r.Context(), guestID, tableID, req.SeatNumber)
	if err != nil {
		handleServiceError(w, h.log, err, "assign seat")
		return
	}

	utils.ResponseSuccess(w, "Guest seated successfully", assignment)
}

// UnassignSeat handles DELETE /api/guests/{id}/seat
func (h *SeatingHandler) UnassignSeat(w http.ResponseWriter, r *http.Request) {
	userID, ok := currentUser(w, r)
	if !ok {
		return
	}
	guestID, ok := pathID(w, r, "id")
	if !ok {
		return
	}

	if _, err := h.access.Guest(r.Context(), userID, guestID); err != nil {
		handleServiceError(w, h.log, err, "unassign seat")
		return
	}

	guest, err := h.ledger.Unassign(r.Context(), guestID)
	if err != nil {
		handleServiceError(w, h.log, err, "unassign seat")
		return
	}

	utils.ResponseSuccess(w, "Guest unseated successfully", guest)
}

// AutoAssign handles POST /api/auto-assign
func (h *SeatingHandler) AutoAssign(w http.ResponseWriter, r *http.Request) {
	userID, ok := currentUser(w, r)
	if !ok {
		return
	}

	var req request.AutoAssignRequest
	if !decodeAndValidate(w, r, &req) {
		return
	}
	weddingID := uuid.MustParse(req.WeddingID)

	if err := h.access.Wedding(r.Context(), userID, weddingID); err != nil {
		handleServiceError(w, h.log, err, "auto-assign")
		return
	}

	result, err := h.planner.AutoAssign(r.Context(), weddingID)
	if err != nil {
		handleServiceError(w, h.log, err, "auto-assign")
		return
	}

	utils.ResponseSuccess(w, "Auto-assign finished", result)
}

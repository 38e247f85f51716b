package adaptor

import (
	"encoding/json"
	"errors"
	"net/http"

	"wedding-planner/internal/usecase"
	"wedding-planner/pkg/utils"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

type Handler struct {
	Auth    *AuthHandler
	Wedding *WeddingHandler
	Guest   *GuestHandler
	Table   *TableHandler
	Seating *SeatingHandler
}

func NewHandler(service *usecase.Service, log *zap.Logger) *Handler {
	return &Handler{
		Auth:    NewAuthHandler(service.Auth, log),
		Wedding: NewWeddingHandler(service.Wedding, log),
		Guest:   NewGuestHandler(service.Guest, service.Ledger, service.Access, log),
		Table:   NewTableHandler(service.Table, service.Ledger, service.Access, log),
		Seating: NewSeatingHandler(service.Ledger, service.Planner, service.Access, log),
	}
}

// decodeAndValidate reads a JSON body into req and runs tag validation.
// It writes the 400 response itself and returns false on failure.
func decodeAndValidate(w http.ResponseWriter, r *http.Request, req any) bool {
	if err := json.NewDecoder(r.Body).Decode(req); err != nil {
		utils.ResponseBadRequest(w, "Invalid request body", nil)
		return false
	}

	if validationErrors := utils.ValidateStruct(req); len(validationErrors) > 0 {
		utils.ResponseBadRequest(w, "Validation failed", validationErrors)
		return false
	}

	return true
}

func pathID(w http.ResponseWriter, r *http.Request, name string) (uuid.UUID, bool) {
	id, err := uuid.Parse(chi.URLParam(r, name))
	if err != nil {
		utils.ResponseBadRequest(w, "Invalid ID", map[string]string{name: "Invalid UUID format"})
		return uuid.Nil, false
	}
	return id, true
}

func currentUser(w http.ResponseWriter, r *http.Request) (uuid.UUID, bool) {
	userID, ok := utils.GetUserIDFromContext(r.Context())
	if !ok {
		utils.ResponseUnauthorized(w, "Unauthorized")
		return uuid.Nil, false
	}
	return userID, true
}

// handleServiceError maps service errors to HTTP responses.
func handleServiceError(w http.ResponseWriter, log *zap.Logger, err error, operation string) {
	var vErr *usecase.ValidationError

	switch {
	case errors.As(err, &vErr):
		log.Warn(operation+" validation failed", zap.Error(err))
		utils.ResponseBadRequest(w, "Validation failed", vErr.Fields)

	case errors.Is(err, usecase.ErrCrossWedding):
		// Tenant boundary fault; the caller only ever sees "not found".
		log.Error(operation+" rejected - cross-wedding reference", zap.Error(err))
		utils.ResponseNotFound(w, "Resource not found")

	case errors.Is(err, usecase.ErrNotFound):
		log.Warn(operation+" failed - not found", zap.Error(err))
		utils.ResponseNotFound(w, "Resource not found")

	case errors.Is(err, usecase.ErrTableFull):
		log.Warn(operation+" failed - table full", zap.Error(err))
		utils.ResponseConflict(w, "Table is full")

	case errors.Is(err, usecase.ErrSeatTaken):
		log.Warn(operation+" failed - seat taken", zap.Error(err))
		utils.ResponseConflict(w, "Seat is already taken")

	case errors.Is(err, usecase.ErrCapacityConflict):
		log.Warn(operation+" failed - capacity conflict", zap.Error(err))
		utils.ResponseConflict(w, "Capacity is below the number of seated guests")

	case errors.Is(err, usecase.ErrAlreadyExists):
		log.Warn(operation+" failed - already exists", zap.Error(err))
		utils.ResponseConflict(w, "Email already registered")

	case errors.Is(err, usecase.ErrInvalidCredentials):
		log.Warn(operation+" failed - invalid credentials")
		utils.ResponseUnauthorized(w, "Invalid email or password")

	case errors.Is(err, usecase.ErrUnauthorized):
		utils.ResponseUnauthorized(w, "Unauthorized")

	default:
		log.Error("Failed to "+operation, zap.Error(err), zap.String("operation", operation))
		utils.ResponseInternalError(w, "Internal server error")
	}
}

package adaptor

import (
	"net/http"

	"wedding-planner/internal/dto/request"
	"wedding-planner/internal/usecase"
	"wedding-planner/pkg/utils"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

type TableHandler struct {
	service usecase.TableService
	ledger  usecase.LedgerService
	access  usecase.AccessService
	log     *zap.Logger
}

func NewTableHandler(service usecase.TableService, ledger usecase.LedgerService, access usecase.AccessService, log *zap.Logger) *TableHandler {
	return &TableHandler{
		service: service,
		ledger:  ledger,
		access:  access,
		log:     log.With(zap.String("handler", "table")),
	}
}

// CreateTable handles POST /api/weddings/{id}/tables
func (h *TableHandler) CreateTable(w http.ResponseWriter, r *http.Request) {
	userID, ok := currentUser(w, r)
	if !ok {
		return
	}
	weddingID, ok := pathID(w, r, "id")
	if !ok {
		return
	}

	var req request.CreateTableRequest
	if !decodeAndValidate(w, r, &req) {
		return
	}

	if err := h.access.Wedding(r.Context(), userID, weddingID); err != nil {
		handleServiceError(w, h.log, err, "create table")
		return
	}

	table, err := h.service.CreateTable(r.Context(), weddingID, &req)
	if err != nil {
		handleServiceError(w, h.log, err, "create table")
		return
	}

	utils.ResponseCreated(w, "Table created successfully", table)
}

// GetTables handles GET /api/weddings/{id}/tables
func (h *TableHandler) GetTables(w http.ResponseWriter, r *http.Request) {
	userID, ok := currentUser(w, r)
	if !ok {
		return
	}
	weddingID, ok := pathID(w, r, "id")
	if !ok {
		return
	}

	if err := h.access.Wedding(r.Context(), userID, weddingID); err != nil {
		handleServiceError(w, h.log, err, "list tables")
		return
	}

	tables, err := h.service.ListTables(r.Context(), weddingID)
	if err != nil {
		handleServiceError(w, h.log, err, "list tables")
		return
	}

	utils.ResponseSuccess(w, "success", tables)
}

// UpdateTable handles PATCH /api/tables/{id}
func (h *TableHandler) UpdateTable(w http.ResponseWriter, r *http.Request) {
	userID, ok := currentUser(w, r)
	if !ok {
		return
	}
	tableID, ok := pathID(w, r, "id")
	if !ok {
		return
	}

	var req request.UpdateTableRequest
	if !decodeAndValidate(w, r, &req) {
		return
	}

	if _, err := h.access.Table(r.Context(), userID, tableID); err != nil {
		handleServiceError(w, h.log, err, "update table")
		return
	}

	table, err := h.service.UpdateTable(r.Context(), tableID, &req)
	if err != nil {
		handleServiceError(w, h.log, err, "update table")
		return
	}

	utils.ResponseSuccess(w, "Table updated successfully", table)
}

// DeleteTable handles DELETE /api/tables/{id}
func (h *TableHandler) DeleteTable(w http.ResponseWriter, r *http.Request) {
	userID, ok := currentUser(w, r)
	if !ok {
		return
	}
	tableID, ok := pathID(w, r, "id")
	if !ok {
		return
	}

	if _, err := h.access.Table(r.Context(), userID, tableID); err != nil {
		handleServiceError(w, h.log, err, "delete table")
		return
	}

	result, err := h.service.DeleteTable(r.Context(), tableID)
	if err != nil {
		handleServiceError(w, h.log, err, "delete table")
		return
	}

	utils.ResponseSuccess(w, "Table deleted successfully", result)
}

// GetOccupancy handles GET /api/tables/{id}/occupancy
func (h *TableHandler) GetOccupancy(w http.ResponseWriter, r *http.Request) {
	userID, ok := currentUser(w, r)
	if !ok {
		return
	}
	tableID, ok := pathID(w, r, "id")
	if !ok {
		return
	}

	if _, err := h.access.Table(r.Context(), userID, tableID); err != nil {
		handleServiceError(w, h.log, err, "get occupancy")
		return
	}

	occupancy, err := h.ledger.Occupancy(r.Context(), tableID)
	if err != nil {
		handleServiceError(w, h.log, err, "get occupancy")
		return
	}

	utils.ResponseSuccess(w, "success", occupancy)
}

// UpdatePositions handles POST /api/positions
//
// The batch belongs to the wedding of its first table; any table from
// another wedding fails the whole batch.
func (h *TableHandler) UpdatePositions(w http.ResponseWriter, r *http.Request) {
	userID, ok := currentUser(w, r)
	if !ok {
		return
	}

	var req request.UpdatePositionsRequest
	if !decodeAndValidate(w, r, &req) {
		return
	}

	firstID, err := uuid.Parse(req.Positions[0].TableID)
	if err != nil {
		utils.ResponseBadRequest(w, "Validation failed", map[string]string{"table_id": "Invalid UUID format"})
		return
	}

	weddingID, err := h.access.Table(r.Context(), userID, firstID)
	if err != nil {
		handleServiceError(w, h.log, err, "update positions")
		return
	}

	result, err := h.service.UpdatePositions(r.Context(), weddingID, &req)
	if err != nil {
		handleServiceError(w, h.log, err, "update positions")
		return
	}

	utils.ResponseSuccess(w, "Positions updated successfully", result)
}

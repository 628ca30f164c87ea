package admin_equipment

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/acornglobus/court-booking-service/internal/api/handlers"
	"github.com/acornglobus/court-booking-service/internal/service/catalog"
	"github.com/acornglobus/court-booking-service/internal/service/catalog/models"
)

const (
	msgInvalidRequestBody = "invalid request body"
	msgInvalidID          = "invalid equipment id"
	msgInvalidEquipment   = "invalid equipment parameters"
	msgEquipmentNotFound  = "equipment not found"
)

type Handler struct {
	service CatalogService
	logger  Logger
}

func NewHandler(service CatalogService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// HandleList GET /api/v1/admin/equipment?onlyActive=true
func (h *Handler) HandleList(w http.ResponseWriter, r *http.Request) {
	onlyActive := r.URL.Query().Get("onlyActive") == "true"

	result, err := h.service.ListEquipment(r.Context(), onlyActive)
	if err != nil {
		h.logger.Error("GET /admin/equipment - Failed to list equipment: %v", err)
		handlers.RespondInternalError(w)
		return
	}

	handlers.RespondJSON(w, http.StatusOK, result)
}

// HandleCreate POST /api/v1/admin/equipment
func (h *Handler) HandleCreate(w http.ResponseWriter, r *http.Request) {
	var req models.CreateEquipmentRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /admin/equipment - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	result, err := h.service.CreateEquipment(r.Context(), &req)
	if err != nil {
		switch {
		case errors.Is(err, catalog.ErrInvalidInput):
			h.logger.Warn("POST /admin/equipment - Invalid input: %v", err)
			handlers.RespondBadRequest(w, msgInvalidEquipment)
		default:
			h.logger.Error("POST /admin/equipment - Failed to create equipment: %v", err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /admin/equipment - Equipment created: equipment_id=%d", result.ID)
	handlers.RespondJSON(w, http.StatusCreated, result)
}

// HandleUpdate PUT /api/v1/admin/equipment/{id}
func (h *Handler) HandleUpdate(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseInt(mux.Vars(r)["id"], 10, 64)
	if err != nil {
		h.logger.Warn("PUT /admin/equipment/{id} - Invalid id: %v", err)
		handlers.RespondBadRequest(w, msgInvalidID)
		return
	}

	var req models.UpdateEquipmentRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("PUT /admin/equipment/{id} - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	result, err := h.service.UpdateEquipment(r.Context(), id, &req)
	if err != nil {
		switch {
		case errors.Is(err, catalog.ErrEquipmentNotFound):
			h.logger.Warn("PUT /admin/equipment/{id} - Equipment not found: equipment_id=%d", id)
			handlers.RespondNotFound(w, msgEquipmentNotFound)
		case errors.Is(err, catalog.ErrInvalidInput):
			h.logger.Warn("PUT /admin/equipment/{id} - Invalid input: %v", err)
			handlers.RespondBadRequest(w, msgInvalidEquipment)
		default:
			h.logger.Error("PUT /admin/equipment/{id} - Failed to update equipment: equipment_id=%d, error=%v", id, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("PUT /admin/equipment/{id} - Equipment updated: equipment_id=%d", id)
	handlers.RespondJSON(w, http.StatusOK, result)
}

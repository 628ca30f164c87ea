package admin_coaches

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
	msgInvalidID          = "invalid coach id"
	msgInvalidCoach       = "invalid coach parameters"
	msgCoachNotFound      = "coach not found"
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

// HandleList GET /api/v1/admin/coaches?onlyActive=true
func (h *Handler) HandleList(w http.ResponseWriter, r *http.Request) {
	onlyActive := r.URL.Query().Get("onlyActive") == "true"

	result, err := h.service.ListCoaches(r.Context(), onlyActive)
	if err != nil {
		h.logger.Error("GET /admin/coaches - Failed to list coaches: %v", err)
		handlers.RespondInternalError(w)
		return
	}

	handlers.RespondJSON(w, http.StatusOK, result)
}

// HandleCreate POST /api/v1/admin/coaches
func (h *Handler) HandleCreate(w http.ResponseWriter, r *http.Request) {
	var req models.CreateCoachRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /admin/coaches - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	result, err := h.service.CreateCoach(r.Context(), &req)
	if err != nil {
		switch {
		case errors.Is(err, catalog.ErrInvalidInput):
			h.logger.Warn("POST /admin/coaches - Invalid input: %v", err)
			handlers.RespondBadRequest(w, msgInvalidCoach)
		default:
			h.logger.Error("POST /admin/coaches - Failed to create coach: %v", err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /admin/coaches - Coach created: coach_id=%d", result.ID)
	handlers.RespondJSON(w, http.StatusCreated, result)
}

// HandleUpdate PUT /api/v1/admin/coaches/{id}
func (h *Handler) HandleUpdate(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseInt(mux.Vars(r)["id"], 10, 64)
	if err != nil {
		h.logger.Warn("PUT /admin/coaches/{id} - Invalid id: %v", err)
		handlers.RespondBadRequest(w, msgInvalidID)
		return
	}

	var req models.UpdateCoachRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("PUT /admin/coaches/{id} - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	result, err := h.service.UpdateCoach(r.Context(), id, &req)
	if err != nil {
		switch {
		case errors.Is(err, catalog.ErrCoachNotFound):
			h.logger.Warn("PUT /admin/coaches/{id} - Coach not found: coach_id=%d", id)
			handlers.RespondNotFound(w, msgCoachNotFound)
		case errors.Is(err, catalog.ErrInvalidInput):
			h.logger.Warn("PUT /admin/coaches/{id} - Invalid input: %v", err)
			handlers.RespondBadRequest(w, msgInvalidCoach)
		default:
			h.logger.Error("PUT /admin/coaches/{id} - Failed to update coach: coach_id=%d, error=%v", id, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("PUT /admin/coaches/{id} - Coach updated: coach_id=%d", id)
	handlers.RespondJSON(w, http.StatusOK, result)
}

package admin_courts

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
	msgInvalidID          = "invalid court id"
	msgInvalidCourt       = "invalid court parameters"
	msgCourtNotFound      = "court not found"
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

// HandleList GET /api/v1/admin/courts?onlyActive=true
func (h *Handler) HandleList(w http.ResponseWriter, r *http.Request) {
	onlyActive := r.URL.Query().Get("onlyActive") == "true"

	result, err := h.service.ListCourts(r.Context(), onlyActive)
	if err != nil {
		h.logger.Error("GET /admin/courts - Failed to list courts: %v", err)
		handlers.RespondInternalError(w)
		return
	}

	handlers.RespondJSON(w, http.StatusOK, result)
}

// HandleCreate POST /api/v1/admin/courts
func (h *Handler) HandleCreate(w http.ResponseWriter, r *http.Request) {
	var req models.CreateCourtRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /admin/courts - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	result, err := h.service.CreateCourt(r.Context(), &req)
	if err != nil {
		switch {
		case errors.Is(err, catalog.ErrInvalidInput):
			h.logger.Warn("POST /admin/courts - Invalid input: %v", err)
			handlers.RespondBadRequest(w, msgInvalidCourt)
		default:
			h.logger.Error("POST /admin/courts - Failed to create court: %v", err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /admin/courts - Court created: court_id=%d", result.ID)
	handlers.RespondJSON(w, http.StatusCreated, result)
}

// HandleUpdate PUT /api/v1/admin/courts/{id}
func (h *Handler) HandleUpdate(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseInt(mux.Vars(r)["id"], 10, 64)
	if err != nil {
		h.logger.Warn("PUT /admin/courts/{id} - Invalid id: %v", err)
		handlers.RespondBadRequest(w, msgInvalidID)
		return
	}

	var req models.UpdateCourtRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("PUT /admin/courts/{id} - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	result, err := h.service.UpdateCourt(r.Context(), id, &req)
	if err != nil {
		switch {
		case errors.Is(err, catalog.ErrCourtNotFound):
			h.logger.Warn("PUT /admin/courts/{id} - Court not found: court_id=%d", id)
			handlers.RespondNotFound(w, msgCourtNotFound)
		case errors.Is(err, catalog.ErrInvalidInput):
			h.logger.Warn("PUT /admin/courts/{id} - Invalid input: %v", err)
			handlers.RespondBadRequest(w, msgInvalidCourt)
		default:
			h.logger.Error("PUT /admin/courts/{id} - Failed to update court: court_id=%d, error=%v", id, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("PUT /admin/courts/{id} - Court updated: court_id=%d", id)
	handlers.RespondJSON(w, http.StatusOK, result)
}

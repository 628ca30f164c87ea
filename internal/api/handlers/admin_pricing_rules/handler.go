package admin_pricing_rules

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
	msgInvalidID          = "invalid pricing rule id"
	msgInvalidRule        = "invalid pricing rule parameters"
	msgRuleNotFound       = "pricing rule not found"
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

// HandleList GET /api/v1/admin/pricing-rules?onlyActive=true
func (h *Handler) HandleList(w http.ResponseWriter, r *http.Request) {
	onlyActive := r.URL.Query().Get("onlyActive") == "true"

	result, err := h.service.ListRules(r.Context(), onlyActive)
	if err != nil {
		h.logger.Error("GET /admin/pricing-rules - Failed to list rules: %v", err)
		handlers.RespondInternalError(w)
		return
	}

	handlers.RespondJSON(w, http.StatusOK, result)
}

// HandleCreate POST /api/v1/admin/pricing-rules
func (h *Handler) HandleCreate(w http.ResponseWriter, r *http.Request) {
	var req models.CreateRuleRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /admin/pricing-rules - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	result, err := h.service.CreateRule(r.Context(), &req)
	if err != nil {
		switch {
		case errors.Is(err, catalog.ErrInvalidInput):
			h.logger.Warn("POST /admin/pricing-rules - Invalid input: %v", err)
			handlers.RespondBadRequest(w, msgInvalidRule)
		default:
			h.logger.Error("POST /admin/pricing-rules - Failed to create rule: %v", err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /admin/pricing-rules - Rule created: rule_id=%d", result.ID)
	handlers.RespondJSON(w, http.StatusCreated, result)
}

// HandleUpdate PUT /api/v1/admin/pricing-rules/{id}
func (h *Handler) HandleUpdate(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseInt(mux.Vars(r)["id"], 10, 64)
	if err != nil {
		h.logger.Warn("PUT /admin/pricing-rules/{id} - Invalid id: %v", err)
		handlers.RespondBadRequest(w, msgInvalidID)
		return
	}

	var req models.UpdateRuleRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("PUT /admin/pricing-rules/{id} - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	result, err := h.service.UpdateRule(r.Context(), id, &req)
	if err != nil {
		switch {
		case errors.Is(err, catalog.ErrRuleNotFound):
			h.logger.Warn("PUT /admin/pricing-rules/{id} - Rule not found: rule_id=%d", id)
			handlers.RespondNotFound(w, msgRuleNotFound)
		case errors.Is(err, catalog.ErrInvalidInput):
			h.logger.Warn("PUT /admin/pricing-rules/{id} - Invalid input: %v", err)
			handlers.RespondBadRequest(w, msgInvalidRule)
		default:
			h.logger.Error("PUT /admin/pricing-rules/{id} - Failed to update rule: rule_id=%d, error=%v", id, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("PUT /admin/pricing-rules/{id} - Rule updated: rule_id=%d", id)
	handlers.RespondJSON(w, http.StatusOK, result)
}

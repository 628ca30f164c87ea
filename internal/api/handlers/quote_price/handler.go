package quote_price

import (
	"errors"
	"net/http"

	"github.com/acornglobus/court-booking-service/internal/api/handlers"
	quotePrice "github.com/acornglobus/court-booking-service/internal/usecase/quote_price"
)

const (
	msgInvalidRequestBody = "invalid request body"
	msgInvalidDateTime    = "invalid date or start time, expected YYYY-MM-DD and HH:MM"
	msgInvalidInput       = "invalid quote parameters"
	msgCourtNotFound      = "court not found"
	msgCoachNotFound      = "coach not found"
	msgEquipmentNotFound  = "equipment not found"
)

type Handler struct {
	useCase QuotePriceUseCase
	logger  Logger
}

func NewHandler(useCase QuotePriceUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle POST /api/v1/quotes
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var req QuoteRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /quotes - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	useCaseReq, err := req.ToUseCaseRequest()
	if err != nil {
		h.logger.Warn("POST /quotes - Failed to parse request: %v", err)
		handlers.RespondBadRequest(w, msgInvalidDateTime)
		return
	}

	result, err := h.useCase.Execute(r.Context(), useCaseReq)
	if err != nil {
		switch {
		case errors.Is(err, quotePrice.ErrInvalidInput):
			h.logger.Warn("POST /quotes - Invalid input: %v", err)
			handlers.RespondBadRequest(w, msgInvalidInput)

		case errors.Is(err, quotePrice.ErrCourtNotFound):
			h.logger.Warn("POST /quotes - Court not found: court_id=%d", req.CourtID)
			handlers.RespondNotFound(w, msgCourtNotFound)

		case errors.Is(err, quotePrice.ErrCoachNotFound):
			h.logger.Warn("POST /quotes - Coach not found: court_id=%d", req.CourtID)
			handlers.RespondNotFound(w, msgCoachNotFound)

		case errors.Is(err, quotePrice.ErrEquipmentNotFound):
			h.logger.Warn("POST /quotes - Equipment not found: court_id=%d", req.CourtID)
			handlers.RespondNotFound(w, msgEquipmentNotFound)

		default:
			h.logger.Error("POST /quotes - Failed to compute quote: court_id=%d, error=%v", req.CourtID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /quotes - Quote computed: court_id=%d, total=%.2f", req.CourtID, result.Total)
	handlers.RespondJSON(w, http.StatusOK, FromUseCaseResponse(result))
}

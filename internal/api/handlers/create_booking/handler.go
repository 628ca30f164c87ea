package create_booking

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/acornglobus/court-booking-service/internal/api/handlers"
	createBooking "github.com/acornglobus/court-booking-service/internal/usecase/create_booking"
)

const (
	msgInvalidRequestBody = "invalid request body"
	msgInvalidDateTime    = "invalid date or start time, expected YYYY-MM-DD and HH:MM"
	msgInvalidInput       = "invalid booking parameters"
	msgCourtNotFound      = "court not found"
	msgCoachNotFound      = "coach not found"
	msgEquipmentNotFound  = "equipment not found"

	msgCourtConflict        = "Court has a conflicting booking for that slot."
	msgCoachConflict        = "Coach is already booked for that slot."
	msgEquipmentConflictFmt = "Only %d of %s left for that slot."
)

type Handler struct {
	useCase CreateBookingUseCase
	logger  Logger
}

func NewHandler(useCase CreateBookingUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle POST /api/v1/bookings
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var req CreateBookingRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /bookings - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	useCaseReq, err := req.ToUseCaseRequest()
	if err != nil {
		h.logger.Warn("POST /bookings - Failed to parse request: %v", err)
		handlers.RespondBadRequest(w, msgInvalidDateTime)
		return
	}

	result, err := h.useCase.Execute(r.Context(), useCaseReq)
	if err != nil {
		var equipmentConflict *createBooking.EquipmentConflictError

		switch {
		case errors.Is(err, createBooking.ErrInvalidInput):
			h.logger.Warn("POST /bookings - Invalid input: %v", err)
			handlers.RespondBadRequest(w, msgInvalidInput)

		case errors.Is(err, createBooking.ErrCourtNotFound):
			h.logger.Warn("POST /bookings - Court not found: court_id=%d", req.CourtID)
			handlers.RespondNotFound(w, msgCourtNotFound)

		case errors.Is(err, createBooking.ErrCoachNotFound):
			h.logger.Warn("POST /bookings - Coach not found: court_id=%d", req.CourtID)
			handlers.RespondNotFound(w, msgCoachNotFound)

		case errors.Is(err, createBooking.ErrEquipmentNotFound):
			h.logger.Warn("POST /bookings - Equipment not found: court_id=%d", req.CourtID)
			handlers.RespondNotFound(w, msgEquipmentNotFound)

		case errors.Is(err, createBooking.ErrCourtConflict):
			h.logger.Warn("POST /bookings - Court conflict: court_id=%d, date=%s, start=%s",
				req.CourtID, req.Date, req.StartTime)
			handlers.RespondConflict(w, msgCourtConflict)

		case errors.Is(err, createBooking.ErrCoachConflict):
			h.logger.Warn("POST /bookings - Coach conflict: court_id=%d, date=%s, start=%s",
				req.CourtID, req.Date, req.StartTime)
			handlers.RespondConflict(w, msgCoachConflict)

		case errors.As(err, &equipmentConflict):
			h.logger.Warn("POST /bookings - Equipment conflict: court_id=%d, equipment=%s, remaining=%d",
				req.CourtID, equipmentConflict.Name, equipmentConflict.Remaining)
			handlers.RespondConflict(w, fmt.Sprintf(msgEquipmentConflictFmt,
				equipmentConflict.Remaining, equipmentConflict.Name))

		default:
			h.logger.Error("POST /bookings - Failed to create booking: court_id=%d, error=%v", req.CourtID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /bookings - Booking created: booking_id=%d, reference=%s, court_id=%d",
		result.ID, result.Reference, req.CourtID)
	handlers.RespondJSON(w, http.StatusCreated, FromUseCaseResponse(result))
}

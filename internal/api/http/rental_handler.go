package http

import (
	"net/http"

	"bikeshare-rental-backend/internal/service"
)

type RentalHandler struct {
	svc service.RentalService
}

func NewRentalHandler(svc service.RentalService) *RentalHandler {
	return &RentalHandler{svc: svc}
}

type startRentalRequest struct {
	CyclistID   int32 `json:"cyclist_id"`
	StartLockID int32 `json:"start_lock_id"`
}

type returnRentalRequest struct {
	BikeID    int32 `json:"bike_id"`
	EndLockID int32 `json:"end_lock_id"`
}

func (h *RentalHandler) StartRental(w http.ResponseWriter, r *http.Request) {
	var req startRentalRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, err)
		return
	}

	rental, err := h.svc.StartRental(r.Context(), req.CyclistID, req.StartLockID)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, rental)
}

func (h *RentalHandler) ReturnRental(w http.ResponseWriter, r *http.Request) {
	var req returnRentalRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, err)
		return
	}

	summary, err := h.svc.ReturnRental(r.Context(), req.BikeID, req.EndLockID)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, summary)
}
